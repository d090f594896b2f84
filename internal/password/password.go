package password

import "golang.org/x/crypto/bcrypt"

// Hasher derives and verifies bcrypt password hashes. The cost is the
// bcrypt work factor; higher values slow both hashing and brute force.
type Hasher struct {
	cost int
}

// NewHasher builds a Hasher with the given bcrypt cost. Costs outside the
// range bcrypt accepts fall back to the library default.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash derives a salted hash from a plaintext password. Each call embeds a
// fresh random salt, so hashing the same password twice yields different
// output.
func (h *Hasher) Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether plaintext matches the stored hash. Malformed
// hashes verify as false rather than erroring; callers treat any failure
// as a credential mismatch.
func (h *Hasher) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
