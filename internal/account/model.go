package account

import "time"

// Status of an account. New registrations start active; deactivation is an
// administrative action outside this service's API.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Role of an account. The API only ever assigns RoleUser; RoleAdmin is set
// out of band.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Account is the persisted identity record. The password hash lives only
// here; it never reaches an outward representation.
type Account struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Username     string
	Avatar       string
	Phone        string
	Status       Status
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// User is the outward representation of an Account. The password hash is
// not a field of this type, so no handler can serialize it by accident.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Username  string    `json:"username"`
	Avatar    string    `json:"avatar,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Status    Status    `json:"status"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// Public converts an Account into its outward view.
func (a Account) Public() User {
	return User{
		ID:        a.ID,
		Email:     a.Email,
		Name:      a.Name,
		Username:  a.Username,
		Avatar:    a.Avatar,
		Phone:     a.Phone,
		Status:    a.Status,
		Role:      a.Role,
		CreatedAt: a.CreatedAt,
	}
}

// ProfilePatch carries a partial profile update. A nil field means "leave
// the stored value alone"; only these three fields are mutable through the
// profile API.
type ProfilePatch struct {
	Name   *string `json:"name"`
	Phone  *string `json:"phone"`
	Avatar *string `json:"avatar"`
}

// Merge applies patch on top of existing and returns the result. Fields
// absent or null in the patch keep their stored values. Identity fields
// (id, email, status, role, created_at) are untouched regardless of input;
// UpdatedAt is always refreshed, so an empty patch is a timestamp-only
// update.
func Merge(existing Account, patch ProfilePatch, now time.Time) Account {
	updated := existing
	if patch.Name != nil {
		updated.Name = *patch.Name
	}
	if patch.Phone != nil {
		updated.Phone = *patch.Phone
	}
	if patch.Avatar != nil {
		updated.Avatar = *patch.Avatar
	}
	updated.UpdatedAt = now
	return updated
}
