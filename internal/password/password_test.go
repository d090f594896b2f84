package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashRoundTrip(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	hash, err := h.Hash("correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.True(t, h.Verify("correct horse battery staple", hash))
	assert.False(t, h.Verify("correct horse battery stable", hash))
}

func TestHashFreshSaltPerCall(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	first, err := h.Hash("secret-pw")
	require.NoError(t, err)
	second, err := h.Hash("secret-pw")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, h.Verify("secret-pw", first))
	assert.True(t, h.Verify("secret-pw", second))
}

func TestVerifyMalformedHash(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	assert.False(t, h.Verify("anything", "not-a-bcrypt-hash"))
	assert.False(t, h.Verify("anything", ""))
}

func TestNewHasherClampsCost(t *testing.T) {
	h := NewHasher(99)

	hash, err := h.Hash("pw")
	require.NoError(t, err)
	assert.True(t, h.Verify("pw", hash))
}
