package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	t.Parallel()

	svc := NewService([]byte("test-secret"), time.Hour)

	tok, err := svc.Issue("account-123")
	require.NoError(t, err)

	subject, err := svc.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "account-123", subject)
}

func TestVerifyExpired(t *testing.T) {
	t.Parallel()

	svc := NewService([]byte("test-secret"), -time.Minute)

	tok, err := svc.Issue("account-123")
	require.NoError(t, err)

	_, err = svc.Verify(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyWrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewService([]byte("right-secret"), time.Hour).Issue("account-123")
	require.NoError(t, err)

	_, err = NewService([]byte("wrong-secret"), time.Hour).Verify(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyMalformed(t *testing.T) {
	t.Parallel()

	svc := NewService([]byte("test-secret"), time.Hour)

	for _, tok := range []string{"", "garbage", "a.b.c"} {
		_, err := svc.Verify(tok)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q", tok)
	}
}

func TestVerifyMissingSubject(t *testing.T) {
	t.Parallel()

	svc := NewService([]byte("test-secret"), time.Hour)

	tok, err := svc.Issue("")
	require.NoError(t, err)

	_, err = svc.Verify(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
