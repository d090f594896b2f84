package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldsOf(t *testing.T, err error) []string {
	t.Helper()
	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	fields := make([]string, len(verrs))
	for i, fe := range verrs {
		fields[i] = fe.Field
	}
	return fields
}

func TestValidateRegisterAggregatesAllFields(t *testing.T) {
	err := validateStruct(&RegisterInput{})
	assert.ElementsMatch(t, []string{"email", "password", "name"}, fieldsOf(t, err))
}

func TestValidateRegisterEmailShape(t *testing.T) {
	for _, email := range []string{"plainaddress", "@example.com", "a b@example.com", "trailing@"} {
		err := validateStruct(&RegisterInput{Email: email, Password: "longenough", Name: "A"})
		assert.Contains(t, fieldsOf(t, err), "email", "email %q", email)
	}

	err := validateStruct(&RegisterInput{Email: "user@example.com", Password: "longenough", Name: "A"})
	assert.NoError(t, err)
}

func TestValidateRegisterPasswordBoundary(t *testing.T) {
	err := validateStruct(&RegisterInput{Email: "a@example.com", Password: "1234567", Name: "A"})
	assert.Contains(t, fieldsOf(t, err), "password", "7 characters rejected")

	err = validateStruct(&RegisterInput{Email: "a@example.com", Password: "12345678", Name: "A"})
	assert.NoError(t, err, "8 characters accepted")
}

func TestValidateRegisterUsernameRules(t *testing.T) {
	valid := RegisterInput{Email: "a@example.com", Password: "12345678", Name: "A"}

	for _, username := range []string{"ab", "_leading", "has space", "has-dash", "waaaaaaaaaaaaaaaytoolong"} {
		in := valid
		in.Username = username
		err := validateStruct(&in)
		assert.Contains(t, fieldsOf(t, err), "username", "username %q", username)
	}

	for _, username := range []string{"", "ada", "ada_lovelace", "user42"} {
		in := valid
		in.Username = username
		assert.NoError(t, validateStruct(&in), "username %q", username)
	}
}

func TestValidateLoginPresenceOnly(t *testing.T) {
	err := validateStruct(&LoginInput{})
	assert.ElementsMatch(t, []string{"email", "password"}, fieldsOf(t, err))

	// Login does not re-check email format or password length.
	assert.NoError(t, validateStruct(&LoginInput{Email: "not-an-email", Password: "x"}))
}
