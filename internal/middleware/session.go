package middleware

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/testrunner-pro/accounts/internal/token"
)

// AccountIDKey is the request-local key under which SessionGate stores the
// verified subject for downstream handlers.
const AccountIDKey = "account_id"

// SessionGate returns a middleware enforcing the two-state credential
// contract: no bearer token at all is 401 (re-authenticate), a token that
// fails verification is 403 (present but unusable). On success only the
// subject ID is attached; resolving the full account is the handler's job.
func SessionGate(tokens *token.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authz := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			return fiber.NewError(http.StatusUnauthorized, "authentication required")
		}
		subject, err := tokens.Verify(strings.TrimSpace(authz[len("Bearer "):]))
		if err != nil {
			return fiber.NewError(http.StatusForbidden, "invalid or expired token")
		}
		c.Locals(AccountIDKey, subject)
		return c.Next()
	}
}
