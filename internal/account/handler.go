package account

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/testrunner-pro/accounts/internal/middleware"
)

// Handler exposes the profile endpoints. It runs behind the session gate,
// so requests arriving here carry a verified account ID.
type Handler struct {
	repo   Repository
	cache  *ProfileCache
	logger *slog.Logger
}

// NewHandler constructs the profile HTTP handler. cache may be nil.
func NewHandler(repo Repository, cache *ProfileCache, logger *slog.Logger) *Handler {
	return &Handler{repo: repo, cache: cache, logger: logger}
}

// GetProfile handles GET /users/profile, serving from the cache when the
// view is fresh.
func (h *Handler) GetProfile(c *fiber.Ctx) error {
	id, _ := c.Locals(middleware.AccountIDKey).(string)

	if user, ok := h.cache.Get(c.UserContext(), id); ok {
		return c.JSON(user)
	}

	acct, err := h.repo.FindByID(c.UserContext(), id)
	if err != nil {
		return h.fail(c, err)
	}
	user := acct.Public()
	h.cache.Set(c.UserContext(), user)
	return c.JSON(user)
}

// UpdateProfile handles PUT /users/profile. Only name, phone, and avatar
// are mutable; other body fields are ignored by the patch type.
func (h *Handler) UpdateProfile(c *fiber.Ctx) error {
	id, _ := c.Locals(middleware.AccountIDKey).(string)

	var patch ProfilePatch
	if err := c.BodyParser(&patch); err != nil {
		return fiber.NewError(http.StatusBadRequest, "malformed request body")
	}

	acct, err := h.repo.UpdateProfile(c.UserContext(), id, patch)
	if err != nil {
		return h.fail(c, err)
	}
	h.cache.Invalidate(c.UserContext(), id)
	return c.JSON(acct.Public())
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	if errors.Is(err, ErrNotFound) {
		return fiber.NewError(http.StatusNotFound, ErrNotFound.Error())
	}
	h.logger.Error("profile request failed", "path", c.Path(), "error", err)
	return fiber.NewError(http.StatusInternalServerError, "internal server error")
}
