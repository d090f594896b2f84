package auth

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/testrunner-pro/accounts/internal/account"
)

// Handler exposes the register and login endpoints.
type Handler struct {
	svc    *Service
	logger *slog.Logger
}

// NewHandler constructs the auth HTTP handler.
func NewHandler(svc *Service, logger *slog.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

type authResponse struct {
	Token string       `json:"token"`
	User  account.User `json:"user"`
}

// Register handles POST /auth/register.
func (h *Handler) Register(c *fiber.Ctx) error {
	var in RegisterInput
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(http.StatusBadRequest, "malformed request body")
	}
	res, err := h.svc.Register(c.UserContext(), in)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(http.StatusCreated).JSON(authResponse{Token: res.Token, User: res.User})
}

// Login handles POST /auth/login.
func (h *Handler) Login(c *fiber.Ctx) error {
	var in LoginInput
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(http.StatusBadRequest, "malformed request body")
	}
	res, err := h.svc.Login(c.UserContext(), in)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(http.StatusOK).JSON(authResponse{Token: res.Token, User: res.User})
}

// fail maps workflow errors to the status contract: field-tagged
// validation failures and duplicate accounts are 400, credential
// mismatches 401, anything else is an opaque 500.
func (h *Handler) fail(c *fiber.Ctx, err error) error {
	var verrs ValidationErrors
	switch {
	case errors.As(err, &verrs):
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"errors": verrs})
	case errors.Is(err, account.ErrDuplicate):
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": account.ErrDuplicate.Error()})
	case errors.Is(err, ErrInvalidCredentials):
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": ErrInvalidCredentials.Error()})
	default:
		h.logger.Error("auth request failed", "path", c.Path(), "error", err)
		return fiber.NewError(http.StatusInternalServerError, "internal server error")
	}
}
