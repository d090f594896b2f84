package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/testrunner-pro/accounts/internal/account"
)

// RegisterUserRoutes wires the profile endpoints behind the session gate.
func RegisterUserRoutes(r fiber.Router, h *account.Handler, gate fiber.Handler) {
	group := r.Group("/users", gate)
	group.Get("/profile", h.GetProfile)
	group.Put("/profile", h.UpdateProfile)
}
