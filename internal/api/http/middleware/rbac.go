package middleware

import (
	"github.com/gofiber/fiber/v3"

	"github.com/medorahq/medora_backend/pkg/authorize"
)

// RequirePermission gates a route on the static role→permission table.
// Row-level ownership is still decided inside the services; this only
// rejects roles that could never hold the permission.
func RequirePermission(perm authorize.Permission) fiber.Handler {
	return func(c fiber.Ctx) error {
		actor, ok := ActorFromFiber(c)
		if !ok {
			return fiber.ErrUnauthorized
		}
		if !actor.Can(perm) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "forbidden",
				"code":  "FORBIDDEN",
			})
		}
		return c.Next()
	}
}
