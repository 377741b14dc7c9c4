package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/medorahq/medora_backend/internal/api/http/handler"
	"github.com/medorahq/medora_backend/pkg/authorize"
)

func (r *Router) registerUserRoutes(
	api fiber.Router,
	uh *handler.UserHandler,
	authRequired, withActor fiber.Handler,
	requirePerm func(authorize.Permission) fiber.Handler,
) {
	users := api.Group("/users", authRequired, withActor)

	users.Get("/", requirePerm(authorize.PermUserList), uh.List)
	users.Post("/", requirePerm(authorize.PermUserCreate), uh.Create)

	u := users.Group("/:id")
	// self-reads bypass the permission check inside the service
	u.Get("/", uh.GetByID)
	u.Patch("/", requirePerm(authorize.PermUserUpdate), uh.Update)
}
