package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/medorahq/medora_backend/internal/api/http/handler"
	"github.com/medorahq/medora_backend/pkg/authorize"
)

func (r *Router) registerAssistantRoutes(
	api fiber.Router,
	ah *handler.AssistantHandler,
	authRequired, withActor fiber.Handler,
	requirePerm func(authorize.Permission) fiber.Handler,
) {
	assistants := api.Group("/assistants", authRequired, withActor)

	assistants.Get("/", requirePerm(authorize.PermAssistantList), ah.List)
	assistants.Post("/", requirePerm(authorize.PermAssistantCreate), ah.Create)

	a := assistants.Group("/:id")
	a.Get("/", requirePerm(authorize.PermAssistantRead), ah.GetByID)
	a.Patch("/", requirePerm(authorize.PermAssistantUpdate), ah.Update)
	a.Delete("/", requirePerm(authorize.PermAssistantDelete), ah.Delete)
}
