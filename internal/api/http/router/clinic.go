package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/medorahq/medora_backend/internal/api/http/handler"
	"github.com/medorahq/medora_backend/pkg/authorize"
)

func (r *Router) registerClinicRoutes(
	api fiber.Router,
	ch *handler.ClinicHandler,
	authRequired, withActor fiber.Handler,
	requirePerm func(authorize.Permission) fiber.Handler,
) {
	clinic := api.Group("/clinic", authRequired, withActor)

	clinic.Get("/", requirePerm(authorize.PermClinicRead), ch.Get)
	clinic.Patch("/", requirePerm(authorize.PermClinicUpdate), ch.Update)
}
