package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/medorahq/medora_backend/internal/api/http/handler"
	"github.com/medorahq/medora_backend/pkg/authorize"
)

func (r *Router) registerPatientRoutes(
	api fiber.Router,
	ph *handler.PatientHandler,
	authRequired, withActor fiber.Handler,
	requirePerm func(authorize.Permission) fiber.Handler,
) {
	patients := api.Group("/patients", authRequired, withActor)

	patients.Get("/", requirePerm(authorize.PermPatientList), ph.List)
	patients.Post("/", requirePerm(authorize.PermPatientCreate), ph.Create)

	p := patients.Group("/:id")
	p.Get("/", requirePerm(authorize.PermPatientRead), ph.GetByID)
	p.Patch("/", requirePerm(authorize.PermPatientUpdate), ph.Update)
	p.Delete("/", requirePerm(authorize.PermPatientDelete), ph.Delete)
}
