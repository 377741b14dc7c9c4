package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/medorahq/medora_backend/internal/api/http/handler"
	"github.com/medorahq/medora_backend/pkg/authorize"
)

func (r *Router) registerDoctorRoutes(
	api fiber.Router,
	dh *handler.DoctorHandler,
	authRequired, withActor fiber.Handler,
	requirePerm func(authorize.Permission) fiber.Handler,
) {
	doctors := api.Group("/doctors", authRequired, withActor)

	doctors.Get("/", requirePerm(authorize.PermDoctorList), dh.List)
	doctors.Post("/", requirePerm(authorize.PermDoctorCreate), dh.Create)

	d := doctors.Group("/:id")
	d.Get("/", requirePerm(authorize.PermDoctorRead), dh.GetByID)
	d.Patch("/", requirePerm(authorize.PermDoctorUpdate), dh.Update)
	d.Delete("/", requirePerm(authorize.PermDoctorDelete), dh.Delete)
}
