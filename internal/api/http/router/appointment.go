package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/medorahq/medora_backend/internal/api/http/handler"
	"github.com/medorahq/medora_backend/pkg/authorize"
)

func (r *Router) registerAppointmentRoutes(
	api fiber.Router,
	ah *handler.AppointmentHandler,
	rh *handler.ReminderHandler,
	authRequired, withActor fiber.Handler,
	requirePerm func(authorize.Permission) fiber.Handler,
) {
	appts := api.Group("/appointments", authRequired, withActor)

	appts.Get("/", requirePerm(authorize.PermAppointmentList), ah.List)
	appts.Post("/", requirePerm(authorize.PermAppointmentCreate), ah.Create)

	a := appts.Group("/:id")
	a.Get("/", requirePerm(authorize.PermAppointmentRead), ah.GetByID)
	a.Patch("/", requirePerm(authorize.PermAppointmentUpdate), ah.Update)
	a.Post("/confirm", requirePerm(authorize.PermAppointmentConfirm), ah.Confirm)
	a.Post("/complete", requirePerm(authorize.PermAppointmentComplete), ah.Complete)
	a.Post("/cancel", requirePerm(authorize.PermAppointmentCancel), ah.Cancel)
	a.Post("/noshow", requirePerm(authorize.PermAppointmentNoShow), ah.MarkNoShow)

	a.Post("/reminders", requirePerm(authorize.PermReminderGenerate), rh.Generate)
}
