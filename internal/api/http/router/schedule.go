package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/medorahq/medora_backend/internal/api/http/handler"
	"github.com/medorahq/medora_backend/pkg/authorize"
)

func (r *Router) registerScheduleRoutes(
	api fiber.Router,
	sh *handler.ScheduleHandler,
	authRequired, withActor fiber.Handler,
	requirePerm func(authorize.Permission) fiber.Handler,
) {
	slots := api.Group("/slots", authRequired, withActor)

	slots.Get("/", requirePerm(authorize.PermWeeklySlotList), sh.List)
	slots.Post("/", requirePerm(authorize.PermWeeklySlotCreate), sh.Create)
	slots.Post("/bulk", requirePerm(authorize.PermWeeklySlotCreate), sh.BulkCreate)

	s := slots.Group("/:id")
	s.Get("/", requirePerm(authorize.PermWeeklySlotRead), sh.GetByID)
	s.Patch("/", requirePerm(authorize.PermWeeklySlotUpdate), sh.Update)
	s.Delete("/", requirePerm(authorize.PermWeeklySlotDelete), sh.Delete)
}
