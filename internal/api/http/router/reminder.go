package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/medorahq/medora_backend/internal/api/http/handler"
	"github.com/medorahq/medora_backend/pkg/authorize"
)

func (r *Router) registerReminderRoutes(
	api fiber.Router,
	rh *handler.ReminderHandler,
	authRequired, withActor fiber.Handler,
	requirePerm func(authorize.Permission) fiber.Handler,
) {
	rules := api.Group("/reminder-rules", authRequired, withActor)

	rules.Get("/", requirePerm(authorize.PermReminderRuleList), rh.ListRules)
	rules.Post("/", requirePerm(authorize.PermReminderRuleCreate), rh.CreateRule)
	rules.Patch("/:id", requirePerm(authorize.PermReminderRuleUpdate), rh.UpdateRule)
	rules.Delete("/:id", requirePerm(authorize.PermReminderRuleDelete), rh.DeleteRule)

	reminders := api.Group("/reminders", authRequired, withActor)

	reminders.Get("/", requirePerm(authorize.PermReminderList), rh.List)

	rem := reminders.Group("/:id")
	rem.Post("/sent", requirePerm(authorize.PermReminderGenerate), rh.MarkSent)
	rem.Post("/failed", requirePerm(authorize.PermReminderGenerate), rh.MarkFailed)
	rem.Post("/cancel", requirePerm(authorize.PermReminderCancel), rh.Cancel)
}
