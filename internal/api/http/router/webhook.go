package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/medorahq/medora_backend/internal/api/http/handler"
	"github.com/medorahq/medora_backend/pkg/authorize"
)

func (r *Router) registerWebhookRoutes(
	api fiber.Router,
	wh *handler.WebhookHandler,
	authRequired, withActor fiber.Handler,
	requirePerm func(authorize.Permission) fiber.Handler,
) {
	webhooks := api.Group("/webhooks", authRequired, withActor)

	webhooks.Get("/", requirePerm(authorize.PermWebhookList), wh.List)
	webhooks.Post("/", requirePerm(authorize.PermWebhookCreate), wh.Create)

	w := webhooks.Group("/:id")
	w.Get("/", requirePerm(authorize.PermWebhookRead), wh.GetByID)
	w.Patch("/", requirePerm(authorize.PermWebhookUpdate), wh.Update)
	w.Delete("/", requirePerm(authorize.PermWebhookDelete), wh.Delete)
	w.Post("/test", requirePerm(authorize.PermWebhookTest), wh.Test)
}
