package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/medorahq/medora_backend/internal/api/http/handler"
	"github.com/medorahq/medora_backend/pkg/authorize"
)

func (r *Router) registerAuditRoutes(
	api fiber.Router,
	ah *handler.AuditHandler,
	authRequired, withActor fiber.Handler,
	requirePerm func(authorize.Permission) fiber.Handler,
) {
	logs := api.Group("/audit-logs", authRequired, withActor)

	logs.Get("/", requirePerm(authorize.PermAuditList), ah.List)
	logs.Delete("/", requirePerm(authorize.PermAuditDelete), ah.Purge)
	logs.Delete("/:id", requirePerm(authorize.PermAuditDelete), ah.Delete)
}
