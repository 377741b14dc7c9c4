package handler

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/medorahq/medora_backend/internal/api/http/middleware"
	"github.com/medorahq/medora_backend/internal/service/audit"
)

type AuditHandler struct {
	svc audit.Service
}

func NewAuditHandler(svc audit.Service) *AuditHandler {
	return &AuditHandler{svc: svc}
}

func mapAuditError(c fiber.Ctx, err error) error {
	if resp, handled := accessError(c, err); handled {
		return resp
	}
	return internalError(c)
}

// GET /audit-logs
func (h *AuditHandler) List(c fiber.Ctx) error {
	actor, okA := middleware.ActorFromFiber(c)
	if !okA {
		return unauthenticated(c)
	}

	var q struct {
		Entity   string `query:"entity"`
		EntityID string `query:"entity_id"`
		Action   string `query:"action"`
		ActorID  string `query:"actor_id"`
		From     string `query:"from"`
		To       string `query:"to"`
		Page     int    `query:"page"`
		PerPage  int    `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	page, perPage := normPage(q.Page, q.PerPage)
	req := audit.ListRequest{Page: page, PerPage: perPage}
	if q.Entity != "" {
		req.Entity = &q.Entity
	}
	if q.EntityID != "" {
		id, err := uuid.Parse(q.EntityID)
		if err != nil {
			return badRequest(c, "invalid entity_id")
		}
		req.EntityID = &id
	}
	if q.Action != "" {
		req.Action = &q.Action
	}
	if q.ActorID != "" {
		id, err := uuid.Parse(q.ActorID)
		if err != nil {
			return badRequest(c, "invalid actor_id")
		}
		req.ActorID = &id
	}
	if q.From != "" {
		t, err := time.Parse(time.RFC3339, q.From)
		if err != nil {
			return badRequest(c, "from must be RFC3339")
		}
		req.From = &t
	}
	if q.To != "" {
		t, err := time.Parse(time.RFC3339, q.To)
		if err != nil {
			return badRequest(c, "to must be RFC3339")
		}
		req.To = &t
	}

	logs, total, err := h.svc.List(c.Context(), actor, req)
	if err != nil {
		return mapAuditError(c, err)
	}
	return paged(c, logs, total, page, perPage)
}

// DELETE /audit-logs?older_than=RFC3339
// DELETE /audit-logs?entity=appointment&entity_id=<uuid>
func (h *AuditHandler) Purge(c fiber.Ctx) error {
	actor, okA := middleware.ActorFromFiber(c)
	if !okA {
		return unauthenticated(c)
	}

	if entity := c.Query("entity"); entity != "" {
		entityID, err := uuid.Parse(c.Query("entity_id"))
		if err != nil {
			return badRequest(c, "invalid entity_id")
		}
		n, err := h.svc.DeleteByEntity(c.Context(), actor, entity, entityID)
		if err != nil {
			return mapAuditError(c, err)
		}
		return ok(c, fiber.Map{"purged": n})
	}

	olderThan, err := time.Parse(time.RFC3339, c.Query("older_than"))
	if err != nil {
		return badRequest(c, "older_than must be RFC3339")
	}

	n, err := h.svc.Purge(c.Context(), actor, olderThan)
	if err != nil {
		return mapAuditError(c, err)
	}
	return ok(c, fiber.Map{"purged": n})
}

// DELETE /audit-logs/:id
func (h *AuditHandler) Delete(c fiber.Ctx) error {
	actor, okA := middleware.ActorFromFiber(c)
	if !okA {
		return unauthenticated(c)
	}

	logID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid audit log id")
	}

	if err := h.svc.Delete(c.Context(), actor, logID); err != nil {
		return mapAuditError(c, err)
	}
	return noContent(c)
}
