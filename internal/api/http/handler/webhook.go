package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/medorahq/medora_backend/internal/api/http/middleware"
	"github.com/medorahq/medora_backend/internal/service/webhook"
)

type WebhookHandler struct {
	svc webhook.Service
}

func NewWebhookHandler(svc webhook.Service) *WebhookHandler {
	return &WebhookHandler{svc: svc}
}

func mapWebhookError(c fiber.Ctx, err error) error {
	if resp, handled := accessError(c, err); handled {
		return resp
	}
	switch {
	case errors.Is(err, webhook.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, webhook.ErrDuplicateURL):
		return conflict(c, err.Error())
	case errors.Is(err, webhook.ErrTestFailed):
		return fail(c, fiber.StatusBadGateway, codeWebhookTestFailed, err.Error())
	default:
		return internalError(c)
	}
}

// POST /webhooks
func (h *WebhookHandler) Create(c fiber.Ctx) error {
	actor, okA := middleware.ActorFromFiber(c)
	if !okA {
		return unauthenticated(c)
	}

	var body struct {
		URL    string   `json:"url"`
		Secret string   `json:"secret"`
		Events []string `json:"events"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	req := webhook.CreateEndpointRequest{URL: body.URL, Secret: body.Secret, Events: body.Events}
	if err := req.Validate(); err != nil {
		return badRequest(c, err.Error())
	}

	ep, err := h.svc.Create(c.Context(), actor, req)
	if err != nil {
		return mapWebhookError(c, err)
	}
	return created(c, ep)
}

// GET /webhooks/:id
func (h *WebhookHandler) GetByID(c fiber.Ctx) error {
	actor, okA := middleware.ActorFromFiber(c)
	if !okA {
		return unauthenticated(c)
	}

	endpointID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid endpoint id")
	}

	ep, err := h.svc.GetByID(c.Context(), actor, endpointID)
	if err != nil {
		return mapWebhookError(c, err)
	}
	return ok(c, ep)
}

// GET /webhooks
func (h *WebhookHandler) List(c fiber.Ctx) error {
	actor, okA := middleware.ActorFromFiber(c)
	if !okA {
		return unauthenticated(c)
	}

	eps, err := h.svc.List(c.Context(), actor)
	if err != nil {
		return mapWebhookError(c, err)
	}
	return ok(c, eps)
}

// PATCH /webhooks/:id
func (h *WebhookHandler) Update(c fiber.Ctx) error {
	actor, okA := middleware.ActorFromFiber(c)
	if !okA {
		return unauthenticated(c)
	}

	endpointID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid endpoint id")
	}

	var body struct {
		URL      *string  `json:"url"`
		Secret   *string  `json:"secret"`
		Events   []string `json:"events"`
		IsActive *bool    `json:"is_active"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	req := webhook.UpdateEndpointRequest{
		URL:      body.URL,
		Secret:   body.Secret,
		Events:   body.Events,
		IsActive: body.IsActive,
	}
	if err := req.Validate(); err != nil {
		return badRequest(c, err.Error())
	}

	ep, err := h.svc.Update(c.Context(), actor, endpointID, req)
	if err != nil {
		return mapWebhookError(c, err)
	}
	return ok(c, ep)
}

// DELETE /webhooks/:id
func (h *WebhookHandler) Delete(c fiber.Ctx) error {
	actor, okA := middleware.ActorFromFiber(c)
	if !okA {
		return unauthenticated(c)
	}

	endpointID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid endpoint id")
	}

	if err := h.svc.Delete(c.Context(), actor, endpointID); err != nil {
		return mapWebhookError(c, err)
	}
	return noContent(c)
}

// POST /webhooks/:id/test
func (h *WebhookHandler) Test(c fiber.Ctx) error {
	actor, okA := middleware.ActorFromFiber(c)
	if !okA {
		return unauthenticated(c)
	}

	endpointID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid endpoint id")
	}

	if err := h.svc.Test(c.Context(), actor, endpointID); err != nil {
		return mapWebhookError(c, err)
	}
	return ok(c, fiber.Map{"delivered": true})
}
