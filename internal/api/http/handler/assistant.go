package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/medorahq/medora_backend/internal/api/http/middleware"
	"github.com/medorahq/medora_backend/internal/service/assistant"
)

type AssistantHandler struct {
	svc assistant.Service
}

func NewAssistantHandler(svc assistant.Service) *AssistantHandler {
	return &AssistantHandler{svc: svc}
}

func mapAssistantError(c fiber.Ctx, err error) error {
	if resp, handled := accessError(c, err); handled {
		return resp
	}
	switch {
	case errors.Is(err, assistant.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, assistant.ErrAlreadyLinked):
		return conflict(c, err.Error())
	case errors.Is(err, assistant.ErrTitleOnly):
		return fail(c, fiber.StatusForbidden, codeForbidden, err.Error())
	case errors.Is(err, assistant.ErrUserNotFound), errors.Is(err, assistant.ErrNameRequired):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// POST /assistants
func (h *AssistantHandler) Create(c fiber.Ctx) error {
	actor, okA := middleware.ActorFromFiber(c)
	if !okA {
		return unauthenticated(c)
	}

	var body struct {
		FirstName string  `json:"first_name"`
		LastName  string  `json:"last_name"`
		Title     *string `json:"title"`
		UserID    *string `json:"user_id"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	req := assistant.CreateRequest{
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Title:     body.Title,
	}
	if body.UserID != nil {
		id, err := uuid.Parse(*body.UserID)
		if err != nil {
			return badRequest(c, "invalid user_id")
		}
		req.UserID = &id
	}

	a, err := h.svc.Create(c.Context(), actor, req)
	if err != nil {
		return mapAssistantError(c, err)
	}
	return created(c, a)
}

// GET /assistants/:id
func (h *AssistantHandler) GetByID(c fiber.Ctx) error {
	actor, okA := middleware.ActorFromFiber(c)
	if !okA {
		return unauthenticated(c)
	}

	assistantID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid assistant id")
	}

	a, err := h.svc.GetByID(c.Context(), actor, assistantID)
	if err != nil {
		return mapAssistantError(c, err)
	}
	return ok(c, a)
}

// GET /assistants
func (h *AssistantHandler) List(c fiber.Ctx) error {
	actor, okA := middleware.ActorFromFiber(c)
	if !okA {
		return unauthenticated(c)
	}

	as, err := h.svc.List(c.Context(), actor)
	if err != nil {
		return mapAssistantError(c, err)
	}
	return ok(c, as)
}

// PATCH /assistants/:id
func (h *AssistantHandler) Update(c fiber.Ctx) error {
	actor, okA := middleware.ActorFromFiber(c)
	if !okA {
		return unauthenticated(c)
	}

	assistantID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid assistant id")
	}

	var body struct {
		FirstName *string `json:"first_name"`
		LastName  *string `json:"last_name"`
		Title     *string `json:"title"`
		IsActive  *bool   `json:"is_active"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	a, err := h.svc.Update(c.Context(), actor, assistantID, assistant.UpdateRequest{
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Title:     body.Title,
		IsActive:  body.IsActive,
	})
	if err != nil {
		return mapAssistantError(c, err)
	}
	return ok(c, a)
}

// DELETE /assistants/:id
func (h *AssistantHandler) Delete(c fiber.Ctx) error {
	actor, okA := middleware.ActorFromFiber(c)
	if !okA {
		return unauthenticated(c)
	}

	assistantID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid assistant id")
	}

	if err := h.svc.Delete(c.Context(), actor, assistantID); err != nil {
		return mapAssistantError(c, err)
	}
	return noContent(c)
}
