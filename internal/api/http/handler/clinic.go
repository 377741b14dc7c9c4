package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/medorahq/medora_backend/internal/api/http/middleware"
	"github.com/medorahq/medora_backend/internal/service/clinic"
)

type ClinicHandler struct {
	svc clinic.Service
}

func NewClinicHandler(svc clinic.Service) *ClinicHandler {
	return &ClinicHandler{svc: svc}
}

func mapClinicError(c fiber.Ctx, err error) error {
	if resp, handled := accessError(c, err); handled {
		return resp
	}
	switch {
	case errors.Is(err, clinic.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, clinic.ErrNameRequired), errors.Is(err, clinic.ErrInvalidTimezone):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /clinic
func (h *ClinicHandler) Get(c fiber.Ctx) error {
	actor, okA := middleware.ActorFromFiber(c)
	if !okA {
		return unauthenticated(c)
	}

	cl, err := h.svc.Get(c.Context(), actor)
	if err != nil {
		return mapClinicError(c, err)
	}
	return ok(c, cl)
}

// PATCH /clinic
func (h *ClinicHandler) Update(c fiber.Ctx) error {
	actor, okA := middleware.ActorFromFiber(c)
	if !okA {
		return unauthenticated(c)
	}

	var body struct {
		Name     *string `json:"name"`
		Timezone *string `json:"timezone"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	cl, err := h.svc.Update(c.Context(), actor, clinic.UpdateRequest{
		Name:     body.Name,
		Timezone: body.Timezone,
	})
	if err != nil {
		return mapClinicError(c, err)
	}
	return ok(c, cl)
}
