package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/medorahq/medora_backend/internal/api/http/middleware"
	"github.com/medorahq/medora_backend/internal/service/doctor"
)

type DoctorHandler struct {
	svc doctor.Service
}

func NewDoctorHandler(svc doctor.Service) *DoctorHandler {
	return &DoctorHandler{svc: svc}
}

func mapDoctorError(c fiber.Ctx, err error) error {
	if resp, handled := accessError(c, err); handled {
		return resp
	}
	switch {
	case errors.Is(err, doctor.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, doctor.ErrAlreadyLinked):
		return conflict(c, err.Error())
	case errors.Is(err, doctor.ErrUserNotFound),
		errors.Is(err, doctor.ErrNameRequired),
		errors.Is(err, doctor.ErrInvalidPhone):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// POST /doctors
func (h *DoctorHandler) Create(c fiber.Ctx) error {
	actor, okA := middleware.ActorFromFiber(c)
	if !okA {
		return unauthenticated(c)
	}

	var body struct {
		FirstName string  `json:"first_name"`
		LastName  string  `json:"last_name"`
		Specialty *string `json:"specialty"`
		Phone     *string `json:"phone"`
		UserID    *string `json:"user_id"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	req := doctor.CreateRequest{
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Specialty: body.Specialty,
		Phone:     body.Phone,
	}
	if body.UserID != nil {
		id, err := uuid.Parse(*body.UserID)
		if err != nil {
			return badRequest(c, "invalid user_id")
		}
		req.UserID = &id
	}

	doc, err := h.svc.Create(c.Context(), actor, req)
	if err != nil {
		return mapDoctorError(c, err)
	}
	return created(c, doc)
}

// GET /doctors/:id
func (h *DoctorHandler) GetByID(c fiber.Ctx) error {
	actor, okA := middleware.ActorFromFiber(c)
	if !okA {
		return unauthenticated(c)
	}

	doctorID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid doctor id")
	}

	doc, err := h.svc.GetByID(c.Context(), actor, doctorID)
	if err != nil {
		return mapDoctorError(c, err)
	}
	return ok(c, doc)
}

// GET /doctors
func (h *DoctorHandler) List(c fiber.Ctx) error {
	actor, okA := middleware.ActorFromFiber(c)
	if !okA {
		return unauthenticated(c)
	}

	var q struct {
		ActiveOnly bool `query:"active_only"`
		Page       int  `query:"page"`
		PerPage    int  `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	page, perPage := normPage(q.Page, q.PerPage)
	docs, total, err := h.svc.List(c.Context(), actor, doctor.ListRequest{
		ActiveOnly: q.ActiveOnly,
		Page:       page,
		PerPage:    perPage,
	})
	if err != nil {
		return mapDoctorError(c, err)
	}
	return paged(c, docs, total, page, perPage)
}

// PATCH /doctors/:id
func (h *DoctorHandler) Update(c fiber.Ctx) error {
	actor, okA := middleware.ActorFromFiber(c)
	if !okA {
		return unauthenticated(c)
	}

	doctorID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid doctor id")
	}

	var body struct {
		FirstName *string `json:"first_name"`
		LastName  *string `json:"last_name"`
		Specialty *string `json:"specialty"`
		Phone     *string `json:"phone"`
		IsActive  *bool   `json:"is_active"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	doc, err := h.svc.Update(c.Context(), actor, doctorID, doctor.UpdateRequest{
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Specialty: body.Specialty,
		Phone:     body.Phone,
		IsActive:  body.IsActive,
	})
	if err != nil {
		return mapDoctorError(c, err)
	}
	return ok(c, doc)
}

// DELETE /doctors/:id
func (h *DoctorHandler) Delete(c fiber.Ctx) error {
	actor, okA := middleware.ActorFromFiber(c)
	if !okA {
		return unauthenticated(c)
	}

	doctorID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid doctor id")
	}

	if err := h.svc.Delete(c.Context(), actor, doctorID); err != nil {
		return mapDoctorError(c, err)
	}
	return noContent(c)
}
