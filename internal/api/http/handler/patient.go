package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/medorahq/medora_backend/internal/api/http/middleware"
	"github.com/medorahq/medora_backend/internal/service/patient"
)

type PatientHandler struct {
	svc patient.Service
}

func NewPatientHandler(svc patient.Service) *PatientHandler {
	return &PatientHandler{svc: svc}
}

func mapPatientError(c fiber.Ctx, err error) error {
	if resp, handled := accessError(c, err); handled {
		return resp
	}
	switch {
	case errors.Is(err, patient.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, patient.ErrAlreadyLinked):
		return conflict(c, err.Error())
	case errors.Is(err, patient.ErrUserNotFound),
		errors.Is(err, patient.ErrNameRequired),
		errors.Is(err, patient.ErrInvalidPhone),
		errors.Is(err, patient.ErrInvalidEmail),
		errors.Is(err, patient.ErrInvalidGender):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

type patientBody struct {
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	Phone       *string `json:"phone"`
	Email       *string `json:"email"`
	DateOfBirth *string `json:"date_of_birth"` // YYYY-MM-DD
	Gender      *string `json:"gender"`
	Notes       *string `json:"notes"`
	UserID      *string `json:"user_id"`
	IsActive    *bool   `json:"is_active"`
}

func parseDateOfBirth(s string) (*time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// POST /patients
func (h *PatientHandler) Create(c fiber.Ctx) error {
	actor, okA := middleware.ActorFromFiber(c)
	if !okA {
		return unauthenticated(c)
	}

	var body patientBody
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.FirstName == nil || body.LastName == nil {
		return badRequest(c, "first_name and last_name are required")
	}

	req := patient.CreateRequest{
		FirstName: *body.FirstName,
		LastName:  *body.LastName,
		Phone:     body.Phone,
		Email:     body.Email,
		Gender:    body.Gender,
		Notes:     body.Notes,
	}
	if body.DateOfBirth != nil {
		dob, err := parseDateOfBirth(*body.DateOfBirth)
		if err != nil {
			return badRequest(c, "date_of_birth must be YYYY-MM-DD")
		}
		req.DateOfBirth = dob
	}
	if body.UserID != nil {
		id, err := uuid.Parse(*body.UserID)
		if err != nil {
			return badRequest(c, "invalid user_id")
		}
		req.UserID = &id
	}

	p, err := h.svc.Create(c.Context(), actor, req)
	if err != nil {
		return mapPatientError(c, err)
	}
	return created(c, p)
}

// GET /patients/:id
func (h *PatientHandler) GetByID(c fiber.Ctx) error {
	actor, okA := middleware.ActorFromFiber(c)
	if !okA {
		return unauthenticated(c)
	}

	patientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	p, err := h.svc.GetByID(c.Context(), actor, patientID)
	if err != nil {
		return mapPatientError(c, err)
	}
	return ok(c, p)
}

// GET /patients
func (h *PatientHandler) List(c fiber.Ctx) error {
	actor, okA := middleware.ActorFromFiber(c)
	if !okA {
		return unauthenticated(c)
	}

	var q struct {
		Search  string `query:"search"`
		Page    int    `query:"page"`
		PerPage int    `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	page, perPage := normPage(q.Page, q.PerPage)
	ps, total, err := h.svc.List(c.Context(), actor, patient.ListRequest{
		Search:  q.Search,
		Page:    page,
		PerPage: perPage,
	})
	if err != nil {
		return mapPatientError(c, err)
	}
	return paged(c, ps, total, page, perPage)
}

// PATCH /patients/:id
func (h *PatientHandler) Update(c fiber.Ctx) error {
	actor, okA := middleware.ActorFromFiber(c)
	if !okA {
		return unauthenticated(c)
	}

	patientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	var body patientBody
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	req := patient.UpdateRequest{
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Phone:     body.Phone,
		Email:     body.Email,
		Gender:    body.Gender,
		Notes:     body.Notes,
		IsActive:  body.IsActive,
	}
	if body.DateOfBirth != nil {
		dob, err := parseDateOfBirth(*body.DateOfBirth)
		if err != nil {
			return badRequest(c, "date_of_birth must be YYYY-MM-DD")
		}
		req.DateOfBirth = dob
	}

	p, err := h.svc.Update(c.Context(), actor, patientID, req)
	if err != nil {
		return mapPatientError(c, err)
	}
	return ok(c, p)
}

// DELETE /patients/:id
func (h *PatientHandler) Delete(c fiber.Ctx) error {
	actor, okA := middleware.ActorFromFiber(c)
	if !okA {
		return unauthenticated(c)
	}

	patientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	if err := h.svc.Delete(c.Context(), actor, patientID); err != nil {
		return mapPatientError(c, err)
	}
	return noContent(c)
}
