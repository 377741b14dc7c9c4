package handler

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/medorahq/medora_backend/internal/api/http/middleware"
	"github.com/medorahq/medora_backend/internal/repo"
	"github.com/medorahq/medora_backend/internal/service/appointment"
	"github.com/medorahq/medora_backend/pkg/authorize"
)

type AppointmentHandler struct {
	svc appointment.Service
}

func NewAppointmentHandler(svc appointment.Service) *AppointmentHandler {
	return &AppointmentHandler{svc: svc}
}

func mapAppointmentError(c fiber.Ctx, err error) error {
	if resp, handled := accessError(c, err); handled {
		return resp
	}
	switch {
	case errors.Is(err, appointment.ErrNotFound),
		errors.Is(err, appointment.ErrDoctorNotFound),
		errors.Is(err, appointment.ErrPatientNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, appointment.ErrConflict):
		return conflict(c, err.Error())
	case errors.Is(err, appointment.ErrBadTransition),
		errors.Is(err, appointment.ErrInvalidInterval),
		errors.Is(err, appointment.ErrStartInPast),
		errors.Is(err, appointment.ErrInvalidStatus):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /appointments
func (h *AppointmentHandler) List(c fiber.Ctx) error {
	actor, okA := middleware.ActorFromFiber(c)
	if !okA {
		return unauthenticated(c)
	}

	var q struct {
		DoctorID  string `query:"doctor_id"`
		PatientID string `query:"patient_id"`
		Status    string `query:"status"`
		From      string `query:"from"`
		To        string `query:"to"`
		Page      int    `query:"page"`
		PerPage   int    `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	page, perPage := normPage(q.Page, q.PerPage)
	req := appointment.ListRequest{Page: page, PerPage: perPage}
	if q.DoctorID != "" {
		id, err := uuid.Parse(q.DoctorID)
		if err != nil {
			return badRequest(c, "invalid doctor_id")
		}
		req.DoctorID = &id
	}
	if q.PatientID != "" {
		id, err := uuid.Parse(q.PatientID)
		if err != nil {
			return badRequest(c, "invalid patient_id")
		}
		req.PatientID = &id
	}
	if q.Status != "" {
		req.Status = &q.Status
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

	appts, total, err := h.svc.List(c.Context(), actor, req)
	if err != nil {
		return mapAppointmentError(c, err)
	}
	return paged(c, appts, total, page, perPage)
}

// GET /appointments/:id
func (h *AppointmentHandler) GetByID(c fiber.Ctx) error {
	actor, okA := middleware.ActorFromFiber(c)
	if !okA {
		return unauthenticated(c)
	}

	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	appt, err := h.svc.GetByID(c.Context(), actor, apptID)
	if err != nil {
		return mapAppointmentError(c, err)
	}
	return ok(c, appt)
}

// POST /appointments
func (h *AppointmentHandler) Create(c fiber.Ctx) error {
	actor, okA := middleware.ActorFromFiber(c)
	if !okA {
		return unauthenticated(c)
	}

	var body struct {
		DoctorID  string    `json:"doctor_id"`
		PatientID string    `json:"patient_id"`
		StartTime time.Time `json:"start_time"`
		EndTime   time.Time `json:"end_time"`
		Status    *string   `json:"status"`
		Source    *string   `json:"source"`
		Reason    *string   `json:"reason"`
		Notes     *string   `json:"notes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.DoctorID == "" || body.PatientID == "" {
		return badRequest(c, "doctor_id and patient_id are required")
	}

	doctorID, err := uuid.Parse(body.DoctorID)
	if err != nil {
		return badRequest(c, "invalid doctor_id")
	}
	patientID, err := uuid.Parse(body.PatientID)
	if err != nil {
		return badRequest(c, "invalid patient_id")
	}

	appt, err := h.svc.Create(c.Context(), actor, appointment.CreateRequest{
		DoctorID:  doctorID,
		PatientID: patientID,
		StartTime: body.StartTime,
		EndTime:   body.EndTime,
		Status:    body.Status,
		Source:    body.Source,
		Reason:    body.Reason,
		Notes:     body.Notes,
	})
	if err != nil {
		return mapAppointmentError(c, err)
	}
	return created(c, appt)
}

// PATCH /appointments/:id
func (h *AppointmentHandler) Update(c fiber.Ctx) error {
	actor, okA := middleware.ActorFromFiber(c)
	if !okA {
		return unauthenticated(c)
	}

	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	var body struct {
		StartTime *time.Time `json:"start_time"`
		EndTime   *time.Time `json:"end_time"`
		Reason    *string    `json:"reason"`
		Notes     *string    `json:"notes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	appt, err := h.svc.Update(c.Context(), actor, apptID, appointment.UpdateRequest{
		StartTime: body.StartTime,
		EndTime:   body.EndTime,
		Reason:    body.Reason,
		Notes:     body.Notes,
	})
	if err != nil {
		return mapAppointmentError(c, err)
	}
	return ok(c, appt)
}

// POST /appointments/:id/confirm
func (h *AppointmentHandler) Confirm(c fiber.Ctx) error {
	return h.transition(c, h.svc.Confirm)
}

// POST /appointments/:id/complete
func (h *AppointmentHandler) Complete(c fiber.Ctx) error {
	return h.transition(c, h.svc.Complete)
}

// POST /appointments/:id/noshow
func (h *AppointmentHandler) MarkNoShow(c fiber.Ctx) error {
	return h.transition(c, h.svc.MarkNoShow)
}

// POST /appointments/:id/cancel
func (h *AppointmentHandler) Cancel(c fiber.Ctx) error {
	actor, okA := middleware.ActorFromFiber(c)
	if !okA {
		return unauthenticated(c)
	}

	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	var body struct {
		Reason *string `json:"reason"`
	}
	// cancel accepts an empty body
	_ = c.Bind().JSON(&body)

	appt, err := h.svc.Cancel(c.Context(), actor, apptID, body.Reason)
	if err != nil {
		return mapAppointmentError(c, err)
	}
	return ok(c, appt)
}

func (h *AppointmentHandler) transition(
	c fiber.Ctx,
	fn func(ctx context.Context, actor authorize.Actor, apptID uuid.UUID) (*repo.Appointment, error),
) error {
	actor, okA := middleware.ActorFromFiber(c)
	if !okA {
		return unauthenticated(c)
	}

	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	appt, err := fn(c.Context(), actor, apptID)
	if err != nil {
		return mapAppointmentError(c, err)
	}
	return ok(c, appt)
}
