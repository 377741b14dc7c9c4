package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/medorahq/medora_backend/internal/api/http/middleware"
	"github.com/medorahq/medora_backend/internal/service/reminder"
)

type ReminderHandler struct {
	svc reminder.Service
}

func NewReminderHandler(svc reminder.Service) *ReminderHandler {
	return &ReminderHandler{svc: svc}
}

func mapReminderError(c fiber.Ctx, err error) error {
	if resp, handled := accessError(c, err); handled {
		return resp
	}
	switch {
	case errors.Is(err, reminder.ErrNotFound),
		errors.Is(err, reminder.ErrRuleNotFound),
		errors.Is(err, reminder.ErrAppointmentNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, reminder.ErrDuplicateRule):
		return conflict(c, err.Error())
	case errors.Is(err, reminder.ErrNotScheduled),
		errors.Is(err, reminder.ErrAppointmentInPast),
		errors.Is(err, reminder.ErrNoActiveRules),
		errors.Is(err, reminder.ErrInvalidOffset),
		errors.Is(err, reminder.ErrInvalidChannel),
		errors.Is(err, reminder.ErrMissingError):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// ---------------------------------------------------------------------------
// Rules
// ---------------------------------------------------------------------------

// POST /reminder-rules
func (h *ReminderHandler) CreateRule(c fiber.Ctx) error {
	actor, okA := middleware.ActorFromFiber(c)
	if !okA {
		return unauthenticated(c)
	}

	var body struct {
		OffsetMin int     `json:"offset_min"`
		Channel   string  `json:"channel"`
		Template  *string `json:"template"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	rule, err := h.svc.CreateRule(c.Context(), actor, reminder.CreateRuleRequest{
		OffsetMin: body.OffsetMin,
		Channel:   body.Channel,
		Template:  body.Template,
	})
	if err != nil {
		return mapReminderError(c, err)
	}
	return created(c, rule)
}

// GET /reminder-rules
func (h *ReminderHandler) ListRules(c fiber.Ctx) error {
	actor, okA := middleware.ActorFromFiber(c)
	if !okA {
		return unauthenticated(c)
	}

	rules, err := h.svc.ListRules(c.Context(), actor)
	if err != nil {
		return mapReminderError(c, err)
	}
	return ok(c, rules)
}

// PATCH /reminder-rules/:id
func (h *ReminderHandler) UpdateRule(c fiber.Ctx) error {
	actor, okA := middleware.ActorFromFiber(c)
	if !okA {
		return unauthenticated(c)
	}

	ruleID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid rule id")
	}

	var body struct {
		OffsetMin *int    `json:"offset_min"`
		Channel   *string `json:"channel"`
		Template  *string `json:"template"`
		IsActive  *bool   `json:"is_active"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	rule, err := h.svc.UpdateRule(c.Context(), actor, ruleID, reminder.UpdateRuleRequest{
		OffsetMin: body.OffsetMin,
		Channel:   body.Channel,
		Template:  body.Template,
		IsActive:  body.IsActive,
	})
	if err != nil {
		return mapReminderError(c, err)
	}
	return ok(c, rule)
}

// DELETE /reminder-rules/:id
func (h *ReminderHandler) DeleteRule(c fiber.Ctx) error {
	actor, okA := middleware.ActorFromFiber(c)
	if !okA {
		return unauthenticated(c)
	}

	ruleID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid rule id")
	}

	if err := h.svc.DeleteRule(c.Context(), actor, ruleID); err != nil {
		return mapReminderError(c, err)
	}
	return noContent(c)
}

// ---------------------------------------------------------------------------
// Reminders
// ---------------------------------------------------------------------------

// POST /appointments/:id/reminders
func (h *ReminderHandler) Generate(c fiber.Ctx) error {
	actor, okA := middleware.ActorFromFiber(c)
	if !okA {
		return unauthenticated(c)
	}

	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	reminders, err := h.svc.Generate(c.Context(), actor, apptID)
	if err != nil {
		return mapReminderError(c, err)
	}
	return created(c, reminders)
}

// GET /reminders
func (h *ReminderHandler) List(c fiber.Ctx) error {
	actor, okA := middleware.ActorFromFiber(c)
	if !okA {
		return unauthenticated(c)
	}

	var q struct {
		AppointmentID string `query:"appointment_id"`
		Status        string `query:"status"`
		Page          int    `query:"page"`
		PerPage       int    `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	page, perPage := normPage(q.Page, q.PerPage)
	req := reminder.ListRequest{Page: page, PerPage: perPage}
	if q.AppointmentID != "" {
		id, err := uuid.Parse(q.AppointmentID)
		if err != nil {
			return badRequest(c, "invalid appointment_id")
		}
		req.AppointmentID = &id
	}
	if q.Status != "" {
		req.Status = &q.Status
	}

	reminders, total, err := h.svc.List(c.Context(), actor, req)
	if err != nil {
		return mapReminderError(c, err)
	}
	return paged(c, reminders, total, page, perPage)
}

// POST /reminders/:id/sent
func (h *ReminderHandler) MarkSent(c fiber.Ctx) error {
	actor, okA := middleware.ActorFromFiber(c)
	if !okA {
		return unauthenticated(c)
	}

	reminderID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid reminder id")
	}

	r, err := h.svc.MarkSent(c.Context(), actor, reminderID)
	if err != nil {
		return mapReminderError(c, err)
	}
	return ok(c, r)
}

// POST /reminders/:id/failed
func (h *ReminderHandler) MarkFailed(c fiber.Ctx) error {
	actor, okA := middleware.ActorFromFiber(c)
	if !okA {
		return unauthenticated(c)
	}

	reminderID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid reminder id")
	}

	var body struct {
		Error string `json:"error"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	r, err := h.svc.MarkFailed(c.Context(), actor, reminderID, body.Error)
	if err != nil {
		return mapReminderError(c, err)
	}
	return ok(c, r)
}

// POST /reminders/:id/cancel
func (h *ReminderHandler) Cancel(c fiber.Ctx) error {
	actor, okA := middleware.ActorFromFiber(c)
	if !okA {
		return unauthenticated(c)
	}

	reminderID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid reminder id")
	}

	r, err := h.svc.Cancel(c.Context(), actor, reminderID)
	if err != nil {
		return mapReminderError(c, err)
	}
	return ok(c, r)
}
