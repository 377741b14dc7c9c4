package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/medorahq/medora_backend/internal/api/http/middleware"
	"github.com/medorahq/medora_backend/internal/service/schedule"
)

type ScheduleHandler struct {
	svc schedule.Service
}

func NewScheduleHandler(svc schedule.Service) *ScheduleHandler {
	return &ScheduleHandler{svc: svc}
}

func mapScheduleError(c fiber.Ctx, err error) error {
	if resp, handled := accessError(c, err); handled {
		return resp
	}
	switch {
	case errors.Is(err, schedule.ErrNotFound), errors.Is(err, schedule.ErrDoctorNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, schedule.ErrDuplicate), errors.Is(err, schedule.ErrOverlap):
		return conflict(c, err.Error())
	case errors.Is(err, schedule.ErrInvalidWeekday),
		errors.Is(err, schedule.ErrInvalidTime),
		errors.Is(err, schedule.ErrInvalidRange):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

type slotBody struct {
	DoctorID    string `json:"doctor_id"`
	Weekday     int8   `json:"weekday"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	DurationMin *int   `json:"duration_min"`
}

func (b slotBody) toCreateRequest() (schedule.CreateSlotRequest, error) {
	doctorID, err := uuid.Parse(b.DoctorID)
	if err != nil {
		return schedule.CreateSlotRequest{}, err
	}
	return schedule.CreateSlotRequest{
		DoctorID:    doctorID,
		Weekday:     b.Weekday,
		StartTime:   b.StartTime,
		EndTime:     b.EndTime,
		DurationMin: b.DurationMin,
	}, nil
}

// GET /slots?doctor_id=...
func (h *ScheduleHandler) List(c fiber.Ctx) error {
	actor, okA := middleware.ActorFromFiber(c)
	if !okA {
		return unauthenticated(c)
	}

	doctorID, err := uuid.Parse(c.Query("doctor_id"))
	if err != nil {
		return badRequest(c, "doctor_id is required")
	}

	slots, err := h.svc.List(c.Context(), actor, doctorID)
	if err != nil {
		return mapScheduleError(c, err)
	}
	return ok(c, slots)
}

// GET /slots/:id
func (h *ScheduleHandler) GetByID(c fiber.Ctx) error {
	actor, okA := middleware.ActorFromFiber(c)
	if !okA {
		return unauthenticated(c)
	}

	slotID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid slot id")
	}

	slot, err := h.svc.GetByID(c.Context(), actor, slotID)
	if err != nil {
		return mapScheduleError(c, err)
	}
	return ok(c, slot)
}

// POST /slots
func (h *ScheduleHandler) Create(c fiber.Ctx) error {
	actor, okA := middleware.ActorFromFiber(c)
	if !okA {
		return unauthenticated(c)
	}

	var body slotBody
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	req, err := body.toCreateRequest()
	if err != nil {
		return badRequest(c, "invalid doctor_id")
	}

	slot, err := h.svc.Create(c.Context(), actor, req)
	if err != nil {
		return mapScheduleError(c, err)
	}
	return created(c, slot)
}

// POST /slots/bulk
func (h *ScheduleHandler) BulkCreate(c fiber.Ctx) error {
	actor, okA := middleware.ActorFromFiber(c)
	if !okA {
		return unauthenticated(c)
	}

	var body struct {
		Slots []slotBody `json:"slots"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if len(body.Slots) == 0 {
		return badRequest(c, "slots must not be empty")
	}

	reqs := make([]schedule.CreateSlotRequest, 0, len(body.Slots))
	for _, b := range body.Slots {
		req, err := b.toCreateRequest()
		if err != nil {
			return badRequest(c, "invalid doctor_id")
		}
		reqs = append(reqs, req)
	}

	res, err := h.svc.BulkCreate(c.Context(), actor, reqs)
	if err != nil {
		return mapScheduleError(c, err)
	}
	return created(c, fiber.Map{"created": res.Created, "errors": res.Errors})
}

// PATCH /slots/:id
func (h *ScheduleHandler) Update(c fiber.Ctx) error {
	actor, okA := middleware.ActorFromFiber(c)
	if !okA {
		return unauthenticated(c)
	}

	slotID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid slot id")
	}

	var body struct {
		Weekday     *int8   `json:"weekday"`
		StartTime   *string `json:"start_time"`
		EndTime     *string `json:"end_time"`
		DurationMin *int    `json:"duration_min"`
		IsActive    *bool   `json:"is_active"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	slot, err := h.svc.Update(c.Context(), actor, slotID, schedule.UpdateSlotRequest{
		Weekday:     body.Weekday,
		StartTime:   body.StartTime,
		EndTime:     body.EndTime,
		DurationMin: body.DurationMin,
		IsActive:    body.IsActive,
	})
	if err != nil {
		return mapScheduleError(c, err)
	}
	return ok(c, slot)
}

// DELETE /slots/:id
func (h *ScheduleHandler) Delete(c fiber.Ctx) error {
	actor, okA := middleware.ActorFromFiber(c)
	if !okA {
		return unauthenticated(c)
	}

	slotID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid slot id")
	}

	if err := h.svc.Delete(c.Context(), actor, slotID); err != nil {
		return mapScheduleError(c, err)
	}
	return noContent(c)
}
