package schedule

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/medorahq/medora_backend/internal/repo"
	entdoctor "github.com/medorahq/medora_backend/internal/repo/doctor"
	entslot "github.com/medorahq/medora_backend/internal/repo/weeklyslot"
	"github.com/medorahq/medora_backend/internal/service/audit"
	"github.com/medorahq/medora_backend/pkg/authorize"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateSlotRequest struct {
	DoctorID    uuid.UUID
	Weekday     int8 // 1 = Monday .. 7 = Sunday
	StartTime   string
	EndTime     string
	DurationMin *int
}

type UpdateSlotRequest struct {
	Weekday     *int8
	StartTime   *string
	EndTime     *string
	DurationMin *int
	IsActive    *bool
}

// BulkResult reports what a best-effort bulk creation achieved: created
// carries the slots that went through, Errors one message per failed item in
// input order.
type BulkResult struct {
	Created []*repo.WeeklySlot
	Errors  []string
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	List(ctx context.Context, actor authorize.Actor, doctorID uuid.UUID) ([]*repo.WeeklySlot, error)
	GetByID(ctx context.Context, actor authorize.Actor, slotID uuid.UUID) (*repo.WeeklySlot, error)
	Create(ctx context.Context, actor authorize.Actor, req CreateSlotRequest) (*repo.WeeklySlot, error)
	BulkCreate(ctx context.Context, actor authorize.Actor, reqs []CreateSlotRequest) (*BulkResult, error)
	Update(ctx context.Context, actor authorize.Actor, slotID uuid.UUID, req UpdateSlotRequest) (*repo.WeeklySlot, error)
	Delete(ctx context.Context, actor authorize.Actor, slotID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type scheduleService struct {
	db    *repo.Client
	audit audit.Recorder
}

func New(db *repo.Client, rec audit.Recorder) Service {
	return &scheduleService{db: db, audit: rec}
}

func (s *scheduleService) List(ctx context.Context, actor authorize.Actor, doctorID uuid.UUID) ([]*repo.WeeklySlot, error) {
	if err := authorize.Authorize(actor, authorize.PermWeeklySlotList, authorize.Target{ClinicID: actor.ClinicID}); err != nil {
		return nil, err
	}

	doctorID = listDoctorID(actor, doctorID)

	slots, err := s.db.WeeklySlot.Query().
		Where(
			entslot.ClinicID(actor.ClinicID),
			entslot.DoctorID(doctorID),
		).
		Order(entslot.ByWeekday(), entslot.ByStartTime()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list weekly slots: %w", err)
	}
	return slots, nil
}

func (s *scheduleService) GetByID(ctx context.Context, actor authorize.Actor, slotID uuid.UUID) (*repo.WeeklySlot, error) {
	return s.load(ctx, actor, slotID, authorize.PermWeeklySlotRead)
}

func (s *scheduleService) Create(ctx context.Context, actor authorize.Actor, req CreateSlotRequest) (*repo.WeeklySlot, error) {
	if err := authorize.Authorize(actor, authorize.PermWeeklySlotCreate, authorize.Target{
		ClinicID: actor.ClinicID,
		DoctorID: req.DoctorID,
	}); err != nil {
		return nil, err
	}

	if err := validateSpec(req); err != nil {
		return nil, err
	}

	ok, err := s.db.Doctor.Query().
		Where(entdoctor.ID(req.DoctorID), entdoctor.ClinicID(actor.ClinicID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check doctor: %w", err)
	}
	if !ok {
		return nil, ErrDoctorNotFound
	}

	if err := s.checkCollision(ctx, req.DoctorID, req.Weekday, req.StartTime, req.EndTime, nil); err != nil {
		return nil, err
	}

	c := s.db.WeeklySlot.Create().
		SetClinicID(actor.ClinicID).
		SetDoctorID(req.DoctorID).
		SetWeekday(req.Weekday).
		SetStartTime(req.StartTime).
		SetEndTime(req.EndTime)
	if req.DurationMin != nil {
		c = c.SetDurationMin(*req.DurationMin)
	}

	slot, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create weekly slot: %w", err)
	}

	s.audit.Record(ctx, audit.Entry{
		ClinicID: actor.ClinicID,
		ActorID:  &actor.UserID,
		DoctorID: &slot.DoctorID,
		Action:   "weekly_slot.create",
		Entity:   "weekly_slot",
		EntityID: &slot.ID,
		Metadata: map[string]any{
			"doctor_id": req.DoctorID,
			"weekday":   req.Weekday,
			"start":     req.StartTime,
			"end":       req.EndTime,
		},
	})
	return slot, nil
}

// BulkCreate processes each spec independently. A failed item is recorded and
// skipped, never aborting the batch; callers compare len(Created) against
// len(reqs) to detect partial failure.
func (s *scheduleService) BulkCreate(ctx context.Context, actor authorize.Actor, reqs []CreateSlotRequest) (*BulkResult, error) {
	if err := authorize.Authorize(actor, authorize.PermWeeklySlotCreate, authorize.Target{ClinicID: actor.ClinicID}); err != nil {
		return nil, err
	}

	res := &BulkResult{}
	for i, req := range reqs {
		slot, err := s.Create(ctx, actor, req)
		if err != nil {
			res.Errors = append(res.Errors, fmt.Sprintf("item %d: %v", i, err))
			continue
		}
		res.Created = append(res.Created, slot)
	}

	s.audit.Record(ctx, audit.Entry{
		ClinicID: actor.ClinicID,
		ActorID:  &actor.UserID,
		Action:   "weekly_slot.bulk_create",
		Entity:   "weekly_slot",
		Metadata: map[string]any{
			"requested": len(reqs),
			"created":   len(res.Created),
			"errors":    res.Errors,
		},
	})
	return res, nil
}

func (s *scheduleService) Update(ctx context.Context, actor authorize.Actor, slotID uuid.UUID, req UpdateSlotRequest) (*repo.WeeklySlot, error) {
	slot, err := s.load(ctx, actor, slotID, authorize.PermWeeklySlotUpdate)
	if err != nil {
		return nil, err
	}

	weekday := slot.Weekday
	start := slot.StartTime
	end := slot.EndTime
	if req.Weekday != nil {
		weekday = *req.Weekday
	}
	if req.StartTime != nil {
		start = *req.StartTime
	}
	if req.EndTime != nil {
		end = *req.EndTime
	}

	if weekday < 1 || weekday > 7 {
		return nil, ErrInvalidWeekday
	}
	if !validTimeOfDay(start) || !validTimeOfDay(end) {
		return nil, ErrInvalidTime
	}
	if start >= end {
		return nil, ErrInvalidRange
	}

	windowChanged := weekday != slot.Weekday || start != slot.StartTime || end != slot.EndTime
	if windowChanged {
		if err := s.checkCollision(ctx, slot.DoctorID, weekday, start, end, &slot.ID); err != nil {
			return nil, err
		}
	}

	upd := s.db.WeeklySlot.UpdateOneID(slot.ID).
		SetWeekday(weekday).
		SetStartTime(start).
		SetEndTime(end)
	if req.DurationMin != nil {
		upd = upd.SetDurationMin(*req.DurationMin)
	}
	if req.IsActive != nil {
		upd = upd.SetIsActive(*req.IsActive)
	}

	slot, err = upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update weekly slot: %w", err)
	}

	s.audit.Record(ctx, audit.Entry{
		ClinicID: actor.ClinicID,
		ActorID:  &actor.UserID,
		DoctorID: &slot.DoctorID,
		Action:   "weekly_slot.update",
		Entity:   "weekly_slot",
		EntityID: &slot.ID,
		Metadata: map[string]any{"weekday": weekday, "start": start, "end": end},
	})
	return slot, nil
}

func (s *scheduleService) Delete(ctx context.Context, actor authorize.Actor, slotID uuid.UUID) error {
	slot, err := s.load(ctx, actor, slotID, authorize.PermWeeklySlotDelete)
	if err != nil {
		return err
	}

	if err := s.db.WeeklySlot.DeleteOne(slot).Exec(ctx); err != nil {
		return fmt.Errorf("delete weekly slot: %w", err)
	}

	s.audit.Record(ctx, audit.Entry{
		ClinicID: actor.ClinicID,
		ActorID:  &actor.UserID,
		DoctorID: &slot.DoctorID,
		Action:   "weekly_slot.delete",
		Entity:   "weekly_slot",
		EntityID: &slot.ID,
		Metadata: map[string]any{
			"doctor_id": slot.DoctorID,
			"weekday":   slot.Weekday,
			"start":     slot.StartTime,
			"end":       slot.EndTime,
		},
	})
	return nil
}

// ---------------------------------------------------------------------------
// Internals
// ---------------------------------------------------------------------------

func (s *scheduleService) load(ctx context.Context, actor authorize.Actor, slotID uuid.UUID, perm authorize.Permission) (*repo.WeeklySlot, error) {
	slot, err := s.db.WeeklySlot.Query().
		Where(entslot.ID(slotID), entslot.ClinicID(actor.ClinicID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get weekly slot: %w", err)
	}
	if err := authorize.Authorize(actor, perm, authorize.Target{
		ClinicID: slot.ClinicID,
		DoctorID: slot.DoctorID,
	}); err != nil {
		return nil, err
	}
	return slot, nil
}

// listDoctorID pins doctor callers to their own availability; other roles
// may list any doctor in the clinic.
func listDoctorID(actor authorize.Actor, requested uuid.UUID) uuid.UUID {
	if actor.Role == authorize.RoleDoctor {
		return actor.ProfileID
	}
	return requested
}

func validateSpec(req CreateSlotRequest) error {
	if req.Weekday < 1 || req.Weekday > 7 {
		return ErrInvalidWeekday
	}
	if !validTimeOfDay(req.StartTime) || !validTimeOfDay(req.EndTime) {
		return ErrInvalidTime
	}
	if req.StartTime >= req.EndTime {
		return ErrInvalidRange
	}
	return nil
}

// checkCollision rejects an exact duplicate before looking for overlaps so
// the two cases surface as distinct errors. Only active slots of the same
// doctor and weekday participate.
func (s *scheduleService) checkCollision(ctx context.Context, doctorID uuid.UUID, weekday int8, start, end string, excludeID *uuid.UUID) error {
	dup := s.db.WeeklySlot.Query().
		Where(
			entslot.DoctorID(doctorID),
			entslot.Weekday(weekday),
			entslot.IsActive(true),
			entslot.StartTime(start),
			entslot.EndTime(end),
		)
	if excludeID != nil {
		dup = dup.Where(entslot.IDNEQ(*excludeID))
	}
	exists, err := dup.Exist(ctx)
	if err != nil {
		return fmt.Errorf("check duplicate slot: %w", err)
	}
	if exists {
		return ErrDuplicate
	}

	// Lexicographic comparison is chronological for zero-padded HH:MM.
	ov := s.db.WeeklySlot.Query().
		Where(
			entslot.DoctorID(doctorID),
			entslot.Weekday(weekday),
			entslot.IsActive(true),
			entslot.StartTimeLT(end),
			entslot.EndTimeGT(start),
		)
	if excludeID != nil {
		ov = ov.Where(entslot.IDNEQ(*excludeID))
	}
	exists, err = ov.Exist(ctx)
	if err != nil {
		return fmt.Errorf("check slot overlap: %w", err)
	}
	if exists {
		return ErrOverlap
	}
	return nil
}
