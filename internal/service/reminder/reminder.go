package reminder

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/medorahq/medora_backend/internal/repo"
	entappt "github.com/medorahq/medora_backend/internal/repo/appointment"
	entrem "github.com/medorahq/medora_backend/internal/repo/reminder"
	entrule "github.com/medorahq/medora_backend/internal/repo/reminderrule"
	"github.com/medorahq/medora_backend/internal/service/audit"
	"github.com/medorahq/medora_backend/pkg/authorize"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRuleRequest struct {
	OffsetMin int
	Channel   string // SMS | EMAIL
	Template  *string
}

type UpdateRuleRequest struct {
	OffsetMin *int
	Channel   *string
	Template  *string
	IsActive  *bool
}

type ListRequest struct {
	AppointmentID *uuid.UUID
	Status        *string
	Page          int
	PerPage       int
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	// Rule management
	CreateRule(ctx context.Context, actor authorize.Actor, req CreateRuleRequest) (*repo.ReminderRule, error)
	ListRules(ctx context.Context, actor authorize.Actor) ([]*repo.ReminderRule, error)
	UpdateRule(ctx context.Context, actor authorize.Actor, ruleID uuid.UUID, req UpdateRuleRequest) (*repo.ReminderRule, error)
	DeleteRule(ctx context.Context, actor authorize.Actor, ruleID uuid.UUID) error

	// Reminder lifecycle
	Generate(ctx context.Context, actor authorize.Actor, appointmentID uuid.UUID) ([]*repo.Reminder, error)
	List(ctx context.Context, actor authorize.Actor, req ListRequest) ([]*repo.Reminder, int, error)
	MarkSent(ctx context.Context, actor authorize.Actor, reminderID uuid.UUID) (*repo.Reminder, error)
	MarkFailed(ctx context.Context, actor authorize.Actor, reminderID uuid.UUID, errMsg string) (*repo.Reminder, error)
	Cancel(ctx context.Context, actor authorize.Actor, reminderID uuid.UUID) (*repo.Reminder, error)

	// Worker-facing, no actor: the due poller runs outside a request.
	ListDue(ctx context.Context, now time.Time, limit int) ([]*repo.Reminder, error)
	RecordSent(ctx context.Context, reminderID uuid.UUID) error
	RecordFailed(ctx context.Context, reminderID uuid.UUID, errMsg string) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type reminderService struct {
	db    *repo.Client
	audit audit.Recorder
}

func New(db *repo.Client, rec audit.Recorder) Service {
	return &reminderService{db: db, audit: rec}
}

// ---------------------------------------------------------------------------
// Rules
// ---------------------------------------------------------------------------

func (s *reminderService) CreateRule(ctx context.Context, actor authorize.Actor, req CreateRuleRequest) (*repo.ReminderRule, error) {
	if err := authorize.Authorize(actor, authorize.PermReminderRuleCreate, authorize.Target{ClinicID: actor.ClinicID}); err != nil {
		return nil, err
	}
	if req.OffsetMin <= 0 {
		return nil, ErrInvalidOffset
	}
	if !validChannel(req.Channel) {
		return nil, ErrInvalidChannel
	}

	c := s.db.ReminderRule.Create().
		SetClinicID(actor.ClinicID).
		SetOffsetMin(req.OffsetMin).
		SetChannel(entrule.Channel(req.Channel))
	if req.Template != nil {
		c = c.SetNillableTemplate(req.Template)
	}

	rule, err := c.Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrDuplicateRule
		}
		return nil, fmt.Errorf("create reminder rule: %w", err)
	}

	s.audit.Record(ctx, audit.Entry{
		ClinicID: actor.ClinicID,
		ActorID:  &actor.UserID,
		Action:   "reminder_rule.create",
		Entity:   "reminder_rule",
		EntityID: &rule.ID,
		Metadata: map[string]any{"offset_min": req.OffsetMin, "channel": req.Channel},
	})
	return rule, nil
}

func (s *reminderService) ListRules(ctx context.Context, actor authorize.Actor) ([]*repo.ReminderRule, error) {
	if err := authorize.Authorize(actor, authorize.PermReminderRuleList, authorize.Target{ClinicID: actor.ClinicID}); err != nil {
		return nil, err
	}

	rules, err := s.db.ReminderRule.Query().
		Where(entrule.ClinicID(actor.ClinicID)).
		Order(entrule.ByOffsetMin(sql.OrderDesc()), entrule.ByChannel()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list reminder rules: %w", err)
	}
	return rules, nil
}

func (s *reminderService) UpdateRule(ctx context.Context, actor authorize.Actor, ruleID uuid.UUID, req UpdateRuleRequest) (*repo.ReminderRule, error) {
	if err := authorize.Authorize(actor, authorize.PermReminderRuleUpdate, authorize.Target{ClinicID: actor.ClinicID}); err != nil {
		return nil, err
	}

	rule, err := s.loadRule(ctx, actor, ruleID)
	if err != nil {
		return nil, err
	}

	upd := s.db.ReminderRule.UpdateOneID(rule.ID)
	if req.OffsetMin != nil {
		if *req.OffsetMin <= 0 {
			return nil, ErrInvalidOffset
		}
		upd = upd.SetOffsetMin(*req.OffsetMin)
	}
	if req.Channel != nil {
		if !validChannel(*req.Channel) {
			return nil, ErrInvalidChannel
		}
		upd = upd.SetChannel(entrule.Channel(*req.Channel))
	}
	if req.Template != nil {
		upd = upd.SetNillableTemplate(req.Template)
	}
	if req.IsActive != nil {
		upd = upd.SetIsActive(*req.IsActive)
	}

	rule, err = upd.Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrDuplicateRule
		}
		return nil, fmt.Errorf("update reminder rule: %w", err)
	}

	s.audit.Record(ctx, audit.Entry{
		ClinicID: actor.ClinicID,
		ActorID:  &actor.UserID,
		Action:   "reminder_rule.update",
		Entity:   "reminder_rule",
		EntityID: &rule.ID,
	})
	return rule, nil
}

func (s *reminderService) DeleteRule(ctx context.Context, actor authorize.Actor, ruleID uuid.UUID) error {
	if err := authorize.Authorize(actor, authorize.PermReminderRuleDelete, authorize.Target{ClinicID: actor.ClinicID}); err != nil {
		return err
	}

	rule, err := s.loadRule(ctx, actor, ruleID)
	if err != nil {
		return err
	}

	if err := s.db.ReminderRule.DeleteOne(rule).Exec(ctx); err != nil {
		return fmt.Errorf("delete reminder rule: %w", err)
	}

	s.audit.Record(ctx, audit.Entry{
		ClinicID: actor.ClinicID,
		ActorID:  &actor.UserID,
		Action:   "reminder_rule.delete",
		Entity:   "reminder_rule",
		EntityID: &rule.ID,
		Metadata: map[string]any{"offset_min": rule.OffsetMin, "channel": rule.Channel},
	})
	return nil
}

// ---------------------------------------------------------------------------
// Generation
// ---------------------------------------------------------------------------

// Generate creates the missing reminders for an appointment. Re-running after
// full generation returns an empty list, not an error.
func (s *reminderService) Generate(ctx context.Context, actor authorize.Actor, appointmentID uuid.UUID) ([]*repo.Reminder, error) {
	if err := authorize.Authorize(actor, authorize.PermReminderGenerate, authorize.Target{ClinicID: actor.ClinicID}); err != nil {
		return nil, err
	}

	appt, err := s.db.Appointment.Query().
		Where(entappt.ID(appointmentID), entappt.ClinicID(actor.ClinicID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("get appointment: %w", err)
	}

	now := time.Now()
	if !appt.StartTime.After(now) {
		return nil, ErrAppointmentInPast
	}

	rules, err := s.db.ReminderRule.Query().
		Where(entrule.ClinicID(actor.ClinicID), entrule.IsActive(true)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active rules: %w", err)
	}
	if len(rules) == 0 {
		return nil, ErrNoActiveRules
	}

	existingRows, err := s.db.Reminder.Query().
		Where(entrem.AppointmentID(appt.ID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list existing reminders: %w", err)
	}
	existing := make(map[uuid.UUID]bool, len(existingRows))
	for _, r := range existingRows {
		if r.RuleID != nil {
			existing[*r.RuleID] = true
		}
	}

	specs := make([]ruleSpec, len(rules))
	for i, r := range rules {
		specs[i] = ruleSpec{ID: r.ID, OffsetMin: r.OffsetMin, Channel: string(r.Channel)}
	}

	var created []*repo.Reminder
	for _, p := range plan(appt.StartTime, now, specs, existing) {
		rem, err := s.db.Reminder.Create().
			SetClinicID(actor.ClinicID).
			SetAppointmentID(appt.ID).
			SetRuleID(p.RuleID).
			SetChannel(entrem.Channel(p.Channel)).
			SetScheduledFor(p.ScheduledFor).
			Save(ctx)
		if err != nil {
			// A concurrent Generate won the (appointment, rule) slot.
			if repo.IsConstraintError(err) {
				continue
			}
			return nil, fmt.Errorf("create reminder: %w", err)
		}
		created = append(created, rem)
	}

	s.audit.Record(ctx, audit.Entry{
		ClinicID: actor.ClinicID,
		ActorID:  &actor.UserID,
		DoctorID: &appt.DoctorID,
		Action:   "reminder.generate",
		Entity:   "appointment",
		EntityID: &appt.ID,
		Metadata: map[string]any{"created": len(created)},
	})
	return created, nil
}

// ---------------------------------------------------------------------------
// Lifecycle
// ---------------------------------------------------------------------------

func (s *reminderService) List(ctx context.Context, actor authorize.Actor, req ListRequest) ([]*repo.Reminder, int, error) {
	if err := authorize.Authorize(actor, authorize.PermReminderList, authorize.Target{ClinicID: actor.ClinicID}); err != nil {
		return nil, 0, err
	}

	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.Reminder.Query().
		Where(entrem.ClinicID(actor.ClinicID))
	if req.AppointmentID != nil {
		q = q.Where(entrem.AppointmentID(*req.AppointmentID))
	}
	if req.Status != nil {
		q = q.Where(entrem.StatusEQ(entrem.Status(*req.Status)))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("count reminders: %w", err)
	}

	rems, err := q.
		Order(entrem.ByScheduledFor()).
		Offset(offset).
		Limit(req.PerPage).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("list reminders: %w", err)
	}
	return rems, total, nil
}

func (s *reminderService) MarkSent(ctx context.Context, actor authorize.Actor, reminderID uuid.UUID) (*repo.Reminder, error) {
	if err := authorize.Authorize(actor, authorize.PermReminderGenerate, authorize.Target{ClinicID: actor.ClinicID}); err != nil {
		return nil, err
	}
	rem, err := s.loadScheduled(ctx, actor.ClinicID, reminderID)
	if err != nil {
		return nil, err
	}
	return s.markSent(ctx, rem)
}

func (s *reminderService) MarkFailed(ctx context.Context, actor authorize.Actor, reminderID uuid.UUID, errMsg string) (*repo.Reminder, error) {
	if err := authorize.Authorize(actor, authorize.PermReminderGenerate, authorize.Target{ClinicID: actor.ClinicID}); err != nil {
		return nil, err
	}
	if errMsg == "" {
		return nil, ErrMissingError
	}
	rem, err := s.loadScheduled(ctx, actor.ClinicID, reminderID)
	if err != nil {
		return nil, err
	}
	return s.markFailed(ctx, rem, errMsg)
}

func (s *reminderService) Cancel(ctx context.Context, actor authorize.Actor, reminderID uuid.UUID) (*repo.Reminder, error) {
	if err := authorize.Authorize(actor, authorize.PermReminderCancel, authorize.Target{ClinicID: actor.ClinicID}); err != nil {
		return nil, err
	}
	rem, err := s.loadScheduled(ctx, actor.ClinicID, reminderID)
	if err != nil {
		return nil, err
	}

	rem, err = s.db.Reminder.UpdateOneID(rem.ID).
		SetStatus("SKIPPED").
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("cancel reminder: %w", err)
	}

	s.audit.Record(ctx, audit.Entry{
		ClinicID: actor.ClinicID,
		ActorID:  &actor.UserID,
		Action:   "reminder.cancel",
		Entity:   "reminder",
		EntityID: &rem.ID,
	})
	return rem, nil
}

// ---------------------------------------------------------------------------
// Worker-facing
// ---------------------------------------------------------------------------

func (s *reminderService) ListDue(ctx context.Context, now time.Time, limit int) ([]*repo.Reminder, error) {
	if limit <= 0 {
		limit = 100
	}
	rems, err := s.db.Reminder.Query().
		Where(
			entrem.StatusEQ("SCHEDULED"),
			entrem.ScheduledForLTE(now),
		).
		Order(entrem.ByScheduledFor()).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list due reminders: %w", err)
	}
	return rems, nil
}

func (s *reminderService) RecordSent(ctx context.Context, reminderID uuid.UUID) error {
	err := s.db.Reminder.Update().
		Where(entrem.ID(reminderID), entrem.StatusEQ("SCHEDULED")).
		SetStatus("SENT").
		SetSentAt(time.Now()).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("record sent: %w", err)
	}
	return nil
}

func (s *reminderService) RecordFailed(ctx context.Context, reminderID uuid.UUID, errMsg string) error {
	if errMsg == "" {
		return ErrMissingError
	}
	err := s.db.Reminder.Update().
		Where(entrem.ID(reminderID), entrem.StatusEQ("SCHEDULED")).
		SetStatus("FAILED").
		SetError(errMsg).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("record failed: %w", err)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Internals
// ---------------------------------------------------------------------------

func (s *reminderService) loadRule(ctx context.Context, actor authorize.Actor, ruleID uuid.UUID) (*repo.ReminderRule, error) {
	rule, err := s.db.ReminderRule.Query().
		Where(entrule.ID(ruleID), entrule.ClinicID(actor.ClinicID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrRuleNotFound
		}
		return nil, fmt.Errorf("get reminder rule: %w", err)
	}
	return rule, nil
}

func (s *reminderService) loadScheduled(ctx context.Context, clinicID, reminderID uuid.UUID) (*repo.Reminder, error) {
	rem, err := s.db.Reminder.Query().
		Where(entrem.ID(reminderID), entrem.ClinicID(clinicID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get reminder: %w", err)
	}
	if rem.Status != "SCHEDULED" {
		return nil, ErrNotScheduled
	}
	return rem, nil
}

func (s *reminderService) markSent(ctx context.Context, rem *repo.Reminder) (*repo.Reminder, error) {
	rem, err := s.db.Reminder.UpdateOneID(rem.ID).
		SetStatus("SENT").
		SetSentAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("mark sent: %w", err)
	}
	return rem, nil
}

func (s *reminderService) markFailed(ctx context.Context, rem *repo.Reminder, errMsg string) (*repo.Reminder, error) {
	rem, err := s.db.Reminder.UpdateOneID(rem.ID).
		SetStatus("FAILED").
		SetError(errMsg).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("mark failed: %w", err)
	}
	return rem, nil
}

func validChannel(c string) bool {
	return c == "SMS" || c == "EMAIL"
}
