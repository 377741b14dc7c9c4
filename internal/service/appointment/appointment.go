package appointment

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/medorahq/medora_backend/internal/events"
	"github.com/medorahq/medora_backend/internal/repo"
	entappt "github.com/medorahq/medora_backend/internal/repo/appointment"
	entdoctor "github.com/medorahq/medora_backend/internal/repo/doctor"
	entpatient "github.com/medorahq/medora_backend/internal/repo/patient"
	"github.com/medorahq/medora_backend/internal/service/audit"
	"github.com/medorahq/medora_backend/pkg/authorize"
	"github.com/medorahq/medora_backend/pkg/database"
)

// Statuses that no longer block a doctor's calendar.
var nonBlockingStatuses = []string{"CANCELLED", "NOSHOW"}

// transitions maps each action to the statuses it may start from.
var transitions = map[string][]string{
	"CONFIRMED": {"PENDING"},
	"COMPLETED": {"CONFIRMED"},
	"CANCELLED": {"PENDING", "CONFIRMED"},
	"NOSHOW":    {"CONFIRMED"},
}

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type ListRequest struct {
	DoctorID  *uuid.UUID
	PatientID *uuid.UUID
	Status    *string
	From      *time.Time
	To        *time.Time
	Page      int
	PerPage   int
}

type CreateRequest struct {
	DoctorID  uuid.UUID
	PatientID uuid.UUID
	StartTime time.Time
	EndTime   time.Time
	Status    *string // defaults to PENDING
	Source    *string
	Reason    *string
	Notes     *string
}

type UpdateRequest struct {
	StartTime *time.Time
	EndTime   *time.Time
	Reason    *string
	Notes     *string
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	List(ctx context.Context, actor authorize.Actor, req ListRequest) ([]*repo.Appointment, int, error)
	GetByID(ctx context.Context, actor authorize.Actor, apptID uuid.UUID) (*repo.Appointment, error)
	Create(ctx context.Context, actor authorize.Actor, req CreateRequest) (*repo.Appointment, error)
	Update(ctx context.Context, actor authorize.Actor, apptID uuid.UUID, req UpdateRequest) (*repo.Appointment, error)
	Confirm(ctx context.Context, actor authorize.Actor, apptID uuid.UUID) (*repo.Appointment, error)
	Complete(ctx context.Context, actor authorize.Actor, apptID uuid.UUID) (*repo.Appointment, error)
	Cancel(ctx context.Context, actor authorize.Actor, apptID uuid.UUID, reason *string) (*repo.Appointment, error)
	MarkNoShow(ctx context.Context, actor authorize.Actor, apptID uuid.UUID) (*repo.Appointment, error)

	// HasConflict reports whether [start, end) collides with a blocking
	// appointment of the doctor, ignoring excludeID when given.
	HasConflict(ctx context.Context, doctorID uuid.UUID, start, end time.Time, excludeID *uuid.UUID) (bool, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type appointmentService struct {
	db     *repo.Client
	locker *database.AdvisoryLocker
	audit  audit.Recorder
	events *events.Publisher
}

func New(db *repo.Client, locker *database.AdvisoryLocker, rec audit.Recorder, pub *events.Publisher) Service {
	return &appointmentService{db: db, locker: locker, audit: rec, events: pub}
}

func (s *appointmentService) List(ctx context.Context, actor authorize.Actor, req ListRequest) ([]*repo.Appointment, int, error) {
	if err := authorize.Authorize(actor, authorize.PermAppointmentList, authorize.Target{ClinicID: actor.ClinicID}); err != nil {
		return nil, 0, err
	}

	// Doctors and patients only see their own calendar.
	switch actor.Role {
	case authorize.RoleDoctor:
		req.DoctorID = &actor.ProfileID
	case authorize.RolePatient:
		req.PatientID = &actor.ProfileID
	}

	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.Appointment.Query().
		Where(entappt.ClinicID(actor.ClinicID))

	if req.DoctorID != nil {
		q = q.Where(entappt.DoctorID(*req.DoctorID))
	}
	if req.PatientID != nil {
		q = q.Where(entappt.PatientID(*req.PatientID))
	}
	if req.Status != nil {
		if !validStatus(*req.Status) {
			return nil, 0, ErrInvalidStatus
		}
		q = q.Where(entappt.StatusEQ(entappt.Status(*req.Status)))
	}
	if req.From != nil {
		q = q.Where(entappt.StartTimeGTE(*req.From))
	}
	if req.To != nil {
		q = q.Where(entappt.StartTimeLT(*req.To))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("count appointments: %w", err)
	}

	appts, err := q.
		Order(entappt.ByStartTime(sql.OrderDesc())).
		Offset(offset).
		Limit(req.PerPage).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("list appointments: %w", err)
	}
	return appts, total, nil
}

func (s *appointmentService) GetByID(ctx context.Context, actor authorize.Actor, apptID uuid.UUID) (*repo.Appointment, error) {
	appt, err := s.db.Appointment.Query().
		Where(entappt.ID(apptID), entappt.ClinicID(actor.ClinicID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get appointment: %w", err)
	}

	if err := authorize.Authorize(actor, authorize.PermAppointmentRead, s.target(appt)); err != nil {
		return nil, err
	}
	return appt, nil
}

func (s *appointmentService) Create(ctx context.Context, actor authorize.Actor, req CreateRequest) (*repo.Appointment, error) {
	if err := authorize.Authorize(actor, authorize.PermAppointmentCreate, authorize.Target{
		ClinicID: actor.ClinicID,
		DoctorID: req.DoctorID,
	}); err != nil {
		return nil, err
	}

	if !req.StartTime.Before(req.EndTime) {
		return nil, ErrInvalidInterval
	}
	if !req.StartTime.After(time.Now()) {
		return nil, ErrStartInPast
	}
	if req.Status != nil && !validStatus(*req.Status) {
		return nil, ErrInvalidStatus
	}

	// Both parties must be in the caller's clinic.
	ok, err := s.db.Doctor.Query().
		Where(entdoctor.ID(req.DoctorID), entdoctor.ClinicID(actor.ClinicID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check doctor: %w", err)
	}
	if !ok {
		return nil, ErrDoctorNotFound
	}
	ok, err = s.db.Patient.Query().
		Where(entpatient.ID(req.PatientID), entpatient.ClinicID(actor.ClinicID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check patient: %w", err)
	}
	if !ok {
		return nil, ErrPatientNotFound
	}

	// The conflict check and the insert run under a per-doctor advisory
	// lock so two concurrent bookings cannot both pass the check.
	var appt *repo.Appointment
	err = s.locker.WithLock(ctx, database.LockKey(req.DoctorID), func(ctx context.Context) error {
		conflict, err := s.HasConflict(ctx, req.DoctorID, req.StartTime, req.EndTime, nil)
		if err != nil {
			return err
		}
		if conflict {
			return ErrConflict
		}

		c := s.db.Appointment.Create().
			SetClinicID(actor.ClinicID).
			SetDoctorID(req.DoctorID).
			SetPatientID(req.PatientID).
			SetStartTime(req.StartTime).
			SetEndTime(req.EndTime).
			SetCreatedByID(actor.UserID)

		if req.Status != nil {
			c = c.SetStatus(entappt.Status(*req.Status))
		}
		if req.Source != nil {
			c = c.SetSource(*req.Source)
		}
		if req.Reason != nil {
			c = c.SetNillableReason(req.Reason)
		}
		if req.Notes != nil {
			c = c.SetNillableNotes(req.Notes)
		}

		appt, err = c.Save(ctx)
		if err != nil {
			return fmt.Errorf("create appointment: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, audit.Entry{
		ClinicID: actor.ClinicID,
		ActorID:  &actor.UserID,
		DoctorID: &appt.DoctorID,
		Action:   "appointment.create",
		Entity:   "appointment",
		EntityID: &appt.ID,
		Metadata: map[string]any{
			"doctor_id":  req.DoctorID,
			"patient_id": req.PatientID,
			"start_time": req.StartTime,
			"end_time":   req.EndTime,
		},
	})
	s.events.Publish(events.AppointmentCreated, actor.ClinicID, appt.ID)

	return appt, nil
}

func (s *appointmentService) Update(ctx context.Context, actor authorize.Actor, apptID uuid.UUID, req UpdateRequest) (*repo.Appointment, error) {
	appt, err := s.load(ctx, actor, apptID, authorize.PermAppointmentUpdate)
	if err != nil {
		return nil, err
	}

	newStart := appt.StartTime
	newEnd := appt.EndTime
	if req.StartTime != nil {
		newStart = *req.StartTime
	}
	if req.EndTime != nil {
		newEnd = *req.EndTime
	}
	timesChanged := !newStart.Equal(appt.StartTime) || !newEnd.Equal(appt.EndTime)

	if timesChanged {
		if !newStart.Before(newEnd) {
			return nil, ErrInvalidInterval
		}
		if !newStart.After(time.Now()) {
			return nil, ErrStartInPast
		}
	}

	apply := func(ctx context.Context) error {
		if timesChanged {
			conflict, err := s.HasConflict(ctx, appt.DoctorID, newStart, newEnd, &appt.ID)
			if err != nil {
				return err
			}
			if conflict {
				return ErrConflict
			}
		}

		upd := s.db.Appointment.UpdateOneID(appt.ID).
			SetStartTime(newStart).
			SetEndTime(newEnd)
		if req.Reason != nil {
			upd = upd.SetNillableReason(req.Reason)
		}
		if req.Notes != nil {
			upd = upd.SetNillableNotes(req.Notes)
		}

		appt, err = upd.Save(ctx)
		if err != nil {
			return fmt.Errorf("update appointment: %w", err)
		}
		return nil
	}

	if timesChanged {
		err = s.locker.WithLock(ctx, database.LockKey(appt.DoctorID), apply)
	} else {
		err = apply(ctx)
	}
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, audit.Entry{
		ClinicID: actor.ClinicID,
		ActorID:  &actor.UserID,
		DoctorID: &appt.DoctorID,
		Action:   "appointment.update",
		Entity:   "appointment",
		EntityID: &appt.ID,
		Metadata: map[string]any{
			"start_time":    newStart,
			"end_time":      newEnd,
			"times_changed": timesChanged,
		},
	})

	return appt, nil
}

func (s *appointmentService) Confirm(ctx context.Context, actor authorize.Actor, apptID uuid.UUID) (*repo.Appointment, error) {
	return s.transition(ctx, actor, apptID, authorize.PermAppointmentConfirm, "CONFIRMED", events.AppointmentConfirmed, nil)
}

func (s *appointmentService) Complete(ctx context.Context, actor authorize.Actor, apptID uuid.UUID) (*repo.Appointment, error) {
	return s.transition(ctx, actor, apptID, authorize.PermAppointmentComplete, "COMPLETED", events.AppointmentCompleted, nil)
}

func (s *appointmentService) Cancel(ctx context.Context, actor authorize.Actor, apptID uuid.UUID, reason *string) (*repo.Appointment, error) {
	return s.transition(ctx, actor, apptID, authorize.PermAppointmentCancel, "CANCELLED", events.AppointmentCancelled, reason)
}

func (s *appointmentService) MarkNoShow(ctx context.Context, actor authorize.Actor, apptID uuid.UUID) (*repo.Appointment, error) {
	return s.transition(ctx, actor, apptID, authorize.PermAppointmentNoShow, "NOSHOW", events.AppointmentNoShow, nil)
}

func (s *appointmentService) HasConflict(ctx context.Context, doctorID uuid.UUID, start, end time.Time, excludeID *uuid.UUID) (bool, error) {
	// Half-open [start, end): rows touching at a boundary do not collide.
	q := s.db.Appointment.Query().
		Where(
			entappt.DoctorID(doctorID),
			entappt.StatusNotIn(nonBlockingStatus()...),
			entappt.StartTimeLT(end),
			entappt.EndTimeGT(start),
		)
	if excludeID != nil {
		q = q.Where(entappt.IDNEQ(*excludeID))
	}

	conflict, err := q.Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("check conflict: %w", err)
	}
	return conflict, nil
}

// ---------------------------------------------------------------------------
// Internals
// ---------------------------------------------------------------------------

func (s *appointmentService) load(ctx context.Context, actor authorize.Actor, apptID uuid.UUID, perm authorize.Permission) (*repo.Appointment, error) {
	appt, err := s.db.Appointment.Query().
		Where(entappt.ID(apptID), entappt.ClinicID(actor.ClinicID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get appointment: %w", err)
	}
	if err := authorize.Authorize(actor, perm, s.target(appt)); err != nil {
		return nil, err
	}
	return appt, nil
}

func (s *appointmentService) target(appt *repo.Appointment) authorize.Target {
	return authorize.Target{
		ClinicID:  appt.ClinicID,
		DoctorID:  appt.DoctorID,
		PatientID: appt.PatientID,
	}
}

func (s *appointmentService) transition(ctx context.Context, actor authorize.Actor, apptID uuid.UUID, perm authorize.Permission, to string, event string, reason *string) (*repo.Appointment, error) {
	appt, err := s.load(ctx, actor, apptID, perm)
	if err != nil {
		return nil, err
	}

	if !transitionAllowed(string(appt.Status), to) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrBadTransition, appt.Status, to)
	}

	now := time.Now()
	upd := s.db.Appointment.UpdateOneID(appt.ID).
		SetStatus(entappt.Status(to))

	switch to {
	case "CANCELLED":
		upd = upd.SetCancelledAt(now)
		if reason != nil {
			upd = upd.SetNillableReason(reason)
		}
	case "COMPLETED":
		upd = upd.SetCompletedAt(now)
	}

	appt, err = upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("transition appointment: %w", err)
	}

	s.audit.Record(ctx, audit.Entry{
		ClinicID: actor.ClinicID,
		ActorID:  &actor.UserID,
		DoctorID: &appt.DoctorID,
		Action:   "appointment." + actionName(to),
		Entity:   "appointment",
		EntityID: &appt.ID,
		Metadata: map[string]any{"status": to},
	})
	s.events.Publish(event, actor.ClinicID, appt.ID)

	return appt, nil
}

func transitionAllowed(from, to string) bool {
	for _, f := range transitions[to] {
		if f == from {
			return true
		}
	}
	return false
}

func validStatus(s string) bool {
	switch s {
	case "PENDING", "CONFIRMED", "CANCELLED", "NOSHOW", "COMPLETED":
		return true
	}
	return false
}

func actionName(status string) string {
	switch status {
	case "CONFIRMED":
		return "confirm"
	case "COMPLETED":
		return "complete"
	case "CANCELLED":
		return "cancel"
	case "NOSHOW":
		return "noshow"
	}
	return "update"
}

func nonBlockingStatus() []entappt.Status {
	out := make([]entappt.Status, len(nonBlockingStatuses))
	for i, s := range nonBlockingStatuses {
		out[i] = entappt.Status(s)
	}
	return out
}
