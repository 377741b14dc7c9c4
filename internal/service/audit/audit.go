package audit

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/medorahq/medora_backend/internal/repo"
	entaudit "github.com/medorahq/medora_backend/internal/repo/auditlog"
	"github.com/medorahq/medora_backend/pkg/authorize"
)

// ---------------------------------------------------------------------------
// Recorder
// ---------------------------------------------------------------------------

// Entry is one audit trail record.
type Entry struct {
	ClinicID uuid.UUID
	ActorID  *uuid.UUID
	DoctorID *uuid.UUID // set when the mutation touches one doctor's data
	Action   string     // e.g. "appointment.cancel"
	Entity   string     // e.g. "appointment"
	EntityID *uuid.UUID
	Metadata map[string]any
}

// Recorder writes audit entries. Implementations must never fail the caller:
// a write failure is logged and swallowed.
type Recorder interface {
	Record(ctx context.Context, e Entry)
}

// Nop is a Recorder that discards every entry. Used in tests and tools that
// run without a database.
type Nop struct{}

func (Nop) Record(context.Context, Entry) {}

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type ListRequest struct {
	Entity   *string
	EntityID *uuid.UUID
	Action   *string
	ActorID  *uuid.UUID
	From     *time.Time
	To       *time.Time
	Page     int
	PerPage  int
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Recorder

	List(ctx context.Context, actor authorize.Actor, req ListRequest) ([]*repo.AuditLog, int, error)
	Delete(ctx context.Context, actor authorize.Actor, logID uuid.UUID) error
	DeleteByEntity(ctx context.Context, actor authorize.Actor, entity string, entityID uuid.UUID) (int, error)
	Purge(ctx context.Context, actor authorize.Actor, olderThan time.Time) (int, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type auditService struct {
	db     *repo.Client
	logger *slog.Logger
}

func New(db *repo.Client, logger *slog.Logger) Service {
	return &auditService{db: db, logger: logger}
}

// Record persists the entry. The write survives caller cancellation so the
// trail does not lose records when a request is aborted mid-flight.
func (s *auditService) Record(ctx context.Context, e Entry) {
	ctx = context.WithoutCancel(ctx)

	c := s.db.AuditLog.Create().
		SetClinicID(e.ClinicID).
		SetAction(e.Action).
		SetEntity(e.Entity)

	if e.ActorID != nil {
		c = c.SetActorID(*e.ActorID)
	}
	if e.DoctorID != nil {
		c = c.SetDoctorID(*e.DoctorID)
	}
	if e.EntityID != nil {
		c = c.SetEntityID(*e.EntityID)
	}
	if e.Metadata != nil {
		c = c.SetMetadata(e.Metadata)
	}

	if err := c.Exec(ctx); err != nil {
		s.logger.Error("audit write failed",
			slog.String("action", e.Action),
			slog.String("entity", e.Entity),
			slog.String("clinic_id", e.ClinicID.String()),
			slog.String("error", err.Error()))
	}
}

// doctorScope reports whether the listing must be restricted to entries
// stamped with the caller's own doctor profile.
func doctorScope(actor authorize.Actor) (uuid.UUID, bool) {
	if actor.Role == authorize.RoleDoctor {
		return actor.ProfileID, true
	}
	return uuid.Nil, false
}

func (s *auditService) List(ctx context.Context, actor authorize.Actor, req ListRequest) ([]*repo.AuditLog, int, error) {
	if err := authorize.Authorize(actor, authorize.PermAuditList, authorize.Target{ClinicID: actor.ClinicID}); err != nil {
		return nil, 0, err
	}

	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 50
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.AuditLog.Query().
		Where(entaudit.ClinicID(actor.ClinicID))

	// Doctors only see the trail of their own records.
	if doctorID, scoped := doctorScope(actor); scoped {
		q = q.Where(entaudit.DoctorID(doctorID))
	}

	if req.Entity != nil {
		q = q.Where(entaudit.Entity(*req.Entity))
	}
	if req.EntityID != nil {
		q = q.Where(entaudit.EntityID(*req.EntityID))
	}
	if req.Action != nil {
		q = q.Where(entaudit.Action(*req.Action))
	}
	if req.ActorID != nil {
		q = q.Where(entaudit.ActorID(*req.ActorID))
	}
	if req.From != nil {
		q = q.Where(entaudit.CreatedAtGTE(*req.From))
	}
	if req.To != nil {
		q = q.Where(entaudit.CreatedAtLT(*req.To))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("count audit logs: %w", err)
	}

	logs, err := q.
		Order(entaudit.ByCreatedAt(sql.OrderDesc())).
		Offset(offset).
		Limit(req.PerPage).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("list audit logs: %w", err)
	}
	return logs, total, nil
}

// Delete removes a single entry. Deletion is never silent: a meta record
// describing the removed entry is written in its place.
func (s *auditService) Delete(ctx context.Context, actor authorize.Actor, logID uuid.UUID) error {
	if err := authorize.Authorize(actor, authorize.PermAuditDelete, authorize.Target{ClinicID: actor.ClinicID}); err != nil {
		return err
	}

	rec, err := s.db.AuditLog.Query().
		Where(entaudit.ID(logID), entaudit.ClinicID(actor.ClinicID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return authorize.ErrNotFound
		}
		return fmt.Errorf("load audit log: %w", err)
	}

	if err := s.db.AuditLog.DeleteOneID(logID).Exec(ctx); err != nil {
		return fmt.Errorf("delete audit log: %w", err)
	}

	s.Record(ctx, Entry{
		ClinicID: actor.ClinicID,
		ActorID:  &actor.UserID,
		Action:   "audit.delete",
		Entity:   "audit_log",
		EntityID: &logID,
		Metadata: map[string]any{
			"deleted_action": rec.Action,
			"deleted_entity": rec.Entity,
		},
	})
	return nil
}

// DeleteByEntity removes every entry for one entity record, for compliance
// erasure. The bulk delete itself is recorded.
func (s *auditService) DeleteByEntity(ctx context.Context, actor authorize.Actor, entity string, entityID uuid.UUID) (int, error) {
	if err := authorize.Authorize(actor, authorize.PermAuditDelete, authorize.Target{ClinicID: actor.ClinicID}); err != nil {
		return 0, err
	}

	n, err := s.db.AuditLog.Delete().
		Where(
			entaudit.ClinicID(actor.ClinicID),
			entaudit.Entity(entity),
			entaudit.EntityID(entityID),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("delete audit logs for entity: %w", err)
	}

	s.Record(ctx, Entry{
		ClinicID: actor.ClinicID,
		ActorID:  &actor.UserID,
		Action:   "audit.delete_by_entity",
		Entity:   "audit_log",
		Metadata: map[string]any{"entity": entity, "entity_id": entityID, "deleted": n},
	})
	return n, nil
}

// Purge removes entries older than the cutoff. The purge itself is recorded.
func (s *auditService) Purge(ctx context.Context, actor authorize.Actor, olderThan time.Time) (int, error) {
	if err := authorize.Authorize(actor, authorize.PermAuditDelete, authorize.Target{ClinicID: actor.ClinicID}); err != nil {
		return 0, err
	}

	n, err := s.db.AuditLog.Delete().
		Where(
			entaudit.ClinicID(actor.ClinicID),
			entaudit.CreatedAtLT(olderThan),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("purge audit logs: %w", err)
	}

	s.Record(ctx, Entry{
		ClinicID: actor.ClinicID,
		ActorID:  &actor.UserID,
		Action:   "audit.purge",
		Entity:   "audit_log",
		Metadata: map[string]any{"older_than": olderThan, "deleted": n},
	})
	return n, nil
}
