package patient

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/medorahq/medora_backend/internal/events"
	"github.com/medorahq/medora_backend/internal/repo"
	entpatient "github.com/medorahq/medora_backend/internal/repo/patient"
	entuser "github.com/medorahq/medora_backend/internal/repo/user"
	"github.com/medorahq/medora_backend/internal/service/audit"
	"github.com/medorahq/medora_backend/pkg/authorize"
	"github.com/medorahq/medora_backend/pkg/phone"
)

var reEmail = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRequest struct {
	FirstName   string
	LastName    string
	Phone       *string
	Email       *string
	DateOfBirth *time.Time
	Gender      *string
	Notes       *string
	UserID      *uuid.UUID
}

type UpdateRequest struct {
	FirstName   *string
	LastName    *string
	Phone       *string
	Email       *string
	DateOfBirth *time.Time
	Gender      *string
	Notes       *string
	IsActive    *bool
}

type ListRequest struct {
	Search  string
	Page    int
	PerPage int
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, actor authorize.Actor, req CreateRequest) (*repo.Patient, error)
	GetByID(ctx context.Context, actor authorize.Actor, patientID uuid.UUID) (*repo.Patient, error)
	List(ctx context.Context, actor authorize.Actor, req ListRequest) ([]*repo.Patient, int, error)
	Update(ctx context.Context, actor authorize.Actor, patientID uuid.UUID, req UpdateRequest) (*repo.Patient, error)
	Delete(ctx context.Context, actor authorize.Actor, patientID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type patientService struct {
	db     *repo.Client
	audit  audit.Recorder
	events *events.Publisher
}

func New(db *repo.Client, rec audit.Recorder, pub *events.Publisher) Service {
	return &patientService{db: db, audit: rec, events: pub}
}

func (s *patientService) Create(ctx context.Context, actor authorize.Actor, req CreateRequest) (*repo.Patient, error) {
	if err := authorize.Authorize(actor, authorize.PermPatientCreate, authorize.Target{ClinicID: actor.ClinicID}); err != nil {
		return nil, err
	}

	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	if req.FirstName == "" || req.LastName == "" {
		return nil, ErrNameRequired
	}
	if req.Gender != nil && !validGender(*req.Gender) {
		return nil, ErrInvalidGender
	}
	if req.Email != nil && !reEmail.MatchString(*req.Email) {
		return nil, ErrInvalidEmail
	}
	if req.Phone != nil {
		normalized, err := phone.Normalize(*req.Phone, "")
		if err != nil {
			return nil, ErrInvalidPhone
		}
		req.Phone = &normalized
	}

	if req.UserID != nil {
		if err := s.checkLinkableUser(ctx, actor.ClinicID, *req.UserID); err != nil {
			return nil, err
		}
	}

	c := s.db.Patient.Create().
		SetClinicID(actor.ClinicID).
		SetFirstName(req.FirstName).
		SetLastName(req.LastName)
	if req.Phone != nil {
		c = c.SetNillablePhone(req.Phone)
	}
	if req.Email != nil {
		c = c.SetNillableEmail(req.Email)
	}
	if req.DateOfBirth != nil {
		c = c.SetNillableDateOfBirth(req.DateOfBirth)
	}
	if req.Gender != nil {
		c = c.SetGender(entpatient.Gender(*req.Gender))
	}
	if req.Notes != nil {
		c = c.SetNillableNotes(req.Notes)
	}
	if req.UserID != nil {
		c = c.SetNillableUserID(req.UserID)
	}

	p, err := c.Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrAlreadyLinked
		}
		return nil, fmt.Errorf("create patient: %w", err)
	}

	s.audit.Record(ctx, audit.Entry{
		ClinicID: actor.ClinicID,
		ActorID:  &actor.UserID,
		Action:   "patient.create",
		Entity:   "patient",
		EntityID: &p.ID,
		Metadata: map[string]any{"first_name": req.FirstName, "last_name": req.LastName},
	})
	s.events.Publish(events.PatientCreated, actor.ClinicID, p.ID)

	return p, nil
}

func (s *patientService) GetByID(ctx context.Context, actor authorize.Actor, patientID uuid.UUID) (*repo.Patient, error) {
	p, err := s.load(ctx, actor.ClinicID, patientID)
	if err != nil {
		return nil, err
	}
	if err := authorize.Authorize(actor, authorize.PermPatientRead, s.target(p)); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *patientService) List(ctx context.Context, actor authorize.Actor, req ListRequest) ([]*repo.Patient, int, error) {
	if err := authorize.Authorize(actor, authorize.PermPatientList, authorize.Target{ClinicID: actor.ClinicID}); err != nil {
		return nil, 0, err
	}

	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.Patient.Query().
		Where(entpatient.ClinicID(actor.ClinicID), entpatient.DeletedAtIsNil())
	if search := strings.TrimSpace(req.Search); search != "" {
		q = q.Where(entpatient.Or(
			entpatient.FirstNameContainsFold(search),
			entpatient.LastNameContainsFold(search),
			entpatient.PhoneContains(search),
		))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("count patients: %w", err)
	}

	ps, err := q.
		Order(entpatient.ByLastName(), entpatient.ByFirstName()).
		Offset(offset).
		Limit(req.PerPage).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("list patients: %w", err)
	}
	return ps, total, nil
}

func (s *patientService) Update(ctx context.Context, actor authorize.Actor, patientID uuid.UUID, req UpdateRequest) (*repo.Patient, error) {
	p, err := s.load(ctx, actor.ClinicID, patientID)
	if err != nil {
		return nil, err
	}
	if err := authorize.Authorize(actor, authorize.PermPatientUpdate, s.target(p)); err != nil {
		return nil, err
	}

	upd := s.db.Patient.UpdateOneID(p.ID)
	if req.FirstName != nil {
		if strings.TrimSpace(*req.FirstName) == "" {
			return nil, ErrNameRequired
		}
		upd = upd.SetFirstName(strings.TrimSpace(*req.FirstName))
	}
	if req.LastName != nil {
		if strings.TrimSpace(*req.LastName) == "" {
			return nil, ErrNameRequired
		}
		upd = upd.SetLastName(strings.TrimSpace(*req.LastName))
	}
	if req.Phone != nil {
		normalized, err := phone.Normalize(*req.Phone, "")
		if err != nil {
			return nil, ErrInvalidPhone
		}
		upd = upd.SetPhone(normalized)
	}
	if req.Email != nil {
		if !reEmail.MatchString(*req.Email) {
			return nil, ErrInvalidEmail
		}
		upd = upd.SetEmail(*req.Email)
	}
	if req.DateOfBirth != nil {
		upd = upd.SetDateOfBirth(*req.DateOfBirth)
	}
	if req.Gender != nil {
		if !validGender(*req.Gender) {
			return nil, ErrInvalidGender
		}
		upd = upd.SetGender(entpatient.Gender(*req.Gender))
	}
	if req.Notes != nil {
		upd = upd.SetNillableNotes(req.Notes)
	}
	if req.IsActive != nil {
		upd = upd.SetIsActive(*req.IsActive)
	}

	p, err = upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update patient: %w", err)
	}

	s.audit.Record(ctx, audit.Entry{
		ClinicID: actor.ClinicID,
		ActorID:  &actor.UserID,
		Action:   "patient.update",
		Entity:   "patient",
		EntityID: &p.ID,
	})
	s.events.Publish(events.PatientUpdated, actor.ClinicID, p.ID)

	return p, nil
}

func (s *patientService) Delete(ctx context.Context, actor authorize.Actor, patientID uuid.UUID) error {
	if err := authorize.Authorize(actor, authorize.PermPatientDelete, authorize.Target{ClinicID: actor.ClinicID}); err != nil {
		return err
	}

	p, err := s.load(ctx, actor.ClinicID, patientID)
	if err != nil {
		return err
	}

	if err := s.db.Patient.UpdateOneID(p.ID).
		SetDeletedAt(time.Now()).
		SetIsActive(false).
		Exec(ctx); err != nil {
		return fmt.Errorf("delete patient: %w", err)
	}

	s.audit.Record(ctx, audit.Entry{
		ClinicID: actor.ClinicID,
		ActorID:  &actor.UserID,
		Action:   "patient.delete",
		Entity:   "patient",
		EntityID: &p.ID,
		Metadata: map[string]any{"first_name": p.FirstName, "last_name": p.LastName},
	})
	return nil
}

// ---------------------------------------------------------------------------
// Internals
// ---------------------------------------------------------------------------

func (s *patientService) load(ctx context.Context, clinicID, patientID uuid.UUID) (*repo.Patient, error) {
	p, err := s.db.Patient.Query().
		Where(entpatient.ID(patientID), entpatient.ClinicID(clinicID), entpatient.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get patient: %w", err)
	}
	return p, nil
}

func (s *patientService) target(p *repo.Patient) authorize.Target {
	t := authorize.Target{
		ClinicID:  p.ClinicID,
		PatientID: p.ID,
	}
	if p.UserID != nil {
		t.OwnerUserID = *p.UserID
	}
	return t
}

func (s *patientService) checkLinkableUser(ctx context.Context, clinicID, userID uuid.UUID) error {
	ok, err := s.db.User.Query().
		Where(entuser.ID(userID), entuser.ClinicID(clinicID), entuser.DeletedAtIsNil()).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check user: %w", err)
	}
	if !ok {
		return ErrUserNotFound
	}

	linked, err := s.db.Patient.Query().
		Where(entpatient.UserID(userID), entpatient.DeletedAtIsNil()).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check link: %w", err)
	}
	if linked {
		return ErrAlreadyLinked
	}
	return nil
}
