package doctor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/medorahq/medora_backend/internal/repo"
	entdoctor "github.com/medorahq/medora_backend/internal/repo/doctor"
	entuser "github.com/medorahq/medora_backend/internal/repo/user"
	"github.com/medorahq/medora_backend/internal/service/audit"
	"github.com/medorahq/medora_backend/pkg/authorize"
	"github.com/medorahq/medora_backend/pkg/phone"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRequest struct {
	FirstName string
	LastName  string
	Specialty *string
	Phone     *string
	UserID    *uuid.UUID
}

type UpdateRequest struct {
	FirstName *string
	LastName  *string
	Specialty *string
	Phone     *string
	IsActive  *bool
}

type ListRequest struct {
	ActiveOnly bool
	Page       int
	PerPage    int
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, actor authorize.Actor, req CreateRequest) (*repo.Doctor, error)
	GetByID(ctx context.Context, actor authorize.Actor, doctorID uuid.UUID) (*repo.Doctor, error)
	List(ctx context.Context, actor authorize.Actor, req ListRequest) ([]*repo.Doctor, int, error)
	Update(ctx context.Context, actor authorize.Actor, doctorID uuid.UUID, req UpdateRequest) (*repo.Doctor, error)
	Delete(ctx context.Context, actor authorize.Actor, doctorID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type doctorService struct {
	db    *repo.Client
	audit audit.Recorder
}

func New(db *repo.Client, rec audit.Recorder) Service {
	return &doctorService{db: db, audit: rec}
}

func (s *doctorService) Create(ctx context.Context, actor authorize.Actor, req CreateRequest) (*repo.Doctor, error) {
	if err := authorize.Authorize(actor, authorize.PermDoctorCreate, authorize.Target{ClinicID: actor.ClinicID}); err != nil {
		return nil, err
	}

	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	if req.FirstName == "" || req.LastName == "" {
		return nil, ErrNameRequired
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

	c := s.db.Doctor.Create().
		SetClinicID(actor.ClinicID).
		SetFirstName(req.FirstName).
		SetLastName(req.LastName)
	if req.Specialty != nil {
		c = c.SetNillableSpecialty(req.Specialty)
	}
	if req.Phone != nil {
		c = c.SetNillablePhone(req.Phone)
	}
	if req.UserID != nil {
		c = c.SetNillableUserID(req.UserID)
	}

	doc, err := c.Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrAlreadyLinked
		}
		return nil, fmt.Errorf("create doctor: %w", err)
	}

	s.audit.Record(ctx, audit.Entry{
		ClinicID: actor.ClinicID,
		ActorID:  &actor.UserID,
		Action:   "doctor.create",
		Entity:   "doctor",
		EntityID: &doc.ID,
		Metadata: map[string]any{"first_name": req.FirstName, "last_name": req.LastName},
	})
	return doc, nil
}

func (s *doctorService) GetByID(ctx context.Context, actor authorize.Actor, doctorID uuid.UUID) (*repo.Doctor, error) {
	doc, err := s.load(ctx, actor.ClinicID, doctorID)
	if err != nil {
		return nil, err
	}
	if err := authorize.Authorize(actor, authorize.PermDoctorRead, authorize.Target{ClinicID: doc.ClinicID}); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *doctorService) List(ctx context.Context, actor authorize.Actor, req ListRequest) ([]*repo.Doctor, int, error) {
	if err := authorize.Authorize(actor, authorize.PermDoctorList, authorize.Target{ClinicID: actor.ClinicID}); err != nil {
		return nil, 0, err
	}

	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.Doctor.Query().
		Where(entdoctor.ClinicID(actor.ClinicID), entdoctor.DeletedAtIsNil())
	if req.ActiveOnly {
		q = q.Where(entdoctor.IsActive(true))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("count doctors: %w", err)
	}

	docs, err := q.
		Order(entdoctor.ByLastName(), entdoctor.ByFirstName()).
		Offset(offset).
		Limit(req.PerPage).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("list doctors: %w", err)
	}
	return docs, total, nil
}

func (s *doctorService) Update(ctx context.Context, actor authorize.Actor, doctorID uuid.UUID, req UpdateRequest) (*repo.Doctor, error) {
	doc, err := s.load(ctx, actor.ClinicID, doctorID)
	if err != nil {
		return nil, err
	}
	if err := authorize.Authorize(actor, authorize.PermDoctorUpdate, authorize.Target{
		ClinicID: doc.ClinicID,
		DoctorID: doc.ID,
	}); err != nil {
		return nil, err
	}

	upd := s.db.Doctor.UpdateOneID(doc.ID)
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
	if req.Specialty != nil {
		upd = upd.SetNillableSpecialty(req.Specialty)
	}
	if req.Phone != nil {
		normalized, perr := phone.Normalize(*req.Phone, "")
		if perr != nil {
			return nil, ErrInvalidPhone
		}
		upd = upd.SetPhone(normalized)
	}
	if req.IsActive != nil {
		upd = upd.SetIsActive(*req.IsActive)
	}

	doc, err = upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update doctor: %w", err)
	}

	s.audit.Record(ctx, audit.Entry{
		ClinicID: actor.ClinicID,
		ActorID:  &actor.UserID,
		Action:   "doctor.update",
		Entity:   "doctor",
		EntityID: &doc.ID,
	})
	return doc, nil
}

func (s *doctorService) Delete(ctx context.Context, actor authorize.Actor, doctorID uuid.UUID) error {
	if err := authorize.Authorize(actor, authorize.PermDoctorDelete, authorize.Target{ClinicID: actor.ClinicID}); err != nil {
		return err
	}

	doc, err := s.load(ctx, actor.ClinicID, doctorID)
	if err != nil {
		return err
	}

	if err := s.db.Doctor.UpdateOneID(doc.ID).
		SetDeletedAt(time.Now()).
		SetIsActive(false).
		Exec(ctx); err != nil {
		return fmt.Errorf("delete doctor: %w", err)
	}

	s.audit.Record(ctx, audit.Entry{
		ClinicID: actor.ClinicID,
		ActorID:  &actor.UserID,
		Action:   "doctor.delete",
		Entity:   "doctor",
		EntityID: &doc.ID,
		Metadata: map[string]any{"first_name": doc.FirstName, "last_name": doc.LastName},
	})
	return nil
}

// ---------------------------------------------------------------------------
// Internals
// ---------------------------------------------------------------------------

func (s *doctorService) load(ctx context.Context, clinicID, doctorID uuid.UUID) (*repo.Doctor, error) {
	doc, err := s.db.Doctor.Query().
		Where(entdoctor.ID(doctorID), entdoctor.ClinicID(clinicID), entdoctor.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get doctor: %w", err)
	}
	return doc, nil
}

func (s *doctorService) checkLinkableUser(ctx context.Context, clinicID, userID uuid.UUID) error {
	ok, err := s.db.User.Query().
		Where(entuser.ID(userID), entuser.ClinicID(clinicID), entuser.DeletedAtIsNil()).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check user: %w", err)
	}
	if !ok {
		return ErrUserNotFound
	}

	linked, err := s.db.Doctor.Query().
		Where(entdoctor.UserID(userID), entdoctor.DeletedAtIsNil()).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check link: %w", err)
	}
	if linked {
		return ErrAlreadyLinked
	}
	return nil
}
