package clinic

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/medorahq/medora_backend/internal/repo"
	entclinic "github.com/medorahq/medora_backend/internal/repo/clinic"
	"github.com/medorahq/medora_backend/internal/service/audit"
	"github.com/medorahq/medora_backend/pkg/authorize"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type UpdateRequest struct {
	Name     *string
	Timezone *string
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Get(ctx context.Context, actor authorize.Actor) (*repo.Clinic, error)
	Update(ctx context.Context, actor authorize.Actor, req UpdateRequest) (*repo.Clinic, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type clinicService struct {
	db    *repo.Client
	audit audit.Recorder
}

func New(db *repo.Client, rec audit.Recorder) Service {
	return &clinicService{db: db, audit: rec}
}

func (s *clinicService) Get(ctx context.Context, actor authorize.Actor) (*repo.Clinic, error) {
	if err := authorize.Authorize(actor, authorize.PermClinicRead, authorize.Target{ClinicID: actor.ClinicID}); err != nil {
		return nil, err
	}

	cl, err := s.db.Clinic.Query().
		Where(entclinic.ID(actor.ClinicID), entclinic.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get clinic: %w", err)
	}
	return cl, nil
}

func (s *clinicService) Update(ctx context.Context, actor authorize.Actor, req UpdateRequest) (*repo.Clinic, error) {
	if err := authorize.Authorize(actor, authorize.PermClinicUpdate, authorize.Target{ClinicID: actor.ClinicID}); err != nil {
		return nil, err
	}

	cl, err := s.Get(ctx, actor)
	if err != nil {
		return nil, err
	}

	upd := s.db.Clinic.UpdateOneID(cl.ID)
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, ErrNameRequired
		}
		upd = upd.SetName(name)
	}
	if req.Timezone != nil {
		if _, err := time.LoadLocation(*req.Timezone); err != nil {
			return nil, ErrInvalidTimezone
		}
		upd = upd.SetTimezone(*req.Timezone)
	}

	cl, err = upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update clinic: %w", err)
	}

	s.audit.Record(ctx, audit.Entry{
		ClinicID: actor.ClinicID,
		ActorID:  &actor.UserID,
		Action:   "clinic.update",
		Entity:   "clinic",
		EntityID: &cl.ID,
	})
	return cl, nil
}
