package assistant

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/medorahq/medora_backend/internal/repo"
	entassistant "github.com/medorahq/medora_backend/internal/repo/assistant"
	entuser "github.com/medorahq/medora_backend/internal/repo/user"
	"github.com/medorahq/medora_backend/internal/service/audit"
	"github.com/medorahq/medora_backend/pkg/authorize"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRequest struct {
	FirstName string
	LastName  string
	Title     *string
	UserID    *uuid.UUID
}

type UpdateRequest struct {
	FirstName *string
	LastName  *string
	Title     *string
	IsActive  *bool
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, actor authorize.Actor, req CreateRequest) (*repo.Assistant, error)
	GetByID(ctx context.Context, actor authorize.Actor, assistantID uuid.UUID) (*repo.Assistant, error)
	List(ctx context.Context, actor authorize.Actor) ([]*repo.Assistant, error)
	Update(ctx context.Context, actor authorize.Actor, assistantID uuid.UUID, req UpdateRequest) (*repo.Assistant, error)
	Delete(ctx context.Context, actor authorize.Actor, assistantID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type assistantService struct {
	db    *repo.Client
	audit audit.Recorder
}

func New(db *repo.Client, rec audit.Recorder) Service {
	return &assistantService{db: db, audit: rec}
}

func (s *assistantService) Create(ctx context.Context, actor authorize.Actor, req CreateRequest) (*repo.Assistant, error) {
	if err := authorize.Authorize(actor, authorize.PermAssistantCreate, authorize.Target{ClinicID: actor.ClinicID}); err != nil {
		return nil, err
	}

	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	if req.FirstName == "" || req.LastName == "" {
		return nil, ErrNameRequired
	}

	if req.UserID != nil {
		if err := s.checkLinkableUser(ctx, actor.ClinicID, *req.UserID); err != nil {
			return nil, err
		}
	}

	c := s.db.Assistant.Create().
		SetClinicID(actor.ClinicID).
		SetFirstName(req.FirstName).
		SetLastName(req.LastName)
	if req.Title != nil {
		c = c.SetNillableTitle(req.Title)
	}
	if req.UserID != nil {
		c = c.SetNillableUserID(req.UserID)
	}

	a, err := c.Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrAlreadyLinked
		}
		return nil, fmt.Errorf("create assistant: %w", err)
	}

	s.audit.Record(ctx, audit.Entry{
		ClinicID: actor.ClinicID,
		ActorID:  &actor.UserID,
		Action:   "assistant.create",
		Entity:   "assistant",
		EntityID: &a.ID,
		Metadata: map[string]any{"first_name": req.FirstName, "last_name": req.LastName},
	})
	return a, nil
}

func (s *assistantService) GetByID(ctx context.Context, actor authorize.Actor, assistantID uuid.UUID) (*repo.Assistant, error) {
	a, err := s.load(ctx, actor.ClinicID, assistantID)
	if err != nil {
		return nil, err
	}
	if err := authorize.Authorize(actor, authorize.PermAssistantRead, authorize.Target{
		ClinicID:    a.ClinicID,
		AssistantID: a.ID,
	}); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *assistantService) List(ctx context.Context, actor authorize.Actor) ([]*repo.Assistant, error) {
	if err := authorize.Authorize(actor, authorize.PermAssistantList, authorize.Target{ClinicID: actor.ClinicID}); err != nil {
		return nil, err
	}

	as, err := s.db.Assistant.Query().
		Where(entassistant.ClinicID(actor.ClinicID), entassistant.DeletedAtIsNil()).
		Order(entassistant.ByLastName(), entassistant.ByFirstName()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list assistants: %w", err)
	}
	return as, nil
}

func (s *assistantService) Update(ctx context.Context, actor authorize.Actor, assistantID uuid.UUID, req UpdateRequest) (*repo.Assistant, error) {
	a, err := s.load(ctx, actor.ClinicID, assistantID)
	if err != nil {
		return nil, err
	}
	if err := authorize.Authorize(actor, authorize.PermAssistantUpdate, authorize.Target{
		ClinicID:    a.ClinicID,
		AssistantID: a.ID,
	}); err != nil {
		return nil, err
	}

	// An assistant updating their own profile may change the title and
	// nothing else.
	if actor.Role == authorize.RoleAssistant {
		if req.FirstName != nil || req.LastName != nil || req.IsActive != nil {
			return nil, ErrTitleOnly
		}
	}

	upd := s.db.Assistant.UpdateOneID(a.ID)
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
	if req.Title != nil {
		upd = upd.SetNillableTitle(req.Title)
	}
	if req.IsActive != nil {
		upd = upd.SetIsActive(*req.IsActive)
	}

	a, err = upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update assistant: %w", err)
	}

	s.audit.Record(ctx, audit.Entry{
		ClinicID: actor.ClinicID,
		ActorID:  &actor.UserID,
		Action:   "assistant.update",
		Entity:   "assistant",
		EntityID: &a.ID,
	})
	return a, nil
}

func (s *assistantService) Delete(ctx context.Context, actor authorize.Actor, assistantID uuid.UUID) error {
	if err := authorize.Authorize(actor, authorize.PermAssistantDelete, authorize.Target{ClinicID: actor.ClinicID}); err != nil {
		return err
	}

	a, err := s.load(ctx, actor.ClinicID, assistantID)
	if err != nil {
		return err
	}

	if err := s.db.Assistant.UpdateOneID(a.ID).
		SetDeletedAt(time.Now()).
		SetIsActive(false).
		Exec(ctx); err != nil {
		return fmt.Errorf("delete assistant: %w", err)
	}

	s.audit.Record(ctx, audit.Entry{
		ClinicID: actor.ClinicID,
		ActorID:  &actor.UserID,
		Action:   "assistant.delete",
		Entity:   "assistant",
		EntityID: &a.ID,
		Metadata: map[string]any{"first_name": a.FirstName, "last_name": a.LastName},
	})
	return nil
}

// ---------------------------------------------------------------------------
// Internals
// ---------------------------------------------------------------------------

func (s *assistantService) load(ctx context.Context, clinicID, assistantID uuid.UUID) (*repo.Assistant, error) {
	a, err := s.db.Assistant.Query().
		Where(entassistant.ID(assistantID), entassistant.ClinicID(clinicID), entassistant.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get assistant: %w", err)
	}
	return a, nil
}

func (s *assistantService) checkLinkableUser(ctx context.Context, clinicID, userID uuid.UUID) error {
	ok, err := s.db.User.Query().
		Where(entuser.ID(userID), entuser.ClinicID(clinicID), entuser.DeletedAtIsNil()).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check user: %w", err)
	}
	if !ok {
		return ErrUserNotFound
	}

	linked, err := s.db.Assistant.Query().
		Where(entassistant.UserID(userID), entassistant.DeletedAtIsNil()).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check link: %w", err)
	}
	if linked {
		return ErrAlreadyLinked
	}
	return nil
}
