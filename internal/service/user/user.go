package user

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/medorahq/medora_backend/internal/repo"
	entclinic "github.com/medorahq/medora_backend/internal/repo/clinic"
	entuser "github.com/medorahq/medora_backend/internal/repo/user"
	"github.com/medorahq/medora_backend/internal/service/audit"
	"github.com/medorahq/medora_backend/pkg/authorize"
	"github.com/medorahq/medora_backend/pkg/email"
	"github.com/medorahq/medora_backend/pkg/util/password"
)

var reEmail = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRequest struct {
	Email string
	Role  string
	// Password is optional: when empty a temporary one is generated and
	// mailed to the new account.
	Password string
}

type UpdateRequest struct {
	Role     *string
	IsActive *bool
}

type ListRequest struct {
	Role    *string
	Page    int
	PerPage int
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, actor authorize.Actor, req CreateRequest) (*repo.User, error)
	GetByID(ctx context.Context, actor authorize.Actor, userID uuid.UUID) (*repo.User, error)
	List(ctx context.Context, actor authorize.Actor, req ListRequest) ([]*repo.User, int, error)
	Update(ctx context.Context, actor authorize.Actor, userID uuid.UUID, req UpdateRequest) (*repo.User, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type userService struct {
	db    *repo.Client
	audit audit.Recorder
	email *email.Client
}

func New(db *repo.Client, rec audit.Recorder, mail *email.Client) Service {
	return &userService{db: db, audit: rec, email: mail}
}

func (s *userService) Create(ctx context.Context, actor authorize.Actor, req CreateRequest) (*repo.User, error) {
	if err := authorize.Authorize(actor, authorize.PermUserCreate, authorize.Target{ClinicID: actor.ClinicID}); err != nil {
		return nil, err
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if !reEmail.MatchString(req.Email) {
		return nil, ErrInvalidEmail
	}
	if _, err := authorize.ParseRole(req.Role); err != nil {
		return nil, ErrInvalidRole
	}

	temporary := false
	if req.Password == "" {
		req.Password = password.Generate(16)
		temporary = true
	}
	if len(req.Password) < 8 {
		return nil, ErrPasswordTooShort
	}

	passHash, err := password.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u, err := s.db.User.Create().
		SetClinicID(actor.ClinicID).
		SetEmail(req.Email).
		SetPasswordHash(passHash).
		SetRole(entuser.Role(req.Role)).
		Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.audit.Record(ctx, audit.Entry{
		ClinicID: actor.ClinicID,
		ActorID:  &actor.UserID,
		Action:   "user.create",
		Entity:   "user",
		EntityID: &u.ID,
		Metadata: map[string]any{"email": req.Email, "role": req.Role},
	})

	s.sendWelcome(ctx, u, temporaryPassword(temporary, req.Password))
	return u, nil
}

func (s *userService) GetByID(ctx context.Context, actor authorize.Actor, userID uuid.UUID) (*repo.User, error) {
	u, err := s.load(ctx, actor.ClinicID, userID)
	if err != nil {
		return nil, err
	}

	// Everyone may read their own account; otherwise user:read is needed.
	if actor.UserID != u.ID {
		if err := authorize.Authorize(actor, authorize.PermUserRead, authorize.Target{ClinicID: u.ClinicID}); err != nil {
			return nil, err
		}
	}
	return u, nil
}

func (s *userService) List(ctx context.Context, actor authorize.Actor, req ListRequest) ([]*repo.User, int, error) {
	if err := authorize.Authorize(actor, authorize.PermUserList, authorize.Target{ClinicID: actor.ClinicID}); err != nil {
		return nil, 0, err
	}

	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.User.Query().
		Where(entuser.ClinicID(actor.ClinicID), entuser.DeletedAtIsNil())
	if req.Role != nil {
		if _, err := authorize.ParseRole(*req.Role); err != nil {
			return nil, 0, ErrInvalidRole
		}
		q = q.Where(entuser.RoleEQ(entuser.Role(*req.Role)))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}

	users, err := q.
		Order(entuser.ByEmail()).
		Offset(offset).
		Limit(req.PerPage).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}
	return users, total, nil
}

func (s *userService) Update(ctx context.Context, actor authorize.Actor, userID uuid.UUID, req UpdateRequest) (*repo.User, error) {
	if err := authorize.Authorize(actor, authorize.PermUserUpdate, authorize.Target{ClinicID: actor.ClinicID}); err != nil {
		return nil, err
	}

	u, err := s.load(ctx, actor.ClinicID, userID)
	if err != nil {
		return nil, err
	}

	upd := s.db.User.UpdateOneID(u.ID)
	if req.Role != nil {
		if _, err := authorize.ParseRole(*req.Role); err != nil {
			return nil, ErrInvalidRole
		}
		upd = upd.SetRole(entuser.Role(*req.Role))
	}
	if req.IsActive != nil {
		upd = upd.SetIsActive(*req.IsActive)
	}

	u, err = upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	s.audit.Record(ctx, audit.Entry{
		ClinicID: actor.ClinicID,
		ActorID:  &actor.UserID,
		Action:   "user.update",
		Entity:   "user",
		EntityID: &u.ID,
	})
	return u, nil
}

// ---------------------------------------------------------------------------
// Internals
// ---------------------------------------------------------------------------

func (s *userService) load(ctx context.Context, clinicID, userID uuid.UUID) (*repo.User, error) {
	u, err := s.db.User.Query().
		Where(entuser.ID(userID), entuser.ClinicID(clinicID), entuser.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// sendWelcome is best-effort; a mail failure never fails account creation.
func (s *userService) sendWelcome(ctx context.Context, u *repo.User, tempPass string) {
	if s.email == nil {
		return
	}

	clinicName := ""
	if cl, err := s.db.Clinic.Query().Where(entclinic.ID(u.ClinicID)).Only(ctx); err == nil {
		clinicName = cl.Name
	}

	msg := email.BuildWelcomeEmail(email.WelcomeEmailData{
		Email:             u.Email,
		ClinicName:        clinicName,
		TemporaryPassword: tempPass,
	})
	if err := s.email.Send(ctx, msg); err != nil {
		slog.Warn("welcome email failed", "user_id", u.ID, "error", err)
	}
}

func temporaryPassword(temporary bool, pass string) string {
	if temporary {
		return pass
	}
	return ""
}
