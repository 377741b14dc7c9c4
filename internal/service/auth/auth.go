package auth

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/medorahq/medora_backend/config"
	"github.com/medorahq/medora_backend/internal/repo"
	entclinic "github.com/medorahq/medora_backend/internal/repo/clinic"
	entuser "github.com/medorahq/medora_backend/internal/repo/user"
	"github.com/medorahq/medora_backend/internal/service/audit"
	pasetotoken "github.com/medorahq/medora_backend/pkg/paseto"
	"github.com/medorahq/medora_backend/pkg/session"
	"github.com/medorahq/medora_backend/pkg/util/password"
)

const (
	maxLoginAttempts = 5
	accountLockMins  = 15
)

var reEmail = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type RegisterRequest struct {
	ClinicName string
	Timezone   string
	Email      string
	Password   string
}

type LoginRequest struct {
	Email    string
	Password string
	// ClinicID disambiguates when the same email exists in more than one
	// clinic. Optional otherwise.
	ClinicID *uuid.UUID
}

type AuthTokens struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64 // seconds until the access token expires
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	// Register bootstraps a new clinic with its first CLINIC_ADMIN.
	Register(ctx context.Context, req RegisterRequest) (*repo.User, *AuthTokens, error)
	Login(ctx context.Context, req LoginRequest) (*repo.User, *AuthTokens, error)
	Refresh(ctx context.Context, refreshToken string) (*AuthTokens, error)
	Logout(ctx context.Context, sessionID uuid.UUID) error
	LogoutAll(ctx context.Context, userID uuid.UUID) (int, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, current, next string) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type authService struct {
	db       *repo.Client
	sessions session.Store
	paseto   *pasetotoken.Manager
	audit    audit.Recorder
	cfg      *config.Config
}

func New(db *repo.Client, sessions session.Store, paseto *pasetotoken.Manager, rec audit.Recorder, cfg *config.Config) Service {
	return &authService{
		db:       db,
		sessions: sessions,
		paseto:   paseto,
		audit:    rec,
		cfg:      cfg,
	}
}

// ---------------------------------------------------------------------------
// Register
// ---------------------------------------------------------------------------

func (s *authService) Register(ctx context.Context, req RegisterRequest) (*repo.User, *AuthTokens, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.ClinicName = strings.TrimSpace(req.ClinicName)

	if !reEmail.MatchString(req.Email) {
		return nil, nil, ErrInvalidEmail
	}
	if len(req.Password) < 8 {
		return nil, nil, ErrPasswordTooShort
	}
	if req.ClinicName == "" {
		return nil, nil, fmt.Errorf("clinic name is required")
	}
	if req.Timezone == "" {
		req.Timezone = "UTC"
	}
	if _, err := time.LoadLocation(req.Timezone); err != nil {
		return nil, nil, fmt.Errorf("invalid timezone %q", req.Timezone)
	}

	passHash, err := password.Hash(req.Password)
	if err != nil {
		return nil, nil, fmt.Errorf("hash password: %w", err)
	}

	// Clinic and admin are created atomically.
	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("begin tx: %w", err)
	}

	cl, err := tx.Clinic.Create().
		SetName(req.ClinicName).
		SetTimezone(req.Timezone).
		Save(ctx)
	if err != nil {
		_ = tx.Rollback()
		return nil, nil, fmt.Errorf("create clinic: %w", err)
	}

	u, err := tx.User.Create().
		SetClinicID(cl.ID).
		SetEmail(req.Email).
		SetPasswordHash(passHash).
		SetRole("CLINIC_ADMIN").
		Save(ctx)
	if err != nil {
		_ = tx.Rollback()
		if repo.IsConstraintError(err) {
			return nil, nil, ErrEmailAlreadyExists
		}
		return nil, nil, fmt.Errorf("create admin user: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("commit: %w", err)
	}

	s.audit.Record(ctx, audit.Entry{
		ClinicID: cl.ID,
		ActorID:  &u.ID,
		Action:   "clinic.register",
		Entity:   "clinic",
		EntityID: &cl.ID,
		Metadata: map[string]any{"name": cl.Name, "timezone": cl.Timezone},
	})

	tokens, err := s.createSession(ctx, u)
	if err != nil {
		return nil, nil, err
	}
	return u, tokens, nil
}

// ---------------------------------------------------------------------------
// Login
// ---------------------------------------------------------------------------

func (s *authService) Login(ctx context.Context, req LoginRequest) (*repo.User, *AuthTokens, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return nil, nil, ErrInvalidCredentials
	}

	q := s.db.User.Query().
		Where(entuser.Email(req.Email), entuser.DeletedAtIsNil())
	if req.ClinicID != nil {
		q = q.Where(entuser.ClinicID(*req.ClinicID))
	}

	users, err := q.All(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("find user: %w", err)
	}
	switch len(users) {
	case 0:
		return nil, nil, ErrInvalidCredentials
	case 1:
	default:
		return nil, nil, ErrAmbiguousEmail
	}
	u := users[0]

	if !u.IsActive {
		return nil, nil, ErrAccountDisabled
	}
	if u.LockedUntil != nil && time.Now().Before(*u.LockedUntil) {
		return nil, nil, ErrAccountLocked
	}

	// The clinic must still be active too.
	active, err := s.db.Clinic.Query().
		Where(entclinic.ID(u.ClinicID), entclinic.IsActive(true)).
		Exist(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("check clinic: %w", err)
	}
	if !active {
		return nil, nil, ErrAccountDisabled
	}

	if err := password.Verify(u.PasswordHash, req.Password); err != nil {
		s.recordFailedLogin(ctx, u)
		return nil, nil, ErrInvalidCredentials
	}

	now := time.Now()
	u, err = s.db.User.UpdateOne(u).
		SetFailedLoginAttempts(0).
		ClearLockedUntil().
		SetLastLoginAt(now).
		Save(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("record login: %w", err)
	}

	tokens, err := s.createSession(ctx, u)
	if err != nil {
		return nil, nil, err
	}
	return u, tokens, nil
}

// ---------------------------------------------------------------------------
// Refresh
// ---------------------------------------------------------------------------

// Refresh issues a new access token. It requires a verifiable refresh token,
// a live server-side session, and a token version matching the session
// record, so a password change invalidates every outstanding refresh token.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*AuthTokens, error) {
	claims, err := s.paseto.Verify(refreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if claims.Type != pasetotoken.TokenTypeRefresh || claims.SessionID == nil {
		return nil, ErrInvalidToken
	}

	rec, err := s.sessions.Get(ctx, *claims.SessionID)
	if err != nil {
		if err == session.ErrNotFound {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	if rec.UserID != claims.UserID || rec.TokenVersion != claims.TokenVersion {
		return nil, ErrStaleToken
	}

	accessToken, err := s.paseto.IssueAccess(claims.Identity(), claims.SessionID)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}

	accessTTL := time.Duration(s.cfg.Authentication.Paseto.AccessTTLMinutes) * time.Minute
	return &AuthTokens{
		AccessToken:  accessToken,
		RefreshToken: refreshToken, // unchanged until logout
		ExpiresIn:    int64(accessTTL.Seconds()),
	}, nil
}

// ---------------------------------------------------------------------------
// Logout
// ---------------------------------------------------------------------------

func (s *authService) Logout(ctx context.Context, sessionID uuid.UUID) error {
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		if err == session.ErrNotFound {
			// Already expired; nothing to do from the client's view.
			slog.Debug("logout: session already gone", "session_id", sessionID)
			return nil
		}
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (s *authService) LogoutAll(ctx context.Context, userID uuid.UUID) (int, error) {
	n, err := s.sessions.DeleteAllForUser(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("delete sessions: %w", err)
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// ChangePassword
// ---------------------------------------------------------------------------

// ChangePassword bumps the user's token version and drops every session, so
// tokens issued before the change stop working.
func (s *authService) ChangePassword(ctx context.Context, userID uuid.UUID, current, next string) error {
	if len(next) < 8 {
		return ErrPasswordTooShort
	}

	u, err := s.db.User.Get(ctx, userID)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrInvalidCredentials
		}
		return fmt.Errorf("get user: %w", err)
	}

	if err := password.Verify(u.PasswordHash, current); err != nil {
		return ErrWrongPassword
	}

	passHash, err := password.Hash(next)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.db.User.UpdateOne(u).
		SetPasswordHash(passHash).
		AddTokenVersion(1).
		Exec(ctx); err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	if _, err := s.sessions.DeleteAllForUser(ctx, u.ID); err != nil {
		slog.Warn("change password: session purge failed", "user_id", u.ID, "error", err)
	}

	s.audit.Record(ctx, audit.Entry{
		ClinicID: u.ClinicID,
		ActorID:  &u.ID,
		Action:   "user.change_password",
		Entity:   "user",
		EntityID: &u.ID,
	})
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (s *authService) createSession(ctx context.Context, u *repo.User) (*AuthTokens, error) {
	sessionID := uuid.Must(uuid.NewV7())

	id := pasetotoken.Identity{
		UserID:       u.ID,
		Email:        u.Email,
		Role:         string(u.Role),
		ClinicID:     u.ClinicID,
		TokenVersion: u.TokenVersion,
	}

	refreshTTL := s.paseto.RefreshTTL()
	now := time.Now()

	if err := s.sessions.Create(ctx, session.Record{
		SessionID:    sessionID,
		UserID:       u.ID,
		Email:        u.Email,
		Role:         string(u.Role),
		ClinicID:     u.ClinicID,
		TokenVersion: u.TokenVersion,
		CreatedAt:    now,
		ExpiresAt:    now.Add(refreshTTL),
	}, refreshTTL); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	access, err := s.paseto.IssueAccess(id, &sessionID)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}
	refresh, err := s.paseto.IssueRefresh(id, &sessionID)
	if err != nil {
		return nil, fmt.Errorf("issue refresh token: %w", err)
	}

	accessTTL := time.Duration(s.cfg.Authentication.Paseto.AccessTTLMinutes) * time.Minute
	return &AuthTokens{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(accessTTL.Seconds()),
	}, nil
}

func (s *authService) recordFailedLogin(ctx context.Context, u *repo.User) {
	attempts := u.FailedLoginAttempts + 1
	upd := s.db.User.UpdateOne(u).
		SetFailedLoginAttempts(attempts)

	if attempts >= maxLoginAttempts {
		upd = upd.SetLockedUntil(time.Now().Add(accountLockMins * time.Minute))
	}
	if err := upd.Exec(ctx); err != nil {
		slog.Warn("record failed login", "user_id", u.ID, "error", err)
	}
}
