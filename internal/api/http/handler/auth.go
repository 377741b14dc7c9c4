package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/medorahq/medora_backend/internal/service/auth"
	pasetotoken "github.com/medorahq/medora_backend/pkg/paseto"
)

type AuthHandler struct {
	svc auth.Service
}

func NewAuthHandler(svc auth.Service) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func mapAuthError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrStaleToken),
		errors.Is(err, auth.ErrSessionNotFound):
		return fail(c, fiber.StatusUnauthorized, codeUnauthenticated, err.Error())
	case errors.Is(err, auth.ErrAccountDisabled), errors.Is(err, auth.ErrAccountLocked):
		return fail(c, fiber.StatusForbidden, codeForbidden, err.Error())
	case errors.Is(err, auth.ErrEmailAlreadyExists):
		return conflict(c, err.Error())
	case errors.Is(err, auth.ErrInvalidEmail),
		errors.Is(err, auth.ErrPasswordTooShort),
		errors.Is(err, auth.ErrAmbiguousEmail),
		errors.Is(err, auth.ErrWrongPassword):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

func tokenResponse(t *auth.AuthTokens) fiber.Map {
	return fiber.Map{
		"access_token":  t.AccessToken,
		"refresh_token": t.RefreshToken,
		"expires_in":    t.ExpiresIn,
	}
}

// POST /auth/register
func (h *AuthHandler) Register(c fiber.Ctx) error {
	var body struct {
		ClinicName string `json:"clinic_name"`
		Timezone   string `json:"timezone"`
		Email      string `json:"email"`
		Password   string `json:"password"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.ClinicName == "" || body.Email == "" || body.Password == "" {
		return badRequest(c, "clinic_name, email and password are required")
	}

	u, tokens, err := h.svc.Register(c.Context(), auth.RegisterRequest{
		ClinicName: body.ClinicName,
		Timezone:   body.Timezone,
		Email:      body.Email,
		Password:   body.Password,
	})
	if err != nil {
		return mapAuthError(c, err)
	}

	return created(c, fiber.Map{"user": u, "tokens": tokenResponse(tokens)})
}

// POST /auth/login
func (h *AuthHandler) Login(c fiber.Ctx) error {
	var body struct {
		Email    string  `json:"email"`
		Password string  `json:"password"`
		ClinicID *string `json:"clinic_id"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Email == "" || body.Password == "" {
		return badRequest(c, "email and password are required")
	}

	req := auth.LoginRequest{Email: body.Email, Password: body.Password}
	if body.ClinicID != nil {
		id, err := uuid.Parse(*body.ClinicID)
		if err != nil {
			return badRequest(c, "invalid clinic_id")
		}
		req.ClinicID = &id
	}

	u, tokens, err := h.svc.Login(c.Context(), req)
	if err != nil {
		return mapAuthError(c, err)
	}

	return ok(c, fiber.Map{"user": u, "tokens": tokenResponse(tokens)})
}

// POST /auth/refresh
func (h *AuthHandler) Refresh(c fiber.Ctx) error {
	var body struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.RefreshToken == "" {
		return badRequest(c, "refresh_token is required")
	}

	tokens, err := h.svc.Refresh(c.Context(), body.RefreshToken)
	if err != nil {
		return mapAuthError(c, err)
	}

	return ok(c, fiber.Map{"tokens": tokenResponse(tokens)})
}

// POST /auth/logout
func (h *AuthHandler) Logout(c fiber.Ctx) error {
	claims, okc := pasetotoken.ClaimsFromFiber(c)
	if !okc {
		return unauthenticated(c)
	}
	if claims.SessionID == nil {
		return badRequest(c, "token carries no session")
	}

	if err := h.svc.Logout(c.Context(), *claims.SessionID); err != nil {
		return mapAuthError(c, err)
	}
	return noContent(c)
}

// POST /auth/logout-all
func (h *AuthHandler) LogoutAll(c fiber.Ctx) error {
	claims, okc := pasetotoken.ClaimsFromFiber(c)
	if !okc {
		return unauthenticated(c)
	}

	n, err := h.svc.LogoutAll(c.Context(), claims.UserID)
	if err != nil {
		return mapAuthError(c, err)
	}
	return ok(c, fiber.Map{"sessions_revoked": n})
}

// POST /auth/change-password
func (h *AuthHandler) ChangePassword(c fiber.Ctx) error {
	claims, okc := pasetotoken.ClaimsFromFiber(c)
	if !okc {
		return unauthenticated(c)
	}

	var body struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.CurrentPassword == "" || body.NewPassword == "" {
		return badRequest(c, "current_password and new_password are required")
	}

	if err := h.svc.ChangePassword(c.Context(), claims.UserID, body.CurrentPassword, body.NewPassword); err != nil {
		return mapAuthError(c, err)
	}
	return noContent(c)
}
