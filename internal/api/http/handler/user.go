package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/medorahq/medora_backend/internal/api/http/middleware"
	"github.com/medorahq/medora_backend/internal/service/user"
)

type UserHandler struct {
	svc user.Service
}

func NewUserHandler(svc user.Service) *UserHandler {
	return &UserHandler{svc: svc}
}

func mapUserError(c fiber.Ctx, err error) error {
	if resp, handled := accessError(c, err); handled {
		return resp
	}
	switch {
	case errors.Is(err, user.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, user.ErrEmailAlreadyExists):
		return conflict(c, err.Error())
	case errors.Is(err, user.ErrInvalidEmail),
		errors.Is(err, user.ErrInvalidRole),
		errors.Is(err, user.ErrPasswordTooShort):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// POST /users
func (h *UserHandler) Create(c fiber.Ctx) error {
	actor, okA := middleware.ActorFromFiber(c)
	if !okA {
		return unauthenticated(c)
	}

	var body struct {
		Email    string `json:"email"`
		Role     string `json:"role"`
		Password string `json:"password"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Email == "" || body.Role == "" {
		return badRequest(c, "email and role are required")
	}

	u, err := h.svc.Create(c.Context(), actor, user.CreateRequest{
		Email:    body.Email,
		Role:     body.Role,
		Password: body.Password,
	})
	if err != nil {
		return mapUserError(c, err)
	}
	return created(c, u)
}

// GET /users/:id
func (h *UserHandler) GetByID(c fiber.Ctx) error {
	actor, okA := middleware.ActorFromFiber(c)
	if !okA {
		return unauthenticated(c)
	}

	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid user id")
	}

	u, err := h.svc.GetByID(c.Context(), actor, userID)
	if err != nil {
		return mapUserError(c, err)
	}
	return ok(c, u)
}

// GET /users
func (h *UserHandler) List(c fiber.Ctx) error {
	actor, okA := middleware.ActorFromFiber(c)
	if !okA {
		return unauthenticated(c)
	}

	var q struct {
		Role    string `query:"role"`
		Page    int    `query:"page"`
		PerPage int    `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	page, perPage := normPage(q.Page, q.PerPage)
	req := user.ListRequest{Page: page, PerPage: perPage}
	if q.Role != "" {
		req.Role = &q.Role
	}

	users, total, err := h.svc.List(c.Context(), actor, req)
	if err != nil {
		return mapUserError(c, err)
	}
	return paged(c, users, total, req.Page, req.PerPage)
}

// PATCH /users/:id
func (h *UserHandler) Update(c fiber.Ctx) error {
	actor, okA := middleware.ActorFromFiber(c)
	if !okA {
		return unauthenticated(c)
	}

	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid user id")
	}

	var body struct {
		Role     *string `json:"role"`
		IsActive *bool   `json:"is_active"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	u, err := h.svc.Update(c.Context(), actor, userID, user.UpdateRequest{
		Role:     body.Role,
		IsActive: body.IsActive,
	})
	if err != nil {
		return mapUserError(c, err)
	}
	return ok(c, u)
}
