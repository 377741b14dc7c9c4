package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/medorahq/medora_backend/pkg/authorize"
)

// Machine-readable error codes carried next to the human message.
const (
	codeUnauthenticated   = "UNAUTHENTICATED"
	codeForbidden         = "FORBIDDEN"
	codeNotFound          = "NOT_FOUND"
	codeBadRequest        = "BAD_REQUEST"
	codeConflict          = "CONFLICT"
	codeWebhookTestFailed = "WEBHOOK_TEST_FAILED"
	codeInternal          = "INTERNAL"
)

func ok(c fiber.Ctx, data any) error {
	return c.JSON(fiber.Map{"data": data})
}

// paged wraps list responses with pagination metadata.
func paged(c fiber.Ctx, items any, total, page, perPage int) error {
	return c.JSON(fiber.Map{
		"data": items,
		"meta": fiber.Map{"total": total, "page": page, "per_page": perPage},
	})
}

func created(c fiber.Ctx, data any) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": data})
}

func noContent(c fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}

func fail(c fiber.Ctx, status int, code, msg string) error {
	return c.Status(status).JSON(fiber.Map{"error": msg, "code": code})
}

func badRequest(c fiber.Ctx, msg string) error {
	return fail(c, fiber.StatusBadRequest, codeBadRequest, msg)
}

func unauthenticated(c fiber.Ctx) error {
	return fail(c, fiber.StatusUnauthorized, codeUnauthenticated, "authentication required")
}

func forbidden(c fiber.Ctx) error {
	return fail(c, fiber.StatusForbidden, codeForbidden, "forbidden")
}

func notFound(c fiber.Ctx, msg string) error {
	return fail(c, fiber.StatusNotFound, codeNotFound, msg)
}

func conflict(c fiber.Ctx, msg string) error {
	return fail(c, fiber.StatusConflict, codeConflict, msg)
}

func internalError(c fiber.Ctx) error {
	return fail(c, fiber.StatusInternalServerError, codeInternal, "internal server error")
}

// normPage mirrors the services' pagination defaults so response metadata
// reports the values actually applied.
func normPage(page, perPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}
	return page, perPage
}

// accessError translates the shared authorization sentinels. Handlers try it
// first, then map their own domain errors.
func accessError(c fiber.Ctx, err error) (error, bool) {
	switch {
	case errors.Is(err, authorize.ErrUnauthenticated):
		return unauthenticated(c), true
	case errors.Is(err, authorize.ErrForbidden):
		return forbidden(c), true
	case errors.Is(err, authorize.ErrNotFound):
		return notFound(c, "not found"), true
	}
	return nil, false
}
