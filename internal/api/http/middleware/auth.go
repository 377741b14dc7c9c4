package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"

	pasetotoken "github.com/medorahq/medora_backend/pkg/paseto"
	"github.com/medorahq/medora_backend/pkg/session"
)

// AuthRequired validates a Bearer PASETO access token and checks that the
// session it was issued under is still alive. On success, stores
// *pasetotoken.Claims in c.Locals(pasetotoken.CtxKeyClaims).
func AuthRequired(mgr *pasetotoken.Manager, sessions session.Store) fiber.Handler {
	return func(c fiber.Ctx) error {
		h := c.Get("Authorization")
		if h == "" {
			return fiber.ErrUnauthorized
		}

		parts := strings.SplitN(h, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return fiber.ErrUnauthorized
		}

		claims, err := mgr.Verify(strings.TrimSpace(parts[1]))
		if err != nil {
			return fiber.ErrUnauthorized
		}

		// Only access tokens are accepted on protected routes
		if claims.Type != pasetotoken.TokenTypeAccess {
			return fiber.ErrUnauthorized
		}

		// A revoked session invalidates the token before its signed expiry.
		if claims.SessionID != nil {
			if _, err := sessions.Get(c.Context(), *claims.SessionID); err != nil {
				return fiber.ErrUnauthorized
			}
		}

		c.Locals(pasetotoken.CtxKeyClaims, claims)
		return c.Next()
	}
}
