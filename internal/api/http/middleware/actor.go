package middleware

import (
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/medorahq/medora_backend/internal/repo"
	entassistant "github.com/medorahq/medora_backend/internal/repo/assistant"
	entdoctor "github.com/medorahq/medora_backend/internal/repo/doctor"
	entpatient "github.com/medorahq/medora_backend/internal/repo/patient"
	"github.com/medorahq/medora_backend/pkg/authorize"
	pasetotoken "github.com/medorahq/medora_backend/pkg/paseto"
)

const LocalActor = "auth.actor"

// ResolveActor turns verified claims into an authorize.Actor, looking up the
// doctor/assistant/patient profile linked to the user where the role has one.
// Must run after AuthRequired.
func ResolveActor(db *repo.Client) fiber.Handler {
	return func(c fiber.Ctx) error {
		claims, ok := pasetotoken.ClaimsFromFiber(c)
		if !ok {
			return fiber.ErrUnauthorized
		}

		role, err := authorize.ParseRole(claims.Role)
		if err != nil {
			return fiber.ErrUnauthorized
		}

		actor := authorize.Actor{
			UserID:   claims.UserID,
			ClinicID: claims.ClinicID,
			Role:     role,
		}

		// Profile-less accounts keep ProfileID nil; row-level ownership
		// checks then deny anything ownership-scoped.
		switch role {
		case authorize.RoleDoctor:
			actor.ProfileID = profileID(c, func() (uuid.UUID, error) {
				return db.Doctor.Query().
					Where(entdoctor.UserID(claims.UserID), entdoctor.DeletedAtIsNil()).
					OnlyID(c.Context())
			})
		case authorize.RoleAssistant:
			actor.ProfileID = profileID(c, func() (uuid.UUID, error) {
				return db.Assistant.Query().
					Where(entassistant.UserID(claims.UserID), entassistant.DeletedAtIsNil()).
					OnlyID(c.Context())
			})
		case authorize.RolePatient:
			actor.ProfileID = profileID(c, func() (uuid.UUID, error) {
				return db.Patient.Query().
					Where(entpatient.UserID(claims.UserID), entpatient.DeletedAtIsNil()).
					OnlyID(c.Context())
			})
		}

		c.Locals(LocalActor, actor)
		return c.Next()
	}
}

func profileID(_ fiber.Ctx, fetch func() (uuid.UUID, error)) uuid.UUID {
	id, err := fetch()
	if err != nil {
		return uuid.Nil
	}
	return id
}

// ActorFromFiber retrieves the resolved actor from Fiber locals.
func ActorFromFiber(c fiber.Ctx) (authorize.Actor, bool) {
	v := c.Locals(LocalActor)
	a, ok := v.(authorize.Actor)
	return a, ok && a.UserID != uuid.Nil
}
