package authorize

import (
	"errors"
	"log/slog"

	"github.com/google/uuid"
)

var (
	// ErrUnauthenticated means no identity could be resolved for the call.
	ErrUnauthenticated = errors.New("authentication required")

	// ErrForbidden means the identity is valid but the role, permission or
	// ownership check failed.
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound is returned for rows outside the actor's clinic so that
	// cross-tenant probing cannot distinguish "absent" from "not yours".
	ErrNotFound = errors.New("not found")
)

// Actor is the resolved identity of the caller.
type Actor struct {
	UserID   uuid.UUID
	ClinicID uuid.UUID
	Role     Role

	// ProfileID is the doctor/assistant/patient profile owned by the user,
	// uuid.Nil for CLINIC_ADMIN or profile-less accounts.
	ProfileID uuid.UUID
}

// Target describes the row an operation acts on. Zero-valued fields are not
// checked, so collection-level operations pass Target{ClinicID: ...} and
// row-level operations fill in whichever ownership field applies.
type Target struct {
	ClinicID uuid.UUID

	// DoctorID / PatientID / AssistantID tie the row to a profile; set for
	// ownership-scoped rows (appointments, weekly slots, profiles).
	DoctorID    uuid.UUID
	PatientID   uuid.UUID
	AssistantID uuid.UUID

	// OwnerUserID is the users.id owning the row, for self-scoped access.
	OwnerUserID uuid.UUID
}

// Can reports whether the actor's role holds perm. It ignores row-level
// ownership; use Authorize for the full decision.
func (a Actor) Can(perm Permission) bool {
	return RoleHas(a.Role, perm)
}

// Authorize is the full access decision, applied in fixed precedence:
//
//  1. authentication  → ErrUnauthenticated
//  2. tenancy         → ErrNotFound (cross-tenant rows look absent)
//  3. role/permission → ErrForbidden
//  4. ownership       → ErrForbidden
//
// It is a pure function of its inputs and safe to call from any goroutine.
func Authorize(a Actor, perm Permission, t Target) error {
	if a.UserID == uuid.Nil {
		return ErrUnauthenticated
	}

	if t.ClinicID != uuid.Nil && t.ClinicID != a.ClinicID {
		return ErrNotFound
	}

	if !a.Can(perm) {
		return ErrForbidden
	}

	switch a.Role {
	case RoleClinicAdmin:
		// Admins see every row of their clinic.
	case RoleDoctor:
		if t.DoctorID != uuid.Nil && t.DoctorID != a.ProfileID {
			return ErrForbidden
		}
	case RoleAssistant:
		if t.AssistantID != uuid.Nil && t.AssistantID != a.ProfileID {
			return ErrForbidden
		}
	case RolePatient:
		if t.PatientID != uuid.Nil && t.PatientID != a.ProfileID {
			return ErrForbidden
		}
		if t.OwnerUserID != uuid.Nil && t.OwnerUserID != a.UserID {
			return ErrForbidden
		}
	default:
		return ErrForbidden
	}

	return nil
}

// AuthorizeLogged wraps Authorize with a structured decision log. Denials
// log at Warn, grants at Debug.
func AuthorizeLogged(logger *slog.Logger, a Actor, perm Permission, t Target) error {
	if logger == nil {
		logger = slog.Default()
	}

	err := Authorize(a, perm, t)

	attrs := []any{
		"user_id", a.UserID.String(),
		"clinic_id", a.ClinicID.String(),
		"role", string(a.Role),
		"permission", string(perm),
		"allowed", err == nil,
	}

	if err != nil {
		attrs = append(attrs, "reason", err.Error())
		logger.Warn("authz_decision", attrs...)
	} else {
		logger.Debug("authz_decision", attrs...)
	}

	return err
}
