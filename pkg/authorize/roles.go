package authorize

import "fmt"

// Role is the closed set of identity categories. Every user holds exactly
// one role inside exactly one clinic.
type Role string

const (
	RoleClinicAdmin Role = "CLINIC_ADMIN"
	RoleDoctor      Role = "DOCTOR"
	RoleAssistant   Role = "ASSISTANT"
	RolePatient     Role = "PATIENT"
)

var AllRoles = []Role{
	RoleClinicAdmin,
	RoleDoctor,
	RoleAssistant,
	RolePatient,
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleClinicAdmin, RoleDoctor, RoleAssistant, RolePatient:
		return true
	}
	return false
}

// ParseRole converts a stored role string into a Role.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return r, nil
}
