package authorize

import (
	"testing"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Role
		wantErr bool
	}{
		{"clinic admin", "CLINIC_ADMIN", RoleClinicAdmin, false},
		{"doctor", "DOCTOR", RoleDoctor, false},
		{"assistant", "ASSISTANT", RoleAssistant, false},
		{"patient", "PATIENT", RolePatient, false},
		{"empty", "", "", true},
		{"lowercase", "doctor", "", true},
		{"unknown", "SUPERADMIN", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRole(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseRole(%q) expected error, got %q", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseRole(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseRole(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestAllRolesValid(t *testing.T) {
	for _, r := range AllRoles {
		if !r.Valid() {
			t.Errorf("expected role %q to be valid", r)
		}
	}
}

func TestRolePermissionsCoversAllRoles(t *testing.T) {
	for _, r := range AllRoles {
		if _, ok := RolePermissions[r]; !ok {
			t.Errorf("expected role %q to have a permission set", r)
		}
	}
}

func TestClinicAdminHoldsAllPermissions(t *testing.T) {
	for _, p := range AllPermissions {
		if !RoleHas(RoleClinicAdmin, p) {
			t.Errorf("expected CLINIC_ADMIN to hold %q", p)
		}
	}
}

func TestPatientCannotMutateSchedules(t *testing.T) {
	denied := []Permission{
		PermAppointmentCreate,
		PermWeeklySlotCreate,
		PermWeeklySlotUpdate,
		PermReminderRuleCreate,
		PermWebhookCreate,
		PermUserCreate,
	}
	for _, p := range denied {
		if RoleHas(RolePatient, p) {
			t.Errorf("expected PATIENT to be denied %q", p)
		}
	}
}
