package audit

import (
	"testing"

	"github.com/google/uuid"

	"github.com/medorahq/medora_backend/pkg/authorize"
)

func TestDoctorScopeRestrictsDoctorsOnly(t *testing.T) {
	profile := uuid.New()

	tests := []struct {
		name       string
		actor      authorize.Actor
		wantScoped bool
		wantID     uuid.UUID
	}{
		{
			name: "doctor is scoped to own profile",
			actor: authorize.Actor{
				UserID:    uuid.New(),
				ClinicID:  uuid.New(),
				Role:      authorize.RoleDoctor,
				ProfileID: profile,
			},
			wantScoped: true,
			wantID:     profile,
		},
		{
			name: "admin sees the whole clinic trail",
			actor: authorize.Actor{
				UserID:   uuid.New(),
				ClinicID: uuid.New(),
				Role:     authorize.RoleClinicAdmin,
			},
			wantScoped: false,
		},
		{
			name: "assistant is not doctor-scoped",
			actor: authorize.Actor{
				UserID:    uuid.New(),
				ClinicID:  uuid.New(),
				Role:      authorize.RoleAssistant,
				ProfileID: uuid.New(),
			},
			wantScoped: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, scoped := doctorScope(tt.actor)
			if scoped != tt.wantScoped {
				t.Fatalf("doctorScope() scoped = %v, want %v", scoped, tt.wantScoped)
			}
			if scoped && id != tt.wantID {
				t.Errorf("doctorScope() id = %s, want %s", id, tt.wantID)
			}
		})
	}
}
