package schedule

import (
	"testing"

	"github.com/google/uuid"

	"github.com/medorahq/medora_backend/pkg/authorize"
)

func TestListDoctorIDPinsDoctorsToOwnProfile(t *testing.T) {
	clinic := uuid.New()
	ownProfile := uuid.New()
	otherDoctor := uuid.New()

	tests := []struct {
		name  string
		actor authorize.Actor
		want  uuid.UUID
	}{
		{
			name: "doctor asking for another doctor is pinned to self",
			actor: authorize.Actor{
				UserID:    uuid.New(),
				ClinicID:  clinic,
				Role:      authorize.RoleDoctor,
				ProfileID: ownProfile,
			},
			want: ownProfile,
		},
		{
			name: "admin may list any doctor",
			actor: authorize.Actor{
				UserID:   uuid.New(),
				ClinicID: clinic,
				Role:     authorize.RoleClinicAdmin,
			},
			want: otherDoctor,
		},
		{
			name: "assistant may list any doctor",
			actor: authorize.Actor{
				UserID:    uuid.New(),
				ClinicID:  clinic,
				Role:      authorize.RoleAssistant,
				ProfileID: uuid.New(),
			},
			want: otherDoctor,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := listDoctorID(tt.actor, otherDoctor); got != tt.want {
				t.Errorf("listDoctorID() = %s, want %s", got, tt.want)
			}
		})
	}
}
