package authorize

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

var (
	clinicA = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	clinicB = uuid.MustParse("22222222-2222-2222-2222-222222222222")

	adminID     = uuid.MustParse("aaaaaaaa-0000-0000-0000-000000000001")
	doctorUser  = uuid.MustParse("aaaaaaaa-0000-0000-0000-000000000002")
	patientUser = uuid.MustParse("aaaaaaaa-0000-0000-0000-000000000003")

	doctorProfile      = uuid.MustParse("dddddddd-0000-0000-0000-000000000001")
	otherDoctorProfile = uuid.MustParse("dddddddd-0000-0000-0000-000000000002")
	patientProfile     = uuid.MustParse("abcdabcd-0000-0000-0000-000000000001")
)

func TestAuthorizePrecedence(t *testing.T) {
	admin := Actor{UserID: adminID, ClinicID: clinicA, Role: RoleClinicAdmin}
	doctor := Actor{UserID: doctorUser, ClinicID: clinicA, Role: RoleDoctor, ProfileID: doctorProfile}
	patient := Actor{UserID: patientUser, ClinicID: clinicA, Role: RolePatient, ProfileID: patientProfile}

	tests := []struct {
		name    string
		actor   Actor
		perm    Permission
		target  Target
		wantErr error
	}{
		{
			name:    "unauthenticated",
			actor:   Actor{},
			perm:    PermAppointmentRead,
			target:  Target{ClinicID: clinicA},
			wantErr: ErrUnauthenticated,
		},
		{
			name:    "cross tenant reads as not found",
			actor:   admin,
			perm:    PermAppointmentRead,
			target:  Target{ClinicID: clinicB},
			wantErr: ErrNotFound,
		},
		{
			name: "cross tenant wins over missing permission",
			// Tenancy is checked before the permission table, so a patient
			// probing another clinic still sees NOT_FOUND.
			actor:   patient,
			perm:    PermWebhookCreate,
			target:  Target{ClinicID: clinicB},
			wantErr: ErrNotFound,
		},
		{
			name:    "missing permission",
			actor:   patient,
			perm:    PermAppointmentCreate,
			target:  Target{ClinicID: clinicA},
			wantErr: ErrForbidden,
		},
		{
			name:    "admin allowed",
			actor:   admin,
			perm:    PermWebhookCreate,
			target:  Target{ClinicID: clinicA},
			wantErr: nil,
		},
		{
			name:    "doctor own appointment",
			actor:   doctor,
			perm:    PermAppointmentRead,
			target:  Target{ClinicID: clinicA, DoctorID: doctorProfile},
			wantErr: nil,
		},
		{
			name:    "doctor other doctors appointment",
			actor:   doctor,
			perm:    PermAppointmentRead,
			target:  Target{ClinicID: clinicA, DoctorID: otherDoctorProfile},
			wantErr: ErrForbidden,
		},
		{
			name:    "admin ignores ownership",
			actor:   admin,
			perm:    PermAppointmentRead,
			target:  Target{ClinicID: clinicA, DoctorID: otherDoctorProfile},
			wantErr: nil,
		},
		{
			name:    "patient own appointment",
			actor:   patient,
			perm:    PermAppointmentRead,
			target:  Target{ClinicID: clinicA, PatientID: patientProfile},
			wantErr: nil,
		},
		{
			name:    "patient other patients appointment",
			actor:   patient,
			perm:    PermAppointmentRead,
			target:  Target{ClinicID: clinicA, PatientID: uuid.New()},
			wantErr: ErrForbidden,
		},
		{
			name:    "patient self-scoped row of another user",
			actor:   patient,
			perm:    PermPatientRead,
			target:  Target{ClinicID: clinicA, OwnerUserID: adminID},
			wantErr: ErrForbidden,
		},
		{
			name:    "collection scope has no ownership field",
			actor:   doctor,
			perm:    PermAppointmentList,
			target:  Target{ClinicID: clinicA},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Authorize(tt.actor, tt.perm, tt.target)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Authorize() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestAuthorizeUnknownRole(t *testing.T) {
	a := Actor{UserID: uuid.New(), ClinicID: clinicA, Role: Role("GHOST")}
	if err := Authorize(a, PermClinicRead, Target{ClinicID: clinicA}); !errors.Is(err, ErrForbidden) {
		t.Errorf("Authorize() with unknown role = %v, want %v", err, ErrForbidden)
	}
}
