package events

import (
	"testing"

	"github.com/google/uuid"
)

func TestValid(t *testing.T) {
	for _, e := range All {
		if !Valid(e) {
			t.Errorf("Valid(%q) = false, want true", e)
		}
	}
	if Valid("appointment.rescheduled") {
		t.Error("Valid() accepted unknown event")
	}
	if Valid("") {
		t.Error("Valid() accepted empty event")
	}
}

func TestParseSubjectRoundTrip(t *testing.T) {
	clinicID := uuid.New()
	subject := "medora." + AppointmentCreated + "." + clinicID.String()

	event, gotClinic, err := ParseSubject(subject)
	if err != nil {
		t.Fatalf("ParseSubject(%q) error: %v", subject, err)
	}
	if event != AppointmentCreated {
		t.Errorf("event = %q, want %q", event, AppointmentCreated)
	}
	if gotClinic != clinicID {
		t.Errorf("clinicID = %s, want %s", gotClinic, clinicID)
	}
}

func TestParseSubjectRejects(t *testing.T) {
	tests := []string{
		"",
		"medora",
		"other.appointment.created." + uuid.New().String(),
		"medora.appointment.created.not-a-uuid",
		"medora.appointment.rescheduled." + uuid.New().String(),
	}
	for _, subject := range tests {
		if _, _, err := ParseSubject(subject); err == nil {
			t.Errorf("ParseSubject(%q) = nil error, want error", subject)
		}
	}
}
