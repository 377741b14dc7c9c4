// Package events defines the domain events the backend emits and the NATS
// publisher that carries them to background workers.
package events

// Event names double as webhook subscription keys, so the set here is the
// allow-list for webhook endpoint configuration.
const (
	AppointmentCreated   = "appointment.created"
	AppointmentConfirmed = "appointment.confirmed"
	AppointmentCancelled = "appointment.cancelled"
	AppointmentCompleted = "appointment.completed"
	AppointmentNoShow    = "appointment.noshow"

	PatientCreated = "patient.created"
	PatientUpdated = "patient.updated"
)

// All lists every event that can be emitted or subscribed to.
var All = []string{
	AppointmentCreated,
	AppointmentConfirmed,
	AppointmentCancelled,
	AppointmentCompleted,
	AppointmentNoShow,
	PatientCreated,
	PatientUpdated,
}

// Valid reports whether name is a known event.
func Valid(name string) bool {
	for _, e := range All {
		if e == name {
			return true
		}
	}
	return false
}
