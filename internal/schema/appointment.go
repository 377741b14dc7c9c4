package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Appointment is a booked visit between a doctor and a patient.
// The interval [start_time, end_time) is half-open; two appointments for the
// same doctor conflict when their intervals overlap, unless one of them is
// CANCELLED or NOSHOW.
type Appointment struct {
	ent.Schema
}

func (Appointment) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Appointment) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("clinic_id", uuid.UUID{}).
			Comment("FK → clinics.id"),

		field.UUID("doctor_id", uuid.UUID{}).
			Comment("FK → doctors.id"),

		field.UUID("patient_id", uuid.UUID{}).
			Comment("FK → patients.id"),

		field.Time("start_time"),

		field.Time("end_time"),

		field.Enum("status").
			Values("PENDING", "CONFIRMED", "CANCELLED", "NOSHOW", "COMPLETED").
			Default("PENDING"),

		field.String("source").
			MaxLen(50).
			Default("staff").
			Comment("Who booked it: staff, portal, api"),

		field.Text("reason").
			Optional().
			Nillable(),

		field.Text("notes").
			Optional().
			Nillable(),

		field.UUID("created_by_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("FK → users.id of the booking actor"),

		field.Time("cancelled_at").
			Optional().
			Nillable(),

		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

func (Appointment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("clinic_id", "doctor_id", "start_time"),
		index.Fields("clinic_id", "patient_id"),
		index.Fields("doctor_id", "status", "start_time"),
	}
}
