package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Reminder is one scheduled delivery for one appointment, materialized from
// a ReminderRule. The (appointment_id, rule_id) pair is unique so generation
// is idempotent.
type Reminder struct {
	ent.Schema
}

func (Reminder) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Reminder) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("clinic_id", uuid.UUID{}).
			Comment("FK → clinics.id"),

		field.UUID("appointment_id", uuid.UUID{}).
			Comment("FK → appointments.id"),

		field.UUID("rule_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("FK → reminder_rules.id; nil for ad-hoc reminders"),

		field.Enum("channel").
			Values("SMS", "EMAIL"),

		field.Time("scheduled_for").
			Comment("appointment start minus the rule offset"),

		field.Enum("status").
			Values("SCHEDULED", "SENT", "FAILED", "SKIPPED").
			Default("SCHEDULED"),

		field.Time("sent_at").
			Optional().
			Nillable(),

		field.Text("error").
			Optional().
			Nillable().
			Comment("Last delivery error for FAILED reminders"),
	}
}

func (Reminder) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("appointment_id", "rule_id").Unique(),
		index.Fields("status", "scheduled_for"),
		index.Fields("clinic_id"),
	}
}
