package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// ReminderRule declares "send a <channel> reminder <offset_min> minutes
// before the appointment" for a whole clinic.
type ReminderRule struct {
	ent.Schema
}

func (ReminderRule) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (ReminderRule) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("clinic_id", uuid.UUID{}).
			Comment("FK → clinics.id"),

		field.Int("offset_min").
			Positive().
			Comment("Minutes before appointment start"),

		field.Enum("channel").
			Values("SMS", "EMAIL"),

		field.Bool("is_active").
			Default(true),

		field.Text("template").
			Optional().
			Nillable().
			Comment("Message template; a built-in default is used when empty"),
	}
}

func (ReminderRule) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("clinic_id", "offset_min", "channel").Unique(),
		index.Fields("clinic_id", "is_active"),
	}
}
