package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// WeeklySlot defines a recurring weekly availability window for a doctor.
// Times are zero-padded "HH:MM" strings, so lexicographic order is
// chronological order within a day.
type WeeklySlot struct {
	ent.Schema
}

func (WeeklySlot) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (WeeklySlot) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("clinic_id", uuid.UUID{}).
			Comment("FK → clinics.id"),

		field.UUID("doctor_id", uuid.UUID{}).
			Comment("FK → doctors.id"),

		field.Int8("weekday").
			Min(1).
			Max(7).
			Comment("ISO weekday: 1=Monday … 7=Sunday"),

		field.String("start_time").
			MaxLen(5).
			Comment(`Zero-padded "HH:MM"`),

		field.String("end_time").
			MaxLen(5).
			Comment(`Zero-padded "HH:MM"`),

		field.Int("duration_min").
			Positive().
			Default(30).
			Comment("Length of bookable slots carved from this window"),

		field.Bool("is_active").
			Default(true),
	}
}

func (WeeklySlot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("doctor_id", "weekday", "is_active"),
		index.Fields("clinic_id"),
	}
}
