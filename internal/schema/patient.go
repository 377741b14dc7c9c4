package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Patient is a per-clinic patient record. The user account is optional so
// walk-in patients without portal access can still be scheduled.
type Patient struct {
	ent.Schema
}

func (Patient) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (Patient) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("clinic_id", uuid.UUID{}).
			Comment("FK → clinics.id"),

		field.UUID("user_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("FK → users.id (portal account, if any)"),

		field.String("first_name").
			MaxLen(100).
			NotEmpty(),

		field.String("last_name").
			MaxLen(100).
			NotEmpty(),

		field.String("phone").
			Optional().
			Nillable().
			MaxLen(20).
			Comment("E.164 normalized; reminder SMS target"),

		field.String("email").
			Optional().
			Nillable().
			MaxLen(255).
			Comment("Reminder email target"),

		field.Time("date_of_birth").
			Optional().
			Nillable(),

		field.Enum("gender").
			Values("male", "female", "other").
			Optional().
			Nillable(),

		field.Text("notes").
			Optional().
			Nillable(),

		field.Bool("is_active").Default(true),
	}
}

func (Patient) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("clinic_id"),
		index.Fields("clinic_id", "user_id").Unique(),
		index.Fields("clinic_id", "last_name"),
	}
}
