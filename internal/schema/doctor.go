package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Doctor is a per-clinic practitioner profile. The user account is optional
// so a clinic can keep records for doctors who never log in.
type Doctor struct {
	ent.Schema
}

func (Doctor) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (Doctor) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("clinic_id", uuid.UUID{}).
			Comment("FK → clinics.id"),

		field.UUID("user_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("FK → users.id (login account, if any)"),

		field.String("first_name").
			MaxLen(100).
			NotEmpty(),

		field.String("last_name").
			MaxLen(100).
			NotEmpty(),

		field.String("specialty").
			Optional().
			Nillable().
			MaxLen(255),

		field.String("phone").
			Optional().
			Nillable().
			MaxLen(20).
			Comment("E.164 normalized"),

		field.Bool("is_active").Default(true),
	}
}

func (Doctor) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("clinic_id"),
		index.Fields("clinic_id", "user_id").Unique(),
	}
}
