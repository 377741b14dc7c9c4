package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Assistant is a per-clinic staff profile for front-desk personnel.
type Assistant struct {
	ent.Schema
}

func (Assistant) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (Assistant) Fields() []ent.Field {
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

		field.String("title").
			Optional().
			Nillable().
			MaxLen(100),

		field.String("phone").
			Optional().
			Nillable().
			MaxLen(20).
			Comment("E.164 normalized"),

		field.Bool("is_active").Default(true),
	}
}

func (Assistant) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("clinic_id"),
		index.Fields("clinic_id", "user_id").Unique(),
	}
}
