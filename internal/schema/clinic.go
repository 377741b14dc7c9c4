package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Clinic is a tenant. Every other record carries its clinic_id and is
// invisible outside it.
type Clinic struct {
	ent.Schema
}

func (Clinic) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (Clinic) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			MaxLen(255).
			NotEmpty(),

		field.String("timezone").
			MaxLen(64).
			Default("UTC").
			Comment("IANA timezone name, e.g. Europe/Berlin"),

		field.String("plan").
			MaxLen(50).
			Default("free"),

		field.Enum("plan_status").
			Values("ACTIVE", "PAST_DUE", "CANCELLED").
			Default("ACTIVE"),

		field.Time("plan_until").
			Optional().
			Nillable(),

		field.Bool("is_active").Default(true),
	}
}
