package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// AuditLog is an append-only record of a mutation. Rows are never updated
// or deleted.
type AuditLog struct {
	ent.Schema
}

func (AuditLog) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (AuditLog) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("clinic_id", uuid.UUID{}).
			Comment("FK → clinics.id"),

		field.UUID("actor_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("FK → users.id; nil for system actions"),

		field.UUID("doctor_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("FK → doctors.id when the mutation touches one doctor's data"),

		field.String("action").
			MaxLen(100).
			NotEmpty().
			Comment("e.g. appointment.create, webhook_endpoint.delete"),

		field.String("entity").
			MaxLen(100).
			NotEmpty(),

		field.UUID("entity_id", uuid.UUID{}).
			Optional().
			Nillable(),

		field.JSON("metadata", map[string]any{}).
			Optional().
			Comment("Arbitrary JSON details"),
	}
}

func (AuditLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("clinic_id", "created_at"),
		index.Fields("clinic_id", "entity", "entity_id"),
		index.Fields("clinic_id", "doctor_id"),
	}
}
