package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// User is a login account scoped to one clinic.
type User struct {
	ent.Schema
}

func (User) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (User) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("clinic_id", uuid.UUID{}).
			Comment("FK → clinics.id"),

		field.String("email").
			MaxLen(255).
			NotEmpty(),

		field.String("password_hash").
			Sensitive(),

		field.Enum("role").
			Values("CLINIC_ADMIN", "DOCTOR", "ASSISTANT", "PATIENT"),

		field.Bool("is_active").Default(true),

		field.Int("token_version").
			Default(0).
			NonNegative().
			Comment("Bumped on password change; outstanding tokens with an older version are rejected"),

		// audit
		field.Time("last_login_at").
			Optional().
			Nillable(),

		field.Int("failed_login_attempts").
			Default(0).
			NonNegative(),

		field.Time("locked_until").
			Optional().
			Nillable().
			Comment("Account locked until this time after repeated login failures"),
	}
}

func (User) Indexes() []ent.Index {
	return []ent.Index{
		// Email is unique within a clinic, not globally.
		index.Fields("clinic_id", "email").Unique(),
		index.Fields("clinic_id", "role"),
	}
}
