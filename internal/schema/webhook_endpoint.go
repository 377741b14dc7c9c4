package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// WebhookEndpoint is a clinic-registered URL that receives signed event
// deliveries.
type WebhookEndpoint struct {
	ent.Schema
}

func (WebhookEndpoint) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (WebhookEndpoint) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("clinic_id", uuid.UUID{}).
			Comment("FK → clinics.id"),

		field.String("url").
			MaxLen(500).
			NotEmpty(),

		field.String("secret").
			MinLen(32).
			Sensitive().
			Comment("HMAC-SHA256 signing key"),

		field.JSON("events", []string{}).
			Comment("Subscribed event names, subset of the supported set"),

		field.Bool("is_active").
			Default(true),

		field.Int("failure_count").
			Default(0).
			NonNegative().
			Comment("Consecutive delivery failures; reset on success"),

		field.Time("last_success_at").
			Optional().
			Nillable(),

		field.Time("last_failure_at").
			Optional().
			Nillable(),
	}
}

func (WebhookEndpoint) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("clinic_id", "url").Unique(),
		index.Fields("clinic_id", "is_active"),
	}
}
