package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RegistrationEvent records each step of a seller's onboarding for audit
// and support. Append-only.
type RegistrationEvent struct {
	ent.Schema
}

// Fields of the RegistrationEvent.
func (RegistrationEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("mobile").
			NotEmpty().
			Comment("Mobile number the event belongs to"),
		field.Enum("event").
			Values(
				"otp_requested",
				"otp_verified",
				"draft_saved",
				"account_created",
				"signed_in",
				"profile_saved",
				"completed",
				"failed",
			).
			Comment("What happened"),
		field.String("detail").
			Optional().
			Comment("Free-form detail, e.g. the collaborator error message"),
		field.String("ip_address").
			Optional().
			Comment("Client IP when available"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the RegistrationEvent.
func (RegistrationEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("mobile", "created_at"),
	}
}
