package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SellerProfile holds the schema definition for the SellerProfile entity.
// One record per mobile number; drafts and completed registrations share
// the same table, distinguished by status.
type SellerProfile struct {
	ent.Schema
}

// Fields of the SellerProfile.
func (SellerProfile) Fields() []ent.Field {
	return []ent.Field{
		field.String("mobile").
			Unique().
			NotEmpty().
			Comment("10-digit seller mobile number, the upsert key"),
		field.String("first_name").
			Default("").
			Comment("Seller first name"),
		field.String("last_name").
			Default("").
			Comment("Seller last name"),
		field.String("business_name").
			Default("").
			Comment("Registered business name"),
		field.String("email").
			Optional().
			Comment("Contact email, optional"),
		field.String("whatsapp").
			Optional().
			Comment("WhatsApp number when different from mobile"),
		field.String("pincode").
			Default("").
			Comment("Postal code"),
		field.String("plot_number").
			Default("").
			Comment("Address: plot number"),
		field.String("building_name").
			Default("").
			Comment("Address: building name"),
		field.String("street_name").
			Default("").
			Comment("Address: street name"),
		field.String("landmark").
			Default("").
			Comment("Address: nearby landmark"),
		field.String("area").
			Default("").
			Comment("Address: area/locality"),
		field.String("city").
			Default("").
			Comment("Address: city"),
		field.String("state").
			Default("").
			Comment("Address: state"),
		field.Strings("categories").
			Optional().
			Comment("Business categories the seller trades in"),
		field.Enum("status").
			Values("draft", "final").
			Default("draft").
			Comment("draft = steps 1-2 saved and resumable, final = step 3 complete"),
		field.Int("current_step").
			Default(1).
			Comment("Furthest wizard step the seller has reached"),
		field.Enum("submit_stage").
			Values("none", "account_created", "signed_in", "completed").
			Default("none").
			Comment("Furthest completed stage of the final submission sequence, for safe resume"),
		field.String("store_id").
			Optional().
			Comment("Commerce backend store identifier once assigned"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("When the draft was first created"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last draft save or submission"),
	}
}

// Indexes of the SellerProfile.
func (SellerProfile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("updated_at"),
	}
}
