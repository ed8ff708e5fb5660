// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// RegistrationEventsColumns holds the columns for the "registration_events" table.
	RegistrationEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "mobile", Type: field.TypeString},
		{Name: "event", Type: field.TypeEnum, Enums: []string{"otp_requested", "otp_verified", "draft_saved", "account_created", "signed_in", "profile_saved", "completed", "failed"}},
		{Name: "detail", Type: field.TypeString, Nullable: true},
		{Name: "ip_address", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// RegistrationEventsTable holds the schema information for the "registration_events" table.
	RegistrationEventsTable = &schema.Table{
		Name:       "registration_events",
		Columns:    RegistrationEventsColumns,
		PrimaryKey: []*schema.Column{RegistrationEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "registrationevent_mobile_created_at",
				Unique:  false,
				Columns: []*schema.Column{RegistrationEventsColumns[1], RegistrationEventsColumns[5]},
			},
		},
	}
	// SellerProfilesColumns holds the columns for the "seller_profiles" table.
	SellerProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "mobile", Type: field.TypeString, Unique: true},
		{Name: "first_name", Type: field.TypeString, Default: ""},
		{Name: "last_name", Type: field.TypeString, Default: ""},
		{Name: "business_name", Type: field.TypeString, Default: ""},
		{Name: "email", Type: field.TypeString, Nullable: true},
		{Name: "whatsapp", Type: field.TypeString, Nullable: true},
		{Name: "pincode", Type: field.TypeString, Default: ""},
		{Name: "plot_number", Type: field.TypeString, Default: ""},
		{Name: "building_name", Type: field.TypeString, Default: ""},
		{Name: "street_name", Type: field.TypeString, Default: ""},
		{Name: "landmark", Type: field.TypeString, Default: ""},
		{Name: "area", Type: field.TypeString, Default: ""},
		{Name: "city", Type: field.TypeString, Default: ""},
		{Name: "state", Type: field.TypeString, Default: ""},
		{Name: "categories", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"draft", "final"}, Default: "draft"},
		{Name: "current_step", Type: field.TypeInt, Default: 1},
		{Name: "submit_stage", Type: field.TypeEnum, Enums: []string{"none", "account_created", "signed_in", "completed"}, Default: "none"},
		{Name: "store_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SellerProfilesTable holds the schema information for the "seller_profiles" table.
	SellerProfilesTable = &schema.Table{
		Name:       "seller_profiles",
		Columns:    SellerProfilesColumns,
		PrimaryKey: []*schema.Column{SellerProfilesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sellerprofile_status",
				Unique:  false,
				Columns: []*schema.Column{SellerProfilesColumns[16]},
			},
			{
				Name:    "sellerprofile_updated_at",
				Unique:  false,
				Columns: []*schema.Column{SellerProfilesColumns[21]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		RegistrationEventsTable,
		SellerProfilesTable,
	}
)

func init() {
}
