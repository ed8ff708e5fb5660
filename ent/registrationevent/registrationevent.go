// Code generated by ent, DO NOT EDIT.

package registrationevent

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the registrationevent type in the database.
	Label = "registration_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldMobile holds the string denoting the mobile field in the database.
	FieldMobile = "mobile"
	// FieldEvent holds the string denoting the event field in the database.
	FieldEvent = "event"
	// FieldDetail holds the string denoting the detail field in the database.
	FieldDetail = "detail"
	// FieldIPAddress holds the string denoting the ip_address field in the database.
	FieldIPAddress = "ip_address"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the registrationevent in the database.
	Table = "registration_events"
)

// Columns holds all SQL columns for registrationevent fields.
var Columns = []string{
	FieldID,
	FieldMobile,
	FieldEvent,
	FieldDetail,
	FieldIPAddress,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// MobileValidator is a validator for the "mobile" field. It is called by the builders before save.
	MobileValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Event defines the type for the "event" enum field.
type Event string

// Event values.
const (
	EventOtpRequested   Event = "otp_requested"
	EventOtpVerified    Event = "otp_verified"
	EventDraftSaved     Event = "draft_saved"
	EventAccountCreated Event = "account_created"
	EventSignedIn       Event = "signed_in"
	EventProfileSaved   Event = "profile_saved"
	EventCompleted      Event = "completed"
	EventFailed         Event = "failed"
)

func (e Event) String() string {
	return string(e)
}

// EventValidator is a validator for the "event" field enum values. It is called by the builders before save.
func EventValidator(e Event) error {
	switch e {
	case EventOtpRequested, EventOtpVerified, EventDraftSaved, EventAccountCreated, EventSignedIn, EventProfileSaved, EventCompleted, EventFailed:
		return nil
	default:
		return fmt.Errorf("registrationevent: invalid enum value for event field: %q", e)
	}
}

// OrderOption defines the ordering options for the RegistrationEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByMobile orders the results by the mobile field.
func ByMobile(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMobile, opts...).ToFunc()
}

// ByEvent orders the results by the event field.
func ByEvent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEvent, opts...).ToFunc()
}

// ByDetail orders the results by the detail field.
func ByDetail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDetail, opts...).ToFunc()
}

// ByIPAddress orders the results by the ip_address field.
func ByIPAddress(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIPAddress, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
