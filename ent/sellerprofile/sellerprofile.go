// Code generated by ent, DO NOT EDIT.

package sellerprofile

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the sellerprofile type in the database.
	Label = "seller_profile"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldMobile holds the string denoting the mobile field in the database.
	FieldMobile = "mobile"
	// FieldFirstName holds the string denoting the first_name field in the database.
	FieldFirstName = "first_name"
	// FieldLastName holds the string denoting the last_name field in the database.
	FieldLastName = "last_name"
	// FieldBusinessName holds the string denoting the business_name field in the database.
	FieldBusinessName = "business_name"
	// FieldEmail holds the string denoting the email field in the database.
	FieldEmail = "email"
	// FieldWhatsapp holds the string denoting the whatsapp field in the database.
	FieldWhatsapp = "whatsapp"
	// FieldPincode holds the string denoting the pincode field in the database.
	FieldPincode = "pincode"
	// FieldPlotNumber holds the string denoting the plot_number field in the database.
	FieldPlotNumber = "plot_number"
	// FieldBuildingName holds the string denoting the building_name field in the database.
	FieldBuildingName = "building_name"
	// FieldStreetName holds the string denoting the street_name field in the database.
	FieldStreetName = "street_name"
	// FieldLandmark holds the string denoting the landmark field in the database.
	FieldLandmark = "landmark"
	// FieldArea holds the string denoting the area field in the database.
	FieldArea = "area"
	// FieldCity holds the string denoting the city field in the database.
	FieldCity = "city"
	// FieldState holds the string denoting the state field in the database.
	FieldState = "state"
	// FieldCategories holds the string denoting the categories field in the database.
	FieldCategories = "categories"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCurrentStep holds the string denoting the current_step field in the database.
	FieldCurrentStep = "current_step"
	// FieldSubmitStage holds the string denoting the submit_stage field in the database.
	FieldSubmitStage = "submit_stage"
	// FieldStoreID holds the string denoting the store_id field in the database.
	FieldStoreID = "store_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the sellerprofile in the database.
	Table = "seller_profiles"
)

// Columns holds all SQL columns for sellerprofile fields.
var Columns = []string{
	FieldID,
	FieldMobile,
	FieldFirstName,
	FieldLastName,
	FieldBusinessName,
	FieldEmail,
	FieldWhatsapp,
	FieldPincode,
	FieldPlotNumber,
	FieldBuildingName,
	FieldStreetName,
	FieldLandmark,
	FieldArea,
	FieldCity,
	FieldState,
	FieldCategories,
	FieldStatus,
	FieldCurrentStep,
	FieldSubmitStage,
	FieldStoreID,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// DefaultFirstName holds the default value on creation for the "first_name" field.
	DefaultFirstName string
	// DefaultLastName holds the default value on creation for the "last_name" field.
	DefaultLastName string
	// DefaultBusinessName holds the default value on creation for the "business_name" field.
	DefaultBusinessName string
	// DefaultPincode holds the default value on creation for the "pincode" field.
	DefaultPincode string
	// DefaultPlotNumber holds the default value on creation for the "plot_number" field.
	DefaultPlotNumber string
	// DefaultBuildingName holds the default value on creation for the "building_name" field.
	DefaultBuildingName string
	// DefaultStreetName holds the default value on creation for the "street_name" field.
	DefaultStreetName string
	// DefaultLandmark holds the default value on creation for the "landmark" field.
	DefaultLandmark string
	// DefaultArea holds the default value on creation for the "area" field.
	DefaultArea string
	// DefaultCity holds the default value on creation for the "city" field.
	DefaultCity string
	// DefaultState holds the default value on creation for the "state" field.
	DefaultState string
	// DefaultCurrentStep holds the default value on creation for the "current_step" field.
	DefaultCurrentStep int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusDraft is the default value of the Status enum.
const DefaultStatus = StatusDraft

// Status values.
const (
	StatusDraft Status = "draft"
	StatusFinal Status = "final"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusDraft, StatusFinal:
		return nil
	default:
		return fmt.Errorf("sellerprofile: invalid enum value for status field: %q", s)
	}
}

// SubmitStage defines the type for the "submit_stage" enum field.
type SubmitStage string

// SubmitStageNone is the default value of the SubmitStage enum.
const DefaultSubmitStage = SubmitStageNone

// SubmitStage values.
const (
	SubmitStageNone           SubmitStage = "none"
	SubmitStageAccountCreated SubmitStage = "account_created"
	SubmitStageSignedIn       SubmitStage = "signed_in"
	SubmitStageCompleted      SubmitStage = "completed"
)

func (ss SubmitStage) String() string {
	return string(ss)
}

// SubmitStageValidator is a validator for the "submit_stage" field enum values. It is called by the builders before save.
func SubmitStageValidator(ss SubmitStage) error {
	switch ss {
	case SubmitStageNone, SubmitStageAccountCreated, SubmitStageSignedIn, SubmitStageCompleted:
		return nil
	default:
		return fmt.Errorf("sellerprofile: invalid enum value for submit_stage field: %q", ss)
	}
}

// OrderOption defines the ordering options for the SellerProfile queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByMobile orders the results by the mobile field.
func ByMobile(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMobile, opts...).ToFunc()
}

// ByFirstName orders the results by the first_name field.
func ByFirstName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFirstName, opts...).ToFunc()
}

// ByLastName orders the results by the last_name field.
func ByLastName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastName, opts...).ToFunc()
}

// ByBusinessName orders the results by the business_name field.
func ByBusinessName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBusinessName, opts...).ToFunc()
}

// ByEmail orders the results by the email field.
func ByEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmail, opts...).ToFunc()
}

// ByWhatsapp orders the results by the whatsapp field.
func ByWhatsapp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWhatsapp, opts...).ToFunc()
}

// ByPincode orders the results by the pincode field.
func ByPincode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPincode, opts...).ToFunc()
}

// ByPlotNumber orders the results by the plot_number field.
func ByPlotNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlotNumber, opts...).ToFunc()
}

// ByBuildingName orders the results by the building_name field.
func ByBuildingName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBuildingName, opts...).ToFunc()
}

// ByStreetName orders the results by the street_name field.
func ByStreetName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStreetName, opts...).ToFunc()
}

// ByLandmark orders the results by the landmark field.
func ByLandmark(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLandmark, opts...).ToFunc()
}

// ByArea orders the results by the area field.
func ByArea(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldArea, opts...).ToFunc()
}

// ByCity orders the results by the city field.
func ByCity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCity, opts...).ToFunc()
}

// ByState orders the results by the state field.
func ByState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldState, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCurrentStep orders the results by the current_step field.
func ByCurrentStep(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentStep, opts...).ToFunc()
}

// BySubmitStage orders the results by the submit_stage field.
func BySubmitStage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubmitStage, opts...).ToFunc()
}

// ByStoreID orders the results by the store_id field.
func ByStoreID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStoreID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
