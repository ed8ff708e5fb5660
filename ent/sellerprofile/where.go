// Code generated by ent, DO NOT EDIT.

package sellerprofile

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/bizmandi/storefront/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldLTE(FieldID, id))
}

// Mobile applies equality check predicate on the "mobile" field. It's identical to MobileEQ.
func Mobile(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldEQ(FieldMobile, v))
}

// FirstName applies equality check predicate on the "first_name" field. It's identical to FirstNameEQ.
func FirstName(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldEQ(FieldFirstName, v))
}

// LastName applies equality check predicate on the "last_name" field. It's identical to LastNameEQ.
func LastName(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldEQ(FieldLastName, v))
}

// BusinessName applies equality check predicate on the "business_name" field. It's identical to BusinessNameEQ.
func BusinessName(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldEQ(FieldBusinessName, v))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldEQ(FieldEmail, v))
}

// Whatsapp applies equality check predicate on the "whatsapp" field. It's identical to WhatsappEQ.
func Whatsapp(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldEQ(FieldWhatsapp, v))
}

// Pincode applies equality check predicate on the "pincode" field. It's identical to PincodeEQ.
func Pincode(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldEQ(FieldPincode, v))
}

// PlotNumber applies equality check predicate on the "plot_number" field. It's identical to PlotNumberEQ.
func PlotNumber(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldEQ(FieldPlotNumber, v))
}

// BuildingName applies equality check predicate on the "building_name" field. It's identical to BuildingNameEQ.
func BuildingName(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldEQ(FieldBuildingName, v))
}

// StreetName applies equality check predicate on the "street_name" field. It's identical to StreetNameEQ.
func StreetName(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldEQ(FieldStreetName, v))
}

// Landmark applies equality check predicate on the "landmark" field. It's identical to LandmarkEQ.
func Landmark(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldEQ(FieldLandmark, v))
}

// Area applies equality check predicate on the "area" field. It's identical to AreaEQ.
func Area(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldEQ(FieldArea, v))
}

// City applies equality check predicate on the "city" field. It's identical to CityEQ.
func City(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldEQ(FieldCity, v))
}

// State applies equality check predicate on the "state" field. It's identical to StateEQ.
func State(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldEQ(FieldState, v))
}

// CurrentStep applies equality check predicate on the "current_step" field. It's identical to CurrentStepEQ.
func CurrentStep(v int) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldEQ(FieldCurrentStep, v))
}

// StoreID applies equality check predicate on the "store_id" field. It's identical to StoreIDEQ.
func StoreID(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldEQ(FieldStoreID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldEQ(FieldUpdatedAt, v))
}

// MobileEQ applies the EQ predicate on the "mobile" field.
func MobileEQ(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldEQ(FieldMobile, v))
}

// MobileNEQ applies the NEQ predicate on the "mobile" field.
func MobileNEQ(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldNEQ(FieldMobile, v))
}

// MobileIn applies the In predicate on the "mobile" field.
func MobileIn(vs ...string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldIn(FieldMobile, vs...))
}

// MobileNotIn applies the NotIn predicate on the "mobile" field.
func MobileNotIn(vs ...string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldNotIn(FieldMobile, vs...))
}

// MobileGT applies the GT predicate on the "mobile" field.
func MobileGT(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldGT(FieldMobile, v))
}

// MobileGTE applies the GTE predicate on the "mobile" field.
func MobileGTE(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldGTE(FieldMobile, v))
}

// MobileLT applies the LT predicate on the "mobile" field.
func MobileLT(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldLT(FieldMobile, v))
}

// MobileLTE applies the LTE predicate on the "mobile" field.
func MobileLTE(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldLTE(FieldMobile, v))
}

// MobileContains applies the Contains predicate on the "mobile" field.
func MobileContains(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldContains(FieldMobile, v))
}

// MobileHasPrefix applies the HasPrefix predicate on the "mobile" field.
func MobileHasPrefix(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldHasPrefix(FieldMobile, v))
}

// MobileHasSuffix applies the HasSuffix predicate on the "mobile" field.
func MobileHasSuffix(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldHasSuffix(FieldMobile, v))
}

// MobileEqualFold applies the EqualFold predicate on the "mobile" field.
func MobileEqualFold(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldEqualFold(FieldMobile, v))
}

// MobileContainsFold applies the ContainsFold predicate on the "mobile" field.
func MobileContainsFold(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldContainsFold(FieldMobile, v))
}

// FirstNameEQ applies the EQ predicate on the "first_name" field.
func FirstNameEQ(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldEQ(FieldFirstName, v))
}

// FirstNameNEQ applies the NEQ predicate on the "first_name" field.
func FirstNameNEQ(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldNEQ(FieldFirstName, v))
}

// FirstNameIn applies the In predicate on the "first_name" field.
func FirstNameIn(vs ...string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldIn(FieldFirstName, vs...))
}

// FirstNameNotIn applies the NotIn predicate on the "first_name" field.
func FirstNameNotIn(vs ...string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldNotIn(FieldFirstName, vs...))
}

// FirstNameGT applies the GT predicate on the "first_name" field.
func FirstNameGT(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldGT(FieldFirstName, v))
}

// FirstNameGTE applies the GTE predicate on the "first_name" field.
func FirstNameGTE(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldGTE(FieldFirstName, v))
}

// FirstNameLT applies the LT predicate on the "first_name" field.
func FirstNameLT(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldLT(FieldFirstName, v))
}

// FirstNameLTE applies the LTE predicate on the "first_name" field.
func FirstNameLTE(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldLTE(FieldFirstName, v))
}

// FirstNameContains applies the Contains predicate on the "first_name" field.
func FirstNameContains(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldContains(FieldFirstName, v))
}

// FirstNameHasPrefix applies the HasPrefix predicate on the "first_name" field.
func FirstNameHasPrefix(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldHasPrefix(FieldFirstName, v))
}

// FirstNameHasSuffix applies the HasSuffix predicate on the "first_name" field.
func FirstNameHasSuffix(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldHasSuffix(FieldFirstName, v))
}

// FirstNameEqualFold applies the EqualFold predicate on the "first_name" field.
func FirstNameEqualFold(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldEqualFold(FieldFirstName, v))
}

// FirstNameContainsFold applies the ContainsFold predicate on the "first_name" field.
func FirstNameContainsFold(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldContainsFold(FieldFirstName, v))
}

// LastNameEQ applies the EQ predicate on the "last_name" field.
func LastNameEQ(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldEQ(FieldLastName, v))
}

// LastNameNEQ applies the NEQ predicate on the "last_name" field.
func LastNameNEQ(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldNEQ(FieldLastName, v))
}

// LastNameIn applies the In predicate on the "last_name" field.
func LastNameIn(vs ...string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldIn(FieldLastName, vs...))
}

// LastNameNotIn applies the NotIn predicate on the "last_name" field.
func LastNameNotIn(vs ...string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldNotIn(FieldLastName, vs...))
}

// LastNameGT applies the GT predicate on the "last_name" field.
func LastNameGT(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldGT(FieldLastName, v))
}

// LastNameGTE applies the GTE predicate on the "last_name" field.
func LastNameGTE(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldGTE(FieldLastName, v))
}

// LastNameLT applies the LT predicate on the "last_name" field.
func LastNameLT(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldLT(FieldLastName, v))
}

// LastNameLTE applies the LTE predicate on the "last_name" field.
func LastNameLTE(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldLTE(FieldLastName, v))
}

// LastNameContains applies the Contains predicate on the "last_name" field.
func LastNameContains(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldContains(FieldLastName, v))
}

// LastNameHasPrefix applies the HasPrefix predicate on the "last_name" field.
func LastNameHasPrefix(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldHasPrefix(FieldLastName, v))
}

// LastNameHasSuffix applies the HasSuffix predicate on the "last_name" field.
func LastNameHasSuffix(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldHasSuffix(FieldLastName, v))
}

// LastNameEqualFold applies the EqualFold predicate on the "last_name" field.
func LastNameEqualFold(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldEqualFold(FieldLastName, v))
}

// LastNameContainsFold applies the ContainsFold predicate on the "last_name" field.
func LastNameContainsFold(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldContainsFold(FieldLastName, v))
}

// BusinessNameEQ applies the EQ predicate on the "business_name" field.
func BusinessNameEQ(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldEQ(FieldBusinessName, v))
}

// BusinessNameNEQ applies the NEQ predicate on the "business_name" field.
func BusinessNameNEQ(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldNEQ(FieldBusinessName, v))
}

// BusinessNameIn applies the In predicate on the "business_name" field.
func BusinessNameIn(vs ...string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldIn(FieldBusinessName, vs...))
}

// BusinessNameNotIn applies the NotIn predicate on the "business_name" field.
func BusinessNameNotIn(vs ...string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldNotIn(FieldBusinessName, vs...))
}

// BusinessNameGT applies the GT predicate on the "business_name" field.
func BusinessNameGT(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldGT(FieldBusinessName, v))
}

// BusinessNameGTE applies the GTE predicate on the "business_name" field.
func BusinessNameGTE(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldGTE(FieldBusinessName, v))
}

// BusinessNameLT applies the LT predicate on the "business_name" field.
func BusinessNameLT(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldLT(FieldBusinessName, v))
}

// BusinessNameLTE applies the LTE predicate on the "business_name" field.
func BusinessNameLTE(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldLTE(FieldBusinessName, v))
}

// BusinessNameContains applies the Contains predicate on the "business_name" field.
func BusinessNameContains(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldContains(FieldBusinessName, v))
}

// BusinessNameHasPrefix applies the HasPrefix predicate on the "business_name" field.
func BusinessNameHasPrefix(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldHasPrefix(FieldBusinessName, v))
}

// BusinessNameHasSuffix applies the HasSuffix predicate on the "business_name" field.
func BusinessNameHasSuffix(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldHasSuffix(FieldBusinessName, v))
}

// BusinessNameEqualFold applies the EqualFold predicate on the "business_name" field.
func BusinessNameEqualFold(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldEqualFold(FieldBusinessName, v))
}

// BusinessNameContainsFold applies the ContainsFold predicate on the "business_name" field.
func BusinessNameContainsFold(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldContainsFold(FieldBusinessName, v))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailIsNil applies the IsNil predicate on the "email" field.
func EmailIsNil() predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldIsNull(FieldEmail))
}

// EmailNotNil applies the NotNil predicate on the "email" field.
func EmailNotNil() predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldNotNull(FieldEmail))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldContainsFold(FieldEmail, v))
}

// WhatsappEQ applies the EQ predicate on the "whatsapp" field.
func WhatsappEQ(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldEQ(FieldWhatsapp, v))
}

// WhatsappNEQ applies the NEQ predicate on the "whatsapp" field.
func WhatsappNEQ(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldNEQ(FieldWhatsapp, v))
}

// WhatsappIn applies the In predicate on the "whatsapp" field.
func WhatsappIn(vs ...string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldIn(FieldWhatsapp, vs...))
}

// WhatsappNotIn applies the NotIn predicate on the "whatsapp" field.
func WhatsappNotIn(vs ...string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldNotIn(FieldWhatsapp, vs...))
}

// WhatsappGT applies the GT predicate on the "whatsapp" field.
func WhatsappGT(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldGT(FieldWhatsapp, v))
}

// WhatsappGTE applies the GTE predicate on the "whatsapp" field.
func WhatsappGTE(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldGTE(FieldWhatsapp, v))
}

// WhatsappLT applies the LT predicate on the "whatsapp" field.
func WhatsappLT(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldLT(FieldWhatsapp, v))
}

// WhatsappLTE applies the LTE predicate on the "whatsapp" field.
func WhatsappLTE(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldLTE(FieldWhatsapp, v))
}

// WhatsappContains applies the Contains predicate on the "whatsapp" field.
func WhatsappContains(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldContains(FieldWhatsapp, v))
}

// WhatsappHasPrefix applies the HasPrefix predicate on the "whatsapp" field.
func WhatsappHasPrefix(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldHasPrefix(FieldWhatsapp, v))
}

// WhatsappHasSuffix applies the HasSuffix predicate on the "whatsapp" field.
func WhatsappHasSuffix(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldHasSuffix(FieldWhatsapp, v))
}

// WhatsappIsNil applies the IsNil predicate on the "whatsapp" field.
func WhatsappIsNil() predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldIsNull(FieldWhatsapp))
}

// WhatsappNotNil applies the NotNil predicate on the "whatsapp" field.
func WhatsappNotNil() predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldNotNull(FieldWhatsapp))
}

// WhatsappEqualFold applies the EqualFold predicate on the "whatsapp" field.
func WhatsappEqualFold(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldEqualFold(FieldWhatsapp, v))
}

// WhatsappContainsFold applies the ContainsFold predicate on the "whatsapp" field.
func WhatsappContainsFold(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldContainsFold(FieldWhatsapp, v))
}

// PincodeEQ applies the EQ predicate on the "pincode" field.
func PincodeEQ(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldEQ(FieldPincode, v))
}

// PincodeNEQ applies the NEQ predicate on the "pincode" field.
func PincodeNEQ(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldNEQ(FieldPincode, v))
}

// PincodeIn applies the In predicate on the "pincode" field.
func PincodeIn(vs ...string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldIn(FieldPincode, vs...))
}

// PincodeNotIn applies the NotIn predicate on the "pincode" field.
func PincodeNotIn(vs ...string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldNotIn(FieldPincode, vs...))
}

// PincodeGT applies the GT predicate on the "pincode" field.
func PincodeGT(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldGT(FieldPincode, v))
}

// PincodeGTE applies the GTE predicate on the "pincode" field.
func PincodeGTE(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldGTE(FieldPincode, v))
}

// PincodeLT applies the LT predicate on the "pincode" field.
func PincodeLT(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldLT(FieldPincode, v))
}

// PincodeLTE applies the LTE predicate on the "pincode" field.
func PincodeLTE(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldLTE(FieldPincode, v))
}

// PincodeContains applies the Contains predicate on the "pincode" field.
func PincodeContains(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldContains(FieldPincode, v))
}

// PincodeHasPrefix applies the HasPrefix predicate on the "pincode" field.
func PincodeHasPrefix(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldHasPrefix(FieldPincode, v))
}

// PincodeHasSuffix applies the HasSuffix predicate on the "pincode" field.
func PincodeHasSuffix(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldHasSuffix(FieldPincode, v))
}

// PincodeEqualFold applies the EqualFold predicate on the "pincode" field.
func PincodeEqualFold(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldEqualFold(FieldPincode, v))
}

// PincodeContainsFold applies the ContainsFold predicate on the "pincode" field.
func PincodeContainsFold(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldContainsFold(FieldPincode, v))
}

// PlotNumberEQ applies the EQ predicate on the "plot_number" field.
func PlotNumberEQ(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldEQ(FieldPlotNumber, v))
}

// PlotNumberNEQ applies the NEQ predicate on the "plot_number" field.
func PlotNumberNEQ(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldNEQ(FieldPlotNumber, v))
}

// PlotNumberIn applies the In predicate on the "plot_number" field.
func PlotNumberIn(vs ...string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldIn(FieldPlotNumber, vs...))
}

// PlotNumberNotIn applies the NotIn predicate on the "plot_number" field.
func PlotNumberNotIn(vs ...string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldNotIn(FieldPlotNumber, vs...))
}

// PlotNumberGT applies the GT predicate on the "plot_number" field.
func PlotNumberGT(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldGT(FieldPlotNumber, v))
}

// PlotNumberGTE applies the GTE predicate on the "plot_number" field.
func PlotNumberGTE(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldGTE(FieldPlotNumber, v))
}

// PlotNumberLT applies the LT predicate on the "plot_number" field.
func PlotNumberLT(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldLT(FieldPlotNumber, v))
}

// PlotNumberLTE applies the LTE predicate on the "plot_number" field.
func PlotNumberLTE(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldLTE(FieldPlotNumber, v))
}

// PlotNumberContains applies the Contains predicate on the "plot_number" field.
func PlotNumberContains(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldContains(FieldPlotNumber, v))
}

// PlotNumberHasPrefix applies the HasPrefix predicate on the "plot_number" field.
func PlotNumberHasPrefix(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldHasPrefix(FieldPlotNumber, v))
}

// PlotNumberHasSuffix applies the HasSuffix predicate on the "plot_number" field.
func PlotNumberHasSuffix(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldHasSuffix(FieldPlotNumber, v))
}

// PlotNumberEqualFold applies the EqualFold predicate on the "plot_number" field.
func PlotNumberEqualFold(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldEqualFold(FieldPlotNumber, v))
}

// PlotNumberContainsFold applies the ContainsFold predicate on the "plot_number" field.
func PlotNumberContainsFold(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldContainsFold(FieldPlotNumber, v))
}

// BuildingNameEQ applies the EQ predicate on the "building_name" field.
func BuildingNameEQ(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldEQ(FieldBuildingName, v))
}

// BuildingNameNEQ applies the NEQ predicate on the "building_name" field.
func BuildingNameNEQ(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldNEQ(FieldBuildingName, v))
}

// BuildingNameIn applies the In predicate on the "building_name" field.
func BuildingNameIn(vs ...string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldIn(FieldBuildingName, vs...))
}

// BuildingNameNotIn applies the NotIn predicate on the "building_name" field.
func BuildingNameNotIn(vs ...string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldNotIn(FieldBuildingName, vs...))
}

// BuildingNameGT applies the GT predicate on the "building_name" field.
func BuildingNameGT(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldGT(FieldBuildingName, v))
}

// BuildingNameGTE applies the GTE predicate on the "building_name" field.
func BuildingNameGTE(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldGTE(FieldBuildingName, v))
}

// BuildingNameLT applies the LT predicate on the "building_name" field.
func BuildingNameLT(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldLT(FieldBuildingName, v))
}

// BuildingNameLTE applies the LTE predicate on the "building_name" field.
func BuildingNameLTE(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldLTE(FieldBuildingName, v))
}

// BuildingNameContains applies the Contains predicate on the "building_name" field.
func BuildingNameContains(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldContains(FieldBuildingName, v))
}

// BuildingNameHasPrefix applies the HasPrefix predicate on the "building_name" field.
func BuildingNameHasPrefix(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldHasPrefix(FieldBuildingName, v))
}

// BuildingNameHasSuffix applies the HasSuffix predicate on the "building_name" field.
func BuildingNameHasSuffix(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldHasSuffix(FieldBuildingName, v))
}

// BuildingNameEqualFold applies the EqualFold predicate on the "building_name" field.
func BuildingNameEqualFold(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldEqualFold(FieldBuildingName, v))
}

// BuildingNameContainsFold applies the ContainsFold predicate on the "building_name" field.
func BuildingNameContainsFold(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldContainsFold(FieldBuildingName, v))
}

// StreetNameEQ applies the EQ predicate on the "street_name" field.
func StreetNameEQ(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldEQ(FieldStreetName, v))
}

// StreetNameNEQ applies the NEQ predicate on the "street_name" field.
func StreetNameNEQ(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldNEQ(FieldStreetName, v))
}

// StreetNameIn applies the In predicate on the "street_name" field.
func StreetNameIn(vs ...string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldIn(FieldStreetName, vs...))
}

// StreetNameNotIn applies the NotIn predicate on the "street_name" field.
func StreetNameNotIn(vs ...string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldNotIn(FieldStreetName, vs...))
}

// StreetNameGT applies the GT predicate on the "street_name" field.
func StreetNameGT(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldGT(FieldStreetName, v))
}

// StreetNameGTE applies the GTE predicate on the "street_name" field.
func StreetNameGTE(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldGTE(FieldStreetName, v))
}

// StreetNameLT applies the LT predicate on the "street_name" field.
func StreetNameLT(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldLT(FieldStreetName, v))
}

// StreetNameLTE applies the LTE predicate on the "street_name" field.
func StreetNameLTE(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldLTE(FieldStreetName, v))
}

// StreetNameContains applies the Contains predicate on the "street_name" field.
func StreetNameContains(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldContains(FieldStreetName, v))
}

// StreetNameHasPrefix applies the HasPrefix predicate on the "street_name" field.
func StreetNameHasPrefix(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldHasPrefix(FieldStreetName, v))
}

// StreetNameHasSuffix applies the HasSuffix predicate on the "street_name" field.
func StreetNameHasSuffix(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldHasSuffix(FieldStreetName, v))
}

// StreetNameEqualFold applies the EqualFold predicate on the "street_name" field.
func StreetNameEqualFold(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldEqualFold(FieldStreetName, v))
}

// StreetNameContainsFold applies the ContainsFold predicate on the "street_name" field.
func StreetNameContainsFold(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldContainsFold(FieldStreetName, v))
}

// LandmarkEQ applies the EQ predicate on the "landmark" field.
func LandmarkEQ(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldEQ(FieldLandmark, v))
}

// LandmarkNEQ applies the NEQ predicate on the "landmark" field.
func LandmarkNEQ(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldNEQ(FieldLandmark, v))
}

// LandmarkIn applies the In predicate on the "landmark" field.
func LandmarkIn(vs ...string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldIn(FieldLandmark, vs...))
}

// LandmarkNotIn applies the NotIn predicate on the "landmark" field.
func LandmarkNotIn(vs ...string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldNotIn(FieldLandmark, vs...))
}

// LandmarkGT applies the GT predicate on the "landmark" field.
func LandmarkGT(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldGT(FieldLandmark, v))
}

// LandmarkGTE applies the GTE predicate on the "landmark" field.
func LandmarkGTE(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldGTE(FieldLandmark, v))
}

// LandmarkLT applies the LT predicate on the "landmark" field.
func LandmarkLT(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldLT(FieldLandmark, v))
}

// LandmarkLTE applies the LTE predicate on the "landmark" field.
func LandmarkLTE(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldLTE(FieldLandmark, v))
}

// LandmarkContains applies the Contains predicate on the "landmark" field.
func LandmarkContains(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldContains(FieldLandmark, v))
}

// LandmarkHasPrefix applies the HasPrefix predicate on the "landmark" field.
func LandmarkHasPrefix(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldHasPrefix(FieldLandmark, v))
}

// LandmarkHasSuffix applies the HasSuffix predicate on the "landmark" field.
func LandmarkHasSuffix(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldHasSuffix(FieldLandmark, v))
}

// LandmarkEqualFold applies the EqualFold predicate on the "landmark" field.
func LandmarkEqualFold(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldEqualFold(FieldLandmark, v))
}

// LandmarkContainsFold applies the ContainsFold predicate on the "landmark" field.
func LandmarkContainsFold(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldContainsFold(FieldLandmark, v))
}

// AreaEQ applies the EQ predicate on the "area" field.
func AreaEQ(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldEQ(FieldArea, v))
}

// AreaNEQ applies the NEQ predicate on the "area" field.
func AreaNEQ(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldNEQ(FieldArea, v))
}

// AreaIn applies the In predicate on the "area" field.
func AreaIn(vs ...string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldIn(FieldArea, vs...))
}

// AreaNotIn applies the NotIn predicate on the "area" field.
func AreaNotIn(vs ...string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldNotIn(FieldArea, vs...))
}

// AreaGT applies the GT predicate on the "area" field.
func AreaGT(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldGT(FieldArea, v))
}

// AreaGTE applies the GTE predicate on the "area" field.
func AreaGTE(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldGTE(FieldArea, v))
}

// AreaLT applies the LT predicate on the "area" field.
func AreaLT(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldLT(FieldArea, v))
}

// AreaLTE applies the LTE predicate on the "area" field.
func AreaLTE(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldLTE(FieldArea, v))
}

// AreaContains applies the Contains predicate on the "area" field.
func AreaContains(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldContains(FieldArea, v))
}

// AreaHasPrefix applies the HasPrefix predicate on the "area" field.
func AreaHasPrefix(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldHasPrefix(FieldArea, v))
}

// AreaHasSuffix applies the HasSuffix predicate on the "area" field.
func AreaHasSuffix(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldHasSuffix(FieldArea, v))
}

// AreaEqualFold applies the EqualFold predicate on the "area" field.
func AreaEqualFold(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldEqualFold(FieldArea, v))
}

// AreaContainsFold applies the ContainsFold predicate on the "area" field.
func AreaContainsFold(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldContainsFold(FieldArea, v))
}

// CityEQ applies the EQ predicate on the "city" field.
func CityEQ(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldEQ(FieldCity, v))
}

// CityNEQ applies the NEQ predicate on the "city" field.
func CityNEQ(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldNEQ(FieldCity, v))
}

// CityIn applies the In predicate on the "city" field.
func CityIn(vs ...string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldIn(FieldCity, vs...))
}

// CityNotIn applies the NotIn predicate on the "city" field.
func CityNotIn(vs ...string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldNotIn(FieldCity, vs...))
}

// CityGT applies the GT predicate on the "city" field.
func CityGT(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldGT(FieldCity, v))
}

// CityGTE applies the GTE predicate on the "city" field.
func CityGTE(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldGTE(FieldCity, v))
}

// CityLT applies the LT predicate on the "city" field.
func CityLT(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldLT(FieldCity, v))
}

// CityLTE applies the LTE predicate on the "city" field.
func CityLTE(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldLTE(FieldCity, v))
}

// CityContains applies the Contains predicate on the "city" field.
func CityContains(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldContains(FieldCity, v))
}

// CityHasPrefix applies the HasPrefix predicate on the "city" field.
func CityHasPrefix(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldHasPrefix(FieldCity, v))
}

// CityHasSuffix applies the HasSuffix predicate on the "city" field.
func CityHasSuffix(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldHasSuffix(FieldCity, v))
}

// CityEqualFold applies the EqualFold predicate on the "city" field.
func CityEqualFold(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldEqualFold(FieldCity, v))
}

// CityContainsFold applies the ContainsFold predicate on the "city" field.
func CityContainsFold(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldContainsFold(FieldCity, v))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldNotIn(FieldState, vs...))
}

// StateGT applies the GT predicate on the "state" field.
func StateGT(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldGT(FieldState, v))
}

// StateGTE applies the GTE predicate on the "state" field.
func StateGTE(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldGTE(FieldState, v))
}

// StateLT applies the LT predicate on the "state" field.
func StateLT(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldLT(FieldState, v))
}

// StateLTE applies the LTE predicate on the "state" field.
func StateLTE(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldLTE(FieldState, v))
}

// StateContains applies the Contains predicate on the "state" field.
func StateContains(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldContains(FieldState, v))
}

// StateHasPrefix applies the HasPrefix predicate on the "state" field.
func StateHasPrefix(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldHasPrefix(FieldState, v))
}

// StateHasSuffix applies the HasSuffix predicate on the "state" field.
func StateHasSuffix(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldHasSuffix(FieldState, v))
}

// StateEqualFold applies the EqualFold predicate on the "state" field.
func StateEqualFold(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldEqualFold(FieldState, v))
}

// StateContainsFold applies the ContainsFold predicate on the "state" field.
func StateContainsFold(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldContainsFold(FieldState, v))
}

// CategoriesIsNil applies the IsNil predicate on the "categories" field.
func CategoriesIsNil() predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldIsNull(FieldCategories))
}

// CategoriesNotNil applies the NotNil predicate on the "categories" field.
func CategoriesNotNil() predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldNotNull(FieldCategories))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldNotIn(FieldStatus, vs...))
}

// CurrentStepEQ applies the EQ predicate on the "current_step" field.
func CurrentStepEQ(v int) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldEQ(FieldCurrentStep, v))
}

// CurrentStepNEQ applies the NEQ predicate on the "current_step" field.
func CurrentStepNEQ(v int) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldNEQ(FieldCurrentStep, v))
}

// CurrentStepIn applies the In predicate on the "current_step" field.
func CurrentStepIn(vs ...int) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldIn(FieldCurrentStep, vs...))
}

// CurrentStepNotIn applies the NotIn predicate on the "current_step" field.
func CurrentStepNotIn(vs ...int) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldNotIn(FieldCurrentStep, vs...))
}

// CurrentStepGT applies the GT predicate on the "current_step" field.
func CurrentStepGT(v int) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldGT(FieldCurrentStep, v))
}

// CurrentStepGTE applies the GTE predicate on the "current_step" field.
func CurrentStepGTE(v int) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldGTE(FieldCurrentStep, v))
}

// CurrentStepLT applies the LT predicate on the "current_step" field.
func CurrentStepLT(v int) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldLT(FieldCurrentStep, v))
}

// CurrentStepLTE applies the LTE predicate on the "current_step" field.
func CurrentStepLTE(v int) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldLTE(FieldCurrentStep, v))
}

// SubmitStageEQ applies the EQ predicate on the "submit_stage" field.
func SubmitStageEQ(v SubmitStage) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldEQ(FieldSubmitStage, v))
}

// SubmitStageNEQ applies the NEQ predicate on the "submit_stage" field.
func SubmitStageNEQ(v SubmitStage) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldNEQ(FieldSubmitStage, v))
}

// SubmitStageIn applies the In predicate on the "submit_stage" field.
func SubmitStageIn(vs ...SubmitStage) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldIn(FieldSubmitStage, vs...))
}

// SubmitStageNotIn applies the NotIn predicate on the "submit_stage" field.
func SubmitStageNotIn(vs ...SubmitStage) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldNotIn(FieldSubmitStage, vs...))
}

// StoreIDEQ applies the EQ predicate on the "store_id" field.
func StoreIDEQ(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldEQ(FieldStoreID, v))
}

// StoreIDNEQ applies the NEQ predicate on the "store_id" field.
func StoreIDNEQ(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldNEQ(FieldStoreID, v))
}

// StoreIDIn applies the In predicate on the "store_id" field.
func StoreIDIn(vs ...string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldIn(FieldStoreID, vs...))
}

// StoreIDNotIn applies the NotIn predicate on the "store_id" field.
func StoreIDNotIn(vs ...string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldNotIn(FieldStoreID, vs...))
}

// StoreIDGT applies the GT predicate on the "store_id" field.
func StoreIDGT(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldGT(FieldStoreID, v))
}

// StoreIDGTE applies the GTE predicate on the "store_id" field.
func StoreIDGTE(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldGTE(FieldStoreID, v))
}

// StoreIDLT applies the LT predicate on the "store_id" field.
func StoreIDLT(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldLT(FieldStoreID, v))
}

// StoreIDLTE applies the LTE predicate on the "store_id" field.
func StoreIDLTE(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldLTE(FieldStoreID, v))
}

// StoreIDContains applies the Contains predicate on the "store_id" field.
func StoreIDContains(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldContains(FieldStoreID, v))
}

// StoreIDHasPrefix applies the HasPrefix predicate on the "store_id" field.
func StoreIDHasPrefix(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldHasPrefix(FieldStoreID, v))
}

// StoreIDHasSuffix applies the HasSuffix predicate on the "store_id" field.
func StoreIDHasSuffix(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldHasSuffix(FieldStoreID, v))
}

// StoreIDIsNil applies the IsNil predicate on the "store_id" field.
func StoreIDIsNil() predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldIsNull(FieldStoreID))
}

// StoreIDNotNil applies the NotNil predicate on the "store_id" field.
func StoreIDNotNil() predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldNotNull(FieldStoreID))
}

// StoreIDEqualFold applies the EqualFold predicate on the "store_id" field.
func StoreIDEqualFold(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldEqualFold(FieldStoreID, v))
}

// StoreIDContainsFold applies the ContainsFold predicate on the "store_id" field.
func StoreIDContainsFold(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldContainsFold(FieldStoreID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SellerProfile) predicate.SellerProfile {
	return predicate.SellerProfile(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SellerProfile) predicate.SellerProfile {
	return predicate.SellerProfile(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SellerProfile) predicate.SellerProfile {
	return predicate.SellerProfile(sql.NotPredicates(p))
}
