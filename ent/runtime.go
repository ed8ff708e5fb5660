// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/bizmandi/storefront/ent/registrationevent"
	"github.com/bizmandi/storefront/ent/schema"
	"github.com/bizmandi/storefront/ent/sellerprofile"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	registrationeventFields := schema.RegistrationEvent{}.Fields()
	_ = registrationeventFields
	// registrationeventDescMobile is the schema descriptor for mobile field.
	registrationeventDescMobile := registrationeventFields[0].Descriptor()
	// registrationevent.MobileValidator is a validator for the "mobile" field. It is called by the builders before save.
	registrationevent.MobileValidator = registrationeventDescMobile.Validators[0].(func(string) error)
	// registrationeventDescCreatedAt is the schema descriptor for created_at field.
	registrationeventDescCreatedAt := registrationeventFields[4].Descriptor()
	// registrationevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	registrationevent.DefaultCreatedAt = registrationeventDescCreatedAt.Default.(func() time.Time)
	sellerprofileFields := schema.SellerProfile{}.Fields()
	_ = sellerprofileFields
	// sellerprofileDescMobile is the schema descriptor for mobile field.
	sellerprofileDescMobile := sellerprofileFields[0].Descriptor()
	// sellerprofile.MobileValidator is a validator for the "mobile" field. It is called by the builders before save.
	sellerprofile.MobileValidator = sellerprofileDescMobile.Validators[0].(func(string) error)
	// sellerprofileDescFirstName is the schema descriptor for first_name field.
	sellerprofileDescFirstName := sellerprofileFields[1].Descriptor()
	// sellerprofile.DefaultFirstName holds the default value on creation for the first_name field.
	sellerprofile.DefaultFirstName = sellerprofileDescFirstName.Default.(string)
	// sellerprofileDescLastName is the schema descriptor for last_name field.
	sellerprofileDescLastName := sellerprofileFields[2].Descriptor()
	// sellerprofile.DefaultLastName holds the default value on creation for the last_name field.
	sellerprofile.DefaultLastName = sellerprofileDescLastName.Default.(string)
	// sellerprofileDescBusinessName is the schema descriptor for business_name field.
	sellerprofileDescBusinessName := sellerprofileFields[3].Descriptor()
	// sellerprofile.DefaultBusinessName holds the default value on creation for the business_name field.
	sellerprofile.DefaultBusinessName = sellerprofileDescBusinessName.Default.(string)
	// sellerprofileDescPincode is the schema descriptor for pincode field.
	sellerprofileDescPincode := sellerprofileFields[6].Descriptor()
	// sellerprofile.DefaultPincode holds the default value on creation for the pincode field.
	sellerprofile.DefaultPincode = sellerprofileDescPincode.Default.(string)
	// sellerprofileDescPlotNumber is the schema descriptor for plot_number field.
	sellerprofileDescPlotNumber := sellerprofileFields[7].Descriptor()
	// sellerprofile.DefaultPlotNumber holds the default value on creation for the plot_number field.
	sellerprofile.DefaultPlotNumber = sellerprofileDescPlotNumber.Default.(string)
	// sellerprofileDescBuildingName is the schema descriptor for building_name field.
	sellerprofileDescBuildingName := sellerprofileFields[8].Descriptor()
	// sellerprofile.DefaultBuildingName holds the default value on creation for the building_name field.
	sellerprofile.DefaultBuildingName = sellerprofileDescBuildingName.Default.(string)
	// sellerprofileDescStreetName is the schema descriptor for street_name field.
	sellerprofileDescStreetName := sellerprofileFields[9].Descriptor()
	// sellerprofile.DefaultStreetName holds the default value on creation for the street_name field.
	sellerprofile.DefaultStreetName = sellerprofileDescStreetName.Default.(string)
	// sellerprofileDescLandmark is the schema descriptor for landmark field.
	sellerprofileDescLandmark := sellerprofileFields[10].Descriptor()
	// sellerprofile.DefaultLandmark holds the default value on creation for the landmark field.
	sellerprofile.DefaultLandmark = sellerprofileDescLandmark.Default.(string)
	// sellerprofileDescArea is the schema descriptor for area field.
	sellerprofileDescArea := sellerprofileFields[11].Descriptor()
	// sellerprofile.DefaultArea holds the default value on creation for the area field.
	sellerprofile.DefaultArea = sellerprofileDescArea.Default.(string)
	// sellerprofileDescCity is the schema descriptor for city field.
	sellerprofileDescCity := sellerprofileFields[12].Descriptor()
	// sellerprofile.DefaultCity holds the default value on creation for the city field.
	sellerprofile.DefaultCity = sellerprofileDescCity.Default.(string)
	// sellerprofileDescState is the schema descriptor for state field.
	sellerprofileDescState := sellerprofileFields[13].Descriptor()
	// sellerprofile.DefaultState holds the default value on creation for the state field.
	sellerprofile.DefaultState = sellerprofileDescState.Default.(string)
	// sellerprofileDescCurrentStep is the schema descriptor for current_step field.
	sellerprofileDescCurrentStep := sellerprofileFields[16].Descriptor()
	// sellerprofile.DefaultCurrentStep holds the default value on creation for the current_step field.
	sellerprofile.DefaultCurrentStep = sellerprofileDescCurrentStep.Default.(int)
	// sellerprofileDescCreatedAt is the schema descriptor for created_at field.
	sellerprofileDescCreatedAt := sellerprofileFields[19].Descriptor()
	// sellerprofile.DefaultCreatedAt holds the default value on creation for the created_at field.
	sellerprofile.DefaultCreatedAt = sellerprofileDescCreatedAt.Default.(func() time.Time)
	// sellerprofileDescUpdatedAt is the schema descriptor for updated_at field.
	sellerprofileDescUpdatedAt := sellerprofileFields[20].Descriptor()
	// sellerprofile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	sellerprofile.DefaultUpdatedAt = sellerprofileDescUpdatedAt.Default.(func() time.Time)
	// sellerprofile.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	sellerprofile.UpdateDefaultUpdatedAt = sellerprofileDescUpdatedAt.UpdateDefault.(func() time.Time)
}
