// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/bizmandi/storefront/ent/predicate"
	"github.com/bizmandi/storefront/ent/sellerprofile"
)

// SellerProfileUpdate is the builder for updating SellerProfile entities.
type SellerProfileUpdate struct {
	config
	hooks    []Hook
	mutation *SellerProfileMutation
}

// Where appends a list predicates to the SellerProfileUpdate builder.
func (_u *SellerProfileUpdate) Where(ps ...predicate.SellerProfile) *SellerProfileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMobile sets the "mobile" field.
func (_u *SellerProfileUpdate) SetMobile(v string) *SellerProfileUpdate {
	_u.mutation.SetMobile(v)
	return _u
}

// SetNillableMobile sets the "mobile" field if the given value is not nil.
func (_u *SellerProfileUpdate) SetNillableMobile(v *string) *SellerProfileUpdate {
	if v != nil {
		_u.SetMobile(*v)
	}
	return _u
}

// SetFirstName sets the "first_name" field.
func (_u *SellerProfileUpdate) SetFirstName(v string) *SellerProfileUpdate {
	_u.mutation.SetFirstName(v)
	return _u
}

// SetNillableFirstName sets the "first_name" field if the given value is not nil.
func (_u *SellerProfileUpdate) SetNillableFirstName(v *string) *SellerProfileUpdate {
	if v != nil {
		_u.SetFirstName(*v)
	}
	return _u
}

// SetLastName sets the "last_name" field.
func (_u *SellerProfileUpdate) SetLastName(v string) *SellerProfileUpdate {
	_u.mutation.SetLastName(v)
	return _u
}

// SetNillableLastName sets the "last_name" field if the given value is not nil.
func (_u *SellerProfileUpdate) SetNillableLastName(v *string) *SellerProfileUpdate {
	if v != nil {
		_u.SetLastName(*v)
	}
	return _u
}

// SetBusinessName sets the "business_name" field.
func (_u *SellerProfileUpdate) SetBusinessName(v string) *SellerProfileUpdate {
	_u.mutation.SetBusinessName(v)
	return _u
}

// SetNillableBusinessName sets the "business_name" field if the given value is not nil.
func (_u *SellerProfileUpdate) SetNillableBusinessName(v *string) *SellerProfileUpdate {
	if v != nil {
		_u.SetBusinessName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *SellerProfileUpdate) SetEmail(v string) *SellerProfileUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *SellerProfileUpdate) SetNillableEmail(v *string) *SellerProfileUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *SellerProfileUpdate) ClearEmail() *SellerProfileUpdate {
	_u.mutation.ClearEmail()
	return _u
}

// SetWhatsapp sets the "whatsapp" field.
func (_u *SellerProfileUpdate) SetWhatsapp(v string) *SellerProfileUpdate {
	_u.mutation.SetWhatsapp(v)
	return _u
}

// SetNillableWhatsapp sets the "whatsapp" field if the given value is not nil.
func (_u *SellerProfileUpdate) SetNillableWhatsapp(v *string) *SellerProfileUpdate {
	if v != nil {
		_u.SetWhatsapp(*v)
	}
	return _u
}

// ClearWhatsapp clears the value of the "whatsapp" field.
func (_u *SellerProfileUpdate) ClearWhatsapp() *SellerProfileUpdate {
	_u.mutation.ClearWhatsapp()
	return _u
}

// SetPincode sets the "pincode" field.
func (_u *SellerProfileUpdate) SetPincode(v string) *SellerProfileUpdate {
	_u.mutation.SetPincode(v)
	return _u
}

// SetNillablePincode sets the "pincode" field if the given value is not nil.
func (_u *SellerProfileUpdate) SetNillablePincode(v *string) *SellerProfileUpdate {
	if v != nil {
		_u.SetPincode(*v)
	}
	return _u
}

// SetPlotNumber sets the "plot_number" field.
func (_u *SellerProfileUpdate) SetPlotNumber(v string) *SellerProfileUpdate {
	_u.mutation.SetPlotNumber(v)
	return _u
}

// SetNillablePlotNumber sets the "plot_number" field if the given value is not nil.
func (_u *SellerProfileUpdate) SetNillablePlotNumber(v *string) *SellerProfileUpdate {
	if v != nil {
		_u.SetPlotNumber(*v)
	}
	return _u
}

// SetBuildingName sets the "building_name" field.
func (_u *SellerProfileUpdate) SetBuildingName(v string) *SellerProfileUpdate {
	_u.mutation.SetBuildingName(v)
	return _u
}

// SetNillableBuildingName sets the "building_name" field if the given value is not nil.
func (_u *SellerProfileUpdate) SetNillableBuildingName(v *string) *SellerProfileUpdate {
	if v != nil {
		_u.SetBuildingName(*v)
	}
	return _u
}

// SetStreetName sets the "street_name" field.
func (_u *SellerProfileUpdate) SetStreetName(v string) *SellerProfileUpdate {
	_u.mutation.SetStreetName(v)
	return _u
}

// SetNillableStreetName sets the "street_name" field if the given value is not nil.
func (_u *SellerProfileUpdate) SetNillableStreetName(v *string) *SellerProfileUpdate {
	if v != nil {
		_u.SetStreetName(*v)
	}
	return _u
}

// SetLandmark sets the "landmark" field.
func (_u *SellerProfileUpdate) SetLandmark(v string) *SellerProfileUpdate {
	_u.mutation.SetLandmark(v)
	return _u
}

// SetNillableLandmark sets the "landmark" field if the given value is not nil.
func (_u *SellerProfileUpdate) SetNillableLandmark(v *string) *SellerProfileUpdate {
	if v != nil {
		_u.SetLandmark(*v)
	}
	return _u
}

// SetArea sets the "area" field.
func (_u *SellerProfileUpdate) SetArea(v string) *SellerProfileUpdate {
	_u.mutation.SetArea(v)
	return _u
}

// SetNillableArea sets the "area" field if the given value is not nil.
func (_u *SellerProfileUpdate) SetNillableArea(v *string) *SellerProfileUpdate {
	if v != nil {
		_u.SetArea(*v)
	}
	return _u
}

// SetCity sets the "city" field.
func (_u *SellerProfileUpdate) SetCity(v string) *SellerProfileUpdate {
	_u.mutation.SetCity(v)
	return _u
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_u *SellerProfileUpdate) SetNillableCity(v *string) *SellerProfileUpdate {
	if v != nil {
		_u.SetCity(*v)
	}
	return _u
}

// SetState sets the "state" field.
func (_u *SellerProfileUpdate) SetState(v string) *SellerProfileUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *SellerProfileUpdate) SetNillableState(v *string) *SellerProfileUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetCategories sets the "categories" field.
func (_u *SellerProfileUpdate) SetCategories(v []string) *SellerProfileUpdate {
	_u.mutation.SetCategories(v)
	return _u
}

// AppendCategories appends value to the "categories" field.
func (_u *SellerProfileUpdate) AppendCategories(v []string) *SellerProfileUpdate {
	_u.mutation.AppendCategories(v)
	return _u
}

// ClearCategories clears the value of the "categories" field.
func (_u *SellerProfileUpdate) ClearCategories() *SellerProfileUpdate {
	_u.mutation.ClearCategories()
	return _u
}

// SetStatus sets the "status" field.
func (_u *SellerProfileUpdate) SetStatus(v sellerprofile.Status) *SellerProfileUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SellerProfileUpdate) SetNillableStatus(v *sellerprofile.Status) *SellerProfileUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCurrentStep sets the "current_step" field.
func (_u *SellerProfileUpdate) SetCurrentStep(v int) *SellerProfileUpdate {
	_u.mutation.ResetCurrentStep()
	_u.mutation.SetCurrentStep(v)
	return _u
}

// SetNillableCurrentStep sets the "current_step" field if the given value is not nil.
func (_u *SellerProfileUpdate) SetNillableCurrentStep(v *int) *SellerProfileUpdate {
	if v != nil {
		_u.SetCurrentStep(*v)
	}
	return _u
}

// AddCurrentStep adds value to the "current_step" field.
func (_u *SellerProfileUpdate) AddCurrentStep(v int) *SellerProfileUpdate {
	_u.mutation.AddCurrentStep(v)
	return _u
}

// SetSubmitStage sets the "submit_stage" field.
func (_u *SellerProfileUpdate) SetSubmitStage(v sellerprofile.SubmitStage) *SellerProfileUpdate {
	_u.mutation.SetSubmitStage(v)
	return _u
}

// SetNillableSubmitStage sets the "submit_stage" field if the given value is not nil.
func (_u *SellerProfileUpdate) SetNillableSubmitStage(v *sellerprofile.SubmitStage) *SellerProfileUpdate {
	if v != nil {
		_u.SetSubmitStage(*v)
	}
	return _u
}

// SetStoreID sets the "store_id" field.
func (_u *SellerProfileUpdate) SetStoreID(v string) *SellerProfileUpdate {
	_u.mutation.SetStoreID(v)
	return _u
}

// SetNillableStoreID sets the "store_id" field if the given value is not nil.
func (_u *SellerProfileUpdate) SetNillableStoreID(v *string) *SellerProfileUpdate {
	if v != nil {
		_u.SetStoreID(*v)
	}
	return _u
}

// ClearStoreID clears the value of the "store_id" field.
func (_u *SellerProfileUpdate) ClearStoreID() *SellerProfileUpdate {
	_u.mutation.ClearStoreID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SellerProfileUpdate) SetUpdatedAt(v time.Time) *SellerProfileUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SellerProfileMutation object of the builder.
func (_u *SellerProfileUpdate) Mutation() *SellerProfileMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SellerProfileUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SellerProfileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SellerProfileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SellerProfileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SellerProfileUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := sellerprofile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SellerProfileUpdate) check() error {
	if v, ok := _u.mutation.Mobile(); ok {
		if err := sellerprofile.MobileValidator(v); err != nil {
			return &ValidationError{Name: "mobile", err: fmt.Errorf(`ent: validator failed for field "SellerProfile.mobile": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := sellerprofile.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SellerProfile.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubmitStage(); ok {
		if err := sellerprofile.SubmitStageValidator(v); err != nil {
			return &ValidationError{Name: "submit_stage", err: fmt.Errorf(`ent: validator failed for field "SellerProfile.submit_stage": %w`, err)}
		}
	}
	return nil
}

func (_u *SellerProfileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sellerprofile.Table, sellerprofile.Columns, sqlgraph.NewFieldSpec(sellerprofile.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Mobile(); ok {
		_spec.SetField(sellerprofile.FieldMobile, field.TypeString, value)
	}
	if value, ok := _u.mutation.FirstName(); ok {
		_spec.SetField(sellerprofile.FieldFirstName, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastName(); ok {
		_spec.SetField(sellerprofile.FieldLastName, field.TypeString, value)
	}
	if value, ok := _u.mutation.BusinessName(); ok {
		_spec.SetField(sellerprofile.FieldBusinessName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(sellerprofile.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(sellerprofile.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Whatsapp(); ok {
		_spec.SetField(sellerprofile.FieldWhatsapp, field.TypeString, value)
	}
	if _u.mutation.WhatsappCleared() {
		_spec.ClearField(sellerprofile.FieldWhatsapp, field.TypeString)
	}
	if value, ok := _u.mutation.Pincode(); ok {
		_spec.SetField(sellerprofile.FieldPincode, field.TypeString, value)
	}
	if value, ok := _u.mutation.PlotNumber(); ok {
		_spec.SetField(sellerprofile.FieldPlotNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.BuildingName(); ok {
		_spec.SetField(sellerprofile.FieldBuildingName, field.TypeString, value)
	}
	if value, ok := _u.mutation.StreetName(); ok {
		_spec.SetField(sellerprofile.FieldStreetName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Landmark(); ok {
		_spec.SetField(sellerprofile.FieldLandmark, field.TypeString, value)
	}
	if value, ok := _u.mutation.Area(); ok {
		_spec.SetField(sellerprofile.FieldArea, field.TypeString, value)
	}
	if value, ok := _u.mutation.City(); ok {
		_spec.SetField(sellerprofile.FieldCity, field.TypeString, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(sellerprofile.FieldState, field.TypeString, value)
	}
	if value, ok := _u.mutation.Categories(); ok {
		_spec.SetField(sellerprofile.FieldCategories, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCategories(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sellerprofile.FieldCategories, value)
		})
	}
	if _u.mutation.CategoriesCleared() {
		_spec.ClearField(sellerprofile.FieldCategories, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(sellerprofile.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CurrentStep(); ok {
		_spec.SetField(sellerprofile.FieldCurrentStep, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentStep(); ok {
		_spec.AddField(sellerprofile.FieldCurrentStep, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SubmitStage(); ok {
		_spec.SetField(sellerprofile.FieldSubmitStage, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StoreID(); ok {
		_spec.SetField(sellerprofile.FieldStoreID, field.TypeString, value)
	}
	if _u.mutation.StoreIDCleared() {
		_spec.ClearField(sellerprofile.FieldStoreID, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(sellerprofile.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sellerprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SellerProfileUpdateOne is the builder for updating a single SellerProfile entity.
type SellerProfileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SellerProfileMutation
}

// SetMobile sets the "mobile" field.
func (_u *SellerProfileUpdateOne) SetMobile(v string) *SellerProfileUpdateOne {
	_u.mutation.SetMobile(v)
	return _u
}

// SetNillableMobile sets the "mobile" field if the given value is not nil.
func (_u *SellerProfileUpdateOne) SetNillableMobile(v *string) *SellerProfileUpdateOne {
	if v != nil {
		_u.SetMobile(*v)
	}
	return _u
}

// SetFirstName sets the "first_name" field.
func (_u *SellerProfileUpdateOne) SetFirstName(v string) *SellerProfileUpdateOne {
	_u.mutation.SetFirstName(v)
	return _u
}

// SetNillableFirstName sets the "first_name" field if the given value is not nil.
func (_u *SellerProfileUpdateOne) SetNillableFirstName(v *string) *SellerProfileUpdateOne {
	if v != nil {
		_u.SetFirstName(*v)
	}
	return _u
}

// SetLastName sets the "last_name" field.
func (_u *SellerProfileUpdateOne) SetLastName(v string) *SellerProfileUpdateOne {
	_u.mutation.SetLastName(v)
	return _u
}

// SetNillableLastName sets the "last_name" field if the given value is not nil.
func (_u *SellerProfileUpdateOne) SetNillableLastName(v *string) *SellerProfileUpdateOne {
	if v != nil {
		_u.SetLastName(*v)
	}
	return _u
}

// SetBusinessName sets the "business_name" field.
func (_u *SellerProfileUpdateOne) SetBusinessName(v string) *SellerProfileUpdateOne {
	_u.mutation.SetBusinessName(v)
	return _u
}

// SetNillableBusinessName sets the "business_name" field if the given value is not nil.
func (_u *SellerProfileUpdateOne) SetNillableBusinessName(v *string) *SellerProfileUpdateOne {
	if v != nil {
		_u.SetBusinessName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *SellerProfileUpdateOne) SetEmail(v string) *SellerProfileUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *SellerProfileUpdateOne) SetNillableEmail(v *string) *SellerProfileUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *SellerProfileUpdateOne) ClearEmail() *SellerProfileUpdateOne {
	_u.mutation.ClearEmail()
	return _u
}

// SetWhatsapp sets the "whatsapp" field.
func (_u *SellerProfileUpdateOne) SetWhatsapp(v string) *SellerProfileUpdateOne {
	_u.mutation.SetWhatsapp(v)
	return _u
}

// SetNillableWhatsapp sets the "whatsapp" field if the given value is not nil.
func (_u *SellerProfileUpdateOne) SetNillableWhatsapp(v *string) *SellerProfileUpdateOne {
	if v != nil {
		_u.SetWhatsapp(*v)
	}
	return _u
}

// ClearWhatsapp clears the value of the "whatsapp" field.
func (_u *SellerProfileUpdateOne) ClearWhatsapp() *SellerProfileUpdateOne {
	_u.mutation.ClearWhatsapp()
	return _u
}

// SetPincode sets the "pincode" field.
func (_u *SellerProfileUpdateOne) SetPincode(v string) *SellerProfileUpdateOne {
	_u.mutation.SetPincode(v)
	return _u
}

// SetNillablePincode sets the "pincode" field if the given value is not nil.
func (_u *SellerProfileUpdateOne) SetNillablePincode(v *string) *SellerProfileUpdateOne {
	if v != nil {
		_u.SetPincode(*v)
	}
	return _u
}

// SetPlotNumber sets the "plot_number" field.
func (_u *SellerProfileUpdateOne) SetPlotNumber(v string) *SellerProfileUpdateOne {
	_u.mutation.SetPlotNumber(v)
	return _u
}

// SetNillablePlotNumber sets the "plot_number" field if the given value is not nil.
func (_u *SellerProfileUpdateOne) SetNillablePlotNumber(v *string) *SellerProfileUpdateOne {
	if v != nil {
		_u.SetPlotNumber(*v)
	}
	return _u
}

// SetBuildingName sets the "building_name" field.
func (_u *SellerProfileUpdateOne) SetBuildingName(v string) *SellerProfileUpdateOne {
	_u.mutation.SetBuildingName(v)
	return _u
}

// SetNillableBuildingName sets the "building_name" field if the given value is not nil.
func (_u *SellerProfileUpdateOne) SetNillableBuildingName(v *string) *SellerProfileUpdateOne {
	if v != nil {
		_u.SetBuildingName(*v)
	}
	return _u
}

// SetStreetName sets the "street_name" field.
func (_u *SellerProfileUpdateOne) SetStreetName(v string) *SellerProfileUpdateOne {
	_u.mutation.SetStreetName(v)
	return _u
}

// SetNillableStreetName sets the "street_name" field if the given value is not nil.
func (_u *SellerProfileUpdateOne) SetNillableStreetName(v *string) *SellerProfileUpdateOne {
	if v != nil {
		_u.SetStreetName(*v)
	}
	return _u
}

// SetLandmark sets the "landmark" field.
func (_u *SellerProfileUpdateOne) SetLandmark(v string) *SellerProfileUpdateOne {
	_u.mutation.SetLandmark(v)
	return _u
}

// SetNillableLandmark sets the "landmark" field if the given value is not nil.
func (_u *SellerProfileUpdateOne) SetNillableLandmark(v *string) *SellerProfileUpdateOne {
	if v != nil {
		_u.SetLandmark(*v)
	}
	return _u
}

// SetArea sets the "area" field.
func (_u *SellerProfileUpdateOne) SetArea(v string) *SellerProfileUpdateOne {
	_u.mutation.SetArea(v)
	return _u
}

// SetNillableArea sets the "area" field if the given value is not nil.
func (_u *SellerProfileUpdateOne) SetNillableArea(v *string) *SellerProfileUpdateOne {
	if v != nil {
		_u.SetArea(*v)
	}
	return _u
}

// SetCity sets the "city" field.
func (_u *SellerProfileUpdateOne) SetCity(v string) *SellerProfileUpdateOne {
	_u.mutation.SetCity(v)
	return _u
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_u *SellerProfileUpdateOne) SetNillableCity(v *string) *SellerProfileUpdateOne {
	if v != nil {
		_u.SetCity(*v)
	}
	return _u
}

// SetState sets the "state" field.
func (_u *SellerProfileUpdateOne) SetState(v string) *SellerProfileUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *SellerProfileUpdateOne) SetNillableState(v *string) *SellerProfileUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetCategories sets the "categories" field.
func (_u *SellerProfileUpdateOne) SetCategories(v []string) *SellerProfileUpdateOne {
	_u.mutation.SetCategories(v)
	return _u
}

// AppendCategories appends value to the "categories" field.
func (_u *SellerProfileUpdateOne) AppendCategories(v []string) *SellerProfileUpdateOne {
	_u.mutation.AppendCategories(v)
	return _u
}

// ClearCategories clears the value of the "categories" field.
func (_u *SellerProfileUpdateOne) ClearCategories() *SellerProfileUpdateOne {
	_u.mutation.ClearCategories()
	return _u
}

// SetStatus sets the "status" field.
func (_u *SellerProfileUpdateOne) SetStatus(v sellerprofile.Status) *SellerProfileUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SellerProfileUpdateOne) SetNillableStatus(v *sellerprofile.Status) *SellerProfileUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCurrentStep sets the "current_step" field.
func (_u *SellerProfileUpdateOne) SetCurrentStep(v int) *SellerProfileUpdateOne {
	_u.mutation.ResetCurrentStep()
	_u.mutation.SetCurrentStep(v)
	return _u
}

// SetNillableCurrentStep sets the "current_step" field if the given value is not nil.
func (_u *SellerProfileUpdateOne) SetNillableCurrentStep(v *int) *SellerProfileUpdateOne {
	if v != nil {
		_u.SetCurrentStep(*v)
	}
	return _u
}

// AddCurrentStep adds value to the "current_step" field.
func (_u *SellerProfileUpdateOne) AddCurrentStep(v int) *SellerProfileUpdateOne {
	_u.mutation.AddCurrentStep(v)
	return _u
}

// SetSubmitStage sets the "submit_stage" field.
func (_u *SellerProfileUpdateOne) SetSubmitStage(v sellerprofile.SubmitStage) *SellerProfileUpdateOne {
	_u.mutation.SetSubmitStage(v)
	return _u
}

// SetNillableSubmitStage sets the "submit_stage" field if the given value is not nil.
func (_u *SellerProfileUpdateOne) SetNillableSubmitStage(v *sellerprofile.SubmitStage) *SellerProfileUpdateOne {
	if v != nil {
		_u.SetSubmitStage(*v)
	}
	return _u
}

// SetStoreID sets the "store_id" field.
func (_u *SellerProfileUpdateOne) SetStoreID(v string) *SellerProfileUpdateOne {
	_u.mutation.SetStoreID(v)
	return _u
}

// SetNillableStoreID sets the "store_id" field if the given value is not nil.
func (_u *SellerProfileUpdateOne) SetNillableStoreID(v *string) *SellerProfileUpdateOne {
	if v != nil {
		_u.SetStoreID(*v)
	}
	return _u
}

// ClearStoreID clears the value of the "store_id" field.
func (_u *SellerProfileUpdateOne) ClearStoreID() *SellerProfileUpdateOne {
	_u.mutation.ClearStoreID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SellerProfileUpdateOne) SetUpdatedAt(v time.Time) *SellerProfileUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SellerProfileMutation object of the builder.
func (_u *SellerProfileUpdateOne) Mutation() *SellerProfileMutation {
	return _u.mutation
}

// Where appends a list predicates to the SellerProfileUpdate builder.
func (_u *SellerProfileUpdateOne) Where(ps ...predicate.SellerProfile) *SellerProfileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SellerProfileUpdateOne) Select(field string, fields ...string) *SellerProfileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SellerProfile entity.
func (_u *SellerProfileUpdateOne) Save(ctx context.Context) (*SellerProfile, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SellerProfileUpdateOne) SaveX(ctx context.Context) *SellerProfile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SellerProfileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SellerProfileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SellerProfileUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := sellerprofile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SellerProfileUpdateOne) check() error {
	if v, ok := _u.mutation.Mobile(); ok {
		if err := sellerprofile.MobileValidator(v); err != nil {
			return &ValidationError{Name: "mobile", err: fmt.Errorf(`ent: validator failed for field "SellerProfile.mobile": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := sellerprofile.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SellerProfile.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubmitStage(); ok {
		if err := sellerprofile.SubmitStageValidator(v); err != nil {
			return &ValidationError{Name: "submit_stage", err: fmt.Errorf(`ent: validator failed for field "SellerProfile.submit_stage": %w`, err)}
		}
	}
	return nil
}

func (_u *SellerProfileUpdateOne) sqlSave(ctx context.Context) (_node *SellerProfile, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sellerprofile.Table, sellerprofile.Columns, sqlgraph.NewFieldSpec(sellerprofile.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SellerProfile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sellerprofile.FieldID)
		for _, f := range fields {
			if !sellerprofile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sellerprofile.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Mobile(); ok {
		_spec.SetField(sellerprofile.FieldMobile, field.TypeString, value)
	}
	if value, ok := _u.mutation.FirstName(); ok {
		_spec.SetField(sellerprofile.FieldFirstName, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastName(); ok {
		_spec.SetField(sellerprofile.FieldLastName, field.TypeString, value)
	}
	if value, ok := _u.mutation.BusinessName(); ok {
		_spec.SetField(sellerprofile.FieldBusinessName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(sellerprofile.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(sellerprofile.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Whatsapp(); ok {
		_spec.SetField(sellerprofile.FieldWhatsapp, field.TypeString, value)
	}
	if _u.mutation.WhatsappCleared() {
		_spec.ClearField(sellerprofile.FieldWhatsapp, field.TypeString)
	}
	if value, ok := _u.mutation.Pincode(); ok {
		_spec.SetField(sellerprofile.FieldPincode, field.TypeString, value)
	}
	if value, ok := _u.mutation.PlotNumber(); ok {
		_spec.SetField(sellerprofile.FieldPlotNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.BuildingName(); ok {
		_spec.SetField(sellerprofile.FieldBuildingName, field.TypeString, value)
	}
	if value, ok := _u.mutation.StreetName(); ok {
		_spec.SetField(sellerprofile.FieldStreetName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Landmark(); ok {
		_spec.SetField(sellerprofile.FieldLandmark, field.TypeString, value)
	}
	if value, ok := _u.mutation.Area(); ok {
		_spec.SetField(sellerprofile.FieldArea, field.TypeString, value)
	}
	if value, ok := _u.mutation.City(); ok {
		_spec.SetField(sellerprofile.FieldCity, field.TypeString, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(sellerprofile.FieldState, field.TypeString, value)
	}
	if value, ok := _u.mutation.Categories(); ok {
		_spec.SetField(sellerprofile.FieldCategories, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCategories(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sellerprofile.FieldCategories, value)
		})
	}
	if _u.mutation.CategoriesCleared() {
		_spec.ClearField(sellerprofile.FieldCategories, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(sellerprofile.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CurrentStep(); ok {
		_spec.SetField(sellerprofile.FieldCurrentStep, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentStep(); ok {
		_spec.AddField(sellerprofile.FieldCurrentStep, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SubmitStage(); ok {
		_spec.SetField(sellerprofile.FieldSubmitStage, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StoreID(); ok {
		_spec.SetField(sellerprofile.FieldStoreID, field.TypeString, value)
	}
	if _u.mutation.StoreIDCleared() {
		_spec.ClearField(sellerprofile.FieldStoreID, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(sellerprofile.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &SellerProfile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sellerprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
