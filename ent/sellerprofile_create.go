// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/bizmandi/storefront/ent/sellerprofile"
)

// SellerProfileCreate is the builder for creating a SellerProfile entity.
type SellerProfileCreate struct {
	config
	mutation *SellerProfileMutation
	hooks    []Hook
}

// SetMobile sets the "mobile" field.
func (_c *SellerProfileCreate) SetMobile(v string) *SellerProfileCreate {
	_c.mutation.SetMobile(v)
	return _c
}

// SetFirstName sets the "first_name" field.
func (_c *SellerProfileCreate) SetFirstName(v string) *SellerProfileCreate {
	_c.mutation.SetFirstName(v)
	return _c
}

// SetNillableFirstName sets the "first_name" field if the given value is not nil.
func (_c *SellerProfileCreate) SetNillableFirstName(v *string) *SellerProfileCreate {
	if v != nil {
		_c.SetFirstName(*v)
	}
	return _c
}

// SetLastName sets the "last_name" field.
func (_c *SellerProfileCreate) SetLastName(v string) *SellerProfileCreate {
	_c.mutation.SetLastName(v)
	return _c
}

// SetNillableLastName sets the "last_name" field if the given value is not nil.
func (_c *SellerProfileCreate) SetNillableLastName(v *string) *SellerProfileCreate {
	if v != nil {
		_c.SetLastName(*v)
	}
	return _c
}

// SetBusinessName sets the "business_name" field.
func (_c *SellerProfileCreate) SetBusinessName(v string) *SellerProfileCreate {
	_c.mutation.SetBusinessName(v)
	return _c
}

// SetNillableBusinessName sets the "business_name" field if the given value is not nil.
func (_c *SellerProfileCreate) SetNillableBusinessName(v *string) *SellerProfileCreate {
	if v != nil {
		_c.SetBusinessName(*v)
	}
	return _c
}

// SetEmail sets the "email" field.
func (_c *SellerProfileCreate) SetEmail(v string) *SellerProfileCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_c *SellerProfileCreate) SetNillableEmail(v *string) *SellerProfileCreate {
	if v != nil {
		_c.SetEmail(*v)
	}
	return _c
}

// SetWhatsapp sets the "whatsapp" field.
func (_c *SellerProfileCreate) SetWhatsapp(v string) *SellerProfileCreate {
	_c.mutation.SetWhatsapp(v)
	return _c
}

// SetNillableWhatsapp sets the "whatsapp" field if the given value is not nil.
func (_c *SellerProfileCreate) SetNillableWhatsapp(v *string) *SellerProfileCreate {
	if v != nil {
		_c.SetWhatsapp(*v)
	}
	return _c
}

// SetPincode sets the "pincode" field.
func (_c *SellerProfileCreate) SetPincode(v string) *SellerProfileCreate {
	_c.mutation.SetPincode(v)
	return _c
}

// SetNillablePincode sets the "pincode" field if the given value is not nil.
func (_c *SellerProfileCreate) SetNillablePincode(v *string) *SellerProfileCreate {
	if v != nil {
		_c.SetPincode(*v)
	}
	return _c
}

// SetPlotNumber sets the "plot_number" field.
func (_c *SellerProfileCreate) SetPlotNumber(v string) *SellerProfileCreate {
	_c.mutation.SetPlotNumber(v)
	return _c
}

// SetNillablePlotNumber sets the "plot_number" field if the given value is not nil.
func (_c *SellerProfileCreate) SetNillablePlotNumber(v *string) *SellerProfileCreate {
	if v != nil {
		_c.SetPlotNumber(*v)
	}
	return _c
}

// SetBuildingName sets the "building_name" field.
func (_c *SellerProfileCreate) SetBuildingName(v string) *SellerProfileCreate {
	_c.mutation.SetBuildingName(v)
	return _c
}

// SetNillableBuildingName sets the "building_name" field if the given value is not nil.
func (_c *SellerProfileCreate) SetNillableBuildingName(v *string) *SellerProfileCreate {
	if v != nil {
		_c.SetBuildingName(*v)
	}
	return _c
}

// SetStreetName sets the "street_name" field.
func (_c *SellerProfileCreate) SetStreetName(v string) *SellerProfileCreate {
	_c.mutation.SetStreetName(v)
	return _c
}

// SetNillableStreetName sets the "street_name" field if the given value is not nil.
func (_c *SellerProfileCreate) SetNillableStreetName(v *string) *SellerProfileCreate {
	if v != nil {
		_c.SetStreetName(*v)
	}
	return _c
}

// SetLandmark sets the "landmark" field.
func (_c *SellerProfileCreate) SetLandmark(v string) *SellerProfileCreate {
	_c.mutation.SetLandmark(v)
	return _c
}

// SetNillableLandmark sets the "landmark" field if the given value is not nil.
func (_c *SellerProfileCreate) SetNillableLandmark(v *string) *SellerProfileCreate {
	if v != nil {
		_c.SetLandmark(*v)
	}
	return _c
}

// SetArea sets the "area" field.
func (_c *SellerProfileCreate) SetArea(v string) *SellerProfileCreate {
	_c.mutation.SetArea(v)
	return _c
}

// SetNillableArea sets the "area" field if the given value is not nil.
func (_c *SellerProfileCreate) SetNillableArea(v *string) *SellerProfileCreate {
	if v != nil {
		_c.SetArea(*v)
	}
	return _c
}

// SetCity sets the "city" field.
func (_c *SellerProfileCreate) SetCity(v string) *SellerProfileCreate {
	_c.mutation.SetCity(v)
	return _c
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_c *SellerProfileCreate) SetNillableCity(v *string) *SellerProfileCreate {
	if v != nil {
		_c.SetCity(*v)
	}
	return _c
}

// SetState sets the "state" field.
func (_c *SellerProfileCreate) SetState(v string) *SellerProfileCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *SellerProfileCreate) SetNillableState(v *string) *SellerProfileCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetCategories sets the "categories" field.
func (_c *SellerProfileCreate) SetCategories(v []string) *SellerProfileCreate {
	_c.mutation.SetCategories(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *SellerProfileCreate) SetStatus(v sellerprofile.Status) *SellerProfileCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *SellerProfileCreate) SetNillableStatus(v *sellerprofile.Status) *SellerProfileCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCurrentStep sets the "current_step" field.
func (_c *SellerProfileCreate) SetCurrentStep(v int) *SellerProfileCreate {
	_c.mutation.SetCurrentStep(v)
	return _c
}

// SetNillableCurrentStep sets the "current_step" field if the given value is not nil.
func (_c *SellerProfileCreate) SetNillableCurrentStep(v *int) *SellerProfileCreate {
	if v != nil {
		_c.SetCurrentStep(*v)
	}
	return _c
}

// SetSubmitStage sets the "submit_stage" field.
func (_c *SellerProfileCreate) SetSubmitStage(v sellerprofile.SubmitStage) *SellerProfileCreate {
	_c.mutation.SetSubmitStage(v)
	return _c
}

// SetNillableSubmitStage sets the "submit_stage" field if the given value is not nil.
func (_c *SellerProfileCreate) SetNillableSubmitStage(v *sellerprofile.SubmitStage) *SellerProfileCreate {
	if v != nil {
		_c.SetSubmitStage(*v)
	}
	return _c
}

// SetStoreID sets the "store_id" field.
func (_c *SellerProfileCreate) SetStoreID(v string) *SellerProfileCreate {
	_c.mutation.SetStoreID(v)
	return _c
}

// SetNillableStoreID sets the "store_id" field if the given value is not nil.
func (_c *SellerProfileCreate) SetNillableStoreID(v *string) *SellerProfileCreate {
	if v != nil {
		_c.SetStoreID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SellerProfileCreate) SetCreatedAt(v time.Time) *SellerProfileCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SellerProfileCreate) SetNillableCreatedAt(v *time.Time) *SellerProfileCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SellerProfileCreate) SetUpdatedAt(v time.Time) *SellerProfileCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SellerProfileCreate) SetNillableUpdatedAt(v *time.Time) *SellerProfileCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the SellerProfileMutation object of the builder.
func (_c *SellerProfileCreate) Mutation() *SellerProfileMutation {
	return _c.mutation
}

// Save creates the SellerProfile in the database.
func (_c *SellerProfileCreate) Save(ctx context.Context) (*SellerProfile, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SellerProfileCreate) SaveX(ctx context.Context) *SellerProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SellerProfileCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SellerProfileCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SellerProfileCreate) defaults() {
	if _, ok := _c.mutation.FirstName(); !ok {
		v := sellerprofile.DefaultFirstName
		_c.mutation.SetFirstName(v)
	}
	if _, ok := _c.mutation.LastName(); !ok {
		v := sellerprofile.DefaultLastName
		_c.mutation.SetLastName(v)
	}
	if _, ok := _c.mutation.BusinessName(); !ok {
		v := sellerprofile.DefaultBusinessName
		_c.mutation.SetBusinessName(v)
	}
	if _, ok := _c.mutation.Pincode(); !ok {
		v := sellerprofile.DefaultPincode
		_c.mutation.SetPincode(v)
	}
	if _, ok := _c.mutation.PlotNumber(); !ok {
		v := sellerprofile.DefaultPlotNumber
		_c.mutation.SetPlotNumber(v)
	}
	if _, ok := _c.mutation.BuildingName(); !ok {
		v := sellerprofile.DefaultBuildingName
		_c.mutation.SetBuildingName(v)
	}
	if _, ok := _c.mutation.StreetName(); !ok {
		v := sellerprofile.DefaultStreetName
		_c.mutation.SetStreetName(v)
	}
	if _, ok := _c.mutation.Landmark(); !ok {
		v := sellerprofile.DefaultLandmark
		_c.mutation.SetLandmark(v)
	}
	if _, ok := _c.mutation.Area(); !ok {
		v := sellerprofile.DefaultArea
		_c.mutation.SetArea(v)
	}
	if _, ok := _c.mutation.City(); !ok {
		v := sellerprofile.DefaultCity
		_c.mutation.SetCity(v)
	}
	if _, ok := _c.mutation.State(); !ok {
		v := sellerprofile.DefaultState
		_c.mutation.SetState(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := sellerprofile.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CurrentStep(); !ok {
		v := sellerprofile.DefaultCurrentStep
		_c.mutation.SetCurrentStep(v)
	}
	if _, ok := _c.mutation.SubmitStage(); !ok {
		v := sellerprofile.DefaultSubmitStage
		_c.mutation.SetSubmitStage(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := sellerprofile.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := sellerprofile.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SellerProfileCreate) check() error {
	if _, ok := _c.mutation.Mobile(); !ok {
		return &ValidationError{Name: "mobile", err: errors.New(`ent: missing required field "SellerProfile.mobile"`)}
	}
	if v, ok := _c.mutation.Mobile(); ok {
		if err := sellerprofile.MobileValidator(v); err != nil {
			return &ValidationError{Name: "mobile", err: fmt.Errorf(`ent: validator failed for field "SellerProfile.mobile": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FirstName(); !ok {
		return &ValidationError{Name: "first_name", err: errors.New(`ent: missing required field "SellerProfile.first_name"`)}
	}
	if _, ok := _c.mutation.LastName(); !ok {
		return &ValidationError{Name: "last_name", err: errors.New(`ent: missing required field "SellerProfile.last_name"`)}
	}
	if _, ok := _c.mutation.BusinessName(); !ok {
		return &ValidationError{Name: "business_name", err: errors.New(`ent: missing required field "SellerProfile.business_name"`)}
	}
	if _, ok := _c.mutation.Pincode(); !ok {
		return &ValidationError{Name: "pincode", err: errors.New(`ent: missing required field "SellerProfile.pincode"`)}
	}
	if _, ok := _c.mutation.PlotNumber(); !ok {
		return &ValidationError{Name: "plot_number", err: errors.New(`ent: missing required field "SellerProfile.plot_number"`)}
	}
	if _, ok := _c.mutation.BuildingName(); !ok {
		return &ValidationError{Name: "building_name", err: errors.New(`ent: missing required field "SellerProfile.building_name"`)}
	}
	if _, ok := _c.mutation.StreetName(); !ok {
		return &ValidationError{Name: "street_name", err: errors.New(`ent: missing required field "SellerProfile.street_name"`)}
	}
	if _, ok := _c.mutation.Landmark(); !ok {
		return &ValidationError{Name: "landmark", err: errors.New(`ent: missing required field "SellerProfile.landmark"`)}
	}
	if _, ok := _c.mutation.Area(); !ok {
		return &ValidationError{Name: "area", err: errors.New(`ent: missing required field "SellerProfile.area"`)}
	}
	if _, ok := _c.mutation.City(); !ok {
		return &ValidationError{Name: "city", err: errors.New(`ent: missing required field "SellerProfile.city"`)}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "SellerProfile.state"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "SellerProfile.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := sellerprofile.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SellerProfile.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CurrentStep(); !ok {
		return &ValidationError{Name: "current_step", err: errors.New(`ent: missing required field "SellerProfile.current_step"`)}
	}
	if _, ok := _c.mutation.SubmitStage(); !ok {
		return &ValidationError{Name: "submit_stage", err: errors.New(`ent: missing required field "SellerProfile.submit_stage"`)}
	}
	if v, ok := _c.mutation.SubmitStage(); ok {
		if err := sellerprofile.SubmitStageValidator(v); err != nil {
			return &ValidationError{Name: "submit_stage", err: fmt.Errorf(`ent: validator failed for field "SellerProfile.submit_stage": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SellerProfile.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "SellerProfile.updated_at"`)}
	}
	return nil
}

func (_c *SellerProfileCreate) sqlSave(ctx context.Context) (*SellerProfile, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SellerProfileCreate) createSpec() (*SellerProfile, *sqlgraph.CreateSpec) {
	var (
		_node = &SellerProfile{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sellerprofile.Table, sqlgraph.NewFieldSpec(sellerprofile.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Mobile(); ok {
		_spec.SetField(sellerprofile.FieldMobile, field.TypeString, value)
		_node.Mobile = value
	}
	if value, ok := _c.mutation.FirstName(); ok {
		_spec.SetField(sellerprofile.FieldFirstName, field.TypeString, value)
		_node.FirstName = value
	}
	if value, ok := _c.mutation.LastName(); ok {
		_spec.SetField(sellerprofile.FieldLastName, field.TypeString, value)
		_node.LastName = value
	}
	if value, ok := _c.mutation.BusinessName(); ok {
		_spec.SetField(sellerprofile.FieldBusinessName, field.TypeString, value)
		_node.BusinessName = value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(sellerprofile.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.Whatsapp(); ok {
		_spec.SetField(sellerprofile.FieldWhatsapp, field.TypeString, value)
		_node.Whatsapp = value
	}
	if value, ok := _c.mutation.Pincode(); ok {
		_spec.SetField(sellerprofile.FieldPincode, field.TypeString, value)
		_node.Pincode = value
	}
	if value, ok := _c.mutation.PlotNumber(); ok {
		_spec.SetField(sellerprofile.FieldPlotNumber, field.TypeString, value)
		_node.PlotNumber = value
	}
	if value, ok := _c.mutation.BuildingName(); ok {
		_spec.SetField(sellerprofile.FieldBuildingName, field.TypeString, value)
		_node.BuildingName = value
	}
	if value, ok := _c.mutation.StreetName(); ok {
		_spec.SetField(sellerprofile.FieldStreetName, field.TypeString, value)
		_node.StreetName = value
	}
	if value, ok := _c.mutation.Landmark(); ok {
		_spec.SetField(sellerprofile.FieldLandmark, field.TypeString, value)
		_node.Landmark = value
	}
	if value, ok := _c.mutation.Area(); ok {
		_spec.SetField(sellerprofile.FieldArea, field.TypeString, value)
		_node.Area = value
	}
	if value, ok := _c.mutation.City(); ok {
		_spec.SetField(sellerprofile.FieldCity, field.TypeString, value)
		_node.City = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(sellerprofile.FieldState, field.TypeString, value)
		_node.State = value
	}
	if value, ok := _c.mutation.Categories(); ok {
		_spec.SetField(sellerprofile.FieldCategories, field.TypeJSON, value)
		_node.Categories = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(sellerprofile.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CurrentStep(); ok {
		_spec.SetField(sellerprofile.FieldCurrentStep, field.TypeInt, value)
		_node.CurrentStep = value
	}
	if value, ok := _c.mutation.SubmitStage(); ok {
		_spec.SetField(sellerprofile.FieldSubmitStage, field.TypeEnum, value)
		_node.SubmitStage = value
	}
	if value, ok := _c.mutation.StoreID(); ok {
		_spec.SetField(sellerprofile.FieldStoreID, field.TypeString, value)
		_node.StoreID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(sellerprofile.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(sellerprofile.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// SellerProfileCreateBulk is the builder for creating many SellerProfile entities in bulk.
type SellerProfileCreateBulk struct {
	config
	err      error
	builders []*SellerProfileCreate
}

// Save creates the SellerProfile entities in the database.
func (_c *SellerProfileCreateBulk) Save(ctx context.Context) ([]*SellerProfile, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SellerProfile, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SellerProfileMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *SellerProfileCreateBulk) SaveX(ctx context.Context) []*SellerProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SellerProfileCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SellerProfileCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
