// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/bizmandi/storefront/ent/predicate"
	"github.com/bizmandi/storefront/ent/registrationevent"
)

// RegistrationEventUpdate is the builder for updating RegistrationEvent entities.
type RegistrationEventUpdate struct {
	config
	hooks    []Hook
	mutation *RegistrationEventMutation
}

// Where appends a list predicates to the RegistrationEventUpdate builder.
func (_u *RegistrationEventUpdate) Where(ps ...predicate.RegistrationEvent) *RegistrationEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMobile sets the "mobile" field.
func (_u *RegistrationEventUpdate) SetMobile(v string) *RegistrationEventUpdate {
	_u.mutation.SetMobile(v)
	return _u
}

// SetNillableMobile sets the "mobile" field if the given value is not nil.
func (_u *RegistrationEventUpdate) SetNillableMobile(v *string) *RegistrationEventUpdate {
	if v != nil {
		_u.SetMobile(*v)
	}
	return _u
}

// SetEvent sets the "event" field.
func (_u *RegistrationEventUpdate) SetEvent(v registrationevent.Event) *RegistrationEventUpdate {
	_u.mutation.SetEvent(v)
	return _u
}

// SetNillableEvent sets the "event" field if the given value is not nil.
func (_u *RegistrationEventUpdate) SetNillableEvent(v *registrationevent.Event) *RegistrationEventUpdate {
	if v != nil {
		_u.SetEvent(*v)
	}
	return _u
}

// SetDetail sets the "detail" field.
func (_u *RegistrationEventUpdate) SetDetail(v string) *RegistrationEventUpdate {
	_u.mutation.SetDetail(v)
	return _u
}

// SetNillableDetail sets the "detail" field if the given value is not nil.
func (_u *RegistrationEventUpdate) SetNillableDetail(v *string) *RegistrationEventUpdate {
	if v != nil {
		_u.SetDetail(*v)
	}
	return _u
}

// ClearDetail clears the value of the "detail" field.
func (_u *RegistrationEventUpdate) ClearDetail() *RegistrationEventUpdate {
	_u.mutation.ClearDetail()
	return _u
}

// SetIPAddress sets the "ip_address" field.
func (_u *RegistrationEventUpdate) SetIPAddress(v string) *RegistrationEventUpdate {
	_u.mutation.SetIPAddress(v)
	return _u
}

// SetNillableIPAddress sets the "ip_address" field if the given value is not nil.
func (_u *RegistrationEventUpdate) SetNillableIPAddress(v *string) *RegistrationEventUpdate {
	if v != nil {
		_u.SetIPAddress(*v)
	}
	return _u
}

// ClearIPAddress clears the value of the "ip_address" field.
func (_u *RegistrationEventUpdate) ClearIPAddress() *RegistrationEventUpdate {
	_u.mutation.ClearIPAddress()
	return _u
}

// Mutation returns the RegistrationEventMutation object of the builder.
func (_u *RegistrationEventUpdate) Mutation() *RegistrationEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RegistrationEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RegistrationEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RegistrationEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RegistrationEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RegistrationEventUpdate) check() error {
	if v, ok := _u.mutation.Mobile(); ok {
		if err := registrationevent.MobileValidator(v); err != nil {
			return &ValidationError{Name: "mobile", err: fmt.Errorf(`ent: validator failed for field "RegistrationEvent.mobile": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Event(); ok {
		if err := registrationevent.EventValidator(v); err != nil {
			return &ValidationError{Name: "event", err: fmt.Errorf(`ent: validator failed for field "RegistrationEvent.event": %w`, err)}
		}
	}
	return nil
}

func (_u *RegistrationEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(registrationevent.Table, registrationevent.Columns, sqlgraph.NewFieldSpec(registrationevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Mobile(); ok {
		_spec.SetField(registrationevent.FieldMobile, field.TypeString, value)
	}
	if value, ok := _u.mutation.Event(); ok {
		_spec.SetField(registrationevent.FieldEvent, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Detail(); ok {
		_spec.SetField(registrationevent.FieldDetail, field.TypeString, value)
	}
	if _u.mutation.DetailCleared() {
		_spec.ClearField(registrationevent.FieldDetail, field.TypeString)
	}
	if value, ok := _u.mutation.IPAddress(); ok {
		_spec.SetField(registrationevent.FieldIPAddress, field.TypeString, value)
	}
	if _u.mutation.IPAddressCleared() {
		_spec.ClearField(registrationevent.FieldIPAddress, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{registrationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RegistrationEventUpdateOne is the builder for updating a single RegistrationEvent entity.
type RegistrationEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RegistrationEventMutation
}

// SetMobile sets the "mobile" field.
func (_u *RegistrationEventUpdateOne) SetMobile(v string) *RegistrationEventUpdateOne {
	_u.mutation.SetMobile(v)
	return _u
}

// SetNillableMobile sets the "mobile" field if the given value is not nil.
func (_u *RegistrationEventUpdateOne) SetNillableMobile(v *string) *RegistrationEventUpdateOne {
	if v != nil {
		_u.SetMobile(*v)
	}
	return _u
}

// SetEvent sets the "event" field.
func (_u *RegistrationEventUpdateOne) SetEvent(v registrationevent.Event) *RegistrationEventUpdateOne {
	_u.mutation.SetEvent(v)
	return _u
}

// SetNillableEvent sets the "event" field if the given value is not nil.
func (_u *RegistrationEventUpdateOne) SetNillableEvent(v *registrationevent.Event) *RegistrationEventUpdateOne {
	if v != nil {
		_u.SetEvent(*v)
	}
	return _u
}

// SetDetail sets the "detail" field.
func (_u *RegistrationEventUpdateOne) SetDetail(v string) *RegistrationEventUpdateOne {
	_u.mutation.SetDetail(v)
	return _u
}

// SetNillableDetail sets the "detail" field if the given value is not nil.
func (_u *RegistrationEventUpdateOne) SetNillableDetail(v *string) *RegistrationEventUpdateOne {
	if v != nil {
		_u.SetDetail(*v)
	}
	return _u
}

// ClearDetail clears the value of the "detail" field.
func (_u *RegistrationEventUpdateOne) ClearDetail() *RegistrationEventUpdateOne {
	_u.mutation.ClearDetail()
	return _u
}

// SetIPAddress sets the "ip_address" field.
func (_u *RegistrationEventUpdateOne) SetIPAddress(v string) *RegistrationEventUpdateOne {
	_u.mutation.SetIPAddress(v)
	return _u
}

// SetNillableIPAddress sets the "ip_address" field if the given value is not nil.
func (_u *RegistrationEventUpdateOne) SetNillableIPAddress(v *string) *RegistrationEventUpdateOne {
	if v != nil {
		_u.SetIPAddress(*v)
	}
	return _u
}

// ClearIPAddress clears the value of the "ip_address" field.
func (_u *RegistrationEventUpdateOne) ClearIPAddress() *RegistrationEventUpdateOne {
	_u.mutation.ClearIPAddress()
	return _u
}

// Mutation returns the RegistrationEventMutation object of the builder.
func (_u *RegistrationEventUpdateOne) Mutation() *RegistrationEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the RegistrationEventUpdate builder.
func (_u *RegistrationEventUpdateOne) Where(ps ...predicate.RegistrationEvent) *RegistrationEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RegistrationEventUpdateOne) Select(field string, fields ...string) *RegistrationEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RegistrationEvent entity.
func (_u *RegistrationEventUpdateOne) Save(ctx context.Context) (*RegistrationEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RegistrationEventUpdateOne) SaveX(ctx context.Context) *RegistrationEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RegistrationEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RegistrationEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RegistrationEventUpdateOne) check() error {
	if v, ok := _u.mutation.Mobile(); ok {
		if err := registrationevent.MobileValidator(v); err != nil {
			return &ValidationError{Name: "mobile", err: fmt.Errorf(`ent: validator failed for field "RegistrationEvent.mobile": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Event(); ok {
		if err := registrationevent.EventValidator(v); err != nil {
			return &ValidationError{Name: "event", err: fmt.Errorf(`ent: validator failed for field "RegistrationEvent.event": %w`, err)}
		}
	}
	return nil
}

func (_u *RegistrationEventUpdateOne) sqlSave(ctx context.Context) (_node *RegistrationEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(registrationevent.Table, registrationevent.Columns, sqlgraph.NewFieldSpec(registrationevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RegistrationEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, registrationevent.FieldID)
		for _, f := range fields {
			if !registrationevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != registrationevent.FieldID {
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
		_spec.SetField(registrationevent.FieldMobile, field.TypeString, value)
	}
	if value, ok := _u.mutation.Event(); ok {
		_spec.SetField(registrationevent.FieldEvent, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Detail(); ok {
		_spec.SetField(registrationevent.FieldDetail, field.TypeString, value)
	}
	if _u.mutation.DetailCleared() {
		_spec.ClearField(registrationevent.FieldDetail, field.TypeString)
	}
	if value, ok := _u.mutation.IPAddress(); ok {
		_spec.SetField(registrationevent.FieldIPAddress, field.TypeString, value)
	}
	if _u.mutation.IPAddressCleared() {
		_spec.ClearField(registrationevent.FieldIPAddress, field.TypeString)
	}
	_node = &RegistrationEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{registrationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
