// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/bizmandi/storefront/ent/registrationevent"
)

// RegistrationEventCreate is the builder for creating a RegistrationEvent entity.
type RegistrationEventCreate struct {
	config
	mutation *RegistrationEventMutation
	hooks    []Hook
}

// SetMobile sets the "mobile" field.
func (_c *RegistrationEventCreate) SetMobile(v string) *RegistrationEventCreate {
	_c.mutation.SetMobile(v)
	return _c
}

// SetEvent sets the "event" field.
func (_c *RegistrationEventCreate) SetEvent(v registrationevent.Event) *RegistrationEventCreate {
	_c.mutation.SetEvent(v)
	return _c
}

// SetDetail sets the "detail" field.
func (_c *RegistrationEventCreate) SetDetail(v string) *RegistrationEventCreate {
	_c.mutation.SetDetail(v)
	return _c
}

// SetNillableDetail sets the "detail" field if the given value is not nil.
func (_c *RegistrationEventCreate) SetNillableDetail(v *string) *RegistrationEventCreate {
	if v != nil {
		_c.SetDetail(*v)
	}
	return _c
}

// SetIPAddress sets the "ip_address" field.
func (_c *RegistrationEventCreate) SetIPAddress(v string) *RegistrationEventCreate {
	_c.mutation.SetIPAddress(v)
	return _c
}

// SetNillableIPAddress sets the "ip_address" field if the given value is not nil.
func (_c *RegistrationEventCreate) SetNillableIPAddress(v *string) *RegistrationEventCreate {
	if v != nil {
		_c.SetIPAddress(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RegistrationEventCreate) SetCreatedAt(v time.Time) *RegistrationEventCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RegistrationEventCreate) SetNillableCreatedAt(v *time.Time) *RegistrationEventCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the RegistrationEventMutation object of the builder.
func (_c *RegistrationEventCreate) Mutation() *RegistrationEventMutation {
	return _c.mutation
}

// Save creates the RegistrationEvent in the database.
func (_c *RegistrationEventCreate) Save(ctx context.Context) (*RegistrationEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RegistrationEventCreate) SaveX(ctx context.Context) *RegistrationEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RegistrationEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RegistrationEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RegistrationEventCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := registrationevent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RegistrationEventCreate) check() error {
	if _, ok := _c.mutation.Mobile(); !ok {
		return &ValidationError{Name: "mobile", err: errors.New(`ent: missing required field "RegistrationEvent.mobile"`)}
	}
	if v, ok := _c.mutation.Mobile(); ok {
		if err := registrationevent.MobileValidator(v); err != nil {
			return &ValidationError{Name: "mobile", err: fmt.Errorf(`ent: validator failed for field "RegistrationEvent.mobile": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Event(); !ok {
		return &ValidationError{Name: "event", err: errors.New(`ent: missing required field "RegistrationEvent.event"`)}
	}
	if v, ok := _c.mutation.Event(); ok {
		if err := registrationevent.EventValidator(v); err != nil {
			return &ValidationError{Name: "event", err: fmt.Errorf(`ent: validator failed for field "RegistrationEvent.event": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "RegistrationEvent.created_at"`)}
	}
	return nil
}

func (_c *RegistrationEventCreate) sqlSave(ctx context.Context) (*RegistrationEvent, error) {
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

func (_c *RegistrationEventCreate) createSpec() (*RegistrationEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &RegistrationEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(registrationevent.Table, sqlgraph.NewFieldSpec(registrationevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Mobile(); ok {
		_spec.SetField(registrationevent.FieldMobile, field.TypeString, value)
		_node.Mobile = value
	}
	if value, ok := _c.mutation.Event(); ok {
		_spec.SetField(registrationevent.FieldEvent, field.TypeEnum, value)
		_node.Event = value
	}
	if value, ok := _c.mutation.Detail(); ok {
		_spec.SetField(registrationevent.FieldDetail, field.TypeString, value)
		_node.Detail = value
	}
	if value, ok := _c.mutation.IPAddress(); ok {
		_spec.SetField(registrationevent.FieldIPAddress, field.TypeString, value)
		_node.IPAddress = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(registrationevent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// RegistrationEventCreateBulk is the builder for creating many RegistrationEvent entities in bulk.
type RegistrationEventCreateBulk struct {
	config
	err      error
	builders []*RegistrationEventCreate
}

// Save creates the RegistrationEvent entities in the database.
func (_c *RegistrationEventCreateBulk) Save(ctx context.Context) ([]*RegistrationEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RegistrationEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RegistrationEventMutation)
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
func (_c *RegistrationEventCreateBulk) SaveX(ctx context.Context) []*RegistrationEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RegistrationEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RegistrationEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
