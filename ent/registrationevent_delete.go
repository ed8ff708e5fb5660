// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/bizmandi/storefront/ent/predicate"
	"github.com/bizmandi/storefront/ent/registrationevent"
)

// RegistrationEventDelete is the builder for deleting a RegistrationEvent entity.
type RegistrationEventDelete struct {
	config
	hooks    []Hook
	mutation *RegistrationEventMutation
}

// Where appends a list predicates to the RegistrationEventDelete builder.
func (_d *RegistrationEventDelete) Where(ps ...predicate.RegistrationEvent) *RegistrationEventDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *RegistrationEventDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *RegistrationEventDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *RegistrationEventDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(registrationevent.Table, sqlgraph.NewFieldSpec(registrationevent.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// RegistrationEventDeleteOne is the builder for deleting a single RegistrationEvent entity.
type RegistrationEventDeleteOne struct {
	_d *RegistrationEventDelete
}

// Where appends a list predicates to the RegistrationEventDelete builder.
func (_d *RegistrationEventDeleteOne) Where(ps ...predicate.RegistrationEvent) *RegistrationEventDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *RegistrationEventDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{registrationevent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *RegistrationEventDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
