// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/AhmetShbz/wordrush/ent/ledgerevent"
	"github.com/AhmetShbz/wordrush/ent/predicate"
)

// LedgerEventUpdate is the builder for updating LedgerEvent entities.
type LedgerEventUpdate struct {
	config
	hooks    []Hook
	mutation *LedgerEventMutation
}

// Where appends a list predicates to the LedgerEventUpdate builder.
func (_u *LedgerEventUpdate) Where(ps ...predicate.LedgerEvent) *LedgerEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDelta sets the "delta" field.
func (_u *LedgerEventUpdate) SetDelta(v int) *LedgerEventUpdate {
	_u.mutation.ResetDelta()
	_u.mutation.SetDelta(v)
	return _u
}

// SetNillableDelta sets the "delta" field if the given value is not nil.
func (_u *LedgerEventUpdate) SetNillableDelta(v *int) *LedgerEventUpdate {
	if v != nil {
		_u.SetDelta(*v)
	}
	return _u
}

// AddDelta adds value to the "delta" field.
func (_u *LedgerEventUpdate) AddDelta(v int) *LedgerEventUpdate {
	_u.mutation.AddDelta(v)
	return _u
}

// SetBalanceAfter sets the "balance_after" field.
func (_u *LedgerEventUpdate) SetBalanceAfter(v int) *LedgerEventUpdate {
	_u.mutation.ResetBalanceAfter()
	_u.mutation.SetBalanceAfter(v)
	return _u
}

// SetNillableBalanceAfter sets the "balance_after" field if the given value is not nil.
func (_u *LedgerEventUpdate) SetNillableBalanceAfter(v *int) *LedgerEventUpdate {
	if v != nil {
		_u.SetBalanceAfter(*v)
	}
	return _u
}

// AddBalanceAfter adds value to the "balance_after" field.
func (_u *LedgerEventUpdate) AddBalanceAfter(v int) *LedgerEventUpdate {
	_u.mutation.AddBalanceAfter(v)
	return _u
}

// SetReason sets the "reason" field.
func (_u *LedgerEventUpdate) SetReason(v string) *LedgerEventUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *LedgerEventUpdate) SetNillableReason(v *string) *LedgerEventUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *LedgerEventUpdate) SetSessionID(v string) *LedgerEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *LedgerEventUpdate) SetNillableSessionID(v *string) *LedgerEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// Mutation returns the LedgerEventMutation object of the builder.
func (_u *LedgerEventUpdate) Mutation() *LedgerEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LedgerEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LedgerEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LedgerEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LedgerEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LedgerEventUpdate) check() error {
	if v, ok := _u.mutation.BalanceAfter(); ok {
		if err := ledgerevent.BalanceAfterValidator(v); err != nil {
			return &ValidationError{Name: "balance_after", err: fmt.Errorf(`ent: validator failed for field "LedgerEvent.balance_after": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Reason(); ok {
		if err := ledgerevent.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "LedgerEvent.reason": %w`, err)}
		}
	}
	return nil
}

func (_u *LedgerEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ledgerevent.Table, ledgerevent.Columns, sqlgraph.NewFieldSpec(ledgerevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Delta(); ok {
		_spec.SetField(ledgerevent.FieldDelta, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDelta(); ok {
		_spec.AddField(ledgerevent.FieldDelta, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BalanceAfter(); ok {
		_spec.SetField(ledgerevent.FieldBalanceAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBalanceAfter(); ok {
		_spec.AddField(ledgerevent.FieldBalanceAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(ledgerevent.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(ledgerevent.FieldSessionID, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ledgerevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LedgerEventUpdateOne is the builder for updating a single LedgerEvent entity.
type LedgerEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LedgerEventMutation
}

// SetDelta sets the "delta" field.
func (_u *LedgerEventUpdateOne) SetDelta(v int) *LedgerEventUpdateOne {
	_u.mutation.ResetDelta()
	_u.mutation.SetDelta(v)
	return _u
}

// SetNillableDelta sets the "delta" field if the given value is not nil.
func (_u *LedgerEventUpdateOne) SetNillableDelta(v *int) *LedgerEventUpdateOne {
	if v != nil {
		_u.SetDelta(*v)
	}
	return _u
}

// AddDelta adds value to the "delta" field.
func (_u *LedgerEventUpdateOne) AddDelta(v int) *LedgerEventUpdateOne {
	_u.mutation.AddDelta(v)
	return _u
}

// SetBalanceAfter sets the "balance_after" field.
func (_u *LedgerEventUpdateOne) SetBalanceAfter(v int) *LedgerEventUpdateOne {
	_u.mutation.ResetBalanceAfter()
	_u.mutation.SetBalanceAfter(v)
	return _u
}

// SetNillableBalanceAfter sets the "balance_after" field if the given value is not nil.
func (_u *LedgerEventUpdateOne) SetNillableBalanceAfter(v *int) *LedgerEventUpdateOne {
	if v != nil {
		_u.SetBalanceAfter(*v)
	}
	return _u
}

// AddBalanceAfter adds value to the "balance_after" field.
func (_u *LedgerEventUpdateOne) AddBalanceAfter(v int) *LedgerEventUpdateOne {
	_u.mutation.AddBalanceAfter(v)
	return _u
}

// SetReason sets the "reason" field.
func (_u *LedgerEventUpdateOne) SetReason(v string) *LedgerEventUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *LedgerEventUpdateOne) SetNillableReason(v *string) *LedgerEventUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *LedgerEventUpdateOne) SetSessionID(v string) *LedgerEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *LedgerEventUpdateOne) SetNillableSessionID(v *string) *LedgerEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// Mutation returns the LedgerEventMutation object of the builder.
func (_u *LedgerEventUpdateOne) Mutation() *LedgerEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the LedgerEventUpdate builder.
func (_u *LedgerEventUpdateOne) Where(ps ...predicate.LedgerEvent) *LedgerEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LedgerEventUpdateOne) Select(field string, fields ...string) *LedgerEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LedgerEvent entity.
func (_u *LedgerEventUpdateOne) Save(ctx context.Context) (*LedgerEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LedgerEventUpdateOne) SaveX(ctx context.Context) *LedgerEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LedgerEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LedgerEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LedgerEventUpdateOne) check() error {
	if v, ok := _u.mutation.BalanceAfter(); ok {
		if err := ledgerevent.BalanceAfterValidator(v); err != nil {
			return &ValidationError{Name: "balance_after", err: fmt.Errorf(`ent: validator failed for field "LedgerEvent.balance_after": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Reason(); ok {
		if err := ledgerevent.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "LedgerEvent.reason": %w`, err)}
		}
	}
	return nil
}

func (_u *LedgerEventUpdateOne) sqlSave(ctx context.Context) (_node *LedgerEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ledgerevent.Table, ledgerevent.Columns, sqlgraph.NewFieldSpec(ledgerevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LedgerEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, ledgerevent.FieldID)
		for _, f := range fields {
			if !ledgerevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != ledgerevent.FieldID {
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
	if value, ok := _u.mutation.Delta(); ok {
		_spec.SetField(ledgerevent.FieldDelta, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDelta(); ok {
		_spec.AddField(ledgerevent.FieldDelta, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BalanceAfter(); ok {
		_spec.SetField(ledgerevent.FieldBalanceAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBalanceAfter(); ok {
		_spec.AddField(ledgerevent.FieldBalanceAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(ledgerevent.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(ledgerevent.FieldSessionID, field.TypeString, value)
	}
	_node = &LedgerEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ledgerevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
