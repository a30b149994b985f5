// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/AhmetShbz/wordrush/ent/ledgerevent"
)

// LedgerEventCreate is the builder for creating a LedgerEvent entity.
type LedgerEventCreate struct {
	config
	mutation *LedgerEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *LedgerEventCreate) SetSequence(v int64) *LedgerEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *LedgerEventCreate) SetTimestamp(v time.Time) *LedgerEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *LedgerEventCreate) SetNillableTimestamp(v *time.Time) *LedgerEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetDelta sets the "delta" field.
func (_c *LedgerEventCreate) SetDelta(v int) *LedgerEventCreate {
	_c.mutation.SetDelta(v)
	return _c
}

// SetBalanceAfter sets the "balance_after" field.
func (_c *LedgerEventCreate) SetBalanceAfter(v int) *LedgerEventCreate {
	_c.mutation.SetBalanceAfter(v)
	return _c
}

// SetReason sets the "reason" field.
func (_c *LedgerEventCreate) SetReason(v string) *LedgerEventCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *LedgerEventCreate) SetSessionID(v string) *LedgerEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_c *LedgerEventCreate) SetNillableSessionID(v *string) *LedgerEventCreate {
	if v != nil {
		_c.SetSessionID(*v)
	}
	return _c
}

// Mutation returns the LedgerEventMutation object of the builder.
func (_c *LedgerEventCreate) Mutation() *LedgerEventMutation {
	return _c.mutation
}

// Save creates the LedgerEvent in the database.
func (_c *LedgerEventCreate) Save(ctx context.Context) (*LedgerEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LedgerEventCreate) SaveX(ctx context.Context) *LedgerEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LedgerEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LedgerEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LedgerEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := ledgerevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		v := ledgerevent.DefaultSessionID
		_c.mutation.SetSessionID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LedgerEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "LedgerEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "LedgerEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.Delta(); !ok {
		return &ValidationError{Name: "delta", err: errors.New(`ent: missing required field "LedgerEvent.delta"`)}
	}
	if _, ok := _c.mutation.BalanceAfter(); !ok {
		return &ValidationError{Name: "balance_after", err: errors.New(`ent: missing required field "LedgerEvent.balance_after"`)}
	}
	if v, ok := _c.mutation.BalanceAfter(); ok {
		if err := ledgerevent.BalanceAfterValidator(v); err != nil {
			return &ValidationError{Name: "balance_after", err: fmt.Errorf(`ent: validator failed for field "LedgerEvent.balance_after": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Reason(); !ok {
		return &ValidationError{Name: "reason", err: errors.New(`ent: missing required field "LedgerEvent.reason"`)}
	}
	if v, ok := _c.mutation.Reason(); ok {
		if err := ledgerevent.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "LedgerEvent.reason": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "LedgerEvent.session_id"`)}
	}
	return nil
}

func (_c *LedgerEventCreate) sqlSave(ctx context.Context) (*LedgerEvent, error) {
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

func (_c *LedgerEventCreate) createSpec() (*LedgerEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &LedgerEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(ledgerevent.Table, sqlgraph.NewFieldSpec(ledgerevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(ledgerevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(ledgerevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.Delta(); ok {
		_spec.SetField(ledgerevent.FieldDelta, field.TypeInt, value)
		_node.Delta = value
	}
	if value, ok := _c.mutation.BalanceAfter(); ok {
		_spec.SetField(ledgerevent.FieldBalanceAfter, field.TypeInt, value)
		_node.BalanceAfter = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(ledgerevent.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(ledgerevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	return _node, _spec
}

// LedgerEventCreateBulk is the builder for creating many LedgerEvent entities in bulk.
type LedgerEventCreateBulk struct {
	config
	err      error
	builders []*LedgerEventCreate
}

// Save creates the LedgerEvent entities in the database.
func (_c *LedgerEventCreateBulk) Save(ctx context.Context) ([]*LedgerEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LedgerEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LedgerEventMutation)
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
func (_c *LedgerEventCreateBulk) SaveX(ctx context.Context) []*LedgerEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LedgerEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LedgerEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
