// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/learnpath/ent/completionevent"
)

// CompletionEventCreate is the builder for creating a CompletionEvent entity.
type CompletionEventCreate struct {
	config
	mutation *CompletionEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (cec *CompletionEventCreate) SetSequence(i int64) *CompletionEventCreate {
	cec.mutation.SetSequence(i)
	return cec
}

// SetTimestamp sets the "timestamp" field.
func (cec *CompletionEventCreate) SetTimestamp(t time.Time) *CompletionEventCreate {
	cec.mutation.SetTimestamp(t)
	return cec
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (cec *CompletionEventCreate) SetNillableTimestamp(t *time.Time) *CompletionEventCreate {
	if t != nil {
		cec.SetTimestamp(*t)
	}
	return cec
}

// SetPathID sets the "path_id" field.
func (cec *CompletionEventCreate) SetPathID(s string) *CompletionEventCreate {
	cec.mutation.SetPathID(s)
	return cec
}

// SetItemID sets the "item_id" field.
func (cec *CompletionEventCreate) SetItemID(s string) *CompletionEventCreate {
	cec.mutation.SetItemID(s)
	return cec
}

// SetQuality sets the "quality" field.
func (cec *CompletionEventCreate) SetQuality(i int) *CompletionEventCreate {
	cec.mutation.SetQuality(i)
	return cec
}

// SetTimeSpentSecs sets the "time_spent_secs" field.
func (cec *CompletionEventCreate) SetTimeSpentSecs(i int) *CompletionEventCreate {
	cec.mutation.SetTimeSpentSecs(i)
	return cec
}

// Mutation returns the CompletionEventMutation object of the builder.
func (cec *CompletionEventCreate) Mutation() *CompletionEventMutation {
	return cec.mutation
}

// Save creates the CompletionEvent in the database.
func (cec *CompletionEventCreate) Save(ctx context.Context) (*CompletionEvent, error) {
	cec.defaults()
	return withHooks(ctx, cec.sqlSave, cec.mutation, cec.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (cec *CompletionEventCreate) SaveX(ctx context.Context) *CompletionEvent {
	v, err := cec.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (cec *CompletionEventCreate) Exec(ctx context.Context) error {
	_, err := cec.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cec *CompletionEventCreate) ExecX(ctx context.Context) {
	if err := cec.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (cec *CompletionEventCreate) defaults() {
	if _, ok := cec.mutation.Timestamp(); !ok {
		v := completionevent.DefaultTimestamp()
		cec.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (cec *CompletionEventCreate) check() error {
	if _, ok := cec.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "CompletionEvent.sequence"`)}
	}
	if _, ok := cec.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "CompletionEvent.timestamp"`)}
	}
	if _, ok := cec.mutation.PathID(); !ok {
		return &ValidationError{Name: "path_id", err: errors.New(`ent: missing required field "CompletionEvent.path_id"`)}
	}
	if v, ok := cec.mutation.PathID(); ok {
		if err := completionevent.PathIDValidator(v); err != nil {
			return &ValidationError{Name: "path_id", err: fmt.Errorf(`ent: validator failed for field "CompletionEvent.path_id": %w`, err)}
		}
	}
	if _, ok := cec.mutation.ItemID(); !ok {
		return &ValidationError{Name: "item_id", err: errors.New(`ent: missing required field "CompletionEvent.item_id"`)}
	}
	if v, ok := cec.mutation.ItemID(); ok {
		if err := completionevent.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "CompletionEvent.item_id": %w`, err)}
		}
	}
	if _, ok := cec.mutation.Quality(); !ok {
		return &ValidationError{Name: "quality", err: errors.New(`ent: missing required field "CompletionEvent.quality"`)}
	}
	if _, ok := cec.mutation.TimeSpentSecs(); !ok {
		return &ValidationError{Name: "time_spent_secs", err: errors.New(`ent: missing required field "CompletionEvent.time_spent_secs"`)}
	}
	return nil
}

func (cec *CompletionEventCreate) sqlSave(ctx context.Context) (*CompletionEvent, error) {
	if err := cec.check(); err != nil {
		return nil, err
	}
	_node, _spec := cec.createSpec()
	if err := sqlgraph.CreateNode(ctx, cec.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	cec.mutation.id = &_node.ID
	cec.mutation.done = true
	return _node, nil
}

func (cec *CompletionEventCreate) createSpec() (*CompletionEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &CompletionEvent{config: cec.config}
		_spec = sqlgraph.NewCreateSpec(completionevent.Table, sqlgraph.NewFieldSpec(completionevent.FieldID, field.TypeInt))
	)
	if value, ok := cec.mutation.Sequence(); ok {
		_spec.SetField(completionevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := cec.mutation.Timestamp(); ok {
		_spec.SetField(completionevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := cec.mutation.PathID(); ok {
		_spec.SetField(completionevent.FieldPathID, field.TypeString, value)
		_node.PathID = value
	}
	if value, ok := cec.mutation.ItemID(); ok {
		_spec.SetField(completionevent.FieldItemID, field.TypeString, value)
		_node.ItemID = value
	}
	if value, ok := cec.mutation.Quality(); ok {
		_spec.SetField(completionevent.FieldQuality, field.TypeInt, value)
		_node.Quality = value
	}
	if value, ok := cec.mutation.TimeSpentSecs(); ok {
		_spec.SetField(completionevent.FieldTimeSpentSecs, field.TypeInt, value)
		_node.TimeSpentSecs = value
	}
	return _node, _spec
}

// CompletionEventCreateBulk is the builder for creating many CompletionEvent entities in bulk.
type CompletionEventCreateBulk struct {
	config
	err      error
	builders []*CompletionEventCreate
}

// Save creates the CompletionEvent entities in the database.
func (cecb *CompletionEventCreateBulk) Save(ctx context.Context) ([]*CompletionEvent, error) {
	if cecb.err != nil {
		return nil, cecb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(cecb.builders))
	nodes := make([]*CompletionEvent, len(cecb.builders))
	mutators := make([]Mutator, len(cecb.builders))
	for i := range cecb.builders {
		func(i int, root context.Context) {
			builder := cecb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CompletionEventMutation)
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
					_, err = mutators[i+1].Mutate(root, cecb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, cecb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, cecb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (cecb *CompletionEventCreateBulk) SaveX(ctx context.Context) []*CompletionEvent {
	v, err := cecb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (cecb *CompletionEventCreateBulk) Exec(ctx context.Context) error {
	_, err := cecb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cecb *CompletionEventCreateBulk) ExecX(ctx context.Context) {
	if err := cecb.Exec(ctx); err != nil {
		panic(err)
	}
}
