// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/learnpath/ent/cardstate"
)

// CardStateCreate is the builder for creating a CardState entity.
type CardStateCreate struct {
	config
	mutation *CardStateMutation
	hooks    []Hook
}

// SetLearnerID sets the "learner_id" field.
func (csc *CardStateCreate) SetLearnerID(s string) *CardStateCreate {
	csc.mutation.SetLearnerID(s)
	return csc
}

// SetItemID sets the "item_id" field.
func (csc *CardStateCreate) SetItemID(s string) *CardStateCreate {
	csc.mutation.SetItemID(s)
	return csc
}

// SetEaseFactor sets the "ease_factor" field.
func (csc *CardStateCreate) SetEaseFactor(f float64) *CardStateCreate {
	csc.mutation.SetEaseFactor(f)
	return csc
}

// SetNillableEaseFactor sets the "ease_factor" field if the given value is not nil.
func (csc *CardStateCreate) SetNillableEaseFactor(f *float64) *CardStateCreate {
	if f != nil {
		csc.SetEaseFactor(*f)
	}
	return csc
}

// SetInterval sets the "interval" field.
func (csc *CardStateCreate) SetInterval(i int) *CardStateCreate {
	csc.mutation.SetInterval(i)
	return csc
}

// SetNillableInterval sets the "interval" field if the given value is not nil.
func (csc *CardStateCreate) SetNillableInterval(i *int) *CardStateCreate {
	if i != nil {
		csc.SetInterval(*i)
	}
	return csc
}

// SetRepetition sets the "repetition" field.
func (csc *CardStateCreate) SetRepetition(i int) *CardStateCreate {
	csc.mutation.SetRepetition(i)
	return csc
}

// SetNillableRepetition sets the "repetition" field if the given value is not nil.
func (csc *CardStateCreate) SetNillableRepetition(i *int) *CardStateCreate {
	if i != nil {
		csc.SetRepetition(*i)
	}
	return csc
}

// SetNextReviewDate sets the "next_review_date" field.
func (csc *CardStateCreate) SetNextReviewDate(t time.Time) *CardStateCreate {
	csc.mutation.SetNextReviewDate(t)
	return csc
}

// SetLastReviewDate sets the "last_review_date" field.
func (csc *CardStateCreate) SetLastReviewDate(t time.Time) *CardStateCreate {
	csc.mutation.SetLastReviewDate(t)
	return csc
}

// SetNillableLastReviewDate sets the "last_review_date" field if the given value is not nil.
func (csc *CardStateCreate) SetNillableLastReviewDate(t *time.Time) *CardStateCreate {
	if t != nil {
		csc.SetLastReviewDate(*t)
	}
	return csc
}

// SetReviewHistory sets the "review_history" field.
func (csc *CardStateCreate) SetReviewHistory(m []map[string]interface{}) *CardStateCreate {
	csc.mutation.SetReviewHistory(m)
	return csc
}

// SetCreatedAt sets the "created_at" field.
func (csc *CardStateCreate) SetCreatedAt(t time.Time) *CardStateCreate {
	csc.mutation.SetCreatedAt(t)
	return csc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (csc *CardStateCreate) SetNillableCreatedAt(t *time.Time) *CardStateCreate {
	if t != nil {
		csc.SetCreatedAt(*t)
	}
	return csc
}

// SetUpdatedAt sets the "updated_at" field.
func (csc *CardStateCreate) SetUpdatedAt(t time.Time) *CardStateCreate {
	csc.mutation.SetUpdatedAt(t)
	return csc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (csc *CardStateCreate) SetNillableUpdatedAt(t *time.Time) *CardStateCreate {
	if t != nil {
		csc.SetUpdatedAt(*t)
	}
	return csc
}

// Mutation returns the CardStateMutation object of the builder.
func (csc *CardStateCreate) Mutation() *CardStateMutation {
	return csc.mutation
}

// Save creates the CardState in the database.
func (csc *CardStateCreate) Save(ctx context.Context) (*CardState, error) {
	csc.defaults()
	return withHooks(ctx, csc.sqlSave, csc.mutation, csc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (csc *CardStateCreate) SaveX(ctx context.Context) *CardState {
	v, err := csc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (csc *CardStateCreate) Exec(ctx context.Context) error {
	_, err := csc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (csc *CardStateCreate) ExecX(ctx context.Context) {
	if err := csc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (csc *CardStateCreate) defaults() {
	if _, ok := csc.mutation.EaseFactor(); !ok {
		v := cardstate.DefaultEaseFactor
		csc.mutation.SetEaseFactor(v)
	}
	if _, ok := csc.mutation.Interval(); !ok {
		v := cardstate.DefaultInterval
		csc.mutation.SetInterval(v)
	}
	if _, ok := csc.mutation.Repetition(); !ok {
		v := cardstate.DefaultRepetition
		csc.mutation.SetRepetition(v)
	}
	if _, ok := csc.mutation.CreatedAt(); !ok {
		v := cardstate.DefaultCreatedAt()
		csc.mutation.SetCreatedAt(v)
	}
	if _, ok := csc.mutation.UpdatedAt(); !ok {
		v := cardstate.DefaultUpdatedAt()
		csc.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (csc *CardStateCreate) check() error {
	if _, ok := csc.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "CardState.learner_id"`)}
	}
	if v, ok := csc.mutation.LearnerID(); ok {
		if err := cardstate.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "CardState.learner_id": %w`, err)}
		}
	}
	if _, ok := csc.mutation.ItemID(); !ok {
		return &ValidationError{Name: "item_id", err: errors.New(`ent: missing required field "CardState.item_id"`)}
	}
	if v, ok := csc.mutation.ItemID(); ok {
		if err := cardstate.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "CardState.item_id": %w`, err)}
		}
	}
	if _, ok := csc.mutation.EaseFactor(); !ok {
		return &ValidationError{Name: "ease_factor", err: errors.New(`ent: missing required field "CardState.ease_factor"`)}
	}
	if _, ok := csc.mutation.Interval(); !ok {
		return &ValidationError{Name: "interval", err: errors.New(`ent: missing required field "CardState.interval"`)}
	}
	if _, ok := csc.mutation.Repetition(); !ok {
		return &ValidationError{Name: "repetition", err: errors.New(`ent: missing required field "CardState.repetition"`)}
	}
	if _, ok := csc.mutation.NextReviewDate(); !ok {
		return &ValidationError{Name: "next_review_date", err: errors.New(`ent: missing required field "CardState.next_review_date"`)}
	}
	if _, ok := csc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CardState.created_at"`)}
	}
	if _, ok := csc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "CardState.updated_at"`)}
	}
	return nil
}

func (csc *CardStateCreate) sqlSave(ctx context.Context) (*CardState, error) {
	if err := csc.check(); err != nil {
		return nil, err
	}
	_node, _spec := csc.createSpec()
	if err := sqlgraph.CreateNode(ctx, csc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	csc.mutation.id = &_node.ID
	csc.mutation.done = true
	return _node, nil
}

func (csc *CardStateCreate) createSpec() (*CardState, *sqlgraph.CreateSpec) {
	var (
		_node = &CardState{config: csc.config}
		_spec = sqlgraph.NewCreateSpec(cardstate.Table, sqlgraph.NewFieldSpec(cardstate.FieldID, field.TypeInt))
	)
	if value, ok := csc.mutation.LearnerID(); ok {
		_spec.SetField(cardstate.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := csc.mutation.ItemID(); ok {
		_spec.SetField(cardstate.FieldItemID, field.TypeString, value)
		_node.ItemID = value
	}
	if value, ok := csc.mutation.EaseFactor(); ok {
		_spec.SetField(cardstate.FieldEaseFactor, field.TypeFloat64, value)
		_node.EaseFactor = value
	}
	if value, ok := csc.mutation.Interval(); ok {
		_spec.SetField(cardstate.FieldInterval, field.TypeInt, value)
		_node.Interval = value
	}
	if value, ok := csc.mutation.Repetition(); ok {
		_spec.SetField(cardstate.FieldRepetition, field.TypeInt, value)
		_node.Repetition = value
	}
	if value, ok := csc.mutation.NextReviewDate(); ok {
		_spec.SetField(cardstate.FieldNextReviewDate, field.TypeTime, value)
		_node.NextReviewDate = value
	}
	if value, ok := csc.mutation.LastReviewDate(); ok {
		_spec.SetField(cardstate.FieldLastReviewDate, field.TypeTime, value)
		_node.LastReviewDate = &value
	}
	if value, ok := csc.mutation.ReviewHistory(); ok {
		_spec.SetField(cardstate.FieldReviewHistory, field.TypeJSON, value)
		_node.ReviewHistory = value
	}
	if value, ok := csc.mutation.CreatedAt(); ok {
		_spec.SetField(cardstate.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := csc.mutation.UpdatedAt(); ok {
		_spec.SetField(cardstate.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// CardStateCreateBulk is the builder for creating many CardState entities in bulk.
type CardStateCreateBulk struct {
	config
	err      error
	builders []*CardStateCreate
}

// Save creates the CardState entities in the database.
func (cscb *CardStateCreateBulk) Save(ctx context.Context) ([]*CardState, error) {
	if cscb.err != nil {
		return nil, cscb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(cscb.builders))
	nodes := make([]*CardState, len(cscb.builders))
	mutators := make([]Mutator, len(cscb.builders))
	for i := range cscb.builders {
		func(i int, root context.Context) {
			builder := cscb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CardStateMutation)
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
					_, err = mutators[i+1].Mutate(root, cscb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, cscb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, cscb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (cscb *CardStateCreateBulk) SaveX(ctx context.Context) []*CardState {
	v, err := cscb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (cscb *CardStateCreateBulk) Exec(ctx context.Context) error {
	_, err := cscb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cscb *CardStateCreateBulk) ExecX(ctx context.Context) {
	if err := cscb.Exec(ctx); err != nil {
		panic(err)
	}
}
