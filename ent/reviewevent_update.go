// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/learnpath/ent/predicate"
	"github.com/abhisek/learnpath/ent/reviewevent"
)

// ReviewEventUpdate is the builder for updating ReviewEvent entities.
type ReviewEventUpdate struct {
	config
	hooks    []Hook
	mutation *ReviewEventMutation
}

// Where appends a list predicates to the ReviewEventUpdate builder.
func (reu *ReviewEventUpdate) Where(ps ...predicate.ReviewEvent) *ReviewEventUpdate {
	reu.mutation.Where(ps...)
	return reu
}

// SetAttemptID sets the "attempt_id" field.
func (reu *ReviewEventUpdate) SetAttemptID(s string) *ReviewEventUpdate {
	reu.mutation.SetAttemptID(s)
	return reu
}

// SetNillableAttemptID sets the "attempt_id" field if the given value is not nil.
func (reu *ReviewEventUpdate) SetNillableAttemptID(s *string) *ReviewEventUpdate {
	if s != nil {
		reu.SetAttemptID(*s)
	}
	return reu
}

// SetLearnerID sets the "learner_id" field.
func (reu *ReviewEventUpdate) SetLearnerID(s string) *ReviewEventUpdate {
	reu.mutation.SetLearnerID(s)
	return reu
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (reu *ReviewEventUpdate) SetNillableLearnerID(s *string) *ReviewEventUpdate {
	if s != nil {
		reu.SetLearnerID(*s)
	}
	return reu
}

// SetItemID sets the "item_id" field.
func (reu *ReviewEventUpdate) SetItemID(s string) *ReviewEventUpdate {
	reu.mutation.SetItemID(s)
	return reu
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (reu *ReviewEventUpdate) SetNillableItemID(s *string) *ReviewEventUpdate {
	if s != nil {
		reu.SetItemID(*s)
	}
	return reu
}

// SetQuality sets the "quality" field.
func (reu *ReviewEventUpdate) SetQuality(i int) *ReviewEventUpdate {
	reu.mutation.ResetQuality()
	reu.mutation.SetQuality(i)
	return reu
}

// SetNillableQuality sets the "quality" field if the given value is not nil.
func (reu *ReviewEventUpdate) SetNillableQuality(i *int) *ReviewEventUpdate {
	if i != nil {
		reu.SetQuality(*i)
	}
	return reu
}

// AddQuality adds i to the "quality" field.
func (reu *ReviewEventUpdate) AddQuality(i int) *ReviewEventUpdate {
	reu.mutation.AddQuality(i)
	return reu
}

// SetResponseTimeMs sets the "response_time_ms" field.
func (reu *ReviewEventUpdate) SetResponseTimeMs(i int) *ReviewEventUpdate {
	reu.mutation.ResetResponseTimeMs()
	reu.mutation.SetResponseTimeMs(i)
	return reu
}

// SetNillableResponseTimeMs sets the "response_time_ms" field if the given value is not nil.
func (reu *ReviewEventUpdate) SetNillableResponseTimeMs(i *int) *ReviewEventUpdate {
	if i != nil {
		reu.SetResponseTimeMs(*i)
	}
	return reu
}

// AddResponseTimeMs adds i to the "response_time_ms" field.
func (reu *ReviewEventUpdate) AddResponseTimeMs(i int) *ReviewEventUpdate {
	reu.mutation.AddResponseTimeMs(i)
	return reu
}

// SetEaseFactor sets the "ease_factor" field.
func (reu *ReviewEventUpdate) SetEaseFactor(f float64) *ReviewEventUpdate {
	reu.mutation.ResetEaseFactor()
	reu.mutation.SetEaseFactor(f)
	return reu
}

// SetNillableEaseFactor sets the "ease_factor" field if the given value is not nil.
func (reu *ReviewEventUpdate) SetNillableEaseFactor(f *float64) *ReviewEventUpdate {
	if f != nil {
		reu.SetEaseFactor(*f)
	}
	return reu
}

// AddEaseFactor adds f to the "ease_factor" field.
func (reu *ReviewEventUpdate) AddEaseFactor(f float64) *ReviewEventUpdate {
	reu.mutation.AddEaseFactor(f)
	return reu
}

// SetInterval sets the "interval" field.
func (reu *ReviewEventUpdate) SetInterval(i int) *ReviewEventUpdate {
	reu.mutation.ResetInterval()
	reu.mutation.SetInterval(i)
	return reu
}

// SetNillableInterval sets the "interval" field if the given value is not nil.
func (reu *ReviewEventUpdate) SetNillableInterval(i *int) *ReviewEventUpdate {
	if i != nil {
		reu.SetInterval(*i)
	}
	return reu
}

// AddInterval adds i to the "interval" field.
func (reu *ReviewEventUpdate) AddInterval(i int) *ReviewEventUpdate {
	reu.mutation.AddInterval(i)
	return reu
}

// SetRepetition sets the "repetition" field.
func (reu *ReviewEventUpdate) SetRepetition(i int) *ReviewEventUpdate {
	reu.mutation.ResetRepetition()
	reu.mutation.SetRepetition(i)
	return reu
}

// SetNillableRepetition sets the "repetition" field if the given value is not nil.
func (reu *ReviewEventUpdate) SetNillableRepetition(i *int) *ReviewEventUpdate {
	if i != nil {
		reu.SetRepetition(*i)
	}
	return reu
}

// AddRepetition adds i to the "repetition" field.
func (reu *ReviewEventUpdate) AddRepetition(i int) *ReviewEventUpdate {
	reu.mutation.AddRepetition(i)
	return reu
}

// Mutation returns the ReviewEventMutation object of the builder.
func (reu *ReviewEventUpdate) Mutation() *ReviewEventMutation {
	return reu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (reu *ReviewEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, reu.sqlSave, reu.mutation, reu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (reu *ReviewEventUpdate) SaveX(ctx context.Context) int {
	affected, err := reu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (reu *ReviewEventUpdate) Exec(ctx context.Context) error {
	_, err := reu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (reu *ReviewEventUpdate) ExecX(ctx context.Context) {
	if err := reu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (reu *ReviewEventUpdate) check() error {
	if v, ok := reu.mutation.AttemptID(); ok {
		if err := reviewevent.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.attempt_id": %w`, err)}
		}
	}
	if v, ok := reu.mutation.LearnerID(); ok {
		if err := reviewevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.learner_id": %w`, err)}
		}
	}
	if v, ok := reu.mutation.ItemID(); ok {
		if err := reviewevent.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.item_id": %w`, err)}
		}
	}
	return nil
}

func (reu *ReviewEventUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := reu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewevent.Table, reviewevent.Columns, sqlgraph.NewFieldSpec(reviewevent.FieldID, field.TypeInt))
	if ps := reu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := reu.mutation.AttemptID(); ok {
		_spec.SetField(reviewevent.FieldAttemptID, field.TypeString, value)
	}
	if value, ok := reu.mutation.LearnerID(); ok {
		_spec.SetField(reviewevent.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := reu.mutation.ItemID(); ok {
		_spec.SetField(reviewevent.FieldItemID, field.TypeString, value)
	}
	if value, ok := reu.mutation.Quality(); ok {
		_spec.SetField(reviewevent.FieldQuality, field.TypeInt, value)
	}
	if value, ok := reu.mutation.AddedQuality(); ok {
		_spec.AddField(reviewevent.FieldQuality, field.TypeInt, value)
	}
	if value, ok := reu.mutation.ResponseTimeMs(); ok {
		_spec.SetField(reviewevent.FieldResponseTimeMs, field.TypeInt, value)
	}
	if value, ok := reu.mutation.AddedResponseTimeMs(); ok {
		_spec.AddField(reviewevent.FieldResponseTimeMs, field.TypeInt, value)
	}
	if value, ok := reu.mutation.EaseFactor(); ok {
		_spec.SetField(reviewevent.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := reu.mutation.AddedEaseFactor(); ok {
		_spec.AddField(reviewevent.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := reu.mutation.Interval(); ok {
		_spec.SetField(reviewevent.FieldInterval, field.TypeInt, value)
	}
	if value, ok := reu.mutation.AddedInterval(); ok {
		_spec.AddField(reviewevent.FieldInterval, field.TypeInt, value)
	}
	if value, ok := reu.mutation.Repetition(); ok {
		_spec.SetField(reviewevent.FieldRepetition, field.TypeInt, value)
	}
	if value, ok := reu.mutation.AddedRepetition(); ok {
		_spec.AddField(reviewevent.FieldRepetition, field.TypeInt, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, reu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	reu.mutation.done = true
	return n, nil
}

// ReviewEventUpdateOne is the builder for updating a single ReviewEvent entity.
type ReviewEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReviewEventMutation
}

// SetAttemptID sets the "attempt_id" field.
func (reuo *ReviewEventUpdateOne) SetAttemptID(s string) *ReviewEventUpdateOne {
	reuo.mutation.SetAttemptID(s)
	return reuo
}

// SetNillableAttemptID sets the "attempt_id" field if the given value is not nil.
func (reuo *ReviewEventUpdateOne) SetNillableAttemptID(s *string) *ReviewEventUpdateOne {
	if s != nil {
		reuo.SetAttemptID(*s)
	}
	return reuo
}

// SetLearnerID sets the "learner_id" field.
func (reuo *ReviewEventUpdateOne) SetLearnerID(s string) *ReviewEventUpdateOne {
	reuo.mutation.SetLearnerID(s)
	return reuo
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (reuo *ReviewEventUpdateOne) SetNillableLearnerID(s *string) *ReviewEventUpdateOne {
	if s != nil {
		reuo.SetLearnerID(*s)
	}
	return reuo
}

// SetItemID sets the "item_id" field.
func (reuo *ReviewEventUpdateOne) SetItemID(s string) *ReviewEventUpdateOne {
	reuo.mutation.SetItemID(s)
	return reuo
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (reuo *ReviewEventUpdateOne) SetNillableItemID(s *string) *ReviewEventUpdateOne {
	if s != nil {
		reuo.SetItemID(*s)
	}
	return reuo
}

// SetQuality sets the "quality" field.
func (reuo *ReviewEventUpdateOne) SetQuality(i int) *ReviewEventUpdateOne {
	reuo.mutation.ResetQuality()
	reuo.mutation.SetQuality(i)
	return reuo
}

// SetNillableQuality sets the "quality" field if the given value is not nil.
func (reuo *ReviewEventUpdateOne) SetNillableQuality(i *int) *ReviewEventUpdateOne {
	if i != nil {
		reuo.SetQuality(*i)
	}
	return reuo
}

// AddQuality adds i to the "quality" field.
func (reuo *ReviewEventUpdateOne) AddQuality(i int) *ReviewEventUpdateOne {
	reuo.mutation.AddQuality(i)
	return reuo
}

// SetResponseTimeMs sets the "response_time_ms" field.
func (reuo *ReviewEventUpdateOne) SetResponseTimeMs(i int) *ReviewEventUpdateOne {
	reuo.mutation.ResetResponseTimeMs()
	reuo.mutation.SetResponseTimeMs(i)
	return reuo
}

// SetNillableResponseTimeMs sets the "response_time_ms" field if the given value is not nil.
func (reuo *ReviewEventUpdateOne) SetNillableResponseTimeMs(i *int) *ReviewEventUpdateOne {
	if i != nil {
		reuo.SetResponseTimeMs(*i)
	}
	return reuo
}

// AddResponseTimeMs adds i to the "response_time_ms" field.
func (reuo *ReviewEventUpdateOne) AddResponseTimeMs(i int) *ReviewEventUpdateOne {
	reuo.mutation.AddResponseTimeMs(i)
	return reuo
}

// SetEaseFactor sets the "ease_factor" field.
func (reuo *ReviewEventUpdateOne) SetEaseFactor(f float64) *ReviewEventUpdateOne {
	reuo.mutation.ResetEaseFactor()
	reuo.mutation.SetEaseFactor(f)
	return reuo
}

// SetNillableEaseFactor sets the "ease_factor" field if the given value is not nil.
func (reuo *ReviewEventUpdateOne) SetNillableEaseFactor(f *float64) *ReviewEventUpdateOne {
	if f != nil {
		reuo.SetEaseFactor(*f)
	}
	return reuo
}

// AddEaseFactor adds f to the "ease_factor" field.
func (reuo *ReviewEventUpdateOne) AddEaseFactor(f float64) *ReviewEventUpdateOne {
	reuo.mutation.AddEaseFactor(f)
	return reuo
}

// SetInterval sets the "interval" field.
func (reuo *ReviewEventUpdateOne) SetInterval(i int) *ReviewEventUpdateOne {
	reuo.mutation.ResetInterval()
	reuo.mutation.SetInterval(i)
	return reuo
}

// SetNillableInterval sets the "interval" field if the given value is not nil.
func (reuo *ReviewEventUpdateOne) SetNillableInterval(i *int) *ReviewEventUpdateOne {
	if i != nil {
		reuo.SetInterval(*i)
	}
	return reuo
}

// AddInterval adds i to the "interval" field.
func (reuo *ReviewEventUpdateOne) AddInterval(i int) *ReviewEventUpdateOne {
	reuo.mutation.AddInterval(i)
	return reuo
}

// SetRepetition sets the "repetition" field.
func (reuo *ReviewEventUpdateOne) SetRepetition(i int) *ReviewEventUpdateOne {
	reuo.mutation.ResetRepetition()
	reuo.mutation.SetRepetition(i)
	return reuo
}

// SetNillableRepetition sets the "repetition" field if the given value is not nil.
func (reuo *ReviewEventUpdateOne) SetNillableRepetition(i *int) *ReviewEventUpdateOne {
	if i != nil {
		reuo.SetRepetition(*i)
	}
	return reuo
}

// AddRepetition adds i to the "repetition" field.
func (reuo *ReviewEventUpdateOne) AddRepetition(i int) *ReviewEventUpdateOne {
	reuo.mutation.AddRepetition(i)
	return reuo
}

// Mutation returns the ReviewEventMutation object of the builder.
func (reuo *ReviewEventUpdateOne) Mutation() *ReviewEventMutation {
	return reuo.mutation
}

// Where appends a list predicates to the ReviewEventUpdate builder.
func (reuo *ReviewEventUpdateOne) Where(ps ...predicate.ReviewEvent) *ReviewEventUpdateOne {
	reuo.mutation.Where(ps...)
	return reuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (reuo *ReviewEventUpdateOne) Select(field string, fields ...string) *ReviewEventUpdateOne {
	reuo.fields = append([]string{field}, fields...)
	return reuo
}

// Save executes the query and returns the updated ReviewEvent entity.
func (reuo *ReviewEventUpdateOne) Save(ctx context.Context) (*ReviewEvent, error) {
	return withHooks(ctx, reuo.sqlSave, reuo.mutation, reuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (reuo *ReviewEventUpdateOne) SaveX(ctx context.Context) *ReviewEvent {
	node, err := reuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (reuo *ReviewEventUpdateOne) Exec(ctx context.Context) error {
	_, err := reuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (reuo *ReviewEventUpdateOne) ExecX(ctx context.Context) {
	if err := reuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (reuo *ReviewEventUpdateOne) check() error {
	if v, ok := reuo.mutation.AttemptID(); ok {
		if err := reviewevent.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.attempt_id": %w`, err)}
		}
	}
	if v, ok := reuo.mutation.LearnerID(); ok {
		if err := reviewevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.learner_id": %w`, err)}
		}
	}
	if v, ok := reuo.mutation.ItemID(); ok {
		if err := reviewevent.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.item_id": %w`, err)}
		}
	}
	return nil
}

func (reuo *ReviewEventUpdateOne) sqlSave(ctx context.Context) (_node *ReviewEvent, err error) {
	if err := reuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewevent.Table, reviewevent.Columns, sqlgraph.NewFieldSpec(reviewevent.FieldID, field.TypeInt))
	id, ok := reuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReviewEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := reuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reviewevent.FieldID)
		for _, f := range fields {
			if !reviewevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != reviewevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := reuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := reuo.mutation.AttemptID(); ok {
		_spec.SetField(reviewevent.FieldAttemptID, field.TypeString, value)
	}
	if value, ok := reuo.mutation.LearnerID(); ok {
		_spec.SetField(reviewevent.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := reuo.mutation.ItemID(); ok {
		_spec.SetField(reviewevent.FieldItemID, field.TypeString, value)
	}
	if value, ok := reuo.mutation.Quality(); ok {
		_spec.SetField(reviewevent.FieldQuality, field.TypeInt, value)
	}
	if value, ok := reuo.mutation.AddedQuality(); ok {
		_spec.AddField(reviewevent.FieldQuality, field.TypeInt, value)
	}
	if value, ok := reuo.mutation.ResponseTimeMs(); ok {
		_spec.SetField(reviewevent.FieldResponseTimeMs, field.TypeInt, value)
	}
	if value, ok := reuo.mutation.AddedResponseTimeMs(); ok {
		_spec.AddField(reviewevent.FieldResponseTimeMs, field.TypeInt, value)
	}
	if value, ok := reuo.mutation.EaseFactor(); ok {
		_spec.SetField(reviewevent.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := reuo.mutation.AddedEaseFactor(); ok {
		_spec.AddField(reviewevent.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := reuo.mutation.Interval(); ok {
		_spec.SetField(reviewevent.FieldInterval, field.TypeInt, value)
	}
	if value, ok := reuo.mutation.AddedInterval(); ok {
		_spec.AddField(reviewevent.FieldInterval, field.TypeInt, value)
	}
	if value, ok := reuo.mutation.Repetition(); ok {
		_spec.SetField(reviewevent.FieldRepetition, field.TypeInt, value)
	}
	if value, ok := reuo.mutation.AddedRepetition(); ok {
		_spec.AddField(reviewevent.FieldRepetition, field.TypeInt, value)
	}
	_node = &ReviewEvent{config: reuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, reuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	reuo.mutation.done = true
	return _node, nil
}
