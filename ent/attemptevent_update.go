// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/learnpath/ent/attemptevent"
	"github.com/abhisek/learnpath/ent/predicate"
)

// AttemptEventUpdate is the builder for updating AttemptEvent entities.
type AttemptEventUpdate struct {
	config
	hooks    []Hook
	mutation *AttemptEventMutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (aeu *AttemptEventUpdate) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdate {
	aeu.mutation.Where(ps...)
	return aeu
}

// SetLearnerID sets the "learner_id" field.
func (aeu *AttemptEventUpdate) SetLearnerID(s string) *AttemptEventUpdate {
	aeu.mutation.SetLearnerID(s)
	return aeu
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (aeu *AttemptEventUpdate) SetNillableLearnerID(s *string) *AttemptEventUpdate {
	if s != nil {
		aeu.SetLearnerID(*s)
	}
	return aeu
}

// SetTopic sets the "topic" field.
func (aeu *AttemptEventUpdate) SetTopic(s string) *AttemptEventUpdate {
	aeu.mutation.SetTopic(s)
	return aeu
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (aeu *AttemptEventUpdate) SetNillableTopic(s *string) *AttemptEventUpdate {
	if s != nil {
		aeu.SetTopic(*s)
	}
	return aeu
}

// SetBloomLevel sets the "bloom_level" field.
func (aeu *AttemptEventUpdate) SetBloomLevel(s string) *AttemptEventUpdate {
	aeu.mutation.SetBloomLevel(s)
	return aeu
}

// SetNillableBloomLevel sets the "bloom_level" field if the given value is not nil.
func (aeu *AttemptEventUpdate) SetNillableBloomLevel(s *string) *AttemptEventUpdate {
	if s != nil {
		aeu.SetBloomLevel(*s)
	}
	return aeu
}

// ClearBloomLevel clears the value of the "bloom_level" field.
func (aeu *AttemptEventUpdate) ClearBloomLevel() *AttemptEventUpdate {
	aeu.mutation.ClearBloomLevel()
	return aeu
}

// SetScore sets the "score" field.
func (aeu *AttemptEventUpdate) SetScore(f float64) *AttemptEventUpdate {
	aeu.mutation.ResetScore()
	aeu.mutation.SetScore(f)
	return aeu
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (aeu *AttemptEventUpdate) SetNillableScore(f *float64) *AttemptEventUpdate {
	if f != nil {
		aeu.SetScore(*f)
	}
	return aeu
}

// AddScore adds f to the "score" field.
func (aeu *AttemptEventUpdate) AddScore(f float64) *AttemptEventUpdate {
	aeu.mutation.AddScore(f)
	return aeu
}

// SetDifficulty sets the "difficulty" field.
func (aeu *AttemptEventUpdate) SetDifficulty(i int) *AttemptEventUpdate {
	aeu.mutation.ResetDifficulty()
	aeu.mutation.SetDifficulty(i)
	return aeu
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (aeu *AttemptEventUpdate) SetNillableDifficulty(i *int) *AttemptEventUpdate {
	if i != nil {
		aeu.SetDifficulty(*i)
	}
	return aeu
}

// AddDifficulty adds i to the "difficulty" field.
func (aeu *AttemptEventUpdate) AddDifficulty(i int) *AttemptEventUpdate {
	aeu.mutation.AddDifficulty(i)
	return aeu
}

// SetTimeSpentSecs sets the "time_spent_secs" field.
func (aeu *AttemptEventUpdate) SetTimeSpentSecs(i int) *AttemptEventUpdate {
	aeu.mutation.ResetTimeSpentSecs()
	aeu.mutation.SetTimeSpentSecs(i)
	return aeu
}

// SetNillableTimeSpentSecs sets the "time_spent_secs" field if the given value is not nil.
func (aeu *AttemptEventUpdate) SetNillableTimeSpentSecs(i *int) *AttemptEventUpdate {
	if i != nil {
		aeu.SetTimeSpentSecs(*i)
	}
	return aeu
}

// AddTimeSpentSecs adds i to the "time_spent_secs" field.
func (aeu *AttemptEventUpdate) AddTimeSpentSecs(i int) *AttemptEventUpdate {
	aeu.mutation.AddTimeSpentSecs(i)
	return aeu
}

// Mutation returns the AttemptEventMutation object of the builder.
func (aeu *AttemptEventUpdate) Mutation() *AttemptEventMutation {
	return aeu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (aeu *AttemptEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, aeu.sqlSave, aeu.mutation, aeu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (aeu *AttemptEventUpdate) SaveX(ctx context.Context) int {
	affected, err := aeu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (aeu *AttemptEventUpdate) Exec(ctx context.Context) error {
	_, err := aeu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (aeu *AttemptEventUpdate) ExecX(ctx context.Context) {
	if err := aeu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (aeu *AttemptEventUpdate) check() error {
	if v, ok := aeu.mutation.LearnerID(); ok {
		if err := attemptevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.learner_id": %w`, err)}
		}
	}
	if v, ok := aeu.mutation.Topic(); ok {
		if err := attemptevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.topic": %w`, err)}
		}
	}
	return nil
}

func (aeu *AttemptEventUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := aeu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	if ps := aeu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := aeu.mutation.LearnerID(); ok {
		_spec.SetField(attemptevent.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := aeu.mutation.Topic(); ok {
		_spec.SetField(attemptevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := aeu.mutation.BloomLevel(); ok {
		_spec.SetField(attemptevent.FieldBloomLevel, field.TypeString, value)
	}
	if aeu.mutation.BloomLevelCleared() {
		_spec.ClearField(attemptevent.FieldBloomLevel, field.TypeString)
	}
	if value, ok := aeu.mutation.Score(); ok {
		_spec.SetField(attemptevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := aeu.mutation.AddedScore(); ok {
		_spec.AddField(attemptevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := aeu.mutation.Difficulty(); ok {
		_spec.SetField(attemptevent.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := aeu.mutation.AddedDifficulty(); ok {
		_spec.AddField(attemptevent.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := aeu.mutation.TimeSpentSecs(); ok {
		_spec.SetField(attemptevent.FieldTimeSpentSecs, field.TypeInt, value)
	}
	if value, ok := aeu.mutation.AddedTimeSpentSecs(); ok {
		_spec.AddField(attemptevent.FieldTimeSpentSecs, field.TypeInt, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, aeu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	aeu.mutation.done = true
	return n, nil
}

// AttemptEventUpdateOne is the builder for updating a single AttemptEvent entity.
type AttemptEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AttemptEventMutation
}

// SetLearnerID sets the "learner_id" field.
func (aeuo *AttemptEventUpdateOne) SetLearnerID(s string) *AttemptEventUpdateOne {
	aeuo.mutation.SetLearnerID(s)
	return aeuo
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (aeuo *AttemptEventUpdateOne) SetNillableLearnerID(s *string) *AttemptEventUpdateOne {
	if s != nil {
		aeuo.SetLearnerID(*s)
	}
	return aeuo
}

// SetTopic sets the "topic" field.
func (aeuo *AttemptEventUpdateOne) SetTopic(s string) *AttemptEventUpdateOne {
	aeuo.mutation.SetTopic(s)
	return aeuo
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (aeuo *AttemptEventUpdateOne) SetNillableTopic(s *string) *AttemptEventUpdateOne {
	if s != nil {
		aeuo.SetTopic(*s)
	}
	return aeuo
}

// SetBloomLevel sets the "bloom_level" field.
func (aeuo *AttemptEventUpdateOne) SetBloomLevel(s string) *AttemptEventUpdateOne {
	aeuo.mutation.SetBloomLevel(s)
	return aeuo
}

// SetNillableBloomLevel sets the "bloom_level" field if the given value is not nil.
func (aeuo *AttemptEventUpdateOne) SetNillableBloomLevel(s *string) *AttemptEventUpdateOne {
	if s != nil {
		aeuo.SetBloomLevel(*s)
	}
	return aeuo
}

// ClearBloomLevel clears the value of the "bloom_level" field.
func (aeuo *AttemptEventUpdateOne) ClearBloomLevel() *AttemptEventUpdateOne {
	aeuo.mutation.ClearBloomLevel()
	return aeuo
}

// SetScore sets the "score" field.
func (aeuo *AttemptEventUpdateOne) SetScore(f float64) *AttemptEventUpdateOne {
	aeuo.mutation.ResetScore()
	aeuo.mutation.SetScore(f)
	return aeuo
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (aeuo *AttemptEventUpdateOne) SetNillableScore(f *float64) *AttemptEventUpdateOne {
	if f != nil {
		aeuo.SetScore(*f)
	}
	return aeuo
}

// AddScore adds f to the "score" field.
func (aeuo *AttemptEventUpdateOne) AddScore(f float64) *AttemptEventUpdateOne {
	aeuo.mutation.AddScore(f)
	return aeuo
}

// SetDifficulty sets the "difficulty" field.
func (aeuo *AttemptEventUpdateOne) SetDifficulty(i int) *AttemptEventUpdateOne {
	aeuo.mutation.ResetDifficulty()
	aeuo.mutation.SetDifficulty(i)
	return aeuo
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (aeuo *AttemptEventUpdateOne) SetNillableDifficulty(i *int) *AttemptEventUpdateOne {
	if i != nil {
		aeuo.SetDifficulty(*i)
	}
	return aeuo
}

// AddDifficulty adds i to the "difficulty" field.
func (aeuo *AttemptEventUpdateOne) AddDifficulty(i int) *AttemptEventUpdateOne {
	aeuo.mutation.AddDifficulty(i)
	return aeuo
}

// SetTimeSpentSecs sets the "time_spent_secs" field.
func (aeuo *AttemptEventUpdateOne) SetTimeSpentSecs(i int) *AttemptEventUpdateOne {
	aeuo.mutation.ResetTimeSpentSecs()
	aeuo.mutation.SetTimeSpentSecs(i)
	return aeuo
}

// SetNillableTimeSpentSecs sets the "time_spent_secs" field if the given value is not nil.
func (aeuo *AttemptEventUpdateOne) SetNillableTimeSpentSecs(i *int) *AttemptEventUpdateOne {
	if i != nil {
		aeuo.SetTimeSpentSecs(*i)
	}
	return aeuo
}

// AddTimeSpentSecs adds i to the "time_spent_secs" field.
func (aeuo *AttemptEventUpdateOne) AddTimeSpentSecs(i int) *AttemptEventUpdateOne {
	aeuo.mutation.AddTimeSpentSecs(i)
	return aeuo
}

// Mutation returns the AttemptEventMutation object of the builder.
func (aeuo *AttemptEventUpdateOne) Mutation() *AttemptEventMutation {
	return aeuo.mutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (aeuo *AttemptEventUpdateOne) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdateOne {
	aeuo.mutation.Where(ps...)
	return aeuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (aeuo *AttemptEventUpdateOne) Select(field string, fields ...string) *AttemptEventUpdateOne {
	aeuo.fields = append([]string{field}, fields...)
	return aeuo
}

// Save executes the query and returns the updated AttemptEvent entity.
func (aeuo *AttemptEventUpdateOne) Save(ctx context.Context) (*AttemptEvent, error) {
	return withHooks(ctx, aeuo.sqlSave, aeuo.mutation, aeuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (aeuo *AttemptEventUpdateOne) SaveX(ctx context.Context) *AttemptEvent {
	node, err := aeuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (aeuo *AttemptEventUpdateOne) Exec(ctx context.Context) error {
	_, err := aeuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (aeuo *AttemptEventUpdateOne) ExecX(ctx context.Context) {
	if err := aeuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (aeuo *AttemptEventUpdateOne) check() error {
	if v, ok := aeuo.mutation.LearnerID(); ok {
		if err := attemptevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.learner_id": %w`, err)}
		}
	}
	if v, ok := aeuo.mutation.Topic(); ok {
		if err := attemptevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.topic": %w`, err)}
		}
	}
	return nil
}

func (aeuo *AttemptEventUpdateOne) sqlSave(ctx context.Context) (_node *AttemptEvent, err error) {
	if err := aeuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	id, ok := aeuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AttemptEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := aeuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, attemptevent.FieldID)
		for _, f := range fields {
			if !attemptevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != attemptevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := aeuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := aeuo.mutation.LearnerID(); ok {
		_spec.SetField(attemptevent.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := aeuo.mutation.Topic(); ok {
		_spec.SetField(attemptevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := aeuo.mutation.BloomLevel(); ok {
		_spec.SetField(attemptevent.FieldBloomLevel, field.TypeString, value)
	}
	if aeuo.mutation.BloomLevelCleared() {
		_spec.ClearField(attemptevent.FieldBloomLevel, field.TypeString)
	}
	if value, ok := aeuo.mutation.Score(); ok {
		_spec.SetField(attemptevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := aeuo.mutation.AddedScore(); ok {
		_spec.AddField(attemptevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := aeuo.mutation.Difficulty(); ok {
		_spec.SetField(attemptevent.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := aeuo.mutation.AddedDifficulty(); ok {
		_spec.AddField(attemptevent.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := aeuo.mutation.TimeSpentSecs(); ok {
		_spec.SetField(attemptevent.FieldTimeSpentSecs, field.TypeInt, value)
	}
	if value, ok := aeuo.mutation.AddedTimeSpentSecs(); ok {
		_spec.AddField(attemptevent.FieldTimeSpentSecs, field.TypeInt, value)
	}
	_node = &AttemptEvent{config: aeuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, aeuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	aeuo.mutation.done = true
	return _node, nil
}
