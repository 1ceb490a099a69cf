// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/learnpath/ent/cardstate"
	"github.com/abhisek/learnpath/ent/predicate"
)

// CardStateUpdate is the builder for updating CardState entities.
type CardStateUpdate struct {
	config
	hooks    []Hook
	mutation *CardStateMutation
}

// Where appends a list predicates to the CardStateUpdate builder.
func (csu *CardStateUpdate) Where(ps ...predicate.CardState) *CardStateUpdate {
	csu.mutation.Where(ps...)
	return csu
}

// SetLearnerID sets the "learner_id" field.
func (csu *CardStateUpdate) SetLearnerID(s string) *CardStateUpdate {
	csu.mutation.SetLearnerID(s)
	return csu
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (csu *CardStateUpdate) SetNillableLearnerID(s *string) *CardStateUpdate {
	if s != nil {
		csu.SetLearnerID(*s)
	}
	return csu
}

// SetItemID sets the "item_id" field.
func (csu *CardStateUpdate) SetItemID(s string) *CardStateUpdate {
	csu.mutation.SetItemID(s)
	return csu
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (csu *CardStateUpdate) SetNillableItemID(s *string) *CardStateUpdate {
	if s != nil {
		csu.SetItemID(*s)
	}
	return csu
}

// SetEaseFactor sets the "ease_factor" field.
func (csu *CardStateUpdate) SetEaseFactor(f float64) *CardStateUpdate {
	csu.mutation.ResetEaseFactor()
	csu.mutation.SetEaseFactor(f)
	return csu
}

// SetNillableEaseFactor sets the "ease_factor" field if the given value is not nil.
func (csu *CardStateUpdate) SetNillableEaseFactor(f *float64) *CardStateUpdate {
	if f != nil {
		csu.SetEaseFactor(*f)
	}
	return csu
}

// AddEaseFactor adds f to the "ease_factor" field.
func (csu *CardStateUpdate) AddEaseFactor(f float64) *CardStateUpdate {
	csu.mutation.AddEaseFactor(f)
	return csu
}

// SetInterval sets the "interval" field.
func (csu *CardStateUpdate) SetInterval(i int) *CardStateUpdate {
	csu.mutation.ResetInterval()
	csu.mutation.SetInterval(i)
	return csu
}

// SetNillableInterval sets the "interval" field if the given value is not nil.
func (csu *CardStateUpdate) SetNillableInterval(i *int) *CardStateUpdate {
	if i != nil {
		csu.SetInterval(*i)
	}
	return csu
}

// AddInterval adds i to the "interval" field.
func (csu *CardStateUpdate) AddInterval(i int) *CardStateUpdate {
	csu.mutation.AddInterval(i)
	return csu
}

// SetRepetition sets the "repetition" field.
func (csu *CardStateUpdate) SetRepetition(i int) *CardStateUpdate {
	csu.mutation.ResetRepetition()
	csu.mutation.SetRepetition(i)
	return csu
}

// SetNillableRepetition sets the "repetition" field if the given value is not nil.
func (csu *CardStateUpdate) SetNillableRepetition(i *int) *CardStateUpdate {
	if i != nil {
		csu.SetRepetition(*i)
	}
	return csu
}

// AddRepetition adds i to the "repetition" field.
func (csu *CardStateUpdate) AddRepetition(i int) *CardStateUpdate {
	csu.mutation.AddRepetition(i)
	return csu
}

// SetNextReviewDate sets the "next_review_date" field.
func (csu *CardStateUpdate) SetNextReviewDate(t time.Time) *CardStateUpdate {
	csu.mutation.SetNextReviewDate(t)
	return csu
}

// SetNillableNextReviewDate sets the "next_review_date" field if the given value is not nil.
func (csu *CardStateUpdate) SetNillableNextReviewDate(t *time.Time) *CardStateUpdate {
	if t != nil {
		csu.SetNextReviewDate(*t)
	}
	return csu
}

// SetLastReviewDate sets the "last_review_date" field.
func (csu *CardStateUpdate) SetLastReviewDate(t time.Time) *CardStateUpdate {
	csu.mutation.SetLastReviewDate(t)
	return csu
}

// SetNillableLastReviewDate sets the "last_review_date" field if the given value is not nil.
func (csu *CardStateUpdate) SetNillableLastReviewDate(t *time.Time) *CardStateUpdate {
	if t != nil {
		csu.SetLastReviewDate(*t)
	}
	return csu
}

// ClearLastReviewDate clears the value of the "last_review_date" field.
func (csu *CardStateUpdate) ClearLastReviewDate() *CardStateUpdate {
	csu.mutation.ClearLastReviewDate()
	return csu
}

// SetReviewHistory sets the "review_history" field.
func (csu *CardStateUpdate) SetReviewHistory(m []map[string]interface{}) *CardStateUpdate {
	csu.mutation.SetReviewHistory(m)
	return csu
}

// AppendReviewHistory appends m to the "review_history" field.
func (csu *CardStateUpdate) AppendReviewHistory(m []map[string]interface{}) *CardStateUpdate {
	csu.mutation.AppendReviewHistory(m)
	return csu
}

// ClearReviewHistory clears the value of the "review_history" field.
func (csu *CardStateUpdate) ClearReviewHistory() *CardStateUpdate {
	csu.mutation.ClearReviewHistory()
	return csu
}

// SetUpdatedAt sets the "updated_at" field.
func (csu *CardStateUpdate) SetUpdatedAt(t time.Time) *CardStateUpdate {
	csu.mutation.SetUpdatedAt(t)
	return csu
}

// Mutation returns the CardStateMutation object of the builder.
func (csu *CardStateUpdate) Mutation() *CardStateMutation {
	return csu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (csu *CardStateUpdate) Save(ctx context.Context) (int, error) {
	csu.defaults()
	return withHooks(ctx, csu.sqlSave, csu.mutation, csu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (csu *CardStateUpdate) SaveX(ctx context.Context) int {
	affected, err := csu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (csu *CardStateUpdate) Exec(ctx context.Context) error {
	_, err := csu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (csu *CardStateUpdate) ExecX(ctx context.Context) {
	if err := csu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (csu *CardStateUpdate) defaults() {
	if _, ok := csu.mutation.UpdatedAt(); !ok {
		v := cardstate.UpdateDefaultUpdatedAt()
		csu.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (csu *CardStateUpdate) check() error {
	if v, ok := csu.mutation.LearnerID(); ok {
		if err := cardstate.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "CardState.learner_id": %w`, err)}
		}
	}
	if v, ok := csu.mutation.ItemID(); ok {
		if err := cardstate.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "CardState.item_id": %w`, err)}
		}
	}
	return nil
}

func (csu *CardStateUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := csu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(cardstate.Table, cardstate.Columns, sqlgraph.NewFieldSpec(cardstate.FieldID, field.TypeInt))
	if ps := csu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := csu.mutation.LearnerID(); ok {
		_spec.SetField(cardstate.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := csu.mutation.ItemID(); ok {
		_spec.SetField(cardstate.FieldItemID, field.TypeString, value)
	}
	if value, ok := csu.mutation.EaseFactor(); ok {
		_spec.SetField(cardstate.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := csu.mutation.AddedEaseFactor(); ok {
		_spec.AddField(cardstate.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := csu.mutation.Interval(); ok {
		_spec.SetField(cardstate.FieldInterval, field.TypeInt, value)
	}
	if value, ok := csu.mutation.AddedInterval(); ok {
		_spec.AddField(cardstate.FieldInterval, field.TypeInt, value)
	}
	if value, ok := csu.mutation.Repetition(); ok {
		_spec.SetField(cardstate.FieldRepetition, field.TypeInt, value)
	}
	if value, ok := csu.mutation.AddedRepetition(); ok {
		_spec.AddField(cardstate.FieldRepetition, field.TypeInt, value)
	}
	if value, ok := csu.mutation.NextReviewDate(); ok {
		_spec.SetField(cardstate.FieldNextReviewDate, field.TypeTime, value)
	}
	if value, ok := csu.mutation.LastReviewDate(); ok {
		_spec.SetField(cardstate.FieldLastReviewDate, field.TypeTime, value)
	}
	if csu.mutation.LastReviewDateCleared() {
		_spec.ClearField(cardstate.FieldLastReviewDate, field.TypeTime)
	}
	if value, ok := csu.mutation.ReviewHistory(); ok {
		_spec.SetField(cardstate.FieldReviewHistory, field.TypeJSON, value)
	}
	if value, ok := csu.mutation.AppendedReviewHistory(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, cardstate.FieldReviewHistory, value)
		})
	}
	if csu.mutation.ReviewHistoryCleared() {
		_spec.ClearField(cardstate.FieldReviewHistory, field.TypeJSON)
	}
	if value, ok := csu.mutation.UpdatedAt(); ok {
		_spec.SetField(cardstate.FieldUpdatedAt, field.TypeTime, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, csu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{cardstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	csu.mutation.done = true
	return n, nil
}

// CardStateUpdateOne is the builder for updating a single CardState entity.
type CardStateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CardStateMutation
}

// SetLearnerID sets the "learner_id" field.
func (csuo *CardStateUpdateOne) SetLearnerID(s string) *CardStateUpdateOne {
	csuo.mutation.SetLearnerID(s)
	return csuo
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (csuo *CardStateUpdateOne) SetNillableLearnerID(s *string) *CardStateUpdateOne {
	if s != nil {
		csuo.SetLearnerID(*s)
	}
	return csuo
}

// SetItemID sets the "item_id" field.
func (csuo *CardStateUpdateOne) SetItemID(s string) *CardStateUpdateOne {
	csuo.mutation.SetItemID(s)
	return csuo
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (csuo *CardStateUpdateOne) SetNillableItemID(s *string) *CardStateUpdateOne {
	if s != nil {
		csuo.SetItemID(*s)
	}
	return csuo
}

// SetEaseFactor sets the "ease_factor" field.
func (csuo *CardStateUpdateOne) SetEaseFactor(f float64) *CardStateUpdateOne {
	csuo.mutation.ResetEaseFactor()
	csuo.mutation.SetEaseFactor(f)
	return csuo
}

// SetNillableEaseFactor sets the "ease_factor" field if the given value is not nil.
func (csuo *CardStateUpdateOne) SetNillableEaseFactor(f *float64) *CardStateUpdateOne {
	if f != nil {
		csuo.SetEaseFactor(*f)
	}
	return csuo
}

// AddEaseFactor adds f to the "ease_factor" field.
func (csuo *CardStateUpdateOne) AddEaseFactor(f float64) *CardStateUpdateOne {
	csuo.mutation.AddEaseFactor(f)
	return csuo
}

// SetInterval sets the "interval" field.
func (csuo *CardStateUpdateOne) SetInterval(i int) *CardStateUpdateOne {
	csuo.mutation.ResetInterval()
	csuo.mutation.SetInterval(i)
	return csuo
}

// SetNillableInterval sets the "interval" field if the given value is not nil.
func (csuo *CardStateUpdateOne) SetNillableInterval(i *int) *CardStateUpdateOne {
	if i != nil {
		csuo.SetInterval(*i)
	}
	return csuo
}

// AddInterval adds i to the "interval" field.
func (csuo *CardStateUpdateOne) AddInterval(i int) *CardStateUpdateOne {
	csuo.mutation.AddInterval(i)
	return csuo
}

// SetRepetition sets the "repetition" field.
func (csuo *CardStateUpdateOne) SetRepetition(i int) *CardStateUpdateOne {
	csuo.mutation.ResetRepetition()
	csuo.mutation.SetRepetition(i)
	return csuo
}

// SetNillableRepetition sets the "repetition" field if the given value is not nil.
func (csuo *CardStateUpdateOne) SetNillableRepetition(i *int) *CardStateUpdateOne {
	if i != nil {
		csuo.SetRepetition(*i)
	}
	return csuo
}

// AddRepetition adds i to the "repetition" field.
func (csuo *CardStateUpdateOne) AddRepetition(i int) *CardStateUpdateOne {
	csuo.mutation.AddRepetition(i)
	return csuo
}

// SetNextReviewDate sets the "next_review_date" field.
func (csuo *CardStateUpdateOne) SetNextReviewDate(t time.Time) *CardStateUpdateOne {
	csuo.mutation.SetNextReviewDate(t)
	return csuo
}

// SetNillableNextReviewDate sets the "next_review_date" field if the given value is not nil.
func (csuo *CardStateUpdateOne) SetNillableNextReviewDate(t *time.Time) *CardStateUpdateOne {
	if t != nil {
		csuo.SetNextReviewDate(*t)
	}
	return csuo
}

// SetLastReviewDate sets the "last_review_date" field.
func (csuo *CardStateUpdateOne) SetLastReviewDate(t time.Time) *CardStateUpdateOne {
	csuo.mutation.SetLastReviewDate(t)
	return csuo
}

// SetNillableLastReviewDate sets the "last_review_date" field if the given value is not nil.
func (csuo *CardStateUpdateOne) SetNillableLastReviewDate(t *time.Time) *CardStateUpdateOne {
	if t != nil {
		csuo.SetLastReviewDate(*t)
	}
	return csuo
}

// ClearLastReviewDate clears the value of the "last_review_date" field.
func (csuo *CardStateUpdateOne) ClearLastReviewDate() *CardStateUpdateOne {
	csuo.mutation.ClearLastReviewDate()
	return csuo
}

// SetReviewHistory sets the "review_history" field.
func (csuo *CardStateUpdateOne) SetReviewHistory(m []map[string]interface{}) *CardStateUpdateOne {
	csuo.mutation.SetReviewHistory(m)
	return csuo
}

// AppendReviewHistory appends m to the "review_history" field.
func (csuo *CardStateUpdateOne) AppendReviewHistory(m []map[string]interface{}) *CardStateUpdateOne {
	csuo.mutation.AppendReviewHistory(m)
	return csuo
}

// ClearReviewHistory clears the value of the "review_history" field.
func (csuo *CardStateUpdateOne) ClearReviewHistory() *CardStateUpdateOne {
	csuo.mutation.ClearReviewHistory()
	return csuo
}

// SetUpdatedAt sets the "updated_at" field.
func (csuo *CardStateUpdateOne) SetUpdatedAt(t time.Time) *CardStateUpdateOne {
	csuo.mutation.SetUpdatedAt(t)
	return csuo
}

// Mutation returns the CardStateMutation object of the builder.
func (csuo *CardStateUpdateOne) Mutation() *CardStateMutation {
	return csuo.mutation
}

// Where appends a list predicates to the CardStateUpdate builder.
func (csuo *CardStateUpdateOne) Where(ps ...predicate.CardState) *CardStateUpdateOne {
	csuo.mutation.Where(ps...)
	return csuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (csuo *CardStateUpdateOne) Select(field string, fields ...string) *CardStateUpdateOne {
	csuo.fields = append([]string{field}, fields...)
	return csuo
}

// Save executes the query and returns the updated CardState entity.
func (csuo *CardStateUpdateOne) Save(ctx context.Context) (*CardState, error) {
	csuo.defaults()
	return withHooks(ctx, csuo.sqlSave, csuo.mutation, csuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (csuo *CardStateUpdateOne) SaveX(ctx context.Context) *CardState {
	node, err := csuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (csuo *CardStateUpdateOne) Exec(ctx context.Context) error {
	_, err := csuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (csuo *CardStateUpdateOne) ExecX(ctx context.Context) {
	if err := csuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (csuo *CardStateUpdateOne) defaults() {
	if _, ok := csuo.mutation.UpdatedAt(); !ok {
		v := cardstate.UpdateDefaultUpdatedAt()
		csuo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (csuo *CardStateUpdateOne) check() error {
	if v, ok := csuo.mutation.LearnerID(); ok {
		if err := cardstate.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "CardState.learner_id": %w`, err)}
		}
	}
	if v, ok := csuo.mutation.ItemID(); ok {
		if err := cardstate.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "CardState.item_id": %w`, err)}
		}
	}
	return nil
}

func (csuo *CardStateUpdateOne) sqlSave(ctx context.Context) (_node *CardState, err error) {
	if err := csuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(cardstate.Table, cardstate.Columns, sqlgraph.NewFieldSpec(cardstate.FieldID, field.TypeInt))
	id, ok := csuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CardState.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := csuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, cardstate.FieldID)
		for _, f := range fields {
			if !cardstate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != cardstate.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := csuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := csuo.mutation.LearnerID(); ok {
		_spec.SetField(cardstate.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := csuo.mutation.ItemID(); ok {
		_spec.SetField(cardstate.FieldItemID, field.TypeString, value)
	}
	if value, ok := csuo.mutation.EaseFactor(); ok {
		_spec.SetField(cardstate.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := csuo.mutation.AddedEaseFactor(); ok {
		_spec.AddField(cardstate.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := csuo.mutation.Interval(); ok {
		_spec.SetField(cardstate.FieldInterval, field.TypeInt, value)
	}
	if value, ok := csuo.mutation.AddedInterval(); ok {
		_spec.AddField(cardstate.FieldInterval, field.TypeInt, value)
	}
	if value, ok := csuo.mutation.Repetition(); ok {
		_spec.SetField(cardstate.FieldRepetition, field.TypeInt, value)
	}
	if value, ok := csuo.mutation.AddedRepetition(); ok {
		_spec.AddField(cardstate.FieldRepetition, field.TypeInt, value)
	}
	if value, ok := csuo.mutation.NextReviewDate(); ok {
		_spec.SetField(cardstate.FieldNextReviewDate, field.TypeTime, value)
	}
	if value, ok := csuo.mutation.LastReviewDate(); ok {
		_spec.SetField(cardstate.FieldLastReviewDate, field.TypeTime, value)
	}
	if csuo.mutation.LastReviewDateCleared() {
		_spec.ClearField(cardstate.FieldLastReviewDate, field.TypeTime)
	}
	if value, ok := csuo.mutation.ReviewHistory(); ok {
		_spec.SetField(cardstate.FieldReviewHistory, field.TypeJSON, value)
	}
	if value, ok := csuo.mutation.AppendedReviewHistory(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, cardstate.FieldReviewHistory, value)
		})
	}
	if csuo.mutation.ReviewHistoryCleared() {
		_spec.ClearField(cardstate.FieldReviewHistory, field.TypeJSON)
	}
	if value, ok := csuo.mutation.UpdatedAt(); ok {
		_spec.SetField(cardstate.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &CardState{config: csuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, csuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{cardstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	csuo.mutation.done = true
	return _node, nil
}
