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
	"github.com/abhisek/learnpath/ent/learningpath"
	"github.com/abhisek/learnpath/ent/predicate"
)

// LearningPathUpdate is the builder for updating LearningPath entities.
type LearningPathUpdate struct {
	config
	hooks    []Hook
	mutation *LearningPathMutation
}

// Where appends a list predicates to the LearningPathUpdate builder.
func (lpu *LearningPathUpdate) Where(ps ...predicate.LearningPath) *LearningPathUpdate {
	lpu.mutation.Where(ps...)
	return lpu
}

// SetPathID sets the "path_id" field.
func (lpu *LearningPathUpdate) SetPathID(s string) *LearningPathUpdate {
	lpu.mutation.SetPathID(s)
	return lpu
}

// SetNillablePathID sets the "path_id" field if the given value is not nil.
func (lpu *LearningPathUpdate) SetNillablePathID(s *string) *LearningPathUpdate {
	if s != nil {
		lpu.SetPathID(*s)
	}
	return lpu
}

// SetLearnerID sets the "learner_id" field.
func (lpu *LearningPathUpdate) SetLearnerID(s string) *LearningPathUpdate {
	lpu.mutation.SetLearnerID(s)
	return lpu
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (lpu *LearningPathUpdate) SetNillableLearnerID(s *string) *LearningPathUpdate {
	if s != nil {
		lpu.SetLearnerID(*s)
	}
	return lpu
}

// SetSubjects sets the "subjects" field.
func (lpu *LearningPathUpdate) SetSubjects(s []string) *LearningPathUpdate {
	lpu.mutation.SetSubjects(s)
	return lpu
}

// AppendSubjects appends s to the "subjects" field.
func (lpu *LearningPathUpdate) AppendSubjects(s []string) *LearningPathUpdate {
	lpu.mutation.AppendSubjects(s)
	return lpu
}

// SetDifficulty sets the "difficulty" field.
func (lpu *LearningPathUpdate) SetDifficulty(i int) *LearningPathUpdate {
	lpu.mutation.ResetDifficulty()
	lpu.mutation.SetDifficulty(i)
	return lpu
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (lpu *LearningPathUpdate) SetNillableDifficulty(i *int) *LearningPathUpdate {
	if i != nil {
		lpu.SetDifficulty(*i)
	}
	return lpu
}

// AddDifficulty adds i to the "difficulty" field.
func (lpu *LearningPathUpdate) AddDifficulty(i int) *LearningPathUpdate {
	lpu.mutation.AddDifficulty(i)
	return lpu
}

// SetMilestones sets the "milestones" field.
func (lpu *LearningPathUpdate) SetMilestones(m []map[string]interface{}) *LearningPathUpdate {
	lpu.mutation.SetMilestones(m)
	return lpu
}

// AppendMilestones appends m to the "milestones" field.
func (lpu *LearningPathUpdate) AppendMilestones(m []map[string]interface{}) *LearningPathUpdate {
	lpu.mutation.AppendMilestones(m)
	return lpu
}

// SetQuestions sets the "questions" field.
func (lpu *LearningPathUpdate) SetQuestions(s []string) *LearningPathUpdate {
	lpu.mutation.SetQuestions(s)
	return lpu
}

// AppendQuestions appends s to the "questions" field.
func (lpu *LearningPathUpdate) AppendQuestions(s []string) *LearningPathUpdate {
	lpu.mutation.AppendQuestions(s)
	return lpu
}

// ClearQuestions clears the value of the "questions" field.
func (lpu *LearningPathUpdate) ClearQuestions() *LearningPathUpdate {
	lpu.mutation.ClearQuestions()
	return lpu
}

// SetQuestionsCompleted sets the "questions_completed" field.
func (lpu *LearningPathUpdate) SetQuestionsCompleted(i int) *LearningPathUpdate {
	lpu.mutation.ResetQuestionsCompleted()
	lpu.mutation.SetQuestionsCompleted(i)
	return lpu
}

// SetNillableQuestionsCompleted sets the "questions_completed" field if the given value is not nil.
func (lpu *LearningPathUpdate) SetNillableQuestionsCompleted(i *int) *LearningPathUpdate {
	if i != nil {
		lpu.SetQuestionsCompleted(*i)
	}
	return lpu
}

// AddQuestionsCompleted adds i to the "questions_completed" field.
func (lpu *LearningPathUpdate) AddQuestionsCompleted(i int) *LearningPathUpdate {
	lpu.mutation.AddQuestionsCompleted(i)
	return lpu
}

// SetTotalTimeSpent sets the "total_time_spent" field.
func (lpu *LearningPathUpdate) SetTotalTimeSpent(i int) *LearningPathUpdate {
	lpu.mutation.ResetTotalTimeSpent()
	lpu.mutation.SetTotalTimeSpent(i)
	return lpu
}

// SetNillableTotalTimeSpent sets the "total_time_spent" field if the given value is not nil.
func (lpu *LearningPathUpdate) SetNillableTotalTimeSpent(i *int) *LearningPathUpdate {
	if i != nil {
		lpu.SetTotalTimeSpent(*i)
	}
	return lpu
}

// AddTotalTimeSpent adds i to the "total_time_spent" field.
func (lpu *LearningPathUpdate) AddTotalTimeSpent(i int) *LearningPathUpdate {
	lpu.mutation.AddTotalTimeSpent(i)
	return lpu
}

// SetCompletionLog sets the "completion_log" field.
func (lpu *LearningPathUpdate) SetCompletionLog(m []map[string]interface{}) *LearningPathUpdate {
	lpu.mutation.SetCompletionLog(m)
	return lpu
}

// AppendCompletionLog appends m to the "completion_log" field.
func (lpu *LearningPathUpdate) AppendCompletionLog(m []map[string]interface{}) *LearningPathUpdate {
	lpu.mutation.AppendCompletionLog(m)
	return lpu
}

// ClearCompletionLog clears the value of the "completion_log" field.
func (lpu *LearningPathUpdate) ClearCompletionLog() *LearningPathUpdate {
	lpu.mutation.ClearCompletionLog()
	return lpu
}

// SetStatus sets the "status" field.
func (lpu *LearningPathUpdate) SetStatus(l learningpath.Status) *LearningPathUpdate {
	lpu.mutation.SetStatus(l)
	return lpu
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (lpu *LearningPathUpdate) SetNillableStatus(l *learningpath.Status) *LearningPathUpdate {
	if l != nil {
		lpu.SetStatus(*l)
	}
	return lpu
}

// SetUpdatedAt sets the "updated_at" field.
func (lpu *LearningPathUpdate) SetUpdatedAt(t time.Time) *LearningPathUpdate {
	lpu.mutation.SetUpdatedAt(t)
	return lpu
}

// Mutation returns the LearningPathMutation object of the builder.
func (lpu *LearningPathUpdate) Mutation() *LearningPathMutation {
	return lpu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (lpu *LearningPathUpdate) Save(ctx context.Context) (int, error) {
	lpu.defaults()
	return withHooks(ctx, lpu.sqlSave, lpu.mutation, lpu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (lpu *LearningPathUpdate) SaveX(ctx context.Context) int {
	affected, err := lpu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (lpu *LearningPathUpdate) Exec(ctx context.Context) error {
	_, err := lpu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (lpu *LearningPathUpdate) ExecX(ctx context.Context) {
	if err := lpu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (lpu *LearningPathUpdate) defaults() {
	if _, ok := lpu.mutation.UpdatedAt(); !ok {
		v := learningpath.UpdateDefaultUpdatedAt()
		lpu.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (lpu *LearningPathUpdate) check() error {
	if v, ok := lpu.mutation.PathID(); ok {
		if err := learningpath.PathIDValidator(v); err != nil {
			return &ValidationError{Name: "path_id", err: fmt.Errorf(`ent: validator failed for field "LearningPath.path_id": %w`, err)}
		}
	}
	if v, ok := lpu.mutation.LearnerID(); ok {
		if err := learningpath.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "LearningPath.learner_id": %w`, err)}
		}
	}
	if v, ok := lpu.mutation.Status(); ok {
		if err := learningpath.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "LearningPath.status": %w`, err)}
		}
	}
	return nil
}

func (lpu *LearningPathUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := lpu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(learningpath.Table, learningpath.Columns, sqlgraph.NewFieldSpec(learningpath.FieldID, field.TypeInt))
	if ps := lpu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := lpu.mutation.PathID(); ok {
		_spec.SetField(learningpath.FieldPathID, field.TypeString, value)
	}
	if value, ok := lpu.mutation.LearnerID(); ok {
		_spec.SetField(learningpath.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := lpu.mutation.Subjects(); ok {
		_spec.SetField(learningpath.FieldSubjects, field.TypeJSON, value)
	}
	if value, ok := lpu.mutation.AppendedSubjects(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, learningpath.FieldSubjects, value)
		})
	}
	if value, ok := lpu.mutation.Difficulty(); ok {
		_spec.SetField(learningpath.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := lpu.mutation.AddedDifficulty(); ok {
		_spec.AddField(learningpath.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := lpu.mutation.Milestones(); ok {
		_spec.SetField(learningpath.FieldMilestones, field.TypeJSON, value)
	}
	if value, ok := lpu.mutation.AppendedMilestones(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, learningpath.FieldMilestones, value)
		})
	}
	if value, ok := lpu.mutation.Questions(); ok {
		_spec.SetField(learningpath.FieldQuestions, field.TypeJSON, value)
	}
	if value, ok := lpu.mutation.AppendedQuestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, learningpath.FieldQuestions, value)
		})
	}
	if lpu.mutation.QuestionsCleared() {
		_spec.ClearField(learningpath.FieldQuestions, field.TypeJSON)
	}
	if value, ok := lpu.mutation.QuestionsCompleted(); ok {
		_spec.SetField(learningpath.FieldQuestionsCompleted, field.TypeInt, value)
	}
	if value, ok := lpu.mutation.AddedQuestionsCompleted(); ok {
		_spec.AddField(learningpath.FieldQuestionsCompleted, field.TypeInt, value)
	}
	if value, ok := lpu.mutation.TotalTimeSpent(); ok {
		_spec.SetField(learningpath.FieldTotalTimeSpent, field.TypeInt, value)
	}
	if value, ok := lpu.mutation.AddedTotalTimeSpent(); ok {
		_spec.AddField(learningpath.FieldTotalTimeSpent, field.TypeInt, value)
	}
	if value, ok := lpu.mutation.CompletionLog(); ok {
		_spec.SetField(learningpath.FieldCompletionLog, field.TypeJSON, value)
	}
	if value, ok := lpu.mutation.AppendedCompletionLog(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, learningpath.FieldCompletionLog, value)
		})
	}
	if lpu.mutation.CompletionLogCleared() {
		_spec.ClearField(learningpath.FieldCompletionLog, field.TypeJSON)
	}
	if value, ok := lpu.mutation.Status(); ok {
		_spec.SetField(learningpath.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := lpu.mutation.UpdatedAt(); ok {
		_spec.SetField(learningpath.FieldUpdatedAt, field.TypeTime, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, lpu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learningpath.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	lpu.mutation.done = true
	return n, nil
}

// LearningPathUpdateOne is the builder for updating a single LearningPath entity.
type LearningPathUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LearningPathMutation
}

// SetPathID sets the "path_id" field.
func (lpuo *LearningPathUpdateOne) SetPathID(s string) *LearningPathUpdateOne {
	lpuo.mutation.SetPathID(s)
	return lpuo
}

// SetNillablePathID sets the "path_id" field if the given value is not nil.
func (lpuo *LearningPathUpdateOne) SetNillablePathID(s *string) *LearningPathUpdateOne {
	if s != nil {
		lpuo.SetPathID(*s)
	}
	return lpuo
}

// SetLearnerID sets the "learner_id" field.
func (lpuo *LearningPathUpdateOne) SetLearnerID(s string) *LearningPathUpdateOne {
	lpuo.mutation.SetLearnerID(s)
	return lpuo
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (lpuo *LearningPathUpdateOne) SetNillableLearnerID(s *string) *LearningPathUpdateOne {
	if s != nil {
		lpuo.SetLearnerID(*s)
	}
	return lpuo
}

// SetSubjects sets the "subjects" field.
func (lpuo *LearningPathUpdateOne) SetSubjects(s []string) *LearningPathUpdateOne {
	lpuo.mutation.SetSubjects(s)
	return lpuo
}

// AppendSubjects appends s to the "subjects" field.
func (lpuo *LearningPathUpdateOne) AppendSubjects(s []string) *LearningPathUpdateOne {
	lpuo.mutation.AppendSubjects(s)
	return lpuo
}

// SetDifficulty sets the "difficulty" field.
func (lpuo *LearningPathUpdateOne) SetDifficulty(i int) *LearningPathUpdateOne {
	lpuo.mutation.ResetDifficulty()
	lpuo.mutation.SetDifficulty(i)
	return lpuo
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (lpuo *LearningPathUpdateOne) SetNillableDifficulty(i *int) *LearningPathUpdateOne {
	if i != nil {
		lpuo.SetDifficulty(*i)
	}
	return lpuo
}

// AddDifficulty adds i to the "difficulty" field.
func (lpuo *LearningPathUpdateOne) AddDifficulty(i int) *LearningPathUpdateOne {
	lpuo.mutation.AddDifficulty(i)
	return lpuo
}

// SetMilestones sets the "milestones" field.
func (lpuo *LearningPathUpdateOne) SetMilestones(m []map[string]interface{}) *LearningPathUpdateOne {
	lpuo.mutation.SetMilestones(m)
	return lpuo
}

// AppendMilestones appends m to the "milestones" field.
func (lpuo *LearningPathUpdateOne) AppendMilestones(m []map[string]interface{}) *LearningPathUpdateOne {
	lpuo.mutation.AppendMilestones(m)
	return lpuo
}

// SetQuestions sets the "questions" field.
func (lpuo *LearningPathUpdateOne) SetQuestions(s []string) *LearningPathUpdateOne {
	lpuo.mutation.SetQuestions(s)
	return lpuo
}

// AppendQuestions appends s to the "questions" field.
func (lpuo *LearningPathUpdateOne) AppendQuestions(s []string) *LearningPathUpdateOne {
	lpuo.mutation.AppendQuestions(s)
	return lpuo
}

// ClearQuestions clears the value of the "questions" field.
func (lpuo *LearningPathUpdateOne) ClearQuestions() *LearningPathUpdateOne {
	lpuo.mutation.ClearQuestions()
	return lpuo
}

// SetQuestionsCompleted sets the "questions_completed" field.
func (lpuo *LearningPathUpdateOne) SetQuestionsCompleted(i int) *LearningPathUpdateOne {
	lpuo.mutation.ResetQuestionsCompleted()
	lpuo.mutation.SetQuestionsCompleted(i)
	return lpuo
}

// SetNillableQuestionsCompleted sets the "questions_completed" field if the given value is not nil.
func (lpuo *LearningPathUpdateOne) SetNillableQuestionsCompleted(i *int) *LearningPathUpdateOne {
	if i != nil {
		lpuo.SetQuestionsCompleted(*i)
	}
	return lpuo
}

// AddQuestionsCompleted adds i to the "questions_completed" field.
func (lpuo *LearningPathUpdateOne) AddQuestionsCompleted(i int) *LearningPathUpdateOne {
	lpuo.mutation.AddQuestionsCompleted(i)
	return lpuo
}

// SetTotalTimeSpent sets the "total_time_spent" field.
func (lpuo *LearningPathUpdateOne) SetTotalTimeSpent(i int) *LearningPathUpdateOne {
	lpuo.mutation.ResetTotalTimeSpent()
	lpuo.mutation.SetTotalTimeSpent(i)
	return lpuo
}

// SetNillableTotalTimeSpent sets the "total_time_spent" field if the given value is not nil.
func (lpuo *LearningPathUpdateOne) SetNillableTotalTimeSpent(i *int) *LearningPathUpdateOne {
	if i != nil {
		lpuo.SetTotalTimeSpent(*i)
	}
	return lpuo
}

// AddTotalTimeSpent adds i to the "total_time_spent" field.
func (lpuo *LearningPathUpdateOne) AddTotalTimeSpent(i int) *LearningPathUpdateOne {
	lpuo.mutation.AddTotalTimeSpent(i)
	return lpuo
}

// SetCompletionLog sets the "completion_log" field.
func (lpuo *LearningPathUpdateOne) SetCompletionLog(m []map[string]interface{}) *LearningPathUpdateOne {
	lpuo.mutation.SetCompletionLog(m)
	return lpuo
}

// AppendCompletionLog appends m to the "completion_log" field.
func (lpuo *LearningPathUpdateOne) AppendCompletionLog(m []map[string]interface{}) *LearningPathUpdateOne {
	lpuo.mutation.AppendCompletionLog(m)
	return lpuo
}

// ClearCompletionLog clears the value of the "completion_log" field.
func (lpuo *LearningPathUpdateOne) ClearCompletionLog() *LearningPathUpdateOne {
	lpuo.mutation.ClearCompletionLog()
	return lpuo
}

// SetStatus sets the "status" field.
func (lpuo *LearningPathUpdateOne) SetStatus(l learningpath.Status) *LearningPathUpdateOne {
	lpuo.mutation.SetStatus(l)
	return lpuo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (lpuo *LearningPathUpdateOne) SetNillableStatus(l *learningpath.Status) *LearningPathUpdateOne {
	if l != nil {
		lpuo.SetStatus(*l)
	}
	return lpuo
}

// SetUpdatedAt sets the "updated_at" field.
func (lpuo *LearningPathUpdateOne) SetUpdatedAt(t time.Time) *LearningPathUpdateOne {
	lpuo.mutation.SetUpdatedAt(t)
	return lpuo
}

// Mutation returns the LearningPathMutation object of the builder.
func (lpuo *LearningPathUpdateOne) Mutation() *LearningPathMutation {
	return lpuo.mutation
}

// Where appends a list predicates to the LearningPathUpdate builder.
func (lpuo *LearningPathUpdateOne) Where(ps ...predicate.LearningPath) *LearningPathUpdateOne {
	lpuo.mutation.Where(ps...)
	return lpuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (lpuo *LearningPathUpdateOne) Select(field string, fields ...string) *LearningPathUpdateOne {
	lpuo.fields = append([]string{field}, fields...)
	return lpuo
}

// Save executes the query and returns the updated LearningPath entity.
func (lpuo *LearningPathUpdateOne) Save(ctx context.Context) (*LearningPath, error) {
	lpuo.defaults()
	return withHooks(ctx, lpuo.sqlSave, lpuo.mutation, lpuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (lpuo *LearningPathUpdateOne) SaveX(ctx context.Context) *LearningPath {
	node, err := lpuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (lpuo *LearningPathUpdateOne) Exec(ctx context.Context) error {
	_, err := lpuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (lpuo *LearningPathUpdateOne) ExecX(ctx context.Context) {
	if err := lpuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (lpuo *LearningPathUpdateOne) defaults() {
	if _, ok := lpuo.mutation.UpdatedAt(); !ok {
		v := learningpath.UpdateDefaultUpdatedAt()
		lpuo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (lpuo *LearningPathUpdateOne) check() error {
	if v, ok := lpuo.mutation.PathID(); ok {
		if err := learningpath.PathIDValidator(v); err != nil {
			return &ValidationError{Name: "path_id", err: fmt.Errorf(`ent: validator failed for field "LearningPath.path_id": %w`, err)}
		}
	}
	if v, ok := lpuo.mutation.LearnerID(); ok {
		if err := learningpath.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "LearningPath.learner_id": %w`, err)}
		}
	}
	if v, ok := lpuo.mutation.Status(); ok {
		if err := learningpath.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "LearningPath.status": %w`, err)}
		}
	}
	return nil
}

func (lpuo *LearningPathUpdateOne) sqlSave(ctx context.Context) (_node *LearningPath, err error) {
	if err := lpuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(learningpath.Table, learningpath.Columns, sqlgraph.NewFieldSpec(learningpath.FieldID, field.TypeInt))
	id, ok := lpuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LearningPath.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := lpuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, learningpath.FieldID)
		for _, f := range fields {
			if !learningpath.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != learningpath.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := lpuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := lpuo.mutation.PathID(); ok {
		_spec.SetField(learningpath.FieldPathID, field.TypeString, value)
	}
	if value, ok := lpuo.mutation.LearnerID(); ok {
		_spec.SetField(learningpath.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := lpuo.mutation.Subjects(); ok {
		_spec.SetField(learningpath.FieldSubjects, field.TypeJSON, value)
	}
	if value, ok := lpuo.mutation.AppendedSubjects(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, learningpath.FieldSubjects, value)
		})
	}
	if value, ok := lpuo.mutation.Difficulty(); ok {
		_spec.SetField(learningpath.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := lpuo.mutation.AddedDifficulty(); ok {
		_spec.AddField(learningpath.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := lpuo.mutation.Milestones(); ok {
		_spec.SetField(learningpath.FieldMilestones, field.TypeJSON, value)
	}
	if value, ok := lpuo.mutation.AppendedMilestones(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, learningpath.FieldMilestones, value)
		})
	}
	if value, ok := lpuo.mutation.Questions(); ok {
		_spec.SetField(learningpath.FieldQuestions, field.TypeJSON, value)
	}
	if value, ok := lpuo.mutation.AppendedQuestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, learningpath.FieldQuestions, value)
		})
	}
	if lpuo.mutation.QuestionsCleared() {
		_spec.ClearField(learningpath.FieldQuestions, field.TypeJSON)
	}
	if value, ok := lpuo.mutation.QuestionsCompleted(); ok {
		_spec.SetField(learningpath.FieldQuestionsCompleted, field.TypeInt, value)
	}
	if value, ok := lpuo.mutation.AddedQuestionsCompleted(); ok {
		_spec.AddField(learningpath.FieldQuestionsCompleted, field.TypeInt, value)
	}
	if value, ok := lpuo.mutation.TotalTimeSpent(); ok {
		_spec.SetField(learningpath.FieldTotalTimeSpent, field.TypeInt, value)
	}
	if value, ok := lpuo.mutation.AddedTotalTimeSpent(); ok {
		_spec.AddField(learningpath.FieldTotalTimeSpent, field.TypeInt, value)
	}
	if value, ok := lpuo.mutation.CompletionLog(); ok {
		_spec.SetField(learningpath.FieldCompletionLog, field.TypeJSON, value)
	}
	if value, ok := lpuo.mutation.AppendedCompletionLog(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, learningpath.FieldCompletionLog, value)
		})
	}
	if lpuo.mutation.CompletionLogCleared() {
		_spec.ClearField(learningpath.FieldCompletionLog, field.TypeJSON)
	}
	if value, ok := lpuo.mutation.Status(); ok {
		_spec.SetField(learningpath.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := lpuo.mutation.UpdatedAt(); ok {
		_spec.SetField(learningpath.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &LearningPath{config: lpuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, lpuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learningpath.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	lpuo.mutation.done = true
	return _node, nil
}
