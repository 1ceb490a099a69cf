// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/learnpath/ent/learningpath"
)

// LearningPathCreate is the builder for creating a LearningPath entity.
type LearningPathCreate struct {
	config
	mutation *LearningPathMutation
	hooks    []Hook
}

// SetPathID sets the "path_id" field.
func (lpc *LearningPathCreate) SetPathID(s string) *LearningPathCreate {
	lpc.mutation.SetPathID(s)
	return lpc
}

// SetLearnerID sets the "learner_id" field.
func (lpc *LearningPathCreate) SetLearnerID(s string) *LearningPathCreate {
	lpc.mutation.SetLearnerID(s)
	return lpc
}

// SetSubjects sets the "subjects" field.
func (lpc *LearningPathCreate) SetSubjects(s []string) *LearningPathCreate {
	lpc.mutation.SetSubjects(s)
	return lpc
}

// SetDifficulty sets the "difficulty" field.
func (lpc *LearningPathCreate) SetDifficulty(i int) *LearningPathCreate {
	lpc.mutation.SetDifficulty(i)
	return lpc
}

// SetMilestones sets the "milestones" field.
func (lpc *LearningPathCreate) SetMilestones(m []map[string]interface{}) *LearningPathCreate {
	lpc.mutation.SetMilestones(m)
	return lpc
}

// SetQuestions sets the "questions" field.
func (lpc *LearningPathCreate) SetQuestions(s []string) *LearningPathCreate {
	lpc.mutation.SetQuestions(s)
	return lpc
}

// SetQuestionsCompleted sets the "questions_completed" field.
func (lpc *LearningPathCreate) SetQuestionsCompleted(i int) *LearningPathCreate {
	lpc.mutation.SetQuestionsCompleted(i)
	return lpc
}

// SetNillableQuestionsCompleted sets the "questions_completed" field if the given value is not nil.
func (lpc *LearningPathCreate) SetNillableQuestionsCompleted(i *int) *LearningPathCreate {
	if i != nil {
		lpc.SetQuestionsCompleted(*i)
	}
	return lpc
}

// SetTotalTimeSpent sets the "total_time_spent" field.
func (lpc *LearningPathCreate) SetTotalTimeSpent(i int) *LearningPathCreate {
	lpc.mutation.SetTotalTimeSpent(i)
	return lpc
}

// SetNillableTotalTimeSpent sets the "total_time_spent" field if the given value is not nil.
func (lpc *LearningPathCreate) SetNillableTotalTimeSpent(i *int) *LearningPathCreate {
	if i != nil {
		lpc.SetTotalTimeSpent(*i)
	}
	return lpc
}

// SetCompletionLog sets the "completion_log" field.
func (lpc *LearningPathCreate) SetCompletionLog(m []map[string]interface{}) *LearningPathCreate {
	lpc.mutation.SetCompletionLog(m)
	return lpc
}

// SetStatus sets the "status" field.
func (lpc *LearningPathCreate) SetStatus(l learningpath.Status) *LearningPathCreate {
	lpc.mutation.SetStatus(l)
	return lpc
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (lpc *LearningPathCreate) SetNillableStatus(l *learningpath.Status) *LearningPathCreate {
	if l != nil {
		lpc.SetStatus(*l)
	}
	return lpc
}

// SetCreatedAt sets the "created_at" field.
func (lpc *LearningPathCreate) SetCreatedAt(t time.Time) *LearningPathCreate {
	lpc.mutation.SetCreatedAt(t)
	return lpc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (lpc *LearningPathCreate) SetNillableCreatedAt(t *time.Time) *LearningPathCreate {
	if t != nil {
		lpc.SetCreatedAt(*t)
	}
	return lpc
}

// SetUpdatedAt sets the "updated_at" field.
func (lpc *LearningPathCreate) SetUpdatedAt(t time.Time) *LearningPathCreate {
	lpc.mutation.SetUpdatedAt(t)
	return lpc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (lpc *LearningPathCreate) SetNillableUpdatedAt(t *time.Time) *LearningPathCreate {
	if t != nil {
		lpc.SetUpdatedAt(*t)
	}
	return lpc
}

// Mutation returns the LearningPathMutation object of the builder.
func (lpc *LearningPathCreate) Mutation() *LearningPathMutation {
	return lpc.mutation
}

// Save creates the LearningPath in the database.
func (lpc *LearningPathCreate) Save(ctx context.Context) (*LearningPath, error) {
	lpc.defaults()
	return withHooks(ctx, lpc.sqlSave, lpc.mutation, lpc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (lpc *LearningPathCreate) SaveX(ctx context.Context) *LearningPath {
	v, err := lpc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (lpc *LearningPathCreate) Exec(ctx context.Context) error {
	_, err := lpc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (lpc *LearningPathCreate) ExecX(ctx context.Context) {
	if err := lpc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (lpc *LearningPathCreate) defaults() {
	if _, ok := lpc.mutation.QuestionsCompleted(); !ok {
		v := learningpath.DefaultQuestionsCompleted
		lpc.mutation.SetQuestionsCompleted(v)
	}
	if _, ok := lpc.mutation.TotalTimeSpent(); !ok {
		v := learningpath.DefaultTotalTimeSpent
		lpc.mutation.SetTotalTimeSpent(v)
	}
	if _, ok := lpc.mutation.Status(); !ok {
		v := learningpath.DefaultStatus
		lpc.mutation.SetStatus(v)
	}
	if _, ok := lpc.mutation.CreatedAt(); !ok {
		v := learningpath.DefaultCreatedAt()
		lpc.mutation.SetCreatedAt(v)
	}
	if _, ok := lpc.mutation.UpdatedAt(); !ok {
		v := learningpath.DefaultUpdatedAt()
		lpc.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (lpc *LearningPathCreate) check() error {
	if _, ok := lpc.mutation.PathID(); !ok {
		return &ValidationError{Name: "path_id", err: errors.New(`ent: missing required field "LearningPath.path_id"`)}
	}
	if v, ok := lpc.mutation.PathID(); ok {
		if err := learningpath.PathIDValidator(v); err != nil {
			return &ValidationError{Name: "path_id", err: fmt.Errorf(`ent: validator failed for field "LearningPath.path_id": %w`, err)}
		}
	}
	if _, ok := lpc.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "LearningPath.learner_id"`)}
	}
	if v, ok := lpc.mutation.LearnerID(); ok {
		if err := learningpath.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "LearningPath.learner_id": %w`, err)}
		}
	}
	if _, ok := lpc.mutation.Subjects(); !ok {
		return &ValidationError{Name: "subjects", err: errors.New(`ent: missing required field "LearningPath.subjects"`)}
	}
	if _, ok := lpc.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "LearningPath.difficulty"`)}
	}
	if _, ok := lpc.mutation.Milestones(); !ok {
		return &ValidationError{Name: "milestones", err: errors.New(`ent: missing required field "LearningPath.milestones"`)}
	}
	if _, ok := lpc.mutation.QuestionsCompleted(); !ok {
		return &ValidationError{Name: "questions_completed", err: errors.New(`ent: missing required field "LearningPath.questions_completed"`)}
	}
	if _, ok := lpc.mutation.TotalTimeSpent(); !ok {
		return &ValidationError{Name: "total_time_spent", err: errors.New(`ent: missing required field "LearningPath.total_time_spent"`)}
	}
	if _, ok := lpc.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "LearningPath.status"`)}
	}
	if v, ok := lpc.mutation.Status(); ok {
		if err := learningpath.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "LearningPath.status": %w`, err)}
		}
	}
	if _, ok := lpc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "LearningPath.created_at"`)}
	}
	if _, ok := lpc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "LearningPath.updated_at"`)}
	}
	return nil
}

func (lpc *LearningPathCreate) sqlSave(ctx context.Context) (*LearningPath, error) {
	if err := lpc.check(); err != nil {
		return nil, err
	}
	_node, _spec := lpc.createSpec()
	if err := sqlgraph.CreateNode(ctx, lpc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	lpc.mutation.id = &_node.ID
	lpc.mutation.done = true
	return _node, nil
}

func (lpc *LearningPathCreate) createSpec() (*LearningPath, *sqlgraph.CreateSpec) {
	var (
		_node = &LearningPath{config: lpc.config}
		_spec = sqlgraph.NewCreateSpec(learningpath.Table, sqlgraph.NewFieldSpec(learningpath.FieldID, field.TypeInt))
	)
	if value, ok := lpc.mutation.PathID(); ok {
		_spec.SetField(learningpath.FieldPathID, field.TypeString, value)
		_node.PathID = value
	}
	if value, ok := lpc.mutation.LearnerID(); ok {
		_spec.SetField(learningpath.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := lpc.mutation.Subjects(); ok {
		_spec.SetField(learningpath.FieldSubjects, field.TypeJSON, value)
		_node.Subjects = value
	}
	if value, ok := lpc.mutation.Difficulty(); ok {
		_spec.SetField(learningpath.FieldDifficulty, field.TypeInt, value)
		_node.Difficulty = value
	}
	if value, ok := lpc.mutation.Milestones(); ok {
		_spec.SetField(learningpath.FieldMilestones, field.TypeJSON, value)
		_node.Milestones = value
	}
	if value, ok := lpc.mutation.Questions(); ok {
		_spec.SetField(learningpath.FieldQuestions, field.TypeJSON, value)
		_node.Questions = value
	}
	if value, ok := lpc.mutation.QuestionsCompleted(); ok {
		_spec.SetField(learningpath.FieldQuestionsCompleted, field.TypeInt, value)
		_node.QuestionsCompleted = value
	}
	if value, ok := lpc.mutation.TotalTimeSpent(); ok {
		_spec.SetField(learningpath.FieldTotalTimeSpent, field.TypeInt, value)
		_node.TotalTimeSpent = value
	}
	if value, ok := lpc.mutation.CompletionLog(); ok {
		_spec.SetField(learningpath.FieldCompletionLog, field.TypeJSON, value)
		_node.CompletionLog = value
	}
	if value, ok := lpc.mutation.Status(); ok {
		_spec.SetField(learningpath.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := lpc.mutation.CreatedAt(); ok {
		_spec.SetField(learningpath.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := lpc.mutation.UpdatedAt(); ok {
		_spec.SetField(learningpath.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// LearningPathCreateBulk is the builder for creating many LearningPath entities in bulk.
type LearningPathCreateBulk struct {
	config
	err      error
	builders []*LearningPathCreate
}

// Save creates the LearningPath entities in the database.
func (lpcb *LearningPathCreateBulk) Save(ctx context.Context) ([]*LearningPath, error) {
	if lpcb.err != nil {
		return nil, lpcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(lpcb.builders))
	nodes := make([]*LearningPath, len(lpcb.builders))
	mutators := make([]Mutator, len(lpcb.builders))
	for i := range lpcb.builders {
		func(i int, root context.Context) {
			builder := lpcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LearningPathMutation)
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
					_, err = mutators[i+1].Mutate(root, lpcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, lpcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, lpcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (lpcb *LearningPathCreateBulk) SaveX(ctx context.Context) []*LearningPath {
	v, err := lpcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (lpcb *LearningPathCreateBulk) Exec(ctx context.Context) error {
	_, err := lpcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (lpcb *LearningPathCreateBulk) ExecX(ctx context.Context) {
	if err := lpcb.Exec(ctx); err != nil {
		panic(err)
	}
}
