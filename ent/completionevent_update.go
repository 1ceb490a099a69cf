// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/learnpath/ent/completionevent"
	"github.com/abhisek/learnpath/ent/predicate"
)

// CompletionEventUpdate is the builder for updating CompletionEvent entities.
type CompletionEventUpdate struct {
	config
	hooks    []Hook
	mutation *CompletionEventMutation
}

// Where appends a list predicates to the CompletionEventUpdate builder.
func (ceu *CompletionEventUpdate) Where(ps ...predicate.CompletionEvent) *CompletionEventUpdate {
	ceu.mutation.Where(ps...)
	return ceu
}

// SetPathID sets the "path_id" field.
func (ceu *CompletionEventUpdate) SetPathID(s string) *CompletionEventUpdate {
	ceu.mutation.SetPathID(s)
	return ceu
}

// SetNillablePathID sets the "path_id" field if the given value is not nil.
func (ceu *CompletionEventUpdate) SetNillablePathID(s *string) *CompletionEventUpdate {
	if s != nil {
		ceu.SetPathID(*s)
	}
	return ceu
}

// SetItemID sets the "item_id" field.
func (ceu *CompletionEventUpdate) SetItemID(s string) *CompletionEventUpdate {
	ceu.mutation.SetItemID(s)
	return ceu
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (ceu *CompletionEventUpdate) SetNillableItemID(s *string) *CompletionEventUpdate {
	if s != nil {
		ceu.SetItemID(*s)
	}
	return ceu
}

// SetQuality sets the "quality" field.
func (ceu *CompletionEventUpdate) SetQuality(i int) *CompletionEventUpdate {
	ceu.mutation.ResetQuality()
	ceu.mutation.SetQuality(i)
	return ceu
}

// SetNillableQuality sets the "quality" field if the given value is not nil.
func (ceu *CompletionEventUpdate) SetNillableQuality(i *int) *CompletionEventUpdate {
	if i != nil {
		ceu.SetQuality(*i)
	}
	return ceu
}

// AddQuality adds i to the "quality" field.
func (ceu *CompletionEventUpdate) AddQuality(i int) *CompletionEventUpdate {
	ceu.mutation.AddQuality(i)
	return ceu
}

// SetTimeSpentSecs sets the "time_spent_secs" field.
func (ceu *CompletionEventUpdate) SetTimeSpentSecs(i int) *CompletionEventUpdate {
	ceu.mutation.ResetTimeSpentSecs()
	ceu.mutation.SetTimeSpentSecs(i)
	return ceu
}

// SetNillableTimeSpentSecs sets the "time_spent_secs" field if the given value is not nil.
func (ceu *CompletionEventUpdate) SetNillableTimeSpentSecs(i *int) *CompletionEventUpdate {
	if i != nil {
		ceu.SetTimeSpentSecs(*i)
	}
	return ceu
}

// AddTimeSpentSecs adds i to the "time_spent_secs" field.
func (ceu *CompletionEventUpdate) AddTimeSpentSecs(i int) *CompletionEventUpdate {
	ceu.mutation.AddTimeSpentSecs(i)
	return ceu
}

// Mutation returns the CompletionEventMutation object of the builder.
func (ceu *CompletionEventUpdate) Mutation() *CompletionEventMutation {
	return ceu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (ceu *CompletionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, ceu.sqlSave, ceu.mutation, ceu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (ceu *CompletionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := ceu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (ceu *CompletionEventUpdate) Exec(ctx context.Context) error {
	_, err := ceu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ceu *CompletionEventUpdate) ExecX(ctx context.Context) {
	if err := ceu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ceu *CompletionEventUpdate) check() error {
	if v, ok := ceu.mutation.PathID(); ok {
		if err := completionevent.PathIDValidator(v); err != nil {
			return &ValidationError{Name: "path_id", err: fmt.Errorf(`ent: validator failed for field "CompletionEvent.path_id": %w`, err)}
		}
	}
	if v, ok := ceu.mutation.ItemID(); ok {
		if err := completionevent.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "CompletionEvent.item_id": %w`, err)}
		}
	}
	return nil
}

func (ceu *CompletionEventUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := ceu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(completionevent.Table, completionevent.Columns, sqlgraph.NewFieldSpec(completionevent.FieldID, field.TypeInt))
	if ps := ceu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := ceu.mutation.PathID(); ok {
		_spec.SetField(completionevent.FieldPathID, field.TypeString, value)
	}
	if value, ok := ceu.mutation.ItemID(); ok {
		_spec.SetField(completionevent.FieldItemID, field.TypeString, value)
	}
	if value, ok := ceu.mutation.Quality(); ok {
		_spec.SetField(completionevent.FieldQuality, field.TypeInt, value)
	}
	if value, ok := ceu.mutation.AddedQuality(); ok {
		_spec.AddField(completionevent.FieldQuality, field.TypeInt, value)
	}
	if value, ok := ceu.mutation.TimeSpentSecs(); ok {
		_spec.SetField(completionevent.FieldTimeSpentSecs, field.TypeInt, value)
	}
	if value, ok := ceu.mutation.AddedTimeSpentSecs(); ok {
		_spec.AddField(completionevent.FieldTimeSpentSecs, field.TypeInt, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, ceu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{completionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	ceu.mutation.done = true
	return n, nil
}

// CompletionEventUpdateOne is the builder for updating a single CompletionEvent entity.
type CompletionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CompletionEventMutation
}

// SetPathID sets the "path_id" field.
func (ceuo *CompletionEventUpdateOne) SetPathID(s string) *CompletionEventUpdateOne {
	ceuo.mutation.SetPathID(s)
	return ceuo
}

// SetNillablePathID sets the "path_id" field if the given value is not nil.
func (ceuo *CompletionEventUpdateOne) SetNillablePathID(s *string) *CompletionEventUpdateOne {
	if s != nil {
		ceuo.SetPathID(*s)
	}
	return ceuo
}

// SetItemID sets the "item_id" field.
func (ceuo *CompletionEventUpdateOne) SetItemID(s string) *CompletionEventUpdateOne {
	ceuo.mutation.SetItemID(s)
	return ceuo
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (ceuo *CompletionEventUpdateOne) SetNillableItemID(s *string) *CompletionEventUpdateOne {
	if s != nil {
		ceuo.SetItemID(*s)
	}
	return ceuo
}

// SetQuality sets the "quality" field.
func (ceuo *CompletionEventUpdateOne) SetQuality(i int) *CompletionEventUpdateOne {
	ceuo.mutation.ResetQuality()
	ceuo.mutation.SetQuality(i)
	return ceuo
}

// SetNillableQuality sets the "quality" field if the given value is not nil.
func (ceuo *CompletionEventUpdateOne) SetNillableQuality(i *int) *CompletionEventUpdateOne {
	if i != nil {
		ceuo.SetQuality(*i)
	}
	return ceuo
}

// AddQuality adds i to the "quality" field.
func (ceuo *CompletionEventUpdateOne) AddQuality(i int) *CompletionEventUpdateOne {
	ceuo.mutation.AddQuality(i)
	return ceuo
}

// SetTimeSpentSecs sets the "time_spent_secs" field.
func (ceuo *CompletionEventUpdateOne) SetTimeSpentSecs(i int) *CompletionEventUpdateOne {
	ceuo.mutation.ResetTimeSpentSecs()
	ceuo.mutation.SetTimeSpentSecs(i)
	return ceuo
}

// SetNillableTimeSpentSecs sets the "time_spent_secs" field if the given value is not nil.
func (ceuo *CompletionEventUpdateOne) SetNillableTimeSpentSecs(i *int) *CompletionEventUpdateOne {
	if i != nil {
		ceuo.SetTimeSpentSecs(*i)
	}
	return ceuo
}

// AddTimeSpentSecs adds i to the "time_spent_secs" field.
func (ceuo *CompletionEventUpdateOne) AddTimeSpentSecs(i int) *CompletionEventUpdateOne {
	ceuo.mutation.AddTimeSpentSecs(i)
	return ceuo
}

// Mutation returns the CompletionEventMutation object of the builder.
func (ceuo *CompletionEventUpdateOne) Mutation() *CompletionEventMutation {
	return ceuo.mutation
}

// Where appends a list predicates to the CompletionEventUpdate builder.
func (ceuo *CompletionEventUpdateOne) Where(ps ...predicate.CompletionEvent) *CompletionEventUpdateOne {
	ceuo.mutation.Where(ps...)
	return ceuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (ceuo *CompletionEventUpdateOne) Select(field string, fields ...string) *CompletionEventUpdateOne {
	ceuo.fields = append([]string{field}, fields...)
	return ceuo
}

// Save executes the query and returns the updated CompletionEvent entity.
func (ceuo *CompletionEventUpdateOne) Save(ctx context.Context) (*CompletionEvent, error) {
	return withHooks(ctx, ceuo.sqlSave, ceuo.mutation, ceuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (ceuo *CompletionEventUpdateOne) SaveX(ctx context.Context) *CompletionEvent {
	node, err := ceuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (ceuo *CompletionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := ceuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ceuo *CompletionEventUpdateOne) ExecX(ctx context.Context) {
	if err := ceuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ceuo *CompletionEventUpdateOne) check() error {
	if v, ok := ceuo.mutation.PathID(); ok {
		if err := completionevent.PathIDValidator(v); err != nil {
			return &ValidationError{Name: "path_id", err: fmt.Errorf(`ent: validator failed for field "CompletionEvent.path_id": %w`, err)}
		}
	}
	if v, ok := ceuo.mutation.ItemID(); ok {
		if err := completionevent.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "CompletionEvent.item_id": %w`, err)}
		}
	}
	return nil
}

func (ceuo *CompletionEventUpdateOne) sqlSave(ctx context.Context) (_node *CompletionEvent, err error) {
	if err := ceuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(completionevent.Table, completionevent.Columns, sqlgraph.NewFieldSpec(completionevent.FieldID, field.TypeInt))
	id, ok := ceuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CompletionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := ceuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, completionevent.FieldID)
		for _, f := range fields {
			if !completionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != completionevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := ceuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := ceuo.mutation.PathID(); ok {
		_spec.SetField(completionevent.FieldPathID, field.TypeString, value)
	}
	if value, ok := ceuo.mutation.ItemID(); ok {
		_spec.SetField(completionevent.FieldItemID, field.TypeString, value)
	}
	if value, ok := ceuo.mutation.Quality(); ok {
		_spec.SetField(completionevent.FieldQuality, field.TypeInt, value)
	}
	if value, ok := ceuo.mutation.AddedQuality(); ok {
		_spec.AddField(completionevent.FieldQuality, field.TypeInt, value)
	}
	if value, ok := ceuo.mutation.TimeSpentSecs(); ok {
		_spec.SetField(completionevent.FieldTimeSpentSecs, field.TypeInt, value)
	}
	if value, ok := ceuo.mutation.AddedTimeSpentSecs(); ok {
		_spec.AddField(completionevent.FieldTimeSpentSecs, field.TypeInt, value)
	}
	_node = &CompletionEvent{config: ceuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, ceuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{completionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	ceuo.mutation.done = true
	return _node, nil
}
