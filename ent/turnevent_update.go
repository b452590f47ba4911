// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/chilltutor/ent/predicate"
	"github.com/abhisek/chilltutor/ent/turnevent"
)

// TurnEventUpdate is the builder for updating TurnEvent entities.
type TurnEventUpdate struct {
	config
	hooks    []Hook
	mutation *TurnEventMutation
}

// Where appends a list predicates to the TurnEventUpdate builder.
func (_u *TurnEventUpdate) Where(ps ...predicate.TurnEvent) *TurnEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *TurnEventUpdate) SetSessionID(v string) *TurnEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableSessionID(v *string) *TurnEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetFromState sets the "from_state" field.
func (_u *TurnEventUpdate) SetFromState(v string) *TurnEventUpdate {
	_u.mutation.SetFromState(v)
	return _u
}

// SetNillableFromState sets the "from_state" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableFromState(v *string) *TurnEventUpdate {
	if v != nil {
		_u.SetFromState(*v)
	}
	return _u
}

// SetToState sets the "to_state" field.
func (_u *TurnEventUpdate) SetToState(v string) *TurnEventUpdate {
	_u.mutation.SetToState(v)
	return _u
}

// SetNillableToState sets the "to_state" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableToState(v *string) *TurnEventUpdate {
	if v != nil {
		_u.SetToState(*v)
	}
	return _u
}

// SetCardID sets the "card_id" field.
func (_u *TurnEventUpdate) SetCardID(v int) *TurnEventUpdate {
	_u.mutation.ResetCardID()
	_u.mutation.SetCardID(v)
	return _u
}

// SetNillableCardID sets the "card_id" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableCardID(v *int) *TurnEventUpdate {
	if v != nil {
		_u.SetCardID(*v)
	}
	return _u
}

// AddCardID adds value to the "card_id" field.
func (_u *TurnEventUpdate) AddCardID(v int) *TurnEventUpdate {
	_u.mutation.AddCardID(v)
	return _u
}

// SetAttempt sets the "attempt" field.
func (_u *TurnEventUpdate) SetAttempt(v int) *TurnEventUpdate {
	_u.mutation.ResetAttempt()
	_u.mutation.SetAttempt(v)
	return _u
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableAttempt(v *int) *TurnEventUpdate {
	if v != nil {
		_u.SetAttempt(*v)
	}
	return _u
}

// AddAttempt adds value to the "attempt" field.
func (_u *TurnEventUpdate) AddAttempt(v int) *TurnEventUpdate {
	_u.mutation.AddAttempt(v)
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *TurnEventUpdate) SetAnswer(v string) *TurnEventUpdate {
	_u.mutation.SetAnswer(v)
	return _u
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableAnswer(v *string) *TurnEventUpdate {
	if v != nil {
		_u.SetAnswer(*v)
	}
	return _u
}

// SetResult sets the "result" field.
func (_u *TurnEventUpdate) SetResult(v string) *TurnEventUpdate {
	_u.mutation.SetResult(v)
	return _u
}

// SetNillableResult sets the "result" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableResult(v *string) *TurnEventUpdate {
	if v != nil {
		_u.SetResult(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *TurnEventUpdate) SetScore(v float64) *TurnEventUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableScore(v *float64) *TurnEventUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *TurnEventUpdate) AddScore(v float64) *TurnEventUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetCardCompleted sets the "card_completed" field.
func (_u *TurnEventUpdate) SetCardCompleted(v bool) *TurnEventUpdate {
	_u.mutation.SetCardCompleted(v)
	return _u
}

// SetNillableCardCompleted sets the "card_completed" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableCardCompleted(v *bool) *TurnEventUpdate {
	if v != nil {
		_u.SetCardCompleted(*v)
	}
	return _u
}

// Mutation returns the TurnEventMutation object of the builder.
func (_u *TurnEventUpdate) Mutation() *TurnEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TurnEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TurnEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TurnEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TurnEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TurnEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := turnevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "TurnEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FromState(); ok {
		if err := turnevent.FromStateValidator(v); err != nil {
			return &ValidationError{Name: "from_state", err: fmt.Errorf(`ent: validator failed for field "TurnEvent.from_state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ToState(); ok {
		if err := turnevent.ToStateValidator(v); err != nil {
			return &ValidationError{Name: "to_state", err: fmt.Errorf(`ent: validator failed for field "TurnEvent.to_state": %w`, err)}
		}
	}
	return nil
}

func (_u *TurnEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(turnevent.Table, turnevent.Columns, sqlgraph.NewFieldSpec(turnevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(turnevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.FromState(); ok {
		_spec.SetField(turnevent.FieldFromState, field.TypeString, value)
	}
	if value, ok := _u.mutation.ToState(); ok {
		_spec.SetField(turnevent.FieldToState, field.TypeString, value)
	}
	if value, ok := _u.mutation.CardID(); ok {
		_spec.SetField(turnevent.FieldCardID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCardID(); ok {
		_spec.AddField(turnevent.FieldCardID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Attempt(); ok {
		_spec.SetField(turnevent.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempt(); ok {
		_spec.AddField(turnevent.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(turnevent.FieldAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(turnevent.FieldResult, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(turnevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(turnevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CardCompleted(); ok {
		_spec.SetField(turnevent.FieldCardCompleted, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{turnevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TurnEventUpdateOne is the builder for updating a single TurnEvent entity.
type TurnEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TurnEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *TurnEventUpdateOne) SetSessionID(v string) *TurnEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableSessionID(v *string) *TurnEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetFromState sets the "from_state" field.
func (_u *TurnEventUpdateOne) SetFromState(v string) *TurnEventUpdateOne {
	_u.mutation.SetFromState(v)
	return _u
}

// SetNillableFromState sets the "from_state" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableFromState(v *string) *TurnEventUpdateOne {
	if v != nil {
		_u.SetFromState(*v)
	}
	return _u
}

// SetToState sets the "to_state" field.
func (_u *TurnEventUpdateOne) SetToState(v string) *TurnEventUpdateOne {
	_u.mutation.SetToState(v)
	return _u
}

// SetNillableToState sets the "to_state" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableToState(v *string) *TurnEventUpdateOne {
	if v != nil {
		_u.SetToState(*v)
	}
	return _u
}

// SetCardID sets the "card_id" field.
func (_u *TurnEventUpdateOne) SetCardID(v int) *TurnEventUpdateOne {
	_u.mutation.ResetCardID()
	_u.mutation.SetCardID(v)
	return _u
}

// SetNillableCardID sets the "card_id" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableCardID(v *int) *TurnEventUpdateOne {
	if v != nil {
		_u.SetCardID(*v)
	}
	return _u
}

// AddCardID adds value to the "card_id" field.
func (_u *TurnEventUpdateOne) AddCardID(v int) *TurnEventUpdateOne {
	_u.mutation.AddCardID(v)
	return _u
}

// SetAttempt sets the "attempt" field.
func (_u *TurnEventUpdateOne) SetAttempt(v int) *TurnEventUpdateOne {
	_u.mutation.ResetAttempt()
	_u.mutation.SetAttempt(v)
	return _u
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableAttempt(v *int) *TurnEventUpdateOne {
	if v != nil {
		_u.SetAttempt(*v)
	}
	return _u
}

// AddAttempt adds value to the "attempt" field.
func (_u *TurnEventUpdateOne) AddAttempt(v int) *TurnEventUpdateOne {
	_u.mutation.AddAttempt(v)
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *TurnEventUpdateOne) SetAnswer(v string) *TurnEventUpdateOne {
	_u.mutation.SetAnswer(v)
	return _u
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableAnswer(v *string) *TurnEventUpdateOne {
	if v != nil {
		_u.SetAnswer(*v)
	}
	return _u
}

// SetResult sets the "result" field.
func (_u *TurnEventUpdateOne) SetResult(v string) *TurnEventUpdateOne {
	_u.mutation.SetResult(v)
	return _u
}

// SetNillableResult sets the "result" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableResult(v *string) *TurnEventUpdateOne {
	if v != nil {
		_u.SetResult(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *TurnEventUpdateOne) SetScore(v float64) *TurnEventUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableScore(v *float64) *TurnEventUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *TurnEventUpdateOne) AddScore(v float64) *TurnEventUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetCardCompleted sets the "card_completed" field.
func (_u *TurnEventUpdateOne) SetCardCompleted(v bool) *TurnEventUpdateOne {
	_u.mutation.SetCardCompleted(v)
	return _u
}

// SetNillableCardCompleted sets the "card_completed" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableCardCompleted(v *bool) *TurnEventUpdateOne {
	if v != nil {
		_u.SetCardCompleted(*v)
	}
	return _u
}

// Mutation returns the TurnEventMutation object of the builder.
func (_u *TurnEventUpdateOne) Mutation() *TurnEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the TurnEventUpdate builder.
func (_u *TurnEventUpdateOne) Where(ps ...predicate.TurnEvent) *TurnEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TurnEventUpdateOne) Select(field string, fields ...string) *TurnEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TurnEvent entity.
func (_u *TurnEventUpdateOne) Save(ctx context.Context) (*TurnEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TurnEventUpdateOne) SaveX(ctx context.Context) *TurnEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TurnEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TurnEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TurnEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := turnevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "TurnEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FromState(); ok {
		if err := turnevent.FromStateValidator(v); err != nil {
			return &ValidationError{Name: "from_state", err: fmt.Errorf(`ent: validator failed for field "TurnEvent.from_state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ToState(); ok {
		if err := turnevent.ToStateValidator(v); err != nil {
			return &ValidationError{Name: "to_state", err: fmt.Errorf(`ent: validator failed for field "TurnEvent.to_state": %w`, err)}
		}
	}
	return nil
}

func (_u *TurnEventUpdateOne) sqlSave(ctx context.Context) (_node *TurnEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(turnevent.Table, turnevent.Columns, sqlgraph.NewFieldSpec(turnevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TurnEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, turnevent.FieldID)
		for _, f := range fields {
			if !turnevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != turnevent.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(turnevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.FromState(); ok {
		_spec.SetField(turnevent.FieldFromState, field.TypeString, value)
	}
	if value, ok := _u.mutation.ToState(); ok {
		_spec.SetField(turnevent.FieldToState, field.TypeString, value)
	}
	if value, ok := _u.mutation.CardID(); ok {
		_spec.SetField(turnevent.FieldCardID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCardID(); ok {
		_spec.AddField(turnevent.FieldCardID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Attempt(); ok {
		_spec.SetField(turnevent.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempt(); ok {
		_spec.AddField(turnevent.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(turnevent.FieldAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(turnevent.FieldResult, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(turnevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(turnevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CardCompleted(); ok {
		_spec.SetField(turnevent.FieldCardCompleted, field.TypeBool, value)
	}
	_node = &TurnEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{turnevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
