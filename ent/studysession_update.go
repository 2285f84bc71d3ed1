// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/rlopes/studypulse/ent/predicate"
	"github.com/rlopes/studypulse/ent/studysession"
)

// StudySessionUpdate is the builder for updating StudySession entities.
type StudySessionUpdate struct {
	config
	hooks    []Hook
	mutation *StudySessionMutation
}

// Where appends a list predicates to the StudySessionUpdate builder.
func (_u *StudySessionUpdate) Where(ps ...predicate.StudySession) *StudySessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDurationMin sets the "duration_min" field.
func (_u *StudySessionUpdate) SetDurationMin(v int) *StudySessionUpdate {
	_u.mutation.ResetDurationMin()
	_u.mutation.SetDurationMin(v)
	return _u
}

// SetNillableDurationMin sets the "duration_min" field if the given value is not nil.
func (_u *StudySessionUpdate) SetNillableDurationMin(v *int) *StudySessionUpdate {
	if v != nil {
		_u.SetDurationMin(*v)
	}
	return _u
}

// AddDurationMin adds value to the "duration_min" field.
func (_u *StudySessionUpdate) AddDurationMin(v int) *StudySessionUpdate {
	_u.mutation.AddDurationMin(v)
	return _u
}

// SetFocus sets the "focus" field.
func (_u *StudySessionUpdate) SetFocus(v int) *StudySessionUpdate {
	_u.mutation.ResetFocus()
	_u.mutation.SetFocus(v)
	return _u
}

// SetNillableFocus sets the "focus" field if the given value is not nil.
func (_u *StudySessionUpdate) SetNillableFocus(v *int) *StudySessionUpdate {
	if v != nil {
		_u.SetFocus(*v)
	}
	return _u
}

// AddFocus adds value to the "focus" field.
func (_u *StudySessionUpdate) AddFocus(v int) *StudySessionUpdate {
	_u.mutation.AddFocus(v)
	return _u
}

// ClearFocus clears the value of the "focus" field.
func (_u *StudySessionUpdate) ClearFocus() *StudySessionUpdate {
	_u.mutation.ClearFocus()
	return _u
}

// SetSubjectID sets the "subject_id" field.
func (_u *StudySessionUpdate) SetSubjectID(v int) *StudySessionUpdate {
	_u.mutation.ResetSubjectID()
	_u.mutation.SetSubjectID(v)
	return _u
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_u *StudySessionUpdate) SetNillableSubjectID(v *int) *StudySessionUpdate {
	if v != nil {
		_u.SetSubjectID(*v)
	}
	return _u
}

// AddSubjectID adds value to the "subject_id" field.
func (_u *StudySessionUpdate) AddSubjectID(v int) *StudySessionUpdate {
	_u.mutation.AddSubjectID(v)
	return _u
}

// ClearSubjectID clears the value of the "subject_id" field.
func (_u *StudySessionUpdate) ClearSubjectID() *StudySessionUpdate {
	_u.mutation.ClearSubjectID()
	return _u
}

// SetMethod sets the "method" field.
func (_u *StudySessionUpdate) SetMethod(v string) *StudySessionUpdate {
	_u.mutation.SetMethod(v)
	return _u
}

// SetNillableMethod sets the "method" field if the given value is not nil.
func (_u *StudySessionUpdate) SetNillableMethod(v *string) *StudySessionUpdate {
	if v != nil {
		_u.SetMethod(*v)
	}
	return _u
}

// ClearMethod clears the value of the "method" field.
func (_u *StudySessionUpdate) ClearMethod() *StudySessionUpdate {
	_u.mutation.ClearMethod()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *StudySessionUpdate) SetNotes(v string) *StudySessionUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *StudySessionUpdate) SetNillableNotes(v *string) *StudySessionUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *StudySessionUpdate) ClearNotes() *StudySessionUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// Mutation returns the StudySessionMutation object of the builder.
func (_u *StudySessionUpdate) Mutation() *StudySessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StudySessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StudySessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StudySessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StudySessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StudySessionUpdate) check() error {
	if v, ok := _u.mutation.DurationMin(); ok {
		if err := studysession.DurationMinValidator(v); err != nil {
			return &ValidationError{Name: "duration_min", err: fmt.Errorf(`ent: validator failed for field "StudySession.duration_min": %w`, err)}
		}
	}
	return nil
}

func (_u *StudySessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(studysession.Table, studysession.Columns, sqlgraph.NewFieldSpec(studysession.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DurationMin(); ok {
		_spec.SetField(studysession.FieldDurationMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMin(); ok {
		_spec.AddField(studysession.FieldDurationMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Focus(); ok {
		_spec.SetField(studysession.FieldFocus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFocus(); ok {
		_spec.AddField(studysession.FieldFocus, field.TypeInt, value)
	}
	if _u.mutation.FocusCleared() {
		_spec.ClearField(studysession.FieldFocus, field.TypeInt)
	}
	if value, ok := _u.mutation.SubjectID(); ok {
		_spec.SetField(studysession.FieldSubjectID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSubjectID(); ok {
		_spec.AddField(studysession.FieldSubjectID, field.TypeInt, value)
	}
	if _u.mutation.SubjectIDCleared() {
		_spec.ClearField(studysession.FieldSubjectID, field.TypeInt)
	}
	if value, ok := _u.mutation.Method(); ok {
		_spec.SetField(studysession.FieldMethod, field.TypeString, value)
	}
	if _u.mutation.MethodCleared() {
		_spec.ClearField(studysession.FieldMethod, field.TypeString)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(studysession.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(studysession.FieldNotes, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{studysession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StudySessionUpdateOne is the builder for updating a single StudySession entity.
type StudySessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StudySessionMutation
}

// SetDurationMin sets the "duration_min" field.
func (_u *StudySessionUpdateOne) SetDurationMin(v int) *StudySessionUpdateOne {
	_u.mutation.ResetDurationMin()
	_u.mutation.SetDurationMin(v)
	return _u
}

// SetNillableDurationMin sets the "duration_min" field if the given value is not nil.
func (_u *StudySessionUpdateOne) SetNillableDurationMin(v *int) *StudySessionUpdateOne {
	if v != nil {
		_u.SetDurationMin(*v)
	}
	return _u
}

// AddDurationMin adds value to the "duration_min" field.
func (_u *StudySessionUpdateOne) AddDurationMin(v int) *StudySessionUpdateOne {
	_u.mutation.AddDurationMin(v)
	return _u
}

// SetFocus sets the "focus" field.
func (_u *StudySessionUpdateOne) SetFocus(v int) *StudySessionUpdateOne {
	_u.mutation.ResetFocus()
	_u.mutation.SetFocus(v)
	return _u
}

// SetNillableFocus sets the "focus" field if the given value is not nil.
func (_u *StudySessionUpdateOne) SetNillableFocus(v *int) *StudySessionUpdateOne {
	if v != nil {
		_u.SetFocus(*v)
	}
	return _u
}

// AddFocus adds value to the "focus" field.
func (_u *StudySessionUpdateOne) AddFocus(v int) *StudySessionUpdateOne {
	_u.mutation.AddFocus(v)
	return _u
}

// ClearFocus clears the value of the "focus" field.
func (_u *StudySessionUpdateOne) ClearFocus() *StudySessionUpdateOne {
	_u.mutation.ClearFocus()
	return _u
}

// SetSubjectID sets the "subject_id" field.
func (_u *StudySessionUpdateOne) SetSubjectID(v int) *StudySessionUpdateOne {
	_u.mutation.ResetSubjectID()
	_u.mutation.SetSubjectID(v)
	return _u
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_u *StudySessionUpdateOne) SetNillableSubjectID(v *int) *StudySessionUpdateOne {
	if v != nil {
		_u.SetSubjectID(*v)
	}
	return _u
}

// AddSubjectID adds value to the "subject_id" field.
func (_u *StudySessionUpdateOne) AddSubjectID(v int) *StudySessionUpdateOne {
	_u.mutation.AddSubjectID(v)
	return _u
}

// ClearSubjectID clears the value of the "subject_id" field.
func (_u *StudySessionUpdateOne) ClearSubjectID() *StudySessionUpdateOne {
	_u.mutation.ClearSubjectID()
	return _u
}

// SetMethod sets the "method" field.
func (_u *StudySessionUpdateOne) SetMethod(v string) *StudySessionUpdateOne {
	_u.mutation.SetMethod(v)
	return _u
}

// SetNillableMethod sets the "method" field if the given value is not nil.
func (_u *StudySessionUpdateOne) SetNillableMethod(v *string) *StudySessionUpdateOne {
	if v != nil {
		_u.SetMethod(*v)
	}
	return _u
}

// ClearMethod clears the value of the "method" field.
func (_u *StudySessionUpdateOne) ClearMethod() *StudySessionUpdateOne {
	_u.mutation.ClearMethod()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *StudySessionUpdateOne) SetNotes(v string) *StudySessionUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *StudySessionUpdateOne) SetNillableNotes(v *string) *StudySessionUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *StudySessionUpdateOne) ClearNotes() *StudySessionUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// Mutation returns the StudySessionMutation object of the builder.
func (_u *StudySessionUpdateOne) Mutation() *StudySessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the StudySessionUpdate builder.
func (_u *StudySessionUpdateOne) Where(ps ...predicate.StudySession) *StudySessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StudySessionUpdateOne) Select(field string, fields ...string) *StudySessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StudySession entity.
func (_u *StudySessionUpdateOne) Save(ctx context.Context) (*StudySession, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StudySessionUpdateOne) SaveX(ctx context.Context) *StudySession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StudySessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StudySessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StudySessionUpdateOne) check() error {
	if v, ok := _u.mutation.DurationMin(); ok {
		if err := studysession.DurationMinValidator(v); err != nil {
			return &ValidationError{Name: "duration_min", err: fmt.Errorf(`ent: validator failed for field "StudySession.duration_min": %w`, err)}
		}
	}
	return nil
}

func (_u *StudySessionUpdateOne) sqlSave(ctx context.Context) (_node *StudySession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(studysession.Table, studysession.Columns, sqlgraph.NewFieldSpec(studysession.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StudySession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, studysession.FieldID)
		for _, f := range fields {
			if !studysession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != studysession.FieldID {
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
	if value, ok := _u.mutation.DurationMin(); ok {
		_spec.SetField(studysession.FieldDurationMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMin(); ok {
		_spec.AddField(studysession.FieldDurationMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Focus(); ok {
		_spec.SetField(studysession.FieldFocus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFocus(); ok {
		_spec.AddField(studysession.FieldFocus, field.TypeInt, value)
	}
	if _u.mutation.FocusCleared() {
		_spec.ClearField(studysession.FieldFocus, field.TypeInt)
	}
	if value, ok := _u.mutation.SubjectID(); ok {
		_spec.SetField(studysession.FieldSubjectID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSubjectID(); ok {
		_spec.AddField(studysession.FieldSubjectID, field.TypeInt, value)
	}
	if _u.mutation.SubjectIDCleared() {
		_spec.ClearField(studysession.FieldSubjectID, field.TypeInt)
	}
	if value, ok := _u.mutation.Method(); ok {
		_spec.SetField(studysession.FieldMethod, field.TypeString, value)
	}
	if _u.mutation.MethodCleared() {
		_spec.ClearField(studysession.FieldMethod, field.TypeString)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(studysession.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(studysession.FieldNotes, field.TypeString)
	}
	_node = &StudySession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{studysession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
