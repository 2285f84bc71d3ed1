// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/rlopes/studypulse/ent/analysissnapshot"
	"github.com/rlopes/studypulse/ent/predicate"
)

// AnalysisSnapshotUpdate is the builder for updating AnalysisSnapshot entities.
type AnalysisSnapshotUpdate struct {
	config
	hooks    []Hook
	mutation *AnalysisSnapshotMutation
}

// Where appends a list predicates to the AnalysisSnapshotUpdate builder.
func (_u *AnalysisSnapshotUpdate) Where(ps ...predicate.AnalysisSnapshot) *AnalysisSnapshotUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetKind sets the "kind" field.
func (_u *AnalysisSnapshotUpdate) SetKind(v string) *AnalysisSnapshotUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *AnalysisSnapshotUpdate) SetNillableKind(v *string) *AnalysisSnapshotUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetData sets the "data" field.
func (_u *AnalysisSnapshotUpdate) SetData(v map[string]interface{}) *AnalysisSnapshotUpdate {
	_u.mutation.SetData(v)
	return _u
}

// Mutation returns the AnalysisSnapshotMutation object of the builder.
func (_u *AnalysisSnapshotUpdate) Mutation() *AnalysisSnapshotMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnalysisSnapshotUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnalysisSnapshotUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnalysisSnapshotUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnalysisSnapshotUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnalysisSnapshotUpdate) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := analysissnapshot.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "AnalysisSnapshot.kind": %w`, err)}
		}
	}
	return nil
}

func (_u *AnalysisSnapshotUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(analysissnapshot.Table, analysissnapshot.Columns, sqlgraph.NewFieldSpec(analysissnapshot.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(analysissnapshot.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(analysissnapshot.FieldData, field.TypeJSON, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{analysissnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnalysisSnapshotUpdateOne is the builder for updating a single AnalysisSnapshot entity.
type AnalysisSnapshotUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnalysisSnapshotMutation
}

// SetKind sets the "kind" field.
func (_u *AnalysisSnapshotUpdateOne) SetKind(v string) *AnalysisSnapshotUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *AnalysisSnapshotUpdateOne) SetNillableKind(v *string) *AnalysisSnapshotUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetData sets the "data" field.
func (_u *AnalysisSnapshotUpdateOne) SetData(v map[string]interface{}) *AnalysisSnapshotUpdateOne {
	_u.mutation.SetData(v)
	return _u
}

// Mutation returns the AnalysisSnapshotMutation object of the builder.
func (_u *AnalysisSnapshotUpdateOne) Mutation() *AnalysisSnapshotMutation {
	return _u.mutation
}

// Where appends a list predicates to the AnalysisSnapshotUpdate builder.
func (_u *AnalysisSnapshotUpdateOne) Where(ps ...predicate.AnalysisSnapshot) *AnalysisSnapshotUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnalysisSnapshotUpdateOne) Select(field string, fields ...string) *AnalysisSnapshotUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AnalysisSnapshot entity.
func (_u *AnalysisSnapshotUpdateOne) Save(ctx context.Context) (*AnalysisSnapshot, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnalysisSnapshotUpdateOne) SaveX(ctx context.Context) *AnalysisSnapshot {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnalysisSnapshotUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnalysisSnapshotUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnalysisSnapshotUpdateOne) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := analysissnapshot.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "AnalysisSnapshot.kind": %w`, err)}
		}
	}
	return nil
}

func (_u *AnalysisSnapshotUpdateOne) sqlSave(ctx context.Context) (_node *AnalysisSnapshot, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(analysissnapshot.Table, analysissnapshot.Columns, sqlgraph.NewFieldSpec(analysissnapshot.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnalysisSnapshot.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, analysissnapshot.FieldID)
		for _, f := range fields {
			if !analysissnapshot.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != analysissnapshot.FieldID {
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
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(analysissnapshot.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(analysissnapshot.FieldData, field.TypeJSON, value)
	}
	_node = &AnalysisSnapshot{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{analysissnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
