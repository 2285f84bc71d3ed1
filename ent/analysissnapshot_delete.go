// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/rlopes/studypulse/ent/analysissnapshot"
	"github.com/rlopes/studypulse/ent/predicate"
)

// AnalysisSnapshotDelete is the builder for deleting a AnalysisSnapshot entity.
type AnalysisSnapshotDelete struct {
	config
	hooks    []Hook
	mutation *AnalysisSnapshotMutation
}

// Where appends a list predicates to the AnalysisSnapshotDelete builder.
func (_d *AnalysisSnapshotDelete) Where(ps ...predicate.AnalysisSnapshot) *AnalysisSnapshotDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *AnalysisSnapshotDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AnalysisSnapshotDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *AnalysisSnapshotDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(analysissnapshot.Table, sqlgraph.NewFieldSpec(analysissnapshot.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// AnalysisSnapshotDeleteOne is the builder for deleting a single AnalysisSnapshot entity.
type AnalysisSnapshotDeleteOne struct {
	_d *AnalysisSnapshotDelete
}

// Where appends a list predicates to the AnalysisSnapshotDelete builder.
func (_d *AnalysisSnapshotDeleteOne) Where(ps ...predicate.AnalysisSnapshot) *AnalysisSnapshotDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *AnalysisSnapshotDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{analysissnapshot.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AnalysisSnapshotDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
