// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/rlopes/studypulse/ent/analysissnapshot"
)

// AnalysisSnapshotCreate is the builder for creating a AnalysisSnapshot entity.
type AnalysisSnapshotCreate struct {
	config
	mutation *AnalysisSnapshotMutation
	hooks    []Hook
}

// SetKind sets the "kind" field.
func (_c *AnalysisSnapshotCreate) SetKind(v string) *AnalysisSnapshotCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetTakenAt sets the "taken_at" field.
func (_c *AnalysisSnapshotCreate) SetTakenAt(v time.Time) *AnalysisSnapshotCreate {
	_c.mutation.SetTakenAt(v)
	return _c
}

// SetNillableTakenAt sets the "taken_at" field if the given value is not nil.
func (_c *AnalysisSnapshotCreate) SetNillableTakenAt(v *time.Time) *AnalysisSnapshotCreate {
	if v != nil {
		_c.SetTakenAt(*v)
	}
	return _c
}

// SetData sets the "data" field.
func (_c *AnalysisSnapshotCreate) SetData(v map[string]interface{}) *AnalysisSnapshotCreate {
	_c.mutation.SetData(v)
	return _c
}

// Mutation returns the AnalysisSnapshotMutation object of the builder.
func (_c *AnalysisSnapshotCreate) Mutation() *AnalysisSnapshotMutation {
	return _c.mutation
}

// Save creates the AnalysisSnapshot in the database.
func (_c *AnalysisSnapshotCreate) Save(ctx context.Context) (*AnalysisSnapshot, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AnalysisSnapshotCreate) SaveX(ctx context.Context) *AnalysisSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnalysisSnapshotCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnalysisSnapshotCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AnalysisSnapshotCreate) defaults() {
	if _, ok := _c.mutation.TakenAt(); !ok {
		v := analysissnapshot.DefaultTakenAt()
		_c.mutation.SetTakenAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AnalysisSnapshotCreate) check() error {
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "AnalysisSnapshot.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := analysissnapshot.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "AnalysisSnapshot.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TakenAt(); !ok {
		return &ValidationError{Name: "taken_at", err: errors.New(`ent: missing required field "AnalysisSnapshot.taken_at"`)}
	}
	if _, ok := _c.mutation.Data(); !ok {
		return &ValidationError{Name: "data", err: errors.New(`ent: missing required field "AnalysisSnapshot.data"`)}
	}
	return nil
}

func (_c *AnalysisSnapshotCreate) sqlSave(ctx context.Context) (*AnalysisSnapshot, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AnalysisSnapshotCreate) createSpec() (*AnalysisSnapshot, *sqlgraph.CreateSpec) {
	var (
		_node = &AnalysisSnapshot{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(analysissnapshot.Table, sqlgraph.NewFieldSpec(analysissnapshot.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(analysissnapshot.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.TakenAt(); ok {
		_spec.SetField(analysissnapshot.FieldTakenAt, field.TypeTime, value)
		_node.TakenAt = value
	}
	if value, ok := _c.mutation.Data(); ok {
		_spec.SetField(analysissnapshot.FieldData, field.TypeJSON, value)
		_node.Data = value
	}
	return _node, _spec
}

// AnalysisSnapshotCreateBulk is the builder for creating many AnalysisSnapshot entities in bulk.
type AnalysisSnapshotCreateBulk struct {
	config
	err      error
	builders []*AnalysisSnapshotCreate
}

// Save creates the AnalysisSnapshot entities in the database.
func (_c *AnalysisSnapshotCreateBulk) Save(ctx context.Context) ([]*AnalysisSnapshot, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AnalysisSnapshot, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AnalysisSnapshotMutation)
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
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AnalysisSnapshotCreateBulk) SaveX(ctx context.Context) []*AnalysisSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnalysisSnapshotCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnalysisSnapshotCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
