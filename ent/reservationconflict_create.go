// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/openmaf/maf/ent/reservationconflict"
)

// ReservationConflictCreate is the builder for creating a ReservationConflict entity.
type ReservationConflictCreate struct {
	config
	mutation *ReservationConflictMutation
	hooks    []Hook
}

// SetFilePath sets the "file_path" field.
func (_c *ReservationConflictCreate) SetFilePath(v string) *ReservationConflictCreate {
	_c.mutation.SetFilePath(v)
	return _c
}

// SetConflictingAgent sets the "conflicting_agent" field.
func (_c *ReservationConflictCreate) SetConflictingAgent(v string) *ReservationConflictCreate {
	_c.mutation.SetConflictingAgent(v)
	return _c
}

// SetExistingAgent sets the "existing_agent" field.
func (_c *ReservationConflictCreate) SetExistingAgent(v string) *ReservationConflictCreate {
	_c.mutation.SetExistingAgent(v)
	return _c
}

// SetConflictType sets the "conflict_type" field.
func (_c *ReservationConflictCreate) SetConflictType(v string) *ReservationConflictCreate {
	_c.mutation.SetConflictType(v)
	return _c
}

// SetSeverity sets the "severity" field.
func (_c *ReservationConflictCreate) SetSeverity(v reservationconflict.Severity) *ReservationConflictCreate {
	_c.mutation.SetSeverity(v)
	return _c
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_c *ReservationConflictCreate) SetNillableSeverity(v *reservationconflict.Severity) *ReservationConflictCreate {
	if v != nil {
		_c.SetSeverity(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ReservationConflictCreate) SetStatus(v string) *ReservationConflictCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ReservationConflictCreate) SetNillableStatus(v *string) *ReservationConflictCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetDetectedAt sets the "detected_at" field.
func (_c *ReservationConflictCreate) SetDetectedAt(v int64) *ReservationConflictCreate {
	_c.mutation.SetDetectedAt(v)
	return _c
}

// SetResolvedAt sets the "resolved_at" field.
func (_c *ReservationConflictCreate) SetResolvedAt(v int64) *ReservationConflictCreate {
	_c.mutation.SetResolvedAt(v)
	return _c
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_c *ReservationConflictCreate) SetNillableResolvedAt(v *int64) *ReservationConflictCreate {
	if v != nil {
		_c.SetResolvedAt(*v)
	}
	return _c
}

// SetResolutionStrategy sets the "resolution_strategy" field.
func (_c *ReservationConflictCreate) SetResolutionStrategy(v string) *ReservationConflictCreate {
	_c.mutation.SetResolutionStrategy(v)
	return _c
}

// SetNillableResolutionStrategy sets the "resolution_strategy" field if the given value is not nil.
func (_c *ReservationConflictCreate) SetNillableResolutionStrategy(v *string) *ReservationConflictCreate {
	if v != nil {
		_c.SetResolutionStrategy(*v)
	}
	return _c
}

// SetEvidenceRef sets the "evidence_ref" field.
func (_c *ReservationConflictCreate) SetEvidenceRef(v string) *ReservationConflictCreate {
	_c.mutation.SetEvidenceRef(v)
	return _c
}

// SetNillableEvidenceRef sets the "evidence_ref" field if the given value is not nil.
func (_c *ReservationConflictCreate) SetNillableEvidenceRef(v *string) *ReservationConflictCreate {
	if v != nil {
		_c.SetEvidenceRef(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ReservationConflictCreate) SetID(v string) *ReservationConflictCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ReservationConflictMutation object of the builder.
func (_c *ReservationConflictCreate) Mutation() *ReservationConflictMutation {
	return _c.mutation
}

// Save creates the ReservationConflict in the database.
func (_c *ReservationConflictCreate) Save(ctx context.Context) (*ReservationConflict, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReservationConflictCreate) SaveX(ctx context.Context) *ReservationConflict {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReservationConflictCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReservationConflictCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReservationConflictCreate) defaults() {
	if _, ok := _c.mutation.Severity(); !ok {
		v := reservationconflict.DefaultSeverity
		_c.mutation.SetSeverity(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := reservationconflict.DefaultStatus
		_c.mutation.SetStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReservationConflictCreate) check() error {
	if _, ok := _c.mutation.FilePath(); !ok {
		return &ValidationError{Name: "file_path", err: errors.New(`ent: missing required field "ReservationConflict.file_path"`)}
	}
	if _, ok := _c.mutation.ConflictingAgent(); !ok {
		return &ValidationError{Name: "conflicting_agent", err: errors.New(`ent: missing required field "ReservationConflict.conflicting_agent"`)}
	}
	if _, ok := _c.mutation.ExistingAgent(); !ok {
		return &ValidationError{Name: "existing_agent", err: errors.New(`ent: missing required field "ReservationConflict.existing_agent"`)}
	}
	if _, ok := _c.mutation.ConflictType(); !ok {
		return &ValidationError{Name: "conflict_type", err: errors.New(`ent: missing required field "ReservationConflict.conflict_type"`)}
	}
	if _, ok := _c.mutation.Severity(); !ok {
		return &ValidationError{Name: "severity", err: errors.New(`ent: missing required field "ReservationConflict.severity"`)}
	}
	if v, ok := _c.mutation.Severity(); ok {
		if err := reservationconflict.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "ReservationConflict.severity": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ReservationConflict.status"`)}
	}
	if _, ok := _c.mutation.DetectedAt(); !ok {
		return &ValidationError{Name: "detected_at", err: errors.New(`ent: missing required field "ReservationConflict.detected_at"`)}
	}
	return nil
}

func (_c *ReservationConflictCreate) sqlSave(ctx context.Context) (*ReservationConflict, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected ReservationConflict.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ReservationConflictCreate) createSpec() (*ReservationConflict, *sqlgraph.CreateSpec) {
	var (
		_node = &ReservationConflict{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(reservationconflict.Table, sqlgraph.NewFieldSpec(reservationconflict.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.FilePath(); ok {
		_spec.SetField(reservationconflict.FieldFilePath, field.TypeString, value)
		_node.FilePath = value
	}
	if value, ok := _c.mutation.ConflictingAgent(); ok {
		_spec.SetField(reservationconflict.FieldConflictingAgent, field.TypeString, value)
		_node.ConflictingAgent = value
	}
	if value, ok := _c.mutation.ExistingAgent(); ok {
		_spec.SetField(reservationconflict.FieldExistingAgent, field.TypeString, value)
		_node.ExistingAgent = value
	}
	if value, ok := _c.mutation.ConflictType(); ok {
		_spec.SetField(reservationconflict.FieldConflictType, field.TypeString, value)
		_node.ConflictType = value
	}
	if value, ok := _c.mutation.Severity(); ok {
		_spec.SetField(reservationconflict.FieldSeverity, field.TypeEnum, value)
		_node.Severity = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(reservationconflict.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.DetectedAt(); ok {
		_spec.SetField(reservationconflict.FieldDetectedAt, field.TypeInt64, value)
		_node.DetectedAt = value
	}
	if value, ok := _c.mutation.ResolvedAt(); ok {
		_spec.SetField(reservationconflict.FieldResolvedAt, field.TypeInt64, value)
		_node.ResolvedAt = value
	}
	if value, ok := _c.mutation.ResolutionStrategy(); ok {
		_spec.SetField(reservationconflict.FieldResolutionStrategy, field.TypeString, value)
		_node.ResolutionStrategy = value
	}
	if value, ok := _c.mutation.EvidenceRef(); ok {
		_spec.SetField(reservationconflict.FieldEvidenceRef, field.TypeString, value)
		_node.EvidenceRef = value
	}
	return _node, _spec
}

// ReservationConflictCreateBulk is the builder for creating many ReservationConflict entities in bulk.
type ReservationConflictCreateBulk struct {
	config
	err      error
	builders []*ReservationConflictCreate
}

// Save creates the ReservationConflict entities in the database.
func (_c *ReservationConflictCreateBulk) Save(ctx context.Context) ([]*ReservationConflict, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ReservationConflict, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReservationConflictMutation)
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
func (_c *ReservationConflictCreateBulk) SaveX(ctx context.Context) []*ReservationConflict {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReservationConflictCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReservationConflictCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
