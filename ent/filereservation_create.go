// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/openmaf/maf/ent/filereservation"
)

// FileReservationCreate is the builder for creating a FileReservation entity.
type FileReservationCreate struct {
	config
	mutation *FileReservationMutation
	hooks    []Hook
}

// SetFilePath sets the "file_path" field.
func (_c *FileReservationCreate) SetFilePath(v string) *FileReservationCreate {
	_c.mutation.SetFilePath(v)
	return _c
}

// SetAgentID sets the "agent_id" field.
func (_c *FileReservationCreate) SetAgentID(v string) *FileReservationCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (_c *FileReservationCreate) SetLeaseExpiresAt(v int64) *FileReservationCreate {
	_c.mutation.SetLeaseExpiresAt(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *FileReservationCreate) SetStatus(v filereservation.Status) *FileReservationCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *FileReservationCreate) SetNillableStatus(v *filereservation.Status) *FileReservationCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetLeaseReason sets the "lease_reason" field.
func (_c *FileReservationCreate) SetLeaseReason(v string) *FileReservationCreate {
	_c.mutation.SetLeaseReason(v)
	return _c
}

// SetNillableLeaseReason sets the "lease_reason" field if the given value is not nil.
func (_c *FileReservationCreate) SetNillableLeaseReason(v *string) *FileReservationCreate {
	if v != nil {
		_c.SetLeaseReason(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *FileReservationCreate) SetMetadata(v map[string]interface{}) *FileReservationCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *FileReservationCreate) SetCreatedAt(v int64) *FileReservationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetID sets the "id" field.
func (_c *FileReservationCreate) SetID(v string) *FileReservationCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the FileReservationMutation object of the builder.
func (_c *FileReservationCreate) Mutation() *FileReservationMutation {
	return _c.mutation
}

// Save creates the FileReservation in the database.
func (_c *FileReservationCreate) Save(ctx context.Context) (*FileReservation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FileReservationCreate) SaveX(ctx context.Context) *FileReservation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FileReservationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FileReservationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FileReservationCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := filereservation.DefaultStatus
		_c.mutation.SetStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FileReservationCreate) check() error {
	if _, ok := _c.mutation.FilePath(); !ok {
		return &ValidationError{Name: "file_path", err: errors.New(`ent: missing required field "FileReservation.file_path"`)}
	}
	if _, ok := _c.mutation.AgentID(); !ok {
		return &ValidationError{Name: "agent_id", err: errors.New(`ent: missing required field "FileReservation.agent_id"`)}
	}
	if _, ok := _c.mutation.LeaseExpiresAt(); !ok {
		return &ValidationError{Name: "lease_expires_at", err: errors.New(`ent: missing required field "FileReservation.lease_expires_at"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "FileReservation.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := filereservation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "FileReservation.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "FileReservation.created_at"`)}
	}
	return nil
}

func (_c *FileReservationCreate) sqlSave(ctx context.Context) (*FileReservation, error) {
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
			return nil, fmt.Errorf("unexpected FileReservation.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *FileReservationCreate) createSpec() (*FileReservation, *sqlgraph.CreateSpec) {
	var (
		_node = &FileReservation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(filereservation.Table, sqlgraph.NewFieldSpec(filereservation.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.FilePath(); ok {
		_spec.SetField(filereservation.FieldFilePath, field.TypeString, value)
		_node.FilePath = value
	}
	if value, ok := _c.mutation.AgentID(); ok {
		_spec.SetField(filereservation.FieldAgentID, field.TypeString, value)
		_node.AgentID = value
	}
	if value, ok := _c.mutation.LeaseExpiresAt(); ok {
		_spec.SetField(filereservation.FieldLeaseExpiresAt, field.TypeInt64, value)
		_node.LeaseExpiresAt = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(filereservation.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.LeaseReason(); ok {
		_spec.SetField(filereservation.FieldLeaseReason, field.TypeString, value)
		_node.LeaseReason = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(filereservation.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(filereservation.FieldCreatedAt, field.TypeInt64, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// FileReservationCreateBulk is the builder for creating many FileReservation entities in bulk.
type FileReservationCreateBulk struct {
	config
	err      error
	builders []*FileReservationCreate
}

// Save creates the FileReservation entities in the database.
func (_c *FileReservationCreateBulk) Save(ctx context.Context) ([]*FileReservation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FileReservation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FileReservationMutation)
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
func (_c *FileReservationCreateBulk) SaveX(ctx context.Context) []*FileReservation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FileReservationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FileReservationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
