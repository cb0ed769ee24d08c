// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/openmaf/maf/ent/mailmessage"
)

// MailMessageCreate is the builder for creating a MailMessage entity.
type MailMessageCreate struct {
	config
	mutation *MailMessageMutation
	hooks    []Hook
}

// SetChannel sets the "channel" field.
func (_c *MailMessageCreate) SetChannel(v string) *MailMessageCreate {
	_c.mutation.SetChannel(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *MailMessageCreate) SetKind(v string) *MailMessageCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetFromAgent sets the "from_agent" field.
func (_c *MailMessageCreate) SetFromAgent(v string) *MailMessageCreate {
	_c.mutation.SetFromAgent(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MailMessageCreate) SetCreatedAt(v int64) *MailMessageCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetPayload sets the "payload" field.
func (_c *MailMessageCreate) SetPayload(v map[string]interface{}) *MailMessageCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetRead sets the "read" field.
func (_c *MailMessageCreate) SetRead(v bool) *MailMessageCreate {
	_c.mutation.SetRead(v)
	return _c
}

// SetNillableRead sets the "read" field if the given value is not nil.
func (_c *MailMessageCreate) SetNillableRead(v *bool) *MailMessageCreate {
	if v != nil {
		_c.SetRead(*v)
	}
	return _c
}

// Mutation returns the MailMessageMutation object of the builder.
func (_c *MailMessageCreate) Mutation() *MailMessageMutation {
	return _c.mutation
}

// Save creates the MailMessage in the database.
func (_c *MailMessageCreate) Save(ctx context.Context) (*MailMessage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MailMessageCreate) SaveX(ctx context.Context) *MailMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MailMessageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MailMessageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MailMessageCreate) defaults() {
	if _, ok := _c.mutation.Read(); !ok {
		v := mailmessage.DefaultRead
		_c.mutation.SetRead(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MailMessageCreate) check() error {
	if _, ok := _c.mutation.Channel(); !ok {
		return &ValidationError{Name: "channel", err: errors.New(`ent: missing required field "MailMessage.channel"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "MailMessage.kind"`)}
	}
	if _, ok := _c.mutation.FromAgent(); !ok {
		return &ValidationError{Name: "from_agent", err: errors.New(`ent: missing required field "MailMessage.from_agent"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "MailMessage.created_at"`)}
	}
	if _, ok := _c.mutation.Read(); !ok {
		return &ValidationError{Name: "read", err: errors.New(`ent: missing required field "MailMessage.read"`)}
	}
	return nil
}

func (_c *MailMessageCreate) sqlSave(ctx context.Context) (*MailMessage, error) {
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

func (_c *MailMessageCreate) createSpec() (*MailMessage, *sqlgraph.CreateSpec) {
	var (
		_node = &MailMessage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(mailmessage.Table, sqlgraph.NewFieldSpec(mailmessage.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Channel(); ok {
		_spec.SetField(mailmessage.FieldChannel, field.TypeString, value)
		_node.Channel = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(mailmessage.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.FromAgent(); ok {
		_spec.SetField(mailmessage.FieldFromAgent, field.TypeString, value)
		_node.FromAgent = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(mailmessage.FieldCreatedAt, field.TypeInt64, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(mailmessage.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.Read(); ok {
		_spec.SetField(mailmessage.FieldRead, field.TypeBool, value)
		_node.Read = value
	}
	return _node, _spec
}

// MailMessageCreateBulk is the builder for creating many MailMessage entities in bulk.
type MailMessageCreateBulk struct {
	config
	err      error
	builders []*MailMessageCreate
}

// Save creates the MailMessage entities in the database.
func (_c *MailMessageCreateBulk) Save(ctx context.Context) ([]*MailMessage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MailMessage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MailMessageMutation)
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
func (_c *MailMessageCreateBulk) SaveX(ctx context.Context) []*MailMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MailMessageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MailMessageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
