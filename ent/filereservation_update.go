// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/openmaf/maf/ent/filereservation"
	"github.com/openmaf/maf/ent/predicate"
)

// FileReservationUpdate is the builder for updating FileReservation entities.
type FileReservationUpdate struct {
	config
	hooks    []Hook
	mutation *FileReservationMutation
}

// Where appends a list predicates to the FileReservationUpdate builder.
func (_u *FileReservationUpdate) Where(ps ...predicate.FileReservation) *FileReservationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *FileReservationUpdate) SetAgentID(v string) *FileReservationUpdate {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *FileReservationUpdate) SetNillableAgentID(v *string) *FileReservationUpdate {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (_u *FileReservationUpdate) SetLeaseExpiresAt(v int64) *FileReservationUpdate {
	_u.mutation.ResetLeaseExpiresAt()
	_u.mutation.SetLeaseExpiresAt(v)
	return _u
}

// SetNillableLeaseExpiresAt sets the "lease_expires_at" field if the given value is not nil.
func (_u *FileReservationUpdate) SetNillableLeaseExpiresAt(v *int64) *FileReservationUpdate {
	if v != nil {
		_u.SetLeaseExpiresAt(*v)
	}
	return _u
}

// AddLeaseExpiresAt adds value to the "lease_expires_at" field.
func (_u *FileReservationUpdate) AddLeaseExpiresAt(v int64) *FileReservationUpdate {
	_u.mutation.AddLeaseExpiresAt(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *FileReservationUpdate) SetStatus(v filereservation.Status) *FileReservationUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *FileReservationUpdate) SetNillableStatus(v *filereservation.Status) *FileReservationUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetLeaseReason sets the "lease_reason" field.
func (_u *FileReservationUpdate) SetLeaseReason(v string) *FileReservationUpdate {
	_u.mutation.SetLeaseReason(v)
	return _u
}

// SetNillableLeaseReason sets the "lease_reason" field if the given value is not nil.
func (_u *FileReservationUpdate) SetNillableLeaseReason(v *string) *FileReservationUpdate {
	if v != nil {
		_u.SetLeaseReason(*v)
	}
	return _u
}

// ClearLeaseReason clears the value of the "lease_reason" field.
func (_u *FileReservationUpdate) ClearLeaseReason() *FileReservationUpdate {
	_u.mutation.ClearLeaseReason()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *FileReservationUpdate) SetMetadata(v map[string]interface{}) *FileReservationUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *FileReservationUpdate) ClearMetadata() *FileReservationUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the FileReservationMutation object of the builder.
func (_u *FileReservationUpdate) Mutation() *FileReservationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FileReservationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FileReservationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FileReservationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FileReservationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FileReservationUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := filereservation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "FileReservation.status": %w`, err)}
		}
	}
	return nil
}

func (_u *FileReservationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(filereservation.Table, filereservation.Columns, sqlgraph.NewFieldSpec(filereservation.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(filereservation.FieldAgentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LeaseExpiresAt(); ok {
		_spec.SetField(filereservation.FieldLeaseExpiresAt, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLeaseExpiresAt(); ok {
		_spec.AddField(filereservation.FieldLeaseExpiresAt, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(filereservation.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LeaseReason(); ok {
		_spec.SetField(filereservation.FieldLeaseReason, field.TypeString, value)
	}
	if _u.mutation.LeaseReasonCleared() {
		_spec.ClearField(filereservation.FieldLeaseReason, field.TypeString)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(filereservation.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(filereservation.FieldMetadata, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{filereservation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FileReservationUpdateOne is the builder for updating a single FileReservation entity.
type FileReservationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FileReservationMutation
}

// SetAgentID sets the "agent_id" field.
func (_u *FileReservationUpdateOne) SetAgentID(v string) *FileReservationUpdateOne {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *FileReservationUpdateOne) SetNillableAgentID(v *string) *FileReservationUpdateOne {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (_u *FileReservationUpdateOne) SetLeaseExpiresAt(v int64) *FileReservationUpdateOne {
	_u.mutation.ResetLeaseExpiresAt()
	_u.mutation.SetLeaseExpiresAt(v)
	return _u
}

// SetNillableLeaseExpiresAt sets the "lease_expires_at" field if the given value is not nil.
func (_u *FileReservationUpdateOne) SetNillableLeaseExpiresAt(v *int64) *FileReservationUpdateOne {
	if v != nil {
		_u.SetLeaseExpiresAt(*v)
	}
	return _u
}

// AddLeaseExpiresAt adds value to the "lease_expires_at" field.
func (_u *FileReservationUpdateOne) AddLeaseExpiresAt(v int64) *FileReservationUpdateOne {
	_u.mutation.AddLeaseExpiresAt(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *FileReservationUpdateOne) SetStatus(v filereservation.Status) *FileReservationUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *FileReservationUpdateOne) SetNillableStatus(v *filereservation.Status) *FileReservationUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetLeaseReason sets the "lease_reason" field.
func (_u *FileReservationUpdateOne) SetLeaseReason(v string) *FileReservationUpdateOne {
	_u.mutation.SetLeaseReason(v)
	return _u
}

// SetNillableLeaseReason sets the "lease_reason" field if the given value is not nil.
func (_u *FileReservationUpdateOne) SetNillableLeaseReason(v *string) *FileReservationUpdateOne {
	if v != nil {
		_u.SetLeaseReason(*v)
	}
	return _u
}

// ClearLeaseReason clears the value of the "lease_reason" field.
func (_u *FileReservationUpdateOne) ClearLeaseReason() *FileReservationUpdateOne {
	_u.mutation.ClearLeaseReason()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *FileReservationUpdateOne) SetMetadata(v map[string]interface{}) *FileReservationUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *FileReservationUpdateOne) ClearMetadata() *FileReservationUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the FileReservationMutation object of the builder.
func (_u *FileReservationUpdateOne) Mutation() *FileReservationMutation {
	return _u.mutation
}

// Where appends a list predicates to the FileReservationUpdate builder.
func (_u *FileReservationUpdateOne) Where(ps ...predicate.FileReservation) *FileReservationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FileReservationUpdateOne) Select(field string, fields ...string) *FileReservationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FileReservation entity.
func (_u *FileReservationUpdateOne) Save(ctx context.Context) (*FileReservation, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FileReservationUpdateOne) SaveX(ctx context.Context) *FileReservation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FileReservationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FileReservationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FileReservationUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := filereservation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "FileReservation.status": %w`, err)}
		}
	}
	return nil
}

func (_u *FileReservationUpdateOne) sqlSave(ctx context.Context) (_node *FileReservation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(filereservation.Table, filereservation.Columns, sqlgraph.NewFieldSpec(filereservation.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FileReservation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, filereservation.FieldID)
		for _, f := range fields {
			if !filereservation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != filereservation.FieldID {
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
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(filereservation.FieldAgentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LeaseExpiresAt(); ok {
		_spec.SetField(filereservation.FieldLeaseExpiresAt, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLeaseExpiresAt(); ok {
		_spec.AddField(filereservation.FieldLeaseExpiresAt, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(filereservation.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LeaseReason(); ok {
		_spec.SetField(filereservation.FieldLeaseReason, field.TypeString, value)
	}
	if _u.mutation.LeaseReasonCleared() {
		_spec.ClearField(filereservation.FieldLeaseReason, field.TypeString)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(filereservation.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(filereservation.FieldMetadata, field.TypeJSON)
	}
	_node = &FileReservation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{filereservation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
