// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/openmaf/maf/ent/predicate"
	"github.com/openmaf/maf/ent/reservationconflict"
)

// ReservationConflictUpdate is the builder for updating ReservationConflict entities.
type ReservationConflictUpdate struct {
	config
	hooks    []Hook
	mutation *ReservationConflictMutation
}

// Where appends a list predicates to the ReservationConflictUpdate builder.
func (_u *ReservationConflictUpdate) Where(ps ...predicate.ReservationConflict) *ReservationConflictUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *ReservationConflictUpdate) SetSeverity(v reservationconflict.Severity) *ReservationConflictUpdate {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *ReservationConflictUpdate) SetNillableSeverity(v *reservationconflict.Severity) *ReservationConflictUpdate {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ReservationConflictUpdate) SetStatus(v string) *ReservationConflictUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ReservationConflictUpdate) SetNillableStatus(v *string) *ReservationConflictUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *ReservationConflictUpdate) SetResolvedAt(v int64) *ReservationConflictUpdate {
	_u.mutation.ResetResolvedAt()
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *ReservationConflictUpdate) SetNillableResolvedAt(v *int64) *ReservationConflictUpdate {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// AddResolvedAt adds value to the "resolved_at" field.
func (_u *ReservationConflictUpdate) AddResolvedAt(v int64) *ReservationConflictUpdate {
	_u.mutation.AddResolvedAt(v)
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *ReservationConflictUpdate) ClearResolvedAt() *ReservationConflictUpdate {
	_u.mutation.ClearResolvedAt()
	return _u
}

// SetResolutionStrategy sets the "resolution_strategy" field.
func (_u *ReservationConflictUpdate) SetResolutionStrategy(v string) *ReservationConflictUpdate {
	_u.mutation.SetResolutionStrategy(v)
	return _u
}

// SetNillableResolutionStrategy sets the "resolution_strategy" field if the given value is not nil.
func (_u *ReservationConflictUpdate) SetNillableResolutionStrategy(v *string) *ReservationConflictUpdate {
	if v != nil {
		_u.SetResolutionStrategy(*v)
	}
	return _u
}

// ClearResolutionStrategy clears the value of the "resolution_strategy" field.
func (_u *ReservationConflictUpdate) ClearResolutionStrategy() *ReservationConflictUpdate {
	_u.mutation.ClearResolutionStrategy()
	return _u
}

// SetEvidenceRef sets the "evidence_ref" field.
func (_u *ReservationConflictUpdate) SetEvidenceRef(v string) *ReservationConflictUpdate {
	_u.mutation.SetEvidenceRef(v)
	return _u
}

// SetNillableEvidenceRef sets the "evidence_ref" field if the given value is not nil.
func (_u *ReservationConflictUpdate) SetNillableEvidenceRef(v *string) *ReservationConflictUpdate {
	if v != nil {
		_u.SetEvidenceRef(*v)
	}
	return _u
}

// ClearEvidenceRef clears the value of the "evidence_ref" field.
func (_u *ReservationConflictUpdate) ClearEvidenceRef() *ReservationConflictUpdate {
	_u.mutation.ClearEvidenceRef()
	return _u
}

// Mutation returns the ReservationConflictMutation object of the builder.
func (_u *ReservationConflictUpdate) Mutation() *ReservationConflictMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReservationConflictUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReservationConflictUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReservationConflictUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReservationConflictUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReservationConflictUpdate) check() error {
	if v, ok := _u.mutation.Severity(); ok {
		if err := reservationconflict.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "ReservationConflict.severity": %w`, err)}
		}
	}
	return nil
}

func (_u *ReservationConflictUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reservationconflict.Table, reservationconflict.Columns, sqlgraph.NewFieldSpec(reservationconflict.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(reservationconflict.FieldSeverity, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(reservationconflict.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(reservationconflict.FieldResolvedAt, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedResolvedAt(); ok {
		_spec.AddField(reservationconflict.FieldResolvedAt, field.TypeInt64, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(reservationconflict.FieldResolvedAt, field.TypeInt64)
	}
	if value, ok := _u.mutation.ResolutionStrategy(); ok {
		_spec.SetField(reservationconflict.FieldResolutionStrategy, field.TypeString, value)
	}
	if _u.mutation.ResolutionStrategyCleared() {
		_spec.ClearField(reservationconflict.FieldResolutionStrategy, field.TypeString)
	}
	if value, ok := _u.mutation.EvidenceRef(); ok {
		_spec.SetField(reservationconflict.FieldEvidenceRef, field.TypeString, value)
	}
	if _u.mutation.EvidenceRefCleared() {
		_spec.ClearField(reservationconflict.FieldEvidenceRef, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reservationconflict.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReservationConflictUpdateOne is the builder for updating a single ReservationConflict entity.
type ReservationConflictUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReservationConflictMutation
}

// SetSeverity sets the "severity" field.
func (_u *ReservationConflictUpdateOne) SetSeverity(v reservationconflict.Severity) *ReservationConflictUpdateOne {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *ReservationConflictUpdateOne) SetNillableSeverity(v *reservationconflict.Severity) *ReservationConflictUpdateOne {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ReservationConflictUpdateOne) SetStatus(v string) *ReservationConflictUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ReservationConflictUpdateOne) SetNillableStatus(v *string) *ReservationConflictUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *ReservationConflictUpdateOne) SetResolvedAt(v int64) *ReservationConflictUpdateOne {
	_u.mutation.ResetResolvedAt()
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *ReservationConflictUpdateOne) SetNillableResolvedAt(v *int64) *ReservationConflictUpdateOne {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// AddResolvedAt adds value to the "resolved_at" field.
func (_u *ReservationConflictUpdateOne) AddResolvedAt(v int64) *ReservationConflictUpdateOne {
	_u.mutation.AddResolvedAt(v)
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *ReservationConflictUpdateOne) ClearResolvedAt() *ReservationConflictUpdateOne {
	_u.mutation.ClearResolvedAt()
	return _u
}

// SetResolutionStrategy sets the "resolution_strategy" field.
func (_u *ReservationConflictUpdateOne) SetResolutionStrategy(v string) *ReservationConflictUpdateOne {
	_u.mutation.SetResolutionStrategy(v)
	return _u
}

// SetNillableResolutionStrategy sets the "resolution_strategy" field if the given value is not nil.
func (_u *ReservationConflictUpdateOne) SetNillableResolutionStrategy(v *string) *ReservationConflictUpdateOne {
	if v != nil {
		_u.SetResolutionStrategy(*v)
	}
	return _u
}

// ClearResolutionStrategy clears the value of the "resolution_strategy" field.
func (_u *ReservationConflictUpdateOne) ClearResolutionStrategy() *ReservationConflictUpdateOne {
	_u.mutation.ClearResolutionStrategy()
	return _u
}

// SetEvidenceRef sets the "evidence_ref" field.
func (_u *ReservationConflictUpdateOne) SetEvidenceRef(v string) *ReservationConflictUpdateOne {
	_u.mutation.SetEvidenceRef(v)
	return _u
}

// SetNillableEvidenceRef sets the "evidence_ref" field if the given value is not nil.
func (_u *ReservationConflictUpdateOne) SetNillableEvidenceRef(v *string) *ReservationConflictUpdateOne {
	if v != nil {
		_u.SetEvidenceRef(*v)
	}
	return _u
}

// ClearEvidenceRef clears the value of the "evidence_ref" field.
func (_u *ReservationConflictUpdateOne) ClearEvidenceRef() *ReservationConflictUpdateOne {
	_u.mutation.ClearEvidenceRef()
	return _u
}

// Mutation returns the ReservationConflictMutation object of the builder.
func (_u *ReservationConflictUpdateOne) Mutation() *ReservationConflictMutation {
	return _u.mutation
}

// Where appends a list predicates to the ReservationConflictUpdate builder.
func (_u *ReservationConflictUpdateOne) Where(ps ...predicate.ReservationConflict) *ReservationConflictUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReservationConflictUpdateOne) Select(field string, fields ...string) *ReservationConflictUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ReservationConflict entity.
func (_u *ReservationConflictUpdateOne) Save(ctx context.Context) (*ReservationConflict, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReservationConflictUpdateOne) SaveX(ctx context.Context) *ReservationConflict {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReservationConflictUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReservationConflictUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReservationConflictUpdateOne) check() error {
	if v, ok := _u.mutation.Severity(); ok {
		if err := reservationconflict.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "ReservationConflict.severity": %w`, err)}
		}
	}
	return nil
}

func (_u *ReservationConflictUpdateOne) sqlSave(ctx context.Context) (_node *ReservationConflict, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reservationconflict.Table, reservationconflict.Columns, sqlgraph.NewFieldSpec(reservationconflict.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReservationConflict.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reservationconflict.FieldID)
		for _, f := range fields {
			if !reservationconflict.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != reservationconflict.FieldID {
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
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(reservationconflict.FieldSeverity, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(reservationconflict.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(reservationconflict.FieldResolvedAt, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedResolvedAt(); ok {
		_spec.AddField(reservationconflict.FieldResolvedAt, field.TypeInt64, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(reservationconflict.FieldResolvedAt, field.TypeInt64)
	}
	if value, ok := _u.mutation.ResolutionStrategy(); ok {
		_spec.SetField(reservationconflict.FieldResolutionStrategy, field.TypeString, value)
	}
	if _u.mutation.ResolutionStrategyCleared() {
		_spec.ClearField(reservationconflict.FieldResolutionStrategy, field.TypeString)
	}
	if value, ok := _u.mutation.EvidenceRef(); ok {
		_spec.SetField(reservationconflict.FieldEvidenceRef, field.TypeString, value)
	}
	if _u.mutation.EvidenceRefCleared() {
		_spec.ClearField(reservationconflict.FieldEvidenceRef, field.TypeString)
	}
	_node = &ReservationConflict{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reservationconflict.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
