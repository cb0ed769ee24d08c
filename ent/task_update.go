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
	"github.com/openmaf/maf/ent/task"
)

// TaskUpdate is the builder for updating Task entities.
type TaskUpdate struct {
	config
	hooks    []Hook
	mutation *TaskMutation
}

// Where appends a list predicates to the TaskUpdate builder.
func (_u *TaskUpdate) Where(ps ...predicate.Task) *TaskUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetState sets the "state" field.
func (_u *TaskUpdate) SetState(v task.State) *TaskUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableState(v *task.State) *TaskUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *TaskUpdate) SetPriority(v int) *TaskUpdate {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *TaskUpdate) SetNillablePriority(v *int) *TaskUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *TaskUpdate) AddPriority(v int) *TaskUpdate {
	_u.mutation.AddPriority(v)
	return _u
}

// SetPayload sets the "payload" field.
func (_u *TaskUpdate) SetPayload(v map[string]interface{}) *TaskUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *TaskUpdate) ClearPayload() *TaskUpdate {
	_u.mutation.ClearPayload()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TaskUpdate) SetUpdatedAt(v int64) *TaskUpdate {
	_u.mutation.ResetUpdatedAt()
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableUpdatedAt(v *int64) *TaskUpdate {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// AddUpdatedAt adds value to the "updated_at" field.
func (_u *TaskUpdate) AddUpdatedAt(v int64) *TaskUpdate {
	_u.mutation.AddUpdatedAt(v)
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *TaskUpdate) SetAttempts(v int) *TaskUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableAttempts(v *int) *TaskUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *TaskUpdate) AddAttempts(v int) *TaskUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetMaxAttempts sets the "max_attempts" field.
func (_u *TaskUpdate) SetMaxAttempts(v int) *TaskUpdate {
	_u.mutation.ResetMaxAttempts()
	_u.mutation.SetMaxAttempts(v)
	return _u
}

// SetNillableMaxAttempts sets the "max_attempts" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableMaxAttempts(v *int) *TaskUpdate {
	if v != nil {
		_u.SetMaxAttempts(*v)
	}
	return _u
}

// AddMaxAttempts adds value to the "max_attempts" field.
func (_u *TaskUpdate) AddMaxAttempts(v int) *TaskUpdate {
	_u.mutation.AddMaxAttempts(v)
	return _u
}

// SetTokenBudget sets the "token_budget" field.
func (_u *TaskUpdate) SetTokenBudget(v int64) *TaskUpdate {
	_u.mutation.ResetTokenBudget()
	_u.mutation.SetTokenBudget(v)
	return _u
}

// SetNillableTokenBudget sets the "token_budget" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableTokenBudget(v *int64) *TaskUpdate {
	if v != nil {
		_u.SetTokenBudget(*v)
	}
	return _u
}

// AddTokenBudget adds value to the "token_budget" field.
func (_u *TaskUpdate) AddTokenBudget(v int64) *TaskUpdate {
	_u.mutation.AddTokenBudget(v)
	return _u
}

// ClearTokenBudget clears the value of the "token_budget" field.
func (_u *TaskUpdate) ClearTokenBudget() *TaskUpdate {
	_u.mutation.ClearTokenBudget()
	return _u
}

// SetCostBudgetCents sets the "cost_budget_cents" field.
func (_u *TaskUpdate) SetCostBudgetCents(v int64) *TaskUpdate {
	_u.mutation.ResetCostBudgetCents()
	_u.mutation.SetCostBudgetCents(v)
	return _u
}

// SetNillableCostBudgetCents sets the "cost_budget_cents" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableCostBudgetCents(v *int64) *TaskUpdate {
	if v != nil {
		_u.SetCostBudgetCents(*v)
	}
	return _u
}

// AddCostBudgetCents adds value to the "cost_budget_cents" field.
func (_u *TaskUpdate) AddCostBudgetCents(v int64) *TaskUpdate {
	_u.mutation.AddCostBudgetCents(v)
	return _u
}

// ClearCostBudgetCents clears the value of the "cost_budget_cents" field.
func (_u *TaskUpdate) ClearCostBudgetCents() *TaskUpdate {
	_u.mutation.ClearCostBudgetCents()
	return _u
}

// SetPolicyLabel sets the "policy_label" field.
func (_u *TaskUpdate) SetPolicyLabel(v string) *TaskUpdate {
	_u.mutation.SetPolicyLabel(v)
	return _u
}

// SetNillablePolicyLabel sets the "policy_label" field if the given value is not nil.
func (_u *TaskUpdate) SetNillablePolicyLabel(v *string) *TaskUpdate {
	if v != nil {
		_u.SetPolicyLabel(*v)
	}
	return _u
}

// ClearPolicyLabel clears the value of the "policy_label" field.
func (_u *TaskUpdate) ClearPolicyLabel() *TaskUpdate {
	_u.mutation.ClearPolicyLabel()
	return _u
}

// Mutation returns the TaskMutation object of the builder.
func (_u *TaskUpdate) Mutation() *TaskMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TaskUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TaskUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskUpdate) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := task.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Task.state": %w`, err)}
		}
	}
	return nil
}

func (_u *TaskUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(task.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(task.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(task.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(task.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(task.FieldPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(task.FieldUpdatedAt, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedUpdatedAt(); ok {
		_spec.AddField(task.FieldUpdatedAt, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(task.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(task.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxAttempts(); ok {
		_spec.SetField(task.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxAttempts(); ok {
		_spec.AddField(task.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TokenBudget(); ok {
		_spec.SetField(task.FieldTokenBudget, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTokenBudget(); ok {
		_spec.AddField(task.FieldTokenBudget, field.TypeInt64, value)
	}
	if _u.mutation.TokenBudgetCleared() {
		_spec.ClearField(task.FieldTokenBudget, field.TypeInt64)
	}
	if value, ok := _u.mutation.CostBudgetCents(); ok {
		_spec.SetField(task.FieldCostBudgetCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCostBudgetCents(); ok {
		_spec.AddField(task.FieldCostBudgetCents, field.TypeInt64, value)
	}
	if _u.mutation.CostBudgetCentsCleared() {
		_spec.ClearField(task.FieldCostBudgetCents, field.TypeInt64)
	}
	if value, ok := _u.mutation.PolicyLabel(); ok {
		_spec.SetField(task.FieldPolicyLabel, field.TypeString, value)
	}
	if _u.mutation.PolicyLabelCleared() {
		_spec.ClearField(task.FieldPolicyLabel, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TaskUpdateOne is the builder for updating a single Task entity.
type TaskUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TaskMutation
}

// SetState sets the "state" field.
func (_u *TaskUpdateOne) SetState(v task.State) *TaskUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableState(v *task.State) *TaskUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *TaskUpdateOne) SetPriority(v int) *TaskUpdateOne {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillablePriority(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *TaskUpdateOne) AddPriority(v int) *TaskUpdateOne {
	_u.mutation.AddPriority(v)
	return _u
}

// SetPayload sets the "payload" field.
func (_u *TaskUpdateOne) SetPayload(v map[string]interface{}) *TaskUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *TaskUpdateOne) ClearPayload() *TaskUpdateOne {
	_u.mutation.ClearPayload()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TaskUpdateOne) SetUpdatedAt(v int64) *TaskUpdateOne {
	_u.mutation.ResetUpdatedAt()
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableUpdatedAt(v *int64) *TaskUpdateOne {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// AddUpdatedAt adds value to the "updated_at" field.
func (_u *TaskUpdateOne) AddUpdatedAt(v int64) *TaskUpdateOne {
	_u.mutation.AddUpdatedAt(v)
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *TaskUpdateOne) SetAttempts(v int) *TaskUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableAttempts(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *TaskUpdateOne) AddAttempts(v int) *TaskUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetMaxAttempts sets the "max_attempts" field.
func (_u *TaskUpdateOne) SetMaxAttempts(v int) *TaskUpdateOne {
	_u.mutation.ResetMaxAttempts()
	_u.mutation.SetMaxAttempts(v)
	return _u
}

// SetNillableMaxAttempts sets the "max_attempts" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableMaxAttempts(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetMaxAttempts(*v)
	}
	return _u
}

// AddMaxAttempts adds value to the "max_attempts" field.
func (_u *TaskUpdateOne) AddMaxAttempts(v int) *TaskUpdateOne {
	_u.mutation.AddMaxAttempts(v)
	return _u
}

// SetTokenBudget sets the "token_budget" field.
func (_u *TaskUpdateOne) SetTokenBudget(v int64) *TaskUpdateOne {
	_u.mutation.ResetTokenBudget()
	_u.mutation.SetTokenBudget(v)
	return _u
}

// SetNillableTokenBudget sets the "token_budget" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableTokenBudget(v *int64) *TaskUpdateOne {
	if v != nil {
		_u.SetTokenBudget(*v)
	}
	return _u
}

// AddTokenBudget adds value to the "token_budget" field.
func (_u *TaskUpdateOne) AddTokenBudget(v int64) *TaskUpdateOne {
	_u.mutation.AddTokenBudget(v)
	return _u
}

// ClearTokenBudget clears the value of the "token_budget" field.
func (_u *TaskUpdateOne) ClearTokenBudget() *TaskUpdateOne {
	_u.mutation.ClearTokenBudget()
	return _u
}

// SetCostBudgetCents sets the "cost_budget_cents" field.
func (_u *TaskUpdateOne) SetCostBudgetCents(v int64) *TaskUpdateOne {
	_u.mutation.ResetCostBudgetCents()
	_u.mutation.SetCostBudgetCents(v)
	return _u
}

// SetNillableCostBudgetCents sets the "cost_budget_cents" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableCostBudgetCents(v *int64) *TaskUpdateOne {
	if v != nil {
		_u.SetCostBudgetCents(*v)
	}
	return _u
}

// AddCostBudgetCents adds value to the "cost_budget_cents" field.
func (_u *TaskUpdateOne) AddCostBudgetCents(v int64) *TaskUpdateOne {
	_u.mutation.AddCostBudgetCents(v)
	return _u
}

// ClearCostBudgetCents clears the value of the "cost_budget_cents" field.
func (_u *TaskUpdateOne) ClearCostBudgetCents() *TaskUpdateOne {
	_u.mutation.ClearCostBudgetCents()
	return _u
}

// SetPolicyLabel sets the "policy_label" field.
func (_u *TaskUpdateOne) SetPolicyLabel(v string) *TaskUpdateOne {
	_u.mutation.SetPolicyLabel(v)
	return _u
}

// SetNillablePolicyLabel sets the "policy_label" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillablePolicyLabel(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetPolicyLabel(*v)
	}
	return _u
}

// ClearPolicyLabel clears the value of the "policy_label" field.
func (_u *TaskUpdateOne) ClearPolicyLabel() *TaskUpdateOne {
	_u.mutation.ClearPolicyLabel()
	return _u
}

// Mutation returns the TaskMutation object of the builder.
func (_u *TaskUpdateOne) Mutation() *TaskMutation {
	return _u.mutation
}

// Where appends a list predicates to the TaskUpdate builder.
func (_u *TaskUpdateOne) Where(ps ...predicate.Task) *TaskUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TaskUpdateOne) Select(field string, fields ...string) *TaskUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Task entity.
func (_u *TaskUpdateOne) Save(ctx context.Context) (*Task, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskUpdateOne) SaveX(ctx context.Context) *Task {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TaskUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskUpdateOne) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := task.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Task.state": %w`, err)}
		}
	}
	return nil
}

func (_u *TaskUpdateOne) sqlSave(ctx context.Context) (_node *Task, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Task.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, task.FieldID)
		for _, f := range fields {
			if !task.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != task.FieldID {
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
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(task.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(task.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(task.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(task.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(task.FieldPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(task.FieldUpdatedAt, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedUpdatedAt(); ok {
		_spec.AddField(task.FieldUpdatedAt, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(task.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(task.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxAttempts(); ok {
		_spec.SetField(task.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxAttempts(); ok {
		_spec.AddField(task.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TokenBudget(); ok {
		_spec.SetField(task.FieldTokenBudget, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTokenBudget(); ok {
		_spec.AddField(task.FieldTokenBudget, field.TypeInt64, value)
	}
	if _u.mutation.TokenBudgetCleared() {
		_spec.ClearField(task.FieldTokenBudget, field.TypeInt64)
	}
	if value, ok := _u.mutation.CostBudgetCents(); ok {
		_spec.SetField(task.FieldCostBudgetCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCostBudgetCents(); ok {
		_spec.AddField(task.FieldCostBudgetCents, field.TypeInt64, value)
	}
	if _u.mutation.CostBudgetCentsCleared() {
		_spec.ClearField(task.FieldCostBudgetCents, field.TypeInt64)
	}
	if value, ok := _u.mutation.PolicyLabel(); ok {
		_spec.SetField(task.FieldPolicyLabel, field.TypeString, value)
	}
	if _u.mutation.PolicyLabelCleared() {
		_spec.ClearField(task.FieldPolicyLabel, field.TypeString)
	}
	_node = &Task{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
