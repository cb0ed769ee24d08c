// Code generated by ent, DO NOT EDIT.

package task

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the task type in the database.
	Label = "task"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "task_id"
	// FieldState holds the string denoting the state field in the database.
	FieldState = "state"
	// FieldPriority holds the string denoting the priority field in the database.
	FieldPriority = "priority"
	// FieldPayload holds the string denoting the payload field in the database.
	FieldPayload = "payload"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldAttempts holds the string denoting the attempts field in the database.
	FieldAttempts = "attempts"
	// FieldMaxAttempts holds the string denoting the max_attempts field in the database.
	FieldMaxAttempts = "max_attempts"
	// FieldTokenBudget holds the string denoting the token_budget field in the database.
	FieldTokenBudget = "token_budget"
	// FieldCostBudgetCents holds the string denoting the cost_budget_cents field in the database.
	FieldCostBudgetCents = "cost_budget_cents"
	// FieldPolicyLabel holds the string denoting the policy_label field in the database.
	FieldPolicyLabel = "policy_label"
	// Table holds the table name of the task in the database.
	Table = "tasks"
)

// Columns holds all SQL columns for task fields.
var Columns = []string{
	FieldID,
	FieldState,
	FieldPriority,
	FieldPayload,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldAttempts,
	FieldMaxAttempts,
	FieldTokenBudget,
	FieldCostBudgetCents,
	FieldPolicyLabel,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultPriority holds the default value on creation for the "priority" field.
	DefaultPriority int
	// DefaultAttempts holds the default value on creation for the "attempts" field.
	DefaultAttempts int
	// DefaultMaxAttempts holds the default value on creation for the "max_attempts" field.
	DefaultMaxAttempts int
	// DefaultTokenBudget holds the default value on creation for the "token_budget" field.
	DefaultTokenBudget int64
	// DefaultCostBudgetCents holds the default value on creation for the "cost_budget_cents" field.
	DefaultCostBudgetCents int64
)

// State defines the type for the "state" enum field.
type State string

// StateREADY is the default value of the State enum.
const DefaultState = StateREADY

// State values.
const (
	StateREADY     State = "READY"
	StateLEASED    State = "LEASED"
	StateRUNNING   State = "RUNNING"
	StateVERIFYING State = "VERIFYING"
	StateCOMMITTED State = "COMMITTED"
	StateROLLBACK  State = "ROLLBACK"
	StateDONE      State = "DONE"
	StateDEAD      State = "DEAD"
)

func (s State) String() string {
	return string(s)
}

// StateValidator is a validator for the "state" field enum values. It is called by the builders before save.
func StateValidator(s State) error {
	switch s {
	case StateREADY, StateLEASED, StateRUNNING, StateVERIFYING, StateCOMMITTED, StateROLLBACK, StateDONE, StateDEAD:
		return nil
	default:
		return fmt.Errorf("task: invalid enum value for state field: %q", s)
	}
}

// OrderOption defines the ordering options for the Task queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByState orders the results by the state field.
func ByState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldState, opts...).ToFunc()
}

// ByPriority orders the results by the priority field.
func ByPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriority, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByAttempts orders the results by the attempts field.
func ByAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttempts, opts...).ToFunc()
}

// ByMaxAttempts orders the results by the max_attempts field.
func ByMaxAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxAttempts, opts...).ToFunc()
}

// ByTokenBudget orders the results by the token_budget field.
func ByTokenBudget(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTokenBudget, opts...).ToFunc()
}

// ByCostBudgetCents orders the results by the cost_budget_cents field.
func ByCostBudgetCents(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCostBudgetCents, opts...).ToFunc()
}

// ByPolicyLabel orders the results by the policy_label field.
func ByPolicyLabel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPolicyLabel, opts...).ToFunc()
}
