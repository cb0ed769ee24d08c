// Code generated by ent, DO NOT EDIT.

package evidence

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the evidence type in the database.
	Label = "evidence"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTaskID holds the string denoting the task_id field in the database.
	FieldTaskID = "task_id"
	// FieldAttempt holds the string denoting the attempt field in the database.
	FieldAttempt = "attempt"
	// FieldVerifier holds the string denoting the verifier field in the database.
	FieldVerifier = "verifier"
	// FieldResult holds the string denoting the result field in the database.
	FieldResult = "result"
	// FieldDetails holds the string denoting the details field in the database.
	FieldDetails = "details"
	// FieldRecordedAt holds the string denoting the recorded_at field in the database.
	FieldRecordedAt = "recorded_at"
	// Table holds the table name of the evidence in the database.
	Table = "evidence"
)

// Columns holds all SQL columns for evidence fields.
var Columns = []string{
	FieldID,
	FieldTaskID,
	FieldAttempt,
	FieldVerifier,
	FieldResult,
	FieldDetails,
	FieldRecordedAt,
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

// Result defines the type for the "result" enum field.
type Result string

// Result values.
const (
	ResultPASS Result = "PASS"
	ResultFAIL Result = "FAIL"
)

func (r Result) String() string {
	return string(r)
}

// ResultValidator is a validator for the "result" field enum values. It is called by the builders before save.
func ResultValidator(r Result) error {
	switch r {
	case ResultPASS, ResultFAIL:
		return nil
	default:
		return fmt.Errorf("evidence: invalid enum value for result field: %q", r)
	}
}

// OrderOption defines the ordering options for the Evidence queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTaskID orders the results by the task_id field.
func ByTaskID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskID, opts...).ToFunc()
}

// ByAttempt orders the results by the attempt field.
func ByAttempt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttempt, opts...).ToFunc()
}

// ByVerifier orders the results by the verifier field.
func ByVerifier(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVerifier, opts...).ToFunc()
}

// ByResult orders the results by the result field.
func ByResult(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResult, opts...).ToFunc()
}

// ByRecordedAt orders the results by the recorded_at field.
func ByRecordedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecordedAt, opts...).ToFunc()
}
