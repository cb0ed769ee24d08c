// Code generated by ent, DO NOT EDIT.

package reservationconflict

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the reservationconflict type in the database.
	Label = "reservation_conflict"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "conflict_id"
	// FieldFilePath holds the string denoting the file_path field in the database.
	FieldFilePath = "file_path"
	// FieldConflictingAgent holds the string denoting the conflicting_agent field in the database.
	FieldConflictingAgent = "conflicting_agent"
	// FieldExistingAgent holds the string denoting the existing_agent field in the database.
	FieldExistingAgent = "existing_agent"
	// FieldConflictType holds the string denoting the conflict_type field in the database.
	FieldConflictType = "conflict_type"
	// FieldSeverity holds the string denoting the severity field in the database.
	FieldSeverity = "severity"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldDetectedAt holds the string denoting the detected_at field in the database.
	FieldDetectedAt = "detected_at"
	// FieldResolvedAt holds the string denoting the resolved_at field in the database.
	FieldResolvedAt = "resolved_at"
	// FieldResolutionStrategy holds the string denoting the resolution_strategy field in the database.
	FieldResolutionStrategy = "resolution_strategy"
	// FieldEvidenceRef holds the string denoting the evidence_ref field in the database.
	FieldEvidenceRef = "evidence_ref"
	// Table holds the table name of the reservationconflict in the database.
	Table = "reservation_conflicts"
)

// Columns holds all SQL columns for reservationconflict fields.
var Columns = []string{
	FieldID,
	FieldFilePath,
	FieldConflictingAgent,
	FieldExistingAgent,
	FieldConflictType,
	FieldSeverity,
	FieldStatus,
	FieldDetectedAt,
	FieldResolvedAt,
	FieldResolutionStrategy,
	FieldEvidenceRef,
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
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
)

// Severity defines the type for the "severity" enum field.
type Severity string

// SeverityMedium is the default value of the Severity enum.
const DefaultSeverity = SeverityMedium

// Severity values.
const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

func (s Severity) String() string {
	return string(s)
}

// SeverityValidator is a validator for the "severity" field enum values. It is called by the builders before save.
func SeverityValidator(s Severity) error {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return nil
	default:
		return fmt.Errorf("reservationconflict: invalid enum value for severity field: %q", s)
	}
}

// OrderOption defines the ordering options for the ReservationConflict queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByFilePath orders the results by the file_path field.
func ByFilePath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFilePath, opts...).ToFunc()
}

// ByConflictingAgent orders the results by the conflicting_agent field.
func ByConflictingAgent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConflictingAgent, opts...).ToFunc()
}

// ByExistingAgent orders the results by the existing_agent field.
func ByExistingAgent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExistingAgent, opts...).ToFunc()
}

// ByConflictType orders the results by the conflict_type field.
func ByConflictType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConflictType, opts...).ToFunc()
}

// BySeverity orders the results by the severity field.
func BySeverity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeverity, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByDetectedAt orders the results by the detected_at field.
func ByDetectedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDetectedAt, opts...).ToFunc()
}

// ByResolvedAt orders the results by the resolved_at field.
func ByResolvedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResolvedAt, opts...).ToFunc()
}

// ByResolutionStrategy orders the results by the resolution_strategy field.
func ByResolutionStrategy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResolutionStrategy, opts...).ToFunc()
}

// ByEvidenceRef orders the results by the evidence_ref field.
func ByEvidenceRef(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEvidenceRef, opts...).ToFunc()
}
