// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/openmaf/maf/ent/reservationconflict"
)

// ReservationConflict is the model entity for the ReservationConflict schema.
type ReservationConflict struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// FilePath holds the value of the "file_path" field.
	FilePath string `json:"file_path,omitempty"`
	// ConflictingAgent holds the value of the "conflicting_agent" field.
	ConflictingAgent string `json:"conflicting_agent,omitempty"`
	// ExistingAgent holds the value of the "existing_agent" field.
	ExistingAgent string `json:"existing_agent,omitempty"`
	// claim | pre_commit
	ConflictType string `json:"conflict_type,omitempty"`
	// Severity holds the value of the "severity" field.
	Severity reservationconflict.Severity `json:"severity,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// DetectedAt holds the value of the "detected_at" field.
	DetectedAt int64 `json:"detected_at,omitempty"`
	// ResolvedAt holds the value of the "resolved_at" field.
	ResolvedAt int64 `json:"resolved_at,omitempty"`
	// ResolutionStrategy holds the value of the "resolution_strategy" field.
	ResolutionStrategy string `json:"resolution_strategy,omitempty"`
	// EvidenceRef holds the value of the "evidence_ref" field.
	EvidenceRef  string `json:"evidence_ref,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ReservationConflict) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case reservationconflict.FieldDetectedAt, reservationconflict.FieldResolvedAt:
			values[i] = new(sql.NullInt64)
		case reservationconflict.FieldID, reservationconflict.FieldFilePath, reservationconflict.FieldConflictingAgent, reservationconflict.FieldExistingAgent, reservationconflict.FieldConflictType, reservationconflict.FieldSeverity, reservationconflict.FieldStatus, reservationconflict.FieldResolutionStrategy, reservationconflict.FieldEvidenceRef:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ReservationConflict fields.
func (_m *ReservationConflict) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case reservationconflict.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case reservationconflict.FieldFilePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_path", values[i])
			} else if value.Valid {
				_m.FilePath = value.String
			}
		case reservationconflict.FieldConflictingAgent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field conflicting_agent", values[i])
			} else if value.Valid {
				_m.ConflictingAgent = value.String
			}
		case reservationconflict.FieldExistingAgent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field existing_agent", values[i])
			} else if value.Valid {
				_m.ExistingAgent = value.String
			}
		case reservationconflict.FieldConflictType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field conflict_type", values[i])
			} else if value.Valid {
				_m.ConflictType = value.String
			}
		case reservationconflict.FieldSeverity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field severity", values[i])
			} else if value.Valid {
				_m.Severity = reservationconflict.Severity(value.String)
			}
		case reservationconflict.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case reservationconflict.FieldDetectedAt:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field detected_at", values[i])
			} else if value.Valid {
				_m.DetectedAt = value.Int64
			}
		case reservationconflict.FieldResolvedAt:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field resolved_at", values[i])
			} else if value.Valid {
				_m.ResolvedAt = value.Int64
			}
		case reservationconflict.FieldResolutionStrategy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field resolution_strategy", values[i])
			} else if value.Valid {
				_m.ResolutionStrategy = value.String
			}
		case reservationconflict.FieldEvidenceRef:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field evidence_ref", values[i])
			} else if value.Valid {
				_m.EvidenceRef = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ReservationConflict.
// This includes values selected through modifiers, order, etc.
func (_m *ReservationConflict) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ReservationConflict.
// Note that you need to call ReservationConflict.Unwrap() before calling this method if this ReservationConflict
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ReservationConflict) Update() *ReservationConflictUpdateOne {
	return NewReservationConflictClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ReservationConflict entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ReservationConflict) Unwrap() *ReservationConflict {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ReservationConflict is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ReservationConflict) String() string {
	var builder strings.Builder
	builder.WriteString("ReservationConflict(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("file_path=")
	builder.WriteString(_m.FilePath)
	builder.WriteString(", ")
	builder.WriteString("conflicting_agent=")
	builder.WriteString(_m.ConflictingAgent)
	builder.WriteString(", ")
	builder.WriteString("existing_agent=")
	builder.WriteString(_m.ExistingAgent)
	builder.WriteString(", ")
	builder.WriteString("conflict_type=")
	builder.WriteString(_m.ConflictType)
	builder.WriteString(", ")
	builder.WriteString("severity=")
	builder.WriteString(fmt.Sprintf("%v", _m.Severity))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("detected_at=")
	builder.WriteString(fmt.Sprintf("%v", _m.DetectedAt))
	builder.WriteString(", ")
	builder.WriteString("resolved_at=")
	builder.WriteString(fmt.Sprintf("%v", _m.ResolvedAt))
	builder.WriteString(", ")
	builder.WriteString("resolution_strategy=")
	builder.WriteString(_m.ResolutionStrategy)
	builder.WriteString(", ")
	builder.WriteString("evidence_ref=")
	builder.WriteString(_m.EvidenceRef)
	builder.WriteByte(')')
	return builder.String()
}

// ReservationConflicts is a parsable slice of ReservationConflict.
type ReservationConflicts []*ReservationConflict
