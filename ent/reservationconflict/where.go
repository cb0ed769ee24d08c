// Code generated by ent, DO NOT EDIT.

package reservationconflict

import (
	"entgo.io/ent/dialect/sql"
	"github.com/openmaf/maf/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldContainsFold(FieldID, id))
}

// FilePath applies equality check predicate on the "file_path" field. It's identical to FilePathEQ.
func FilePath(v string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldEQ(FieldFilePath, v))
}

// ConflictingAgent applies equality check predicate on the "conflicting_agent" field. It's identical to ConflictingAgentEQ.
func ConflictingAgent(v string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldEQ(FieldConflictingAgent, v))
}

// ExistingAgent applies equality check predicate on the "existing_agent" field. It's identical to ExistingAgentEQ.
func ExistingAgent(v string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldEQ(FieldExistingAgent, v))
}

// ConflictType applies equality check predicate on the "conflict_type" field. It's identical to ConflictTypeEQ.
func ConflictType(v string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldEQ(FieldConflictType, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldEQ(FieldStatus, v))
}

// DetectedAt applies equality check predicate on the "detected_at" field. It's identical to DetectedAtEQ.
func DetectedAt(v int64) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldEQ(FieldDetectedAt, v))
}

// ResolvedAt applies equality check predicate on the "resolved_at" field. It's identical to ResolvedAtEQ.
func ResolvedAt(v int64) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldEQ(FieldResolvedAt, v))
}

// ResolutionStrategy applies equality check predicate on the "resolution_strategy" field. It's identical to ResolutionStrategyEQ.
func ResolutionStrategy(v string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldEQ(FieldResolutionStrategy, v))
}

// EvidenceRef applies equality check predicate on the "evidence_ref" field. It's identical to EvidenceRefEQ.
func EvidenceRef(v string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldEQ(FieldEvidenceRef, v))
}

// FilePathEQ applies the EQ predicate on the "file_path" field.
func FilePathEQ(v string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldEQ(FieldFilePath, v))
}

// FilePathNEQ applies the NEQ predicate on the "file_path" field.
func FilePathNEQ(v string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldNEQ(FieldFilePath, v))
}

// FilePathIn applies the In predicate on the "file_path" field.
func FilePathIn(vs ...string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldIn(FieldFilePath, vs...))
}

// FilePathNotIn applies the NotIn predicate on the "file_path" field.
func FilePathNotIn(vs ...string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldNotIn(FieldFilePath, vs...))
}

// FilePathGT applies the GT predicate on the "file_path" field.
func FilePathGT(v string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldGT(FieldFilePath, v))
}

// FilePathGTE applies the GTE predicate on the "file_path" field.
func FilePathGTE(v string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldGTE(FieldFilePath, v))
}

// FilePathLT applies the LT predicate on the "file_path" field.
func FilePathLT(v string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldLT(FieldFilePath, v))
}

// FilePathLTE applies the LTE predicate on the "file_path" field.
func FilePathLTE(v string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldLTE(FieldFilePath, v))
}

// FilePathContains applies the Contains predicate on the "file_path" field.
func FilePathContains(v string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldContains(FieldFilePath, v))
}

// FilePathHasPrefix applies the HasPrefix predicate on the "file_path" field.
func FilePathHasPrefix(v string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldHasPrefix(FieldFilePath, v))
}

// FilePathHasSuffix applies the HasSuffix predicate on the "file_path" field.
func FilePathHasSuffix(v string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldHasSuffix(FieldFilePath, v))
}

// FilePathEqualFold applies the EqualFold predicate on the "file_path" field.
func FilePathEqualFold(v string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldEqualFold(FieldFilePath, v))
}

// FilePathContainsFold applies the ContainsFold predicate on the "file_path" field.
func FilePathContainsFold(v string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldContainsFold(FieldFilePath, v))
}

// ConflictingAgentEQ applies the EQ predicate on the "conflicting_agent" field.
func ConflictingAgentEQ(v string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldEQ(FieldConflictingAgent, v))
}

// ConflictingAgentNEQ applies the NEQ predicate on the "conflicting_agent" field.
func ConflictingAgentNEQ(v string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldNEQ(FieldConflictingAgent, v))
}

// ConflictingAgentIn applies the In predicate on the "conflicting_agent" field.
func ConflictingAgentIn(vs ...string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldIn(FieldConflictingAgent, vs...))
}

// ConflictingAgentNotIn applies the NotIn predicate on the "conflicting_agent" field.
func ConflictingAgentNotIn(vs ...string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldNotIn(FieldConflictingAgent, vs...))
}

// ConflictingAgentGT applies the GT predicate on the "conflicting_agent" field.
func ConflictingAgentGT(v string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldGT(FieldConflictingAgent, v))
}

// ConflictingAgentGTE applies the GTE predicate on the "conflicting_agent" field.
func ConflictingAgentGTE(v string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldGTE(FieldConflictingAgent, v))
}

// ConflictingAgentLT applies the LT predicate on the "conflicting_agent" field.
func ConflictingAgentLT(v string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldLT(FieldConflictingAgent, v))
}

// ConflictingAgentLTE applies the LTE predicate on the "conflicting_agent" field.
func ConflictingAgentLTE(v string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldLTE(FieldConflictingAgent, v))
}

// ConflictingAgentContains applies the Contains predicate on the "conflicting_agent" field.
func ConflictingAgentContains(v string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldContains(FieldConflictingAgent, v))
}

// ConflictingAgentHasPrefix applies the HasPrefix predicate on the "conflicting_agent" field.
func ConflictingAgentHasPrefix(v string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldHasPrefix(FieldConflictingAgent, v))
}

// ConflictingAgentHasSuffix applies the HasSuffix predicate on the "conflicting_agent" field.
func ConflictingAgentHasSuffix(v string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldHasSuffix(FieldConflictingAgent, v))
}

// ConflictingAgentEqualFold applies the EqualFold predicate on the "conflicting_agent" field.
func ConflictingAgentEqualFold(v string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldEqualFold(FieldConflictingAgent, v))
}

// ConflictingAgentContainsFold applies the ContainsFold predicate on the "conflicting_agent" field.
func ConflictingAgentContainsFold(v string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldContainsFold(FieldConflictingAgent, v))
}

// ExistingAgentEQ applies the EQ predicate on the "existing_agent" field.
func ExistingAgentEQ(v string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldEQ(FieldExistingAgent, v))
}

// ExistingAgentNEQ applies the NEQ predicate on the "existing_agent" field.
func ExistingAgentNEQ(v string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldNEQ(FieldExistingAgent, v))
}

// ExistingAgentIn applies the In predicate on the "existing_agent" field.
func ExistingAgentIn(vs ...string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldIn(FieldExistingAgent, vs...))
}

// ExistingAgentNotIn applies the NotIn predicate on the "existing_agent" field.
func ExistingAgentNotIn(vs ...string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldNotIn(FieldExistingAgent, vs...))
}

// ExistingAgentGT applies the GT predicate on the "existing_agent" field.
func ExistingAgentGT(v string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldGT(FieldExistingAgent, v))
}

// ExistingAgentGTE applies the GTE predicate on the "existing_agent" field.
func ExistingAgentGTE(v string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldGTE(FieldExistingAgent, v))
}

// ExistingAgentLT applies the LT predicate on the "existing_agent" field.
func ExistingAgentLT(v string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldLT(FieldExistingAgent, v))
}

// ExistingAgentLTE applies the LTE predicate on the "existing_agent" field.
func ExistingAgentLTE(v string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldLTE(FieldExistingAgent, v))
}

// ExistingAgentContains applies the Contains predicate on the "existing_agent" field.
func ExistingAgentContains(v string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldContains(FieldExistingAgent, v))
}

// ExistingAgentHasPrefix applies the HasPrefix predicate on the "existing_agent" field.
func ExistingAgentHasPrefix(v string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldHasPrefix(FieldExistingAgent, v))
}

// ExistingAgentHasSuffix applies the HasSuffix predicate on the "existing_agent" field.
func ExistingAgentHasSuffix(v string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldHasSuffix(FieldExistingAgent, v))
}

// ExistingAgentEqualFold applies the EqualFold predicate on the "existing_agent" field.
func ExistingAgentEqualFold(v string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldEqualFold(FieldExistingAgent, v))
}

// ExistingAgentContainsFold applies the ContainsFold predicate on the "existing_agent" field.
func ExistingAgentContainsFold(v string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldContainsFold(FieldExistingAgent, v))
}

// ConflictTypeEQ applies the EQ predicate on the "conflict_type" field.
func ConflictTypeEQ(v string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldEQ(FieldConflictType, v))
}

// ConflictTypeNEQ applies the NEQ predicate on the "conflict_type" field.
func ConflictTypeNEQ(v string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldNEQ(FieldConflictType, v))
}

// ConflictTypeIn applies the In predicate on the "conflict_type" field.
func ConflictTypeIn(vs ...string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldIn(FieldConflictType, vs...))
}

// ConflictTypeNotIn applies the NotIn predicate on the "conflict_type" field.
func ConflictTypeNotIn(vs ...string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldNotIn(FieldConflictType, vs...))
}

// ConflictTypeGT applies the GT predicate on the "conflict_type" field.
func ConflictTypeGT(v string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldGT(FieldConflictType, v))
}

// ConflictTypeGTE applies the GTE predicate on the "conflict_type" field.
func ConflictTypeGTE(v string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldGTE(FieldConflictType, v))
}

// ConflictTypeLT applies the LT predicate on the "conflict_type" field.
func ConflictTypeLT(v string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldLT(FieldConflictType, v))
}

// ConflictTypeLTE applies the LTE predicate on the "conflict_type" field.
func ConflictTypeLTE(v string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldLTE(FieldConflictType, v))
}

// ConflictTypeContains applies the Contains predicate on the "conflict_type" field.
func ConflictTypeContains(v string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldContains(FieldConflictType, v))
}

// ConflictTypeHasPrefix applies the HasPrefix predicate on the "conflict_type" field.
func ConflictTypeHasPrefix(v string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldHasPrefix(FieldConflictType, v))
}

// ConflictTypeHasSuffix applies the HasSuffix predicate on the "conflict_type" field.
func ConflictTypeHasSuffix(v string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldHasSuffix(FieldConflictType, v))
}

// ConflictTypeEqualFold applies the EqualFold predicate on the "conflict_type" field.
func ConflictTypeEqualFold(v string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldEqualFold(FieldConflictType, v))
}

// ConflictTypeContainsFold applies the ContainsFold predicate on the "conflict_type" field.
func ConflictTypeContainsFold(v string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldContainsFold(FieldConflictType, v))
}

// SeverityEQ applies the EQ predicate on the "severity" field.
func SeverityEQ(v Severity) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldEQ(FieldSeverity, v))
}

// SeverityNEQ applies the NEQ predicate on the "severity" field.
func SeverityNEQ(v Severity) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldNEQ(FieldSeverity, v))
}

// SeverityIn applies the In predicate on the "severity" field.
func SeverityIn(vs ...Severity) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldIn(FieldSeverity, vs...))
}

// SeverityNotIn applies the NotIn predicate on the "severity" field.
func SeverityNotIn(vs ...Severity) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldNotIn(FieldSeverity, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldContainsFold(FieldStatus, v))
}

// DetectedAtEQ applies the EQ predicate on the "detected_at" field.
func DetectedAtEQ(v int64) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldEQ(FieldDetectedAt, v))
}

// DetectedAtNEQ applies the NEQ predicate on the "detected_at" field.
func DetectedAtNEQ(v int64) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldNEQ(FieldDetectedAt, v))
}

// DetectedAtIn applies the In predicate on the "detected_at" field.
func DetectedAtIn(vs ...int64) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldIn(FieldDetectedAt, vs...))
}

// DetectedAtNotIn applies the NotIn predicate on the "detected_at" field.
func DetectedAtNotIn(vs ...int64) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldNotIn(FieldDetectedAt, vs...))
}

// DetectedAtGT applies the GT predicate on the "detected_at" field.
func DetectedAtGT(v int64) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldGT(FieldDetectedAt, v))
}

// DetectedAtGTE applies the GTE predicate on the "detected_at" field.
func DetectedAtGTE(v int64) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldGTE(FieldDetectedAt, v))
}

// DetectedAtLT applies the LT predicate on the "detected_at" field.
func DetectedAtLT(v int64) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldLT(FieldDetectedAt, v))
}

// DetectedAtLTE applies the LTE predicate on the "detected_at" field.
func DetectedAtLTE(v int64) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldLTE(FieldDetectedAt, v))
}

// ResolvedAtEQ applies the EQ predicate on the "resolved_at" field.
func ResolvedAtEQ(v int64) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldEQ(FieldResolvedAt, v))
}

// ResolvedAtNEQ applies the NEQ predicate on the "resolved_at" field.
func ResolvedAtNEQ(v int64) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldNEQ(FieldResolvedAt, v))
}

// ResolvedAtIn applies the In predicate on the "resolved_at" field.
func ResolvedAtIn(vs ...int64) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldIn(FieldResolvedAt, vs...))
}

// ResolvedAtNotIn applies the NotIn predicate on the "resolved_at" field.
func ResolvedAtNotIn(vs ...int64) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldNotIn(FieldResolvedAt, vs...))
}

// ResolvedAtGT applies the GT predicate on the "resolved_at" field.
func ResolvedAtGT(v int64) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldGT(FieldResolvedAt, v))
}

// ResolvedAtGTE applies the GTE predicate on the "resolved_at" field.
func ResolvedAtGTE(v int64) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldGTE(FieldResolvedAt, v))
}

// ResolvedAtLT applies the LT predicate on the "resolved_at" field.
func ResolvedAtLT(v int64) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldLT(FieldResolvedAt, v))
}

// ResolvedAtLTE applies the LTE predicate on the "resolved_at" field.
func ResolvedAtLTE(v int64) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldLTE(FieldResolvedAt, v))
}

// ResolvedAtIsNil applies the IsNil predicate on the "resolved_at" field.
func ResolvedAtIsNil() predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldIsNull(FieldResolvedAt))
}

// ResolvedAtNotNil applies the NotNil predicate on the "resolved_at" field.
func ResolvedAtNotNil() predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldNotNull(FieldResolvedAt))
}

// ResolutionStrategyEQ applies the EQ predicate on the "resolution_strategy" field.
func ResolutionStrategyEQ(v string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldEQ(FieldResolutionStrategy, v))
}

// ResolutionStrategyNEQ applies the NEQ predicate on the "resolution_strategy" field.
func ResolutionStrategyNEQ(v string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldNEQ(FieldResolutionStrategy, v))
}

// ResolutionStrategyIn applies the In predicate on the "resolution_strategy" field.
func ResolutionStrategyIn(vs ...string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldIn(FieldResolutionStrategy, vs...))
}

// ResolutionStrategyNotIn applies the NotIn predicate on the "resolution_strategy" field.
func ResolutionStrategyNotIn(vs ...string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldNotIn(FieldResolutionStrategy, vs...))
}

// ResolutionStrategyGT applies the GT predicate on the "resolution_strategy" field.
func ResolutionStrategyGT(v string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldGT(FieldResolutionStrategy, v))
}

// ResolutionStrategyGTE applies the GTE predicate on the "resolution_strategy" field.
func ResolutionStrategyGTE(v string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldGTE(FieldResolutionStrategy, v))
}

// ResolutionStrategyLT applies the LT predicate on the "resolution_strategy" field.
func ResolutionStrategyLT(v string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldLT(FieldResolutionStrategy, v))
}

// ResolutionStrategyLTE applies the LTE predicate on the "resolution_strategy" field.
func ResolutionStrategyLTE(v string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldLTE(FieldResolutionStrategy, v))
}

// ResolutionStrategyContains applies the Contains predicate on the "resolution_strategy" field.
func ResolutionStrategyContains(v string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldContains(FieldResolutionStrategy, v))
}

// ResolutionStrategyHasPrefix applies the HasPrefix predicate on the "resolution_strategy" field.
func ResolutionStrategyHasPrefix(v string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldHasPrefix(FieldResolutionStrategy, v))
}

// ResolutionStrategyHasSuffix applies the HasSuffix predicate on the "resolution_strategy" field.
func ResolutionStrategyHasSuffix(v string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldHasSuffix(FieldResolutionStrategy, v))
}

// ResolutionStrategyIsNil applies the IsNil predicate on the "resolution_strategy" field.
func ResolutionStrategyIsNil() predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldIsNull(FieldResolutionStrategy))
}

// ResolutionStrategyNotNil applies the NotNil predicate on the "resolution_strategy" field.
func ResolutionStrategyNotNil() predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldNotNull(FieldResolutionStrategy))
}

// ResolutionStrategyEqualFold applies the EqualFold predicate on the "resolution_strategy" field.
func ResolutionStrategyEqualFold(v string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldEqualFold(FieldResolutionStrategy, v))
}

// ResolutionStrategyContainsFold applies the ContainsFold predicate on the "resolution_strategy" field.
func ResolutionStrategyContainsFold(v string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldContainsFold(FieldResolutionStrategy, v))
}

// EvidenceRefEQ applies the EQ predicate on the "evidence_ref" field.
func EvidenceRefEQ(v string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldEQ(FieldEvidenceRef, v))
}

// EvidenceRefNEQ applies the NEQ predicate on the "evidence_ref" field.
func EvidenceRefNEQ(v string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldNEQ(FieldEvidenceRef, v))
}

// EvidenceRefIn applies the In predicate on the "evidence_ref" field.
func EvidenceRefIn(vs ...string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldIn(FieldEvidenceRef, vs...))
}

// EvidenceRefNotIn applies the NotIn predicate on the "evidence_ref" field.
func EvidenceRefNotIn(vs ...string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldNotIn(FieldEvidenceRef, vs...))
}

// EvidenceRefGT applies the GT predicate on the "evidence_ref" field.
func EvidenceRefGT(v string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldGT(FieldEvidenceRef, v))
}

// EvidenceRefGTE applies the GTE predicate on the "evidence_ref" field.
func EvidenceRefGTE(v string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldGTE(FieldEvidenceRef, v))
}

// EvidenceRefLT applies the LT predicate on the "evidence_ref" field.
func EvidenceRefLT(v string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldLT(FieldEvidenceRef, v))
}

// EvidenceRefLTE applies the LTE predicate on the "evidence_ref" field.
func EvidenceRefLTE(v string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldLTE(FieldEvidenceRef, v))
}

// EvidenceRefContains applies the Contains predicate on the "evidence_ref" field.
func EvidenceRefContains(v string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldContains(FieldEvidenceRef, v))
}

// EvidenceRefHasPrefix applies the HasPrefix predicate on the "evidence_ref" field.
func EvidenceRefHasPrefix(v string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldHasPrefix(FieldEvidenceRef, v))
}

// EvidenceRefHasSuffix applies the HasSuffix predicate on the "evidence_ref" field.
func EvidenceRefHasSuffix(v string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldHasSuffix(FieldEvidenceRef, v))
}

// EvidenceRefIsNil applies the IsNil predicate on the "evidence_ref" field.
func EvidenceRefIsNil() predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldIsNull(FieldEvidenceRef))
}

// EvidenceRefNotNil applies the NotNil predicate on the "evidence_ref" field.
func EvidenceRefNotNil() predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldNotNull(FieldEvidenceRef))
}

// EvidenceRefEqualFold applies the EqualFold predicate on the "evidence_ref" field.
func EvidenceRefEqualFold(v string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldEqualFold(FieldEvidenceRef, v))
}

// EvidenceRefContainsFold applies the ContainsFold predicate on the "evidence_ref" field.
func EvidenceRefContainsFold(v string) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.FieldContainsFold(FieldEvidenceRef, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ReservationConflict) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ReservationConflict) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ReservationConflict) predicate.ReservationConflict {
	return predicate.ReservationConflict(sql.NotPredicates(p))
}
