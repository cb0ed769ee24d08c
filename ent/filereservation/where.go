// Code generated by ent, DO NOT EDIT.

package filereservation

import (
	"entgo.io/ent/dialect/sql"
	"github.com/openmaf/maf/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.FileReservation {
	return predicate.FileReservation(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.FileReservation {
	return predicate.FileReservation(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.FileReservation {
	return predicate.FileReservation(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.FileReservation {
	return predicate.FileReservation(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.FileReservation {
	return predicate.FileReservation(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.FileReservation {
	return predicate.FileReservation(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.FileReservation {
	return predicate.FileReservation(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.FileReservation {
	return predicate.FileReservation(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.FileReservation {
	return predicate.FileReservation(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.FileReservation {
	return predicate.FileReservation(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.FileReservation {
	return predicate.FileReservation(sql.FieldContainsFold(FieldID, id))
}

// FilePath applies equality check predicate on the "file_path" field. It's identical to FilePathEQ.
func FilePath(v string) predicate.FileReservation {
	return predicate.FileReservation(sql.FieldEQ(FieldFilePath, v))
}

// AgentID applies equality check predicate on the "agent_id" field. It's identical to AgentIDEQ.
func AgentID(v string) predicate.FileReservation {
	return predicate.FileReservation(sql.FieldEQ(FieldAgentID, v))
}

// LeaseExpiresAt applies equality check predicate on the "lease_expires_at" field. It's identical to LeaseExpiresAtEQ.
func LeaseExpiresAt(v int64) predicate.FileReservation {
	return predicate.FileReservation(sql.FieldEQ(FieldLeaseExpiresAt, v))
}

// LeaseReason applies equality check predicate on the "lease_reason" field. It's identical to LeaseReasonEQ.
func LeaseReason(v string) predicate.FileReservation {
	return predicate.FileReservation(sql.FieldEQ(FieldLeaseReason, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v int64) predicate.FileReservation {
	return predicate.FileReservation(sql.FieldEQ(FieldCreatedAt, v))
}

// FilePathEQ applies the EQ predicate on the "file_path" field.
func FilePathEQ(v string) predicate.FileReservation {
	return predicate.FileReservation(sql.FieldEQ(FieldFilePath, v))
}

// FilePathNEQ applies the NEQ predicate on the "file_path" field.
func FilePathNEQ(v string) predicate.FileReservation {
	return predicate.FileReservation(sql.FieldNEQ(FieldFilePath, v))
}

// FilePathIn applies the In predicate on the "file_path" field.
func FilePathIn(vs ...string) predicate.FileReservation {
	return predicate.FileReservation(sql.FieldIn(FieldFilePath, vs...))
}

// FilePathNotIn applies the NotIn predicate on the "file_path" field.
func FilePathNotIn(vs ...string) predicate.FileReservation {
	return predicate.FileReservation(sql.FieldNotIn(FieldFilePath, vs...))
}

// FilePathGT applies the GT predicate on the "file_path" field.
func FilePathGT(v string) predicate.FileReservation {
	return predicate.FileReservation(sql.FieldGT(FieldFilePath, v))
}

// FilePathGTE applies the GTE predicate on the "file_path" field.
func FilePathGTE(v string) predicate.FileReservation {
	return predicate.FileReservation(sql.FieldGTE(FieldFilePath, v))
}

// FilePathLT applies the LT predicate on the "file_path" field.
func FilePathLT(v string) predicate.FileReservation {
	return predicate.FileReservation(sql.FieldLT(FieldFilePath, v))
}

// FilePathLTE applies the LTE predicate on the "file_path" field.
func FilePathLTE(v string) predicate.FileReservation {
	return predicate.FileReservation(sql.FieldLTE(FieldFilePath, v))
}

// FilePathContains applies the Contains predicate on the "file_path" field.
func FilePathContains(v string) predicate.FileReservation {
	return predicate.FileReservation(sql.FieldContains(FieldFilePath, v))
}

// FilePathHasPrefix applies the HasPrefix predicate on the "file_path" field.
func FilePathHasPrefix(v string) predicate.FileReservation {
	return predicate.FileReservation(sql.FieldHasPrefix(FieldFilePath, v))
}

// FilePathHasSuffix applies the HasSuffix predicate on the "file_path" field.
func FilePathHasSuffix(v string) predicate.FileReservation {
	return predicate.FileReservation(sql.FieldHasSuffix(FieldFilePath, v))
}

// FilePathEqualFold applies the EqualFold predicate on the "file_path" field.
func FilePathEqualFold(v string) predicate.FileReservation {
	return predicate.FileReservation(sql.FieldEqualFold(FieldFilePath, v))
}

// FilePathContainsFold applies the ContainsFold predicate on the "file_path" field.
func FilePathContainsFold(v string) predicate.FileReservation {
	return predicate.FileReservation(sql.FieldContainsFold(FieldFilePath, v))
}

// AgentIDEQ applies the EQ predicate on the "agent_id" field.
func AgentIDEQ(v string) predicate.FileReservation {
	return predicate.FileReservation(sql.FieldEQ(FieldAgentID, v))
}

// AgentIDNEQ applies the NEQ predicate on the "agent_id" field.
func AgentIDNEQ(v string) predicate.FileReservation {
	return predicate.FileReservation(sql.FieldNEQ(FieldAgentID, v))
}

// AgentIDIn applies the In predicate on the "agent_id" field.
func AgentIDIn(vs ...string) predicate.FileReservation {
	return predicate.FileReservation(sql.FieldIn(FieldAgentID, vs...))
}

// AgentIDNotIn applies the NotIn predicate on the "agent_id" field.
func AgentIDNotIn(vs ...string) predicate.FileReservation {
	return predicate.FileReservation(sql.FieldNotIn(FieldAgentID, vs...))
}

// AgentIDGT applies the GT predicate on the "agent_id" field.
func AgentIDGT(v string) predicate.FileReservation {
	return predicate.FileReservation(sql.FieldGT(FieldAgentID, v))
}

// AgentIDGTE applies the GTE predicate on the "agent_id" field.
func AgentIDGTE(v string) predicate.FileReservation {
	return predicate.FileReservation(sql.FieldGTE(FieldAgentID, v))
}

// AgentIDLT applies the LT predicate on the "agent_id" field.
func AgentIDLT(v string) predicate.FileReservation {
	return predicate.FileReservation(sql.FieldLT(FieldAgentID, v))
}

// AgentIDLTE applies the LTE predicate on the "agent_id" field.
func AgentIDLTE(v string) predicate.FileReservation {
	return predicate.FileReservation(sql.FieldLTE(FieldAgentID, v))
}

// AgentIDContains applies the Contains predicate on the "agent_id" field.
func AgentIDContains(v string) predicate.FileReservation {
	return predicate.FileReservation(sql.FieldContains(FieldAgentID, v))
}

// AgentIDHasPrefix applies the HasPrefix predicate on the "agent_id" field.
func AgentIDHasPrefix(v string) predicate.FileReservation {
	return predicate.FileReservation(sql.FieldHasPrefix(FieldAgentID, v))
}

// AgentIDHasSuffix applies the HasSuffix predicate on the "agent_id" field.
func AgentIDHasSuffix(v string) predicate.FileReservation {
	return predicate.FileReservation(sql.FieldHasSuffix(FieldAgentID, v))
}

// AgentIDEqualFold applies the EqualFold predicate on the "agent_id" field.
func AgentIDEqualFold(v string) predicate.FileReservation {
	return predicate.FileReservation(sql.FieldEqualFold(FieldAgentID, v))
}

// AgentIDContainsFold applies the ContainsFold predicate on the "agent_id" field.
func AgentIDContainsFold(v string) predicate.FileReservation {
	return predicate.FileReservation(sql.FieldContainsFold(FieldAgentID, v))
}

// LeaseExpiresAtEQ applies the EQ predicate on the "lease_expires_at" field.
func LeaseExpiresAtEQ(v int64) predicate.FileReservation {
	return predicate.FileReservation(sql.FieldEQ(FieldLeaseExpiresAt, v))
}

// LeaseExpiresAtNEQ applies the NEQ predicate on the "lease_expires_at" field.
func LeaseExpiresAtNEQ(v int64) predicate.FileReservation {
	return predicate.FileReservation(sql.FieldNEQ(FieldLeaseExpiresAt, v))
}

// LeaseExpiresAtIn applies the In predicate on the "lease_expires_at" field.
func LeaseExpiresAtIn(vs ...int64) predicate.FileReservation {
	return predicate.FileReservation(sql.FieldIn(FieldLeaseExpiresAt, vs...))
}

// LeaseExpiresAtNotIn applies the NotIn predicate on the "lease_expires_at" field.
func LeaseExpiresAtNotIn(vs ...int64) predicate.FileReservation {
	return predicate.FileReservation(sql.FieldNotIn(FieldLeaseExpiresAt, vs...))
}

// LeaseExpiresAtGT applies the GT predicate on the "lease_expires_at" field.
func LeaseExpiresAtGT(v int64) predicate.FileReservation {
	return predicate.FileReservation(sql.FieldGT(FieldLeaseExpiresAt, v))
}

// LeaseExpiresAtGTE applies the GTE predicate on the "lease_expires_at" field.
func LeaseExpiresAtGTE(v int64) predicate.FileReservation {
	return predicate.FileReservation(sql.FieldGTE(FieldLeaseExpiresAt, v))
}

// LeaseExpiresAtLT applies the LT predicate on the "lease_expires_at" field.
func LeaseExpiresAtLT(v int64) predicate.FileReservation {
	return predicate.FileReservation(sql.FieldLT(FieldLeaseExpiresAt, v))
}

// LeaseExpiresAtLTE applies the LTE predicate on the "lease_expires_at" field.
func LeaseExpiresAtLTE(v int64) predicate.FileReservation {
	return predicate.FileReservation(sql.FieldLTE(FieldLeaseExpiresAt, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.FileReservation {
	return predicate.FileReservation(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.FileReservation {
	return predicate.FileReservation(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.FileReservation {
	return predicate.FileReservation(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.FileReservation {
	return predicate.FileReservation(sql.FieldNotIn(FieldStatus, vs...))
}

// LeaseReasonEQ applies the EQ predicate on the "lease_reason" field.
func LeaseReasonEQ(v string) predicate.FileReservation {
	return predicate.FileReservation(sql.FieldEQ(FieldLeaseReason, v))
}

// LeaseReasonNEQ applies the NEQ predicate on the "lease_reason" field.
func LeaseReasonNEQ(v string) predicate.FileReservation {
	return predicate.FileReservation(sql.FieldNEQ(FieldLeaseReason, v))
}

// LeaseReasonIn applies the In predicate on the "lease_reason" field.
func LeaseReasonIn(vs ...string) predicate.FileReservation {
	return predicate.FileReservation(sql.FieldIn(FieldLeaseReason, vs...))
}

// LeaseReasonNotIn applies the NotIn predicate on the "lease_reason" field.
func LeaseReasonNotIn(vs ...string) predicate.FileReservation {
	return predicate.FileReservation(sql.FieldNotIn(FieldLeaseReason, vs...))
}

// LeaseReasonGT applies the GT predicate on the "lease_reason" field.
func LeaseReasonGT(v string) predicate.FileReservation {
	return predicate.FileReservation(sql.FieldGT(FieldLeaseReason, v))
}

// LeaseReasonGTE applies the GTE predicate on the "lease_reason" field.
func LeaseReasonGTE(v string) predicate.FileReservation {
	return predicate.FileReservation(sql.FieldGTE(FieldLeaseReason, v))
}

// LeaseReasonLT applies the LT predicate on the "lease_reason" field.
func LeaseReasonLT(v string) predicate.FileReservation {
	return predicate.FileReservation(sql.FieldLT(FieldLeaseReason, v))
}

// LeaseReasonLTE applies the LTE predicate on the "lease_reason" field.
func LeaseReasonLTE(v string) predicate.FileReservation {
	return predicate.FileReservation(sql.FieldLTE(FieldLeaseReason, v))
}

// LeaseReasonContains applies the Contains predicate on the "lease_reason" field.
func LeaseReasonContains(v string) predicate.FileReservation {
	return predicate.FileReservation(sql.FieldContains(FieldLeaseReason, v))
}

// LeaseReasonHasPrefix applies the HasPrefix predicate on the "lease_reason" field.
func LeaseReasonHasPrefix(v string) predicate.FileReservation {
	return predicate.FileReservation(sql.FieldHasPrefix(FieldLeaseReason, v))
}

// LeaseReasonHasSuffix applies the HasSuffix predicate on the "lease_reason" field.
func LeaseReasonHasSuffix(v string) predicate.FileReservation {
	return predicate.FileReservation(sql.FieldHasSuffix(FieldLeaseReason, v))
}

// LeaseReasonIsNil applies the IsNil predicate on the "lease_reason" field.
func LeaseReasonIsNil() predicate.FileReservation {
	return predicate.FileReservation(sql.FieldIsNull(FieldLeaseReason))
}

// LeaseReasonNotNil applies the NotNil predicate on the "lease_reason" field.
func LeaseReasonNotNil() predicate.FileReservation {
	return predicate.FileReservation(sql.FieldNotNull(FieldLeaseReason))
}

// LeaseReasonEqualFold applies the EqualFold predicate on the "lease_reason" field.
func LeaseReasonEqualFold(v string) predicate.FileReservation {
	return predicate.FileReservation(sql.FieldEqualFold(FieldLeaseReason, v))
}

// LeaseReasonContainsFold applies the ContainsFold predicate on the "lease_reason" field.
func LeaseReasonContainsFold(v string) predicate.FileReservation {
	return predicate.FileReservation(sql.FieldContainsFold(FieldLeaseReason, v))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.FileReservation {
	return predicate.FileReservation(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.FileReservation {
	return predicate.FileReservation(sql.FieldNotNull(FieldMetadata))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v int64) predicate.FileReservation {
	return predicate.FileReservation(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v int64) predicate.FileReservation {
	return predicate.FileReservation(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...int64) predicate.FileReservation {
	return predicate.FileReservation(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...int64) predicate.FileReservation {
	return predicate.FileReservation(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v int64) predicate.FileReservation {
	return predicate.FileReservation(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v int64) predicate.FileReservation {
	return predicate.FileReservation(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v int64) predicate.FileReservation {
	return predicate.FileReservation(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v int64) predicate.FileReservation {
	return predicate.FileReservation(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.FileReservation) predicate.FileReservation {
	return predicate.FileReservation(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.FileReservation) predicate.FileReservation {
	return predicate.FileReservation(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.FileReservation) predicate.FileReservation {
	return predicate.FileReservation(sql.NotPredicates(p))
}
