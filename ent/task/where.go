// Code generated by ent, DO NOT EDIT.

package task

import (
	"entgo.io/ent/dialect/sql"
	"github.com/openmaf/maf/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldID, id))
}

// Priority applies equality check predicate on the "priority" field. It's identical to PriorityEQ.
func Priority(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldPriority, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v int64) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v int64) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldUpdatedAt, v))
}

// Attempts applies equality check predicate on the "attempts" field. It's identical to AttemptsEQ.
func Attempts(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldAttempts, v))
}

// MaxAttempts applies equality check predicate on the "max_attempts" field. It's identical to MaxAttemptsEQ.
func MaxAttempts(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldMaxAttempts, v))
}

// TokenBudget applies equality check predicate on the "token_budget" field. It's identical to TokenBudgetEQ.
func TokenBudget(v int64) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldTokenBudget, v))
}

// CostBudgetCents applies equality check predicate on the "cost_budget_cents" field. It's identical to CostBudgetCentsEQ.
func CostBudgetCents(v int64) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCostBudgetCents, v))
}

// PolicyLabel applies equality check predicate on the "policy_label" field. It's identical to PolicyLabelEQ.
func PolicyLabel(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldPolicyLabel, v))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v State) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v State) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...State) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...State) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldState, vs...))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldPriority, vs...))
}

// PriorityGT applies the GT predicate on the "priority" field.
func PriorityGT(v int) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldPriority, v))
}

// PriorityGTE applies the GTE predicate on the "priority" field.
func PriorityGTE(v int) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldPriority, v))
}

// PriorityLT applies the LT predicate on the "priority" field.
func PriorityLT(v int) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldPriority, v))
}

// PriorityLTE applies the LTE predicate on the "priority" field.
func PriorityLTE(v int) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldPriority, v))
}

// PayloadIsNil applies the IsNil predicate on the "payload" field.
func PayloadIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldPayload))
}

// PayloadNotNil applies the NotNil predicate on the "payload" field.
func PayloadNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldPayload))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v int64) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v int64) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...int64) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...int64) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v int64) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v int64) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v int64) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v int64) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v int64) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v int64) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...int64) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...int64) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v int64) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v int64) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v int64) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v int64) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldUpdatedAt, v))
}

// AttemptsEQ applies the EQ predicate on the "attempts" field.
func AttemptsEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldAttempts, v))
}

// AttemptsNEQ applies the NEQ predicate on the "attempts" field.
func AttemptsNEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldAttempts, v))
}

// AttemptsIn applies the In predicate on the "attempts" field.
func AttemptsIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldAttempts, vs...))
}

// AttemptsNotIn applies the NotIn predicate on the "attempts" field.
func AttemptsNotIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldAttempts, vs...))
}

// AttemptsGT applies the GT predicate on the "attempts" field.
func AttemptsGT(v int) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldAttempts, v))
}

// AttemptsGTE applies the GTE predicate on the "attempts" field.
func AttemptsGTE(v int) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldAttempts, v))
}

// AttemptsLT applies the LT predicate on the "attempts" field.
func AttemptsLT(v int) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldAttempts, v))
}

// AttemptsLTE applies the LTE predicate on the "attempts" field.
func AttemptsLTE(v int) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldAttempts, v))
}

// MaxAttemptsEQ applies the EQ predicate on the "max_attempts" field.
func MaxAttemptsEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldMaxAttempts, v))
}

// MaxAttemptsNEQ applies the NEQ predicate on the "max_attempts" field.
func MaxAttemptsNEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldMaxAttempts, v))
}

// MaxAttemptsIn applies the In predicate on the "max_attempts" field.
func MaxAttemptsIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldMaxAttempts, vs...))
}

// MaxAttemptsNotIn applies the NotIn predicate on the "max_attempts" field.
func MaxAttemptsNotIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldMaxAttempts, vs...))
}

// MaxAttemptsGT applies the GT predicate on the "max_attempts" field.
func MaxAttemptsGT(v int) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldMaxAttempts, v))
}

// MaxAttemptsGTE applies the GTE predicate on the "max_attempts" field.
func MaxAttemptsGTE(v int) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldMaxAttempts, v))
}

// MaxAttemptsLT applies the LT predicate on the "max_attempts" field.
func MaxAttemptsLT(v int) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldMaxAttempts, v))
}

// MaxAttemptsLTE applies the LTE predicate on the "max_attempts" field.
func MaxAttemptsLTE(v int) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldMaxAttempts, v))
}

// TokenBudgetEQ applies the EQ predicate on the "token_budget" field.
func TokenBudgetEQ(v int64) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldTokenBudget, v))
}

// TokenBudgetNEQ applies the NEQ predicate on the "token_budget" field.
func TokenBudgetNEQ(v int64) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldTokenBudget, v))
}

// TokenBudgetIn applies the In predicate on the "token_budget" field.
func TokenBudgetIn(vs ...int64) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldTokenBudget, vs...))
}

// TokenBudgetNotIn applies the NotIn predicate on the "token_budget" field.
func TokenBudgetNotIn(vs ...int64) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldTokenBudget, vs...))
}

// TokenBudgetGT applies the GT predicate on the "token_budget" field.
func TokenBudgetGT(v int64) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldTokenBudget, v))
}

// TokenBudgetGTE applies the GTE predicate on the "token_budget" field.
func TokenBudgetGTE(v int64) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldTokenBudget, v))
}

// TokenBudgetLT applies the LT predicate on the "token_budget" field.
func TokenBudgetLT(v int64) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldTokenBudget, v))
}

// TokenBudgetLTE applies the LTE predicate on the "token_budget" field.
func TokenBudgetLTE(v int64) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldTokenBudget, v))
}

// TokenBudgetIsNil applies the IsNil predicate on the "token_budget" field.
func TokenBudgetIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldTokenBudget))
}

// TokenBudgetNotNil applies the NotNil predicate on the "token_budget" field.
func TokenBudgetNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldTokenBudget))
}

// CostBudgetCentsEQ applies the EQ predicate on the "cost_budget_cents" field.
func CostBudgetCentsEQ(v int64) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCostBudgetCents, v))
}

// CostBudgetCentsNEQ applies the NEQ predicate on the "cost_budget_cents" field.
func CostBudgetCentsNEQ(v int64) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldCostBudgetCents, v))
}

// CostBudgetCentsIn applies the In predicate on the "cost_budget_cents" field.
func CostBudgetCentsIn(vs ...int64) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldCostBudgetCents, vs...))
}

// CostBudgetCentsNotIn applies the NotIn predicate on the "cost_budget_cents" field.
func CostBudgetCentsNotIn(vs ...int64) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldCostBudgetCents, vs...))
}

// CostBudgetCentsGT applies the GT predicate on the "cost_budget_cents" field.
func CostBudgetCentsGT(v int64) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldCostBudgetCents, v))
}

// CostBudgetCentsGTE applies the GTE predicate on the "cost_budget_cents" field.
func CostBudgetCentsGTE(v int64) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldCostBudgetCents, v))
}

// CostBudgetCentsLT applies the LT predicate on the "cost_budget_cents" field.
func CostBudgetCentsLT(v int64) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldCostBudgetCents, v))
}

// CostBudgetCentsLTE applies the LTE predicate on the "cost_budget_cents" field.
func CostBudgetCentsLTE(v int64) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldCostBudgetCents, v))
}

// CostBudgetCentsIsNil applies the IsNil predicate on the "cost_budget_cents" field.
func CostBudgetCentsIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldCostBudgetCents))
}

// CostBudgetCentsNotNil applies the NotNil predicate on the "cost_budget_cents" field.
func CostBudgetCentsNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldCostBudgetCents))
}

// PolicyLabelEQ applies the EQ predicate on the "policy_label" field.
func PolicyLabelEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldPolicyLabel, v))
}

// PolicyLabelNEQ applies the NEQ predicate on the "policy_label" field.
func PolicyLabelNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldPolicyLabel, v))
}

// PolicyLabelIn applies the In predicate on the "policy_label" field.
func PolicyLabelIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldPolicyLabel, vs...))
}

// PolicyLabelNotIn applies the NotIn predicate on the "policy_label" field.
func PolicyLabelNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldPolicyLabel, vs...))
}

// PolicyLabelGT applies the GT predicate on the "policy_label" field.
func PolicyLabelGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldPolicyLabel, v))
}

// PolicyLabelGTE applies the GTE predicate on the "policy_label" field.
func PolicyLabelGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldPolicyLabel, v))
}

// PolicyLabelLT applies the LT predicate on the "policy_label" field.
func PolicyLabelLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldPolicyLabel, v))
}

// PolicyLabelLTE applies the LTE predicate on the "policy_label" field.
func PolicyLabelLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldPolicyLabel, v))
}

// PolicyLabelContains applies the Contains predicate on the "policy_label" field.
func PolicyLabelContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldPolicyLabel, v))
}

// PolicyLabelHasPrefix applies the HasPrefix predicate on the "policy_label" field.
func PolicyLabelHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldPolicyLabel, v))
}

// PolicyLabelHasSuffix applies the HasSuffix predicate on the "policy_label" field.
func PolicyLabelHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldPolicyLabel, v))
}

// PolicyLabelIsNil applies the IsNil predicate on the "policy_label" field.
func PolicyLabelIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldPolicyLabel))
}

// PolicyLabelNotNil applies the NotNil predicate on the "policy_label" field.
func PolicyLabelNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldPolicyLabel))
}

// PolicyLabelEqualFold applies the EqualFold predicate on the "policy_label" field.
func PolicyLabelEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldPolicyLabel, v))
}

// PolicyLabelContainsFold applies the ContainsFold predicate on the "policy_label" field.
func PolicyLabelContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldPolicyLabel, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Task) predicate.Task {
	return predicate.Task(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Task) predicate.Task {
	return predicate.Task(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Task) predicate.Task {
	return predicate.Task(sql.NotPredicates(p))
}
