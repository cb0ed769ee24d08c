// Code generated by ent, DO NOT EDIT.

package ent

import (
	"github.com/openmaf/maf/ent/lease"
	"github.com/openmaf/maf/ent/mailmessage"
	"github.com/openmaf/maf/ent/reservationconflict"
	"github.com/openmaf/maf/ent/schema"
	"github.com/openmaf/maf/ent/task"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agentFields := schema.Agent{}.Fields()
	_ = agentFields
	filereservationFields := schema.FileReservation{}.Fields()
	_ = filereservationFields
	leaseFields := schema.Lease{}.Fields()
	_ = leaseFields
	// leaseDescAttempt is the schema descriptor for attempt field.
	leaseDescAttempt := leaseFields[4].Descriptor()
	// lease.DefaultAttempt holds the default value on creation for the attempt field.
	lease.DefaultAttempt = leaseDescAttempt.Default.(int)
	mailmessageFields := schema.MailMessage{}.Fields()
	_ = mailmessageFields
	// mailmessageDescRead is the schema descriptor for read field.
	mailmessageDescRead := mailmessageFields[5].Descriptor()
	// mailmessage.DefaultRead holds the default value on creation for the read field.
	mailmessage.DefaultRead = mailmessageDescRead.Default.(bool)
	reservationconflictFields := schema.ReservationConflict{}.Fields()
	_ = reservationconflictFields
	// reservationconflictDescStatus is the schema descriptor for status field.
	reservationconflictDescStatus := reservationconflictFields[6].Descriptor()
	// reservationconflict.DefaultStatus holds the default value on creation for the status field.
	reservationconflict.DefaultStatus = reservationconflictDescStatus.Default.(string)
	taskFields := schema.Task{}.Fields()
	_ = taskFields
	// taskDescPriority is the schema descriptor for priority field.
	taskDescPriority := taskFields[2].Descriptor()
	// task.DefaultPriority holds the default value on creation for the priority field.
	task.DefaultPriority = taskDescPriority.Default.(int)
	// taskDescAttempts is the schema descriptor for attempts field.
	taskDescAttempts := taskFields[6].Descriptor()
	// task.DefaultAttempts holds the default value on creation for the attempts field.
	task.DefaultAttempts = taskDescAttempts.Default.(int)
	// taskDescMaxAttempts is the schema descriptor for max_attempts field.
	taskDescMaxAttempts := taskFields[7].Descriptor()
	// task.DefaultMaxAttempts holds the default value on creation for the max_attempts field.
	task.DefaultMaxAttempts = taskDescMaxAttempts.Default.(int)
	// taskDescTokenBudget is the schema descriptor for token_budget field.
	taskDescTokenBudget := taskFields[8].Descriptor()
	// task.DefaultTokenBudget holds the default value on creation for the token_budget field.
	task.DefaultTokenBudget = taskDescTokenBudget.Default.(int64)
	// taskDescCostBudgetCents is the schema descriptor for cost_budget_cents field.
	taskDescCostBudgetCents := taskFields[9].Descriptor()
	// task.DefaultCostBudgetCents holds the default value on creation for the cost_budget_cents field.
	task.DefaultCostBudgetCents = taskDescCostBudgetCents.Default.(int64)
}
