package ids

import (
	"fmt"

	"github.com/google/uuid"
)

// NewTaskID returns a new opaque task identifier.
func NewTaskID() string {
	return "task-" + uuid.New().String()
}

// NewLeaseID returns a new opaque lease identifier.
func NewLeaseID() string {
	return "lease-" + uuid.New().String()
}

// NewReservationID returns a new opaque file-reservation identifier.
func NewReservationID() string {
	return "rsv-" + uuid.New().String()
}

// NewExecutionID returns a new opaque execution identifier.
func NewExecutionID() string {
	return "exec-" + uuid.New().String()
}

// NewConflictID returns a new opaque reservation-conflict identifier.
func NewConflictID() string {
	return "conflict-" + uuid.New().String()
}

// SyntheticTaskID returns the deterministic task id used when folding a
// legacy lease row forward into the canonical schema.
func SyntheticTaskID(legacyID string) string {
	return fmt.Sprintf("task-legacy-%s", legacyID)
}
