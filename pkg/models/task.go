// Package models holds the backend-neutral domain types shared by the
// runtime façade, the durable backend, the file backend, and the CLI.
package models

// TaskState is the lifecycle state of a task.
type TaskState string

// Task lifecycle states.
const (
	StateReady     TaskState = "READY"
	StateLeased    TaskState = "LEASED"
	StateRunning   TaskState = "RUNNING"
	StateVerifying TaskState = "VERIFYING"
	StateCommitted TaskState = "COMMITTED"
	StateRollback  TaskState = "ROLLBACK"
	StateDone      TaskState = "DONE"
	StateDead      TaskState = "DEAD"
)

// AllTaskStates lists every valid state, in lifecycle order.
var AllTaskStates = []TaskState{
	StateReady, StateLeased, StateRunning, StateVerifying,
	StateCommitted, StateRollback, StateDone, StateDead,
}

// legalTransitions is the authoritative transition table. A (from, to)
// pair absent from this table is an IllegalTransition.
var legalTransitions = map[TaskState][]TaskState{
	StateReady:     {StateLeased},
	StateLeased:    {StateReady, StateRunning},
	StateRunning:   {StateVerifying},
	StateVerifying: {StateCommitted, StateRollback},
	StateCommitted: {StateDone},
	StateRollback:  {StateReady, StateDead},
}

// IsLegalTransition reports whether from → to is allowed by the task
// state machine.
func IsLegalTransition(from, to TaskState) bool {
	for _, t := range legalTransitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

// IsValidState reports whether s is one of the fixed task states.
func IsValidState(s TaskState) bool {
	for _, v := range AllTaskStates {
		if v == s {
			return true
		}
	}
	return false
}

// ActiveStates are the states during which a lease row must exist.
var ActiveStates = []TaskState{StateLeased, StateRunning, StateVerifying}

// IsActiveState reports whether a task in state s holds a lease.
func IsActiveState(s TaskState) bool {
	return s == StateLeased || s == StateRunning || s == StateVerifying
}

// IsTerminalState reports whether s is a terminal state.
func IsTerminalState(s TaskState) bool {
	return s == StateDone || s == StateDead
}

// Task is the backend-neutral view of a task row.
type Task struct {
	ID              string         `json:"id"`
	State           TaskState      `json:"state"`
	Priority        int            `json:"priority"`
	Payload         map[string]any `json:"payload,omitempty"`
	CreatedAt       int64          `json:"created_at"`
	UpdatedAt       int64          `json:"updated_at"`
	Attempts        int            `json:"attempts"`
	MaxAttempts     int            `json:"max_attempts"`
	TokenBudget     int64          `json:"token_budget,omitempty"`
	CostBudgetCents int64          `json:"cost_budget_cents,omitempty"`
	PolicyLabel     string         `json:"policy_label,omitempty"`
}

// DeclaredFiles extracts the file paths a task intends to modify from its
// payload ("files" key). Missing or malformed entries yield an empty slice.
func (t *Task) DeclaredFiles() []string {
	return DeclaredFiles(t.Payload)
}

// DeclaredFiles extracts the "files" list from an opaque task payload.
func DeclaredFiles(payload map[string]any) []string {
	raw, ok := payload["files"]
	if !ok {
		return nil
	}
	list, ok := raw.([]any)
	if !ok {
		// Payload round-tripped through typed construction rather than JSON.
		if ss, ok := raw.([]string); ok {
			return ss
		}
		return nil
	}
	files := make([]string, 0, len(list))
	for _, v := range list {
		if s, ok := v.(string); ok && s != "" {
			files = append(files, s)
		}
	}
	return files
}

// CreateTaskRequest is the input to task creation.
type CreateTaskRequest struct {
	ID              string         `json:"id,omitempty"` // assigned when empty
	Priority        int            `json:"priority"`     // lower = sooner
	Payload         map[string]any `json:"payload,omitempty"`
	MaxAttempts     int            `json:"max_attempts,omitempty"` // 0 → default
	TokenBudget     int64          `json:"token_budget,omitempty"`
	CostBudgetCents int64          `json:"cost_budget_cents,omitempty"`
	PolicyLabel     string         `json:"policy_label,omitempty"`
}

// TaskFilter narrows task listings and claim candidate scans.
type TaskFilter struct {
	States      []TaskState `json:"states,omitempty"`
	MinPriority *int        `json:"min_priority,omitempty"`
	MaxPriority *int        `json:"max_priority,omitempty"`
	PolicyLabel string      `json:"policy_label,omitempty"`
	Limit       int         `json:"limit,omitempty"`
}

// TransitionPatch carries the optional field updates applied together with
// a state transition.
type TransitionPatch struct {
	IncrementAttempts bool           `json:"increment_attempts,omitempty"`
	EventData         map[string]any `json:"event_data,omitempty"`
}
