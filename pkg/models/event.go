package models

// Event kinds appended to the journal. The set is extensible; these are
// the kinds the runtime itself emits.
const (
	EventCreated             = "CREATED"
	EventClaimed             = "CLAIMED"
	EventRunning             = "RUNNING"
	EventVerifying           = "VERIFYING"
	EventCommitted           = "COMMITTED"
	EventRollback            = "ROLLBACK"
	EventDone                = "DONE"
	EventDead                = "DEAD"
	EventLeaseReleased       = "LEASE_RELEASED"
	EventLeaseExpired        = "LEASE_EXPIRED"
	EventHeartbeatRenewFail  = "HEARTBEAT_RENEW_FAILURE"
	EventHeartbeatMissed     = "HEARTBEAT_MISSED"
	EventError               = "ERROR"
	EventReservationCreated  = "RESERVATION_CREATED"
	EventReservationReleased = "RESERVATION_RELEASED"
	EventReservationConflict = "RESERVATION_CONFLICT"
	EventEscalationSent      = "ESCALATION_SENT"
	EventEscalationRead      = "ESCALATION_READ"
	EventOverride            = "OVERRIDE"
	EventBackendFallback     = "BACKEND_FALLBACK"
	EventSweepFailure        = "SWEEP_FAILURE"
	EventMonitorSample       = "MONITOR_SAMPLE"
	EventEvidenceRecorded    = "EVIDENCE_RECORDED"
	EventRetentionPrune      = "RETENTION_PRUNE"
)

// transitionEvents maps a target task state to the journal kind emitted
// alongside the transition.
var transitionEvents = map[TaskState]string{
	StateLeased:    EventClaimed,
	StateRunning:   EventRunning,
	StateVerifying: EventVerifying,
	StateCommitted: EventCommitted,
	StateRollback:  EventRollback,
	StateDone:      EventDone,
	StateDead:      EventDead,
}

// TransitionEventKind returns the journal kind for a transition into state
// to. The LEASED→READY revert has two distinct kinds (release vs expiry)
// chosen by the caller, so READY maps to LEASE_RELEASED by default.
func TransitionEventKind(to TaskState) string {
	if k, ok := transitionEvents[to]; ok {
		return k
	}
	if to == StateReady {
		return EventLeaseReleased
	}
	return EventError
}

// Event is one append-only journal row.
type Event struct {
	ID     int64          `json:"id"`
	TaskID string         `json:"task_id,omitempty"`
	TS     int64          `json:"ts"`
	Kind   string         `json:"kind"`
	Data   map[string]any `json:"data,omitempty"`
}

// EventQuery filters journal reads. Results are ordered ts desc, id desc
// and capped at EventQueryCap.
type EventQuery struct {
	Recent int      `json:"recent,omitempty"` // 0 → EventQueryCap
	Kinds  []string `json:"kinds,omitempty"`
	TaskID string   `json:"task_id,omitempty"`
	Since  int64    `json:"since,omitempty"` // ms, exclusive lower bound
}

// EventQueryCap is the hard ceiling on journal query results.
const EventQueryCap = 1000

// VerifierResult is a verifier outcome.
type VerifierResult string

// Verifier outcomes.
const (
	ResultPass VerifierResult = "PASS"
	ResultFail VerifierResult = "FAIL"
)

// Evidence is one per-attempt, per-verifier verdict. The (task, attempt,
// verifier) triple is append-once.
type Evidence struct {
	TaskID   string         `json:"task_id"`
	Attempt  int            `json:"attempt"`
	Verifier string         `json:"verifier"`
	Result   VerifierResult `json:"result"`
	Details  map[string]any `json:"details,omitempty"`
}
