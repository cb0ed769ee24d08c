package models

// Lease is a time-bounded exclusive right for one agent to work on one
// task. At most one lease row exists per task.
type Lease struct {
	TaskID    string `json:"task_id"`
	AgentID   string `json:"agent_id"`
	ExpiresAt int64  `json:"lease_expires_at"`
	Attempt   int    `json:"attempt"`
}

// ReservationStatus is the lifecycle status of a file reservation.
type ReservationStatus string

// Reservation statuses.
const (
	ReservationActive   ReservationStatus = "active"
	ReservationExpired  ReservationStatus = "expired"
	ReservationReleased ReservationStatus = "released"
)

// Reservation is a time-bounded exclusive right for one agent to modify
// one file path. At most one active reservation exists per path.
type Reservation struct {
	ID        string            `json:"id"`
	FilePath  string            `json:"file_path"`
	AgentID   string            `json:"agent_id"`
	ExpiresAt int64             `json:"lease_expires_at"`
	Status    ReservationStatus `json:"status"`
	Reason    string            `json:"lease_reason,omitempty"`
	Metadata  map[string]any    `json:"metadata,omitempty"`
}

// ConflictSeverity grades a recorded reservation conflict.
type ConflictSeverity string

// Conflict severities.
const (
	SeverityLow      ConflictSeverity = "low"
	SeverityMedium   ConflictSeverity = "medium"
	SeverityHigh     ConflictSeverity = "high"
	SeverityCritical ConflictSeverity = "critical"
)

// ReservationConflict is the audit record written whenever two agents
// contend for the same path.
type ReservationConflict struct {
	ID                 string           `json:"id"`
	FilePath           string           `json:"file_path"`
	ConflictingAgent   string           `json:"conflicting_agent"`
	ExistingAgent      string           `json:"existing_agent"`
	ConflictType       string           `json:"conflict_type"`
	Severity           ConflictSeverity `json:"severity"`
	Status             string           `json:"status"`
	DetectedAt         int64            `json:"detected_at"`
	ResolvedAt         int64            `json:"resolved_at,omitempty"`
	ResolutionStrategy string           `json:"resolution_strategy,omitempty"`
	EvidenceRef        string           `json:"evidence_ref,omitempty"`
}

// Conflict types.
const (
	ConflictTypeClaim     = "claim"
	ConflictTypePreCommit = "pre_commit"
)

// Conflict statuses.
const (
	ConflictStatusOpen     = "open"
	ConflictStatusResolved = "resolved"
)
