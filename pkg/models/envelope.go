package models

// EnvelopeKind classifies an escalation-channel message.
type EnvelopeKind string

// Envelope kinds.
const (
	KindPreflightCheck      EnvelopeKind = "PREFLIGHT_CHECK"
	KindPreflightResult     EnvelopeKind = "PREFLIGHT_RESULT"
	KindReservationConflict EnvelopeKind = "RESERVATION_CONFLICT"
	KindEscalationRequest   EnvelopeKind = "ESCALATION_REQUEST"
	KindEscalationResponse  EnvelopeKind = "ESCALATION_RESPONSE"
)

// KnownEnvelopeKinds lists the envelope kinds the runtime accepts.
var KnownEnvelopeKinds = []EnvelopeKind{
	KindPreflightCheck, KindPreflightResult, KindReservationConflict,
	KindEscalationRequest, KindEscalationResponse,
}

// IsKnownEnvelopeKind reports whether k is a recognized envelope kind.
func IsKnownEnvelopeKind(k EnvelopeKind) bool {
	for _, v := range KnownEnvelopeKinds {
		if v == k {
			return true
		}
	}
	return false
}

// Envelope is one durable point-to-point message on a named channel.
// Delivery is at-least-once; consumers mark messages read.
type Envelope struct {
	ID        int64          `json:"id"`
	Kind      EnvelopeKind   `json:"kind"`
	FromAgent string         `json:"from_agent"`
	Channel   string         `json:"to_channel"`
	CreatedAt int64          `json:"created_at"`
	Payload   map[string]any `json:"payload,omitempty"`
	Read      bool           `json:"read"`
}

// ReservationConflictPayload is the payload of a RESERVATION_CONFLICT
// envelope.
type ReservationConflictPayload struct {
	FilePath       string `json:"file_path"`
	ConflictType   string `json:"conflict_type"`
	Severity       string `json:"severity"`
	ExistingAgent  string `json:"existing_agent"`
	RequestedAgent string `json:"requested_agent"`
	ExpiresAt      int64  `json:"expires_at,omitempty"`
}

// EscalationRequestPayload is the payload of an ESCALATION_REQUEST envelope.
type EscalationRequestPayload struct {
	ExecutionID string `json:"execution_id"`
	PathID      string `json:"path_id,omitempty"`
	Level       string `json:"level,omitempty"`
	Context     string `json:"context,omitempty"`
	Reason      string `json:"reason"`
	Priority    int    `json:"priority,omitempty"`
}

// PreflightResultPayload is the payload of a PREFLIGHT_RESULT envelope.
type PreflightResultPayload struct {
	ExecutionID string `json:"execution_id"`
	ConfigID    string `json:"config_id,omitempty"`
	Status      string `json:"status"` // passed | warnings | failed
	Summary     string `json:"summary,omitempty"`
	DurationMS  int64  `json:"duration_ms,omitempty"`
}

// DefaultChannel is the channel every deployment registers at bootstrap.
const DefaultChannel = "agent-mail"
