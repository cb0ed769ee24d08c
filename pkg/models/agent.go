package models

// AgentType classifies a registered agent.
type AgentType string

// Agent types.
const (
	AgentTypeCoordinator       AgentType = "coordinator"
	AgentTypeWorker            AgentType = "worker"
	AgentTypeVerifier          AgentType = "verifier"
	AgentTypeEscalationManager AgentType = "escalation_manager"
)

// AgentStatus is the liveness status of an agent.
type AgentStatus string

// Agent statuses.
const (
	AgentStatusActive      AgentStatus = "active"
	AgentStatusInactive    AgentStatus = "inactive"
	AgentStatusMaintenance AgentStatus = "maintenance"
	AgentStatusError       AgentStatus = "error"
)

// Agent is the backend-neutral view of an agent row. Agents are created on
// first heartbeat and never deleted (retained for audit).
type Agent struct {
	ID           string         `json:"id"`
	Name         string         `json:"name,omitempty"`
	Type         AgentType      `json:"type"`
	Status       AgentStatus    `json:"status"`
	LastSeen     int64          `json:"last_seen"`
	Capabilities []string       `json:"capabilities,omitempty"`
	Metadata     map[string]any `json:"metadata,omitempty"`
}

// HeartbeatRequest is the input to Heartbeat.
type HeartbeatRequest struct {
	AgentID      string         `json:"agent_id"`
	Name         string         `json:"name,omitempty"`
	Type         AgentType      `json:"type,omitempty"`   // defaults to worker
	Status       AgentStatus    `json:"status,omitempty"` // defaults to active
	Capabilities []string       `json:"capabilities,omitempty"`
	Context      map[string]any `json:"context,omitempty"`
}
