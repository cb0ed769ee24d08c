package models

// StatusSummary is the cheap, cache-friendly read-only summary consumed by
// the status CLI and the HTTP status endpoint.
type StatusSummary struct {
	Backend            string            `json:"backend"`
	ReadOnly           bool              `json:"read_only,omitempty"`
	TaskCounts         map[TaskState]int `json:"task_counts"`
	ActiveLeases       int               `json:"active_leases"`
	ActiveReservations int               `json:"active_reservations"`
	ActiveAgents       int               `json:"active_agents"`
	RecentErrors       []Event           `json:"recent_errors,omitempty"`
	GeneratedAt        int64             `json:"generated_at"`
}

// MonitorSample is a resource-threshold observation posted by the external
// monitor. The runtime only surfaces these as journal events; it never acts
// on them itself.
type MonitorSample struct {
	Source      string  `json:"source"`
	CPUPercent  float64 `json:"cpu_percent,omitempty"`
	MemPercent  float64 `json:"mem_percent,omitempty"`
	DiskPercent float64 `json:"disk_percent,omitempty"`
	ContextUsed float64 `json:"context_used,omitempty"`
	ObservedAt  int64   `json:"observed_at,omitempty"`
}
