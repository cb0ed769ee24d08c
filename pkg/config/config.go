// Package config loads and validates the runtime configuration surface:
// backend selection, lease durations, liveness windows, sweep intervals,
// escalation channels, the pre-commit override variable, and the
// thresholds surfaced for the external monitor.
package config

import "time"

// Config is the umbrella configuration object returned by Initialize()
// and passed to the runtime façade, the daemon, and the CLI.
type Config struct {
	configDir string

	Runtime   *RuntimeConfig     `yaml:"runtime"`
	Leases    *LeaseConfig       `yaml:"leases"`
	Liveness  *LivenessConfig    `yaml:"liveness"`
	Channels  *ChannelConfig     `yaml:"channels"`
	Enforcer  *EnforcerConfig    `yaml:"enforcer"`
	Monitor   *MonitorThresholds `yaml:"monitor"`
	Retention *RetentionConfig   `yaml:"retention"`
}

// ConfigDir returns the configuration directory path.
func (c *Config) ConfigDir() string {
	return c.configDir
}

// RuntimeConfig selects and parameterizes the storage backend.
type RuntimeConfig struct {
	// Backends is the ordered fallback list; recognized values are
	// "durable", "file", and "memory" ("memory" is for tests only).
	Backends []Backend `yaml:"backends"`

	// DataDir is the directory root for the file backend.
	DataDir string `yaml:"data_dir"`
}

// LeaseConfig bounds task-lease and file-reservation lifetimes.
type LeaseConfig struct {
	// DefaultDuration is granted when the caller does not ask for one.
	DefaultDuration time.Duration `yaml:"default_duration"`

	// MaxDuration caps caller-requested lease durations.
	MaxDuration time.Duration `yaml:"max_duration"`

	// SweepInterval is how often expired leases and reservations are
	// reclaimed. Zero derives DefaultDuration/4 at runtime.
	SweepInterval time.Duration `yaml:"sweep_interval"`
}

// EffectiveSweepInterval returns the configured sweep interval, deriving
// min-lease-duration/4 when unset.
func (l *LeaseConfig) EffectiveSweepInterval() time.Duration {
	if l.SweepInterval > 0 {
		return l.SweepInterval
	}
	return l.DefaultDuration / 4
}

// LivenessConfig governs agent heartbeats and staleness.
type LivenessConfig struct {
	// HeartbeatInterval is the cadence agents are expected to report at.
	// A heartbeat also refreshes any of the agent's leases expiring within
	// one interval.
	HeartbeatInterval time.Duration `yaml:"heartbeat_interval"`

	// Timeout is how long an agent may go silent before it is marked
	// inactive and its leases reclaimed.
	Timeout time.Duration `yaml:"timeout"`

	// SweepInterval is how often stale agents are swept. Zero derives
	// Timeout/3 at runtime.
	SweepInterval time.Duration `yaml:"sweep_interval"`
}

// EffectiveSweepInterval returns the configured liveness sweep interval,
// deriving timeout/3 when unset.
func (l *LivenessConfig) EffectiveSweepInterval() time.Duration {
	if l.SweepInterval > 0 {
		return l.SweepInterval
	}
	return l.Timeout / 3
}

// ChannelConfig names the escalation channels registered at bootstrap.
// "agent-mail" is always registered in addition to these.
type ChannelConfig struct {
	// DebugTarget receives RESERVATION_CONFLICT and failure escalations.
	DebugTarget string `yaml:"debug_target"`

	// ReviewTarget receives senior-review escalation requests.
	ReviewTarget string `yaml:"review_target"`

	// Extra channels registered in addition to the defaults.
	Extra []string `yaml:"extra"`
}

// All returns every channel to register, deduplicated, agent-mail first.
func (c *ChannelConfig) All() []string {
	seen := map[string]bool{}
	out := []string{}
	for _, ch := range append([]string{"agent-mail", c.DebugTarget, c.ReviewTarget}, c.Extra...) {
		if ch == "" || seen[ch] {
			continue
		}
		seen[ch] = true
		out = append(out, ch)
	}
	return out
}

// EnforcerConfig parameterizes the pre-commit enforcer.
type EnforcerConfig struct {
	// OverrideVar is the environment variable that, when set non-empty,
	// bypasses pre-commit blocking. The override is always journaled.
	OverrideVar string `yaml:"override_var"`
}

// RetentionConfig bounds how long settled data is kept. The journal
// itself is never pruned; retention only removes task rows that reached
// a terminal state, acknowledged mail, and resolved conflicts.
type RetentionConfig struct {
	// Enabled turns the periodic retention loop on.
	Enabled bool `yaml:"enabled"`

	// TerminalTaskAge is how long DONE and DEAD tasks are kept.
	TerminalTaskAge time.Duration `yaml:"terminal_task_age"`

	// MailAge is how long read envelopes are kept.
	MailAge time.Duration `yaml:"mail_age"`

	// Interval is the cadence of the retention loop.
	Interval time.Duration `yaml:"interval"`
}

// MonitorThresholds are surfaced to the external monitor as events; the
// runtime never acts on them itself.
type MonitorThresholds struct {
	CPUPercent  float64 `yaml:"cpu_percent"`
	MemPercent  float64 `yaml:"mem_percent"`
	DiskPercent float64 `yaml:"disk_percent"`
	ContextUsed float64 `yaml:"context_used"`
}
