package config

import "time"

// DefaultConfig returns the built-in configuration. User YAML and
// environment overrides are merged over these values.
func DefaultConfig() *Config {
	return &Config{
		Runtime: &RuntimeConfig{
			Backends: []Backend{BackendDurable, BackendFile},
			DataDir:  "./data",
		},
		Leases: &LeaseConfig{
			DefaultDuration: 10 * time.Minute,
			MaxDuration:     2 * time.Hour,
			// SweepInterval derived: DefaultDuration / 4
		},
		Liveness: &LivenessConfig{
			HeartbeatInterval: 30 * time.Second,
			Timeout:           3 * time.Minute,
			// SweepInterval derived: Timeout / 3
		},
		Channels: &ChannelConfig{
			DebugTarget:  "debug-agent",
			ReviewTarget: "senior-review",
		},
		Enforcer: &EnforcerConfig{
			OverrideVar: "MAF_PRECOMMIT_OVERRIDE",
		},
		Retention: &RetentionConfig{
			Enabled:         true,
			TerminalTaskAge: 30 * 24 * time.Hour,
			MailAge:         7 * 24 * time.Hour,
			Interval:        6 * time.Hour,
		},
		Monitor: &MonitorThresholds{
			CPUPercent:  90,
			MemPercent:  90,
			DiskPercent: 85,
			ContextUsed: 80,
		},
	}
}
