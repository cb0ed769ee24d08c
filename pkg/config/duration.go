package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// yamlDuration accepts both "10m" strings and integer nanoseconds, which
// yaml.v3 cannot do for time.Duration on its own.
type yamlDuration time.Duration

func (d *yamlDuration) UnmarshalYAML(value *yaml.Node) error {
	var n int64
	if err := value.Decode(&n); err == nil {
		*d = yamlDuration(n)
		return nil
	}

	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("invalid duration %q", value.Value)
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = yamlDuration(parsed)
	return nil
}

// UnmarshalYAML decodes lease durations given as strings ("10m").
func (l *LeaseConfig) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		DefaultDuration yamlDuration `yaml:"default_duration"`
		MaxDuration     yamlDuration `yaml:"max_duration"`
		SweepInterval   yamlDuration `yaml:"sweep_interval"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	l.DefaultDuration = time.Duration(raw.DefaultDuration)
	l.MaxDuration = time.Duration(raw.MaxDuration)
	l.SweepInterval = time.Duration(raw.SweepInterval)
	return nil
}

// UnmarshalYAML decodes liveness windows given as strings ("30s").
func (l *LivenessConfig) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		HeartbeatInterval yamlDuration `yaml:"heartbeat_interval"`
		Timeout           yamlDuration `yaml:"timeout"`
		SweepInterval     yamlDuration `yaml:"sweep_interval"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	l.HeartbeatInterval = time.Duration(raw.HeartbeatInterval)
	l.Timeout = time.Duration(raw.Timeout)
	l.SweepInterval = time.Duration(raw.SweepInterval)
	return nil
}

// UnmarshalYAML decodes retention ages given as strings ("720h").
func (r *RetentionConfig) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		Enabled         bool         `yaml:"enabled"`
		TerminalTaskAge yamlDuration `yaml:"terminal_task_age"`
		MailAge         yamlDuration `yaml:"mail_age"`
		Interval        yamlDuration `yaml:"interval"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	r.Enabled = raw.Enabled
	r.TerminalTaskAge = time.Duration(raw.TerminalTaskAge)
	r.MailAge = time.Duration(raw.MailAge)
	r.Interval = time.Duration(raw.Interval)
	return nil
}
