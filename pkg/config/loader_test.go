package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeDefaultsWithoutConfigFile(t *testing.T) {
	cfg, err := Initialize(context.Background(), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, []Backend{BackendDurable, BackendFile}, cfg.Runtime.Backends)
	assert.Equal(t, 10*time.Minute, cfg.Leases.DefaultDuration)
	assert.Equal(t, 2*time.Hour, cfg.Leases.MaxDuration)
	assert.Equal(t, 30*time.Second, cfg.Liveness.HeartbeatInterval)
	assert.Equal(t, "MAF_PRECOMMIT_OVERRIDE", cfg.Enforcer.OverrideVar)
	assert.True(t, cfg.Retention.Enabled)
}

func TestInitializeMergesYAMLOverDefaults(t *testing.T) {
	dir := t.TempDir()
	yaml := `
runtime:
  backends: [file]
  data_dir: /var/lib/maf
leases:
  default_duration: 5m
channels:
  extra: [infra-alerts]
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(yaml), 0o600))

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, []Backend{BackendFile}, cfg.Runtime.Backends)
	assert.Equal(t, "/var/lib/maf", cfg.Runtime.DataDir)
	assert.Equal(t, 5*time.Minute, cfg.Leases.DefaultDuration)
	// Untouched sections keep their defaults.
	assert.Equal(t, 2*time.Hour, cfg.Leases.MaxDuration)
	assert.Contains(t, cfg.Channels.All(), "infra-alerts")
}

func TestInitializeEnvOverridesWinOverFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName),
		[]byte("runtime:\n  backends: [durable]\n"), 0o600))

	t.Setenv("MAF_BACKENDS", "memory")
	t.Setenv("MAF_DATA_DIR", "/tmp/maf-test")
	t.Setenv("MAF_DEBUG_CHANNEL", "debug-2")

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, []Backend{BackendMemory}, cfg.Runtime.Backends)
	assert.Equal(t, "/tmp/maf-test", cfg.Runtime.DataDir)
	assert.Equal(t, "debug-2", cfg.Channels.DebugTarget)
}

func TestInitializeRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown backend", "runtime:\n  backends: [cloud]\n"},
		{"zero lease duration", "leases:\n  default_duration: -1s\n"},
		{"max below default", "leases:\n  max_duration: 1m\n"},
		{"timeout below heartbeat", "liveness:\n  timeout: 1s\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(tt.yaml), 0o600))
			_, err := Initialize(context.Background(), dir)
			assert.Error(t, err)
		})
	}
}

func TestParseBackends(t *testing.T) {
	got, err := ParseBackends("durable, FILE,memory")
	require.NoError(t, err)
	assert.Equal(t, []Backend{BackendDurable, BackendFile, BackendMemory}, got)

	got, err = ParseBackends("")
	require.NoError(t, err)
	assert.Equal(t, []Backend{BackendDurable, BackendFile}, got)

	_, err = ParseBackends("durable,cloud")
	assert.Error(t, err)
}

func TestChannelConfigAll(t *testing.T) {
	c := &ChannelConfig{
		DebugTarget:  "debug-agent",
		ReviewTarget: "senior-review",
		Extra:        []string{"debug-agent", "", "ops"},
	}
	assert.Equal(t, []string{"agent-mail", "debug-agent", "senior-review", "ops"}, c.All())
}

func TestEffectiveSweepIntervals(t *testing.T) {
	l := &LeaseConfig{DefaultDuration: 8 * time.Minute}
	assert.Equal(t, 2*time.Minute, l.EffectiveSweepInterval())
	l.SweepInterval = 15 * time.Second
	assert.Equal(t, 15*time.Second, l.EffectiveSweepInterval())

	lv := &LivenessConfig{Timeout: 90 * time.Second}
	assert.Equal(t, 30*time.Second, lv.EffectiveSweepInterval())
}
