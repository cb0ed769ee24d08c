package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// ConfigFileName is the YAML file looked up inside the config directory.
const ConfigFileName = "maf.yaml"

// Initialize loads, merges, and validates configuration.
//
// Steps performed:
//  1. Start from built-in defaults
//  2. Merge maf.yaml from configDir (when present)
//  3. Apply environment variable overrides (MAF_*)
//  4. Validate
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	log.Info("Configuration initialized successfully",
		"backends", cfg.Runtime.Backends,
		"channels", cfg.Channels.All(),
		"default_lease", cfg.Leases.DefaultDuration,
		"liveness_timeout", cfg.Liveness.Timeout)

	return cfg, nil
}

func load(configDir string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.configDir = configDir

	path := filepath.Join(configDir, ConfigFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Info("No config file found, using built-in defaults", "path", path)
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	// File values override built-in defaults.
	if err := mergo.Merge(cfg, &fileCfg, mergo.WithOverride); err != nil {
		return nil, fmt.Errorf("failed to merge configuration: %w", err)
	}
	cfg.configDir = configDir

	return cfg, nil
}

// applyEnvOverrides applies the MAF_* environment variables recognized by
// the runtime. Environment wins over the config file.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("MAF_BACKENDS"); v != "" {
		backends, err := ParseBackends(v)
		if err != nil {
			return fmt.Errorf("invalid MAF_BACKENDS: %w", err)
		}
		cfg.Runtime.Backends = backends
	}
	if v := os.Getenv("MAF_DATA_DIR"); v != "" {
		cfg.Runtime.DataDir = v
	}
	if v := os.Getenv("MAF_OVERRIDE_VAR"); v != "" {
		cfg.Enforcer.OverrideVar = v
	}
	for env, target := range map[string]*string{
		"MAF_DEBUG_CHANNEL":  &cfg.Channels.DebugTarget,
		"MAF_REVIEW_CHANNEL": &cfg.Channels.ReviewTarget,
	} {
		if v := os.Getenv(env); v != "" {
			*target = v
		}
	}
	return nil
}

func validate(cfg *Config) error {
	if len(cfg.Runtime.Backends) == 0 {
		return fmt.Errorf("runtime.backends must name at least one backend")
	}
	for _, b := range cfg.Runtime.Backends {
		switch b {
		case BackendDurable, BackendFile, BackendMemory:
		default:
			return fmt.Errorf("unrecognized backend %q", b)
		}
	}
	if cfg.Leases.DefaultDuration <= 0 {
		return fmt.Errorf("leases.default_duration must be positive")
	}
	if cfg.Leases.MaxDuration < cfg.Leases.DefaultDuration {
		return fmt.Errorf("leases.max_duration must be >= default_duration")
	}
	if cfg.Liveness.HeartbeatInterval <= 0 {
		return fmt.Errorf("liveness.heartbeat_interval must be positive")
	}
	if cfg.Liveness.Timeout < cfg.Liveness.HeartbeatInterval {
		return fmt.Errorf("liveness.timeout must be >= heartbeat_interval")
	}
	if cfg.Enforcer.OverrideVar == "" {
		return fmt.Errorf("enforcer.override_var must not be empty")
	}
	if cfg.Retention.Enabled {
		if cfg.Retention.TerminalTaskAge <= 0 || cfg.Retention.MailAge <= 0 {
			return fmt.Errorf("retention ages must be positive when retention is enabled")
		}
		if cfg.Retention.Interval <= 0 {
			return fmt.Errorf("retention.interval must be positive when retention is enabled")
		}
	}
	return nil
}
