// mafctl is the agent-facing command line for the coordination runtime.
// Scripts drive it through the exit code: 0 success, 2 no work, 3 bad
// arguments, 4 lease conflict.
package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/openmaf/maf/pkg/cli"
	"github.com/openmaf/maf/pkg/config"
	"github.com/openmaf/maf/pkg/runtime"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	// The CLI is quiet by default; structured logs go to stderr so JSON
	// output on stdout stays parseable.
	level := slog.LevelWarn
	if os.Getenv("MAF_DEBUG") != "" {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	configDir := getEnv("MAF_CONFIG_DIR", ".")
	envPath := filepath.Join(configDir, ".env")
	if err := godotenv.Load(envPath); err == nil {
		slog.Debug("Loaded environment", "path", envPath)
	}

	ctx := context.Background()

	cfg, err := config.Initialize(ctx, configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(cli.ExitError)
	}

	rt, err := runtime.Open(ctx, cfg)
	if err != nil {
		slog.Error("No backend available", "error", err)
		os.Exit(cli.ExitError)
	}
	app := cli.NewApp(rt, os.Stdout, os.Stderr)
	code := app.Run(ctx, os.Args[1:])

	if err := rt.Close(); err != nil {
		slog.Warn("Error closing backend", "error", err)
	}
	os.Exit(code)
}
