// maf is the coordination daemon — opens the backend, repairs state left
// behind by crashes, runs the sweep loops, and serves the HTTP API.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/openmaf/maf/pkg/api"
	"github.com/openmaf/maf/pkg/cleanup"
	"github.com/openmaf/maf/pkg/config"
	"github.com/openmaf/maf/pkg/database"
	"github.com/openmaf/maf/pkg/runtime"
	"github.com/openmaf/maf/pkg/stream"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	// Parse command-line flags
	configDir := flag.String("config-dir",
		getEnv("MAF_CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	httpPort := getEnv("HTTP_PORT", "8080")

	slog.Info("Starting MAF", "http_port", httpPort, "config_dir", *configDir)

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Open the backend along the configured fallback order
	rt, err := runtime.Open(ctx, cfg)
	if err != nil {
		slog.Error("No backend available", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := rt.Close(); err != nil {
			slog.Error("Error closing backend", "error", err)
		}
	}()

	// 3. Streaming infrastructure — only the durable backend has a
	// pg_notify fan-out. File and memory backends serve everything else
	// and the API degrades /events/stream to 501.
	var listener *stream.Listener
	streamCtx, streamCancel := context.WithCancel(ctx)
	defer streamCancel()

	var retention *cleanup.Service
	if durable, ok := rt.Backend().(*runtime.DurableBackend); ok {
		dbCfg, err := database.LoadConfigFromEnv()
		if err != nil {
			slog.Error("Failed to load database config", "error", err)
			os.Exit(1)
		}
		if hs, err := database.Health(ctx, durable.Client().DB()); err != nil {
			slog.Warn("Database health check failed", "error", err)
		} else {
			slog.Info("Database healthy",
				"response_time_ms", hs.ResponseTime,
				"open_connections", hs.OpenConnections)
		}

		durable.Journal().SetBroadcaster(stream.NewPublisher(durable.Client().DB()))
		listener = stream.NewListener(dbCfg.DSN())
		go listener.Run(streamCtx)
		slog.Info("Event stream initialized")

		if cfg.Retention.Enabled {
			retention = cleanup.NewService(cfg.Retention, durable.Client().Client, durable.Journal())
			retention.Start(ctx)
			defer retention.Stop()
		}
	}

	// 4. Startup reclamation: one sweep pass before anything claims
	if err := rt.Bootstrap(ctx); err != nil {
		slog.Error("Startup reclamation failed", "error", err)
		// Non-fatal — the periodic sweeps retry
	}

	// 5. Start sweep loops
	sweepCtx, sweepCancel := context.WithCancel(ctx)
	sweeper := runtime.NewSweeper(rt)
	sweeper.Start(sweepCtx)

	// 6. Start HTTP server (non-blocking)
	httpServer := api.NewServer(rt, listener, ":"+httpPort)
	errCh := make(chan error, 1)
	go func() {
		if err := httpServer.Start(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("MAF started successfully", "backend", rt.Backend().Name())

	// 7. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 8. Graceful shutdown: stop the API first so no new work arrives,
	// then let in-flight sweeps drain.
	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	sweepCancel()
	streamCancel()

	done := make(chan struct{})
	go func() {
		sweeper.Wait()
		close(done)
	}()
	select {
	case <-done:
		slog.Info("Sweepers stopped gracefully")
	case <-time.After(10 * time.Second):
		slog.Warn("Sweeper shutdown timeout exceeded")
	}

	slog.Info("Shutdown complete")
}
