// Package api serves the runtime's HTTP surface: health, the status
// summary, journal queries, escalation channels, and the monitor sample
// sink. The coordination operations themselves (claim, transition,
// reserve) stay on the CLI; the HTTP surface is for dashboards and the
// external monitor.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/openmaf/maf/pkg/runtime"
	"github.com/openmaf/maf/pkg/stream"
	"github.com/openmaf/maf/pkg/version"
)

const requestTimeout = 10 * time.Second

// Server is the HTTP API server.
type Server struct {
	rt       *runtime.Runtime
	listener *stream.Listener // nil when the backend has no NOTIFY stream
	http     *http.Server
}

// NewServer creates the API server. listener may be nil; the event stream
// endpoint then reports itself unavailable.
func NewServer(rt *runtime.Runtime, listener *stream.Listener, addr string) *Server {
	s := &Server{rt: rt, listener: listener}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger())

	router.GET("/health", s.health)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/status", s.status)
		v1.GET("/tasks", s.listTasks)
		v1.GET("/tasks/:id", s.getTask)
		v1.GET("/tasks/:id/events", s.taskEvents)
		v1.GET("/events", s.listEvents)
		v1.GET("/events/stream", s.streamEvents)
		v1.GET("/agents", s.listAgents)
		v1.GET("/mail/:channel", s.fetchMail)
		v1.POST("/mail/:channel/read", s.markMailRead)
		v1.POST("/monitor", s.postMonitorSample)
	}

	s.http = &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Start serves until the listener fails or Shutdown is called.
func (s *Server) Start() error {
	slog.Info("API server starting", "addr", s.http.Addr, "version", version.Full())
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

// requestLogger logs one line per request in the runtime's slog format.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		slog.Info("HTTP request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start))
	}
}
