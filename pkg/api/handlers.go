package api

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/openmaf/maf/pkg/models"
)

// health handles GET /health. Minimal and unauthenticated: the runtime is
// healthy when its backend answers the status summary, degraded when it is
// read-only.
func (s *Server) health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	summary, err := s.rt.Summary(ctx)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unhealthy",
			"error":  err.Error(),
		})
		return
	}

	status := "healthy"
	if summary.ReadOnly {
		status = "degraded"
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  status,
		"backend": summary.Backend,
	})
}

// status handles GET /api/v1/status.
func (s *Server) status(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	summary, err := s.rt.Summary(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// listTasks handles GET /api/v1/tasks?state=READY,LEASED&limit=50.
func (s *Server) listTasks(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	var filter models.TaskFilter
	if states := c.Query("state"); states != "" {
		for _, st := range strings.Split(states, ",") {
			filter.States = append(filter.States, models.TaskState(strings.ToUpper(strings.TrimSpace(st))))
		}
	}
	filter.PolicyLabel = c.Query("policy")
	filter.Limit = intQuery(c, "limit", 100)

	tasks, err := s.rt.ListTasks(ctx, filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tasks": tasks, "count": len(tasks)})
}

// getTask handles GET /api/v1/tasks/:id.
func (s *Server) getTask(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	task, err := s.rt.GetTask(ctx, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// taskEvents handles GET /api/v1/tasks/:id/events.
func (s *Server) taskEvents(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	events, err := s.rt.QueryEvents(ctx, models.EventQuery{
		TaskID: c.Param("id"),
		Recent: intQuery(c, "recent", 0),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events, "count": len(events)})
}

// listEvents handles GET /api/v1/events?kind=ERROR,OVERRIDE&recent=100.
func (s *Server) listEvents(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	q := models.EventQuery{
		Recent: intQuery(c, "recent", 0),
		TaskID: c.Query("task"),
	}
	if kinds := c.Query("kind"); kinds != "" {
		for _, k := range strings.Split(kinds, ",") {
			q.Kinds = append(q.Kinds, strings.ToUpper(strings.TrimSpace(k)))
		}
	}
	if since := c.Query("since"); since != "" {
		ms, err := strconv.ParseInt(since, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "since must be milliseconds since epoch"})
			return
		}
		q.Since = ms
	}

	events, err := s.rt.QueryEvents(ctx, q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events, "count": len(events)})
}

// streamEvents handles GET /api/v1/events/stream as server-sent events fed
// from the NOTIFY listener. Clients that miss wakeups re-read /events.
func (s *Server) streamEvents(c *gin.Context) {
	if s.listener == nil {
		c.JSON(http.StatusNotImplemented, gin.H{"error": "event stream requires the durable backend"})
		return
	}

	events, cancel := s.listener.Subscribe()
	defer cancel()

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")

	c.Stream(func(w io.Writer) bool {
		select {
		case <-c.Request.Context().Done():
			return false
		case ev, ok := <-events:
			if !ok {
				return false
			}
			c.SSEvent("journal", ev)
			return true
		}
	})
}

// listAgents handles GET /api/v1/agents?status=active.
func (s *Server) listAgents(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	agents, err := s.rt.ListAgents(ctx, models.AgentStatus(c.Query("status")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"agents": agents, "count": len(agents)})
}

// fetchMail handles GET /api/v1/mail/:channel?since_id=N&all=true.
func (s *Server) fetchMail(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	includeRead := c.Query("all") == "true"
	sinceID := int64Query(c, "since_id", 0)
	envelopes, err := s.rt.Fetch(ctx, c.Param("channel"), sinceID, includeRead, intQuery(c, "limit", 0))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": envelopes, "count": len(envelopes)})
}

// markMailRead handles POST /api/v1/mail/:channel/read.
func (s *Server) markMailRead(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	var body struct {
		IDs []int64 `json:"ids" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	n, err := s.rt.MarkRead(ctx, c.Param("channel"), body.IDs)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"acknowledged": n})
}

// postMonitorSample handles POST /api/v1/monitor.
func (s *Server) postMonitorSample(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	var sample models.MonitorSample
	if err := c.ShouldBindJSON(&sample); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ev, err := s.rt.RecordMonitorSample(ctx, sample)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"event_id": ev.ID})
}

func intQuery(c *gin.Context, name string, def int) int {
	raw := c.Query(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return def
	}
	return n
}

func int64Query(c *gin.Context, name string, def int64) int64 {
	raw := c.Query(name)
	if raw == "" {
		return def
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n < 0 {
		return def
	}
	return n
}
