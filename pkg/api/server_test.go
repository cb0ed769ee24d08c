package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openmaf/maf/pkg/config"
	"github.com/openmaf/maf/pkg/litestore"
	"github.com/openmaf/maf/pkg/models"
	"github.com/openmaf/maf/pkg/runtime"
)

func newTestServer(t *testing.T) (*Server, *runtime.Runtime) {
	t.Helper()
	cfg := config.DefaultConfig()
	store, err := litestore.Open(cfg, "")
	require.NoError(t, err)
	rt := runtime.NewWithBackend(store, cfg)
	t.Cleanup(func() { _ = rt.Close() })
	return NewServer(rt, nil, ":0"), rt
}

func doRequest(s *Server, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.http.Handler.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestHealthHealthy(t *testing.T) {
	s, _ := newTestServer(t)
	w := doRequest(s, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "memory", body["backend"])
}

func TestStatusSummary(t *testing.T) {
	s, rt := newTestServer(t)
	_, err := rt.CreateTask(context.Background(), models.CreateTaskRequest{ID: "task-1"})
	require.NoError(t, err)

	w := doRequest(s, http.MethodGet, "/api/v1/status", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var sum models.StatusSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sum))
	assert.Equal(t, "memory", sum.Backend)
	assert.Equal(t, 1, sum.TaskCounts[models.StateReady])
}

func TestListTasksFiltersByState(t *testing.T) {
	s, rt := newTestServer(t)
	ctx := context.Background()

	_, err := rt.CreateTask(ctx, models.CreateTaskRequest{ID: "task-1"})
	require.NoError(t, err)
	_, err = rt.CreateTask(ctx, models.CreateTaskRequest{ID: "task-2"})
	require.NoError(t, err)
	_, err = rt.AcquireLease(ctx, "task-2", "agent-1", 0)
	require.NoError(t, err)

	w := doRequest(s, http.MethodGet, "/api/v1/tasks?state=ready", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, float64(1), body["count"])

	w = doRequest(s, http.MethodGet, "/api/v1/tasks", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body = decodeBody(t, w)
	assert.Equal(t, float64(2), body["count"])
}

func TestGetTask(t *testing.T) {
	s, rt := newTestServer(t)
	_, err := rt.CreateTask(context.Background(), models.CreateTaskRequest{ID: "task-1"})
	require.NoError(t, err)

	w := doRequest(s, http.MethodGet, "/api/v1/tasks/task-1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var task models.Task
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &task))
	assert.Equal(t, "task-1", task.ID)
	assert.Equal(t, models.StateReady, task.State)
}

func TestGetTaskNotFound(t *testing.T) {
	s, _ := newTestServer(t)
	w := doRequest(s, http.MethodGet, "/api/v1/tasks/task-missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTaskEvents(t *testing.T) {
	s, rt := newTestServer(t)
	ctx := context.Background()
	_, err := rt.CreateTask(ctx, models.CreateTaskRequest{ID: "task-1"})
	require.NoError(t, err)
	_, err = rt.AcquireLease(ctx, "task-1", "agent-1", 0)
	require.NoError(t, err)

	w := doRequest(s, http.MethodGet, "/api/v1/tasks/task-1/events", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.GreaterOrEqual(t, body["count"], float64(2), "expected CREATED and CLAIMED at least")
}

func TestListEventsByKind(t *testing.T) {
	s, rt := newTestServer(t)
	_, err := rt.CreateTask(context.Background(), models.CreateTaskRequest{ID: "task-1"})
	require.NoError(t, err)

	w := doRequest(s, http.MethodGet, "/api/v1/events?kind=created", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, float64(1), body["count"])

	w = doRequest(s, http.MethodGet, "/api/v1/events?kind=OVERRIDE", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body = decodeBody(t, w)
	assert.Equal(t, float64(0), body["count"])
}

func TestListEventsRejectsBadSince(t *testing.T) {
	s, _ := newTestServer(t)
	w := doRequest(s, http.MethodGet, "/api/v1/events?since=yesterday", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStreamEventsUnavailableWithoutListener(t *testing.T) {
	s, _ := newTestServer(t)
	w := doRequest(s, http.MethodGet, "/api/v1/events/stream", nil)
	assert.Equal(t, http.StatusNotImplemented, w.Code)
}

func TestListAgents(t *testing.T) {
	s, rt := newTestServer(t)
	_, err := rt.Heartbeat(context.Background(), models.HeartbeatRequest{AgentID: "agent-1"})
	require.NoError(t, err)

	w := doRequest(s, http.MethodGet, "/api/v1/agents?status=active", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, float64(1), body["count"])

	w = doRequest(s, http.MethodGet, "/api/v1/agents?status=inactive", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body = decodeBody(t, w)
	assert.Equal(t, float64(0), body["count"])
}

func TestFetchMail(t *testing.T) {
	s, rt := newTestServer(t)
	env, err := rt.Send(context.Background(), models.DefaultChannel,
		models.KindEscalationRequest, "agent-1", map[string]any{"reason": "stuck"})
	require.NoError(t, err)

	w := doRequest(s, http.MethodGet, "/api/v1/mail/"+models.DefaultChannel, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, float64(1), body["count"])

	// Acknowledge it, then the unread fetch is empty but ?all=true still
	// returns it.
	w = doRequest(s, http.MethodPost, "/api/v1/mail/"+models.DefaultChannel+"/read",
		map[string]any{"ids": []int64{env.ID}})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), decodeBody(t, w)["acknowledged"])

	w = doRequest(s, http.MethodGet, "/api/v1/mail/"+models.DefaultChannel, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(0), decodeBody(t, w)["count"])

	w = doRequest(s, http.MethodGet, "/api/v1/mail/"+models.DefaultChannel+"?all=true", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), decodeBody(t, w)["count"])

	// A since_id cursor at the newest message skips everything before it.
	w = doRequest(s, http.MethodGet,
		fmt.Sprintf("/api/v1/mail/%s?all=true&since_id=%d", models.DefaultChannel, env.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(0), decodeBody(t, w)["count"])
}

func TestFetchMailUnknownChannel(t *testing.T) {
	s, _ := newTestServer(t)
	w := doRequest(s, http.MethodGet, "/api/v1/mail/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMarkMailReadRequiresIDs(t *testing.T) {
	s, _ := newTestServer(t)
	w := doRequest(s, http.MethodPost, "/api/v1/mail/"+models.DefaultChannel+"/read",
		map[string]any{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPostMonitorSample(t *testing.T) {
	s, rt := newTestServer(t)
	w := doRequest(s, http.MethodPost, "/api/v1/monitor", models.MonitorSample{
		Source:     "node-1",
		CPUPercent: 82.5,
		MemPercent: 40,
	})
	require.Equal(t, http.StatusAccepted, w.Code)
	assert.NotEmpty(t, decodeBody(t, w)["event_id"])

	events, err := rt.QueryEvents(context.Background(), models.EventQuery{
		Kinds: []string{models.EventMonitorSample},
	})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "node-1", events[0].Data["source"])
}

func TestPostMonitorSampleRejectsBadBody(t *testing.T) {
	s, _ := newTestServer(t)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/monitor", bytes.NewBufferString("{"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.http.Handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestErrorMappingReadOnly(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	respondError(c, models.ErrReadOnly)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestErrorMappingConflicts(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid argument", models.ErrInvalidArgument, http.StatusBadRequest},
		{"not found", models.ErrNotFound, http.StatusNotFound},
		{"already exists", models.ErrAlreadyExists, http.StatusConflict},
		{"unknown channel", models.ErrUnknownChannel, http.StatusNotFound},
		{"expired", models.ErrExpired, http.StatusConflict},
		{"lease conflict", &models.LeaseConflictError{TaskID: "task-1", Holder: "agent-2"}, http.StatusConflict},
		{"file leased", &models.FileLeasedError{Path: "a.go", Holder: "agent-2"}, http.StatusConflict},
		{"illegal transition", &models.IllegalTransitionError{TaskID: "task-1"}, http.StatusConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			respondError(c, tt.err)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}
