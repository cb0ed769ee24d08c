package runtime

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openmaf/maf/pkg/config"
	"github.com/openmaf/maf/pkg/litestore"
	"github.com/openmaf/maf/pkg/models"
)

func testConfig() *config.Config {
	return config.DefaultConfig()
}

func newMemoryRuntime(t *testing.T) *Runtime {
	t.Helper()
	cfg := testConfig()
	store, err := litestore.Open(cfg, "")
	require.NoError(t, err)
	rt := NewWithBackend(store, cfg)
	t.Cleanup(func() { _ = rt.Close() })
	return rt
}

func TestOpenFallsBackAndJournals(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig()
	cfg.Runtime.Backends = []config.Backend{config.BackendFile, config.BackendMemory}
	cfg.Runtime.DataDir = dir

	// Hold the file backend's lock so the first backend fails to open.
	blocker, err := litestore.Open(cfg, dir)
	require.NoError(t, err)
	defer blocker.Close()

	rt, err := Open(context.Background(), cfg)
	require.NoError(t, err)
	defer rt.Close()

	assert.Equal(t, "memory", rt.Backend().Name())

	events, err := rt.QueryEvents(context.Background(), models.EventQuery{
		Kinds: []string{models.EventBackendFallback},
	})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "memory", events[0].Data["selected"])
}

func TestOpenFailsWhenNoBackendAvailable(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig()
	cfg.Runtime.Backends = []config.Backend{config.BackendFile}
	cfg.Runtime.DataDir = dir

	blocker, err := litestore.Open(cfg, dir)
	require.NoError(t, err)
	defer blocker.Close()

	_, err = Open(context.Background(), cfg)
	assert.Error(t, err)
}

// faultyBackend fails CreateTask with a fatal store error; everything else
// delegates to the wrapped backend.
type faultyBackend struct {
	Backend
}

func (f *faultyBackend) CreateTask(ctx context.Context, req models.CreateTaskRequest) (models.Task, error) {
	return models.Task{}, &models.FatalError{Err: context.Canceled}
}

func TestFatalErrorDegradesToReadOnly(t *testing.T) {
	cfg := testConfig()
	store, err := litestore.Open(cfg, "")
	require.NoError(t, err)
	rt := NewWithBackend(&faultyBackend{Backend: store}, cfg)
	defer rt.Close()
	ctx := context.Background()

	require.False(t, rt.ReadOnly())

	_, err = rt.CreateTask(ctx, models.CreateTaskRequest{})
	require.Error(t, err)
	assert.True(t, rt.ReadOnly(), "first fatal error flips the runtime")

	// Writes now fail fast, before reaching the backend.
	_, err = rt.Heartbeat(ctx, models.HeartbeatRequest{AgentID: "agent-1"})
	assert.ErrorIs(t, err, models.ErrReadOnly)
	_, err = rt.ClaimNext(ctx, "agent-1", models.TaskFilter{}, 0)
	assert.ErrorIs(t, err, models.ErrReadOnly)

	// Reads keep serving, and the summary reports the degradation.
	sum, err := rt.Summary(ctx)
	require.NoError(t, err)
	assert.True(t, sum.ReadOnly)
	_, err = rt.ListTasks(ctx, models.TaskFilter{})
	assert.NoError(t, err)
}

func TestTransientErrorDoesNotDegrade(t *testing.T) {
	rt := newMemoryRuntime(t)
	ctx := context.Background()

	// A conflict is an ordinary error, not a degradation trigger.
	_, err := rt.CreateTask(ctx, models.CreateTaskRequest{ID: "task-1"})
	require.NoError(t, err)
	_, err = rt.CreateTask(ctx, models.CreateTaskRequest{ID: "task-1"})
	require.Error(t, err)
	assert.False(t, rt.ReadOnly())
}

func TestBootstrapSweepsOnce(t *testing.T) {
	rt := newMemoryRuntime(t)
	ctx := context.Background()

	_, err := rt.CreateTask(ctx, models.CreateTaskRequest{ID: "task-1"})
	require.NoError(t, err)
	_, err = rt.AcquireLease(ctx, "task-1", "agent-1", time.Millisecond)
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)

	require.NoError(t, rt.Bootstrap(ctx))

	task, err := rt.GetTask(ctx, "task-1")
	require.NoError(t, err)
	assert.Equal(t, models.StateReady, task.State)
}

func TestRuntimeEndToEndClaimCompleteFlow(t *testing.T) {
	rt := newMemoryRuntime(t)
	ctx := context.Background()

	_, err := rt.CreateTask(ctx, models.CreateTaskRequest{
		ID:      "task-1",
		Payload: map[string]any{"files": []string{"a.go"}},
	})
	require.NoError(t, err)

	out, err := rt.ClaimNext(ctx, "agent-1", models.TaskFilter{}, 0)
	require.NoError(t, err)
	require.NotNil(t, out.Claimed)
	assert.Equal(t, []string{"a.go"}, out.Claimed.AcquiredFiles)

	_, err = rt.Transition(ctx, "task-1", models.StateLeased, models.StateRunning, "agent-1", nil)
	require.NoError(t, err)
	_, err = rt.Transition(ctx, "task-1", models.StateRunning, models.StateVerifying, "agent-1", nil)
	require.NoError(t, err)

	require.NoError(t, rt.RecordEvidence(ctx, models.Evidence{
		TaskID: "task-1", Attempt: 1, Verifier: "go-test", Result: models.ResultPass,
	}))

	task, err := rt.Complete(ctx, "task-1", "agent-1")
	require.NoError(t, err)
	assert.Equal(t, models.StateDone, task.State)
}
