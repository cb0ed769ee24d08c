package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openmaf/maf/pkg/config"
	"github.com/openmaf/maf/pkg/litestore"
	"github.com/openmaf/maf/pkg/models"
	"github.com/openmaf/maf/pkg/runtime"
)

type cliFixture struct {
	app    *App
	rt     *runtime.Runtime
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

func newFixture(t *testing.T) *cliFixture {
	t.Helper()
	cfg := config.DefaultConfig()
	store, err := litestore.Open(cfg, "")
	require.NoError(t, err)
	rt := runtime.NewWithBackend(store, cfg)
	t.Cleanup(func() { _ = rt.Close() })

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	return &cliFixture{
		app:    NewApp(rt, stdout, stderr),
		rt:     rt,
		stdout: stdout,
		stderr: stderr,
	}
}

func (f *cliFixture) run(args ...string) int {
	f.stdout.Reset()
	f.stderr.Reset()
	return f.app.Run(context.Background(), args)
}

func TestRunNoArgsIsInvalid(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, ExitInvalidArgs, f.run())
}

func TestRunUnknownCommand(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, ExitInvalidArgs, f.run("destroy-everything"))
	assert.Contains(t, f.stderr.String(), "unknown command")
}

func TestClaimRequiresIdentity(t *testing.T) {
	f := newFixture(t)
	t.Setenv(AgentEnvVar, "")
	assert.Equal(t, ExitInvalidArgs, f.run("claim"))
	assert.Contains(t, f.stderr.String(), "no agent identity")
}

func TestClaimNoWorkExitsTwo(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, ExitNoWork, f.run("claim", "-agent", "agent-1"))
	assert.Contains(t, f.stdout.String(), "no work available")
}

func TestClaimIdentityFromEnvironment(t *testing.T) {
	f := newFixture(t)
	t.Setenv(AgentEnvVar, "agent-env")

	_, err := f.rt.CreateTask(context.Background(), models.CreateTaskRequest{ID: "task-1"})
	require.NoError(t, err)

	assert.Equal(t, ExitOK, f.run("claim"))

	lease, err := f.rt.GetLease(context.Background(), "task-1")
	require.NoError(t, err)
	assert.Equal(t, "agent-env", lease.AgentID)
}

func TestClaimJSONOutput(t *testing.T) {
	f := newFixture(t)
	_, err := f.rt.CreateTask(context.Background(), models.CreateTaskRequest{
		ID:      "task-1",
		Payload: map[string]any{"files": []string{"a.go"}},
	})
	require.NoError(t, err)

	require.Equal(t, ExitOK, f.run("claim", "-agent", "agent-1", "-json"))

	var claimed models.ClaimedTask
	require.NoError(t, json.Unmarshal(f.stdout.Bytes(), &claimed))
	assert.Equal(t, "task-1", claimed.Task.ID)
	assert.Equal(t, []string{"a.go"}, claimed.AcquiredFiles)
}

func TestClaimWithConflictsStillSucceeds(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.rt.Reserve(ctx, "shared.go", "agent-other", time.Hour, "edit", nil)
	require.NoError(t, err)
	_, err = f.rt.CreateTask(ctx, models.CreateTaskRequest{
		ID:      "task-1",
		Payload: map[string]any{"files": []string{"shared.go"}},
	})
	require.NoError(t, err)

	assert.Equal(t, ExitOK, f.run("claim", "-agent", "agent-1"))
	assert.Contains(t, f.stdout.String(), "held by agent-other")
}

func TestClaimDryRun(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, ExitNoWork, f.run("claim", "-agent", "agent-1", "-dry-run"))

	_, err := f.rt.CreateTask(context.Background(), models.CreateTaskRequest{ID: "task-1"})
	require.NoError(t, err)

	assert.Equal(t, ExitOK, f.run("claim", "-agent", "agent-1", "-dry-run"))
	assert.Contains(t, f.stdout.String(), "task-1")

	// Dry run must not lease anything.
	task, err := f.rt.GetTask(context.Background(), "task-1")
	require.NoError(t, err)
	assert.Equal(t, models.StateReady, task.State)
}

func TestReleaseLeaseByTaskID(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.rt.CreateTask(ctx, models.CreateTaskRequest{ID: "task-1"})
	require.NoError(t, err)
	_, err = f.rt.AcquireLease(ctx, "task-1", "agent-1", 0)
	require.NoError(t, err)

	assert.Equal(t, ExitOK, f.run("release", "-agent", "agent-1", "task-1"))

	task, err := f.rt.GetTask(ctx, "task-1")
	require.NoError(t, err)
	assert.Equal(t, models.StateReady, task.State)
}

func TestReleaseFileByPath(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.rt.Reserve(ctx, "a.go", "agent-1", time.Hour, "edit", nil)
	require.NoError(t, err)

	assert.Equal(t, ExitOK, f.run("release", "-agent", "agent-1", "a.go"))

	reservations, err := f.rt.ListReservations(ctx, "agent-1")
	require.NoError(t, err)
	assert.Empty(t, reservations)
}

func TestReleaseRequiresExactlyOneTarget(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, ExitInvalidArgs, f.run("release", "-agent", "agent-1"))
	assert.Equal(t, ExitInvalidArgs, f.run("release", "-agent", "agent-1", "a.go", "b.go"))
}

func TestReleaseNotHeldIsGenericError(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.rt.Reserve(ctx, "a.go", "agent-other", time.Hour, "edit", nil)
	require.NoError(t, err)

	assert.Equal(t, ExitError, f.run("release", "-agent", "agent-1", "a.go"))
}

func TestStatusHumanAndJSON(t *testing.T) {
	f := newFixture(t)
	_, err := f.rt.CreateTask(context.Background(), models.CreateTaskRequest{ID: "task-1"})
	require.NoError(t, err)

	assert.Equal(t, ExitOK, f.run("status"))
	assert.Contains(t, f.stdout.String(), "backend: memory")
	assert.Contains(t, f.stdout.String(), "READY=1")

	assert.Equal(t, ExitOK, f.run("status", "-json"))
	var sum models.StatusSummary
	require.NoError(t, json.Unmarshal(f.stdout.Bytes(), &sum))
	assert.Equal(t, "memory", sum.Backend)
}

func TestEscalateRequiresReason(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, ExitInvalidArgs, f.run("escalate", "-agent", "agent-1"))
}

func TestEscalateDeliversEnvelope(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, ExitOK, f.run("escalate", "-agent", "agent-1", "-reason", "blocked on review"))

	msgs, err := f.rt.Fetch(context.Background(), models.DefaultChannel, 0, false, 0)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, models.KindEscalationRequest, msgs[0].Kind)
	assert.Equal(t, "blocked on review", msgs[0].Payload["reason"])
}

func TestEscalateUnknownChannel(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, ExitError, f.run("escalate", "-agent", "agent-1", "-reason", "x", "-channel", "nope"))
}

func TestPreflightRequiresPaths(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, ExitInvalidArgs, f.run("preflight-commit", "-agent", "agent-1"))
}

func TestPreflightBlockedExitsConflict(t *testing.T) {
	f := newFixture(t)
	_, err := f.rt.Reserve(context.Background(), "a.go", "agent-other", time.Hour, "edit", nil)
	require.NoError(t, err)

	assert.Equal(t, ExitConflict, f.run("preflight-commit", "-agent", "agent-1", "a.go"))
	assert.Contains(t, f.stdout.String(), "commit blocked")
}

func TestPreflightCleanPathsAllowed(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, ExitOK, f.run("preflight-commit", "-agent", "agent-1", "a.go"))
	assert.Contains(t, f.stdout.String(), "commit allowed")
}

func TestExitCodeMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitOK},
		{"invalid argument", models.ErrInvalidArgument, ExitInvalidArgs},
		{"quota", models.ErrQuotaExceeded, ExitQuota},
		{"lease conflict", &models.LeaseConflictError{TaskID: "task-1"}, ExitConflict},
		{"file leased", &models.FileLeasedError{Path: "a.go"}, ExitConflict},
		{"not found", models.ErrNotFound, ExitError},
		{"read only", models.ErrReadOnly, ExitError},
		{"illegal transition", &models.IllegalTransitionError{}, ExitError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCodeFor(tt.err))
		})
	}
}
