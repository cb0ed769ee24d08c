package litestore

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openmaf/maf/pkg/config"
	"github.com/openmaf/maf/pkg/models"
)

func testConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Leases.DefaultDuration = 10 * time.Minute
	cfg.Leases.MaxDuration = 2 * time.Hour
	return cfg
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(testConfig(), "")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func createTask(t *testing.T, s *Store, req models.CreateTaskRequest) models.Task {
	t.Helper()
	task, err := s.CreateTask(context.Background(), req)
	require.NoError(t, err)
	return task
}

func TestCreateTaskDefaults(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	task := createTask(t, s, models.CreateTaskRequest{Priority: 2})
	assert.NotEmpty(t, task.ID)
	assert.Equal(t, models.StateReady, task.State)
	assert.Equal(t, 3, task.MaxAttempts)
	assert.Zero(t, task.Attempts)

	got, err := s.GetTask(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, task, got)

	events, err := s.QueryEvents(ctx, models.EventQuery{TaskID: task.ID})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, models.EventCreated, events[0].Kind)
}

func TestCreateTaskDuplicateID(t *testing.T) {
	s := newTestStore(t)
	createTask(t, s, models.CreateTaskRequest{ID: "task-dup"})
	_, err := s.CreateTask(context.Background(), models.CreateTaskRequest{ID: "task-dup"})
	assert.ErrorIs(t, err, models.ErrAlreadyExists)
}

func TestGetTaskNotFound(t *testing.T) {
	s := newTestStore(t)
	_, err := s.GetTask(context.Background(), "task-nope")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestClaimNextOrdersByPriorityThenAge(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	createTask(t, s, models.CreateTaskRequest{ID: "task-low", Priority: 5})
	createTask(t, s, models.CreateTaskRequest{ID: "task-urgent-a", Priority: 1})
	createTask(t, s, models.CreateTaskRequest{ID: "task-urgent-b", Priority: 1})

	out, err := s.ClaimNext(ctx, "agent-1", models.TaskFilter{}, 0)
	require.NoError(t, err)
	require.NotNil(t, out.Claimed)
	assert.Equal(t, "task-urgent-a", out.Claimed.Task.ID)
	assert.Equal(t, models.StateLeased, out.Claimed.Task.State)
	assert.Equal(t, 1, out.Claimed.Task.Attempts)
	assert.Equal(t, 1, out.Claimed.Lease.Attempt)
	assert.Equal(t, "agent-1", out.Claimed.Lease.AgentID)

	out, err = s.ClaimNext(ctx, "agent-2", models.TaskFilter{}, 0)
	require.NoError(t, err)
	require.NotNil(t, out.Claimed)
	assert.Equal(t, "task-urgent-b", out.Claimed.Task.ID)
}

func TestTaskOrderingBreaksTiesByID(t *testing.T) {
	equal := []models.Task{
		{ID: "task-c", Priority: 1, CreatedAt: 42},
		{ID: "task-a", Priority: 1, CreatedAt: 42},
		{ID: "task-b", Priority: 1, CreatedAt: 42},
	}
	sortByPriority(equal)
	assert.Equal(t, "task-a", equal[0].ID)
	assert.Equal(t, "task-b", equal[1].ID)
	assert.Equal(t, "task-c", equal[2].ID)

	doc := newDocument()
	for _, id := range []string{"task-c", "task-a", "task-b"} {
		doc.Tasks[id] = &models.Task{ID: id, State: models.StateReady, Priority: 1, CreatedAt: 42}
	}
	assert.Equal(t, "task-a", nextReady(doc, models.TaskFilter{}).ID)
}

func TestClaimNextNoWork(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	out, err := s.ClaimNext(ctx, "agent-1", models.TaskFilter{}, 0)
	require.NoError(t, err)
	assert.Nil(t, out.Claimed)
	require.NotNil(t, out.NoneAvailable)
	assert.Empty(t, out.NoneAvailable.ReadyPreview)
}

func TestClaimNextFilters(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	createTask(t, s, models.CreateTaskRequest{ID: "task-a", Priority: 1, PolicyLabel: "infra"})
	createTask(t, s, models.CreateTaskRequest{ID: "task-b", Priority: 9, PolicyLabel: "docs"})

	out, err := s.ClaimNext(ctx, "agent-1", models.TaskFilter{PolicyLabel: "docs"}, 0)
	require.NoError(t, err)
	require.NotNil(t, out.Claimed)
	assert.Equal(t, "task-b", out.Claimed.Task.ID)

	maxPri := 5
	out, err = s.ClaimNext(ctx, "agent-2", models.TaskFilter{MaxPriority: &maxPri}, 0)
	require.NoError(t, err)
	require.NotNil(t, out.Claimed)
	assert.Equal(t, "task-a", out.Claimed.Task.ID)
}

func TestClaimNextEagerPartialFileLeasing(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.Reserve(ctx, "shared.go", "agent-other", time.Hour, "hotfix", nil)
	require.NoError(t, err)

	createTask(t, s, models.CreateTaskRequest{
		ID:      "task-1",
		Payload: map[string]any{"files": []string{"shared.go", "own.go"}},
	})

	out, err := s.ClaimNext(ctx, "agent-1", models.TaskFilter{}, 0)
	require.NoError(t, err)
	require.NotNil(t, out.Claimed, "partial reservation must not fail the claim")

	assert.Equal(t, []string{"own.go"}, out.Claimed.AcquiredFiles)
	require.Len(t, out.Claimed.ConflictedFiles, 1)
	assert.Equal(t, "shared.go", out.Claimed.ConflictedFiles[0].Path)
	assert.Equal(t, "agent-other", out.Claimed.ConflictedFiles[0].Holder)

	conflicts, err := s.OpenConflicts(ctx, 0)
	require.NoError(t, err)
	require.Len(t, conflicts, 1)
	assert.Equal(t, models.ConflictTypeClaim, conflicts[0].ConflictType)
	assert.Equal(t, "agent-1", conflicts[0].ConflictingAgent)
	assert.Equal(t, "agent-other", conflicts[0].ExistingAgent)
}

func TestAcquireLeaseConflicts(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	createTask(t, s, models.CreateTaskRequest{ID: "task-1"})
	_, err := s.AcquireLease(ctx, "task-1", "agent-1", 0)
	require.NoError(t, err)

	_, err = s.AcquireLease(ctx, "task-1", "agent-2", 0)
	var conflict *models.LeaseConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "agent-1", conflict.Holder)
}

func TestRefreshLease(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	createTask(t, s, models.CreateTaskRequest{ID: "task-1"})
	l, err := s.AcquireLease(ctx, "task-1", "agent-1", time.Minute)
	require.NoError(t, err)

	refreshed, err := s.RefreshLease(ctx, "task-1", "agent-1", time.Hour)
	require.NoError(t, err)
	assert.Greater(t, refreshed.ExpiresAt, l.ExpiresAt)

	_, err = s.RefreshLease(ctx, "task-1", "agent-2", time.Hour)
	assert.ErrorIs(t, err, models.ErrNotHeldByAgent)
}

func TestRefreshExpiredLease(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	createTask(t, s, models.CreateTaskRequest{ID: "task-1"})
	_, err := s.AcquireLease(ctx, "task-1", "agent-1", time.Millisecond)
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)

	_, err = s.RefreshLease(ctx, "task-1", "agent-1", time.Minute)
	assert.ErrorIs(t, err, models.ErrExpired)
}

func TestReleaseLeaseOnlyFromLeased(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	createTask(t, s, models.CreateTaskRequest{ID: "task-1"})
	_, err := s.AcquireLease(ctx, "task-1", "agent-1", 0)
	require.NoError(t, err)

	_, err = s.Transition(ctx, "task-1", models.StateLeased, models.StateRunning, "agent-1", nil)
	require.NoError(t, err)

	err = s.ReleaseLease(ctx, "task-1", "agent-1")
	assert.ErrorIs(t, err, models.ErrInvalidArgument, "voluntary release is only legal before work starts")
}

func TestReleaseLeaseRequeuesKeepingAttempts(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	createTask(t, s, models.CreateTaskRequest{ID: "task-1"})
	_, err := s.AcquireLease(ctx, "task-1", "agent-1", 0)
	require.NoError(t, err)

	require.NoError(t, s.ReleaseLease(ctx, "task-1", "agent-1"))

	task, err := s.GetTask(ctx, "task-1")
	require.NoError(t, err)
	assert.Equal(t, models.StateReady, task.State)
	assert.Equal(t, 1, task.Attempts, "a released attempt still counts")

	_, err = s.GetLease(ctx, "task-1")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestTransitionRejectsLeasedTarget(t *testing.T) {
	s := newTestStore(t)
	createTask(t, s, models.CreateTaskRequest{ID: "task-1"})

	_, err := s.Transition(context.Background(), "task-1", models.StateReady, models.StateLeased, "agent-1", nil)
	assert.ErrorIs(t, err, models.ErrInvalidArgument)
}

func TestTransitionCASMismatch(t *testing.T) {
	s := newTestStore(t)
	createTask(t, s, models.CreateTaskRequest{ID: "task-1"})

	_, err := s.Transition(context.Background(), "task-1", models.StateRunning, models.StateVerifying, "agent-1", nil)
	var illegal *models.IllegalTransitionError
	require.ErrorAs(t, err, &illegal)
	assert.Equal(t, models.StateReady, illegal.Observed)
}

func TestTransitionIllegalPair(t *testing.T) {
	s := newTestStore(t)
	createTask(t, s, models.CreateTaskRequest{ID: "task-1"})

	_, err := s.Transition(context.Background(), "task-1", models.StateReady, models.StateDone, "agent-1", nil)
	var illegal *models.IllegalTransitionError
	assert.ErrorAs(t, err, &illegal)
}

func claimToVerifying(t *testing.T, s *Store, taskID, agentID string) {
	t.Helper()
	ctx := context.Background()
	_, err := s.AcquireLease(ctx, taskID, agentID, time.Hour)
	require.NoError(t, err)
	_, err = s.Transition(ctx, taskID, models.StateLeased, models.StateRunning, agentID, nil)
	require.NoError(t, err)
	_, err = s.Transition(ctx, taskID, models.StateRunning, models.StateVerifying, agentID, nil)
	require.NoError(t, err)
}

func TestCompleteAllPassCommits(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	createTask(t, s, models.CreateTaskRequest{
		ID:      "task-1",
		Payload: map[string]any{"files": []string{"a.go"}},
	})
	claimToVerifying(t, s, "task-1", "agent-1")
	_, err := s.Reserve(ctx, "a.go", "agent-1", time.Hour, "task-1", nil)
	require.NoError(t, err)

	require.NoError(t, s.RecordEvidence(ctx, models.Evidence{
		TaskID: "task-1", Attempt: 1, Verifier: "go-test", Result: models.ResultPass,
	}))
	require.NoError(t, s.RecordEvidence(ctx, models.Evidence{
		TaskID: "task-1", Attempt: 1, Verifier: "lint", Result: models.ResultPass,
	}))

	task, err := s.Complete(ctx, "task-1", "agent-1")
	require.NoError(t, err)
	assert.Equal(t, models.StateDone, task.State)

	// Lease and reservations are gone with the terminal transition.
	_, err = s.GetLease(ctx, "task-1")
	assert.ErrorIs(t, err, models.ErrNotFound)
	reservations, err := s.ListReservations(ctx, "agent-1")
	require.NoError(t, err)
	assert.Empty(t, reservations)

	events, err := s.QueryEvents(ctx, models.EventQuery{TaskID: "task-1", Kinds: []string{models.EventCommitted, models.EventDone}})
	require.NoError(t, err)
	assert.Len(t, events, 2)
}

func TestCompleteWithoutEvidenceRollsBack(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	createTask(t, s, models.CreateTaskRequest{ID: "task-1"})
	claimToVerifying(t, s, "task-1", "agent-1")

	task, err := s.Complete(ctx, "task-1", "agent-1")
	require.NoError(t, err)
	assert.Equal(t, models.StateReady, task.State, "no verdict is not a pass")
	assert.Equal(t, 1, task.Attempts)
}

func TestCompleteFailBuriesAfterMaxAttempts(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	createTask(t, s, models.CreateTaskRequest{ID: "task-1", MaxAttempts: 1})
	claimToVerifying(t, s, "task-1", "agent-1")

	require.NoError(t, s.RecordEvidence(ctx, models.Evidence{
		TaskID: "task-1", Attempt: 1, Verifier: "go-test", Result: models.ResultFail,
	}))

	task, err := s.Complete(ctx, "task-1", "agent-1")
	require.NoError(t, err)
	assert.Equal(t, models.StateDead, task.State)

	events, err := s.QueryEvents(ctx, models.EventQuery{TaskID: "task-1", Kinds: []string{models.EventRollback, models.EventDead}})
	require.NoError(t, err)
	assert.Len(t, events, 2)
}

func TestCompleteRequiresOwnUnexpiredLease(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	createTask(t, s, models.CreateTaskRequest{ID: "task-1"})
	claimToVerifying(t, s, "task-1", "agent-1")

	_, err := s.Complete(ctx, "task-1", "agent-2")
	assert.ErrorIs(t, err, models.ErrNotHeldByAgent)
}

func TestEvidenceAppendOnce(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	createTask(t, s, models.CreateTaskRequest{ID: "task-1"})
	_, err := s.AcquireLease(ctx, "task-1", "agent-1", 0)
	require.NoError(t, err)

	ev := models.Evidence{TaskID: "task-1", Attempt: 1, Verifier: "go-test", Result: models.ResultPass}
	require.NoError(t, s.RecordEvidence(ctx, ev))

	ev.Result = models.ResultFail
	err = s.RecordEvidence(ctx, ev)
	assert.ErrorIs(t, err, models.ErrAlreadyExists, "a verdict is never overwritten")

	got, err := s.EvidenceForAttempt(ctx, "task-1", 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, models.ResultPass, got[0].Result)
}

func TestEvidenceRejectsWrongAttempt(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	createTask(t, s, models.CreateTaskRequest{ID: "task-1"})
	_, err := s.AcquireLease(ctx, "task-1", "agent-1", 0)
	require.NoError(t, err)

	err = s.RecordEvidence(ctx, models.Evidence{
		TaskID: "task-1", Attempt: 7, Verifier: "go-test", Result: models.ResultPass,
	})
	assert.ErrorIs(t, err, models.ErrInvalidArgument)
}

func TestSweepLeasesRequeuesExpired(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	createTask(t, s, models.CreateTaskRequest{ID: "task-1"})
	_, err := s.AcquireLease(ctx, "task-1", "agent-1", time.Millisecond)
	require.NoError(t, err)
	_, err = s.Transition(ctx, "task-1", models.StateLeased, models.StateRunning, "agent-1", nil)
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)

	n, err := s.SweepLeases(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	task, err := s.GetTask(ctx, "task-1")
	require.NoError(t, err)
	assert.Equal(t, models.StateReady, task.State, "the sweeper may revert RUNNING")

	events, err := s.QueryEvents(ctx, models.EventQuery{TaskID: "task-1", Kinds: []string{models.EventLeaseExpired}})
	require.NoError(t, err)
	assert.Len(t, events, 1)
}

func TestSweepLeasesBuriesExhaustedTask(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	createTask(t, s, models.CreateTaskRequest{ID: "task-1", MaxAttempts: 1})
	_, err := s.AcquireLease(ctx, "task-1", "agent-1", time.Millisecond)
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)

	_, err = s.SweepLeases(ctx)
	require.NoError(t, err)

	task, err := s.GetTask(ctx, "task-1")
	require.NoError(t, err)
	assert.Equal(t, models.StateDead, task.State)
}

func TestReserveExtendAndConflict(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	r1, err := s.Reserve(ctx, "a.go", "agent-1", time.Minute, "edit", nil)
	require.NoError(t, err)

	r2, err := s.Reserve(ctx, "a.go", "agent-1", time.Hour, "edit", nil)
	require.NoError(t, err)
	assert.Equal(t, r1.ID, r2.ID, "re-reserving extends the same row")
	assert.Greater(t, r2.ExpiresAt, r1.ExpiresAt)

	_, err = s.Reserve(ctx, "a.go", "agent-2", time.Minute, "edit", nil)
	var leased *models.FileLeasedError
	require.ErrorAs(t, err, &leased)
	assert.Equal(t, "agent-1", leased.Holder)

	conflicts, err := s.OpenConflicts(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, conflicts, 1)
}

func TestReserveTakesOverExpired(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.Reserve(ctx, "a.go", "agent-1", time.Millisecond, "edit", nil)
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)

	r, err := s.Reserve(ctx, "a.go", "agent-2", time.Minute, "edit", nil)
	require.NoError(t, err)
	assert.Equal(t, "agent-2", r.AgentID)
}

func TestReleaseFileHolderOnly(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.Reserve(ctx, "a.go", "agent-1", time.Minute, "edit", nil)
	require.NoError(t, err)

	assert.ErrorIs(t, s.ReleaseFile(ctx, "a.go", "agent-2"), models.ErrNotHeldByAgent)
	require.NoError(t, s.ReleaseFile(ctx, "a.go", "agent-1"))
	assert.ErrorIs(t, s.ReleaseFile(ctx, "a.go", "agent-1"), models.ErrNotFound)
}

func TestHeartbeatRegistersAndRefreshesLeases(t *testing.T) {
	cfg := testConfig()
	cfg.Liveness.HeartbeatInterval = time.Hour // everything expires "soon"
	s, err := Open(cfg, "")
	require.NoError(t, err)
	defer s.Close()
	ctx := context.Background()

	createTask(t, s, models.CreateTaskRequest{ID: "task-1"})
	l, err := s.AcquireLease(ctx, "task-1", "agent-1", time.Minute)
	require.NoError(t, err)

	a, err := s.Heartbeat(ctx, models.HeartbeatRequest{AgentID: "agent-1"})
	require.NoError(t, err)
	assert.Equal(t, models.AgentStatusActive, a.Status)
	assert.Equal(t, models.AgentTypeWorker, a.Type)

	refreshed, err := s.GetLease(ctx, "task-1")
	require.NoError(t, err)
	assert.Greater(t, refreshed.ExpiresAt, l.ExpiresAt, "heartbeat extends leases inside the horizon")
}

func TestSweepLivenessReclaimsSilentAgent(t *testing.T) {
	cfg := testConfig()
	cfg.Liveness.Timeout = 10 * time.Millisecond
	s, err := Open(cfg, "")
	require.NoError(t, err)
	defer s.Close()
	ctx := context.Background()

	createTask(t, s, models.CreateTaskRequest{ID: "task-1"})
	_, err = s.AcquireLease(ctx, "task-1", "agent-1", time.Hour)
	require.NoError(t, err)
	_, err = s.Reserve(ctx, "a.go", "agent-1", time.Hour, "", nil)
	require.NoError(t, err)
	_, err = s.Heartbeat(ctx, models.HeartbeatRequest{AgentID: "agent-1"})
	require.NoError(t, err)

	time.Sleep(20 * time.Millisecond)

	n, err := s.SweepLiveness(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	a, err := s.GetAgent(ctx, "agent-1")
	require.NoError(t, err)
	assert.Equal(t, models.AgentStatusInactive, a.Status)

	task, err := s.GetTask(ctx, "task-1")
	require.NoError(t, err)
	assert.Equal(t, models.StateReady, task.State, "a dead agent's lease is reclaimed")

	held, err := s.ListReservations(ctx, "agent-1")
	require.NoError(t, err)
	assert.Empty(t, held, "a dead agent's reservations are released")

	decision, err := s.PrecommitCheck(ctx, "agent-2", []string{"a.go"})
	require.NoError(t, err)
	assert.False(t, decision.Blocked(), "released paths unblock other agents")
}

func TestMailSendFetchMarkRead(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.Send(ctx, "no-such-channel", models.KindEscalationRequest, "agent-1", nil)
	assert.ErrorIs(t, err, models.ErrUnknownChannel)

	env, err := s.Send(ctx, models.DefaultChannel, models.KindEscalationRequest, "agent-1",
		map[string]any{"reason": "stuck on merge"})
	require.NoError(t, err)

	unread, err := s.Unread(ctx, models.DefaultChannel)
	require.NoError(t, err)
	assert.Equal(t, 1, unread)

	msgs, err := s.Fetch(ctx, models.DefaultChannel, 0, false, 0)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, env.ID, msgs[0].ID)

	n, err := s.MarkRead(ctx, models.DefaultChannel, []int64{env.ID})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	msgs, err = s.Fetch(ctx, models.DefaultChannel, 0, false, 0)
	require.NoError(t, err)
	assert.Empty(t, msgs)

	msgs, err = s.Fetch(ctx, models.DefaultChannel, 0, true, 0)
	require.NoError(t, err)
	assert.Len(t, msgs, 1)
}

func TestMailFetchSinceID(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first, err := s.Send(ctx, models.DefaultChannel, models.KindEscalationRequest, "agent-1",
		map[string]any{"reason": "first"})
	require.NoError(t, err)
	second, err := s.Send(ctx, models.DefaultChannel, models.KindEscalationRequest, "agent-1",
		map[string]any{"reason": "second"})
	require.NoError(t, err)

	msgs, err := s.Fetch(ctx, models.DefaultChannel, first.ID, false, 0)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, second.ID, msgs[0].ID)

	// A cursor at the newest id returns nothing, read or not.
	_, err = s.MarkRead(ctx, models.DefaultChannel, []int64{first.ID})
	require.NoError(t, err)
	msgs, err = s.Fetch(ctx, models.DefaultChannel, second.ID, true, 0)
	require.NoError(t, err)
	assert.Empty(t, msgs)
}

func TestMailPayloadIsScrubbed(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.Send(ctx, models.DefaultChannel, models.KindEscalationRequest, "agent-1",
		map[string]any{"context": `deploy failed, token = abcdefghijklmnopqrstuv`})
	require.NoError(t, err)

	msgs, err := s.Fetch(ctx, models.DefaultChannel, 0, true, 0)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.NotContains(t, msgs[0].Payload["context"], "abcdefghijklmnopqrstuv")
}

func TestPrecommitBlocksAndOverrides(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.Reserve(ctx, "a.go", "agent-other", time.Hour, "edit", nil)
	require.NoError(t, err)

	d, err := s.PrecommitCheck(ctx, "agent-1", []string{"a.go", "b.go"})
	require.NoError(t, err)
	assert.True(t, d.Blocked())
	require.Len(t, d.Conflicts, 1)
	assert.Equal(t, "a.go", d.Conflicts[0].Path)

	t.Setenv(s.cfg.Enforcer.OverrideVar, "1")
	d, err = s.PrecommitCheck(ctx, "agent-1", []string{"a.go"})
	require.NoError(t, err)
	assert.False(t, d.Blocked())
	assert.True(t, d.Override)

	// Both runs recorded their conflicts; the override run also journaled it.
	conflicts, err := s.OpenConflicts(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, conflicts, 2)

	events, err := s.QueryEvents(ctx, models.EventQuery{Kinds: []string{models.EventOverride}})
	require.NoError(t, err)
	assert.Len(t, events, 1)
}

func TestPrecommitAllowsOwnReservations(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.Reserve(ctx, "a.go", "agent-1", time.Hour, "edit", nil)
	require.NoError(t, err)

	d, err := s.PrecommitCheck(ctx, "agent-1", []string{"a.go"})
	require.NoError(t, err)
	assert.False(t, d.Blocked())
	assert.Empty(t, d.Conflicts)
}

func TestQueryEventsFilterAndOrder(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	createTask(t, s, models.CreateTaskRequest{ID: "task-1"})
	createTask(t, s, models.CreateTaskRequest{ID: "task-2"})
	_, err := s.AppendEvent(ctx, "task-1", models.EventError, map[string]any{"oops": true})
	require.NoError(t, err)

	events, err := s.QueryEvents(ctx, models.EventQuery{})
	require.NoError(t, err)
	require.Len(t, events, 3)
	for i := 1; i < len(events); i++ {
		assert.Greater(t, events[i-1].ID, events[i].ID, "newest first")
	}

	events, err = s.QueryEvents(ctx, models.EventQuery{TaskID: "task-1"})
	require.NoError(t, err)
	assert.Len(t, events, 2)

	events, err = s.QueryEvents(ctx, models.EventQuery{Kinds: []string{models.EventError}})
	require.NoError(t, err)
	require.Len(t, events, 1)

	events, err = s.QueryEvents(ctx, models.EventQuery{Recent: 1})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, models.EventError, events[0].Kind)
}

func TestSummaryCounts(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	createTask(t, s, models.CreateTaskRequest{ID: "task-1"})
	createTask(t, s, models.CreateTaskRequest{ID: "task-2"})
	_, err := s.ClaimNext(ctx, "agent-1", models.TaskFilter{}, 0)
	require.NoError(t, err)
	_, err = s.Reserve(ctx, "a.go", "agent-1", time.Hour, "edit", nil)
	require.NoError(t, err)
	_, err = s.Heartbeat(ctx, models.HeartbeatRequest{AgentID: "agent-1"})
	require.NoError(t, err)

	sum, err := s.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, "memory", sum.Backend)
	assert.Equal(t, 1, sum.TaskCounts[models.StateReady])
	assert.Equal(t, 1, sum.TaskCounts[models.StateLeased])
	assert.Equal(t, 1, sum.ActiveLeases)
	assert.Equal(t, 1, sum.ActiveReservations)
	assert.Equal(t, 1, sum.ActiveAgents)
}

func TestRecordMonitorSample(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.RecordMonitorSample(ctx, models.MonitorSample{})
	assert.ErrorIs(t, err, models.ErrInvalidArgument)

	ev, err := s.RecordMonitorSample(ctx, models.MonitorSample{Source: "node-1", CPUPercent: 93})
	require.NoError(t, err)
	assert.Equal(t, models.EventMonitorSample, ev.Kind)
	assert.Equal(t, "node-1", ev.Data["source"])
}

func TestFileStorePersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig()

	s, err := Open(cfg, dir)
	require.NoError(t, err)
	assert.Equal(t, "file", s.Name())
	ctx := context.Background()

	createTask(t, s, models.CreateTaskRequest{ID: "task-1", Priority: 4})
	_, err = s.Reserve(ctx, "a.go", "agent-1", time.Hour, "edit", nil)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s2, err := Open(cfg, dir)
	require.NoError(t, err)
	defer s2.Close()

	task, err := s2.GetTask(ctx, "task-1")
	require.NoError(t, err)
	assert.Equal(t, 4, task.Priority)

	reservations, err := s2.ListReservations(ctx, "agent-1")
	require.NoError(t, err)
	assert.Len(t, reservations, 1)
}

func TestFileStoreLockIsExclusive(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig()

	s, err := Open(cfg, dir)
	require.NoError(t, err)
	defer s.Close()

	_, err = Open(cfg, dir)
	require.Error(t, err)
	assert.True(t, models.IsFatal(err), "a held lock is not retryable")
}

func TestFileStoreCorruptDocumentIsFatal(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, stateFileName), []byte("{not json"), 0o600))

	_, err := Open(testConfig(), dir)
	require.Error(t, err)
	assert.True(t, models.IsFatal(err))
}

func TestClaimIsExclusivePerTask(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	createTask(t, s, models.CreateTaskRequest{ID: "task-1"})

	out1, err := s.ClaimNext(ctx, "agent-1", models.TaskFilter{}, 0)
	require.NoError(t, err)
	require.NotNil(t, out1.Claimed)

	out2, err := s.ClaimNext(ctx, "agent-2", models.TaskFilter{}, 0)
	require.NoError(t, err)
	assert.Nil(t, out2.Claimed, "one lease per task")
	require.NotNil(t, out2.NoneAvailable)
}
