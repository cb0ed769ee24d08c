package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openmaf/maf/ent"
	"github.com/openmaf/maf/pkg/config"
	"github.com/openmaf/maf/pkg/models"
	"github.com/openmaf/maf/pkg/services"
	"github.com/openmaf/maf/test/util"
)

type retentionFixture struct {
	svc     *Service
	client  *ent.Client
	tasks   *services.TaskService
	mail    *services.MailService
	journal *services.JournalService
	resv    *services.ReservationService
}

func setupRetention(t *testing.T) *retentionFixture {
	t.Helper()
	entClient, _ := util.SetupTestDatabase(t)

	cfg := config.DefaultConfig()
	cfg.Retention.TerminalTaskAge = 50 * time.Millisecond
	cfg.Retention.MailAge = 50 * time.Millisecond

	journal := services.NewJournalService(entClient)
	mail := services.NewMailService(entClient, journal)
	return &retentionFixture{
		svc:     NewService(cfg.Retention, entClient, journal),
		client:  entClient,
		tasks:   services.NewTaskService(entClient, journal),
		mail:    mail,
		journal: journal,
		resv:    services.NewReservationService(entClient, journal, mail, cfg),
	}
}

func TestRunOncePrunesSettledData(t *testing.T) {
	f := setupRetention(t)
	ctx := context.Background()

	// One task buried long ago, one still live.
	_, err := f.tasks.Create(ctx, models.CreateTaskRequest{ID: "task-dead"})
	require.NoError(t, err)
	_, err = f.tasks.Create(ctx, models.CreateTaskRequest{ID: "task-live"})
	require.NoError(t, err)
	_, err = f.client.Task.UpdateOneID("task-dead").SetState("DEAD").Save(ctx)
	require.NoError(t, err)

	// One read envelope, one unread.
	read, err := f.mail.Send(ctx, models.DefaultChannel, services.SendRequest{
		Kind: models.KindEscalationRequest, FromAgent: "agent-1",
		Payload: map[string]any{"reason": "old"},
	})
	require.NoError(t, err)
	_, err = f.mail.MarkRead(ctx, models.DefaultChannel, []int64{read.ID})
	require.NoError(t, err)
	_, err = f.mail.Send(ctx, models.DefaultChannel, services.SendRequest{
		Kind: models.KindEscalationRequest, FromAgent: "agent-1",
		Payload: map[string]any{"reason": "new"},
	})
	require.NoError(t, err)

	// One resolved conflict, one still open.
	resolvedID, err := f.resv.RecordConflict(ctx, models.ReservationConflict{
		FilePath: "a.go", ConflictingAgent: "agent-1", ExistingAgent: "agent-2",
		ConflictType: models.ConflictTypePreCommit,
	})
	require.NoError(t, err)
	require.NoError(t, f.resv.ResolveConflict(ctx, resolvedID, "manual"))
	_, err = f.resv.RecordConflict(ctx, models.ReservationConflict{
		FilePath: "b.go", ConflictingAgent: "agent-1", ExistingAgent: "agent-2",
		ConflictType: models.ConflictTypePreCommit,
	})
	require.NoError(t, err)

	// Age everything past the 50ms retention windows.
	time.Sleep(100 * time.Millisecond)
	f.svc.RunOnce(ctx)

	_, err = f.tasks.Get(ctx, "task-dead")
	assert.ErrorIs(t, err, models.ErrNotFound)
	live, err := f.tasks.Get(ctx, "task-live")
	require.NoError(t, err)
	assert.Equal(t, models.StateReady, live.State)

	msgs, err := f.mail.Fetch(ctx, models.DefaultChannel, 0, true, 0)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "new", msgs[0].Payload["reason"])

	open, err := f.resv.OpenConflicts(ctx, 10)
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, "b.go", open[0].FilePath)

	// The pass itself is journaled, and the pruned task's journal entries
	// survive the prune.
	pruned, err := f.journal.Query(ctx, models.EventQuery{Kinds: []string{models.EventRetentionPrune}})
	require.NoError(t, err)
	require.Len(t, pruned, 1)
	assert.Equal(t, float64(1), toFloat(pruned[0].Data["tasks"]))

	history, err := f.journal.Query(ctx, models.EventQuery{TaskID: "task-dead"})
	require.NoError(t, err)
	assert.NotEmpty(t, history, "journal entries outlive their task rows")
}

func TestRunOnceIsQuietWhenNothingToPrune(t *testing.T) {
	f := setupRetention(t)
	ctx := context.Background()

	f.svc.RunOnce(ctx)

	events, err := f.journal.Query(ctx, models.EventQuery{Kinds: []string{models.EventRetentionPrune}})
	require.NoError(t, err)
	assert.Empty(t, events, "an empty pass journals nothing")
}

func TestStartStop(t *testing.T) {
	f := setupRetention(t)

	f.svc.Start(context.Background())
	f.svc.Stop()
}

// toFloat normalizes a JSON-decoded count for comparison.
func toFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	default:
		return -1
	}
}
