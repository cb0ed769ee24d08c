package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openmaf/maf/ent/event"
	"github.com/openmaf/maf/ent/lease"
	"github.com/openmaf/maf/pkg/models"
	"github.com/openmaf/maf/test/util"
)

func TestFoldLegacyTablesMigratesAndDrops(t *testing.T) {
	entClient, db := util.SetupTestDatabase(t)
	ctx := context.Background()

	exec := func(q string, args ...any) {
		t.Helper()
		_, err := db.ExecContext(ctx, q, args...)
		require.NoError(t, err)
	}
	exec(`CREATE TABLE runtime_heartbeats (agent_id TEXT, status TEXT, recorded_at BIGINT)`)
	exec(`INSERT INTO runtime_heartbeats VALUES ('agent-old', 'missed', 1700000000000)`)
	exec(`CREATE TABLE runtime_queue_messages (channel TEXT, payload TEXT, created_at BIGINT)`)
	exec(`INSERT INTO runtime_queue_messages VALUES ('agent-mail', '{"reason":"stuck"}', 1700000000001)`)
	exec(`CREATE TABLE runtime_leases (lease_id TEXT, agent_id TEXT, expires_at BIGINT)`)
	exec(`INSERT INTO runtime_leases VALUES ('77', 'agent-old', 1700000001000)`)

	require.NoError(t, FoldLegacyTables(ctx, db))

	// Heartbeats became runtime-scoped journal rows.
	missed, err := entClient.Event.Query().Where(event.KindEQ(models.EventHeartbeatMissed)).All(ctx)
	require.NoError(t, err)
	require.Len(t, missed, 1)
	assert.Empty(t, missed[0].TaskID)
	assert.Equal(t, int64(1700000000000), missed[0].Ts)
	assert.Equal(t, "agent-old", missed[0].Data["agent_id"])
	assert.Equal(t, "missed", missed[0].Data["status"])
	assert.Equal(t, true, missed[0].Data["legacy"])

	// Queue messages became escalation journal rows with the payload intact.
	sent, err := entClient.Event.Query().Where(event.KindEQ(models.EventEscalationSent)).All(ctx)
	require.NoError(t, err)
	require.Len(t, sent, 1)
	assert.Equal(t, "agent-mail", sent[0].Data["channel"])

	// Each legacy lease grew a synthetic LEASED task plus a canonical lease
	// row carrying the original holder and expiry.
	task, err := entClient.Task.Get(ctx, "task-legacy-77")
	require.NoError(t, err)
	assert.Equal(t, string(models.StateLeased), string(task.State))
	assert.Equal(t, 100, task.Priority)
	assert.Equal(t, 3, task.MaxAttempts)

	l, err := entClient.Lease.Query().Where(lease.TaskIDEQ("task-legacy-77")).Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "agent-old", l.AgentID)
	assert.Equal(t, int64(1700000001000), l.LeaseExpiresAt)

	// The legacy tables are gone, so a second open is a no-op.
	for _, table := range []string{"runtime_heartbeats", "runtime_queue_messages", "runtime_leases"} {
		exists, err := tableExists(ctx, db, table)
		require.NoError(t, err)
		assert.False(t, exists, table)
	}
	require.NoError(t, FoldLegacyTables(ctx, db))
	n, err := entClient.Event.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestFoldLegacyTablesWithoutLegacyTables(t *testing.T) {
	_, db := util.SetupTestDatabase(t)
	require.NoError(t, FoldLegacyTables(context.Background(), db))
}
