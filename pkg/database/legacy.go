package database

import (
	"context"
	stdsql "database/sql"
	"fmt"
	"log/slog"

	"github.com/openmaf/maf/pkg/ids"
	"github.com/openmaf/maf/pkg/models"
)

// FoldLegacyTables migrates pre-1.0 runtime_* tables into the canonical
// schema on first open:
//
//   - runtime_heartbeats     → events (kind HEARTBEAT_MISSED/HEARTBEAT_RENEW_FAILURE preserved in data)
//   - runtime_queue_messages → events (kind ESCALATION_SENT, original payload in data)
//   - runtime_leases         → tasks + leases (synthetic task-legacy-<id> tasks)
//
// The fold is idempotent: legacy tables are dropped once folded, so a
// second open is a no-op. Rows never round-trip back to the legacy shape.
func FoldLegacyTables(ctx context.Context, db *stdsql.DB) error {
	for _, fold := range []struct {
		table string
		fn    func(context.Context, *stdsql.Tx) error
	}{
		{"runtime_heartbeats", foldLegacyHeartbeats},
		{"runtime_queue_messages", foldLegacyQueueMessages},
		{"runtime_leases", foldLegacyLeases},
	} {
		exists, err := tableExists(ctx, db, fold.table)
		if err != nil {
			return err
		}
		if !exists {
			continue
		}

		slog.Info("Folding legacy table forward", "table", fold.table)

		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("failed to begin legacy fold transaction: %w", err)
		}
		if err := fold.fn(ctx, tx); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to fold %s: %w", fold.table, err)
		}
		if _, err := tx.ExecContext(ctx, fmt.Sprintf("DROP TABLE %s", fold.table)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to drop %s: %w", fold.table, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit fold of %s: %w", fold.table, err)
		}
	}
	return nil
}

func tableExists(ctx context.Context, db *stdsql.DB, name string) (bool, error) {
	var exists bool
	err := db.QueryRowContext(ctx,
		`SELECT EXISTS (
			SELECT 1 FROM information_schema.tables
			WHERE table_schema = current_schema() AND table_name = $1
		)`, name).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check for table %s: %w", name, err)
	}
	return exists, nil
}

// foldLegacyHeartbeats turns each legacy heartbeat row into an events row.
func foldLegacyHeartbeats(ctx context.Context, tx *stdsql.Tx) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO events (ts, kind, data)
		SELECT hb.recorded_at, 'HEARTBEAT_MISSED',
		       json_build_object('agent_id', hb.agent_id, 'legacy', true, 'status', hb.status)
		FROM runtime_heartbeats hb`)
	return err
}

// foldLegacyQueueMessages turns each legacy queue message into an events row
// carrying the original payload.
func foldLegacyQueueMessages(ctx context.Context, tx *stdsql.Tx) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO events (ts, kind, data)
		SELECT qm.created_at, 'ESCALATION_SENT',
		       json_build_object('channel', qm.channel, 'legacy', true, 'payload', qm.payload)
		FROM runtime_queue_messages qm`)
	return err
}

// foldLegacyLeases creates a synthetic task per legacy lease, then the
// matching canonical lease row. Legacy leases had no task concept, so the
// synthetic tasks start LEASED and flow through the normal reclamation
// path once their expiry passes.
func foldLegacyLeases(ctx context.Context, tx *stdsql.Tx) error {
	rows, err := tx.QueryContext(ctx,
		`SELECT lease_id, agent_id, expires_at FROM runtime_leases`)
	if err != nil {
		return err
	}
	defer rows.Close()

	type legacyLease struct {
		id        string
		agentID   string
		expiresAt int64
	}
	var leases []legacyLease
	for rows.Next() {
		var l legacyLease
		if err := rows.Scan(&l.id, &l.agentID, &l.expiresAt); err != nil {
			return err
		}
		leases = append(leases, l)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	now := ids.NowMillis()
	for _, l := range leases {
		taskID := ids.SyntheticTaskID(l.id)
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO tasks (task_id, state, priority, created_at, updated_at, attempts, max_attempts)
			VALUES ($1, $2, 100, $3, $3, 0, 3)
			ON CONFLICT (task_id) DO NOTHING`,
			taskID, string(models.StateLeased), now); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO leases (lease_id, task_id, agent_id, lease_expires_at, attempt)
			VALUES ($1, $2, $3, $4, 0)
			ON CONFLICT (task_id) DO NOTHING`,
			ids.NewLeaseID(), taskID, l.agentID, l.expiresAt); err != nil {
			return err
		}
	}
	return nil
}
