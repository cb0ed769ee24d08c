package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/openmaf/maf/ent"
	"github.com/openmaf/maf/ent/lease"
	"github.com/openmaf/maf/ent/task"
	"github.com/openmaf/maf/pkg/config"
	"github.com/openmaf/maf/pkg/database"
	"github.com/openmaf/maf/pkg/ids"
	"github.com/openmaf/maf/pkg/models"
)

// LeaseService owns task leases: targeted acquisition, refresh, voluntary
// release, and reclamation of expired or orphaned leases. It holds the only
// privileged path that moves RUNNING or VERIFYING tasks back to READY.
type LeaseService struct {
	client  *ent.Client
	journal *JournalService
	cfg     *config.LeaseConfig
}

// NewLeaseService creates a new lease service.
func NewLeaseService(client *ent.Client, journal *JournalService, cfg *config.LeaseConfig) *LeaseService {
	return &LeaseService{client: client, journal: journal, cfg: cfg}
}

// clampDuration applies the configured default and ceiling to a requested
// lease duration.
func (s *LeaseService) clampDuration(d time.Duration) time.Duration {
	if d <= 0 {
		return s.cfg.DefaultDuration
	}
	if d > s.cfg.MaxDuration {
		return s.cfg.MaxDuration
	}
	return d
}

// Acquire leases one specific READY task for an agent. The task moves to
// LEASED and its attempt counter advances. A task already leased fails with
// a LeaseConflictError naming the holder; any other state is an illegal
// transition.
func (s *LeaseService) Acquire(ctx context.Context, taskID, agentID string, d time.Duration) (models.Lease, error) {
	if agentID == "" {
		return models.Lease{}, fmt.Errorf("%w: agent id is required", models.ErrInvalidArgument)
	}
	d = s.clampDuration(d)

	var out models.Lease
	err := database.WithTx(ctx, s.client, func(tx *ent.Tx) error {
		t, err := getTaskTx(ctx, tx, taskID)
		if err != nil {
			return err
		}
		if t.State != task.StateREADY {
			if l, lerr := tx.Lease.Query().Where(lease.TaskIDEQ(taskID)).Only(ctx); lerr == nil {
				return &models.LeaseConflictError{TaskID: taskID, Holder: l.AgentID, ExpiresAt: l.LeaseExpiresAt}
			}
			return &models.IllegalTransitionError{
				TaskID: taskID, From: models.StateReady, To: models.StateLeased,
				Observed: models.TaskState(t.State),
			}
		}

		l, err := leaseTaskTx(ctx, tx, s.journal, t, agentID, d)
		if err != nil {
			return err
		}
		out = leaseToModel(l)
		return nil
	})
	if err != nil {
		return models.Lease{}, err
	}

	slog.Info("Lease acquired", "task_id", taskID, "agent_id", agentID, "expires_at", out.ExpiresAt)
	return out, nil
}

// leaseTaskTx performs the READY -> LEASED move inside an open transaction:
// CAS the state, advance the attempt counter, insert the lease row, and
// journal CLAIMED. Shared by targeted acquisition and the claim engine.
func leaseTaskTx(ctx context.Context, tx *ent.Tx, journal *JournalService, t *ent.Task, agentID string, d time.Duration) (*ent.Lease, error) {
	now := ids.NowMillis()
	n, err := tx.Task.Update().
		Where(task.IDEQ(t.ID), task.StateEQ(task.StateREADY)).
		SetState(task.StateLEASED).
		AddAttempts(1).
		SetUpdatedAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to lease task: %w", err)
	}
	if n == 0 {
		// Lost the race to another claimer between read and update.
		return nil, &models.TransientError{Err: fmt.Errorf("task %s claimed concurrently", t.ID)}
	}

	attempt := t.Attempts + 1
	expiresAt := now + ids.DurationMillis(d)
	l, err := tx.Lease.Create().
		SetID(ids.NewLeaseID()).
		SetTaskID(t.ID).
		SetAgentID(agentID).
		SetLeaseExpiresAt(expiresAt).
		SetAttempt(attempt).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, &models.TransientError{Err: fmt.Errorf("lease for task %s inserted concurrently", t.ID)}
		}
		return nil, fmt.Errorf("failed to create lease: %w", err)
	}

	_, err = journal.appendTx(ctx, tx, t.ID, models.EventClaimed, map[string]any{
		"agent_id":   agentID,
		"attempt":    attempt,
		"expires_at": expiresAt,
	})
	if err != nil {
		return nil, err
	}
	return l, nil
}

// Refresh extends the caller's own lease. The new expiry is measured from
// now and clamped to the configured maximum; an expired lease cannot be
// refreshed and surfaces Expired so the agent stops working.
func (s *LeaseService) Refresh(ctx context.Context, taskID, agentID string, d time.Duration) (models.Lease, error) {
	d = s.clampDuration(d)

	var out models.Lease
	err := database.WithTx(ctx, s.client, func(tx *ent.Tx) error {
		l, err := heldLeaseTx(ctx, tx, taskID, agentID)
		if err != nil {
			return err
		}
		now := ids.NowMillis()
		if l.LeaseExpiresAt <= now {
			return fmt.Errorf("%w: lease on task %s expired at %d", models.ErrExpired, taskID, l.LeaseExpiresAt)
		}

		l, err = l.Update().SetLeaseExpiresAt(now + ids.DurationMillis(d)).Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to refresh lease: %w", err)
		}
		out = leaseToModel(l)
		return nil
	})
	if err != nil {
		return models.Lease{}, err
	}
	return out, nil
}

// Release gives a LEASED task back voluntarily: the lease is destroyed and
// the task returns to READY without burning the attempt outcome. A task
// already RUNNING or VERIFYING cannot be released; it must roll back
// through the state machine instead.
func (s *LeaseService) Release(ctx context.Context, taskID, agentID string) error {
	err := database.WithTx(ctx, s.client, func(tx *ent.Tx) error {
		l, err := heldLeaseTx(ctx, tx, taskID, agentID)
		if err != nil {
			return err
		}
		t, err := getTaskTx(ctx, tx, taskID)
		if err != nil {
			return err
		}
		if t.State != task.StateLEASED {
			return fmt.Errorf("%w: task %s is %s; roll it back instead of releasing",
				models.ErrInvalidArgument, taskID, t.State)
		}

		if _, err := tx.Lease.Delete().Where(lease.IDEQ(l.ID)).Exec(ctx); err != nil {
			return fmt.Errorf("failed to delete lease: %w", err)
		}
		n, err := tx.Task.Update().
			Where(task.IDEQ(taskID), task.StateEQ(task.StateLEASED)).
			SetState(task.StateREADY).
			SetUpdatedAt(ids.NowMillis()).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to requeue task: %w", err)
		}
		if n == 0 {
			return &models.TransientError{Err: fmt.Errorf("task %s changed state during release", taskID)}
		}

		_, err = s.journal.appendTx(ctx, tx, taskID, models.EventLeaseReleased, map[string]any{
			"agent_id": agentID,
			"attempt":  l.Attempt,
		})
		return err
	})
	if err != nil {
		return err
	}

	slog.Info("Lease released", "task_id", taskID, "agent_id", agentID)
	return nil
}

// Get returns the lease currently held on a task.
func (s *LeaseService) Get(ctx context.Context, taskID string) (models.Lease, error) {
	l, err := s.client.Lease.Query().Where(lease.TaskIDEQ(taskID)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return models.Lease{}, fmt.Errorf("%w: no lease for task %s", models.ErrNotFound, taskID)
		}
		return models.Lease{}, fmt.Errorf("failed to query lease: %w", err)
	}
	return leaseToModel(l), nil
}

// ListActive returns every current lease, soonest-expiring first.
func (s *LeaseService) ListActive(ctx context.Context) ([]models.Lease, error) {
	rows, err := s.client.Lease.Query().
		Order(ent.Asc(lease.FieldLeaseExpiresAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leases: %w", err)
	}
	out := make([]models.Lease, 0, len(rows))
	for _, l := range rows {
		out = append(out, leaseToModel(l))
	}
	return out, nil
}

// RefreshAgentLeases extends every lease held by one agent that expires
// within the given window. Called from the heartbeat path so a live agent
// never loses a lease to the sweeper between heartbeats.
func (s *LeaseService) RefreshAgentLeases(ctx context.Context, agentID string, window time.Duration) (int, error) {
	now := ids.NowMillis()
	horizon := now + ids.DurationMillis(window)
	newExpiry := now + ids.DurationMillis(s.cfg.DefaultDuration)

	var n int
	err := database.WithTx(ctx, s.client, func(tx *ent.Tx) error {
		var err error
		n, err = tx.Lease.Update().
			Where(
				lease.AgentIDEQ(agentID),
				lease.LeaseExpiresAtGT(now),
				lease.LeaseExpiresAtLTE(horizon),
			).
			SetLeaseExpiresAt(newExpiry).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to refresh agent leases: %w", err)
		}
		return nil
	})
	return n, err
}

// ReclaimExpired sweeps every lease whose expiry has passed: the lease is
// destroyed and the task re-queued READY, or buried DEAD once its attempts
// are exhausted. Each lease is reclaimed in its own transaction so one
// failure does not stall the sweep; failures are journaled and counted.
func (s *LeaseService) ReclaimExpired(ctx context.Context) (int, error) {
	expired, err := s.client.Lease.Query().
		Where(lease.LeaseExpiresAtLTE(ids.NowMillis())).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to scan expired leases: %w", err)
	}

	return s.reclaim(ctx, expired, models.EventLeaseExpired, "lease expired"), nil
}

// ReclaimAgent reclaims every lease held by one agent regardless of expiry.
// Used when liveness sweep marks the agent dead and at daemon startup for
// agents that vanished while the runtime was down.
func (s *LeaseService) ReclaimAgent(ctx context.Context, agentID, reason string) (int, error) {
	held, err := s.client.Lease.Query().
		Where(lease.AgentIDEQ(agentID)).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to scan agent leases: %w", err)
	}

	return s.reclaim(ctx, held, models.EventLeaseExpired, reason), nil
}

func (s *LeaseService) reclaim(ctx context.Context, leases []*ent.Lease, kind, reason string) int {
	reclaimed := 0
	for _, l := range leases {
		if err := s.reclaimOne(ctx, l, kind, reason); err != nil {
			slog.Error("Failed to reclaim lease", "task_id", l.TaskID, "agent_id", l.AgentID, "error", err)
			continue
		}
		reclaimed++
	}
	if reclaimed > 0 {
		slog.Info("Leases reclaimed", "count", reclaimed, "reason", reason)
	}
	return reclaimed
}

// reclaimOne destroys one lease and reverts its task. This is the
// privileged revert: unlike the public state machine it may pull RUNNING
// and VERIFYING tasks back to READY, because the holder is gone.
func (s *LeaseService) reclaimOne(ctx context.Context, l *ent.Lease, kind, reason string) error {
	return database.WithTx(ctx, s.client, func(tx *ent.Tx) error {
		n, err := tx.Lease.Delete().
			Where(lease.IDEQ(l.ID), lease.AgentIDEQ(l.AgentID)).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to delete lease: %w", err)
		}
		if n == 0 {
			// Already reclaimed or released by someone else.
			return nil
		}

		t, err := getTaskTx(ctx, tx, l.TaskID)
		if err != nil {
			return err
		}
		target := task.StateREADY
		if t.Attempts >= t.MaxAttempts {
			target = task.StateDEAD
		}
		_, err = tx.Task.Update().
			Where(task.IDEQ(l.TaskID), task.StateIn(task.StateLEASED, task.StateRUNNING, task.StateVERIFYING)).
			SetState(target).
			SetUpdatedAt(ids.NowMillis()).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to revert task: %w", err)
		}

		_, err = s.journal.appendTx(ctx, tx, l.TaskID, kind, map[string]any{
			"agent_id":   l.AgentID,
			"attempt":    l.Attempt,
			"expired_at": l.LeaseExpiresAt,
			"reason":     reason,
			"requeued":   target == task.StateREADY,
		})
		return err
	})
}

// heldLeaseTx fetches the lease on a task and verifies the caller holds it.
func heldLeaseTx(ctx context.Context, tx *ent.Tx, taskID, agentID string) (*ent.Lease, error) {
	l, err := tx.Lease.Query().Where(lease.TaskIDEQ(taskID)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: no lease for task %s", models.ErrNotFound, taskID)
		}
		return nil, fmt.Errorf("failed to query lease: %w", err)
	}
	if l.AgentID != agentID {
		return nil, fmt.Errorf("%w: task %s is held by %s", models.ErrNotHeldByAgent, taskID, l.AgentID)
	}
	return l, nil
}
