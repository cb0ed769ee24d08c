package litestore

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/openmaf/maf/pkg/ids"
	"github.com/openmaf/maf/pkg/models"
)

func (s *Store) clampDuration(d time.Duration) time.Duration {
	if d <= 0 {
		return s.cfg.Leases.DefaultDuration
	}
	if d > s.cfg.Leases.MaxDuration {
		return s.cfg.Leases.MaxDuration
	}
	return d
}

// AcquireLease leases one specific READY task for an agent.
func (s *Store) AcquireLease(ctx context.Context, taskID, agentID string, d time.Duration) (models.Lease, error) {
	if agentID == "" {
		return models.Lease{}, fmt.Errorf("%w: agent id is required", models.ErrInvalidArgument)
	}
	d = s.clampDuration(d)

	var out models.Lease
	err := s.mutate(func(doc *document) error {
		t, ok := doc.Tasks[taskID]
		if !ok {
			return fmt.Errorf("%w: task %s", models.ErrNotFound, taskID)
		}
		if t.State != models.StateReady {
			if l, ok := doc.Leases[taskID]; ok {
				return &models.LeaseConflictError{TaskID: taskID, Holder: l.AgentID, ExpiresAt: l.ExpiresAt}
			}
			return &models.IllegalTransitionError{
				TaskID: taskID, From: models.StateReady, To: models.StateLeased, Observed: t.State,
			}
		}

		l := leaseTask(doc, t, agentID, d)
		out = *l
		return nil
	})
	return out, err
}

// leaseTask performs the READY -> LEASED move: advance the attempt counter,
// create the lease, journal CLAIMED. Callers hold s.mu and have verified
// the task is READY.
func leaseTask(doc *document, t *models.Task, agentID string, d time.Duration) *models.Lease {
	now := ids.NowMillis()
	t.State = models.StateLeased
	t.Attempts++
	t.UpdatedAt = now

	l := &models.Lease{
		TaskID:    t.ID,
		AgentID:   agentID,
		ExpiresAt: now + ids.DurationMillis(d),
		Attempt:   t.Attempts,
	}
	doc.Leases[t.ID] = l
	appendEvent(doc, t.ID, models.EventClaimed, map[string]any{
		"agent_id":   agentID,
		"attempt":    l.Attempt,
		"expires_at": l.ExpiresAt,
	})
	return l
}

// RefreshLease extends the caller's own unexpired lease from now.
func (s *Store) RefreshLease(ctx context.Context, taskID, agentID string, d time.Duration) (models.Lease, error) {
	d = s.clampDuration(d)

	var out models.Lease
	err := s.mutate(func(doc *document) error {
		l, err := heldLease(doc, taskID, agentID)
		if err != nil {
			return err
		}
		now := ids.NowMillis()
		if l.ExpiresAt <= now {
			return fmt.Errorf("%w: lease on task %s expired at %d", models.ErrExpired, taskID, l.ExpiresAt)
		}
		l.ExpiresAt = now + ids.DurationMillis(d)
		out = *l
		return nil
	})
	return out, err
}

// ReleaseLease gives a LEASED task back voluntarily.
func (s *Store) ReleaseLease(ctx context.Context, taskID, agentID string) error {
	return s.mutate(func(doc *document) error {
		l, err := heldLease(doc, taskID, agentID)
		if err != nil {
			return err
		}
		t := doc.Tasks[taskID]
		if t.State != models.StateLeased {
			return fmt.Errorf("%w: task %s is %s; roll it back instead of releasing",
				models.ErrInvalidArgument, taskID, t.State)
		}

		delete(doc.Leases, taskID)
		t.State = models.StateReady
		t.UpdatedAt = ids.NowMillis()
		appendEvent(doc, taskID, models.EventLeaseReleased, map[string]any{
			"agent_id": agentID,
			"attempt":  l.Attempt,
		})
		return nil
	})
}

// GetLease returns the lease currently held on a task.
func (s *Store) GetLease(ctx context.Context, taskID string) (models.Lease, error) {
	var out models.Lease
	err := s.view(func(doc *document) error {
		l, ok := doc.Leases[taskID]
		if !ok {
			return fmt.Errorf("%w: no lease for task %s", models.ErrNotFound, taskID)
		}
		out = *l
		return nil
	})
	return out, err
}

// ListLeases returns every current lease, soonest-expiring first.
func (s *Store) ListLeases(ctx context.Context) ([]models.Lease, error) {
	var out []models.Lease
	err := s.view(func(doc *document) error {
		for _, l := range doc.Leases {
			out = append(out, *l)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ExpiresAt < out[j].ExpiresAt })
	return out, nil
}

// SweepLeases reclaims every expired lease: the lease is destroyed and the
// task re-queued READY, or DEAD once attempts are exhausted.
func (s *Store) SweepLeases(ctx context.Context) (int, error) {
	reclaimed := 0
	err := s.mutate(func(doc *document) error {
		now := ids.NowMillis()
		for taskID, l := range doc.Leases {
			if l.ExpiresAt > now {
				continue
			}
			reclaimLease(doc, taskID, l, "lease expired")
			reclaimed++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	if reclaimed > 0 {
		slog.Info("Leases reclaimed", "count", reclaimed, "reason", "lease expired")
	}
	return reclaimed, nil
}

// reclaimLease destroys one lease and reverts its task, the privileged
// revert that may pull RUNNING and VERIFYING back to READY. Callers hold
// s.mu.
func reclaimLease(doc *document, taskID string, l *models.Lease, reason string) {
	delete(doc.Leases, taskID)
	t, ok := doc.Tasks[taskID]
	if !ok {
		return
	}
	target := models.StateReady
	if t.Attempts >= t.MaxAttempts {
		target = models.StateDead
	}
	if models.IsActiveState(t.State) {
		t.State = target
		t.UpdatedAt = ids.NowMillis()
	}
	appendEvent(doc, taskID, models.EventLeaseExpired, map[string]any{
		"agent_id":   l.AgentID,
		"attempt":    l.Attempt,
		"expired_at": l.ExpiresAt,
		"reason":     reason,
		"requeued":   target == models.StateReady,
	})
}

func heldLease(doc *document, taskID, agentID string) (*models.Lease, error) {
	l, ok := doc.Leases[taskID]
	if !ok {
		return nil, fmt.Errorf("%w: no lease for task %s", models.ErrNotFound, taskID)
	}
	if l.AgentID != agentID {
		return nil, fmt.Errorf("%w: task %s is held by %s", models.ErrNotHeldByAgent, taskID, l.AgentID)
	}
	return l, nil
}
