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

// Reserve acquires an exclusive reservation on one path. Re-reserving a
// held path extends it; a path held by another live agent fails with a
// FileLeasedError and records the conflict.
func (s *Store) Reserve(ctx context.Context, path, agentID string, d time.Duration, reason string, metadata map[string]any) (models.Reservation, error) {
	if path == "" || agentID == "" {
		return models.Reservation{}, fmt.Errorf("%w: path and agent id are required", models.ErrInvalidArgument)
	}
	d = s.clampDuration(d)

	var out models.Reservation
	err := s.mutate(func(doc *document) error {
		now := ids.NowMillis()
		expiresAt := now + ids.DurationMillis(d)

		if existing := activeReservation(doc, path); existing != nil {
			switch {
			case existing.AgentID == agentID:
				existing.ExpiresAt = expiresAt
				out = *existing
				return nil
			case existing.ExpiresAt > now:
				recordConflict(doc, models.ReservationConflict{
					FilePath:         path,
					ConflictingAgent: agentID,
					ExistingAgent:    existing.AgentID,
					ConflictType:     models.ConflictTypeClaim,
					Severity:         models.SeverityMedium,
				})
				return &models.FileLeasedError{Path: path, Holder: existing.AgentID, ExpiresAt: existing.ExpiresAt}
			default:
				existing.Status = models.ReservationExpired
			}
		}

		r := &models.Reservation{
			ID:        ids.NewReservationID(),
			FilePath:  path,
			AgentID:   agentID,
			ExpiresAt: expiresAt,
			Status:    models.ReservationActive,
			Reason:    reason,
			Metadata:  metadata,
		}
		doc.Reservations = append(doc.Reservations, r)
		appendEvent(doc, "", models.EventReservationCreated, map[string]any{
			"path":       path,
			"agent_id":   agentID,
			"expires_at": expiresAt,
		})
		out = *r
		return nil
	})
	return out, err
}

// ReleaseFile gives up the caller's active reservation on a path.
func (s *Store) ReleaseFile(ctx context.Context, path, agentID string) error {
	return s.mutate(func(doc *document) error {
		existing := activeReservation(doc, path)
		if existing == nil {
			return fmt.Errorf("%w: no active reservation on %s", models.ErrNotFound, path)
		}
		if existing.AgentID != agentID {
			return fmt.Errorf("%w: %s is held by %s", models.ErrNotHeldByAgent, path, existing.AgentID)
		}

		existing.Status = models.ReservationReleased
		appendEvent(doc, "", models.EventReservationReleased, map[string]any{
			"path":     path,
			"agent_id": agentID,
		})
		return nil
	})
}

// ListReservations returns active reservations, optionally narrowed to one
// agent, soonest-expiring first.
func (s *Store) ListReservations(ctx context.Context, agentID string) ([]models.Reservation, error) {
	var out []models.Reservation
	err := s.view(func(doc *document) error {
		for _, r := range doc.Reservations {
			if r.Status != models.ReservationActive {
				continue
			}
			if agentID != "" && r.AgentID != agentID {
				continue
			}
			out = append(out, *r)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ExpiresAt < out[j].ExpiresAt })
	return out, nil
}

// HoldersOf returns the live holder of each given path, excluding the
// caller's own reservations.
func (s *Store) HoldersOf(ctx context.Context, paths []string, excludeAgent string) ([]models.FileConflict, error) {
	want := map[string]bool{}
	for _, p := range paths {
		want[p] = true
	}

	var out []models.FileConflict
	err := s.view(func(doc *document) error {
		now := ids.NowMillis()
		for _, r := range doc.Reservations {
			if r.Status != models.ReservationActive || !want[r.FilePath] {
				continue
			}
			if r.ExpiresAt <= now || r.AgentID == excludeAgent {
				continue
			}
			out = append(out, models.FileConflict{Path: r.FilePath, Holder: r.AgentID, ExpiresAt: r.ExpiresAt})
		}
		return nil
	})
	return out, err
}

// SweepReservations flips expired active reservations to expired.
func (s *Store) SweepReservations(ctx context.Context) (int, error) {
	expired := 0
	err := s.mutate(func(doc *document) error {
		now := ids.NowMillis()
		for _, r := range doc.Reservations {
			if r.Status != models.ReservationActive || r.ExpiresAt > now {
				continue
			}
			r.Status = models.ReservationExpired
			appendEvent(doc, "", models.EventReservationReleased, map[string]any{
				"path":     r.FilePath,
				"agent_id": r.AgentID,
				"expired":  true,
			})
			expired++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	if expired > 0 {
		slog.Info("Stale reservations expired", "count", expired)
	}
	return expired, nil
}

// OpenConflicts lists unresolved conflicts, newest first.
func (s *Store) OpenConflicts(ctx context.Context, limit int) ([]models.ReservationConflict, error) {
	if limit <= 0 {
		limit = 100
	}
	var out []models.ReservationConflict
	err := s.view(func(doc *document) error {
		for _, c := range doc.Conflicts {
			if c.Status == models.ConflictStatusOpen {
				out = append(out, c)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DetectedAt > out[j].DetectedAt })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// activeReservation finds the active row for a path. Callers hold s.mu.
func activeReservation(doc *document, path string) *models.Reservation {
	for _, r := range doc.Reservations {
		if r.FilePath == path && r.Status == models.ReservationActive {
			return r
		}
	}
	return nil
}

// releaseAgentPaths releases the agent's active reservations on the given
// paths. Callers hold s.mu.
func releaseAgentPaths(doc *document, agentID string, paths []string) {
	want := map[string]bool{}
	for _, p := range paths {
		want[p] = true
	}
	for _, r := range doc.Reservations {
		if r.Status != models.ReservationActive || r.AgentID != agentID || !want[r.FilePath] {
			continue
		}
		r.Status = models.ReservationReleased
		appendEvent(doc, "", models.EventReservationReleased, map[string]any{
			"path":     r.FilePath,
			"agent_id": agentID,
		})
	}
}

// recordConflict appends one conflict audit row. Callers hold s.mu.
func recordConflict(doc *document, c models.ReservationConflict) string {
	if c.ID == "" {
		c.ID = ids.NewConflictID()
	}
	if c.Severity == "" {
		c.Severity = models.SeverityMedium
	}
	c.Status = models.ConflictStatusOpen
	c.DetectedAt = ids.NowMillis()
	doc.Conflicts = append(doc.Conflicts, c)
	appendEvent(doc, "", models.EventReservationConflict, map[string]any{
		"conflict_id":       c.ID,
		"path":              c.FilePath,
		"conflicting_agent": c.ConflictingAgent,
		"existing_agent":    c.ExistingAgent,
		"conflict_type":     c.ConflictType,
	})
	return c.ID
}
