package litestore

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/openmaf/maf/pkg/ids"
	"github.com/openmaf/maf/pkg/models"
)

// ClaimNext claims the next READY task matching the filter. File
// reservation is eager but partial: unreservable declared files are
// reported as conflicts on the result, and the claim still succeeds.
// No matching task yields NoneAvailable with a small READY preview.
func (s *Store) ClaimNext(ctx context.Context, agentID string, filter models.TaskFilter, leaseDur time.Duration) (models.ClaimOutcome, error) {
	if agentID == "" {
		return models.ClaimOutcome{}, fmt.Errorf("%w: agent id is required", models.ErrInvalidArgument)
	}
	leaseDur = s.clampDuration(leaseDur)

	var outcome models.ClaimOutcome
	err := s.mutate(func(doc *document) error {
		t := nextReady(doc, filter)
		if t == nil {
			outcome = models.ClaimOutcome{NoneAvailable: &models.NoneAvailable{ReadyPreview: readyPreview(doc, filter)}}
			return nil
		}

		l := leaseTask(doc, t, agentID, leaseDur)
		acquired, conflicted := reserveDeclared(doc, t, agentID, leaseDur)
		outcome = models.ClaimOutcome{Claimed: &models.ClaimedTask{
			Task:            *t,
			Lease:           *l,
			AcquiredFiles:   acquired,
			ConflictedFiles: conflicted,
		}}
		return nil
	})
	if err != nil {
		return models.ClaimOutcome{}, err
	}

	if outcome.Claimed != nil {
		slog.Info("Task claimed",
			"task_id", outcome.Claimed.Task.ID, "agent_id", agentID,
			"attempt", outcome.Claimed.Lease.Attempt,
			"acquired_files", len(outcome.Claimed.AcquiredFiles),
			"conflicted_files", len(outcome.Claimed.ConflictedFiles))
	}
	return outcome, nil
}

// nextReady picks the best READY candidate: lowest priority value, oldest
// first, id as the final tiebreak. Callers hold s.mu.
func nextReady(doc *document, filter models.TaskFilter) *models.Task {
	var best *models.Task
	for _, t := range doc.Tasks {
		if t.State != models.StateReady || !matchesFilter(t, filter) {
			continue
		}
		if best == nil ||
			t.Priority < best.Priority ||
			(t.Priority == best.Priority && t.CreatedAt < best.CreatedAt) ||
			(t.Priority == best.Priority && t.CreatedAt == best.CreatedAt && t.ID < best.ID) {
			best = t
		}
	}
	return best
}

func readyPreview(doc *document, filter models.TaskFilter) []models.Task {
	var out []models.Task
	for _, t := range doc.Tasks {
		if t.State == models.StateReady && matchesFilter(t, filter) {
			out = append(out, *t)
		}
	}
	sortByPriority(out)
	if len(out) > models.ReadyPreviewLimit {
		out = out[:models.ReadyPreviewLimit]
	}
	return out
}

// reserveDeclared eagerly reserves the task's declared files for the
// claimer. Paths held by live competitors become conflicts with audit rows.
// Callers hold s.mu.
func reserveDeclared(doc *document, t *models.Task, agentID string, leaseDur time.Duration) ([]string, []models.FileConflict) {
	files := t.DeclaredFiles()
	if len(files) == 0 {
		return nil, nil
	}

	now := ids.NowMillis()
	expiresAt := now + ids.DurationMillis(leaseDur)
	acquired := make([]string, 0, len(files))
	var conflicted []models.FileConflict

	for _, path := range files {
		if existing := activeReservation(doc, path); existing != nil {
			switch {
			case existing.AgentID == agentID:
				existing.ExpiresAt = expiresAt
				acquired = append(acquired, path)
				continue
			case existing.ExpiresAt > now:
				conflicted = append(conflicted, models.FileConflict{
					Path: path, Holder: existing.AgentID, ExpiresAt: existing.ExpiresAt,
				})
				recordConflict(doc, models.ReservationConflict{
					FilePath:         path,
					ConflictingAgent: agentID,
					ExistingAgent:    existing.AgentID,
					ConflictType:     models.ConflictTypeClaim,
					Severity:         models.SeverityLow,
				})
				continue
			default:
				existing.Status = models.ReservationExpired
			}
		}

		doc.Reservations = append(doc.Reservations, &models.Reservation{
			ID:        ids.NewReservationID(),
			FilePath:  path,
			AgentID:   agentID,
			ExpiresAt: expiresAt,
			Status:    models.ReservationActive,
			Reason:    "claim " + t.ID,
			Metadata:  map[string]any{"task_id": t.ID},
		})
		appendEvent(doc, t.ID, models.EventReservationCreated, map[string]any{
			"path":       path,
			"agent_id":   agentID,
			"expires_at": expiresAt,
		})
		acquired = append(acquired, path)
	}
	return acquired, conflicted
}
