package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/openmaf/maf/ent"
	"github.com/openmaf/maf/ent/filereservation"
	"github.com/openmaf/maf/ent/task"
	"github.com/openmaf/maf/pkg/config"
	"github.com/openmaf/maf/pkg/database"
	"github.com/openmaf/maf/pkg/ids"
	"github.com/openmaf/maf/pkg/models"
)

// candidateScanLimit bounds how many READY rows one claim attempt locks.
const candidateScanLimit = 10

// ClaimService is the claim engine: it hands the next eligible READY task
// to an agent, leasing the task and eagerly reserving its declared files in
// one transaction. Candidate rows are taken FOR UPDATE SKIP LOCKED, so
// concurrent claimers pass over each other instead of serializing.
type ClaimService struct {
	client       *ent.Client
	journal      *JournalService
	reservations *ReservationService
	mail         *MailService
	cfg          *config.Config
}

// NewClaimService creates a new claim service.
func NewClaimService(client *ent.Client, journal *JournalService, reservations *ReservationService, mail *MailService, cfg *config.Config) *ClaimService {
	return &ClaimService{
		client:       client,
		journal:      journal,
		reservations: reservations,
		mail:         mail,
		cfg:          cfg,
	}
}

// ClaimNext claims the next READY task matching the filter for an agent.
//
// File reservation is eager but partial: every declared file the agent can
// reserve is reserved, and the rest are reported as conflicts on the claim
// result. The claim itself still succeeds; the agent decides whether to
// proceed on the acquired subset, wait, or release. No matching task is an
// outcome, not an error: NoneAvailable carries a small preview of READY
// tasks for diagnostics.
func (s *ClaimService) ClaimNext(ctx context.Context, agentID string, filter models.TaskFilter, leaseDur time.Duration) (models.ClaimOutcome, error) {
	if agentID == "" {
		return models.ClaimOutcome{}, fmt.Errorf("%w: agent id is required", models.ErrInvalidArgument)
	}
	if leaseDur <= 0 {
		leaseDur = s.cfg.Leases.DefaultDuration
	}
	if leaseDur > s.cfg.Leases.MaxDuration {
		leaseDur = s.cfg.Leases.MaxDuration
	}

	var claimed *models.ClaimedTask
	err := database.WithTx(ctx, s.client, func(tx *ent.Tx) error {
		claimed = nil

		candidates, err := s.lockCandidates(ctx, tx, filter)
		if err != nil {
			return err
		}
		if len(candidates) == 0 {
			return nil
		}

		t := candidates[0]
		l, err := leaseTaskTx(ctx, tx, s.journal, t, agentID, leaseDur)
		if err != nil {
			return err
		}

		acquired, conflicted, err := s.reserveDeclaredTx(ctx, tx, t, agentID, leaseDur)
		if err != nil {
			return err
		}

		// Re-read for the post-claim attempt counter and state.
		t, err = getTaskTx(ctx, tx, t.ID)
		if err != nil {
			return err
		}
		claimed = &models.ClaimedTask{
			Task:            taskToModel(t),
			Lease:           leaseToModel(l),
			AcquiredFiles:   acquired,
			ConflictedFiles: conflicted,
		}
		return nil
	})
	if err != nil {
		return models.ClaimOutcome{}, err
	}

	if claimed == nil {
		preview, err := s.ReadyPreview(ctx, filter)
		if err != nil {
			return models.ClaimOutcome{}, err
		}
		return models.ClaimOutcome{NoneAvailable: &models.NoneAvailable{ReadyPreview: preview}}, nil
	}

	s.notifyConflicts(ctx, agentID, claimed.ConflictedFiles)

	slog.Info("Task claimed",
		"task_id", claimed.Task.ID, "agent_id", agentID,
		"attempt", claimed.Lease.Attempt,
		"acquired_files", len(claimed.AcquiredFiles),
		"conflicted_files", len(claimed.ConflictedFiles))
	return models.ClaimOutcome{Claimed: claimed}, nil
}

// lockCandidates selects up to candidateScanLimit READY tasks matching the
// filter, best-priority first, locking the rows and skipping any a
// concurrent claimer already holds.
func (s *ClaimService) lockCandidates(ctx context.Context, tx *ent.Tx, filter models.TaskFilter) ([]*ent.Task, error) {
	query := tx.Task.Query().
		Where(task.StateEQ(task.StateREADY))
	if filter.MinPriority != nil {
		query = query.Where(task.PriorityGTE(*filter.MinPriority))
	}
	if filter.MaxPriority != nil {
		query = query.Where(task.PriorityLTE(*filter.MaxPriority))
	}
	if filter.PolicyLabel != "" {
		query = query.Where(task.PolicyLabelEQ(filter.PolicyLabel))
	}

	candidates, err := query.
		Order(ent.Asc(task.FieldPriority), ent.Asc(task.FieldCreatedAt), ent.Asc(task.FieldID)).
		Limit(candidateScanLimit).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to scan claim candidates: %w", err)
	}
	return candidates, nil
}

// reserveDeclaredTx eagerly reserves the task's declared files inside the
// claim transaction. Paths held by live competitors become conflicts: the
// audit row is written here, in the same transaction, so a crash cannot
// lose it.
func (s *ClaimService) reserveDeclaredTx(ctx context.Context, tx *ent.Tx, t *ent.Task, agentID string, leaseDur time.Duration) ([]string, []models.FileConflict, error) {
	files := models.DeclaredFiles(t.Payload)
	if len(files) == 0 {
		return nil, nil, nil
	}

	now := ids.NowMillis()
	expiresAt := now + ids.DurationMillis(leaseDur)
	acquired := make([]string, 0, len(files))
	var conflicted []models.FileConflict

	for _, path := range files {
		existing, err := tx.FileReservation.Query().
			Where(
				filereservation.FilePathEQ(path),
				filereservation.StatusEQ(filereservation.StatusActive),
			).
			Only(ctx)
		switch {
		case err == nil && existing.AgentID == agentID:
			if _, uerr := existing.Update().SetLeaseExpiresAt(expiresAt).Save(ctx); uerr != nil {
				return nil, nil, fmt.Errorf("failed to extend reservation: %w", uerr)
			}
			acquired = append(acquired, path)
			continue

		case err == nil && existing.LeaseExpiresAt > now:
			conflicted = append(conflicted, models.FileConflict{
				Path: path, Holder: existing.AgentID, ExpiresAt: existing.LeaseExpiresAt,
			})
			_, cerr := recordConflictTx(ctx, tx, s.journal, models.ReservationConflict{
				FilePath:         path,
				ConflictingAgent: agentID,
				ExistingAgent:    existing.AgentID,
				ConflictType:     models.ConflictTypeClaim,
				Severity:         models.SeverityLow,
			})
			if cerr != nil {
				return nil, nil, cerr
			}
			continue

		case err == nil:
			if _, uerr := existing.Update().SetStatus(filereservation.StatusExpired).Save(ctx); uerr != nil {
				return nil, nil, fmt.Errorf("failed to expire stale reservation: %w", uerr)
			}

		case !ent.IsNotFound(err):
			return nil, nil, fmt.Errorf("failed to query reservation: %w", err)
		}

		_, err = tx.FileReservation.Create().
			SetID(ids.NewReservationID()).
			SetFilePath(path).
			SetAgentID(agentID).
			SetLeaseExpiresAt(expiresAt).
			SetStatus(filereservation.StatusActive).
			SetLeaseReason("claim "+t.ID).
			SetMetadata(map[string]any{"task_id": t.ID}).
			SetCreatedAt(now).
			Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				// Another claimer inserted first; retry the whole claim.
				return nil, nil, &models.TransientError{Err: fmt.Errorf("reservation for %s inserted concurrently", path)}
			}
			return nil, nil, fmt.Errorf("failed to create reservation: %w", err)
		}

		if _, err := s.journal.appendTx(ctx, tx, t.ID, models.EventReservationCreated, map[string]any{
			"path":       path,
			"agent_id":   agentID,
			"expires_at": expiresAt,
		}); err != nil {
			return nil, nil, err
		}
		acquired = append(acquired, path)
	}
	return acquired, conflicted, nil
}

// notifyConflicts escalates each conflicted path to the debug channel after
// the claim has committed. Best-effort: a send failure never unwinds the
// claim.
func (s *ClaimService) notifyConflicts(ctx context.Context, agentID string, conflicts []models.FileConflict) {
	if s.mail == nil {
		return
	}
	for _, c := range conflicts {
		_, err := s.mail.Send(ctx, s.cfg.Channels.DebugTarget, SendRequest{
			Kind:      models.KindReservationConflict,
			FromAgent: agentID,
			Payload: map[string]any{
				"file_path":       c.Path,
				"conflict_type":   models.ConflictTypeClaim,
				"severity":        string(models.SeverityLow),
				"existing_agent":  c.Holder,
				"requested_agent": agentID,
				"expires_at":      c.ExpiresAt,
			},
		})
		if err != nil {
			slog.Error("Failed to escalate claim conflict", "path", c.Path, "error", err)
		}
	}
}

// ReadyPreview returns up to ReadyPreviewLimit READY tasks matching the
// filter, best-priority first, without locking anything.
func (s *ClaimService) ReadyPreview(ctx context.Context, filter models.TaskFilter) ([]models.Task, error) {
	query := s.client.Task.Query().
		Where(task.StateEQ(task.StateREADY))
	if filter.MinPriority != nil {
		query = query.Where(task.PriorityGTE(*filter.MinPriority))
	}
	if filter.MaxPriority != nil {
		query = query.Where(task.PriorityLTE(*filter.MaxPriority))
	}
	if filter.PolicyLabel != "" {
		query = query.Where(task.PolicyLabelEQ(filter.PolicyLabel))
	}

	rows, err := query.
		Order(ent.Asc(task.FieldPriority), ent.Asc(task.FieldCreatedAt), ent.Asc(task.FieldID)).
		Limit(models.ReadyPreviewLimit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to preview ready tasks: %w", err)
	}
	return tasksToModels(rows), nil
}
