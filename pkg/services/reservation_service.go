package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/openmaf/maf/ent"
	"github.com/openmaf/maf/ent/filereservation"
	"github.com/openmaf/maf/ent/reservationconflict"
	"github.com/openmaf/maf/pkg/config"
	"github.com/openmaf/maf/pkg/database"
	"github.com/openmaf/maf/pkg/ids"
	"github.com/openmaf/maf/pkg/models"
)

// ReservationService owns file reservations: time-bounded exclusive rights
// to modify one path. At most one active reservation exists per path; the
// database enforces that with a partial unique index, so a race between two
// reservers is settled by the insert, not by the prior read.
type ReservationService struct {
	client  *ent.Client
	journal *JournalService
	mail    *MailService
	cfg     *config.Config
}

// NewReservationService creates a new reservation service.
func NewReservationService(client *ent.Client, journal *JournalService, mail *MailService, cfg *config.Config) *ReservationService {
	return &ReservationService{client: client, journal: journal, mail: mail, cfg: cfg}
}

// ReserveRequest is the input to Reserve.
type ReserveRequest struct {
	Path     string
	AgentID  string
	Duration time.Duration
	Reason   string
	Metadata map[string]any
}

// Reserve acquires an exclusive reservation on one path. Re-reserving a
// path the agent already holds extends it. A path held by another agent
// whose reservation is still live fails with a FileLeasedError carrying
// the holder and expiry; the conflict is recorded and escalated.
func (s *ReservationService) Reserve(ctx context.Context, req ReserveRequest) (models.Reservation, error) {
	if req.Path == "" || req.AgentID == "" {
		return models.Reservation{}, fmt.Errorf("%w: path and agent id are required", models.ErrInvalidArgument)
	}
	d := req.Duration
	if d <= 0 {
		d = s.cfg.Leases.DefaultDuration
	}
	if d > s.cfg.Leases.MaxDuration {
		d = s.cfg.Leases.MaxDuration
	}

	var out models.Reservation
	err := database.WithTx(ctx, s.client, func(tx *ent.Tx) error {
		r, err := s.reserveTx(ctx, tx, req.Path, req.AgentID, d, req.Reason, req.Metadata)
		if err != nil {
			return err
		}
		out = reservationToModel(r)
		return nil
	})
	if err != nil {
		var leased *models.FileLeasedError
		if errors.As(err, &leased) {
			s.escalateConflict(ctx, req.Path, req.AgentID, leased.Holder, leased.ExpiresAt, models.ConflictTypeClaim)
		}
		return models.Reservation{}, err
	}

	slog.Info("File reserved", "path", req.Path, "agent_id", req.AgentID, "expires_at", out.ExpiresAt)
	return out, nil
}

// reserveTx acquires or extends one reservation inside an open transaction.
func (s *ReservationService) reserveTx(ctx context.Context, tx *ent.Tx, path, agentID string, d time.Duration, reason string, metadata map[string]any) (*ent.FileReservation, error) {
	now := ids.NowMillis()
	expiresAt := now + ids.DurationMillis(d)

	existing, err := tx.FileReservation.Query().
		Where(
			filereservation.FilePathEQ(path),
			filereservation.StatusEQ(filereservation.StatusActive),
		).
		Only(ctx)
	switch {
	case err == nil && existing.AgentID == agentID:
		// Re-entrant reserve extends the holder's own reservation.
		return existing.Update().SetLeaseExpiresAt(expiresAt).Save(ctx)

	case err == nil && existing.LeaseExpiresAt > now:
		return nil, &models.FileLeasedError{Path: path, Holder: existing.AgentID, ExpiresAt: existing.LeaseExpiresAt}

	case err == nil:
		// Held by another agent but already expired; take it over.
		if _, uerr := existing.Update().SetStatus(filereservation.StatusExpired).Save(ctx); uerr != nil {
			return nil, fmt.Errorf("failed to expire stale reservation: %w", uerr)
		}

	case !ent.IsNotFound(err):
		return nil, fmt.Errorf("failed to query reservation: %w", err)
	}

	create := tx.FileReservation.Create().
		SetID(ids.NewReservationID()).
		SetFilePath(path).
		SetAgentID(agentID).
		SetLeaseExpiresAt(expiresAt).
		SetStatus(filereservation.StatusActive).
		SetCreatedAt(now)
	if reason != "" {
		create.SetLeaseReason(reason)
	}
	if len(metadata) > 0 {
		create.SetMetadata(metadata)
	}

	r, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Lost the insert race; the partial unique index is the arbiter.
			return nil, &models.TransientError{Err: fmt.Errorf("reservation for %s inserted concurrently", path)}
		}
		return nil, fmt.Errorf("failed to create reservation: %w", err)
	}

	_, err = s.journal.appendTx(ctx, tx, "", models.EventReservationCreated, map[string]any{
		"path":       path,
		"agent_id":   agentID,
		"expires_at": expiresAt,
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}

// Release gives up the caller's active reservation on a path. Releasing a
// path the caller does not hold fails with NotHeldByAgent.
func (s *ReservationService) Release(ctx context.Context, path, agentID string) error {
	err := database.WithTx(ctx, s.client, func(tx *ent.Tx) error {
		existing, err := tx.FileReservation.Query().
			Where(
				filereservation.FilePathEQ(path),
				filereservation.StatusEQ(filereservation.StatusActive),
			).
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return fmt.Errorf("%w: no active reservation on %s", models.ErrNotFound, path)
			}
			return fmt.Errorf("failed to query reservation: %w", err)
		}
		if existing.AgentID != agentID {
			return fmt.Errorf("%w: %s is held by %s", models.ErrNotHeldByAgent, path, existing.AgentID)
		}

		if _, err := existing.Update().SetStatus(filereservation.StatusReleased).Save(ctx); err != nil {
			return fmt.Errorf("failed to release reservation: %w", err)
		}
		_, err = s.journal.appendTx(ctx, tx, "", models.EventReservationReleased, map[string]any{
			"path":     path,
			"agent_id": agentID,
		})
		return err
	})
	if err != nil {
		return err
	}

	slog.Info("File reservation released", "path", path, "agent_id", agentID)
	return nil
}

// ListActive returns active reservations, optionally narrowed to one agent,
// soonest-expiring first.
func (s *ReservationService) ListActive(ctx context.Context, agentID string) ([]models.Reservation, error) {
	query := s.client.FileReservation.Query().
		Where(filereservation.StatusEQ(filereservation.StatusActive))
	if agentID != "" {
		query = query.Where(filereservation.AgentIDEQ(agentID))
	}

	rows, err := query.Order(ent.Asc(filereservation.FieldLeaseExpiresAt)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	out := make([]models.Reservation, 0, len(rows))
	for _, r := range rows {
		out = append(out, reservationToModel(r))
	}
	return out, nil
}

// HoldersOf returns the live holder of each given path: active,
// unexpired reservations held by agents other than the caller.
func (s *ReservationService) HoldersOf(ctx context.Context, paths []string, excludeAgent string) ([]models.FileConflict, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	query := s.client.FileReservation.Query().
		Where(
			filereservation.FilePathIn(paths...),
			filereservation.StatusEQ(filereservation.StatusActive),
			filereservation.LeaseExpiresAtGT(ids.NowMillis()),
		)
	if excludeAgent != "" {
		query = query.Where(filereservation.AgentIDNEQ(excludeAgent))
	}

	rows, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query holders: %w", err)
	}
	out := make([]models.FileConflict, 0, len(rows))
	for _, r := range rows {
		out = append(out, models.FileConflict{Path: r.FilePath, Holder: r.AgentID, ExpiresAt: r.LeaseExpiresAt})
	}
	return out, nil
}

// ExpireStale sweeps active reservations whose expiry has passed, flipping
// them to expired and journaling each.
func (s *ReservationService) ExpireStale(ctx context.Context) (int, error) {
	stale, err := s.client.FileReservation.Query().
		Where(
			filereservation.StatusEQ(filereservation.StatusActive),
			filereservation.LeaseExpiresAtLTE(ids.NowMillis()),
		).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to scan stale reservations: %w", err)
	}

	expired := 0
	for _, r := range stale {
		err := database.WithTx(ctx, s.client, func(tx *ent.Tx) error {
			n, err := tx.FileReservation.Update().
				Where(
					filereservation.IDEQ(r.ID),
					filereservation.StatusEQ(filereservation.StatusActive),
				).
				SetStatus(filereservation.StatusExpired).
				Save(ctx)
			if err != nil {
				return fmt.Errorf("failed to expire reservation: %w", err)
			}
			if n == 0 {
				return nil
			}
			_, err = s.journal.appendTx(ctx, tx, "", models.EventReservationReleased, map[string]any{
				"path":     r.FilePath,
				"agent_id": r.AgentID,
				"expired":  true,
			})
			return err
		})
		if err != nil {
			slog.Error("Failed to expire reservation", "path", r.FilePath, "error", err)
			continue
		}
		expired++
	}
	if expired > 0 {
		slog.Info("Stale reservations expired", "count", expired)
	}
	return expired, nil
}

// ReleaseAgent releases every active reservation an agent holds, expired or
// not. The liveness sweep calls this when it declares an agent dead so its
// paths do not stay blocked until their own expiries pass.
func (s *ReservationService) ReleaseAgent(ctx context.Context, agentID, reason string) (int, error) {
	held, err := s.client.FileReservation.Query().
		Where(
			filereservation.AgentIDEQ(agentID),
			filereservation.StatusEQ(filereservation.StatusActive),
		).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to scan agent reservations: %w", err)
	}

	released := 0
	for _, r := range held {
		err := database.WithTx(ctx, s.client, func(tx *ent.Tx) error {
			n, err := tx.FileReservation.Update().
				Where(
					filereservation.IDEQ(r.ID),
					filereservation.StatusEQ(filereservation.StatusActive),
				).
				SetStatus(filereservation.StatusReleased).
				Save(ctx)
			if err != nil {
				return fmt.Errorf("failed to release reservation: %w", err)
			}
			if n == 0 {
				return nil
			}
			_, err = s.journal.appendTx(ctx, tx, "", models.EventReservationReleased, map[string]any{
				"path":     r.FilePath,
				"agent_id": agentID,
				"reason":   reason,
			})
			return err
		})
		if err != nil {
			slog.Error("Failed to release reservation of stale agent", "path", r.FilePath, "agent_id", agentID, "error", err)
			continue
		}
		released++
	}
	if released > 0 {
		slog.Info("Agent reservations released", "agent_id", agentID, "count", released)
	}
	return released, nil
}

// RecordConflict writes the audit row for two agents contending on a path
// and journals RESERVATION_CONFLICT.
func (s *ReservationService) RecordConflict(ctx context.Context, c models.ReservationConflict) (string, error) {
	var id string
	err := database.WithTx(ctx, s.client, func(tx *ent.Tx) error {
		var err error
		id, err = recordConflictTx(ctx, tx, s.journal, c)
		return err
	})
	return id, err
}

// OpenConflicts lists unresolved conflicts, newest first.
func (s *ReservationService) OpenConflicts(ctx context.Context, limit int) ([]models.ReservationConflict, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := s.client.ReservationConflict.Query().
		Where(reservationconflict.StatusEQ(models.ConflictStatusOpen)).
		Order(ent.Desc(reservationconflict.FieldDetectedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list conflicts: %w", err)
	}

	out := make([]models.ReservationConflict, 0, len(rows))
	for _, r := range rows {
		out = append(out, models.ReservationConflict{
			ID:                 r.ID,
			FilePath:           r.FilePath,
			ConflictingAgent:   r.ConflictingAgent,
			ExistingAgent:      r.ExistingAgent,
			ConflictType:       r.ConflictType,
			Severity:           models.ConflictSeverity(r.Severity),
			Status:             r.Status,
			DetectedAt:         r.DetectedAt,
			ResolvedAt:         r.ResolvedAt,
			ResolutionStrategy: r.ResolutionStrategy,
			EvidenceRef:        r.EvidenceRef,
		})
	}
	return out, nil
}

// ResolveConflict closes an open conflict with a named strategy.
func (s *ReservationService) ResolveConflict(ctx context.Context, conflictID, strategy string) error {
	n, err := s.client.ReservationConflict.Update().
		Where(reservationconflict.IDEQ(conflictID), reservationconflict.StatusEQ(models.ConflictStatusOpen)).
		SetStatus(models.ConflictStatusResolved).
		SetResolvedAt(ids.NowMillis()).
		SetResolutionStrategy(strategy).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to resolve conflict: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: open conflict %s", models.ErrNotFound, conflictID)
	}
	return nil
}

// escalateConflict records the conflict audit row and notifies the debug
// channel. Escalation is best-effort; failures are logged, not returned,
// because the caller's FileLeasedError is the authoritative outcome.
func (s *ReservationService) escalateConflict(ctx context.Context, path, requester, holder string, expiresAt int64, conflictType string) {
	_, err := s.RecordConflict(ctx, models.ReservationConflict{
		FilePath:         path,
		ConflictingAgent: requester,
		ExistingAgent:    holder,
		ConflictType:     conflictType,
		Severity:         models.SeverityMedium,
	})
	if err != nil {
		slog.Error("Failed to record reservation conflict", "path", path, "error", err)
	}

	if s.mail == nil {
		return
	}
	_, err = s.mail.Send(ctx, s.cfg.Channels.DebugTarget, SendRequest{
		Kind:      models.KindReservationConflict,
		FromAgent: requester,
		Payload: map[string]any{
			"file_path":       path,
			"conflict_type":   conflictType,
			"severity":        string(models.SeverityMedium),
			"existing_agent":  holder,
			"requested_agent": requester,
			"expires_at":      expiresAt,
		},
	})
	if err != nil {
		slog.Error("Failed to escalate reservation conflict", "path", path, "error", err)
	}
}

// recordConflictTx inserts one conflict audit row inside an open
// transaction and journals it.
func recordConflictTx(ctx context.Context, tx *ent.Tx, journal *JournalService, c models.ReservationConflict) (string, error) {
	id := c.ID
	if id == "" {
		id = ids.NewConflictID()
	}
	severity := c.Severity
	if severity == "" {
		severity = models.SeverityMedium
	}

	create := tx.ReservationConflict.Create().
		SetID(id).
		SetFilePath(c.FilePath).
		SetConflictingAgent(c.ConflictingAgent).
		SetExistingAgent(c.ExistingAgent).
		SetConflictType(c.ConflictType).
		SetSeverity(reservationconflict.Severity(severity)).
		SetDetectedAt(ids.NowMillis())
	if c.EvidenceRef != "" {
		create.SetEvidenceRef(c.EvidenceRef)
	}
	if _, err := create.Save(ctx); err != nil {
		return "", fmt.Errorf("failed to record conflict: %w", err)
	}

	_, err := journal.appendTx(ctx, tx, "", models.EventReservationConflict, map[string]any{
		"conflict_id":       id,
		"path":              c.FilePath,
		"conflicting_agent": c.ConflictingAgent,
		"existing_agent":    c.ExistingAgent,
		"conflict_type":     c.ConflictType,
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

// releaseAgentPathsTx releases the agent's active reservations on the given
// paths inside an open transaction. Used when a task commits or rolls back
// so its declared files free up atomically with the transition.
func releaseAgentPathsTx(ctx context.Context, tx *ent.Tx, journal *JournalService, agentID string, paths []string) error {
	if len(paths) == 0 {
		return nil
	}

	rows, err := tx.FileReservation.Query().
		Where(
			filereservation.FilePathIn(paths...),
			filereservation.AgentIDEQ(agentID),
			filereservation.StatusEQ(filereservation.StatusActive),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query agent reservations: %w", err)
	}

	for _, r := range rows {
		if _, err := r.Update().SetStatus(filereservation.StatusReleased).Save(ctx); err != nil {
			return fmt.Errorf("failed to release reservation: %w", err)
		}
		_, err := journal.appendTx(ctx, tx, "", models.EventReservationReleased, map[string]any{
			"path":     r.FilePath,
			"agent_id": agentID,
		})
		if err != nil {
			return err
		}
	}
	return nil
}
