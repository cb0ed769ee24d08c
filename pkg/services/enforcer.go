package services

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/openmaf/maf/pkg/config"
	"github.com/openmaf/maf/pkg/models"
)

// Enforcer is the pre-commit gate: it blocks a commit whose staged paths
// are reserved by other live agents. The override environment variable
// bypasses blocking but never silences it; every override and every
// conflict is journaled and audited either way.
type Enforcer struct {
	reservations *ReservationService
	journal      *JournalService
	mail         *MailService
	cfg          *config.Config
}

// NewEnforcer creates a new pre-commit enforcer.
func NewEnforcer(reservations *ReservationService, journal *JournalService, mail *MailService, cfg *config.Config) *Enforcer {
	return &Enforcer{reservations: reservations, journal: journal, mail: mail, cfg: cfg}
}

// Check decides whether an agent may commit the given staged paths.
//
// The conflict set is computed first, then the override is consulted, so an
// override run still records every conflict it bulldozed through. An empty
// path set always passes.
func (e *Enforcer) Check(ctx context.Context, agentID string, paths []string) (models.Decision, error) {
	if agentID == "" {
		return models.Decision{}, fmt.Errorf("%w: agent id is required", models.ErrInvalidArgument)
	}
	if len(paths) == 0 {
		return models.Decision{Allow: true}, nil
	}

	conflicts, err := e.reservations.HoldersOf(ctx, paths, agentID)
	if err != nil {
		return models.Decision{}, err
	}
	if len(conflicts) == 0 {
		return models.Decision{Allow: true}, nil
	}

	// Conflicts are audited before the override is even looked at.
	for _, c := range conflicts {
		_, err := e.reservations.RecordConflict(ctx, models.ReservationConflict{
			FilePath:         c.Path,
			ConflictingAgent: agentID,
			ExistingAgent:    c.Holder,
			ConflictType:     models.ConflictTypePreCommit,
			Severity:         models.SeverityHigh,
		})
		if err != nil {
			return models.Decision{}, err
		}
	}

	if os.Getenv(e.cfg.Enforcer.OverrideVar) != "" {
		_, err := e.journal.Append(ctx, "", models.EventOverride, map[string]any{
			"agent_id":     agentID,
			"override_var": e.cfg.Enforcer.OverrideVar,
			"paths":        conflictPaths(conflicts),
		})
		if err != nil {
			return models.Decision{}, err
		}
		slog.Warn("Pre-commit override used",
			"agent_id", agentID, "conflicts", len(conflicts), "override_var", e.cfg.Enforcer.OverrideVar)
		return models.Decision{Allow: true, Override: true, Conflicts: conflicts}, nil
	}

	e.escalate(ctx, agentID, conflicts)
	slog.Info("Commit blocked by reservations", "agent_id", agentID, "conflicts", len(conflicts))
	return models.Decision{Allow: false, Conflicts: conflicts}, nil
}

// escalate notifies the debug channel about a blocked commit. Best-effort;
// the block decision stands regardless.
func (e *Enforcer) escalate(ctx context.Context, agentID string, conflicts []models.FileConflict) {
	if e.mail == nil {
		return
	}
	for _, c := range conflicts {
		_, err := e.mail.Send(ctx, e.cfg.Channels.DebugTarget, SendRequest{
			Kind:      models.KindReservationConflict,
			FromAgent: agentID,
			Payload: map[string]any{
				"file_path":       c.Path,
				"conflict_type":   models.ConflictTypePreCommit,
				"severity":        string(models.SeverityHigh),
				"existing_agent":  c.Holder,
				"requested_agent": agentID,
				"expires_at":      c.ExpiresAt,
			},
		})
		if err != nil {
			slog.Error("Failed to escalate blocked commit", "path", c.Path, "error", err)
		}
	}
}

func conflictPaths(conflicts []models.FileConflict) []string {
	out := make([]string, 0, len(conflicts))
	for _, c := range conflicts {
		out = append(out, c.Path)
	}
	return out
}
