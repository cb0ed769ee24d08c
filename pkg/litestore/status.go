package litestore

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/openmaf/maf/pkg/ids"
	"github.com/openmaf/maf/pkg/models"
)

// PrecommitCheck decides whether an agent may commit the given staged
// paths. Conflicts are audited before the override variable is consulted,
// so an override run still records everything it pushed past.
func (s *Store) PrecommitCheck(ctx context.Context, agentID string, paths []string) (models.Decision, error) {
	if agentID == "" {
		return models.Decision{}, fmt.Errorf("%w: agent id is required", models.ErrInvalidArgument)
	}
	if len(paths) == 0 {
		return models.Decision{Allow: true}, nil
	}

	conflicts, err := s.HoldersOf(ctx, paths, agentID)
	if err != nil {
		return models.Decision{}, err
	}
	if len(conflicts) == 0 {
		return models.Decision{Allow: true}, nil
	}

	override := os.Getenv(s.cfg.Enforcer.OverrideVar) != ""
	err = s.mutate(func(doc *document) error {
		for _, c := range conflicts {
			recordConflict(doc, models.ReservationConflict{
				FilePath:         c.Path,
				ConflictingAgent: agentID,
				ExistingAgent:    c.Holder,
				ConflictType:     models.ConflictTypePreCommit,
				Severity:         models.SeverityHigh,
			})
		}
		if override {
			paths := make([]string, 0, len(conflicts))
			for _, c := range conflicts {
				paths = append(paths, c.Path)
			}
			appendEvent(doc, "", models.EventOverride, map[string]any{
				"agent_id":     agentID,
				"override_var": s.cfg.Enforcer.OverrideVar,
				"paths":        paths,
			})
		}
		return nil
	})
	if err != nil {
		return models.Decision{}, err
	}

	if override {
		slog.Warn("Pre-commit override used", "agent_id", agentID, "conflicts", len(conflicts))
		return models.Decision{Allow: true, Override: true, Conflicts: conflicts}, nil
	}
	slog.Info("Commit blocked by reservations", "agent_id", agentID, "conflicts", len(conflicts))
	return models.Decision{Allow: false, Conflicts: conflicts}, nil
}

// Summary assembles the runtime snapshot from the document.
func (s *Store) Summary(ctx context.Context) (models.StatusSummary, error) {
	summary := models.StatusSummary{
		Backend:     s.Name(),
		TaskCounts:  make(map[models.TaskState]int, len(models.AllTaskStates)),
		GeneratedAt: ids.NowMillis(),
	}
	for _, st := range models.AllTaskStates {
		summary.TaskCounts[st] = 0
	}

	err := s.view(func(doc *document) error {
		for _, t := range doc.Tasks {
			summary.TaskCounts[t.State]++
		}
		summary.ActiveLeases = len(doc.Leases)
		for _, r := range doc.Reservations {
			if r.Status == models.ReservationActive {
				summary.ActiveReservations++
			}
		}
		for _, a := range doc.Agents {
			if a.Status == models.AgentStatusActive {
				summary.ActiveAgents++
			}
		}
		return nil
	})
	if err != nil {
		return models.StatusSummary{}, err
	}

	summary.RecentErrors, err = s.QueryEvents(ctx, models.EventQuery{
		Kinds:  []string{models.EventError, models.EventSweepFailure, models.EventBackendFallback},
		Recent: 10,
	})
	if err != nil {
		return models.StatusSummary{}, err
	}
	return summary, nil
}

// RecordMonitorSample journals one resource observation from the external
// monitor.
func (s *Store) RecordMonitorSample(ctx context.Context, sample models.MonitorSample) (models.Event, error) {
	if sample.Source == "" {
		return models.Event{}, fmt.Errorf("%w: sample source is required", models.ErrInvalidArgument)
	}
	observedAt := sample.ObservedAt
	if observedAt == 0 {
		observedAt = ids.NowMillis()
	}
	return s.AppendEvent(ctx, "", models.EventMonitorSample, map[string]any{
		"source":       sample.Source,
		"cpu_percent":  sample.CPUPercent,
		"mem_percent":  sample.MemPercent,
		"disk_percent": sample.DiskPercent,
		"context_used": sample.ContextUsed,
		"observed_at":  observedAt,
	})
}
