package services

import (
	"context"
	"fmt"

	"github.com/openmaf/maf/ent"
	"github.com/openmaf/maf/ent/agent"
	"github.com/openmaf/maf/ent/filereservation"
	"github.com/openmaf/maf/ent/task"
	"github.com/openmaf/maf/pkg/ids"
	"github.com/openmaf/maf/pkg/models"
)

// recentErrorLimit bounds the error tail included in a status summary.
const recentErrorLimit = 10

// StatusService produces the read-only runtime summary served to the status
// CLI and the HTTP status endpoint. Everything here is plain reads; the
// summary is safe to serve even when the runtime has degraded to read-only.
type StatusService struct {
	client  *ent.Client
	journal *JournalService
}

// NewStatusService creates a new status service.
func NewStatusService(client *ent.Client, journal *JournalService) *StatusService {
	return &StatusService{client: client, journal: journal}
}

// Summary assembles the current runtime snapshot: per-state task counts,
// active lease / reservation / agent counts, and the recent error tail.
func (s *StatusService) Summary(ctx context.Context, backend string, readOnly bool) (models.StatusSummary, error) {
	summary := models.StatusSummary{
		Backend:     backend,
		ReadOnly:    readOnly,
		TaskCounts:  make(map[models.TaskState]int, len(models.AllTaskStates)),
		GeneratedAt: ids.NowMillis(),
	}
	for _, st := range models.AllTaskStates {
		summary.TaskCounts[st] = 0
	}

	var counts []struct {
		State task.State `json:"state"`
		Count int        `json:"count"`
	}
	err := s.client.Task.Query().
		GroupBy(task.FieldState).
		Aggregate(ent.Count()).
		Scan(ctx, &counts)
	if err != nil {
		return models.StatusSummary{}, fmt.Errorf("failed to count tasks: %w", err)
	}
	for _, c := range counts {
		summary.TaskCounts[models.TaskState(c.State)] = c.Count
	}

	if summary.ActiveLeases, err = s.client.Lease.Query().Count(ctx); err != nil {
		return models.StatusSummary{}, fmt.Errorf("failed to count leases: %w", err)
	}
	summary.ActiveReservations, err = s.client.FileReservation.Query().
		Where(filereservation.StatusEQ(filereservation.StatusActive)).
		Count(ctx)
	if err != nil {
		return models.StatusSummary{}, fmt.Errorf("failed to count reservations: %w", err)
	}
	summary.ActiveAgents, err = s.client.Agent.Query().
		Where(agent.StatusEQ(agent.StatusActive)).
		Count(ctx)
	if err != nil {
		return models.StatusSummary{}, fmt.Errorf("failed to count agents: %w", err)
	}

	summary.RecentErrors, err = s.journal.Query(ctx, models.EventQuery{
		Kinds:  []string{models.EventError, models.EventSweepFailure, models.EventBackendFallback},
		Recent: recentErrorLimit,
	})
	if err != nil {
		return models.StatusSummary{}, err
	}
	return summary, nil
}

// RecordMonitorSample journals one resource observation from the external
// monitor. The runtime only surfaces these; it never throttles or kills
// anything based on them.
func (s *StatusService) RecordMonitorSample(ctx context.Context, sample models.MonitorSample) (models.Event, error) {
	if sample.Source == "" {
		return models.Event{}, fmt.Errorf("%w: sample source is required", models.ErrInvalidArgument)
	}
	observedAt := sample.ObservedAt
	if observedAt == 0 {
		observedAt = ids.NowMillis()
	}
	return s.journal.Append(ctx, "", models.EventMonitorSample, map[string]any{
		"source":       sample.Source,
		"cpu_percent":  sample.CPUPercent,
		"mem_percent":  sample.MemPercent,
		"disk_percent": sample.DiskPercent,
		"context_used": sample.ContextUsed,
		"observed_at":  observedAt,
	})
}
