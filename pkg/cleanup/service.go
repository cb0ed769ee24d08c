// Package cleanup enforces data retention on the durable backend.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/openmaf/maf/ent"
	"github.com/openmaf/maf/ent/mailmessage"
	"github.com/openmaf/maf/ent/reservationconflict"
	"github.com/openmaf/maf/ent/task"
	"github.com/openmaf/maf/pkg/config"
	"github.com/openmaf/maf/pkg/ids"
	"github.com/openmaf/maf/pkg/models"
	"github.com/openmaf/maf/pkg/services"
)

// Service periodically removes settled data past its retention window:
//   - DONE and DEAD tasks (their journal entries stay)
//   - read mail envelopes
//   - resolved reservation conflicts
//
// The journal is never pruned. All passes are idempotent and safe to run
// from multiple replicas.
type Service struct {
	config  *config.RetentionConfig
	client  *ent.Client
	journal *services.JournalService

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new retention service.
func NewService(cfg *config.RetentionConfig, client *ent.Client, journal *services.JournalService) *Service {
	return &Service{
		config:  cfg,
		client:  client,
		journal: journal,
	}
}

// Start launches the background retention loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Retention service started",
		"terminal_task_age", s.config.TerminalTaskAge,
		"mail_age", s.config.MailAge,
		"interval", s.config.Interval)
}

// Stop signals the retention loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Retention service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.RunOnce(ctx)

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.RunOnce(ctx)
		}
	}
}

// RunOnce executes a single retention pass. Failures are logged, not
// returned: a missed pass is retried at the next tick.
func (s *Service) RunOnce(ctx context.Context) {
	now := ids.NowMillis()

	tasks, err := s.pruneTerminalTasks(ctx, now-ids.DurationMillis(s.config.TerminalTaskAge))
	if err != nil {
		slog.Error("Failed to prune terminal tasks", "error", err)
	}
	mail, err := s.pruneReadMail(ctx, now-ids.DurationMillis(s.config.MailAge))
	if err != nil {
		slog.Error("Failed to prune read mail", "error", err)
	}
	conflicts, err := s.pruneResolvedConflicts(ctx, now-ids.DurationMillis(s.config.TerminalTaskAge))
	if err != nil {
		slog.Error("Failed to prune resolved conflicts", "error", err)
	}

	if tasks+mail+conflicts == 0 {
		return
	}
	slog.Info("Retention pass complete", "tasks", tasks, "mail", mail, "conflicts", conflicts)
	if _, err := s.journal.Append(ctx, "", models.EventRetentionPrune, map[string]any{
		"tasks":     tasks,
		"mail":      mail,
		"conflicts": conflicts,
	}); err != nil {
		slog.Warn("Failed to journal retention pass", "error", err)
	}
}

func (s *Service) pruneTerminalTasks(ctx context.Context, cutoff int64) (int, error) {
	return s.client.Task.Delete().
		Where(
			task.StateIn(task.StateDONE, task.StateDEAD),
			task.UpdatedAtLT(cutoff),
		).
		Exec(ctx)
}

func (s *Service) pruneReadMail(ctx context.Context, cutoff int64) (int, error) {
	return s.client.MailMessage.Delete().
		Where(
			mailmessage.ReadEQ(true),
			mailmessage.CreatedAtLT(cutoff),
		).
		Exec(ctx)
}

func (s *Service) pruneResolvedConflicts(ctx context.Context, cutoff int64) (int, error) {
	return s.client.ReservationConflict.Delete().
		Where(
			reservationconflict.StatusEQ(models.ConflictStatusResolved),
			reservationconflict.ResolvedAtLT(cutoff),
		).
		Exec(ctx)
}
