package runtime

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/openmaf/maf/pkg/models"
)

// Sweeper runs the background reclamation loops: expired leases and
// reservations on one cadence, agent liveness on another. Sweep failures
// never stop the loop; each is journaled and retried on the next tick.
type Sweeper struct {
	rt *Runtime
	wg sync.WaitGroup
}

// NewSweeper creates a sweeper over an open runtime.
func NewSweeper(rt *Runtime) *Sweeper {
	return &Sweeper{rt: rt}
}

// Start launches the sweep loops. They run until ctx is cancelled; Wait
// blocks until both have exited.
func (s *Sweeper) Start(ctx context.Context) {
	leaseInterval := s.rt.cfg.Leases.EffectiveSweepInterval()
	livenessInterval := s.rt.cfg.Liveness.EffectiveSweepInterval()
	slog.Info("Sweeper started",
		"lease_interval", leaseInterval, "liveness_interval", livenessInterval)

	s.wg.Add(2)
	go s.loop(ctx, "lease_sweep", leaseInterval, s.sweepLeases)
	go s.loop(ctx, "liveness_sweep", livenessInterval, s.sweepLiveness)
}

// Wait blocks until the sweep loops have exited.
func (s *Sweeper) Wait() {
	s.wg.Wait()
}

func (s *Sweeper) loop(ctx context.Context, name string, interval time.Duration, sweep func(context.Context) error) {
	defer s.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("Sweep loop stopped", "sweep", name)
			return
		case <-ticker.C:
			if s.rt.ReadOnly() {
				continue
			}
			if err := sweep(ctx); err != nil {
				slog.Error("Sweep failed", "sweep", name, "error", err)
				s.journalFailure(ctx, name, err)
			}
		}
	}
}

// sweepLeases reclaims expired task leases and stale file reservations.
// They share a cadence because both expiries derive from lease durations.
func (s *Sweeper) sweepLeases(ctx context.Context) error {
	if _, err := s.rt.backend.SweepLeases(ctx); err != nil {
		return s.rt.observe(err)
	}
	if _, err := s.rt.backend.SweepReservations(ctx); err != nil {
		return s.rt.observe(err)
	}
	return nil
}

// sweepLiveness marks silent agents inactive and reclaims what they held.
func (s *Sweeper) sweepLiveness(ctx context.Context) error {
	_, err := s.rt.backend.SweepLiveness(ctx)
	return s.rt.observe(err)
}

// journalFailure records a failed sweep. Best-effort: if the journal is
// down too, the slog line is all that remains, which is the point of
// logging before journaling.
func (s *Sweeper) journalFailure(ctx context.Context, name string, sweepErr error) {
	_, err := s.rt.backend.AppendEvent(ctx, "", models.EventSweepFailure, map[string]any{
		"sweep": name,
		"error": sweepErr.Error(),
	})
	if err != nil {
		slog.Warn("Failed to journal sweep failure", "sweep", name, "error", err)
	}
}
