package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/openmaf/maf/pkg/config"
	"github.com/openmaf/maf/pkg/litestore"
	"github.com/openmaf/maf/pkg/models"
)

// Runtime is the coordination façade. It owns exactly one backend, opened
// from the configured fallback order, and two standing guarantees:
//
//   - Writes after a fatal store error fail fast with ReadOnly instead of
//     compounding the damage. Reads keep working as long as the store
//     serves them.
//   - A fallback to a lesser backend is journaled, so "why was the durable
//     store not used" is answerable from the journal afterwards.
type Runtime struct {
	backend  Backend
	cfg      *config.Config
	readOnly atomic.Bool
}

// Open walks the configured backend order and returns a runtime over the
// first one that opens. Every earlier failure is logged, and once a lesser
// backend accepts, the fallback is journaled there.
func Open(ctx context.Context, cfg *config.Config) (*Runtime, error) {
	var failures []string

	for i, name := range cfg.Runtime.Backends {
		backend, err := openBackend(ctx, cfg, name)
		if err != nil {
			slog.Error("Backend failed to open", "backend", name, "error", err)
			failures = append(failures, fmt.Sprintf("%s: %v", name, err))
			continue
		}

		r := &Runtime{backend: backend, cfg: cfg}
		backend.RegisterChannels(cfg.Channels.All()...)

		if i > 0 {
			_, err := backend.AppendEvent(ctx, "", models.EventBackendFallback, map[string]any{
				"selected": string(name),
				"failed":   failures,
			})
			if err != nil {
				slog.Warn("Failed to journal backend fallback", "error", err)
			}
			slog.Warn("Running on fallback backend", "backend", name, "failed", failures)
		} else {
			slog.Info("Backend opened", "backend", name)
		}
		return r, nil
	}

	return nil, fmt.Errorf("no backend available: %v", failures)
}

func openBackend(ctx context.Context, cfg *config.Config, name config.Backend) (Backend, error) {
	switch name {
	case config.BackendDurable:
		return OpenDurable(ctx, cfg)
	case config.BackendFile:
		return litestore.Open(cfg, cfg.Runtime.DataDir)
	case config.BackendMemory:
		return litestore.Open(cfg, "")
	default:
		return nil, fmt.Errorf("unrecognized backend %q", name)
	}
}

// NewWithBackend wraps an already-open backend. Tests use this.
func NewWithBackend(backend Backend, cfg *config.Config) *Runtime {
	return &Runtime{backend: backend, cfg: cfg}
}

// Backend returns the underlying backend.
func (r *Runtime) Backend() Backend { return r.backend }

// Config returns the runtime configuration.
func (r *Runtime) Config() *config.Config { return r.cfg }

// ReadOnly reports whether the runtime has degraded to read-only.
func (r *Runtime) ReadOnly() bool { return r.readOnly.Load() }

// Close closes the backend.
func (r *Runtime) Close() error { return r.backend.Close() }

// Bootstrap runs one reclamation pass: expired leases, stale reservations,
// and silent agents are all swept once. Called at daemon startup so state
// left behind by a crash is repaired before any agent claims.
func (r *Runtime) Bootstrap(ctx context.Context) error {
	leases, err := r.backend.SweepLeases(ctx)
	if err != nil {
		return r.observe(fmt.Errorf("startup lease sweep: %w", err))
	}
	reservations, err := r.backend.SweepReservations(ctx)
	if err != nil {
		return r.observe(fmt.Errorf("startup reservation sweep: %w", err))
	}
	agents, err := r.backend.SweepLiveness(ctx)
	if err != nil {
		return r.observe(fmt.Errorf("startup liveness sweep: %w", err))
	}

	slog.Info("Startup reclamation complete",
		"leases", leases, "reservations", reservations, "agents", agents)
	return nil
}

// guard rejects writes once the runtime is read-only.
func (r *Runtime) guard() error {
	if r.readOnly.Load() {
		return models.ErrReadOnly
	}
	return nil
}

// observe inspects an operation error. The first fatal store error flips
// the runtime to read-only; everything passes through unchanged.
func (r *Runtime) observe(err error) error {
	if err != nil && models.IsFatal(err) && r.readOnly.CompareAndSwap(false, true) {
		slog.Error("Fatal store error; runtime degrading to read-only", "error", err)
	}
	return err
}

// CreateTask creates a new READY task.
func (r *Runtime) CreateTask(ctx context.Context, req models.CreateTaskRequest) (models.Task, error) {
	if err := r.guard(); err != nil {
		return models.Task{}, err
	}
	t, err := r.backend.CreateTask(ctx, req)
	return t, r.observe(err)
}

// GetTask returns one task by id.
func (r *Runtime) GetTask(ctx context.Context, id string) (models.Task, error) {
	t, err := r.backend.GetTask(ctx, id)
	return t, r.observe(err)
}

// ListTasks returns tasks matching the filter.
func (r *Runtime) ListTasks(ctx context.Context, filter models.TaskFilter) ([]models.Task, error) {
	ts, err := r.backend.ListTasks(ctx, filter)
	return ts, r.observe(err)
}

// Transition moves a task between states with CAS semantics.
func (r *Runtime) Transition(ctx context.Context, taskID string, from, to models.TaskState, agentID string, patch *models.TransitionPatch) (models.Task, error) {
	if err := r.guard(); err != nil {
		return models.Task{}, err
	}
	t, err := r.backend.Transition(ctx, taskID, from, to, agentID, patch)
	return t, r.observe(err)
}

// Complete settles a VERIFYING task from its recorded evidence.
func (r *Runtime) Complete(ctx context.Context, taskID, agentID string) (models.Task, error) {
	if err := r.guard(); err != nil {
		return models.Task{}, err
	}
	t, err := r.backend.Complete(ctx, taskID, agentID)
	return t, r.observe(err)
}

// ClaimNext claims the next eligible READY task for an agent.
func (r *Runtime) ClaimNext(ctx context.Context, agentID string, filter models.TaskFilter, leaseDur time.Duration) (models.ClaimOutcome, error) {
	if err := r.guard(); err != nil {
		return models.ClaimOutcome{}, err
	}
	out, err := r.backend.ClaimNext(ctx, agentID, filter, leaseDur)
	return out, r.observe(err)
}

// AcquireLease leases one specific READY task.
func (r *Runtime) AcquireLease(ctx context.Context, taskID, agentID string, d time.Duration) (models.Lease, error) {
	if err := r.guard(); err != nil {
		return models.Lease{}, err
	}
	l, err := r.backend.AcquireLease(ctx, taskID, agentID, d)
	return l, r.observe(err)
}

// RefreshLease extends the caller's own lease.
func (r *Runtime) RefreshLease(ctx context.Context, taskID, agentID string, d time.Duration) (models.Lease, error) {
	if err := r.guard(); err != nil {
		return models.Lease{}, err
	}
	l, err := r.backend.RefreshLease(ctx, taskID, agentID, d)
	return l, r.observe(err)
}

// ReleaseLease gives a LEASED task back voluntarily.
func (r *Runtime) ReleaseLease(ctx context.Context, taskID, agentID string) error {
	if err := r.guard(); err != nil {
		return err
	}
	return r.observe(r.backend.ReleaseLease(ctx, taskID, agentID))
}

// GetLease returns the lease currently held on a task.
func (r *Runtime) GetLease(ctx context.Context, taskID string) (models.Lease, error) {
	l, err := r.backend.GetLease(ctx, taskID)
	return l, r.observe(err)
}

// ListLeases returns every current lease.
func (r *Runtime) ListLeases(ctx context.Context) ([]models.Lease, error) {
	ls, err := r.backend.ListLeases(ctx)
	return ls, r.observe(err)
}

// Reserve acquires an exclusive reservation on one path.
func (r *Runtime) Reserve(ctx context.Context, path, agentID string, d time.Duration, reason string, metadata map[string]any) (models.Reservation, error) {
	if err := r.guard(); err != nil {
		return models.Reservation{}, err
	}
	res, err := r.backend.Reserve(ctx, path, agentID, d, reason, metadata)
	return res, r.observe(err)
}

// ReleaseFile gives up the caller's reservation on a path.
func (r *Runtime) ReleaseFile(ctx context.Context, path, agentID string) error {
	if err := r.guard(); err != nil {
		return err
	}
	return r.observe(r.backend.ReleaseFile(ctx, path, agentID))
}

// ListReservations returns active reservations.
func (r *Runtime) ListReservations(ctx context.Context, agentID string) ([]models.Reservation, error) {
	rs, err := r.backend.ListReservations(ctx, agentID)
	return rs, r.observe(err)
}

// HoldersOf returns the live holders of the given paths.
func (r *Runtime) HoldersOf(ctx context.Context, paths []string, excludeAgent string) ([]models.FileConflict, error) {
	cs, err := r.backend.HoldersOf(ctx, paths, excludeAgent)
	return cs, r.observe(err)
}

// OpenConflicts lists unresolved reservation conflicts.
func (r *Runtime) OpenConflicts(ctx context.Context, limit int) ([]models.ReservationConflict, error) {
	cs, err := r.backend.OpenConflicts(ctx, limit)
	return cs, r.observe(err)
}

// Heartbeat reports an agent alive.
func (r *Runtime) Heartbeat(ctx context.Context, req models.HeartbeatRequest) (models.Agent, error) {
	if err := r.guard(); err != nil {
		return models.Agent{}, err
	}
	a, err := r.backend.Heartbeat(ctx, req)
	return a, r.observe(err)
}

// GetAgent returns one agent by id.
func (r *Runtime) GetAgent(ctx context.Context, agentID string) (models.Agent, error) {
	a, err := r.backend.GetAgent(ctx, agentID)
	return a, r.observe(err)
}

// ListAgents returns agents, optionally narrowed to one status.
func (r *Runtime) ListAgents(ctx context.Context, status models.AgentStatus) ([]models.Agent, error) {
	as, err := r.backend.ListAgents(ctx, status)
	return as, r.observe(err)
}

// AppendEvent journals one event.
func (r *Runtime) AppendEvent(ctx context.Context, taskID, kind string, data map[string]any) (models.Event, error) {
	if err := r.guard(); err != nil {
		return models.Event{}, err
	}
	ev, err := r.backend.AppendEvent(ctx, taskID, kind, data)
	return ev, r.observe(err)
}

// QueryEvents reads the journal newest-first.
func (r *Runtime) QueryEvents(ctx context.Context, q models.EventQuery) ([]models.Event, error) {
	evs, err := r.backend.QueryEvents(ctx, q)
	return evs, r.observe(err)
}

// RecordEvidence appends one verifier verdict.
func (r *Runtime) RecordEvidence(ctx context.Context, ev models.Evidence) error {
	if err := r.guard(); err != nil {
		return err
	}
	return r.observe(r.backend.RecordEvidence(ctx, ev))
}

// EvidenceForAttempt returns the verdicts recorded for one attempt.
func (r *Runtime) EvidenceForAttempt(ctx context.Context, taskID string, attempt int) ([]models.Evidence, error) {
	evs, err := r.backend.EvidenceForAttempt(ctx, taskID, attempt)
	return evs, r.observe(err)
}

// Channels returns the registered escalation channels.
func (r *Runtime) Channels() []string { return r.backend.Channels() }

// Send appends one envelope to an escalation channel.
func (r *Runtime) Send(ctx context.Context, channel string, kind models.EnvelopeKind, fromAgent string, payload map[string]any) (models.Envelope, error) {
	if err := r.guard(); err != nil {
		return models.Envelope{}, err
	}
	env, err := r.backend.Send(ctx, channel, kind, fromAgent, payload)
	return env, r.observe(err)
}

// Fetch returns a channel's envelopes in arrival order, starting after the
// sinceID cursor when one is given.
func (r *Runtime) Fetch(ctx context.Context, channel string, sinceID int64, includeRead bool, limit int) ([]models.Envelope, error) {
	envs, err := r.backend.Fetch(ctx, channel, sinceID, includeRead, limit)
	return envs, r.observe(err)
}

// MarkRead acknowledges envelopes on a channel.
func (r *Runtime) MarkRead(ctx context.Context, channel string, messageIDs []int64) (int, error) {
	if err := r.guard(); err != nil {
		return 0, err
	}
	n, err := r.backend.MarkRead(ctx, channel, messageIDs)
	return n, r.observe(err)
}

// Unread returns a channel's unread count.
func (r *Runtime) Unread(ctx context.Context, channel string) (int, error) {
	n, err := r.backend.Unread(ctx, channel)
	return n, r.observe(err)
}

// PrecommitCheck decides whether an agent may commit the given paths.
func (r *Runtime) PrecommitCheck(ctx context.Context, agentID string, paths []string) (models.Decision, error) {
	if err := r.guard(); err != nil {
		return models.Decision{}, err
	}
	d, err := r.backend.PrecommitCheck(ctx, agentID, paths)
	return d, r.observe(err)
}

// Summary assembles the runtime snapshot, annotated with the read-only
// flag.
func (r *Runtime) Summary(ctx context.Context) (models.StatusSummary, error) {
	s, err := r.backend.Summary(ctx)
	if err != nil {
		return models.StatusSummary{}, r.observe(err)
	}
	s.ReadOnly = r.readOnly.Load()
	return s, nil
}

// RecordMonitorSample journals one external monitor observation.
func (r *Runtime) RecordMonitorSample(ctx context.Context, sample models.MonitorSample) (models.Event, error) {
	if err := r.guard(); err != nil {
		return models.Event{}, err
	}
	ev, err := r.backend.RecordMonitorSample(ctx, sample)
	return ev, r.observe(err)
}
