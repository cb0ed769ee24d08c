// Package runtime is the façade every caller goes through: it opens the
// first healthy backend from the configured fallback order, degrades to
// read-only when the store fails fatally, and runs the background sweeps.
package runtime

import (
	"context"
	"time"

	"github.com/openmaf/maf/pkg/models"
)

// Backend is the full coordination surface a storage backend provides.
// The durable backend implements it over PostgreSQL, the litestore over a
// JSON document (file or memory).
type Backend interface {
	Name() string
	Close() error

	// Tasks
	CreateTask(ctx context.Context, req models.CreateTaskRequest) (models.Task, error)
	GetTask(ctx context.Context, id string) (models.Task, error)
	ListTasks(ctx context.Context, filter models.TaskFilter) ([]models.Task, error)
	Transition(ctx context.Context, taskID string, from, to models.TaskState, agentID string, patch *models.TransitionPatch) (models.Task, error)
	Complete(ctx context.Context, taskID, agentID string) (models.Task, error)

	// Claims and leases
	ClaimNext(ctx context.Context, agentID string, filter models.TaskFilter, leaseDur time.Duration) (models.ClaimOutcome, error)
	AcquireLease(ctx context.Context, taskID, agentID string, d time.Duration) (models.Lease, error)
	RefreshLease(ctx context.Context, taskID, agentID string, d time.Duration) (models.Lease, error)
	ReleaseLease(ctx context.Context, taskID, agentID string) error
	GetLease(ctx context.Context, taskID string) (models.Lease, error)
	ListLeases(ctx context.Context) ([]models.Lease, error)

	// File reservations
	Reserve(ctx context.Context, path, agentID string, d time.Duration, reason string, metadata map[string]any) (models.Reservation, error)
	ReleaseFile(ctx context.Context, path, agentID string) error
	ListReservations(ctx context.Context, agentID string) ([]models.Reservation, error)
	HoldersOf(ctx context.Context, paths []string, excludeAgent string) ([]models.FileConflict, error)
	OpenConflicts(ctx context.Context, limit int) ([]models.ReservationConflict, error)

	// Agents
	Heartbeat(ctx context.Context, req models.HeartbeatRequest) (models.Agent, error)
	GetAgent(ctx context.Context, agentID string) (models.Agent, error)
	ListAgents(ctx context.Context, status models.AgentStatus) ([]models.Agent, error)

	// Journal and evidence
	AppendEvent(ctx context.Context, taskID, kind string, data map[string]any) (models.Event, error)
	QueryEvents(ctx context.Context, q models.EventQuery) ([]models.Event, error)
	RecordEvidence(ctx context.Context, ev models.Evidence) error
	EvidenceForAttempt(ctx context.Context, taskID string, attempt int) ([]models.Evidence, error)

	// Escalation channels
	RegisterChannels(names ...string)
	Channels() []string
	Send(ctx context.Context, channel string, kind models.EnvelopeKind, fromAgent string, payload map[string]any) (models.Envelope, error)
	Fetch(ctx context.Context, channel string, sinceID int64, includeRead bool, limit int) ([]models.Envelope, error)
	MarkRead(ctx context.Context, channel string, messageIDs []int64) (int, error)
	Unread(ctx context.Context, channel string) (int, error)

	// Enforcement and status
	PrecommitCheck(ctx context.Context, agentID string, paths []string) (models.Decision, error)
	Summary(ctx context.Context) (models.StatusSummary, error)
	RecordMonitorSample(ctx context.Context, sample models.MonitorSample) (models.Event, error)

	// Background sweeps
	SweepLeases(ctx context.Context) (int, error)
	SweepReservations(ctx context.Context) (int, error)
	SweepLiveness(ctx context.Context) (int, error)
}
