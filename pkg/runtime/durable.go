package runtime

import (
	"context"
	"time"

	"github.com/openmaf/maf/pkg/config"
	"github.com/openmaf/maf/pkg/database"
	"github.com/openmaf/maf/pkg/models"
	"github.com/openmaf/maf/pkg/services"
)

// DurableBackend adapts the PostgreSQL service layer to the Backend
// interface.
type DurableBackend struct {
	client       *database.Client
	cfg          *config.Config
	journal      *services.JournalService
	tasks        *services.TaskService
	leases       *services.LeaseService
	reservations *services.ReservationService
	claims       *services.ClaimService
	agents       *services.AgentService
	mail         *services.MailService
	enforcer     *services.Enforcer
	status       *services.StatusService
}

// OpenDurable connects to PostgreSQL (migrating on the way in) and wires
// the service layer.
func OpenDurable(ctx context.Context, cfg *config.Config) (*DurableBackend, error) {
	dbCfg, err := database.LoadConfigFromEnv()
	if err != nil {
		return nil, err
	}
	client, err := database.NewClient(ctx, dbCfg)
	if err != nil {
		return nil, err
	}
	return NewDurable(client, cfg), nil
}

// NewDurable wires the service layer over an existing database client.
// Tests use this with a testcontainer-backed client.
func NewDurable(client *database.Client, cfg *config.Config) *DurableBackend {
	journal := services.NewJournalService(client.Client)
	mail := services.NewMailService(client.Client, journal)
	mail.RegisterChannels(cfg.Channels.All()...)
	leases := services.NewLeaseService(client.Client, journal, cfg.Leases)
	reservations := services.NewReservationService(client.Client, journal, mail, cfg)

	return &DurableBackend{
		client:       client,
		cfg:          cfg,
		journal:      journal,
		tasks:        services.NewTaskService(client.Client, journal),
		leases:       leases,
		reservations: reservations,
		claims:       services.NewClaimService(client.Client, journal, reservations, mail, cfg),
		agents:       services.NewAgentService(client.Client, journal, leases, reservations, cfg.Liveness),
		mail:         mail,
		enforcer:     services.NewEnforcer(reservations, journal, mail, cfg),
		status:       services.NewStatusService(client.Client, journal),
	}
}

// Journal exposes the journal service so the NOTIFY stream publisher can
// be attached post-commit.
func (b *DurableBackend) Journal() *services.JournalService { return b.journal }

// Client exposes the underlying database client for health checks.
func (b *DurableBackend) Client() *database.Client { return b.client }

func (b *DurableBackend) Name() string { return "durable" }

func (b *DurableBackend) Close() error { return b.client.Close() }

func (b *DurableBackend) CreateTask(ctx context.Context, req models.CreateTaskRequest) (models.Task, error) {
	return b.tasks.Create(ctx, req)
}

func (b *DurableBackend) GetTask(ctx context.Context, id string) (models.Task, error) {
	return b.tasks.Get(ctx, id)
}

func (b *DurableBackend) ListTasks(ctx context.Context, filter models.TaskFilter) ([]models.Task, error) {
	return b.tasks.List(ctx, filter)
}

func (b *DurableBackend) Transition(ctx context.Context, taskID string, from, to models.TaskState, agentID string, patch *models.TransitionPatch) (models.Task, error) {
	return b.tasks.Transition(ctx, taskID, from, to, agentID, patch)
}

func (b *DurableBackend) Complete(ctx context.Context, taskID, agentID string) (models.Task, error) {
	return b.tasks.Complete(ctx, taskID, agentID)
}

func (b *DurableBackend) ClaimNext(ctx context.Context, agentID string, filter models.TaskFilter, leaseDur time.Duration) (models.ClaimOutcome, error) {
	return b.claims.ClaimNext(ctx, agentID, filter, leaseDur)
}

func (b *DurableBackend) AcquireLease(ctx context.Context, taskID, agentID string, d time.Duration) (models.Lease, error) {
	return b.leases.Acquire(ctx, taskID, agentID, d)
}

func (b *DurableBackend) RefreshLease(ctx context.Context, taskID, agentID string, d time.Duration) (models.Lease, error) {
	return b.leases.Refresh(ctx, taskID, agentID, d)
}

func (b *DurableBackend) ReleaseLease(ctx context.Context, taskID, agentID string) error {
	return b.leases.Release(ctx, taskID, agentID)
}

func (b *DurableBackend) GetLease(ctx context.Context, taskID string) (models.Lease, error) {
	return b.leases.Get(ctx, taskID)
}

func (b *DurableBackend) ListLeases(ctx context.Context) ([]models.Lease, error) {
	return b.leases.ListActive(ctx)
}

func (b *DurableBackend) Reserve(ctx context.Context, path, agentID string, d time.Duration, reason string, metadata map[string]any) (models.Reservation, error) {
	return b.reservations.Reserve(ctx, services.ReserveRequest{
		Path:     path,
		AgentID:  agentID,
		Duration: d,
		Reason:   reason,
		Metadata: metadata,
	})
}

func (b *DurableBackend) ReleaseFile(ctx context.Context, path, agentID string) error {
	return b.reservations.Release(ctx, path, agentID)
}

func (b *DurableBackend) ListReservations(ctx context.Context, agentID string) ([]models.Reservation, error) {
	return b.reservations.ListActive(ctx, agentID)
}

func (b *DurableBackend) HoldersOf(ctx context.Context, paths []string, excludeAgent string) ([]models.FileConflict, error) {
	return b.reservations.HoldersOf(ctx, paths, excludeAgent)
}

func (b *DurableBackend) OpenConflicts(ctx context.Context, limit int) ([]models.ReservationConflict, error) {
	return b.reservations.OpenConflicts(ctx, limit)
}

func (b *DurableBackend) Heartbeat(ctx context.Context, req models.HeartbeatRequest) (models.Agent, error) {
	return b.agents.Heartbeat(ctx, req)
}

func (b *DurableBackend) GetAgent(ctx context.Context, agentID string) (models.Agent, error) {
	return b.agents.Get(ctx, agentID)
}

func (b *DurableBackend) ListAgents(ctx context.Context, status models.AgentStatus) ([]models.Agent, error) {
	return b.agents.List(ctx, status)
}

func (b *DurableBackend) AppendEvent(ctx context.Context, taskID, kind string, data map[string]any) (models.Event, error) {
	return b.journal.Append(ctx, taskID, kind, data)
}

func (b *DurableBackend) QueryEvents(ctx context.Context, q models.EventQuery) ([]models.Event, error) {
	return b.journal.Query(ctx, q)
}

func (b *DurableBackend) RecordEvidence(ctx context.Context, ev models.Evidence) error {
	return b.journal.RecordEvidence(ctx, ev)
}

func (b *DurableBackend) EvidenceForAttempt(ctx context.Context, taskID string, attempt int) ([]models.Evidence, error) {
	return b.journal.EvidenceForAttempt(ctx, taskID, attempt)
}

func (b *DurableBackend) RegisterChannels(names ...string) {
	b.mail.RegisterChannels(names...)
}

func (b *DurableBackend) Channels() []string { return b.mail.Channels() }

func (b *DurableBackend) Send(ctx context.Context, channel string, kind models.EnvelopeKind, fromAgent string, payload map[string]any) (models.Envelope, error) {
	return b.mail.Send(ctx, channel, services.SendRequest{
		Kind:      kind,
		FromAgent: fromAgent,
		Payload:   payload,
	})
}

func (b *DurableBackend) Fetch(ctx context.Context, channel string, sinceID int64, includeRead bool, limit int) ([]models.Envelope, error) {
	return b.mail.Fetch(ctx, channel, sinceID, includeRead, limit)
}

func (b *DurableBackend) MarkRead(ctx context.Context, channel string, messageIDs []int64) (int, error) {
	return b.mail.MarkRead(ctx, channel, messageIDs)
}

func (b *DurableBackend) Unread(ctx context.Context, channel string) (int, error) {
	return b.mail.Unread(ctx, channel)
}

func (b *DurableBackend) PrecommitCheck(ctx context.Context, agentID string, paths []string) (models.Decision, error) {
	return b.enforcer.Check(ctx, agentID, paths)
}

func (b *DurableBackend) Summary(ctx context.Context) (models.StatusSummary, error) {
	return b.status.Summary(ctx, b.Name(), false)
}

func (b *DurableBackend) RecordMonitorSample(ctx context.Context, sample models.MonitorSample) (models.Event, error) {
	return b.status.RecordMonitorSample(ctx, sample)
}

func (b *DurableBackend) SweepLeases(ctx context.Context) (int, error) {
	return b.leases.ReclaimExpired(ctx)
}

func (b *DurableBackend) SweepReservations(ctx context.Context) (int, error) {
	return b.reservations.ExpireStale(ctx)
}

func (b *DurableBackend) SweepLiveness(ctx context.Context) (int, error) {
	return b.agents.SweepStale(ctx)
}
