package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/openmaf/maf/ent"
	"github.com/openmaf/maf/ent/agent"
	"github.com/openmaf/maf/pkg/config"
	"github.com/openmaf/maf/pkg/database"
	"github.com/openmaf/maf/pkg/ids"
	"github.com/openmaf/maf/pkg/models"
)

// AgentService tracks agent liveness. Agents register themselves on first
// heartbeat; the liveness sweep marks silent agents inactive and reclaims
// everything they held. Agent rows are never deleted.
type AgentService struct {
	client       *ent.Client
	journal      *JournalService
	leases       *LeaseService
	reservations *ReservationService
	cfg          *config.LivenessConfig
}

// NewAgentService creates a new agent service.
func NewAgentService(client *ent.Client, journal *JournalService, leases *LeaseService, reservations *ReservationService, cfg *config.LivenessConfig) *AgentService {
	return &AgentService{client: client, journal: journal, leases: leases, reservations: reservations, cfg: cfg}
}

// Heartbeat upserts the agent row and moves last_seen forward. last_seen
// never moves backwards, so a delayed heartbeat arriving after a newer one
// is absorbed. A heartbeat also refreshes any of the agent's leases that
// expire within one heartbeat interval, keeping a live agent ahead of the
// lease sweeper.
func (s *AgentService) Heartbeat(ctx context.Context, req models.HeartbeatRequest) (models.Agent, error) {
	if req.AgentID == "" {
		return models.Agent{}, fmt.Errorf("%w: agent id is required", models.ErrInvalidArgument)
	}
	agentType := req.Type
	if agentType == "" {
		agentType = models.AgentTypeWorker
	}
	status := req.Status
	if status == "" {
		status = models.AgentStatusActive
	}

	var out *ent.Agent
	err := database.WithTx(ctx, s.client, func(tx *ent.Tx) error {
		now := ids.NowMillis()

		existing, err := tx.Agent.Get(ctx, req.AgentID)
		if err != nil && !ent.IsNotFound(err) {
			return fmt.Errorf("failed to get agent: %w", err)
		}

		if ent.IsNotFound(err) {
			create := tx.Agent.Create().
				SetID(req.AgentID).
				SetType(agent.Type(agentType)).
				SetStatus(agent.Status(status)).
				SetLastSeen(now)
			if req.Name != "" {
				create.SetName(req.Name)
			}
			if len(req.Capabilities) > 0 {
				create.SetCapabilities(req.Capabilities)
			}
			if len(req.Context) > 0 {
				create.SetMetadata(req.Context)
			}
			out, err = create.Save(ctx)
			if err != nil {
				if ent.IsConstraintError(err) {
					return &models.TransientError{Err: fmt.Errorf("agent %s registered concurrently", req.AgentID)}
				}
				return fmt.Errorf("failed to register agent: %w", err)
			}
			slog.Info("Agent registered", "agent_id", req.AgentID, "type", agentType)
			return nil
		}

		update := existing.Update().
			SetStatus(agent.Status(status))
		if now > existing.LastSeen {
			update.SetLastSeen(now)
		}
		if req.Name != "" {
			update.SetName(req.Name)
		}
		if req.Type != "" {
			update.SetType(agent.Type(req.Type))
		}
		if len(req.Capabilities) > 0 {
			update.SetCapabilities(req.Capabilities)
		}
		if len(req.Context) > 0 {
			update.SetMetadata(req.Context)
		}
		out, err = update.Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to update agent: %w", err)
		}
		return nil
	})
	if err != nil {
		return models.Agent{}, err
	}

	if n, err := s.leases.RefreshAgentLeases(ctx, req.AgentID, s.cfg.HeartbeatInterval); err != nil {
		// The heartbeat itself landed; a failed refresh only means the
		// sweeper may reclaim sooner. Journal it so the miss is visible.
		slog.Warn("Failed to refresh leases on heartbeat", "agent_id", req.AgentID, "error", err)
		_, _ = s.journal.Append(ctx, "", models.EventHeartbeatRenewFail, map[string]any{
			"agent_id": req.AgentID,
			"error":    err.Error(),
		})
	} else if n > 0 {
		slog.Debug("Leases refreshed on heartbeat", "agent_id", req.AgentID, "count", n)
	}

	return agentToModel(out), nil
}

// Get returns one agent by id.
func (s *AgentService) Get(ctx context.Context, agentID string) (models.Agent, error) {
	a, err := s.client.Agent.Get(ctx, agentID)
	if err != nil {
		if ent.IsNotFound(err) {
			return models.Agent{}, fmt.Errorf("%w: agent %s", models.ErrNotFound, agentID)
		}
		return models.Agent{}, fmt.Errorf("failed to get agent: %w", err)
	}
	return agentToModel(a), nil
}

// List returns agents, optionally narrowed to one status, most recently
// seen first.
func (s *AgentService) List(ctx context.Context, status models.AgentStatus) ([]models.Agent, error) {
	query := s.client.Agent.Query()
	if status != "" {
		query = query.Where(agent.StatusEQ(agent.Status(status)))
	}
	rows, err := query.Order(ent.Desc(agent.FieldLastSeen)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list agents: %w", err)
	}
	out := make([]models.Agent, 0, len(rows))
	for _, a := range rows {
		out = append(out, agentToModel(a))
	}
	return out, nil
}

// SweepStale marks every active agent silent for longer than the liveness
// timeout as inactive, journals the miss, and reclaims everything the agent
// held: its leases, so its tasks go back in the queue, and its file
// reservations, so its paths unblock. Returns the number of agents swept.
func (s *AgentService) SweepStale(ctx context.Context) (int, error) {
	cutoff := ids.NowMillis() - ids.DurationMillis(s.cfg.Timeout)

	stale, err := s.client.Agent.Query().
		Where(agent.StatusEQ(agent.StatusActive), agent.LastSeenLT(cutoff)).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to scan stale agents: %w", err)
	}

	swept := 0
	for _, a := range stale {
		err := database.WithTx(ctx, s.client, func(tx *ent.Tx) error {
			// CAS on (status, last_seen) so a heartbeat that lands mid-sweep
			// wins and the agent stays active.
			n, err := tx.Agent.Update().
				Where(
					agent.IDEQ(a.ID),
					agent.StatusEQ(agent.StatusActive),
					agent.LastSeenLT(cutoff),
				).
				SetStatus(agent.StatusInactive).
				Save(ctx)
			if err != nil {
				return fmt.Errorf("failed to deactivate agent: %w", err)
			}
			if n == 0 {
				return nil
			}
			_, err = s.journal.appendTx(ctx, tx, "", models.EventHeartbeatMissed, map[string]any{
				"agent_id":  a.ID,
				"last_seen": a.LastSeen,
				"cutoff":    cutoff,
			})
			return err
		})
		if err != nil {
			slog.Error("Failed to sweep stale agent", "agent_id", a.ID, "error", err)
			continue
		}

		if _, err := s.leases.ReclaimAgent(ctx, a.ID, "agent heartbeat missed"); err != nil {
			slog.Error("Failed to reclaim leases of stale agent", "agent_id", a.ID, "error", err)
		}
		if _, err := s.reservations.ReleaseAgent(ctx, a.ID, "agent heartbeat missed"); err != nil {
			slog.Error("Failed to release reservations of stale agent", "agent_id", a.ID, "error", err)
		}
		swept++
		slog.Warn("Agent marked inactive", "agent_id", a.ID, "last_seen", a.LastSeen)
	}
	return swept, nil
}

// CountActive returns the number of agents currently marked active.
func (s *AgentService) CountActive(ctx context.Context) (int, error) {
	n, err := s.client.Agent.Query().
		Where(agent.StatusEQ(agent.StatusActive)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count active agents: %w", err)
	}
	return n, nil
}
