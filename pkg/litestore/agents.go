package litestore

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/openmaf/maf/pkg/ids"
	"github.com/openmaf/maf/pkg/models"
)

// Heartbeat upserts the agent row and moves last_seen forward (never
// backwards). It also refreshes the agent's leases expiring within one
// heartbeat interval.
func (s *Store) Heartbeat(ctx context.Context, req models.HeartbeatRequest) (models.Agent, error) {
	if req.AgentID == "" {
		return models.Agent{}, fmt.Errorf("%w: agent id is required", models.ErrInvalidArgument)
	}

	var out models.Agent
	err := s.mutate(func(doc *document) error {
		now := ids.NowMillis()

		a, ok := doc.Agents[req.AgentID]
		if !ok {
			a = &models.Agent{
				ID:     req.AgentID,
				Type:   models.AgentTypeWorker,
				Status: models.AgentStatusActive,
			}
			doc.Agents[req.AgentID] = a
			slog.Info("Agent registered", "agent_id", req.AgentID)
		}

		if now > a.LastSeen {
			a.LastSeen = now
		}
		a.Status = models.AgentStatusActive
		if req.Status != "" {
			a.Status = req.Status
		}
		if req.Name != "" {
			a.Name = req.Name
		}
		if req.Type != "" {
			a.Type = req.Type
		}
		if len(req.Capabilities) > 0 {
			a.Capabilities = req.Capabilities
		}
		if len(req.Context) > 0 {
			a.Metadata = req.Context
		}

		// Keep a live agent's leases ahead of the sweeper.
		horizon := now + ids.DurationMillis(s.cfg.Liveness.HeartbeatInterval)
		newExpiry := now + ids.DurationMillis(s.cfg.Leases.DefaultDuration)
		for _, l := range doc.Leases {
			if l.AgentID == req.AgentID && l.ExpiresAt > now && l.ExpiresAt <= horizon {
				l.ExpiresAt = newExpiry
			}
		}

		out = *a
		return nil
	})
	return out, err
}

// GetAgent returns one agent by id.
func (s *Store) GetAgent(ctx context.Context, agentID string) (models.Agent, error) {
	var out models.Agent
	err := s.view(func(doc *document) error {
		a, ok := doc.Agents[agentID]
		if !ok {
			return fmt.Errorf("%w: agent %s", models.ErrNotFound, agentID)
		}
		out = *a
		return nil
	})
	return out, err
}

// ListAgents returns agents, optionally narrowed to one status, most
// recently seen first.
func (s *Store) ListAgents(ctx context.Context, status models.AgentStatus) ([]models.Agent, error) {
	var out []models.Agent
	err := s.view(func(doc *document) error {
		for _, a := range doc.Agents {
			if status == "" || a.Status == status {
				out = append(out, *a)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LastSeen > out[j].LastSeen })
	return out, nil
}

// SweepLiveness marks agents silent past the liveness timeout inactive and
// reclaims everything they held.
func (s *Store) SweepLiveness(ctx context.Context) (int, error) {
	swept := 0
	err := s.mutate(func(doc *document) error {
		cutoff := ids.NowMillis() - ids.DurationMillis(s.cfg.Liveness.Timeout)
		for _, a := range doc.Agents {
			if a.Status != models.AgentStatusActive || a.LastSeen >= cutoff {
				continue
			}
			a.Status = models.AgentStatusInactive
			appendEvent(doc, "", models.EventHeartbeatMissed, map[string]any{
				"agent_id":  a.ID,
				"last_seen": a.LastSeen,
				"cutoff":    cutoff,
			})
			for taskID, l := range doc.Leases {
				if l.AgentID == a.ID {
					reclaimLease(doc, taskID, l, "agent heartbeat missed")
				}
			}
			for _, r := range doc.Reservations {
				if r.AgentID == a.ID && r.Status == models.ReservationActive {
					r.Status = models.ReservationReleased
					appendEvent(doc, "", models.EventReservationReleased, map[string]any{
						"path":     r.FilePath,
						"agent_id": a.ID,
						"reason":   "agent heartbeat missed",
					})
				}
			}
			swept++
			slog.Warn("Agent marked inactive", "agent_id", a.ID, "last_seen", a.LastSeen)
		}
		return nil
	})
	return swept, err
}
