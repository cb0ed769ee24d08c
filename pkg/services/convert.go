// Package services implements the coordination runtime's business layer on
// top of the durable Ent client: the task state machine, lease manager,
// claim engine, liveness tracking, journal, escalation channels, and the
// pre-commit enforcer.
package services

import (
	"github.com/openmaf/maf/ent"
	"github.com/openmaf/maf/pkg/models"
)

func taskToModel(t *ent.Task) models.Task {
	return models.Task{
		ID:              t.ID,
		State:           models.TaskState(t.State),
		Priority:        t.Priority,
		Payload:         t.Payload,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
		Attempts:        t.Attempts,
		MaxAttempts:     t.MaxAttempts,
		TokenBudget:     t.TokenBudget,
		CostBudgetCents: t.CostBudgetCents,
		PolicyLabel:     t.PolicyLabel,
	}
}

func tasksToModels(ts []*ent.Task) []models.Task {
	out := make([]models.Task, 0, len(ts))
	for _, t := range ts {
		out = append(out, taskToModel(t))
	}
	return out
}

func leaseToModel(l *ent.Lease) models.Lease {
	return models.Lease{
		TaskID:    l.TaskID,
		AgentID:   l.AgentID,
		ExpiresAt: l.LeaseExpiresAt,
		Attempt:   l.Attempt,
	}
}

func reservationToModel(r *ent.FileReservation) models.Reservation {
	return models.Reservation{
		ID:        r.ID,
		FilePath:  r.FilePath,
		AgentID:   r.AgentID,
		ExpiresAt: r.LeaseExpiresAt,
		Status:    models.ReservationStatus(r.Status),
		Reason:    r.LeaseReason,
		Metadata:  r.Metadata,
	}
}

func agentToModel(a *ent.Agent) models.Agent {
	return models.Agent{
		ID:           a.ID,
		Name:         a.Name,
		Type:         models.AgentType(a.Type),
		Status:       models.AgentStatus(a.Status),
		LastSeen:     a.LastSeen,
		Capabilities: a.Capabilities,
		Metadata:     a.Metadata,
	}
}

func eventToModel(e *ent.Event) models.Event {
	return models.Event{
		ID:     int64(e.ID),
		TaskID: e.TaskID,
		TS:     e.Ts,
		Kind:   e.Kind,
		Data:   e.Data,
	}
}

func eventsToModels(es []*ent.Event) []models.Event {
	out := make([]models.Event, 0, len(es))
	for _, e := range es {
		out = append(out, eventToModel(e))
	}
	return out
}

func envelopeToModel(m *ent.MailMessage) models.Envelope {
	return models.Envelope{
		ID:        int64(m.ID),
		Kind:      models.EnvelopeKind(m.Kind),
		FromAgent: m.FromAgent,
		Channel:   m.Channel,
		CreatedAt: m.CreatedAt,
		Payload:   m.Payload,
		Read:      m.Read,
	}
}
