package litestore

import (
	"context"
	"fmt"
	"sort"

	"github.com/openmaf/maf/pkg/ids"
	"github.com/openmaf/maf/pkg/models"
)

// CreateTask inserts a new READY task and journals CREATED.
func (s *Store) CreateTask(ctx context.Context, req models.CreateTaskRequest) (models.Task, error) {
	id := req.ID
	if id == "" {
		id = ids.NewTaskID()
	}
	maxAttempts := req.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = 3
	}

	var out models.Task
	err := s.mutate(func(doc *document) error {
		if _, ok := doc.Tasks[id]; ok {
			return fmt.Errorf("%w: task %s", models.ErrAlreadyExists, id)
		}
		now := ids.NowMillis()
		t := &models.Task{
			ID:              id,
			State:           models.StateReady,
			Priority:        req.Priority,
			Payload:         req.Payload,
			CreatedAt:       now,
			UpdatedAt:       now,
			MaxAttempts:     maxAttempts,
			TokenBudget:     req.TokenBudget,
			CostBudgetCents: req.CostBudgetCents,
			PolicyLabel:     req.PolicyLabel,
		}
		doc.Tasks[id] = t
		appendEvent(doc, id, models.EventCreated, map[string]any{
			"priority": req.Priority,
			"files":    models.DeclaredFiles(req.Payload),
		})
		out = *t
		return nil
	})
	return out, err
}

// GetTask returns one task by id.
func (s *Store) GetTask(ctx context.Context, id string) (models.Task, error) {
	var out models.Task
	err := s.view(func(doc *document) error {
		t, ok := doc.Tasks[id]
		if !ok {
			return fmt.Errorf("%w: task %s", models.ErrNotFound, id)
		}
		out = *t
		return nil
	})
	return out, err
}

// ListTasks returns tasks matching the filter in priority order.
func (s *Store) ListTasks(ctx context.Context, filter models.TaskFilter) ([]models.Task, error) {
	var out []models.Task
	err := s.view(func(doc *document) error {
		for _, t := range doc.Tasks {
			if matchesFilter(t, filter) {
				out = append(out, *t)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sortByPriority(out)
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func matchesFilter(t *models.Task, filter models.TaskFilter) bool {
	if len(filter.States) > 0 {
		found := false
		for _, st := range filter.States {
			if t.State == st {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if filter.MinPriority != nil && t.Priority < *filter.MinPriority {
		return false
	}
	if filter.MaxPriority != nil && t.Priority > *filter.MaxPriority {
		return false
	}
	if filter.PolicyLabel != "" && t.PolicyLabel != filter.PolicyLabel {
		return false
	}
	return true
}

func sortByPriority(tasks []models.Task) {
	sort.Slice(tasks, func(i, j int) bool {
		if tasks[i].Priority != tasks[j].Priority {
			return tasks[i].Priority < tasks[j].Priority
		}
		if tasks[i].CreatedAt != tasks[j].CreatedAt {
			return tasks[i].CreatedAt < tasks[j].CreatedAt
		}
		return tasks[i].ID < tasks[j].ID
	})
}

// Transition moves a task between states with compare-and-swap semantics.
// Transitions into LEASED are reserved for the claim engine.
func (s *Store) Transition(ctx context.Context, taskID string, from, to models.TaskState, agentID string, patch *models.TransitionPatch) (models.Task, error) {
	if !models.IsValidState(from) || !models.IsValidState(to) {
		return models.Task{}, fmt.Errorf("%w: unknown task state", models.ErrInvalidArgument)
	}
	if to == models.StateLeased {
		return models.Task{}, fmt.Errorf("%w: transitions into LEASED go through the claim engine", models.ErrInvalidArgument)
	}
	if !models.IsLegalTransition(from, to) {
		return models.Task{}, &models.IllegalTransitionError{TaskID: taskID, From: from, To: to}
	}

	var out models.Task
	err := s.mutate(func(doc *document) error {
		t, err := transition(doc, taskID, from, to, agentID, patch)
		if err != nil {
			return err
		}
		out = *t
		return nil
	})
	return out, err
}

// transition applies one CAS transition, maintaining the lease and
// reservation lifecycle and journaling the move. Callers hold s.mu.
func transition(doc *document, taskID string, from, to models.TaskState, agentID string, patch *models.TransitionPatch) (*models.Task, error) {
	t, ok := doc.Tasks[taskID]
	if !ok {
		return nil, fmt.Errorf("%w: task %s", models.ErrNotFound, taskID)
	}
	if t.State != from {
		return nil, &models.IllegalTransitionError{TaskID: taskID, From: from, To: to, Observed: t.State}
	}

	t.State = to
	t.UpdatedAt = ids.NowMillis()
	if patch != nil && patch.IncrementAttempts {
		t.Attempts++
	}

	if models.IsActiveState(from) && !models.IsActiveState(to) {
		holder := ""
		if l, ok := doc.Leases[taskID]; ok {
			holder = l.AgentID
			delete(doc.Leases, taskID)
		}
		if holder != "" && (to == models.StateCommitted || to == models.StateRollback) {
			releaseAgentPaths(doc, holder, t.DeclaredFiles())
		}
		if agentID == "" {
			agentID = holder
		}
	}

	data := map[string]any{"from": string(from), "to": string(to)}
	if agentID != "" {
		data["agent_id"] = agentID
	}
	if patch != nil {
		for k, v := range patch.EventData {
			data[k] = v
		}
	}
	appendEvent(doc, taskID, models.TransitionEventKind(to), data)
	return t, nil
}

// Complete settles a VERIFYING task from its recorded evidence: all-PASS
// commits through COMMITTED to DONE; anything else rolls back, then
// re-queues READY or buries DEAD once attempts are exhausted.
func (s *Store) Complete(ctx context.Context, taskID, agentID string) (models.Task, error) {
	var out models.Task
	err := s.mutate(func(doc *document) error {
		t, ok := doc.Tasks[taskID]
		if !ok {
			return fmt.Errorf("%w: task %s", models.ErrNotFound, taskID)
		}
		if t.State != models.StateVerifying {
			return &models.IllegalTransitionError{
				TaskID: taskID, From: models.StateVerifying, To: models.StateCommitted, Observed: t.State,
			}
		}
		l, ok := doc.Leases[taskID]
		if !ok {
			return fmt.Errorf("%w: no lease for task %s", models.ErrNotHeldByAgent, taskID)
		}
		if l.AgentID != agentID {
			return fmt.Errorf("%w: task %s is held by %s", models.ErrNotHeldByAgent, taskID, l.AgentID)
		}
		if l.ExpiresAt <= ids.NowMillis() {
			return fmt.Errorf("%w: lease on task %s expired at %d", models.ErrExpired, taskID, l.ExpiresAt)
		}

		pass, verdicts := evidenceVerdict(doc, taskID, t.Attempts)
		patch := &models.TransitionPatch{EventData: map[string]any{
			"attempt": t.Attempts, "verdicts": verdicts,
		}}
		if pass {
			if _, err := transition(doc, taskID, models.StateVerifying, models.StateCommitted, agentID, patch); err != nil {
				return err
			}
			final, err := transition(doc, taskID, models.StateCommitted, models.StateDone, agentID, nil)
			if err != nil {
				return err
			}
			out = *final
			return nil
		}

		if _, err := transition(doc, taskID, models.StateVerifying, models.StateRollback, agentID, patch); err != nil {
			return err
		}
		target := models.StateReady
		data := map[string]any{"requeued": true, "attempt": t.Attempts}
		if t.Attempts >= t.MaxAttempts {
			target = models.StateDead
			data = map[string]any{"attempts": t.Attempts, "max_attempts": t.MaxAttempts}
		}
		final, err := transition(doc, taskID, models.StateRollback, target, agentID, &models.TransitionPatch{EventData: data})
		if err != nil {
			return err
		}
		out = *final
		return nil
	})
	return out, err
}
