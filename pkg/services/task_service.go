package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/openmaf/maf/ent"
	"github.com/openmaf/maf/ent/lease"
	"github.com/openmaf/maf/ent/task"
	"github.com/openmaf/maf/pkg/database"
	"github.com/openmaf/maf/pkg/ids"
	"github.com/openmaf/maf/pkg/models"
)

// DefaultMaxAttempts is applied when task creation does not specify one.
const DefaultMaxAttempts = 3

// TaskService owns the task state machine: creation, listing, and
// compare-and-swap transitions. Claiming (READY -> LEASED) is the claim
// engine's job and is rejected here.
type TaskService struct {
	client  *ent.Client
	journal *JournalService
}

// NewTaskService creates a new task service.
func NewTaskService(client *ent.Client, journal *JournalService) *TaskService {
	return &TaskService{client: client, journal: journal}
}

// Create inserts a new READY task and journals CREATED. A caller-supplied
// id that already exists fails with AlreadyExists.
func (s *TaskService) Create(ctx context.Context, req models.CreateTaskRequest) (models.Task, error) {
	id := req.ID
	if id == "" {
		id = ids.NewTaskID()
	}
	maxAttempts := req.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}

	var created *ent.Task
	err := database.WithTx(ctx, s.client, func(tx *ent.Tx) error {
		now := ids.NowMillis()
		create := tx.Task.Create().
			SetID(id).
			SetPriority(req.Priority).
			SetCreatedAt(now).
			SetUpdatedAt(now).
			SetMaxAttempts(maxAttempts)
		if len(req.Payload) > 0 {
			create.SetPayload(req.Payload)
		}
		if req.TokenBudget > 0 {
			create.SetTokenBudget(req.TokenBudget)
		}
		if req.CostBudgetCents > 0 {
			create.SetCostBudgetCents(req.CostBudgetCents)
		}
		if req.PolicyLabel != "" {
			create.SetPolicyLabel(req.PolicyLabel)
		}

		var err error
		created, err = create.Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				return fmt.Errorf("%w: task %s", models.ErrAlreadyExists, id)
			}
			return fmt.Errorf("failed to create task: %w", err)
		}

		_, err = s.journal.appendTx(ctx, tx, id, models.EventCreated, map[string]any{
			"priority": req.Priority,
			"files":    models.DeclaredFiles(req.Payload),
		})
		return err
	})
	if err != nil {
		return models.Task{}, err
	}

	slog.Info("Task created", "task_id", id, "priority", req.Priority)
	return taskToModel(created), nil
}

// Get returns one task by id.
func (s *TaskService) Get(ctx context.Context, id string) (models.Task, error) {
	t, err := s.client.Task.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return models.Task{}, fmt.Errorf("%w: task %s", models.ErrNotFound, id)
		}
		return models.Task{}, fmt.Errorf("failed to get task: %w", err)
	}
	return taskToModel(t), nil
}

// List returns tasks matching the filter, priority order (lower first),
// oldest first within a priority.
func (s *TaskService) List(ctx context.Context, filter models.TaskFilter) ([]models.Task, error) {
	query := s.client.Task.Query()
	if len(filter.States) > 0 {
		states := make([]task.State, 0, len(filter.States))
		for _, st := range filter.States {
			states = append(states, task.State(st))
		}
		query = query.Where(task.StateIn(states...))
	}
	if filter.MinPriority != nil {
		query = query.Where(task.PriorityGTE(*filter.MinPriority))
	}
	if filter.MaxPriority != nil {
		query = query.Where(task.PriorityLTE(*filter.MaxPriority))
	}
	if filter.PolicyLabel != "" {
		query = query.Where(task.PolicyLabelEQ(filter.PolicyLabel))
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	rows, err := query.
		Order(ent.Asc(task.FieldPriority), ent.Asc(task.FieldCreatedAt), ent.Asc(task.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasksToModels(rows), nil
}

// Transition moves a task from an expected state to a target state with
// compare-and-swap semantics: if the observed state differs from the
// expected one, nothing changes and an IllegalTransitionError reports what
// was observed. Transitions into LEASED are reserved for the claim engine.
func (s *TaskService) Transition(ctx context.Context, taskID string, from, to models.TaskState, agentID string, patch *models.TransitionPatch) (models.Task, error) {
	if !models.IsValidState(from) || !models.IsValidState(to) {
		return models.Task{}, fmt.Errorf("%w: unknown task state", models.ErrInvalidArgument)
	}
	if to == models.StateLeased {
		return models.Task{}, fmt.Errorf("%w: transitions into LEASED go through the claim engine", models.ErrInvalidArgument)
	}
	if !models.IsLegalTransition(from, to) {
		return models.Task{}, &models.IllegalTransitionError{TaskID: taskID, From: from, To: to}
	}

	var updated *ent.Task
	err := database.WithTx(ctx, s.client, func(tx *ent.Tx) error {
		var err error
		updated, err = s.transitionTx(ctx, tx, taskID, from, to, agentID, patch)
		return err
	})
	if err != nil {
		return models.Task{}, err
	}

	slog.Info("Task transitioned", "task_id", taskID, "from", from, "to", to, "agent_id", agentID)
	return taskToModel(updated), nil
}

// transitionTx applies one CAS transition inside an open transaction,
// maintaining the lease and reservation lifecycle and journaling the move.
func (s *TaskService) transitionTx(ctx context.Context, tx *ent.Tx, taskID string, from, to models.TaskState, agentID string, patch *models.TransitionPatch) (*ent.Task, error) {
	update := tx.Task.Update().
		Where(task.IDEQ(taskID), task.StateEQ(task.State(from))).
		SetState(task.State(to)).
		SetUpdatedAt(ids.NowMillis())
	if patch != nil && patch.IncrementAttempts {
		update.AddAttempts(1)
	}

	n, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to transition task: %w", err)
	}
	if n == 0 {
		// CAS failed: distinguish missing task from wrong observed state.
		t, err := getTaskTx(ctx, tx, taskID)
		if err != nil {
			return nil, err
		}
		return nil, &models.IllegalTransitionError{
			TaskID: taskID, From: from, To: to,
			Observed: models.TaskState(t.State),
		}
	}

	t, err := getTaskTx(ctx, tx, taskID)
	if err != nil {
		return nil, err
	}

	// Leaving the active set destroys the lease; commit or rollback also
	// releases the holder's reservations on the task's declared files.
	if models.IsActiveState(from) && !models.IsActiveState(to) {
		holder, err := dropLeaseTx(ctx, tx, taskID)
		if err != nil {
			return nil, err
		}
		if holder != "" && (to == models.StateCommitted || to == models.StateRollback) {
			files := models.DeclaredFiles(t.Payload)
			if err := releaseAgentPathsTx(ctx, tx, s.journal, holder, files); err != nil {
				return nil, err
			}
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
	if _, err := s.journal.appendTx(ctx, tx, taskID, models.TransitionEventKind(to), data); err != nil {
		return nil, err
	}
	return t, nil
}

// Complete settles a VERIFYING task from the recorded evidence of its
// current attempt: every verifier PASS (and at least one verdict) commits
// the task through COMMITTED to DONE; anything else rolls it back, then
// re-queues it READY or buries it DEAD once attempts are exhausted.
func (s *TaskService) Complete(ctx context.Context, taskID, agentID string) (models.Task, error) {
	var final *ent.Task
	err := database.WithTx(ctx, s.client, func(tx *ent.Tx) error {
		t, err := getTaskTx(ctx, tx, taskID)
		if err != nil {
			return err
		}
		if t.State != task.StateVERIFYING {
			return &models.IllegalTransitionError{
				TaskID: taskID, From: models.StateVerifying, To: models.StateCommitted,
				Observed: models.TaskState(t.State),
			}
		}

		l, err := tx.Lease.Query().Where(lease.TaskIDEQ(taskID)).Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return fmt.Errorf("%w: no lease for task %s", models.ErrNotHeldByAgent, taskID)
			}
			return fmt.Errorf("failed to query lease: %w", err)
		}
		if l.AgentID != agentID {
			return fmt.Errorf("%w: task %s is held by %s", models.ErrNotHeldByAgent, taskID, l.AgentID)
		}
		if l.LeaseExpiresAt <= ids.NowMillis() {
			return fmt.Errorf("%w: lease on task %s expired at %d", models.ErrExpired, taskID, l.LeaseExpiresAt)
		}

		pass, verdicts, err := evidenceVerdictTx(ctx, tx, taskID, t.Attempts)
		if err != nil {
			return err
		}

		patch := &models.TransitionPatch{EventData: map[string]any{
			"attempt": t.Attempts, "verdicts": verdicts,
		}}
		if pass {
			if _, err := s.transitionTx(ctx, tx, taskID, models.StateVerifying, models.StateCommitted, agentID, patch); err != nil {
				return err
			}
			final, err = s.transitionTx(ctx, tx, taskID, models.StateCommitted, models.StateDone, agentID, nil)
			return err
		}

		if _, err := s.transitionTx(ctx, tx, taskID, models.StateVerifying, models.StateRollback, agentID, patch); err != nil {
			return err
		}
		if t.Attempts >= t.MaxAttempts {
			final, err = s.transitionTx(ctx, tx, taskID, models.StateRollback, models.StateDead, agentID, &models.TransitionPatch{
				EventData: map[string]any{"attempts": t.Attempts, "max_attempts": t.MaxAttempts},
			})
			return err
		}
		final, err = s.transitionTx(ctx, tx, taskID, models.StateRollback, models.StateReady, agentID, &models.TransitionPatch{
			EventData: map[string]any{"requeued": true, "attempt": t.Attempts},
		})
		return err
	})
	if err != nil {
		return models.Task{}, err
	}

	slog.Info("Task completed", "task_id", taskID, "agent_id", agentID, "state", final.State)
	return taskToModel(final), nil
}

// getTaskTx fetches a task inside an open transaction, mapping absence to
// the shared NotFound sentinel.
func getTaskTx(ctx context.Context, tx *ent.Tx, taskID string) (*ent.Task, error) {
	t, err := tx.Task.Get(ctx, taskID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: task %s", models.ErrNotFound, taskID)
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return t, nil
}

// dropLeaseTx deletes the task's lease row if one exists and returns the
// holding agent id (empty when no lease existed).
func dropLeaseTx(ctx context.Context, tx *ent.Tx, taskID string) (string, error) {
	l, err := tx.Lease.Query().Where(lease.TaskIDEQ(taskID)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", nil
		}
		return "", fmt.Errorf("failed to query lease: %w", err)
	}
	if _, err := tx.Lease.Delete().Where(lease.TaskIDEQ(taskID)).Exec(ctx); err != nil {
		return "", fmt.Errorf("failed to delete lease: %w", err)
	}
	return l.AgentID, nil
}
