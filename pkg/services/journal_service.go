package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/openmaf/maf/ent"
	"github.com/openmaf/maf/ent/event"
	"github.com/openmaf/maf/ent/evidence"
	"github.com/openmaf/maf/pkg/database"
	"github.com/openmaf/maf/pkg/ids"
	"github.com/openmaf/maf/pkg/masking"
	"github.com/openmaf/maf/pkg/models"
)

// Broadcaster receives journal events after they have been durably
// committed. Implementations must not block; the journal fires and forgets.
type Broadcaster interface {
	Publish(ctx context.Context, ev models.Event)
}

// JournalService owns the append-only event journal and the per-attempt
// evidence ledger. Every state-changing service writes its events through
// appendTx so the event commits atomically with the mutation it describes.
type JournalService struct {
	client      *ent.Client
	broadcaster Broadcaster
	masker      *masking.Masker
}

// NewJournalService creates a new journal service.
func NewJournalService(client *ent.Client) *JournalService {
	return &JournalService{client: client, masker: masking.New()}
}

// SetBroadcaster installs an optional post-commit event publisher.
func (s *JournalService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// appendTx writes one journal row inside an open transaction. taskID may be
// empty for runtime-scoped events.
func (s *JournalService) appendTx(ctx context.Context, tx *ent.Tx, taskID, kind string, data map[string]any) (*ent.Event, error) {
	create := tx.Event.Create().
		SetTs(ids.NowMillis()).
		SetKind(kind)
	if taskID != "" {
		create.SetTaskID(taskID)
	}
	if len(data) > 0 {
		create.SetData(data)
	}
	ev, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to append %s event: %w", kind, err)
	}

	// Broadcast only once the enclosing transaction commits; a rolled-back
	// mutation must never reach the stream.
	out := eventToModel(ev)
	tx.OnCommit(func(next ent.Committer) ent.Committer {
		return ent.CommitFunc(func(ctx context.Context, tx *ent.Tx) error {
			if err := next.Commit(ctx, tx); err != nil {
				return err
			}
			s.broadcast(ctx, out)
			return nil
		})
	})
	return ev, nil
}

// Append writes one journal row in its own transaction. Services that
// mutate state should prefer appendTx inside their own transaction; Append
// is for standalone events (monitor samples, sweeps).
func (s *JournalService) Append(ctx context.Context, taskID, kind string, data map[string]any) (models.Event, error) {
	var ev *ent.Event
	err := database.WithTx(ctx, s.client, func(tx *ent.Tx) error {
		var txErr error
		ev, txErr = s.appendTx(ctx, tx, taskID, kind, data)
		return txErr
	})
	if err != nil {
		return models.Event{}, err
	}
	return eventToModel(ev), nil
}

// broadcast forwards committed events to the installed broadcaster, if any.
func (s *JournalService) broadcast(ctx context.Context, ev models.Event) {
	if s.broadcaster != nil {
		s.broadcaster.Publish(ctx, ev)
	}
}

// Query reads journal rows newest-first (ts desc, id desc as tiebreak).
// Results are capped at EventQueryCap regardless of the requested count.
func (s *JournalService) Query(ctx context.Context, q models.EventQuery) ([]models.Event, error) {
	limit := q.Recent
	if limit <= 0 || limit > models.EventQueryCap {
		limit = models.EventQueryCap
	}

	query := s.client.Event.Query()
	if q.TaskID != "" {
		query = query.Where(event.TaskIDEQ(q.TaskID))
	}
	if len(q.Kinds) > 0 {
		query = query.Where(event.KindIn(q.Kinds...))
	}
	if q.Since > 0 {
		query = query.Where(event.TsGT(q.Since))
	}

	rows, err := query.
		Order(ent.Desc(event.FieldTs), ent.Desc(event.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal: %w", err)
	}
	return eventsToModels(rows), nil
}

// RecordEvidence appends one verifier verdict for the task's current
// attempt. The (task, attempt, verifier) triple is append-once: a second
// write for the same triple fails with AlreadyExists, and a verdict for any
// attempt other than the task's current one is rejected outright.
func (s *JournalService) RecordEvidence(ctx context.Context, ev models.Evidence) error {
	if ev.TaskID == "" || ev.Verifier == "" {
		return fmt.Errorf("%w: task id and verifier are required", models.ErrInvalidArgument)
	}
	if ev.Result != models.ResultPass && ev.Result != models.ResultFail {
		return fmt.Errorf("%w: result must be PASS or FAIL", models.ErrInvalidArgument)
	}

	err := database.WithTx(ctx, s.client, func(tx *ent.Tx) error {
		t, err := getTaskTx(ctx, tx, ev.TaskID)
		if err != nil {
			return err
		}
		if ev.Attempt != t.Attempts {
			return fmt.Errorf("%w: evidence attempt %d does not match current attempt %d",
				models.ErrInvalidArgument, ev.Attempt, t.Attempts)
		}

		create := tx.Evidence.Create().
			SetTaskID(ev.TaskID).
			SetAttempt(ev.Attempt).
			SetVerifier(ev.Verifier).
			SetResult(evidence.Result(ev.Result)).
			SetRecordedAt(ids.NowMillis())
		if len(ev.Details) > 0 {
			// Verifier details often embed raw tool output; scrub
			// credential-shaped strings before they become readable
			// by every agent.
			create.SetDetails(s.masker.Map(ev.Details))
		}
		if _, err := create.Save(ctx); err != nil {
			if ent.IsConstraintError(err) {
				return fmt.Errorf("%w: evidence for task %s attempt %d verifier %s",
					models.ErrAlreadyExists, ev.TaskID, ev.Attempt, ev.Verifier)
			}
			return fmt.Errorf("failed to record evidence: %w", err)
		}

		_, err = s.appendTx(ctx, tx, ev.TaskID, models.EventEvidenceRecorded, map[string]any{
			"attempt":  ev.Attempt,
			"verifier": ev.Verifier,
			"result":   string(ev.Result),
		})
		return err
	})
	if err != nil {
		return err
	}

	slog.Info("Evidence recorded",
		"task_id", ev.TaskID, "attempt", ev.Attempt,
		"verifier", ev.Verifier, "result", ev.Result)
	return nil
}

// EvidenceForAttempt returns every verdict recorded for one task attempt.
func (s *JournalService) EvidenceForAttempt(ctx context.Context, taskID string, attempt int) ([]models.Evidence, error) {
	rows, err := s.client.Evidence.Query().
		Where(evidence.TaskIDEQ(taskID), evidence.AttemptEQ(attempt)).
		Order(ent.Asc(evidence.FieldVerifier)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query evidence: %w", err)
	}

	out := make([]models.Evidence, 0, len(rows))
	for _, r := range rows {
		out = append(out, models.Evidence{
			TaskID:   r.TaskID,
			Attempt:  r.Attempt,
			Verifier: r.Verifier,
			Result:   models.VerifierResult(r.Result),
			Details:  r.Details,
		})
	}
	return out, nil
}

// evidenceVerdictTx decides the outcome of the task's current attempt:
// pass requires at least one verdict and no FAIL.
func evidenceVerdictTx(ctx context.Context, tx *ent.Tx, taskID string, attempt int) (pass bool, count int, err error) {
	rows, err := tx.Evidence.Query().
		Where(evidence.TaskIDEQ(taskID), evidence.AttemptEQ(attempt)).
		All(ctx)
	if err != nil {
		return false, 0, fmt.Errorf("failed to query evidence: %w", err)
	}
	if len(rows) == 0 {
		return false, 0, nil
	}
	for _, r := range rows {
		if r.Result != evidence.ResultPASS {
			return false, len(rows), nil
		}
	}
	return true, len(rows), nil
}
