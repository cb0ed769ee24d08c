package litestore

import (
	"context"
	"fmt"
	"sort"

	"github.com/openmaf/maf/pkg/ids"
	"github.com/openmaf/maf/pkg/models"
)

// appendEvent appends one journal row. Callers hold s.mu via mutate.
func appendEvent(doc *document, taskID, kind string, data map[string]any) models.Event {
	ev := models.Event{
		ID:     doc.NextEventID,
		TaskID: taskID,
		TS:     ids.NowMillis(),
		Kind:   kind,
		Data:   data,
	}
	doc.NextEventID++
	doc.Events = append(doc.Events, ev)
	return ev
}

// AppendEvent journals one event.
func (s *Store) AppendEvent(ctx context.Context, taskID, kind string, data map[string]any) (models.Event, error) {
	var ev models.Event
	err := s.mutate(func(doc *document) error {
		ev = appendEvent(doc, taskID, kind, data)
		return nil
	})
	return ev, err
}

// QueryEvents reads journal rows newest-first, capped at EventQueryCap.
func (s *Store) QueryEvents(ctx context.Context, q models.EventQuery) ([]models.Event, error) {
	limit := q.Recent
	if limit <= 0 || limit > models.EventQueryCap {
		limit = models.EventQueryCap
	}
	kinds := map[string]bool{}
	for _, k := range q.Kinds {
		kinds[k] = true
	}

	var out []models.Event
	err := s.view(func(doc *document) error {
		for i := len(doc.Events) - 1; i >= 0 && len(out) < limit; i-- {
			ev := doc.Events[i]
			if q.TaskID != "" && ev.TaskID != q.TaskID {
				continue
			}
			if len(kinds) > 0 && !kinds[ev.Kind] {
				continue
			}
			if q.Since > 0 && ev.TS <= q.Since {
				continue
			}
			out = append(out, ev)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Events append in id order with a monotonic clock, so the reverse walk
	// already yields ts desc, id desc. Keep the sort as a guard against a
	// document written by an older runtime.
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].TS != out[j].TS {
			return out[i].TS > out[j].TS
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

// RecordEvidence appends one verifier verdict for the task's current
// attempt. The (task, attempt, verifier) triple is append-once.
func (s *Store) RecordEvidence(ctx context.Context, ev models.Evidence) error {
	if ev.TaskID == "" || ev.Verifier == "" {
		return fmt.Errorf("%w: task id and verifier are required", models.ErrInvalidArgument)
	}
	if ev.Result != models.ResultPass && ev.Result != models.ResultFail {
		return fmt.Errorf("%w: result must be PASS or FAIL", models.ErrInvalidArgument)
	}

	return s.mutate(func(doc *document) error {
		t, ok := doc.Tasks[ev.TaskID]
		if !ok {
			return fmt.Errorf("%w: task %s", models.ErrNotFound, ev.TaskID)
		}
		if ev.Attempt != t.Attempts {
			return fmt.Errorf("%w: evidence attempt %d does not match current attempt %d",
				models.ErrInvalidArgument, ev.Attempt, t.Attempts)
		}
		for _, existing := range doc.Evidence {
			if existing.TaskID == ev.TaskID && existing.Attempt == ev.Attempt && existing.Verifier == ev.Verifier {
				return fmt.Errorf("%w: evidence for task %s attempt %d verifier %s",
					models.ErrAlreadyExists, ev.TaskID, ev.Attempt, ev.Verifier)
			}
		}

		ev.Details = s.masker.Map(ev.Details)
		doc.Evidence = append(doc.Evidence, ev)
		appendEvent(doc, ev.TaskID, models.EventEvidenceRecorded, map[string]any{
			"attempt":  ev.Attempt,
			"verifier": ev.Verifier,
			"result":   string(ev.Result),
		})
		return nil
	})
}

// EvidenceForAttempt returns every verdict recorded for one task attempt.
func (s *Store) EvidenceForAttempt(ctx context.Context, taskID string, attempt int) ([]models.Evidence, error) {
	var out []models.Evidence
	err := s.view(func(doc *document) error {
		for _, ev := range doc.Evidence {
			if ev.TaskID == taskID && ev.Attempt == attempt {
				out = append(out, ev)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Verifier < out[j].Verifier })
	return out, nil
}

// evidenceVerdict decides one attempt: pass requires at least one verdict
// and no FAIL. Callers hold s.mu.
func evidenceVerdict(doc *document, taskID string, attempt int) (pass bool, count int) {
	pass = true
	for _, ev := range doc.Evidence {
		if ev.TaskID != taskID || ev.Attempt != attempt {
			continue
		}
		count++
		if ev.Result != models.ResultPass {
			pass = false
		}
	}
	if count == 0 {
		return false, 0
	}
	return pass, count
}
