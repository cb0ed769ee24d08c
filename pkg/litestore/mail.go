package litestore

import (
	"context"
	"fmt"

	"github.com/openmaf/maf/pkg/ids"
	"github.com/openmaf/maf/pkg/models"
)

// RegisterChannels adds channels to the registry. Idempotent.
func (s *Store) RegisterChannels(names ...string) {
	s.chanMu.Lock()
	defer s.chanMu.Unlock()
	for _, n := range names {
		if n != "" {
			s.channels[n] = true
		}
	}
}

// Channels returns the registered channel names.
func (s *Store) Channels() []string {
	s.chanMu.RLock()
	defer s.chanMu.RUnlock()
	out := make([]string, 0, len(s.channels))
	for n := range s.channels {
		out = append(out, n)
	}
	return out
}

func (s *Store) knownChannel(channel string) bool {
	s.chanMu.RLock()
	defer s.chanMu.RUnlock()
	return s.channels[channel]
}

// Send appends one envelope to a channel and journals ESCALATION_SENT.
func (s *Store) Send(ctx context.Context, channel string, kind models.EnvelopeKind, fromAgent string, payload map[string]any) (models.Envelope, error) {
	if !s.knownChannel(channel) {
		return models.Envelope{}, fmt.Errorf("%w: %s", models.ErrUnknownChannel, channel)
	}
	if !models.IsKnownEnvelopeKind(kind) {
		return models.Envelope{}, fmt.Errorf("%w: unrecognized envelope kind %q", models.ErrInvalidArgument, kind)
	}
	if fromAgent == "" {
		return models.Envelope{}, fmt.Errorf("%w: from agent is required", models.ErrInvalidArgument)
	}

	var out models.Envelope
	err := s.mutate(func(doc *document) error {
		env := models.Envelope{
			ID:        doc.NextMailID,
			Kind:      kind,
			FromAgent: fromAgent,
			Channel:   channel,
			CreatedAt: ids.NowMillis(),
			Payload:   s.masker.Map(payload),
		}
		doc.NextMailID++
		doc.Mail = append(doc.Mail, env)
		appendEvent(doc, "", models.EventEscalationSent, map[string]any{
			"channel":    channel,
			"kind":       string(kind),
			"from_agent": fromAgent,
			"message_id": env.ID,
		})
		out = env
		return nil
	})
	return out, err
}

// Fetch returns a channel's envelopes in arrival order, starting after the
// sinceID cursor when one is given, unread only unless includeRead is set.
func (s *Store) Fetch(ctx context.Context, channel string, sinceID int64, includeRead bool, limit int) ([]models.Envelope, error) {
	if !s.knownChannel(channel) {
		return nil, fmt.Errorf("%w: %s", models.ErrUnknownChannel, channel)
	}
	if limit <= 0 || limit > models.EventQueryCap {
		limit = models.EventQueryCap
	}

	var out []models.Envelope
	err := s.view(func(doc *document) error {
		for _, m := range doc.Mail {
			if m.Channel != channel || m.ID <= sinceID {
				continue
			}
			if !includeRead && m.Read {
				continue
			}
			out = append(out, m)
			if len(out) >= limit {
				break
			}
		}
		return nil
	})
	return out, err
}

// MarkRead acknowledges envelopes on a channel, returning how many were
// newly acknowledged.
func (s *Store) MarkRead(ctx context.Context, channel string, messageIDs []int64) (int, error) {
	if !s.knownChannel(channel) {
		return 0, fmt.Errorf("%w: %s", models.ErrUnknownChannel, channel)
	}
	if len(messageIDs) == 0 {
		return 0, nil
	}
	want := map[int64]bool{}
	for _, id := range messageIDs {
		want[id] = true
	}

	n := 0
	err := s.mutate(func(doc *document) error {
		for i := range doc.Mail {
			m := &doc.Mail[i]
			if m.Channel != channel || m.Read || !want[m.ID] {
				continue
			}
			m.Read = true
			n++
		}
		if n > 0 {
			appendEvent(doc, "", models.EventEscalationRead, map[string]any{
				"channel": channel,
				"count":   n,
			})
		}
		return nil
	})
	return n, err
}

// Unread returns the number of unread envelopes on a channel.
func (s *Store) Unread(ctx context.Context, channel string) (int, error) {
	if !s.knownChannel(channel) {
		return 0, fmt.Errorf("%w: %s", models.ErrUnknownChannel, channel)
	}
	n := 0
	err := s.view(func(doc *document) error {
		for _, m := range doc.Mail {
			if m.Channel == channel && !m.Read {
				n++
			}
		}
		return nil
	})
	return n, err
}
