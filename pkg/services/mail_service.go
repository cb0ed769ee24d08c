package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/openmaf/maf/ent"
	"github.com/openmaf/maf/ent/mailmessage"
	"github.com/openmaf/maf/pkg/database"
	"github.com/openmaf/maf/pkg/ids"
	"github.com/openmaf/maf/pkg/masking"
	"github.com/openmaf/maf/pkg/models"
)

// MailService owns the durable escalation channels. Channels are registered
// at bootstrap; sending to an unregistered channel fails. Messages survive
// restarts and are delivered at least once: consumers fetch and then mark
// read, and a crash between the two re-delivers.
type MailService struct {
	client  *ent.Client
	journal *JournalService
	masker  *masking.Masker

	mu       sync.RWMutex
	channels map[string]bool
}

// NewMailService creates a new mail service with the default channel
// registered.
func NewMailService(client *ent.Client, journal *JournalService) *MailService {
	return &MailService{
		client:   client,
		journal:  journal,
		masker:   masking.New(),
		channels: map[string]bool{models.DefaultChannel: true},
	}
}

// RegisterChannels adds channels to the registry. Registration is
// idempotent.
func (s *MailService) RegisterChannels(names ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, n := range names {
		if n != "" {
			s.channels[n] = true
		}
	}
}

// Channels returns the registered channel names.
func (s *MailService) Channels() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.channels))
	for n := range s.channels {
		out = append(out, n)
	}
	return out
}

// known reports whether a channel is registered.
func (s *MailService) known(channel string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.channels[channel]
}

// SendRequest is the input to Send.
type SendRequest struct {
	Kind      models.EnvelopeKind
	FromAgent string
	Payload   map[string]any
}

// Send appends one envelope to a channel and journals ESCALATION_SENT.
// Unknown channels and unrecognized envelope kinds are rejected.
func (s *MailService) Send(ctx context.Context, channel string, req SendRequest) (models.Envelope, error) {
	if !s.known(channel) {
		return models.Envelope{}, fmt.Errorf("%w: %s", models.ErrUnknownChannel, channel)
	}
	if !models.IsKnownEnvelopeKind(req.Kind) {
		return models.Envelope{}, fmt.Errorf("%w: unrecognized envelope kind %q", models.ErrInvalidArgument, req.Kind)
	}
	if req.FromAgent == "" {
		return models.Envelope{}, fmt.Errorf("%w: from agent is required", models.ErrInvalidArgument)
	}

	var msg *ent.MailMessage
	err := database.WithTx(ctx, s.client, func(tx *ent.Tx) error {
		create := tx.MailMessage.Create().
			SetChannel(channel).
			SetKind(string(req.Kind)).
			SetFromAgent(req.FromAgent).
			SetCreatedAt(ids.NowMillis())
		if len(req.Payload) > 0 {
			// Channels are readable by every agent; pasted secrets
			// must not survive the write.
			create.SetPayload(s.masker.Map(req.Payload))
		}

		var err error
		msg, err = create.Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to send envelope: %w", err)
		}

		_, err = s.journal.appendTx(ctx, tx, "", models.EventEscalationSent, map[string]any{
			"channel":    channel,
			"kind":       string(req.Kind),
			"from_agent": req.FromAgent,
			"message_id": msg.ID,
		})
		return err
	})
	if err != nil {
		return models.Envelope{}, err
	}

	slog.Info("Envelope sent", "channel", channel, "kind", req.Kind, "from_agent", req.FromAgent, "message_id", msg.ID)
	return envelopeToModel(msg), nil
}

// Fetch returns a channel's envelopes in arrival order, starting after the
// sinceID cursor when one is given. By default only unread messages are
// returned; includeRead widens to everything retained.
func (s *MailService) Fetch(ctx context.Context, channel string, sinceID int64, includeRead bool, limit int) ([]models.Envelope, error) {
	if !s.known(channel) {
		return nil, fmt.Errorf("%w: %s", models.ErrUnknownChannel, channel)
	}
	if limit <= 0 || limit > models.EventQueryCap {
		limit = models.EventQueryCap
	}

	query := s.client.MailMessage.Query().
		Where(mailmessage.ChannelEQ(channel))
	if sinceID > 0 {
		query = query.Where(mailmessage.IDGT(int(sinceID)))
	}
	if !includeRead {
		query = query.Where(mailmessage.ReadEQ(false))
	}

	rows, err := query.
		Order(ent.Asc(mailmessage.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch envelopes: %w", err)
	}

	out := make([]models.Envelope, 0, len(rows))
	for _, m := range rows {
		out = append(out, envelopeToModel(m))
	}
	return out, nil
}

// MarkRead acknowledges envelopes on a channel. Already-read and unknown
// ids are skipped; the count of newly acknowledged envelopes is returned.
func (s *MailService) MarkRead(ctx context.Context, channel string, messageIDs []int64) (int, error) {
	if !s.known(channel) {
		return 0, fmt.Errorf("%w: %s", models.ErrUnknownChannel, channel)
	}
	if len(messageIDs) == 0 {
		return 0, nil
	}

	intIDs := make([]int, 0, len(messageIDs))
	for _, id := range messageIDs {
		intIDs = append(intIDs, int(id))
	}

	var n int
	err := database.WithTx(ctx, s.client, func(tx *ent.Tx) error {
		var err error
		n, err = tx.MailMessage.Update().
			Where(
				mailmessage.IDIn(intIDs...),
				mailmessage.ChannelEQ(channel),
				mailmessage.ReadEQ(false),
			).
			SetRead(true).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to mark envelopes read: %w", err)
		}
		if n == 0 {
			return nil
		}
		_, err = s.journal.appendTx(ctx, tx, "", models.EventEscalationRead, map[string]any{
			"channel": channel,
			"count":   n,
		})
		return err
	})
	return n, err
}

// Unread returns the number of unread envelopes on a channel.
func (s *MailService) Unread(ctx context.Context, channel string) (int, error) {
	if !s.known(channel) {
		return 0, fmt.Errorf("%w: %s", models.ErrUnknownChannel, channel)
	}
	n, err := s.client.MailMessage.Query().
		Where(mailmessage.ChannelEQ(channel), mailmessage.ReadEQ(false)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread envelopes: %w", err)
	}
	return n, nil
}
