package stream

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/openmaf/maf/pkg/models"
)

// subscriberBuffer bounds each subscriber channel. A subscriber that falls
// this far behind starts losing notifications and must catch up from the
// journal.
const subscriberBuffer = 64

// reconnectDelay paces reconnect attempts after the LISTEN connection drops.
const reconnectDelay = 2 * time.Second

// Listener holds one dedicated LISTEN connection and fans incoming journal
// events out to subscribers. LISTEN needs its own connection: NOTIFY
// delivery is per-session and cannot ride the pooled connections the rest
// of the runtime uses.
type Listener struct {
	dsn string

	mu   sync.Mutex
	subs map[chan models.Event]struct{}
}

// NewListener creates a listener for the given connection string.
func NewListener(dsn string) *Listener {
	return &Listener{
		dsn:  dsn,
		subs: make(map[chan models.Event]struct{}),
	}
}

// Subscribe registers a new subscriber. The returned cancel function must
// be called to release it.
func (l *Listener) Subscribe() (<-chan models.Event, func()) {
	ch := make(chan models.Event, subscriberBuffer)
	l.mu.Lock()
	l.subs[ch] = struct{}{}
	l.mu.Unlock()

	return ch, func() {
		l.mu.Lock()
		delete(l.subs, ch)
		l.mu.Unlock()
	}
}

// Run listens until ctx is cancelled, reconnecting after connection loss.
func (l *Listener) Run(ctx context.Context) {
	for {
		if err := l.listen(ctx); err != nil {
			if ctx.Err() != nil {
				return
			}
			slog.Warn("Event listener disconnected; reconnecting", "error", err)
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(reconnectDelay):
		}
	}
}

func (l *Listener) listen(ctx context.Context) error {
	conn, err := pgx.Connect(ctx, l.dsn)
	if err != nil {
		return fmt.Errorf("failed to connect listener: %w", err)
	}
	defer conn.Close(context.Background())

	if _, err := conn.Exec(ctx, "LISTEN "+ChannelName); err != nil {
		return fmt.Errorf("failed to LISTEN: %w", err)
	}
	slog.Info("Event listener connected", "channel", ChannelName)

	for {
		notification, err := conn.WaitForNotification(ctx)
		if err != nil {
			return err
		}

		var ev models.Event
		if err := json.Unmarshal([]byte(notification.Payload), &ev); err != nil {
			slog.Warn("Dropping malformed event notification", "error", err)
			continue
		}
		l.dispatch(ev)
	}
}

// dispatch forwards one event to every subscriber, dropping for slow ones.
func (l *Listener) dispatch(ev models.Event) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for ch := range l.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}
