// Package stream pushes committed journal events to live subscribers over
// PostgreSQL NOTIFY. The journal rows are the source of truth; the stream
// is a cache-warming hint and consumers must tolerate missed wakeups by
// re-reading the journal.
package stream

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"

	"github.com/openmaf/maf/pkg/models"
)

// ChannelName is the NOTIFY channel the runtime publishes journal events on.
const ChannelName = "maf_events"

// Publisher broadcasts journal events with pg_notify. It implements the
// journal's Broadcaster hook and is installed after the durable backend
// opens.
type Publisher struct {
	db *sql.DB
}

// NewPublisher creates a publisher over the runtime's connection pool.
func NewPublisher(db *sql.DB) *Publisher {
	return &Publisher{db: db}
}

// Publish sends one committed event to the NOTIFY channel. Failures are
// logged and dropped: the event is already durable in the journal, and a
// listener that missed it catches up from there.
func (p *Publisher) Publish(ctx context.Context, ev models.Event) {
	payload, err := json.Marshal(ev)
	if err != nil {
		slog.Error("Failed to encode event for stream", "kind", ev.Kind, "error", err)
		return
	}

	if _, err := p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", ChannelName, string(payload)); err != nil {
		slog.Warn("Failed to publish event notification", "kind", ev.Kind, "error", err)
	}
}
