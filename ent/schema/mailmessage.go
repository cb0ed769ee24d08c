package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MailMessage holds the schema definition for the MailMessage entity: one
// escalation envelope on a named channel. The autoincrement id doubles as
// the per-channel monotonic delivery cursor.
type MailMessage struct {
	ent.Schema
}

// Fields of the MailMessage.
func (MailMessage) Fields() []ent.Field {
	return []ent.Field{
		// Implicit autoincrement int id.
		field.String("channel").
			Immutable(),
		field.String("kind").
			Immutable(),
		field.String("from_agent").
			Immutable(),
		field.Int64("created_at").
			Immutable(),
		field.JSON("payload", map[string]interface{}{}).
			Optional().
			Immutable(),
		field.Bool("read").
			Default(false),
	}
}

// Indexes of the MailMessage.
func (MailMessage) Indexes() []ent.Index {
	return []ent.Index{
		// Fetch path: unread messages on a channel in arrival order.
		index.Fields("channel", "read"),
		index.Fields("channel", "created_at"),
	}
}
