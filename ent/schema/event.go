package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Event holds the schema definition for the journal Event entity.
// Append-only: rows are never updated or deleted under normal operation.
type Event struct {
	ent.Schema
}

// Fields of the Event.
func (Event) Fields() []ent.Field {
	return []ent.Field{
		// Implicit autoincrement int id.
		field.String("task_id").
			Optional().
			Immutable().
			Comment("Empty for runtime-scoped events (fallback, sweeps, monitor samples)"),
		field.Int64("ts").
			Immutable(),
		field.String("kind").
			Immutable(),
		field.JSON("data", map[string]interface{}{}).
			Optional().
			Immutable(),
	}
}

// Indexes of the Event.
func (Event) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id"),
		index.Fields("kind"),
		index.Fields("ts"),
	}
}
