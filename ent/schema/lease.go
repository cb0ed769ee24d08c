package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Lease holds the schema definition for the task-lease entity. The unique
// task_id column is what makes two concurrent claims on one task impossible.
type Lease struct {
	ent.Schema
}

// Fields of the Lease.
func (Lease) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("lease_id").
			Unique().
			Immutable(),
		field.String("task_id").
			Unique().
			Immutable().
			Comment("FK to tasks (ON DELETE CASCADE, enforced in migration SQL)"),
		field.String("agent_id"),
		field.Int64("lease_expires_at").
			Comment("Milliseconds since epoch; now >= this means expired"),
		field.Int("attempt").
			Default(0).
			Comment("Task attempt this lease belongs to"),
	}
}

// Indexes of the Lease.
func (Lease) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("agent_id"),
		index.Fields("lease_expires_at"),
	}
}
