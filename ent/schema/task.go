package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Task holds the schema definition for the Task entity: one unit of work
// with a state-machine lifecycle, an opaque payload, and a priority.
type Task struct {
	ent.Schema
}

// Fields of the Task.
func (Task) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("task_id").
			Unique().
			Immutable(),
		field.Enum("state").
			Values("READY", "LEASED", "RUNNING", "VERIFYING", "COMMITTED", "ROLLBACK", "DONE", "DEAD").
			Default("READY"),
		field.Int("priority").
			Default(100).
			Comment("Lower = sooner"),
		field.JSON("payload", map[string]interface{}{}).
			Optional().
			Comment("Opaque work description; declared files under the 'files' key"),
		field.Int64("created_at").
			Immutable().
			Comment("Milliseconds since epoch"),
		field.Int64("updated_at"),
		field.Int("attempts").
			Default(0),
		field.Int("max_attempts").
			Default(3),
		field.Int64("token_budget").
			Optional().
			Default(0),
		field.Int64("cost_budget_cents").
			Optional().
			Default(0),
		field.String("policy_label").
			Optional().
			Comment("Scheduling/verification policy selector"),
	}
}

// Indexes of the Task.
func (Task) Indexes() []ent.Index {
	return []ent.Index{
		// Claim candidate scan: READY tasks in priority order.
		index.Fields("state", "priority", "created_at"),
		index.Fields("state"),
		index.Fields("policy_label"),
	}
}
