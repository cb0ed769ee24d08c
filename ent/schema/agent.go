package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Agent holds the schema definition for the Agent entity. Agents register
// themselves on first heartbeat and are never deleted (audit retention).
type Agent struct {
	ent.Schema
}

// Fields of the Agent.
func (Agent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("agent_id").
			Unique().
			Immutable(),
		field.String("name").
			Optional(),
		field.Enum("type").
			Values("coordinator", "worker", "verifier", "escalation_manager").
			Default("worker"),
		field.Enum("status").
			Values("active", "inactive", "maintenance", "error").
			Default("active"),
		field.Int64("last_seen").
			Comment("Monotonically non-decreasing; heartbeats only move it forward"),
		field.JSON("capabilities", []string{}).
			Optional(),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
	}
}

// Indexes of the Agent.
func (Agent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "last_seen"),
	}
}
