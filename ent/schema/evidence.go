package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Evidence holds the schema definition for the Evidence entity: one
// verifier verdict per (task, attempt, verifier). Append-once — the unique
// index rejects overwrites.
type Evidence struct {
	ent.Schema
}

// Fields of the Evidence.
func (Evidence) Fields() []ent.Field {
	return []ent.Field{
		field.String("task_id").
			Immutable().
			Comment("FK to tasks (ON DELETE CASCADE, enforced in migration SQL)"),
		field.Int("attempt").
			Immutable(),
		field.String("verifier").
			Immutable(),
		field.Enum("result").
			Values("PASS", "FAIL").
			Immutable(),
		field.JSON("details", map[string]interface{}{}).
			Optional().
			Immutable(),
		field.Int64("recorded_at").
			Immutable(),
	}
}

// Indexes of the Evidence.
func (Evidence) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id", "attempt", "verifier").
			Unique(),
		index.Fields("task_id", "attempt"),
	}
}

// Annotations pin the table name to the singular "evidence".
func (Evidence) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "evidence"},
	}
}
