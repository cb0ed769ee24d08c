package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// FileReservation holds the schema definition for the FileReservation
// entity: a time-bounded exclusive right to modify one file path.
//
// At most one status='active' row may exist per file_path. That constraint
// is a partial unique index PostgreSQL-side — Ent cannot express it, so it
// is created in the baseline migration (see pkg/database/migrations).
type FileReservation struct {
	ent.Schema
}

// Fields of the FileReservation.
func (FileReservation) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("reservation_id").
			Unique().
			Immutable(),
		field.String("file_path").
			Immutable(),
		field.String("agent_id"),
		field.Int64("lease_expires_at"),
		field.Enum("status").
			Values("active", "expired", "released").
			Default("active"),
		field.String("lease_reason").
			Optional(),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
		field.Int64("created_at").
			Immutable(),
	}
}

// Indexes of the FileReservation.
func (FileReservation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("file_path", "status"),
		index.Fields("agent_id", "status"),
		index.Fields("status", "lease_expires_at"),
	}
}
