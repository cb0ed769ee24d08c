package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReservationConflict holds the schema definition for the
// ReservationConflict entity: the audit record of two agents contending
// for the same file path.
type ReservationConflict struct {
	ent.Schema
}

// Fields of the ReservationConflict.
func (ReservationConflict) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("conflict_id").
			Unique().
			Immutable(),
		field.String("file_path").
			Immutable(),
		field.String("conflicting_agent").
			Immutable(),
		field.String("existing_agent").
			Immutable(),
		field.String("conflict_type").
			Immutable().
			Comment("claim | pre_commit"),
		field.Enum("severity").
			Values("low", "medium", "high", "critical").
			Default("medium"),
		field.String("status").
			Default("open"),
		field.Int64("detected_at").
			Immutable(),
		field.Int64("resolved_at").
			Optional(),
		field.String("resolution_strategy").
			Optional(),
		field.String("evidence_ref").
			Optional(),
	}
}

// Indexes of the ReservationConflict.
func (ReservationConflict) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("file_path"),
		index.Fields("status", "detected_at"),
	}
}
