// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentsColumns holds the columns for the "agents" table.
	AgentsColumns = []*schema.Column{
		{Name: "agent_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString, Nullable: true},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"coordinator", "worker", "verifier", "escalation_manager"}, Default: "worker"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "inactive", "maintenance", "error"}, Default: "active"},
		{Name: "last_seen", Type: field.TypeInt64},
		{Name: "capabilities", Type: field.TypeJSON, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
	}
	// AgentsTable holds the schema information for the "agents" table.
	AgentsTable = &schema.Table{
		Name:       "agents",
		Columns:    AgentsColumns,
		PrimaryKey: []*schema.Column{AgentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "agent_status_last_seen",
				Unique:  false,
				Columns: []*schema.Column{AgentsColumns[3], AgentsColumns[4]},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "task_id", Type: field.TypeString, Nullable: true},
		{Name: "ts", Type: field.TypeInt64},
		{Name: "kind", Type: field.TypeString},
		{Name: "data", Type: field.TypeJSON, Nullable: true},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "event_task_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[1]},
			},
			{
				Name:    "event_kind",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[3]},
			},
			{
				Name:    "event_ts",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[2]},
			},
		},
	}
	// EvidenceColumns holds the columns for the "evidence" table.
	EvidenceColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "task_id", Type: field.TypeString},
		{Name: "attempt", Type: field.TypeInt},
		{Name: "verifier", Type: field.TypeString},
		{Name: "result", Type: field.TypeEnum, Enums: []string{"PASS", "FAIL"}},
		{Name: "details", Type: field.TypeJSON, Nullable: true},
		{Name: "recorded_at", Type: field.TypeInt64},
	}
	// EvidenceTable holds the schema information for the "evidence" table.
	EvidenceTable = &schema.Table{
		Name:       "evidence",
		Columns:    EvidenceColumns,
		PrimaryKey: []*schema.Column{EvidenceColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "evidence_task_id_attempt_verifier",
				Unique:  true,
				Columns: []*schema.Column{EvidenceColumns[1], EvidenceColumns[2], EvidenceColumns[3]},
			},
			{
				Name:    "evidence_task_id_attempt",
				Unique:  false,
				Columns: []*schema.Column{EvidenceColumns[1], EvidenceColumns[2]},
			},
		},
	}
	// FileReservationsColumns holds the columns for the "file_reservations" table.
	FileReservationsColumns = []*schema.Column{
		{Name: "reservation_id", Type: field.TypeString, Unique: true},
		{Name: "file_path", Type: field.TypeString},
		{Name: "agent_id", Type: field.TypeString},
		{Name: "lease_expires_at", Type: field.TypeInt64},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "expired", "released"}, Default: "active"},
		{Name: "lease_reason", Type: field.TypeString, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeInt64},
	}
	// FileReservationsTable holds the schema information for the "file_reservations" table.
	FileReservationsTable = &schema.Table{
		Name:       "file_reservations",
		Columns:    FileReservationsColumns,
		PrimaryKey: []*schema.Column{FileReservationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "filereservation_file_path_status",
				Unique:  false,
				Columns: []*schema.Column{FileReservationsColumns[1], FileReservationsColumns[4]},
			},
			{
				Name:    "filereservation_agent_id_status",
				Unique:  false,
				Columns: []*schema.Column{FileReservationsColumns[2], FileReservationsColumns[4]},
			},
			{
				Name:    "filereservation_status_lease_expires_at",
				Unique:  false,
				Columns: []*schema.Column{FileReservationsColumns[4], FileReservationsColumns[3]},
			},
		},
	}
	// LeasesColumns holds the columns for the "leases" table.
	LeasesColumns = []*schema.Column{
		{Name: "lease_id", Type: field.TypeString, Unique: true},
		{Name: "task_id", Type: field.TypeString, Unique: true},
		{Name: "agent_id", Type: field.TypeString},
		{Name: "lease_expires_at", Type: field.TypeInt64},
		{Name: "attempt", Type: field.TypeInt, Default: 0},
	}
	// LeasesTable holds the schema information for the "leases" table.
	LeasesTable = &schema.Table{
		Name:       "leases",
		Columns:    LeasesColumns,
		PrimaryKey: []*schema.Column{LeasesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "lease_agent_id",
				Unique:  false,
				Columns: []*schema.Column{LeasesColumns[2]},
			},
			{
				Name:    "lease_lease_expires_at",
				Unique:  false,
				Columns: []*schema.Column{LeasesColumns[3]},
			},
		},
	}
	// MailMessagesColumns holds the columns for the "mail_messages" table.
	MailMessagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "channel", Type: field.TypeString},
		{Name: "kind", Type: field.TypeString},
		{Name: "from_agent", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeInt64},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "read", Type: field.TypeBool, Default: false},
	}
	// MailMessagesTable holds the schema information for the "mail_messages" table.
	MailMessagesTable = &schema.Table{
		Name:       "mail_messages",
		Columns:    MailMessagesColumns,
		PrimaryKey: []*schema.Column{MailMessagesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "mailmessage_channel_read",
				Unique:  false,
				Columns: []*schema.Column{MailMessagesColumns[1], MailMessagesColumns[6]},
			},
			{
				Name:    "mailmessage_channel_created_at",
				Unique:  false,
				Columns: []*schema.Column{MailMessagesColumns[1], MailMessagesColumns[4]},
			},
		},
	}
	// ReservationConflictsColumns holds the columns for the "reservation_conflicts" table.
	ReservationConflictsColumns = []*schema.Column{
		{Name: "conflict_id", Type: field.TypeString, Unique: true},
		{Name: "file_path", Type: field.TypeString},
		{Name: "conflicting_agent", Type: field.TypeString},
		{Name: "existing_agent", Type: field.TypeString},
		{Name: "conflict_type", Type: field.TypeString},
		{Name: "severity", Type: field.TypeEnum, Enums: []string{"low", "medium", "high", "critical"}, Default: "medium"},
		{Name: "status", Type: field.TypeString, Default: "open"},
		{Name: "detected_at", Type: field.TypeInt64},
		{Name: "resolved_at", Type: field.TypeInt64, Nullable: true},
		{Name: "resolution_strategy", Type: field.TypeString, Nullable: true},
		{Name: "evidence_ref", Type: field.TypeString, Nullable: true},
	}
	// ReservationConflictsTable holds the schema information for the "reservation_conflicts" table.
	ReservationConflictsTable = &schema.Table{
		Name:       "reservation_conflicts",
		Columns:    ReservationConflictsColumns,
		PrimaryKey: []*schema.Column{ReservationConflictsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "reservationconflict_file_path",
				Unique:  false,
				Columns: []*schema.Column{ReservationConflictsColumns[1]},
			},
			{
				Name:    "reservationconflict_status_detected_at",
				Unique:  false,
				Columns: []*schema.Column{ReservationConflictsColumns[6], ReservationConflictsColumns[7]},
			},
		},
	}
	// TasksColumns holds the columns for the "tasks" table.
	TasksColumns = []*schema.Column{
		{Name: "task_id", Type: field.TypeString, Unique: true},
		{Name: "state", Type: field.TypeEnum, Enums: []string{"READY", "LEASED", "RUNNING", "VERIFYING", "COMMITTED", "ROLLBACK", "DONE", "DEAD"}, Default: "READY"},
		{Name: "priority", Type: field.TypeInt, Default: 100},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeInt64},
		{Name: "updated_at", Type: field.TypeInt64},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "max_attempts", Type: field.TypeInt, Default: 3},
		{Name: "token_budget", Type: field.TypeInt64, Nullable: true, Default: 0},
		{Name: "cost_budget_cents", Type: field.TypeInt64, Nullable: true, Default: 0},
		{Name: "policy_label", Type: field.TypeString, Nullable: true},
	}
	// TasksTable holds the schema information for the "tasks" table.
	TasksTable = &schema.Table{
		Name:       "tasks",
		Columns:    TasksColumns,
		PrimaryKey: []*schema.Column{TasksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "task_state_priority_created_at",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[1], TasksColumns[2], TasksColumns[4]},
			},
			{
				Name:    "task_state",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[1]},
			},
			{
				Name:    "task_policy_label",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[10]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentsTable,
		EventsTable,
		EvidenceTable,
		FileReservationsTable,
		LeasesTable,
		MailMessagesTable,
		ReservationConflictsTable,
		TasksTable,
	}
)

func init() {
	EvidenceTable.Annotation = &entsql.Annotation{
		Table: "evidence",
	}
}
