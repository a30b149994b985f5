// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AchievementEventsColumns holds the columns for the "achievement_events" table.
	AchievementEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "achievement_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "reward", Type: field.TypeInt},
		{Name: "session_id", Type: field.TypeString, Default: ""},
	}
	// AchievementEventsTable holds the schema information for the "achievement_events" table.
	AchievementEventsTable = &schema.Table{
		Name:       "achievement_events",
		Columns:    AchievementEventsColumns,
		PrimaryKey: []*schema.Column{AchievementEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "achievementevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AchievementEventsColumns[1]},
			},
			{
				Name:    "achievementevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AchievementEventsColumns[2]},
			},
			{
				Name:    "achievementevent_achievement_id",
				Unique:  false,
				Columns: []*schema.Column{AchievementEventsColumns[3]},
			},
		},
	}
	// LedgerEventsColumns holds the columns for the "ledger_events" table.
	LedgerEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "delta", Type: field.TypeInt},
		{Name: "balance_after", Type: field.TypeInt},
		{Name: "reason", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString, Default: ""},
	}
	// LedgerEventsTable holds the schema information for the "ledger_events" table.
	LedgerEventsTable = &schema.Table{
		Name:       "ledger_events",
		Columns:    LedgerEventsColumns,
		PrimaryKey: []*schema.Column{LedgerEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "ledgerevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LedgerEventsColumns[1]},
			},
			{
				Name:    "ledgerevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LedgerEventsColumns[2]},
			},
			{
				Name:    "ledgerevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{LedgerEventsColumns[6]},
			},
		},
	}
	// SessionEventsColumns holds the columns for the "session_events" table.
	SessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "mode", Type: field.TypeString},
		{Name: "tier", Type: field.TypeString},
		{Name: "outcome", Type: field.TypeString, Default: ""},
		{Name: "score", Type: field.TypeInt, Default: 0},
		{Name: "items_completed", Type: field.TypeInt, Default: 0},
		{Name: "combo_peak", Type: field.TypeInt, Default: 0},
		{Name: "duration_secs", Type: field.TypeInt, Default: 0},
	}
	// SessionEventsTable holds the schema information for the "session_events" table.
	SessionEventsTable = &schema.Table{
		Name:       "session_events",
		Columns:    SessionEventsColumns,
		PrimaryKey: []*schema.Column{SessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[1]},
			},
			{
				Name:    "sessionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[2]},
			},
			{
				Name:    "sessionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[3]},
			},
			{
				Name:    "sessionevent_action",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[4]},
			},
			{
				Name:    "sessionevent_mode_tier",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[5], SessionEventsColumns[6]},
			},
		},
	}
	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// SnapshotsTable holds the schema information for the "snapshots" table.
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "snapshot_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[2]},
			},
			{
				Name:    "snapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AchievementEventsTable,
		LedgerEventsTable,
		SessionEventsTable,
		SnapshotsTable,
	}
)

func init() {
}
