// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AttemptEventsColumns holds the columns for the "attempt_events" table.
	AttemptEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString},
		{Name: "bloom_level", Type: field.TypeString, Nullable: true},
		{Name: "score", Type: field.TypeFloat64},
		{Name: "difficulty", Type: field.TypeInt},
		{Name: "time_spent_secs", Type: field.TypeInt},
	}
	// AttemptEventsTable holds the schema information for the "attempt_events" table.
	AttemptEventsTable = &schema.Table{
		Name:       "attempt_events",
		Columns:    AttemptEventsColumns,
		PrimaryKey: []*schema.Column{AttemptEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "attemptevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[1]},
			},
			{
				Name:    "attemptevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[2]},
			},
			{
				Name:    "attemptevent_learner_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[3]},
			},
			{
				Name:    "attemptevent_learner_id_topic",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[3], AttemptEventsColumns[4]},
			},
		},
	}
	// CardStatesColumns holds the columns for the "card_states" table.
	CardStatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "item_id", Type: field.TypeString},
		{Name: "ease_factor", Type: field.TypeFloat64, Default: 2.5},
		{Name: "interval", Type: field.TypeInt, Default: 1},
		{Name: "repetition", Type: field.TypeInt, Default: 0},
		{Name: "next_review_date", Type: field.TypeTime},
		{Name: "last_review_date", Type: field.TypeTime, Nullable: true},
		{Name: "review_history", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// CardStatesTable holds the schema information for the "card_states" table.
	CardStatesTable = &schema.Table{
		Name:       "card_states",
		Columns:    CardStatesColumns,
		PrimaryKey: []*schema.Column{CardStatesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "cardstate_learner_id_item_id",
				Unique:  true,
				Columns: []*schema.Column{CardStatesColumns[1], CardStatesColumns[2]},
			},
			{
				Name:    "cardstate_learner_id_next_review_date",
				Unique:  false,
				Columns: []*schema.Column{CardStatesColumns[1], CardStatesColumns[6]},
			},
		},
	}
	// CompletionEventsColumns holds the columns for the "completion_events" table.
	CompletionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "path_id", Type: field.TypeString},
		{Name: "item_id", Type: field.TypeString},
		{Name: "quality", Type: field.TypeInt},
		{Name: "time_spent_secs", Type: field.TypeInt},
	}
	// CompletionEventsTable holds the schema information for the "completion_events" table.
	CompletionEventsTable = &schema.Table{
		Name:       "completion_events",
		Columns:    CompletionEventsColumns,
		PrimaryKey: []*schema.Column{CompletionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "completionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{CompletionEventsColumns[1]},
			},
			{
				Name:    "completionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{CompletionEventsColumns[2]},
			},
			{
				Name:    "completionevent_path_id",
				Unique:  false,
				Columns: []*schema.Column{CompletionEventsColumns[3]},
			},
		},
	}
	// LearningPathsColumns holds the columns for the "learning_paths" table.
	LearningPathsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "path_id", Type: field.TypeString, Unique: true},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "subjects", Type: field.TypeJSON},
		{Name: "difficulty", Type: field.TypeInt},
		{Name: "milestones", Type: field.TypeJSON},
		{Name: "questions", Type: field.TypeJSON, Nullable: true},
		{Name: "questions_completed", Type: field.TypeInt, Default: 0},
		{Name: "total_time_spent", Type: field.TypeInt, Default: 0},
		{Name: "completion_log", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "completed", "paused", "abandoned"}, Default: "active"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// LearningPathsTable holds the schema information for the "learning_paths" table.
	LearningPathsTable = &schema.Table{
		Name:       "learning_paths",
		Columns:    LearningPathsColumns,
		PrimaryKey: []*schema.Column{LearningPathsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "learningpath_learner_id",
				Unique:  false,
				Columns: []*schema.Column{LearningPathsColumns[2]},
			},
			{
				Name:    "learningpath_learner_id_status",
				Unique:  false,
				Columns: []*schema.Column{LearningPathsColumns[2], LearningPathsColumns[10]},
			},
		},
	}
	// ReviewEventsColumns holds the columns for the "review_events" table.
	ReviewEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "attempt_id", Type: field.TypeString, Unique: true},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "item_id", Type: field.TypeString},
		{Name: "quality", Type: field.TypeInt},
		{Name: "response_time_ms", Type: field.TypeInt},
		{Name: "ease_factor", Type: field.TypeFloat64},
		{Name: "interval", Type: field.TypeInt},
		{Name: "repetition", Type: field.TypeInt},
	}
	// ReviewEventsTable holds the schema information for the "review_events" table.
	ReviewEventsTable = &schema.Table{
		Name:       "review_events",
		Columns:    ReviewEventsColumns,
		PrimaryKey: []*schema.Column{ReviewEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "reviewevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[1]},
			},
			{
				Name:    "reviewevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[2]},
			},
			{
				Name:    "reviewevent_learner_id_item_id",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[4], ReviewEventsColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AttemptEventsTable,
		CardStatesTable,
		CompletionEventsTable,
		LearningPathsTable,
		ReviewEventsTable,
	}
)

func init() {
}
