package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LearningPath stores a generated multi-milestone curriculum for one learner.
type LearningPath struct {
	ent.Schema
}

func (LearningPath) Fields() []ent.Field {
	return []ent.Field{
		field.String("path_id").
			Unique().
			NotEmpty().
			Comment("External path identifier (UUID)"),
		field.String("learner_id").NotEmpty(),
		field.JSON("subjects", []string{}).
			Comment("Target subjects, weakest first"),
		field.Int("difficulty").
			Comment("Path difficulty 1-10"),
		field.JSON("milestones", []map[string]any{}).
			Comment("Ordered milestone ladder"),
		field.JSON("questions", []string{}).
			Optional().
			Comment("Assigned question item IDs"),
		field.Int("questions_completed").
			Default(0),
		field.Int("total_time_spent").
			Default(0).
			Comment("Accumulated seconds across completions"),
		field.JSON("completion_log", []map[string]any{}).
			Optional().
			Comment("Append-only {item_id, quality, time_spent, timestamp}"),
		field.Enum("status").
			Values("active", "completed", "paused", "abandoned").
			Default("active"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (LearningPath) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id"),
		index.Fields("learner_id", "status"),
	}
}
