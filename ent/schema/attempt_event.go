package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptEvent records one completed question or test attempt. This is the
// append-only performance log that feeds the analyzer and prediction model.
type AttemptEvent struct {
	ent.Schema
}

func (AttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").NotEmpty(),
		field.String("topic").NotEmpty(),
		field.String("bloom_level").
			Optional().
			Comment("Bloom taxonomy level, when the source reports one"),
		field.Float("score").
			Comment("Score or correct percentage on a 0-100 scale"),
		field.Int("difficulty").
			Comment("Difficulty 1-10 at which the attempt was made"),
		field.Int("time_spent_secs"),
	}
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id"),
		index.Fields("learner_id", "topic"),
	}
}
