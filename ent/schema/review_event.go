package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReviewEvent records a single review submission and the card state it
// produced. The attempt ID doubles as an idempotency key: retried delivery
// of the same submission must not re-apply the review.
type ReviewEvent struct {
	ent.Schema
}

func (ReviewEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ReviewEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("attempt_id").
			Unique().
			NotEmpty().
			Comment("Idempotency key for this submission"),
		field.String("learner_id").NotEmpty(),
		field.String("item_id").NotEmpty(),
		field.Int("quality").
			Comment("Recall quality 0-5"),
		field.Int("response_time_ms"),
		field.Float("ease_factor").
			Comment("Ease factor after applying the review"),
		field.Int("interval").
			Comment("Interval in days after applying the review"),
		field.Int("repetition").
			Comment("Repetition count after applying the review"),
	}
}

func (ReviewEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id", "item_id"),
	}
}
