package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CardState holds the spaced repetition state for one learner/item pair.
// Rows are created lazily on first exposure and never deleted.
type CardState struct {
	ent.Schema
}

func (CardState) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").
			NotEmpty().
			Comment("Owning learner"),
		field.String("item_id").
			NotEmpty().
			Comment("The reviewed item (card or topic)"),
		field.Float("ease_factor").
			Default(2.5).
			Comment("SM-2 ease factor, floored at 1.3"),
		field.Int("interval").
			Default(1).
			Comment("Current review interval in days"),
		field.Int("repetition").
			Default(0).
			Comment("Consecutive successful reviews since last failure"),
		field.Time("next_review_date").
			Comment("Midnight-normalized date of the next due review"),
		field.Time("last_review_date").
			Optional().
			Nillable().
			Comment("When the card was last reviewed"),
		field.JSON("review_history", []map[string]any{}).
			Optional().
			Comment("Append-only log of {quality, response_time_ms, date}"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (CardState) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id", "item_id").Unique(),
		index.Fields("learner_id", "next_review_date"),
	}
}
