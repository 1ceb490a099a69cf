package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CompletionEvent records a single question completed against a learning
// path, for audit and pacing analytics.
type CompletionEvent struct {
	ent.Schema
}

func (CompletionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (CompletionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("path_id").NotEmpty(),
		field.String("item_id").NotEmpty(),
		field.Int("quality").
			Comment("Recall quality 0-5"),
		field.Int("time_spent_secs"),
	}
}

func (CompletionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("path_id"),
	}
}
