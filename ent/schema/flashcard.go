package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Flashcard is a single revision question with its marking rubric.
// Immutable content, loaded by the seeder per topic.
type Flashcard struct {
	ent.Schema
}

func (Flashcard) Fields() []ent.Field {
	return []ent.Field{
		field.Int("id").
			Comment("Stable card id referenced by session state"),
		field.Int("topic_id").
			Comment("Topic this card belongs to"),
		field.String("question").
			NotEmpty().
			Comment("Question text shown to the learner"),
		field.String("answer").
			Default("").
			Comment("Model answer, shown after the final attempt"),
		field.Text("marking_criteria").
			NotEmpty().
			Comment("Rubric the evaluator marks free-text answers against"),
	}
}

func (Flashcard) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("topic_id"),
	}
}
