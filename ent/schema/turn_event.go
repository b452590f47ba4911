package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TurnEvent records one orchestrator turn that changed session state.
type TurnEvent struct {
	ent.Schema
}

func (TurnEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (TurnEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Session this turn belongs to"),
		field.String("from_state").
			NotEmpty().
			Comment("Quiz state before the turn"),
		field.String("to_state").
			NotEmpty().
			Comment("Quiz state after the turn"),
		field.Int("card_id").
			Default(0).
			Comment("Flashcard involved, 0 when none"),
		field.Int("attempt").
			Default(0).
			Comment("Attempt number recorded this turn, 0 when none"),
		field.String("answer").
			Default("").
			Comment("Answer text submitted this turn"),
		field.String("result").
			Default("").
			Comment("Evaluation result: correct, partial, incorrect"),
		field.Float("score").
			Default(0).
			Comment("Rubric score in [0,1] when an evaluation resolved"),
		field.Bool("card_completed").
			Default(false).
			Comment("Whether the card reached completed this turn"),
	}
}

func (TurnEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("card_id"),
	}
}
