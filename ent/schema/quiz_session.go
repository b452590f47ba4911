package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuizSession holds the persisted snapshot for one quiz session.
// The snapshot is stored whole as JSON; partial updates are merged in
// memory and written back atomically, so a rejected turn never leaves
// a half-applied row.
type QuizSession struct {
	ent.Schema
}

func (QuizSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Unique().
			Comment("UUID identifying the session"),
		field.JSON("data", map[string]any{}).
			Comment("Full session snapshot as JSON"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last time the snapshot was written"),
	}
}

func (QuizSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("updated_at"),
	}
}
