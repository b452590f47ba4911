package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Topic is a revision topic learners pick a deck from.
// Immutable reference data, loaded by the seeder.
type Topic struct {
	ent.Schema
}

func (Topic) Fields() []ent.Field {
	return []ent.Field{
		field.Int("id").
			Comment("Stable topic id referenced by flashcards and sessions"),
		field.String("name").
			NotEmpty().
			Unique().
			Comment("Display name, e.g. \"Computational thinking\""),
	}
}
