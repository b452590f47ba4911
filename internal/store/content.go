package store

import (
	"context"
	"fmt"

	"github.com/abhisek/chilltutor/ent"
	"github.com/abhisek/chilltutor/ent/flashcard"
	"github.com/abhisek/chilltutor/ent/topic"
	"github.com/abhisek/chilltutor/internal/state"
)

type contentRepo struct {
	client *ent.Client
}

func (r *contentRepo) Topics(ctx context.Context) ([]state.Topic, error) {
	rows, err := r.client.Topic.Query().
		Order(ent.Asc(topic.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query topics: %w", err)
	}

	out := make([]state.Topic, len(rows))
	for i, row := range rows {
		out[i] = state.Topic{ID: row.ID, Name: row.Name}
	}
	return out, nil
}

func (r *contentRepo) FlashcardsByTopic(ctx context.Context, topicID int) ([]state.Flashcard, error) {
	rows, err := r.client.Flashcard.Query().
		Where(flashcard.TopicID(topicID)).
		Order(ent.Asc(flashcard.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query flashcards for topic %d: %w", topicID, err)
	}

	out := make([]state.Flashcard, len(rows))
	for i, row := range rows {
		out[i] = state.Flashcard{
			ID:              row.ID,
			TopicID:         row.TopicID,
			Question:        row.Question,
			Answer:          row.Answer,
			MarkingCriteria: row.MarkingCriteria,
		}
	}
	return out, nil
}

func (r *contentRepo) Seed(ctx context.Context, topics []state.Topic, cards []state.Flashcard) error {
	for _, t := range topics {
		exists, err := r.client.Topic.Query().
			Where(topic.ID(t.ID)).
			Exist(ctx)
		if err != nil {
			return fmt.Errorf("check topic %d: %w", t.ID, err)
		}
		if exists {
			err = r.client.Topic.UpdateOneID(t.ID).
				SetName(t.Name).
				Exec(ctx)
		} else {
			_, err = r.client.Topic.Create().
				SetID(t.ID).
				SetName(t.Name).
				Save(ctx)
		}
		if err != nil {
			return fmt.Errorf("seed topic %d: %w", t.ID, err)
		}
	}

	for _, c := range cards {
		exists, err := r.client.Flashcard.Query().
			Where(flashcard.ID(c.ID)).
			Exist(ctx)
		if err != nil {
			return fmt.Errorf("check flashcard %d: %w", c.ID, err)
		}
		if exists {
			err = r.client.Flashcard.UpdateOneID(c.ID).
				SetTopicID(c.TopicID).
				SetQuestion(c.Question).
				SetAnswer(c.Answer).
				SetMarkingCriteria(c.MarkingCriteria).
				Exec(ctx)
		} else {
			_, err = r.client.Flashcard.Create().
				SetID(c.ID).
				SetTopicID(c.TopicID).
				SetQuestion(c.Question).
				SetAnswer(c.Answer).
				SetMarkingCriteria(c.MarkingCriteria).
				Save(ctx)
		}
		if err != nil {
			return fmt.Errorf("seed flashcard %d: %w", c.ID, err)
		}
	}

	return nil
}
