package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/chilltutor/ent"
	"github.com/abhisek/chilltutor/ent/quizsession"
	"github.com/abhisek/chilltutor/internal/flashcards"
	"github.com/abhisek/chilltutor/internal/orchestrator"
	"github.com/abhisek/chilltutor/internal/state"
)

type sessionRepo struct {
	client  *ent.Client
	content ContentRepo
}

func (r *sessionRepo) Create(ctx context.Context, sessionID string, snap *state.Snapshot) error {
	data, err := snapshotToMap(snap)
	if err != nil {
		return err
	}

	_, err = r.client.QuizSession.Create().
		SetSessionID(sessionID).
		SetData(data).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create session %s: %w", sessionID, err)
	}
	return nil
}

func (r *sessionRepo) Snapshot(ctx context.Context, sessionID string) (*state.Snapshot, error) {
	row, err := r.client.QuizSession.Query().
		Where(quizsession.SessionID(sessionID)).
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("load session %s: %w", sessionID, err)
	}
	return snapshotFromMap(row.Data)
}

// ApplyMutation loads the snapshot, merges the partial in memory, and
// writes the whole snapshot back in one row update. A rejected merge
// (unknown card id) writes nothing.
func (r *sessionRepo) ApplyMutation(ctx context.Context, sessionID string, p *state.Partial) error {
	row, err := r.client.QuizSession.Query().
		Where(quizsession.SessionID(sessionID)).
		Only(ctx)
	if err != nil {
		return fmt.Errorf("load session %s: %w", sessionID, err)
	}

	snap, err := snapshotFromMap(row.Data)
	if err != nil {
		return err
	}

	if err := state.Merge(snap, p); err != nil {
		return err
	}

	return r.save(ctx, row, snap)
}

// PopulateDeck materializes the deck for a topic: first card active,
// the rest queued. A session that already has a deck is left alone,
// so repeated population cannot duplicate cards.
func (r *sessionRepo) PopulateDeck(ctx context.Context, sessionID string, topicID int) error {
	row, err := r.client.QuizSession.Query().
		Where(quizsession.SessionID(sessionID)).
		Only(ctx)
	if err != nil {
		return fmt.Errorf("load session %s: %w", sessionID, err)
	}

	snap, err := snapshotFromMap(row.Data)
	if err != nil {
		return err
	}

	if len(snap.FlashcardStates) > 0 {
		return nil
	}

	cards, err := r.content.FlashcardsByTopic(ctx, topicID)
	if err != nil {
		return err
	}
	if len(cards) == 0 {
		return fmt.Errorf("%w: topic %d", orchestrator.ErrEmptyDeck, topicID)
	}

	snap.FlashcardStates = flashcards.InitialStates(cards)
	return r.save(ctx, row, snap)
}

func (r *sessionRepo) Latest(ctx context.Context) (string, error) {
	row, err := r.client.QuizSession.Query().
		Order(ent.Desc(quizsession.FieldUpdatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", nil
		}
		return "", fmt.Errorf("query latest session: %w", err)
	}
	return row.SessionID, nil
}

func (r *sessionRepo) save(ctx context.Context, row *ent.QuizSession, snap *state.Snapshot) error {
	data, err := snapshotToMap(snap)
	if err != nil {
		return err
	}
	if err := row.Update().SetData(data).Exec(ctx); err != nil {
		return fmt.Errorf("save session %s: %w", row.SessionID, err)
	}
	return nil
}

func snapshotToMap(snap *state.Snapshot) (map[string]any, error) {
	raw, err := json.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return m, nil
}

func snapshotFromMap(m map[string]any) (*state.Snapshot, error) {
	raw, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	var snap state.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &snap, nil
}
