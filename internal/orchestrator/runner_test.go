package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/abhisek/chilltutor/internal/flashcards"
	"github.com/abhisek/chilltutor/internal/scoring"
	"github.com/abhisek/chilltutor/internal/state"
)

// memStore is an in-memory Applier + SnapshotSource with the same merge
// and population semantics as the real store.
type memStore struct {
	snap      *state.Snapshot
	decks     map[int][]state.Flashcard
	populated map[int]bool
}

func newMemStore(snap *state.Snapshot, decks map[int][]state.Flashcard) *memStore {
	return &memStore{snap: snap, decks: decks, populated: map[int]bool{}}
}

func (m *memStore) Snapshot(_ context.Context, _ string) (*state.Snapshot, error) {
	return m.snap.Clone(), nil
}

func (m *memStore) ApplyMutation(_ context.Context, _ string, p *state.Partial) error {
	clone := m.snap.Clone()
	if err := state.Merge(clone, p); err != nil {
		return err
	}
	m.snap = clone
	return nil
}

func (m *memStore) PopulateDeck(_ context.Context, _ string, topicID int) error {
	if m.populated[topicID] {
		return nil
	}
	cards := m.decks[topicID]
	if len(cards) == 0 {
		return fmt.Errorf("%w: topic %d", ErrEmptyDeck, topicID)
	}
	clone := m.snap.Clone()
	clone.FlashcardStates = flashcards.InitialStates(cards)
	m.snap = clone
	m.populated[topicID] = true
	return nil
}

type fixedEvaluator struct {
	eval  scoring.EvaluationResult
	calls []string
}

func (f *fixedEvaluator) Evaluate(_ context.Context, _, _, answer string) (*scoring.EvaluationResult, error) {
	f.calls = append(f.calls, answer)
	ev := f.eval
	return &ev, nil
}

type memTurnLog struct {
	events []TurnEvent
}

func (m *memTurnLog) AppendTurn(_ context.Context, ev TurnEvent) error {
	m.events = append(m.events, ev)
	return nil
}

func testDecks() map[int][]state.Flashcard {
	return map[int][]state.Flashcard{
		2: {
			{ID: 1, TopicID: 2, Question: "What is binary?", MarkingCriteria: "Key points"},
			{ID: 2, TopicID: 2, Question: "What is compression?", MarkingCriteria: "Key points"},
		},
	}
}

func TestRunner_TopicTurnPopulatesDeck(t *testing.T) {
	st := newMemStore(freshSnapshot(), testDecks())
	st.snap.QuizState.State = state.StateAwaitingTopic
	r := &Runner{Sessions: st, Store: st}

	after, plan, err := r.RunTurn(context.Background(), "s1", TurnInput{TopicID: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plan.Populate == nil {
		t.Fatal("expected population request")
	}
	if after.QuizState.State != state.StateAwaitingAnswer {
		t.Errorf("expected awaiting_answer, got %q", after.QuizState.State)
	}
	if active := after.ActiveCard(); active == nil || active.ID != 1 {
		t.Fatalf("expected card 1 active, got %+v", active)
	}
	if after.CurrentTopicID != 2 {
		t.Errorf("expected current topic 2, got %d", after.CurrentTopicID)
	}
}

func TestRunner_EmptyDeckLeavesTopicSelection(t *testing.T) {
	st := newMemStore(freshSnapshot(), map[int][]state.Flashcard{})
	st.snap.QuizState.State = state.StateAwaitingTopic
	before := st.snap.Clone()
	r := &Runner{Sessions: st, Store: st}

	_, _, err := r.RunTurn(context.Background(), "s1", TurnInput{TopicID: 1})
	if !errors.Is(err, ErrEmptyDeck) {
		t.Fatalf("expected ErrEmptyDeck, got: %v", err)
	}
	if !reflect.DeepEqual(st.snap.Clone(), before) {
		t.Error("rejected turn must leave the snapshot unchanged")
	}
	if st.snap.QuizState.State != state.StateAwaitingTopic {
		t.Errorf("expected awaiting_topic, got %q", st.snap.QuizState.State)
	}
}

func TestRunner_RejectedTurnLeavesSnapshotUnchanged(t *testing.T) {
	st := newMemStore(freshSnapshot(), testDecks())
	before := st.snap.Clone()
	r := &Runner{Sessions: st, Store: st}

	_, _, err := r.RunTurn(context.Background(), "s1", TurnInput{Name: "  "})
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got: %v", err)
	}
	if !reflect.DeepEqual(st.snap.Clone(), before) {
		t.Error("rejected turn must leave the snapshot unchanged")
	}
}

func TestRunner_MarkPendingEvaluatesLatestAnswer(t *testing.T) {
	st := newMemStore(freshSnapshot(), testDecks())
	log := &memTurnLog{}
	marker := &fixedEvaluator{eval: scoring.NewEvaluation(0.9, "well done")}
	r := &Runner{Sessions: st, Store: st, Marker: marker, Turns: log}

	ctx := context.Background()
	steps := []TurnInput{
		{Name: "Sam"},
		{TopicID: 2},
		{Answer: state.Ptr("two digits, 0 and 1")},
	}
	for _, in := range steps {
		if _, _, err := r.RunTurn(ctx, "s1", in); err != nil {
			t.Fatalf("turn %+v: %v", in, err)
		}
	}

	after, plan, err := r.MarkPending(ctx, "s1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(marker.calls) != 1 || marker.calls[0] != "two digits, 0 and 1" {
		t.Fatalf("expected evaluator called with the latest answer, got %v", marker.calls)
	}
	if !plan.CardResolved {
		t.Error("expected resolved card")
	}
	if after.CardByID(1).Status != state.StatusCompleted {
		t.Error("expected card 1 completed")
	}
	if after.CardByID(1).Evaluation == nil || after.CardByID(1).Evaluation.Feedback != "well done" {
		t.Errorf("expected stored evaluation, got %+v", after.CardByID(1).Evaluation)
	}
	if after.Score.Correct != 1 {
		t.Errorf("expected correct 1, got %d", after.Score.Correct)
	}
	if active := after.ActiveCard(); active == nil || active.ID != 2 {
		t.Fatalf("expected card 2 active, got %+v", active)
	}

	// Four applied turns, four events.
	if len(log.events) != 4 {
		t.Fatalf("expected 4 turn events, got %d", len(log.events))
	}
	last := log.events[3]
	if last.FromState != state.StateAwaitingEvaluation || last.ToState != state.StateAwaitingAnswer {
		t.Errorf("unexpected transition in event: %+v", last)
	}
	if last.Result != string(scoring.ResultCorrect) || last.Score != 0.9 {
		t.Errorf("unexpected evaluation in event: %+v", last)
	}
}

func TestRunner_MarkPendingRequiresPendingAnswer(t *testing.T) {
	st := newMemStore(freshSnapshot(), testDecks())
	r := &Runner{Sessions: st, Store: st, Marker: &fixedEvaluator{}}

	_, _, err := r.MarkPending(context.Background(), "s1")
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got: %v", err)
	}
}

func TestRunner_PopulateIsIdempotent(t *testing.T) {
	st := newMemStore(freshSnapshot(), testDecks())
	ctx := context.Background()

	if err := st.PopulateDeck(ctx, "s1", 2); err != nil {
		t.Fatalf("populate: %v", err)
	}
	first := st.snap.Clone()

	if err := st.PopulateDeck(ctx, "s1", 2); err != nil {
		t.Fatalf("repeat populate: %v", err)
	}
	if !reflect.DeepEqual(st.snap, first) {
		t.Error("repeated population must not change the deck")
	}
}
