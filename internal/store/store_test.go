package store

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/abhisek/chilltutor/internal/llm"
	"github.com/abhisek/chilltutor/internal/orchestrator"
	"github.com/abhisek/chilltutor/internal/state"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func seedTestContent(t *testing.T, s *Store) {
	t.Helper()
	err := s.Content().Seed(context.Background(),
		[]state.Topic{{ID: 1, Name: "Computational thinking"}, {ID: 2, Name: "Data"}},
		[]state.Flashcard{
			{ID: 1, TopicID: 2, Question: "Q1", MarkingCriteria: "C1"},
			{ID: 2, TopicID: 2, Question: "Q2", MarkingCriteria: "C2"},
		})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestContentSeedAndQuery(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	seedTestContent(t, s)

	topics, err := s.Content().Topics(ctx)
	if err != nil {
		t.Fatalf("topics: %v", err)
	}
	if len(topics) != 2 || topics[0].ID != 1 || topics[1].Name != "Data" {
		t.Fatalf("unexpected topics: %+v", topics)
	}

	cards, err := s.Content().FlashcardsByTopic(ctx, 2)
	if err != nil {
		t.Fatalf("flashcards: %v", err)
	}
	if len(cards) != 2 || cards[0].ID != 1 || cards[1].Question != "Q2" {
		t.Fatalf("unexpected cards: %+v", cards)
	}

	// Re-seeding must not duplicate.
	seedTestContent(t, s)
	topics, err = s.Content().Topics(ctx)
	if err != nil {
		t.Fatalf("topics after reseed: %v", err)
	}
	if len(topics) != 2 {
		t.Fatalf("reseed duplicated topics: %+v", topics)
	}
}

func TestSessionRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	snap := state.New([]state.Topic{{ID: 1, Name: "Computational thinking"}})
	snap.User.Name = "Sam"
	snap.FlashcardStates = []state.FlashcardState{
		{ID: 1, Status: state.StatusActive, Question: "Q1", Attempts: 1, UserAnswers: []string{"a"}},
	}
	snap.HardFlashcards = []int{3}

	if err := s.Sessions().Create(ctx, "s1", snap); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := s.Sessions().Snapshot(ctx, "s1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.User.Name != "Sam" || got.QuizState.State != state.StateAwaitingName {
		t.Errorf("unexpected snapshot: %+v", got)
	}
	if !reflect.DeepEqual(got.FlashcardStates, snap.FlashcardStates) {
		t.Errorf("card states did not survive the round trip:\n%+v\n%+v",
			got.FlashcardStates, snap.FlashcardStates)
	}
	if !reflect.DeepEqual(got.HardFlashcards, []int{3}) {
		t.Errorf("hard list did not survive: %v", got.HardFlashcards)
	}
}

func TestApplyMutationMergesAndPersists(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	snap := state.New([]state.Topic{{ID: 2, Name: "Data"}})
	snap.FlashcardStates = []state.FlashcardState{{ID: 1, Status: state.StatusActive, Question: "Q1"}}
	if err := s.Sessions().Create(ctx, "s1", snap); err != nil {
		t.Fatalf("create: %v", err)
	}

	err := s.Sessions().ApplyMutation(ctx, "s1", &state.Partial{
		QuizState: &state.QuizStatePatch{State: state.Ptr(state.StateAwaitingEvaluation)},
		FlashcardStates: []state.CardPatch{
			{ID: 1, Attempts: state.Ptr(1), UserAnswers: []string{"an answer"}},
		},
		Score: &state.ScorePatch{TotalAttempts: state.Ptr(1)},
	})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	got, err := s.Sessions().Snapshot(ctx, "s1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.QuizState.State != state.StateAwaitingEvaluation {
		t.Errorf("expected awaiting_evaluation, got %q", got.QuizState.State)
	}
	card := got.CardByID(1)
	if card.Attempts != 1 || len(card.UserAnswers) != 1 {
		t.Errorf("card patch not applied: %+v", card)
	}
	if card.Question != "Q1" {
		t.Errorf("untouched field changed: %q", card.Question)
	}
	if got.Score.TotalAttempts != 1 {
		t.Errorf("score not applied: %+v", got.Score)
	}
}

func TestApplyMutationRejectsUnknownCard(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	snap := state.New(nil)
	snap.FlashcardStates = []state.FlashcardState{{ID: 1, Status: state.StatusActive, Question: "Q1"}}
	if err := s.Sessions().Create(ctx, "s1", snap); err != nil {
		t.Fatalf("create: %v", err)
	}
	before, err := s.Sessions().Snapshot(ctx, "s1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	err = s.Sessions().ApplyMutation(ctx, "s1", &state.Partial{
		QuizState:       &state.QuizStatePatch{State: state.Ptr(state.StateSessionComplete)},
		FlashcardStates: []state.CardPatch{{ID: 42, Attempts: state.Ptr(1)}},
	})
	if !errors.Is(err, state.ErrUnknownFlashcard) {
		t.Fatalf("expected ErrUnknownFlashcard, got: %v", err)
	}

	after, err := s.Sessions().Snapshot(ctx, "s1")
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if !reflect.DeepEqual(after, before) {
		t.Error("rejected mutation must leave the persisted snapshot unchanged")
	}
}

func TestPopulateDeck(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	seedTestContent(t, s)

	if err := s.Sessions().Create(ctx, "s1", state.New(nil)); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := s.Sessions().PopulateDeck(ctx, "s1", 2); err != nil {
		t.Fatalf("populate: %v", err)
	}

	snap, err := s.Sessions().Snapshot(ctx, "s1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(snap.FlashcardStates) != 2 {
		t.Fatalf("expected 2 cards, got %d", len(snap.FlashcardStates))
	}
	if active := snap.ActiveCard(); active == nil || active.ID != 1 {
		t.Fatalf("expected card 1 active, got %+v", active)
	}
	if snap.FlashcardStates[1].Status != state.StatusQueued {
		t.Errorf("expected second card queued, got %q", snap.FlashcardStates[1].Status)
	}

	// Idempotent: a second population is a no-op.
	if err := s.Sessions().PopulateDeck(ctx, "s1", 2); err != nil {
		t.Fatalf("repeat populate: %v", err)
	}
	again, err := s.Sessions().Snapshot(ctx, "s1")
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if !reflect.DeepEqual(again.FlashcardStates, snap.FlashcardStates) {
		t.Error("repeated population changed the deck")
	}
}

func TestPopulateDeckEmptyTopic(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	seedTestContent(t, s)

	if err := s.Sessions().Create(ctx, "s1", state.New(nil)); err != nil {
		t.Fatalf("create: %v", err)
	}

	err := s.Sessions().PopulateDeck(ctx, "s1", 1) // topic 1 has no cards
	if !errors.Is(err, orchestrator.ErrEmptyDeck) {
		t.Fatalf("expected ErrEmptyDeck, got: %v", err)
	}

	snap, err := s.Sessions().Snapshot(ctx, "s1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(snap.FlashcardStates) != 0 {
		t.Errorf("empty-deck population must not write cards: %+v", snap.FlashcardStates)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		if seq != int64(i) {
			t.Errorf("seq = %d, want %d", seq, i)
		}
	}
}

func TestEventAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	events := s.Events()

	err := events.AppendTurn(ctx, orchestrator.TurnEvent{
		SessionID: "s1",
		FromState: state.StateAwaitingAnswer,
		ToState:   state.StateAwaitingEvaluation,
		CardID:    1,
		Attempt:   1,
		Answer:    "an answer",
	})
	if err != nil {
		t.Fatalf("append turn: %v", err)
	}

	err = events.AppendLLMRequest(ctx, llm.RequestRecord{
		Provider:     "mock",
		Model:        "mock",
		Purpose:      "answer-marking",
		InputTokens:  100,
		OutputTokens: 50,
		Success:      true,
	})
	if err != nil {
		t.Fatalf("append llm: %v", err)
	}

	turns, err := events.Turns(ctx, "s1", QueryOpts{})
	if err != nil {
		t.Fatalf("turns: %v", err)
	}
	if len(turns) != 1 || turns[0].Answer != "an answer" {
		t.Fatalf("unexpected turns: %+v", turns)
	}

	reqs, err := events.LLMRequests(ctx, QueryOpts{Limit: 10})
	if err != nil {
		t.Fatalf("llm requests: %v", err)
	}
	if len(reqs) != 1 || reqs[0].Purpose != "answer-marking" {
		t.Fatalf("unexpected llm requests: %+v", reqs)
	}

	// Global ordering across event types.
	if turns[0].Sequence >= reqs[0].Sequence {
		t.Errorf("expected turn sequence %d < llm sequence %d", turns[0].Sequence, reqs[0].Sequence)
	}

	one, err := events.LLMRequestBySequence(ctx, reqs[0].Sequence)
	if err != nil {
		t.Fatalf("by sequence: %v", err)
	}
	if one == nil || one.Model != "mock" {
		t.Fatalf("unexpected event: %+v", one)
	}
	missing, err := events.LLMRequestBySequence(ctx, 9999)
	if err != nil {
		t.Fatalf("by sequence (missing): %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for unknown sequence, got %+v", missing)
	}
}

func TestStats(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	events := s.Events()

	for i, sess := range []string{"s1", "s1", "s2"} {
		ev := orchestrator.TurnEvent{
			SessionID: sess,
			FromState: state.StateAwaitingAnswer,
			ToState:   state.StateAwaitingEvaluation,
			Answer:    "a",
		}
		if i == 2 {
			ev.Answer = ""
			ev.CardCompleted = true
		}
		if err := events.AppendTurn(ctx, ev); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	for _, model := range []string{"m1", "m1", "m2"} {
		err := events.AppendLLMRequest(ctx, llm.RequestRecord{
			Provider: "p", Model: model, Purpose: "answer-marking",
			InputTokens: 10, OutputTokens: 5, Success: model == "m1",
		})
		if err != nil {
			t.Fatalf("append llm: %v", err)
		}
	}

	ts, err := events.TurnStats(ctx)
	if err != nil {
		t.Fatalf("turn stats: %v", err)
	}
	if ts.Sessions != 2 || ts.Turns != 3 || ts.Answers != 2 || ts.Resolved != 1 {
		t.Errorf("unexpected turn stats: %+v", ts)
	}

	ls, err := events.LLMStats(ctx)
	if err != nil {
		t.Fatalf("llm stats: %v", err)
	}
	if len(ls) != 2 {
		t.Fatalf("expected 2 models, got %+v", ls)
	}
	if ls[0].Model != "m1" || ls[0].Requests != 2 || ls[0].InputTokens != 20 {
		t.Errorf("unexpected m1 stats: %+v", ls[0])
	}
	if ls[1].Model != "m2" || ls[1].Failures != 1 {
		t.Errorf("unexpected m2 stats: %+v", ls[1])
	}
}

func TestReset(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	seedTestContent(t, s)

	if err := s.Sessions().Create(ctx, "s1", state.New(nil)); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := s.Events().AppendTurn(ctx, orchestrator.TurnEvent{SessionID: "s1", FromState: "a", ToState: "b"}); err != nil {
		t.Fatalf("append: %v", err)
	}

	if err := s.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}

	if id, err := s.Sessions().Latest(ctx); err != nil || id != "" {
		t.Errorf("expected no sessions after reset, got %q (err %v)", id, err)
	}
	topics, err := s.Content().Topics(ctx)
	if err != nil {
		t.Fatalf("topics: %v", err)
	}
	if len(topics) != 2 {
		t.Errorf("reset must keep content, got %d topics", len(topics))
	}
	seq, err := s.seq.Next(ctx)
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if seq != 1 {
		t.Errorf("expected sequence rewound to 1, got %d", seq)
	}
}
