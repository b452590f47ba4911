package flashcards

import (
	"errors"
	"testing"

	"github.com/abhisek/chilltutor/internal/scoring"
	"github.com/abhisek/chilltutor/internal/state"
)

func deckSnapshot(t *testing.T, cards ...state.FlashcardState) *state.Snapshot {
	t.Helper()
	snap := state.New([]state.Topic{{ID: 1, Name: "Data"}})
	snap.CurrentTopicID = 1
	snap.QuizState.State = state.StateAwaitingAnswer
	snap.FlashcardStates = cards
	return snap
}

func TestInitialStates_FirstActiveRestQueued(t *testing.T) {
	cards := []state.Flashcard{
		{ID: 4, TopicID: 1, Question: "Q4"},
		{ID: 2, TopicID: 1, Question: "Q2"},
		{ID: 9, TopicID: 1, Question: "Q9"},
	}

	states := InitialStates(cards)
	if len(states) != 3 {
		t.Fatalf("expected 3 states, got %d", len(states))
	}

	active := 0
	for _, s := range states {
		if s.Status == state.StatusActive {
			active++
			if s.ID != 2 {
				t.Errorf("expected lowest id 2 active, got %d", s.ID)
			}
		} else if s.Status != state.StatusQueued {
			t.Errorf("card %d: unexpected status %q", s.ID, s.Status)
		}
	}
	if active != 1 {
		t.Fatalf("expected exactly 1 active card, got %d", active)
	}
}

func TestInitialStates_EmptyDeck(t *testing.T) {
	if states := InitialStates(nil); len(states) != 0 {
		t.Fatalf("expected no states, got %d", len(states))
	}
}

func TestRecordAttempt_AppendsAnswerAndBumpsCounters(t *testing.T) {
	snap := deckSnapshot(t, state.FlashcardState{
		ID:          1,
		Status:      state.StatusActive,
		Attempts:    1,
		UserAnswers: []string{"first try"},
	})
	snap.Score.TotalAttempts = 1

	att, err := RecordAttempt(snap, "second try")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if att.Card.ID != 1 {
		t.Errorf("expected card 1, got %d", att.Card.ID)
	}
	if att.Card.Attempts == nil || *att.Card.Attempts != 2 {
		t.Errorf("expected attempts 2, got %v", att.Card.Attempts)
	}
	if len(att.Card.UserAnswers) != 2 || att.Card.UserAnswers[1] != "second try" {
		t.Errorf("unexpected answers: %v", att.Card.UserAnswers)
	}
	if att.Score.TotalAttempts == nil || *att.Score.TotalAttempts != 2 {
		t.Errorf("expected total attempts 2, got %v", att.Score.TotalAttempts)
	}
}

func TestRecordAttempt_AttemptsAlwaysMatchAnswers(t *testing.T) {
	snap := deckSnapshot(t, state.FlashcardState{ID: 1, Status: state.StatusActive})

	for i := 1; i <= MaxAttempts; i++ {
		att, err := RecordAttempt(snap, "answer")
		if err != nil {
			t.Fatalf("attempt %d: unexpected error: %v", i, err)
		}
		if *att.Card.Attempts != len(att.Card.UserAnswers) {
			t.Fatalf("attempt %d: attempts %d != answers %d",
				i, *att.Card.Attempts, len(att.Card.UserAnswers))
		}
		if err := state.Merge(snap, &state.Partial{
			FlashcardStates: []state.CardPatch{att.Card},
			Score:           &att.Score,
		}); err != nil {
			t.Fatalf("merge: %v", err)
		}
	}
}

func TestRecordAttempt_RejectsOverLimit(t *testing.T) {
	snap := deckSnapshot(t, state.FlashcardState{
		ID:          1,
		Status:      state.StatusActive,
		Attempts:    MaxAttempts,
		UserAnswers: []string{"a", "b", "c"},
	})

	_, err := RecordAttempt(snap, "one more")
	if !errors.Is(err, ErrAttemptLimit) {
		t.Fatalf("expected ErrAttemptLimit, got: %v", err)
	}
}

func TestRecordAttempt_NoActiveCard(t *testing.T) {
	snap := deckSnapshot(t, state.FlashcardState{ID: 1, Status: state.StatusQueued})

	_, err := RecordAttempt(snap, "answer")
	if !errors.Is(err, ErrNoActiveCard) {
		t.Fatalf("expected ErrNoActiveCard, got: %v", err)
	}
}

func TestResolve_CorrectCompletesAndActivatesNext(t *testing.T) {
	snap := deckSnapshot(t,
		state.FlashcardState{ID: 1, Status: state.StatusActive, Attempts: 1, UserAnswers: []string{"a"}},
		state.FlashcardState{ID: 2, Status: state.StatusQueued},
	)

	res, err := Resolve(snap, scoring.NewEvaluation(0.9, "good"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !res.CardResolved {
		t.Error("expected resolved card")
	}
	if res.Card.Status == nil || *res.Card.Status != state.StatusCompleted {
		t.Errorf("expected completed status, got %v", res.Card.Status)
	}
	if res.Score == nil || res.Score.Correct == nil || *res.Score.Correct != 1 {
		t.Errorf("expected correct count 1, got %+v", res.Score)
	}
	if res.Score.Incorrect != nil {
		t.Error("correct resolution must not touch the incorrect count")
	}
	if res.Hard {
		t.Error("correct resolution must not touch the hard list")
	}
	if res.Next == nil || res.Next.ID != 2 {
		t.Fatalf("expected card 2 activated, got %+v", res.Next)
	}
	if res.DeckExhausted {
		t.Error("deck is not exhausted while a card is queued")
	}
}

func TestResolve_RetryKeepsCardActive(t *testing.T) {
	snap := deckSnapshot(t,
		state.FlashcardState{ID: 1, Status: state.StatusActive, Attempts: 1, UserAnswers: []string{"a"}},
		state.FlashcardState{ID: 2, Status: state.StatusQueued},
	)

	res, err := Resolve(snap, scoring.NewEvaluation(0.5, "partially there"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.CardResolved {
		t.Error("retry must not resolve the card")
	}
	if res.Card.Status != nil {
		t.Errorf("retry must not change status, got %v", *res.Card.Status)
	}
	if res.Card.Evaluation == nil || res.Card.Evaluation.Result != scoring.ResultPartial {
		t.Errorf("expected stored partial evaluation, got %+v", res.Card.Evaluation)
	}
	if res.Score != nil {
		t.Errorf("retry must not touch the score, got %+v", res.Score)
	}
	if res.Next != nil {
		t.Errorf("retry must not activate the next card, got %+v", res.Next)
	}
	if res.Hard {
		t.Error("retry must not touch the hard list")
	}
}

func TestResolve_ThirdFailureGoesToHardList(t *testing.T) {
	snap := deckSnapshot(t,
		state.FlashcardState{ID: 1, Status: state.StatusActive, Attempts: MaxAttempts, UserAnswers: []string{"a", "b", "c"}},
		state.FlashcardState{ID: 2, Status: state.StatusQueued},
	)

	res, err := Resolve(snap, scoring.NewEvaluation(0.1, "not quite"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !res.CardResolved {
		t.Error("expected resolved card")
	}
	if res.Card.Status == nil || *res.Card.Status != state.StatusCompleted {
		t.Errorf("expected completed status, got %v", res.Card.Status)
	}
	if res.Score == nil || res.Score.Incorrect == nil || *res.Score.Incorrect != 1 {
		t.Errorf("expected incorrect count 1, got %+v", res.Score)
	}
	if res.Score.Correct != nil {
		t.Error("failed resolution must not touch the correct count")
	}
	if !res.Hard {
		t.Error("expected card 1 on the hard list")
	}
	if res.Next == nil || res.Next.ID != 2 {
		t.Fatalf("expected card 2 activated, got %+v", res.Next)
	}
}

func TestResolve_PartialOnLastAttemptStillFails(t *testing.T) {
	snap := deckSnapshot(t, state.FlashcardState{
		ID: 1, Status: state.StatusActive, Attempts: MaxAttempts, UserAnswers: []string{"a", "b", "c"},
	})

	res, err := Resolve(snap, scoring.NewEvaluation(0.5, "half marks"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.CardResolved {
		t.Error("expected resolved card on final attempt")
	}
	if !res.Hard {
		t.Error("expected hard-list append")
	}
	if !res.DeckExhausted {
		t.Error("expected deck exhausted with no queued cards")
	}
}

func TestResolve_LastCardExhaustsDeck(t *testing.T) {
	snap := deckSnapshot(t, state.FlashcardState{
		ID: 1, Status: state.StatusActive, Attempts: 1, UserAnswers: []string{"a"},
	})

	res, err := Resolve(snap, scoring.NewEvaluation(0.8, "boundary correct"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.DeckExhausted {
		t.Error("expected deck exhausted")
	}
	if res.Next != nil {
		t.Errorf("no next card expected, got %+v", res.Next)
	}
}

func TestResolve_ActivatesLowestQueuedID(t *testing.T) {
	snap := deckSnapshot(t,
		state.FlashcardState{ID: 5, Status: state.StatusActive, Attempts: 1, UserAnswers: []string{"a"}},
		state.FlashcardState{ID: 9, Status: state.StatusQueued},
		state.FlashcardState{ID: 7, Status: state.StatusQueued},
	)

	res, err := Resolve(snap, scoring.NewEvaluation(1.0, "perfect"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Next == nil || res.Next.ID != 7 {
		t.Fatalf("expected lowest queued id 7, got %+v", res.Next)
	}
}

func TestResolve_NoActiveCard(t *testing.T) {
	snap := deckSnapshot(t, state.FlashcardState{ID: 1, Status: state.StatusCompleted})

	_, err := Resolve(snap, scoring.NewEvaluation(0.9, "good"))
	if !errors.Is(err, ErrNoActiveCard) {
		t.Fatalf("expected ErrNoActiveCard, got: %v", err)
	}
}
