package state

import (
	"errors"
	"reflect"
	"testing"

	"github.com/abhisek/chilltutor/internal/scoring"
)

func sampleSnapshot() *Snapshot {
	snap := New([]Topic{{ID: 1, Name: "Computational thinking"}, {ID: 2, Name: "Data"}})
	snap.CurrentTopicID = 2
	snap.QuizState = QuizState{State: StateAwaitingAnswer, Progress: 1}
	snap.User = User{Name: "Sam", Emotion: "curious"}
	snap.Score = Score{Correct: 1, Incorrect: 0, TotalAttempts: 2}
	snap.FlashcardStates = []FlashcardState{
		{ID: 1, Status: StatusCompleted, Question: "Q1", Attempts: 2, UserAnswers: []string{"a", "b"}},
		{ID: 2, Status: StatusActive, Question: "Q2"},
		{ID: 3, Status: StatusQueued, Question: "Q3"},
	}
	snap.HardFlashcards = []int{7}
	return snap
}

func TestMerge_ScalarsReplaced(t *testing.T) {
	snap := sampleSnapshot()

	err := Merge(snap, &Partial{
		CurrentTopicID: Ptr(1),
		QuizState:      &QuizStatePatch{State: Ptr(StateAwaitingEvaluation)},
		User:           &UserPatch{Emotion: Ptr("focused")},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if snap.CurrentTopicID != 1 {
		t.Errorf("expected topic 1, got %d", snap.CurrentTopicID)
	}
	if snap.QuizState.State != StateAwaitingEvaluation {
		t.Errorf("expected awaiting_evaluation, got %q", snap.QuizState.State)
	}
	if snap.QuizState.Progress != 1 {
		t.Errorf("untouched progress changed: %d", snap.QuizState.Progress)
	}
	if snap.User.Emotion != "focused" {
		t.Errorf("expected focused, got %q", snap.User.Emotion)
	}
	if snap.User.Name != "Sam" {
		t.Errorf("untouched name changed: %q", snap.User.Name)
	}
}

func TestMerge_CardFieldMergeByID(t *testing.T) {
	snap := sampleSnapshot()

	eval := scoring.NewEvaluation(0.5, "halfway")
	err := Merge(snap, &Partial{
		FlashcardStates: []CardPatch{{
			ID:          2,
			Attempts:    Ptr(1),
			UserAnswers: []string{"first go"},
			Evaluation:  &eval,
		}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	card := snap.CardByID(2)
	if card.Attempts != 1 || len(card.UserAnswers) != 1 {
		t.Errorf("patch not applied: %+v", card)
	}
	if card.Status != StatusActive {
		t.Errorf("untouched status changed: %q", card.Status)
	}
	if card.Question != "Q2" {
		t.Errorf("untouched question changed: %q", card.Question)
	}
	if card.Evaluation == nil || card.Evaluation.Result != scoring.ResultPartial {
		t.Errorf("evaluation not stored: %+v", card.Evaluation)
	}

	// Other cards untouched.
	if snap.CardByID(1).Attempts != 2 {
		t.Error("sibling card mutated")
	}
}

func TestMerge_UnknownCardRejectsWholeMerge(t *testing.T) {
	snap := sampleSnapshot()
	before := snap.Clone()

	err := Merge(snap, &Partial{
		CurrentTopicID: Ptr(1),
		FlashcardStates: []CardPatch{
			{ID: 2, Attempts: Ptr(1)},
			{ID: 99, Attempts: Ptr(1)},
		},
	})
	if !errors.Is(err, ErrUnknownFlashcard) {
		t.Fatalf("expected ErrUnknownFlashcard, got: %v", err)
	}

	if !reflect.DeepEqual(snap.Clone(), before) {
		t.Error("rejected merge must leave the snapshot unchanged")
	}
}

func TestMerge_HardFlashcardsAppendOnlyAndDeduped(t *testing.T) {
	snap := sampleSnapshot()

	if err := Merge(snap, &Partial{HardFlashcards: []int{7, 3}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(snap.HardFlashcards, []int{7, 3}) {
		t.Errorf("expected [7 3], got %v", snap.HardFlashcards)
	}

	if err := Merge(snap, &Partial{HardFlashcards: []int{3}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(snap.HardFlashcards, []int{7, 3}) {
		t.Errorf("expected no duplicates, got %v", snap.HardFlashcards)
	}
}

func TestMerge_NilAndZeroPartials(t *testing.T) {
	snap := sampleSnapshot()
	before := snap.Clone()

	if err := Merge(snap, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Merge(snap, &Partial{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(snap.Clone(), before) {
		t.Error("empty merges must not change the snapshot")
	}

	if !(&Partial{}).IsZero() {
		t.Error("empty partial should be zero")
	}
	if (&Partial{CurrentTopicID: Ptr(1)}).IsZero() {
		t.Error("non-empty partial should not be zero")
	}
}

func TestMerge_UserAnswersReplacedWholesale(t *testing.T) {
	snap := sampleSnapshot()

	err := Merge(snap, &Partial{
		FlashcardStates: []CardPatch{{ID: 1, UserAnswers: []string{"a", "b", "c"}}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := snap.CardByID(1).UserAnswers; !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Errorf("expected replaced answers, got %v", got)
	}
}

func TestClone_IsolatesMutations(t *testing.T) {
	snap := sampleSnapshot()
	eval := scoring.NewEvaluation(0.9, "good")
	snap.FlashcardStates[0].Evaluation = &eval

	clone := snap.Clone()
	clone.User.Name = "Alex"
	clone.FlashcardStates[0].UserAnswers[0] = "mutated"
	clone.FlashcardStates[0].Evaluation.Feedback = "mutated"
	clone.HardFlashcards[0] = 99

	if snap.User.Name != "Sam" {
		t.Error("clone shares user")
	}
	if snap.FlashcardStates[0].UserAnswers[0] != "a" {
		t.Error("clone shares answer slices")
	}
	if snap.FlashcardStates[0].Evaluation.Feedback != "good" {
		t.Error("clone shares evaluation")
	}
	if snap.HardFlashcards[0] != 7 {
		t.Error("clone shares hard list")
	}
}

func TestSnapshotAccessors(t *testing.T) {
	snap := sampleSnapshot()

	if c := snap.ActiveCard(); c == nil || c.ID != 2 {
		t.Errorf("expected active card 2, got %+v", c)
	}
	if c := snap.NextQueued(); c == nil || c.ID != 3 {
		t.Errorf("expected queued card 3, got %+v", c)
	}
	if snap.CardByID(42) != nil {
		t.Error("expected nil for unknown card")
	}
	if tp := snap.TopicByID(2); tp == nil || tp.Name != "Data" {
		t.Errorf("expected topic Data, got %+v", tp)
	}
	if !snap.IsHard(7) || snap.IsHard(1) {
		t.Error("hard list lookup wrong")
	}
}
