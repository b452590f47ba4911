package orchestrator

import (
	"errors"
	"testing"

	"github.com/abhisek/chilltutor/internal/flashcards"
	"github.com/abhisek/chilltutor/internal/scoring"
	"github.com/abhisek/chilltutor/internal/state"
)

var testTopics = []state.Topic{
	{ID: 1, Name: "Computational thinking"},
	{ID: 2, Name: "Data"},
}

func freshSnapshot() *state.Snapshot {
	return state.New(testTopics)
}

// answeringSnapshot returns a session mid-quiz with card 1 active and
// card 2 queued.
func answeringSnapshot(attempts int, answers ...string) *state.Snapshot {
	snap := freshSnapshot()
	snap.User.Name = "Sam"
	snap.CurrentTopicID = 2
	snap.QuizState = state.QuizState{State: state.StateAwaitingAnswer}
	snap.FlashcardStates = []state.FlashcardState{
		{ID: 1, Status: state.StatusActive, Question: "Q1", Attempts: attempts, UserAnswers: answers},
		{ID: 2, Status: state.StatusQueued, Question: "Q2"},
	}
	snap.Score.TotalAttempts = attempts
	return snap
}

func mustAdvance(t *testing.T, snap *state.Snapshot, in TurnInput) *TurnPlan {
	t.Helper()
	plan, err := Advance(snap, in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return plan
}

func mustMerge(t *testing.T, snap *state.Snapshot, plan *TurnPlan) {
	t.Helper()
	if err := state.Merge(snap, plan.Mutation); err != nil {
		t.Fatalf("merge: %v", err)
	}
}

func TestAdvance_NameTransition(t *testing.T) {
	snap := freshSnapshot()

	plan := mustAdvance(t, snap, TurnInput{Name: "  Sam  "})

	if plan.Mutation.User == nil || plan.Mutation.User.Name == nil || *plan.Mutation.User.Name != "Sam" {
		t.Errorf("expected trimmed name 'Sam', got %+v", plan.Mutation.User)
	}
	mustMerge(t, snap, plan)
	if snap.QuizState.State != state.StateAwaitingTopic {
		t.Errorf("expected awaiting_topic, got %q", snap.QuizState.State)
	}
}

func TestAdvance_EmptyNameRejected(t *testing.T) {
	snap := freshSnapshot()

	_, err := Advance(snap, TurnInput{Name: "   "})
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got: %v", err)
	}
}

func TestAdvance_TopicSelection(t *testing.T) {
	snap := freshSnapshot()
	snap.User.Name = "Sam"
	snap.QuizState.State = state.StateAwaitingTopic

	plan := mustAdvance(t, snap, TurnInput{TopicID: 2})

	if plan.Populate == nil || plan.Populate.TopicID != 2 {
		t.Fatalf("expected population request for topic 2, got %+v", plan.Populate)
	}
	if plan.Mutation.CurrentTopicID == nil || *plan.Mutation.CurrentTopicID != 2 {
		t.Errorf("expected current_topic_id 2, got %v", plan.Mutation.CurrentTopicID)
	}

	mustMerge(t, snap, plan)
	if snap.QuizState.State != state.StateAwaitingAnswer {
		t.Errorf("expected awaiting_answer, got %q", snap.QuizState.State)
	}
	if snap.QuizState.Progress != 0 {
		t.Errorf("expected progress 0, got %d", snap.QuizState.Progress)
	}
}

func TestAdvance_UnknownTopicRejected(t *testing.T) {
	snap := freshSnapshot()
	snap.QuizState.State = state.StateAwaitingTopic

	_, err := Advance(snap, TurnInput{TopicID: 99})
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got: %v", err)
	}
}

func TestAdvance_AnswerRecordsAttempt(t *testing.T) {
	snap := answeringSnapshot(0)

	plan := mustAdvance(t, snap, TurnInput{Answer: state.Ptr("binary uses two digits")})
	mustMerge(t, snap, plan)

	card := snap.CardByID(1)
	if card.Attempts != 1 {
		t.Errorf("expected attempts 1, got %d", card.Attempts)
	}
	if len(card.UserAnswers) != 1 || card.UserAnswers[0] != "binary uses two digits" {
		t.Errorf("unexpected answers: %v", card.UserAnswers)
	}
	if snap.QuizState.State != state.StateAwaitingEvaluation {
		t.Errorf("expected awaiting_evaluation, got %q", snap.QuizState.State)
	}
	if snap.Score.TotalAttempts != 1 {
		t.Errorf("expected total attempts 1, got %d", snap.Score.TotalAttempts)
	}
}

func TestAdvance_AnswerWithoutAnswerRejected(t *testing.T) {
	snap := answeringSnapshot(0)

	_, err := Advance(snap, TurnInput{Evaluation: &scoring.EvaluationResult{}})
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got: %v", err)
	}
}

func TestAdvance_IncorrectRetrySameCard(t *testing.T) {
	snap := answeringSnapshot(1, "wrong")
	snap.QuizState.State = state.StateAwaitingEvaluation

	eval := scoring.NewEvaluation(0.1, "not quite")
	plan := mustAdvance(t, snap, TurnInput{Evaluation: &eval})
	mustMerge(t, snap, plan)

	card := snap.CardByID(1)
	if card.Status != state.StatusActive {
		t.Errorf("expected card still active, got %q", card.Status)
	}
	if card.Attempts != 1 {
		t.Errorf("resolve must not change attempts, got %d", card.Attempts)
	}
	if snap.QuizState.State != state.StateAwaitingAnswer {
		t.Errorf("expected awaiting_answer, got %q", snap.QuizState.State)
	}
	if snap.Score.Correct != 0 || snap.Score.Incorrect != 0 {
		t.Errorf("retry must not move correct/incorrect: %+v", snap.Score)
	}
	if len(snap.HardFlashcards) != 0 {
		t.Errorf("retry must not touch the hard list: %v", snap.HardFlashcards)
	}
	if snap.User.Emotion != emotionPersevering {
		t.Errorf("expected %q emotion, got %q", emotionPersevering, snap.User.Emotion)
	}
}

func TestAdvance_ThirdFailureCompletesAndHardLists(t *testing.T) {
	snap := answeringSnapshot(3, "a", "b", "c")
	snap.QuizState.State = state.StateAwaitingEvaluation

	eval := scoring.NewEvaluation(0.2, "keep at it")
	plan := mustAdvance(t, snap, TurnInput{Evaluation: &eval})
	mustMerge(t, snap, plan)

	if snap.CardByID(1).Status != state.StatusCompleted {
		t.Error("expected card 1 completed")
	}
	if snap.CardByID(2).Status != state.StatusActive {
		t.Error("expected card 2 active")
	}
	if !snap.IsHard(1) {
		t.Errorf("expected card 1 on the hard list: %v", snap.HardFlashcards)
	}
	if snap.Score.Incorrect != 1 {
		t.Errorf("expected incorrect 1, got %d", snap.Score.Incorrect)
	}
	if snap.QuizState.State != state.StateAwaitingAnswer {
		t.Errorf("expected awaiting_answer, got %q", snap.QuizState.State)
	}
	if snap.QuizState.Progress != 1 {
		t.Errorf("expected progress 1, got %d", snap.QuizState.Progress)
	}
	if snap.User.Emotion != emotionStruggling {
		t.Errorf("expected %q emotion, got %q", emotionStruggling, snap.User.Emotion)
	}
}

func TestAdvance_ThirdFailureHardListsCardZero(t *testing.T) {
	snap := freshSnapshot()
	snap.User.Name = "Sam"
	snap.CurrentTopicID = 2
	snap.QuizState = state.QuizState{State: state.StateAwaitingEvaluation}
	snap.FlashcardStates = []state.FlashcardState{
		{ID: 0, Status: state.StatusActive, Question: "Q0", Attempts: 3, UserAnswers: []string{"a", "b", "c"}},
	}
	snap.Score.TotalAttempts = 3

	eval := scoring.NewEvaluation(0.1, "missed the criteria")
	plan := mustAdvance(t, snap, TurnInput{Evaluation: &eval})
	mustMerge(t, snap, plan)

	if !snap.IsHard(0) {
		t.Errorf("expected card 0 on the hard list: %v", snap.HardFlashcards)
	}
	if snap.User.Emotion != emotionStruggling {
		t.Errorf("expected %q emotion, got %q", emotionStruggling, snap.User.Emotion)
	}
}

func TestAdvance_LastCardCorrectCompletesSession(t *testing.T) {
	snap := answeringSnapshot(1, "good answer")
	snap.QuizState.State = state.StateAwaitingEvaluation
	snap.FlashcardStates = snap.FlashcardStates[:1] // only card 1 remains

	eval := scoring.NewEvaluation(0.95, "excellent")
	plan := mustAdvance(t, snap, TurnInput{Evaluation: &eval})

	if !plan.DeckExhausted {
		t.Error("expected deck exhausted")
	}
	mustMerge(t, snap, plan)

	if snap.CardByID(1).Status != state.StatusCompleted {
		t.Error("expected card completed")
	}
	if snap.QuizState.State != state.StateSessionComplete {
		t.Errorf("expected session_complete, got %q", snap.QuizState.State)
	}
	if snap.QuizState.Progress != 1 {
		t.Errorf("expected progress 1, got %d", snap.QuizState.Progress)
	}
	if snap.Score.Correct != 1 {
		t.Errorf("expected correct 1, got %d", snap.Score.Correct)
	}
	if len(snap.HardFlashcards) != 0 {
		t.Errorf("correct resolution must not touch the hard list: %v", snap.HardFlashcards)
	}
	if snap.User.Emotion != emotionEncouraged {
		t.Errorf("expected %q emotion, got %q", emotionEncouraged, snap.User.Emotion)
	}
}

func TestAdvance_SessionCompleteIsTerminal(t *testing.T) {
	snap := freshSnapshot()
	snap.QuizState.State = state.StateSessionComplete

	for _, in := range []TurnInput{
		{Name: "Sam"},
		{TopicID: 1},
		{Answer: state.Ptr("answer")},
		{Evaluation: &scoring.EvaluationResult{}},
	} {
		if _, err := Advance(snap, in); !errors.Is(err, ErrInvalidTransition) {
			t.Errorf("input %+v: expected ErrInvalidTransition, got: %v", in, err)
		}
	}
}

func TestAdvance_AttemptLimitSurfaced(t *testing.T) {
	snap := answeringSnapshot(3, "a", "b", "c")

	_, err := Advance(snap, TurnInput{Answer: state.Ptr("fourth")})
	if !errors.Is(err, flashcards.ErrAttemptLimit) {
		t.Fatalf("expected ErrAttemptLimit, got: %v", err)
	}
}

// Full session walk: name, topic, then answer/evaluate every card,
// checking the structural invariants hold at each step.
func TestAdvance_FullSessionInvariants(t *testing.T) {
	snap := freshSnapshot()

	mustMerge(t, snap, mustAdvance(t, snap, TurnInput{Name: "Sam"}))
	plan := mustAdvance(t, snap, TurnInput{TopicID: 2})
	mustMerge(t, snap, plan)

	// Host-side population.
	snap.FlashcardStates = flashcards.InitialStates([]state.Flashcard{
		{ID: 1, TopicID: 2, Question: "Q1"},
		{ID: 2, TopicID: 2, Question: "Q2"},
		{ID: 3, TopicID: 2, Question: "Q3"},
	})

	// Card 1 correct first try; card 2 fails out; card 3 correct on
	// the second try.
	evals := []scoring.EvaluationResult{
		scoring.NewEvaluation(0.9, ""),
		scoring.NewEvaluation(0.1, ""), scoring.NewEvaluation(0.2, ""), scoring.NewEvaluation(0.1, ""),
		scoring.NewEvaluation(0.5, ""), scoring.NewEvaluation(1.0, ""),
	}

	for i, eval := range evals {
		mustMerge(t, snap, mustAdvance(t, snap, TurnInput{Answer: state.Ptr("answer")}))
		checkInvariants(t, snap)
		ev := eval
		mustMerge(t, snap, mustAdvance(t, snap, TurnInput{Evaluation: &ev}))
		checkInvariants(t, snap)
		if t.Failed() {
			t.Fatalf("invariants broken after evaluation %d", i+1)
		}
	}

	if snap.QuizState.State != state.StateSessionComplete {
		t.Errorf("expected session_complete, got %q", snap.QuizState.State)
	}
	if snap.Score.Correct != 2 || snap.Score.Incorrect != 1 || snap.Score.TotalAttempts != 6 {
		t.Errorf("unexpected final score: %+v", snap.Score)
	}
	if snap.QuizState.Progress != 3 {
		t.Errorf("expected progress 3, got %d", snap.QuizState.Progress)
	}
	if len(snap.HardFlashcards) != 1 || snap.HardFlashcards[0] != 2 {
		t.Errorf("expected hard list [2], got %v", snap.HardFlashcards)
	}
}

func checkInvariants(t *testing.T, snap *state.Snapshot) {
	t.Helper()

	active, completed, totalAttempts := 0, 0, 0
	for _, c := range snap.FlashcardStates {
		if c.Status == state.StatusActive {
			active++
		}
		if c.Status == state.StatusCompleted {
			completed++
		}
		if c.Attempts != len(c.UserAnswers) {
			t.Errorf("card %d: attempts %d != answers %d", c.ID, c.Attempts, len(c.UserAnswers))
		}
		if c.Attempts > flashcards.MaxAttempts {
			t.Errorf("card %d: attempts %d over the cap", c.ID, c.Attempts)
		}
		totalAttempts += c.Attempts
	}

	if active > 1 {
		t.Errorf("%d active cards", active)
	}
	if got := snap.Score.Correct + snap.Score.Incorrect; got != completed {
		t.Errorf("correct+incorrect %d != completed cards %d", got, completed)
	}
	if snap.Score.TotalAttempts != totalAttempts {
		t.Errorf("score total attempts %d != sum of card attempts %d", snap.Score.TotalAttempts, totalAttempts)
	}
	if snap.QuizState.Progress != completed {
		t.Errorf("progress %d != completed cards %d", snap.QuizState.Progress, completed)
	}
}
