package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abhisek/chilltutor/internal/orchestrator"
	"github.com/abhisek/chilltutor/internal/scoring"
	"github.com/abhisek/chilltutor/internal/state"
)

func testSnapshot() *state.Snapshot {
	snap := state.New([]state.Topic{
		{ID: 1, Name: "Computational Thinking"},
		{ID: 2, Name: "Data Representation"},
	})
	snap.User.Name = "Priya"
	return snap
}

func TestResolveTopic(t *testing.T) {
	m := &Model{snap: testSnapshot()}

	id, ok := m.resolveTopic("2")
	assert.True(t, ok)
	assert.Equal(t, 2, id)

	id, ok = m.resolveTopic("data representation")
	assert.True(t, ok)
	assert.Equal(t, 2, id)

	_, ok = m.resolveTopic("quantum computing")
	assert.False(t, ok)
}

func TestPromptPerState(t *testing.T) {
	m := &Model{snap: testSnapshot()}

	assert.Contains(t, m.prompt(), "What's your name?")

	m.snap.QuizState.State = state.StateAwaitingTopic
	p := m.prompt()
	assert.Contains(t, p, "Priya")
	assert.Contains(t, p, "1. Computational Thinking")
	assert.Contains(t, p, "2. Data Representation")

	m.snap.QuizState.State = state.StateAwaitingAnswer
	m.snap.FlashcardStates = []state.FlashcardState{
		{ID: 1, Question: "What is binary?", Status: state.StatusActive, Attempts: 1, UserAnswers: []string{"bits"}},
	}
	p = m.prompt()
	assert.Contains(t, p, "attempt 2 of 3")
	assert.Contains(t, p, "What is binary?")
}

func TestSummaryListsHardCards(t *testing.T) {
	m := &Model{snap: testSnapshot()}
	m.snap.QuizState.State = state.StateSessionComplete
	m.snap.Score = state.Score{Correct: 2, Incorrect: 1, TotalAttempts: 6}
	m.snap.FlashcardStates = []state.FlashcardState{
		{ID: 3, Question: "Explain encryption.", Status: state.StatusCompleted},
	}
	m.snap.HardFlashcards = []int{3}

	s := m.summary()
	assert.Contains(t, s, "2 correct, 1 incorrect over 6 attempts")
	assert.Contains(t, s, "Explain encryption.")
}

func TestLoadResumesPendingEvaluation(t *testing.T) {
	snap := testSnapshot()
	snap.QuizState.State = state.StateAwaitingEvaluation
	snap.FlashcardStates = []state.FlashcardState{
		{ID: 1, Question: "What is binary?", Status: state.StatusActive, Attempts: 1, UserAnswers: []string{"bits"}},
	}

	m := New(nil, "session-1")
	_, cmd := m.Update(snapshotLoadedMsg{snap: snap})

	assert.NotNil(t, cmd, "resuming in awaiting_evaluation must trigger marking")
	assert.True(t, m.busy)
}

func TestLoadPromptsForName(t *testing.T) {
	m := New(nil, "session-1")
	_, _ = m.Update(snapshotLoadedMsg{snap: testSnapshot()})

	assert.False(t, m.busy)
	if assert.NotEmpty(t, m.lines) {
		assert.Contains(t, m.lines[len(m.lines)-1].text, "What's your name?")
	}
}

func TestSayFeedbackVerdicts(t *testing.T) {
	prev := testSnapshot()
	prev.QuizState.State = state.StateAwaitingEvaluation
	prev.FlashcardStates = []state.FlashcardState{
		{ID: 1, Question: "What is binary?", Answer: "Base-2 number system.", Status: state.StatusActive, Attempts: 1, UserAnswers: []string{"bits"}},
	}

	m := &Model{snap: prev.Clone()}
	m.snap.CardByID(1).Evaluation = &scoring.EvaluationResult{
		Result: scoring.ResultPartial, Score: 0.5, Feedback: "Good start; name the base.",
	}
	m.sayFeedback(prev, &orchestrator.TurnPlan{})

	if assert.NotEmpty(t, m.lines) {
		got := m.lines[len(m.lines)-1].text
		assert.Contains(t, got, "Partially there.")
		assert.Contains(t, got, "Good start; name the base.")
		assert.NotContains(t, got, "Base-2", "retry must not reveal the model answer")
	}

	// A card that failed out gets the model answer.
	m = &Model{snap: prev.Clone()}
	m.snap.CardByID(1).Evaluation = &scoring.EvaluationResult{
		Result: scoring.ResultIncorrect, Score: 0.1, Feedback: "Review the definition.",
	}
	m.sayFeedback(prev, &orchestrator.TurnPlan{CardResolved: true})

	if assert.NotEmpty(t, m.lines) {
		got := m.lines[len(m.lines)-1].text
		assert.Contains(t, got, "Not quite.")
		assert.Contains(t, got, "Base-2 number system.")
	}
}

func TestClampHeight(t *testing.T) {
	assert.Equal(t, "c\nd", clampHeight("a\nb\nc\nd", 2))
	assert.Equal(t, "a\nb", clampHeight("a\nb", 5))
	assert.Equal(t, "", clampHeight("a\nb", 0))
}
