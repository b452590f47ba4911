package state

import (
	"github.com/abhisek/chilltutor/internal/scoring"
)

// QuizStateName identifies where a session is in the quiz flow.
type QuizStateName string

const (
	StateAwaitingName       QuizStateName = "awaiting_name"
	StateAwaitingTopic      QuizStateName = "awaiting_topic"
	StateAwaitingAnswer     QuizStateName = "awaiting_answer"
	StateAwaitingEvaluation QuizStateName = "awaiting_evaluation"
	StateSessionComplete    QuizStateName = "session_complete"
)

// CardStatus is a flashcard's position in its lifecycle.
type CardStatus string

const (
	StatusQueued    CardStatus = "queued"
	StatusActive    CardStatus = "active"
	StatusCompleted CardStatus = "completed"
)

// Topic is immutable reference data a learner picks a deck from.
type Topic struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Flashcard is immutable card content loaded per topic.
type Flashcard struct {
	ID              int    `json:"id"`
	TopicID         int    `json:"topic_id"`
	Question        string `json:"question"`
	Answer          string `json:"answer"`
	MarkingCriteria string `json:"marking_criteria"`
}

// FlashcardState is the mutable per-session state of one card.
// The question and rubric are denormalized onto the state entry so a
// turn never needs a content lookup mid-session.
type FlashcardState struct {
	ID              int                       `json:"id"`
	Status          CardStatus                `json:"status"`
	Question        string                    `json:"question"`
	Answer          string                    `json:"answer"`
	MarkingCriteria string                    `json:"marking_criteria"`
	Attempts        int                       `json:"attempts"`
	UserAnswers     []string                  `json:"user_answers"`
	Evaluation      *scoring.EvaluationResult `json:"evaluation,omitempty"`
}

// Score aggregates evaluated answers over the session.
// Correct and Incorrect move only on terminal card resolutions;
// TotalAttempts moves on every recorded attempt.
type Score struct {
	Correct       int `json:"correct"`
	Incorrect     int `json:"incorrect"`
	TotalAttempts int `json:"total_attempts"`
}

// QuizState is the session machine position plus resolved-card count.
type QuizState struct {
	State    QuizStateName `json:"state"`
	Progress int           `json:"progress"`
}

// Preferences holds learner preferences. Pass-through for the core.
type Preferences struct {
	DifficultyLevel string `json:"difficulty_level"`
}

// User is the learner record. Emotion is an opportunistic hint for the
// response layer and carries no control-flow weight here.
type User struct {
	Name        string      `json:"name"`
	Emotion     string      `json:"emotion"`
	Preferences Preferences `json:"preferences"`
}

// Snapshot is the complete session state record passed into the
// orchestrator for one turn.
type Snapshot struct {
	Topics          []Topic          `json:"topics"`
	CurrentTopicID  int              `json:"current_topic_id"`
	FlashcardStates []FlashcardState `json:"flashcard_states"`
	Score           Score            `json:"score"`
	QuizState       QuizState        `json:"quiz_state"`
	User            User             `json:"user"`
	HardFlashcards  []int            `json:"hard_flashcards"`
}

// New creates the initial snapshot for a fresh session.
func New(topics []Topic) *Snapshot {
	return &Snapshot{
		Topics:    topics,
		QuizState: QuizState{State: StateAwaitingName},
	}
}

// CardByID returns the flashcard state with the given id, or nil.
func (s *Snapshot) CardByID(id int) *FlashcardState {
	for i := range s.FlashcardStates {
		if s.FlashcardStates[i].ID == id {
			return &s.FlashcardStates[i]
		}
	}
	return nil
}

// ActiveCard returns the card with status active, or nil.
// The merge and lifecycle invariants keep this at most one.
func (s *Snapshot) ActiveCard() *FlashcardState {
	for i := range s.FlashcardStates {
		if s.FlashcardStates[i].Status == StatusActive {
			return &s.FlashcardStates[i]
		}
	}
	return nil
}

// NextQueued returns the queued card with the lowest id, or nil.
func (s *Snapshot) NextQueued() *FlashcardState {
	var next *FlashcardState
	for i := range s.FlashcardStates {
		c := &s.FlashcardStates[i]
		if c.Status != StatusQueued {
			continue
		}
		if next == nil || c.ID < next.ID {
			next = c
		}
	}
	return next
}

// TopicByID returns the topic with the given id, or nil.
func (s *Snapshot) TopicByID(id int) *Topic {
	for i := range s.Topics {
		if s.Topics[i].ID == id {
			return &s.Topics[i]
		}
	}
	return nil
}

// IsHard reports whether the card id is already in the hard list.
func (s *Snapshot) IsHard(id int) bool {
	for _, h := range s.HardFlashcards {
		if h == id {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the snapshot. Mutation plans are applied
// to a clone first so a rejected merge leaves the original untouched.
func (s *Snapshot) Clone() *Snapshot {
	out := *s

	if s.Topics != nil {
		out.Topics = make([]Topic, len(s.Topics))
		copy(out.Topics, s.Topics)
	}

	if s.FlashcardStates != nil {
		out.FlashcardStates = make([]FlashcardState, len(s.FlashcardStates))
		for i, c := range s.FlashcardStates {
			cc := c
			if c.UserAnswers != nil {
				cc.UserAnswers = make([]string, len(c.UserAnswers))
				copy(cc.UserAnswers, c.UserAnswers)
			}
			if c.Evaluation != nil {
				ev := *c.Evaluation
				cc.Evaluation = &ev
			}
			out.FlashcardStates[i] = cc
		}
	}

	if s.HardFlashcards != nil {
		out.HardFlashcards = make([]int, len(s.HardFlashcards))
		copy(out.HardFlashcards, s.HardFlashcards)
	}

	return &out
}
