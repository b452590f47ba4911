package state

import (
	"errors"
	"fmt"

	"github.com/abhisek/chilltutor/internal/scoring"
)

// ErrUnknownFlashcard is returned when a partial update references a
// card id that is not in the snapshot. Population is the only way new
// card states enter a session.
var ErrUnknownFlashcard = errors.New("unknown flashcard id")

// CardPatch is a partial update for one flashcard state, matched by ID.
// Nil pointer fields are left untouched. UserAnswers, when non-nil,
// replaces the whole sequence (the orchestrator always sends the full
// updated list).
type CardPatch struct {
	ID          int                       `json:"id"`
	Status      *CardStatus               `json:"status,omitempty"`
	Attempts    *int                      `json:"attempts,omitempty"`
	UserAnswers []string                  `json:"user_answers,omitempty"`
	Evaluation  *scoring.EvaluationResult `json:"evaluation,omitempty"`
}

// QuizStatePatch is a partial update for the quiz state.
type QuizStatePatch struct {
	State    *QuizStateName `json:"state,omitempty"`
	Progress *int           `json:"progress,omitempty"`
}

// ScorePatch carries absolute replacement values for score fields.
type ScorePatch struct {
	Correct       *int `json:"correct,omitempty"`
	Incorrect     *int `json:"incorrect,omitempty"`
	TotalAttempts *int `json:"total_attempts,omitempty"`
}

// UserPatch is a partial update for the user record.
type UserPatch struct {
	Name            *string `json:"name,omitempty"`
	Emotion         *string `json:"emotion,omitempty"`
	DifficultyLevel *string `json:"difficulty_level,omitempty"`
}

// Partial is the minimal mutation set the orchestrator emits for one
// turn. HardFlashcards lists ids to add to the hard set; the set is
// append-only so removal is not expressible.
type Partial struct {
	CurrentTopicID  *int            `json:"current_topic_id,omitempty"`
	QuizState       *QuizStatePatch `json:"quiz_state,omitempty"`
	FlashcardStates []CardPatch     `json:"flashcard_states,omitempty"`
	Score           *ScorePatch     `json:"score,omitempty"`
	User            *UserPatch      `json:"user,omitempty"`
	HardFlashcards  []int           `json:"hard_flashcards,omitempty"`
}

// IsZero reports whether the partial carries no changes.
func (p *Partial) IsZero() bool {
	return p == nil ||
		(p.CurrentTopicID == nil && p.QuizState == nil && p.Score == nil &&
			p.User == nil && len(p.FlashcardStates) == 0 && len(p.HardFlashcards) == 0)
}

// Merge applies a deep, key-wise partial update to the snapshot.
// Scalar fields are replaced, card patches are field-merged into the
// matching card by id, and card ids absent from the snapshot reject
// the whole merge with ErrUnknownFlashcard before anything is applied.
func Merge(snap *Snapshot, p *Partial) error {
	if p == nil {
		return nil
	}

	// Validate every referenced card first so a bad patch leaves the
	// snapshot byte-for-byte unchanged.
	for _, cp := range p.FlashcardStates {
		if snap.CardByID(cp.ID) == nil {
			return fmt.Errorf("%w: %d", ErrUnknownFlashcard, cp.ID)
		}
	}

	if p.CurrentTopicID != nil {
		snap.CurrentTopicID = *p.CurrentTopicID
	}

	if p.QuizState != nil {
		if p.QuizState.State != nil {
			snap.QuizState.State = *p.QuizState.State
		}
		if p.QuizState.Progress != nil {
			snap.QuizState.Progress = *p.QuizState.Progress
		}
	}

	for _, cp := range p.FlashcardStates {
		card := snap.CardByID(cp.ID)
		if cp.Status != nil {
			card.Status = *cp.Status
		}
		if cp.Attempts != nil {
			card.Attempts = *cp.Attempts
		}
		if cp.UserAnswers != nil {
			card.UserAnswers = append([]string(nil), cp.UserAnswers...)
		}
		if cp.Evaluation != nil {
			ev := *cp.Evaluation
			card.Evaluation = &ev
		}
	}

	if p.Score != nil {
		if p.Score.Correct != nil {
			snap.Score.Correct = *p.Score.Correct
		}
		if p.Score.Incorrect != nil {
			snap.Score.Incorrect = *p.Score.Incorrect
		}
		if p.Score.TotalAttempts != nil {
			snap.Score.TotalAttempts = *p.Score.TotalAttempts
		}
	}

	if p.User != nil {
		if p.User.Name != nil {
			snap.User.Name = *p.User.Name
		}
		if p.User.Emotion != nil {
			snap.User.Emotion = *p.User.Emotion
		}
		if p.User.DifficultyLevel != nil {
			snap.User.Preferences.DifficultyLevel = *p.User.DifficultyLevel
		}
	}

	for _, id := range p.HardFlashcards {
		if !snap.IsHard(id) {
			snap.HardFlashcards = append(snap.HardFlashcards, id)
		}
	}

	return nil
}

// Ptr returns a pointer to v. Keeps partial construction readable.
func Ptr[T any](v T) *T {
	return &v
}
