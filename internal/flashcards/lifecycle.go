// Package flashcards implements the per-card lifecycle policy: the
// attempt cap, the retry/resolve decision after an evaluation, and the
// activation of the next queued card.
package flashcards

import (
	"errors"

	"github.com/abhisek/chilltutor/internal/scoring"
	"github.com/abhisek/chilltutor/internal/state"
)

// MaxAttempts is the hard cap on answers per card. A card that is not
// answered correctly within this many attempts resolves as incorrect
// and goes on the hard list.
const MaxAttempts = 3

var (
	// ErrAttemptLimit is returned when an answer arrives for a card
	// that already used all its attempts.
	ErrAttemptLimit = errors.New("flashcard attempt limit reached")

	// ErrNoActiveCard is returned when an answer or evaluation arrives
	// while no card is active.
	ErrNoActiveCard = errors.New("no active flashcard")
)

// InitialStates builds the session card states for a freshly selected
// deck: the lowest-id card starts active, the rest queued.
func InitialStates(cards []state.Flashcard) []state.FlashcardState {
	out := make([]state.FlashcardState, len(cards))
	lowest := -1
	for i, c := range cards {
		out[i] = state.FlashcardState{
			ID:              c.ID,
			Status:          state.StatusQueued,
			Question:        c.Question,
			Answer:          c.Answer,
			MarkingCriteria: c.MarkingCriteria,
		}
		if lowest == -1 || c.ID < out[lowest].ID {
			lowest = i
		}
	}
	if lowest >= 0 {
		out[lowest].Status = state.StatusActive
	}
	return out
}

// Attempt is the mutation fragment for one recorded answer.
type Attempt struct {
	Card  state.CardPatch
	Score state.ScorePatch
}

// RecordAttempt appends the learner's answer to the active card and
// bumps the attempt counters. The snapshot itself is not modified;
// the caller merges the returned patches.
func RecordAttempt(snap *state.Snapshot, answer string) (Attempt, error) {
	card := snap.ActiveCard()
	if card == nil {
		return Attempt{}, ErrNoActiveCard
	}
	if card.Attempts >= MaxAttempts {
		return Attempt{}, ErrAttemptLimit
	}

	answers := make([]string, 0, len(card.UserAnswers)+1)
	answers = append(answers, card.UserAnswers...)
	answers = append(answers, answer)

	return Attempt{
		Card: state.CardPatch{
			ID:          card.ID,
			Attempts:    state.Ptr(card.Attempts + 1),
			UserAnswers: answers,
		},
		Score: state.ScorePatch{
			TotalAttempts: state.Ptr(snap.Score.TotalAttempts + 1),
		},
	}, nil
}

// Resolution is the outcome of applying an evaluation to the active
// card. Card always carries the stored evaluation; the other fields are
// set only on terminal resolutions.
type Resolution struct {
	Card state.CardPatch

	// Next activates the next queued card. Nil on retry or when the
	// deck is exhausted.
	Next *state.CardPatch

	// Score is set exactly once per card, when it resolves.
	Score *state.ScorePatch

	// Hard reports the card resolved by exhausting its attempts and
	// joins the hard list. The card id is Card.ID.
	Hard bool

	// CardResolved reports a terminal resolution (correct answer or
	// attempts exhausted).
	CardResolved bool

	// DeckExhausted reports that the card resolved and no queued card
	// remains.
	DeckExhausted bool
}

// Resolve applies an evaluation result to the active card and decides
// between retry, mastery, and the hard-list path:
//
//   - correct: card completes, correct count bumps, next card activates
//   - not correct, attempts remain: card stays active for another try
//   - not correct, attempts exhausted: card completes as incorrect,
//     incorrect count bumps, the card joins the hard list
func Resolve(snap *state.Snapshot, eval scoring.EvaluationResult) (Resolution, error) {
	card := snap.ActiveCard()
	if card == nil {
		return Resolution{}, ErrNoActiveCard
	}

	res := Resolution{
		Card: state.CardPatch{
			ID:         card.ID,
			Evaluation: &eval,
		},
	}

	switch {
	case eval.Correct():
		res.Card.Status = state.Ptr(state.StatusCompleted)
		res.Score = &state.ScorePatch{Correct: state.Ptr(snap.Score.Correct + 1)}
		res.CardResolved = true

	case card.Attempts >= MaxAttempts:
		res.Card.Status = state.Ptr(state.StatusCompleted)
		res.Score = &state.ScorePatch{Incorrect: state.Ptr(snap.Score.Incorrect + 1)}
		res.Hard = true
		res.CardResolved = true

	default:
		// Retry: the evaluation is stored for feedback but the card
		// stays active and nothing else moves.
		return res, nil
	}

	if next := snap.NextQueued(); next != nil {
		res.Next = &state.CardPatch{
			ID:     next.ID,
			Status: state.Ptr(state.StatusActive),
		}
	} else {
		res.DeckExhausted = true
	}

	return res, nil
}
