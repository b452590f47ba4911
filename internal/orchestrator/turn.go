// Package orchestrator drives the quiz session state machine. Advance
// is a pure function from (snapshot, turn input) to a mutation plan;
// Runner applies plans through the store boundary.
package orchestrator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/chilltutor/internal/flashcards"
	"github.com/abhisek/chilltutor/internal/scoring"
	"github.com/abhisek/chilltutor/internal/state"
)

// ErrInvalidTransition is returned for input that does not trigger a
// legal transition from the session's current state. The snapshot is
// never mutated on rejection; the caller re-prompts.
var ErrInvalidTransition = errors.New("invalid session transition")

// ErrEmptyDeck is returned when deck population finds no flashcards for
// the selected topic. The session stays in topic selection.
var ErrEmptyDeck = errors.New("no flashcards for topic")

// Emotion hints written alongside transitions. Free-form tags for the
// response layer; no control-flow weight.
const (
	emotionEncouraged  = "encouraged"
	emotionPersevering = "persevering"
	emotionStruggling  = "struggling"
)

// TurnInput carries the typed input for one turn. Exactly one field is
// consumed, chosen by the session's current state: Name while awaiting
// the learner's name, TopicID while awaiting a topic, Answer while
// awaiting an answer, Evaluation while awaiting an evaluation.
type TurnInput struct {
	Name       string
	TopicID    int
	Answer     *string
	Evaluation *scoring.EvaluationResult
}

// PopulateRequest asks the host to materialize the deck for a topic.
type PopulateRequest struct {
	TopicID int
}

// TurnPlan is what one turn emits: at most one mutation and at most one
// population request. The flags describe the card-level outcome so the
// host can shape its response without re-deriving it.
type TurnPlan struct {
	Mutation *state.Partial
	Populate *PopulateRequest

	CardResolved  bool
	DeckExhausted bool
}

// Advance computes the single legal transition for the given input, or
// rejects it with ErrInvalidTransition. It never mutates the snapshot;
// all changes are described in the returned plan.
func Advance(snap *state.Snapshot, in TurnInput) (*TurnPlan, error) {
	switch snap.QuizState.State {
	case state.StateAwaitingName:
		return advanceName(in)
	case state.StateAwaitingTopic:
		return advanceTopic(snap, in)
	case state.StateAwaitingAnswer:
		return advanceAnswer(snap, in)
	case state.StateAwaitingEvaluation:
		return advanceEvaluation(snap, in)
	case state.StateSessionComplete:
		return nil, fmt.Errorf("%w: session is complete", ErrInvalidTransition)
	default:
		return nil, fmt.Errorf("%w: unrecognized state %q", ErrInvalidTransition, snap.QuizState.State)
	}
}

func advanceName(in TurnInput) (*TurnPlan, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: a name is required to begin", ErrInvalidTransition)
	}

	return &TurnPlan{
		Mutation: &state.Partial{
			User: &state.UserPatch{Name: state.Ptr(name)},
			QuizState: &state.QuizStatePatch{
				State: state.Ptr(state.StateAwaitingTopic),
			},
		},
	}, nil
}

func advanceTopic(snap *state.Snapshot, in TurnInput) (*TurnPlan, error) {
	if snap.TopicByID(in.TopicID) == nil {
		return nil, fmt.Errorf("%w: unknown topic %d", ErrInvalidTransition, in.TopicID)
	}

	return &TurnPlan{
		Mutation: &state.Partial{
			CurrentTopicID: state.Ptr(in.TopicID),
			QuizState: &state.QuizStatePatch{
				State:    state.Ptr(state.StateAwaitingAnswer),
				Progress: state.Ptr(0),
			},
		},
		Populate: &PopulateRequest{TopicID: in.TopicID},
	}, nil
}

func advanceAnswer(snap *state.Snapshot, in TurnInput) (*TurnPlan, error) {
	if in.Answer == nil {
		return nil, fmt.Errorf("%w: an answer is required", ErrInvalidTransition)
	}

	att, err := flashcards.RecordAttempt(snap, *in.Answer)
	if err != nil {
		return nil, err
	}

	return &TurnPlan{
		Mutation: &state.Partial{
			QuizState: &state.QuizStatePatch{
				State: state.Ptr(state.StateAwaitingEvaluation),
			},
			FlashcardStates: []state.CardPatch{att.Card},
			Score:           &att.Score,
		},
	}, nil
}

func advanceEvaluation(snap *state.Snapshot, in TurnInput) (*TurnPlan, error) {
	if in.Evaluation == nil {
		return nil, fmt.Errorf("%w: an evaluation is required", ErrInvalidTransition)
	}

	res, err := flashcards.Resolve(snap, *in.Evaluation)
	if err != nil {
		return nil, err
	}

	mut := &state.Partial{
		FlashcardStates: []state.CardPatch{res.Card},
	}
	quizState := &state.QuizStatePatch{
		State: state.Ptr(state.StateAwaitingAnswer),
	}
	emotion := emotionPersevering

	if res.CardResolved {
		quizState.Progress = state.Ptr(snap.QuizState.Progress + 1)
		mut.Score = res.Score

		if res.Hard {
			mut.HardFlashcards = []int{res.Card.ID}
			emotion = emotionStruggling
		} else {
			emotion = emotionEncouraged
		}

		if res.Next != nil {
			mut.FlashcardStates = append(mut.FlashcardStates, *res.Next)
		} else {
			quizState.State = state.Ptr(state.StateSessionComplete)
		}
	}

	mut.QuizState = quizState
	mut.User = &state.UserPatch{Emotion: state.Ptr(emotion)}

	return &TurnPlan{
		Mutation:      mut,
		CardResolved:  res.CardResolved,
		DeckExhausted: res.DeckExhausted,
	}, nil
}
