package orchestrator

import (
	"context"
	"fmt"
	"os"

	"github.com/abhisek/chilltutor/internal/scoring"
	"github.com/abhisek/chilltutor/internal/state"
)

// SnapshotSource loads the current session snapshot.
type SnapshotSource interface {
	Snapshot(ctx context.Context, sessionID string) (*state.Snapshot, error)
}

// Applier is the boundary through which plans reach the world. The
// store implements both operations; ApplyMutation must be atomic and
// PopulateDeck must be idempotent per topic within a session.
type Applier interface {
	ApplyMutation(ctx context.Context, sessionID string, p *state.Partial) error
	PopulateDeck(ctx context.Context, sessionID string, topicID int) error
}

// Evaluator marks one answer against a card's rubric.
type Evaluator interface {
	Evaluate(ctx context.Context, question, markingCriteria, studentAnswer string) (*scoring.EvaluationResult, error)
}

// TurnEvent is the per-turn audit record.
type TurnEvent struct {
	SessionID     string
	FromState     state.QuizStateName
	ToState       state.QuizStateName
	CardID        int
	Attempt       int
	Answer        string
	Result        string
	Score         float64
	CardCompleted bool
}

// TurnLog records turn events. Implemented by the store's event
// repository.
type TurnLog interface {
	AppendTurn(ctx context.Context, ev TurnEvent) error
}

// Runner executes whole turns: load snapshot, compute the plan, apply
// it through the store, record the turn event. One session must never
// have two turns in flight; the host serializes them.
type Runner struct {
	Sessions SnapshotSource
	Store    Applier
	Marker   Evaluator
	Turns    TurnLog
}

// RunTurn processes exactly one turn for the session and returns the
// snapshot after the plan was applied. A rejected turn returns the
// error with the persisted snapshot untouched.
func (r *Runner) RunTurn(ctx context.Context, sessionID string, in TurnInput) (*state.Snapshot, *TurnPlan, error) {
	snap, err := r.Sessions.Snapshot(ctx, sessionID)
	if err != nil {
		return nil, nil, fmt.Errorf("loading session %s: %w", sessionID, err)
	}

	plan, err := Advance(snap, in)
	if err != nil {
		return nil, nil, err
	}

	// Population runs before the mutation so an empty deck rejects the
	// turn with the snapshot unchanged.
	if plan.Populate != nil {
		if err := r.Store.PopulateDeck(ctx, sessionID, plan.Populate.TopicID); err != nil {
			return nil, nil, err
		}
	}

	if !plan.Mutation.IsZero() {
		if err := r.Store.ApplyMutation(ctx, sessionID, plan.Mutation); err != nil {
			return nil, nil, fmt.Errorf("applying mutation for session %s: %w", sessionID, err)
		}
	}

	r.recordTurn(ctx, sessionID, snap, plan, in)

	after, err := r.Sessions.Snapshot(ctx, sessionID)
	if err != nil {
		return nil, nil, fmt.Errorf("reloading session %s: %w", sessionID, err)
	}
	return after, plan, nil
}

// MarkPending evaluates the pending answer of a session that is
// awaiting evaluation and runs the resulting evaluation turn. This is
// the only Runner path that calls the LLM.
func (r *Runner) MarkPending(ctx context.Context, sessionID string) (*state.Snapshot, *TurnPlan, error) {
	snap, err := r.Sessions.Snapshot(ctx, sessionID)
	if err != nil {
		return nil, nil, fmt.Errorf("loading session %s: %w", sessionID, err)
	}

	if snap.QuizState.State != state.StateAwaitingEvaluation {
		return nil, nil, fmt.Errorf("%w: no answer awaiting evaluation", ErrInvalidTransition)
	}

	card := snap.ActiveCard()
	if card == nil || len(card.UserAnswers) == 0 {
		return nil, nil, fmt.Errorf("%w: no answer awaiting evaluation", ErrInvalidTransition)
	}
	answer := card.UserAnswers[len(card.UserAnswers)-1]

	eval, err := r.Marker.Evaluate(ctx, card.Question, card.MarkingCriteria, answer)
	if err != nil {
		return nil, nil, fmt.Errorf("evaluating answer for card %d: %w", card.ID, err)
	}

	return r.RunTurn(ctx, sessionID, TurnInput{Evaluation: eval})
}

// recordTurn appends the audit event for an applied turn. Best effort:
// a failed append never fails the turn.
func (r *Runner) recordTurn(ctx context.Context, sessionID string, before *state.Snapshot, plan *TurnPlan, in TurnInput) {
	if r.Turns == nil {
		return
	}

	ev := TurnEvent{
		SessionID:     sessionID,
		FromState:     before.QuizState.State,
		ToState:       before.QuizState.State,
		CardCompleted: plan.CardResolved,
	}

	if plan.Mutation != nil && plan.Mutation.QuizState != nil && plan.Mutation.QuizState.State != nil {
		ev.ToState = *plan.Mutation.QuizState.State
	}

	if card := before.ActiveCard(); card != nil {
		ev.CardID = card.ID
		ev.Attempt = card.Attempts
	}

	if in.Answer != nil {
		ev.Answer = *in.Answer
		if card := before.ActiveCard(); card != nil {
			ev.Attempt = card.Attempts + 1
		}
	}

	if in.Evaluation != nil {
		ev.Result = string(in.Evaluation.Result)
		ev.Score = in.Evaluation.Score
	}

	if err := r.Turns.AppendTurn(ctx, ev); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to record turn event: %v\n", err)
	}
}
