package store

import (
	"context"
	"time"

	"github.com/abhisek/chilltutor/ent"
	"github.com/abhisek/chilltutor/internal/llm"
	"github.com/abhisek/chilltutor/internal/orchestrator"
	"github.com/abhisek/chilltutor/internal/state"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// ContentRepo provides access to the immutable topic and flashcard bank.
type ContentRepo interface {
	// Topics returns all topics ordered by id.
	Topics(ctx context.Context) ([]state.Topic, error)

	// FlashcardsByTopic returns the cards for a topic ordered by id.
	FlashcardsByTopic(ctx context.Context, topicID int) ([]state.Flashcard, error)

	// Seed upserts the given topics and cards. Idempotent.
	Seed(ctx context.Context, topics []state.Topic, cards []state.Flashcard) error
}

// SessionRepo persists session snapshots and implements the
// orchestrator's plan boundary: atomic merge application and
// idempotent deck population.
type SessionRepo interface {
	// Create stores the initial snapshot for a new session.
	Create(ctx context.Context, sessionID string, snap *state.Snapshot) error

	// Snapshot loads the current snapshot for the session.
	Snapshot(ctx context.Context, sessionID string) (*state.Snapshot, error)

	// ApplyMutation merges a partial update into the persisted
	// snapshot. All fields apply together or not at all.
	ApplyMutation(ctx context.Context, sessionID string, p *state.Partial) error

	// PopulateDeck materializes the flashcard states for a topic.
	// A no-op when the session already has a deck; returns
	// orchestrator.ErrEmptyDeck when the topic has no cards.
	PopulateDeck(ctx context.Context, sessionID string, topicID int) error

	// Latest returns the id of the most recently updated session, or
	// "" when none exist.
	Latest(ctx context.Context) (string, error)
}

// TurnStats aggregates the turn event log.
type TurnStats struct {
	Sessions int
	Turns    int
	Answers  int
	Resolved int
}

// LLMModelStats aggregates LLM usage for one model.
type LLMModelStats struct {
	Model        string
	Requests     int
	Failures     int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to the event log. Its
// method set satisfies llm.RequestLog and the orchestrator's TurnLog.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, rec llm.RequestRecord) error

	// AppendTurn records an orchestrator turn event.
	AppendTurn(ctx context.Context, ev orchestrator.TurnEvent) error

	// LLMRequests returns LLM request events, newest first.
	LLMRequests(ctx context.Context, opts QueryOpts) ([]*ent.LLMRequestEvent, error)

	// LLMRequestBySequence returns one LLM request event, or nil.
	LLMRequestBySequence(ctx context.Context, seq int64) (*ent.LLMRequestEvent, error)

	// Turns returns a session's turn events in sequence order.
	Turns(ctx context.Context, sessionID string, opts QueryOpts) ([]*ent.TurnEvent, error)

	// TurnStats aggregates the whole turn log.
	TurnStats(ctx context.Context) (TurnStats, error)

	// LLMStats aggregates LLM usage per model.
	LLMStats(ctx context.Context) ([]LLMModelStats, error)
}
