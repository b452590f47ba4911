package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/abhisek/chilltutor/ent"
	"github.com/abhisek/chilltutor/ent/llmrequestevent"
	"github.com/abhisek/chilltutor/ent/turnevent"
	"github.com/abhisek/chilltutor/internal/llm"
	"github.com/abhisek/chilltutor/internal/orchestrator"
)

// sequenceCounter manages the global monotonic sequence number shared
// across all event types. Each event type lives in its own ent-managed
// table, so per-table auto-increment IDs can't establish cross-type
// ordering; this shared counter assigns a single increasing sequence to
// every event regardless of type.
//
// Uses raw SQL outside ent because ent doesn't support database-level
// atomic counters. The mutex serializes within the process; the
// RETURNING clause makes the increment atomic at the database level.
type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

// newSequenceCounter creates a counter and ensures the tracking table exists.
func newSequenceCounter(db *sql.DB) (*sequenceCounter, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS global_sequence (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		next_val INTEGER NOT NULL DEFAULT 1
	)`)
	if err != nil {
		return nil, fmt.Errorf("create sequence table: %w", err)
	}

	_, err = db.Exec(`INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 1)`)
	if err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}

	return &sequenceCounter{db: db}, nil
}

// Next atomically returns the next sequence number and increments the counter.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var seq int64
	err := sc.db.QueryRowContext(ctx,
		`UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}

type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, rec llm.RequestRecord) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}

	_, err = r.client.LLMRequestEvent.Create().
		SetSequence(seqNum).
		SetProvider(rec.Provider).
		SetModel(rec.Model).
		SetPurpose(rec.Purpose).
		SetInputTokens(rec.InputTokens).
		SetOutputTokens(rec.OutputTokens).
		SetLatencyMs(rec.LatencyMs).
		SetSuccess(rec.Success).
		SetErrorMessage(rec.ErrorMessage).
		SetRequestBody(rec.RequestBody).
		SetResponseBody(rec.ResponseBody).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save llm request event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendTurn(ctx context.Context, ev orchestrator.TurnEvent) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}

	_, err = r.client.TurnEvent.Create().
		SetSequence(seqNum).
		SetSessionID(ev.SessionID).
		SetFromState(string(ev.FromState)).
		SetToState(string(ev.ToState)).
		SetCardID(ev.CardID).
		SetAttempt(ev.Attempt).
		SetAnswer(ev.Answer).
		SetResult(ev.Result).
		SetScore(ev.Score).
		SetCardCompleted(ev.CardCompleted).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save turn event: %w", err)
	}
	return nil
}

func (r *eventRepo) LLMRequests(ctx context.Context, opts QueryOpts) ([]*ent.LLMRequestEvent, error) {
	q := r.client.LLMRequestEvent.Query().
		Order(ent.Desc(llmrequestevent.FieldSequence))

	if opts.After > 0 {
		q = q.Where(llmrequestevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		q = q.Where(llmrequestevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		q = q.Where(llmrequestevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(llmrequestevent.TimestampLTE(opts.To))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query llm request events: %w", err)
	}
	return rows, nil
}

func (r *eventRepo) LLMRequestBySequence(ctx context.Context, seq int64) (*ent.LLMRequestEvent, error) {
	row, err := r.client.LLMRequestEvent.Query().
		Where(llmrequestevent.Sequence(seq)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query llm request event %d: %w", seq, err)
	}
	return row, nil
}

func (r *eventRepo) Turns(ctx context.Context, sessionID string, opts QueryOpts) ([]*ent.TurnEvent, error) {
	q := r.client.TurnEvent.Query().
		Where(turnevent.SessionID(sessionID)).
		Order(ent.Asc(turnevent.FieldSequence))

	if opts.After > 0 {
		q = q.Where(turnevent.SequenceGT(opts.After))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query turn events: %w", err)
	}
	return rows, nil
}

func (r *eventRepo) TurnStats(ctx context.Context) (TurnStats, error) {
	rows, err := r.client.TurnEvent.Query().All(ctx)
	if err != nil {
		return TurnStats{}, fmt.Errorf("query turn events: %w", err)
	}

	stats := TurnStats{Turns: len(rows)}
	sessions := map[string]bool{}
	for _, ev := range rows {
		sessions[ev.SessionID] = true
		if ev.Answer != "" {
			stats.Answers++
		}
		if ev.CardCompleted {
			stats.Resolved++
		}
	}
	stats.Sessions = len(sessions)
	return stats, nil
}

func (r *eventRepo) LLMStats(ctx context.Context) ([]LLMModelStats, error) {
	rows, err := r.client.LLMRequestEvent.Query().
		Order(ent.Asc(llmrequestevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query llm request events: %w", err)
	}

	byModel := map[string]*LLMModelStats{}
	var order []string
	for _, ev := range rows {
		s, ok := byModel[ev.Model]
		if !ok {
			s = &LLMModelStats{Model: ev.Model}
			byModel[ev.Model] = s
			order = append(order, ev.Model)
		}
		s.Requests++
		if !ev.Success {
			s.Failures++
		}
		s.InputTokens += ev.InputTokens
		s.OutputTokens += ev.OutputTokens
	}

	out := make([]LLMModelStats, 0, len(order))
	for _, m := range order {
		out = append(out, *byModel[m])
	}
	return out, nil
}
