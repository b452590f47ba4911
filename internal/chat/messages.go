package chat

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/chilltutor/internal/orchestrator"
	"github.com/abhisek/chilltutor/internal/state"
)

// snapshotLoadedMsg carries the initial session snapshot.
type snapshotLoadedMsg struct {
	snap *state.Snapshot
	err  error
}

// turnAppliedMsg carries the outcome of one orchestrator turn.
type turnAppliedMsg struct {
	snap *state.Snapshot
	plan *orchestrator.TurnPlan
	err  error
}

// markedMsg carries the outcome of evaluating a pending answer.
type markedMsg struct {
	snap *state.Snapshot
	plan *orchestrator.TurnPlan
	err  error
}

func (m *Model) loadSnapshot() tea.Cmd {
	return func() tea.Msg {
		snap, err := m.runner.Sessions.Snapshot(context.Background(), m.sessionID)
		return snapshotLoadedMsg{snap: snap, err: err}
	}
}

func (m *Model) runTurn(in orchestrator.TurnInput) tea.Cmd {
	return func() tea.Msg {
		snap, plan, err := m.runner.RunTurn(context.Background(), m.sessionID, in)
		return turnAppliedMsg{snap: snap, plan: plan, err: err}
	}
}

func (m *Model) markPending() tea.Cmd {
	return func() tea.Msg {
		snap, plan, err := m.runner.MarkPending(context.Background(), m.sessionID)
		return markedMsg{snap: snap, plan: plan, err: err}
	}
}
