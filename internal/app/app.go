// Package app launches the chat TUI for one quiz session.
package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/chilltutor/internal/chat"
	"github.com/abhisek/chilltutor/internal/orchestrator"
)

// Options carries everything the TUI needs.
type Options struct {
	Runner    *orchestrator.Runner
	SessionID string
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	p := tea.NewProgram(chat.New(opts.Runner, opts.SessionID))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
