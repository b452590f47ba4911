// Package chat is the terminal host for a quiz session: a single
// chat-style screen that turns learner input into orchestrator turns
// and renders the resulting snapshot.
package chat

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/chilltutor/internal/orchestrator"
	"github.com/abhisek/chilltutor/internal/state"
)

type role int

const (
	roleTutor role = iota
	roleLearner
	roleStatus
)

type line struct {
	role role
	text string
}

// Model is the root Bubble Tea model for a quiz session.
type Model struct {
	runner    *orchestrator.Runner
	sessionID string
	snap      *state.Snapshot

	lines []line
	input textinput.Model

	busy     bool // an evaluation turn is in flight
	quitting bool
	fatal    error

	width  int
	height int
}

// New creates a chat model bound to one session.
func New(runner *orchestrator.Runner, sessionID string) *Model {
	ti := textinput.New()
	ti.Placeholder = "Type here..."
	ti.Focus()

	return &Model{
		runner:    runner,
		sessionID: sessionID,
		input:     ti,
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.input.Focus(), m.loadSnapshot())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case snapshotLoadedMsg:
		if msg.err != nil {
			m.fatal = msg.err
			m.quitting = true
			return m, tea.Quit
		}
		m.snap = msg.snap
		// A session can be persisted mid-card: the answer turn applied
		// but the app exited before marking ran. Pick the marking back
		// up instead of prompting.
		if m.snap.QuizState.State == state.StateAwaitingEvaluation {
			m.busy = true
			return m, m.markPending()
		}
		m.say(m.prompt())
		return m, nil

	case turnAppliedMsg:
		return m.handleTurn(msg.snap, msg.plan, msg.err)

	case markedMsg:
		m.busy = false
		return m.handleTurn(msg.snap, msg.plan, msg.err)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit turns the typed input into the turn the current state expects.
func (m *Model) submit() (tea.Model, tea.Cmd) {
	if m.busy || m.snap == nil {
		return m, nil
	}

	text := strings.TrimSpace(m.input.Value())
	m.input.SetValue("")

	switch m.snap.QuizState.State {
	case state.StateAwaitingName:
		m.hear(text)
		return m, m.runTurn(orchestrator.TurnInput{Name: text})

	case state.StateAwaitingTopic:
		m.hear(text)
		id, ok := m.resolveTopic(text)
		if !ok {
			m.say("Pick a topic by its number or name.")
			return m, nil
		}
		return m, m.runTurn(orchestrator.TurnInput{TopicID: id})

	case state.StateAwaitingAnswer:
		// An empty answer is still an attempt; it marks as incorrect.
		m.hear(text)
		return m, m.runTurn(orchestrator.TurnInput{Answer: state.Ptr(text)})

	case state.StateSessionComplete:
		m.quitting = true
		return m, tea.Quit

	default:
		return m, nil
	}
}

// handleTurn folds an applied (or rejected) turn back into the model.
func (m *Model) handleTurn(snap *state.Snapshot, plan *orchestrator.TurnPlan, err error) (tea.Model, tea.Cmd) {
	if err != nil {
		switch {
		case errors.Is(err, orchestrator.ErrEmptyDeck):
			m.say("That topic has no flashcards yet. Pick another one.")
		case errors.Is(err, orchestrator.ErrInvalidTransition):
			m.say("Let's stay on track. " + m.prompt())
		default:
			m.fatal = err
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	prev := m.snap
	m.snap = snap

	// An answer was just recorded; hand it straight to the marker.
	if snap.QuizState.State == state.StateAwaitingEvaluation {
		m.busy = true
		return m, m.markPending()
	}

	if prev != nil && prev.QuizState.State == state.StateAwaitingEvaluation {
		m.sayFeedback(prev, plan)
	}

	m.say(m.prompt())
	return m, nil
}

// resolveTopic accepts a topic number or a (case-insensitive) name.
func (m *Model) resolveTopic(text string) (int, bool) {
	if id, err := strconv.Atoi(text); err == nil {
		return id, true
	}
	for _, t := range m.snap.Topics {
		if strings.EqualFold(t.Name, text) {
			return t.ID, true
		}
	}
	return 0, false
}

// prompt returns what the tutor asks for in the current state.
func (m *Model) prompt() string {
	switch m.snap.QuizState.State {
	case state.StateAwaitingName:
		return "Hey, welcome to your revision session! What's your name?"

	case state.StateAwaitingTopic:
		var b strings.Builder
		fmt.Fprintf(&b, "Nice to meet you, %s! Pick a topic to revise:\n", m.snap.User.Name)
		for _, t := range m.snap.Topics {
			fmt.Fprintf(&b, "  %d. %s\n", t.ID, t.Name)
		}
		return strings.TrimRight(b.String(), "\n")

	case state.StateAwaitingAnswer:
		card := m.snap.ActiveCard()
		if card == nil {
			return "No card is active. Something went wrong."
		}
		if card.Attempts > 0 {
			return fmt.Sprintf("Have another go (attempt %d of 3):\n%s", card.Attempts+1, card.Question)
		}
		return card.Question

	case state.StateSessionComplete:
		return m.summary()

	default:
		return ""
	}
}

// summary renders the end-of-session recap.
func (m *Model) summary() string {
	var b strings.Builder
	b.WriteString("That's the whole deck — session complete!\n")
	fmt.Fprintf(&b, "Score: %d correct, %d incorrect over %d attempts.\n",
		m.snap.Score.Correct, m.snap.Score.Incorrect, m.snap.Score.TotalAttempts)

	if len(m.snap.HardFlashcards) > 0 {
		b.WriteString("Worth another look next time:\n")
		for _, id := range m.snap.HardFlashcards {
			if card := m.snap.CardByID(id); card != nil {
				fmt.Fprintf(&b, "  • %s\n", card.Question)
			}
		}
	}
	b.WriteString("Press Enter to leave.")
	return b.String()
}

func (m *Model) say(text string) {
	if text != "" {
		m.lines = append(m.lines, line{role: roleTutor, text: text})
	}
}

func (m *Model) hear(text string) {
	if text == "" {
		text = "(no answer)"
	}
	m.lines = append(m.lines, line{role: roleLearner, text: text})
}
