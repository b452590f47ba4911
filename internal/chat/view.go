package chat

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/chilltutor/internal/orchestrator"
	"github.com/abhisek/chilltutor/internal/scoring"
	"github.com/abhisek/chilltutor/internal/state"
)

// sayFeedback appends the verdict for the evaluation that just resolved
// or retried a card. prev is the snapshot before the evaluation turn.
func (m *Model) sayFeedback(prev *state.Snapshot, plan *orchestrator.TurnPlan) {
	active := prev.ActiveCard()
	if active == nil {
		return
	}
	card := m.snap.CardByID(active.ID)
	if card == nil || card.Evaluation == nil {
		return
	}
	eval := card.Evaluation

	var verdict string
	switch eval.Result {
	case scoring.ResultCorrect:
		verdict = styleCorrect.Render("Correct!")
	case scoring.ResultPartial:
		verdict = stylePartial.Render("Partially there.")
	default:
		verdict = styleIncorrect.Render("Not quite.")
	}

	text := verdict
	if eval.Feedback != "" {
		text += "\n" + eval.Feedback
	}

	// A card that failed out gets the model answer, when we have one.
	if plan != nil && plan.CardResolved && !eval.Correct() && card.Answer != "" {
		text += "\n\nModel answer:\n" + card.Answer
	}

	m.say(text)
}

func (m *Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.quitting {
		if m.fatal != nil {
			v.SetContent(styleIncorrect.Render("error: ") + m.fatal.Error())
		}
		return v
	}
	if m.width == 0 || m.height == 0 || m.snap == nil {
		return v
	}

	transcript := m.renderTranscript()
	status := m.renderStatus()
	inputLine := "> " + m.input.View()
	footer := styleFooter.Render("Enter send · Esc quit")

	chromeHeight := lipgloss.Height(status) + lipgloss.Height(inputLine) + lipgloss.Height(footer)
	transcript = clampHeight(transcript, m.height-chromeHeight)

	v.SetContent(lipgloss.JoinVertical(lipgloss.Left, transcript, status, inputLine, footer))
	return v
}

func (m *Model) renderTranscript() string {
	var b strings.Builder
	for _, l := range m.lines {
		switch l.role {
		case roleTutor:
			b.WriteString(styleTutorTag.Render("tutor ") + styleTutor.Render(l.text))
		case roleLearner:
			b.WriteString(styleLearnerTag.Render("you   ") + styleLearner.Render(l.text))
		default:
			b.WriteString(styleStatus.Render(l.text))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *Model) renderStatus() string {
	if m.busy {
		return styleStatus.Render("Marking your answer...")
	}
	if m.snap.QuizState.State == state.StateAwaitingAnswer || m.snap.QuizState.State == state.StateAwaitingEvaluation {
		total := len(m.snap.FlashcardStates)
		return styleStatus.Render(fmt.Sprintf("Card %d of %d · %d correct",
			min(m.snap.QuizState.Progress+1, total), total, m.snap.Score.Correct))
	}
	return ""
}

// clampHeight keeps only the last maxLines lines so the newest part of
// the conversation stays on screen.
func clampHeight(s string, maxLines int) string {
	if maxLines <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) <= maxLines {
		return s
	}
	return strings.Join(lines[len(lines)-maxLines:], "\n")
}
