package chat

import "charm.land/lipgloss/v2"

// Color palette — calm study-session tones.
var (
	colorPrimary = lipgloss.Color("#14B8A6") // Teal
	colorAccent  = lipgloss.Color("#F97316") // Orange
	colorSuccess = lipgloss.Color("#22C55E") // Green
	colorPartial = lipgloss.Color("#F59E0B") // Amber
	colorError   = lipgloss.Color("#F43F5E") // Rose
	colorText    = lipgloss.Color("#F8FAFC") // White
	colorDim     = lipgloss.Color("#94A3B8") // Slate
)

var (
	styleTutor = lipgloss.NewStyle().
			Foreground(colorText)

	styleTutorTag = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	styleLearner = lipgloss.NewStyle().
			Foreground(colorDim)

	styleLearnerTag = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	styleCorrect = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Bold(true)

	stylePartial = lipgloss.NewStyle().
			Foreground(colorPartial).
			Bold(true)

	styleIncorrect = lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true)

	styleStatus = lipgloss.NewStyle().
			Foreground(colorDim).
			Italic(true)

	styleFooter = lipgloss.NewStyle().
			Foreground(colorDim)
)
