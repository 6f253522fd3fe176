package prompt

import "github.com/charmbracelet/lipgloss"

// One Dark Pro color palette
var (
	ColorFgPrimary = lipgloss.Color("#ABB2BF")
	ColorFgMuted   = lipgloss.Color("#636B78")

	ColorRed    = lipgloss.Color("#E06C75")
	ColorGreen  = lipgloss.Color("#98C379")
	ColorYellow = lipgloss.Color("#E5C07B")
	ColorBlue   = lipgloss.Color("#61AFEF")
	ColorCyan   = lipgloss.Color("#56B6C2")

	ColorBgHighlight = lipgloss.Color("#2C313C")
)

// Component styles
var (
	// Question label, rendered in front of every prompt
	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorBlue).
			Bold(true)

	// Marker printed before the label ("?") while a prompt is active
	MarkerStyle = lipgloss.NewStyle().
			Foreground(ColorGreen).
			Bold(true)

	// The confirmed answer echoed after a prompt finishes
	AnswerStyle = lipgloss.NewStyle().
			Foreground(ColorCyan)

	// Highlighted row in a choice list
	SelectedStyle = lipgloss.NewStyle().
			Background(ColorBgHighlight).
			Foreground(ColorFgPrimary).
			Bold(true)

	// Unselected row in a choice list
	ChoiceStyle = lipgloss.NewStyle().
			Foreground(ColorFgPrimary)

	// Inline validation message
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorRed)

	// Key hints under a prompt
	HintStyle = lipgloss.NewStyle().
			Foreground(ColorFgMuted)

	InputPromptStyle = lipgloss.NewStyle().
				Foreground(ColorGreen)
)
