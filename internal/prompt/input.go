package prompt

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Input is a single-line free-text prompt
type Input struct {
	Label       string
	Placeholder string
	Secret      bool
	// Validate rejects an answer with a message; a failure re-displays
	// the prompt with the message shown inline. Nil accepts anything.
	Validate func(string) error
}

// Run displays the prompt and blocks until a valid answer or an abort
func (p Input) Run() (string, error) {
	m := newInputModel(p)
	out, err := tea.NewProgram(m).Run()
	if err != nil {
		return "", err
	}
	final := out.(inputModel)
	if final.aborted {
		return "", ErrAborted
	}
	return final.value, nil
}

type inputModel struct {
	prompt Input
	input  textinput.Model
	keys   KeyMap

	errMsg  string
	value   string
	done    bool
	aborted bool
}

func newInputModel(p Input) inputModel {
	input := textinput.New()
	input.Placeholder = p.Placeholder
	input.Prompt = ""
	input.PromptStyle = InputPromptStyle
	if p.Secret {
		input.EchoMode = textinput.EchoPassword
	}
	input.Focus()

	return inputModel{
		prompt: p,
		input:  input,
		keys:   DefaultKeyMap(),
	}
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, m.keys.Interrupt):
		m.aborted = true
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Enter):
		value := m.input.Value()
		if m.prompt.Validate != nil {
			if err := m.prompt.Validate(value); err != nil {
				m.errMsg = err.Error()
				return m, nil
			}
		}
		m.value = value
		m.done = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(keyMsg)
	return m, cmd
}

func (m inputModel) View() string {
	if m.done {
		echo := m.value
		if m.prompt.Secret {
			echo = "********"
		}
		return answeredLine(m.prompt.Label, echo)
	}

	view := MarkerStyle.Render("? ") + LabelStyle.Render(m.prompt.Label) + " " + m.input.View() + "\n"
	if m.errMsg != "" {
		view += ErrorStyle.Render(">> "+m.errMsg) + "\n"
	}
	return view
}

// answeredLine is the single transcript line a finished prompt leaves
// behind
func answeredLine(label, value string) string {
	return MarkerStyle.Render("✔ ") + LabelStyle.Render(label) + " " + AnswerStyle.Render(value) + "\n"
}
