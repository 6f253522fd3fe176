package prompt

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Confirm is a yes/no prompt. Enter takes the default.
type Confirm struct {
	Label   string
	Default bool
}

// Run displays the prompt and blocks until an answer or an abort
func (p Confirm) Run() (bool, error) {
	m := confirmModel{prompt: p, keys: DefaultKeyMap()}
	out, err := tea.NewProgram(m).Run()
	if err != nil {
		return false, err
	}
	final := out.(confirmModel)
	if final.aborted {
		return false, ErrAborted
	}
	return final.value, nil
}

type confirmModel struct {
	prompt Confirm
	keys   KeyMap

	value   bool
	done    bool
	aborted bool
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if key.Matches(keyMsg, m.keys.Interrupt) {
		m.aborted = true
		return m, tea.Quit
	}

	switch keyMsg.String() {
	case "y", "Y":
		m.value = true
		m.done = true
		return m, tea.Quit
	case "n", "N":
		m.value = false
		m.done = true
		return m, tea.Quit
	case "enter":
		m.value = m.prompt.Default
		m.done = true
		return m, tea.Quit
	}

	return m, nil
}

func (m confirmModel) View() string {
	if m.done {
		answer := "No"
		if m.value {
			answer = "Yes"
		}
		return answeredLine(m.prompt.Label, answer)
	}

	hint := "(y/N)"
	if m.prompt.Default {
		hint = "(Y/n)"
	}
	return MarkerStyle.Render("? ") + LabelStyle.Render(m.prompt.Label) + " " + HintStyle.Render(hint) + "\n"
}
