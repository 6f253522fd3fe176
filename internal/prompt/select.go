package prompt

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Select is a fixed single-choice prompt navigated with arrow keys
type Select struct {
	Label   string
	Choices []Choice
	Default int
}

// Run displays the prompt and blocks until a selection or an abort
func (p Select) Run() (Choice, error) {
	m := newSelectModel(p)
	out, err := tea.NewProgram(m).Run()
	if err != nil {
		return Choice{}, err
	}
	final := out.(selectModel)
	if final.aborted {
		return Choice{}, ErrAborted
	}
	return final.choice, nil
}

type selectModel struct {
	prompt Select
	keys   KeyMap
	cursor int

	choice  Choice
	done    bool
	aborted bool
}

func newSelectModel(p Select) selectModel {
	cursor := p.Default
	if cursor < 0 || cursor >= len(p.Choices) {
		cursor = 0
	}
	return selectModel{
		prompt: p,
		keys:   DefaultKeyMap(),
		cursor: cursor,
	}
}

func (m selectModel) Init() tea.Cmd {
	return nil
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Interrupt):
		m.aborted = true
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(m.prompt.Choices)-1 {
			m.cursor++
		}

	case key.Matches(keyMsg, m.keys.Enter):
		m.choice = m.prompt.Choices[m.cursor]
		m.done = true
		return m, tea.Quit
	}

	return m, nil
}

func (m selectModel) View() string {
	if m.done {
		return answeredLine(m.prompt.Label, m.choice.Name)
	}

	view := MarkerStyle.Render("? ") + LabelStyle.Render(m.prompt.Label) + "\n"
	for i, c := range m.prompt.Choices {
		if i == m.cursor {
			view += SelectedStyle.Render("> "+c.Name) + "\n"
		} else {
			view += ChoiceStyle.Render("  "+c.Name) + "\n"
		}
	}
	view += HintStyle.Render("↑/↓ navigate · enter select") + "\n"
	return view
}
