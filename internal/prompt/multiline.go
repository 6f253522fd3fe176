package prompt

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

// Multiline is a multi-line free-text prompt. Enter inserts a newline;
// Esc (or Ctrl+D) submits.
type Multiline struct {
	Label    string
	Validate func(string) error
}

// Run displays the prompt and blocks until a valid answer or an abort
func (p Multiline) Run() (string, error) {
	m := newMultilineModel(p)
	out, err := tea.NewProgram(m).Run()
	if err != nil {
		return "", err
	}
	final := out.(multilineModel)
	if final.aborted {
		return "", ErrAborted
	}
	return final.value, nil
}

type multilineModel struct {
	prompt Multiline
	area   textarea.Model
	keys   KeyMap

	errMsg  string
	value   string
	done    bool
	aborted bool
}

func newMultilineModel(p Multiline) multilineModel {
	area := textarea.New()
	area.ShowLineNumbers = false
	area.SetHeight(5)
	area.Focus()

	return multilineModel{
		prompt: p,
		area:   area,
		keys:   DefaultKeyMap(),
	}
}

func (m multilineModel) Init() tea.Cmd {
	return textarea.Blink
}

func (m multilineModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.area, cmd = m.area.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, m.keys.Interrupt):
		m.aborted = true
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Submit):
		value := m.area.Value()
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
	m.area, cmd = m.area.Update(keyMsg)
	return m, cmd
}

func (m multilineModel) View() string {
	if m.done {
		// Echo the first line only; long descriptions would swamp the
		// transcript.
		first := m.value
		if idx := strings.IndexByte(first, '\n'); idx >= 0 {
			first = first[:idx] + "…"
		}
		return answeredLine(m.prompt.Label, first)
	}

	view := MarkerStyle.Render("? ") + LabelStyle.Render(m.prompt.Label) + "\n"
	view += m.area.View() + "\n"
	if m.errMsg != "" {
		view += ErrorStyle.Render(">> "+m.errMsg) + "\n"
	}
	view += HintStyle.Render("enter for newline · esc to submit") + "\n"
	return view
}
