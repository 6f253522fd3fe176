package prompt

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// maxVisible is how many matching choices an autocomplete prompt shows
// at once; the cursor scrolls the window over longer lists.
const maxVisible = 7

// Autocomplete is a single-choice prompt with a type-to-filter query.
// Every keystroke re-filters the choice list through Filter; Enter
// picks the highlighted match. Selecting is mandatory — optional
// questions carry an explicit none-sentinel Choice instead.
type Autocomplete struct {
	Label   string
	Choices []Choice
	Default int
}

// Run displays the prompt and blocks until a selection or an abort
func (p Autocomplete) Run() (Choice, error) {
	m := newAutocompleteModel(p)
	out, err := tea.NewProgram(m).Run()
	if err != nil {
		return Choice{}, err
	}
	final := out.(autocompleteModel)
	if final.aborted {
		return Choice{}, ErrAborted
	}
	return final.choice, nil
}

type autocompleteModel struct {
	prompt  Autocomplete
	query   textinput.Model
	keys    KeyMap
	matches []Choice
	cursor  int

	errMsg  string
	choice  Choice
	done    bool
	aborted bool
}

func newAutocompleteModel(p Autocomplete) autocompleteModel {
	query := textinput.New()
	query.Prompt = ""
	query.PromptStyle = InputPromptStyle
	query.Placeholder = "type to filter"
	query.Focus()

	cursor := p.Default
	if cursor < 0 || cursor >= len(p.Choices) {
		cursor = 0
	}

	return autocompleteModel{
		prompt:  p,
		query:   query,
		keys:    DefaultKeyMap(),
		matches: p.Choices,
		cursor:  cursor,
	}
}

func (m autocompleteModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m autocompleteModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.query, cmd = m.query.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, m.keys.Interrupt):
		m.aborted = true
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(m.matches)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(keyMsg, m.keys.Enter):
		if len(m.matches) == 0 {
			m.errMsg = "nothing matches " + m.query.Value()
			return m, nil
		}
		m.choice = m.matches[m.cursor]
		m.done = true
		return m, tea.Quit
	}

	// Any other key edits the query and re-filters the list
	var cmd tea.Cmd
	before := m.query.Value()
	m.query, cmd = m.query.Update(keyMsg)
	if m.query.Value() != before {
		m.matches = Filter(m.prompt.Choices, m.query.Value())
		m.cursor = 0
		m.errMsg = ""
	}
	return m, cmd
}

func (m autocompleteModel) View() string {
	if m.done {
		return answeredLine(m.prompt.Label, m.choice.Name)
	}

	view := MarkerStyle.Render("? ") + LabelStyle.Render(m.prompt.Label) + " " + m.query.View() + "\n"

	start, end := visibleWindow(m.cursor, len(m.matches), maxVisible)
	for i := start; i < end; i++ {
		if i == m.cursor {
			view += SelectedStyle.Render("> "+m.matches[i].Name) + "\n"
		} else {
			view += ChoiceStyle.Render("  "+m.matches[i].Name) + "\n"
		}
	}
	if len(m.matches) == 0 {
		view += HintStyle.Render("  (no matches)") + "\n"
	}
	if m.errMsg != "" {
		view += ErrorStyle.Render(">> "+m.errMsg) + "\n"
	}
	return view
}

// visibleWindow returns the half-open range of list indexes to render
// so the cursor stays on screen
func visibleWindow(cursor, total, size int) (int, int) {
	if total <= size {
		return 0, total
	}
	start := cursor - size/2
	if start < 0 {
		start = 0
	}
	if start+size > total {
		start = total - size
	}
	return start, start + size
}
