package prompt

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyRunes(s string) tea.Msg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyEnter() tea.Msg {
	return tea.KeyMsg{Type: tea.KeyEnter}
}

func TestInputRepromptsOnValidationFailure(t *testing.T) {
	m := newInputModel(Input{
		Label: "Title:",
		Validate: func(s string) error {
			if len(s) < 5 {
				return errors.New("too short")
			}
			return nil
		},
	})

	next, _ := m.Update(keyRunes("abcd"))
	m = next.(inputModel)

	next, cmd := m.Update(keyEnter())
	m = next.(inputModel)
	if m.done {
		t.Fatal("prompt completed with an invalid answer")
	}
	if cmd != nil {
		t.Error("invalid answer should not quit the prompt")
	}
	if m.errMsg != "too short" {
		t.Errorf("errMsg = %q, want the validation message", m.errMsg)
	}

	// Same question, answered validly this time
	next, _ = m.Update(keyRunes("e"))
	m = next.(inputModel)
	next, _ = m.Update(keyEnter())
	m = next.(inputModel)
	if !m.done || m.value != "abcde" {
		t.Errorf("done = %v, value = %q, want completion with abcde", m.done, m.value)
	}
}

func TestInputAbort(t *testing.T) {
	m := newInputModel(Input{Label: "Title:"})

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	m = next.(inputModel)
	if !m.aborted {
		t.Error("ctrl+c should abort the prompt")
	}
}

func TestAutocompleteFiltersOnKeystroke(t *testing.T) {
	choices := []Choice{
		{Name: "Web (Product)", Value: "11"},
		{Name: "Ops (Product)", Value: "12"},
		{Name: "API (Platform)", Value: "10"},
	}
	m := newAutocompleteModel(Autocomplete{Label: "Project:", Choices: choices, Default: 2})

	if m.cursor != 2 {
		t.Fatalf("initial cursor = %d, want the default index 2", m.cursor)
	}

	next, _ := m.Update(keyRunes("pro"))
	m = next.(autocompleteModel)
	if len(m.matches) != 2 {
		t.Fatalf("matches after query = %d, want 2", len(m.matches))
	}
	if m.cursor != 0 {
		t.Errorf("cursor = %d, editing the query should reset it", m.cursor)
	}

	next, _ = m.Update(keyEnter())
	m = next.(autocompleteModel)
	if !m.done || m.choice.Value != "11" {
		t.Errorf("done = %v, choice = %+v, want the first match selected", m.done, m.choice)
	}
}

func TestAutocompleteRejectsEmptyMatchSet(t *testing.T) {
	m := newAutocompleteModel(Autocomplete{
		Label:   "Project:",
		Choices: []Choice{{Name: "Web", Value: "11"}},
	})

	next, _ := m.Update(keyRunes("zzz"))
	m = next.(autocompleteModel)
	next, _ = m.Update(keyEnter())
	m = next.(autocompleteModel)

	if m.done {
		t.Fatal("prompt completed with no matching choice")
	}
	if m.errMsg == "" {
		t.Error("an empty match set should show a validation message")
	}

	// Clearing the query recovers
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	m = next.(autocompleteModel)
	if m.errMsg != "" {
		t.Error("editing the query should clear the validation message")
	}
}

func TestAutocompleteDefaultSelectsAppendedNone(t *testing.T) {
	choices := []Choice{
		{Name: "Sprint 12", Value: "Sprint 12"},
		{Name: "Sprint 13", Value: "Sprint 13"},
		{Name: "No Label"},
	}
	m := newAutocompleteModel(Autocomplete{Label: "Label:", Choices: choices, Default: 2})

	next, _ := m.Update(keyEnter())
	m = next.(autocompleteModel)
	if !m.done || !m.choice.None() {
		t.Errorf("default enter picked %+v, want the none sentinel", m.choice)
	}
}

func TestSelectNavigation(t *testing.T) {
	m := newSelectModel(Select{
		Label:   "Type:",
		Choices: []Choice{{Name: "feature", Value: "feature"}, {Name: "bug", Value: "bug"}, {Name: "chore", Value: "chore"}},
	})

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	sm := next.(selectModel)
	next, _ = sm.Update(keyEnter())
	sm = next.(selectModel)

	if !sm.done || sm.choice.Value != "bug" {
		t.Errorf("choice = %+v, want bug", sm.choice)
	}
}

func TestConfirmAnswers(t *testing.T) {
	tests := []struct {
		name    string
		def     bool
		msg     tea.Msg
		want    bool
		aborted bool
	}{
		{"enter takes default yes", true, keyEnter(), true, false},
		{"enter takes default no", false, keyEnter(), false, false},
		{"explicit yes", false, keyRunes("y"), true, false},
		{"explicit no", true, keyRunes("n"), false, false},
		{"interrupt", true, tea.KeyMsg{Type: tea.KeyCtrlC}, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := confirmModel{prompt: Confirm{Label: "Create another ticket?", Default: tt.def}, keys: DefaultKeyMap()}
			next, _ := m.Update(tt.msg)
			m = next.(confirmModel)

			if m.aborted != tt.aborted {
				t.Fatalf("aborted = %v, want %v", m.aborted, tt.aborted)
			}
			if !tt.aborted && (!m.done || m.value != tt.want) {
				t.Errorf("done = %v, value = %v, want %v", m.done, m.value, tt.want)
			}
		})
	}
}
