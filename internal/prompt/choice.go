// Package prompt implements the interactive question kinds the wizard
// is built from. Each kind is its own bubbletea model, run inline (no
// alternate screen); exactly one prompt is ever active at a time.
package prompt

import (
	"errors"
	"strings"
)

// ErrAborted is returned by a prompt's Run when the user interrupts it
// (Ctrl+C). No partial state survives an aborted prompt.
var ErrAborted = errors.New("prompt aborted")

// Choice is a selectable option: Name is what the user sees and what
// autocomplete matches against, Value is what the pipeline receives.
// An empty Value is the "none" sentinel ("Do not assign", "No Label",
// "No epic"); real values are always non-empty ids or names.
type Choice struct {
	Name  string
	Value string
}

// None reports whether the choice is a none sentinel
func (c Choice) None() bool {
	return c.Value == ""
}

// Filter returns the choices whose name contains query as a
// case-insensitive substring, preserving input order. An empty query
// returns the input unchanged. Pure; runs on every keystroke of an
// autocomplete prompt.
func Filter(choices []Choice, query string) []Choice {
	if query == "" {
		return choices
	}
	q := strings.ToLower(query)
	matched := make([]Choice, 0, len(choices))
	for _, c := range choices {
		if strings.Contains(strings.ToLower(c.Name), q) {
			matched = append(matched, c)
		}
	}
	return matched
}
