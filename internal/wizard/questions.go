// Package wizard drives the story-creation flow: the ordered question
// pipeline, the submission handler, and the session loop.
package wizard

import (
	"errors"
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/clubhouse-tools/chstory/internal/prompt"
	"github.com/clubhouse-tools/chstory/internal/workspace"
)

// StoryDraft holds one iteration's collected answers. Values are kept
// as the prompt pipeline produced them; the submission handler does the
// wire-format conversion. Empty OwnerID / EpicID / Label mean
// unassigned / no epic / no label.
type StoryDraft struct {
	Title       string
	Description string
	StoryType   string
	OwnerID     string
	ProjectID   string
	EpicID      string
	Label       string
}

const (
	titleMinLen = 5
	titleMaxLen = 120
	descMinLen  = 5
)

// ValidateTitle enforces the story title length bounds
func ValidateTitle(title string) error {
	n := utf8.RuneCountInString(title)
	if n < titleMinLen || n > titleMaxLen {
		return fmt.Errorf("title must be %d-%d characters, got %d", titleMinLen, titleMaxLen, n)
	}
	return nil
}

// ValidateDescription enforces the minimum description length
func ValidateDescription(desc string) error {
	if n := utf8.RuneCountInString(desc); n < descMinLen {
		return fmt.Errorf("description must be at least %d characters, got %d", descMinLen, n)
	}
	return nil
}

// ProjectChoices builds the project options, grouped by team and
// labelled "<project> (<team>)"
func ProjectChoices(ws *workspace.State) []prompt.Choice {
	projects := ws.ProjectsByTeam()
	choices := make([]prompt.Choice, len(projects))
	for i, p := range projects {
		choices[i] = prompt.Choice{
			Name:  fmt.Sprintf("%s (%s)", p.Name, ws.TeamName(p.TeamID)),
			Value: strconv.FormatInt(p.ID, 10),
		}
	}
	return choices
}

// DefaultProjectIndex returns the index of the configured default
// project within choices, or 0 when it is absent
func DefaultProjectIndex(choices []prompt.Choice, defaultProjectID string) int {
	for i, c := range choices {
		if c.Value == defaultProjectID {
			return i
		}
	}
	return 0
}

// EpicChoices builds the epic options with an explicit "No epic" choice
// appended, so the epic-count default index lands on it
func EpicChoices(ws *workspace.State) []prompt.Choice {
	choices := make([]prompt.Choice, 0, len(ws.Epics)+1)
	for _, e := range ws.Epics {
		choices = append(choices, prompt.Choice{
			Name:  e.Name,
			Value: strconv.FormatInt(e.ID, 10),
		})
	}
	return append(choices, prompt.Choice{Name: "No epic"})
}

// StoryTypeChoices returns the fixed story type options
func StoryTypeChoices() []prompt.Choice {
	return []prompt.Choice{
		{Name: "feature", Value: "feature"},
		{Name: "bug", Value: "bug"},
		{Name: "chore", Value: "chore"},
	}
}

// OwnerChoices builds the owner options with a "Do not assign" choice
// prepended
func OwnerChoices(ws *workspace.State) []prompt.Choice {
	choices := make([]prompt.Choice, 0, len(ws.Members)+1)
	choices = append(choices, prompt.Choice{Name: "Do not assign"})
	for _, m := range ws.Members {
		choices = append(choices, prompt.Choice{
			Name:  m.Profile.Name,
			Value: m.ID,
		})
	}
	return choices
}

// LabelChoices builds the label options from the workspace iterations
// with a "No Label" choice appended; the iteration-count default index
// selects it
func LabelChoices(ws *workspace.State) []prompt.Choice {
	choices := make([]prompt.Choice, 0, len(ws.Iterations)+1)
	for _, it := range ws.Iterations {
		choices = append(choices, prompt.Choice{
			Name:  it.Name,
			Value: it.Name,
		})
	}
	return append(choices, prompt.Choice{Name: "No Label"})
}

// Collect runs the question pipeline and returns a fully validated
// draft. A Ctrl+C at any prompt surfaces as prompt.ErrAborted with no
// partial draft.
func Collect(ws *workspace.State) (*StoryDraft, error) {
	draft := &StoryDraft{}

	projects := ProjectChoices(ws)
	if len(projects) == 0 {
		return nil, errors.New("workspace has no projects")
	}
	project, err := prompt.Autocomplete{
		Label:   "Project:",
		Choices: projects,
		Default: DefaultProjectIndex(projects, ws.Config.DefaultProjectID),
	}.Run()
	if err != nil {
		return nil, err
	}
	draft.ProjectID = project.Value

	epic, err := prompt.Autocomplete{
		Label:   "Epic:",
		Choices: EpicChoices(ws),
		Default: len(ws.Epics),
	}.Run()
	if err != nil {
		return nil, err
	}
	draft.EpicID = epic.Value

	draft.Title, err = prompt.Input{
		Label:    "Title:",
		Validate: ValidateTitle,
	}.Run()
	if err != nil {
		return nil, err
	}

	draft.Description, err = prompt.Multiline{
		Label:    "Description:",
		Validate: ValidateDescription,
	}.Run()
	if err != nil {
		return nil, err
	}

	storyType, err := prompt.Select{
		Label:   "Type:",
		Choices: StoryTypeChoices(),
	}.Run()
	if err != nil {
		return nil, err
	}
	draft.StoryType = storyType.Value

	owner, err := prompt.Autocomplete{
		Label:   "Owner:",
		Choices: OwnerChoices(ws),
	}.Run()
	if err != nil {
		return nil, err
	}
	draft.OwnerID = owner.Value

	label, err := prompt.Autocomplete{
		Label:   "Label:",
		Choices: LabelChoices(ws),
		Default: len(ws.Iterations),
	}.Run()
	if err != nil {
		return nil, err
	}
	draft.Label = label.Value

	return draft, nil
}
