package wizard

import (
	"fmt"
	"strconv"

	"github.com/atotto/clipboard"
	"github.com/fatih/color"
	"github.com/muesli/termenv"

	"github.com/clubhouse-tools/chstory/internal/clubhouse"
)

// BuildParams converts a validated draft into the creation request.
// The none sentinels become JSON null: a nil OwnerIDs slice, a nil
// Labels slice, and an absent epic_id.
func BuildParams(draft *StoryDraft) (clubhouse.CreateStoryParams, error) {
	projectID, err := strconv.ParseInt(draft.ProjectID, 10, 64)
	if err != nil {
		return clubhouse.CreateStoryParams{}, fmt.Errorf("parse project id %q: %w", draft.ProjectID, err)
	}

	params := clubhouse.CreateStoryParams{
		Name:        draft.Title,
		Description: draft.Description,
		StoryType:   draft.StoryType,
		ProjectID:   projectID,
	}

	if draft.OwnerID != "" {
		params.OwnerIDs = []string{draft.OwnerID}
	}

	if draft.EpicID != "" {
		epicID, err := strconv.ParseInt(draft.EpicID, 10, 64)
		if err != nil {
			return clubhouse.CreateStoryParams{}, fmt.Errorf("parse epic id %q: %w", draft.EpicID, err)
		}
		params.EpicID = &epicID
	}

	if draft.Label != "" {
		params.Labels = []clubhouse.Label{{Name: draft.Label}}
	}

	return params, nil
}

// Submit sends the draft to the creation API and reports the outcome.
// Failures are absorbed here: they are printed with their payload and
// the session loop carries on as if the attempt simply finished. The
// draft is discarded either way.
func Submit(client *clubhouse.Client, draft *StoryDraft) *clubhouse.Story {
	params, err := BuildParams(draft)
	if err != nil {
		color.Red("Could not build the story request: %v", err)
		return nil
	}

	story, err := client.CreateStory(params)
	if err != nil {
		color.Red("The story could not be created: %v", err)
		return nil
	}

	report(story)
	return story
}

// report prints the success feedback and puts the branch command on
// the clipboard. The clipboard write is fire and forget.
func report(story *clubhouse.Story) {
	cmd := BranchCommand(story)

	color.Green("Created story #%d: %s", story.ID, story.Name)
	fmt.Println(termenv.Hyperlink(story.URL(), story.URL()))
	fmt.Println(cmd)

	if err := clipboard.WriteAll(cmd); err == nil {
		fmt.Println("(copied to clipboard)")
	}
}
