package wizard

import (
	"errors"

	"github.com/fatih/color"

	"github.com/clubhouse-tools/chstory/internal/clubhouse"
	"github.com/clubhouse-tools/chstory/internal/prompt"
	"github.com/clubhouse-tools/chstory/internal/workspace"
)

// Session drives repeated single-ticket flows. The three stages are
// function fields so tests can run the loop without a terminal or a
// network.
type Session struct {
	Collect func() (*StoryDraft, error)
	Submit  func(*StoryDraft) *clubhouse.Story
	Confirm func() (bool, error)
}

// NewSession wires a session to the live prompts and creation API
func NewSession(ws *workspace.State, client *clubhouse.Client) *Session {
	return &Session{
		Collect: func() (*StoryDraft, error) {
			return Collect(ws)
		},
		Submit: func(draft *StoryDraft) *clubhouse.Story {
			return Submit(client, draft)
		},
		Confirm: func() (bool, error) {
			return prompt.Confirm{Label: "Create another ticket?", Default: true}.Run()
		},
	}
}

// Run loops single-ticket flows until the user declines to continue.
// An aborted prompt ends the session cleanly; at that point no request
// for the current ticket has been sent, because submission only
// happens after the whole draft is collected.
func (s *Session) Run() error {
	for idx := 1; ; idx++ {
		color.Cyan("Creating ticket #%d", idx)

		draft, err := s.Collect()
		if err != nil {
			if errors.Is(err, prompt.ErrAborted) {
				return nil
			}
			return err
		}

		s.Submit(draft)

		again, err := s.Confirm()
		if err != nil {
			if errors.Is(err, prompt.ErrAborted) {
				return nil
			}
			return err
		}
		if !again {
			return nil
		}
	}
}
