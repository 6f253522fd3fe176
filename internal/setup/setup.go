// Package setup runs the first-use configuration flow: API token entry
// and default project selection. Failures here are fatal; the wizard is
// never entered without a working configuration.
package setup

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/fatih/color"

	"github.com/clubhouse-tools/chstory/internal/clubhouse"
	"github.com/clubhouse-tools/chstory/internal/config"
	"github.com/clubhouse-tools/chstory/internal/prompt"
)

// Run collects and saves a fresh configuration. The token is verified
// by listing the workspace projects with it; those projects then feed
// the default-project prompt.
func Run() (*config.Config, error) {
	color.Yellow("chstory is not configured yet.")

	token, err := prompt.Input{
		Label:       "Clubhouse API token:",
		Placeholder: "from Settings > API Tokens",
		Secret:      true,
		Validate: func(s string) error {
			if s == "" {
				return errors.New("a token is required")
			}
			return nil
		},
	}.Run()
	if err != nil {
		return nil, err
	}

	client := clubhouse.NewClient(token)
	projects, err := client.ListProjects()
	if err != nil {
		return nil, fmt.Errorf("verify token: %w", err)
	}
	if len(projects) == 0 {
		return nil, errors.New("the workspace has no projects")
	}

	choices := make([]prompt.Choice, len(projects))
	for i, p := range projects {
		choices[i] = prompt.Choice{
			Name:  p.Name,
			Value: strconv.FormatInt(p.ID, 10),
		}
	}

	project, err := prompt.Autocomplete{
		Label:   "Default project:",
		Choices: choices,
	}.Run()
	if err != nil {
		return nil, err
	}

	cfg := &config.Config{
		Token:            token,
		DefaultProjectID: project.Value,
	}
	if err := config.Save(cfg); err != nil {
		return nil, fmt.Errorf("save config: %w", err)
	}

	return cfg, nil
}
