// Package workspace holds the reference data the wizard prompts are
// built from. The snapshot is fetched once at session start and is
// read-only afterwards.
package workspace

import (
	"fmt"
	"sort"

	"github.com/clubhouse-tools/chstory/internal/clubhouse"
	"github.com/clubhouse-tools/chstory/internal/config"
)

// State is the per-session workspace snapshot
type State struct {
	Projects   []clubhouse.Project
	Epics      []clubhouse.Epic
	Teams      []clubhouse.Team
	Members    []clubhouse.Member
	Iterations []clubhouse.Iteration

	Config *config.Config
}

// Fetch retrieves the full snapshot from the API. Any failure here is
// fatal to the session; the caller propagates it to the process
// boundary.
func Fetch(client *clubhouse.Client, cfg *config.Config) (*State, error) {
	projects, err := client.ListProjects()
	if err != nil {
		return nil, fmt.Errorf("fetch projects: %w", err)
	}

	epics, err := client.ListEpics()
	if err != nil {
		return nil, fmt.Errorf("fetch epics: %w", err)
	}

	teams, err := client.ListTeams()
	if err != nil {
		return nil, fmt.Errorf("fetch teams: %w", err)
	}

	members, err := client.ListMembers()
	if err != nil {
		return nil, fmt.Errorf("fetch members: %w", err)
	}

	iterations, err := client.ListIterations()
	if err != nil {
		return nil, fmt.Errorf("fetch iterations: %w", err)
	}

	return &State{
		Projects:   projects,
		Epics:      epics,
		Teams:      teams,
		Members:    members,
		Iterations: iterations,
		Config:     cfg,
	}, nil
}

// TeamName resolves a team id to its display name
func (s *State) TeamName(teamID int64) string {
	for _, team := range s.Teams {
		if team.ID == teamID {
			return team.Name
		}
	}
	return ""
}

// ProjectsByTeam returns the projects sorted by team id, so projects
// belonging to the same team appear together in the project prompt.
// The snapshot's own ordering is left untouched.
func (s *State) ProjectsByTeam() []clubhouse.Project {
	projects := make([]clubhouse.Project, len(s.Projects))
	copy(projects, s.Projects)
	sort.SliceStable(projects, func(i, j int) bool {
		return projects[i].TeamID < projects[j].TeamID
	})
	return projects
}
