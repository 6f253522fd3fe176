package clubhouse

import "fmt"

// Project represents a Clubhouse project
type Project struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	TeamID int64  `json:"team_id"`
}

// Team represents a Clubhouse team (the grouping projects belong to)
type Team struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Epic represents a Clubhouse epic
type Epic struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Profile holds the displayable part of a member
type Profile struct {
	Name string `json:"name"`
}

// Member represents a Clubhouse workspace member
type Member struct {
	ID      string  `json:"id"`
	Profile Profile `json:"profile"`
}

// Iteration represents a Clubhouse iteration (sprint), reused as a
// story label by the wizard
type Iteration struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Label is a story label reference
type Label struct {
	Name string `json:"name"`
}

// CreateStoryParams is the body of a story creation request.
//
// OwnerIDs and Labels intentionally have no omitempty: a nil slice
// marshals to JSON null, which is how "unassigned" and "no label" are
// expressed on the wire.
type CreateStoryParams struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	StoryType   string   `json:"story_type"`
	OwnerIDs    []string `json:"owner_ids"`
	ProjectID   int64    `json:"project_id"`
	EpicID      *int64   `json:"epic_id,omitempty"`
	Labels      []Label  `json:"labels"`
}

// Story is the subset of a created story the wizard reports on
type Story struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	StoryType string `json:"story_type"`
	AppURL    string `json:"app_url"`
}

// URL returns the story's web address, preferring the API-provided one
func (s *Story) URL() string {
	if s.AppURL != "" {
		return s.AppURL
	}
	return fmt.Sprintf("https://app.clubhouse.io/story/%d", s.ID)
}
