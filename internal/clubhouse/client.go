package clubhouse

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	// APIURL is the Clubhouse REST API endpoint
	APIURL = "https://api.clubhouse.io/api/v3"
)

// Client is a Clubhouse REST API client
type Client struct {
	token      string
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a new Clubhouse API client
func NewClient(token string) *Client {
	return &Client{
		token: token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL: APIURL,
	}
}

// WithBaseURL points the client at a different API endpoint. Used by
// tests against httptest servers.
func (c *Client) WithBaseURL(url string) *Client {
	c.baseURL = url
	return c
}

// APIError is a non-2xx response from the API. Body carries the raw
// payload so submission failures can be reported verbatim.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Body)
}

// do executes a request against the API and unmarshals the response
// into result
func (c *Client) do(method, path string, body, result interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Clubhouse-Token", c.token)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("unmarshal response: %w", err)
		}
	}

	return nil
}

// ListProjects returns all projects in the workspace
func (c *Client) ListProjects() ([]Project, error) {
	var projects []Project
	if err := c.do(http.MethodGet, "/projects", nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// ListEpics returns all epics in the workspace
func (c *Client) ListEpics() ([]Epic, error) {
	var epics []Epic
	if err := c.do(http.MethodGet, "/epics", nil, &epics); err != nil {
		return nil, err
	}
	return epics, nil
}

// ListTeams returns all teams in the workspace
func (c *Client) ListTeams() ([]Team, error) {
	var teams []Team
	if err := c.do(http.MethodGet, "/teams", nil, &teams); err != nil {
		return nil, err
	}
	return teams, nil
}

// ListMembers returns all workspace members
func (c *Client) ListMembers() ([]Member, error) {
	var members []Member
	if err := c.do(http.MethodGet, "/members", nil, &members); err != nil {
		return nil, err
	}
	return members, nil
}

// ListIterations returns all iterations (sprints) in the workspace
func (c *Client) ListIterations() ([]Iteration, error) {
	var iterations []Iteration
	if err := c.do(http.MethodGet, "/iterations", nil, &iterations); err != nil {
		return nil, err
	}
	return iterations, nil
}

// CreateStory creates a story and returns the created resource
func (c *Client) CreateStory(params CreateStoryParams) (*Story, error) {
	var story Story
	if err := c.do(http.MethodPost, "/stories", params, &story); err != nil {
		return nil, err
	}
	return &story, nil
}

// IsAuthenticated checks if the token is valid by making a test request
func (c *Client) IsAuthenticated() bool {
	_, err := c.ListMembers()
	return err == nil
}
