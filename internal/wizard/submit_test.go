package wizard

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/clubhouse-tools/chstory/internal/clubhouse"
)

func TestBuildParamsOwnerSentinel(t *testing.T) {
	tests := []struct {
		name      string
		ownerID   string
		wantNull  bool
		wantOwner string
	}{
		{"do not assign", "", true, ""},
		{"real owner", "u1", false, "u1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := &StoryDraft{
				Title:     "A valid title",
				StoryType: "feature",
				ProjectID: "10",
				OwnerID:   tt.ownerID,
			}
			params, err := BuildParams(draft)
			if err != nil {
				t.Fatalf("BuildParams: %v", err)
			}

			if tt.wantNull {
				if params.OwnerIDs != nil {
					t.Errorf("OwnerIDs = %v, want nil", params.OwnerIDs)
				}
			} else {
				if len(params.OwnerIDs) != 1 || params.OwnerIDs[0] != tt.wantOwner {
					t.Errorf("OwnerIDs = %v, want [%s]", params.OwnerIDs, tt.wantOwner)
				}
			}
		})
	}
}

func TestBuildParamsLabelSentinel(t *testing.T) {
	tests := []struct {
		name     string
		label    string
		wantNull bool
	}{
		{"no label", "", true},
		{"sprint label", "Sprint 12", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := &StoryDraft{
				Title:     "A valid title",
				StoryType: "chore",
				ProjectID: "10",
				Label:     tt.label,
			}
			params, err := BuildParams(draft)
			if err != nil {
				t.Fatalf("BuildParams: %v", err)
			}

			if tt.wantNull {
				if params.Labels != nil {
					t.Errorf("Labels = %v, want nil", params.Labels)
				}
			} else {
				if len(params.Labels) != 1 || params.Labels[0].Name != tt.label {
					t.Errorf("Labels = %v, want [{%s}]", params.Labels, tt.label)
				}
			}
		})
	}
}

func TestBuildParamsEpicAndProject(t *testing.T) {
	draft := &StoryDraft{
		Title:       "A valid title",
		Description: "does the thing",
		StoryType:   "bug",
		ProjectID:   "10",
		EpicID:      "100",
	}
	params, err := BuildParams(draft)
	if err != nil {
		t.Fatalf("BuildParams: %v", err)
	}

	if params.ProjectID != 10 {
		t.Errorf("ProjectID = %d, want 10", params.ProjectID)
	}
	if params.EpicID == nil || *params.EpicID != 100 {
		t.Errorf("EpicID = %v, want 100", params.EpicID)
	}

	// No epic: the field is absent from the wire format entirely
	draft.EpicID = ""
	params, err = BuildParams(draft)
	if err != nil {
		t.Fatalf("BuildParams: %v", err)
	}
	if params.EpicID != nil {
		t.Errorf("EpicID = %v, want nil", params.EpicID)
	}
}

func TestBuildParamsWireNulls(t *testing.T) {
	draft := &StoryDraft{
		Title:     "A valid title",
		StoryType: "feature",
		ProjectID: "10",
	}
	params, err := BuildParams(draft)
	if err != nil {
		t.Fatalf("BuildParams: %v", err)
	}

	data, err := json.Marshal(params)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if string(raw["owner_ids"]) != "null" {
		t.Errorf("owner_ids on the wire = %s, want null", raw["owner_ids"])
	}
	if string(raw["labels"]) != "null" {
		t.Errorf("labels on the wire = %s, want null", raw["labels"])
	}
	if _, ok := raw["epic_id"]; ok {
		t.Error("epic_id should be omitted when no epic is chosen")
	}
}

func TestSubmitSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/stories" || r.Method != http.MethodPost {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(clubhouse.Story{ID: 42, Name: "Fix Login Bug", StoryType: "bug"})
	}))
	defer server.Close()

	client := clubhouse.NewClient("tok").WithBaseURL(server.URL)
	story := Submit(client, &StoryDraft{
		Title:     "Fix Login Bug",
		StoryType: "bug",
		ProjectID: "10",
	})

	if story == nil {
		t.Fatal("Submit returned no story on success")
	}
	if story.ID != 42 {
		t.Errorf("story.ID = %d, want 42", story.ID)
	}
}

func TestSubmitFailureAbsorbed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message":"project_id is invalid"}`))
	}))
	defer server.Close()

	client := clubhouse.NewClient("tok").WithBaseURL(server.URL)
	story := Submit(client, &StoryDraft{
		Title:     "Fix Login Bug",
		StoryType: "bug",
		ProjectID: "10",
	})

	if story != nil {
		t.Errorf("Submit returned %+v on failure, want nil", story)
	}
}
