package wizard

import (
	"fmt"
	"strings"

	"github.com/clubhouse-tools/chstory/internal/clubhouse"
)

// Slugify lowercases the name and collapses every run of
// non-alphanumeric characters into a single dash, producing a
// branch-safe identifier
func Slugify(name string) string {
	slug := make([]rune, 0, len(name))
	lastDash := false
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			slug = append(slug, r)
			lastDash = false
			continue
		}
		if !lastDash {
			slug = append(slug, '-')
			lastDash = true
		}
	}
	return strings.Trim(string(slug), "-")
}

// BranchCommand derives the git branch-creation command for a created
// story, e.g. "git checkout -b bug/ch42/fix-login-bug"
func BranchCommand(story *clubhouse.Story) string {
	return fmt.Sprintf("git checkout -b %s/ch%d/%s", story.StoryType, story.ID, Slugify(story.Name))
}
