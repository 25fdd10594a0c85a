// Package tracker provides the issue tracker boundary for reposcope.
//
// Commands that need issue context resolve it through the Tracker interface;
// the only implementation today is a Jira Cloud REST client.
package tracker

import "context"

// Issue is a tracker issue reduced to the fields reposcope uses.
type Issue struct {
	Key         string `json:"key"`
	Summary     string `json:"summary"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Assignee    string `json:"assignee,omitempty"`
}

// Project is a tracker project.
type Project struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

// Tracker defines the operations reposcope needs from an issue tracker.
// Context should be used to control timeouts and cancellation.
type Tracker interface {
	// GetIssue fetches a single issue by key.
	// Returns an error wrapped with errors.ErrIssueNotFound when the key
	// does not exist.
	GetIssue(ctx context.Context, key string) (*Issue, error)

	// ListIssues returns the open issues assigned to the configured user,
	// optionally filtered by project key.
	ListIssues(ctx context.Context, projectKey string) ([]Issue, error)

	// ListProjects returns the projects visible to the configured user.
	ListProjects(ctx context.Context) ([]Project, error)

	// PostComment adds a comment to an issue.
	PostComment(ctx context.Context, key, body string) error
}
