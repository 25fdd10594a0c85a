package tracker

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	reposcopeerrors "github.com/reposcope/reposcope/internal/errors"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *JiraClient {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewJiraClient(srv.URL, "dev@example.com", "api-token")
	require.NoError(t, err)
	return c
}

func TestNewJiraClient(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		email   string
		token   string
	}{
		{name: "empty base url", email: "e@x.com", token: "t"},
		{name: "empty email", baseURL: "https://x.atlassian.net", token: "t"},
		{name: "empty token", baseURL: "https://x.atlassian.net", email: "e@x.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewJiraClient(tt.baseURL, tt.email, tt.token)
			require.ErrorIs(t, err, reposcopeerrors.ErrEmptyValue)
		})
	}

	t.Run("trims trailing slash", func(t *testing.T) {
		c, err := NewJiraClient("https://x.atlassian.net/", "e@x.com", "t")
		require.NoError(t, err)
		assert.Equal(t, "https://x.atlassian.net", c.baseURL)
	})
}

func TestGetIssue(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/rest/api/2/issue/PROJ-42", r.URL.Path)
			assert.NotEmpty(t, r.Header.Get("X-Request-ID"))

			user, pass, ok := r.BasicAuth()
			require.True(t, ok)
			assert.Equal(t, "dev@example.com", user)
			assert.Equal(t, "api-token", pass)

			_, _ = w.Write([]byte(`{
				"key": "PROJ-42",
				"fields": {
					"summary": "Fix status parser",
					"description": "Porcelain lines are mangled.",
					"status": {"name": "In Progress"},
					"assignee": {"displayName": "Dana Developer"}
				}
			}`))
		})

		issue, err := c.GetIssue(context.Background(), "PROJ-42")
		require.NoError(t, err)
		assert.Equal(t, "PROJ-42", issue.Key)
		assert.Equal(t, "Fix status parser", issue.Summary)
		assert.Equal(t, "In Progress", issue.Status)
		assert.Equal(t, "Dana Developer", issue.Assignee)
	})

	t.Run("not found", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		_, err := c.GetIssue(context.Background(), "PROJ-999")
		require.ErrorIs(t, err, reposcopeerrors.ErrIssueNotFound)
	})

	t.Run("empty key", func(t *testing.T) {
		c := newTestClient(t, func(http.ResponseWriter, *http.Request) {
			t.Fatal("no request expected")
		})

		_, err := c.GetIssue(context.Background(), "")
		require.ErrorIs(t, err, reposcopeerrors.ErrEmptyValue)
	})

	t.Run("nil assignee", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"key":"PROJ-1","fields":{"summary":"s","status":{"name":"Open"},"assignee":null}}`))
		})

		issue, err := c.GetIssue(context.Background(), "PROJ-1")
		require.NoError(t, err)
		assert.Empty(t, issue.Assignee)
	})

	t.Run("server error", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		})

		_, err := c.GetIssue(context.Background(), "PROJ-1")
		require.ErrorIs(t, err, reposcopeerrors.ErrTrackerOperation)
	})

	t.Run("canceled context", func(t *testing.T) {
		c := newTestClient(t, func(http.ResponseWriter, *http.Request) {
			t.Fatal("no request expected")
		})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := c.GetIssue(ctx, "PROJ-1")
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestListIssues(t *testing.T) {
	t.Run("filters by project", func(t *testing.T) {
		var gotJQL string
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/rest/api/2/search", r.URL.Path)
			gotJQL = r.URL.Query().Get("jql")

			_ = json.NewEncoder(w).Encode(jiraSearchResponse{
				Issues: []jiraIssue{{Key: "PROJ-1"}, {Key: "PROJ-2"}},
			})
		})

		issues, err := c.ListIssues(context.Background(), "PROJ")
		require.NoError(t, err)
		require.Len(t, issues, 2)
		assert.Equal(t, "PROJ-1", issues[0].Key)
		assert.Contains(t, gotJQL, "project = PROJ")
		assert.Contains(t, gotJQL, "assignee = currentUser()")
	})

	t.Run("no project filter", func(t *testing.T) {
		var gotJQL string
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotJQL = r.URL.Query().Get("jql")
			_, _ = w.Write([]byte(`{"issues":[]}`))
		})

		issues, err := c.ListIssues(context.Background(), "")
		require.NoError(t, err)
		assert.Empty(t, issues)
		assert.NotContains(t, gotJQL, "project =")
	})
}

func TestListProjects(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/api/2/project", r.URL.Path)
		_, _ = w.Write([]byte(`[{"key":"PROJ","name":"Project One"},{"key":"OPS","name":"Operations"}]`))
	})

	projects, err := c.ListProjects(context.Background())
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, Project{Key: "PROJ", Name: "Project One"}, projects[0])
}

func TestPostComment(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		var gotBody map[string]string
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/rest/api/2/issue/PROJ-7/comment", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			w.WriteHeader(http.StatusCreated)
		})

		err := c.PostComment(context.Background(), "PROJ-7", "analysis attached")
		require.NoError(t, err)
		assert.Equal(t, "analysis attached", gotBody["body"])
	})

	t.Run("issue missing", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		err := c.PostComment(context.Background(), "PROJ-404", "x")
		require.ErrorIs(t, err, reposcopeerrors.ErrIssueNotFound)
	})
}
