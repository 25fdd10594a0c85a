package tracker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/reposcope/reposcope/internal/constants"
	"github.com/reposcope/reposcope/internal/ctxutil"
	reposcopeerrors "github.com/reposcope/reposcope/internal/errors"
)

// JiraClient talks to the Jira Cloud REST API (v2) using basic auth with an
// API token.
type JiraClient struct {
	baseURL string
	email   string
	token   string
	httpCli *http.Client
	logger  zerolog.Logger
}

// JiraOption configures a JiraClient.
type JiraOption func(*JiraClient)

// WithHTTPClient substitutes the HTTP client.
func WithHTTPClient(cli *http.Client) JiraOption {
	return func(c *JiraClient) {
		c.httpCli = cli
	}
}

// WithLogger sets the logger for the client.
func WithLogger(logger zerolog.Logger) JiraOption {
	return func(c *JiraClient) {
		c.logger = logger
	}
}

// NewJiraClient creates a Jira tracker client.
func NewJiraClient(baseURL, email, token string, opts ...JiraOption) (*JiraClient, error) {
	if baseURL == "" {
		return nil, reposcopeerrors.Wrap(reposcopeerrors.ErrEmptyValue, "tracker base url")
	}
	if email == "" {
		return nil, reposcopeerrors.Wrap(reposcopeerrors.ErrEmptyValue, "tracker email")
	}
	if token == "" {
		return nil, reposcopeerrors.Wrap(reposcopeerrors.ErrEmptyValue, "tracker token")
	}

	c := &JiraClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		email:   email,
		token:   token,
		httpCli: &http.Client{Timeout: constants.DefaultTrackerTimeout},
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

var _ Tracker = (*JiraClient)(nil)

type jiraIssue struct {
	Key    string `json:"key"`
	Fields struct {
		Summary     string `json:"summary"`
		Description string `json:"description"`
		Status      struct {
			Name string `json:"name"`
		} `json:"status"`
		Assignee *struct {
			DisplayName string `json:"displayName"`
		} `json:"assignee"`
	} `json:"fields"`
}

func (ji jiraIssue) toIssue() Issue {
	issue := Issue{
		Key:         ji.Key,
		Summary:     ji.Fields.Summary,
		Description: ji.Fields.Description,
		Status:      ji.Fields.Status.Name,
	}
	if ji.Fields.Assignee != nil {
		issue.Assignee = ji.Fields.Assignee.DisplayName
	}
	return issue
}

// GetIssue fetches a single issue by key.
func (c *JiraClient) GetIssue(ctx context.Context, key string) (*Issue, error) {
	if err := ctxutil.Canceled(ctx); err != nil {
		return nil, err
	}
	if key == "" {
		return nil, reposcopeerrors.Wrap(reposcopeerrors.ErrEmptyValue, "issue key")
	}

	body, status, err := c.do(ctx, http.MethodGet, "/rest/api/2/issue/"+url.PathEscape(key), nil)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, fmt.Errorf("issue %s: %w", key, reposcopeerrors.ErrIssueNotFound)
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("tracker api error (status %d): %s: %w", status, string(body), reposcopeerrors.ErrTrackerOperation)
	}

	var ji jiraIssue
	if err := json.Unmarshal(body, &ji); err != nil {
		return nil, fmt.Errorf("parsing issue: %w: %w", err, reposcopeerrors.ErrTrackerOperation)
	}
	issue := ji.toIssue()
	return &issue, nil
}

type jiraSearchResponse struct {
	Issues []jiraIssue `json:"issues"`
}

// ListIssues returns the open issues assigned to the configured user.
func (c *JiraClient) ListIssues(ctx context.Context, projectKey string) ([]Issue, error) {
	if err := ctxutil.Canceled(ctx); err != nil {
		return nil, err
	}

	jql := "assignee = currentUser() AND statusCategory != Done ORDER BY updated DESC"
	if projectKey != "" {
		jql = fmt.Sprintf("project = %s AND %s", projectKey, jql)
	}
	q := url.Values{}
	q.Set("jql", jql)
	q.Set("fields", "summary,description,status,assignee")

	body, status, err := c.do(ctx, http.MethodGet, "/rest/api/2/search?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("tracker api error (status %d): %s: %w", status, string(body), reposcopeerrors.ErrTrackerOperation)
	}

	var parsed jiraSearchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("parsing search results: %w: %w", err, reposcopeerrors.ErrTrackerOperation)
	}

	issues := make([]Issue, 0, len(parsed.Issues))
	for _, ji := range parsed.Issues {
		issues = append(issues, ji.toIssue())
	}
	return issues, nil
}

type jiraProject struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

// ListProjects returns the projects visible to the configured user.
func (c *JiraClient) ListProjects(ctx context.Context) ([]Project, error) {
	if err := ctxutil.Canceled(ctx); err != nil {
		return nil, err
	}

	body, status, err := c.do(ctx, http.MethodGet, "/rest/api/2/project", nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("tracker api error (status %d): %s: %w", status, string(body), reposcopeerrors.ErrTrackerOperation)
	}

	var parsed []jiraProject
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("parsing projects: %w: %w", err, reposcopeerrors.ErrTrackerOperation)
	}

	projects := make([]Project, 0, len(parsed))
	for _, jp := range parsed {
		projects = append(projects, Project{Key: jp.Key, Name: jp.Name})
	}
	return projects, nil
}

// PostComment adds a comment to an issue.
func (c *JiraClient) PostComment(ctx context.Context, key, body string) error {
	if err := ctxutil.Canceled(ctx); err != nil {
		return err
	}
	if key == "" {
		return reposcopeerrors.Wrap(reposcopeerrors.ErrEmptyValue, "issue key")
	}

	payload, err := json.Marshal(map[string]string{"body": body})
	if err != nil {
		return fmt.Errorf("marshaling comment: %w", err)
	}

	respBody, status, err := c.do(ctx, http.MethodPost, "/rest/api/2/issue/"+url.PathEscape(key)+"/comment", payload)
	if err != nil {
		return err
	}
	if status == http.StatusNotFound {
		return fmt.Errorf("issue %s: %w", key, reposcopeerrors.ErrIssueNotFound)
	}
	if status != http.StatusCreated {
		return fmt.Errorf("tracker api error (status %d): %s: %w", status, string(respBody), reposcopeerrors.ErrTrackerOperation)
	}
	return nil
}

// do issues one authenticated request and returns the response body and
// status. Transport failures are wrapped with ErrTrackerOperation; status
// handling is left to the caller.
func (c *JiraClient) do(ctx context.Context, method, path string, payload []byte) ([]byte, int, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, 0, fmt.Errorf("creating request: %w", err)
	}
	requestID := uuid.NewString()
	req.SetBasicAuth(c.email, c.token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpCli.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("sending request: %w: %w", err, reposcopeerrors.ErrTrackerOperation)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("reading response: %w: %w", err, reposcopeerrors.ErrTrackerOperation)
	}

	c.logger.Debug().
		Str("request_id", requestID).
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("tracker request completed")

	return body, resp.StatusCode, nil
}
