package cli

import (
	"context"

	"github.com/reposcope/reposcope/internal/git"
	"github.com/reposcope/reposcope/internal/tracker"
)

// fakeRunner is a canned git.Runner for command tests.
type fakeRunner struct {
	files   []git.ChangedFile
	diffs   []git.FileDiff
	commits []git.Commit
	info    *git.RepoInfo
	err     error
}

var _ git.Runner = (*fakeRunner)(nil)

func (f *fakeRunner) ChangedFiles(context.Context) ([]git.ChangedFile, error) {
	return f.files, f.err
}

func (f *fakeRunner) Diffs(context.Context, bool) ([]git.FileDiff, error) {
	return f.diffs, f.err
}

func (f *fakeRunner) Commits(context.Context, int) ([]git.Commit, error) {
	return f.commits, f.err
}

func (f *fakeRunner) Info(context.Context) (*git.RepoInfo, error) {
	return f.info, f.err
}

// fakeProvider is a canned ai.Provider that records the prompt it was given.
type fakeProvider struct {
	response string
	err      error
	prompt   string
	calls    int
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Generate(_ context.Context, prompt string) (string, error) {
	f.prompt = prompt
	f.calls++
	return f.response, f.err
}

// fakeTracker is a canned tracker.Tracker that records posted comments.
type fakeTracker struct {
	issue    *tracker.Issue
	issues   []tracker.Issue
	projects []tracker.Project
	err      error

	commentKey  string
	commentBody string
}

var _ tracker.Tracker = (*fakeTracker)(nil)

func (f *fakeTracker) GetIssue(context.Context, string) (*tracker.Issue, error) {
	return f.issue, f.err
}

func (f *fakeTracker) ListIssues(context.Context, string) ([]tracker.Issue, error) {
	return f.issues, f.err
}

func (f *fakeTracker) ListProjects(context.Context) ([]tracker.Project, error) {
	return f.projects, f.err
}

func (f *fakeTracker) PostComment(_ context.Context, key, body string) error {
	f.commentKey = key
	f.commentBody = body
	return f.err
}
