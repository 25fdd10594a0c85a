package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reposcope/reposcope/internal/git"
	"github.com/reposcope/reposcope/internal/render"
	"github.com/reposcope/reposcope/internal/tracker"
)

func textFlags() *GlobalFlags { return &GlobalFlags{Output: OutputText, Repo: "."} }

// chdir is t.Chdir for Go versions before 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
func jsonFlags() *GlobalFlags { return &GlobalFlags{Output: OutputJSON, Repo: "."} }

func init() {
	// Keep renders deterministic regardless of the test terminal.
	os.Setenv("NO_COLOR", "1")
	render.CheckNoColor()
}

func TestRunStatus(t *testing.T) {
	t.Run("text table", func(t *testing.T) {
		runner := &fakeRunner{files: []git.ChangedFile{
			{Path: "cmd/main.go", StatusCode: " M", StatusLabel: "Modified"},
			{Path: "README.md", StatusCode: "??", StatusLabel: "Untracked"},
		}}

		var buf bytes.Buffer
		require.NoError(t, runStatus(context.Background(), textFlags(), runner, &buf))
		assert.Contains(t, buf.String(), "cmd/main.go")
		assert.Contains(t, buf.String(), "Untracked")
	})

	t.Run("json output", func(t *testing.T) {
		runner := &fakeRunner{files: []git.ChangedFile{
			{Path: "a.go", StatusCode: " M", StatusLabel: "Modified"},
		}}

		var buf bytes.Buffer
		require.NoError(t, runStatus(context.Background(), jsonFlags(), runner, &buf))
		assert.Contains(t, buf.String(), `"status_code": " M"`)
	})

	t.Run("clean tree", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, runStatus(context.Background(), textFlags(), &fakeRunner{}, &buf))
		assert.Equal(t, "No changes found.\n", buf.String())
	})

	t.Run("runner error", func(t *testing.T) {
		runner := &fakeRunner{err: errors.New("boom")}
		var buf bytes.Buffer
		require.Error(t, runStatus(context.Background(), textFlags(), runner, &buf))
	})
}

func TestRunDiff(t *testing.T) {
	diffs := []git.FileDiff{
		{Path: "a.go", StatusLabel: "Modified", Patch: "@@ -1 +1 @@\n-old\n+new"},
	}

	t.Run("text output", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, runDiff(context.Background(), textFlags(), &fakeRunner{diffs: diffs}, false, 0, &buf))
		assert.Contains(t, buf.String(), "a.go (Modified)")
		assert.Contains(t, buf.String(), "+new")
	})

	t.Run("text output truncates", func(t *testing.T) {
		long := ""
		for i := 0; i < 50; i++ {
			long += "+line\n"
		}
		runner := &fakeRunner{diffs: []git.FileDiff{{Path: "big.go", StatusLabel: "Modified", Patch: long}}}

		var buf bytes.Buffer
		require.NoError(t, runDiff(context.Background(), textFlags(), runner, false, 10, &buf))
		assert.Contains(t, buf.String(), "lines omitted")
		assert.Contains(t, buf.String(), "(patch truncated to 10 lines)")
	})

	t.Run("negative budget renders full patch", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, runDiff(context.Background(), textFlags(), &fakeRunner{diffs: diffs}, false, -2, &buf))
		assert.Contains(t, buf.String(), "+new")
		assert.NotContains(t, buf.String(), "omitted")
	})

	t.Run("json output carries full patch", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, runDiff(context.Background(), jsonFlags(), &fakeRunner{diffs: diffs}, false, 1, &buf))
		assert.Contains(t, buf.String(), "-old")
		assert.NotContains(t, buf.String(), "omitted")
	})
}

func TestRunLog(t *testing.T) {
	commits := []git.Commit{
		{Hash: "a1b2c3d4e5f6", Author: "Dana", Email: "d@x.com", Date: "2023-11-14 22:13:20", Message: "fix parser"},
	}

	t.Run("text output", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, runLog(context.Background(), textFlags(), &fakeRunner{commits: commits}, 10, &buf))
		assert.Contains(t, buf.String(), "a1b2c3d4")
		assert.Contains(t, buf.String(), "fix parser")
	})

	t.Run("json output", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, runLog(context.Background(), jsonFlags(), &fakeRunner{commits: commits}, 10, &buf))
		assert.Contains(t, buf.String(), `"hash": "a1b2c3d4e5f6"`)
	})
}

func TestRunInfo(t *testing.T) {
	info := &git.RepoInfo{
		RemoteURL:    "git@example.com:team/repo.git",
		TotalCommits: 321,
		Branch:       "main",
		Contributors: []git.Contributor{{Name: "Dana", Commits: 200}},
	}

	var buf bytes.Buffer
	require.NoError(t, runInfo(context.Background(), textFlags(), &fakeRunner{info: info}, &buf))
	assert.Contains(t, buf.String(), "main")
	assert.Contains(t, buf.String(), "321")
	assert.Contains(t, buf.String(), "Dana")
}

func TestRunSuggest(t *testing.T) {
	runner := &fakeRunner{
		files: []git.ChangedFile{{Path: "a.go", StatusCode: " M", StatusLabel: "Modified"}},
		diffs: []git.FileDiff{{Path: "a.go", StatusLabel: "Modified", Patch: "+new line"}},
		info:  &git.RepoInfo{Branch: "feature/parser"},
	}

	t.Run("renders suggestion", func(t *testing.T) {
		provider := &fakeProvider{response: "```json\n" +
			`{"commit_title":"fix parser","explanation":"handles renames","files":["a.go"]}` +
			"\n```"}

		var buf bytes.Buffer
		require.NoError(t, runSuggest(context.Background(), textFlags(), runner, provider, false, 80, &buf))

		assert.Contains(t, buf.String(), "fix parser")
		assert.Contains(t, buf.String(), "handles renames")
		// The prompt carries the branch, files and diff.
		assert.Contains(t, provider.prompt, "feature/parser")
		assert.Contains(t, provider.prompt, "a.go")
		assert.Contains(t, provider.prompt, "+new line")
	})

	t.Run("clean tree skips provider", func(t *testing.T) {
		provider := &fakeProvider{}
		var buf bytes.Buffer
		require.NoError(t, runSuggest(context.Background(), textFlags(), &fakeRunner{info: &git.RepoInfo{}}, provider, false, 80, &buf))
		assert.Equal(t, "No changes found.\n", buf.String())
		assert.Zero(t, provider.calls)
	})

	t.Run("unparseable response", func(t *testing.T) {
		provider := &fakeProvider{response: "no json here"}
		var buf bytes.Buffer
		require.Error(t, runSuggest(context.Background(), textFlags(), runner, provider, false, 80, &buf))
	})
}

func TestRunAnalyze(t *testing.T) {
	runner := &fakeRunner{
		files: []git.ChangedFile{{Path: "a.go", StatusCode: " M", StatusLabel: "Modified"}},
		diffs: []git.FileDiff{{Path: "a.go", StatusLabel: "Modified", Patch: "+new line"}},
	}
	response := "```json\n" +
		`{"summary":"reworks parsing","impact":"low","risks":["label drift"]}` +
		"\n```"

	t.Run("without issue", func(t *testing.T) {
		provider := &fakeProvider{response: response}
		var buf bytes.Buffer
		require.NoError(t, runAnalyze(context.Background(), textFlags(), runner, provider, nil, "", false, 80, &buf))
		assert.Contains(t, buf.String(), "reworks parsing")
		assert.Contains(t, buf.String(), "label drift")
	})

	t.Run("with issue context", func(t *testing.T) {
		provider := &fakeProvider{response: response}
		trk := &fakeTracker{issue: &tracker.Issue{
			Key:         "PROJ-42",
			Summary:     "Parser mangles renames",
			Description: "Renamed files lose their labels.",
		}}

		var buf bytes.Buffer
		require.NoError(t, runAnalyze(context.Background(), textFlags(), runner, provider, trk, "PROJ-42", false, 80, &buf))
		assert.Contains(t, provider.prompt, "PROJ-42")
		assert.Contains(t, provider.prompt, "Parser mangles renames")
		assert.Empty(t, trk.commentKey)
	})

	t.Run("posts comment", func(t *testing.T) {
		provider := &fakeProvider{response: response}
		trk := &fakeTracker{issue: &tracker.Issue{Key: "PROJ-42", Summary: "s"}}

		var buf bytes.Buffer
		require.NoError(t, runAnalyze(context.Background(), textFlags(), runner, provider, trk, "PROJ-42", true, 80, &buf))
		assert.Equal(t, "PROJ-42", trk.commentKey)
		assert.Contains(t, trk.commentBody, "reworks parsing")
	})

	t.Run("issue lookup failure aborts", func(t *testing.T) {
		provider := &fakeProvider{response: response}
		trk := &fakeTracker{err: errors.New("boom")}

		var buf bytes.Buffer
		require.Error(t, runAnalyze(context.Background(), textFlags(), runner, provider, trk, "PROJ-42", false, 80, &buf))
		assert.Zero(t, provider.calls)
	})
}

func TestRunIssues(t *testing.T) {
	trk := &fakeTracker{issues: []tracker.Issue{
		{Key: "PROJ-1", Status: "Open", Summary: "First"},
		{Key: "PROJ-22", Status: "In Progress", Summary: "Second"},
	}}

	var buf bytes.Buffer
	require.NoError(t, runIssues(context.Background(), textFlags(), trk, "PROJ", &buf))
	assert.Contains(t, buf.String(), "PROJ-1")
	assert.Contains(t, buf.String(), "[In Progress] Second")
}

func TestRunProjects(t *testing.T) {
	trk := &fakeTracker{projects: []tracker.Project{{Key: "PROJ", Name: "Project One"}}}

	var buf bytes.Buffer
	require.NoError(t, runProjects(context.Background(), textFlags(), trk, &buf))
	assert.Contains(t, buf.String(), "Project One")
}

func TestRunInit(t *testing.T) {
	t.Run("writes project config", func(t *testing.T) {
		chdir(t, t.TempDir())

		var buf bytes.Buffer
		require.NoError(t, runInit(false, &buf))
		assert.FileExists(t, filepath.Join(".reposcope", "config.yaml"))
		assert.Contains(t, buf.String(), "Wrote")
	})

	t.Run("refuses overwrite", func(t *testing.T) {
		chdir(t, t.TempDir())

		var buf bytes.Buffer
		require.NoError(t, runInit(false, &buf))
		require.Error(t, runInit(false, &buf))
	})
}
