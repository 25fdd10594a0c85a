package prompts

import (
	"fmt"
	"sync"
	"text/template"
)

// templateSources maps each prompt ID to its template text. Templates ask
// for fenced JSON so the response parser has a stable structure to extract.
var templateSources = map[PromptID]string{ //nolint:gochecknoglobals // static template table
	CommitSuggestion: `Generate a commit message for these changes on branch {{.Branch}}:

Files changed:
{{range .Files}}- {{.Path}} ({{.Status}})
{{end}}
Diff:
{{.Diff}}

Requirements:
1. Subject line under 72 characters, imperative mood.
2. Base the message on the actual diff content, not assumptions from filenames.
3. Respond with a single JSON object inside a json code fence, no other text:

` + "```json" + `
{
  "commit_title": "<subject line>",
  "explanation": "<1-2 sentence synopsis of what changed and why>",
  "files": ["<path>", "..."]
}
` + "```",

	ChangeAnalysis: `Analyze the following repository changes{{if .IssueKey}} in the context of issue {{.IssueKey}}{{end}}.
{{if .IssueKey}}
Issue {{.IssueKey}}: {{.IssueSummary}}
{{.IssueDescription}}
{{end}}
Files changed:
{{range .Files}}- {{.Path}} ({{.Status}})
{{end}}
Diff:
{{.Diff}}

Requirements:
1. Be accurate and specific about what actually changed.
2. Respond with a single JSON object inside a json code fence, no other text:

` + "```json" + `
{
  "summary": "<what the change does>",
  "impact": "<technical impact of the change>",
  "risks": ["<risk or follow-up>", "..."]
}
` + "```",
}

// registry holds parsed templates, compiled lazily and cached.
type registry struct {
	mu    sync.Mutex
	cache map[PromptID]*template.Template
}

var globalRegistry = &registry{cache: map[PromptID]*template.Template{}} //nolint:gochecknoglobals // package-level template cache

func (r *registry) get(id PromptID) (*template.Template, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if tmpl, ok := r.cache[id]; ok {
		return tmpl, nil
	}

	src, ok := templateSources[id]
	if !ok {
		return nil, fmt.Errorf("unknown prompt id %q", id)
	}

	tmpl, err := template.New(string(id)).Parse(src)
	if err != nil {
		return nil, fmt.Errorf("parsing prompt %s: %w", id, err)
	}

	r.cache[id] = tmpl
	return tmpl, nil
}
