package render

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles holds the lipgloss styles used by the text renderer.
type Styles struct {
	Addition lipgloss.Style
	Deletion lipgloss.Style
	Hunk     lipgloss.Style
	Header   lipgloss.Style
	Label    lipgloss.Style
	Dim      lipgloss.Style
}

// NewStyles creates the diff and table styles using AdaptiveColor for
// light/dark terminal support.
func NewStyles() *Styles {
	return &Styles{
		Addition: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "42"}),
		Deletion: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "124", Dark: "203"}),
		Hunk: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "31", Dark: "45"}),
		Header: lipgloss.NewStyle().
			Bold(true),
		Label: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "94", Dark: "179"}),
		Dim: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "245", Dark: "240"}),
	}
}

// CheckNoColor respects the NO_COLOR environment variable.
// Call this at the start of commands that output styled text.
func CheckNoColor() {
	if !HasColorSupport() {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// HasColorSupport returns true if the terminal supports colors.
// Returns false if NO_COLOR is set (any value including empty string) or
// TERM=dumb, following the NO_COLOR standard: https://no-color.org/
func HasColorSupport() bool {
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return true
}
