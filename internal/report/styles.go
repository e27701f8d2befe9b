package report

import "github.com/charmbracelet/lipgloss"

// Colors
var (
	colorDanger  = lipgloss.Color("#F56565")
	colorWarning = lipgloss.Color("#F5A623")
	colorMuted   = lipgloss.Color("#6B7280")
)

// styles holds the diagnostic label styles for one output stream
type styles struct {
	errorLabel lipgloss.Style
	warnLabel  lipgloss.Style
	message    lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		errorLabel: r.NewStyle().
			Foreground(colorDanger).
			Bold(true),
		warnLabel: r.NewStyle().
			Foreground(colorWarning).
			Bold(true),
		message: r.NewStyle().
			Foreground(colorMuted),
	}
}
