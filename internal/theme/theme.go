package theme

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Adaptive color pairs (dark terminal value, light terminal value).
var (
	ColorBlue   = lipgloss.AdaptiveColor{Dark: "#5B9BD5", Light: "#2B6CB0"}
	ColorGreen  = lipgloss.AdaptiveColor{Dark: "#6BCB77", Light: "#2F855A"}
	ColorYellow = lipgloss.AdaptiveColor{Dark: "#FFD93D", Light: "#B7791F"}
	ColorRed    = lipgloss.AdaptiveColor{Dark: "#FF6B6B", Light: "#C53030"}
	ColorGray   = lipgloss.AdaptiveColor{Dark: "#868E96", Light: "#718096"}
)

// Styles holds the console styles bound to one output renderer, so color
// support is detected from the writer the session prints to rather than
// from os.Stdout.
type Styles struct {
	// Header is used for the menu banner and section titles.
	Header lipgloss.Style

	// MenuItem is the style for each numbered operation.
	MenuItem lipgloss.Style

	// Current highlights the project being worked on.
	Current lipgloss.Style

	// Dimmed is used when no project is selected.
	Dimmed lipgloss.Style

	// Success is used for confirmations after a write.
	Success lipgloss.Style

	// Error is used for reported action failures.
	Error lipgloss.Style

	// Warning is used for guidance such as "select a project first".
	Warning lipgloss.Style
}

// New builds the console styles for output w.
func New(w io.Writer) Styles {
	r := lipgloss.NewRenderer(w)

	return Styles{
		Header:   r.NewStyle().Bold(true).Foreground(ColorBlue),
		MenuItem: r.NewStyle(),
		Current:  r.NewStyle().Bold(true).Foreground(ColorGreen),
		Dimmed:   r.NewStyle().Foreground(ColorGray),
		Success:  r.NewStyle().Foreground(ColorGreen),
		Error:    r.NewStyle().Bold(true).Foreground(ColorRed),
		Warning:  r.NewStyle().Foreground(ColorYellow),
	}
}

// DifficultyStyle returns a color-coded style for a 1-5 difficulty.
func (s Styles) DifficultyStyle(difficulty int) lipgloss.Style {
	base := s.MenuItem.Bold(true)

	switch difficulty {
	case 1, 2:
		return base.Foreground(ColorGreen)
	case 3:
		return base.Foreground(ColorYellow)
	case 4, 5:
		return base.Foreground(ColorRed)
	default:
		return base.Foreground(ColorGray)
	}
}
