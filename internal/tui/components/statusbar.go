package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pablasso/statsview/internal/tui/styles"
)

// StatusBar renders the bottom line: chart values on the left, a state hint
// right-aligned.
type StatusBar struct {
	Hint string
}

// NewStatusBar creates a StatusBar with a right-aligned hint.
func NewStatusBar(hint string) StatusBar {
	return StatusBar{Hint: hint}
}

// Render joins items with " • " and pads between them and the hint so the
// bar fills width. The hint is dropped when it does not fit.
func (s StatusBar) Render(width int, items []string) string {
	left := strings.Join(items, " • ")
	if s.Hint == "" {
		return styles.StatusBarStyle.Width(width).Render(left)
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(s.Hint)
	if gap < 1 {
		return styles.StatusBarStyle.Width(width).Render(left)
	}

	return styles.StatusBarStyle.Width(width).Render(left + strings.Repeat(" ", gap) + s.Hint)
}
