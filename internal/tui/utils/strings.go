package utils

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// TruncateString truncates s to at most width terminal cells, appending an
// ellipsis when anything was cut. Styled strings are measured by their visible width.
func TruncateString(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	if width == 1 {
		return runewidth.Truncate(s, width, "")
	}
	return runewidth.Truncate(s, width, "…")
}

// PadBetween joins left and right with enough spaces to fill width.
// When they do not fit, left is truncated and right is dropped.
func PadBetween(left, right string, width int) string {
	leftWidth := lipgloss.Width(left)
	rightWidth := lipgloss.Width(right)
	padding := width - leftWidth - rightWidth
	if padding < 1 {
		return TruncateString(left, width)
	}
	return left + runewidth.FillRight("", padding) + right
}
