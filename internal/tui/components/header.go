package components

import (
	"palettectl/internal/tui/design"

	"github.com/charmbracelet/lipgloss"
)

// maxSubtitleWidth keeps the tagline readable on wide terminals.
const maxSubtitleWidth = 64

// Header represents the application header
type Header struct {
	Title    string
	Accent   string
	Subtitle string
	Width    int
}

// NewHeader creates a new header. Accent is rendered right after title in the accent color.
func NewHeader(title, accent string) *Header {
	return &Header{
		Title:  title,
		Accent: accent,
		Width:  80,
	}
}

// WithSubtitle adds a subtitle
func (h *Header) WithSubtitle(subtitle string) *Header {
	h.Subtitle = subtitle
	return h
}

// WithWidth sets the header width
func (h *Header) WithWidth(width int) *Header {
	h.Width = width
	return h
}

// Render returns the styled header, centered in Width.
func (h *Header) Render() string {
	width := h.Width
	if width < 1 {
		width = 1
	}

	title := design.TitleStyle.Render(h.Title) + design.TitleAccentStyle.Render(h.Accent)
	lines := []string{lipgloss.PlaceHorizontal(width, lipgloss.Center, title)}

	if h.Subtitle != "" {
		subWidth := width
		if subWidth > maxSubtitleWidth {
			subWidth = maxSubtitleWidth
		}
		sub := design.SubtitleStyle.Width(subWidth).Align(lipgloss.Center).Render(h.Subtitle)
		lines = append(lines, lipgloss.PlaceHorizontal(width, lipgloss.Center, sub))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
