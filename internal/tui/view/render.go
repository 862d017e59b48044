package view

import (
	"fmt"
	"strings"

	"palettectl/internal/tui/components"
	"palettectl/internal/tui/design"
	"palettectl/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
)

const (
	headerTitle    = "Color"
	headerAccent   = "Palette"
	headerSubtitle = "Generate beautiful color palettes and copy the HEX codes you like."
	instructions   = "Click a color or press 1-4 to copy its HEX code"
)

// Render renders the UI according to the current model state.
func Render(m *model.Model) string {
	switch m.CurrentAppMode {
	case model.ModeQuitting:
		return design.TextSecondaryStyle.Render("Bye!")
	case model.ModeLogOverlay:
		if m.Width == 0 || m.Height == 0 {
			return ""
		}
		return renderLogOverlay(m, m.Width, m.Height)
	default:
		if m.Width == 0 || m.Height == 0 {
			return design.TextSecondaryStyle.Render("Initializing... (waiting for window size)")
		}
		return renderMain(m)
	}
}

func renderMain(m *model.Model) string {
	layout := ComputeLayout(m)

	sections := []string{
		renderHeader(layout.ContentWidth),
		"",
		renderGrid(m, layout),
		"",
		renderGenerateButton(layout.ContentWidth),
		lipgloss.PlaceHorizontal(layout.ContentWidth, lipgloss.Center, design.DimStyle.Render(instructions)),
		renderHelp(m, layout.ContentWidth),
		renderStatusBar(m, layout.ContentWidth),
	}

	return design.AppStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func renderHeader(width int) string {
	return components.NewHeader(headerTitle, headerAccent).
		WithSubtitle(headerSubtitle).
		WithWidth(width).
		Render()
}

// renderGrid lays the cards out in rows of layout.Columns.
func renderGrid(m *model.Model, layout Layout) string {
	gap := strings.Repeat(" ", cardGap)
	indent := lipgloss.NewStyle().PaddingLeft(layout.GridLeft - design.AppStyle.GetPaddingLeft())

	var rows []string
	for start := 0; start < len(m.Palette); start += layout.Columns {
		end := start + layout.Columns
		if end > len(m.Palette) {
			end = len(m.Palette)
		}

		var cards []string
		for i := start; i < end; i++ {
			if i > start {
				cards = append(cards, gap)
			}
			cards = append(cards, components.NewSwatch(m.Palette[i], i).
				WithWidth(layout.CardWidth).
				WithSelected(i == m.SelectedIndex).
				WithCopied(m.IsCopied(i)).
				Render())
		}
		rows = append(rows, indent.Render(lipgloss.JoinHorizontal(lipgloss.Top, cards...)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderGenerateButton(width int) string {
	button := design.GenerateButtonStyle.Render(IconText(IconRefresh, "Generate New Colors"))
	hint := design.DimStyle.Render("  space")
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, button+hint)
}

func renderHelp(m *model.Model, width int) string {
	h := m.Help
	h.Width = width
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, design.HelpStyle.Render(h.View(m.Keys)))
}

func renderStatusBar(m *model.Model, width int) string {
	left := IconText(IconPointer, fmt.Sprintf("Color %d of %d", m.SelectedIndex+1, len(m.Palette)))
	if m.SelectedIndex >= 0 && m.SelectedIndex < len(m.Palette) {
		left += "  " + m.Palette[m.SelectedIndex].Hex()
	}

	right := IconText(IconSun, "light")
	if m.DarkMode {
		right = IconText(IconMoon, "dark")
	}
	if m.DebugMode {
		right = fmt.Sprintf("%dx%d  %s", m.Width, m.Height, right)
	}

	return components.NewStatusBar(width).
		WithLeftText(left).
		WithRightText(right).
		WithMessage(m.StatusBarMessage, m.StatusBarMessageType).
		Render()
}
