package view

import (
	"strings"

	"palettectl/internal/tui/design"
	"palettectl/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
)

const logOverlayTitle = " Activity Log  (↑/↓ scroll  •  y copy  •  Esc close)"

// renderLogOverlay draws the activity log full screen, refreshing the
// viewport content when new lines arrived or the size changed.
func renderLogOverlay(m *model.Model, width, height int) string {
	titleView := design.LogPanelTitleStyle.Render(SafeIcon(IconScroll) + logOverlayTitle)

	frameW := design.LogOverlayStyle.GetHorizontalFrameSize()
	frameH := design.LogOverlayStyle.GetVerticalFrameSize()

	vpWidth := width - frameW
	vpHeight := height - frameH - lipgloss.Height(titleView)
	if vpWidth < 0 {
		vpWidth = 0
	}
	if vpHeight < 0 {
		vpHeight = 0
	}

	sizeChanged := m.LogViewport.Width != vpWidth || m.LogViewport.Height != vpHeight
	m.LogViewport.Width = vpWidth
	m.LogViewport.Height = vpHeight
	if m.ActivityLogDirty || sizeChanged {
		m.LogViewport.SetContent(PrepareLogContent(m.ActivityLog, vpWidth))
		if m.ActivityLogDirty {
			m.LogViewport.GotoBottom()
		}
		m.ActivityLogDirty = false
	}

	content := lipgloss.JoinVertical(lipgloss.Left, titleView, m.LogViewport.View())
	return design.LogOverlayStyle.
		Width(width - design.LogOverlayStyle.GetHorizontalBorderSize()).
		Height(height - design.LogOverlayStyle.GetVerticalBorderSize()).
		Render(content)
}

// PrepareLogContent applies color styles based on log level keywords.
// Overflow is left to the viewport.
func PrepareLogContent(lines []string, maxWidth int) string {
	if len(lines) == 0 {
		return design.DimStyle.Render("No activity yet.")
	}
	out := make([]string, len(lines))
	for i, rawLine := range lines {
		out[i] = styleLogLine(rawLine)
	}
	return strings.Join(out, "\n")
}

func styleLogLine(l string) string {
	switch {
	case strings.Contains(l, "[ERROR]"):
		return design.LogErrorStyle.Render(l)
	case strings.Contains(l, "[WARN]"):
		return design.LogWarnStyle.Render(l)
	case strings.Contains(l, "[DEBUG]"):
		return design.LogDebugStyle.Render(l)
	default:
		return l
	}
}
