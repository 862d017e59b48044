package controller

import (
	"palettectl/internal/tui/model"
	"palettectl/internal/tui/view"

	tea "github.com/charmbracelet/bubbletea"
)

// handleMouseMsg copies the card under a left click, regenerates on a click
// on the generate button row, and scrolls the log overlay.
func handleMouseMsg(m *model.Model, msg tea.MouseMsg) (*model.Model, tea.Cmd) {
	if m.CurrentAppMode == model.ModeLogOverlay {
		var cmd tea.Cmd
		m.LogViewport, cmd = m.LogViewport.Update(msg)
		return m, cmd
	}

	if !m.MouseEnabled || m.CurrentAppMode != model.ModeMain {
		return m, nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	layout := view.ComputeLayout(m)
	if msg.Y == layout.GenerateTop {
		m.Regenerate()
		return m, nil
	}

	index := layout.CardAt(msg.X, msg.Y, len(m.Palette))
	if index < 0 {
		return m, nil
	}
	LogDebug(m, controllerSubsystem, "Click at (%d,%d) on color %d", msg.X, msg.Y, index+1)
	m.SelectedIndex = index
	return m, m.RequestCopy(index)
}
