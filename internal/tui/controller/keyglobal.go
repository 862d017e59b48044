package controller

import (
	"context"
	"strconv"
	"strings"

	"palettectl/internal/tui/design"
	"palettectl/internal/tui/model"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// handleKeyMsg processes key presses for the current mode.
func handleKeyMsg(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	if keyMsg.String() == "ctrl+c" {
		m.CurrentAppMode = model.ModeQuitting
		return m, tea.Quit
	}

	if m.CurrentAppMode == model.ModeLogOverlay {
		return handleKeyMsgLogOverlay(m, keyMsg)
	}

	switch {
	case key.Matches(keyMsg, m.Keys.Quit):
		m.CurrentAppMode = model.ModeQuitting
		return m, tea.Quit

	case key.Matches(keyMsg, m.Keys.Regenerate):
		m.Regenerate()
		return m, nil

	case key.Matches(keyMsg, m.Keys.CopySlot):
		slot, err := strconv.Atoi(keyMsg.String())
		if err != nil {
			return m, nil
		}
		m.SelectedIndex = slot - 1
		return m, m.RequestCopy(slot - 1)

	case key.Matches(keyMsg, m.Keys.Copy):
		return m, m.RequestCopy(m.SelectedIndex)

	case key.Matches(keyMsg, m.Keys.Left):
		m.SelectNext(-1)
		return m, nil

	case key.Matches(keyMsg, m.Keys.Right):
		m.SelectNext(1)
		return m, nil

	case key.Matches(keyMsg, m.Keys.Help):
		m.Help.ShowAll = !m.Help.ShowAll
		return m, nil

	case key.Matches(keyMsg, m.Keys.ToggleLog):
		m.CurrentAppMode = model.ModeLogOverlay
		m.ActivityLogDirty = true
		return m, nil

	case key.Matches(keyMsg, m.Keys.ToggleDark):
		m.DarkMode = !m.DarkMode
		design.Initialize(m.DarkMode)
		return m, nil
	}

	return m, nil
}

func handleKeyMsgLogOverlay(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, m.Keys.ToggleLog), key.Matches(keyMsg, m.Keys.Esc):
		m.CurrentAppMode = model.ModeMain
		return m, nil
	case keyMsg.String() == "y":
		if err := m.Clipboard.WriteText(context.Background(), strings.Join(m.ActivityLog, "\n")); err != nil {
			LogError(controllerSubsystem, err, "Failed to copy logs")
			return m, m.SetStatusMessage("Copy logs failed", model.StatusBarError, statusMessageDuration)
		}
		return m, m.SetStatusMessage("Logs copied to clipboard", model.StatusBarSuccess, statusMessageDuration)
	case key.Matches(keyMsg, m.Keys.Quit):
		m.CurrentAppMode = model.ModeQuitting
		return m, tea.Quit
	default:
		var vpCmd tea.Cmd
		m.LogViewport, vpCmd = m.LogViewport.Update(keyMsg)
		return m, vpCmd
	}
}
