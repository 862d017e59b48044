package controller

import (
	"fmt"
	"time"

	"palettectl/internal/tui/model"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	controllerDispatchSubsystem = "ControllerDispatch"

	statusMessageDuration = 3 * time.Second
)

// Update is the central message routing function for the palette UI.
// All model transitions happen here, on the Bubble Tea event loop.
func Update(msg tea.Msg, m *model.Model) (*model.Model, tea.Cmd) {
	switch msg.(type) {
	case tea.MouseMsg, model.NewLogEntryMsg, model.CopiedTimeoutMsg:
		// too frequent or self-referential to log
	default:
		LogDebug(m, controllerDispatchSubsystem, "Received msg: %T", msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return handleKeyMsg(m, msg)

	case tea.MouseMsg:
		return handleMouseMsg(m, msg)

	case tea.WindowSizeMsg:
		return handleWindowSizeMsg(m, msg)

	case model.CopyResultMsg:
		return handleCopyResult(m, msg)

	case model.CopiedTimeoutMsg:
		m.ApplyCopiedTimeout(msg)
		return m, nil

	case model.ClearStatusBarMsg:
		m.ClearStatusMessage()
		return m, nil

	case model.NewLogEntryMsg:
		model.AddRawLineToActivityLog(m, msg.Entry.Format())
		return m, model.ListenForLogEntriesCmd(m.LogChannel)
	}

	if m.CurrentAppMode == model.ModeLogOverlay {
		var cmd tea.Cmd
		m.LogViewport, cmd = m.LogViewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleCopyResult applies a clipboard result. Failures are only logged by
// the model: the missing "Copied!" mark is the sole visible effect.
func handleCopyResult(m *model.Model, msg model.CopyResultMsg) (*model.Model, tea.Cmd) {
	timerCmd := m.ApplyCopyResult(msg)
	if timerCmd == nil {
		return m, nil
	}
	statusCmd := m.SetStatusMessage(fmt.Sprintf("Copied %s to clipboard", msg.Hex), model.StatusBarSuccess, m.FeedbackDuration)
	return m, tea.Batch(timerCmd, statusCmd)
}
