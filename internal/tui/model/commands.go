package model

import (
	tea "github.com/charmbracelet/bubbletea"

	"palettectl/pkg/logging"
)

// ListenForLogEntriesCmd waits for the next log entry. It returns nil once the channel is closed.
func ListenForLogEntriesCmd(ch <-chan logging.LogEntry) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		entry, ok := <-ch
		if !ok {
			return nil
		}
		return NewLogEntryMsg{Entry: entry}
	}
}
