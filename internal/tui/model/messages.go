package model

import (
	"palettectl/pkg/logging"
)

// CopyResultMsg reports the outcome of a clipboard write for palette slot Index.
type CopyResultMsg struct {
	Index int
	Hex   string
	Seq   uint64
	Err   error
}

// CopiedTimeoutMsg fires when the "Copied!" mark of timer TimerID expires.
type CopiedTimeoutMsg struct {
	TimerID uint64
}

// ClearStatusBarMsg clears the status bar message.
type ClearStatusBarMsg struct{}

// NewLogEntryMsg carries a log entry from pkg/logging into the TUI.
type NewLogEntryMsg struct {
	Entry logging.LogEntry
}
