package model

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"palettectl/internal/clipboard"
	"palettectl/internal/color"
	"palettectl/pkg/logging"
)

// AppMode represents the current mode of the application
type AppMode int

const (
	ModeMain AppMode = iota
	ModeLogOverlay
	ModeQuitting
)

// String provides a human-readable representation of the AppMode.
func (m AppMode) String() string {
	switch m {
	case ModeMain:
		return "Main"
	case ModeLogOverlay:
		return "LogOverlay"
	case ModeQuitting:
		return "Quitting"
	default:
		return "Unknown"
	}
}

// MessageType represents the type of status bar message
type MessageType int

const (
	StatusBarInfo MessageType = iota
	StatusBarSuccess
	StatusBarError
	StatusBarWarning
)

// Constants for UI
const (
	// PaletteSize is the number of swatches the UI shows.
	PaletteSize         = color.DefaultPaletteSize
	NoCopiedIndex       = -1
	MaxActivityLogLines = 1000
)

// TickFunc schedules fn after d. tea.Tick in production.
type TickFunc func(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd

// KeyMap defines all the key bindings for the application
type KeyMap struct {
	Regenerate key.Binding
	Left       key.Binding
	Right      key.Binding
	Copy       key.Binding
	CopySlot   key.Binding
	ToggleLog  key.Binding
	ToggleDark key.Binding
	Esc        key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// TUIConfig carries everything NewModel needs from the application layer.
type TUIConfig struct {
	DebugMode        bool
	DarkMode         bool
	MouseEnabled     bool
	FeedbackDuration time.Duration
	Generator        *color.Generator
	Clipboard        clipboard.Writer
	LogChannel       <-chan logging.LogEntry
}

// Model is the whole state of the palette UI.
type Model struct {
	// Terminal dimensions
	Width  int
	Height int

	CurrentAppMode AppMode
	DebugMode      bool
	DarkMode       bool
	MouseEnabled   bool

	// Palette state
	Palette          []color.Color
	CopiedIndex      int
	SelectedIndex    int
	FeedbackDuration time.Duration

	// Capabilities
	Generator *color.Generator
	Clipboard clipboard.Writer
	Tick      TickFunc

	// copySeq identifies the latest copy request; older results are ignored.
	copySeq uint64
	// copiedTimerID identifies the armed clear timer; older ticks are ignored.
	copiedTimerID     uint64
	copiedClearCancel chan struct{}

	// UI State & Output
	ActivityLog          []string
	ActivityLogDirty     bool
	LogViewport          viewport.Model
	Keys                 KeyMap
	Help                 help.Model
	StatusBarMessage     string
	StatusBarMessageType MessageType
	StatusBarClearCancel chan struct{}

	LogChannel <-chan logging.LogEntry
}

// SetStatusMessage shows message in the status bar and clears it after clearAfter,
// unless a newer message replaced it first.
func (m *Model) SetStatusMessage(message string, msgType MessageType, clearAfter time.Duration) tea.Cmd {
	m.StatusBarMessage = message
	m.StatusBarMessageType = msgType

	if m.StatusBarClearCancel != nil {
		close(m.StatusBarClearCancel)
	}

	m.StatusBarClearCancel = make(chan struct{})
	captured := m.StatusBarClearCancel

	return m.tick(clearAfter, func(t time.Time) tea.Msg {
		select {
		case <-captured:
			return nil
		default:
			return ClearStatusBarMsg{}
		}
	})
}

// ClearStatusMessage handles ClearStatusBarMsg.
func (m *Model) ClearStatusMessage() {
	m.StatusBarMessage = ""
	if m.StatusBarClearCancel != nil {
		close(m.StatusBarClearCancel)
		m.StatusBarClearCancel = nil
	}
}

func (m *Model) tick(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd {
	if m.Tick != nil {
		return m.Tick(d, fn)
	}
	return tea.Tick(d, fn)
}
