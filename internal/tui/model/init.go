package model

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"palettectl/internal/clipboard"
	"palettectl/internal/color"
	"palettectl/internal/config"
)

// NewModel builds the initial model and draws the first palette.
func NewModel(cfg TUIConfig) *Model {
	gen := cfg.Generator
	if gen == nil {
		gen = color.NewGenerator(nil)
	}
	writer := cfg.Clipboard
	if writer == nil {
		writer = clipboard.NewSystem()
	}
	feedback := cfg.FeedbackDuration
	if feedback <= 0 {
		feedback = config.DefaultFeedbackDuration
	}

	m := &Model{
		CurrentAppMode:   ModeMain,
		DebugMode:        cfg.DebugMode,
		DarkMode:         cfg.DarkMode,
		MouseEnabled:     cfg.MouseEnabled,
		CopiedIndex:      NoCopiedIndex,
		FeedbackDuration: feedback,
		Generator:        gen,
		Clipboard:        writer,
		Keys:             DefaultKeyMap(),
		Help:             help.New(),
		LogViewport:      viewport.New(0, 0),
		LogChannel:       cfg.LogChannel,
	}
	m.Palette = gen.Palette(PaletteSize)
	return m
}

// Init returns the command the UI starts with: draining the log channel.
func (m *Model) Init() tea.Cmd {
	return ListenForLogEntriesCmd(m.LogChannel)
}
