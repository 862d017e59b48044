package controller

import (
	"palettectl/internal/tui/model"

	tea "github.com/charmbracelet/bubbletea"
)

// NewProgram creates the Bubble Tea program for the palette UI.
// Extra options, such as tea.WithContext, are appended to the defaults.
func NewProgram(cfg model.TUIConfig, extra ...tea.ProgramOption) *tea.Program {
	m := model.NewModel(cfg)

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if m.MouseEnabled {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	opts = append(opts, extra...)
	return tea.NewProgram(NewAppModel(m), opts...)
}
