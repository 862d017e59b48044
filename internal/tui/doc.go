// Package tui provides the terminal user interface for palettectl.
//
// The UI shows four random colors as swatch cards and copies a color's hex
// code to the system clipboard when the card is clicked or its number key
// is pressed. A "Copied!" mark appears on the card and clears itself after
// the configured feedback duration.
//
// # Architecture
//
// The TUI follows a Model-View-Controller (MVC) pattern on top of Bubble Tea:
//
//   - Model (internal/tui/model/): palette, copied index, selection and the
//     cancellable timers. All transitions are methods on *model.Model.
//   - View (internal/tui/view/): renders the header, the swatch grid, the help
//     line and the status bar. Layout computes the responsive grid (4, 2 or 1
//     columns) and is shared with mouse hit-testing.
//   - Controller (internal/tui/controller/): turns key, mouse and result
//     messages into model transitions.
//
// Components (internal/tui/components/) and the design system
// (internal/tui/design/) hold the reusable, styled building blocks.
//
// # Message Flow
//
//  1. A key press or click becomes a copy request; the model returns a
//     command that writes to the clipboard off the event loop.
//  2. The result comes back as model.CopyResultMsg. Only the latest request
//     may mark a card, older results are dropped.
//  3. A successful copy arms a timer that sends model.CopiedTimeoutMsg.
//  4. Log entries from pkg/logging arrive as model.NewLogEntryMsg and fill
//     the activity log overlay.
//
// # Keyboard Navigation
//
//   - space/g/r: generate new colors
//   - 1-4: copy color n
//   - ←/→ or h/l: move the selection, enter/c/y copies it
//   - ?: toggle full help
//   - L: activity log overlay (y copies the log, Esc closes)
//   - D: toggle dark/light styles
//   - q/Ctrl+C: quit
//
// # Usage Example
//
//	p := controller.NewProgram(model.TUIConfig{
//	    FeedbackDuration: 2 * time.Second,
//	    MouseEnabled:     true,
//	    LogChannel:       logChannel,
//	})
//	if _, err := p.Run(); err != nil {
//	    return err
//	}
package tui
