package model

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"palettectl/pkg/logging"
)

const paletteSubsystem = "Palette"

// Regenerate replaces the whole palette with freshly drawn colors. Any
// "Copied!" mark is cleared and in-flight copies of the old palette are
// ignored when they complete.
func (m *Model) Regenerate() {
	m.Palette = m.Generator.Palette(PaletteSize)
	m.cancelCopiedClear()
	m.CopiedIndex = NoCopiedIndex
	m.copySeq++
	logging.Debug(paletteSubsystem, "Generated palette %v", m.Palette)
}

// RequestCopy starts copying the hex code of slot index to the clipboard.
// It returns nil for an index outside the palette. Only the most recent
// request can mark a slot as copied.
func (m *Model) RequestCopy(index int) tea.Cmd {
	if index < 0 || index >= len(m.Palette) {
		return nil
	}
	m.copySeq++
	seq := m.copySeq
	hex := m.Palette[index].Hex()
	writer := m.Clipboard

	return func() tea.Msg {
		err := writer.WriteText(context.Background(), hex)
		return CopyResultMsg{Index: index, Hex: hex, Seq: seq, Err: err}
	}
}

// ApplyCopyResult handles CopyResultMsg. A successful, current result marks
// the slot and re-arms the clear timer; failures are only logged.
func (m *Model) ApplyCopyResult(msg CopyResultMsg) tea.Cmd {
	if !m.IsLatestCopy(msg.Seq) {
		logging.Debug(paletteSubsystem, "Ignoring superseded copy of %s", msg.Hex)
		return nil
	}
	if msg.Err != nil {
		logging.Error(paletteSubsystem, msg.Err, "Failed to copy color %s", msg.Hex)
		return nil
	}
	if msg.Index < 0 || msg.Index >= len(m.Palette) {
		return nil
	}

	m.CopiedIndex = msg.Index
	logging.Info(paletteSubsystem, "Copied %s to clipboard", msg.Hex)
	return m.armCopiedClear()
}

// IsLatestCopy reports whether seq belongs to the most recent copy request.
func (m *Model) IsLatestCopy(seq uint64) bool {
	return seq == m.copySeq
}

// ApplyCopiedTimeout handles CopiedTimeoutMsg. Ticks from superseded timers are ignored.
func (m *Model) ApplyCopiedTimeout(msg CopiedTimeoutMsg) {
	if msg.TimerID != m.copiedTimerID || m.copiedClearCancel == nil {
		return
	}
	m.cancelCopiedClear()
	m.CopiedIndex = NoCopiedIndex
}

// IsCopied reports whether slot index currently shows "Copied!".
func (m *Model) IsCopied(index int) bool {
	return m.CopiedIndex != NoCopiedIndex && m.CopiedIndex == index
}

// SelectNext moves the selection by delta, wrapping around the palette.
func (m *Model) SelectNext(delta int) {
	n := len(m.Palette)
	if n == 0 {
		return
	}
	m.SelectedIndex = ((m.SelectedIndex+delta)%n + n) % n
}

// armCopiedClear cancels any pending clear and schedules a new one.
func (m *Model) armCopiedClear() tea.Cmd {
	m.cancelCopiedClear()

	m.copiedTimerID++
	id := m.copiedTimerID
	m.copiedClearCancel = make(chan struct{})
	captured := m.copiedClearCancel

	return m.tick(m.FeedbackDuration, func(time.Time) tea.Msg {
		select {
		case <-captured:
			return nil
		default:
			return CopiedTimeoutMsg{TimerID: id}
		}
	})
}

func (m *Model) cancelCopiedClear() {
	if m.copiedClearCancel != nil {
		close(m.copiedClearCancel)
		m.copiedClearCancel = nil
	}
}
