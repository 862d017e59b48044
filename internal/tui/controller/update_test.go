package controller

import (
	"context"
	"errors"
	"testing"
	"time"

	"palettectl/internal/clipboard"
	"palettectl/internal/color"
	"palettectl/internal/tui/model"
	"palettectl/internal/tui/view"
	"palettectl/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingTicker captures scheduled ticks instead of sleeping.
type recordingTicker struct {
	durations []time.Duration
}

func (r *recordingTicker) Tick(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd {
	r.durations = append(r.durations, d)
	return func() tea.Msg { return fn(time.Now()) }
}

func newTestModel(t *testing.T, writer clipboard.Writer) (*model.Model, *recordingTicker) {
	t.Helper()
	m := model.NewModel(model.TUIConfig{
		Generator:    color.NewGenerator(color.NewSeededSource(42)),
		Clipboard:    writer,
		MouseEnabled: true,
	})
	ticker := &recordingTicker{}
	m.Tick = ticker.Tick
	m.Width = 120
	m.Height = 50
	return m, ticker
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// copyVia sends msg and feeds the produced clipboard result back into Update.
func copyVia(t *testing.T, m *model.Model, msg tea.Msg) tea.Cmd {
	t.Helper()
	m, cmd := Update(msg, m)
	require.NotNil(t, cmd)
	result, ok := cmd().(model.CopyResultMsg)
	require.True(t, ok)
	_, next := Update(result, m)
	return next
}

func TestCopySlotKey(t *testing.T) {
	mem := clipboard.NewMemory()
	m, ticker := newTestModel(t, mem)

	copyVia(t, m, runeKey('3'))

	assert.Equal(t, m.Palette[2].Hex(), mem.Text())
	assert.Equal(t, 2, m.CopiedIndex)
	assert.Equal(t, 2, m.SelectedIndex)
	assert.Contains(t, m.StatusBarMessage, "Copied "+m.Palette[2].Hex())
	assert.Equal(t, model.StatusBarSuccess, m.StatusBarMessageType)
	assert.Contains(t, ticker.durations, 2000*time.Millisecond)
}

func TestCopySelectedKey(t *testing.T) {
	mem := clipboard.NewMemory()
	m, _ := newTestModel(t, mem)

	Update(tea.KeyMsg{Type: tea.KeyRight}, m)
	Update(tea.KeyMsg{Type: tea.KeyRight}, m)
	Update(tea.KeyMsg{Type: tea.KeyLeft}, m)
	require.Equal(t, 1, m.SelectedIndex)

	copyVia(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, m.Palette[1].Hex(), mem.Text())
	assert.Equal(t, 1, m.CopiedIndex)
}

func TestCopyFailureOnlyLogs(t *testing.T) {
	failing := clipboard.Func(func(context.Context, string) error { return clipboard.ErrUnsupported })
	m, _ := newTestModel(t, failing)

	next := copyVia(t, m, runeKey('1'))

	assert.Nil(t, next)
	assert.Equal(t, model.NoCopiedIndex, m.CopiedIndex)
	assert.Empty(t, m.StatusBarMessage)
}

func TestStaleCopyResultIgnored(t *testing.T) {
	mem := clipboard.NewMemory()
	m, _ := newTestModel(t, mem)

	_, first := Update(runeKey('1'), m)
	_, second := Update(runeKey('2'), m)

	Update(second(), m)
	Update(first(), m)

	assert.Equal(t, 1, m.CopiedIndex)
	assert.Contains(t, m.StatusBarMessage, m.Palette[1].Hex())
}

func TestRegenerateKeys(t *testing.T) {
	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeySpace, Runes: []rune{' '}},
		runeKey('g'),
		runeKey('r'),
	} {
		t.Run(msg.String(), func(t *testing.T) {
			m, _ := newTestModel(t, clipboard.NewMemory())
			m.CopiedIndex = 1
			before := append([]color.Color(nil), m.Palette...)

			_, cmd := Update(msg, m)
			assert.Nil(t, cmd)
			assert.Len(t, m.Palette, model.PaletteSize)
			assert.NotEqual(t, before, m.Palette)
			assert.Equal(t, model.NoCopiedIndex, m.CopiedIndex)
		})
	}
}

func TestCopiedTimeoutClearsMark(t *testing.T) {
	m, _ := newTestModel(t, clipboard.NewMemory())

	timerBatch := copyVia(t, m, runeKey('4'))
	require.Equal(t, 3, m.CopiedIndex)

	batch, ok := timerBatch().(tea.BatchMsg)
	require.True(t, ok)
	for _, c := range batch {
		if c == nil {
			continue
		}
		if timeout, ok := c().(model.CopiedTimeoutMsg); ok {
			Update(timeout, m)
		}
	}
	assert.Equal(t, model.NoCopiedIndex, m.CopiedIndex)
}

func TestMouseClickCopiesCard(t *testing.T) {
	mem := clipboard.NewMemory()
	m, _ := newTestModel(t, mem)
	layout := view.ComputeLayout(m)

	click := tea.MouseMsg{
		X:      layout.GridLeft + layout.CardWidth + 2,
		Y:      layout.GridTop + 2,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	}
	copyVia(t, m, click)

	assert.Equal(t, m.Palette[1].Hex(), mem.Text())
	assert.Equal(t, 1, m.CopiedIndex)
}

func TestMouseIgnoredCases(t *testing.T) {
	m, _ := newTestModel(t, clipboard.NewMemory())
	layout := view.ComputeLayout(m)
	onCard := tea.MouseMsg{X: layout.GridLeft + 1, Y: layout.GridTop + 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}

	tests := []struct {
		name  string
		msg   tea.MouseMsg
		mouse bool
	}{
		{"outside grid", tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, true},
		{"release", tea.MouseMsg{X: onCard.X, Y: onCard.Y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}, true},
		{"right button", tea.MouseMsg{X: onCard.X, Y: onCard.Y, Action: tea.MouseActionPress, Button: tea.MouseButtonRight}, true},
		{"mouse disabled", onCard, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m.MouseEnabled = tt.mouse
			_, cmd := Update(tt.msg, m)
			assert.Nil(t, cmd)
		})
	}
}

func TestMouseClickGenerateButton(t *testing.T) {
	m, _ := newTestModel(t, clipboard.NewMemory())
	before := append([]color.Color(nil), m.Palette...)
	layout := view.ComputeLayout(m)

	Update(tea.MouseMsg{X: m.Width / 2, Y: layout.GenerateTop, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, m)
	assert.NotEqual(t, before, m.Palette)
}

func TestQuitKeys(t *testing.T) {
	for _, msg := range []tea.KeyMsg{runeKey('q'), {Type: tea.KeyCtrlC}} {
		m, _ := newTestModel(t, clipboard.NewMemory())
		_, cmd := Update(msg, m)
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
		assert.Equal(t, model.ModeQuitting, m.CurrentAppMode)
	}
}

func TestLogOverlay(t *testing.T) {
	mem := clipboard.NewMemory()
	m, _ := newTestModel(t, mem)
	model.AddRawLineToActivityLog(m, "line one")

	Update(runeKey('L'), m)
	assert.Equal(t, model.ModeLogOverlay, m.CurrentAppMode)

	// palette keys do nothing while the overlay is open
	_, cmd := Update(runeKey('1'), m)
	assert.Nil(t, cmd)
	assert.Empty(t, mem.Text())

	Update(runeKey('y'), m)
	assert.Equal(t, "line one", mem.Text())
	assert.Equal(t, "Logs copied to clipboard", m.StatusBarMessage)

	Update(tea.KeyMsg{Type: tea.KeyEscape}, m)
	assert.Equal(t, model.ModeMain, m.CurrentAppMode)
}

func TestHelpAndDarkToggle(t *testing.T) {
	m, _ := newTestModel(t, clipboard.NewMemory())

	Update(runeKey('?'), m)
	assert.True(t, m.Help.ShowAll)
	Update(runeKey('?'), m)
	assert.False(t, m.Help.ShowAll)

	dark := m.DarkMode
	Update(runeKey('D'), m)
	assert.Equal(t, !dark, m.DarkMode)
}

func TestWindowSizeAndLogEntries(t *testing.T) {
	ch := make(chan logging.LogEntry, 1)
	m, _ := newTestModel(t, clipboard.NewMemory())
	m.LogChannel = ch

	Update(tea.WindowSizeMsg{Width: 90, Height: 30}, m)
	assert.Equal(t, 90, m.Width)
	assert.Equal(t, 30, m.Height)

	_, cmd := Update(model.NewLogEntryMsg{Entry: logging.LogEntry{
		Level:     logging.LevelError,
		Subsystem: "Palette",
		Message:   "copy failed",
		Err:       errors.New("boom"),
	}}, m)
	require.Len(t, m.ActivityLog, 1)
	assert.Contains(t, m.ActivityLog[0], "copy failed")
	assert.NotNil(t, cmd, "keeps listening for log entries")
}

func TestAppModelView(t *testing.T) {
	m, _ := newTestModel(t, clipboard.NewMemory())
	app := NewAppModel(m)

	updated, _ := app.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	out := updated.View()
	assert.Contains(t, out, m.Palette[0].Hex())
	assert.Same(t, m, updated.(AppModel).Model())
}
