package view

import (
	"strings"
	"testing"

	"palettectl/internal/clipboard"
	"palettectl/internal/color"
	"palettectl/internal/tui/components"
	"palettectl/internal/tui/design"
	"palettectl/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViewModel(width, height int) *model.Model {
	m := model.NewModel(model.TUIConfig{
		Generator: color.NewGenerator(color.NewSeededSource(7)),
		Clipboard: clipboard.NewMemory(),
	})
	m.Width = width
	m.Height = height
	return m
}

func TestComputeLayoutColumns(t *testing.T) {
	frame := design.AppStyle.GetHorizontalFrameSize()
	fourCols := 4*components.MinSwatchWidth + 3*cardGap + frame
	twoCols := 2*components.MinSwatchWidth + cardGap + frame

	tests := []struct {
		name  string
		width int
		want  int
	}{
		{"wide terminal", 160, 4},
		{"exactly four", fourCols, 4},
		{"one short of four", fourCols - 1, 2},
		{"exactly two", twoCols, 2},
		{"narrow terminal", twoCols - 1, 1},
		{"tiny terminal", 10, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := ComputeLayout(newViewModel(tt.width, 40))
			assert.Equal(t, tt.want, l.Columns)
			assert.LessOrEqual(t, l.CardWidth, maxCardWidth)
		})
	}
}

func TestLayoutCardAt(t *testing.T) {
	l := Layout{Columns: 2, CardWidth: 20, GridLeft: 2, GridTop: 5}

	tests := []struct {
		name string
		x, y int
		want int
	}{
		{"first card top left", 2, 5, 0},
		{"first card bottom right", 21, 5 + components.SwatchHeight - 1, 0},
		{"gap between cards", 22, 6, -1},
		{"second card", 23, 6, 1},
		{"second row", 3, 5 + components.SwatchHeight, 2},
		{"fourth card", 30, 5 + components.SwatchHeight + 2, 3},
		{"above grid", 3, 4, -1},
		{"left of grid", 1, 6, -1},
		{"right of grid", 43, 6, -1},
		{"below last row", 3, 5 + 2*components.SwatchHeight, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, l.CardAt(tt.x, tt.y, 4))
		})
	}
}

// The hit-test must agree with where Render actually draws the hex codes.
func TestCardAtMatchesRender(t *testing.T) {
	for _, width := range []int{120, 60, 30} {
		m := newViewModel(width, 60)
		out := Render(m)
		l := ComputeLayout(m)
		lines := strings.Split(out, "\n")

		for i, c := range m.Palette {
			found := false
			for y, line := range lines {
				plain := stripANSI(line)
				x := strings.Index(plain, c.Hex())
				if x < 0 {
					continue
				}
				found = true
				col := lipgloss.Width(plain[:x])
				assert.Equal(t, i, l.CardAt(col, y, len(m.Palette)), "width %d color %d", width, i)
				break
			}
			require.True(t, found, "width %d: hex %s not rendered", width, c.Hex())
		}
	}
}

func TestRenderMain(t *testing.T) {
	m := newViewModel(120, 50)
	out := Render(m)

	assert.Contains(t, out, "Color")
	assert.Contains(t, out, "Palette")
	assert.Contains(t, out, instructions)
	assert.Contains(t, out, "Generate New Colors")
	for _, c := range m.Palette {
		assert.Contains(t, out, c.Hex())
		assert.Contains(t, out, c.RGBString())
	}
	assert.NotContains(t, out, "Copied!")
}

func TestRenderCopiedFeedback(t *testing.T) {
	m := newViewModel(120, 50)
	m.CopiedIndex = 2

	out := Render(m)
	assert.Equal(t, 2, strings.Count(out, "Copied!"), "overlay and button of one card")
}

func TestRenderStatusMessage(t *testing.T) {
	m := newViewModel(120, 50)
	m.StatusBarMessage = "Copied #123456 to clipboard"
	m.StatusBarMessageType = model.StatusBarSuccess

	assert.Contains(t, Render(m), "Copied #123456 to clipboard")
}

func TestRenderModes(t *testing.T) {
	m := newViewModel(0, 0)
	assert.Contains(t, Render(m), "Initializing")

	m.CurrentAppMode = model.ModeQuitting
	assert.Contains(t, Render(m), "Bye!")
}

func TestRenderLogOverlay(t *testing.T) {
	m := newViewModel(80, 20)
	m.CurrentAppMode = model.ModeLogOverlay
	model.AddRawLineToActivityLog(m, "12:00:00.000 [ERROR] [Palette] copy failed")

	out := Render(m)
	assert.Contains(t, out, "Activity Log")
	assert.Contains(t, out, "copy failed")
	assert.False(t, m.ActivityLogDirty)
	assert.Equal(t, 80, lipgloss.Width(out))
	assert.Equal(t, 20, lipgloss.Height(out))
}

func TestPrepareLogContent(t *testing.T) {
	assert.Contains(t, PrepareLogContent(nil, 40), "No activity yet.")

	out := PrepareLogContent([]string{"a [INFO] one", "b [WARN] two"}, 40)
	assert.Contains(t, out, "one")
	assert.Contains(t, out, "two")
	assert.Equal(t, 2, lipgloss.Height(out))
}

func TestSafeIcon(t *testing.T) {
	assert.Equal(t, IconCheck+" ", SafeIcon(IconCheck))
	assert.Equal(t, IconScroll+"  ", SafeIcon(IconScroll))
}

// stripANSI removes SGR escape sequences.
func stripANSI(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEscape = true
		case inEscape:
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEscape = false
			}
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func TestLayoutGenerateTop(t *testing.T) {
	m := newViewModel(120, 50)
	out := Render(m)
	l := ComputeLayout(m)

	lines := strings.Split(out, "\n")
	require.Greater(t, len(lines), l.GenerateTop)
	assert.Contains(t, lines[l.GenerateTop], "Generate New Colors")
}
