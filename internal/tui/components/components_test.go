package components

import (
	"strings"
	"testing"

	"palettectl/internal/color"
	"palettectl/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestSwatchRender(t *testing.T) {
	c := color.RGB(255, 0, 0)

	tests := []struct {
		name       string
		copied     bool
		wantText   []string
		absentText []string
	}{
		{
			name:       "idle card",
			wantText:   []string{"#FF0000", "RGB(255, 0, 0)", "HSL(0, 100%, 50%)", "Copy HEX", "1"},
			absentText: []string{"Copied!"},
		},
		{
			name:     "copied card",
			copied:   true,
			wantText: []string{"#FF0000", "Copied!"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := NewSwatch(c, 0).WithWidth(30).WithCopied(tt.copied).Render()
			for _, want := range tt.wantText {
				assert.Contains(t, out, want)
			}
			for _, absent := range tt.absentText {
				assert.NotContains(t, out, absent)
			}
		})
	}
}

func TestSwatchDimensions(t *testing.T) {
	for _, width := range []int{MinSwatchWidth, 30, 48} {
		out := NewSwatch(color.RGB(10, 20, 30), 2).WithWidth(width).WithSelected(true).Render()
		assert.Equal(t, width, lipgloss.Width(out), "width %d", width)
		assert.Equal(t, SwatchHeight, lipgloss.Height(out), "width %d", width)
	}
}

func TestSwatchButtonLabel(t *testing.T) {
	s := NewSwatch(color.RGB(0, 0, 0), 0)
	assert.True(t, strings.HasSuffix(s.ButtonLabel(), "Copy HEX"))
	s.WithCopied(true)
	assert.True(t, strings.HasSuffix(s.ButtonLabel(), "Copied!"))
}

func TestHeaderRender(t *testing.T) {
	out := NewHeader("Color", "Palette").
		WithSubtitle("Press space for new colors").
		WithWidth(60).
		Render()

	assert.Contains(t, out, "Color")
	assert.Contains(t, out, "Palette")
	assert.Contains(t, out, "Press space for new colors")
	assert.Equal(t, 60, lipgloss.Width(out))
}

func TestStatusBarRender(t *testing.T) {
	tests := []struct {
		name    string
		bar     *StatusBar
		want    []string
		notWant []string
	}{
		{
			name: "left and right text",
			bar:  NewStatusBar(50).WithLeftText("left side").WithRightText("dark"),
			want: []string{"left side", "dark"},
		},
		{
			name:    "message replaces text",
			bar:     NewStatusBar(50).WithLeftText("left side").WithMessage("Copied #FF0000", model.StatusBarSuccess),
			want:    []string{"Copied #FF0000"},
			notWant: []string{"left side"},
		},
		{
			name: "error message",
			bar:  NewStatusBar(50).WithMessage("clipboard unavailable", model.StatusBarError),
			want: []string{"clipboard unavailable"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := tt.bar.Render()
			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}
			for _, nw := range tt.notWant {
				assert.NotContains(t, out, nw)
			}
			assert.Equal(t, 50, lipgloss.Width(out))
		})
	}
}
