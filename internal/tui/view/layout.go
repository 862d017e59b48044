package view

import (
	"palettectl/internal/tui/components"
	"palettectl/internal/tui/design"
	"palettectl/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
)

const (
	// cardGap is the number of blank columns between two cards.
	cardGap = design.SpaceXS
	// maxCardWidth stops cards from stretching across very wide terminals.
	maxCardWidth = 34
)

// Layout describes where the swatch grid lands on screen. Render and the
// mouse hit-testing in the controller both derive from it.
type Layout struct {
	ContentWidth int
	Columns      int
	CardWidth    int
	// GridLeft and GridTop are absolute screen coordinates of the first card.
	GridLeft int
	GridTop  int
	// GenerateTop is the screen row of the "Generate New Colors" button.
	GenerateTop int
}

// ComputeLayout picks 4, 2 or 1 columns depending on the terminal width.
func ComputeLayout(m *model.Model) Layout {
	contentWidth := m.Width - design.AppStyle.GetHorizontalFrameSize()
	if contentWidth < 1 {
		contentWidth = 1
	}

	columns := 1
	for _, c := range []int{4, 2} {
		if c*components.MinSwatchWidth+(c-1)*cardGap <= contentWidth {
			columns = c
			break
		}
	}

	cardWidth := (contentWidth - (columns-1)*cardGap) / columns
	if cardWidth > maxCardWidth {
		cardWidth = maxCardWidth
	}
	if cardWidth < 3 {
		cardWidth = 3
	}

	gridWidth := columns*cardWidth + (columns-1)*cardGap
	offset := (contentWidth - gridWidth) / 2
	if offset < 0 {
		offset = 0
	}

	rows := (len(m.Palette) + columns - 1) / columns
	gridTop := design.AppStyle.GetPaddingTop() + lipgloss.Height(renderHeader(contentWidth)) + 1

	return Layout{
		ContentWidth: contentWidth,
		Columns:      columns,
		CardWidth:    cardWidth,
		GridLeft:     design.AppStyle.GetPaddingLeft() + offset,
		GridTop:      gridTop,
		GenerateTop:  gridTop + rows*components.SwatchHeight + 1,
	}
}

// GridWidth is the rendered width of one row of cards.
func (l Layout) GridWidth() int {
	return l.Columns*l.CardWidth + (l.Columns-1)*cardGap
}

// CardAt returns the palette index of the card under screen position (x, y),
// or -1 when the position is outside every card.
func (l Layout) CardAt(x, y, count int) int {
	if x < l.GridLeft || y < l.GridTop || l.Columns < 1 {
		return -1
	}

	stride := l.CardWidth + cardGap
	col := (x - l.GridLeft) / stride
	if col >= l.Columns || (x-l.GridLeft)%stride >= l.CardWidth {
		return -1
	}
	row := (y - l.GridTop) / components.SwatchHeight

	index := row*l.Columns + col
	if index >= count {
		return -1
	}
	return index
}
