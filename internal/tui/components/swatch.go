package components

import (
	"fmt"

	"palettectl/internal/color"
	"palettectl/internal/tui/design"
	"palettectl/internal/tui/utils"

	"github.com/charmbracelet/lipgloss"
)

const (
	// SwatchBlockHeight is the number of lines painted in the swatch color.
	SwatchBlockHeight = 5
	// SwatchHeight is the total rendered height of a card including its border.
	SwatchHeight = SwatchBlockHeight + 4 + 2
	// MinSwatchWidth is the narrowest card that still fits "RGB(255, 255, 255)".
	MinSwatchWidth = 22

	copyIcon   = "⧉"
	copiedIcon = "✓"
)

// Swatch is a single palette card: a block painted in the color with
// readable overlay text, followed by the color's codes and a copy button.
type Swatch struct {
	Color    color.Color
	Index    int
	Width    int
	Selected bool
	Copied   bool
}

// NewSwatch creates a card for c in slot index.
func NewSwatch(c color.Color, index int) *Swatch {
	return &Swatch{
		Color: c,
		Index: index,
		Width: MinSwatchWidth,
	}
}

// WithWidth sets the outer width of the card
func (s *Swatch) WithWidth(width int) *Swatch {
	s.Width = width
	return s
}

// WithSelected highlights the card border
func (s *Swatch) WithSelected(selected bool) *Swatch {
	s.Selected = selected
	return s
}

// WithCopied shows the copied feedback
func (s *Swatch) WithCopied(copied bool) *Swatch {
	s.Copied = copied
	return s
}

// ButtonLabel is the label of the card's copy button.
func (s *Swatch) ButtonLabel() string {
	if s.Copied {
		return copiedIcon + " Copied!"
	}
	return copyIcon + " Copy HEX"
}

// Render returns the styled card
func (s *Swatch) Render() string {
	inner := s.Width - 2
	if inner < 1 {
		inner = 1
	}

	rows := append(s.renderBlock(inner), s.renderDetails(inner)...)

	style := design.CardStyle
	if s.Selected {
		style = design.CardSelectedStyle
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (s *Swatch) renderBlock(inner int) []string {
	paint := lipgloss.NewStyle().
		Width(inner).
		Background(lipgloss.Color(s.Color.Hex())).
		Foreground(lipgloss.Color(color.ContrastingTextColor(s.Color)))

	icon := copyIcon
	if s.Copied {
		icon = copiedIcon
	}
	top := utils.PadBetween(fmt.Sprintf(" %d", s.Index+1), icon+" ", inner)

	lines := make([]string, SwatchBlockHeight)
	lines[0] = paint.Render(top)
	for i := 1; i < SwatchBlockHeight; i++ {
		lines[i] = paint.Render("")
	}
	if s.Copied {
		lines[SwatchBlockHeight/2] = paint.Bold(true).Align(lipgloss.Center).Render("Copied!")
	}
	return lines
}

func (s *Swatch) renderDetails(inner int) []string {
	center := lipgloss.NewStyle().Width(inner).Align(lipgloss.Center)

	button := design.ButtonStyle
	if s.Copied {
		button = design.ButtonCopiedStyle
	}

	return []string{
		center.Render(design.CardHexStyle.Render(utils.TruncateString(s.Color.Hex(), inner))),
		center.Render(design.CardDetailStyle.Render(utils.TruncateString(s.Color.RGBString(), inner))),
		center.Render(design.CardDetailStyle.Render(utils.TruncateString(s.Color.HSLString(), inner))),
		center.Render(button.Render(utils.TruncateString(s.ButtonLabel(), inner-2))),
	}
}
