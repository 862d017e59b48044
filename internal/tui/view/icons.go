package view

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Icon constants
const (
	IconCheck    = "✔" // U+2714
	IconCross    = "✘" // U+2718
	IconRefresh  = "⟳" // U+27F3
	IconScroll   = "📜" // U+1F4DC
	IconPointer  = "➜" // U+279C
	IconMoon     = "☾" // U+263E
	IconSun      = "☀" // U+2600 without VS16
	IconKeyboard = "⌨" // U+2328 without VS16
)

// SafeIcon appends one space after a narrow icon and two after a wide one,
// so the following character is never swallowed by the terminal.
func SafeIcon(icon string) string {
	spaces := 1
	if runewidth.StringWidth(icon) >= 2 {
		spaces = 2
	}
	return fmt.Sprintf("%s%s", icon, strings.Repeat(" ", spaces))
}

// IconText formats an icon with text, handling spacing properly
func IconText(icon string, text string) string {
	return SafeIcon(icon) + text
}
