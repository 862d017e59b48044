package color

import (
	"encoding/hex"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Text colors returned by ContrastingTextColor.
const (
	TextBlack = "#000000"
	TextWhite = "#FFFFFF"
)

// brightnessThreshold is the luma midpoint in thousandths.
const brightnessThreshold = 128 * 1000

// ErrInvalidHex is returned by ParseHex for anything that is not a six digit hex code.
var ErrInvalidHex = errors.New("invalid hex color")

// Color is an immutable RGB value. Use RGB or ParseHex to build one.
type Color struct {
	r, g, b uint8
}

// RGB returns the Color for the given channels.
func RGB(r, g, b uint8) Color {
	return Color{r: r, g: g, b: b}
}

// ParseHex parses "#RRGGBB" or "RRGGBB" in either case.
func ParseHex(s string) (Color, error) {
	digits := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(digits) != 6 {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	raw, err := hex.DecodeString(digits)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	return RGB(raw[0], raw[1], raw[2]), nil
}

func (c Color) R() uint8 { return c.r }
func (c Color) G() uint8 { return c.g }
func (c Color) B() uint8 { return c.b }

// Hex returns the canonical "#RRGGBB" encoding with uppercase digits.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.r, c.g, c.b)
}

// String makes Color satisfy fmt.Stringer.
func (c Color) String() string {
	return c.Hex()
}

// RGBString renders the channels as "RGB(r, g, b)".
func (c Color) RGBString() string {
	return fmt.Sprintf("RGB(%d, %d, %d)", c.r, c.g, c.b)
}

// HSL returns hue in degrees and saturation/lightness in [0,1].
func (c Color) HSL() (h, s, l float64) {
	return c.toColorful().Hsl()
}

// HSLString renders the color as "HSL(h, s%, l%)" with whole numbers.
func (c Color) HSLString() string {
	h, s, l := c.HSL()
	if math.IsNaN(h) {
		h = 0
	}
	return fmt.Sprintf("HSL(%d, %d%%, %d%%)", int(math.Round(h))%360, int(math.Round(s*100)), int(math.Round(l*100)))
}

func (c Color) toColorful() colorful.Color {
	return colorful.Color{
		R: float64(c.r) / 255,
		G: float64(c.g) / 255,
		B: float64(c.b) / 255,
	}
}

// Brightness is the perceived luma 0.299*r + 0.587*g + 0.114*b.
func Brightness(c Color) float64 {
	return float64(lumaThousandths(c)) / 1000
}

// lumaThousandths keeps the comparison against the threshold exact.
func lumaThousandths(c Color) int {
	return int(c.r)*299 + int(c.g)*587 + int(c.b)*114
}

// ContrastingTextColor returns TextBlack for bright colors and TextWhite otherwise.
// A brightness of exactly 128 resolves to white.
func ContrastingTextColor(c Color) string {
	if lumaThousandths(c) > brightnessThreshold {
		return TextBlack
	}
	return TextWhite
}
