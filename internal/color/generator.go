package color

import (
	"math/rand/v2"
)

// DefaultPaletteSize is the number of swatches in a palette.
const DefaultPaletteSize = 4

// RandomSource yields uniform integers in [0, n).
type RandomSource interface {
	IntN(n int) int
}

// globalSource draws from the process-wide math/rand/v2 generator.
type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// DefaultSource returns the unseeded process-wide source.
func DefaultSource() RandomSource {
	return globalSource{}
}

// NewSeededSource returns a deterministic source. The same seed always yields
// the same sequence of colors.
func NewSeededSource(seed uint64) RandomSource {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Generator draws random colors from a RandomSource.
type Generator struct {
	src RandomSource
}

// NewGenerator creates a Generator. A nil source falls back to DefaultSource.
func NewGenerator(src RandomSource) *Generator {
	if src == nil {
		src = DefaultSource()
	}
	return &Generator{src: src}
}

// RandomColor draws three independent channels in [0, 255].
func (g *Generator) RandomColor() Color {
	r := g.channel()
	gr := g.channel()
	b := g.channel()
	return RGB(r, gr, b)
}

func (g *Generator) channel() uint8 {
	return uint8(g.src.IntN(256))
}

// Palette returns n independently drawn colors. Duplicates are allowed.
func (g *Generator) Palette(n int) []Color {
	if n < 0 {
		n = 0
	}
	colors := make([]Color, n)
	for i := range colors {
		colors[i] = g.RandomColor()
	}
	return colors
}
