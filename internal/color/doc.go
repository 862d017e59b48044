// Package color models the colors palettectl shows and copies.
//
// A Color is an immutable RGB triple. Its hexadecimal form is always derived
// from the channels, never stored separately, so the two can not drift apart.
//
// # Generation
//
// Colors are drawn by a Generator from an injected RandomSource. The default
// source is the process-wide math/rand/v2 generator; NewSeededSource returns a
// deterministic PCG source for reproducible palettes:
//
//	gen := color.NewGenerator(color.NewSeededSource(42))
//	palette := gen.Palette(color.DefaultPaletteSize)
//
// # Contrast
//
// ContrastingTextColor picks black or white overlay text using the YIQ luma
// weights (0.299, 0.587, 0.114). Brightness strictly above 128 gets black
// text, everything else gets white.
//
//	c := color.RGB(0, 0, 255)
//	fmt.Println(c.Hex(), color.ContrastingTextColor(c)) // #0000FF #FFFFFF
package color
