// Package mcpserver exposes palette generation, contrast checks and
// clipboard copies as Model Context Protocol tools over stdio.
//
// Tools:
//
//   - generate_palette: returns count random colors (default 4) as JSON.
//   - contrast_text_color: returns the readable text color for a hex code.
//   - copy_color: writes a normalized hex code to the clipboard.
//
// Tool errors, such as an invalid hex code, are reported as error results
// rather than protocol errors so the calling agent can correct its input.
package mcpserver
