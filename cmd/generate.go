package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"palettectl/internal/color"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Output formats of generate and contrast.
const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

type generateOptions struct {
	count     int
	seed      uint64
	output    string
	copyIndex int
}

func newGenerateCmd() *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print a random palette",
		Long: `Generates random colors and prints their HEX, RGB and HSL codes together
with the text color that reads best on each of them.

Use --seed for a reproducible palette and --copy to put one of the
generated HEX codes on the clipboard.`,
		Example: `  palettectl generate
  palettectl generate -n 8 --output json
  palettectl generate --seed 42 --copy 2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.count, "count", "n", color.DefaultPaletteSize, "Number of colors to generate")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "Seed for a reproducible palette")
	cmd.Flags().StringVarP(&opts.output, "output", "o", outputText, "Output format: text, json or yaml")
	cmd.Flags().IntVar(&opts.copyIndex, "copy", 0, "Copy the HEX code of color n (1-based) to the clipboard")

	return cmd
}

func runGenerate(cmd *cobra.Command, opts *generateOptions) error {
	if opts.count < 0 {
		return fmt.Errorf("count must not be negative, got %d", opts.count)
	}
	if opts.copyIndex < 0 || opts.copyIndex > opts.count {
		return fmt.Errorf("--copy must be between 1 and %d, got %d", opts.count, opts.copyIndex)
	}
	if err := validateOutput(opts.output); err != nil {
		return err
	}

	var seed *uint64
	if cmd.Flags().Changed("seed") {
		seed = &opts.seed
	}
	application, err := newApplication(cmd, seed)
	if err != nil {
		return err
	}
	services := application.Services()

	palette := services.Generator.Palette(opts.count)
	if err := writePalette(cmd.OutOrStdout(), palette, opts.output); err != nil {
		return err
	}

	if opts.copyIndex > 0 {
		hex := palette[opts.copyIndex-1].Hex()
		if err := services.Clipboard.WriteText(commandContext(cmd), hex); err != nil {
			return fmt.Errorf("failed to copy %s: %w", hex, err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Copied %s to clipboard\n", hex)
	}
	return nil
}

func validateOutput(output string) error {
	switch output {
	case outputText, outputJSON, outputYAML:
		return nil
	default:
		return fmt.Errorf("unknown output format %q: must be text, json or yaml", output)
	}
}

func writePalette(w io.Writer, palette []color.Color, output string) error {
	switch output {
	case outputJSON:
		return writeJSON(w, color.DescribeAll(palette))
	case outputYAML:
		return writeYAML(w, color.DescribeAll(palette))
	default:
		for i, c := range palette {
			fmt.Fprintf(w, "%d  %s\n", i+1, describeLine(c))
		}
		return nil
	}
}

// describeLine renders a swatch followed by the color's codes.
func describeLine(c color.Color) string {
	swatch := lipgloss.NewStyle().
		Background(lipgloss.Color(c.Hex())).
		Foreground(lipgloss.Color(color.ContrastingTextColor(c))).
		Render(" Aa ")

	return strings.Join([]string{
		swatch,
		c.Hex(),
		c.RGBString(),
		c.HSLString(),
		"text " + color.ContrastingTextColor(c),
	}, "  ")
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

func writeYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return enc.Close()
}
