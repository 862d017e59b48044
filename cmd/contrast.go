package cmd

import (
	"fmt"

	"palettectl/internal/color"

	"github.com/spf13/cobra"
)

type contrastResult struct {
	color.Description `yaml:",inline"`
	Brightness        float64 `json:"brightness" yaml:"brightness"`
}

func newContrastCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "contrast <hex>...",
		Short: "Print the readable text color for background colors",
		Long: `Prints black (#000000) or white (#FFFFFF) for each background color,
whichever reads better. The choice uses perceived brightness
0.299*R + 0.587*G + 0.114*B: above 128 gets black text, otherwise white.

Colors are given as #RRGGBB or RRGGBB in any case.`,
		Example: `  palettectl contrast '#FF0000' 00ff00
  palettectl contrast 808080 --output json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runContrast(cmd, args, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", outputText, "Output format: text, json or yaml")
	return cmd
}

func runContrast(cmd *cobra.Command, args []string, output string) error {
	if err := validateOutput(output); err != nil {
		return err
	}

	results := make([]contrastResult, 0, len(args))
	for _, arg := range args {
		c, err := color.ParseHex(arg)
		if err != nil {
			return fmt.Errorf("invalid color %q: %w", arg, err)
		}
		results = append(results, contrastResult{
			Description: color.Describe(c),
			Brightness:  color.Brightness(c),
		})
	}

	w := cmd.OutOrStdout()
	switch output {
	case outputJSON:
		return writeJSON(w, results)
	case outputYAML:
		return writeYAML(w, results)
	}
	for _, r := range results {
		fmt.Fprintf(w, "%s  text %s  brightness %.1f\n", r.Hex, r.TextColor, r.Brightness)
	}
	return nil
}
