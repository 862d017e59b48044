package cmd

import (
	"context"
	"fmt"
	"os"

	"palettectl/internal/app"

	"github.com/spf13/cobra"
)

// Persistent flags shared by every command.
var (
	rootConfigPath  string
	rootDebug       bool
	rootNoClipboard bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "palettectl",
	Short: "Generate color palettes and copy their HEX codes",
	Long: `palettectl shows four random colors in your terminal and copies a
color's HEX code to the clipboard with a click or a key press.

Run it without a subcommand to start the interactive UI. The generate and
contrast commands do the same work non-interactively, and mcp exposes it
to AI assistants as Model Context Protocol tools.`,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. invalid colors, clipboard failures)
	SilenceUsage: true,
	Args:         cobra.NoArgs,
	RunE:         runUI,
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "palettectl version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

// newApplication bootstraps config, logging and services for a command.
// seed, when not nil, overrides the configured generator seed.
func newApplication(cmd *cobra.Command, seed *uint64) (*app.Application, error) {
	cfg := app.NewConfig(rootDebug, rootNoClipboard, rootConfigPath)
	cfg.Seed = seed
	cfg.LogOutput = cmd.ErrOrStderr()

	application, err := app.NewApplication(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize application: %w", err)
	}
	return application, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if cmd != nil && cmd.Context() != nil {
		return cmd.Context()
	}
	return context.Background()
}

func init() {
	rootCmd.AddCommand(newUICmd())
	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newContrastCmd())
	rootCmd.AddCommand(newMCPCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())

	rootCmd.PersistentFlags().StringVar(&rootConfigPath, "config", "", "config file (default is layered ~/.config/palettectl/config.yaml and ./.palettectl/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&rootDebug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&rootNoClipboard, "no-clipboard", false, "Keep copies in memory instead of writing to the system clipboard")
}
