package cmd

import (
	"github.com/spf13/cobra"
)

func newUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ui",
		Short: "Start the interactive palette UI",
		Long: `Starts the interactive terminal UI with four random colors.

Keys:
  space/g/r   generate new colors
  1-4         copy the HEX code of color n
  ←/→, h/l    move the selection; enter/c/y copies it
  L           activity log
  ?           full help
  q           quit

Clicking a card copies its HEX code as well. The "Copied!" mark clears after
the configured feedback duration (ui.feedbackDuration, default 2s).`,
		Args: cobra.NoArgs,
		RunE: runUI,
	}
}

// runUI is the entry point for both the root command and ui.
func runUI(cmd *cobra.Command, args []string) error {
	application, err := newApplication(cmd, nil)
	if err != nil {
		return err
	}
	return application.Run(commandContext(cmd))
}
