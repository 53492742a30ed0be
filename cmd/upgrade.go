package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/slatekore/slatekore/internal/ui"
)

func newUpgradeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "upgrade",
		Short: "Upgrade templates to the latest version",
		Long: `Upgrade templates and workflows while preserving your notes.

Not implemented yet: re-run 'slatekore init --force' instead. Only templates,
GEMINI.md and workflows are overwritten; notes are never touched.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Render(ui.Warning, "Upgrade command coming soon!"))
			fmt.Fprintln(out, "For now, re-run "+ui.Render(ui.Code, "slatekore init --force")+" to update templates.")
		},
	}
}
