package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/slatekore/slatekore/internal/prereq"
	"github.com/slatekore/slatekore/internal/ui"
)

func newCheckCmd() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:     "check",
		Aliases: []string{"doctor"},
		Short:   "Check if prerequisites are installed",
		Long: `Check if prerequisites are installed.

Verifies:
  - Gemini CLI is installed and on PATH
  - Obsidian plugins (listed for manual verification)

Always exits 0; the report is informational.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			results := cfg.Checker().CheckAll(cmd.Context())
			return renderCheck(cmd.OutOrStdout(), results, jsonOut)
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}

func renderCheck(out io.Writer, results prereq.Results, jsonOut bool) error {
	if jsonOut {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, ui.SectionHeader("Checking prerequisites"))
	fmt.Fprintln(out)

	for _, r := range results {
		line := fmt.Sprintf("%s: %s", r.Name, r.Message)
		if r.OK {
			fmt.Fprintln(out, ui.SuccessLine(line))
		} else {
			fmt.Fprintln(out, ui.FailLine(line))
		}
		if r.Help != "" {
			fmt.Fprintln(out, ui.HintLine(r.Help))
		}
	}

	fmt.Fprintln(out)
	if results.HasFailures() {
		fmt.Fprintln(out, ui.Render(ui.Warning, "Some prerequisites missing. See above for details."))
	} else {
		fmt.Fprintln(out, ui.Render(ui.Success, "All prerequisites met! Ready to use slatekore."))
	}
	fmt.Fprintln(out, ui.PageFooter())
	return nil
}
