package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/slatekore/slatekore/internal/ui"
	"github.com/slatekore/slatekore/internal/vault"
)

func newInitCmd() *cobra.Command {
	var (
		force   bool
		jsonOut bool
	)

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Initialize an Obsidian vault with slatekore",
		Long: `Initialize an Obsidian vault with slatekore.

PATH is the target directory (defaults to the current directory). Existing
templates, GEMINI.md and workflows are kept unless --force is given.

Examples:
  slatekore init                  # Initialize current directory
  slatekore init ./my-vault       # Initialize specific directory
  slatekore init . --force        # Overwrite existing config`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) == 1 && args[0] != "" {
				path = args[0]
			}
			return runInit(cmd.OutOrStdout(), path, force, jsonOut)
		},
	}

	cmd.Annotations = map[string]string{strictConfig: "true"}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing files")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}

func runInit(out io.Writer, path string, force, jsonOut bool) error {
	target, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	if !jsonOut {
		fmt.Fprintln(out)
		fmt.Fprintln(out, ui.Panel("", ui.Logo(Version)+"\nInitializing vault at: "+ui.Render(ui.Code, target), ui.Blue))
	}

	result, err := vault.Initialize(target, force)
	if err != nil {
		return err
	}

	if jsonOut {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, ui.SuccessLine("Vault initialized successfully!"))
	fmt.Fprintln(out)

	fmt.Fprintln(out, ui.Render(ui.Subtitle, "Created:"))
	if len(result.Created) == 0 {
		fmt.Fprintln(out, ui.Render(ui.Muted, "  (nothing new)"))
	}
	for _, label := range result.CreatedLabels() {
		fmt.Fprintln(out, ui.Bullet(label, ui.Green))
	}

	if len(result.Skipped) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, ui.Render(ui.Warning, "Skipped (already exists):"))
		for _, label := range result.SkippedLabels() {
			fmt.Fprintln(out, ui.Bullet(label, ui.Yellow))
		}
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, ui.Panel("🚀 Getting Started", nextSteps(), ui.Green))
	return nil
}

func nextSteps() string {
	code := func(s string) string { return ui.Render(ui.Code, s) }
	steps := []string{
		"1. Open the vault in Obsidian",
		"2. Install required plugins: " + strings.Join(mapStrings(cfg.PluginNames(), code), ", "),
		"3. Open terminal and run: " + code(cfg.Agent.Binary),
		"4. Start with: " + code("/daily-setup") + " or " + code("/capture <url>"),
	}
	return strings.Join(steps, "\n")
}

func mapStrings(in []string, f func(string) string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = f(s)
	}
	return out
}
