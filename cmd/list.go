package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/slatekore/slatekore/internal/ui"
	"github.com/slatekore/slatekore/internal/vault"
)

func newListCmd() *cobra.Command {
	var (
		onlyTemplates bool
		onlyWorkflows bool
		showDirs      bool
		jsonOut       bool
	)

	cmd := &cobra.Command{
		Use:     "list [pattern]",
		Aliases: []string{"ls"},
		Short:   "List the templates and workflows slatekore installs",
		Long: `List every document 'slatekore init' writes into a vault.

An optional glob pattern (** supported) filters on the destination path or
the document name.

Examples:
  slatekore list
  slatekore list 'daily*'
  slatekore list '.agent/**' --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern := ""
			if len(args) == 1 {
				pattern = args[0]
			}

			docs, err := vault.Catalog()
			if err != nil {
				return err
			}
			docs, err = vault.Match(docs, pattern)
			if err != nil {
				return err
			}

			showAll := !onlyTemplates && !onlyWorkflows
			var filtered []vault.Document
			for _, d := range docs {
				if showAll ||
					(onlyTemplates && d.Kind == vault.KindTemplate) ||
					(onlyWorkflows && d.Kind == vault.KindWorkflow) {
					filtered = append(filtered, d)
				}
			}

			out := cmd.OutOrStdout()
			if jsonOut {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(filtered)
			}
			renderList(out, filtered, showDirs)
			return nil
		},
	}

	cmd.Flags().BoolVar(&onlyTemplates, "templates", false, "Show only templates")
	cmd.Flags().BoolVar(&onlyWorkflows, "workflows", false, "Show only workflows")
	cmd.Flags().BoolVar(&showDirs, "dirs", false, "Also show the vault folder tree")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}

func renderList(out io.Writer, docs []vault.Document, showDirs bool) {
	fmt.Fprintln(out)

	if showDirs {
		fmt.Fprintln(out, ui.SectionHeader("Folders"))
		for _, dir := range vault.Layout() {
			fmt.Fprintln(out, ui.Bullet(vault.KindDir.Icon()+" "+dir, ui.Slate))
		}
		fmt.Fprintln(out)
	}

	if len(docs) == 0 {
		fmt.Fprintln(out, ui.Render(ui.Muted, "  No documents match"))
		return
	}

	sections := []struct {
		kind  vault.Kind
		title string
	}{
		{vault.KindTemplate, "Templates"},
		{vault.KindRootConfig, "Agent Config"},
		{vault.KindWorkflow, "Workflows"},
	}
	for _, s := range sections {
		var group []vault.Document
		for _, d := range docs {
			if d.Kind == s.kind {
				group = append(group, d)
			}
		}
		if len(group) == 0 {
			continue
		}

		fmt.Fprintln(out, ui.SectionHeader(s.title))
		for _, d := range group {
			fmt.Fprintf(out, "  %s %s\n", d.Kind.Icon(), ui.Render(ui.Subtitle, ui.Humanize(d.Name)))
			fmt.Fprintf(out, "     %s\n", ui.Render(ui.Code, d.Path))
			if d.Description != "" {
				fmt.Fprintf(out, "     %s\n", ui.Render(ui.Muted, d.Description))
			}
		}
		fmt.Fprintln(out)
	}
	fmt.Fprintln(out, ui.PageFooter())
}
