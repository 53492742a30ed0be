package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/slatekore/slatekore/internal/config"
	"github.com/slatekore/slatekore/internal/logger"
	"github.com/slatekore/slatekore/internal/ui"
)

var (
	// Version is set at build time
	Version = "dev"
)

var (
	configPath string
	verbose    bool

	// cfg is loaded once per invocation by the root pre-run hook
	cfg = config.Default()
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "slatekore",
		Short:   "AI research second brain for Obsidian + Gemini CLI",
		Version: Version,
		Long: `Initialize an Obsidian vault as an AI-powered research second brain.

slatekore lays out the vault folders, installs note templates, writes the
GEMINI.md agent instructions and the agent workflows under .agent/workflows.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: loadConfig,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}

	root.SetVersionTemplate("slatekore {{.Version}}\n")
	root.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default $XDG_CONFIG_HOME/slatekore/config.yaml)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log diagnostics to stderr")

	root.AddCommand(newInitCmd())
	root.AddCommand(newCheckCmd())
	root.AddCommand(newUpgradeCmd())
	root.AddCommand(newListCmd())
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "slatekore %s\n", Version)
		},
	})
	return root
}

// Execute runs the root command. Errors are printed once, here.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, ui.ErrorMessage(err))
	}
	return err
}

// strictConfig marks commands that refuse to run on a broken config file.
// The others warn and continue on the defaults.
const strictConfig = "slatekore/strict-config"

func loadConfig(cmd *cobra.Command, args []string) error {
	loaded, err := readConfig()
	if err != nil {
		if _, strict := cmd.Annotations[strictConfig]; strict {
			return err
		}
		cfg = config.Default()
		if logErr := initLogger(cmd); logErr != nil {
			return logErr
		}
		logger.ForComponent("config").Warn("ignoring config file, using defaults", "error", err)
		return nil
	}
	cfg = loaded
	return initLogger(cmd)
}

func readConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		paths, err := config.GetPaths()
		if err != nil {
			// No home directory: run on defaults.
			return config.Default(), nil
		}
		path = paths.ConfigFile
	}
	return config.Load(path)
}

func initLogger(cmd *cobra.Command) error {
	logCfg, err := cfg.Logger(verbose)
	if err != nil {
		return err
	}
	logCfg.Output = cmd.ErrOrStderr()
	logger.Init(logCfg)
	return nil
}
