// Package cli implements the adplan command tree.
package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/greenbock/adplan/internal/config"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// NewRootCmd creates the root Cobra command for the adplan CLI.
// It wires up logging and the analyze, sensitivity, feedstock, and config
// subcommands.
func NewRootCmd(ver string) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "adplan",
		Short:   "Anaerobic digestion project planner",
		Long:    "adplan: estimate biogas yield, plant sizing, costs, and project finance for anaerobic digestion projects",
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			config.SetGlobalConfig(cfg)

			return setupLogging(cmd, cfg)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			config.CloseLogFile()
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("log-level", "", "log level (trace, debug, info, warn, error)")
	cmd.PersistentFlags().String("config", config.DefaultConfigFile, "path to the adplan config file")

	cmd.AddCommand(newAnalyzeCmd(), newSensitivityCmd(), newFeedstockCmd(), newConfigCmd())

	return cmd
}

const rootCmdExample = `  # Assess a project defined in a YAML file
  adplan analyze --project farm.yaml

  # Same assessment on the CHP pathway at 1.5x scale
  adplan analyze --project farm.yaml --pathway chp --scale 1.5

  # LCOE sensitivity sweep
  adplan sensitivity --project farm.yaml

  # List the built-in feedstock library
  adplan feedstock list

  # Write a starter config file
  adplan config init`

// newFeedstockCmd creates the feedstock command group.
func newFeedstockCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "feedstock", Short: "Feedstock library commands"}
	cmd.AddCommand(newFeedstockListCmd())
	return cmd
}

// newConfigCmd creates the config command group.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(newConfigInitCmd(), newConfigValidateCmd())
	return cmd
}
