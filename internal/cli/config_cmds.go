package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/greenbock/adplan/internal/config"
)

// newConfigInitCmd creates the "config init" subcommand.
func newConfigInitCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter adplan.yaml",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.WriteDefault(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "path", config.DefaultConfigFile, "where to write the config file")

	return cmd
}

// newConfigValidateCmd creates the "config validate" subcommand. It checks
// the config file and, when given, a project file, reporting the first
// problem found.
func newConfigValidateCmd() *cobra.Command {
	var projectPath string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the config file and optionally a project file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			if _, err := config.Load(configPath); err != nil {
				return fmt.Errorf("config file: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Config OK: %s\n", configPath)

			if projectPath != "" {
				project, err := config.LoadProject(projectPath)
				if err != nil {
					return fmt.Errorf("project file: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Project OK: %s (%d feedstocks, %s pathway)\n",
					projectPath, len(project.Feedstocks), project.Pathway)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&projectPath, "project", "", "project YAML file to validate")

	return cmd
}
