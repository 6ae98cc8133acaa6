package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/greenbock/adplan/internal/analysis"
	"github.com/greenbock/adplan/internal/config"
	"github.com/greenbock/adplan/internal/sizing"
)

// AnalyzeParams holds the flags of the analyze command. Exported for testing.
type AnalyzeParams struct {
	ProjectPath string
	Pathway     string
	Scale       float64
	Output      string
}

// newAnalyzeCmd creates the "analyze" subcommand: the full project
// assessment from feedstock yields through financial metrics.
func newAnalyzeCmd() *cobra.Command {
	var params AnalyzeParams

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Assess a bioenergy project end to end",
		Long: `Run the full assessment pipeline over a project file: feedstock yields,
digester sizing, energy outputs, CAPEX/OPEX, LCOE, and financial metrics.

The project file defines the active feedstock set and all parameters; the
--pathway and --scale flags override the file for quick comparisons.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAnalyze(cmd, params)
		},
	}

	cmd.Flags().StringVar(&params.ProjectPath, "project", "", "path to the project YAML file (required)")
	cmd.Flags().StringVar(&params.Pathway, "pathway", "", "override the project pathway (biogas or chp)")
	cmd.Flags().Float64Var(&params.Scale, "scale", 0, "override the project scale multiplier")
	cmd.Flags().StringVar(&params.Output, "output", "", "output format (table, json; default from config)")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

// runAnalyze loads the project, applies flag overrides, and renders the
// resulting report.
func runAnalyze(cmd *cobra.Command, params AnalyzeParams) error {
	project, err := loadProjectWithOverrides(params.ProjectPath, params.Pathway, params.Scale)
	if err != nil {
		return err
	}

	report, err := analysis.Run(cmd.Context(), *project)
	if err != nil {
		return fmt.Errorf("running assessment: %w", err)
	}

	switch resolveOutputFormat(params.Output) {
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case "table":
		return RenderReport(cmd.OutOrStdout(), report)
	default:
		return fmt.Errorf("unknown output format %q (expected table or json)", params.Output)
	}
}

// resolveOutputFormat picks the report format: the flag when given, otherwise
// the configured default. Resolved at run time because the config file is only
// loaded in the root command's PersistentPreRunE, after flag construction.
func resolveOutputFormat(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return config.GetDefaultOutputFormat()
}

// loadProjectWithOverrides reads the project file and applies the pathway
// and scale flag overrides.
func loadProjectWithOverrides(path, pathwayFlag string, scaleFlag float64) (*analysis.Project, error) {
	project, err := config.LoadProject(path)
	if err != nil {
		return nil, err
	}

	if pathwayFlag != "" {
		pathway, parseErr := sizing.ParsePathway(pathwayFlag)
		if parseErr != nil {
			return nil, parseErr
		}
		project.Pathway = pathway
	}
	if scaleFlag != 0 {
		project.Params.Scale = scaleFlag
	}

	return project, nil
}
