package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/greenbock/adplan/internal/analysis"
)

// newSensitivityCmd creates the "sensitivity" subcommand: an LCOE sweep over
// CAPEX, OPEX, and energy-output perturbations.
func newSensitivityCmd() *cobra.Command {
	var params AnalyzeParams

	cmd := &cobra.Command{
		Use:   "sensitivity",
		Short: "Sweep LCOE sensitivity to CAPEX, OPEX, and energy output",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSensitivity(cmd, params)
		},
	}

	cmd.Flags().StringVar(&params.ProjectPath, "project", "", "path to the project YAML file (required)")
	cmd.Flags().StringVar(&params.Pathway, "pathway", "", "override the project pathway (biogas or chp)")
	cmd.Flags().Float64Var(&params.Scale, "scale", 0, "override the project scale multiplier")
	cmd.Flags().StringVar(&params.Output, "output", "", "output format (table, json; default from config)")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

// runSensitivity runs the base assessment and then the sweep around it.
func runSensitivity(cmd *cobra.Command, params AnalyzeParams) error {
	project, err := loadProjectWithOverrides(params.ProjectPath, params.Pathway, params.Scale)
	if err != nil {
		return err
	}

	report, err := analysis.Run(cmd.Context(), *project)
	if err != nil {
		return fmt.Errorf("running assessment: %w", err)
	}

	result := analysis.Sensitivity(cmd.Context(), project.Params, report)

	switch resolveOutputFormat(params.Output) {
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case "table":
		return RenderSensitivity(cmd.OutOrStdout(), report, result)
	default:
		return fmt.Errorf("unknown output format %q (expected table or json)", params.Output)
	}
}
