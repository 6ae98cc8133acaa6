package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/greenbock/adplan/internal/feedstock"
)

// newFeedstockListCmd creates the "feedstock list" subcommand.
func newFeedstockListCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the built-in feedstock library",
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog := feedstock.Catalog()

			switch resolveOutputFormat(output) {
			case "json":
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(catalog)
			case "table":
				return RenderCatalog(cmd.OutOrStdout(), catalog)
			default:
				return fmt.Errorf("unknown output format %q (expected table or json)", output)
			}
		},
	}

	cmd.Flags().StringVar(&output, "output", "", "output format (table, json; default from config)")

	return cmd
}
