package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dendrascience/treegen/config"
)

// NewSchemaCmd creates the schema subcommand, which prints the JSON Schema
// for generate --config preset files.
func NewSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema for preset files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := config.Schema()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}
