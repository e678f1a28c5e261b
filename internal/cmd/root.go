package cmd

import (
	"github.com/dendrascience/treegen/version"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root cobra command for the treegen CLI.
// It sets up all subcommands, command groups, and basic configuration.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "treegen",
		Short: "treegen - Random directory trees of generated text for test corpora",
		Long: `treegen builds random directory trees populated with generated plaintext
and markdown files, for use as synthetic text corpora.

Use subcommands to perform different operations:
  - generate: Generate a random tree
  - count: Count files in a tree
  - verify: Check a tree against a generation manifest
  - schema: Print the JSON Schema for preset files
  - hook: Run repository hooks`,
		Version: version.GetFullVersion(),
	}

	groupGeneration := "generation"
	groupUtilities := "utilities"

	rootCmd.AddGroup(&cobra.Group{
		ID:    groupGeneration,
		Title: "Generation",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupUtilities,
		Title: "Utility Commands",
	})

	generateCmd := NewGenerateCmd()
	countCmd := NewCountCmd()
	verifyCmd := NewVerifyCmd()
	schemaCmd := NewSchemaCmd()
	hookCmd := NewHookCmd()
	versionCmd := NewVersionCmd()

	generateCmd.GroupID = groupGeneration
	verifyCmd.GroupID = groupGeneration
	countCmd.GroupID = groupUtilities
	schemaCmd.GroupID = groupUtilities
	hookCmd.GroupID = groupUtilities
	versionCmd.GroupID = groupUtilities

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(countCmd)
	rootCmd.AddCommand(schemaCmd)
	rootCmd.AddCommand(hookCmd)
	rootCmd.AddCommand(versionCmd)

	return rootCmd
}

// NewVersionCmd creates the version subcommand.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			version.PrintVersion(cmd.OutOrStdout(), "treegen")
		},
	}
}
