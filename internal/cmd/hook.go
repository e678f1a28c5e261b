package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/dendrascience/treegen/attribution"
)

// exit terminates the process with a hook status. Tests replace it.
var exit = os.Exit

// NewHookCmd creates the hook command group.
func NewHookCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hook",
		Short: "Run repository hooks",
	}
	cmd.AddCommand(NewCommitAttributionCmd())
	return cmd
}

// NewCommitAttributionCmd creates the commit-attribution hook. It reads the
// hook event from stdin and blocks git commits carrying AI attribution.
func NewCommitAttributionCmd() *cobra.Command {
	var patterns []string

	cmd := &cobra.Command{
		Use:   "commit-attribution",
		Short: "Block git commits that carry AI co-authorship trailers",
		Long: `Read a tool-permission hook event as JSON from stdin and block git commit
commands whose message carries an AI co-authorship trailer.

PermissionRequest events are answered with a JSON deny decision on stdout.
Other events get a message on stderr and exit status 2. Everything else
exits 0 without output.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := attribution.NewFilter(patterns...)
			if err != nil {
				return err
			}
			code, err := f.Run(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if code != 0 {
				exit(code)
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&patterns, "pattern", "p", nil, "Additional case-insensitive regex to deny (repeatable)")

	return cmd
}
