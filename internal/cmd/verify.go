package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"

	"github.com/dendrascience/treegen/tree"
)

// NewVerifyCmd creates and returns the verify subcommand for the treegen CLI.
// It checks a generated tree against the manifest written by generate.
func NewVerifyCmd() *cobra.Command {
	var (
		manifestPath string
		verbose      bool
	)

	cmd := &cobra.Command{
		Use:   "verify PATH",
		Short: "Verify a generated tree against its manifest",
		Long: `Verify a generated tree against the manifest written by generate --manifest.

This command rescans the tree, recomputes every file's SHA-256 and reports
missing, unexpected or modified files as well as count mismatches. It exits
non-zero when any problem is found.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(cmd, args[0], manifestPath, verbose)
		},
	}

	cmd.Flags().StringVarP(&manifestPath, "manifest", "m", "", "Path to the manifest to verify against (required)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	cmd.MarkFlagRequired("manifest")

	return cmd
}

func runVerify(cmd *cobra.Command, path, manifestPath string, verbose bool) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("tree does not exist: %s", path)
	}

	m, err := tree.ReadManifest(manifestPath)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if verbose {
		fmt.Fprintf(out, "Verifying %s against run %s (seed %d)\n", path, m.RunID, int64(m.Seed))
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	inv, err := tree.Scan(osfs.New(filepath.Dir(abs)), filepath.Base(abs))
	if err != nil {
		return err
	}

	problems := m.Verify(inv)
	for _, p := range problems {
		fmt.Fprintf(out, "  - %s\n", p)
	}

	fmt.Fprintf(out, "\nVerification complete:\n")
	fmt.Fprintf(out, "  Files checked: %d\n", len(inv.Files))
	fmt.Fprintf(out, "  Total errors: %d\n", len(problems))

	if len(problems) > 0 {
		return fmt.Errorf("tree %s does not match manifest %s", path, manifestPath)
	}
	return nil
}
