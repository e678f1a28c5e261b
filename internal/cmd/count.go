package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"

	"github.com/dendrascience/treegen/tree"
)

// NewCountCmd creates and returns the count subcommand for the treegen CLI.
// It provides file counting functionality for directory trees.
func NewCountCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "count [PATH]",
		Short: "Count files in a directory tree",
		Long: `Count the files and directories in a directory tree.

This is a utility command that recursively walks through a directory
and reports the number of files (with a .txt/.md breakdown), the number
of directories and the deepest nesting level.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				path = args[0]
			}
			return runCount(cmd, path)
		},
	}

	cmd.Flags().StringVarP(&path, "path", "p", "./", "Path to count files in")

	return cmd
}

func runCount(cmd *cobra.Command, path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	inv, err := tree.Scan(osfs.New(filepath.Dir(abs)), filepath.Base(abs))
	if err != nil {
		return fmt.Errorf("error counting files: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Total files: %d (%d .txt, %d .md)\n", len(inv.Files), inv.TxtCount, inv.MDCount)
	fmt.Fprintf(out, "Directories: %d\n", len(inv.Dirs))
	fmt.Fprintf(out, "Max depth: %d\n", inv.MaxDepth)
	return nil
}
