package cmd

import (
	"fmt"
	"log"
	"math/rand/v2"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"

	"github.com/dendrascience/treegen/config"
	"github.com/dendrascience/treegen/tree"
	"github.com/dendrascience/treegen/util"
	"github.com/dendrascience/treegen/words"
)

type generateOptions struct {
	flags        tree.Config
	seed         int64
	seedPhrase   string
	presetPath   string
	manifestPath string
	verbose      bool
}

// NewGenerateCmd creates and returns the generate subcommand for the treegen CLI.
// It builds a random directory tree of .txt and .md files under OUTPUT_DIR.
func NewGenerateCmd() *cobra.Command {
	opts := generateOptions{flags: tree.DefaultConfig()}

	cmd := &cobra.Command{
		Use:   "generate OUTPUT_DIR",
		Short: "Generate a random directory tree with text files",
		Long: `Generate a random directory tree populated with .txt and .md files.

In every directory the generator repeatedly picks, by weight, between writing
a file, opening a subdirectory (below --max-depth) and finishing the directory.
The first pick in a directory is never to finish. Generation stops once
--max-files files exist anywhere in the tree.

Options are resolved from built-in defaults, then the --config preset, then
flags given explicitly. A summary is printed to stderr when done.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			if opts.manifestPath != "" && pathsOverlap(opts.manifestPath, args[0]) {
				return fmt.Errorf("manifest %s must not be inside output directory %s", opts.manifestPath, args[0])
			}
			return runGenerate(cmd, args[0], cfg, opts.manifestPath, opts.verbose)
		},
	}

	defaults := tree.DefaultConfig()
	flags := cmd.Flags()
	flags.Float64Var(&opts.flags.WeightFile, "weight-file", defaults.WeightFile, "Weight for creating a file")
	flags.Float64Var(&opts.flags.WeightDir, "weight-dir", defaults.WeightDir, "Weight for creating a subdirectory")
	flags.Float64Var(&opts.flags.WeightFinish, "weight-finish", defaults.WeightFinish, "Weight for finishing current directory")
	flags.IntVar(&opts.flags.MaxDepth, "max-depth", defaults.MaxDepth, "Maximum nesting depth")
	flags.IntVar(&opts.flags.MaxFiles, "max-files", defaults.MaxFiles, "Hard cap on total files")
	flags.IntVar(&opts.flags.MinWords, "min-words", defaults.MinWords, "Minimum words per file")
	flags.IntVar(&opts.flags.MaxWords, "max-words", defaults.MaxWords, "Maximum words per file")
	flags.Float64Var(&opts.flags.MDRatio, "md-ratio", defaults.MDRatio, "Probability a file is .md vs .txt")
	flags.StringVar(&opts.flags.Dictionary, "dictionary", defaults.Dictionary, "Dictionary file path")
	flags.Int64Var(&opts.seed, "seed", 0, "Random seed for reproducibility")
	flags.StringVar(&opts.seedPhrase, "seed-phrase", "", "Phrase hashed into a seed (ignored when --seed is set)")
	flags.StringVarP(&opts.presetPath, "config", "c", "", "YAML preset file")
	flags.StringVarP(&opts.manifestPath, "manifest", "m", "", "Write a JSON manifest of the run to this path")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Print actions to stderr")

	return cmd
}

// resolve layers defaults, the preset and explicitly set flags, then
// validates the result. Nothing touches the output directory before this
// returns successfully.
func (o generateOptions) resolve(cmd *cobra.Command) (tree.Config, error) {
	cfg := tree.DefaultConfig()
	if o.presetPath != "" {
		preset, err := config.Load(o.presetPath)
		if err != nil {
			return cfg, err
		}
		preset.Apply(&cfg)
	}

	flags := cmd.Flags()
	overrides := []struct {
		name  string
		apply func()
	}{
		{"weight-file", func() { cfg.WeightFile = o.flags.WeightFile }},
		{"weight-dir", func() { cfg.WeightDir = o.flags.WeightDir }},
		{"weight-finish", func() { cfg.WeightFinish = o.flags.WeightFinish }},
		{"max-depth", func() { cfg.MaxDepth = o.flags.MaxDepth }},
		{"max-files", func() { cfg.MaxFiles = o.flags.MaxFiles }},
		{"min-words", func() { cfg.MinWords = o.flags.MinWords }},
		{"max-words", func() { cfg.MaxWords = o.flags.MaxWords }},
		{"md-ratio", func() { cfg.MDRatio = o.flags.MDRatio }},
		{"dictionary", func() { cfg.Dictionary = o.flags.Dictionary }},
	}
	for _, ov := range overrides {
		if flags.Changed(ov.name) {
			ov.apply()
		}
	}

	switch {
	case flags.Changed("seed"):
		seed := o.seed
		cfg.Seed = &seed
	case flags.Changed("seed-phrase"):
		seed := int64(util.SeedFromPhrase(o.seedPhrase))
		cfg.Seed = &seed
	}

	return cfg, cfg.Validate()
}

func runGenerate(cmd *cobra.Command, outputDir string, cfg tree.Config, manifestPath string, verbose bool) error {
	abs, err := filepath.Abs(outputDir)
	if err != nil {
		return fmt.Errorf("failed to resolve output directory: %w", err)
	}

	var logger *log.Logger
	if verbose {
		logger = log.New(cmd.ErrOrStderr(), "", 0)
	}

	vocabulary := words.Load(cfg.Dictionary)

	var seed uint64
	if cfg.Seed != nil {
		seed = uint64(*cfg.Seed)
	} else {
		seed = rand.Uint64()
	}

	if logger != nil {
		logger.Printf("Loaded %d dictionary words.", len(vocabulary))
		if cfg.Seed == nil {
			logger.Printf("Using random seed %d.", int64(seed))
		}
		logger.Printf("Building tree in %s ...", outputDir)
	}

	fs := osfs.New(filepath.Dir(abs))
	root := filepath.Base(abs)

	builder := tree.NewBuilder(fs, root, cfg, util.NewRand(seed), vocabulary)
	builder.Logger = logger

	state, err := builder.Run()
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.ErrOrStderr(), state.Summary(outputDir))

	if manifestPath == "" {
		return nil
	}
	inv, err := tree.Scan(fs, root)
	if err != nil {
		return err
	}
	if err := tree.NewManifest(cfg, seed, state, inv).Save(manifestPath); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	if logger != nil {
		logger.Printf("Wrote manifest %s", manifestPath)
	}
	return nil
}

// pathsOverlap reports whether either path is equal to or nested inside the
// other.
func pathsOverlap(path1, path2 string) bool {
	abs1, err1 := filepath.Abs(path1)
	abs2, err2 := filepath.Abs(path2)
	if err1 != nil || err2 != nil {
		return filepath.Clean(path1) == filepath.Clean(path2)
	}
	if abs1 == abs2 {
		return true
	}
	sep := string(filepath.Separator)
	return strings.HasPrefix(abs1, abs2+sep) || strings.HasPrefix(abs2, abs1+sep)
}
