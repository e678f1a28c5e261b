package tree

import (
	"errors"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"

	billy "github.com/go-git/go-billy/v5"
	billyutil "github.com/go-git/go-billy/v5/util"

	"github.com/dendrascience/treegen/content"
	"github.com/dendrascience/treegen/util"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644

	extText     = ".txt"
	extMarkdown = ".md"
)

type action int

const (
	actionFile action = iota
	actionDir
	actionFinish
)

// Builder populates a directory tree. Build one with NewBuilder.
type Builder struct {
	FS      billy.Filesystem
	Root    string
	Config  Config
	Rand    *rand.Rand
	Words   []string
	Content *content.Generator

	// Logger receives one line per created node when non-nil.
	Logger *log.Logger
}

// NewBuilder returns a Builder writing under root on fs. The content
// generator shares rng so a seeded run is fully reproducible.
func NewBuilder(fs billy.Filesystem, root string, cfg Config, rng *rand.Rand, words []string) *Builder {
	return &Builder{
		FS:      fs,
		Root:    root,
		Config:  cfg,
		Rand:    rng,
		Words:   words,
		Content: content.New(rng, words),
	}
}

// Run populates Root from depth 0 and returns the final counters. The root
// itself is not counted as a created directory.
func (b *Builder) Run() (State, error) {
	var state State
	err := b.Populate(b.Root, 0, &state)
	return state, err
}

// Populate ensures path exists and fills it until the global file cap is hit,
// no action is available, or the directory chooses to finish. The first
// choice in a directory is never to finish.
func (b *Builder) Populate(path string, depth int, state *State) error {
	if err := b.FS.MkdirAll(path, dirPerm); err != nil {
		return fmt.Errorf("create directory %s: %w", path, err)
	}
	state.MaxDepthReached = max(state.MaxDepthReached, depth)

	first := true
	for state.FilesCreated < b.Config.MaxFiles {
		actions := []action{actionFile}
		weights := []float64{b.Config.WeightFile}
		if depth < b.Config.MaxDepth {
			actions = append(actions, actionDir)
			weights = append(weights, b.Config.WeightDir)
		}
		if !first {
			actions = append(actions, actionFinish)
			weights = append(weights, b.Config.WeightFinish)
		}
		first = false

		i := util.WeightedIndex(b.Rand, weights)
		if i < 0 {
			return nil
		}

		switch actions[i] {
		case actionFile:
			if err := b.createFile(path, state); err != nil {
				return err
			}
		case actionDir:
			dir, err := ResolveCollision(b.FS, b.FS.Join(path, RandomName(b.Rand, b.Words)))
			if err != nil {
				return err
			}
			state.DirsCreated++
			b.tracef("  DIR  %s/", b.rel(dir))
			if err := b.Populate(dir, depth+1, state); err != nil {
				return err
			}
		case actionFinish:
			return nil
		}
	}
	return nil
}

func (b *Builder) createFile(dir string, state *State) error {
	markdown := b.Rand.Float64() < b.Config.MDRatio
	ext := extText
	if markdown {
		ext = extMarkdown
	}

	path, err := ResolveCollision(b.FS, b.FS.Join(dir, RandomName(b.Rand, b.Words)+ext))
	if err != nil {
		return err
	}

	var body string
	if markdown {
		body = b.Content.Markdown(b.Config.MinWords, b.Config.MaxWords)
	} else {
		body = b.Content.Plaintext(b.Config.MinWords, b.Config.MaxWords)
	}

	if err := billyutil.WriteFile(b.FS, path, []byte(body), filePerm); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	state.FilesCreated++
	if markdown {
		state.MDCount++
	} else {
		state.TxtCount++
	}
	b.tracef("  FILE %s", b.rel(path))
	return nil
}

func (b *Builder) tracef(format string, args ...any) {
	if b.Logger != nil {
		b.Logger.Printf(format, args...)
	}
}

func (b *Builder) rel(path string) string {
	r, err := filepath.Rel(b.Root, path)
	if err != nil {
		return path
	}
	return r
}

// RandomName joins one or two random words with a hyphen.
func RandomName(rng *rand.Rand, words []string) string {
	parts := make([]string, util.IntBetween(rng, 1, 2))
	for i := range parts {
		parts[i] = words[rng.IntN(len(words))]
	}
	return strings.Join(parts, "-")
}

// ResolveCollision returns path if nothing exists there, otherwise the first
// free variant with -2, -3, ... inserted before the extension.
func ResolveCollision(fs billy.Basic, path string) (string, error) {
	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(path, ext)

	candidate := path
	for n := 2; ; n++ {
		_, err := fs.Stat(candidate)
		if errors.Is(err, os.ErrNotExist) {
			return candidate, nil
		}
		if err != nil {
			return "", fmt.Errorf("stat %s: %w", candidate, err)
		}
		candidate = fmt.Sprintf("%s-%d%s", stem, n, ext)
	}
}
