package tree

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"testing"

	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	billyutil "github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dendrascience/treegen/util"
	"github.com/dendrascience/treegen/words"
)

const testRoot = "out"

func build(t *testing.T, fs billy.Filesystem, cfg Config, seed uint64) State {
	t.Helper()
	require.NoError(t, cfg.Validate())
	b := NewBuilder(fs, testRoot, cfg, util.NewRand(seed), words.Fallback())
	state, err := b.Run()
	require.NoError(t, err)
	return state
}

func TestBuilder_StateMatchesDisk(t *testing.T) {
	configs := map[string]func(*Config){
		"defaults":     func(*Config) {},
		"deep":         func(c *Config) { c.MaxDepth = 8; c.WeightDir = 6; c.MaxFiles = 120 },
		"flat":         func(c *Config) { c.MaxDepth = 0 },
		"no finish":    func(c *Config) { c.WeightFinish = 0; c.MaxFiles = 30 },
		"dirs heavy":   func(c *Config) { c.WeightFile = 1; c.WeightDir = 10; c.MaxDepth = 3 },
		"single file":  func(c *Config) { c.MaxFiles = 1 },
		"short bodies": func(c *Config) { c.MinWords = 0; c.MaxWords = 5 },
	}

	for name, modify := range configs {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			modify(&cfg)

			for seed := range uint64(10) {
				fs := memfs.New()
				state := build(t, fs, cfg, seed)

				inv, err := Scan(fs, testRoot)
				require.NoError(t, err)

				assert.LessOrEqual(t, state.FilesCreated, cfg.MaxFiles)
				assert.Equal(t, state.FilesCreated, len(inv.Files))
				assert.Equal(t, state.FilesCreated, state.TxtCount+state.MDCount)
				assert.Equal(t, state.TxtCount, inv.TxtCount)
				assert.Equal(t, state.MDCount, inv.MDCount)
				assert.Equal(t, state.DirsCreated, len(inv.Dirs))
				assert.Equal(t, state.MaxDepthReached, inv.MaxDepth)
				assert.LessOrEqual(t, inv.MaxDepth, cfg.MaxDepth)
			}
		})
	}
}

func TestBuilder_NoFinishHitsCap(t *testing.T) {
	cfg := DefaultConfig()
	cfg.WeightFinish = 0
	cfg.MaxFiles = 25

	state := build(t, memfs.New(), cfg, 3)
	assert.Equal(t, 25, state.FilesCreated)
}

func TestBuilder_EveryDirectoryHoldsAFile(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxFiles = 200
	cfg.WeightFinish = 6

	for seed := range uint64(10) {
		fs := memfs.New()
		build(t, fs, cfg, seed)
		inv, err := Scan(fs, testRoot)
		require.NoError(t, err)

		for _, dir := range inv.Dirs {
			found := false
			for _, f := range inv.Files {
				if strings.HasPrefix(f.Path, dir+"/") {
					found = true
					break
				}
			}
			assert.True(t, found, "seed %d: directory %s has no files beneath it", seed, dir)
		}
	}
}

func TestBuilder_SingleFileAtRoot(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxFiles = 1
	cfg.WeightDir = 0

	fs := memfs.New()
	state := build(t, fs, cfg, 42)
	assert.Equal(t, State{FilesCreated: 1, TxtCount: state.TxtCount, MDCount: state.MDCount}, state)

	entries, err := fs.ReadDir(testRoot)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.False(t, entries[0].IsDir())
}

func TestBuilder_PlaintextOnly(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MDRatio = 0
	cfg.MaxFiles = 10

	fs := memfs.New()
	state := build(t, fs, cfg, 9)
	assert.Zero(t, state.MDCount)

	inv, err := Scan(fs, testRoot)
	require.NoError(t, err)
	for _, f := range inv.Files {
		assert.True(t, strings.HasSuffix(f.Path, ".txt"), "unexpected file %s", f.Path)
	}
}

func TestBuilder_MarkdownOnly(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MDRatio = 1
	cfg.MaxFiles = 10

	state := build(t, memfs.New(), cfg, 9)
	assert.Zero(t, state.TxtCount)
	assert.Equal(t, state.FilesCreated, state.MDCount)
}

func TestBuilder_Deterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxFiles = 80

	scan := func(seed uint64) Inventory {
		fs := memfs.New()
		build(t, fs, cfg, seed)
		inv, err := Scan(fs, testRoot)
		require.NoError(t, err)
		return inv
	}

	first := scan(1234)
	assert.Equal(t, first, scan(1234))
	assert.NotEqual(t, first.Files, scan(4321).Files)
}

func TestBuilder_PopulatesExistingDirectory(t *testing.T) {
	fs := memfs.New()
	require.NoError(t, billyutil.WriteFile(fs, testRoot+"/keep.txt", []byte("keep\n"), 0o644))

	cfg := DefaultConfig()
	cfg.MaxFiles = 5
	state := build(t, fs, cfg, 5)

	data, err := billyutil.ReadFile(fs, testRoot+"/keep.txt")
	require.NoError(t, err)
	assert.Equal(t, "keep\n", string(data))

	inv, err := Scan(fs, testRoot)
	require.NoError(t, err)
	assert.Equal(t, state.FilesCreated+1, len(inv.Files))
}

func TestBuilder_Trace(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxFiles = 15

	var buf bytes.Buffer
	b := NewBuilder(memfs.New(), testRoot, cfg, util.NewRand(77), words.Fallback())
	b.Logger = log.New(&buf, "", 0)
	state, err := b.Run()
	require.NoError(t, err)

	var files, dirs int
	for _, line := range strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n") {
		switch {
		case strings.HasPrefix(line, "  FILE "):
			files++
			assert.NotContains(t, line, testRoot+"/")
		case strings.HasPrefix(line, "  DIR  "):
			dirs++
			assert.True(t, strings.HasSuffix(line, "/"))
		default:
			t.Errorf("unexpected trace line %q", line)
		}
	}
	assert.Equal(t, state.FilesCreated, files)
	assert.Equal(t, state.DirsCreated, dirs)
}

var errInjected = errors.New("injected failure")

type failingWrites struct{ billy.Filesystem }

func (failingWrites) OpenFile(string, int, os.FileMode) (billy.File, error) {
	return nil, errInjected
}

type failingMkdir struct{ billy.Filesystem }

func (failingMkdir) MkdirAll(string, os.FileMode) error {
	return errInjected
}

func TestBuilder_IOErrorsPropagate(t *testing.T) {
	tests := []struct {
		name string
		fs   billy.Filesystem
	}{
		{name: "file write", fs: failingWrites{memfs.New()}},
		{name: "directory creation", fs: failingMkdir{memfs.New()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuilder(tt.fs, testRoot, DefaultConfig(), util.NewRand(1), words.Fallback())
			state, err := b.Run()
			require.ErrorIs(t, err, errInjected)
			assert.Zero(t, state.FilesCreated)
		})
	}
}

func TestResolveCollision(t *testing.T) {
	fs := memfs.New()

	var got []string
	for range 4 {
		p, err := ResolveCollision(fs, "dir/name.txt")
		require.NoError(t, err)
		require.NoError(t, billyutil.WriteFile(fs, p, nil, 0o644))
		got = append(got, p)
	}
	assert.Equal(t, []string{"dir/name.txt", "dir/name-2.txt", "dir/name-3.txt", "dir/name-4.txt"}, got)

	for i := range 3 {
		p, err := ResolveCollision(fs, "dir/sub")
		require.NoError(t, err)
		want := "dir/sub"
		if i > 0 {
			want = fmt.Sprintf("dir/sub-%d", i+1)
		}
		assert.Equal(t, want, p)
		require.NoError(t, fs.MkdirAll(p, 0o755))
	}
}

func TestRandomName(t *testing.T) {
	rng := util.NewRand(3)
	vocab := words.Fallback()
	known := map[string]bool{}
	for _, w := range vocab {
		known[w] = true
	}

	for range 200 {
		parts := strings.Split(RandomName(rng, vocab), "-")
		require.True(t, len(parts) == 1 || len(parts) == 2)
		for _, p := range parts {
			assert.True(t, known[p], "unknown word %q", p)
		}
	}
}
