package tree

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/dendrascience/treegen/util"
)

// ManifestVersion is bumped whenever the manifest layout changes.
const ManifestVersion = 1

// Manifest records a generation run: how it was configured, what the
// builder counted, and what ended up on disk. Files and Dirs cover the whole
// root, including anything that was there before the run.
type Manifest struct {
	Version int         `json:"version"`
	RunID   string      `json:"run_id"`
	Seed    uint64      `json:"seed"`
	Config  Config      `json:"config"`
	State   State       `json:"state"`
	Files   []FileEntry `json:"files"`
	Dirs    []string    `json:"dirs"`
}

// NewManifest assembles a manifest. Seeded runs get a name-based run ID so
// regenerating with the same seed and config reproduces it.
func NewManifest(cfg Config, seed uint64, state State, inv Inventory) Manifest {
	runID := uuid.New()
	if cfg.Seed != nil {
		key, _ := json.Marshal(struct {
			Seed   uint64 `json:"seed"`
			Config Config `json:"config"`
		}{seed, cfg})
		runID = uuid.NewSHA1(uuid.NameSpaceOID, key)
	}
	return Manifest{
		Version: ManifestVersion,
		RunID:   runID.String(),
		Seed:    seed,
		Config:  cfg,
		State:   state,
		Files:   inv.Files,
		Dirs:    inv.Dirs,
	}
}

// Save writes the manifest as JSON to path.
func (m Manifest) Save(path string) error {
	return util.WriteJSONFile(path, m)
}

// ReadManifest loads a manifest written by Save.
func ReadManifest(path string) (Manifest, error) {
	var m Manifest
	data, err := os.ReadFile(path)
	if err != nil {
		return m, err
	}
	if err := json.Unmarshal(data, &m); err != nil {
		return m, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}
	if m.Version != ManifestVersion {
		return m, fmt.Errorf("%w: %d", ErrManifestVersion, m.Version)
	}
	return m, nil
}

// Verify compares the manifest against a fresh inventory and returns one
// message per discrepancy.
func (m Manifest) Verify(inv Inventory) []string {
	var problems []string

	if got := len(inv.Files); got != len(m.Files) {
		problems = append(problems, fmt.Sprintf("File count mismatch: expected %d, got %d", len(m.Files), got))
	}
	if got := len(inv.Dirs); got != len(m.Dirs) {
		problems = append(problems, fmt.Sprintf("Directory count mismatch: expected %d, got %d", len(m.Dirs), got))
	}

	recorded := make(map[string]bool, len(m.Dirs))
	for _, d := range m.Dirs {
		recorded[d] = true
	}
	present := make(map[string]bool, len(inv.Dirs))
	for _, d := range inv.Dirs {
		present[d] = true
		if !recorded[d] {
			problems = append(problems, fmt.Sprintf("Unexpected directory: %s", d))
		}
	}
	for _, d := range m.Dirs {
		if !present[d] {
			problems = append(problems, fmt.Sprintf("Missing directory: %s", d))
		}
	}

	onDisk := make(map[string]FileEntry, len(inv.Files))
	for _, f := range inv.Files {
		onDisk[f.Path] = f
	}
	for _, want := range m.Files {
		got, ok := onDisk[want.Path]
		delete(onDisk, want.Path)
		switch {
		case !ok:
			problems = append(problems, fmt.Sprintf("Missing file: %s", want.Path))
		case got.Size != want.Size:
			problems = append(problems, fmt.Sprintf("Size mismatch for %s: expected %d, got %d", want.Path, want.Size, got.Size))
		case got.SHA256 != want.SHA256:
			problems = append(problems, fmt.Sprintf("Content changed: %s", want.Path))
		}
	}
	for _, f := range inv.Files {
		if _, extra := onDisk[f.Path]; extra {
			problems = append(problems, fmt.Sprintf("Unexpected file: %s", f.Path))
		}
	}

	return problems
}
