package tree

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	billy "github.com/go-git/go-billy/v5"
	billyutil "github.com/go-git/go-billy/v5/util"

	"github.com/dendrascience/treegen/util"
)

// FileEntry describes one file found under a tree root.
type FileEntry struct {
	Path   string `json:"path"` // slash-separated, relative to the root
	Size   int64  `json:"size"`
	SHA256 string `json:"sha256"`
}

// Inventory is what Scan found on disk.
type Inventory struct {
	Files    []FileEntry
	Dirs     []string
	TxtCount int
	MDCount  int
	// MaxDepth is the deepest directory level, with the root at 0.
	MaxDepth int
}

// Scan walks root on fs, hashing every file. Entries are sorted by path.
func Scan(fs billy.Filesystem, root string) (Inventory, error) {
	var inv Inventory
	err := billyutil.Walk(fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return fmt.Errorf("failed to get relative path: %w", err)
		}
		rel = filepath.ToSlash(rel)

		if info.IsDir() {
			if rel == "." {
				return nil
			}
			inv.Dirs = append(inv.Dirs, rel)
			inv.MaxDepth = max(inv.MaxDepth, strings.Count(rel, "/")+1)
			return nil
		}

		hash, err := hashFile(fs, path)
		if err != nil {
			return err
		}
		inv.Files = append(inv.Files, FileEntry{Path: rel, Size: info.Size(), SHA256: hash})
		switch filepath.Ext(rel) {
		case extText:
			inv.TxtCount++
		case extMarkdown:
			inv.MDCount++
		}
		return nil
	})
	if err != nil {
		return Inventory{}, fmt.Errorf("error walking path %s: %w", root, err)
	}

	slices.SortFunc(inv.Files, func(a, b FileEntry) int { return strings.Compare(a.Path, b.Path) })
	slices.Sort(inv.Dirs)
	return inv, nil
}

func hashFile(fs billy.Basic, path string) (string, error) {
	f, err := fs.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return util.GetHash(f)
}
