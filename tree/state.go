package tree

import "fmt"

// State accumulates counters over a whole run. It is passed by pointer
// through every recursive call.
type State struct {
	FilesCreated    int `json:"files_created"`
	DirsCreated     int `json:"dirs_created"`
	MaxDepthReached int `json:"max_depth_reached"`
	TxtCount        int `json:"txt_count"`
	MDCount         int `json:"md_count"`
}

// Summary renders the end-of-run report for a tree generated in dir.
func (s State) Summary(dir string) string {
	return fmt.Sprintf("Generated tree in %s:\n"+
		"  Files: %d (%d .txt, %d .md)\n"+
		"  Directories: %d\n"+
		"  Max depth reached: %d\n",
		dir, s.FilesCreated, s.TxtCount, s.MDCount, s.DirsCreated, s.MaxDepthReached)
}
