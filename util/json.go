package util

import (
	"encoding/json"
	"os"
)

// WriteJSONFile writes any value as indented JSON to the specified file path.
func WriteJSONFile(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
