package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dendrascience/treegen/tree"
	"github.com/dendrascience/treegen/util"
)

func TestLoadAndApply(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preset.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
weight_file: 8
weight_dir: 0
max_depth: 2
md_ratio: 0.5
dictionary: /opt/words
seed: 42
`), 0o644))

	f, err := Load(path)
	require.NoError(t, err)

	cfg := tree.DefaultConfig()
	f.Apply(&cfg)

	want := tree.DefaultConfig()
	want.WeightFile = 8
	want.WeightDir = 0
	want.MaxDepth = 2
	want.MDRatio = 0.5
	want.Dictionary = "/opt/words"
	seed := int64(42)
	want.Seed = &seed
	assert.Equal(t, want, cfg)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "empty document", input: ""},
		{name: "comment only", input: "# nothing here\n"},
		{name: "unknown key", input: "max_file: 3\n", wantErr: true},
		{name: "wrong type", input: "max_files: many\n", wantErr: true},
		{name: "seed phrase", input: "seed_phrase: quiet harbor\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestApply_SeedPhrase(t *testing.T) {
	f, err := Parse([]byte("seed_phrase: quiet harbor\n"))
	require.NoError(t, err)

	cfg := tree.DefaultConfig()
	f.Apply(&cfg)
	require.NotNil(t, cfg.Seed)
	assert.Equal(t, int64(util.SeedFromPhrase("quiet harbor")), *cfg.Seed)
}

func TestApply_SeedWinsOverPhrase(t *testing.T) {
	f, err := Parse([]byte("seed: 7\nseed_phrase: quiet harbor\n"))
	require.NoError(t, err)

	cfg := tree.DefaultConfig()
	f.Apply(&cfg)
	require.NotNil(t, cfg.Seed)
	assert.Equal(t, int64(7), *cfg.Seed)
}

func TestApply_EmptyLeavesDefaults(t *testing.T) {
	cfg := tree.DefaultConfig()
	File{}.Apply(&cfg)
	assert.Equal(t, tree.DefaultConfig(), cfg)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSchema(t *testing.T) {
	data, err := Schema()
	require.NoError(t, err)

	var schema map[string]any
	require.NoError(t, json.Unmarshal(data, &schema))
	assert.Equal(t, "treegen preset", schema["title"])
	assert.Equal(t, false, schema["additionalProperties"])

	props, ok := schema["properties"].(map[string]any)
	require.True(t, ok)
	for _, key := range []string{"weight_file", "max_files", "md_ratio", "seed_phrase"} {
		assert.Contains(t, props, key)
	}
	_, hasRequired := schema["required"]
	assert.False(t, hasRequired, "every preset field is optional")
}
