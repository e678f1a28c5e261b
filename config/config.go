// Package config loads generation presets from YAML files.
//
// A preset names any subset of the generate options. Presets are layered
// between the built-in defaults and flags given explicitly on the command
// line:
//
//	weight_file: 8
//	weight_dir: 1
//	max_depth: 2
//	md_ratio: 0.5
//	seed_phrase: quiet harbor
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/invopop/jsonschema"
	"gopkg.in/yaml.v3"

	"github.com/dendrascience/treegen/tree"
	"github.com/dendrascience/treegen/util"
)

// File is the on-disk preset format. Nil fields leave the option untouched.
type File struct {
	WeightFile   *float64 `yaml:"weight_file" json:"weight_file,omitempty" jsonschema:"minimum=0,description=Weight for creating a file"`
	WeightDir    *float64 `yaml:"weight_dir" json:"weight_dir,omitempty" jsonschema:"minimum=0,description=Weight for creating a subdirectory"`
	WeightFinish *float64 `yaml:"weight_finish" json:"weight_finish,omitempty" jsonschema:"minimum=0,description=Weight for finishing the current directory"`
	MaxDepth     *int     `yaml:"max_depth" json:"max_depth,omitempty" jsonschema:"minimum=0,description=Maximum nesting depth"`
	MaxFiles     *int     `yaml:"max_files" json:"max_files,omitempty" jsonschema:"minimum=1,description=Hard cap on total files"`
	MinWords     *int     `yaml:"min_words" json:"min_words,omitempty" jsonschema:"minimum=0,description=Minimum words per file"`
	MaxWords     *int     `yaml:"max_words" json:"max_words,omitempty" jsonschema:"minimum=0,description=Maximum words per file"`
	MDRatio      *float64 `yaml:"md_ratio" json:"md_ratio,omitempty" jsonschema:"minimum=0,maximum=1,description=Probability a file is markdown"`
	Dictionary   *string  `yaml:"dictionary" json:"dictionary,omitempty" jsonschema:"description=Dictionary file path"`
	Seed         *int64   `yaml:"seed" json:"seed,omitempty" jsonschema:"description=Random seed for reproducibility"`
	SeedPhrase   *string  `yaml:"seed_phrase" json:"seed_phrase,omitempty" jsonschema:"description=Phrase hashed into a seed when seed is unset"`
}

// Load reads and strictly decodes the preset at path. Unknown keys are
// rejected so typos do not silently fall back to defaults.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, err
	}
	f, err := Parse(data)
	if err != nil {
		return File{}, fmt.Errorf("failed to parse preset %s: %w", path, err)
	}
	return f, nil
}

// Parse decodes a preset document. An empty document is a valid, empty preset.
func Parse(data []byte) (File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return File{}, err
	}
	return f, nil
}

// Apply overlays every field set in f onto cfg.
func (f File) Apply(cfg *tree.Config) {
	setIf(&cfg.WeightFile, f.WeightFile)
	setIf(&cfg.WeightDir, f.WeightDir)
	setIf(&cfg.WeightFinish, f.WeightFinish)
	setIf(&cfg.MaxDepth, f.MaxDepth)
	setIf(&cfg.MaxFiles, f.MaxFiles)
	setIf(&cfg.MinWords, f.MinWords)
	setIf(&cfg.MaxWords, f.MaxWords)
	setIf(&cfg.MDRatio, f.MDRatio)
	setIf(&cfg.Dictionary, f.Dictionary)

	switch {
	case f.Seed != nil:
		seed := *f.Seed
		cfg.Seed = &seed
	case f.SeedPhrase != nil:
		seed := int64(util.SeedFromPhrase(*f.SeedPhrase))
		cfg.Seed = &seed
	}
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// Schema returns the JSON Schema describing preset files.
func Schema() ([]byte, error) {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	schema := reflector.Reflect(&File{})
	schema.Title = "treegen preset"
	return json.MarshalIndent(schema, "", "  ")
}
