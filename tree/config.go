package tree

import (
	"fmt"
	"math"
)

// DefaultDictionary is the word list consulted when none is configured.
const DefaultDictionary = "/usr/share/dict/words"

// Config is the validated set of generation options.
type Config struct {
	WeightFile   float64 `json:"weight_file"`
	WeightDir    float64 `json:"weight_dir"`
	WeightFinish float64 `json:"weight_finish"`
	MaxDepth     int     `json:"max_depth"`
	MaxFiles     int     `json:"max_files"`
	MinWords     int     `json:"min_words"`
	MaxWords     int     `json:"max_words"`
	MDRatio      float64 `json:"md_ratio"`
	Dictionary   string  `json:"dictionary"`
	// Seed is nil when the run should not be reproducible.
	Seed *int64 `json:"seed,omitempty"`
}

// DefaultConfig returns the stock generation options.
func DefaultConfig() Config {
	return Config{
		WeightFile:   5,
		WeightDir:    3,
		WeightFinish: 3,
		MaxDepth:     4,
		MaxFiles:     50,
		MinWords:     20,
		MaxWords:     200,
		MDRatio:      0.3,
		Dictionary:   DefaultDictionary,
	}
}

// Validate reports the first invalid option. It performs no I/O.
func (c Config) Validate() error {
	weights := []struct {
		name  string
		value float64
	}{
		{"weight-file", c.WeightFile},
		{"weight-dir", c.WeightDir},
		{"weight-finish", c.WeightFinish},
	}
	for _, w := range weights {
		// Negated so NaN is rejected too.
		if !(w.value >= 0) {
			return fmt.Errorf("%w: %s is %v", ErrNegativeWeight, w.name, w.value)
		}
		if math.IsInf(w.value, 1) {
			return fmt.Errorf("%w: %s is %v", ErrInfiniteWeight, w.name, w.value)
		}
	}
	if c.WeightFile+c.WeightDir <= 0 {
		return ErrNoPositiveWeight
	}
	if !(c.MDRatio >= 0 && c.MDRatio <= 1) {
		return fmt.Errorf("%w: got %v", ErrMDRatio, c.MDRatio)
	}
	if c.MinWords < 0 || c.MaxWords < 0 {
		return fmt.Errorf("%w: got %d..%d", ErrNegativeWords, c.MinWords, c.MaxWords)
	}
	if c.MinWords > c.MaxWords {
		return fmt.Errorf("%w: got %d > %d", ErrWordBounds, c.MinWords, c.MaxWords)
	}
	if c.MaxFiles < 1 {
		return fmt.Errorf("%w: got %d", ErrMaxFiles, c.MaxFiles)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("%w: got %d", ErrMaxDepth, c.MaxDepth)
	}
	return nil
}
