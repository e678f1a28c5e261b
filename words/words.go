package words

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// MinLength and MaxLength bound the rune length of an accepted word.
	MinLength = 3
	MaxLength = 12

	// MinDictionarySize is the number of qualifying words a dictionary must
	// provide before it is preferred over the fallback list.
	MinDictionarySize = 50
)

var fallback = []string{
	"apple", "banana", "cherry", "delta", "echo", "falcon", "grape", "harbor",
	"island", "jungle", "kettle", "lantern", "marble", "nectar", "olive",
	"pebble", "quartz", "river", "sunset", "timber", "umbrella", "valley",
	"willow", "yellow", "zephyr", "bridge", "castle", "dolphin", "engine",
	"forest", "garden", "hammer", "ivory", "jasper", "kitten", "lemon",
	"mirror", "nimble", "orange", "parrot", "quiver", "ribbon", "silver",
	"temple", "unique", "violet", "winter", "crystal", "dragon", "feather",
	"gentle", "hollow", "insect", "jigsaw", "kernel", "little", "meadow",
	"narrow", "oyster", "pillow", "rabbit", "saddle", "travel", "useful",
	"velvet", "wander", "anchor", "breeze", "candle", "dimple", "elbow",
	"frozen", "goblet", "humble", "ignite", "jovial", "knobby", "lizard",
	"muffin", "noodle", "paddle", "quaint", "rustic", "simple", "throne",
	"urchin", "vivid", "walnut", "branch", "clover", "dagger", "ember",
	"floral", "gravel", "hidden", "indigo", "jumble", "kindly", "locket",
	"mosaic", "nutmeg", "orchid", "plunge", "riddle", "spiral",
}

// Fallback returns a copy of the built-in word list.
func Fallback() []string {
	return append([]string(nil), fallback...)
}

// Load reads the dictionary at path and returns its qualifying words in file
// order. If the file cannot be read or yields fewer than MinDictionarySize
// words, the fallback list is returned instead.
func Load(path string) []string {
	f, err := os.Open(path)
	if err != nil {
		return Fallback()
	}
	defer f.Close()

	words, err := Filter(f)
	if err != nil || len(words) < MinDictionarySize {
		return Fallback()
	}
	return words
}

// Filter reads r line by line and keeps every trimmed line that Qualifies.
// Lines of any length are accepted; overlong ones simply do not qualify.
func Filter(r io.Reader) ([]string, error) {
	var words []string
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if w := strings.TrimSpace(line); Qualifies(w) {
			words = append(words, w)
		}
		if errors.Is(err, io.EOF) {
			return words, nil
		}
		if err != nil {
			return words, err
		}
	}
}

// Qualifies reports whether w is made only of lowercase letters and is
// between MinLength and MaxLength runes long.
func Qualifies(w string) bool {
	n := utf8.RuneCountInString(w)
	if n < MinLength || n > MaxLength {
		return false
	}
	for _, r := range w {
		if !unicode.IsLetter(r) || !unicode.IsLower(r) {
			return false
		}
	}
	return true
}
