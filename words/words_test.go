package words

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackSize(t *testing.T) {
	got := Fallback()
	assert.Len(t, got, 105)
	for _, w := range got {
		assert.True(t, Qualifies(w), "fallback word %q should qualify", w)
	}

	// Callers get their own copy.
	got[0] = "mutated"
	assert.Equal(t, "apple", Fallback()[0])
}

func TestQualifies(t *testing.T) {
	tests := []struct {
		word string
		want bool
	}{
		{"apple", true},
		{"abc", true},
		{"abcdefghijkl", true},
		{"ab", false},
		{"abcdefghijklm", false},
		{"Apple", false},
		{"don't", false},
		{"abc1", false},
		{"café", true},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, Qualifies(tt.word))
		})
	}
}

func TestFilter(t *testing.T) {
	input := "  apple  \nBanana\nxy\ncherry\n\ndon't\nquartz\n"
	got, err := Filter(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []string{"apple", "cherry", "quartz"}, got)
}

func TestFilter_LongLine(t *testing.T) {
	input := "apple\n" + strings.Repeat("x", 200*1024) + "\ncherry"
	got, err := Filter(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []string{"apple", "cherry"}, got)
}

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()

	var big []string
	for i := 0; i < MinDictionarySize; i++ {
		// "aaa", "aab", ... all lowercase and three letters long.
		big = append(big, string([]byte{'a', 'a' + byte(i/26), 'a' + byte(i%26)}))
	}
	bigDict := filepath.Join(tmpDir, "big")
	require.NoError(t, os.WriteFile(bigDict, []byte(strings.Join(big, "\n")+"\nIgnored\n"), 0o644))

	longLineDict := filepath.Join(tmpDir, "long-line")
	require.NoError(t, os.WriteFile(longLineDict, []byte(strings.Repeat("z", 100*1024)+"\n"+strings.Join(big, "\n")), 0o644))

	smallDict := filepath.Join(tmpDir, "small")
	require.NoError(t, os.WriteFile(smallDict, []byte(strings.Join(big[:MinDictionarySize-1], "\n")), 0o644))

	tests := []struct {
		name string
		path string
		want []string
	}{
		{name: "large dictionary is used", path: bigDict, want: big},
		{name: "overlong line is skipped", path: longLineDict, want: big},
		{name: "small dictionary falls back", path: smallDict, want: Fallback()},
		{name: "missing dictionary falls back", path: filepath.Join(tmpDir, "missing"), want: Fallback()},
		{name: "directory falls back", path: tmpDir, want: Fallback()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Load(tt.path))
		})
	}
}
