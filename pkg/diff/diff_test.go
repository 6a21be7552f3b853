package diff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinesIdenticalContent(t *testing.T) {
	t.Parallel()

	require.Empty(t, Lines("a\nb\n", "a\nb\n", "light", "dark"))
}

func TestLinesSingleLineChange(t *testing.T) {
	t.Parallel()

	result := Lines("Welcome\nbody\nRetry\n", "Bienvenue\nbody\nRetry\n", "en", "fr")
	want := "--- en\n+++ fr\n@@ -1,3 +1,3 @@\n-Welcome\n+Bienvenue\n body\n Retry\n"
	assert.Equal(t, want, result)

	added, removed := Changed(result)
	assert.Equal(t, 1, added)
	assert.Equal(t, 1, removed)
}

func TestLinesWithoutTrailingNewline(t *testing.T) {
	t.Parallel()

	result := Lines("one\ntwo", "one\ntwo\nthree", "before", "after")
	assert.Contains(t, result, "+three\n")
	assert.Contains(t, result, " one\n")
}

func TestLinesTruncatesLargeDiffs(t *testing.T) {
	t.Parallel()

	var before, after strings.Builder
	for i := range maxDiffLines {
		before.WriteString("a\n")
		if i%2 == 0 {
			after.WriteString("b\n")
		} else {
			after.WriteString("a\n")
		}
	}
	after.WriteString("tail\n")

	result := Lines(before.String(), after.String(), "x", "y")
	assert.True(t, strings.HasSuffix(result, truncateMessage+"\n"))
}
