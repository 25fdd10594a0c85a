package render

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func numberedPatch(n int) string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %d", i+1)
	}
	return strings.Join(lines, "\n")
}

func TestTruncatePatch(t *testing.T) {
	t.Run("head and tail window", func(t *testing.T) {
		out, truncated := TruncatePatch(numberedPatch(100), 10)
		require.True(t, truncated)

		lines := strings.Split(out, "\n")
		require.Len(t, lines, 11) // 5 head + marker + 5 tail

		assert.Equal(t, "line 1", lines[0])
		assert.Equal(t, "line 5", lines[4])
		assert.Equal(t, "... 90 lines omitted ...", lines[5])
		assert.Equal(t, "line 96", lines[6])
		assert.Equal(t, "line 100", lines[10])
	})

	t.Run("zero budget means unlimited", func(t *testing.T) {
		patch := numberedPatch(100000)
		out, truncated := TruncatePatch(patch, 0)
		assert.False(t, truncated)
		assert.Equal(t, patch, out)
	})

	t.Run("negative budget means unlimited", func(t *testing.T) {
		// Flag values reach here unvalidated, so a negative budget must be
		// handled, not panic.
		patch := numberedPatch(3)
		for _, budget := range []int{-1, -2, -100} {
			out, truncated := TruncatePatch(patch, budget)
			assert.False(t, truncated)
			assert.Equal(t, patch, out)
		}
	})

	t.Run("patch within budget untouched", func(t *testing.T) {
		patch := numberedPatch(10)
		out, truncated := TruncatePatch(patch, 10)
		assert.False(t, truncated)
		assert.Equal(t, patch, out)
	})

	t.Run("odd budget uses integer halves", func(t *testing.T) {
		out, truncated := TruncatePatch(numberedPatch(20), 7)
		require.True(t, truncated)

		lines := strings.Split(out, "\n")
		require.Len(t, lines, 7) // 3 head + marker + 3 tail
		assert.Equal(t, "line 3", lines[2])
		assert.Equal(t, "... 13 lines omitted ...", lines[3])
		assert.Equal(t, "line 18", lines[4])
	})

	t.Run("empty patch", func(t *testing.T) {
		out, truncated := TruncatePatch("", 10)
		assert.False(t, truncated)
		assert.Empty(t, out)
	})
}

func TestClassifyLine(t *testing.T) {
	tests := []struct {
		line string
		want LineKind
	}{
		{"+added line", LineAddition},
		{"-removed line", LineDeletion},
		{"@@ -1,3 +1,4 @@", LineHunk},
		{" context line", LineContext},
		{"plain", LineContext},
		{"", LineContext},
		{"+++ b/file.go", LineAddition},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyLine(tt.line))
		})
	}
}
