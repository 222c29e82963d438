package diff

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		lines    []string
		expected []Line
	}{
		{
			name:     "empty hunk",
			lines:    nil,
			expected: []Line{},
		},
		{
			name:  "mixed kinds",
			lines: []string{" context", "-removed", "+added"},
			expected: []Line{
				{Content: "context", Kind: KindContext, Index: 0},
				{Content: "removed", Kind: KindRemove, Index: 1},
				{Content: "added", Kind: KindAdd, Index: 2},
			},
		},
		{
			name:  "blank context line",
			lines: []string{" "},
			expected: []Line{
				{Content: "", Kind: KindContext, Index: 0},
			},
		},
		{
			name:  "prefix only stripped once",
			lines: []string{"++x"},
			expected: []Line{
				{Content: "+x", Kind: KindAdd, Index: 0},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines, err := Classify(Hunk{Lines: tt.lines})
			require.NoError(t, err)
			require.Equal(t, tt.expected, lines)
		})
	}
}

func TestClassify_MalformedLine(t *testing.T) {
	tests := []struct {
		name      string
		lines     []string
		wantIndex int
	}{
		{
			name:      "empty line",
			lines:     []string{" ok", ""},
			wantIndex: 1,
		},
		{
			name:      "unknown prefix",
			lines:     []string{"?what"},
			wantIndex: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Classify(Hunk{Lines: tt.lines})
			require.Error(t, err)

			var malformed MalformedLineError
			require.ErrorAs(t, err, &malformed)
			require.Equal(t, tt.wantIndex, malformed.Index)
		})
	}
}

func TestHunkHeader(t *testing.T) {
	h := Hunk{OldStart: 10, OldLines: 6, NewStart: 10, NewLines: 7}
	require.Equal(t, "@@ -10,6 +10,7 @@", h.Header())

	h.Section = "func example() {"
	require.Equal(t, "@@ -10,6 +10,7 @@ func example() {", h.Header())
}

func TestHunkStats(t *testing.T) {
	h := Hunk{Lines: []string{" ctx", "-a", "-b", "+c", " ctx"}}
	added, removed := h.Stats()
	require.Equal(t, 1, added)
	require.Equal(t, 2, removed)
}

func TestFilePath(t *testing.T) {
	tests := []struct {
		name     string
		file     File
		expected string
	}{
		{
			name:     "prefers new path",
			file:     File{OldPath: "old.go", NewPath: "new.go"},
			expected: "new.go",
		},
		{
			name:     "deleted file falls back to old path",
			file:     File{OldPath: "gone.go", NewPath: "/dev/null"},
			expected: "gone.go",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.file.Path())
		})
	}
}

func TestLineKindPrefix(t *testing.T) {
	require.Equal(t, " ", KindContext.Prefix())
	require.Equal(t, "+", KindAdd.Prefix())
	require.Equal(t, "-", KindRemove.Prefix())
}
