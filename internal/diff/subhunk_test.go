package diff

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestExtractSubHunk_FullRangeOfPureAddition(t *testing.T) {
	h := Hunk{
		OldStart: 1,
		OldLines: 0,
		NewStart: 1,
		NewLines: 3,
		Lines:    []string{"+a", "+b", "+c"},
	}

	sub, err := ExtractSubHunk(h, 0, 2)
	require.NoError(t, err)

	// Nothing precedes the slice, so the starts are unchanged.
	require.Equal(t, 1, sub.OldStart)
	require.Equal(t, 1, sub.NewStart)
	require.Equal(t, 0, sub.OldLines)
	require.Equal(t, 3, sub.NewLines)
	require.Equal(t, h.Lines, sub.Lines)
}

func TestExtractSubHunk_AdvancesStarts(t *testing.T) {
	h := Hunk{
		OldStart: 10,
		OldLines: 4,
		NewStart: 20,
		NewLines: 4,
		Section:  "func f() {",
		Lines:    []string{" ctx1", "-old", "+new", " ctx2", "-tail"},
	}

	sub, err := ExtractSubHunk(h, 3, 4)
	require.NoError(t, err)

	// Preceding lines: ctx1 (old+new), old (old), new (new).
	require.Equal(t, 12, sub.OldStart)
	require.Equal(t, 22, sub.NewStart)
	require.Equal(t, 2, sub.OldLines) // ctx2 + tail
	require.Equal(t, 1, sub.NewLines) // ctx2
	require.Equal(t, "func f() {", sub.Section)
	require.Equal(t, []string{" ctx2", "-tail"}, sub.Lines)
}

func TestExtractSubHunk_SingleLine(t *testing.T) {
	h := Hunk{OldStart: 1, NewStart: 1, Lines: []string{"-a", "+b"}}

	sub, err := ExtractSubHunk(h, 1, 1)
	require.NoError(t, err)
	require.Equal(t, []string{"+b"}, sub.Lines)
	require.Equal(t, 0, sub.OldLines)
	require.Equal(t, 1, sub.NewLines)
}

func TestExtractSubHunk_InvalidRanges(t *testing.T) {
	h := Hunk{Lines: []string{" a", "-b", "+c"}}

	tests := []struct {
		name       string
		start, end int
	}{
		{name: "inverted", start: 2, end: 1},
		{name: "negative start", start: -1, end: 1},
		{name: "end past length", start: 0, end: 3},
		{name: "both past length", start: 5, end: 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ExtractSubHunk(h, tt.start, tt.end)
			require.Error(t, err)

			var rangeErr InvalidRangeError
			require.ErrorAs(t, err, &rangeErr)
			require.Equal(t, tt.start, rangeErr.Start)
			require.Equal(t, tt.end, rangeErr.End)
			require.Equal(t, len(h.Lines), rangeErr.Len)
		})
	}
}

func TestExtractSubHunk_IndependentCopy(t *testing.T) {
	h := Hunk{OldStart: 1, NewStart: 1, Lines: []string{" a", "-b"}}

	sub, err := ExtractSubHunk(h, 0, 1)
	require.NoError(t, err)

	sub.Lines[0] = " mutated"
	require.Equal(t, " a", h.Lines[0])
}

func TestExtractSubHunk_Properties(t *testing.T) {
	kindPrefix := []string{" ", "+", "-"}

	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 30).Draw(t, "n")
		raw := make([]string, n)
		for i := range raw {
			raw[i] = kindPrefix[rapid.IntRange(0, 2).Draw(t, "kind")] + "x"
		}
		h := Hunk{OldStart: 1, NewStart: 1, Lines: raw}

		start := rapid.IntRange(0, n-1).Draw(t, "start")
		end := rapid.IntRange(start, n-1).Draw(t, "end")

		sub, err := ExtractSubHunk(h, start, end)
		require.NoError(t, err)

		// The slice is self-consistent: counts match its own lines.
		added, removed := sub.Stats()
		context := len(sub.Lines) - added - removed
		require.Equal(t, removed+context, sub.OldLines)
		require.Equal(t, added+context, sub.NewLines)

		// Full range reproduces the hunk.
		if start == 0 && end == n-1 {
			require.Equal(t, h.OldStart, sub.OldStart)
			require.Equal(t, h.NewStart, sub.NewStart)
			require.Equal(t, h.Lines, sub.Lines)
		}
	})
}
