package diff

import (
	"strings"

	"github.com/clipperhouse/uax29/v2/words"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// Word diff gating thresholds.
const (
	// MaxChangedSpan skips word diff when the total removed or added span
	// exceeds this many bytes; large spans mean the lines are unrelated
	// replacements and highlighting them is visual noise.
	MaxChangedSpan = 80
	// MinPairSimilarity skips word diff for line pairs whose similarity
	// ratio falls below this value.
	MinPairSimilarity = 0.5
)

// SegmentKind indicates whether a word segment is unchanged, added, or removed.
type SegmentKind int

const (
	SegUnchanged SegmentKind = iota
	SegAdded
	SegRemoved
)

// Segment is a run of text within a line together with its diff status.
type Segment struct {
	Kind SegmentKind
	Text string
}

// WordDiff holds the word-level segments for a paired remove/add line.
// Concatenating Old (resp. New) segment texts reconstructs the removed
// (resp. added) line byte-exactly.
type WordDiff struct {
	Old []Segment // Segments of the removed line
	New []Segment // Segments of the added line
}

// splitWords segments a line on Unicode word boundaries. Whitespace and
// punctuation become their own tokens, so joining the tokens reproduces
// the input exactly.
func splitWords(line string) []string {
	if line == "" {
		return nil
	}
	var tokens []string
	iter := words.FromString(line)
	for iter.Next() {
		tokens = append(tokens, iter.Value())
	}
	return tokens
}

// ComputeWordDiff computes a word-level diff between a removed and an added
// line. The second return value is false when word diff was skipped: the
// pair is too dissimilar (similarity below MinPairSimilarity) or a changed
// span exceeds MaxChangedSpan. Callers fall back to plain syntax
// highlighting in that case.
func ComputeWordDiff(oldLine, newLine string) (WordDiff, bool) {
	if oldLine == newLine {
		if oldLine == "" {
			return WordDiff{}, true
		}
		seg := Segment{Kind: SegUnchanged, Text: oldLine}
		return WordDiff{Old: []Segment{seg}, New: []Segment{seg}}, true
	}

	if Similarity(oldLine, newLine) < MinPairSimilarity {
		return WordDiff{}, false
	}

	oldTokens := splitWords(oldLine)
	newTokens := splitWords(newLine)

	// Diff at token granularity: join tokens with NUL so the character
	// differ cannot split inside a word.
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(strings.Join(oldTokens, "\x00"), strings.Join(newTokens, "\x00"), false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	var result WordDiff
	removedSpan, addedSpan := 0, 0

	for _, d := range diffs {
		text := strings.ReplaceAll(d.Text, "\x00", "")
		if text == "" {
			continue
		}
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			result.Old = append(result.Old, Segment{Kind: SegUnchanged, Text: text})
			result.New = append(result.New, Segment{Kind: SegUnchanged, Text: text})
		case diffmatchpatch.DiffDelete:
			result.Old = append(result.Old, Segment{Kind: SegRemoved, Text: text})
			removedSpan += len(text)
		case diffmatchpatch.DiffInsert:
			result.New = append(result.New, Segment{Kind: SegAdded, Text: text})
			addedSpan += len(text)
		}
	}

	if removedSpan > MaxChangedSpan || addedSpan > MaxChangedSpan {
		return WordDiff{}, false
	}

	return result, true
}

// PairWordDiffs computes word diffs for every eligible pair in a hunk,
// keyed by line index (both the remove and the add index map to the same
// result). Orphan and context lines never appear in the result.
func PairWordDiffs(lines []Line, pairing Pairing) map[int]WordDiff {
	result := make(map[int]WordDiff)
	byIndex := make(map[int]Line, len(lines))
	for _, line := range lines {
		byIndex[line.Index] = line
	}

	for _, pair := range pairing.Pairs {
		wd, ok := ComputeWordDiff(byIndex[pair.RemoveIndex].Content, byIndex[pair.AddIndex].Content)
		if !ok {
			continue
		}
		result[pair.RemoveIndex] = wd
		result[pair.AddIndex] = wd
	}

	return result
}
