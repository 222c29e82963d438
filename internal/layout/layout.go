// Package layout assembles hunks into renderable row lists: a flat list
// for unified view or paired left/right rows for split view, with running
// old/new line numbers and per-column number widths.
package layout

import (
	"strconv"

	"github.com/hunklab/hunkview/internal/diff"
	"github.com/hunklab/hunkview/internal/highlight"
)

// Row is one displayable line of a hunk. OldNumber/NewNumber are 1-based
// file line numbers; 0 means the side does not apply (no old number for an
// add, no new number for a remove). Tokens and Segments are optional:
// nil Tokens renders Content plain, nil Segments means no word-diff.
type Row struct {
	Kind       diff.LineKind
	Index      int // position in the hunk's original line array
	OldNumber  int
	NewNumber  int
	Content    string
	Tokens     []highlight.Token
	Segments   []diff.Segment
	PairedWith int // counterpart line index, -1 when unpaired
}

// Unified is the single-column row list for a hunk.
type Unified struct {
	Rows []Row
	// NumberWidth is the digit width of the largest old or new line
	// number across the hunk.
	NumberWidth int
}

// SplitRow pairs an old-file row with a new-file row. A nil side is an
// empty placeholder (orphan counterpart).
type SplitRow struct {
	Left  *Row
	Right *Row
}

// Split is the two-column row list for a hunk with per-column number
// widths.
type Split struct {
	Rows           []SplitRow
	OldNumberWidth int
	NewNumberWidth int
}

// Input carries everything derived from one hunk that both layouts
// consume. All fields are rebuilt from scratch per invocation; nothing is
// mutated after construction.
type Input struct {
	Hunk      diff.Hunk
	Lines     []diff.Line
	Highlight highlight.HunkHighlight
	Pairing   diff.Pairing
	WordDiffs map[int]diff.WordDiff
}

// NewInput classifies the hunk, pairs its remove/add runs, and computes
// word diffs for eligible pairs. Highlighting is supplied by the caller
// since the tokenizer is external and may have been cancelled.
func NewInput(h diff.Hunk, hl highlight.HunkHighlight) (Input, error) {
	lines, err := diff.Classify(h)
	if err != nil {
		return Input{}, err
	}
	pairing := diff.FindPairs(lines)
	return Input{
		Hunk:      h,
		Lines:     lines,
		Highlight: hl,
		Pairing:   pairing,
		WordDiffs: diff.PairWordDiffs(lines, pairing),
	}, nil
}

// rows numbers every classified line with running old/new counters seeded
// from the hunk header: removes advance the old counter, adds the new one,
// context both.
func rows(in Input) []Row {
	oldNum := in.Hunk.OldStart
	newNum := in.Hunk.NewStart

	result := make([]Row, 0, len(in.Lines))
	for _, line := range in.Lines {
		row := Row{
			Kind:       line.Kind,
			Index:      line.Index,
			Content:    line.Content,
			Tokens:     in.Highlight.TokensFor(line),
			PairedWith: in.Pairing.Counterpart(line.Index),
		}
		switch line.Kind {
		case diff.KindRemove:
			row.OldNumber = oldNum
			oldNum++
		case diff.KindAdd:
			row.NewNumber = newNum
			newNum++
		case diff.KindContext:
			row.OldNumber = oldNum
			row.NewNumber = newNum
			oldNum++
			newNum++
		}
		if wd, ok := in.WordDiffs[line.Index]; ok {
			if line.Kind == diff.KindRemove {
				row.Segments = wd.Old
			} else {
				row.Segments = wd.New
			}
		}
		result = append(result, row)
	}
	return result
}

// BuildUnified emits one row per classified line in original order.
func BuildUnified(in Input) Unified {
	built := rows(in)

	width := 1
	for _, row := range built {
		width = max(width, digits(row.OldNumber), digits(row.NewNumber))
	}

	return Unified{Rows: built, NumberWidth: width}
}

// BuildSplit walks the numbered rows and consumes paired adds as it goes:
// a paired remove emits {remove, add}, an add already consumed by a prior
// pair is skipped, orphans emit against an empty placeholder, and a
// context line appears on both sides with independent line numbers.
func BuildSplit(in Input) Split {
	built := rows(in)
	byIndex := make(map[int]*Row, len(built))
	for i := range built {
		byIndex[built[i].Index] = &built[i]
	}

	split := Split{OldNumberWidth: 1, NewNumberWidth: 1}
	consumed := make(map[int]bool)

	for i := range built {
		row := &built[i]
		split.OldNumberWidth = max(split.OldNumberWidth, digits(row.OldNumber))
		split.NewNumberWidth = max(split.NewNumberWidth, digits(row.NewNumber))

		switch row.Kind {
		case diff.KindContext:
			// Same content on both sides. The left column belongs to the
			// old file, so it takes the before-sequence tokens.
			left := *row
			left.Tokens = in.Highlight.BeforeTokens(row.Index)
			split.Rows = append(split.Rows, SplitRow{Left: &left, Right: row})

		case diff.KindRemove:
			if row.PairedWith >= 0 {
				counterpart := byIndex[row.PairedWith]
				consumed[row.PairedWith] = true
				split.Rows = append(split.Rows, SplitRow{Left: row, Right: counterpart})
			} else {
				split.Rows = append(split.Rows, SplitRow{Left: row})
			}

		case diff.KindAdd:
			if consumed[row.Index] {
				continue
			}
			split.Rows = append(split.Rows, SplitRow{Right: row})
		}
	}

	return split
}

func digits(n int) int {
	if n <= 0 {
		return 1
	}
	return len(strconv.Itoa(n))
}
