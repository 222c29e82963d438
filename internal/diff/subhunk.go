package diff

import "fmt"

// InvalidRangeError reports a sub-hunk range that is empty, inverted, or
// out of bounds. Recoverable: callers fall back to the full hunk.
type InvalidRangeError struct {
	Start int
	End   int
	Len   int
}

func (e InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid sub-hunk range [%d,%d] for %d-line hunk", e.Start, e.End, e.Len)
}

// ExtractSubHunk slices a hunk to the 0-based inclusive line range
// [start, end] over its Lines array, producing a new self-consistent hunk.
// OldStart/NewStart are advanced by the number of remove+context
// (resp. add+context) lines preceding the slice, and OldLines/NewLines are
// recounted within it. The result is an independent value with no
// back-reference to its parent.
//
// Review data supplies 1-based line ranges; callers convert to 0-based
// before calling.
func ExtractSubHunk(h Hunk, start, end int) (Hunk, error) {
	if start > end || start < 0 || end >= len(h.Lines) {
		return Hunk{}, InvalidRangeError{Start: start, End: end, Len: len(h.Lines)}
	}

	lines, err := Classify(h)
	if err != nil {
		return Hunk{}, err
	}

	oldOffset, newOffset := 0, 0
	for _, line := range lines[:start] {
		switch line.Kind {
		case KindRemove:
			oldOffset++
		case KindAdd:
			newOffset++
		case KindContext:
			oldOffset++
			newOffset++
		}
	}

	oldCount, newCount := 0, 0
	for _, line := range lines[start : end+1] {
		switch line.Kind {
		case KindRemove:
			oldCount++
		case KindAdd:
			newCount++
		case KindContext:
			oldCount++
			newCount++
		}
	}

	sliced := make([]string, end-start+1)
	copy(sliced, h.Lines[start:end+1])

	return Hunk{
		OldStart: h.OldStart + oldOffset,
		OldLines: oldCount,
		NewStart: h.NewStart + newOffset,
		NewLines: newCount,
		Section:  h.Section,
		Lines:    sliced,
	}, nil
}
