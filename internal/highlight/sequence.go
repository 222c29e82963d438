package highlight

import (
	"context"
	"sync"

	"github.com/hunklab/hunkview/internal/diff"
)

// HunkHighlight holds per-line tokens for a hunk, keyed by original line
// index. Before covers the remove+context sequence (pre-change file),
// After covers the add+context sequence. A context line appears in both
// maps; its tokens may differ when surrounding constructs differ between
// the two files.
type HunkHighlight struct {
	Before map[int][]Token
	After  map[int][]Token
}

// TokensFor returns the tokens to display for a line in the given role.
// Remove lines read the before map, add lines the after map; context lines
// prefer the after map (the post-change file) and fall back to before.
// Returns nil when no tokens are available, which renders as plain text.
func (h HunkHighlight) TokensFor(line diff.Line) []Token {
	switch line.Kind {
	case diff.KindRemove:
		return h.Before[line.Index]
	case diff.KindAdd:
		return h.After[line.Index]
	default:
		if tokens, ok := h.After[line.Index]; ok {
			return tokens
		}
		return h.Before[line.Index]
	}
}

// BeforeTokens returns the before-sequence tokens for a line index, used
// when a context line is painted in the old-file column of a split view.
func (h HunkHighlight) BeforeTokens(index int) []Token {
	return h.Before[index]
}

// Sequences splits classified lines into the two tokenizer sequences: the
// before sequence (removes + context, in original order) and the after
// sequence (adds + context). Each is a different subsequence of the same
// interleaved hunk.
func Sequences(lines []diff.Line) (before, after []diff.Line) {
	for _, line := range lines {
		switch line.Kind {
		case diff.KindRemove:
			before = append(before, line)
		case diff.KindAdd:
			after = append(after, line)
		case diff.KindContext:
			before = append(before, line)
			after = append(after, line)
		}
	}
	return before, after
}

// HighlightHunk tokenizes both sequences of a hunk. The two sequences have
// no data dependency on each other and run concurrently, but within a
// sequence calls are strictly ordered: each line's input state is the
// previous line's output state, and reordering would corrupt highlighting
// for any construct spanning lines.
//
// Cancelling ctx abandons the remaining lines; the partial result must be
// discarded by callers that have since started a newer pass.
func HighlightHunk(ctx context.Context, lines []diff.Line, tok Tokenizer) HunkHighlight {
	result := HunkHighlight{
		Before: make(map[int][]Token),
		After:  make(map[int][]Token),
	}
	before, after := Sequences(lines)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		foldSequence(ctx, before, tok, result.Before)
	}()
	go func() {
		defer wg.Done()
		foldSequence(ctx, after, tok, result.After)
	}()
	wg.Wait()

	return result
}

// foldSequence threads tokenizer state through one sequence in line order.
// A tokenizer error degrades that line to plain text (no map entry) and
// keeps the previous state; it never aborts the sequence.
func foldSequence(ctx context.Context, seq []diff.Line, tok Tokenizer, out map[int][]Token) {
	var state State
	for _, line := range seq {
		select {
		case <-ctx.Done():
			return
		default:
		}

		tokens, next, err := tok.TokenizeLine(line.Content, state)
		if err != nil {
			continue
		}
		out[line.Index] = tokens
		state = next
	}
}
