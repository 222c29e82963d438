// Package highlight threads syntax-highlighting tokenizer state across the
// two line sequences of a hunk: the "before" sequence (removes + context,
// the pre-change file) and the "after" sequence (adds + context). Each
// sequence carries its own continuation state so multi-line constructs
// (block comments, raw strings) highlight correctly across context
// boundaries.
package highlight

// Hint classifies a token for color mapping. The rendering layer resolves
// hints to theme colors; HintNone renders as plain text.
type Hint int

const (
	HintNone Hint = iota
	HintKeyword
	HintString
	HintComment
	HintNumber
	HintFunction
	HintType
	HintOperator
	HintLiteral
)

// Token is a run of line text with an optional color hint. Concatenating
// the Text of a line's tokens reconstructs the line exactly.
type Token struct {
	Text string
	Hint Hint
}

// State is the tokenizer's opaque continuation state. A nil State starts a
// fresh sequence.
type State any

// Tokenizer produces styled tokens for one line at a time, carrying
// continuation state between lines of the same sequence. Implementations
// must be safe for concurrent use by independent sequences as long as each
// sequence threads its own State values.
//
// A non-nil error means no tokens are available for the line; callers
// render that line unstyled and reuse the previous state. It must never
// abort the whole hunk.
type Tokenizer interface {
	TokenizeLine(line string, prev State) ([]Token, State, error)
}

// Plain is a Tokenizer that emits the whole line as a single unhinted
// token. Used when no language could be detected or highlighting is
// disabled.
type Plain struct{}

// TokenizeLine implements Tokenizer.
func (Plain) TokenizeLine(line string, prev State) ([]Token, State, error) {
	if line == "" {
		return nil, prev, nil
	}
	return []Token{{Text: line}}, prev, nil
}
