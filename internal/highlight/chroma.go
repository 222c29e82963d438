package highlight

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

// Continuation window bounds. The chroma lexer has no per-line resume API,
// so continuation state carries a bounded window of preceding sequence
// text and each line is tokenized in that context.
const (
	maxWindowLines = 64
	maxWindowBytes = 8 << 10
)

// Chroma adapts a chroma lexer to the Tokenizer contract.
type Chroma struct {
	lexer chroma.Lexer
}

// ForFile returns a tokenizer for the given filename, or ok=false when no
// lexer matches (callers should fall back to Plain).
func ForFile(filename string) (*Chroma, bool) {
	lexer := lexers.Match(filename)
	if lexer == nil {
		return nil, false
	}
	return &Chroma{lexer: chroma.Coalesce(lexer)}, true
}

// ForLanguage returns a tokenizer for a language name or alias
// (e.g. "go", "python"), or ok=false when unknown.
func ForLanguage(name string) (*Chroma, bool) {
	lexer := lexers.Get(name)
	if lexer == nil {
		return nil, false
	}
	return &Chroma{lexer: chroma.Coalesce(lexer)}, true
}

// chromaState is the opaque continuation state: the tail of the sequence
// text seen so far.
type chromaState struct {
	window []string
	bytes  int
}

func (s *chromaState) push(line string) *chromaState {
	next := &chromaState{
		window: append(append([]string(nil), s.window...), line),
		bytes:  s.bytes + len(line) + 1,
	}
	for len(next.window) > maxWindowLines || (next.bytes > maxWindowBytes && len(next.window) > 1) {
		next.bytes -= len(next.window[0]) + 1
		next.window = next.window[1:]
	}
	return next
}

// TokenizeLine implements Tokenizer. The line is lexed together with the
// state's preceding-text window and only the tokens covering the final
// line are returned, split at the line boundary where a token straddles
// it.
func (c *Chroma) TokenizeLine(line string, prev State) ([]Token, State, error) {
	st, _ := prev.(*chromaState)
	if st == nil {
		st = &chromaState{}
	}

	source := line
	if len(st.window) > 0 {
		source = strings.Join(st.window, "\n") + "\n" + line
	}

	iter, err := c.lexer.Tokenise(nil, source)
	if err != nil {
		return nil, prev, err
	}

	offset := len(source) - len(line)
	pos := 0
	var tokens []Token

	for _, tok := range iter.Tokens() {
		start, end := pos, pos+len(tok.Value)
		pos = end
		if end <= offset {
			continue
		}
		text := tok.Value
		if start < offset {
			text = text[offset-start:]
		}
		// Chroma appends a newline to the final token when the source
		// lacks one; the engine works on single lines, so strip it.
		text = strings.TrimSuffix(text, "\n")
		if text == "" {
			continue
		}
		tokens = append(tokens, Token{Text: text, Hint: hintFor(tok.Type)})
	}

	return tokens, st.push(line), nil
}

// hintFor maps a chroma token type to a rendering hint.
func hintFor(t chroma.TokenType) Hint {
	switch {
	case t.InCategory(chroma.Comment):
		return HintComment
	case t.InSubCategory(chroma.LiteralString):
		return HintString
	case t.InSubCategory(chroma.LiteralNumber):
		return HintNumber
	case t == chroma.NameClass || t == chroma.KeywordType:
		return HintType
	case t.InCategory(chroma.Keyword):
		return HintKeyword
	case t == chroma.NameFunction || t == chroma.NameBuiltin:
		return HintFunction
	case t.InCategory(chroma.Operator):
		return HintOperator
	case t.InCategory(chroma.Literal):
		return HintLiteral
	default:
		return HintNone
	}
}
