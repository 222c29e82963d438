// Package render paints layout rows into styled terminal lines: gutters,
// syntax token colors, word-diff span backgrounds, and the split-view
// two-column assembly with wrap alignment.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/hunklab/hunkview/internal/diff"
	"github.com/hunklab/hunkview/internal/highlight"
	"github.com/hunklab/hunkview/internal/layout"
	"github.com/hunklab/hunkview/internal/ui/styles"
)

// Span is a run of text with one style.
type Span struct {
	Text  string
	Style lipgloss.Style
}

// StyledText is an abstract styled line: a sequence of spans. String
// resolves it to ANSI output.
type StyledText []Span

func (t StyledText) String() string {
	var b strings.Builder
	for _, span := range t {
		b.WriteString(span.Style.Render(span.Text))
	}
	return b.String()
}

// lineStyle returns the base foreground style for a line kind.
func lineStyle(kind diff.LineKind) lipgloss.Style {
	switch kind {
	case diff.KindAdd:
		return lipgloss.NewStyle().Foreground(styles.DiffAdditionColor)
	case diff.KindRemove:
		return lipgloss.NewStyle().Foreground(styles.DiffDeletionColor)
	default:
		return lipgloss.NewStyle().Foreground(styles.DiffContextColor)
	}
}

// wordStyle returns the changed-span style for a line kind: the line's
// color over a tinted background.
func wordStyle(kind diff.LineKind) lipgloss.Style {
	if kind == diff.KindAdd {
		return lipgloss.NewStyle().
			Foreground(styles.DiffAdditionColor).
			Background(styles.DiffWordAdditionBgColor)
	}
	return lipgloss.NewStyle().
		Foreground(styles.DiffDeletionColor).
		Background(styles.DiffWordDeletionBgColor)
}

// hintStyle maps a tokenizer hint to a syntax color; HintNone falls back
// to the line's base style.
func hintStyle(h highlight.Hint, base lipgloss.Style) lipgloss.Style {
	switch h {
	case highlight.HintKeyword:
		return lipgloss.NewStyle().Foreground(styles.SyntaxKeywordColor)
	case highlight.HintString:
		return lipgloss.NewStyle().Foreground(styles.SyntaxStringColor)
	case highlight.HintComment:
		return lipgloss.NewStyle().Foreground(styles.SyntaxCommentColor)
	case highlight.HintNumber:
		return lipgloss.NewStyle().Foreground(styles.SyntaxNumberColor)
	case highlight.HintFunction:
		return lipgloss.NewStyle().Foreground(styles.SyntaxFunctionColor)
	case highlight.HintType:
		return lipgloss.NewStyle().Foreground(styles.SyntaxTypeColor)
	case highlight.HintOperator:
		return lipgloss.NewStyle().Foreground(styles.SyntaxOperatorColor)
	case highlight.HintLiteral:
		return lipgloss.NewStyle().Foreground(styles.SyntaxLiteralColor)
	default:
		return base
	}
}

// RowText resolves a row's content to styled text. Word-diff segments win
// over syntax tokens: changed spans get the tinted background, unchanged
// spans the line color. Without segments, syntax tokens are colored by
// hint; without tokens the content renders in the line color alone.
func RowText(row layout.Row) StyledText {
	base := lineStyle(row.Kind)

	if row.Segments != nil {
		changed := wordStyle(row.Kind)
		text := make(StyledText, 0, len(row.Segments))
		for _, seg := range row.Segments {
			style := base
			if seg.Kind != diff.SegUnchanged {
				style = changed
			}
			text = append(text, Span{Text: seg.Text, Style: style})
		}
		return text
	}

	if row.Tokens != nil {
		text := make(StyledText, 0, len(row.Tokens))
		for _, tok := range row.Tokens {
			text = append(text, Span{Text: tok.Text, Style: hintStyle(tok.Hint, base)})
		}
		return text
	}

	if row.Content == "" {
		return nil
	}
	return StyledText{{Text: row.Content, Style: base}}
}

// gutter formats a line number right-aligned in width digits, or blank
// padding when n is 0.
func gutter(n, width int) string {
	if n <= 0 {
		return strings.Repeat(" ", width)
	}
	return fmt.Sprintf("%*d", width, n)
}

// HunkHeader renders the @@ header line truncated to width.
func HunkHeader(h diff.Hunk, width int) string {
	style := lipgloss.NewStyle().Foreground(styles.DiffHunkColor)
	header := h.Header()
	if ansi.StringWidth(header) > width {
		header = ansi.Truncate(header, width, "...")
	}
	return style.Render(header)
}

// Unified renders a hunk's unified layout into one terminal line per row.
// The gutter shows the new line number, falling back to the old one for
// removals. Content wider than the available width is truncated.
func Unified(u layout.Unified, width int) []string {
	gutterStyle := lipgloss.NewStyle().Foreground(styles.TextMutedColor)
	contentWidth := max(width-u.NumberWidth-3, 1) // "N │ "

	lines := make([]string, 0, len(u.Rows))
	for _, row := range u.Rows {
		num := row.NewNumber
		if num == 0 {
			num = row.OldNumber
		}

		content := lineStyle(row.Kind).Render(row.Kind.Prefix()) + RowText(row).String()
		if ansi.StringWidth(content) > contentWidth {
			content = ansi.Truncate(content, contentWidth, "")
		}

		lines = append(lines, gutterStyle.Render(gutter(num, u.NumberWidth)+" │ ")+content)
	}
	return lines
}
