package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/wrap"

	"github.com/hunklab/hunkview/internal/layout"
	"github.com/hunklab/hunkview/internal/ui/styles"
)

const splitSeparator = "│"

// Split renders a hunk's split layout into terminal lines, two columns
// joined by a separator. Content wider than a column wraps, and the
// shorter side of a row is padded with blank continuation rows so the two
// columns always have the same visual height per logical row.
func Split(s layout.Split, width int) []string {
	separatorStyle := lipgloss.NewStyle().Foreground(styles.TextMutedColor)

	sideWidth := (width - 1) / 2
	leftContent := max(sideWidth-s.OldNumberWidth-1, 1)
	rightContent := max(sideWidth-s.NewNumberWidth-1, 1)

	var lines []string
	for _, row := range s.Rows {
		left := cell(row.Left, true, s.OldNumberWidth, leftContent)
		right := cell(row.Right, false, s.NewNumberWidth, rightContent)

		// Pad the shorter side with blank rows so paired rows stay
		// aligned after wrapping.
		for len(left) < len(right) {
			left = append(left, strings.Repeat(" ", s.OldNumberWidth+1+leftContent))
		}
		for len(right) < len(left) {
			right = append(right, strings.Repeat(" ", s.NewNumberWidth+1+rightContent))
		}

		for i := range left {
			lines = append(lines, left[i]+separatorStyle.Render(splitSeparator)+right[i])
		}
	}
	return lines
}

// cell renders one side of a split row as wrapped visual lines of exactly
// numberWidth+1+contentWidth cells each. A nil row is an empty
// placeholder: a single blank line.
func cell(row *layout.Row, old bool, numberWidth, contentWidth int) []string {
	if row == nil {
		return []string{strings.Repeat(" ", numberWidth+1+contentWidth)}
	}

	gutterStyle := lipgloss.NewStyle().Foreground(styles.TextMutedColor)

	num := row.NewNumber
	if old {
		num = row.OldNumber
	}

	content := RowText(*row).String()
	wrapped := strings.Split(wrap.String(content, contentWidth), "\n")

	lines := make([]string, 0, len(wrapped))
	for i, visual := range wrapped {
		g := gutter(num, numberWidth)
		if i > 0 {
			// Continuation rows carry no line number.
			g = strings.Repeat(" ", numberWidth)
		}
		lines = append(lines, gutterStyle.Render(g+" ")+padRight(visual, contentWidth))
	}
	return lines
}

// padRight pads styled text with spaces to the target display width.
func padRight(s string, width int) string {
	if w := ansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
