package render

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/hunklab/hunkview/internal/diff"
	"github.com/hunklab/hunkview/internal/highlight"
	"github.com/hunklab/hunkview/internal/layout"
	"github.com/hunklab/hunkview/internal/ui/styles"
)

// Stats formats the +N/-N display for a file.
func Stats(additions, deletions int, binary bool) string {
	if binary {
		return lipgloss.NewStyle().Foreground(styles.TextMutedColor).Render("binary")
	}

	addStyle := lipgloss.NewStyle().Foreground(styles.DiffAdditionColor)
	delStyle := lipgloss.NewStyle().Foreground(styles.DiffDeletionColor)

	var parts []string
	if additions > 0 {
		parts = append(parts, addStyle.Render(fmt.Sprintf("+%d", additions)))
	}
	if deletions > 0 {
		parts = append(parts, delStyle.Render(fmt.Sprintf("-%d", deletions)))
	}
	return strings.Join(parts, " ")
}

// FileHeader renders a file's display path with its change stats, showing
// "old → new" for renames.
func FileHeader(f diff.File, width int) string {
	pathStyle := lipgloss.NewStyle().Foreground(styles.TextPrimaryColor).Bold(true)

	path := f.Path()
	if f.IsRenamed && f.OldPath != f.NewPath {
		path = f.OldPath + " → " + f.NewPath
	}

	stats := Stats(f.Additions, f.Deletions, f.IsBinary)
	statsWidth := ansi.StringWidth(stats)

	pathMax := max(width-statsWidth-1, 1)
	if ansi.StringWidth(path) > pathMax {
		path = ansi.Truncate(path, pathMax, "…")
	}

	if stats == "" {
		return pathStyle.Render(path)
	}
	return pathStyle.Render(path) + " " + stats
}

// BinaryPlaceholder is shown instead of hunks for binary files.
func BinaryPlaceholder() string {
	return lipgloss.NewStyle().Foreground(styles.TextMutedColor).Render("binary file - cannot display diff")
}

// Hunk renders one hunk end to end: classify, highlight both sequences,
// choose unified or split by width and change mix, lay out, and paint.
// A cancelled ctx abandons highlighting; the hunk still renders, unstyled.
func Hunk(ctx context.Context, h diff.Hunk, tok highlight.Tokenizer, width, splitThreshold int) ([]string, error) {
	lines, err := diff.Classify(h)
	if err != nil {
		return nil, err
	}

	hl := highlight.HighlightHunk(ctx, lines, tok)
	in, err := layout.NewInput(h, hl)
	if err != nil {
		return nil, err
	}

	out := []string{HunkHeader(h, width)}
	if diff.SelectViewMode(h, width, splitThreshold) == diff.ViewSplit {
		out = append(out, Split(layout.BuildSplit(in), width)...)
	} else {
		out = append(out, Unified(layout.BuildUnified(in), width)...)
	}
	return out, nil
}
