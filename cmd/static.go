package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/hunklab/hunkview/internal/diff"
	"github.com/hunklab/hunkview/internal/git"
	"github.com/hunklab/hunkview/internal/highlight"
	"github.com/hunklab/hunkview/internal/log"
	"github.com/hunklab/hunkview/internal/render"
	"github.com/hunklab/hunkview/internal/review"
	"github.com/hunklab/hunkview/internal/ui/markdown"
)

// fallbackWidth is used when stdout is not a terminal and --width is
// unset (e.g. piping to a file).
const fallbackWidth = 120

// runStatic renders the whole diff once and prints it to stdout. The
// split threshold is the wider static one, since static output has no
// horizontal scrolling to lean on.
func runStatic(executor git.Executor, ref string, rev *review.Review, width int, noColor bool) error {
	if noColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	if width <= 0 {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
			width = w
		} else {
			width = fallbackWidth
		}
	}

	var (
		output string
		err    error
	)
	if ref == "" {
		output, err = executor.WorkingDirDiff()
	} else {
		output, err = executor.Diff(ref)
	}
	if err != nil {
		return err
	}

	files, err := diff.Parse(output)
	if err != nil {
		return fmt.Errorf("parsing diff: %w", err)
	}

	threshold := cfg.UI.StaticWidthThreshold
	ctx := context.Background()

	var lines []string
	if rev != nil && len(rev.Groups) > 0 {
		lines = staticGrouped(ctx, files, rev, width, threshold)
	} else {
		lines = staticAll(ctx, files, width, threshold)
	}

	for _, line := range lines {
		fmt.Println(line)
	}
	return nil
}

func staticAll(ctx context.Context, files []diff.File, width, threshold int) []string {
	var lines []string
	for fi, f := range files {
		if fi > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, render.FileHeader(f, width))
		if f.IsBinary {
			lines = append(lines, render.BinaryPlaceholder())
			continue
		}
		for hi, h := range f.Hunks {
			lines = append(lines, staticHunk(ctx, f.Path(), hi, h, width, threshold)...)
		}
	}
	return lines
}

func staticGrouped(ctx context.Context, files []diff.File, rev *review.Review, width, threshold int) []string {
	md, err := markdown.New(width, cfg.UI.MarkdownStyle)
	if err != nil {
		log.ErrorErr(log.CatUI, "creating markdown renderer", err)
	}

	var lines []string
	for gi, g := range rev.Groups {
		if gi > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, g.Title)

		if g.Description != "" {
			desc := g.Description
			if md != nil {
				if rendered, err := md.Render(g.Description); err == nil {
					desc = strings.TrimRight(rendered, "\n")
				}
			}
			lines = append(lines, strings.Split(desc, "\n")...)
		}

		for _, ref := range g.Hunks {
			h, ok := ref.Resolve(files)
			if !ok {
				lines = append(lines, fmt.Sprintf("(%s hunk %d: not found in diff)", ref.File, ref.Hunk))
				continue
			}
			lines = append(lines, ref.File)
			lines = append(lines, staticHunk(ctx, ref.File, ref.Hunk, h, width, threshold)...)
		}
	}
	return lines
}

func staticHunk(ctx context.Context, path string, index int, h diff.Hunk, width, threshold int) []string {
	var tok highlight.Tokenizer = highlight.Plain{}
	if c, ok := highlight.ForFile(path); ok {
		tok = c
	}

	lines, err := render.Hunk(ctx, h, tok, width, threshold)
	if err != nil {
		log.ErrorErr(log.CatUI, "rendering hunk", err, "file", path, "hunk", index)
		return []string{h.Header()}
	}
	return lines
}
