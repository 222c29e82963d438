package viewer

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	cache "github.com/patrickmn/go-cache"

	"github.com/hunklab/hunkview/internal/diff"
	"github.com/hunklab/hunkview/internal/highlight"
	"github.com/hunklab/hunkview/internal/log"
	"github.com/hunklab/hunkview/internal/render"
	"github.com/hunklab/hunkview/internal/review"
	"github.com/hunklab/hunkview/internal/ui/markdown"
	"github.com/hunklab/hunkview/internal/ui/styles"
)

// loadDiff runs git and parses its output off the UI goroutine.
func (m Model) loadDiff() tea.Cmd {
	executor, ref := m.executor, m.ref
	return func() tea.Msg {
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
			return diffErrorMsg{err: err}
		}

		files, err := diff.Parse(output)
		if err != nil {
			return diffErrorMsg{err: fmt.Errorf("parsing diff: %w", err)}
		}
		return diffLoadedMsg{files: files}
	}
}

// waitForReviewChange blocks on the watcher channel and converts its
// signal to a message. Re-issued after each change so the loop continues.
func (m Model) waitForReviewChange() tea.Cmd {
	ch := m.watchCh
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return reviewChangedMsg{}
	}
}

// reloadReview re-reads the review file from disk.
func (m Model) reloadReview() tea.Cmd {
	path := m.reviewPath
	return func() tea.Msg {
		rev, err := review.Load(path)
		if err != nil {
			return reviewErrorMsg{err: err}
		}
		return reviewLoadedMsg{review: rev}
	}
}

// buildContent renders the full document for the current width and mode in
// a background command. Hunk renders are memoized in renderCache; a cache
// is only consulted for full hunks since sub-hunk keys depend on the
// review file contents.
func (m Model) buildContent(ctx context.Context, generation int) tea.Cmd {
	files := m.files
	rev := m.review
	width := m.width
	threshold := m.splitThreshold()
	mdStyle := m.cfg.UI.MarkdownStyle
	rc := m.renderCache

	return func() tea.Msg {
		b := builder{
			ctx:       ctx,
			width:     width,
			threshold: threshold,
			cache:     rc,
		}

		var lines []string
		if rev != nil && len(rev.Groups) > 0 {
			lines = b.buildGrouped(files, rev, mdStyle)
		} else {
			lines = b.buildAll(files)
		}

		if ctx.Err() != nil {
			return nil // superseded, discard silently
		}
		return contentReadyMsg{generation: generation, lines: lines, anchors: b.anchors}
	}
}

// builder accumulates rendered lines for one pass.
type builder struct {
	ctx       context.Context
	width     int
	threshold int
	cache     *cache.Cache
	// anchors records the line offset of each file header or group title
	// for jump navigation.
	anchors []int
}

// buildAll renders every file and hunk in diff order.
func (b *builder) buildAll(files []diff.File) []string {
	var lines []string
	for fi, f := range files {
		if fi > 0 {
			lines = append(lines, "")
		}
		b.anchors = append(b.anchors, len(lines))
		lines = append(lines, render.FileHeader(f, b.width))

		if f.IsBinary {
			lines = append(lines, render.BinaryPlaceholder())
			continue
		}
		for hi, h := range f.Hunks {
			lines = append(lines, b.hunk(f.Path(), hi, h, true)...)
		}
	}
	if len(files) == 0 {
		lines = append(lines, lipgloss.NewStyle().Foreground(styles.TextMutedColor).Render("no changes"))
	}
	return lines
}

// buildGrouped renders the review groups in file order: each group's
// title, its markdown description, then the resolved hunks.
func (b *builder) buildGrouped(files []diff.File, rev *review.Review, mdStyle string) []string {
	titleStyle := lipgloss.NewStyle().Foreground(styles.TextPrimaryColor).Bold(true).Underline(true)
	mutedStyle := lipgloss.NewStyle().Foreground(styles.TextMutedColor)

	md, mdErr := markdown.New(b.width, mdStyle)
	if mdErr != nil {
		log.ErrorErr(log.CatUI, "creating markdown renderer", mdErr)
	}

	var lines []string
	for gi, g := range rev.Groups {
		if gi > 0 {
			lines = append(lines, "")
		}
		b.anchors = append(b.anchors, len(lines))
		lines = append(lines, titleStyle.Render(g.Title))

		if g.Description != "" {
			if md != nil {
				rendered, err := md.Render(g.Description)
				if err != nil {
					log.ErrorErr(log.CatUI, "rendering group description", err)
					lines = append(lines, g.Description)
				} else {
					lines = append(lines, strings.Split(strings.TrimRight(rendered, "\n"), "\n")...)
				}
			} else {
				lines = append(lines, g.Description)
			}
		}

		for _, ref := range g.Hunks {
			h, ok := ref.Resolve(files)
			if !ok {
				lines = append(lines, mutedStyle.Render(
					fmt.Sprintf("(%s hunk %d: not found in diff)", ref.File, ref.Hunk)))
				continue
			}
			lines = append(lines, mutedStyle.Render(ref.File))
			// Sub-hunks bypass the cache: their content depends on the
			// review file, which can change under the same key.
			lines = append(lines, b.hunk(ref.File, ref.Hunk, h, ref.Lines == nil)...)
		}
	}
	return lines
}

// hunk renders one hunk, memoizing full-hunk renders per width and
// threshold.
func (b *builder) hunk(path string, index int, h diff.Hunk, cacheable bool) []string {
	key := fmt.Sprintf("%s|%d|%d|%d|%d", path, index, h.OldStart, b.width, b.threshold)
	if cacheable {
		if cached, ok := b.cache.Get(key); ok {
			return cached.([]string)
		}
	}

	tok := tokenizerFor(path)
	lines, err := render.Hunk(b.ctx, h, tok, b.width, b.threshold)
	if err != nil {
		log.ErrorErr(log.CatUI, "rendering hunk", err, "file", path, "hunk", index)
		return []string{h.Header()}
	}

	if cacheable && b.ctx.Err() == nil {
		b.cache.Set(key, lines, cache.NoExpiration)
	}
	return lines
}

// tokenizerFor picks a syntax tokenizer by filename, falling back to the
// plain tokenizer when no lexer matches.
func tokenizerFor(path string) highlight.Tokenizer {
	if c, ok := highlight.ForFile(path); ok {
		return c
	}
	return highlight.Plain{}
}
