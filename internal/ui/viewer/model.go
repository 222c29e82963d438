// Package viewer implements the interactive diff viewer: a scrolling
// Bubble Tea model that renders parsed hunks (optionally grouped by a
// review file) in unified or split layout.
package viewer

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	cache "github.com/patrickmn/go-cache"

	"github.com/hunklab/hunkview/internal/config"
	"github.com/hunklab/hunkview/internal/diff"
	"github.com/hunklab/hunkview/internal/git"
	"github.com/hunklab/hunkview/internal/log"
	"github.com/hunklab/hunkview/internal/review"
	"github.com/hunklab/hunkview/internal/ui/styles"
)

// View modes cycled by the toggle key. "auto" defers to per-hunk width
// selection.
const (
	modeAuto    = "auto"
	modeUnified = "unified"
	modeSplit   = "split"
)

// Model is the root Bubble Tea model for the diff viewer.
type Model struct {
	executor git.Executor
	cfg      config.Config
	ref      string

	files      []diff.File
	review     *review.Review
	reviewPath string

	// watchCh delivers debounced review-file change signals. Nil when no
	// review file is being watched. The watcher itself is owned by the
	// caller, which stops it when the program exits.
	watchCh <-chan struct{}

	width  int
	height int

	mode   string // modeAuto, modeUnified, modeSplit
	offset int    // first visible content line

	content []string
	// anchors are content offsets of file headers or group titles,
	// ascending; section navigation jumps between them.
	anchors []int
	loading bool
	err     error

	// generation tags each content build pass; results from superseded
	// passes are dropped in Update.
	generation int
	cancel     context.CancelFunc

	renderCache *cache.Cache

	keys KeyMap
}

// New creates a viewer model. ref selects the diff base; empty means the
// working directory against HEAD. rev may be nil when no review file is
// in use.
func New(executor git.Executor, cfg config.Config, ref string, rev *review.Review, reviewPath string, watchCh <-chan struct{}) Model {
	mode := cfg.UI.Mode
	if mode != modeUnified && mode != modeSplit {
		mode = modeAuto
	}
	return Model{
		executor:    executor,
		cfg:         cfg,
		ref:         ref,
		review:      rev,
		reviewPath:  reviewPath,
		watchCh:     watchCh,
		mode:        mode,
		renderCache: cache.New(cache.NoExpiration, 0),
		keys:        DefaultKeyMap(),
	}
}

// Init starts the initial diff load and, when a watch channel is
// configured, begins listening for review file changes.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.loadDiff()}
	if m.watchCh != nil {
		cmds = append(cmds, m.waitForReviewChange())
	}
	return tea.Batch(cmds...)
}

// Update handles messages and key events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if msg.Width == m.width && msg.Height == m.height {
			return m, nil
		}
		m.width = msg.Width
		m.height = msg.Height
		return m.rebuild()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case diffLoadedMsg:
		m.files = msg.files
		m.err = nil
		return m.rebuild()

	case diffErrorMsg:
		m.err = msg.err
		m.loading = false
		return m, nil

	case reviewLoadedMsg:
		m.review = msg.review
		m.renderCache.Flush()
		return m.rebuild()

	case reviewErrorMsg:
		// Keep showing the last good review.
		log.ErrorErr(log.CatReview, "review reload failed", msg.err)
		return m, nil

	case reviewChangedMsg:
		log.Info(log.CatWatcher, "review file changed, reloading")
		return m, tea.Batch(m.reloadReview(), m.waitForReviewChange())

	case contentReadyMsg:
		if msg.generation != m.generation {
			return m, nil // superseded pass
		}
		m.content = msg.lines
		m.anchors = msg.anchors
		m.loading = false
		m.clampOffset()
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.cancel != nil {
			m.cancel()
		}
		return m, tea.Quit

	case key.Matches(msg, m.keys.ScrollUp):
		m.offset--
	case key.Matches(msg, m.keys.ScrollDown):
		m.offset++
	case key.Matches(msg, m.keys.PageUp):
		m.offset -= m.viewportHeight()
	case key.Matches(msg, m.keys.PageDown):
		m.offset += m.viewportHeight()
	case key.Matches(msg, m.keys.GotoTop):
		m.offset = 0
	case key.Matches(msg, m.keys.GotoBottom):
		m.offset = len(m.content)

	case key.Matches(msg, m.keys.NextSection):
		for _, a := range m.anchors {
			if a > m.offset {
				m.offset = a
				break
			}
		}
	case key.Matches(msg, m.keys.PrevSection):
		for i := len(m.anchors) - 1; i >= 0; i-- {
			if m.anchors[i] < m.offset {
				m.offset = m.anchors[i]
				break
			}
		}

	case key.Matches(msg, m.keys.ToggleViewMode):
		switch m.mode {
		case modeAuto:
			m.mode = modeUnified
		case modeUnified:
			m.mode = modeSplit
		default:
			m.mode = modeAuto
		}
		return m.rebuild()

	case key.Matches(msg, m.keys.Reload):
		m.loading = true
		return m, m.loadDiff()
	}

	m.clampOffset()
	return m, nil
}

// rebuild starts a fresh content build pass, cancelling any pass still in
// flight.
func (m Model) rebuild() (tea.Model, tea.Cmd) {
	if m.width == 0 {
		return m, nil
	}
	if m.cancel != nil {
		m.cancel()
	}

	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.generation++
	m.loading = true

	return m, m.buildContent(ctx, m.generation)
}

// splitThreshold maps the current mode to the width threshold handed to
// per-hunk view selection. Forced split uses threshold 0, so one-sided
// hunks still fall back to unified.
func (m Model) splitThreshold() int {
	switch m.mode {
	case modeUnified:
		return m.width + 1
	case modeSplit:
		return 0
	default:
		return m.cfg.UI.SplitWidthThreshold
	}
}

func (m Model) viewportHeight() int {
	return max(m.height-1, 1) // one line reserved for the status bar
}

func (m *Model) clampOffset() {
	maxOffset := max(len(m.content)-m.viewportHeight(), 0)
	m.offset = min(max(m.offset, 0), maxOffset)
}

// View renders the visible window of content plus a status bar.
func (m Model) View() string {
	if m.width == 0 {
		return ""
	}

	var b strings.Builder
	vh := m.viewportHeight()

	switch {
	case m.err != nil:
		errStyle := lipgloss.NewStyle().Foreground(styles.StatusErrorColor)
		b.WriteString(errStyle.Render("error: " + m.err.Error()))
		b.WriteString(strings.Repeat("\n", vh-1))
	case m.loading && len(m.content) == 0:
		b.WriteString(lipgloss.NewStyle().Foreground(styles.TextMutedColor).Render("loading diff…"))
		b.WriteString(strings.Repeat("\n", vh-1))
	default:
		end := min(m.offset+vh, len(m.content))
		for i := m.offset; i < end; i++ {
			b.WriteString(m.content[i])
			b.WriteString("\n")
		}
		for i := end - m.offset; i < vh; i++ {
			b.WriteString("\n")
		}
	}

	b.WriteString(m.statusBar())
	return b.String()
}

func (m Model) statusBar() string {
	muted := lipgloss.NewStyle().Foreground(styles.TextMutedColor)

	source := "working dir"
	if m.ref != "" {
		source = m.ref
	}

	pos := ""
	if len(m.content) > 0 {
		pct := 100
		if maxOffset := len(m.content) - m.viewportHeight(); maxOffset > 0 {
			pct = m.offset * 100 / maxOffset
		}
		pos = fmt.Sprintf("%d%%", min(pct, 100))
	}

	left := fmt.Sprintf(" %s · %s", source, m.mode)
	if m.loading {
		left += " · rendering…"
	}
	right := pos + " · tab view · r reload · q quit "

	if avail := m.width - lipgloss.Width(right); lipgloss.Width(left) >= avail {
		left = runewidth.Truncate(left, max(avail-1, 0), "…")
	}
	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return muted.Render(left + strings.Repeat(" ", gap) + right)
}
