package viewer

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/hunklab/hunkview/internal/config"
	"github.com/hunklab/hunkview/internal/diff"
)

const sampleDiff = `diff --git a/main.go b/main.go
index 1111111..2222222 100644
--- a/main.go
+++ b/main.go
@@ -1,3 +1,3 @@
 package main
-var x = 1
+var x = 2
`

// fakeExecutor serves canned diff output without invoking git.
type fakeExecutor struct {
	output string
	err    error
}

func (f fakeExecutor) IsGitRepo() bool                 { return true }
func (f fakeExecutor) Diff(string) (string, error)     { return f.output, f.err }
func (f fakeExecutor) WorkingDirDiff() (string, error) { return f.output, f.err }

func newTestModel(t *testing.T, exec fakeExecutor) Model {
	t.Helper()
	return New(exec, config.Defaults(), "", nil, "", nil)
}

// drain runs a command synchronously and returns its message.
func drain(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return collapse(cmd())
}

// collapse unwraps batched messages down to the first non-nil leaf.
func collapse(msg tea.Msg) tea.Msg {
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, cmd := range batch {
			if inner := drain(cmd); inner != nil {
				return inner
			}
		}
		return nil
	}
	return msg
}

func TestLoadDiff(t *testing.T) {
	m := newTestModel(t, fakeExecutor{output: sampleDiff})

	msg := drain(m.loadDiff())
	loaded, ok := msg.(diffLoadedMsg)
	require.True(t, ok)
	require.Len(t, loaded.files, 1)
	require.Equal(t, "main.go", loaded.files[0].Path())
}

func TestLoadDiff_GitError(t *testing.T) {
	m := newTestModel(t, fakeExecutor{err: errors.New("bad revision")})

	msg := drain(m.loadDiff())
	failed, ok := msg.(diffErrorMsg)
	require.True(t, ok)
	require.Error(t, failed.err)
}

func TestUpdate_DiffLoadedBuildsContent(t *testing.T) {
	m := newTestModel(t, fakeExecutor{output: sampleDiff})

	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = next.(Model)

	next, cmd := m.Update(drain(m.loadDiff()))
	m = next.(Model)
	require.True(t, m.loading)
	require.NotNil(t, cmd)

	ready, ok := drain(cmd).(contentReadyMsg)
	require.True(t, ok)
	require.Equal(t, m.generation, ready.generation)
	require.NotEmpty(t, ready.lines)

	next, _ = m.Update(ready)
	m = next.(Model)
	require.False(t, m.loading)
	require.Equal(t, ready.lines, m.content)
}

func TestUpdate_StaleContentDiscarded(t *testing.T) {
	m := newTestModel(t, fakeExecutor{output: sampleDiff})

	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = next.(Model)
	next, _ = m.Update(diffLoadedMsg{files: nil})
	m = next.(Model)

	stale := contentReadyMsg{generation: m.generation - 1, lines: []string{"stale"}}
	next, _ = m.Update(stale)
	m = next.(Model)
	require.NotEqual(t, []string{"stale"}, m.content)
}

func TestUpdate_ResizeSupersedesPass(t *testing.T) {
	m := newTestModel(t, fakeExecutor{output: sampleDiff})

	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = next.(Model)
	gen1 := m.generation

	// A resize starts a newer pass; the old generation is now stale.
	next, _ = m.Update(tea.WindowSizeMsg{Width: 120, Height: 24})
	m = next.(Model)
	require.Greater(t, m.generation, gen1)

	next, _ = m.Update(contentReadyMsg{generation: gen1, lines: []string{"old pass"}})
	m = next.(Model)
	require.Empty(t, m.content)
}

func TestUpdate_ViewModeCycles(t *testing.T) {
	m := newTestModel(t, fakeExecutor{output: sampleDiff})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = next.(Model)

	require.Equal(t, modeAuto, m.mode)

	toggle := tea.KeyMsg{Type: tea.KeyTab}
	next, _ = m.Update(toggle)
	m = next.(Model)
	require.Equal(t, modeUnified, m.mode)

	next, _ = m.Update(toggle)
	m = next.(Model)
	require.Equal(t, modeSplit, m.mode)

	next, _ = m.Update(toggle)
	m = next.(Model)
	require.Equal(t, modeAuto, m.mode)
}

func TestSplitThreshold(t *testing.T) {
	m := newTestModel(t, fakeExecutor{})
	m.width = 80

	m.mode = modeAuto
	require.Equal(t, diff.SplitWidthTUI, m.splitThreshold())

	// Forced unified can never be reached by any width.
	m.mode = modeUnified
	require.Greater(t, m.splitThreshold(), m.width)

	// Forced split always passes the width check; the per-hunk change-mix
	// rule still applies downstream.
	m.mode = modeSplit
	require.Equal(t, 0, m.splitThreshold())
}

func TestUpdate_ScrollClamps(t *testing.T) {
	m := newTestModel(t, fakeExecutor{})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 10})
	m = next.(Model)
	m.content = make([]string, 30)

	up := tea.KeyMsg{Type: tea.KeyUp}
	down := tea.KeyMsg{Type: tea.KeyDown}

	next, _ = m.Update(up)
	m = next.(Model)
	require.Equal(t, 0, m.offset)

	for range 100 {
		next, _ = m.Update(down)
		m = next.(Model)
	}
	require.Equal(t, len(m.content)-m.viewportHeight(), m.offset)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyHome})
	m = next.(Model)
	require.Equal(t, 0, m.offset)
}

func TestUpdate_SectionNavigation(t *testing.T) {
	m := newTestModel(t, fakeExecutor{})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 10})
	m = next.(Model)

	next, _ = m.Update(contentReadyMsg{
		generation: m.generation,
		lines:      make([]string, 100),
		anchors:    []int{0, 40, 70},
	})
	m = next.(Model)

	nextKey := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}}
	prevKey := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}}

	next, _ = m.Update(nextKey)
	m = next.(Model)
	require.Equal(t, 40, m.offset)

	next, _ = m.Update(nextKey)
	m = next.(Model)
	require.Equal(t, 70, m.offset)

	// Past the last anchor, stays put.
	next, _ = m.Update(nextKey)
	m = next.(Model)
	require.Equal(t, 70, m.offset)

	next, _ = m.Update(prevKey)
	m = next.(Model)
	require.Equal(t, 40, m.offset)
}

func TestView_ShowsError(t *testing.T) {
	m := newTestModel(t, fakeExecutor{})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 10})
	m = next.(Model)

	next, _ = m.Update(diffErrorMsg{err: errors.New("boom")})
	m = next.(Model)

	require.Contains(t, m.View(), "boom")
}

func TestView_BeforeSizeIsEmpty(t *testing.T) {
	m := newTestModel(t, fakeExecutor{})
	require.Equal(t, "", m.View())
}
