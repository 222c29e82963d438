package log

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// The global logger is process-wide and guarded by sync.Once, so all
// behaviors share one initialization.
func TestLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")

	cleanup, err := Init(path)
	require.NoError(t, err)
	defer cleanup()

	read := func() string {
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		return string(data)
	}

	t.Run("writes leveled categorized entries", func(t *testing.T) {
		Info(CatGit, "running diff", "ref", "HEAD~1")

		content := read()
		require.Contains(t, content, "[INFO]")
		require.Contains(t, content, "[git]")
		require.Contains(t, content, "running diff")
		require.Contains(t, content, "ref=HEAD~1")
	})

	t.Run("error with err value", func(t *testing.T) {
		ErrorErr(CatReview, "load failed", os.ErrNotExist, "path", "r.yaml")

		content := read()
		require.Contains(t, content, "[ERROR]")
		require.Contains(t, content, "error=file does not exist")
		require.Contains(t, content, "path=r.yaml")
	})

	t.Run("odd field count is flagged", func(t *testing.T) {
		Warn(CatConfig, "dangling", "orphankey")
		require.Contains(t, read(), "orphankey=<missing>")
	})

	t.Run("min level filters", func(t *testing.T) {
		SetMinLevel(LevelWarn)
		defer SetMinLevel(LevelDebug)

		Debug(CatUI, "filtered-debug-entry")
		require.NotContains(t, read(), "filtered-debug-entry")
	})

	t.Run("disabled logger writes nothing", func(t *testing.T) {
		SetEnabled(false)
		defer SetEnabled(true)

		Info(CatUI, "disabled-entry")
		require.NotContains(t, read(), "disabled-entry")
	})

	t.Run("entries are line separated", func(t *testing.T) {
		Info(CatCache, "first")
		Info(CatCache, "second")

		lines := strings.Split(strings.TrimRight(read(), "\n"), "\n")
		require.GreaterOrEqual(t, len(lines), 2)
		for _, line := range lines {
			require.NotEmpty(t, line)
		}
	})
}

func TestLevelString(t *testing.T) {
	require.Equal(t, "DEBUG", LevelDebug.String())
	require.Equal(t, "INFO", LevelInfo.String())
	require.Equal(t, "WARN", LevelWarn.String())
	require.Equal(t, "ERROR", LevelError.String())
}
