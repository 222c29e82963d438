package git

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseGitError(t *testing.T) {
	base := errors.New("exit status 128")

	tests := []struct {
		name     string
		stderr   string
		expected error
	}{
		{
			name:     "not a repository",
			stderr:   "fatal: not a git repository (or any of the parent directories): .git",
			expected: ErrNotGitRepo,
		},
		{
			name:     "bad revision",
			stderr:   "fatal: bad revision 'nonexistent-branch'",
			expected: ErrBadRevision,
		},
		{
			name:     "unknown revision",
			stderr:   "fatal: ambiguous argument 'x': unknown revision or path not in the working tree.",
			expected: ErrBadRevision,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := parseGitError(tt.stderr, base)
			require.ErrorIs(t, err, tt.expected)
			require.Contains(t, err.Error(), tt.stderr)
		})
	}
}

func TestParseGitError_Unrecognized(t *testing.T) {
	base := errors.New("exit status 1")
	err := parseGitError("fatal: something else entirely", base)

	require.NotErrorIs(t, err, ErrNotGitRepo)
	require.NotErrorIs(t, err, ErrBadRevision)
	require.ErrorIs(t, err, base)
}
