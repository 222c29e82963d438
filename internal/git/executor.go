// Package git runs git commands to obtain unified diff output.
package git

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/hunklab/hunkview/internal/log"
)

// Git-specific errors.
var (
	// ErrNotGitRepo indicates the directory is not a git repository.
	ErrNotGitRepo = errors.New("not a git repository")

	// ErrBadRevision indicates an unknown ref was requested.
	ErrBadRevision = errors.New("bad revision")
)

// Executor defines the git operations the viewer needs. The abstraction
// allows tests to substitute canned diff output.
type Executor interface {
	IsGitRepo() bool
	// Diff returns the unified diff against the given ref (e.g. "HEAD~1",
	// "main").
	Diff(ref string) (string, error)
	// WorkingDirDiff returns the diff of uncommitted changes (staged +
	// unstaged vs HEAD).
	WorkingDirDiff() (string, error)
}

// Compile-time check that RealExecutor implements Executor.
var _ Executor = (*RealExecutor)(nil)

// RealExecutor implements Executor by executing actual git commands.
type RealExecutor struct {
	workDir string
}

// NewRealExecutor creates a new RealExecutor rooted at workDir.
func NewRealExecutor(workDir string) *RealExecutor {
	return &RealExecutor{workDir: workDir}
}

// runGitOutput executes a git command and returns stdout and any error.
func (e *RealExecutor) runGitOutput(args ...string) (string, error) {
	//nolint:gosec // G204: args come from controlled sources
	cmd := exec.Command("git", args...)
	if e.workDir != "" {
		cmd.Dir = e.workDir
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	log.Debug(log.CatGit, "running git", "args", strings.Join(args, " "))

	if err := cmd.Run(); err != nil {
		stderrStr := strings.TrimSpace(stderr.String())
		if stderrStr != "" {
			return "", parseGitError(stderrStr, err)
		}
		return "", fmt.Errorf("git %s: %w", strings.Join(args, " "), err)
	}

	return stdout.String(), nil
}

// parseGitError converts git stderr messages to specific error types.
func parseGitError(stderr string, originalErr error) error {
	stderrLower := strings.ToLower(stderr)

	if strings.Contains(stderrLower, "not a git repository") {
		return fmt.Errorf("%w: %s", ErrNotGitRepo, stderr)
	}
	if strings.Contains(stderrLower, "bad revision") ||
		strings.Contains(stderrLower, "unknown revision") {
		return fmt.Errorf("%w: %s", ErrBadRevision, stderr)
	}

	return fmt.Errorf("git error: %s: %w", stderr, originalErr)
}

// IsGitRepo checks if the working directory is inside a git repository.
func (e *RealExecutor) IsGitRepo() bool {
	_, err := e.runGitOutput("rev-parse", "--git-dir")
	return err == nil
}

// Diff returns the unified diff against the given ref.
func (e *RealExecutor) Diff(ref string) (string, error) {
	return e.runGitOutput("diff", ref)
}

// WorkingDirDiff returns the diff of uncommitted changes against HEAD.
func (e *RealExecutor) WorkingDirDiff() (string, error) {
	return e.runGitOutput("diff", "HEAD")
}
