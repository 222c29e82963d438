// Package diff implements the hunk alignment engine: classifying raw diff
// lines, pairing removals with additions, scoring line similarity,
// word-level diffing, sub-hunk extraction, and view mode selection.
package diff

import "fmt"

// LineKind classifies a hunk line by its one-character prefix.
type LineKind int

const (
	KindContext LineKind = iota // ' ' prefix - unchanged line
	KindAdd                     // '+' prefix - added line
	KindRemove                  // '-' prefix - removed line
)

// String returns a human-readable name for the line kind.
func (k LineKind) String() string {
	switch k {
	case KindContext:
		return "context"
	case KindAdd:
		return "add"
	case KindRemove:
		return "remove"
	default:
		return "unknown"
	}
}

// Hunk represents a contiguous block of changes in a unified diff.
// Lines keep their one-character prefix; Classify strips it.
type Hunk struct {
	OldStart int      // Starting line number in old file
	OldLines int      // Number of old-file lines covered
	NewStart int      // Starting line number in new file
	NewLines int      // Number of new-file lines covered
	Section  string   // Optional section text after the @@ markers
	Lines    []string // Prefixed lines ('+', '-' or ' ' first character)
}

// Header returns the hunk header in unified diff format.
func (h Hunk) Header() string {
	header := fmt.Sprintf("@@ -%d,%d +%d,%d @@", h.OldStart, h.OldLines, h.NewStart, h.NewLines)
	if h.Section != "" {
		header += " " + h.Section
	}
	return header
}

// Stats returns addition and deletion counts for the hunk.
func (h Hunk) Stats() (added, removed int) {
	for _, line := range h.Lines {
		if line == "" {
			continue
		}
		switch line[0] {
		case '+':
			added++
		case '-':
			removed++
		}
	}
	return added, removed
}

// File represents a single file's changes in a diff.
type File struct {
	OldPath    string // Path in old version (or /dev/null for new files)
	NewPath    string // Path in new version (or /dev/null for deleted files)
	Additions  int    // Count of added lines
	Deletions  int    // Count of removed lines
	IsBinary   bool   // True if file is binary
	IsRenamed  bool   // True if file was renamed
	IsNew      bool   // True if new file
	IsDeleted  bool   // True if deleted file
	Similarity int    // Rename similarity percentage (0-100)
	Hunks      []Hunk
}

// Path returns the display path for the file, preferring the new path.
func (f File) Path() string {
	if f.NewPath != "" && f.NewPath != "/dev/null" {
		return f.NewPath
	}
	return f.OldPath
}

// Line is a classified hunk line with its prefix stripped.
// Index is the position in the hunk's Lines slice and serves as the
// stable identity for pairing and token lookup.
type Line struct {
	Content string
	Kind    LineKind
	Index   int
}

// MalformedLineError reports a hunk line without a recognized prefix.
// It indicates an upstream diff parsing bug, not a recoverable condition;
// callers should drop the hunk from display.
type MalformedLineError struct {
	Index int // Position of the offending line in Hunk.Lines
}

func (e MalformedLineError) Error() string {
	return fmt.Sprintf("diff line %d has no prefix character", e.Index)
}

// Classify parses a hunk's raw lines into classified lines. Classification
// is purely positional on the first character with no look-ahead.
func Classify(h Hunk) ([]Line, error) {
	lines := make([]Line, 0, len(h.Lines))
	for i, raw := range h.Lines {
		if raw == "" {
			return nil, MalformedLineError{Index: i}
		}
		var kind LineKind
		switch raw[0] {
		case ' ':
			kind = KindContext
		case '+':
			kind = KindAdd
		case '-':
			kind = KindRemove
		default:
			return nil, MalformedLineError{Index: i}
		}
		lines = append(lines, Line{
			Content: raw[1:],
			Kind:    kind,
			Index:   i,
		})
	}
	return lines, nil
}

// Prefix returns the one-character diff prefix for a line kind.
func (k LineKind) Prefix() string {
	switch k {
	case KindAdd:
		return "+"
	case KindRemove:
		return "-"
	default:
		return " "
	}
}
