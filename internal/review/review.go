// Package review loads review group files: YAML documents that group
// hunks (or sub-ranges of hunks) under titled, markdown-described review
// sections, typically authored by an AI reviewer or a teammate.
package review

import (
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/hunklab/hunkview/internal/diff"
	"github.com/hunklab/hunkview/internal/log"
)

// LineRange selects a contiguous sub-range of a hunk's lines, 1-based and
// inclusive on both ends ("cat -n" numbering over the hunk body).
type LineRange struct {
	Start int `yaml:"start"`
	End   int `yaml:"end"`
}

// HunkRef points a group at one hunk of one file, optionally narrowed to a
// line range.
type HunkRef struct {
	File  string     `yaml:"file"`
	Hunk  int        `yaml:"hunk"`
	Lines *LineRange `yaml:"lines,omitempty"`
}

// Group is one titled review section.
type Group struct {
	ID          string    `yaml:"id,omitempty"`
	Title       string    `yaml:"title"`
	Description string    `yaml:"description,omitempty"` // markdown
	Hunks       []HunkRef `yaml:"hunks"`
}

// Review is the root of a review group file.
type Review struct {
	Groups []Group `yaml:"groups"`
}

// Parse decodes a review file and assigns a fresh UUID to any group
// missing an id.
func Parse(data []byte) (*Review, error) {
	var r Review
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parsing review file: %w", err)
	}

	for i := range r.Groups {
		if r.Groups[i].ID == "" {
			r.Groups[i].ID = uuid.NewString()
		}
		for _, ref := range r.Groups[i].Hunks {
			if ref.File == "" {
				return nil, fmt.Errorf("group %q: hunk reference missing file", r.Groups[i].Title)
			}
			if ref.Hunk < 0 {
				return nil, fmt.Errorf("group %q: negative hunk index %d", r.Groups[i].Title, ref.Hunk)
			}
		}
	}

	return &r, nil
}

// Load reads and parses a review file from disk.
func Load(path string) (*Review, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading review file: %w", err)
	}
	return Parse(data)
}

// Resolve finds the referenced hunk among the parsed diff files and, when
// a line range is present, extracts the sub-hunk. The range is converted
// from the file's 1-based inclusive form to the extractor's 0-based form.
// An out-of-bounds range falls back to the full hunk rather than failing
// the group. Returns ok=false when the file or hunk does not exist.
func (ref HunkRef) Resolve(files []diff.File) (diff.Hunk, bool) {
	for _, f := range files {
		if f.Path() != ref.File && f.NewPath != ref.File && f.OldPath != ref.File {
			continue
		}
		if ref.Hunk >= len(f.Hunks) {
			return diff.Hunk{}, false
		}
		h := f.Hunks[ref.Hunk]

		if ref.Lines == nil {
			return h, true
		}

		sub, err := diff.ExtractSubHunk(h, ref.Lines.Start-1, ref.Lines.End-1)
		if err != nil {
			var rangeErr diff.InvalidRangeError
			if errors.As(err, &rangeErr) {
				log.Warn(log.CatReview, "invalid line range, using full hunk",
					"file", ref.File, "hunk", ref.Hunk, "start", ref.Lines.Start, "end", ref.Lines.End)
				return h, true
			}
			return diff.Hunk{}, false
		}
		return sub, true
	}
	return diff.Hunk{}, false
}
