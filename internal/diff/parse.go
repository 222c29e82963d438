package diff

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	diffHeaderRegex      = regexp.MustCompile(`^diff --git a/(.+) b/(.+)$`)
	hunkHeaderRegex      = regexp.MustCompile(`^@@ -(\d+)(?:,(\d+))? \+(\d+)(?:,(\d+))? @@(.*)$`)
	oldFileRegex         = regexp.MustCompile(`^--- a/(.+)$`)
	newFileRegex         = regexp.MustCompile(`^\+\+\+ b/(.+)$`)
	oldFileNullRegex     = regexp.MustCompile(`^--- /dev/null$`)
	newFileNullRegex     = regexp.MustCompile(`^\+\+\+ /dev/null$`)
	similarityRegex      = regexp.MustCompile(`^similarity index (\d+)%$`)
	renameFromRegex      = regexp.MustCompile(`^rename from (.+)$`)
	renameToRegex        = regexp.MustCompile(`^rename to (.+)$`)
	binaryFilesRegex     = regexp.MustCompile(`^Binary files .+ and .+ differ$`)
	oldModeRegex         = regexp.MustCompile(`^old mode (\d+)$`)
	newModeRegex         = regexp.MustCompile(`^new mode (\d+)$`)
	indexLineRegex       = regexp.MustCompile(`^index [a-f0-9]+\.\.[a-f0-9]+`)
	newFileModeRegex     = regexp.MustCompile(`^new file mode (\d+)$`)
	deletedFileModeRegex = regexp.MustCompile(`^deleted file mode (\d+)$`)
)

// Parse parses unified diff output into structured File slices.
// It handles standard git diff format including binary files, renames with
// similarity index, new files (--- /dev/null), deleted files
// (+++ /dev/null), and permission changes.
func Parse(output string) ([]File, error) {
	if output == "" {
		return nil, nil
	}

	// git diff output is newline-terminated; drop the final empty split
	// element so it is not mistaken for a stripped blank context line.
	output = strings.TrimSuffix(output, "\n")

	var files []File
	var currentFile *File
	var currentHunk *Hunk

	flushHunk := func() {
		if currentHunk != nil && currentFile != nil {
			currentFile.Hunks = append(currentFile.Hunks, *currentHunk)
		}
		currentHunk = nil
	}

	for _, line := range strings.Split(output, "\n") {
		if matches := diffHeaderRegex.FindStringSubmatch(line); matches != nil {
			flushHunk()
			if currentFile != nil {
				files = append(files, *currentFile)
			}
			currentFile = &File{
				OldPath: matches[1],
				NewPath: matches[2],
			}
			continue
		}

		if currentFile == nil {
			continue
		}

		if oldFileNullRegex.MatchString(line) {
			currentFile.IsNew = true
			currentFile.OldPath = "/dev/null"
			continue
		}
		if matches := oldFileRegex.FindStringSubmatch(line); matches != nil {
			currentFile.OldPath = matches[1]
			continue
		}

		if newFileNullRegex.MatchString(line) {
			currentFile.IsDeleted = true
			currentFile.NewPath = "/dev/null"
			continue
		}
		if matches := newFileRegex.FindStringSubmatch(line); matches != nil {
			currentFile.NewPath = matches[1]
			continue
		}

		if matches := similarityRegex.FindStringSubmatch(line); matches != nil {
			if similarity, err := strconv.Atoi(matches[1]); err == nil {
				currentFile.Similarity = similarity
				currentFile.IsRenamed = true
			}
			continue
		}

		if matches := renameFromRegex.FindStringSubmatch(line); matches != nil {
			currentFile.OldPath = matches[1]
			currentFile.IsRenamed = true
			continue
		}
		if matches := renameToRegex.FindStringSubmatch(line); matches != nil {
			currentFile.NewPath = matches[1]
			currentFile.IsRenamed = true
			continue
		}

		if binaryFilesRegex.MatchString(line) {
			currentFile.IsBinary = true
			continue
		}
		if newFileModeRegex.MatchString(line) {
			currentFile.IsNew = true
			continue
		}
		if deletedFileModeRegex.MatchString(line) {
			currentFile.IsDeleted = true
			continue
		}

		// Mode changes and index lines are not needed for display.
		if oldModeRegex.MatchString(line) || newModeRegex.MatchString(line) || indexLineRegex.MatchString(line) {
			continue
		}

		if matches := hunkHeaderRegex.FindStringSubmatch(line); matches != nil {
			flushHunk()

			oldStart, err := strconv.Atoi(matches[1])
			if err != nil {
				return nil, fmt.Errorf("invalid old start line in hunk header: %s", line)
			}
			oldCount := 1
			if matches[2] != "" {
				if oldCount, err = strconv.Atoi(matches[2]); err != nil {
					return nil, fmt.Errorf("invalid old count in hunk header: %s", line)
				}
			}
			newStart, err := strconv.Atoi(matches[3])
			if err != nil {
				return nil, fmt.Errorf("invalid new start line in hunk header: %s", line)
			}
			newCount := 1
			if matches[4] != "" {
				if newCount, err = strconv.Atoi(matches[4]); err != nil {
					return nil, fmt.Errorf("invalid new count in hunk header: %s", line)
				}
			}

			currentHunk = &Hunk{
				OldStart: oldStart,
				OldLines: oldCount,
				NewStart: newStart,
				NewLines: newCount,
				Section:  strings.TrimSpace(matches[5]),
			}
			continue
		}

		if currentHunk == nil {
			continue
		}

		if line == "" {
			// Some diff producers strip the trailing space from blank
			// context lines. Normalize so Classify sees a prefix.
			currentHunk.Lines = append(currentHunk.Lines, " ")
			continue
		}

		switch line[0] {
		case ' ':
			currentHunk.Lines = append(currentHunk.Lines, line)
		case '-':
			currentHunk.Lines = append(currentHunk.Lines, line)
			currentFile.Deletions++
		case '+':
			currentHunk.Lines = append(currentHunk.Lines, line)
			currentFile.Additions++
		case '\\':
			// "\ No newline at end of file" - skip but don't error.
			continue
		default:
			// Unknown prefix - could be end of hunk or malformed input.
			continue
		}
	}

	flushHunk()
	if currentFile != nil {
		files = append(files, *currentFile)
	}

	return files, nil
}
