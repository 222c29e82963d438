package viewer

import (
	"github.com/hunklab/hunkview/internal/diff"
	"github.com/hunklab/hunkview/internal/review"
)

// diffLoadedMsg carries the parsed diff after a git invocation.
type diffLoadedMsg struct {
	files []diff.File
}

// diffErrorMsg reports a failed git invocation or parse.
type diffErrorMsg struct {
	err error
}

// reviewLoadedMsg carries a freshly parsed review file.
type reviewLoadedMsg struct {
	review *review.Review
}

// reviewErrorMsg reports a failed review load; the previous review stays
// in effect.
type reviewErrorMsg struct {
	err error
}

// reviewChangedMsg signals that the watched review file was modified.
type reviewChangedMsg struct{}

// contentReadyMsg carries the rendered lines of one content build pass.
// generation identifies the pass; stale results are discarded. anchors are
// the offsets of file headers (or group titles) for section navigation.
type contentReadyMsg struct {
	generation int
	lines      []string
	anchors    []int
}
