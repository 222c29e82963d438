package diff

// ViewMode represents the diff display mode.
type ViewMode int

const (
	// ViewUnified shows changes in a single column with +/- markers.
	ViewUnified ViewMode = iota
	// ViewSplit shows old and new versions in parallel columns.
	ViewSplit
)

// String returns a human-readable name for the view mode.
func (m ViewMode) String() string {
	switch m {
	case ViewUnified:
		return "unified"
	case ViewSplit:
		return "split"
	default:
		return "unknown"
	}
}

// Minimum terminal widths for split view.
const (
	// SplitWidthTUI is the split-view width threshold for interactive
	// terminal rendering.
	SplitWidthTUI = 100
	// SplitWidthStatic is the split-view width threshold for static
	// (non-interactive) rendering.
	SplitWidthStatic = 150
)

// SelectViewMode chooses split or unified rendering for a hunk. Split is
// selected only when the available width reaches widthThreshold and the
// hunk has both additions and removals; pure-addition or pure-removal
// hunks always render unified since there is nothing to align
// side-by-side.
func SelectViewMode(h Hunk, width, widthThreshold int) ViewMode {
	added, removed := h.Stats()
	if added == 0 || removed == 0 {
		return ViewUnified
	}
	if width < widthThreshold {
		return ViewUnified
	}
	return ViewSplit
}
