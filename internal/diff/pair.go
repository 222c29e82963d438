package diff

// Pair references a removed line and the added line it was matched with.
// Indices are positions in the hunk's original line array.
type Pair struct {
	RemoveIndex int
	AddIndex    int
}

// Pairing holds the result of scanning a hunk for remove/add pairs.
type Pairing struct {
	Pairs []Pair
	// counterpart maps each paired index to the index on the other side.
	counterpart map[int]int
}

// Counterpart returns the paired index for the given line index, or -1 if
// the line is unpaired.
func (p Pairing) Counterpart(index int) int {
	if other, ok := p.counterpart[index]; ok {
		return other
	}
	return -1
}

// FindPairs scans classified lines left to right, collecting each maximal
// run of consecutive removes and the maximal run of consecutive adds that
// immediately follows, and zips them positionally up to the shorter run's
// length. Leftover lines in an unequal run stay unpaired and render against
// an empty counterpart. Context lines break a run.
//
// A hunk containing only additions or only removals produces no pairs at
// all: word-diff requires both directions present.
func FindPairs(lines []Line) Pairing {
	pairing := Pairing{counterpart: make(map[int]int)}

	hasAdd, hasRemove := false, false
	for _, line := range lines {
		switch line.Kind {
		case KindAdd:
			hasAdd = true
		case KindRemove:
			hasRemove = true
		}
	}
	if !hasAdd || !hasRemove {
		return pairing
	}

	i := 0
	for i < len(lines) {
		if lines[i].Kind != KindRemove {
			i++
			continue
		}

		removes := collectRun(lines, i, KindRemove)
		adds := collectRun(lines, i+len(removes), KindAdd)

		for j := range min(len(removes), len(adds)) {
			pair := Pair{RemoveIndex: removes[j], AddIndex: adds[j]}
			pairing.Pairs = append(pairing.Pairs, pair)
			pairing.counterpart[pair.RemoveIndex] = pair.AddIndex
			pairing.counterpart[pair.AddIndex] = pair.RemoveIndex
		}

		i += len(removes) + len(adds)
	}

	return pairing
}

// collectRun returns the original indices of consecutive lines of the given
// kind starting at position start.
func collectRun(lines []Line, start int, kind LineKind) []int {
	var indices []int
	for i := start; i < len(lines) && lines[i].Kind == kind; i++ {
		indices = append(indices, lines[i].Index)
	}
	return indices
}
