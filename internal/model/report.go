package model

// BuildEntry records what happened to one manifest entry.
type BuildEntry struct {
	Name   string
	Kind   EntryKind
	Source Path
	Output Path
	// InputSize is the size of the source in bytes, OutputSize the size of
	// the embedded payload without its NUL terminator.
	InputSize  int
	OutputSize int
	Renamed    int
}

// Ratio returns OutputSize relative to InputSize, or 1 for an empty input.
func (e BuildEntry) Ratio() float64 {
	if e.InputSize == 0 {
		return 1
	}

	return float64(e.OutputSize) / float64(e.InputSize)
}

// BuildReport is the outcome of a batch build, entries in manifest order.
type BuildReport struct {
	Entries    []BuildEntry
	Aggregates []Path
}
