package p4

import "time"

// ChangeEntry represents one atomic Perforce change reconstructed from
// filelog output, together with every file it touched.
type ChangeEntry struct {
	Change  int
	When    *time.Time // nil when the header timestamp failed to parse
	Author  string
	Comment string
	Files   []FileReference
}

// FileReference is one file touched by a change.
type FileReference struct {
	Path     string
	Revision string // per-file revision number, string form
}

// FileCount returns the number of files the change touched.
func (e ChangeEntry) FileCount() int {
	return len(e.Files)
}

// RevisionHeader holds the fields parsed from one filelog header line.
// It is transient: it only lives while the parser accumulates the
// entry's comment block.
type RevisionHeader struct {
	Revision int
	Change   int
	When     *time.Time
	Author   string
}

// ReadOptions configures the changelog reader.
type ReadOptions struct {
	DepotPath string
	P4Bin     string // p4 executable, defaults to "p4"
	Since     *time.Time
	Until     *time.Time
	Include   []string // Glob patterns to include
	Exclude   []string // Glob patterns to exclude
}
