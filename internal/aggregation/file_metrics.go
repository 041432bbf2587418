package aggregation

import (
	"sort"
	"time"

	"github.com/masahata/p4changelog/internal/p4"
)

// FileMetrics holds per-path activity aggregated from change entries.
type FileMetrics struct {
	Path        string
	ChangeCount int
	Changes     []int // changelist numbers touching the path, descending
	LastAuthor  string
	LastWhen    *time.Time
}

// CalculateFileMetrics aggregates entries by file path. Entries are
// expected in descending changelist order, as the parser yields them,
// so the first occurrence of a path carries its most recent change.
// Results are sorted by descending change count, ties broken by path.
func CalculateFileMetrics(entries []p4.ChangeEntry) []FileMetrics {
	byPath := make(map[string]*FileMetrics)

	for _, e := range entries {
		for _, f := range e.Files {
			m, ok := byPath[f.Path]
			if !ok {
				m = &FileMetrics{
					Path:       f.Path,
					LastAuthor: e.Author,
					LastWhen:   e.When,
				}
				byPath[f.Path] = m
			}
			m.ChangeCount++
			m.Changes = append(m.Changes, e.Change)
		}
	}

	results := make([]FileMetrics, 0, len(byPath))
	for _, m := range byPath {
		results = append(results, *m)
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].ChangeCount != results[j].ChangeCount {
			return results[i].ChangeCount > results[j].ChangeCount
		}
		return results[i].Path < results[j].Path
	})

	return results
}
