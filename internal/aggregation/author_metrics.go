package aggregation

import (
	"sort"
	"time"

	"github.com/masahata/p4changelog/internal/p4"
)

// AuthorMetrics holds per-author activity aggregated from change entries.
type AuthorMetrics struct {
	Author      string
	ChangeCount int
	FileCount   int
	FirstChange int
	LastChange  int
	LastWhen    *time.Time
}

// CalculateAuthorMetrics aggregates entries by author.
// Results are sorted by descending change count, ties broken by author name.
func CalculateAuthorMetrics(entries []p4.ChangeEntry) []AuthorMetrics {
	byAuthor := make(map[string]*AuthorMetrics)

	for _, e := range entries {
		m, ok := byAuthor[e.Author]
		if !ok {
			m = &AuthorMetrics{
				Author:      e.Author,
				FirstChange: e.Change,
				LastChange:  e.Change,
				LastWhen:    e.When,
			}
			byAuthor[e.Author] = m
		}
		m.ChangeCount++
		m.FileCount += e.FileCount()
		if e.Change < m.FirstChange {
			m.FirstChange = e.Change
		}
		if e.Change > m.LastChange {
			m.LastChange = e.Change
			m.LastWhen = e.When
		}
	}

	results := make([]AuthorMetrics, 0, len(byAuthor))
	for _, m := range byAuthor {
		results = append(results, *m)
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].ChangeCount != results[j].ChangeCount {
			return results[i].ChangeCount > results[j].ChangeCount
		}
		return results[i].Author < results[j].Author
	})

	return results
}
