package p4

import "sort"

// entryStore owns the changelist-to-entry mapping for one parse session.
// Invariants: at most one entry per changelist number; an entry, once
// present, is only ever extended with more files, never replaced.
type entryStore struct {
	entries map[int]*ChangeEntry
}

func newEntryStore() *entryStore {
	return &entryStore{entries: make(map[int]*ChangeEntry)}
}

// Upsert inserts the candidate entry with its single file, or appends
// the file to the entry already stored under the same changelist
// number. Scalar fields of an existing entry are left untouched
// (first seen wins).
func (s *entryStore) Upsert(candidate ChangeEntry, file FileReference) {
	if existing, ok := s.entries[candidate.Change]; ok {
		existing.Files = append(existing.Files, file)
		return
	}
	candidate.Files = []FileReference{file}
	s.entries[candidate.Change] = &candidate
}

// OrderedSnapshot returns the stored entries sorted by descending
// changelist number, most recent change first.
func (s *entryStore) OrderedSnapshot() []ChangeEntry {
	out := make([]ChangeEntry, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Change > out[j].Change
	})
	return out
}

// Len returns the number of distinct changelists stored.
func (s *entryStore) Len() int {
	return len(s.entries)
}
