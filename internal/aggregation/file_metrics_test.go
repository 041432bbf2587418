package aggregation

import (
	"testing"

	"github.com/masahata/p4changelog/internal/p4"
)

func TestCalculateFileMetrics(t *testing.T) {
	entries := []p4.ChangeEntry{
		{Change: 300, Author: "alice", When: whenPtr(2024, 3, 1), Files: []p4.FileReference{
			{Path: "//depot/a.c", Revision: "3"},
			{Path: "//depot/b.c", Revision: "1"},
		}},
		{Change: 100, Author: "bob", When: whenPtr(2024, 1, 1), Files: []p4.FileReference{
			{Path: "//depot/a.c", Revision: "2"},
		}},
	}

	results := CalculateFileMetrics(entries)
	if len(results) != 2 {
		t.Fatalf("files = %d, expected 2", len(results))
	}

	a := results[0]
	if a.Path != "//depot/a.c" {
		t.Fatalf("results[0].Path = %q, expected //depot/a.c", a.Path)
	}
	if a.ChangeCount != 2 {
		t.Errorf("ChangeCount = %d, expected 2", a.ChangeCount)
	}
	if len(a.Changes) != 2 || a.Changes[0] != 300 || a.Changes[1] != 100 {
		t.Errorf("Changes = %v, expected [300 100]", a.Changes)
	}
	if a.LastAuthor != "alice" {
		t.Errorf("LastAuthor = %q, expected alice", a.LastAuthor)
	}
	if a.LastWhen == nil || !a.LastWhen.Equal(*whenPtr(2024, 3, 1)) {
		t.Errorf("LastWhen = %v, expected 2024-03-01", a.LastWhen)
	}

	b := results[1]
	if b.Path != "//depot/b.c" || b.ChangeCount != 1 {
		t.Errorf("results[1] = %#v", b)
	}
}

func TestCalculateFileMetrics_TieBrokenByPath(t *testing.T) {
	entries := []p4.ChangeEntry{
		{Change: 100, Author: "alice", Files: []p4.FileReference{
			{Path: "//depot/z.c", Revision: "1"},
			{Path: "//depot/a.c", Revision: "1"},
		}},
	}

	results := CalculateFileMetrics(entries)
	if results[0].Path != "//depot/a.c" || results[1].Path != "//depot/z.c" {
		t.Fatalf("order = [%q, %q], expected path ascending", results[0].Path, results[1].Path)
	}
}

func TestCalculateFileMetrics_Empty(t *testing.T) {
	if results := CalculateFileMetrics(nil); len(results) != 0 {
		t.Fatalf("results = %d, expected 0", len(results))
	}
}
