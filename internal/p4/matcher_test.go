package p4

import (
	"testing"
	"time"
)

func TestMatchHeader(t *testing.T) {
	when := time.Date(2024, 1, 10, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		line         string
		wantMatch    bool
		wantRevision int
		wantChange   int
		wantAuthor   string
		wantWhen     *time.Time
	}{
		{
			name:         "EditHeader",
			line:         "... #3 change 1234 edit on 2024/01/10 10:00:00 by alice@ws",
			wantMatch:    true,
			wantRevision: 3,
			wantChange:   1234,
			wantAuthor:   "alice",
			wantWhen:     &when,
		},
		{
			name:         "AddHeader",
			line:         "... #1 change 42 add on 2024/01/10 10:00:00 by bob@client-01",
			wantMatch:    true,
			wantRevision: 1,
			wantChange:   42,
			wantAuthor:   "bob",
			wantWhen:     &when,
		},
		{
			name:         "MalformedTimestampStillMatches",
			line:         "... #2 change 99 delete on garbage by carol@ws",
			wantMatch:    true,
			wantRevision: 2,
			wantChange:   99,
			wantAuthor:   "carol",
			wantWhen:     nil,
		},
		{name: "MissingHashPrefix", line: "... 3 change 1234 edit on 2024/01/10 10:00:00 by alice@ws"},
		{name: "MissingChangeKeyword", line: "... #3 1234 edit on 2024/01/10 10:00:00 by alice@ws"},
		{name: "MissingAtSuffix", line: "... #3 change 1234 edit on 2024/01/10 10:00:00 by alice"},
		{name: "FileLine", line: "//depot/main/foo.c"},
		{name: "Blank", line: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header, ok := matchHeader(tt.line)
			if ok != tt.wantMatch {
				t.Fatalf("matchHeader(%q) ok = %v, expected %v", tt.line, ok, tt.wantMatch)
			}
			if !tt.wantMatch {
				return
			}
			if header.Revision != tt.wantRevision {
				t.Errorf("Revision = %d, expected %d", header.Revision, tt.wantRevision)
			}
			if header.Change != tt.wantChange {
				t.Errorf("Change = %d, expected %d", header.Change, tt.wantChange)
			}
			if header.Author != tt.wantAuthor {
				t.Errorf("Author = %q, expected %q", header.Author, tt.wantAuthor)
			}
			if tt.wantWhen == nil {
				if header.When != nil {
					t.Errorf("When = %v, expected nil", header.When)
				}
			} else if header.When == nil || !header.When.Equal(*tt.wantWhen) {
				t.Errorf("When = %v, expected %v", header.When, tt.wantWhen)
			}
		})
	}
}

func TestParseTimestamp(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		got := parseTimestamp("2023/12/31 23:59:59")
		want := time.Date(2023, 12, 31, 23, 59, 59, 0, time.UTC)
		if got == nil || !got.Equal(want) {
			t.Fatalf("parseTimestamp(valid) = %v, expected %v", got, want)
		}
	})

	t.Run("Malformed", func(t *testing.T) {
		if got := parseTimestamp("2023-12-31 23:59:59"); got != nil {
			t.Fatalf("parseTimestamp(malformed) = %v, expected nil", got)
		}
	})
}
