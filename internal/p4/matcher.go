package p4

import (
	"regexp"
	"strconv"
	"time"
)

// p4TimestampLayout is the fixed timestamp layout in filelog header lines.
const p4TimestampLayout = "2006/01/02 15:04:05"

// headerPattern matches a filelog revision header line, capturing the
// per-file revision number, the changelist number, the timestamp text,
// and the author (everything up to the @client suffix).
var headerPattern = regexp.MustCompile(`^\.\.\. #(\d+) change (\d+) .* on (.*) by (.*)@`)

// matchHeader parses a revision header line into a RevisionHeader.
// It returns false when the line is not a header line.
func matchHeader(line string) (RevisionHeader, bool) {
	m := headerPattern.FindStringSubmatch(line)
	if m == nil {
		return RevisionHeader{}, false
	}

	revision, err := strconv.Atoi(m[1])
	if err != nil {
		return RevisionHeader{}, false
	}
	change, err := strconv.Atoi(m[2])
	if err != nil {
		return RevisionHeader{}, false
	}

	return RevisionHeader{
		Revision: revision,
		Change:   change,
		When:     parseTimestamp(m[3]),
		Author:   m[4],
	}, true
}

// parseTimestamp converts header timestamp text to a time value.
// A malformed timestamp yields nil rather than aborting the parse; the
// date window treats a nil timestamp as inside the window.
func parseTimestamp(s string) *time.Time {
	t, err := time.Parse(p4TimestampLayout, s)
	if err != nil {
		return nil
	}
	return &t
}
