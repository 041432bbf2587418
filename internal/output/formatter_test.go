package output

import (
	"testing"
	"time"
)

func TestNewChangelogWriter(t *testing.T) {
	tests := []struct {
		format OutputFormat
		want   string
	}{
		{format: FormatConsole, want: "*output.ConsoleChangelogWriter"},
		{format: FormatJSON, want: "*output.JSONChangelogWriter"},
		{format: FormatCSV, want: "*output.CSVChangelogWriter"},
		{format: FormatMarkdown, want: "*output.MarkdownChangelogWriter"},
		{format: OutputFormat("bogus"), want: "*output.ConsoleChangelogWriter"},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			w := NewChangelogWriter(tt.format)
			if got := typeName(w); got != tt.want {
				t.Fatalf("NewChangelogWriter(%q) = %s, expected %s", tt.format, got, tt.want)
			}
		})
	}
}

func typeName(v any) string {
	switch v.(type) {
	case *ConsoleChangelogWriter:
		return "*output.ConsoleChangelogWriter"
	case *JSONChangelogWriter:
		return "*output.JSONChangelogWriter"
	case *CSVChangelogWriter:
		return "*output.CSVChangelogWriter"
	case *MarkdownChangelogWriter:
		return "*output.MarkdownChangelogWriter"
	default:
		return "unknown"
	}
}

func TestLimitTop(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	tests := []struct {
		name string
		top  int
		want int
	}{
		{name: "ZeroKeepsAll", top: 0, want: 5},
		{name: "NegativeKeepsAll", top: -1, want: 5},
		{name: "SmallerThanLength", top: 3, want: 3},
		{name: "EqualLength", top: 5, want: 5},
		{name: "LargerThanLength", top: 10, want: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := len(limitTop(items, tt.top)); got != tt.want {
				t.Fatalf("limitTop(top=%d) len = %d, expected %d", tt.top, got, tt.want)
			}
		})
	}
}

func TestDateRangeLabelAndValue(t *testing.T) {
	since := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	until := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		since     *time.Time
		until     *time.Time
		wantLabel string
		wantValue string
	}{
		{name: "Both", since: &since, until: &until, wantLabel: "Period", wantValue: "2024-01-01 to 2024-06-30"},
		{name: "SinceOnly", since: &since, wantLabel: "Since", wantValue: "2024-01-01"},
		{name: "UntilOnly", until: &until, wantLabel: "Until", wantValue: "2024-06-30"},
		{name: "Neither", wantLabel: "Period", wantValue: "all"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			label, value := dateRangeLabelAndValue(tt.since, tt.until)
			if label != tt.wantLabel || value != tt.wantValue {
				t.Fatalf("got (%q, %q), expected (%q, %q)", label, value, tt.wantLabel, tt.wantValue)
			}
		})
	}
}

func TestFirstCommentLine(t *testing.T) {
	tests := []struct {
		name    string
		comment string
		want    string
	}{
		{name: "SingleLine", comment: "fix bug\n", want: "fix bug"},
		{name: "MultiLine", comment: "fix bug\nmore detail\n", want: "fix bug"},
		{name: "NoNewline", comment: "fix bug", want: "fix bug"},
		{name: "Empty", comment: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := firstCommentLine(tt.comment); got != tt.want {
				t.Fatalf("firstCommentLine(%q) = %q, expected %q", tt.comment, got, tt.want)
			}
		})
	}
}
