package output

import (
	"encoding/csv"
	"io"
	"os"
	"strings"
	"time"
)

const (
	reportDateLayout     = "2006-01-02"
	reportDateTimeLayout = "2006-01-02T15:04:05"
)

func limitTop[T any](items []T, top int) []T {
	if top <= 0 || top >= len(items) {
		return items
	}
	return items[:top]
}

func dateRangeLabelAndValue(since, until *time.Time) (string, string) {
	switch {
	case since != nil && until != nil:
		return "Period", since.Format(reportDateLayout) + " to " + until.Format(reportDateLayout)
	case since != nil:
		return "Since", since.Format(reportDateLayout)
	case until != nil:
		return "Until", until.Format(reportDateLayout)
	default:
		return "Period", "all"
	}
}

func formatOptionalDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format(reportDateLayout)
	return &formatted
}

// formatOptionalDateTime renders a possibly-absent entry timestamp.
// Absent timestamps come from malformed header dates and are shown blank.
func formatOptionalDateTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(reportDateTimeLayout)
}

func firstCommentLine(comment string) string {
	if idx := strings.IndexByte(comment, '\n'); idx != -1 {
		return comment[:idx]
	}
	return comment
}

func openOutputWriter(outputPath string) (io.Writer, *os.File, error) {
	if outputPath == "" {
		return os.Stdout, nil, nil
	}
	file, err := os.Create(outputPath)
	if err != nil {
		return nil, nil, err
	}
	return file, file, nil
}

func createCSVWriter(outputPath string) (*csv.Writer, *os.File, error) {
	out, file, err := openOutputWriter(outputPath)
	if err != nil {
		return nil, nil, err
	}
	return csv.NewWriter(out), file, nil
}
