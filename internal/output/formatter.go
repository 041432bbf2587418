package output

import (
	"time"

	"github.com/masahata/p4changelog/internal/aggregation"
	"github.com/masahata/p4changelog/internal/p4"
)

// Compile-time interface conformance checks.
// These ensure that all writer types correctly implement their respective interfaces.
var (
	// ChangelogWriter implementations
	_ ChangelogWriter = (*ConsoleChangelogWriter)(nil)
	_ ChangelogWriter = (*JSONChangelogWriter)(nil)
	_ ChangelogWriter = (*CSVChangelogWriter)(nil)
	_ ChangelogWriter = (*MarkdownChangelogWriter)(nil)

	// AuthorReportWriter implementations
	_ AuthorReportWriter = (*ConsoleAuthorWriter)(nil)
	_ AuthorReportWriter = (*JSONAuthorWriter)(nil)
	_ AuthorReportWriter = (*CSVAuthorWriter)(nil)
	_ AuthorReportWriter = (*MarkdownAuthorWriter)(nil)

	// FileReportWriter implementations
	_ FileReportWriter = (*ConsoleFileWriter)(nil)
	_ FileReportWriter = (*JSONFileWriter)(nil)
	_ FileReportWriter = (*CSVFileWriter)(nil)
	_ FileReportWriter = (*MarkdownFileWriter)(nil)
)

// OutputFormat represents the output format type.
type OutputFormat string

const (
	FormatConsole  OutputFormat = "console"
	FormatJSON     OutputFormat = "json"
	FormatCSV      OutputFormat = "csv"
	FormatMarkdown OutputFormat = "markdown"
)

// OutputOptions controls output behavior.
type OutputOptions struct {
	Format     OutputFormat
	Top        int
	OutputPath string
}

// ChangelogReport holds the results of changelog extraction.
type ChangelogReport struct {
	DepotPath   string
	Since       *time.Time
	Until       *time.Time
	GeneratedAt time.Time
	Entries     []p4.ChangeEntry
}

// AuthorReport holds per-author activity results.
type AuthorReport struct {
	DepotPath   string
	Since       *time.Time
	Until       *time.Time
	GeneratedAt time.Time
	Items       []aggregation.AuthorMetrics
}

// FileReport holds per-file activity results.
type FileReport struct {
	DepotPath   string
	Since       *time.Time
	Until       *time.Time
	GeneratedAt time.Time
	Items       []aggregation.FileMetrics
}

// ChangelogWriter writes changelog reports.
type ChangelogWriter interface {
	Write(report *ChangelogReport, options OutputOptions) error
}

// AuthorReportWriter writes author activity reports.
type AuthorReportWriter interface {
	Write(report *AuthorReport, options OutputOptions) error
}

// FileReportWriter writes file activity reports.
type FileReportWriter interface {
	Write(report *FileReport, options OutputOptions) error
}

// NewChangelogWriter creates a writer for the given format.
func NewChangelogWriter(format OutputFormat) ChangelogWriter {
	switch format {
	case FormatJSON:
		return &JSONChangelogWriter{}
	case FormatCSV:
		return &CSVChangelogWriter{}
	case FormatMarkdown:
		return &MarkdownChangelogWriter{}
	default:
		return &ConsoleChangelogWriter{}
	}
}

// NewAuthorReportWriter creates a writer for the given format.
func NewAuthorReportWriter(format OutputFormat) AuthorReportWriter {
	switch format {
	case FormatJSON:
		return &JSONAuthorWriter{}
	case FormatCSV:
		return &CSVAuthorWriter{}
	case FormatMarkdown:
		return &MarkdownAuthorWriter{}
	default:
		return &ConsoleAuthorWriter{}
	}
}

// NewFileReportWriter creates a writer for the given format.
func NewFileReportWriter(format OutputFormat) FileReportWriter {
	switch format {
	case FormatJSON:
		return &JSONFileWriter{}
	case FormatCSV:
		return &CSVFileWriter{}
	case FormatMarkdown:
		return &MarkdownFileWriter{}
	default:
		return &ConsoleFileWriter{}
	}
}
