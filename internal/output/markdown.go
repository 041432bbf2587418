package output

import (
	"fmt"
	"strings"
)

// MarkdownChangelogWriter writes changelog reports as Markdown.
type MarkdownChangelogWriter struct{}

// Write outputs the changelog report as Markdown.
func (w *MarkdownChangelogWriter) Write(report *ChangelogReport, options OutputOptions) error {
	entries := limitTop(report.Entries, options.Top)

	out, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	fmt.Fprintf(out, "# Perforce Changelog\n\n")
	fmt.Fprintf(out, "- Depot path: `%s`\n", report.DepotPath)
	label, value := dateRangeLabelAndValue(report.Since, report.Until)
	fmt.Fprintf(out, "- %s: %s\n", label, value)
	fmt.Fprintf(out, "- Total changes: %d\n\n", len(report.Entries))

	for _, e := range entries {
		when := formatOptionalDateTime(e.When)
		if when == "" {
			when = "unknown date"
		}
		fmt.Fprintf(out, "## Change %d\n\n", e.Change)
		fmt.Fprintf(out, "by **%s** on %s\n\n", escapeMarkdown(e.Author), when)

		comment := strings.TrimRight(e.Comment, "\n")
		if comment != "" {
			for _, line := range strings.Split(comment, "\n") {
				fmt.Fprintf(out, "> %s\n", line)
			}
			fmt.Fprintln(out, "")
		}

		for _, f := range e.Files {
			fmt.Fprintf(out, "- `%s#%s`\n", f.Path, f.Revision)
		}
		fmt.Fprintln(out, "")
	}

	return nil
}

// MarkdownAuthorWriter writes author activity reports as Markdown.
type MarkdownAuthorWriter struct{}

// Write outputs the author report as Markdown.
func (w *MarkdownAuthorWriter) Write(report *AuthorReport, options OutputOptions) error {
	items := limitTop(report.Items, options.Top)

	out, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	fmt.Fprintf(out, "# Author Activity\n\n")
	fmt.Fprintf(out, "- Depot path: `%s`\n", report.DepotPath)
	label, value := dateRangeLabelAndValue(report.Since, report.Until)
	fmt.Fprintf(out, "- %s: %s\n", label, value)
	fmt.Fprintf(out, "- Total authors: %d\n\n", len(report.Items))

	fmt.Fprintln(out, "| # | Author | Changes | Files | First | Last | Last seen |")
	fmt.Fprintln(out, "|---|--------|---------|-------|-------|------|-----------|")
	for i, item := range items {
		fmt.Fprintf(out, "| %d | %s | %d | %d | %d | %d | %s |\n",
			i+1,
			escapeMarkdown(item.Author),
			item.ChangeCount,
			item.FileCount,
			item.FirstChange,
			item.LastChange,
			formatOptionalDateTime(item.LastWhen),
		)
	}

	return nil
}

// MarkdownFileWriter writes file activity reports as Markdown.
type MarkdownFileWriter struct{}

// Write outputs the file report as Markdown.
func (w *MarkdownFileWriter) Write(report *FileReport, options OutputOptions) error {
	items := limitTop(report.Items, options.Top)

	out, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	fmt.Fprintf(out, "# File Activity\n\n")
	fmt.Fprintf(out, "- Depot path: `%s`\n", report.DepotPath)
	label, value := dateRangeLabelAndValue(report.Since, report.Until)
	fmt.Fprintf(out, "- %s: %s\n", label, value)
	fmt.Fprintf(out, "- Total files: %d\n\n", len(report.Items))

	fmt.Fprintln(out, "| # | Path | Changes | Last author | Last change |")
	fmt.Fprintln(out, "|---|------|---------|-------------|-------------|")
	for i, item := range items {
		fmt.Fprintf(out, "| %d | `%s` | %d | %s | %s |\n",
			i+1,
			item.Path,
			item.ChangeCount,
			escapeMarkdown(item.LastAuthor),
			formatOptionalDateTime(item.LastWhen),
		)
	}

	return nil
}

func escapeMarkdown(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
