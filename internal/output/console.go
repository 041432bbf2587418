package output

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
)

// ConsoleChangelogWriter writes changelog reports to the console.
type ConsoleChangelogWriter struct{}

// Write outputs the changelog report to the console.
func (w *ConsoleChangelogWriter) Write(report *ChangelogReport, options OutputOptions) error {
	entries := limitTop(report.Entries, options.Top)

	color.Green("Perforce Changelog")
	fmt.Printf("Depot path: %s\n", report.DepotPath)
	label, value := dateRangeLabelAndValue(report.Since, report.Until)
	fmt.Printf("%s: %s\n", label, value)
	fmt.Printf("Total changes: %d\n\n", len(report.Entries))

	changeColor := color.New(color.FgYellow)

	for _, e := range entries {
		when := formatOptionalDateTime(e.When)
		if when == "" {
			when = "unknown date"
		}
		changeColor.Printf("Change %d by %s on %s\n", e.Change, e.Author, when)

		for _, line := range strings.Split(strings.TrimRight(e.Comment, "\n"), "\n") {
			fmt.Printf("\t%s\n", line)
		}

		for _, f := range e.Files {
			fmt.Printf("\t... %s#%s\n", f.Path, f.Revision)
		}
		fmt.Println("")
	}

	return nil
}

// ConsoleAuthorWriter writes author activity reports to the console.
type ConsoleAuthorWriter struct{}

// Write outputs the author report to the console.
func (w *ConsoleAuthorWriter) Write(report *AuthorReport, options OutputOptions) error {
	items := limitTop(report.Items, options.Top)

	color.Green("Author Activity")
	fmt.Printf("Depot path: %s\n", report.DepotPath)
	label, value := dateRangeLabelAndValue(report.Since, report.Until)
	fmt.Printf("%s: %s\n", label, value)
	fmt.Printf("Total authors: %d\n\n", len(report.Items))

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tAuthor\tChanges\tFiles\tFirst\tLast\tLast seen")
	for i, item := range items {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%d\t%d\t%s\n",
			i+1,
			item.Author,
			item.ChangeCount,
			item.FileCount,
			item.FirstChange,
			item.LastChange,
			formatOptionalDateTime(item.LastWhen),
		)
	}
	tw.Flush()

	return nil
}

// ConsoleFileWriter writes file activity reports to the console.
type ConsoleFileWriter struct{}

// Write outputs the file report to the console.
func (w *ConsoleFileWriter) Write(report *FileReport, options OutputOptions) error {
	items := limitTop(report.Items, options.Top)

	color.Green("File Activity")
	fmt.Printf("Depot path: %s\n", report.DepotPath)
	label, value := dateRangeLabelAndValue(report.Since, report.Until)
	fmt.Printf("%s: %s\n", label, value)
	fmt.Printf("Total files: %d\n\n", len(report.Items))

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tPath\tChanges\tLast author\tLast change")
	for i, item := range items {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\t%s\n",
			i+1,
			item.Path,
			item.ChangeCount,
			item.LastAuthor,
			formatOptionalDateTime(item.LastWhen),
		)
	}
	tw.Flush()

	return nil
}
