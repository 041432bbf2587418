package output

import "fmt"

// CSVChangelogWriter writes changelog reports as CSV.
type CSVChangelogWriter struct{}

// Write outputs the changelog report as CSV, one row per touched file.
func (w *CSVChangelogWriter) Write(report *ChangelogReport, options OutputOptions) error {
	entries := limitTop(report.Entries, options.Top)

	writer, file, err := createCSVWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	headers := []string{"Change", "When", "Author", "Path", "Revision", "Comment"}
	if err := writer.Write(headers); err != nil {
		return err
	}

	for _, e := range entries {
		for _, f := range e.Files {
			row := []string{
				fmt.Sprintf("%d", e.Change),
				formatOptionalDateTime(e.When),
				e.Author,
				f.Path,
				f.Revision,
				firstCommentLine(e.Comment),
			}
			if err := writer.Write(row); err != nil {
				return err
			}
		}
	}

	writer.Flush()
	return writer.Error()
}

// CSVAuthorWriter writes author activity reports as CSV.
type CSVAuthorWriter struct{}

// Write outputs the author report as CSV.
func (w *CSVAuthorWriter) Write(report *AuthorReport, options OutputOptions) error {
	items := limitTop(report.Items, options.Top)

	writer, file, err := createCSVWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	headers := []string{"Author", "ChangeCount", "FileCount", "FirstChange", "LastChange", "LastWhen"}
	if err := writer.Write(headers); err != nil {
		return err
	}

	for _, item := range items {
		row := []string{
			item.Author,
			fmt.Sprintf("%d", item.ChangeCount),
			fmt.Sprintf("%d", item.FileCount),
			fmt.Sprintf("%d", item.FirstChange),
			fmt.Sprintf("%d", item.LastChange),
			formatOptionalDateTime(item.LastWhen),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// CSVFileWriter writes file activity reports as CSV.
type CSVFileWriter struct{}

// Write outputs the file report as CSV.
func (w *CSVFileWriter) Write(report *FileReport, options OutputOptions) error {
	items := limitTop(report.Items, options.Top)

	writer, file, err := createCSVWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	headers := []string{"Path", "ChangeCount", "LastAuthor", "LastWhen"}
	if err := writer.Write(headers); err != nil {
		return err
	}

	for _, item := range items {
		row := []string{
			item.Path,
			fmt.Sprintf("%d", item.ChangeCount),
			item.LastAuthor,
			formatOptionalDateTime(item.LastWhen),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
