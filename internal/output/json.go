package output

import "encoding/json"

// JSONChangelogWriter writes changelog reports as JSON.
type JSONChangelogWriter struct{}

// JSONChangelogReport is the JSON output structure for the changelog.
type JSONChangelogReport struct {
	DepotPath    string            `json:"depotPath"`
	Since        *string           `json:"since,omitempty"`
	Until        *string           `json:"until,omitempty"`
	GeneratedAt  string            `json:"generatedAt"`
	TotalChanges int               `json:"totalChanges"`
	Entries      []JSONChangeEntry `json:"entries"`
}

// JSONChangeEntry is the JSON output structure for a single change.
type JSONChangeEntry struct {
	Change  int                 `json:"change"`
	When    *string             `json:"when,omitempty"`
	Author  string              `json:"author"`
	Comment string              `json:"comment"`
	Files   []JSONFileReference `json:"files"`
}

// JSONFileReference is the JSON output structure for one touched file.
type JSONFileReference struct {
	Path     string `json:"path"`
	Revision string `json:"revision"`
}

// Write outputs the changelog report as JSON.
func (w *JSONChangelogWriter) Write(report *ChangelogReport, options OutputOptions) error {
	entries := limitTop(report.Entries, options.Top)

	jsonEntries := make([]JSONChangeEntry, 0, len(entries))
	for _, e := range entries {
		files := make([]JSONFileReference, 0, len(e.Files))
		for _, f := range e.Files {
			files = append(files, JSONFileReference{Path: f.Path, Revision: f.Revision})
		}
		var when *string
		if e.When != nil {
			formatted := e.When.Format(reportDateTimeLayout)
			when = &formatted
		}
		jsonEntries = append(jsonEntries, JSONChangeEntry{
			Change:  e.Change,
			When:    when,
			Author:  e.Author,
			Comment: e.Comment,
			Files:   files,
		})
	}

	out := JSONChangelogReport{
		DepotPath:    report.DepotPath,
		Since:        formatOptionalDate(report.Since),
		Until:        formatOptionalDate(report.Until),
		GeneratedAt:  report.GeneratedAt.Format(reportDateTimeLayout),
		TotalChanges: len(report.Entries),
		Entries:      jsonEntries,
	}

	return writeJSON(out, options.OutputPath)
}

// JSONAuthorWriter writes author activity reports as JSON.
type JSONAuthorWriter struct{}

// JSONAuthorReport is the JSON output structure for author activity.
type JSONAuthorReport struct {
	DepotPath    string           `json:"depotPath"`
	Since        *string          `json:"since,omitempty"`
	Until        *string          `json:"until,omitempty"`
	GeneratedAt  string           `json:"generatedAt"`
	TotalAuthors int              `json:"totalAuthors"`
	Items        []JSONAuthorItem `json:"items"`
}

// JSONAuthorItem is the JSON output structure for a single author.
type JSONAuthorItem struct {
	Author      string  `json:"author"`
	ChangeCount int     `json:"changeCount"`
	FileCount   int     `json:"fileCount"`
	FirstChange int     `json:"firstChange"`
	LastChange  int     `json:"lastChange"`
	LastWhen    *string `json:"lastWhen,omitempty"`
}

// Write outputs the author report as JSON.
func (w *JSONAuthorWriter) Write(report *AuthorReport, options OutputOptions) error {
	items := limitTop(report.Items, options.Top)

	jsonItems := make([]JSONAuthorItem, 0, len(items))
	for _, item := range items {
		var lastWhen *string
		if item.LastWhen != nil {
			formatted := item.LastWhen.Format(reportDateTimeLayout)
			lastWhen = &formatted
		}
		jsonItems = append(jsonItems, JSONAuthorItem{
			Author:      item.Author,
			ChangeCount: item.ChangeCount,
			FileCount:   item.FileCount,
			FirstChange: item.FirstChange,
			LastChange:  item.LastChange,
			LastWhen:    lastWhen,
		})
	}

	out := JSONAuthorReport{
		DepotPath:    report.DepotPath,
		Since:        formatOptionalDate(report.Since),
		Until:        formatOptionalDate(report.Until),
		GeneratedAt:  report.GeneratedAt.Format(reportDateTimeLayout),
		TotalAuthors: len(report.Items),
		Items:        jsonItems,
	}

	return writeJSON(out, options.OutputPath)
}

// JSONFileWriter writes file activity reports as JSON.
type JSONFileWriter struct{}

// JSONFileReport is the JSON output structure for file activity.
type JSONFileReport struct {
	DepotPath   string         `json:"depotPath"`
	Since       *string        `json:"since,omitempty"`
	Until       *string        `json:"until,omitempty"`
	GeneratedAt string         `json:"generatedAt"`
	TotalFiles  int            `json:"totalFiles"`
	Items       []JSONFileItem `json:"items"`
}

// JSONFileItem is the JSON output structure for a single file.
type JSONFileItem struct {
	Path        string  `json:"path"`
	ChangeCount int     `json:"changeCount"`
	Changes     []int   `json:"changes"`
	LastAuthor  string  `json:"lastAuthor"`
	LastWhen    *string `json:"lastWhen,omitempty"`
}

// Write outputs the file report as JSON.
func (w *JSONFileWriter) Write(report *FileReport, options OutputOptions) error {
	items := limitTop(report.Items, options.Top)

	jsonItems := make([]JSONFileItem, 0, len(items))
	for _, item := range items {
		var lastWhen *string
		if item.LastWhen != nil {
			formatted := item.LastWhen.Format(reportDateTimeLayout)
			lastWhen = &formatted
		}
		jsonItems = append(jsonItems, JSONFileItem{
			Path:        item.Path,
			ChangeCount: item.ChangeCount,
			Changes:     item.Changes,
			LastAuthor:  item.LastAuthor,
			LastWhen:    lastWhen,
		})
	}

	out := JSONFileReport{
		DepotPath:   report.DepotPath,
		Since:       formatOptionalDate(report.Since),
		Until:       formatOptionalDate(report.Until),
		GeneratedAt: report.GeneratedAt.Format(reportDateTimeLayout),
		TotalFiles:  len(report.Items),
		Items:       jsonItems,
	}

	return writeJSON(out, options.OutputPath)
}

func writeJSON(v any, outputPath string) error {
	out, file, err := openOutputWriter(outputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
