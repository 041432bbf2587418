package cmd

import (
	"time"

	"github.com/masahata/p4changelog/internal/aggregation"
	"github.com/masahata/p4changelog/internal/output"
	"github.com/urfave/cli/v2"
)

// FilesCmd returns the files command.
func FilesCmd() *cli.Command {
	return &cli.Command{
		Name:    "files",
		Aliases: []string{"f"},
		Usage:   "Summarize change activity per file",
		Flags:   commonFlags(),
		Action:  filesAction,
	}
}

func filesAction(c *cli.Context) error {
	ctx, err := NewCommandContext(c)
	if err != nil {
		return err
	}

	if !ctx.HasEntries() {
		ctx.PrintNoEntriesMessage()
		return nil
	}

	report := &output.FileReport{
		DepotPath:   ctx.DepotPath,
		Since:       ctx.Since,
		Until:       ctx.Until,
		GeneratedAt: time.Now(),
		Items:       aggregation.CalculateFileMetrics(ctx.Entries),
	}

	opts := OutputOptions(c, ctx.Config)
	writer := output.NewFileReportWriter(opts.Format)
	return writer.Write(report, opts)
}
