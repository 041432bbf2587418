package cmd

import (
	"time"

	"github.com/masahata/p4changelog/internal/aggregation"
	"github.com/masahata/p4changelog/internal/output"
	"github.com/urfave/cli/v2"
)

// AuthorsCmd returns the authors command.
func AuthorsCmd() *cli.Command {
	return &cli.Command{
		Name:    "authors",
		Aliases: []string{"a"},
		Usage:   "Summarize change activity per author",
		Flags:   commonFlags(),
		Action:  authorsAction,
	}
}

func authorsAction(c *cli.Context) error {
	ctx, err := NewCommandContext(c)
	if err != nil {
		return err
	}

	if !ctx.HasEntries() {
		ctx.PrintNoEntriesMessage()
		return nil
	}

	report := &output.AuthorReport{
		DepotPath:   ctx.DepotPath,
		Since:       ctx.Since,
		Until:       ctx.Until,
		GeneratedAt: time.Now(),
		Items:       aggregation.CalculateAuthorMetrics(ctx.Entries),
	}

	opts := OutputOptions(c, ctx.Config)
	writer := output.NewAuthorReportWriter(opts.Format)
	return writer.Write(report, opts)
}
