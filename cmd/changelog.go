package cmd

import (
	"time"

	"github.com/masahata/p4changelog/internal/output"
	"github.com/urfave/cli/v2"
)

// ChangelogCmd returns the changelog command.
func ChangelogCmd() *cli.Command {
	return &cli.Command{
		Name:    "changelog",
		Aliases: []string{"log"},
		Usage:   "Extract the changelog for a depot path",
		Flags:   commonFlags(),
		Action:  changelogAction,
	}
}

func changelogAction(c *cli.Context) error {
	ctx, err := NewCommandContext(c)
	if err != nil {
		return err
	}

	if !ctx.HasEntries() {
		ctx.PrintNoEntriesMessage()
		return nil
	}

	report := &output.ChangelogReport{
		DepotPath:   ctx.DepotPath,
		Since:       ctx.Since,
		Until:       ctx.Until,
		GeneratedAt: time.Now(),
		Entries:     ctx.Entries,
	}

	opts := OutputOptions(c, ctx.Config)
	writer := output.NewChangelogWriter(opts.Format)
	return writer.Write(report, opts)
}
