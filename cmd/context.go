package cmd

import (
	"fmt"
	"time"

	"github.com/masahata/p4changelog/config"
	"github.com/masahata/p4changelog/internal/output"
	"github.com/masahata/p4changelog/internal/p4"
	"github.com/urfave/cli/v2"
)

// CommandContext holds common state for command execution.
// It encapsulates the shared setup logic across all commands.
type CommandContext struct {
	Config    *config.Config
	DepotPath string
	Since     *time.Time
	Until     *time.Time
	Entries   []p4.ChangeEntry
}

// NewCommandContext creates a context from CLI flags.
// It performs configuration loading, date parsing, and changelog reading.
func NewCommandContext(c *cli.Context) (*CommandContext, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}

	since, err := parseDateFlag(c.String("since"))
	if err != nil {
		return nil, fmt.Errorf("invalid since date: %w", err)
	}
	until, err := parseDateFlag(c.String("until"))
	if err != nil {
		return nil, fmt.Errorf("invalid until date: %w", err)
	}

	depotPath := resolveDepotPath(c, cfg)

	p4Bin := c.String("p4-bin")
	if p4Bin == "" {
		p4Bin = cfg.P4.Bin
	}

	reader := p4.NewChangelogReader(p4.ReadOptions{
		DepotPath: depotPath,
		P4Bin:     p4Bin,
		Since:     since,
		Until:     until,
		Include:   cfg.Filters.Include,
		Exclude:   cfg.Filters.Exclude,
	})

	entries, err := reader.ReadChanges(c.Context)
	if err != nil {
		return nil, fmt.Errorf("failed to read changelog: %w", err)
	}

	return &CommandContext{
		Config:    cfg,
		DepotPath: depotPath,
		Since:     since,
		Until:     until,
		Entries:   entries,
	}, nil
}

// resolveDepotPath picks the depot path from the first positional
// argument, the --depot flag, or the configured default, in that order.
func resolveDepotPath(c *cli.Context, cfg *config.Config) string {
	if c.NArg() > 0 {
		return c.Args().Get(0)
	}
	if v := c.String("depot"); v != "" {
		return v
	}
	return cfg.P4.DepotPath
}

// HasEntries returns true if changes were found in the specified range.
func (ctx *CommandContext) HasEntries() bool {
	return len(ctx.Entries) > 0
}

// PrintNoEntriesMessage prints a message when no changes are found.
func (ctx *CommandContext) PrintNoEntriesMessage() {
	fmt.Println("No changes found in the specified range.")
}

// OutputOptions creates OutputOptions from CLI flags, falling back to
// configured defaults when a flag is not set explicitly.
func OutputOptions(c *cli.Context, cfg *config.Config) output.OutputOptions {
	format := cfg.Output.Format
	if c.IsSet("format") || format == "" {
		format = c.String("format")
	}

	top := cfg.Output.Top
	if c.IsSet("top") {
		top = c.Int("top")
	}

	return output.OutputOptions{
		Format:     getOutputFormat(format),
		Top:        top,
		OutputPath: c.String("output"),
	}
}
