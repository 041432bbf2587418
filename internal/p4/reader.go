package p4

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ChangelogReader runs p4 filelog and parses its output into entries.
// The reader owns the external process and its I/O; the parser never
// executes anything.
type ChangelogReader struct {
	opts        ReadOptions
	filterCache map[string]bool
}

// NewChangelogReader creates a reader for the given options.
func NewChangelogReader(opts ReadOptions) *ChangelogReader {
	if opts.P4Bin == "" {
		opts.P4Bin = "p4"
	}
	if opts.DepotPath == "" {
		opts.DepotPath = "//..."
	}
	return &ChangelogReader{opts: opts, filterCache: make(map[string]bool)}
}

// ReadChanges invokes p4 filelog and aggregates its output. A fresh
// parser is used per call, so a reader may be reused across sessions.
func (r *ChangelogReader) ReadChanges(ctx context.Context) ([]ChangeEntry, error) {
	// -t includes the time of day in header timestamps, -l prints the
	// full comment block terminated by a blank line.
	args := []string{"filelog", "-t", "-l", r.opts.DepotPath}

	out, err := exec.CommandContext(ctx, r.opts.P4Bin, args...).CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("p4 filelog failed: %w: %s", err, strings.TrimSpace(string(out)))
	}

	parser := NewChangelogParser(r.opts.Since, r.opts.Until)
	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		if err := parser.ConsumeLine(scanner.Text()); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read p4 filelog output: %w", err)
	}

	return r.filterEntries(parser.Entries())
}

// filterEntries applies the include/exclude globs to each entry's file
// list. An entry that loses all of its files is dropped from the result.
func (r *ChangelogReader) filterEntries(entries []ChangeEntry) ([]ChangeEntry, error) {
	if len(r.opts.Include) == 0 && len(r.opts.Exclude) == 0 {
		return entries, nil
	}

	filtered := make([]ChangeEntry, 0, len(entries))
	for _, e := range entries {
		files := make([]FileReference, 0, len(e.Files))
		for _, f := range e.Files {
			matches, err := r.matchesFilters(f.Path)
			if err != nil {
				return nil, err
			}
			if matches {
				files = append(files, f)
			}
		}
		if len(files) == 0 {
			continue
		}
		e.Files = files
		filtered = append(filtered, e)
	}
	return filtered, nil
}

// matchesFilters checks if a path matches the include/exclude filters.
// Results are cached since the same depot path recurs across changes.
func (r *ChangelogReader) matchesFilters(path string) (bool, error) {
	if v, ok := r.filterCache[path]; ok {
		return v, nil
	}

	// Depot syntax always uses forward slashes; client-syntax paths on
	// Windows may not.
	normalized := strings.ReplaceAll(path, "\\", "/")

	for _, pattern := range r.opts.Exclude {
		matched, err := doublestar.Match(pattern, normalized)
		if err != nil {
			return false, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}
		if matched {
			r.filterCache[path] = false
			return false, nil
		}
	}

	result := len(r.opts.Include) == 0
	for _, pattern := range r.opts.Include {
		matched, err := doublestar.Match(pattern, normalized)
		if err != nil {
			return false, fmt.Errorf("invalid include pattern %q: %w", pattern, err)
		}
		if matched {
			result = true
			break
		}
	}

	r.filterCache[path] = result
	return result, nil
}
