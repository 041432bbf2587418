package p4

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// fileBeginToken prefixes a file-announcement line (a depot path).
const fileBeginToken = "//"

// parseState enumerates the line classifier states. The set is closed:
// any other value reaching ConsumeLine is a programming error.
type parseState int

const (
	// stateAwaitingRevision expects file-announcement or header lines.
	stateAwaitingRevision parseState = iota
	// stateAwaitingCommentStart eats the single separator line after a header.
	stateAwaitingCommentStart
	// stateInComment accumulates comment lines until the first blank line.
	stateInComment
)

// ChangelogParser reconstructs p4 filelog output into ChangeEntry
// values, one line at a time. A parser instance is stateful and not
// reentrant: use a fresh one per parse session.
type ChangelogParser struct {
	state       parseState
	store       *entryStore
	currentFile string
	pending     RevisionHeader
	comment     strings.Builder
	since       *time.Time
	until       *time.Time
}

// NewChangelogParser creates a parser with an optional inclusive date
// window. A nil bound leaves that side of the window open.
func NewChangelogParser(since, until *time.Time) *ChangelogParser {
	return &ChangelogParser{
		state: stateAwaitingRevision,
		store: newEntryStore(),
		since: since,
		until: until,
	}
}

// ConsumeLine feeds one log line to the classifier. Malformed lines are
// absorbed (skipped) so a single bad line never aborts the whole log;
// the only error is the invariant violation of an unknown state.
func (p *ChangelogParser) ConsumeLine(line string) error {
	switch p.state {
	case stateAwaitingRevision:
		p.processAwaitingRevision(line)
	case stateAwaitingCommentStart:
		// The mandated single separator line between header and comment.
		p.state = stateInComment
	case stateInComment:
		p.processInComment(line)
	default:
		return fmt.Errorf("p4: unknown parser state: %d", p.state)
	}
	return nil
}

// Entries returns the aggregated entries in descending changelist
// order. Call it after the input stream is fully consumed. A comment
// block still open at end of stream is dropped, never committed.
func (p *ChangelogParser) Entries() []ChangeEntry {
	return p.store.OrderedSnapshot()
}

func (p *ChangelogParser) processAwaitingRevision(line string) {
	if strings.HasPrefix(line, fileBeginToken) {
		p.currentFile = line
		return
	}

	header, ok := matchHeader(line)
	if !ok {
		return
	}

	p.pending = header
	p.comment.Reset()
	p.state = stateAwaitingCommentStart
}

func (p *ChangelogParser) processInComment(line string) {
	if line != "" {
		p.comment.WriteString(line)
		p.comment.WriteByte('\n')
		return
	}
	p.commitPending()
	p.state = stateAwaitingRevision
}

// commitPending applies the date window and upserts the pending entry
// with the remembered file path. An entry outside the window is
// discarded silently: this is a filter, not a validation failure. A nil
// timestamp is never outside the window.
func (p *ChangelogParser) commitPending() {
	candidate := ChangeEntry{
		Change:  p.pending.Change,
		When:    p.pending.When,
		Author:  p.pending.Author,
		Comment: p.comment.String(),
	}
	file := FileReference{
		Path:     p.currentFile,
		Revision: strconv.Itoa(p.pending.Revision),
	}

	if candidate.When != nil {
		if p.since != nil && candidate.When.Before(*p.since) {
			return
		}
		if p.until != nil && candidate.When.After(*p.until) {
			return
		}
	}

	p.store.Upsert(candidate, file)
}
