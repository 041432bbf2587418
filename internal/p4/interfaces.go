package p4

import "context"

// ChangeReader defines the interface for reading Perforce change history.
// This abstraction allows for easier testing and potential alternative implementations.
type ChangeReader interface {
	// ReadChanges reads the changelog and returns entries in descending
	// changelist order.
	ReadChanges(ctx context.Context) ([]ChangeEntry, error)
}

// Compile-time interface conformance checks.
var (
	_ ChangeReader = (*ChangelogReader)(nil)
	_ ChangeReader = (*MockChangeReader)(nil)
)
