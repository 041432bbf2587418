package p4

import "context"

// MockChangeReader is a test double for ChangelogReader.
// It allows tests to provide predefined entries without a p4 server.
type MockChangeReader struct {
	Entries []ChangeEntry
	Err     error
}

// NewMockChangeReader creates a new MockChangeReader with the given data.
func NewMockChangeReader(entries []ChangeEntry, err error) *MockChangeReader {
	return &MockChangeReader{Entries: entries, Err: err}
}

// ReadChanges returns the predefined entries or error.
func (m *MockChangeReader) ReadChanges(_ context.Context) ([]ChangeEntry, error) {
	return m.Entries, m.Err
}
