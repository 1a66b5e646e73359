//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/gitcache/internal/domain/entities"
)

// StatusEntryBuilder helps create status entries with a fluent interface.
type StatusEntryBuilder struct {
	*testkit.BaseBuilder
	path  string
	flags entities.StatusFlags
}

// NewStatusEntryBuilder creates a builder for a modified, unstaged file.
func NewStatusEntryBuilder() *StatusEntryBuilder {
	return &StatusEntryBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		path:        "/virtual/repo/file.txt",
		flags:       entities.StatusWtModified,
	}
}

// WithPath sets the absolute path of the entry.
func (b *StatusEntryBuilder) WithPath(path string) *StatusEntryBuilder {
	b.path = path
	return b
}

// WithFlags replaces the status flags.
func (b *StatusEntryBuilder) WithFlags(flags entities.StatusFlags) *StatusEntryBuilder {
	b.flags = flags
	return b
}

// Ignored marks the entry as ignored.
func (b *StatusEntryBuilder) Ignored() *StatusEntryBuilder {
	b.flags = entities.StatusIgnored
	return b
}

// Build creates the entry (satisfies testkit.Builder interface).
func (b *StatusEntryBuilder) Build() interface{} {
	return b.BuildEntry()
}

// BuildEntry creates the entry with a concrete return type.
func (b *StatusEntryBuilder) BuildEntry() entities.StatusEntry {
	return entities.StatusEntry{
		Path:  b.path,
		Flags: b.flags,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *StatusEntryBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.path = "/virtual/repo/file.txt"
	b.flags = entities.StatusWtModified
	return b
}

// Clone creates a deep copy of the StatusEntryBuilder.
func (b *StatusEntryBuilder) Clone() testkit.Builder {
	return &StatusEntryBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		path:        b.path,
		flags:       b.flags,
	}
}
