//go:build unit

package gitcache_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/gitcache/internal/domain/entities"
	"github.com/rios0rios0/gitcache/internal/gitcache"
	"github.com/rios0rios0/gitcache/test/domain/entitybuilders"
)

func newTestTable() *gitcache.StatusTable {
	return gitcache.NewStatusTable([]entities.StatusEntry{
		entitybuilders.NewStatusEntryBuilder().WithPath("/virtual/repo/target").Ignored().BuildEntry(),
		entitybuilders.NewStatusEntryBuilder().WithPath("/virtual/repo/src/main.go").BuildEntry(),
		entitybuilders.NewStatusEntryBuilder().
			WithPath("/virtual/repo/src/new.go").
			WithFlags(entities.StatusIndexNew | entities.StatusIndexModified).
			BuildEntry(),
		entitybuilders.NewStatusEntryBuilder().
			WithPath("/virtual/repo/docs/old.md").
			WithFlags(entities.StatusIndexDeleted).
			BuildEntry(),
	})
}

func TestStatusTableFileStatus(t *testing.T) {
	t.Parallel()

	t.Run("should report the entry of an exact path", func(t *testing.T) {
		t.Parallel()

		// given
		table := newTestTable()

		// when
		git := table.FileStatus("/virtual/repo/src/main.go")

		// then
		assert.Equal(t, entities.GitStatusNotModified, git.Staged)
		assert.Equal(t, entities.GitStatusModified, git.Unstaged)
	})

	t.Run("should prefer new over modified in the index", func(t *testing.T) {
		t.Parallel()

		// given
		table := newTestTable()

		// when
		git := table.FileStatus("/virtual/repo/src/new.go")

		// then
		assert.Equal(t, entities.GitStatusNew, git.Staged)
	})

	t.Run("should propagate an ignored ancestor downwards", func(t *testing.T) {
		t.Parallel()

		// given
		table := newTestTable()

		// when
		git := table.FileStatus("/virtual/repo/target/debug/app")

		// then
		assert.Equal(t, entities.GitStatusNotModified, git.Staged)
		assert.Equal(t, entities.GitStatusIgnored, git.Unstaged)
	})

	t.Run("should not aggregate changed descendants of a path in file mode", func(t *testing.T) {
		t.Parallel()

		// given
		table := newTestTable()

		// when
		git := table.FileStatus("/virtual/repo/src")

		// then
		assert.Equal(t, entities.GitStatusNotModified, git.Staged)
		assert.Equal(t, entities.GitStatusNotModified, git.Unstaged)
	})

	t.Run("should report not modified for an unlisted path", func(t *testing.T) {
		t.Parallel()

		// given
		table := newTestTable()

		// when
		git := table.FileStatus("/virtual/repo/README.md")

		// then
		assert.Equal(t, entities.Git{
			Staged:   entities.GitStatusNotModified,
			Unstaged: entities.GitStatusNotModified,
		}, git)
	})
}

func TestStatusTableDirStatus(t *testing.T) {
	t.Parallel()

	t.Run("should aggregate the changes below a directory", func(t *testing.T) {
		t.Parallel()

		// given
		table := newTestTable()

		// when
		git := table.DirStatus("/virtual/repo/src")

		// then
		assert.Equal(t, entities.GitStatusNew, git.Staged)
		assert.Equal(t, entities.GitStatusModified, git.Unstaged)
	})

	t.Run("should not aggregate ignored descendants upwards", func(t *testing.T) {
		t.Parallel()

		// given
		table := gitcache.NewStatusTable([]entities.StatusEntry{
			entitybuilders.NewStatusEntryBuilder().WithPath("/virtual/repo/target").Ignored().BuildEntry(),
		})

		// when
		git := table.DirStatus("/virtual/repo")

		// then
		assert.Equal(t, entities.GitStatusNotModified, git.Unstaged)
	})

	t.Run("should mark a directory below an ignored one as ignored", func(t *testing.T) {
		t.Parallel()

		// given
		table := newTestTable()

		// when
		git := table.DirStatus("/virtual/repo/target/debug")

		// then
		assert.Equal(t, entities.GitStatusIgnored, git.Unstaged)
	})

	t.Run("should compare whole path components", func(t *testing.T) {
		t.Parallel()

		// given
		table := gitcache.NewStatusTable([]entities.StatusEntry{
			entitybuilders.NewStatusEntryBuilder().WithPath("/virtual/repo/srcfoo/a.go").BuildEntry(),
		})

		// when
		git := table.DirStatus("/virtual/repo/src")

		// then
		assert.Equal(t, entities.GitStatusNotModified, git.Unstaged)
	})

	t.Run("should aggregate an ignored entry carrying a change upwards", func(t *testing.T) {
		t.Parallel()

		// given
		table := gitcache.NewStatusTable([]entities.StatusEntry{
			entitybuilders.NewStatusEntryBuilder().
				WithPath("/virtual/repo/gen").
				WithFlags(entities.StatusIgnored | entities.StatusWtModified).
				BuildEntry(),
		})

		// when
		parent := table.DirStatus("/virtual/repo")
		child := table.FileStatus("/virtual/repo/gen/out.txt")

		// then
		assert.Equal(t, entities.GitStatusModified, parent.Unstaged)
		assert.Equal(t, entities.GitStatusNotModified, child.Unstaged)
	})

	t.Run("should dispatch on the directory flag", func(t *testing.T) {
		t.Parallel()

		// given
		table := newTestTable()

		// when
		asDir := table.Status("/virtual/repo/docs", true)
		asFile := table.Status("/virtual/repo/docs", false)

		// then
		assert.Equal(t, entities.GitStatusDeleted, asDir.Staged)
		assert.Equal(t, entities.GitStatusNotModified, asFile.Staged)
	})
}
