//go:build unit

package controllers

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/gitcache/internal/domain/entities"
)

func TestWriteListing(t *testing.T) {
	t.Parallel()

	t.Run("should print both status columns before each name", func(t *testing.T) {
		t.Parallel()

		// given
		var out bytes.Buffer
		entries := []entities.ListedEntry{
			{Name: "a.txt", Git: entities.Git{Staged: entities.GitStatusNew, Unstaged: entities.GitStatusModified}},
			{Name: "build", IsDir: true, Git: entities.Git{
				Staged:   entities.GitStatusNotModified,
				Unstaged: entities.GitStatusIgnored,
			}},
			{Name: "outside.txt"},
		}

		// when
		writeListing(&out, entries, false)

		// then
		expected := "NM a.txt\n" +
			"-I build" + string(filepath.Separator) + "\n" +
			"   outside.txt\n"
		assert.Equal(t, expected, out.String())
	})
}

func TestWriteRepos(t *testing.T) {
	t.Parallel()

	t.Run("should print the glyph, branch and path of each row", func(t *testing.T) {
		t.Parallel()

		// given
		var out bytes.Buffer
		rows := []entities.RepoSummaryRow{
			{Path: "app", Summary: entities.SubdirSummary{Status: entities.SubdirStatusDirty, Branch: "main"}},
			{Path: "notes", Summary: entities.SubdirSummary{Status: entities.SubdirStatusNoRepository}},
		}

		// when
		writeRepos(&out, rows, false)

		// then
		assert.Equal(t, "+ main                 app\n~ -                    notes\n", out.String())
	})
}

func TestGitColumn(t *testing.T) {
	t.Parallel()

	t.Run("should leave unknown statuses blank", func(t *testing.T) {
		t.Parallel()

		// when
		column := gitColumn(entities.Git{}, true)

		// then
		assert.Equal(t, "  ", column)
	})
}
