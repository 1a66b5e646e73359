package controllers

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"

	"github.com/rios0rios0/gitcache/internal/domain/entities"
)

type glyph struct {
	char  string
	color lipgloss.Color
}

//nolint:gochecknoglobals // presentation tables
var (
	gitGlyphs = map[entities.GitStatus]glyph{
		entities.GitStatusUnknown:     {" ", ""},
		entities.GitStatusNotModified: {"-", "8"},
		entities.GitStatusNew:         {"N", "2"},
		entities.GitStatusModified:    {"M", "4"},
		entities.GitStatusDeleted:     {"D", "1"},
		entities.GitStatusRenamed:     {"R", "3"},
		entities.GitStatusTypeChange:  {"T", "5"},
		entities.GitStatusIgnored:     {"I", "8"},
		entities.GitStatusConflicted:  {"U", "1"},
	}
	subdirGlyphs = map[entities.SubdirStatus]glyph{
		entities.SubdirStatusNone:         {" ", ""},
		entities.SubdirStatusClean:        {"|", "2"},
		entities.SubdirStatusDirty:        {"+", "1"},
		entities.SubdirStatusNoRepository: {"~", "8"},
	}
	directoryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Bold(true)
)

func (g glyph) render(color bool) string {
	if !color || g.color == "" {
		return g.char
	}
	return lipgloss.NewStyle().Foreground(g.color).Render(g.char)
}

// gitColumn renders the staged and unstaged glyphs side by side.
func gitColumn(git entities.Git, color bool) string {
	return gitGlyphs[git.Staged].render(color) + gitGlyphs[git.Unstaged].render(color)
}

func writeListing(w io.Writer, entries []entities.ListedEntry, color bool) {
	for _, e := range entries {
		name := e.Name
		if e.IsDir {
			name += string(filepath.Separator)
			if color {
				name = directoryStyle.Render(name)
			}
		}
		_, _ = fmt.Fprintf(w, "%s %s\n", gitColumn(e.Git, color), name)
	}
}

func writeRepos(w io.Writer, rows []entities.RepoSummaryRow, color bool) {
	for _, row := range rows {
		branch := row.Summary.Branch
		if branch == "" {
			branch = "-"
		}
		_, _ = fmt.Fprintf(
			w, "%s %-20s %s\n",
			subdirGlyphs[row.Summary.Status].render(color), branch, row.Path,
		)
	}
}
