package gitcache

import (
	"github.com/rios0rios0/gitcache/internal/domain/entities"
)

// StatusTable is the frozen status snapshot of one repository.
type StatusTable struct {
	entries []entities.StatusEntry
}

// NewStatusTable wraps the entries reported by the query engine.
func NewStatusTable(entries []entities.StatusEntry) *StatusTable {
	return &StatusTable{entries: entries}
}

// Status returns either the file or the directory status for the given path.
// Directory mode reports the aggregate status of everything nested under the path.
func (t *StatusTable) Status(path string, isDirectory bool) entities.Git {
	if isDirectory {
		return t.DirStatus(path)
	}
	return t.FileStatus(path)
}

// FileStatus returns the status of exactly one path. An ignored ancestor makes the
// path ignored too.
func (t *StatusTable) FileStatus(file string) entities.Git {
	path := Reorient(file)

	flags := entities.StatusCurrent
	for _, e := range t.entries {
		if e.Flags.IsIgnored() {
			if isWithin(path, e.Path) {
				flags |= e.Flags
			}
		} else if e.Path == path {
			flags |= e.Flags
		}
	}
	return entities.NewGit(flags)
}

// DirStatus returns the combined status of a directory. Changes aggregate upwards
// (a directory is modified when anything under it is), ignores apply downwards
// (a directory is ignored when one of its parents is).
func (t *StatusTable) DirStatus(dir string) entities.Git {
	path := Reorient(dir)

	flags := entities.StatusCurrent
	for _, e := range t.entries {
		if e.Flags.IsIgnored() {
			if isWithin(path, e.Path) {
				flags |= e.Flags
			}
		} else if isWithin(e.Path, path) {
			flags |= e.Flags
		}
	}
	return entities.NewGit(flags)
}
