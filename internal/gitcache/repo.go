package gitcache

import (
	"path/filepath"
	"sync"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/gitcache/internal/domain/entities"
	"github.com/rios0rios0/gitcache/internal/domain/repositories"
)

const metadataDir = ".git"

// Repo is one repository discovered while building the cache.
//
// It holds either the unopened query handle or the computed status table, never both.
// The first Search moves the handle out and replaces it with the table; every later
// Search answers from the table without touching the engine.
type Repo struct {
	mu     sync.Mutex
	handle repositories.RepositoryHandle
	table  *StatusTable

	// workdir identifies the repository when two paths resolve to the same one.
	workdir string

	// originalPath is the path whose discovery found this repository.
	originalPath string

	// extraPaths are later paths that resolved to this same repository.
	extraPaths []string
}

func newRepo(handle repositories.RepositoryHandle, originalPath string) *Repo {
	return &Repo{
		handle:       handle,
		workdir:      handle.WorkingDirectory(),
		originalPath: originalPath,
	}
}

// WorkingDirectory returns the canonical root of the repository's working tree.
func (it *Repo) WorkingDirectory() string {
	return it.workdir
}

// Search returns the status of a file, or of a directory when isDirectory is set.
// The repository is walked on the first call only; concurrent callers block until
// that walk finishes and then read the same table.
func (it *Repo) Search(path string, isDirectory bool) entities.Git {
	it.mu.Lock()
	defer it.mu.Unlock()

	if it.table != nil {
		logger.Debugf("Git repo %q has been found in cache", it.workdir)
		return it.table.Status(path, isDirectory)
	}

	logger.Debugf("Querying Git repo %q for the first time", it.workdir)
	handle := it.handle
	it.handle = nil
	it.table = repoToStatuses(handle, it.workdir)
	return it.table.Status(path, isDirectory)
}

// HasWorkdir reports whether this repository has the given working directory.
func (it *Repo) HasWorkdir(path string) bool {
	return it.workdir == path
}

// HasPath reports whether this repository cares about the given path at all.
func (it *Repo) HasPath(path string) bool {
	if isWithin(path, it.originalPath) {
		return true
	}
	for _, extra := range it.extraPaths {
		if isWithin(path, extra) {
			return true
		}
	}
	return false
}

// repoToStatuses runs the engine's full walk once and freezes the result. A failed walk
// leaves the table empty so every path reads as not modified.
func repoToStatuses(handle repositories.RepositoryHandle, workdir string) *StatusTable {
	logger.Debugf("Getting Git statuses for repo with workdir %q", workdir)

	entries, err := handle.FullStatus()
	if err != nil {
		logger.Errorf("Error looking up Git statuses: %v", err)
		return NewStatusTable(nil)
	}

	// The metadata directory is ignored in practice even though the engine never reports it.
	entries = append(entries, entities.StatusEntry{
		Path:  filepath.Join(workdir, metadataDir),
		Flags: entities.StatusIgnored,
	})
	return NewStatusTable(entries)
}
