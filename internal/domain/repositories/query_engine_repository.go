package repositories

import (
	"github.com/rios0rios0/gitcache/internal/domain/entities"
)

// QueryEngineRepository abstracts the version-control engine that locates repositories
// and computes their status. The cache only consumes its output.
type QueryEngineRepository interface {
	// Discover opens the repository covering path according to mode. It fails with
	// entities.ErrRepositoryNotFound when nothing covers the path and with
	// entities.ErrNoWorkingDirectory when the repository has no working tree.
	Discover(path string, mode entities.DiscoveryMode) (RepositoryHandle, error)
}

// RepositoryHandle is an opened, not yet queried repository.
type RepositoryHandle interface {
	// WorkingDirectory returns the canonical absolute root of the working tree.
	WorkingDirectory() string

	// FullStatus walks the repository and returns every non-clean path, with absolute
	// paths rooted at the working directory. This is the expensive call.
	FullStatus() ([]entities.StatusEntry, error)

	// CurrentBranch returns the short name of the checked-out branch. It returns false
	// for a detached HEAD, an unborn branch or a lookup error.
	CurrentBranch() (string, bool)
}
