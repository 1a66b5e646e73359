// Package gitcache answers repository status questions for the paths of one listing,
// walking each distinct repository at most once.
package gitcache

import (
	"errors"
	"path/filepath"
	"slices"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/gitcache/internal/domain/entities"
	"github.com/rios0rios0/gitcache/internal/domain/repositories"
)

// Cache is assembled from the paths a listing was asked about.
//
// Repositories and misses are kept in slices: the expected number of repositories per
// invocation is zero or one, so a linear scan beats any index.
type Cache struct {
	// repos are the discovered repositories, unique by working directory.
	repos []*Repo

	// misses are paths confirmed not to have a repository.
	misses []string
}

// Build discovers the repositories covering paths. When env names an explicit
// metadata directory it is opened first, exactly as given.
//
// Build is sequential: whether a path needs discovery depends on the paths before it.
func Build(engine repositories.QueryEngineRepository, paths []string, env entities.Environment) *Cache {
	cache := &Cache{
		repos: make([]*Repo, 0, len(paths)),
	}

	if env.GitDir != "" {
		// Consistent with how git itself treats GIT_DIR.
		mode := entities.DiscoveryMode{GitDir: true, Env: env}
		if repo, err := discover(engine, env.GitDir, mode); err == nil {
			logger.Debug("Opened GIT_DIR repo")
			cache.repos = append(cache.repos, repo)
		} else {
			cache.misses = append(cache.misses, filepath.Clean(env.GitDir))
		}
	}

	for _, path := range paths {
		cache.add(engine, path, env)
	}

	return cache
}

func (it *Cache) add(engine repositories.QueryEngineRepository, path string, env entities.Environment) {
	// Only an identical path counts as a miss; nested paths are tried again.
	if slices.Contains(it.misses, filepath.Clean(path)) {
		logger.Debugf("Skipping %q because it already came back without a repository", path)
		return
	}
	if it.HasAnythingFor(path) {
		logger.Debugf("Skipping %q because we already queried it", path)
		return
	}

	repo, err := discover(engine, path, entities.DiscoveryMode{Search: true, Env: env})
	if err != nil {
		it.misses = append(it.misses, filepath.Clean(path))
		return
	}

	for _, existing := range it.repos {
		if existing.HasWorkdir(repo.workdir) {
			logger.Debugf("Adding to existing repo (workdir matches with %q)", existing.workdir)
			existing.extraPaths = append(existing.extraPaths, repo.originalPath)
			return
		}
	}

	logger.Debug("Discovered new Git repo")
	it.repos = append(it.repos, repo)
}

// HasAnythingFor reports whether some discovered repository covers the path.
func (it *Cache) HasAnythingFor(path string) bool {
	for _, repo := range it.repos {
		if repo.HasPath(path) {
			return true
		}
	}
	return false
}

// Lookup returns the status of path from the first repository covering it. Paths no
// repository covers get the zero entities.Git, which is distinct from not modified.
func (it *Cache) Lookup(path string, isDirectory bool) entities.Git {
	for _, repo := range it.repos {
		if repo.HasPath(path) {
			return repo.Search(path, isDirectory)
		}
	}
	return entities.Git{}
}

// Repositories returns the working directories of the discovered repositories.
func (it *Cache) Repositories() []string {
	workdirs := make([]string, 0, len(it.repos))
	for _, repo := range it.repos {
		workdirs = append(workdirs, repo.workdir)
	}
	return workdirs
}

// Misses returns the paths confirmed to be outside every repository.
func (it *Cache) Misses() []string {
	return slices.Clone(it.misses)
}

// discover opens a repository through the engine. Depending on the mode, the path is
// either the repository's metadata directory or the start of a rootwards search.
func discover(
	engine repositories.QueryEngineRepository,
	path string,
	mode entities.DiscoveryMode,
) (*Repo, error) {
	logger.Debugf("Opening Git repository for %q (%s)", path, mode)

	handle, err := engine.Discover(path, mode)
	if err != nil {
		switch {
		case errors.Is(err, entities.ErrRepositoryNotFound):
			logger.Debugf("No Git repository for %q: %v", path, err)
		case errors.Is(err, entities.ErrNoWorkingDirectory):
			logger.Warnf("Repository for %q has no workdir: %v", path, err)
		default:
			logger.Errorf("Error opening Git repository for %q: %v", path, err)
		}
		return nil, err
	}

	if handle.WorkingDirectory() == "" {
		logger.Warn("Repository has no workdir?")
		return nil, entities.ErrNoWorkingDirectory
	}

	return newRepo(handle, path), nil
}
