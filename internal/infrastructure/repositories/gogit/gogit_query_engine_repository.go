package gogit

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/cache"
	"github.com/go-git/go-git/v5/storage/filesystem"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/gitcache/internal/domain/entities"
	"github.com/rios0rios0/gitcache/internal/domain/repositories"
)

const dotGit = ".git"

// GoGitQueryEngineRepository implements repositories.QueryEngineRepository on go-git.
// Repositories are opened from the local filesystem only; nothing is fetched.
type GoGitQueryEngineRepository struct{}

// NewGoGitQueryEngineRepository creates a new go-git query engine.
func NewGoGitQueryEngineRepository() repositories.QueryEngineRepository {
	return &GoGitQueryEngineRepository{}
}

// Discover opens the repository covering path.
//
// In search mode an explicit GIT_DIR wins over the search, the way git behaves.
func (it *GoGitQueryEngineRepository) Discover(
	path string,
	mode entities.DiscoveryMode,
) (repositories.RepositoryHandle, error) {
	switch {
	case mode.GitDir:
		return openGitDir(path, mode.Env)
	case mode.Search && mode.Env.GitDir != "":
		return openGitDir(mode.Env.GitDir, mode.Env)
	case mode.Search:
		return searchRootwards(path, mode.Env.CeilingDirectories)
	default:
		return openAt(path)
	}
}

// searchRootwards walks from path towards the filesystem root looking for a ".git"
// entry, never entering one of the ceiling directories.
func searchRootwards(path string, ceilings []string) (repositories.RepositoryHandle, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("abs path: %w", err)
	}

	current := absPath
	if info, statErr := os.Stat(absPath); statErr == nil && !info.IsDir() {
		current = filepath.Dir(absPath)
	}

	for {
		if _, statErr := os.Stat(filepath.Join(current, dotGit)); statErr == nil {
			return openAt(current)
		}

		parent := filepath.Dir(current)
		if parent == current || slices.Contains(ceilings, parent) {
			return nil, fmt.Errorf("%s: %w", path, entities.ErrRepositoryNotFound)
		}
		current = parent
	}
}

// openAt opens the repository whose working tree is rooted exactly at dir.
func openAt(dir string) (repositories.RepositoryHandle, error) {
	//nolint:exhaustruct // DetectDotGit stays off: the caller already chose the root
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, fmt.Errorf("%s: %w", dir, entities.ErrRepositoryNotFound)
		}
		return nil, fmt.Errorf("open repository %s: %w", dir, err)
	}
	return newRepositoryHandle(repo)
}

// openGitDir opens a metadata directory named explicitly. The working tree comes from
// GIT_WORK_TREE, then core.worktree, then the parent of a directory named ".git".
func openGitDir(gitDir string, env entities.Environment) (repositories.RepositoryHandle, error) {
	absDir, err := filepath.Abs(gitDir)
	if err != nil {
		return nil, fmt.Errorf("abs path: %w", err)
	}
	if info, statErr := os.Stat(absDir); statErr != nil || !info.IsDir() {
		return nil, fmt.Errorf("%s: %w", gitDir, entities.ErrRepositoryNotFound)
	}

	storage := filesystem.NewStorage(osfs.New(absDir), cache.NewObjectLRUDefault())
	bare, err := git.Open(storage, nil)
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, fmt.Errorf("%s: %w", gitDir, entities.ErrRepositoryNotFound)
		}
		return nil, fmt.Errorf("open git dir %s: %w", gitDir, err)
	}

	workdir := resolveWorkTree(bare, absDir, env)
	if workdir == "" {
		return nil, fmt.Errorf(
			"%s: %w: %w", gitDir, entities.ErrNoWorkingDirectory, entities.ErrBareRepository,
		)
	}

	repo, err := git.Open(storage, osfs.New(workdir))
	if err != nil {
		return nil, fmt.Errorf("open git dir %s with worktree %s: %w", gitDir, workdir, err)
	}
	return newRepositoryHandle(repo)
}

func resolveWorkTree(repo *git.Repository, gitDir string, env entities.Environment) string {
	if env.WorkTree != "" {
		return absFrom(gitDir, env.WorkTree, false)
	}

	cfg, err := repo.Config()
	if err != nil {
		logger.Warnf("Failed to read config of %q: %v", gitDir, err)
	} else {
		if cfg.Core.Worktree != "" {
			return absFrom(gitDir, cfg.Core.Worktree, true)
		}
		if cfg.Core.IsBare {
			return ""
		}
	}

	if filepath.Base(gitDir) == dotGit {
		return filepath.Dir(gitDir)
	}
	return ""
}

// absFrom makes p absolute. core.worktree is relative to the git dir, GIT_WORK_TREE to
// the current directory.
func absFrom(gitDir, p string, relativeToGitDir bool) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	if relativeToGitDir {
		return filepath.Join(gitDir, p)
	}
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
