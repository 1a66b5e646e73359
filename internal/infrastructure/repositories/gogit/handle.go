package gogit

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/go-git/go-billy/v5/util"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/gitcache/internal/domain/entities"
	"github.com/rios0rios0/gitcache/internal/domain/repositories"
)

//nolint:gochecknoglobals // decode tables
var (
	stagingFlags = map[git.StatusCode]entities.StatusFlags{
		git.Added:              entities.StatusIndexNew,
		git.Copied:             entities.StatusIndexNew,
		git.Modified:           entities.StatusIndexModified,
		git.Deleted:            entities.StatusIndexDeleted,
		git.Renamed:            entities.StatusIndexRenamed,
		git.UpdatedButUnmerged: entities.StatusConflicted,
		git.Untracked:          entities.StatusWtNew,
	}
	worktreeFlags = map[git.StatusCode]entities.StatusFlags{
		git.Untracked:          entities.StatusWtNew,
		git.Added:              entities.StatusWtNew,
		git.Modified:           entities.StatusWtModified,
		git.Deleted:            entities.StatusWtDeleted,
		git.Renamed:            entities.StatusWtRenamed,
		git.UpdatedButUnmerged: entities.StatusConflicted,
	}
)

// repositoryHandle implements repositories.RepositoryHandle for one opened repository.
type repositoryHandle struct {
	repo    *git.Repository
	workdir string
}

func newRepositoryHandle(repo *git.Repository) (repositories.RepositoryHandle, error) {
	wt, err := repo.Worktree()
	if err != nil {
		if errors.Is(err, git.ErrIsBareRepository) {
			return nil, fmt.Errorf("%w: %w", entities.ErrNoWorkingDirectory, entities.ErrBareRepository)
		}
		return nil, fmt.Errorf("worktree: %w", err)
	}

	return &repositoryHandle{
		repo:    repo,
		workdir: canonical(wt.Filesystem.Root()),
	}, nil
}

func (it *repositoryHandle) WorkingDirectory() string {
	return it.workdir
}

// FullStatus returns every changed, untracked or ignored path of the working tree.
func (it *repositoryHandle) FullStatus() ([]entities.StatusEntry, error) {
	wt, err := it.repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("worktree: %w", err)
	}

	status, err := wt.Status()
	if err != nil {
		return nil, fmt.Errorf("status: %w", err)
	}

	entries := make([]entities.StatusEntry, 0, len(status))
	for rel, fs := range status {
		flags := stagingFlags[fs.Staging] | worktreeFlags[fs.Worktree]
		if flags == entities.StatusCurrent {
			continue
		}
		entries = append(entries, entities.StatusEntry{
			Path:  filepath.Join(it.workdir, filepath.FromSlash(rel)),
			Flags: flags,
		})
	}

	ignored, err := it.ignoredPaths(wt)
	if err != nil {
		return nil, err
	}
	for _, p := range ignored {
		entries = append(entries, entities.StatusEntry{Path: p, Flags: entities.StatusIgnored})
	}

	slices.SortFunc(entries, func(a, b entities.StatusEntry) int {
		return strings.Compare(a.Path, b.Path)
	})
	return entries, nil
}

// ignoredPaths reports the outermost ignored paths of the working tree: an ignored
// directory is reported once and not descended into. Tracked files are never ignored,
// and nested repositories are not entered.
func (it *repositoryHandle) ignoredPaths(wt *git.Worktree) ([]string, error) {
	patterns, err := gitignore.ReadPatterns(wt.Filesystem, nil)
	if err != nil {
		return nil, fmt.Errorf("read ignore patterns: %w", err)
	}
	patterns = append(patterns, wt.Excludes...)
	if len(patterns) == 0 {
		return nil, nil
	}

	tracked, err := it.trackedPaths()
	if err != nil {
		return nil, err
	}

	matcher := gitignore.NewMatcher(patterns)
	var ignored []string
	walkErr := util.Walk(wt.Filesystem, ".", func(name string, info os.FileInfo, err error) error {
		if err != nil || name == "." {
			return nil //nolint:nilerr // unreadable entries are simply not reported
		}
		if info.Name() == dotGit {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		rel := filepath.ToSlash(name)
		if matcher.Match(strings.Split(rel, "/"), info.IsDir()) && !tracked.contains(rel, info.IsDir()) {
			ignored = append(ignored, filepath.Join(it.workdir, name))
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		// Nested repositories and submodule checkouts follow their own ignore rules.
		if info.IsDir() {
			if _, statErr := wt.Filesystem.Lstat(wt.Filesystem.Join(name, dotGit)); statErr == nil {
				return filepath.SkipDir
			}
		}
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("walk worktree: %w", walkErr)
	}
	return ignored, nil
}

// CurrentBranch returns the checked-out branch's short name.
func (it *repositoryHandle) CurrentBranch() (string, bool) {
	head, err := it.repo.Head()
	if err != nil {
		if !errors.Is(err, plumbing.ErrReferenceNotFound) {
			logger.Errorf("Error looking up Git branch: %v", err)
		}
		return "", false
	}

	if !head.Name().IsBranch() {
		return "", false
	}
	return head.Name().Short(), true
}

// trackedSet holds the index's files and every directory containing one.
type trackedSet struct {
	files map[string]struct{}
	dirs  map[string]struct{}
}

func (s trackedSet) contains(rel string, isDir bool) bool {
	if isDir {
		_, ok := s.dirs[rel]
		return ok
	}
	_, ok := s.files[rel]
	return ok
}

func (it *repositoryHandle) trackedPaths() (trackedSet, error) {
	set := trackedSet{
		files: make(map[string]struct{}),
		dirs:  make(map[string]struct{}),
	}

	idx, err := it.repo.Storer.Index()
	if err != nil {
		return set, fmt.Errorf("read index: %w", err)
	}

	for _, e := range idx.Entries {
		set.files[e.Name] = struct{}{}
		for dir := path.Dir(e.Name); dir != "."; dir = path.Dir(dir) {
			set.dirs[dir] = struct{}{}
		}
	}
	return set, nil
}

// canonical resolves symlinks so working directories compare equal to reoriented paths.
func canonical(p string) string {
	if resolved, err := filepath.EvalSymlinks(p); err == nil {
		p = resolved
	}
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return filepath.Clean(p)
}
