package commands

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	logger "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/rios0rios0/gitcache/internal/domain/entities"
	"github.com/rios0rios0/gitcache/internal/domain/repositories"
	"github.com/rios0rios0/gitcache/internal/gitcache"
)

// List is the interface for the list command.
type List interface {
	Execute(ctx context.Context, settings *entities.Settings, opts ListOptions) ([]entities.ListedEntry, error)
}

// ListOptions holds runtime options for one listing.
type ListOptions struct {
	Paths       []string
	All         bool // Include dotfiles
	HideIgnored bool // Drop entries the repository ignores (CLI override)
}

// ListCommand lists paths together with their repository status. Every repository
// touched by the listing is walked once, however many of its entries are shown.
type ListCommand struct {
	engine repositories.QueryEngineRepository
	env    entities.Environment
}

// NewListCommand creates a new ListCommand with the given query engine.
func NewListCommand(engine repositories.QueryEngineRepository, env entities.Environment) *ListCommand {
	return &ListCommand{
		engine: engine,
		env:    env,
	}
}

// Execute lists every path (a directory's children, or a file itself) with its status.
func (it *ListCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts ListOptions,
) ([]entities.ListedEntry, error) {
	paths := opts.Paths
	if len(paths) == 0 {
		paths = []string{"."}
	}

	env := it.env
	if settings.GitDir != "" {
		env.GitDir = settings.GitDir
	}

	cache := gitcache.Build(it.engine, paths, env)
	logger.Debugf(
		"Git cache built: %d repositories %v, %d misses %v",
		len(cache.Repositories()), cache.Repositories(), len(cache.Misses()), cache.Misses(),
	)

	entries := collectEntries(paths, opts.All)

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(max(settings.Workers, 1))
	for i := range entries {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			entries[i].Git = cache.Lookup(entries[i].Path, entries[i].IsDir)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	if !opts.HideIgnored && !settings.HideIgnored {
		return entries, nil
	}

	visible := entries[:0]
	for _, e := range entries {
		if cache.HasAnythingFor(e.Path) && e.Git.Unstaged == entities.GitStatusIgnored {
			logger.Debugf("Hiding ignored entry %q", e.Path)
			continue
		}
		visible = append(visible, e)
	}
	return visible, nil
}

// collectEntries expands directories into their children. Paths that cannot be read are
// reported and skipped so the rest of the listing still happens.
func collectEntries(paths []string, all bool) []entities.ListedEntry {
	var entries []entities.ListedEntry

	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			logger.Errorf("%s: %v", p, err)
			continue
		}

		if !info.IsDir() {
			entries = append(entries, entities.ListedEntry{Path: p, Name: p})
			continue
		}

		children, err := os.ReadDir(p)
		if err != nil {
			logger.Errorf("%s: %v", p, err)
			continue
		}

		for _, child := range children {
			if !all && strings.HasPrefix(child.Name(), ".") {
				continue
			}
			entries = append(entries, entities.ListedEntry{
				Path:  filepath.Join(p, child.Name()),
				Name:  child.Name(),
				IsDir: child.IsDir(),
			})
		}
	}

	return entries
}
