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

// Repos is the interface for the repos command.
type Repos interface {
	Execute(ctx context.Context, settings *entities.Settings, opts ReposOptions) ([]entities.RepoSummaryRow, error)
}

// ReposOptions holds runtime options for a repository overview.
type ReposOptions struct {
	Paths    []string
	All      bool // Include hidden subdirectories
	NoStatus bool // Only report branches, skip the clean/dirty walk
}

// ReposCommand summarises every immediate subdirectory of the given directories:
// whether it is a repository root, its branch, and whether it is clean.
type ReposCommand struct {
	engine repositories.QueryEngineRepository
}

// NewReposCommand creates a new ReposCommand with the given query engine.
func NewReposCommand(engine repositories.QueryEngineRepository) *ReposCommand {
	return &ReposCommand{engine: engine}
}

// Execute summarises the subdirectories. Summaries are independent of each other and
// run concurrently, each one walking its repository afresh.
func (it *ReposCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts ReposOptions,
) ([]entities.RepoSummaryRow, error) {
	paths := opts.Paths
	if len(paths) == 0 {
		paths = []string{"."}
	}

	rows := collectSubdirectories(paths, opts.All)
	logger.Debugf("Summarising %d directories", len(rows))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(max(settings.Workers, 1))
	for i := range rows {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			rows[i].Summary = gitcache.Summarize(it.engine, rows[i].Path, !opts.NoStatus)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	return rows, nil
}

func collectSubdirectories(paths []string, all bool) []entities.RepoSummaryRow {
	var rows []entities.RepoSummaryRow

	for _, p := range paths {
		children, err := os.ReadDir(p)
		if err != nil {
			logger.Errorf("%s: %v", p, err)
			continue
		}

		for _, child := range children {
			if !child.IsDir() || (!all && strings.HasPrefix(child.Name(), ".")) {
				continue
			}
			rows = append(rows, entities.RepoSummaryRow{Path: filepath.Join(p, child.Name())})
		}
	}

	return rows
}
