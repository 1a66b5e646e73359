//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/gitcache/internal/domain/commands"
	"github.com/rios0rios0/gitcache/internal/domain/entities"
)

// StubReposCommand is a stub implementation of commands.Repos.
type StubReposCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Rows             []entities.RepoSummaryRow
	LastSettings     *entities.Settings
	LastOpts         commands.ReposOptions
}

var _ commands.Repos = (*StubReposCommand)(nil)

func (s *StubReposCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts commands.ReposOptions,
) ([]entities.RepoSummaryRow, error) {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastOpts = opts
	if s.ExecuteErr != nil {
		return nil, s.ExecuteErr
	}
	return s.Rows, nil
}
