package gitcache

import (
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/gitcache/internal/domain/entities"
	"github.com/rios0rios0/gitcache/internal/domain/repositories"
)

// Summarize reports whether dir is itself a repository root, its current branch, and
// (when wantStatus is set) whether it has any non-ignored changes. Nothing is cached:
// every call walks the repository again.
func Summarize(
	engine repositories.QueryEngineRepository,
	dir string,
	wantStatus bool,
) entities.SubdirSummary {
	path := Reorient(dir)

	if handle, err := engine.Discover(path, entities.DiscoveryMode{}); err == nil {
		branch, _ := handle.CurrentBranch()
		if !wantStatus {
			return entities.SubdirSummary{Branch: branch}
		}

		entries, walkErr := handle.FullStatus()
		if walkErr == nil {
			status := entities.SubdirStatusClean
			for _, e := range entries {
				if !e.Flags.IsIgnored() {
					status = entities.SubdirStatusDirty
					break
				}
			}
			return entities.SubdirSummary{Status: status, Branch: branch}
		}
		logger.Errorf("Error looking up Git statuses: %v", walkErr)
	}

	summary := entities.SubdirSummary{}
	if wantStatus {
		summary.Status = entities.SubdirStatusNoRepository
	}
	return summary
}
