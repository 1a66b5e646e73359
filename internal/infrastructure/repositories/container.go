package repositories

import (
	"github.com/rios0rios0/gitcache/internal/infrastructure/repositories/gogit"
	"go.uber.org/dig"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// go-git is the only query engine; it reads repositories straight from disk
	if err := container.Provide(gogit.NewGoGitQueryEngineRepository); err != nil {
		return err
	}

	return nil
}
