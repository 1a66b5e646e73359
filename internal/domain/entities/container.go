package entities

import (
	"os"

	"go.uber.org/dig"
)

// RegisterProviders registers all entity providers with the DIG container.
// Settings requires a config file path, resolved by the controllers layer.
func RegisterProviders(container *dig.Container) error {
	return container.Provide(func() Environment {
		return NewEnvironment(os.Getenv)
	})
}
