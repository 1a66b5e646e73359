package controllers

import (
	"github.com/rios0rios0/gitcache/internal/domain/entities"
	"go.uber.org/dig"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register controller constructors
	if err := container.Provide(NewListController); err != nil {
		return err
	}
	if err := container.Provide(NewReposController); err != nil {
		return err
	}
	if err := container.Provide(NewControllers); err != nil {
		return err
	}

	return nil
}

// NewControllers aggregates all controllers into a slice for the AppInternal.
func NewControllers(
	listController *ListController,
	reposController *ReposController,
) *[]entities.Controller {
	return &[]entities.Controller{
		listController,
		reposController,
	}
}
