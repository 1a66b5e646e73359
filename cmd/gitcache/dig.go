package main

import (
	"github.com/rios0rios0/gitcache/internal"
	"github.com/rios0rios0/gitcache/internal/infrastructure/controllers"
	"go.uber.org/dig"
)

func injectAppContext() *internal.AppInternal {
	container := dig.New()

	// Register all providers
	if err := internal.RegisterProviders(container); err != nil {
		panic(err)
	}

	// Invoke to get AppInternal
	var appInternal *internal.AppInternal
	if err := container.Invoke(func(ai *internal.AppInternal) {
		appInternal = ai
	}); err != nil {
		panic(err)
	}

	return appInternal
}

func injectListController() *controllers.ListController {
	container := dig.New()

	if err := internal.RegisterProviders(container); err != nil {
		panic(err)
	}

	var listController *controllers.ListController
	if err := container.Invoke(func(lc *controllers.ListController) {
		listController = lc
	}); err != nil {
		panic(err)
	}

	return listController
}
