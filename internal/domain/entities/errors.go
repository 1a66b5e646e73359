package entities

import "errors"

var (
	// ErrRepositoryNotFound indicates no repository covers the path.
	ErrRepositoryNotFound = errors.New("repository not found")

	// ErrNoWorkingDirectory indicates the repository has no usable working tree.
	ErrNoWorkingDirectory = errors.New("repository has no working directory")

	// ErrBareRepository indicates an explicitly named metadata directory is bare.
	ErrBareRepository = errors.New("bare repository")
)
