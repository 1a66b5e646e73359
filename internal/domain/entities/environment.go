package entities

import (
	"path/filepath"
	"strings"
)

const (
	envGitDir             = "GIT_DIR"
	envGitWorkTree        = "GIT_WORK_TREE"
	envCeilingDirectories = "GIT_CEILING_DIRECTORIES"
)

// Environment is the git-related process configuration consulted during discovery.
// It is read once and passed explicitly so discovery never reads process state itself.
type Environment struct {
	GitDir             string
	WorkTree           string
	CeilingDirectories []string
}

// NewEnvironment builds an Environment from a getenv-style lookup (usually os.Getenv).
func NewEnvironment(getenv func(string) string) Environment {
	env := Environment{
		GitDir:   getenv(envGitDir),
		WorkTree: getenv(envGitWorkTree),
	}
	for _, dir := range strings.Split(getenv(envCeilingDirectories), string(filepath.ListSeparator)) {
		if dir = strings.TrimSpace(dir); dir != "" {
			env.CeilingDirectories = append(env.CeilingDirectories, filepath.Clean(dir))
		}
	}
	return env
}

// DiscoveryMode tells the query engine how to locate a repository from a path.
//
// The zero value opens a repository rooted exactly at the path.
type DiscoveryMode struct {
	// Search walks rootwards from the path until a repository is found.
	Search bool
	// GitDir treats the path as the metadata directory itself (no ".git" naming requirement).
	GitDir bool
	// Env is honored the way git honors its environment.
	Env Environment
}

// String names the mode for log output.
func (m DiscoveryMode) String() string {
	switch {
	case m.GitDir:
		return "git-dir"
	case m.Search:
		return "search"
	default:
		return "exact"
	}
}
