//go:build integration || unit || test

// Package repositorydoubles provides test doubles (spies, stubs, dummies) for
// repository interfaces. These are hand-crafted implementations, no mock frameworks.
package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/rios0rios0/gitcache/internal/domain/entities"
	"github.com/rios0rios0/gitcache/internal/domain/repositories"
)

// DiscoverCall records the arguments of one Discover call.
type DiscoverCall struct {
	Path string
	Mode entities.DiscoveryMode
}

// SpyQueryEngineRepository implements repositories.QueryEngineRepository as a configurable spy.
// Register the repositories a test expects with WithRepository, then inspect DiscoverCalls.
type SpyQueryEngineRepository struct {
	mu sync.Mutex

	// --- Discover ---
	// Handles maps a cleaned path to the repository discovered from it.
	Handles map[string]*SpyRepositoryHandle
	// Errors maps a cleaned path to the error Discover returns for it.
	Errors        map[string]error
	DiscoverCalls []DiscoverCall
}

var _ repositories.QueryEngineRepository = (*SpyQueryEngineRepository)(nil)

// NewSpyQueryEngineRepository creates a spy that finds no repository anywhere.
func NewSpyQueryEngineRepository() *SpyQueryEngineRepository {
	return &SpyQueryEngineRepository{
		Handles: make(map[string]*SpyRepositoryHandle),
		Errors:  make(map[string]error),
	}
}

// WithRepository makes Discover return handle for path.
func (s *SpyQueryEngineRepository) WithRepository(path string, handle *SpyRepositoryHandle) *SpyQueryEngineRepository {
	s.Handles[filepath.Clean(path)] = handle
	return s
}

// WithError makes Discover fail with err for path.
func (s *SpyQueryEngineRepository) WithError(path string, err error) *SpyQueryEngineRepository {
	s.Errors[filepath.Clean(path)] = err
	return s
}

func (s *SpyQueryEngineRepository) Discover(
	path string,
	mode entities.DiscoveryMode,
) (repositories.RepositoryHandle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.DiscoverCalls = append(s.DiscoverCalls, DiscoverCall{Path: path, Mode: mode})

	key := filepath.Clean(path)
	if err, ok := s.Errors[key]; ok {
		return nil, err
	}
	if handle, ok := s.Handles[key]; ok {
		return handle, nil
	}
	return nil, fmt.Errorf("%s: %w", path, entities.ErrRepositoryNotFound)
}

// DiscoverCallCount returns how many times Discover was called.
func (s *SpyQueryEngineRepository) DiscoverCallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.DiscoverCalls)
}

// SpyRepositoryHandle implements repositories.RepositoryHandle as a configurable spy.
type SpyRepositoryHandle struct {
	mu sync.Mutex

	// --- WorkingDirectory ---
	Workdir string

	// --- FullStatus ---
	Entries         []entities.StatusEntry
	FullStatusErr   error
	fullStatusCalls int

	// --- CurrentBranch ---
	Branch string
}

var _ repositories.RepositoryHandle = (*SpyRepositoryHandle)(nil)

// NewSpyRepositoryHandle creates a clean repository rooted at workdir.
func NewSpyRepositoryHandle(workdir string) *SpyRepositoryHandle {
	return &SpyRepositoryHandle{Workdir: workdir}
}

// WithEntries sets the entries FullStatus reports.
func (h *SpyRepositoryHandle) WithEntries(entries ...entities.StatusEntry) *SpyRepositoryHandle {
	h.Entries = entries
	return h
}

// WithBranch sets the branch CurrentBranch reports.
func (h *SpyRepositoryHandle) WithBranch(branch string) *SpyRepositoryHandle {
	h.Branch = branch
	return h
}

// WithFullStatusErr makes FullStatus fail.
func (h *SpyRepositoryHandle) WithFullStatusErr(err error) *SpyRepositoryHandle {
	h.FullStatusErr = err
	return h
}

func (h *SpyRepositoryHandle) WorkingDirectory() string {
	return h.Workdir
}

func (h *SpyRepositoryHandle) FullStatus() ([]entities.StatusEntry, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.fullStatusCalls++
	if h.FullStatusErr != nil {
		return nil, h.FullStatusErr
	}
	return append([]entities.StatusEntry(nil), h.Entries...), nil
}

func (h *SpyRepositoryHandle) CurrentBranch() (string, bool) {
	return h.Branch, h.Branch != ""
}

// FullStatusCallCount returns how many times the repository was walked.
func (h *SpyRepositoryHandle) FullStatusCallCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.fullStatusCalls
}
