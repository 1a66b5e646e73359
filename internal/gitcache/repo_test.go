//go:build unit

package gitcache_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/gitcache/internal/domain/entities"
	"github.com/rios0rios0/gitcache/internal/gitcache"
	"github.com/rios0rios0/gitcache/test/domain/entitybuilders"
	"github.com/rios0rios0/gitcache/test/infrastructure/repositorydoubles"
)

const testWorkdir = "/virtual/repo"

func TestRepoSearch(t *testing.T) {
	t.Parallel()

	t.Run("should walk the repository only once across searches", func(t *testing.T) {
		t.Parallel()

		// given
		handle := repositorydoubles.NewSpyRepositoryHandle(testWorkdir).WithEntries(
			entitybuilders.NewStatusEntryBuilder().WithPath(testWorkdir + "/a.txt").BuildEntry(),
		)
		repo := gitcache.NewRepo(handle, testWorkdir)

		// when
		first := repo.Search(testWorkdir+"/a.txt", false)
		second := repo.Search(testWorkdir+"/b.txt", false)
		third := repo.Search(testWorkdir, true)

		// then
		assert.Equal(t, 1, handle.FullStatusCallCount())
		assert.Equal(t, entities.GitStatusModified, first.Unstaged)
		assert.Equal(t, entities.GitStatusNotModified, second.Unstaged)
		assert.Equal(t, entities.GitStatusModified, third.Unstaged)
	})

	t.Run("should walk the repository only once under concurrent searches", func(t *testing.T) {
		t.Parallel()

		// given
		handle := repositorydoubles.NewSpyRepositoryHandle(testWorkdir)
		repo := gitcache.NewRepo(handle, testWorkdir)
		const callers = 16

		// when
		var wg sync.WaitGroup
		results := make([]entities.Git, callers)
		for i := range callers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				results[i] = repo.Search(testWorkdir+"/file.txt", false)
			}()
		}
		wg.Wait()

		// then
		assert.Equal(t, 1, handle.FullStatusCallCount())
		for _, git := range results {
			assert.Equal(t, entities.GitStatusNotModified, git.Unstaged)
		}
	})

	t.Run("should report the metadata directory as ignored", func(t *testing.T) {
		t.Parallel()

		// given
		handle := repositorydoubles.NewSpyRepositoryHandle(testWorkdir)
		repo := gitcache.NewRepo(handle, testWorkdir)

		// when
		dir := repo.Search(testWorkdir+"/.git", true)
		inner := repo.Search(testWorkdir+"/.git/HEAD", false)

		// then
		assert.Equal(t, entities.GitStatusIgnored, dir.Unstaged)
		assert.Equal(t, entities.GitStatusIgnored, inner.Unstaged)
	})

	t.Run("should report not modified when the walk fails", func(t *testing.T) {
		t.Parallel()

		// given
		handle := repositorydoubles.NewSpyRepositoryHandle(testWorkdir).
			WithFullStatusErr(errors.New("index is corrupt"))
		repo := gitcache.NewRepo(handle, testWorkdir)

		// when
		first := repo.Search(testWorkdir+"/a.txt", false)
		second := repo.Search(testWorkdir+"/.git", true)

		// then
		assert.Equal(t, 1, handle.FullStatusCallCount())
		assert.Equal(t, entities.GitStatusNotModified, first.Unstaged)
		assert.Equal(t, entities.GitStatusNotModified, second.Unstaged)
	})
}

func TestRepoHasPath(t *testing.T) {
	t.Parallel()

	t.Run("should cover the original path and everything below it", func(t *testing.T) {
		t.Parallel()

		// given
		handle := repositorydoubles.NewSpyRepositoryHandle(testWorkdir)
		repo := gitcache.NewRepo(handle, testWorkdir+"/sub")

		// when / then
		assert.True(t, repo.HasPath(testWorkdir+"/sub"))
		assert.True(t, repo.HasPath(testWorkdir+"/sub/file.txt"))
		assert.False(t, repo.HasPath(testWorkdir+"/other"))
		assert.True(t, repo.HasWorkdir(testWorkdir))
		assert.Equal(t, testWorkdir, repo.WorkingDirectory())
	})
}
