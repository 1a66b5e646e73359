//go:build unit

package controllers_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/gitcache/internal/domain/entities"
	"github.com/rios0rios0/gitcache/internal/infrastructure/controllers"
	"github.com/rios0rios0/gitcache/test/domain/commanddoubles"
)

// newTestCommand builds a command wired to a temporary, colourless config file.
func newTestCommand(t *testing.T, config string) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gitcache.yaml")
	require.NoError(t, os.WriteFile(path, []byte(config), 0o600))

	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("config", path, "")
	cmd.Flags().Bool("verbose", false, "")

	var out bytes.Buffer
	cmd.SetOut(&out)
	return cmd, &out
}

func TestListController(t *testing.T) {
	t.Parallel()

	t.Run("should pass flags and paths to the command", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubListCommand{
			Entries: []entities.ListedEntry{{Name: "a.txt", Git: entities.Git{
				Staged:   entities.GitStatusNotModified,
				Unstaged: entities.GitStatusNew,
			}}},
		}
		controller := controllers.NewListController(stub)
		cmd, out := newTestCommand(t, "color: false\nworkers: 2\n")
		controller.AddFlags(cmd)
		require.NoError(t, cmd.Flags().Set("all", "true"))
		require.NoError(t, cmd.Flags().Set("git-ignore", "true"))

		// when
		controller.Execute(cmd, []string{"src", "docs"})

		// then
		assert.Equal(t, 1, stub.ExecuteCallCount)
		assert.Equal(t, []string{"src", "docs"}, stub.LastOpts.Paths)
		assert.True(t, stub.LastOpts.All)
		assert.True(t, stub.LastOpts.HideIgnored)
		assert.Equal(t, 2, stub.LastSettings.Workers)
		assert.Equal(t, "-N a.txt\n", out.String())
	})

	t.Run("should print nothing when the command fails", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubListCommand{ExecuteErr: errors.New("boom")}
		controller := controllers.NewListController(stub)
		cmd, out := newTestCommand(t, "color: false\n")
		controller.AddFlags(cmd)

		// when
		controller.Execute(cmd, nil)

		// then
		assert.Equal(t, 1, stub.ExecuteCallCount)
		assert.Empty(t, out.String())
	})

	t.Run("should describe itself as the list subcommand", func(t *testing.T) {
		t.Parallel()

		// when
		bind := controllers.NewListController(&commanddoubles.StubListCommand{}).GetBind()

		// then
		assert.Equal(t, "list [path...]", bind.Use)
		assert.NotEmpty(t, bind.Short)
	})
}

func TestReposController(t *testing.T) {
	t.Parallel()

	t.Run("should pass flags and directories to the command", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubReposCommand{
			Rows: []entities.RepoSummaryRow{{
				Path:    "app",
				Summary: entities.SubdirSummary{Status: entities.SubdirStatusClean, Branch: "main"},
			}},
		}
		controller := controllers.NewReposController(stub)
		cmd, out := newTestCommand(t, "color: false\n")
		controller.AddFlags(cmd)
		require.NoError(t, cmd.Flags().Set("no-status", "true"))

		// when
		controller.Execute(cmd, []string{"projects"})

		// then
		assert.Equal(t, 1, stub.ExecuteCallCount)
		assert.Equal(t, []string{"projects"}, stub.LastOpts.Paths)
		assert.True(t, stub.LastOpts.NoStatus)
		assert.False(t, stub.LastOpts.All)
		assert.Equal(t, "| main                 app\n", out.String())
	})
}
