package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/gitcache/internal/domain/commands"
	"github.com/rios0rios0/gitcache/internal/domain/entities"
)

// ReposController handles the "repos" subcommand.
type ReposController struct {
	command commands.Repos
}

// NewReposController creates a new ReposController.
func NewReposController(command commands.Repos) *ReposController {
	return &ReposController{command: command}
}

// GetBind returns the Cobra command metadata for the repos controller.
func (it *ReposController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "repos [dir...]",
		Short: "Summarise the repositories found in subdirectories",
		Long: `Summarise every immediate subdirectory of the given directories.

A subdirectory that is a repository root shows whether its working tree is
clean or dirty and which branch is checked out. Use --no-status to skip
the status scan and only report branches.`,
	}
}

// Execute runs the overview.
func (it *ReposController) Execute(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	all, _ := cmd.Flags().GetBool("all")
	noStatus, _ := cmd.Flags().GetBool("no-status")

	settings := loadSettings(cmd)
	rows, err := it.command.Execute(ctx, settings, commands.ReposOptions{
		Paths:    args,
		All:      all,
		NoStatus: noStatus,
	})
	if err != nil {
		logger.Errorf("Repository overview failed: %v", err)
		return
	}

	writeRepos(cmd.OutOrStdout(), rows, settings.ColorEnabled())
}

// AddFlags adds the repos-specific flags to the given Cobra command.
func (it *ReposController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP("all", "a", false, "Include hidden subdirectories")
	cmd.Flags().Bool("no-status", false, "Only show branches, do not scan working trees")
}
