package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/gitcache/internal/domain/commands"
	"github.com/rios0rios0/gitcache/internal/domain/entities"
)

// ListController handles the "list" subcommand and the root command with path arguments.
type ListController struct {
	command commands.List
}

// NewListController creates a new ListController.
func NewListController(command commands.List) *ListController {
	return &ListController{command: command}
}

// GetBind returns the Cobra command metadata for the list controller.
func (it *ListController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "list [path...]",
		Short: "List files with their Git status",
		Long: `List files and directories together with their Git status.

Each entry shows two columns: the staged (index) status and the unstaged
(working tree) status. Directories aggregate the status of everything
under them, except "ignored", which applies to everything under an
ignored directory. Every repository is scanned only once per listing.`,
	}
}

// Execute runs the listing.
func (it *ListController) Execute(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	all, _ := cmd.Flags().GetBool("all")
	hideIgnored, _ := cmd.Flags().GetBool("git-ignore")

	settings := loadSettings(cmd)
	entries, err := it.command.Execute(ctx, settings, commands.ListOptions{
		Paths:       args,
		All:         all,
		HideIgnored: hideIgnored,
	})
	if err != nil {
		logger.Errorf("Listing failed: %v", err)
		return
	}

	writeListing(cmd.OutOrStdout(), entries, settings.ColorEnabled())
}

// AddFlags adds the list-specific flags to the given Cobra command.
func (it *ListController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP("all", "a", false, "Show hidden entries, including the .git directory")
	cmd.Flags().Bool("git-ignore", false, "Hide entries ignored by their repository")
}
