package cli

import (
	"fmt"

	"github.com/fievelk/virtualias/internal/config"
	"github.com/fievelk/virtualias/internal/core/ports"
	"github.com/fievelk/virtualias/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// NewRemoveCommand creates the 'remove' subcommand.
func NewRemoveCommand(aliasManagementService ports.AliasManagementService) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove NAME",
		Short: "Remove an alias from the virtualias functions file.",
		Long: `Deletes the block between the start and end markers of NAME.
The environment directory itself is left in place.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemoveCmd(cmd, args, aliasManagementService)
		},
	}
	cmd.Flags().Bool("dry-run", false, "Show the lines that would be removed without changing the file.")
	return cmd
}

func runRemoveCmd(
	cmd *cobra.Command,
	args []string,
	aliasManagementService ports.AliasManagementService,
) error {
	name := args[0]
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	out := cmd.OutOrStdout()
	registryPath := config.ToUserFriendlyPath(aliasManagementService.RegistryPath())

	if dryRun {
		before, after, err := aliasManagementService.PreviewRemoval(name)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, ui.HeaderColor(fmt.Sprintf("Changes to %s:", registryPath)))
		for _, line := range lineDiff(before, after) {
			fmt.Fprint(out, colorDiffLine(line))
		}
		return nil
	}

	if err := aliasManagementService.RemoveAlias(name); err != nil {
		return err
	}
	fmt.Fprintln(out, ui.SuccessColor(fmt.Sprintf("Alias '%s' removed from %s.", ui.AliasNameColor(name), registryPath)))
	return nil
}
