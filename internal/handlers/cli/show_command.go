package cli

import (
	"fmt"

	"github.com/fievelk/virtualias/internal/core/ports"
	"github.com/fievelk/virtualias/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// NewShowCommand creates the 'show' subcommand.
func NewShowCommand(aliasManagementService ports.AliasManagementService) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show NAME",
		Short: "Print the shell function registered for an alias.",
		Long:  `Prints the block of NAME from the virtualias functions file, markers included.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShowCmd(cmd, args, aliasManagementService)
		},
	}
	return cmd
}

func runShowCmd(
	cmd *cobra.Command,
	args []string,
	aliasManagementService ports.AliasManagementService,
) error {
	block, err := aliasManagementService.ShowAlias(args[0])
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), ui.CodeColor(block))
	return nil
}
