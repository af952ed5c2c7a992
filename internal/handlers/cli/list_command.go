package cli

import (
	"fmt"
	"io"

	"github.com/fievelk/virtualias/internal/config"
	"github.com/fievelk/virtualias/internal/core/domain/alias"
	"github.com/fievelk/virtualias/internal/core/ports"
	"github.com/fievelk/virtualias/internal/handlers/ui"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	outputTable = "table"
	outputYAML  = "yaml"
)

// NewListCommand creates the 'list' subcommand.
func NewListCommand(aliasManagementService ports.AliasManagementService) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the aliases registered by virtualias.",
		Long:  `Displays the aliases defined in the virtualias functions file.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runListCmd(cmd, args, aliasManagementService)
		},
	}
	cmd.Flags().StringP("output", "o", outputTable, "Output format: table or yaml.")
	return cmd
}

// runListCmd contains the core logic for the 'list' command.
func runListCmd(
	cmd *cobra.Command,
	_ []string,
	aliasManagementService ports.AliasManagementService,
) error {
	format, _ := cmd.Flags().GetString("output")
	if format != outputTable && format != outputYAML {
		return usageError(fmt.Errorf("unknown output format %q (want %s or %s)", format, outputTable, outputYAML))
	}

	aliases, err := aliasManagementService.ListAliases()
	if err != nil {
		return fmt.Errorf("could not list aliases: %w", err)
	}

	out := cmd.OutOrStdout()
	if format == outputYAML {
		return writeAliasesYAML(out, aliases)
	}

	registryPath := config.ToUserFriendlyPath(aliasManagementService.RegistryPath())
	if len(aliases) == 0 {
		fmt.Fprintln(out, ui.InfoColor(fmt.Sprintf("No aliases found in %s.", registryPath)))
		return nil
	}

	fmt.Fprintln(out, ui.HeaderColor(fmt.Sprintf("Aliases in %s:", registryPath)))
	writeAliasesTable(out, aliases)
	return nil
}

func writeAliasesTable(out io.Writer, aliases []alias.Alias) {
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Alias Name", "Directory", "Environment"})
	table.SetBorder(true)
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, a := range aliases {
		table.Append([]string{a.Name, config.ToUserFriendlyPath(a.WorkingDirectory), a.EnvSubdirectory})
	}
	table.Render()
}

func writeAliasesYAML(out io.Writer, aliases []alias.Alias) error {
	if aliases == nil {
		aliases = []alias.Alias{}
	}
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(aliases); err != nil {
		return fmt.Errorf("could not encode aliases: %w", err)
	}
	return enc.Close()
}
