package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fievelk/virtualias/internal/config"
	"github.com/fievelk/virtualias/internal/core/ports"
	"github.com/fievelk/virtualias/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// NewImportCommand creates the 'import' subcommand.
func NewImportCommand(aliasManagementService ports.AliasManagementService) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Add the aliases listed in a YAML file.",
		Long: `Reads alias records from FILE, in the format written by
'virtualias list --output yaml', and adds those not already defined to the
virtualias functions file. Environments are not created.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImportCmd(cmd, args, aliasManagementService)
		},
	}
	return cmd
}

func runImportCmd(
	cmd *cobra.Command,
	args []string,
	aliasManagementService ports.AliasManagementService,
) error {
	path, err := config.ExpandHome(args[0])
	if err != nil {
		return err
	}

	report, err := aliasManagementService.ImportAliases(path)
	printImportOutcome(cmd.OutOrStdout(), report, config.ToUserFriendlyPath(aliasManagementService.RegistryPath()))
	if err != nil {
		return fmt.Errorf("import stopped: %w", err)
	}
	return nil
}

func printImportOutcome(out io.Writer, report ports.ImportReport, registryPath string) {
	if len(report.Added) == 0 && len(report.Skipped) == 0 && len(report.Invalid) == 0 {
		fmt.Fprintln(out, ui.InfoColor("No aliases found to import."))
		return
	}
	if len(report.Added) > 0 {
		fmt.Fprintln(out, ui.SuccessColor(fmt.Sprintf("%d alias(es) written to %s: %s",
			len(report.Added), registryPath, strings.Join(report.Added, ", "))))
	}
	if len(report.Skipped) > 0 {
		fmt.Fprintln(out, ui.InfoColor(fmt.Sprintf("%d alias(es) skipped because they already exist: %s",
			len(report.Skipped), strings.Join(report.Skipped, ", "))))
	}
	if len(report.Invalid) > 0 {
		fmt.Fprintln(out, ui.WarningColor(fmt.Sprintf("%d record(s) could not be used: %s",
			len(report.Invalid), strings.Join(quoteNames(report.Invalid), ", "))))
	}
}

func quoteNames(names []string) []string {
	quoted := make([]string, len(names))
	for i, name := range names {
		quoted[i] = fmt.Sprintf("%q", name)
	}
	return quoted
}
