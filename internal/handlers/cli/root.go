package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/fievelk/virtualias/internal/config"
	"github.com/fievelk/virtualias/internal/core/domain/registry"
	"github.com/fievelk/virtualias/internal/core/ports"
	"github.com/fievelk/virtualias/internal/core/services/envcreation"
	"github.com/fievelk/virtualias/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// NewRootCommand builds the virtualias command tree. The root command wraps
// virtualenv: every argument except the alias option is forwarded to it.
func NewRootCommand(
	version string,
	envCreationService ports.EnvCreationService,
	managementService ports.AliasManagementService,
) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "virtualias [-a NAME] [virtualenv args...]",
		Short: "virtualias creates a virtualenv and a shell function to activate it.",
		Long: `virtualias calls virtualenv with the arguments you give it. With -a/--alias NAME
it also writes a shell function NAME that changes to the current directory and
activates the new environment.

Options:
  -a, --alias NAME   register NAME as the activation function
  -h, --help         show this help
      --version      print the version

Use "--" to forward the remaining arguments untouched.`,
		Version:            version,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if envCreationService == nil && cmd.Name() == cmd.Root().Name() {
				return fmt.Errorf("environment creation service not initialized")
			}
			if managementService == nil {
				return fmt.Errorf("alias management service not initialized for command %s", cmd.Name())
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreateCmd(cmd, args, envCreationService, managementService)
		},
	}
	// -v belongs to virtualenv; registering the flag here keeps cobra from
	// adding it as a shorthand.
	rootCmd.Flags().Bool("version", false, "print the version")

	rootCmd.AddCommand(NewListCommand(managementService))
	rootCmd.AddCommand(NewShowCommand(managementService))
	rootCmd.AddCommand(NewRemoveCommand(managementService))
	rootCmd.AddCommand(NewImportCommand(managementService))

	return rootCmd
}

func runCreateCmd(
	cmd *cobra.Command,
	args []string,
	envCreationService ports.EnvCreationService,
	managementService ports.AliasManagementService,
) error {
	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()

	parsed, err := parseCreateArgs(args)
	if err != nil {
		return usageError(err)
	}
	if parsed.showHelp {
		return cmd.Help()
	}
	if parsed.showVersion {
		fmt.Fprintf(out, "%s version %s\n", cmd.Root().Name(), cmd.Root().Version)
		return nil
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("could not determine the current directory: %w", err)
	}

	result, err := envCreationService.Create(cmd.Context(), ports.CreateRequest{
		Alias:            parsed.alias,
		Args:             parsed.passthrough,
		WorkingDirectory: workDir,
	})

	switch {
	case errors.Is(err, envcreation.ErrNoArguments):
		fmt.Fprintln(errOut, ui.ErrorColor("You must provide some arguments."))
		_ = cmd.Help()
		return &ExitError{Code: ExitUsage}
	case errors.Is(err, envcreation.ErrDeclined):
		fmt.Fprintln(out, ui.InfoColor("Exiting."))
		return &ExitError{Code: ExitUsage}
	case errors.Is(err, registry.ErrDestinationNotSpecified):
		return usageError(fmt.Errorf("you did not specify a folder for your virtualenv: %w", err))
	}

	printReferenceOutcome(cmd, result, managementService.RegistryPath())

	if err != nil {
		if result.RolledBack {
			fmt.Fprintln(errOut, ui.WarningColor(fmt.Sprintf("The environment was not created; alias '%s' has been removed.", parsed.alias)))
		}
		return err
	}

	if result.AliasWritten {
		fmt.Fprintln(out, ui.SuccessColor(fmt.Sprintf("Alias '%s' created for %s.", ui.AliasNameColor(parsed.alias), ui.AliasPathColor(result.Destination))))
		fmt.Fprintln(out, ui.DetailColor(fmt.Sprintf("Open a new shell or run 'source %s' to start using it.",
			config.ToUserFriendlyPath(managementService.RegistryPath()))))
	}
	return nil
}
