package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fievelk/virtualias/internal/adapters/aliasmanifest"
	"github.com/fievelk/virtualias/internal/adapters/oscommand"
	"github.com/fievelk/virtualias/internal/adapters/prompt"
	"github.com/fievelk/virtualias/internal/config"
	"github.com/fievelk/virtualias/internal/core/services/aliasmanagement"
	"github.com/fievelk/virtualias/internal/core/services/envcreation"
	"github.com/fievelk/virtualias/internal/handlers/cli"
	"github.com/fievelk/virtualias/internal/handlers/ui"
	"github.com/fievelk/virtualias/internal/logging"
	"github.com/fievelk/virtualias/internal/repositories/aliasfile"
	"github.com/fievelk/virtualias/internal/repositories/shellconfig"
)

// Version is set at build time
var Version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	cfg, cfgPath, err := config.Load(config.LoadOptions{})
	if err != nil {
		fmt.Fprintln(os.Stderr, ui.ErrorColor(fmt.Sprintf("Error loading configuration: %v", err)))
		return cli.ExitFailure
	}

	logger := logging.NewStderr(cfg.LogLevel)
	if cfgPath != "" {
		logger.Debug("Configuration loaded", "file", cfgPath)
	}

	aliasRepo, err := aliasfile.NewRepository(cfg.FunctionsFile, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, ui.ErrorColor(fmt.Sprintf("Error initializing alias registry: %v", err)))
		return cli.ExitFailure
	}

	shellConf, err := shellconfig.NewShellConfigAccessor(cfg.ShellConfig, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, ui.ErrorColor(fmt.Sprintf("Error initializing shell config accessor: %v", err)))
		return cli.ExitFailure
	}

	runner := oscommand.NewEnvironmentRunner(cfg.Virtualenv, logger)
	console := prompt.NewConsole(os.Stdin, os.Stdout)

	envCreationSvc := envcreation.NewService(aliasRepo, shellConf, runner, console, os.Stdout, logger)
	aliasManagementSvc := aliasmanagement.NewService(aliasRepo, aliasmanifest.NewYAMLReader())
	rootCmd := cli.NewRootCommand(Version, envCreationSvc, aliasManagementSvc)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = rootCmd.ExecuteContext(ctx)
	if reportable := cli.Reportable(err); reportable != nil {
		fmt.Fprintln(os.Stderr, ui.ErrorColor(fmt.Sprintf("Error: %v", reportable)))
	}
	return cli.ExitCode(err)
}
