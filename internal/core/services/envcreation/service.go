package envcreation

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/fievelk/virtualias/internal/core/domain/alias"
	"github.com/fievelk/virtualias/internal/core/domain/registry"
	"github.com/fievelk/virtualias/internal/core/ports"
	"github.com/fievelk/virtualias/internal/logging"
)

// ErrNoArguments is returned when neither an alias nor arguments for the
// environment command were given.
var ErrNoArguments = errors.New("no arguments given")

// ErrDeclined is returned when the user refuses to create an environment
// without an alias.
var ErrDeclined = errors.New("environment creation declined")

// NoAliasQuestion is asked when no alias was requested.
const NoAliasQuestion = "You did not specify an alias for your environment. Do you want to create it anyway?"

type service struct {
	registry    ports.AliasRegistry
	shellConfig ports.ShellConfigAccessor
	creator     ports.EnvironmentCreator
	confirmer   ports.Confirmer
	stdout      io.Writer
	logger      *log.Logger
}

// NewService creates a new environment creation service.
// It panics if any dependency other than logger is nil.
func NewService(
	reg ports.AliasRegistry,
	sc ports.ShellConfigAccessor,
	creator ports.EnvironmentCreator,
	confirmer ports.Confirmer,
	stdout io.Writer,
	logger *log.Logger,
) ports.EnvCreationService {
	if reg == nil {
		panic("registry cannot be nil")
	}
	if sc == nil {
		panic("shellConfig cannot be nil")
	}
	if creator == nil {
		panic("creator cannot be nil")
	}
	if confirmer == nil {
		panic("confirmer cannot be nil")
	}
	if stdout == nil {
		panic("stdout cannot be nil")
	}
	return &service{
		registry:    reg,
		shellConfig: sc,
		creator:     creator,
		confirmer:   confirmer,
		stdout:      stdout,
		logger:      logging.OrDiscard(logger),
	}
}

// DestinationFromArgs returns the first argument that does not look like an
// option. The boolean is false when every argument starts with "-".
func DestinationFromArgs(args []string) (string, bool) {
	for _, arg := range args {
		if !strings.HasPrefix(arg, "-") {
			return arg, true
		}
	}
	return "", false
}

// Create runs the environment command and, when an alias is requested,
// registers it. A command failure removes the alias written for it.
func (s *service) Create(ctx context.Context, req ports.CreateRequest) (ports.CreateResult, error) {
	var result ports.CreateResult
	if req.Alias == "" && len(req.Args) == 0 {
		return result, ErrNoArguments
	}

	if req.Alias == "" {
		return result, s.createWithoutAlias(ctx, req.Args)
	}

	destination, ok := DestinationFromArgs(req.Args)
	if !ok {
		return result, registry.ErrDestinationNotSpecified
	}
	result.Destination = destination

	added, err := s.shellConfig.EnsureReference(s.registry.Path())
	switch {
	case errors.Is(err, ports.ErrUnsupportedShell):
		s.logger.Warn("Shell startup file not updated", "reason", err)
		result.ReferenceSkipped = true
	case err != nil:
		return result, fmt.Errorf("failed to reference the functions file: %w", err)
	case added:
		result.ReferenceAdded = true
		if result.StartupFile, err = s.shellConfig.ConfigPath(); err != nil {
			s.logger.Debug("Startup file path unavailable", "err", err)
		}
	}

	workDir := req.WorkingDirectory
	if workDir == "" {
		if workDir, err = os.Getwd(); err != nil {
			return result, fmt.Errorf("failed to get working directory: %w", err)
		}
	}

	newAlias := alias.Alias{Name: req.Alias, WorkingDirectory: workDir, EnvSubdirectory: destination}
	if err := s.registry.Append(newAlias); err != nil {
		return result, fmt.Errorf("failed to add alias: %w", err)
	}
	result.AliasWritten = true

	runErr := s.creator.Create(ctx, req.Args, s.stdout)
	if runErr == nil {
		return result, nil
	}

	s.logger.Info("Environment command failed, removing alias", "name", req.Alias)
	result.AliasWritten = false
	if err := s.registry.Delete(req.Alias); err != nil {
		return result, errors.Join(runErr, fmt.Errorf("failed to roll back alias '%s': %w", req.Alias, err))
	}
	result.RolledBack = true
	return result, runErr
}

func (s *service) createWithoutAlias(ctx context.Context, args []string) error {
	proceed, err := s.confirmer.Confirm(NoAliasQuestion, ports.DefaultYes)
	if err != nil {
		return fmt.Errorf("failed to read answer: %w", err)
	}
	if !proceed {
		return ErrDeclined
	}
	return s.creator.Create(ctx, args, s.stdout)
}
