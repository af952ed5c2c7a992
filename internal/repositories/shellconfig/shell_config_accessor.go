package shellconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/fievelk/virtualias/internal/config"
	"github.com/fievelk/virtualias/internal/core/domain/registry"
	"github.com/fievelk/virtualias/internal/core/ports"
	"github.com/fievelk/virtualias/internal/logging"
)

// ErrUnsupportedShell is returned when no startup file is known for $SHELL.
var ErrUnsupportedShell = ports.ErrUnsupportedShell

// startupFiles maps a shell name to its startup file, relative to the home directory.
var startupFiles = map[string]string{
	"bash": ".bashrc",
	"zsh":  ".zshrc",
}

// ShellConfigAccessor provides access to the user's shell startup file via the file system.
type ShellConfigAccessor struct {
	shell      string
	configPath string
	logger     *log.Logger
}

// NewShellConfigAccessor creates a new ShellConfigAccessor. A non-empty
// override is used as the startup file regardless of $SHELL.
func NewShellConfigAccessor(override string, logger *log.Logger) (ports.ShellConfigAccessor, error) {
	sca := &ShellConfigAccessor{logger: logging.OrDiscard(logger)}

	shellPath := os.Getenv("SHELL")
	if shellPath != "" {
		sca.shell = filepath.Base(shellPath)
	}

	if override != "" {
		sca.configPath = override
		return sca, nil
	}

	if shellPath == "" {
		sca.logger.Debug("SHELL environment variable not set")
		return sca, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}
	if name, ok := startupFiles[sca.shell]; ok {
		sca.configPath = filepath.Join(homeDir, name)
	}
	return sca, nil
}

// ConfigPath implements the ports.ShellConfigAccessor interface.
func (sca *ShellConfigAccessor) ConfigPath() (string, error) {
	if sca.configPath == "" {
		return "", fmt.Errorf("%w: %q (supported: bash, zsh; set shell_config to choose a file)", ErrUnsupportedShell, sca.shell)
	}
	return sca.configPath, nil
}

// EnsureReference implements the ports.ShellConfigAccessor interface.
func (sca *ShellConfigAccessor) EnsureReference(functionsFile string) (bool, error) {
	configPath, err := sca.ConfigPath()
	if err != nil {
		return false, err
	}

	contents, err := readConfigFile(configPath)
	if err != nil {
		return false, err
	}

	updated, changed, err := registry.EnsureReferenceLine(contents, functionsFile)
	if err != nil {
		return false, fmt.Errorf("failed to build reference to %s: %w", config.ToUserFriendlyPath(functionsFile), err)
	}
	if !changed {
		sca.logger.Debug("Functions reference already present", "file", configPath)
		return false, nil
	}

	if err := appendToConfigFile(configPath, updated[len(contents):]); err != nil {
		return false, err
	}
	sca.logger.Info("Functions reference written", "file", configPath)
	return true, nil
}
