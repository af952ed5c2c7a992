package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	// AppName is the application name.
	AppName = "virtualias"
	// EnvPrefix prefixes every environment variable read by Load.
	EnvPrefix = "VIRTUALIAS"
	// ConfigFileName is the name of the config file inside ConfigDir.
	ConfigFileName = "config.yaml"
	// ConfigFileEnv names the variable holding an explicit config file path.
	ConfigFileEnv = EnvPrefix + "_CONFIG"

	// DefaultFunctionsFile is where alias blocks are kept unless configured.
	DefaultFunctionsFile = "~/.virtualias_functions"
	// DefaultVirtualenv is the wrapped environment creation command.
	DefaultVirtualenv = "virtualenv"
	// DefaultLogLevel keeps diagnostics quiet unless asked for.
	DefaultLogLevel = "warn"
)

// Config holds the resolved settings.
type Config struct {
	// FunctionsFile is the alias registry file.
	FunctionsFile string `mapstructure:"functions_file" yaml:"functions_file"`
	// ShellConfig overrides shell startup file detection when set.
	ShellConfig string `mapstructure:"shell_config" yaml:"shell_config"`
	// Virtualenv is the executable invoked to create environments.
	Virtualenv string `mapstructure:"virtualenv" yaml:"virtualenv"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() *Config {
	return &Config{
		FunctionsFile: DefaultFunctionsFile,
		Virtualenv:    DefaultVirtualenv,
		LogLevel:      DefaultLogLevel,
	}
}

// LoadOptions controls where Load looks for a config file.
type LoadOptions struct {
	// ConfigFilePath is used exclusively when set; it must exist.
	ConfigFilePath string
	// ConfigDirPath replaces ConfigDir() when set.
	ConfigDirPath string
}

// ConfigDir returns $XDG_CONFIG_HOME/virtualias, defaulting to ~/.config/virtualias.
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, ".config")
	}
	return filepath.Join(configDir, AppName), nil
}

// Load resolves the configuration. It returns the config and the path of the
// file it was read from, empty when only defaults and environment were used.
func Load(opts LoadOptions) (*Config, string, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("functions_file", defaults.FunctionsFile)
	v.SetDefault("shell_config", defaults.ShellConfig)
	v.SetDefault("virtualenv", defaults.Virtualenv)
	v.SetDefault("log_level", defaults.LogLevel)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if opts.ConfigFilePath == "" {
		opts.ConfigFilePath = os.Getenv(ConfigFileEnv)
	}

	resolvedPath := ""
	if opts.ConfigFilePath != "" {
		path, err := ExpandHome(opts.ConfigFilePath)
		if err != nil {
			return nil, "", fmt.Errorf("failed to expand config path %s: %w", opts.ConfigFilePath, err)
		}
		if !fileExists(path) {
			return nil, "", fmt.Errorf("config file not found: %s", path)
		}
		resolvedPath = path
	} else {
		dir := opts.ConfigDirPath
		if dir == "" {
			var err error
			if dir, err = ConfigDir(); err != nil {
				return nil, "", err
			}
		}
		if path := filepath.Join(dir, ConfigFileName); fileExists(path) {
			resolvedPath = path
		}
	}

	if resolvedPath != "" {
		v.SetConfigFile(resolvedPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, "", fmt.Errorf("failed to read config file %s: %w", resolvedPath, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", err
	}
	return &cfg, resolvedPath, nil
}

func (c *Config) normalize() error {
	if strings.TrimSpace(c.Virtualenv) == "" {
		return errors.New("virtualenv command must not be empty")
	}
	if strings.TrimSpace(c.FunctionsFile) == "" {
		return errors.New("functions_file must not be empty")
	}

	functionsFile, err := ExpandHome(c.FunctionsFile)
	if err != nil {
		return fmt.Errorf("failed to expand functions_file %s: %w", c.FunctionsFile, err)
	}
	c.FunctionsFile = functionsFile

	if c.ShellConfig != "" {
		shellConfig, err := ExpandHome(c.ShellConfig)
		if err != nil {
			return fmt.Errorf("failed to expand shell_config %s: %w", c.ShellConfig, err)
		}
		c.ShellConfig = shellConfig
	}
	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
