package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolateEnv(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	for _, key := range []string{"FUNCTIONS_FILE", "SHELL_CONFIG", "VIRTUALENV", "LOG_LEVEL", "CONFIG"} {
		t.Setenv(EnvPrefix+"_"+key, "")
		os.Unsetenv(EnvPrefix + "_" + key)
	}
	return home
}

func TestLoad_Defaults(t *testing.T) {
	home := isolateEnv(t)

	cfg, path, err := Load(LoadOptions{})
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.Equal(t, filepath.Join(home, ".virtualias_functions"), cfg.FunctionsFile)
	assert.Equal(t, "virtualenv", cfg.Virtualenv)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Empty(t, cfg.ShellConfig)
}

func TestLoad_ConfigFileInConfigDir(t *testing.T) {
	home := isolateEnv(t)
	dir := filepath.Join(home, ".config", AppName)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	content := "functions_file: ~/aliases.sh\nshell_config: ~/.profile\nvirtualenv: /usr/local/bin/virtualenv\nlog_level: debug\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o644))

	cfg, path, err := Load(LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ConfigFileName), path)
	assert.Equal(t, filepath.Join(home, "aliases.sh"), cfg.FunctionsFile)
	assert.Equal(t, filepath.Join(home, ".profile"), cfg.ShellConfig)
	assert.Equal(t, "/usr/local/bin/virtualenv", cfg.Virtualenv)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	home := isolateEnv(t)
	file := filepath.Join(home, "custom.yaml")
	require.NoError(t, os.WriteFile(file, []byte("virtualenv: from-file\n"), 0o644))
	t.Setenv(ConfigFileEnv, file)
	t.Setenv("VIRTUALIAS_VIRTUALENV", "from-env")
	t.Setenv("VIRTUALIAS_FUNCTIONS_FILE", "/tmp/fns")

	cfg, path, err := Load(LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, file, path)
	assert.Equal(t, "from-env", cfg.Virtualenv)
	assert.Equal(t, "/tmp/fns", cfg.FunctionsFile)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name        string
		setup       func(t *testing.T, home string) LoadOptions
		errContains string
	}{
		{
			name: "explicit file missing",
			setup: func(t *testing.T, home string) LoadOptions {
				return LoadOptions{ConfigFilePath: filepath.Join(home, "missing.yaml")}
			},
			errContains: "config file not found",
		},
		{
			name: "malformed yaml",
			setup: func(t *testing.T, home string) LoadOptions {
				file := filepath.Join(home, "bad.yaml")
				require.NoError(t, os.WriteFile(file, []byte("virtualenv: [unclosed\n"), 0o644))
				return LoadOptions{ConfigFilePath: file}
			},
			errContains: "failed to read config file",
		},
		{
			name: "empty virtualenv",
			setup: func(t *testing.T, home string) LoadOptions {
				file := filepath.Join(home, "empty.yaml")
				require.NoError(t, os.WriteFile(file, []byte("virtualenv: \"\"\n"), 0o644))
				return LoadOptions{ConfigFilePath: file}
			},
			errContains: "virtualenv command must not be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home := isolateEnv(t)
			_, _, err := Load(tt.setup(t, home))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestExpandHome(t *testing.T) {
	home := isolateEnv(t)

	tests := []struct {
		in   string
		want string
	}{
		{in: "~", want: home},
		{in: "~/x/y", want: filepath.Join(home, "x", "y")},
		{in: "/abs/path", want: "/abs/path"},
		{in: "rel/~/path", want: "rel/~/path"},
		{in: "~user/x", want: "~user/x"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ExpandHome(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToUserFriendlyPath(t *testing.T) {
	home := isolateEnv(t)

	assert.Equal(t, "~", ToUserFriendlyPath(home))
	assert.Equal(t, filepath.Join("~", ".zshrc"), ToUserFriendlyPath(filepath.Join(home, ".zshrc")))
	assert.Equal(t, "/etc/profile", ToUserFriendlyPath("/etc/profile"))
	assert.Equal(t, home+"other", ToUserFriendlyPath(home+"other"))
}
