package envcreation

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/fievelk/virtualias/internal/core/domain/alias"
	"github.com/fievelk/virtualias/internal/core/domain/registry"
	"github.com/fievelk/virtualias/internal/core/ports"
	"github.com/fievelk/virtualias/internal/core/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const workDir = "/home/u/project"

func newTestService(reg ports.AliasRegistry, sc ports.ShellConfigAccessor, creator ports.EnvironmentCreator, confirmer ports.Confirmer) ports.EnvCreationService {
	return NewService(reg, sc, creator, confirmer, io.Discard, nil)
}

func TestNewService_PanicsOnNil(t *testing.T) {
	reg := testutil.NewMemoryAliasRegistry("")
	sc := &testutil.MockShellConfigAccessor{}
	creator := &testutil.MockEnvironmentCreator{}
	confirmer := &testutil.ScriptedConfirmer{}

	assert.Panics(t, func() { NewService(nil, sc, creator, confirmer, io.Discard, nil) })
	assert.Panics(t, func() { NewService(reg, nil, creator, confirmer, io.Discard, nil) })
	assert.Panics(t, func() { NewService(reg, sc, nil, confirmer, io.Discard, nil) })
	assert.Panics(t, func() { NewService(reg, sc, creator, nil, io.Discard, nil) })
	assert.Panics(t, func() { NewService(reg, sc, creator, confirmer, nil, nil) })
	assert.NotPanics(t, func() { NewService(reg, sc, creator, confirmer, io.Discard, nil) })
}

func TestDestinationFromArgs(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		want   string
		wantOK bool
	}{
		{name: "single destination", args: []string{"env"}, want: "env", wantOK: true},
		{name: "options before destination", args: []string{"--clear", "env"}, want: "env", wantOK: true},
		{name: "option value is taken", args: []string{"-p", "python3", "env"}, want: "python3", wantOK: true},
		{name: "only options", args: []string{"--clear", "-q"}, wantOK: false},
		{name: "empty", args: nil, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DestinationFromArgs(tt.args)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestService_Create_WithAlias(t *testing.T) {
	reg := testutil.NewMemoryAliasRegistry("")
	sc := &testutil.MockShellConfigAccessor{
		EnsureReferenceFunc: func(string) (bool, error) { return true, nil },
		ConfigPathFunc:      func() (string, error) { return "/home/u/.bashrc", nil },
	}
	creator := &testutil.MockEnvironmentCreator{}
	svc := newTestService(reg, sc, creator, &testutil.ScriptedConfirmer{})

	result, err := svc.Create(context.Background(), ports.CreateRequest{
		Alias:            "proj",
		Args:             []string{"--clear", "env"},
		WorkingDirectory: workDir,
	})
	require.NoError(t, err)

	assert.Equal(t, ports.CreateResult{Destination: "env", AliasWritten: true, ReferenceAdded: true, StartupFile: "/home/u/.bashrc"}, result)
	assert.Equal(t, []string{reg.Path()}, sc.EnsureReferenceCalls)
	assert.Equal(t, [][]string{{"--clear", "env"}}, creator.CreateCalls)

	records, _ := reg.List()
	assert.Equal(t, []alias.Alias{{Name: "proj", WorkingDirectory: workDir, EnvSubdirectory: "env"}}, records)
}

func TestService_Create_StreamsToStdout(t *testing.T) {
	var out bytes.Buffer
	creator := &testutil.MockEnvironmentCreator{
		CreateFunc: func(_ context.Context, _ []string, stdout io.Writer) error {
			_, err := fmt.Fprintln(stdout, "created virtual environment")
			return err
		},
	}
	svc := NewService(testutil.NewMemoryAliasRegistry(""), &testutil.MockShellConfigAccessor{}, creator, &testutil.ScriptedConfirmer{}, &out, nil)

	_, err := svc.Create(context.Background(), ports.CreateRequest{Alias: "proj", Args: []string{"env"}, WorkingDirectory: workDir})
	require.NoError(t, err)
	assert.Equal(t, "created virtual environment\n", out.String())
}

func TestService_Create_Errors(t *testing.T) {
	existing := "# Start of alias: proj\nproj() {\n    cd /old\n    source /old/env/bin/activate\n}\n# End of alias: proj\n"

	tests := []struct {
		name         string
		initial      string
		req          ports.CreateRequest
		wantErr      error
		wantRuns     int
		wantRegistry string
	}{
		{
			name:         "no arguments",
			req:          ports.CreateRequest{},
			wantErr:      ErrNoArguments,
			wantRuns:     0,
			wantRegistry: "",
		},
		{
			name:         "alias without arguments",
			req:          ports.CreateRequest{Alias: "proj", WorkingDirectory: workDir},
			wantErr:      registry.ErrDestinationNotSpecified,
			wantRuns:     0,
			wantRegistry: "",
		},
		{
			name:         "destination missing",
			req:          ports.CreateRequest{Alias: "proj", Args: []string{"--clear"}, WorkingDirectory: workDir},
			wantErr:      registry.ErrDestinationNotSpecified,
			wantRuns:     0,
			wantRegistry: "",
		},
		{
			name:         "alias already defined",
			initial:      existing,
			req:          ports.CreateRequest{Alias: "proj", Args: []string{"env"}, WorkingDirectory: workDir},
			wantErr:      registry.ErrAliasAlreadyDefined,
			wantRuns:     0,
			wantRegistry: existing,
		},
		{
			name:         "alias named after a command the function calls",
			req:          ports.CreateRequest{Alias: "cd", Args: []string{"env"}, WorkingDirectory: workDir},
			wantErr:      registry.ErrInvalidAlias,
			wantRuns:     0,
			wantRegistry: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := testutil.NewMemoryAliasRegistry(tt.initial)
			creator := &testutil.MockEnvironmentCreator{}
			svc := newTestService(reg, &testutil.MockShellConfigAccessor{}, creator, &testutil.ScriptedConfirmer{})

			_, err := svc.Create(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Len(t, creator.CreateCalls, tt.wantRuns)
			assert.Equal(t, tt.wantRegistry, reg.Text)
		})
	}
}

func TestService_Create_RollsBackOnCommandFailure(t *testing.T) {
	initial := "export A=1\n"
	reg := testutil.NewMemoryAliasRegistry(initial)
	runErr := fmt.Errorf("%w: virtualenv exited with status 1", registry.ErrWrappedCommandFailed)
	creator := &testutil.MockEnvironmentCreator{
		CreateFunc: func(context.Context, []string, io.Writer) error { return runErr },
	}
	svc := newTestService(reg, &testutil.MockShellConfigAccessor{}, creator, &testutil.ScriptedConfirmer{})

	result, err := svc.Create(context.Background(), ports.CreateRequest{Alias: "proj", Args: []string{"env"}, WorkingDirectory: workDir})
	assert.ErrorIs(t, err, registry.ErrWrappedCommandFailed)
	assert.True(t, result.RolledBack)
	assert.False(t, result.AliasWritten)
	assert.Equal(t, initial, reg.Text)
}

func TestService_Create_RollbackFailureIsJoined(t *testing.T) {
	reg := &testutil.MockAliasRegistry{
		AppendFunc: func(alias.Alias) error { return nil },
		DeleteFunc: func(name string) error {
			return fmt.Errorf("alias '%s': %w", name, registry.ErrClosingMarkerMissing)
		},
	}
	creator := &testutil.MockEnvironmentCreator{
		CreateFunc: func(context.Context, []string, io.Writer) error { return registry.ErrWrappedCommandFailed },
	}
	svc := newTestService(reg, &testutil.MockShellConfigAccessor{}, creator, &testutil.ScriptedConfirmer{})

	result, err := svc.Create(context.Background(), ports.CreateRequest{Alias: "proj", Args: []string{"env"}, WorkingDirectory: workDir})
	assert.ErrorIs(t, err, registry.ErrWrappedCommandFailed)
	assert.ErrorIs(t, err, registry.ErrClosingMarkerMissing)
	assert.False(t, result.RolledBack)
}

func TestService_Create_UnsupportedShellContinues(t *testing.T) {
	reg := testutil.NewMemoryAliasRegistry("")
	sc := &testutil.MockShellConfigAccessor{
		EnsureReferenceFunc: func(string) (bool, error) {
			return false, fmt.Errorf("fish: %w", ports.ErrUnsupportedShell)
		},
	}
	creator := &testutil.MockEnvironmentCreator{}
	svc := newTestService(reg, sc, creator, &testutil.ScriptedConfirmer{})

	result, err := svc.Create(context.Background(), ports.CreateRequest{Alias: "proj", Args: []string{"env"}, WorkingDirectory: workDir})
	require.NoError(t, err)
	assert.True(t, result.ReferenceSkipped)
	assert.True(t, result.AliasWritten)
	assert.Len(t, creator.CreateCalls, 1)
}

func TestService_Create_ReferenceFailureStops(t *testing.T) {
	reg := testutil.NewMemoryAliasRegistry("")
	sc := &testutil.MockShellConfigAccessor{
		EnsureReferenceFunc: func(string) (bool, error) { return false, errors.New("permission denied") },
	}
	creator := &testutil.MockEnvironmentCreator{}
	svc := newTestService(reg, sc, creator, &testutil.ScriptedConfirmer{})

	_, err := svc.Create(context.Background(), ports.CreateRequest{Alias: "proj", Args: []string{"env"}, WorkingDirectory: workDir})
	require.Error(t, err)
	assert.Empty(t, creator.CreateCalls)
	assert.Empty(t, reg.Text)
}

func TestService_Create_WithoutAlias(t *testing.T) {
	tests := []struct {
		name     string
		answers  []bool
		answErr  error
		wantErr  error
		wantRuns int
	}{
		{name: "confirmed", answers: []bool{true}, wantRuns: 1},
		{name: "declined", answers: []bool{false}, wantErr: ErrDeclined, wantRuns: 0},
		{name: "prompt fails", answErr: io.EOF, wantErr: io.EOF, wantRuns: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := testutil.NewMemoryAliasRegistry("")
			sc := &testutil.MockShellConfigAccessor{}
			creator := &testutil.MockEnvironmentCreator{}
			confirmer := &testutil.ScriptedConfirmer{Answers: tt.answers, Err: tt.answErr}
			svc := newTestService(reg, sc, creator, confirmer)

			result, err := svc.Create(context.Background(), ports.CreateRequest{Args: []string{"env"}, WorkingDirectory: workDir})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, []string{NoAliasQuestion}, confirmer.Questions)
			assert.Len(t, creator.CreateCalls, tt.wantRuns)
			assert.Empty(t, sc.EnsureReferenceCalls)
			assert.Empty(t, reg.Text)
			assert.False(t, result.AliasWritten)
		})
	}
}
