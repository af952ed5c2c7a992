package testutil

import (
	"errors"

	"github.com/fievelk/virtualias/internal/core/ports"
)

// MockShellConfigAccessor is a mock implementation of ports.ShellConfigAccessor for testing.
type MockShellConfigAccessor struct {
	EnsureReferenceFunc func(functionsFile string) (bool, error)
	ConfigPathFunc      func() (string, error)

	// EnsureReferenceCalls keeps track of the arguments passed to EnsureReference.
	EnsureReferenceCalls []string
}

func (m *MockShellConfigAccessor) EnsureReference(functionsFile string) (bool, error) {
	m.EnsureReferenceCalls = append(m.EnsureReferenceCalls, functionsFile)
	if m.EnsureReferenceFunc != nil {
		return m.EnsureReferenceFunc(functionsFile)
	}
	return false, nil
}

func (m *MockShellConfigAccessor) ConfigPath() (string, error) {
	if m.ConfigPathFunc != nil {
		return m.ConfigPathFunc()
	}
	return "", errors.New("MockShellConfigAccessor: ConfigPathFunc not implemented")
}

var _ ports.ShellConfigAccessor = (*MockShellConfigAccessor)(nil)
