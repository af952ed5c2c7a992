package testutil

import (
	"errors"

	"github.com/fievelk/virtualias/internal/core/domain/alias"
	"github.com/fievelk/virtualias/internal/core/ports"
)

// MockAliasManifestReader is a mock implementation of ports.AliasManifestReader.
type MockAliasManifestReader struct {
	ReadAliasesFunc func(path string) ([]alias.Alias, error)
}

func (m *MockAliasManifestReader) ReadAliases(path string) ([]alias.Alias, error) {
	if m.ReadAliasesFunc != nil {
		return m.ReadAliasesFunc(path)
	}
	return nil, errors.New("MockAliasManifestReader: ReadAliasesFunc not implemented")
}

var _ ports.AliasManifestReader = (*MockAliasManifestReader)(nil)
