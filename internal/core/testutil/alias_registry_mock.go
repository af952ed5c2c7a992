package testutil

import (
	"errors"
	"fmt"

	"github.com/fievelk/virtualias/internal/core/domain/alias"
	"github.com/fievelk/virtualias/internal/core/domain/registry"
	"github.com/fievelk/virtualias/internal/core/ports"
)

// MockAliasRegistry is a mock implementation of ports.AliasRegistry.
type MockAliasRegistry struct {
	ExistsFunc   func(name string) (bool, error)
	AppendFunc   func(newAlias alias.Alias) error
	DeleteFunc   func(name string) error
	ListFunc     func() ([]alias.Alias, error)
	ContentsFunc func() (string, error)
	PathFunc     func() string
}

func (m *MockAliasRegistry) Exists(name string) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(name)
	}
	return false, errors.New("MockAliasRegistry: ExistsFunc not implemented")
}

func (m *MockAliasRegistry) Append(newAlias alias.Alias) error {
	if m.AppendFunc != nil {
		return m.AppendFunc(newAlias)
	}
	return errors.New("MockAliasRegistry: AppendFunc not implemented")
}

func (m *MockAliasRegistry) Delete(name string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(name)
	}
	return errors.New("MockAliasRegistry: DeleteFunc not implemented")
}

func (m *MockAliasRegistry) List() ([]alias.Alias, error) {
	if m.ListFunc != nil {
		return m.ListFunc()
	}
	return nil, errors.New("MockAliasRegistry: ListFunc not implemented")
}

func (m *MockAliasRegistry) Contents() (string, error) {
	if m.ContentsFunc != nil {
		return m.ContentsFunc()
	}
	return "", errors.New("MockAliasRegistry: ContentsFunc not implemented")
}

func (m *MockAliasRegistry) Path() string {
	if m.PathFunc != nil {
		return m.PathFunc()
	}
	return "/mock/.virtualias_functions"
}

var _ ports.AliasRegistry = (*MockAliasRegistry)(nil)

// MemoryAliasRegistry keeps the registry text in memory and edits it with the
// registry package, like the file repository does.
type MemoryAliasRegistry struct {
	Text     string
	FilePath string
}

// NewMemoryAliasRegistry creates a MemoryAliasRegistry holding contents.
func NewMemoryAliasRegistry(contents string) *MemoryAliasRegistry {
	return &MemoryAliasRegistry{Text: contents, FilePath: "/memory/.virtualias_functions"}
}

func (m *MemoryAliasRegistry) Exists(name string) (bool, error) {
	return registry.Exists(name, m.Text), nil
}

func (m *MemoryAliasRegistry) Append(newAlias alias.Alias) error {
	updated, result, err := registry.Append(newAlias, m.Text)
	if err != nil {
		return err
	}
	if result == registry.AppendAlreadyDefined {
		return fmt.Errorf("alias '%s': %w", newAlias.Name, registry.ErrAliasAlreadyDefined)
	}
	m.Text = updated
	return nil
}

func (m *MemoryAliasRegistry) Delete(name string) error {
	updated, result := registry.Delete(name, m.Text)
	if err := result.Err(); err != nil {
		return fmt.Errorf("alias '%s': %w", name, err)
	}
	m.Text = updated
	return nil
}

func (m *MemoryAliasRegistry) List() ([]alias.Alias, error) {
	return registry.Records(m.Text), nil
}

func (m *MemoryAliasRegistry) Contents() (string, error) {
	return m.Text, nil
}

func (m *MemoryAliasRegistry) Path() string {
	return m.FilePath
}

var _ ports.AliasRegistry = (*MemoryAliasRegistry)(nil)
