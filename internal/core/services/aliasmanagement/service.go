package aliasmanagement

import (
	"errors"
	"fmt"

	"github.com/fievelk/virtualias/internal/core/domain/alias"
	"github.com/fievelk/virtualias/internal/core/domain/registry"
	"github.com/fievelk/virtualias/internal/core/ports"
)

type service struct {
	registry ports.AliasRegistry
	manifest ports.AliasManifestReader // Can be nil if importing is not configured.
}

// NewService creates a new alias management service.
// It panics if the registry is nil. manifest can be nil if not used.
func NewService(reg ports.AliasRegistry, manifest ports.AliasManifestReader) ports.AliasManagementService {
	if reg == nil {
		panic("registry cannot be nil")
	}
	return &service{registry: reg, manifest: manifest}
}

// ListAliases retrieves all aliases defined in the registry file.
func (s *service) ListAliases() ([]alias.Alias, error) {
	aliases, err := s.registry.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list aliases: %w", err)
	}
	return aliases, nil
}

// ShowAlias returns the marked block of the named alias.
func (s *service) ShowAlias(name string) (string, error) {
	contents, err := s.registry.Contents()
	if err != nil {
		return "", fmt.Errorf("failed to read registry: %w", err)
	}
	block, err := registry.Block(name, contents)
	if err != nil {
		return "", fmt.Errorf("cannot show alias '%s': %w", name, err)
	}
	return block, nil
}

// RemoveAlias deletes the block of the named alias from the registry.
func (s *service) RemoveAlias(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", registry.ErrInvalidAlias)
	}
	if err := s.registry.Delete(name); err != nil {
		return fmt.Errorf("failed to remove alias '%s': %w", name, err)
	}
	return nil
}

// PreviewRemoval computes the registry text RemoveAlias would write.
func (s *service) PreviewRemoval(name string) (string, string, error) {
	if name == "" {
		return "", "", fmt.Errorf("%w: empty name", registry.ErrInvalidAlias)
	}
	before, err := s.registry.Contents()
	if err != nil {
		return "", "", fmt.Errorf("failed to read registry: %w", err)
	}
	after, result := registry.Delete(name, before)
	if err := result.Err(); err != nil {
		return before, before, fmt.Errorf("cannot remove alias '%s': %w", name, err)
	}
	return before, after, nil
}

// ImportAliases appends the records of the manifest at path. Records already
// defined are skipped; records missing a directory or an environment, or
// whose name is not a valid function name, are reported as invalid. The
// report is filled up to the first write failure.
func (s *service) ImportAliases(path string) (ports.ImportReport, error) {
	var report ports.ImportReport
	if s.manifest == nil {
		return report, fmt.Errorf("alias import is not configured")
	}

	records, err := s.manifest.ReadAliases(path)
	if err != nil {
		return report, err
	}

	for _, record := range records {
		if record.Name == "" || record.WorkingDirectory == "" || record.EnvSubdirectory == "" {
			report.Invalid = append(report.Invalid, record.Name)
			continue
		}
		err := s.registry.Append(record)
		switch {
		case err == nil:
			report.Added = append(report.Added, record.Name)
		case errors.Is(err, registry.ErrAliasAlreadyDefined):
			report.Skipped = append(report.Skipped, record.Name)
		case errors.Is(err, registry.ErrInvalidAlias):
			report.Invalid = append(report.Invalid, record.Name)
		default:
			return report, fmt.Errorf("failed to import alias '%s': %w", record.Name, err)
		}
	}
	return report, nil
}

// RegistryPath returns the location of the registry file.
func (s *service) RegistryPath() string {
	return s.registry.Path()
}
