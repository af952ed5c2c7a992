package aliasfile

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/fievelk/virtualias/internal/config"
	"github.com/fievelk/virtualias/internal/core/domain/alias"
	"github.com/fievelk/virtualias/internal/core/domain/registry"
	"github.com/fievelk/virtualias/internal/core/ports"
	"github.com/fievelk/virtualias/internal/logging"
)

/*
Repository stores alias blocks in a single functions file. Every operation
reads the whole file, edits the text through the registry package and
rewrites it. There is no locking; concurrent invocations race.
*/
type Repository struct {
	filePath string
	logger   *log.Logger
}

// NewRepository creates a Repository for the functions file at filePath.
func NewRepository(filePath string, logger *log.Logger) (ports.AliasRegistry, error) {
	if filePath == "" {
		return nil, fmt.Errorf("functions file path cannot be empty")
	}
	return &Repository{filePath: filePath, logger: logging.OrDiscard(logger)}, nil
}

// Path implements the ports.AliasRegistry interface.
func (r *Repository) Path() string {
	return r.filePath
}

// Contents implements the ports.AliasRegistry interface.
func (r *Repository) Contents() (string, error) {
	return r.read()
}

// Exists implements the ports.AliasRegistry interface.
func (r *Repository) Exists(name string) (bool, error) {
	contents, err := r.read()
	if err != nil {
		return false, err
	}
	return registry.Exists(name, contents), nil
}

// Append implements the ports.AliasRegistry interface.
func (r *Repository) Append(newAlias alias.Alias) error {
	contents, err := r.read()
	if err != nil {
		return err
	}

	updated, result, err := registry.Append(newAlias, contents)
	if err != nil {
		return fmt.Errorf("failed to render alias '%s': %w", newAlias.Name, err)
	}
	if result == registry.AppendAlreadyDefined {
		return fmt.Errorf("alias '%s' in %s: %w", newAlias.Name, config.ToUserFriendlyPath(r.filePath), registry.ErrAliasAlreadyDefined)
	}

	if err := r.write(updated); err != nil {
		return err
	}
	r.logger.Info("Alias written", "name", newAlias.Name, "file", r.filePath)
	return nil
}

// Delete implements the ports.AliasRegistry interface.
func (r *Repository) Delete(name string) error {
	contents, err := r.read()
	if err != nil {
		return err
	}

	updated, result := registry.Delete(name, contents)
	if result != registry.Deleted {
		r.logger.Warn("Alias not deleted", "name", name, "reason", result.String())
		return fmt.Errorf("alias '%s' in %s: %w", name, config.ToUserFriendlyPath(r.filePath), result.Err())
	}

	if err := r.write(updated); err != nil {
		return err
	}
	r.logger.Info("Alias deleted", "name", name, "file", r.filePath)
	return nil
}

// List implements the ports.AliasRegistry interface.
func (r *Repository) List() ([]alias.Alias, error) {
	contents, err := r.read()
	if err != nil {
		return nil, err
	}
	return registry.Records(contents), nil
}
