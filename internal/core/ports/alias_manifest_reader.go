package ports

import "github.com/fievelk/virtualias/internal/core/domain/alias"

// AliasManifestReader defines the interface for reading alias records from a
// manifest file, such as the YAML written by 'virtualias list --output yaml'.
type AliasManifestReader interface {
	// ReadAliases loads the records stored at path.
	ReadAliases(path string) ([]alias.Alias, error)
}
