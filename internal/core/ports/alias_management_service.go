package ports

import "github.com/fievelk/virtualias/internal/core/domain/alias"

// ImportReport lists what happened to each record of an imported manifest.
type ImportReport struct {
	// Added holds the names written to the registry.
	Added []string
	// Skipped holds the names already defined in the registry.
	Skipped []string
	// Invalid holds the records that cannot become a shell function.
	Invalid []string
}

// AliasManagementService defines the contract for inspecting and maintaining aliases.
type AliasManagementService interface {
	// ListAliases retrieves all aliases in the registry file.
	ListAliases() ([]alias.Alias, error)

	// ShowAlias returns the marked block of the named alias.
	ShowAlias(name string) (string, error)

	// RemoveAlias deletes the block of the named alias.
	RemoveAlias(name string) error

	// PreviewRemoval returns the registry contents before and after removing
	// the named alias, without writing anything.
	PreviewRemoval(name string) (before string, after string, err error)

	// ImportAliases appends every record of the manifest at path that is not
	// already defined.
	ImportAliases(path string) (ImportReport, error)

	// RegistryPath returns the location of the registry file.
	RegistryPath() string
}
