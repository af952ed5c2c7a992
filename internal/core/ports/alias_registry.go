package ports

import "github.com/fievelk/virtualias/internal/core/domain/alias"

/*
AliasRegistry defines the interface to the file holding all alias blocks.
This is a driven port, implemented by a repository that reads the whole file,
edits it through the registry package and writes it back.
*/
type AliasRegistry interface {
	// Exists reports whether a function with the given name is declared.
	Exists(name string) (bool, error)

	/*
	   Append writes the block for newAlias.
	   It returns registry.ErrAliasAlreadyDefined, leaving the file untouched,
	   when the name is taken.
	*/
	Append(newAlias alias.Alias) error

	/*
	   Delete removes the block of the named alias. It returns
	   registry.ErrAliasNotFound or registry.ErrClosingMarkerMissing without
	   modifying the file when the block cannot be removed.
	*/
	Delete(name string) error

	// List returns the aliases defined by complete blocks, in file order.
	List() ([]alias.Alias, error)

	// Contents returns the raw registry text.
	Contents() (string, error)

	// Path returns the location of the registry file.
	Path() string
}
