package ports

import "context"

// CreateRequest describes one invocation of the wrapper.
type CreateRequest struct {
	// Alias is the name to register. Empty means no alias was requested.
	Alias string
	// Args are forwarded verbatim to the environment command.
	Args []string
	// WorkingDirectory is captured in the alias body.
	WorkingDirectory string
}

// CreateResult reports what Create did.
type CreateResult struct {
	// Destination is the environment directory taken from the arguments.
	Destination string
	// AliasWritten is true when an alias block was appended and kept.
	AliasWritten bool
	// ReferenceAdded is true when the shell startup file was modified.
	ReferenceAdded bool
	// StartupFile is the shell startup file that received the reference.
	StartupFile string
	// ReferenceSkipped is true when the user's shell is not supported and the
	// startup file was left alone.
	ReferenceSkipped bool
	// RolledBack is true when the alias was removed after a command failure.
	RolledBack bool
}

// EnvCreationService defines the contract for creating an environment and its alias.
type EnvCreationService interface {
	Create(ctx context.Context, req CreateRequest) (CreateResult, error)
}
