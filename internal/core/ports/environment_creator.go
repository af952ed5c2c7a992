package ports

import (
	"context"
	"io"
)

// EnvironmentCreator runs the wrapped environment creation command.
type EnvironmentCreator interface {
	// Create runs the command with args, streaming its output to stdout line
	// by line. A non-zero exit is reported as an error wrapping
	// registry.ErrWrappedCommandFailed.
	Create(ctx context.Context, args []string, stdout io.Writer) error
}
