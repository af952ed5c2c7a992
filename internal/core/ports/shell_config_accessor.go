package ports

import "errors"

// ErrUnsupportedShell is returned when no startup file is known for the user's shell.
var ErrUnsupportedShell = errors.New("unsupported shell")

/*
ShellConfigAccessor defines the interface to the shell startup file that must
source the alias registry. This is a driven port, typically implemented by a
repository adapter that knows where each supported shell keeps its rc file.
*/
type ShellConfigAccessor interface {
	/*
	   EnsureReference appends the snippet sourcing functionsFile unless it is
	   already present. It returns true if the startup file was modified.
	*/
	EnsureReference(functionsFile string) (bool, error)

	// ConfigPath returns the startup file in use.
	ConfigPath() (string, error)
}
