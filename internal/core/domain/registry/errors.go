package registry

import "errors"

// ErrAliasAlreadyDefined is returned when an alias block for the name is
// already present. The user must choose a different name.
var ErrAliasAlreadyDefined = errors.New("alias already defined")

// ErrDestinationNotSpecified is returned when no destination directory was
// found among the arguments forwarded to the environment command.
var ErrDestinationNotSpecified = errors.New("destination directory not specified")

// ErrClosingMarkerMissing indicates a start marker without its end marker.
// The deletion is aborted and the registry is left untouched.
var ErrClosingMarkerMissing = errors.New("closing marker missing")

// ErrWrappedCommandFailed indicates the environment creation command exited
// with a non-zero status or could not be started.
var ErrWrappedCommandFailed = errors.New("environment command failed")

// ErrAliasNotFound is returned when no block for the name exists.
var ErrAliasNotFound = errors.New("alias not found")

// ErrInvalidAlias is returned when an alias cannot be rendered as a shell function.
var ErrInvalidAlias = errors.New("invalid alias")
