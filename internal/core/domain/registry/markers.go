/*
Package registry implements the text protocol of the alias registry file.

An alias is stored as a block of shell code bounded by a start marker line and
an end marker line, both naming the alias. All functions in this package are
pure: they take the current file contents and return the new contents.
*/
package registry

const (
	startMarkerPrefix = "# Start of alias: "
	endMarkerPrefix   = "# End of alias: "

	// ReferenceMarker is the line identifying the reference snippet in a shell
	// startup file.
	ReferenceMarker = "# virtualias functions reference."
)

// StartMarker returns the line opening the block of the named alias.
func StartMarker(name string) string {
	return startMarkerPrefix + name
}

// EndMarker returns the line closing the block of the named alias.
func EndMarker(name string) string {
	return endMarkerPrefix + name
}
