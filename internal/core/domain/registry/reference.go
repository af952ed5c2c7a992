package registry

import (
	"fmt"
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

// ReferenceSnippet returns the shell code that sources functionsFile from a
// shell startup file. The first line is ReferenceMarker.
func ReferenceSnippet(functionsFile string) (string, error) {
	quoted, err := syntax.Quote(functionsFile, syntax.LangBash)
	if err != nil {
		return "", fmt.Errorf("quoting functions file path %q: %w", functionsFile, err)
	}
	return ReferenceMarker + "\n" +
		"if [ -f " + quoted + " ]; then\n" +
		"    source " + quoted + "\n" +
		"fi\n", nil
}

// HasReference reports whether contents already carry the reference marker.
func HasReference(contents string) bool {
	for _, line := range strings.Split(contents, "\n") {
		if strings.TrimSpace(line) == ReferenceMarker {
			return true
		}
	}
	return false
}

// EnsureReferenceLine appends the reference snippet for functionsFile unless
// the marker line is already present. The bool reports whether contents changed.
func EnsureReferenceLine(contents string, functionsFile string) (string, bool, error) {
	if HasReference(contents) {
		return contents, false, nil
	}
	snippet, err := ReferenceSnippet(functionsFile)
	if err != nil {
		return contents, false, err
	}

	var sb strings.Builder
	sb.WriteString(contents)
	if contents != "" {
		if !strings.HasSuffix(contents, "\n") {
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}
	sb.WriteString(snippet)
	return sb.String(), true, nil
}
