package registry

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/fievelk/virtualias/internal/core/domain/alias"
	"mvdan.cc/sh/v3/syntax"
)

// AppendResult tells the caller whether Append wrote a new block.
type AppendResult int

const (
	// Appended means a new block was added to the contents.
	Appended AppendResult = iota
	// AppendAlreadyDefined means a function with the same name exists; the
	// contents are returned unchanged.
	AppendAlreadyDefined
)

func (r AppendResult) String() string {
	switch r {
	case Appended:
		return "appended"
	case AppendAlreadyDefined:
		return "already defined"
	default:
		return fmt.Sprintf("AppendResult(%d)", int(r))
	}
}

// DeleteResult tells the caller what Delete did.
type DeleteResult int

const (
	// Deleted means every block of the alias was removed.
	Deleted DeleteResult = iota
	// DeleteNotFound means no start marker for the alias was found.
	DeleteNotFound
	// DeleteClosingMarkerMissing means a start marker had no end marker. The
	// original contents are returned byte for byte.
	DeleteClosingMarkerMissing
)

func (r DeleteResult) String() string {
	switch r {
	case Deleted:
		return "deleted"
	case DeleteNotFound:
		return "not found"
	case DeleteClosingMarkerMissing:
		return "closing marker missing"
	default:
		return fmt.Sprintf("DeleteResult(%d)", int(r))
	}
}

// Err converts a failed result to the matching sentinel error. It returns nil
// for Deleted.
func (r DeleteResult) Err() error {
	switch r {
	case DeleteNotFound:
		return ErrAliasNotFound
	case DeleteClosingMarkerMissing:
		return ErrClosingMarkerMissing
	default:
		return nil
	}
}

func declarationPattern(name string) *regexp.Regexp {
	return regexp.MustCompile(`^(?:function\s+)?` + regexp.QuoteMeta(name) + `\s*\(\s*\)`)
}

// Exists reports whether any line of contents declares a function called name.
func Exists(name string, contents string) bool {
	if name == "" {
		return false
	}
	pattern := declarationPattern(name)
	for _, line := range strings.Split(contents, "\n") {
		if pattern.MatchString(strings.TrimSpace(line)) {
			return true
		}
	}
	return false
}

// Append adds the block for a after the existing contents. When a function
// with the same name is already declared the contents are returned unchanged
// together with AppendAlreadyDefined. The result is meaningless when an error
// is returned.
func Append(a alias.Alias, contents string) (string, AppendResult, error) {
	if Exists(a.Name, contents) {
		return contents, AppendAlreadyDefined, nil
	}

	block, err := RenderBlock(a)
	if err != nil {
		return contents, Appended, err
	}

	var sb strings.Builder
	sb.WriteString(contents)
	if contents != "" && !strings.HasSuffix(contents, "\n") {
		sb.WriteString("\n")
	}
	sb.WriteString(block)
	return sb.String(), Appended, nil
}

// ActivationScript returns the path of the activate script of the environment
// described by a.
func ActivationScript(a alias.Alias) string {
	envDir := a.EnvSubdirectory
	if !filepath.IsAbs(envDir) {
		envDir = filepath.Join(a.WorkingDirectory, envDir)
	}
	return filepath.Join(envDir, "bin", "activate")
}

// RenderBlock renders the marked block for a, newline terminated. The result
// is parsed back to make sure it declares exactly one function named a.Name.
func RenderBlock(a alias.Alias) (string, error) {
	if a.Name == "" {
		return "", fmt.Errorf("%w: empty name", ErrInvalidAlias)
	}
	if strings.ContainsAny(a.Name, "\r\n") {
		return "", fmt.Errorf("%w: name %q spans multiple lines", ErrInvalidAlias, a.Name)
	}
	if bodyCommands[a.Name] {
		return "", fmt.Errorf("%w: %q would shadow a command the function calls", ErrInvalidAlias, a.Name)
	}

	workDir, err := syntax.Quote(a.WorkingDirectory, syntax.LangBash)
	if err != nil {
		return "", fmt.Errorf("%w: working directory %q: %v", ErrInvalidAlias, a.WorkingDirectory, err)
	}
	script, err := syntax.Quote(ActivationScript(a), syntax.LangBash)
	if err != nil {
		return "", fmt.Errorf("%w: activation script of %q: %v", ErrInvalidAlias, a.Name, err)
	}

	var sb strings.Builder
	sb.WriteString(StartMarker(a.Name) + "\n")
	fmt.Fprintf(&sb, "%s() {\n", a.Name)
	fmt.Fprintf(&sb, "    cd %s\n", workDir)
	fmt.Fprintf(&sb, "    source %s\n", script)
	sb.WriteString("}\n")
	sb.WriteString(EndMarker(a.Name) + "\n")
	block := sb.String()

	if err := validateBlock(a.Name, block); err != nil {
		return "", err
	}
	return block, nil
}

// bodyCommands are the builtins a rendered function calls. A function with
// one of these names would call itself instead.
var bodyCommands = map[string]bool{
	"cd":     true,
	"source": true,
}

func validateBlock(name, block string) error {
	file, err := syntax.NewParser(syntax.Variant(syntax.LangBash)).Parse(strings.NewReader(block), name)
	if err != nil {
		return fmt.Errorf("%w: %q is not a valid function name: %v", ErrInvalidAlias, name, err)
	}
	if len(file.Stmts) != 1 {
		return fmt.Errorf("%w: %q does not render a single function", ErrInvalidAlias, name)
	}
	fn, ok := file.Stmts[0].Cmd.(*syntax.FuncDecl)
	if !ok || fn.Name.Value != name {
		return fmt.Errorf("%w: %q is not a valid function name", ErrInvalidAlias, name)
	}
	return nil
}

// Delete removes every block of the named alias. Lines are compared with the
// markers after trimming surrounding whitespace. When a start marker has no
// matching end marker the original contents are returned unchanged.
func Delete(name string, contents string) (string, DeleteResult) {
	start := StartMarker(name)
	end := EndMarker(name)

	lines := strings.SplitAfter(contents, "\n")
	var sb strings.Builder
	found := false

	for i := 0; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) != start {
			sb.WriteString(lines[i])
			continue
		}
		found = true
		closed := false
		for i++; i < len(lines); i++ {
			if strings.TrimSpace(lines[i]) == end {
				closed = true
				break
			}
		}
		if !closed {
			return contents, DeleteClosingMarkerMissing
		}
	}

	if !found {
		return contents, DeleteNotFound
	}
	return sb.String(), Deleted
}

// Block returns the first marked block of the named alias, markers included.
// It fails with ErrAliasNotFound or ErrClosingMarkerMissing like Delete.
func Block(name string, contents string) (string, error) {
	start := StartMarker(name)
	end := EndMarker(name)
	lines := strings.SplitAfter(contents, "\n")

	for i := 0; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) != start {
			continue
		}
		for j := i + 1; j < len(lines); j++ {
			if strings.TrimSpace(lines[j]) == end {
				block := strings.Join(lines[i:j+1], "")
				if !strings.HasSuffix(block, "\n") {
					block += "\n"
				}
				return block, nil
			}
		}
		return "", ErrClosingMarkerMissing
	}
	return "", ErrAliasNotFound
}
