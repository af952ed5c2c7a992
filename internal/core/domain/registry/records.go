package registry

import (
	"path/filepath"
	"strings"

	"github.com/fievelk/virtualias/internal/core/domain/alias"
	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/syntax"
)

// Records reconstructs the aliases defined by complete marked blocks, in file
// order. Blocks without an end marker are skipped. When a block body cannot
// be parsed the record only carries the name.
func Records(contents string) []alias.Alias {
	var records []alias.Alias
	lines := strings.Split(contents, "\n")

	for i := 0; i < len(lines); i++ {
		trimmed := strings.TrimSpace(lines[i])
		if !strings.HasPrefix(trimmed, startMarkerPrefix) {
			continue
		}
		name := strings.TrimPrefix(trimmed, startMarkerPrefix)
		end := EndMarker(name)

		var body []string
		closed := false
		for j := i + 1; j < len(lines); j++ {
			if strings.TrimSpace(lines[j]) == end {
				closed = true
				i = j
				break
			}
			body = append(body, lines[j])
		}
		if !closed {
			continue
		}
		records = append(records, parseBody(name, strings.Join(body, "\n")))
	}
	return records
}

// parseBody reads the cd and source targets of the function declared in body.
func parseBody(name, body string) alias.Alias {
	record := alias.Alias{Name: name}

	file, err := syntax.NewParser(syntax.Variant(syntax.LangBash)).Parse(strings.NewReader(body), name)
	if err != nil {
		return record
	}

	var script string
	syntax.Walk(file, func(node syntax.Node) bool {
		call, ok := node.(*syntax.CallExpr)
		if !ok || len(call.Args) < 2 {
			return true
		}
		cmd, err := expand.Literal(nil, call.Args[0])
		if err != nil {
			return true
		}
		arg, err := expand.Literal(nil, call.Args[1])
		if err != nil {
			return true
		}
		switch cmd {
		case "cd":
			if record.WorkingDirectory == "" {
				record.WorkingDirectory = arg
			}
		case "source", ".":
			if script == "" {
				script = arg
			}
		}
		return true
	})

	if script != "" {
		record.EnvSubdirectory = envFromScript(record.WorkingDirectory, script)
	}
	return record
}

// envFromScript turns ".../bin/activate" back into the environment directory,
// relative to workDir when it lives below it.
func envFromScript(workDir, script string) string {
	envDir := filepath.Dir(filepath.Dir(script))
	if workDir == "" {
		return envDir
	}
	rel, err := filepath.Rel(workDir, envDir)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return envDir
	}
	return rel
}
