package cli

import (
	"strings"

	"github.com/fievelk/virtualias/internal/handlers/ui"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// lineDiff returns the changed lines between before and after, each prefixed
// with "- " or "+ " and newline terminated.
func lineDiff(before, after string) []string {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var out []string
	for _, d := range diffs {
		var prefix string
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "- "
		case diffmatchpatch.DiffInsert:
			prefix = "+ "
		default:
			continue
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			if !strings.HasSuffix(line, "\n") {
				line += "\n"
			}
			out = append(out, prefix+line)
		}
	}
	return out
}

func colorDiffLine(line string) string {
	switch {
	case strings.HasPrefix(line, "- "):
		return ui.DiffRemovedColor(line)
	case strings.HasPrefix(line, "+ "):
		return ui.DiffAddedColor(line)
	default:
		return line
	}
}
