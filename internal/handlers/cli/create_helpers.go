package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fievelk/virtualias/internal/config"
	"github.com/fievelk/virtualias/internal/core/domain/registry"
	"github.com/fievelk/virtualias/internal/core/ports"
	"github.com/fievelk/virtualias/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// ErrMissingAliasName indicates -a/--alias was given without a name.
var ErrMissingAliasName = errors.New("flag needs an argument: --alias")

type createArgs struct {
	alias       string
	passthrough []string
	showHelp    bool
	showVersion bool
}

// parseCreateArgs pulls the options virtualias owns out of args and keeps
// everything else, in order, for virtualenv. Arguments after "--" are never
// interpreted. A repeated alias option keeps the last name.
func parseCreateArgs(args []string) (createArgs, error) {
	var parsed createArgs

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			parsed.passthrough = append(parsed.passthrough, args[i+1:]...)
			return parsed, nil
		case arg == "-h" || arg == "--help":
			parsed.showHelp = true
		case arg == "--version":
			parsed.showVersion = true
		case arg == "-a" || arg == "--alias":
			if i+1 >= len(args) || strings.HasPrefix(args[i+1], "-") {
				return parsed, ErrMissingAliasName
			}
			i++
			parsed.alias = args[i]
		case strings.HasPrefix(arg, "--alias="):
			parsed.alias = strings.TrimPrefix(arg, "--alias=")
			if parsed.alias == "" || strings.HasPrefix(parsed.alias, "-") {
				return parsed, ErrMissingAliasName
			}
		case strings.HasPrefix(arg, "-a") && !strings.HasPrefix(arg, "--"):
			if strings.HasPrefix(arg[2:], "-") {
				return parsed, ErrMissingAliasName
			}
			parsed.alias = arg[2:]
		default:
			parsed.passthrough = append(parsed.passthrough, arg)
		}
	}
	return parsed, nil
}

// printReferenceOutcome reports changes made to the shell startup file, or
// how to set it up by hand when the shell is not supported.
func printReferenceOutcome(cmd *cobra.Command, result ports.CreateResult, functionsFile string) {
	out := cmd.OutOrStdout()

	if result.ReferenceAdded {
		target := "your shell startup file"
		if result.StartupFile != "" {
			target = config.ToUserFriendlyPath(result.StartupFile)
		}
		fmt.Fprintln(out, ui.InfoColor(fmt.Sprintf("Writing reference to virtualias functions file in %s.", target)))
		return
	}
	if !result.ReferenceSkipped {
		return
	}

	snippet, err := registry.ReferenceSnippet(functionsFile)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), ui.ErrorColor(fmt.Sprintf("Could not build the startup snippet: %v", err)))
		return
	}
	fmt.Fprintln(out, ui.WarningColor("Your shell is not supported. Add these lines to its startup file to load your aliases:"))
	fmt.Fprint(out, ui.CodeColor(snippet))
}
