package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fievelk/virtualias/internal/core/ports"
	"github.com/fievelk/virtualias/internal/handlers/ui"
)

var validChoices = map[string]bool{"yes": true, "y": true, "no": false, "n": false}

// Console implements ports.Confirmer by asking on a terminal.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConsole creates a Console reading answers from in and writing questions to out.
func NewConsole(in io.Reader, out io.Writer) ports.Confirmer {
	return &Console{in: bufio.NewReader(in), out: out}
}

// Confirm asks question until a valid answer is given. An empty answer
// selects def unless def is ports.NoDefault.
func (c *Console) Confirm(question string, def ports.Answer) (bool, error) {
	hint, err := answerHint(def)
	if err != nil {
		return false, err
	}

	for {
		fmt.Fprintf(c.out, "%s %s ", ui.PromptColor(question), hint)

		input, err := c.in.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && input != "") {
			return false, fmt.Errorf("failed to read user input: %w", err)
		}

		choice := strings.ToLower(strings.TrimSpace(input))
		if choice == "" && def != ports.NoDefault {
			return def == ports.DefaultYes, nil
		}
		if answer, ok := validChoices[choice]; ok {
			return answer, nil
		}
		fmt.Fprintln(c.out, ui.WarningColor("Please answer 'yes' or 'no' ('y' or 'n')."))
	}
}

func answerHint(def ports.Answer) (string, error) {
	switch def {
	case ports.NoDefault:
		return "[y/n]", nil
	case ports.DefaultYes:
		return "[Y/n]", nil
	case ports.DefaultNo:
		return "[y/N]", nil
	default:
		return "", fmt.Errorf("invalid default answer %d", def)
	}
}
