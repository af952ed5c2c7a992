package oscommand

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/charmbracelet/log"
	"github.com/fievelk/virtualias/internal/core/domain/registry"
	"github.com/fievelk/virtualias/internal/core/ports"
	"github.com/fievelk/virtualias/internal/logging"
)

// EnvironmentRunner implements the EnvironmentCreator interface by spawning
// an environment creation executable such as virtualenv.
type EnvironmentRunner struct {
	executable string
	stderr     io.Writer
	logger     *log.Logger
}

// NewEnvironmentRunner creates a runner for the given executable. The
// command's stderr goes to the process stderr.
func NewEnvironmentRunner(executable string, logger *log.Logger) ports.EnvironmentCreator {
	return &EnvironmentRunner{
		executable: executable,
		stderr:     os.Stderr,
		logger:     logging.OrDiscard(logger),
	}
}

// Create runs the executable with args and copies its stdout to stdout one
// line at a time until the process exits.
func (r *EnvironmentRunner) Create(ctx context.Context, args []string, stdout io.Writer) error {
	cmd := exec.CommandContext(ctx, r.executable, args...)
	cmd.Stdin = os.Stdin
	cmd.Stderr = r.stderr

	pipe, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("%w: creating stdout pipe for %s: %v", registry.ErrWrappedCommandFailed, r.executable, err)
	}

	r.logger.Debug("Starting environment command", "executable", r.executable, "args", args)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("%w: starting %s: %v", registry.ErrWrappedCommandFailed, r.executable, err)
	}

	copyErr := copyLines(pipe, stdout)
	waitErr := cmd.Wait()

	if waitErr != nil {
		var exitErr *exec.ExitError
		if errors.As(waitErr, &exitErr) {
			r.logger.Debug("Environment command exited", "executable", r.executable, "code", exitErr.ExitCode())
			return fmt.Errorf("%w: %s exited with status %d", registry.ErrWrappedCommandFailed, r.executable, exitErr.ExitCode())
		}
		return fmt.Errorf("%w: %s: %v", registry.ErrWrappedCommandFailed, r.executable, waitErr)
	}
	if copyErr != nil {
		return fmt.Errorf("streaming output of %s: %w", r.executable, copyErr)
	}
	return nil
}

// copyLines forwards src to dst line by line. Once dst fails the rest of src
// is drained so the child never blocks on a full pipe.
func copyLines(src io.Reader, dst io.Writer) error {
	reader := bufio.NewReader(src)
	var writeErr error
	for {
		line, err := reader.ReadString('\n')
		if len(line) > 0 && writeErr == nil {
			_, writeErr = io.WriteString(dst, line)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return writeErr
			}
			return err
		}
	}
}
