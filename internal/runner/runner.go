// Package runner runs the generated test suite under a pseudo-terminal so test
// runners keep their colored output.
package runner

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/creack/pty"
	"github.com/kballard/go-shellquote"
)

// ExitError reports a command that ran but did not succeed
type ExitError struct {
	Command string
	Code    int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("'%s' exited with status %d", e.Command, e.Code)
}

// Run executes command in dir, streaming each output line to out
func Run(ctx context.Context, command, dir string, out io.Writer) error {
	args, err := shellquote.Split(command)
	if err != nil {
		return fmt.Errorf("failed to parse command '%s': %w", command, err)
	}
	if len(args) == 0 {
		return fmt.Errorf("no command to run")
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return fmt.Errorf("output directory %s does not exist", dir)
	}

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), "FORCE_COLOR=1", "CI=true")

	ptmx, err := pty.Start(cmd)
	if err != nil {
		return fmt.Errorf("failed to start '%s': %w", command, err)
	}
	defer ptmx.Close()

	copied := make(chan struct{})
	go func() {
		defer close(copied)
		scanner := bufio.NewScanner(ptmx)
		for scanner.Scan() {
			fmt.Fprintln(out, scanner.Text())
		}
	}()

	waitErr := cmd.Wait()

	// the pty reports EOF once every process holding it has exited
	select {
	case <-copied:
	case <-time.After(time.Second):
	}

	if waitErr == nil {
		return nil
	}
	var exitErr *exec.ExitError
	if errors.As(waitErr, &exitErr) {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return &ExitError{Command: command, Code: exitErr.ExitCode()}
	}
	return fmt.Errorf("failed to run '%s': %w", command, waitErr)
}
