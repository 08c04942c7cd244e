// Package executor runs corrected commands through the user's shell
package executor

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/mewisme/wtf/internal/logger"
)

// Executor runs a command line through the platform shell so pipes,
// globs and quoting behave the way they did when the user typed it.
type Executor struct {
	stdout *os.File
	stderr *os.File
	stdin  *os.File
}

// New creates an executor wired to the process's standard streams.
func New() *Executor {
	return &Executor{
		stdout: os.Stdout,
		stderr: os.Stderr,
		stdin:  os.Stdin,
	}
}

// Run executes the command line and returns its exit error, if any.
func (e *Executor) Run(ctx context.Context, command string) error {
	command = strings.TrimSpace(command)
	if command == "" {
		return fmt.Errorf("empty command")
	}

	log := logger.With("executor")
	log.Debug("running command", "command", command)

	cmd := shellCommand(ctx, command)
	cmd.Stdout = e.stdout
	cmd.Stderr = e.stderr
	cmd.Stdin = e.stdin

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return fmt.Errorf("command exited with status %d", exitErr.ExitCode())
		}
		return fmt.Errorf("failed to run command: %w", err)
	}
	return nil
}

func shellCommand(ctx context.Context, command string) *exec.Cmd {
	if runtime.GOOS == "windows" {
		return exec.CommandContext(ctx, "powershell", "-NoProfile", "-Command", command)
	}

	shell := os.Getenv("SHELL")
	if shell == "" {
		shell = "sh"
	}
	return exec.CommandContext(ctx, shell, "-c", command)
}
