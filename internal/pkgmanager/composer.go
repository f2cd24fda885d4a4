package pkgmanager

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/antonella-framework/antonella-cli/internal/ctxlog"
)

// ErrExternalTool is returned when composer is missing or exits non-zero.
var ErrExternalTool = errors.New("external tool failed")

// ToolError carries the failed invocation and its exit code. It unwraps to
// ErrExternalTool.
type ToolError struct {
	Command  string
	ExitCode int
	Output   string
	Err      error
}

func (e *ToolError) Error() string {
	if e.ExitCode > 0 {
		return fmt.Sprintf("%s: exit status %d", e.Command, e.ExitCode)
	}
	return fmt.Sprintf("%s: %v", e.Command, e.Err)
}

func (e *ToolError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrExternalTool, e.Err}
	}
	return []error{ErrExternalTool}
}

// Composer runs composer inside a project directory.
type Composer struct {
	// Bin is the executable name or path; "composer" when empty.
	Bin string
	// Dir is the working directory, the plugin root.
	Dir string
	// Stdout and Stderr can be set for testing; defaults to os.Stdout/os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
}

// Available reports the resolved path of the composer binary.
func (c *Composer) Available() (string, error) {
	path, err := exec.LookPath(c.bin())
	if err != nil {
		return "", &ToolError{Command: c.bin(), Err: err}
	}
	return path, nil
}

// Require runs `composer require [--dev] <pkg>`.
func (c *Composer) Require(ctx context.Context, pkg string, dev bool) error {
	args := []string{"require", pkg}
	if dev {
		args = append(args, "--dev")
	}
	return c.run(ctx, args...)
}

// Remove runs `composer remove <pkg>`.
func (c *Composer) Remove(ctx context.Context, pkg string) error {
	return c.run(ctx, "remove", pkg)
}

// DumpAutoload runs `composer dump-autoload`.
func (c *Composer) DumpAutoload(ctx context.Context) error {
	return c.run(ctx, "dump-autoload")
}

func (c *Composer) bin() string {
	if c.Bin == "" {
		return "composer"
	}
	return c.Bin
}

func (c *Composer) run(ctx context.Context, args ...string) error {
	log := ctxlog.FromContext(ctx)
	command := c.bin() + " " + strings.Join(args, " ")

	bin, err := c.Available()
	if err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = c.Dir

	stdout := c.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := c.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}
	var errBuf bytes.Buffer
	cmd.Stdout = stdout
	cmd.Stderr = io.MultiWriter(stderr, &errBuf)

	log.Debug("running", "command", command, "dir", c.Dir)
	err = cmd.Run()
	if err == nil {
		return nil
	}

	te := &ToolError{Command: command, Output: strings.TrimSpace(errBuf.String()), Err: err}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		te.ExitCode = exitErr.ExitCode()
	}
	log.Debug("command failed", "command", command, "exit_code", te.ExitCode)
	return te
}
