package install

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"slices"
	"strings"
)

// Sentinel errors for the install package.
var (
	// ErrUnknownManager indicates an unsupported package manager name.
	ErrUnknownManager = errors.New("install: unknown package manager")

	// ErrManagerNotFound indicates the package manager binary is not on PATH.
	ErrManagerNotFound = errors.New("install: package manager not found on PATH")
)

// Managers lists the supported package managers.
var Managers = []string{"npm", "pnpm", "yarn", "bun"}

// DefaultArgs returns the install arguments used for a package manager.
// npm needs --legacy-peer-deps because UIKit's peer ranges lag React majors.
func DefaultArgs(manager string) []string {
	switch manager {
	case "npm":
		return []string{"install", "--legacy-peer-deps"}
	default:
		return []string{"install"}
	}
}

// IsKnownManager reports whether name is a supported package manager.
func IsKnownManager(name string) bool {
	return slices.Contains(Managers, name)
}

// CommandInstaller runs "<Manager> <Args...>" in the project directory.
type CommandInstaller struct {
	Manager string
	Args    []string

	// Stdin, Stdout and Stderr default to the process streams.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	Logger *slog.Logger

	// lookPath resolves the manager binary; replaced in tests.
	lookPath func(string) (string, error)
}

// NewCommandInstaller creates an installer for manager. Nil args select
// DefaultArgs(manager).
func NewCommandInstaller(manager string, args []string, logger *slog.Logger) (*CommandInstaller, error) {
	if !IsKnownManager(manager) {
		return nil, fmt.Errorf("%w: %q (supported: %s)", ErrUnknownManager, manager, strings.Join(Managers, ", "))
	}
	if args == nil {
		args = DefaultArgs(manager)
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &CommandInstaller{
		Manager:  manager,
		Args:     args,
		Logger:   logger,
		lookPath: exec.LookPath,
	}, nil
}

// Command returns the command line, e.g. "npm install --legacy-peer-deps".
func (c *CommandInstaller) Command() string {
	return strings.Join(append([]string{c.Manager}, c.Args...), " ")
}

// Install runs the install command with dir as its working directory.
// It blocks until the subprocess exits; there is no timeout.
func (c *CommandInstaller) Install(ctx context.Context, dir string) error {
	lookPath := c.lookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	bin, err := lookPath(c.Manager)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrManagerNotFound, c.Manager)
	}

	cmd := exec.CommandContext(ctx, bin, c.Args...)
	cmd.Dir = dir
	cmd.Stdin = orReader(c.Stdin, os.Stdin)
	cmd.Stdout = orWriter(c.Stdout, os.Stdout)
	cmd.Stderr = orWriter(c.Stderr, os.Stderr)

	if c.Logger != nil {
		c.Logger.Debug("running install", "command", c.Command(), "dir", dir)
	}

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", c.Command(), err)
	}
	return nil
}

func orReader(r io.Reader, def io.Reader) io.Reader {
	if r != nil {
		return r
	}
	return def
}

func orWriter(w io.Writer, def io.Writer) io.Writer {
	if w != nil {
		return w
	}
	return def
}
