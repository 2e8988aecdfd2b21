// Package cli provides the cobra command and dependency wiring for
// create-uikit. This file defines the Dependencies struct that connects
// the generator to its installer, renderer and terminal output.
package cli

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/voilajsx/create-uikit/internal/install"
	"github.com/voilajsx/create-uikit/internal/scaffold"
	"github.com/voilajsx/create-uikit/internal/ui"
)

// Dependencies holds the collaborators used by the root command.
type Dependencies struct {
	Logger   *slog.Logger
	Headless *ui.HeadlessManager

	// BaseDir is the directory target paths are resolved against.
	// Empty means the working directory.
	BaseDir string

	// NewInstaller builds the dependency installer for a package manager.
	NewInstaller func(manager string, args []string, logger *slog.Logger) (scaffold.Installer, error)
	// CheckVersion runs the package-manager version preflight.
	CheckVersion func(ctx context.Context, manager string) (*install.VersionReport, error)
}

// deps is the global dependencies instance, initialized by InitDependencies.
var deps *Dependencies

// InitDependencies creates the production dependencies. It should be
// called once during application startup.
func InitDependencies() {
	deps = newDependencies()
}

func newDependencies() *Dependencies {
	return &Dependencies{
		// Silent unless --verbose replaces it.
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		Headless:     ui.NewHeadlessManager(),
		NewInstaller: newCommandInstaller,
		CheckVersion: install.CheckVersion,
	}
}

func newCommandInstaller(manager string, args []string, logger *slog.Logger) (scaffold.Installer, error) {
	return install.NewCommandInstaller(manager, args, logger)
}

// verboseLogger returns a debug-level logger writing to w.
func verboseLogger(w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
