// Package scaffold generates new UIKit projects on disk. It derives the
// package name from the target path, builds the placeholder variables,
// selects the application or extension template set and writes the
// resulting tree, finishing with an optional dependency install.
package scaffold

import "errors"

// Sentinel errors for the scaffold package.
var (
	// ErrDirectoryExists indicates the target path already exists.
	// It is returned before anything is written.
	ErrDirectoryExists = errors.New("directory already exists")

	// ErrMissingTemplate indicates a template referenced by the plan is absent.
	ErrMissingTemplate = errors.New("template file not found")

	// ErrDependencyInstall indicates the package manager install failed.
	// The project files are left in place.
	ErrDependencyInstall = errors.New("dependency installation failed")

	// ErrInvalidVariable indicates a variable value contains a {{KEY}} marker.
	// It is returned before anything is written.
	ErrInvalidVariable = errors.New("variable value must not contain {{KEY}} placeholders")

	// ErrInvalidKind indicates an unrecognized project kind.
	ErrInvalidKind = errors.New("invalid project kind: must be app or extension")
)
