// Package ui renders create-uikit's terminal output: progress lines,
// warnings, the success card, markdown next steps, and the optional
// interactive prompts.
package ui

import "errors"

// Sentinel errors for UI operations.
var (
	// ErrCancelled is returned when the user aborts an interactive prompt.
	ErrCancelled = errors.New("ui: cancelled by user")
)
