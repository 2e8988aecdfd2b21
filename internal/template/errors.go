// Package template reads the project templates shipped with create-uikit
// and expands their {{KEY}} placeholders.
package template

import "errors"

// Sentinel errors for template operations.
var (
	// ErrTemplateNotFound indicates the requested template file does not exist.
	ErrTemplateNotFound = errors.New("template: not found")

	// ErrUnexpandedToken indicates a {{KEY}} marker survived substitution.
	ErrUnexpandedToken = errors.New("template: unexpanded placeholder")
)
