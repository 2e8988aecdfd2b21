package scaffold

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/voilajsx/create-uikit/internal/template"
	"github.com/voilajsx/create-uikit/pkg/version"
)

// Placeholder keys understood by the templates.
const (
	VarProjectName   = "PROJECT_NAME"
	VarPackageName   = "PACKAGE_NAME"
	VarProjectTitle  = "PROJECT_TITLE"
	VarExtension     = "EXTENSION"
	VarFileExtension = "FILE_EXTENSION"
	VarDescription   = "DESCRIPTION"
	VarAuthor        = "AUTHOR"
	VarVersion       = "VERSION"
)

// Variables is the substitution table applied to every template in a run.
type Variables map[string]string

// NewVariables builds the table for opts and the derived package name.
func NewVariables(opts Options, packageName string) Variables {
	author := opts.Author
	if author == "" {
		author = DefaultAuthor
	}
	description := opts.Description
	if description == "" {
		description = DefaultDescription(opts.Kind)
	}

	return Variables{
		VarProjectName:   packageName,
		VarPackageName:   packageName,
		VarProjectTitle:  ProjectTitle(packageName),
		VarExtension:     opts.SourceExt(),
		VarFileExtension: opts.ScriptExt(),
		VarDescription:   description,
		VarAuthor:        author,
		VarVersion:       version.GetVersion(),
	}
}

// ProjectTitle turns a package name into a display title:
// "apps-auth-core" becomes "Apps Auth Core".
func ProjectTitle(packageName string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(packageName, "-", " "))
}

// Validate rejects values that carry a {{KEY}} marker. Expansion is a
// single pass, so such a marker would reach the rendered output.
func (v Variables) Validate() error {
	keys := slices.Sorted(maps.Keys(v))
	for _, k := range keys {
		if template.HasPlaceholder(v[k]) {
			return fmt.Errorf("%w: %s = %q", ErrInvalidVariable, k, v[k])
		}
	}
	return nil
}
