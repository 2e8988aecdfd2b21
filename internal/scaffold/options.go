package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Kind selects which project shape is generated.
type Kind int

const (
	// KindApp is a UIKit React application.
	KindApp Kind = iota
	// KindExtension is a Chrome Manifest V3 extension built with UIKit.
	KindExtension
)

// String returns the flag/config spelling of the kind.
func (k Kind) String() string {
	switch k {
	case KindApp:
		return "app"
	case KindExtension:
		return "extension"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind converts "app" or "extension" to a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "app", "application", "":
		return KindApp, nil
	case "extension", "ext":
		return KindExtension, nil
	default:
		return KindApp, fmt.Errorf("%w: %q", ErrInvalidKind, s)
	}
}

// Default target paths used when no positional path is given.
const (
	DefaultAppPath       = "voilajs-uikit-app"
	DefaultExtensionPath = "voilajs-uikit-extension"
)

// Default template variable values.
const (
	DefaultAuthor               = "VoilaJSX"
	DefaultAppDescription       = "UIKit React application"
	DefaultExtensionDescription = "Chrome extension built with UIKit"
)

// DefaultTargetPath returns the path used when none is supplied.
func DefaultTargetPath(kind Kind) string {
	if kind == KindExtension {
		return DefaultExtensionPath
	}
	return DefaultAppPath
}

// DefaultDescription returns the DESCRIPTION variable for a kind.
func DefaultDescription(kind Kind) string {
	if kind == KindExtension {
		return DefaultExtensionDescription
	}
	return DefaultAppDescription
}

// Options configures one generation run. It is built once by the CLI and
// not modified afterwards.
type Options struct {
	TargetPath  string // Path as typed by the user, relative to BaseDir.
	BaseDir     string // Directory TargetPath is resolved against. Defaults to the working directory.
	UseJSX      bool   // Emit .jsx/.js sources instead of .tsx/.ts.
	Kind        Kind   // Application or extension.
	Author      string // AUTHOR variable. Defaults to DefaultAuthor.
	Description string // DESCRIPTION variable. Defaults per kind.
	SkipInstall bool   // Do not run the package manager.
}

// SourceExt returns "jsx" or "tsx".
func (o Options) SourceExt() string {
	if o.UseJSX {
		return "jsx"
	}
	return "tsx"
}

// ScriptExt returns "js" or "ts".
func (o Options) ScriptExt() string {
	if o.UseJSX {
		return "js"
	}
	return "ts"
}

// FileType returns the human-readable source format.
func (o Options) FileType() string {
	if o.UseJSX {
		return "JSX"
	}
	return "TypeScript"
}

// ProjectDir returns the absolute directory the project is written to.
// TargetPath is always joined onto BaseDir, so "/dashboard/admin" lands in
// BaseDir/dashboard/admin like any other nested path.
func (o Options) ProjectDir() (string, error) {
	base := o.BaseDir
	if base == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		base = cwd
	}
	target := o.TargetPath
	if target == "" {
		target = DefaultTargetPath(o.Kind)
	}
	abs, err := filepath.Abs(filepath.Join(base, filepath.FromSlash(target)))
	if err != nil {
		return "", fmt.Errorf("resolve project path %q: %w", target, err)
	}
	return abs, nil
}
