package template

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
)

//go:embed all:templates
var embedded embed.FS

// EmbeddedTemplates returns the template tree compiled into the binary,
// rooted so that "uikit/..." and "extension/..." resolve directly.
func EmbeddedTemplates() (fs.FS, error) {
	sub, err := fs.Sub(embedded, "templates")
	if err != nil {
		return nil, fmt.Errorf("embedded templates: %w", err)
	}
	return sub, nil
}

// Source returns the template filesystem to use. An empty dir selects the
// embedded templates; otherwise dir must be an existing directory laid out
// like the embedded tree.
func Source(dir string) (fs.FS, error) {
	if dir == "" {
		return EmbeddedTemplates()
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("templates directory %q: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("templates directory %q: not a directory", dir)
	}
	return os.DirFS(dir), nil
}
