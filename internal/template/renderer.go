package template

import (
	"errors"
	"fmt"
	"io/fs"
	"regexp"
	"sort"
	"strings"
)

// placeholderPattern matches a {{KEY}} marker. Keys are upper snake case,
// which keeps JSX object literals such as style={{ color: 'red' }} out of it.
var placeholderPattern = regexp.MustCompile(`\{\{[A-Z][A-Z0-9_]*\}\}`)

// HasPlaceholder reports whether s contains a {{KEY}} marker.
func HasPlaceholder(s string) bool {
	return placeholderPattern.MatchString(s)
}

// Placeholder returns the marker written in templates for key.
func Placeholder(key string) string {
	return "{{" + key + "}}"
}

// Renderer expands {{KEY}} placeholders in templates read from a filesystem.
type Renderer interface {
	// Render reads the named template and replaces every {{KEY}} marker
	// with vars[KEY]. Returns ErrTemplateNotFound if the template is absent
	// and ErrUnexpandedToken if a marker without a variable remains.
	Render(templateName string, vars map[string]string) ([]byte, error)

	// Exists reports whether the named template or asset is present.
	Exists(name string) bool

	// Asset returns the raw bytes of a non-templated file such as an icon.
	Asset(name string) ([]byte, error)
}

// renderer is the concrete implementation of Renderer.
type renderer struct {
	fsys fs.FS
}

// NewRenderer creates a Renderer backed by the given filesystem.
// In production the fs.FS comes from go:embed; in tests use testing/fstest.MapFS.
func NewRenderer(fsys fs.FS) Renderer {
	return &renderer{fsys: fsys}
}

// Render reads and expands a template.
func (r *renderer) Render(templateName string, vars map[string]string) ([]byte, error) {
	content, err := fs.ReadFile(r.fsys, templateName)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, templateName)
		}
		return nil, fmt.Errorf("read template %q: %w", templateName, err)
	}

	result := Expand(string(content), vars)

	if loc := placeholderPattern.FindString(result); loc != "" {
		return nil, fmt.Errorf("%w: found %q in %s", ErrUnexpandedToken, loc, templateName)
	}

	return []byte(result), nil
}

// Exists reports whether name can be opened as a regular file.
func (r *renderer) Exists(name string) bool {
	info, err := fs.Stat(r.fsys, name)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// Asset returns the raw content of name.
func (r *renderer) Asset(name string) ([]byte, error) {
	data, err := fs.ReadFile(r.fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
		}
		return nil, fmt.Errorf("read asset %q: %w", name, err)
	}
	return data, nil
}

// Expand substitutes every {{KEY}} occurrence for every key in vars.
// Replacement is a single pass, so values that themselves contain
// placeholder markers are written literally.
func Expand(content string, vars map[string]string) string {
	if len(vars) == 0 {
		return content
	}

	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		pairs = append(pairs, Placeholder(k), vars[k])
	}
	return strings.NewReplacer(pairs...).Replace(content)
}

// FindPlaceholders returns the distinct {{KEY}} markers left in content.
func FindPlaceholders(content []byte) []string {
	matches := placeholderPattern.FindAll(content, -1)
	if len(matches) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(matches))
	var out []string
	for _, m := range matches {
		s := string(m)
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
