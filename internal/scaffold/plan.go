package scaffold

import (
	"fmt"
	"path"

	"github.com/voilajsx/create-uikit/internal/defs"
)

// Template set roots inside the template filesystem.
const (
	appTemplateRoot       = "uikit"
	extensionTemplateRoot = "extension"
	iconTemplateDir       = "extension/icons"
	templateSuffix        = ".template"
)

// EntryKind says how a plan entry produces its output.
type EntryKind int

const (
	// EntryTemplate renders Source with the run's Variables.
	EntryTemplate EntryKind = iota
	// EntryStatic writes Content verbatim.
	EntryStatic
	// EntryAsset copies Source byte for byte. Missing assets are skipped
	// with a warning.
	EntryAsset
)

// Entry is one file the generator writes.
type Entry struct {
	Kind    EntryKind
	Source  string // Template or asset path in the template filesystem.
	Output  string // Slash-separated path relative to the project root.
	Content []byte // EntryStatic only.
	Step    string // Progress message announced before this entry, if any.
}

// Plan is the ordered list of directories and files for one run.
type Plan struct {
	Dirs    []string
	Entries []Entry
}

// Templates returns the template paths the plan reads. Assets are
// excluded since they are optional.
func (p Plan) Templates() []string {
	var out []string
	for _, e := range p.Entries {
		if e.Kind == EntryTemplate {
			out = append(out, e.Source)
		}
	}
	return out
}

// BuildPlan returns the plan for the kind and syntax selected in opts.
func BuildPlan(opts Options) (Plan, error) {
	switch opts.Kind {
	case KindApp:
		return appPlan(opts)
	case KindExtension:
		return extensionPlan(opts)
	default:
		return Plan{}, fmt.Errorf("%w: %s", ErrInvalidKind, opts.Kind)
	}
}

// gitignore is written as-is into every project.
const gitignore = `# Logs
logs
*.log
npm-debug.log*
yarn-debug.log*
yarn-error.log*
pnpm-debug.log*

# Dependencies
node_modules

# Build output
dist
dist-ssr
*.local
*.zip

# Editor directories and files
.vscode/*
!.vscode/extensions.json
.idea
.DS_Store
*.suo
*.ntvs*
*.njsproj
*.sln
*.sw?
`

// indexCSS is the stylesheet entry for applications.
const indexCSS = `@import "tailwindcss";`

func tmpl(root, name, output, step string) Entry {
	return Entry{
		Kind:   EntryTemplate,
		Source: path.Join(root, name+templateSuffix),
		Output: output,
		Step:   step,
	}
}

func static(output string, content []byte, step string) Entry {
	return Entry{Kind: EntryStatic, Output: output, Content: content, Step: step}
}

func appPlan(opts Options) (Plan, error) {
	ext := opts.SourceExt()
	root := appTemplateRoot

	entries := []Entry{
		tmpl(root, "package.json", defs.PackageJSON, "Creating package.json..."),
		tmpl(root, "vite.config", "vite.config."+opts.ScriptExt(), "Setting up Vite config..."),
	}

	if !opts.UseJSX {
		tsconfig, err := marshalConfig(appTSConfig())
		if err != nil {
			return Plan{}, fmt.Errorf("encode %s: %w", defs.TSConfig, err)
		}
		tsconfigNode, err := marshalConfig(appTSConfigNode())
		if err != nil {
			return Plan{}, fmt.Errorf("encode %s: %w", defs.TSConfigNode, err)
		}
		entries = append(entries,
			static(defs.TSConfig, tsconfig, "Setting up TypeScript..."),
			static(defs.TSConfigNode, tsconfigNode, ""),
		)
	}

	entries = append(entries,
		static(path.Join(defs.SrcDir, "index.css"), []byte(indexCSS), ""),
		tmpl(root, "index.html", defs.IndexHTML, "Creating HTML template..."),
		tmpl(root, "main."+ext, path.Join(defs.SrcDir, "main."+ext), fmt.Sprintf("Creating React app (%s)...", opts.FileType())),
		tmpl(root, "App."+ext, path.Join(defs.SrcDir, "App."+ext), ""),
		static(defs.GitIgnore, []byte(gitignore), ""),
	)

	return Plan{
		Dirs:    []string{defs.SrcDir},
		Entries: entries,
	}, nil
}

func extensionPlan(opts Options) (Plan, error) {
	ext := opts.SourceExt()
	root := extensionTemplateRoot
	src := path.Join(root, defs.SrcDir)
	iconsOut := path.Join(defs.PublicDir, defs.IconsDir)

	dirs := []string{defs.SrcDir}
	for _, d := range defs.ExtensionSrcDirs {
		dirs = append(dirs, path.Join(defs.SrcDir, d))
	}
	dirs = append(dirs, iconsOut)

	entries := []Entry{
		tmpl(root, "package.json", defs.PackageJSON, "Creating package.json..."),
		tmpl(root, "vite.config", "vite.config.js", "Setting up Vite config..."),
		tmpl(root, "manifest.json", defs.ManifestJSON, "Creating manifest.json..."),
		tmpl(root, "README.md", defs.ReadmeMD, "Creating README..."),
		static(defs.GitIgnore, []byte(gitignore), ""),
	}

	if !opts.UseJSX {
		tsconfig, err := marshalConfig(extensionTSConfig())
		if err != nil {
			return Plan{}, fmt.Errorf("encode %s: %w", defs.TSConfig, err)
		}
		entries = append(entries, static(defs.TSConfig, tsconfig, "Setting up TypeScript..."))
	}

	for i, icon := range defs.IconFiles {
		step := ""
		if i == 0 {
			step = "Copying extension icons..."
		}
		entries = append(entries, Entry{
			Kind:   EntryAsset,
			Source: path.Join(iconTemplateDir, icon),
			Output: path.Join(iconsOut, icon),
			Step:   step,
		})
	}
	entries = append(entries, tmpl(iconTemplateDir, "README.md", path.Join(iconsOut, defs.ReadmeMD), ""))

	pages := []struct {
		dir, entry, component, step string
	}{
		{"popup", "popup", "PopupApp", "Creating popup interface..."},
		{"options", "options", "OptionsApp", "Creating options page..."},
	}
	for _, p := range pages {
		in := path.Join(src, p.dir)
		out := path.Join(defs.SrcDir, p.dir)
		entries = append(entries,
			tmpl(in, defs.IndexHTML, path.Join(out, defs.IndexHTML), p.step),
			tmpl(in, p.entry+"."+ext, path.Join(out, p.entry+"."+ext), ""),
			tmpl(in, p.component+"."+ext, path.Join(out, p.component+"."+ext), ""),
		)
	}

	entries = append(entries,
		tmpl(path.Join(src, "content"), "content.js", path.Join(defs.SrcDir, "content", "content.js"), "Creating content script..."),
		tmpl(path.Join(src, "background"), "background.js", path.Join(defs.SrcDir, "background", "background.js"), "Creating background script..."),
	)
	for i, name := range []string{"config.js", "utils.js", "api.js"} {
		step := ""
		if i == 0 {
			step = "Creating shared utilities..."
		}
		entries = append(entries, tmpl(path.Join(src, "shared"), name, path.Join(defs.SrcDir, "shared", name), step))
	}

	return Plan{Dirs: dirs, Entries: entries}, nil
}
