package scaffold

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/voilajsx/create-uikit/internal/template"
)

// fakeInstaller records install calls and returns err.
type fakeInstaller struct {
	calls []string
	err   error
}

func (f *fakeInstaller) Install(_ context.Context, dir string) error {
	f.calls = append(f.calls, dir)
	return f.err
}

func (f *fakeInstaller) Command() string { return "npm install --legacy-peer-deps" }

// recordingReporter captures reporter callbacks.
type recordingReporter struct {
	steps    []string
	files    []string
	warnings []string
}

func (r *recordingReporter) Step(m string)        { r.steps = append(r.steps, m) }
func (r *recordingReporter) FileCreated(p string) { r.files = append(r.files, p) }
func (r *recordingReporter) Warning(m string)     { r.warnings = append(r.warnings, m) }

// templateFS copies the embedded templates into a MapFS, leaving out skip.
func templateFS(t *testing.T, skip ...string) fstest.MapFS {
	t.Helper()
	src, err := template.EmbeddedTemplates()
	if err != nil {
		t.Fatalf("EmbeddedTemplates error: %v", err)
	}
	out := fstest.MapFS{}
	err = fs.WalkDir(src, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || slices.Contains(skip, path) {
			return err
		}
		data, err := fs.ReadFile(src, path)
		if err != nil {
			return err
		}
		out[path] = &fstest.MapFile{Data: data}
		return nil
	})
	if err != nil {
		t.Fatalf("copy templates: %v", err)
	}
	return out
}

func newTestGenerator(fsys fs.FS, inst Installer, rep Reporter) Generator {
	return NewGenerator(template.NewRenderer(fsys), inst, rep, nil)
}

// listTree returns every file and directory under root, slash-separated.
func listTree(t *testing.T, root string) (files, dirs []string) {
	t.Helper()
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil || rel == "." {
			return err
		}
		if d.IsDir() {
			dirs = append(dirs, filepath.ToSlash(rel))
		} else {
			files = append(files, filepath.ToSlash(rel))
		}
		return nil
	})
	if err != nil {
		t.Fatalf("walk %s: %v", root, err)
	}
	return files, dirs
}

func assertNoPlaceholders(t *testing.T, root string, files []string) {
	t.Helper()
	for _, f := range files {
		if strings.HasSuffix(f, ".png") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(f)))
		if err != nil {
			t.Fatalf("read %s: %v", f, err)
		}
		if left := template.FindPlaceholders(data); len(left) > 0 {
			t.Errorf("%s still contains placeholders %v", f, left)
		}
	}
}

func TestGenerate_TypeScriptApp(t *testing.T) {
	base := t.TempDir()
	inst := &fakeInstaller{}
	rep := &recordingReporter{}
	g := newTestGenerator(templateFS(t), inst, rep)

	result, err := g.Generate(context.Background(), Options{BaseDir: base, TargetPath: "apps/auth/core"})
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	wantDir := filepath.Join(base, "apps", "auth", "core")
	if result.ProjectDir != wantDir {
		t.Errorf("ProjectDir = %q, want %q", result.ProjectDir, wantDir)
	}
	if result.PackageName != "apps-auth-core" {
		t.Errorf("PackageName = %q, want apps-auth-core", result.PackageName)
	}

	files, _ := listTree(t, wantDir)
	slices.Sort(files)
	want := []string{
		".gitignore", "index.html", "package.json",
		"src/App.tsx", "src/index.css", "src/main.tsx",
		"tsconfig.json", "tsconfig.node.json", "vite.config.ts",
	}
	if !slices.Equal(files, want) {
		t.Errorf("files = %v, want %v", files, want)
	}
	assertNoPlaceholders(t, wantDir, files)

	pkg, err := os.ReadFile(filepath.Join(wantDir, "package.json"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(pkg), `"name": "apps-auth-core"`) {
		t.Errorf("package.json missing package name:\n%s", pkg)
	}
	css, err := os.ReadFile(filepath.Join(wantDir, "src", "index.css"))
	if err != nil {
		t.Fatal(err)
	}
	if string(css) != `@import "tailwindcss";` {
		t.Errorf("index.css = %q", css)
	}

	if len(inst.calls) != 1 || inst.calls[0] != wantDir {
		t.Errorf("installer calls = %v, want [%s]", inst.calls, wantDir)
	}
	if !result.Installed || result.InstallErr != nil {
		t.Errorf("Installed = %v, InstallErr = %v", result.Installed, result.InstallErr)
	}
	if len(rep.files) != len(want) {
		t.Errorf("reported %d files, want %d", len(rep.files), len(want))
	}
	if !slices.Contains(rep.steps, "Installing dependencies...") {
		t.Errorf("steps = %v, want install step", rep.steps)
	}
}

func TestGenerate_JSXApp(t *testing.T) {
	base := t.TempDir()
	g := newTestGenerator(templateFS(t), nil, nil)

	result, err := g.Generate(context.Background(), Options{BaseDir: base, TargetPath: "my-app", UseJSX: true})
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	files, _ := listTree(t, result.ProjectDir)
	for _, f := range []string{"src/main.jsx", "src/App.jsx", "vite.config.js"} {
		if !slices.Contains(files, f) {
			t.Errorf("missing %s", f)
		}
	}
	for _, f := range []string{"tsconfig.json", "tsconfig.node.json", "src/main.tsx"} {
		if slices.Contains(files, f) {
			t.Errorf("unexpected %s in JSX project", f)
		}
	}
	assertNoPlaceholders(t, result.ProjectDir, files)

	html, err := os.ReadFile(filepath.Join(result.ProjectDir, "index.html"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(html), "/src/main.jsx") {
		t.Errorf("index.html should load main.jsx:\n%s", html)
	}
	if result.Installed {
		t.Error("Installed should be false without an installer")
	}
}

func TestGenerate_Extension(t *testing.T) {
	for _, useJSX := range []bool{false, true} {
		name := "typescript"
		ext := "tsx"
		if useJSX {
			name, ext = "jsx", "jsx"
		}
		t.Run(name, func(t *testing.T) {
			base := t.TempDir()
			g := newTestGenerator(templateFS(t), nil, nil)

			result, err := g.Generate(context.Background(), Options{
				BaseDir:    base,
				TargetPath: "extensions/word-scout",
				Kind:       KindExtension,
				UseJSX:     useJSX,
			})
			if err != nil {
				t.Fatalf("Generate error: %v", err)
			}

			entries, err := os.ReadDir(filepath.Join(result.ProjectDir, "src"))
			if err != nil {
				t.Fatalf("ReadDir src: %v", err)
			}
			var subdirs []string
			for _, e := range entries {
				if e.IsDir() {
					subdirs = append(subdirs, e.Name())
				}
			}
			slices.Sort(subdirs)
			want := []string{"background", "content", "options", "popup", "shared"}
			if !slices.Equal(subdirs, want) {
				t.Errorf("src subdirectories = %v, want %v", subdirs, want)
			}

			files, _ := listTree(t, result.ProjectDir)
			for _, f := range []string{
				"manifest.json", "README.md", ".gitignore",
				"public/icons/icon-16.png", "public/icons/icon-32.png",
				"public/icons/icon-48.png", "public/icons/icon-128.png",
				"public/icons/README.md",
				"src/popup/popup." + ext, "src/popup/PopupApp." + ext,
				"src/options/options." + ext, "src/options/OptionsApp." + ext,
				"src/shared/api.js",
			} {
				if !slices.Contains(files, f) {
					t.Errorf("missing %s", f)
				}
			}
			if slices.Contains(files, "tsconfig.json") == useJSX {
				t.Errorf("tsconfig.json present = %v for jsx = %v", !useJSX, useJSX)
			}
			assertNoPlaceholders(t, result.ProjectDir, files)

			manifest, err := os.ReadFile(filepath.Join(result.ProjectDir, "manifest.json"))
			if err != nil {
				t.Fatal(err)
			}
			if !strings.Contains(string(manifest), `"name": "Extensions Word Scout"`) {
				t.Errorf("manifest.json name not substituted:\n%s", manifest)
			}
			if len(result.Warnings) != 0 {
				t.Errorf("Warnings = %v, want none", result.Warnings)
			}
		})
	}
}

func TestGenerate_ExistingDirectory(t *testing.T) {
	base := t.TempDir()
	target := filepath.Join(base, "taken")
	if err := os.MkdirAll(target, 0o755); err != nil {
		t.Fatal(err)
	}
	marker := filepath.Join(target, "keep.txt")
	if err := os.WriteFile(marker, []byte("mine"), 0o644); err != nil {
		t.Fatal(err)
	}

	inst := &fakeInstaller{}
	g := newTestGenerator(templateFS(t), inst, nil)

	_, err := g.Generate(context.Background(), Options{BaseDir: base, TargetPath: "taken"})
	if !errors.Is(err, ErrDirectoryExists) {
		t.Fatalf("error = %v, want ErrDirectoryExists", err)
	}

	files, dirs := listTree(t, target)
	if !slices.Equal(files, []string{"keep.txt"}) || len(dirs) != 0 {
		t.Errorf("target modified: files = %v, dirs = %v", files, dirs)
	}
	if data, _ := os.ReadFile(marker); string(data) != "mine" {
		t.Errorf("keep.txt = %q, want unchanged", data)
	}
	if len(inst.calls) != 0 {
		t.Error("installer must not run when the target exists")
	}
}

func TestGenerate_ExistingFileAtTarget(t *testing.T) {
	base := t.TempDir()
	if err := os.WriteFile(filepath.Join(base, "file"), nil, 0o644); err != nil {
		t.Fatal(err)
	}
	g := newTestGenerator(templateFS(t), nil, nil)

	_, err := g.Generate(context.Background(), Options{BaseDir: base, TargetPath: "file"})
	if !errors.Is(err, ErrDirectoryExists) {
		t.Fatalf("error = %v, want ErrDirectoryExists", err)
	}
}

func TestGenerate_MissingTemplate(t *testing.T) {
	base := t.TempDir()
	g := newTestGenerator(templateFS(t, "uikit/App.tsx.template"), nil, nil)

	_, err := g.Generate(context.Background(), Options{BaseDir: base, TargetPath: "broken"})
	if !errors.Is(err, ErrMissingTemplate) {
		t.Fatalf("error = %v, want ErrMissingTemplate", err)
	}
	if !strings.Contains(err.Error(), "uikit/App.tsx.template") {
		t.Errorf("error should name the template, got %v", err)
	}
	if _, statErr := os.Stat(filepath.Join(base, "broken")); !os.IsNotExist(statErr) {
		t.Error("project directory should not be created when a template is missing")
	}
}

func TestGenerate_PlaceholderInValueWritesNothing(t *testing.T) {
	base := t.TempDir()
	inst := &fakeInstaller{}
	g := newTestGenerator(templateFS(t), inst, nil)

	_, err := g.Generate(context.Background(), Options{
		BaseDir:     base,
		TargetPath:  "my-app",
		Description: "uses {{PACKAGE_NAME}}",
	})
	if !errors.Is(err, ErrInvalidVariable) {
		t.Fatalf("error = %v, want ErrInvalidVariable", err)
	}
	if _, statErr := os.Stat(filepath.Join(base, "my-app")); !os.IsNotExist(statErr) {
		t.Error("project directory should not be created for an invalid value")
	}
	if len(inst.calls) != 0 {
		t.Error("installer must not run")
	}
}

func TestGenerate_MissingIconWarns(t *testing.T) {
	base := t.TempDir()
	rep := &recordingReporter{}
	g := newTestGenerator(templateFS(t, "extension/icons/icon-48.png"), nil, rep)

	result, err := g.Generate(context.Background(), Options{BaseDir: base, TargetPath: "ext", Kind: KindExtension})
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	if len(result.Warnings) != 1 || !strings.Contains(result.Warnings[0], "icon-48.png") {
		t.Errorf("Warnings = %v, want one about icon-48.png", result.Warnings)
	}
	if len(rep.warnings) != 1 {
		t.Errorf("reporter warnings = %v", rep.warnings)
	}

	icons := filepath.Join(result.ProjectDir, "public", "icons")
	if _, err := os.Stat(filepath.Join(icons, "icon-48.png")); !os.IsNotExist(err) {
		t.Error("icon-48.png should be skipped")
	}
	for _, name := range []string{"icon-16.png", "icon-32.png", "icon-128.png", "README.md"} {
		if _, err := os.Stat(filepath.Join(icons, name)); err != nil {
			t.Errorf("%s should still be written: %v", name, err)
		}
	}
}

func TestGenerate_InstallFailureIsNonFatal(t *testing.T) {
	base := t.TempDir()
	rep := &recordingReporter{}
	inst := &fakeInstaller{err: errors.New("exit status 1")}
	g := newTestGenerator(templateFS(t), inst, rep)

	result, err := g.Generate(context.Background(), Options{BaseDir: base, TargetPath: "app"})
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if !errors.Is(result.InstallErr, ErrDependencyInstall) {
		t.Errorf("InstallErr = %v, want ErrDependencyInstall", result.InstallErr)
	}
	if result.Installed {
		t.Error("Installed should be false")
	}
	if _, err := os.Stat(filepath.Join(result.ProjectDir, "package.json")); err != nil {
		t.Errorf("project files should remain after install failure: %v", err)
	}
	if len(rep.warnings) != 1 || !strings.Contains(rep.warnings[0], "npm install --legacy-peer-deps") {
		t.Errorf("warnings = %v, want manual install instruction", rep.warnings)
	}
}

func TestGenerate_SkipInstall(t *testing.T) {
	inst := &fakeInstaller{}
	g := newTestGenerator(templateFS(t), inst, nil)

	result, err := g.Generate(context.Background(), Options{BaseDir: t.TempDir(), SkipInstall: true})
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if len(inst.calls) != 0 {
		t.Errorf("installer called %d times, want 0", len(inst.calls))
	}
	if filepath.Base(result.ProjectDir) != DefaultAppPath {
		t.Errorf("ProjectDir = %q, want default path", result.ProjectDir)
	}
}

func TestGenerate_DefaultExtensionPath(t *testing.T) {
	g := newTestGenerator(templateFS(t), nil, nil)

	result, err := g.Generate(context.Background(), Options{BaseDir: t.TempDir(), Kind: KindExtension})
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if filepath.Base(result.ProjectDir) != DefaultExtensionPath {
		t.Errorf("ProjectDir = %q, want %s", result.ProjectDir, DefaultExtensionPath)
	}
	if result.PackageName != DefaultExtensionPath {
		t.Errorf("PackageName = %q, want %s", result.PackageName, DefaultExtensionPath)
	}
}

func TestGenerate_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	base := t.TempDir()
	g := newTestGenerator(templateFS(t), nil, nil)

	if _, err := g.Generate(ctx, Options{BaseDir: base}); !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
	if entries, _ := os.ReadDir(base); len(entries) != 0 {
		t.Errorf("nothing should be written, found %d entries", len(entries))
	}
}

func TestGenerate_DoesNotChangeWorkingDirectory(t *testing.T) {
	before, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	g := newTestGenerator(templateFS(t), nil, nil)
	if _, err := g.Generate(context.Background(), Options{BaseDir: t.TempDir(), TargetPath: "x"}); err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	after, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if before != after {
		t.Errorf("working directory changed from %s to %s", before, after)
	}
}
