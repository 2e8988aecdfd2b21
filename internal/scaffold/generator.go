package scaffold

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/voilajsx/create-uikit/internal/template"
)

// Installer installs the dependencies of a generated project.
type Installer interface {
	// Install runs the package manager in dir and blocks until it exits.
	Install(ctx context.Context, dir string) error
	// Command returns the install command line for instructional messages.
	Command() string
}

// Result summarizes a generation run.
type Result struct {
	ProjectDir   string    // Absolute project directory.
	PackageName  string    // Normalized package name.
	Variables    Variables // Substitution table used for every template.
	CreatedDirs  []string  // Directories created, relative to ProjectDir.
	CreatedFiles []string  // Files written, relative to ProjectDir.
	Warnings     []string  // Non-fatal problems such as missing icons.
	Installed    bool      // Whether the dependency install succeeded.
	InstallErr   error     // Wraps ErrDependencyInstall when the install failed.
}

// Generator materializes a project skeleton on disk.
type Generator interface {
	// Generate writes the project described by opts. Fatal problems return
	// an error; a failed dependency install is reported through
	// Result.InstallErr and leaves the files in place.
	Generate(ctx context.Context, opts Options) (*Result, error)
}

// generator is the concrete implementation of Generator.
type generator struct {
	renderer  template.Renderer
	installer Installer // May be nil: install is skipped.
	reporter  Reporter
	logger    *slog.Logger
}

// NewGenerator creates a Generator reading templates through renderer.
// A nil installer disables the install step, a nil reporter or logger
// discards output.
func NewGenerator(renderer template.Renderer, installer Installer, reporter Reporter, logger *slog.Logger) Generator {
	if reporter == nil {
		reporter = nopReporter{}
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &generator{
		renderer:  renderer,
		installer: installer,
		reporter:  reporter,
		logger:    logger,
	}
}

// Generate creates the project described by opts.
func (g *generator) Generate(ctx context.Context, opts Options) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if opts.TargetPath == "" {
		opts.TargetPath = DefaultTargetPath(opts.Kind)
	}

	projectDir, err := opts.ProjectDir()
	if err != nil {
		return nil, err
	}

	packageName := GenerateProjectName(opts.TargetPath)
	vars := NewVariables(opts, packageName)

	plan, err := BuildPlan(opts)
	if err != nil {
		return nil, err
	}

	g.logger.Info("generating project",
		"path", opts.TargetPath,
		"dir", projectDir,
		"name", packageName,
		"kind", opts.Kind.String(),
		"jsx", opts.UseJSX,
	)

	// Nothing may be written before these checks pass.
	if err := vars.Validate(); err != nil {
		return nil, err
	}
	if err := checkTargetAbsent(projectDir, opts.TargetPath); err != nil {
		return nil, err
	}
	if err := g.checkTemplates(plan); err != nil {
		return nil, err
	}

	result := &Result{
		ProjectDir:  projectDir,
		PackageName: packageName,
		Variables:   vars,
	}

	if err := os.MkdirAll(projectDir, 0o755); err != nil {
		return nil, fmt.Errorf("create project directory %q: %w", opts.TargetPath, err)
	}

	for _, dir := range plan.Dirs {
		if err := os.MkdirAll(filepath.Join(projectDir, filepath.FromSlash(dir)), 0o755); err != nil {
			return nil, fmt.Errorf("create directory %q: %w", dir, err)
		}
		result.CreatedDirs = append(result.CreatedDirs, dir)
	}

	for _, entry := range plan.Entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if entry.Step != "" {
			g.reporter.Step(entry.Step)
		}
		if err := g.writeEntry(projectDir, entry, vars, result); err != nil {
			return nil, err
		}
	}

	if opts.SkipInstall || g.installer == nil {
		g.logger.Debug("dependency install skipped")
		return result, nil
	}

	g.reporter.Step("Installing dependencies...")
	if err := g.installer.Install(ctx, projectDir); err != nil {
		result.InstallErr = fmt.Errorf("%w: %v", ErrDependencyInstall, err)
		g.logger.Warn("dependency install failed", "error", err)
		g.reporter.Warning(fmt.Sprintf("Failed to install dependencies. Run %q manually in the project directory", g.installer.Command()))
		return result, nil
	}
	result.Installed = true

	return result, nil
}

// writeEntry produces one plan entry under projectDir.
func (g *generator) writeEntry(projectDir string, entry Entry, vars Variables, result *Result) error {
	var content []byte

	switch entry.Kind {
	case EntryTemplate:
		rendered, err := g.renderer.Render(entry.Source, vars)
		if err != nil {
			if errors.Is(err, template.ErrTemplateNotFound) {
				return fmt.Errorf("%w: %s", ErrMissingTemplate, entry.Source)
			}
			return fmt.Errorf("render %q: %w", entry.Source, err)
		}
		content = rendered
	case EntryStatic:
		content = entry.Content
	case EntryAsset:
		if !g.renderer.Exists(entry.Source) {
			msg := fmt.Sprintf("Missing template: %s", filepath.Base(entry.Source))
			result.Warnings = append(result.Warnings, msg)
			g.reporter.Warning(msg)
			g.logger.Warn("asset missing, skipped", "source", entry.Source)
			return nil
		}
		data, err := g.renderer.Asset(entry.Source)
		if err != nil {
			return fmt.Errorf("copy %q: %w", entry.Source, err)
		}
		content = data
	default:
		return fmt.Errorf("unknown plan entry kind %d for %q", entry.Kind, entry.Output)
	}

	dest := filepath.Join(projectDir, filepath.FromSlash(entry.Output))
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return fmt.Errorf("create directory for %q: %w", entry.Output, err)
	}
	if err := os.WriteFile(dest, content, 0o644); err != nil {
		return fmt.Errorf("write %q: %w", entry.Output, err)
	}

	result.CreatedFiles = append(result.CreatedFiles, entry.Output)
	g.reporter.FileCreated(entry.Output)
	g.logger.Debug("file written", "path", entry.Output, "bytes", len(content))
	return nil
}

// checkTemplates verifies every template the plan reads is present.
func (g *generator) checkTemplates(plan Plan) error {
	for _, name := range plan.Templates() {
		if !g.renderer.Exists(name) {
			return fmt.Errorf("%w: %s", ErrMissingTemplate, name)
		}
	}
	return nil
}

// checkTargetAbsent fails when anything already exists at dir.
func checkTargetAbsent(dir, display string) error {
	_, err := os.Stat(dir)
	if err == nil {
		return fmt.Errorf("%w: %s", ErrDirectoryExists, display)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("check project directory %q: %w", display, err)
	}
	return nil
}
