package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/voilajsx/create-uikit/internal/config"
	"github.com/voilajsx/create-uikit/internal/install"
	"github.com/voilajsx/create-uikit/internal/scaffold"
	"github.com/voilajsx/create-uikit/internal/template"
)

// runSettings is the flat configuration for one invocation: flags layered
// over the settings file layered over compiled defaults.
type runSettings struct {
	TargetPath   string
	Extension    bool
	JSX          bool
	Author       string
	Description  string // From --description; empty selects the per-kind default.
	SkipInstall  bool
	Manager      string
	InstallArgs  []string
	TemplatesDir string
	NoColor      bool
	Interactive  bool
	Verbose      bool
}

// resolveSettings reads flags and the first positional argument.
func resolveSettings(cmd *cobra.Command, args []string, cfg *config.Config) (*runSettings, error) {
	rs := &runSettings{
		Extension:    getBoolFlag(cmd, "extension"),
		JSX:          getBoolFlag(cmd, "jsx"),
		Author:       cfg.Author,
		SkipInstall:  cfg.SkipInstall || getBoolFlag(cmd, "skip-install"),
		Manager:      cfg.PackageManager,
		InstallArgs:  cfg.InstallArgs,
		TemplatesDir: cfg.TemplatesDir,
		NoColor:      cfg.NoColor,
		Interactive:  getBoolFlag(cmd, "interactive"),
		Verbose:      getBoolFlag(cmd, "verbose"),
	}
	if len(args) > 0 {
		rs.TargetPath = args[0]
	}

	if v := getStringFlag(cmd, "author"); v != "" {
		rs.Author = v
	}
	if v := getStringFlag(cmd, "description"); v != "" {
		rs.Description = v
	}
	if err := checkFlagValues(rs); err != nil {
		return nil, err
	}
	if v := getStringFlag(cmd, "templates"); v != "" {
		rs.TemplatesDir = v
	}
	if v := getStringFlag(cmd, "package-manager"); v != "" {
		if v != rs.Manager {
			// Install args from the file belong to the file's manager.
			rs.InstallArgs = nil
		}
		rs.Manager = v
	}
	if !install.IsKnownManager(rs.Manager) {
		return nil, fmt.Errorf("invalid --package-manager value %q: must be one of: %s: %w",
			rs.Manager, strings.Join(install.Managers, ", "), install.ErrUnknownManager)
	}

	return rs, nil
}

// options converts the settings into generator options.
func (rs *runSettings) options(cfg *config.Config, baseDir string) scaffold.Options {
	kind := scaffold.KindApp
	description := cfg.AppDescription
	if rs.Extension {
		kind = scaffold.KindExtension
		description = cfg.ExtensionDescription
	}
	if rs.Description != "" {
		description = rs.Description
	}

	target := rs.TargetPath
	if target == "" {
		target = scaffold.DefaultTargetPath(kind)
	}

	return scaffold.Options{
		TargetPath:  target,
		BaseDir:     baseDir,
		UseJSX:      rs.JSX,
		Kind:        kind,
		Author:      rs.Author,
		Description: description,
		SkipInstall: rs.SkipInstall,
	}
}

// checkFlagValues applies the settings-file placeholder rule to values
// given on the command line.
func checkFlagValues(rs *runSettings) error {
	var errs []config.ValidationError
	for _, fv := range []struct{ name, value string }{
		{"--author", rs.Author},
		{"--description", rs.Description},
	} {
		if template.HasPlaceholder(fv.value) {
			errs = append(errs, config.ValidationError{
				Field:   fv.name,
				Message: "must not contain {{KEY}} placeholders",
				Value:   fv.value,
				Wrapped: scaffold.ErrInvalidVariable,
			})
		}
	}
	if len(errs) > 0 {
		return &config.ValidationErrors{Errors: errs}
	}
	return nil
}
