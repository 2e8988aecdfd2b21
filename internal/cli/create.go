package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/voilajsx/create-uikit/internal/config"
	"github.com/voilajsx/create-uikit/internal/scaffold"
	"github.com/voilajsx/create-uikit/internal/template"
	"github.com/voilajsx/create-uikit/internal/ui"
	"github.com/voilajsx/create-uikit/pkg/version"
)

// runCreate executes one generation: settings, optional prompts, version
// preflight, generation, install and the final report.
func runCreate(cmd *cobra.Command, args []string, d *Dependencies) error {
	ctx := cmd.Context()

	cfg, err := config.Load(getStringFlag(cmd, "config"))
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	rs, err := resolveSettings(cmd, args, cfg)
	if err != nil {
		return err
	}

	logger := d.Logger
	if rs.Verbose {
		logger = verboseLogger(cmd.ErrOrStderr())
	}

	console := ui.NewConsole(cmd.OutOrStdout(), ui.NewStyles(rs.NoColor), rs.Verbose)

	if rs.Interactive {
		prompter := ui.NewPrompter(d.Headless, rs.NoColor, func(extension bool) string {
			if extension {
				return scaffold.DefaultExtensionPath
			}
			return scaffold.DefaultAppPath
		})
		answers, err := prompter.Ask(ctx, ui.Answers{Path: rs.TargetPath, Extension: rs.Extension, JSX: rs.JSX})
		if err != nil {
			return err
		}
		rs.TargetPath, rs.Extension, rs.JSX = answers.Path, answers.Extension, answers.JSX
	}

	opts := rs.options(cfg, d.BaseDir)

	templates, err := template.Source(rs.TemplatesDir)
	if err != nil {
		return err
	}
	renderer := template.NewRenderer(templates)

	var installer scaffold.Installer
	if !opts.SkipInstall {
		installer, err = d.NewInstaller(rs.Manager, rs.InstallArgs, logger)
		if err != nil {
			return err
		}
	}

	kindLabel := "React app"
	if opts.Kind == scaffold.KindExtension {
		kindLabel = "Chrome extension"
	}
	console.Header(
		fmt.Sprintf("create-uikit %s - UIKit Projects & Chrome Extensions", version.GetVersion()),
		fmt.Sprintf("Creating %s %s in %s", opts.FileType(), kindLabel, opts.TargetPath),
	)

	if installer != nil && d.CheckVersion != nil {
		preflightVersion(ctx, d, rs.Manager, console)
	}

	gen := scaffold.NewGenerator(renderer, installer, console, logger)
	result, err := gen.Generate(ctx, opts)
	if err != nil {
		if errors.Is(err, scaffold.ErrDirectoryExists) {
			console.Error(fmt.Sprintf("Directory %s already exists!", opts.TargetPath))
			return &errReported{err: err}
		}
		return err
	}

	reportSuccess(console, d.Headless, rs, opts, result)

	if result.InstallErr != nil {
		return &errReported{err: result.InstallErr}
	}
	return nil
}
