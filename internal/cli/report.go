package cli

import (
	"context"
	"fmt"

	"github.com/voilajsx/create-uikit/internal/scaffold"
	"github.com/voilajsx/create-uikit/internal/ui"
)

// preflightVersion warns when the package manager is missing or too old.
// It never stops the run.
func preflightVersion(ctx context.Context, d *Dependencies, manager string, console *ui.Console) {
	report, err := d.CheckVersion(ctx, manager)
	if err != nil {
		console.Warning(fmt.Sprintf("Could not check %s version: %v", manager, err))
		return
	}
	if !report.OK {
		console.Warning(fmt.Sprintf("%s %s is older than the supported minimum %s", manager, report.Installed, report.Minimum))
	}
}

// reportSuccess prints the success card and the next steps.
func reportSuccess(console *ui.Console, hm *ui.HeadlessManager, rs *runSettings, opts scaffold.Options, result *scaffold.Result) {
	kind := "React app"
	if opts.Kind == scaffold.KindExtension {
		kind = "Chrome extension"
	}

	console.Print("")
	console.Print(console.SuccessCard("Project created successfully!",
		console.KeyValue("Name", result.PackageName),
		console.KeyValue("Location", result.ProjectDir),
		console.KeyValue("Type", kind),
		console.KeyValue("Format", opts.FileType()),
		console.KeyValue("Files", fmt.Sprintf("%d", len(result.CreatedFiles))),
	))

	md := ui.NextSteps(ui.Summary{
		Path:      opts.TargetPath,
		Extension: opts.Kind == scaffold.KindExtension,
		JSX:       opts.UseJSX,
		Manager:   rs.Manager,
		Installed: result.Installed,
	})
	styled := hm != nil && hm.IsOutputTerminal() && !rs.NoColor
	rendered, err := ui.RenderMarkdown(md, styled)
	if err != nil {
		console.Print(md)
		return
	}
	console.Print(rendered)
}
