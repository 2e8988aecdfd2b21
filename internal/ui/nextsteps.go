package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

// DocsURL is printed at the end of every successful run.
const DocsURL = "https://voilajsx.github.io/uikit/"

// markdownWidth is the word-wrap width for rendered next steps.
const markdownWidth = 80

// Summary describes a finished run for the next-steps message.
type Summary struct {
	Path      string // Target path as the user typed it.
	Extension bool
	JSX       bool
	Manager   string // Package manager, e.g. "npm".
	Installed bool   // Dependencies were installed successfully.
}

// NextSteps returns the follow-up instructions as markdown.
func NextSteps(s Summary) string {
	manager := s.Manager
	if manager == "" {
		manager = "npm"
	}

	var b strings.Builder
	cmds := []string{"cd " + s.Path}
	if !s.Installed {
		cmds = append(cmds, manager+" install")
	}

	if s.Extension {
		cmds = append(cmds, manager+" run build", manager+" run package")
		b.WriteString("## Chrome extension commands\n\n")
		writeCodeBlock(&b, cmds)
		b.WriteString("## Extension setup\n\n")
		b.WriteString("1. Build the extension\n")
		b.WriteString("2. Open `chrome://extensions/`\n")
		b.WriteString("3. Enable **Developer mode**\n")
		b.WriteString("4. Click **Load unpacked** and select the `dist/` folder\n\n")
	} else {
		cmds = append(cmds, manager+" run dev")
		b.WriteString("## Get started\n\n")
		writeCodeBlock(&b, cmds)
	}

	format := "TypeScript"
	if s.JSX {
		format = "JSX"
	}
	fmt.Fprintf(&b, "- Documentation: %s\n", DocsURL)
	b.WriteString("- Themes: 6 professional themes included\n")
	b.WriteString("- Components: 35+ shadcn/ui components enhanced\n")
	fmt.Fprintf(&b, "- Files: %s format\n", format)
	return b.String()
}

func writeCodeBlock(b *strings.Builder, lines []string) {
	b.WriteString("```sh\n")
	for _, l := range lines {
		b.WriteString(l + "\n")
	}
	b.WriteString("```\n\n")
}

// RenderMarkdown renders md for the terminal. When styled is false the
// glamour "notty" style is used, which keeps the text free of escape codes.
func RenderMarkdown(md string, styled bool) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(markdownWidth)}
	if styled {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle("notty"))
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}
