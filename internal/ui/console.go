package ui

import (
	"fmt"
	"io"
	"strings"
)

// Console writes styled progress to a terminal. It satisfies the
// generator's progress reporter interface.
type Console struct {
	out     io.Writer
	styles  *Styles
	verbose bool
}

// NewConsole creates a Console writing to out. With verbose set every
// created file is listed as well as each step.
func NewConsole(out io.Writer, styles *Styles, verbose bool) *Console {
	if styles == nil {
		styles = NewStyles(false)
	}
	return &Console{out: out, styles: styles, verbose: verbose}
}

// Step prints a progress line.
func (c *Console) Step(message string) {
	fmt.Fprintf(c.out, "%s %s\n", c.styles.Primary.Render(SymStep), c.styles.Warn.Render(message))
}

// FileCreated lists a written file in verbose mode.
func (c *Console) FileCreated(relPath string) {
	if !c.verbose {
		return
	}
	fmt.Fprintf(c.out, "  %s %s\n", c.styles.Success.Render(SymSuccess), c.styles.Muted.Render(relPath))
}

// Warning prints a non-fatal problem.
func (c *Console) Warning(message string) {
	fmt.Fprintf(c.out, "%s %s\n", c.styles.Warn.Render(SymWarning), c.styles.Warn.Render(message))
}

// Error prints a fatal problem.
func (c *Console) Error(message string) {
	fmt.Fprintf(c.out, "%s %s\n", c.styles.Error.Render(SymError), c.styles.Error.Render(message))
}

// Info prints a secondary line.
func (c *Console) Info(message string) {
	fmt.Fprintln(c.out, c.styles.Info.Render(message))
}

// Header prints the banner shown before generation starts.
func (c *Console) Header(title, subtitle string) {
	fmt.Fprintln(c.out, c.styles.Primary.Bold(true).Render(title))
	if subtitle != "" {
		fmt.Fprintln(c.out, c.styles.Muted.Render(subtitle))
	}
	fmt.Fprintln(c.out)
}

// Print writes pre-rendered text as is.
func (c *Console) Print(text string) {
	fmt.Fprint(c.out, text)
	if !strings.HasSuffix(text, "\n") {
		fmt.Fprintln(c.out)
	}
}

// SuccessCard renders a success message inside a bordered card.
func (c *Console) SuccessCard(title string, details ...string) string {
	var body strings.Builder
	body.WriteString(c.styles.Success.Render(SymSuccess) + " " + c.styles.Bold.Render(title))
	if len(details) > 0 {
		body.WriteString("\n\n")
		body.WriteString(strings.Join(details, "\n"))
	}
	return c.styles.Card.Render(body.String())
}

// KeyValue formats a card detail line.
func (c *Console) KeyValue(key, value string) string {
	return c.styles.Muted.Render(fmt.Sprintf("%-10s", key)) + " " + value
}
