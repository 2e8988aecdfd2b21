package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Answers holds the choices collected by the interactive prompt.
type Answers struct {
	Path      string
	Extension bool
	JSX       bool
}

// Prompter asks for project kind, syntax and path.
type Prompter struct {
	headless *HeadlessManager
	theme    *huh.Theme
	// DefaultPath returns the suggested path for the chosen kind.
	DefaultPath func(extension bool) string
}

// NewPrompter creates a Prompter. defaultPath supplies the placeholder
// shown for the path question.
func NewPrompter(hm *HeadlessManager, noColor bool, defaultPath func(extension bool) string) *Prompter {
	theme := newUIKitTheme()
	if noColor {
		theme = huh.ThemeBase()
	}
	return &Prompter{headless: hm, theme: theme, DefaultPath: defaultPath}
}

// Ask runs the prompts, starting from initial. Without a terminal it
// returns initial unchanged. Each question runs as its own form.
func (p *Prompter) Ask(ctx context.Context, initial Answers) (Answers, error) {
	if p.headless.IsHeadless() {
		return initial, nil
	}

	answers := initial
	kind := "app"
	if answers.Extension {
		kind = "extension"
	}
	syntax := "tsx"
	if answers.JSX {
		syntax = "jsx"
	}

	kindField := huh.NewSelect[string]().
		Title("What do you want to create?").
		Options(
			huh.NewOption("React app - complete UIKit application", "app"),
			huh.NewOption("Chrome extension - Manifest V3 with UIKit", "extension"),
		).
		Value(&kind)
	if err := p.run(ctx, kindField); err != nil {
		return initial, err
	}
	answers.Extension = kind == "extension"

	syntaxField := huh.NewSelect[string]().
		Title("File format").
		Options(
			huh.NewOption("TypeScript", "tsx"),
			huh.NewOption("JSX", "jsx"),
		).
		Value(&syntax)
	if err := p.run(ctx, syntaxField); err != nil {
		return initial, err
	}
	answers.JSX = syntax == "jsx"

	placeholder := answers.Path
	if placeholder == "" && p.DefaultPath != nil {
		placeholder = p.DefaultPath(answers.Extension)
	}
	path := answers.Path
	pathField := huh.NewInput().
		Title("Project path").
		Description("Nested paths become the package name, e.g. apps/auth/core -> apps-auth-core").
		Placeholder(placeholder).
		Value(&path).
		Validate(validatePath)
	if err := p.run(ctx, pathField); err != nil {
		return initial, err
	}
	path = strings.TrimSpace(path)
	if path == "" {
		path = placeholder
	}
	answers.Path = path

	return answers, nil
}

func (p *Prompter) run(ctx context.Context, field huh.Field) error {
	form := huh.NewForm(huh.NewGroup(field)).
		WithTheme(p.theme).
		WithAccessible(false)
	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrCancelled
		}
		return fmt.Errorf("prompt: %w", err)
	}
	return nil
}

// validatePath rejects paths that cannot name a directory.
func validatePath(s string) error {
	if strings.ContainsRune(s, 0) {
		return errors.New("path must not contain NUL bytes")
	}
	if strings.TrimSpace(s) != s {
		return errors.New("path must not start or end with spaces")
	}
	return nil
}

// newUIKitTheme maps the output palette onto a huh theme.
func newUIKitTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Base = t.Focused.Base.BorderForeground(colorBorder)
	t.Focused.Card = t.Focused.Base
	t.Focused.Title = t.Focused.Title.Foreground(colorPrimary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(colorMuted)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(colorError)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(colorError)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(colorPrimary).SetString("\u25b8 ")
	t.Focused.Option = t.Focused.Option.Foreground(colorText)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(colorSuccess)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(colorSuccess).SetString("\u25c6 ")
	t.Focused.UnselectedOption = t.Focused.UnselectedOption.Foreground(colorText)
	t.Focused.UnselectedPrefix = lipgloss.NewStyle().Foreground(colorMuted).SetString("\u25c7 ")
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(colorPrimary)
	t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(colorMuted)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(colorInfo)

	t.Blurred = t.Focused
	t.Blurred.Base = t.Focused.Base.BorderStyle(lipgloss.HiddenBorder())
	t.Blurred.Card = t.Blurred.Base

	t.Group.Title = t.Focused.Title
	t.Group.Description = t.Focused.Description

	return t
}
