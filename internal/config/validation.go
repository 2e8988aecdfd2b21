package config

import (
	"slices"
	"strings"

	"github.com/voilajsx/create-uikit/internal/template"
)

// knownManagers mirrors install.Managers; config stays free of the
// install package so it can be loaded before anything else is wired.
var knownManagers = []string{"npm", "pnpm", "yarn", "bun"}

// Validate checks the configuration for correctness.
func Validate(cfg *Config) error {
	var errs []ValidationError

	if !slices.Contains(knownManagers, cfg.PackageManager) {
		errs = append(errs, ValidationError{
			Field:   "package_manager",
			Message: "must be one of: " + strings.Join(knownManagers, ", "),
			Value:   cfg.PackageManager,
			Wrapped: ErrUnknownPackageManager,
		})
	}

	for field, value := range map[string]string{
		"author":                cfg.Author,
		"app_description":       cfg.AppDescription,
		"extension_description": cfg.ExtensionDescription,
	} {
		if template.HasPlaceholder(value) {
			errs = append(errs, ValidationError{
				Field:   field,
				Message: "must not contain {{KEY}} placeholders",
				Value:   value,
				Wrapped: ErrInvalidConfig,
			})
		}
	}

	for _, arg := range cfg.InstallArgs {
		if strings.TrimSpace(arg) == "" {
			errs = append(errs, ValidationError{
				Field:   "install_args",
				Message: "must not contain empty arguments",
				Wrapped: ErrInvalidConfig,
			})
			break
		}
	}

	if len(errs) > 0 {
		slices.SortFunc(errs, func(a, b ValidationError) int { return strings.Compare(a.Field, b.Field) })
		return &ValidationErrors{Errors: errs}
	}
	return nil
}
