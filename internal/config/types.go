package config

// Config holds user defaults for project generation. Every field may be
// overridden by a command-line flag.
type Config struct {
	// Author fills the AUTHOR template variable.
	Author string `yaml:"author"`
	// AppDescription fills DESCRIPTION for application projects.
	AppDescription string `yaml:"app_description"`
	// ExtensionDescription fills DESCRIPTION for extension projects.
	ExtensionDescription string `yaml:"extension_description"`

	// PackageManager is one of npm, pnpm, yarn, bun.
	PackageManager string `yaml:"package_manager"`
	// InstallArgs replaces the manager's default install arguments when set.
	InstallArgs []string `yaml:"install_args"`
	// SkipInstall disables the dependency install step.
	SkipInstall bool `yaml:"skip_install"`

	// TemplatesDir points at a template tree on disk. Empty means the
	// templates compiled into the binary.
	TemplatesDir string `yaml:"templates_dir"`

	// NoColor disables styled terminal output.
	NoColor bool `yaml:"no_color"`
}
