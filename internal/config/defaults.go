package config

// Default value constants.
const (
	DefaultAuthor               = "VoilaJSX"
	DefaultAppDescription       = "UIKit React application"
	DefaultExtensionDescription = "Chrome extension built with UIKit"
	DefaultPackageManager       = "npm"
)

// Environment variables read by Load. They take precedence over the file.
const (
	EnvConfigFile     = "CREATE_UIKIT_CONFIG"
	EnvAuthor         = "CREATE_UIKIT_AUTHOR"
	EnvPackageManager = "CREATE_UIKIT_PACKAGE_MANAGER"
	EnvTemplatesDir   = "CREATE_UIKIT_TEMPLATES"
	EnvSkipInstall    = "CREATE_UIKIT_SKIP_INSTALL"
	EnvNoColor        = "NO_COLOR"
)

// NewDefaultConfig returns a Config populated with compiled defaults.
func NewDefaultConfig() *Config {
	return &Config{
		Author:               DefaultAuthor,
		AppDescription:       DefaultAppDescription,
		ExtensionDescription: DefaultExtensionDescription,
		PackageManager:       DefaultPackageManager,
	}
}
