package defs

// Common file names written into generated projects.
const (
	// PackageJSON is the npm package manifest.
	PackageJSON = "package.json"

	// ManifestJSON is the browser extension manifest (Manifest V3).
	ManifestJSON = "manifest.json"

	// GitIgnore is the git ignore rules file.
	GitIgnore = ".gitignore"

	// TSConfig is the TypeScript compiler configuration.
	TSConfig = "tsconfig.json"

	// TSConfigNode is the TypeScript configuration for Vite's own config file.
	TSConfigNode = "tsconfig.node.json"

	// IndexHTML is the HTML entry point.
	IndexHTML = "index.html"

	// ReadmeMD is the project README.
	ReadmeMD = "README.md"
)

// Directory names inside generated projects.
const (
	SrcDir    = "src"
	PublicDir = "public"
	IconsDir  = "icons"
)

// ExtensionSrcDirs lists the directories created under src/ for extension projects.
var ExtensionSrcDirs = []string{
	"popup",
	"options",
	"content",
	"background",
	"shared",
}

// IconFiles lists the extension icon assets copied into public/icons/.
var IconFiles = []string{
	"icon-16.png",
	"icon-32.png",
	"icon-48.png",
	"icon-128.png",
}

// Settings file locations.
const (
	// AppDirName is the directory under the user config dir holding settings.
	AppDirName = "create-uikit"

	// ConfigYAML is the settings file name.
	ConfigYAML = "config.yaml"
)
