package scaffold

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// DefaultProjectName is returned when a path normalizes to nothing.
const DefaultProjectName = "voilajs-uikit-app"

var (
	slashRun     = regexp.MustCompile(`/+`)
	invalidChars = regexp.MustCompile(`[^a-z0-9-]`)
	dashRun      = regexp.MustCompile(`-+`)
)

// GenerateProjectName converts a target path into an npm package name:
// edge slashes are trimmed, slashes become dashes, the result is lowercased,
// characters outside [a-z0-9-] are dropped and dash runs collapse.
// Accented letters keep their base letter. The function is total: an input
// with nothing usable yields DefaultProjectName.
//
//	GenerateProjectName("apps/auth/core")   // "apps-auth-core"
//	GenerateProjectName("/dashboard/admin") // "dashboard-admin"
func GenerateProjectName(projectPath string) string {
	name := strings.Trim(projectPath, "/")
	name = slashRun.ReplaceAllString(name, "-")
	name = strings.ToLower(norm.NFKD.String(name))
	name = invalidChars.ReplaceAllString(name, "")
	name = dashRun.ReplaceAllString(name, "-")
	name = strings.Trim(name, "-")

	if name == "" {
		return DefaultProjectName
	}
	return name
}
