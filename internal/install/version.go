package install

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// minimumVersions holds the oldest release each manager is known to work
// with. npm 7 introduced --legacy-peer-deps.
var minimumVersions = map[string]string{
	"npm":  "7.0.0",
	"pnpm": "8.0.0",
	"yarn": "1.22.0",
	"bun":  "1.0.0",
}

// VersionReport is the outcome of a version preflight.
type VersionReport struct {
	Manager   string
	Installed string // Version reported by the manager, "" if unknown.
	Minimum   string
	OK        bool
}

// CheckVersion runs "<manager> --version" and compares it with the
// manager's minimum supported version. Errors mean the check itself could
// not be performed and are meant to be shown as warnings.
func CheckVersion(ctx context.Context, manager string) (*VersionReport, error) {
	minimum, ok := minimumVersions[manager]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownManager, manager)
	}

	bin, err := exec.LookPath(manager)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrManagerNotFound, manager)
	}

	var out bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, "--version")
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%s --version: %w", manager, err)
	}

	return CompareVersion(manager, out.String(), minimum)
}

// CompareVersion checks installed against minimum. Leading "v" and
// surrounding whitespace are tolerated.
func CompareVersion(manager, installed, minimum string) (*VersionReport, error) {
	installed = strings.TrimSpace(installed)
	report := &VersionReport{Manager: manager, Installed: installed, Minimum: minimum}

	iv, err := parseSemver(installed)
	if err != nil {
		return report, fmt.Errorf("parsing %s version %q: %w", manager, installed, err)
	}
	mv, err := parseSemver(minimum)
	if err != nil {
		return report, fmt.Errorf("parsing minimum version %q: %w", minimum, err)
	}

	report.OK = !iv.LessThan(mv)
	return report, nil
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(version, "v")
	return semver.NewVersion(version)
}
