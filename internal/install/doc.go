// Package install runs the package manager for a freshly generated project.
//
// The install command inherits the caller's standard streams and only its
// exit status is inspected. CheckVersion queries the package manager's
// version ahead of time so an outdated npm can be reported before the
// install fails on an unknown flag.
package install
