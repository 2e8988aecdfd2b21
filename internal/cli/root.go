package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/voilajsx/create-uikit/internal/ui"
	"github.com/voilajsx/create-uikit/pkg/version"
)

const rootLong = `create-uikit scaffolds UIKit React applications and Chrome extensions.

The target path may be nested; the package name is derived from it:
  /apps/auth/core  ->  apps-auth-core
  auth/dashboard   ->  auth-dashboard
  my-app           ->  my-app

Project types:
  React app    Complete UIKit React application
  Extension    Chrome Manifest V3 extension with UIKit

Defaults for author, descriptions, package manager and templates are read
from $XDG_CONFIG_HOME/create-uikit/config.yaml (override with --config or
CREATE_UIKIT_CONFIG). Flags take precedence over the file.`

const rootExample = `  # React apps
  create-uikit my-app
  create-uikit apps/auth/core --jsx
  create-uikit /dashboard/admin

  # Chrome extensions
  create-uikit my-extension --extension
  create-uikit tools/page-analyzer --extension --jsx
  create-uikit extensions/word-scout --extension`

// errReported marks an error whose message has already been shown.
type errReported struct{ err error }

func (e *errReported) Error() string { return e.err.Error() }
func (e *errReported) Unwrap() error { return e.err }

// Execute initializes dependencies and runs the root command. The
// returned error means the process should exit with status 1.
func Execute() error {
	InitDependencies()
	cmd := newRootCmd(deps)
	cmd.SetArgs(knownArgs(cmd, os.Args[1:]))
	err := cmd.Execute()
	if err == nil {
		return nil
	}

	var reported *errReported
	if !errors.As(err, &reported) {
		styles := ui.NewStyles(os.Getenv("NO_COLOR") != "")
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), styles.Error.Render(ui.SymError+" "+userMessage(err)))
	}
	return err
}

// newRootCmd builds the create-uikit command wired to d.
func newRootCmd(d *Dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "create-uikit [path]",
		Short:   "Create UIKit React apps and Chrome extensions",
		Long:    rootLong,
		Example: rootExample,
		Version: version.GetVersion(),
		// Extra positional tokens are ignored; the first one is the path.
		Args: cobra.ArbitraryArgs,
		FParseErrWhitelist: cobra.FParseErrWhitelist{
			UnknownFlags: true,
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd, args, d)
		},
	}
	cmd.SetVersionTemplate(fmt.Sprintf("create-uikit %s\n", version.GetFullVersion()))

	f := cmd.Flags()
	f.BoolP("jsx", "j", false, "Use JSX instead of TypeScript")
	f.BoolP("extension", "e", false, "Create a Chrome extension instead of a React app")
	f.Bool("skip-install", false, "Do not install dependencies")
	f.String("package-manager", "", "Package manager used to install dependencies: npm, pnpm, yarn, bun")
	f.String("author", "", "Author written into generated files")
	f.String("description", "", "Project description written into generated files")
	f.String("templates", "", "Read templates from this directory instead of the built-in set")
	f.String("config", "", "Settings file (default: $XDG_CONFIG_HOME/create-uikit/config.yaml)")
	f.BoolP("interactive", "i", false, "Prompt for project type, format and path")
	f.BoolP("verbose", "v", false, "List every created file and log debug output to stderr")

	return cmd
}

// knownArgs drops flag tokens the command does not define, so an unknown
// flag never takes the following word as its value. Values of known flags
// and everything after "--" are kept.
func knownArgs(cmd *cobra.Command, args []string) []string {
	cmd.InitDefaultHelpFlag()
	cmd.InitDefaultVersionFlag()
	flags := cmd.Flags()

	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			return append(out, args[i:]...)

		case strings.HasPrefix(arg, "--"):
			name, _, hasValue := strings.Cut(arg[2:], "=")
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			out = append(out, arg)
			if !hasValue && f.NoOptDefVal == "" && i+1 < len(args) {
				i++
				out = append(out, args[i])
			}

		case len(arg) > 1 && arg[0] == '-':
			known, takesNext := true, false
			for j := 1; j < len(arg); j++ {
				f := flags.ShorthandLookup(arg[j : j+1])
				if f == nil {
					known = false
					break
				}
				if f.NoOptDefVal == "" {
					// The rest of the token, or the next one, is the value.
					takesNext = j == len(arg)-1
					break
				}
			}
			if !known {
				continue
			}
			out = append(out, arg)
			if takesNext && i+1 < len(args) {
				i++
				out = append(out, args[i])
			}

		default:
			out = append(out, arg)
		}
	}
	return out
}

// getStringFlag retrieves a string flag value from the command.
func getStringFlag(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return val
}

// getBoolFlag retrieves a bool flag value from the command.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false
	}
	return val
}

// userMessage turns known errors into the wording shown to users.
func userMessage(err error) string {
	switch {
	case errors.Is(err, ui.ErrCancelled):
		return "Cancelled"
	default:
		return "Error: " + err.Error()
	}
}
