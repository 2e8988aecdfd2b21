// Command create-uikit scaffolds UIKit React applications and Chrome
// extensions.
package main

import (
	"os"

	"github.com/voilajsx/create-uikit/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
