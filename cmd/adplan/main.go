// Command adplan estimates technical and financial performance of
// anaerobic-digestion bioenergy projects.
package main

import (
	"os"

	"github.com/greenbock/adplan/internal/cli"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := cli.NewRootCmd(version).Execute(); err != nil {
		os.Exit(1)
	}
}
