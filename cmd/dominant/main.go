// Command dominant prints the dominant colors of an image, one hex value
// per line. See the root command help for flags and examples.
package main

import (
	"os"

	"github.com/ironsheep/color-tools-mcp/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
