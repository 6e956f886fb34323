// Command islandatlas is the CLI for the Maldives island reference service.
package main

import (
	"os"

	"github.com/atolldata/islandatlas/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
