// Command extract is the docparse CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/joseph-ayodele/docparse/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
