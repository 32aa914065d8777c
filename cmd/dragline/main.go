// Command dragline reorders Markdown blocks from the terminal, either
// interactively with a mouse or headlessly by line number.
package main

import (
	"os"
)

func main() {
	if err := newRootCommand(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}
