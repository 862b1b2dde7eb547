// Command hooks inspects and live-tails the hooks.yaml diagnostics
// configuration of a project.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/statehooks/cmd/hooks/cmd"
)

func main() {
	if err := cmd.Execute(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
