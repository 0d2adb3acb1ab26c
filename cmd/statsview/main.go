package main

import (
	"fmt"
	"os"

	"github.com/pablasso/statsview/internal/cli"
)

func main() {
	// Without a subcommand the root command opens the terminal view.
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
