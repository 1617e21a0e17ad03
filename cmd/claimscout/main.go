// claimscout is the command line client for the ClaimScout API.
package main

import (
	"fmt"
	"os"

	"github.com/turtacn/ClaimScout/internal/interfaces/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
