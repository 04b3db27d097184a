// Command ecofarm is the CLI front end for the EcoFarm AI assistant.
package main

import (
	"fmt"
	"os"

	"github.com/Dushyant778/ecofarm/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
