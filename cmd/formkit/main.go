// Command formkit loads, inspects and drives declarative form definitions.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/formkit/cmd/formkit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
