// Command madfa is a small command-line wrapper around package madfa. It
// supplies the two collaborators the core library leaves to its caller:
// reading a sorted word file, and reporting results back to a terminal,
// without touching the core library's scope.
package main

import (
	"fmt"
	"os"

	"github.com/go-madfa/madfa/cmd/madfa/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
