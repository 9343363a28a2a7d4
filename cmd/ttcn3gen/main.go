// Command ttcn3gen drives the statement/interleave code generator over a
// checked AST and writes the four sink buffers to disk.
package main

import (
	"os"

	"github.com/cwbudde/ttcn3gen/cmd/ttcn3gen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
