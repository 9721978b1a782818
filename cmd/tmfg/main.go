// Command tmfg builds a Triangulated Maximal Filtered Graph from a
// similarity or observation matrix stored as CSV and writes the result
// as JSON.
package main

import (
	"context"
	"fmt"
	"os"
)

// version is set via ldflags at build time
var version = "dev"

func main() {
	if err := NewRootCmd(version).ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "tmfg: %v\n", err)
		os.Exit(1)
	}
}
