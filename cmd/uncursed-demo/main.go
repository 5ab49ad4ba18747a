// Package main is a demo host for the uncursed graphical plugin. It draws a
// test card and echoes every key the plugin reports.
package main

import (
	"os"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:]))
}
