// Command leaptime converts between leap-second-aware civil timestamps,
// epoch offsets, and mission elapsed time.
package main

import (
	"io"
	"os"
)

// version is set at build time with -ldflags "-X main.version=...".
//
//nolint:gochecknoglobals
var version = "dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line in args and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	a, err := newApp(stdout, stderr)
	if err != nil {
		//nolint:errcheck
		io.WriteString(stderr, "leaptime: "+err.Error()+"\n")
		return 1
	}

	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.Execute(); err != nil {
		return 1
	}
	return 0
}
