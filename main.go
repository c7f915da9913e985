// Package main is the entry point for ze, a zero-configuration terminal
// text editor.
package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/sanohiro/ze/internal/app"
)

var (
	version string
	commit  string
)

// GetVersionInfo returns the version information
func GetVersionInfo() (string, string) {
	// Prefer ldflags-injected values when available
	if version != "" || commit != "" {
		return version, commit
	}

	// Fallback for `go install`: use module build info
	if bi, ok := debug.ReadBuildInfo(); ok {
		v := bi.Main.Version
		// Treat test/dev builds as unset
		if v == "(devel)" {
			v = ""
		}
		var rev string
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				if len(s.Value) >= 7 {
					rev = s.Value[:7]
				} else {
					rev = s.Value
				}
				break
			}
		}
		return v, rev
	}

	return "", ""
}

// parseArgs implements the `ze [-R] [file]` contract.
func parseArgs(args []string) (path string, readOnly bool, err error) {
	for _, a := range args {
		switch {
		case a == "-R":
			readOnly = true
		case a == "-h" || a == "--help" || a == "--version":
			return "", false, fmt.Errorf("usage: ze [-R] [file]")
		case len(a) > 0 && a[0] == '-':
			return "", false, fmt.Errorf("unknown flag: %s", a)
		case path == "":
			path = a
		default:
			return "", false, fmt.Errorf("usage: ze [-R] [file]")
		}
	}
	return path, readOnly, nil
}

// RunApp contains the main application logic, separated for testability.
// It parses args, builds the editor, and runs it to completion, returning
// the process exit code. Startup failures (a bad CLI, an unreadable
// path, no controlling terminal) report 1 without ever entering raw mode.
func RunApp(args []string) int {
	path, readOnly, err := parseArgs(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	in, out, err := app.StdoutTerminal()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	a, err := app.New(app.Options{Path: path, ReadOnly: readOnly, In: in, Out: out})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if err := a.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(RunApp(os.Args[1:]))
}
