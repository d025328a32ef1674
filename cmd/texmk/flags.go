package main

import (
	"bytes"
	"fmt"

	flag "github.com/spf13/pflag"
)

// cliFlags holds parsed command-line flags and positional arguments.
type cliFlags struct {
	quiet         bool
	verbose       bool
	dryRun        bool
	stopOnFailure bool
	watch         bool
	version       bool
	help          bool
	config        string
	files         []string
}

// parseFlags parses the full argument vector (including the program name).
func parseFlags(args []string) (*cliFlags, error) {
	f := &cliFlags{}

	fs := flag.NewFlagSet("texmk", flag.ContinueOnError)
	var usageBuf bytes.Buffer
	fs.SetOutput(&usageBuf)

	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug detail")
	fs.BoolVarP(&f.dryRun, "dry-run", "n", false, "print commands without executing them")
	fs.BoolVarP(&f.stopOnFailure, "stop-on-failure", "s", false, "stop the sequence when a program fails")
	fs.BoolVarP(&f.watch, "watch", "w", false, "rebuild whenever the source document changes")
	fs.BoolVarP(&f.version, "version", "V", false, "show version information")
	fs.BoolVarP(&f.help, "help", "h", false, "show this help")
	fs.StringVarP(&f.config, "config", "c", "", "standalone configuration file path")

	if err := fs.Parse(args[1:]); err != nil {
		return nil, fmt.Errorf("parsing flags: %w", err)
	}
	f.files = fs.Args()
	return f, nil
}
