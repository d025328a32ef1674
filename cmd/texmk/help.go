package main

import (
	"fmt"
	"io"
)

// Version is set at build time via ldflags.
var Version = "dev"

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: texmk [flags] [file ...]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Build a TeX document by running its configured program sequence.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "With a file argument, the build configuration is read from the magic")
	fmt.Fprintln(w, "comment block (% +++ ... % +++) embedded in that document. Without one,")
	fmt.Fprintln(w, "texmk.toml in the current directory is used and must name a source.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -c, --config <path>      Standalone configuration file path")
	fmt.Fprintln(w, "  -n, --dry-run            Print commands without executing them")
	fmt.Fprintln(w, "  -s, --stop-on-failure    Stop the sequence when a program fails")
	fmt.Fprintln(w, "  -w, --watch              Rebuild whenever the source document changes")
	fmt.Fprintln(w, "  -q, --quiet              Only show errors")
	fmt.Fprintln(w, "  -v, --verbose            Show debug detail")
	fmt.Fprintln(w, "  -V, --version            Show version information")
	fmt.Fprintln(w, "  -h, --help               Show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment: TEXMK_CONFIG, TEXMK_LATEX, TEXMK_QUIET, TEXMK_VERBOSE,")
	fmt.Fprintln(w, "TEXMK_STOP_ON_FAILURE override the defaults; flags win over both.")
}

// printVersion prints the version banner.
func printVersion(w io.Writer) {
	fmt.Fprintf(w, "texmk %s\n\nCopyright 2026 Alnah.\nLicense: MIT <https://opensource.org/license/mit/>.\n", Version)
}
