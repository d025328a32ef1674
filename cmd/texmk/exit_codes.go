package main

import (
	"errors"

	"github.com/alnah/go-texmk/internal/tomlex"
)

// Exit codes for the texmk CLI.
const (
	ExitSuccess = 0 // Build completed (or version/help shown)
	ExitGeneral = 1 // Missing config, missing source, unknown program, process failure
	ExitParser  = 2 // Any configuration-grammar violation
)

// exitCodeFor maps an error to the process exit code. Grammar violations
// get their own code so callers can tell a broken configuration from a
// broken build.
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var perr tomlex.Error
	if errors.As(err, &perr) {
		return ExitParser
	}
	return ExitGeneral
}
