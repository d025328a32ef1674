package texmk

import "errors"

// Sentinel errors for build orchestration.
var (
	ErrConfigNotFound = errors.New("configuration file not found")
	ErrMissingSource  = errors.New("no source detected")
	ErrUnknownProgram = errors.New("unknown program in sequence")
	ErrInvalidConfig  = errors.New("invalid configuration value")
	ErrProcessFailed  = errors.New("external program failed")
	ErrReadSource     = errors.New("failed to read source document")
)
