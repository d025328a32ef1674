package main

import (
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// envConfig holds configuration from environment variables, for CI setups
// that cannot pass flags.
type envConfig struct {
	Config        string // TEXMK_CONFIG: standalone configuration path
	Latex         string // TEXMK_LATEX: default engine override
	Quiet         bool   // TEXMK_QUIET: only show errors
	Verbose       bool   // TEXMK_VERBOSE: show debug detail
	StopOnFailure bool   // TEXMK_STOP_ON_FAILURE: stop on nonzero exit
}

// knownEnvVars lists valid TEXMK_* environment variables. Used to warn
// about typos in unknown variables.
var knownEnvVars = map[string]bool{
	"TEXMK_CONFIG":          true,
	"TEXMK_LATEX":           true,
	"TEXMK_QUIET":           true,
	"TEXMK_VERBOSE":         true,
	"TEXMK_STOP_ON_FAILURE": true,
}

// loadEnvConfig reads configuration from TEXMK_* environment variables.
func loadEnvConfig() *envConfig {
	return &envConfig{
		Config:        os.Getenv("TEXMK_CONFIG"),
		Latex:         os.Getenv("TEXMK_LATEX"),
		Quiet:         envBool("TEXMK_QUIET"),
		Verbose:       envBool("TEXMK_VERBOSE"),
		StopOnFailure: envBool("TEXMK_STOP_ON_FAILURE"),
	}
}

// envBool reads a boolean variable; unset or unparseable means false.
func envBool(name string) bool {
	v := os.Getenv(name)
	if v == "" {
		return false
	}
	b, err := strconv.ParseBool(v)
	return err == nil && b
}

// warnUnknownEnvVars flags TEXMK_* variables this version does not know,
// so typos like TEXMK_QIET do not silently do nothing.
func warnUnknownEnvVars(log zerolog.Logger) {
	for _, entry := range os.Environ() {
		name, _, ok := strings.Cut(entry, "=")
		if !ok || !strings.HasPrefix(name, "TEXMK_") {
			continue
		}
		if !knownEnvVars[name] {
			log.Warn().Str("var", name).Msg("unknown TEXMK_ environment variable")
		}
	}
}
