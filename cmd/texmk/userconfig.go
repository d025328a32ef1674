package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alnah/go-texmk/internal/yamlutil"
)

// userConfig holds per-user CLI defaults loaded from the config directory.
// Environment variables and flags both win over these values.
type userConfig struct {
	Latex         string `yaml:"latex"`
	Quiet         bool   `yaml:"quiet"`
	Verbose       bool   `yaml:"verbose"`
	StopOnFailure bool   `yaml:"stop_on_failure"`
}

// userConfigPath returns the default location of the per-user defaults
// file, or empty when no config directory is available.
func userConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "texmk", "config.yaml")
}

// loadUserConfig reads per-user defaults. A missing or empty path yields
// zero defaults without error; a present but malformed file is an error so
// typos do not pass silently.
func loadUserConfig(path string) (*userConfig, error) {
	cfg := &userConfig{}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path) // #nosec G304 -- the user's own defaults file
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading user config: %w", err)
	}
	if len(data) == 0 {
		return cfg, nil
	}

	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing user config %s: %w", path, err)
	}
	return cfg, nil
}

// settings is the fully resolved CLI configuration: flags win over
// environment variables, which win over the per-user defaults file.
type settings struct {
	quiet         bool
	verbose       bool
	dryRun        bool
	stopOnFailure bool
	watch         bool
	configPath    string
	latex         string
	files         []string
}

func resolveSettings(flags *cliFlags, env *envConfig, user *userConfig) settings {
	s := settings{
		quiet:         flags.quiet || env.Quiet || user.Quiet,
		verbose:       flags.verbose || env.Verbose || user.Verbose,
		dryRun:        flags.dryRun,
		stopOnFailure: flags.stopOnFailure || env.StopOnFailure || user.StopOnFailure,
		watch:         flags.watch,
		files:         flags.files,
	}

	s.configPath = flags.config
	if s.configPath == "" {
		s.configPath = env.Config
	}

	s.latex = env.Latex
	if s.latex == "" {
		s.latex = user.Latex
	}

	// Quiet and verbose conflict; the stronger request wins.
	if s.quiet && s.verbose {
		s.verbose = false
	}
	return s
}
