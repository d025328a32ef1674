package texmk

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/alnah/go-texmk/internal/fileutil"
	"github.com/alnah/go-texmk/internal/hints"
	"github.com/alnah/go-texmk/internal/tomlex"
)

// Service orchestrates document builds. Create one with New and customize
// it with options.
type Service struct {
	log           zerolog.Logger
	runner        CommandRunner
	configPath    string
	defaultLatex  string
	dryRun        bool
	stopOnFailure bool
}

// Option customizes a Service.
type Option func(*Service)

// WithLogger sets the logger used for command and diagnostic output.
// The default logger discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Service) { s.log = log }
}

// WithRunner replaces process execution, e.g. with a fake in tests.
func WithRunner(r CommandRunner) Option {
	return func(s *Service) { s.runner = r }
}

// WithConfigPath overrides the standalone configuration path consulted when
// no filename is supplied. The default is DefaultConfigFile in the working
// directory.
func WithConfigPath(path string) Option {
	return func(s *Service) { s.configPath = path }
}

// WithDefaultLatex overrides the built-in default engine. Configuration
// files still take precedence.
func WithDefaultLatex(engine string) Option {
	return func(s *Service) {
		if engine != "" {
			s.defaultLatex = engine
		}
	}
}

// WithDryRun logs the commands that would run without spawning processes.
func WithDryRun(dry bool) Option {
	return func(s *Service) { s.dryRun = dry }
}

// WithStopOnFailure makes a nonzero exit status of any sequence program
// fatal. By default a failing program does not halt the sequence.
func WithStopOnFailure(stop bool) Option {
	return func(s *Service) { s.stopOnFailure = stop }
}

// New creates a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		log:        zerolog.Nop(),
		configPath: DefaultConfigFile,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.runner == nil {
		s.runner = NewExecRunner()
	}
	return s
}

// Make resolves the build configuration and runs the program sequence.
//
// With filenames, only the first is built (additional names are ignored);
// its embedded configuration is extracted and merged over the defaults.
// Without filenames the standalone configuration file is loaded instead and
// must name a source document.
func (s *Service) Make(ctx context.Context, filenames []string) error {
	if len(filenames) > 0 {
		if len(filenames) > 1 {
			s.log.Debug().Strs("ignored", filenames[1:]).Msg("building first file only")
		}
		return s.makeDocument(ctx, filenames[0])
	}
	return s.makeStandalone(ctx)
}

// makeDocument builds one document from its embedded configuration.
func (s *Service) makeDocument(ctx context.Context, target string) error {
	raw, err := ExtractConfigFile(target)
	if err != nil {
		return err
	}
	cfg, err := s.resolve(raw, target)
	if err != nil {
		return err
	}
	return s.run(ctx, cfg, target)
}

// makeStandalone builds the document named by the standalone configuration
// file.
func (s *Service) makeStandalone(ctx context.Context) error {
	path := s.configPath
	if !fileutil.FileExists(path) {
		return fmt.Errorf("%w: %s%s", ErrConfigNotFound, path, hints.ForConfigNotFound(path))
	}
	data, err := os.ReadFile(path) // #nosec G304 -- the user's own configuration file
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConfigNotFound, err)
	}

	cfg, err := s.resolve(string(data), path)
	if err != nil {
		return err
	}
	if cfg.Source == "" {
		return fmt.Errorf("%w%s", ErrMissingSource, hints.ForMissingSource())
	}
	return s.run(ctx, cfg, cfg.Source)
}

// resolve scans raw configuration text and merges it over the defaults.
func (s *Service) resolve(raw, file string) (*Config, error) {
	cfg := DefaultConfig()
	if s.defaultLatex != "" {
		cfg.Latex = s.defaultLatex
	}

	tab, err := tomlex.Parse(raw, file)
	if err != nil {
		return nil, err
	}
	if err := cfg.Merge(tab); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (s *Service) run(ctx context.Context, cfg *Config, filename string) error {
	seq := &Sequence{
		cfg:           cfg,
		runner:        s.runner,
		log:           s.log,
		dryRun:        s.dryRun,
		stopOnFailure: s.stopOnFailure,
	}
	return seq.Run(ctx, filename)
}
