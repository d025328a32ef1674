package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"go.uber.org/automaxprocs/maxprocs"

	texmk "github.com/alnah/go-texmk"
)

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	flags, err := parseFlags(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return ExitGeneral
	}
	if flags.help {
		printUsage(os.Stdout)
		return ExitSuccess
	}
	if flags.version {
		printVersion(os.Stdout)
		return ExitSuccess
	}

	env := loadEnvConfig()
	user, err := loadUserConfig(userConfigPath())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return ExitGeneral
	}
	set := resolveSettings(flags, env, user)
	log := newLogger(set)
	warnUnknownEnvVars(log)

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues.
	_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
		log.Debug().Msgf(format, args...)
	}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := []texmk.Option{
		texmk.WithLogger(log),
		texmk.WithDefaultLatex(set.latex),
		texmk.WithDryRun(set.dryRun),
		texmk.WithStopOnFailure(set.stopOnFailure),
	}
	if set.configPath != "" {
		opts = append(opts, texmk.WithConfigPath(set.configPath))
	}
	svc := texmk.New(opts...)

	if set.watch {
		err = runWatch(ctx, svc, set.files, log)
	} else {
		err = svc.Make(ctx, set.files)
	}
	if err != nil {
		// Error-severity output bypasses the quiet threshold.
		log.Error().Msg(err.Error())
	}
	return exitCodeFor(err)
}

// newLogger builds the CLI logger: errors only under quiet, debug detail
// under verbose, info otherwise.
func newLogger(set settings) zerolog.Logger {
	level := zerolog.InfoLevel
	switch {
	case set.quiet:
		level = zerolog.ErrorLevel
	case set.verbose:
		level = zerolog.DebugLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}
