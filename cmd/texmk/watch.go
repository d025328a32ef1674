package main

import (
	"context"
	"errors"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	texmk "github.com/alnah/go-texmk"
)

// ErrWatchTarget is returned when watch mode is started without a document
// to watch.
var ErrWatchTarget = errors.New("watch mode requires a filename")

// watchDebounce coalesces the event bursts editors produce on save into
// one rebuild.
const watchDebounce = 200 * time.Millisecond

// runWatch builds the document once, then rebuilds it whenever the file
// changes, until the context is cancelled. Build failures are reported and
// watching continues; only watcher failures end the loop.
func runWatch(ctx context.Context, svc *texmk.Service, files []string, log zerolog.Logger) error {
	if len(files) == 0 {
		return ErrWatchTarget
	}
	target := files[0]

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	// Watch the directory, not the file: editors that replace the file on
	// save would otherwise drop the watch.
	dir := filepath.Dir(target)
	if err := watcher.Add(dir); err != nil {
		return err
	}

	build := func() {
		if err := svc.Make(ctx, files); err != nil {
			log.Error().Err(err).Str("file", target).Msg("build failed")
			return
		}
		log.Info().Str("file", target).Msg("build finished")
	}
	build()
	log.Info().Str("file", target).Msg("watching for changes")

	var timer *time.Timer
	pending := make(chan struct{}, 1)
	schedule := func() {
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(watchDebounce, func() {
			select {
			case pending <- struct{}{}:
			default:
			}
		})
	}

	targetName := filepath.Base(target)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-pending:
			build()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != targetName {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			log.Debug().Str("event", event.Op.String()).Str("file", event.Name).Msg("source changed")
			schedule()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Error().Err(err).Msg("watch error")
		}
	}
}
