package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/bep/debounce"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// debounceDelay absorbs editors that save a file in several steps.
const debounceDelay = 100 * time.Millisecond

// watchFile calls onChange after filename changes, until ctx is done.
//
// The parent directory is watched rather than the file itself: editors that
// save atomically replace the file, which would drop a watch on the file.
func watchFile(ctx context.Context, filename string, onChange func()) error {
	target, err := filepath.Abs(filename)
	if err != nil {
		return fmt.Errorf("failed to resolve absolute path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filename, err)
	}

	return runWatcher(ctx, watcher.Events, watcher.Errors, target, debounce.New(debounceDelay), onChange)
}

// runWatcher filters events for target and hands them to debounced. The
// debounced callback only signals the loop; onChange runs on the loop's
// goroutine, so runs never overlap and none start after runWatcher returns.
func runWatcher(ctx context.Context, events <-chan fsnotify.Event, errs <-chan error, target string, debounced func(func()), onChange func()) error {
	log := zerolog.Ctx(ctx)

	changed := make(chan struct{}, 1)
	notify := func() {
		select {
		case changed <- struct{}{}:
		default: // A run is already pending
		}
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case <-changed:
			if ctx.Err() != nil {
				return nil
			}
			onChange()

		case event, ok := <-events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			// Remove and Rename are part of atomic saves
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}

			log.Debug().Str("file", event.Name).Str("op", event.Op.String()).Msg("file changed")
			debounced(notify)

		case err, ok := <-errs:
			if !ok {
				return nil
			}
			log.Warn().Err(err).Msg("file watcher error")
		}
	}
}
