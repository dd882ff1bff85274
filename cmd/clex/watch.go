package main

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// watch re-lexes sources under root whenever they are written, until ctx is
// done. A file root is watched through its parent directory.
func (a *app) watch(ctx context.Context, root string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("cannot start watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("cannot stat %s: %w", root, err)
	}

	single := ""
	if info.IsDir() {
		if err := addTree(watcher, root); err != nil {
			return err
		}
	} else {
		single = filepath.Clean(root)
		if err := watcher.Add(filepath.Dir(single)); err != nil {
			return fmt.Errorf("cannot watch %s: %w", root, err)
		}
	}

	a.log.Info().Str("path", root).Msg("watching for changes")

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			a.handleEvent(ctx, watcher, event, single)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			a.log.Warn().Err(err).Msg("watch error")
		}
	}
}

// handleEvent re-lexes a changed source and starts watching new directories
func (a *app) handleEvent(ctx context.Context, watcher *fsnotify.Watcher, event fsnotify.Event, single string) {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return
	}

	info, err := os.Stat(event.Name)
	if err != nil {
		// Removed again before we got here
		return
	}

	if info.IsDir() {
		if single == "" && event.Has(fsnotify.Create) {
			if err := addTree(watcher, event.Name); err != nil {
				a.log.Warn().Err(err).Str("path", event.Name).Msg("cannot watch new directory")
			}
		}
		return
	}

	if !a.shouldRelex(event.Name, single) {
		return
	}

	a.log.Debug().Str("path", event.Name).Str("op", event.Op.String()).Msg("source changed")
	r, err := a.lexFile(ctx, event.Name)
	if err != nil {
		a.log.Warn().Err(err).Str("path", event.Name).Msg("cannot lex changed source")
		return
	}
	a.flush(r)
}

// shouldRelex filters change events down to watched sources
func (a *app) shouldRelex(path, single string) bool {
	if single != "" {
		return filepath.Clean(path) == single
	}
	return a.hasSourceExt(path)
}

// addTree watches root and every directory below it
func addTree(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if err := watcher.Add(path); err != nil {
			return fmt.Errorf("cannot watch %s: %w", path, err)
		}
		return nil
	})
}
