package config

import (
	"context"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceWindow collapses editor save bursts (truncate + write + rename)
// into a single reload.
const debounceWindow = 100 * time.Millisecond

// Watch reloads the configuration at path whenever the file changes and hands
// the result to onChange. The watch runs until ctx is canceled. Transient
// failures (unreadable file mid-save, watcher hiccups) are logged and the
// watch continues.
//
// The parent directory is watched rather than the file itself, so the watch
// survives editors that replace the file on save.
//
// Parameters:
//   - ctx: cancels the watch
//   - path: the YAML file to watch
//   - onChange: called with each successfully reloaded configuration
//
// Returns:
//   - error: an error if the watcher cannot be created or the directory added
func Watch(ctx context.Context, path string, onChange func(*Config)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return err
	}

	target, err := filepath.Abs(path)
	if err != nil {
		_ = watcher.Close()
		return err
	}

	go func() {
		defer watcher.Close()
		var lastReload time.Time

		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Rename) {
					continue
				}
				abs, err := filepath.Abs(event.Name)
				if err != nil || abs != target {
					continue
				}
				if time.Since(lastReload) < debounceWindow {
					continue
				}
				lastReload = time.Now()

				cfg, err := Load(path)
				if err != nil {
					log.Printf("[config] reload skipped: %v", err)
					continue
				}
				onChange(cfg)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("[config] watch error: %v", err)
			}
		}
	}()

	return nil
}
