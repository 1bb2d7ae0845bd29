package editor

import (
	"context"
	"fmt"
	"github.com/cenkalti/backoff/v4"
	"github.com/fsnotify/fsnotify"
	"log"
	"time"
)

// Maximum attempts to watch a config file again after it was replaced (editors usually save by renaming)
const watchReAddRetries = 8

// watchConfig starts watching the config file at path, queueing its view options whenever it changes.
// It stops when ctx is done.
func (r *Editor) watchConfig(ctx context.Context, path string) error {
	watcher, err := newFsWatcher()
	if err != nil {
		return fmt.Errorf("watching %s: %w", path, err)
	}
	if err = watcher.Add(path); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("watching %s: %w", path, err)
	}
	go func() {
		defer func() {
			if err := watcher.Close(); err != nil {
				log.Println("[Watcher] Error closing:", err)
			}
		}()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
					// The watch is lost with the old file: wait for the new one to appear
					err := backoff.Retry(func() error {
						return watcher.Add(path)
					}, backoff.WithContext(backoff.WithMaxRetries(newReAddBackOff(), watchReAddRetries), ctx))
					if err != nil {
						log.Println("[Watcher] Stopped watching", path, ":", err)
						return
					}
				} else if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				r.reloadConfig(path)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Println("[Watcher] Error:", err)
			}
		}
	}()
	log.Println("[Watcher] Watching", path)
	return nil
}

func newReAddBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 20 * time.Millisecond
	return b
}

// reloadConfig loads the view options of the config file and queues them for the next update
func (r *Editor) reloadConfig(path string) {
	cfg, err := LoadConfig(path)
	if err != nil {
		log.Println("[Watcher] Ignoring invalid config:", err)
		return
	}
	opts, err := cfg.ViewOptions()
	if err != nil {
		log.Println("[Watcher] Ignoring invalid config:", err)
		return
	}
	log.Println("[Watcher] Reloaded", path)
	r.pendingOptions <- opts
}

// onUpdateOptions applies the options queued by the watchers (if any)
func (r *Editor) onUpdateOptions() {
	for {
		select {
		case opts := <-r.pendingOptions:
			r.applyOptions(opts)
		default:
			return
		}
	}
}

// applyOptions applies options to a running editor, waiting for the current render to finish
func (r *Editor) applyOptions(opts []Option) {
	r.prevRenderCancel()
	r.renderingLock.Lock()
	for _, opt := range opts {
		opt(r)
	}
	r.renderingLock.Unlock()
	r.rerender()
}
