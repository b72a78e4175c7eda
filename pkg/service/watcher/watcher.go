// Package watcher calls back when a single file changes on disk.
package watcher

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/pubchart/pkg/utils/safe"
)

// DefaultDebounce groups the burst of events an editor produces on save
const DefaultDebounce = 200 * time.Millisecond

// Watcher watches one file. The parent directory is watched so that files
// replaced by rename, as most editors do, keep being tracked.
type Watcher struct {
	path     string
	debounce time.Duration
}

// Option configures a Watcher
type Option func(*Watcher)

// WithDebounce sets the quiet period before a change is reported
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		w.debounce = d
	}
}

// New creates a watcher for path
func New(path string, opts ...Option) *Watcher {
	w := &Watcher{
		path:     filepath.Clean(path),
		debounce: DefaultDebounce,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run blocks until ctx is cancelled, calling onChange after every change of
// the file. Errors and panics from onChange are handed to onError and do not
// stop the watch.
func (w *Watcher) Run(ctx context.Context, onChange func(ctx context.Context) error, onError func(ctx context.Context, err error)) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return goerr.Wrap(err, "failed to create file watcher")
	}
	defer func() {
		_ = fsw.Close()
	}()

	dir := filepath.Dir(w.path)
	if err := fsw.Add(dir); err != nil {
		return goerr.Wrap(err, "failed to watch directory", goerr.V("dir", dir))
	}

	logger := ctxlog.From(ctx)
	logger.Info("watching file", "path", w.path, "debounce", w.debounce)

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			logger.Debug("file event", "path", ev.Name, "op", ev.Op.String())
			timer.Reset(w.debounce)

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			onError(ctx, goerr.Wrap(err, "file watcher error", goerr.V("path", w.path)))

		case <-timer.C:
			if err := safe.Call(ctx, onChange); err != nil {
				onError(ctx, err)
			}
		}
	}
}
