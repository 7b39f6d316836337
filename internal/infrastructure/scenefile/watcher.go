// Package scenefile watches scene and script files on disk.
package scenefile

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// Watcher reports writes to a fixed set of files. It watches their parent
// directories so editors that replace files on save are still seen.
type Watcher struct {
	fs    *fsnotify.Watcher
	files map[string]bool
	log   zerolog.Logger
}

// NewWatcher starts watching paths.
func NewWatcher(log zerolog.Logger, paths ...string) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create file watcher: %w", err)
	}

	w := &Watcher{
		fs:    fs,
		files: make(map[string]bool, len(paths)),
		log:   log.With().Str("component", "scenefile").Logger(),
	}

	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			_ = fs.Close()
			return nil, fmt.Errorf("resolve %s: %w", p, err)
		}
		w.files[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := fs.Add(dir); err != nil {
			_ = fs.Close()
			return nil, fmt.Errorf("watch %s: %w", dir, err)
		}
	}

	return w, nil
}

// Run calls onChange with the absolute path of every watched file that is
// written or recreated, until ctx is done or the watcher is closed.
// onChange runs on the watcher goroutine.
func (w *Watcher) Run(ctx context.Context, onChange func(path string)) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			path := filepath.Clean(ev.Name)
			if !w.files[path] {
				continue
			}
			w.log.Debug().Str("op", ev.Op.String()).Str("file", path).Msg("scene file changed")
			onChange(path)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.log.Warn().Err(err).Msg("scene file watcher error")
		}
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.fs.Close()
}
