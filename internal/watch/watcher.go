// Package watch re-runs generation when template sources or the directive
// file change on disk.
package watch

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce is how long the tree must stay quiet before changes are
// reported.
const DefaultDebounce = 300 * time.Millisecond

// ChangeFunc receives the changed paths of one quiet period, sorted.
type ChangeFunc func(ctx context.Context, paths []string)

// Watcher watches directory trees and reports batches of changed files.
type Watcher struct {
	mu       sync.Mutex
	watcher  *fsnotify.Watcher
	roots    []string
	match    func(path string) bool
	onChange ChangeFunc
	debounce time.Duration
	pending  map[string]time.Time
	stopCh   chan struct{}
	doneCh   chan struct{}
	running  bool
	log      *zap.Logger
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the quiet period.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(w *Watcher) {
		if l != nil {
			w.log = l
		}
	}
}

// New creates a Watcher over roots. Only files accepted by match are
// reported; directories created later under a root are watched too.
func New(roots []string, match func(path string) bool, onChange ChangeFunc, opts ...Option) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		watcher:  fw,
		roots:    roots,
		match:    match,
		onChange: onChange,
		debounce: DefaultDebounce,
		pending:  make(map[string]time.Time),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
		log:      zap.NewNop(),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w, nil
}

// Start adds every directory below the roots and begins watching. It does
// not block.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	for _, root := range w.roots {
		if err := w.addTree(root, false); err != nil {
			w.mu.Lock()
			w.running = false
			w.mu.Unlock()
			w.watcher.Close() //nolint:errcheck

			return err
		}

		w.log.Info("watching", zap.String("dir", root))
	}

	go w.run(ctx)

	return nil
}

// Stop stops the watcher and waits for the event loop to exit.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh

	if err := w.watcher.Close(); err != nil {
		w.log.Error("closing watcher", zap.Error(err))
	}
}

// Done is closed when the event loop has exited.
func (w *Watcher) Done() <-chan struct{} {
	return w.doneCh
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	tick := w.debounce / 4
	if tick < 10*time.Millisecond {
		tick = 10 * time.Millisecond
	}

	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-w.stopCh:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}

			w.log.Error("watch error", zap.Error(err))

		case now := <-ticker.C:
			if paths := w.flush(now); len(paths) > 0 {
				w.onChange(ctx, paths)
			}
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return
	}

	if event.Op&fsnotify.Create != 0 {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			// Files may already exist by the time the directory is added.
			if err := w.addTree(event.Name, true); err != nil {
				w.log.Warn("watching new directory", zap.String("dir", event.Name), zap.Error(err))
			}

			return
		}
	}

	if !w.match(event.Name) {
		return
	}

	w.log.Debug("change", zap.String("path", event.Name), zap.String("op", event.Op.String()))
	w.touch(event.Name)
}

func (w *Watcher) touch(path string) {
	w.mu.Lock()
	w.pending[path] = time.Now()
	w.mu.Unlock()
}

// flush returns the pending paths once none of them changed during the
// last debounce period.
func (w *Watcher) flush(now time.Time) []string {
	w.mu.Lock()
	defer w.mu.Unlock()

	if len(w.pending) == 0 {
		return nil
	}

	paths := make([]string, 0, len(w.pending))
	for path, at := range w.pending {
		if now.Sub(at) < w.debounce {
			return nil
		}

		paths = append(paths, path)
	}

	clear(w.pending)
	sort.Strings(paths)

	return paths
}

func (w *Watcher) addTree(root string, markFiles bool) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) && path != root {
				return nil
			}

			return err
		}

		if d.IsDir() {
			return w.watcher.Add(path)
		}

		if markFiles && w.match(path) {
			w.touch(path)
		}

		return nil
	})
}
