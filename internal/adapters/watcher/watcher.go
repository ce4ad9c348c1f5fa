package watcher

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Watcher = (*Watcher)(nil)

// DefaultDebounceWindow is the quiet period before a batch of changes is reported.
const DefaultDebounceWindow = 300 * time.Millisecond

const eventChannelBuffer = 16

var skipDirectories = map[string]bool{
	".git": true,
	".jj":  true,
}

var headerExtensions = map[string]bool{
	".h":   true,
	".hh":  true,
	".hpp": true,
	".hxx": true,
	".h++": true,
	".inl": true,
}

// Watcher implements ports.Watcher using fsnotify.
type Watcher struct {
	logger    ports.Logger
	debouncer *Debouncer
	events    chan []string
	done      chan struct{}
	closeOnce sync.Once

	mu        sync.Mutex
	fsWatcher *fsnotify.Watcher
	exclude   []string
}

// NewWatcher creates a watcher reporting batches after window of quiet.
// The underlying notifier is only opened by Start.
func NewWatcher(logger ports.Logger, window time.Duration) *Watcher {
	w := &Watcher{
		logger: logger,
		events: make(chan []string, eventChannelBuffer),
		done:   make(chan struct{}),
	}
	w.debouncer = NewDebouncer(window, w.emit)
	return w
}

// Start watches every directory below roots. Roots that do not exist are
// skipped, and so is everything at or below an excluded path.
func (w *Watcher) Start(ctx context.Context, roots, exclude []string) error {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return zerr.Wrap(err, domain.ErrWatcherFailed.Error())
	}

	excluded := make([]string, 0, len(exclude))
	for _, path := range exclude {
		excluded = append(excluded, filepath.Clean(path))
	}

	for _, root := range roots {
		for _, dir := range directories(root, excluded) {
			if err := fsWatcher.Add(dir); err != nil {
				_ = fsWatcher.Close()
				return zerr.With(zerr.Wrap(err, domain.ErrWatcherFailed.Error()), "path", dir)
			}
		}
	}

	w.mu.Lock()
	w.fsWatcher = fsWatcher
	w.exclude = excluded
	w.mu.Unlock()

	go w.processEvents(ctx, fsWatcher)
	return nil
}

// Events returns batches of changed paths. The channel is never closed;
// consumers stop on their own context.
func (w *Watcher) Events() <-chan []string {
	return w.events
}

// Close stops the watcher and releases the notifier.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		w.debouncer.Stop()

		w.mu.Lock()
		defer w.mu.Unlock()
		if w.fsWatcher != nil {
			err = w.fsWatcher.Close()
		}
	})
	return err
}

func (w *Watcher) emit(paths []string) {
	select {
	case w.events <- paths:
	case <-w.done:
	}
}

func (w *Watcher) processEvents(ctx context.Context, fsWatcher *fsnotify.Watcher) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.done:
			return
		case event, ok := <-fsWatcher.Events:
			if !ok {
				return
			}
			w.handle(fsWatcher, event)
		case err, ok := <-fsWatcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watcher: " + err.Error())
		}
	}
}

func (w *Watcher) handle(fsWatcher *fsnotify.Watcher, event fsnotify.Event) {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return
	}

	w.mu.Lock()
	exclude := w.exclude
	w.mu.Unlock()
	if isExcluded(event.Name, exclude) {
		return
	}

	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			for _, dir := range directories(event.Name, exclude) {
				_ = fsWatcher.Add(dir)
			}
		}
	}

	if Relevant(event.Name) {
		w.debouncer.Add(event.Name)
	}
}

// Relevant reports whether a change to path can affect a build: sources,
// headers, and extensionless entries that are usually directories.
func Relevant(path string) bool {
	if _, ok := domain.KindOf(path); ok {
		return true
	}
	ext := strings.ToLower(filepath.Ext(path))
	return ext == "" || headerExtensions[ext]
}

func isExcluded(path string, exclude []string) bool {
	path = filepath.Clean(path)
	for _, ex := range exclude {
		if path == ex || strings.HasPrefix(path, ex+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

func directories(root string, exclude []string) []string {
	var dirs []string
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil //nolint:nilerr // unreadable directories are not watched
		}
		if !d.IsDir() {
			return nil
		}
		if isExcluded(path, exclude) {
			return fs.SkipDir
		}
		if path != root && skipDirectories[d.Name()] {
			return fs.SkipDir
		}
		dirs = append(dirs, path)
		return nil
	})
	return dirs
}
