package content

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/Pritam6569/portfr/pkg/logger"
)

// DefaultDebounce batches the bursts of events editors emit on save.
const DefaultDebounce = 250 * time.Millisecond

// Watcher reloads a Store when its content file changes on disk.
//
// The parent directory is watched rather than the file so that editors which
// save by renaming a temp file over the original keep triggering reloads.
type Watcher struct {
	store    *Store
	log      *slog.Logger
	file     string
	debounce time.Duration

	mu      sync.Mutex
	watcher *fsnotify.Watcher
	pending *time.Timer
	cancel  context.CancelFunc
	done    chan struct{}
}

// NewWatcher creates a watcher for store. The store must be file-backed.
func NewWatcher(store *Store, debounce time.Duration, log *slog.Logger) (*Watcher, error) {
	if store.Path() == "" {
		return nil, errors.New("content watcher needs a file-backed store")
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	file, err := filepath.Abs(store.Path())
	if err != nil {
		return nil, err
	}
	return &Watcher{
		store:    store,
		log:      log.With(logger.Scope("content.watcher")),
		file:     file,
		debounce: debounce,
	}, nil
}

// Start begins watching. It is a no-op if already running.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.watcher != nil {
		return nil
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := fw.Add(filepath.Dir(w.file)); err != nil {
		_ = fw.Close()
		return err
	}

	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	w.watcher = fw
	w.cancel = cancel
	w.done = make(chan struct{})

	go w.run(runCtx, fw, w.done)

	w.log.Info("watching content file", slog.String("path", w.file))
	return nil
}

// Stop ends the watch loop and waits for it to exit.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	fw, cancel, done := w.watcher, w.cancel, w.done
	w.watcher, w.cancel, w.done = nil, nil, nil
	if w.pending != nil {
		w.pending.Stop()
		w.pending = nil
	}
	w.mu.Unlock()

	if fw == nil {
		return nil
	}
	cancel()
	err := fw.Close()
	<-done
	return err
}

func (w *Watcher) run(ctx context.Context, fw *fsnotify.Watcher, done chan struct{}) {
	defer close(done)
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-fw.Events:
			if !ok {
				return
			}
			if w.relevant(ev) {
				w.schedule(ctx)
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return
			}
			w.log.Warn("content watcher error", logger.Error(err))
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.file {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)
}

func (w *Watcher) schedule(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.pending != nil {
		w.pending.Stop()
	}
	w.pending = time.AfterFunc(w.debounce, func() {
		if ctx.Err() != nil {
			return
		}
		_ = w.store.Reload(ctx)
	})
}
