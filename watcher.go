package showcase

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// ContentWatcher watches a content directory tree and calls onChange once
// a burst of file events has settled.
type ContentWatcher struct {
	watcher  *fsnotify.Watcher
	root     string
	debounce time.Duration
	onChange func(ctx context.Context)
	log      *zap.Logger

	mu      sync.Mutex
	running bool
	done    chan struct{}
}

// NewContentWatcher creates a watcher for root. Nothing is watched until Start.
func NewContentWatcher(root string, debounce time.Duration, log *zap.Logger, onChange func(ctx context.Context)) (*ContentWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &ContentWatcher{
		watcher:  w,
		root:     root,
		debounce: debounce,
		onChange: onChange,
		log:      log,
		done:     make(chan struct{}),
	}, nil
}

// Start adds every directory under root and begins processing events in a
// goroutine. It returns immediately; cancel ctx or call Stop to end it.
func (cw *ContentWatcher) Start(ctx context.Context) error {
	cw.mu.Lock()
	if cw.running {
		cw.mu.Unlock()
		return nil
	}
	cw.running = true
	cw.mu.Unlock()

	if err := os.MkdirAll(cw.root, 0o755); err != nil {
		return err
	}
	if err := cw.addTree(cw.root); err != nil {
		return err
	}
	cw.log.Info("watching content", zap.String("dir", cw.root))
	go cw.run(ctx)
	return nil
}

// Stop closes the underlying watcher and waits for the event loop to exit.
func (cw *ContentWatcher) Stop() {
	cw.mu.Lock()
	running := cw.running
	cw.running = false
	cw.mu.Unlock()

	cw.watcher.Close()
	if running {
		<-cw.done
	}
}

// fsnotify does not recurse, so every directory is added on its own.
func (cw *ContentWatcher) addTree(dir string) error {
	return filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return cw.watcher.Add(p)
		}
		return nil
	})
}

func (cw *ContentWatcher) run(ctx context.Context) {
	defer close(cw.done)

	timer := time.NewTimer(cw.debounce)
	timer.Stop()
	defer timer.Stop()
	pending := false

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-cw.watcher.Events:
			if !ok {
				return
			}
			if ev.Has(fsnotify.Create) {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					if err := cw.addTree(ev.Name); err != nil {
						cw.log.Warn("watch new directory", zap.String("dir", ev.Name), zap.Error(err))
					}
				}
			}
			if ev.Has(fsnotify.Chmod) && !ev.Has(fsnotify.Write) {
				continue
			}
			cw.log.Debug("content changed", zap.String("path", ev.Name), zap.Stringer("op", ev.Op))
			timer.Reset(cw.debounce)
			pending = true
		case err, ok := <-cw.watcher.Errors:
			if !ok {
				return
			}
			cw.log.Warn("content watcher error", zap.Error(err))
		case <-timer.C:
			if pending {
				pending = false
				cw.onChange(ctx)
			}
		}
	}
}
