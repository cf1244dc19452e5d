package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	tt "github.com/exprkit/boolsimp/internal/types"
)

const defaultDebounce = 100 * time.Millisecond

// Watcher re-lints Go files as they change on disk.
type Watcher struct {
	engine   *Engine
	watcher  *fsnotify.Watcher
	logger   *zap.Logger
	report   func(filename string, issues []tt.Issue)
	debounce time.Duration
}

// NewWatcher wraps an engine in a file watcher. The report callback receives
// the fresh issues for every changed file; a nil callback only logs.
func NewWatcher(engine *Engine, logger *zap.Logger, report func(string, []tt.Issue)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Watcher{
		engine:   engine,
		watcher:  fsw,
		logger:   logger,
		report:   report,
		debounce: defaultDebounce,
	}, nil
}

// Add registers a file, or a directory tree, with the watcher.
func (w *Watcher) Add(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return w.watcher.Add(path)
	}
	return filepath.Walk(path, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return w.watcher.Add(p)
		}
		return nil
	})
}

// Start consumes file events until Close is called.
func (w *Watcher) Start() {
	go w.loop()
}

// Close releases the underlying watcher, which also ends the event loop.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

func (w *Watcher) loop() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("watch error", zap.Error(err))
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if event.Op&fsnotify.Write != fsnotify.Write {
		return
	}
	if !strings.HasSuffix(event.Name, ".go") {
		return
	}

	// Editors fire several writes per save; let the burst settle before
	// reading the file.
	time.Sleep(w.debounce)

	issues, err := w.engine.Run(event.Name)
	if err != nil {
		w.logger.Error("lint failed", zap.String("file", event.Name), zap.Error(err))
		return
	}
	w.logger.Info("file changed", zap.String("file", event.Name), zap.Int("issues", len(issues)))
	if w.report != nil {
		w.report(event.Name, issues)
	}
}
