package checker

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// WatcherConfig configures the project file watcher.
type WatcherConfig struct {
	// Paths are the project files to watch.
	Paths []string

	// Debounce is how long to wait for more changes before re-checking.
	Debounce time.Duration

	// Checker runs the re-checks. A nil checker gets a default one.
	Checker *Checker

	// Logger for watch events.
	Logger *slog.Logger
}

// WatchOp indicates the type of file operation behind a watch event.
type WatchOp string

const (
	OpCreate WatchOp = "create"
	OpModify WatchOp = "modify"
	OpDelete WatchOp = "delete"
)

// WatchEvent is one re-check outcome. Report is nil when the file was
// deleted or failed to load; Err carries the load failure.
type WatchEvent struct {
	Path   string
	Op     WatchOp
	Report *Report
	Err    error
}

// Watcher re-checks project files whenever they change on disk.
type Watcher struct {
	config  WatcherConfig
	checker *Checker
	watcher *fsnotify.Watcher
	logger  *slog.Logger

	// Debouncing: collect changes before processing.
	pendingMu sync.Mutex
	pending   map[string]fsnotify.Op

	events chan WatchEvent
}

// NewWatcher creates a watcher over the given project files.
func NewWatcher(config WatcherConfig) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	chk := config.Checker
	if chk == nil {
		chk = New(logger)
	}
	if config.Debounce == 0 {
		config.Debounce = 100 * time.Millisecond
	}

	return &Watcher{
		config:  config,
		checker: chk,
		watcher: fsw,
		logger:  logger,
		pending: make(map[string]fsnotify.Op),
		events:  make(chan WatchEvent, 100),
	}, nil
}

// Events returns the channel of watch events.
func (w *Watcher) Events() <-chan WatchEvent {
	return w.events
}

// Start begins watching and runs until the context is canceled. Editors
// replace files on save, so the containing directories are watched rather
// than the files themselves.
func (w *Watcher) Start(ctx context.Context) error {
	dirs := make(map[string]bool)
	for _, p := range w.config.Paths {
		dirs[filepath.Dir(p)] = true
	}
	for dir := range dirs {
		if err := w.watcher.Add(dir); err != nil {
			w.logger.Warn("failed to watch directory", "path", dir, "error", err)
		} else {
			w.logger.Debug("watching directory", "path", dir)
		}
	}

	go w.processEvents(ctx)

	w.logger.Info("project watcher started",
		"files", len(w.config.Paths),
		"debounce", w.config.Debounce)
	return nil
}

// Stop stops the watcher. The processing goroutine owns the event
// channel and closes it once it drains, so consumers ranging over
// Events terminate after Stop or context cancellation.
func (w *Watcher) Stop() error {
	return w.watcher.Close()
}

// processEvents handles fsnotify events with debouncing.
func (w *Watcher) processEvents(ctx context.Context) {
	defer close(w.events)

	ticker := time.NewTicker(w.config.Debounce)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleFSEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("watcher error", "error", err)

		case <-ticker.C:
			w.flushPending(ctx)
		}
	}
}

// handleFSEvent accumulates a single fsnotify event.
func (w *Watcher) handleFSEvent(event fsnotify.Event) {
	if !strings.HasSuffix(event.Name, ProjectExt) {
		return
	}

	w.pendingMu.Lock()
	w.pending[event.Name] = event.Op
	w.pendingMu.Unlock()

	w.logger.Debug("project file changed", "path", event.Name, "op", event.Op.String())
}

// flushPending re-checks the accumulated changes.
func (w *Watcher) flushPending(ctx context.Context) {
	w.pendingMu.Lock()
	if len(w.pending) == 0 {
		w.pendingMu.Unlock()
		return
	}
	toProcess := w.pending
	w.pending = make(map[string]fsnotify.Op)
	w.pendingMu.Unlock()

	for path, op := range toProcess {
		select {
		case <-ctx.Done():
			return
		default:
		}

		if op.Has(fsnotify.Remove) || op.Has(fsnotify.Rename) {
			w.sendEvent(ctx, WatchEvent{Path: path, Op: OpDelete})
			continue
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			w.sendEvent(ctx, WatchEvent{Path: path, Op: OpDelete})
			continue
		}

		event := WatchEvent{Path: path, Op: OpModify}
		if op.Has(fsnotify.Create) {
			event.Op = OpCreate
		}
		event.Report, event.Err = w.checker.CheckFile(path)
		w.sendEvent(ctx, event)
	}
}

func (w *Watcher) sendEvent(ctx context.Context, event WatchEvent) {
	select {
	case w.events <- event:
	case <-ctx.Done():
	}
}
