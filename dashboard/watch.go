package dashboard

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/c360studio/ontodash/registry"
)

// defaultDebounce is how long the watcher waits for further changes
// before re-checking.
const defaultDebounce = 500 * time.Millisecond

// Watcher re-runs the principle checks for a namespace whenever its
// registry page changes.
type Watcher struct {
	runner   *Runner
	dir      string
	debounce time.Duration
	logger   *slog.Logger

	pendingMu sync.Mutex
	pending   map[string]bool
}

// NewWatcher creates a Watcher over the registry directory.
func NewWatcher(runner *Runner, dir string, debounce time.Duration, logger *slog.Logger) *Watcher {
	if debounce <= 0 {
		debounce = defaultDebounce
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Watcher{
		runner:   runner,
		dir:      dir,
		debounce: debounce,
		logger:   logger,
		pending:  make(map[string]bool),
	}
}

// Watch blocks until ctx is cancelled, re-checking namespaces whose
// pages change. Changes arriving within the debounce window are
// coalesced into one pass.
func (w *Watcher) Watch(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fsw.Close()

	if err := fsw.Add(w.dir); err != nil {
		return err
	}

	w.logger.Info("Watching registry pages", slog.String("dir", w.dir))

	var timer *time.Timer
	flush := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			w.pendingMu.Lock()
			w.pending[event.Name] = true
			w.pendingMu.Unlock()

			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounce, func() {
				select {
				case flush <- struct{}{}:
				default:
				}
			})

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("Watch error", slog.String("error", err.Error()))

		case <-flush:
			w.flushPending()
		}
	}
}

// relevant filters events down to markdown page writes and creates.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return false
	}
	return strings.HasSuffix(event.Name, ".md")
}

// flushPending re-checks every namespace with a pending page change.
func (w *Watcher) flushPending() {
	w.pendingMu.Lock()
	paths := make([]string, 0, len(w.pending))
	for p := range w.pending {
		paths = append(paths, p)
	}
	w.pending = make(map[string]bool)
	w.pendingMu.Unlock()

	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			w.logger.Warn("Failed to read changed page",
				slog.String("path", path),
				slog.String("error", err.Error()))
			continue
		}

		page := registry.ParsePage(path, content)
		if page.ID == "" {
			w.logger.Warn("Changed page has no id", slog.String("path", path))
			continue
		}
		if page.IsObsolete {
			w.logger.Debug("Ignoring obsolete namespace", slog.String("namespace", page.ID))
			continue
		}

		w.logger.Info("Re-checking namespace",
			slog.String("namespace", page.ID),
			slog.String("page", filepath.Base(path)))
		w.runner.CheckNamespace(page)
	}
}
