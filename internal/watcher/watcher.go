// Package watcher re-evaluates a scenario file whenever it changes on disk.
package watcher

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/AkatukiSora/gto-poker-ref/internal/scenario"
)

// DefaultPollInterval is the fallback poll period for filesystems where
// fsnotify misses events.
const DefaultPollInterval = 500 * time.Millisecond

// ScenarioWatcher monitors a single scenario file and reports the evaluated
// result after every change.
type ScenarioWatcher struct {
	Path     string
	watcher  *fsnotify.Watcher
	done     chan struct{}
	mu       sync.Mutex
	evalMu   sync.Mutex
	stopOnce sync.Once

	cleanPath string
	modTime   time.Time
	size      int64
	interval  time.Duration
	onReport  func(r scenario.Report)
	onError   func(err error)
}

type Config struct {
	OnReport     func(r scenario.Report)
	OnError      func(err error)
	PollInterval time.Duration
}

// New creates a watcher for the given scenario path.
func New(path string, cfg Config) (*ScenarioWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}
	interval := cfg.PollInterval
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	return &ScenarioWatcher{
		Path:      path,
		watcher:   w,
		done:      make(chan struct{}),
		cleanPath: filepath.Clean(path),
		interval:  interval,
		onReport:  cfg.OnReport,
		onError:   cfg.OnError,
	}, nil
}

// Start evaluates the file once and then begins watching for changes.
func (sw *ScenarioWatcher) Start() error {
	slog.Info("watcher starting", "path", sw.Path)
	// Editors often replace the file on save, so watch the directory.
	dir := filepath.Dir(sw.Path)
	if err := sw.watcher.Add(dir); err != nil {
		return fmt.Errorf("watch directory %s: %w", dir, err)
	}

	sw.reload(true)
	go sw.watchLoop()
	return nil
}

// Stop stops the watcher. It is safe to call more than once.
func (sw *ScenarioWatcher) Stop() {
	sw.stopOnce.Do(func() {
		slog.Info("watcher stopped", "path", sw.Path)
		close(sw.done)
		_ = sw.watcher.Close()
	})
}

func (sw *ScenarioWatcher) watchLoop() {
	ticker := time.NewTicker(sw.interval)
	defer ticker.Stop()

	for {
		select {
		case <-sw.done:
			return
		case event, ok := <-sw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != sw.cleanPath {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				sw.reload(true)
			}
		case err, ok := <-sw.watcher.Errors:
			if !ok {
				return
			}
			sw.fail(err)
		case <-ticker.C:
			// Periodic poll as fallback
			sw.reload(false)
		}
	}
}

// reload evaluates the file if it changed since the last evaluation, or
// unconditionally when force is set.
func (sw *ScenarioWatcher) reload(force bool) {
	sw.evalMu.Lock()
	defer sw.evalMu.Unlock()

	info, err := os.Stat(sw.Path)
	if err != nil {
		if force {
			sw.fail(fmt.Errorf("stat scenario: %w", err))
		}
		return
	}

	sw.mu.Lock()
	unchanged := info.ModTime().Equal(sw.modTime) && info.Size() == sw.size
	sw.modTime = info.ModTime()
	sw.size = info.Size()
	sw.mu.Unlock()
	if unchanged && !force {
		return
	}

	s, err := scenario.Load(sw.Path)
	if err != nil {
		sw.fail(err)
		return
	}
	r, err := scenario.Evaluate(s)
	if err != nil {
		sw.fail(err)
		return
	}
	slog.Debug("scenario evaluated", "path", sw.Path, "name", r.Name)
	if sw.onReport != nil {
		sw.onReport(r)
	}
}

func (sw *ScenarioWatcher) fail(err error) {
	slog.Warn("scenario watch error", "path", sw.Path, "error", err)
	if sw.onError != nil {
		sw.onError(err)
	}
}
