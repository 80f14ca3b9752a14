package deck

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/zoobzio/clockz"

	"reel/internal/config"
	"reel/internal/eventbus"
	"reel/internal/logging"
)

// DefaultDebounce coalesces the burst of events an editor save produces.
const DefaultDebounce = 150 * time.Millisecond

// Watcher publishes DeckReloadRequested when any deck source changes
type Watcher struct {
	bus      eventbus.EventBus
	files    map[string]bool
	dirs     map[string]bool // slide directories: any slide file inside counts
	debounce time.Duration
	clock    clockz.Clock
	log      *slog.Logger
}

// WatcherOption configures a Watcher
type WatcherOption func(*Watcher)

// WithDebounce sets how long the watcher waits for events to settle
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) { w.debounce = d }
}

// WithClock sets the clock used for debouncing
func WithClock(c clockz.Clock) WatcherOption {
	return func(w *Watcher) { w.clock = c }
}

// WithLogger sets the logger
func WithLogger(l *slog.Logger) WatcherOption {
	return func(w *Watcher) { w.log = l }
}

// NewWatcher watches the config file, every slide file it names and the
// slides directory.
func NewWatcher(bus eventbus.EventBus, configPath string, cfg *config.Config, opts ...WatcherOption) *Watcher {
	w := &Watcher{
		bus:      bus,
		files:    make(map[string]bool),
		dirs:     make(map[string]bool),
		debounce: DefaultDebounce,
		clock:    clockz.RealClock,
		log:      logging.NewNop(),
	}
	for _, opt := range opts {
		opt(w)
	}

	if configPath != "" {
		w.files[filepath.Clean(configPath)] = true
	}
	for _, s := range cfg.Slides {
		if s.File != "" {
			w.files[filepath.Clean(s.File)] = true
		}
	}
	if cfg.SlidesDir != "" {
		w.dirs[filepath.Clean(cfg.SlidesDir)] = true
	}
	return w
}

// Run watches until ctx is done
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	defer fw.Close()

	// Editors often replace files, so watch the parent directories.
	watched := make(map[string]bool)
	for f := range w.files {
		watched[filepath.Dir(f)] = true
	}
	for d := range w.dirs {
		watched[d] = true
	}
	for dir := range watched {
		if err := fw.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}
	w.log.Debug("deck watcher started", "dirs", len(watched))

	var (
		timer   clockz.Timer
		pending string
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		var timerC <-chan time.Time
		if timer != nil && pending != "" {
			timerC = timer.C()
		}

		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if !w.relevant(event.Name) {
				continue
			}

			pending = event.Name
			if timer == nil {
				timer = w.clock.NewTimer(w.debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C():
					default:
					}
				}
				timer.Reset(w.debounce)
			}

		case <-timerC:
			w.log.Info("deck source changed", "path", pending)
			w.bus.Publish(eventbus.DeckReloadRequestedEvent{Path: pending})
			pending = ""

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("deck watcher error", "error", err)
		}
	}
}

func (w *Watcher) relevant(name string) bool {
	name = filepath.Clean(name)
	if w.files[name] {
		return true
	}
	return w.dirs[filepath.Dir(name)] && IsSlideFile(name)
}
