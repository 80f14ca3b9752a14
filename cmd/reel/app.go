package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"reel/internal/config"
	"reel/internal/deck"
	"reel/internal/domain"
	"reel/internal/eventbus"
	"reel/internal/logging"
	"reel/internal/observe"
)

// app holds what every command that shows slides needs
type app struct {
	dir       string
	log       *slog.Logger
	bus       eventbus.EventBus
	configSvc config.ConfigService
	cfg       *config.Config
	loader    *deck.Loader
	deck      *domain.Deck

	closeLog func()
}

// setup resolves and loads the config, opens the log file, starts the event
// bus and loads the deck. Callers must call close.
func setup(cmd *cobra.Command) (*app, error) {
	dirFlag, _ := cmd.Flags().GetString("dir")
	configFlag, _ := cmd.Flags().GetString("config")
	logFile, _ := cmd.Flags().GetString("log-file")
	logLevel, _ := cmd.Flags().GetString("log-level")

	dir, err := filepath.Abs(dirFlag)
	if err != nil {
		return nil, fmt.Errorf("error resolving path: %w", err)
	}

	path := config.Resolve(configFlag, dir)
	cfg, err := config.NewConfigService(path).Load()
	if err != nil {
		return nil, err
	}
	// slides_dir defaults to the directory we were pointed at
	if cfg.SlidesDir == "" && len(cfg.Slides) == 0 {
		cfg.SlidesDir = dir
	}

	if logFile == "" {
		logFile = cfg.Log.File
	}
	if logLevel == "" {
		logLevel = cfg.Log.Level
	}
	level, err := logging.ParseLevel(logLevel)
	if err != nil {
		return nil, err
	}
	logger, closeLog, err := logging.Setup(logFile, level)
	if err != nil {
		return nil, err
	}
	logger.Info("starting", "command", cmd.Name(), "config", path, "dir", dir)

	bus := eventbus.New(logger)
	bus.Subscribe(eventbus.EventConfigLoaded, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ConfigLoadedEvent); ok {
			logger.Info("config loaded", "path", event.Path)
		}
	})
	bus.Subscribe(eventbus.EventDeckLoaded, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.DeckLoadedEvent); ok && event.Deck != nil {
			logger.Info("deck loaded", "name", event.Deck.Name, "slides", event.Deck.Len(), "path", event.Path)
		}
	})

	a := &app{
		dir:       dir,
		log:       logger,
		bus:       bus,
		configSvc: config.NewConfigServiceWithBus(path, bus),
		cfg:       cfg,
		loader:    deck.NewLoader(logger),
		closeLog:  closeLog,
	}

	a.deck, err = a.loader.Load(cfg)
	if err != nil {
		a.close()
		return nil, fmt.Errorf("failed to load slides: %w", err)
	}
	return a, nil
}

// reloadOnChange rebuilds the deck whenever its sources change and publishes
// DeckLoaded, or Error when the new sources do not load. Hosts apply the
// deck from DeckLoaded.
func (a *app) reloadOnChange(ctx context.Context) func() {
	return a.bus.Subscribe(eventbus.EventDeckReloadRequested, func(e eventbus.DomainEvent) {
		event, _ := e.(eventbus.DeckReloadRequestedEvent)
		d, err := a.reloadDeck()
		if err != nil {
			a.log.Error("deck reload failed", "path", event.Path, "err", err)
			observe.Reloaded(ctx, a.deck.Name, a.deck.Len(), event.Path, err)
			a.bus.Publish(eventbus.ErrorEvent{Message: "Reload failed", Err: err})
			return
		}
		a.bus.Publish(eventbus.DeckLoadedEvent{Deck: d, Path: event.Path})
	})
}

// reloadDeck re-reads the config file and rebuilds the deck from it. Slider
// settings stay as they were at startup.
func (a *app) reloadDeck() (*domain.Deck, error) {
	cfg, err := a.configSvc.Load()
	if err != nil {
		return nil, err
	}
	if cfg.SlidesDir == "" && len(cfg.Slides) == 0 {
		cfg.SlidesDir = a.dir
	}
	return a.loader.Load(cfg)
}

func (a *app) watcher() *deck.Watcher {
	path := a.configSvc.Path()
	if _, err := os.Stat(path); err != nil {
		// running on defaults, there is no config file to watch
		path = ""
	}
	return deck.NewWatcher(a.bus, path, a.cfg, deck.WithLogger(a.log))
}

func (a *app) close() {
	a.bus.Close()
	a.log.Info("exiting")
	a.closeLog()
}
