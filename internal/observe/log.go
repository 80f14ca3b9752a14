package observe

import (
	"context"
	"log/slog"

	"github.com/zoobzio/capitan"
)

// Log mirrors reel signals into logger at debug level.
func Log(logger *slog.Logger) {
	capitan.Hook(SlideChanged, func(_ context.Context, e *capitan.Event) {
		index, _ := KeyIndex.From(e)
		last, _ := KeyLastIndex.From(e)
		count, _ := KeyCount.From(e)
		logger.Debug("signal: slide changed", "index", index, "last", last, "count", count)
	})
	capitan.Hook(PlaybackPaused, func(_ context.Context, e *capitan.Event) {
		index, _ := KeyIndex.From(e)
		logger.Debug("signal: playback paused", "index", index)
	})
	capitan.Hook(PlaybackResumed, func(_ context.Context, e *capitan.Event) {
		index, _ := KeyIndex.From(e)
		interval, _ := KeyInterval.From(e)
		logger.Debug("signal: playback resumed", "index", index, "interval", interval)
	})
	capitan.Hook(SliderDisposed, func(_ context.Context, e *capitan.Event) {
		index, _ := KeyIndex.From(e)
		logger.Debug("signal: slider disposed", "index", index)
	})
	capitan.Hook(DeckReloaded, func(_ context.Context, e *capitan.Event) {
		deck, _ := KeyDeck.From(e)
		count, _ := KeyCount.From(e)
		path, _ := KeyPath.From(e)
		logger.Debug("signal: deck reloaded", "deck", deck, "count", count, "path", path)
	})
	capitan.Hook(DeckReloadFailed, func(_ context.Context, e *capitan.Event) {
		path, _ := KeyPath.From(e)
		errMsg, _ := KeyError.From(e)
		logger.Warn("signal: deck reload failed", "path", path, "error", errMsg)
	})
}
