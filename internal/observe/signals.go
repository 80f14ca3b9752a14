// Package observe declares the capitan signals reel emits.
package observe

import "github.com/zoobzio/capitan"

// Slider signals.
var (
	// SlideChanged is emitted after a committed transition.
	SlideChanged = capitan.NewSignal(
		"reel.slider.changed",
		"Slider moved to another item",
	)

	// PlaybackPaused is emitted when auto-play is held, e.g. by hovering.
	PlaybackPaused = capitan.NewSignal(
		"reel.slider.paused",
		"Auto-play paused",
	)

	// PlaybackResumed is emitted when auto-play is re-armed.
	PlaybackResumed = capitan.NewSignal(
		"reel.slider.played",
		"Auto-play resumed",
	)

	// SliderDisposed is emitted when a controller is torn down.
	SliderDisposed = capitan.NewSignal(
		"reel.slider.disposed",
		"Slider disposed",
	)
)

// Deck signals.
var (
	// DeckReloaded is emitted after slides were re-read from disk.
	DeckReloaded = capitan.NewSignal(
		"reel.deck.reloaded",
		"Deck reloaded",
	)

	// DeckReloadFailed is emitted when re-reading slides failed.
	DeckReloadFailed = capitan.NewSignal(
		"reel.deck.reload.failed",
		"Deck reload failed",
	)
)
