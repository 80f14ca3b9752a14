package observe

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"

	"reel/internal/slider"
)

// Attach emits SlideChanged for every change on c. The returned function
// detaches it.
func Attach(ctx context.Context, c *slider.Controller) func() {
	return c.Subscribe(func(e slider.ChangeEvent) {
		capitan.Emit(ctx, SlideChanged,
			KeyIndex.Field(e.Index),
			KeyLastIndex.Field(e.LastIndex),
			KeyCount.Field(c.Count()),
		)
	})
}

// Playback emits PlaybackPaused or PlaybackResumed.
func Playback(ctx context.Context, playing bool, index int, interval time.Duration) {
	if playing {
		capitan.Emit(ctx, PlaybackResumed, KeyIndex.Field(index), KeyInterval.Field(interval))
		return
	}
	capitan.Emit(ctx, PlaybackPaused, KeyIndex.Field(index))
}

// Reloaded reports the outcome of a deck reload.
func Reloaded(ctx context.Context, deck string, count int, path string, err error) {
	if err != nil {
		capitan.Emit(ctx, DeckReloadFailed, KeyPath.Field(path), KeyError.Field(err.Error()))
		return
	}
	capitan.Emit(ctx, DeckReloaded, KeyDeck.Field(deck), KeyCount.Field(count), KeyPath.Field(path))
}

// Disposed emits SliderDisposed.
func Disposed(ctx context.Context, index int) {
	capitan.Emit(ctx, SliderDisposed, KeyIndex.Field(index))
}
