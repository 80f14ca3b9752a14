package observe

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zoobzio/capitan"
)

func TestReloaded_EmitsFailure(t *testing.T) {
	got := make(chan string, 1)
	capitan.Hook(DeckReloadFailed, func(_ context.Context, e *capitan.Event) {
		msg, _ := KeyError.From(e)
		got <- msg
	})

	Reloaded(context.Background(), "demo", 0, "/tmp/.reel.toml", errors.New("boom"))

	select {
	case msg := <-got:
		assert.Equal(t, "boom", msg)
	case <-time.After(time.Second):
		require.Fail(t, "DeckReloadFailed was not emitted")
	}
}

func TestPlayback_EmitsResumedWithInterval(t *testing.T) {
	got := make(chan time.Duration, 1)
	capitan.Hook(PlaybackResumed, func(_ context.Context, e *capitan.Event) {
		interval, _ := KeyInterval.From(e)
		got <- interval
	})

	Playback(context.Background(), true, 2, 3*time.Second)

	select {
	case interval := <-got:
		assert.Equal(t, 3*time.Second, interval)
	case <-time.After(time.Second):
		require.Fail(t, "PlaybackResumed was not emitted")
	}
}
