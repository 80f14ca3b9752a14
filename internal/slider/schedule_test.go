package slider

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func autoPlay(o *Options) {
	o.Auto = true
	o.Circle = true
	o.AutoInterval = time.Second
}

func TestNavigate_RapidClicksCommitOnce(t *testing.T) {
	h := newHarness(t, 5, circular)

	assert.True(t, h.c.NextClick())
	for i := 0; i < 4; i++ {
		h.advance(5 * time.Millisecond)
		assert.False(t, h.c.NextClick(), "click %d lands inside the switch delay", i+2)
	}
	assert.Equal(t, 0, h.c.Index(), "nothing moves before the delay expires")

	h.advance(DefaultSwitchDelay)
	assert.Equal(t, 1, h.c.Index())
	assert.Len(t, h.events, 1)
	assert.False(t, h.c.NavigatePending())
}

func TestNavigate_SlotIsSharedAcrossSources(t *testing.T) {
	h := newHarness(t, 5, circular)

	require.True(t, h.c.IndexClick(3))
	assert.False(t, h.c.PrevClick())
	assert.False(t, h.c.NextClick())
	assert.False(t, h.c.IndexClick(1))

	h.advance(DefaultSwitchDelay)
	assert.Equal(t, 3, h.c.Index())
	require.Len(t, h.events, 1)

	require.True(t, h.c.PrevClick(), "the slot frees once the action ran")
	h.advance(DefaultSwitchDelay)
	assert.Equal(t, 2, h.c.Index())
}

func TestNavigate_IndexClickOntoCurrentItemIsNoop(t *testing.T) {
	h := newHarness(t, 5, circular)

	require.True(t, h.c.IndexClick(2))
	// Direct navigation during the delay moves onto the clicked item, so the
	// delayed click resolves to a no-op against the live index.
	require.True(t, h.c.Go(At(2)))
	h.advance(DefaultSwitchDelay)

	assert.Equal(t, 2, h.c.Index())
	assert.Len(t, h.events, 1)
}

func TestNavigate_IndexClickResolvesAgainstLiveCount(t *testing.T) {
	h := newHarness(t, 5, nonCircular)

	require.True(t, h.c.IndexClick(3))
	h.stage.items = 2
	h.c.Refresh()
	h.advance(DefaultSwitchDelay)

	assert.Equal(t, 1, h.c.Index(), "position 3 clamps to the last of two items")
	require.Len(t, h.events, 1)
	assert.Equal(t, ChangeEvent{Index: 1, LastIndex: 0}, h.events[0])
}

func TestNavigate_PrevClickResolvesAtFireTime(t *testing.T) {
	h := newHarness(t, 5, circular)

	require.True(t, h.c.PrevClick())
	require.True(t, h.c.Go(At(3)))
	h.advance(DefaultSwitchDelay)

	assert.Equal(t, 2, h.c.Index(), "prev is relative to the index when the delay expires")
}

func TestNavigate_NegativeMarkerIgnored(t *testing.T) {
	h := newHarness(t, 3, nil)
	assert.False(t, h.c.IndexClick(-1))
	assert.False(t, h.c.NavigatePending())
}

func TestNavigate_ZeroDelayStillDefers(t *testing.T) {
	h := newHarness(t, 3, func(o *Options) { o.SwitchDelay = 0 })

	require.True(t, h.c.NextClick())
	assert.Equal(t, 0, h.c.Index())
	h.advance(0)
	assert.Equal(t, 1, h.c.Index())
}

func TestPlay_AdvancesAndRearms(t *testing.T) {
	h := newHarness(t, 3, autoPlay)
	require.True(t, h.c.Playing())
	assert.Equal(t, 1, h.q.Len())

	h.advance(time.Second)
	assert.Equal(t, 1, h.c.Index())
	assert.True(t, h.c.Playing())
	assert.Equal(t, 1, h.q.Len(), "exactly one auto-play timer after re-arming")

	h.advance(time.Second)
	h.advance(time.Second)
	assert.Equal(t, 0, h.c.Index(), "auto-play wraps around")
	assert.Len(t, h.events, 3)
}

func TestPlay_DoesNothingWithoutAuto(t *testing.T) {
	h := newHarness(t, 3, nil)
	h.c.Play()
	assert.False(t, h.c.Playing())
	assert.Equal(t, 0, h.q.Len())
}

func TestPlay_ReplacesPendingTimer(t *testing.T) {
	h := newHarness(t, 3, autoPlay)

	h.advance(600 * time.Millisecond)
	h.c.Play()
	assert.Equal(t, 1, h.q.Len())

	h.advance(600 * time.Millisecond)
	assert.Equal(t, 0, h.c.Index(), "the first timer was replaced")

	h.advance(400 * time.Millisecond)
	assert.Equal(t, 1, h.c.Index())
}

func TestPlay_NonCircularStopsAtEnd(t *testing.T) {
	h := newHarness(t, 2, func(o *Options) {
		autoPlay(o)
		o.Circle = false
	})

	h.advance(time.Second)
	h.advance(time.Second)
	h.advance(time.Second)
	assert.Equal(t, 1, h.c.Index())
	assert.Len(t, h.events, 1)
	assert.True(t, h.c.Playing(), "the chain keeps running even when next declines")
}

func TestPauseResume_PointerEnterAndLeave(t *testing.T) {
	h := newHarness(t, 4, autoPlay)

	h.advance(900 * time.Millisecond)
	h.c.Pause()
	assert.False(t, h.c.Playing())

	h.advance(5 * time.Second)
	assert.Equal(t, 0, h.c.Index(), "no advance while the pointer is over the widget")

	h.c.Resume()
	h.advance(999 * time.Millisecond)
	assert.Equal(t, 0, h.c.Index(), "resume restarts the full interval")
	h.advance(time.Millisecond)
	assert.Equal(t, 1, h.c.Index())
}

func TestPauseResume_OverlappingPairsDoNotDoubleAdvance(t *testing.T) {
	h := newHarness(t, 6, autoPlay)

	h.c.Pause()
	h.c.Resume()
	h.c.Resume()
	h.c.Pause()
	h.c.Resume()
	h.c.Resume()
	assert.Equal(t, 1, h.q.Len())

	h.advance(time.Second)
	assert.Equal(t, 1, h.c.Index())
	assert.Len(t, h.events, 1)
}

func TestDisabled_SuppressesEverything(t *testing.T) {
	h := newHarness(t, 4, func(o *Options) {
		autoPlay(o)
		o.Disabled = true
	})

	assert.True(t, h.c.Disabled())
	assert.False(t, h.c.Playing())
	assert.False(t, h.c.Next())
	assert.False(t, h.c.Go(End()))
	assert.False(t, h.c.NextClick())
	assert.False(t, h.c.IndexClick(2))

	h.advance(10 * time.Second)
	assert.Equal(t, 0, h.c.Index())
	assert.Empty(t, h.events)
	assert.Equal(t, 4, h.c.Count(), "refresh still ran")
}

func TestSetDisabled_TogglesAutoPlay(t *testing.T) {
	h := newHarness(t, 4, autoPlay)
	require.True(t, h.c.NextClick())

	h.c.SetDisabled(true)
	assert.False(t, h.c.Playing())
	assert.False(t, h.c.NavigatePending())
	assert.Equal(t, 0, h.q.Len())

	h.advance(5 * time.Second)
	assert.Equal(t, 0, h.c.Index())

	h.c.SetDisabled(false)
	assert.True(t, h.c.Playing())
	h.advance(time.Second)
	assert.Equal(t, 1, h.c.Index())
}

func TestDisabled_AtFireTimeDropsPendingClick(t *testing.T) {
	h := newHarness(t, 4, nil)
	require.True(t, h.c.NextClick())

	// Flip the flag without going through SetDisabled's cleanup.
	h.c.opts.Disabled = true
	h.advance(DefaultSwitchDelay)
	assert.Equal(t, 0, h.c.Index())
	assert.False(t, h.c.NavigatePending())
}

func TestDispose_CancelsTimers(t *testing.T) {
	h := newHarness(t, 4, autoPlay)
	require.True(t, h.c.NextClick())
	require.Equal(t, 2, h.q.Len())

	h.c.Dispose()
	assert.True(t, h.c.Disposed())
	assert.Equal(t, 0, h.q.Len())

	h.advance(10 * time.Second)
	assert.Equal(t, 0, h.c.Index())
	assert.Empty(t, h.events)

	assert.False(t, h.c.Next())
	assert.False(t, h.c.PrevClick())
	h.c.Play()
	h.c.Refresh()
	h.c.Dispose()
	assert.Equal(t, 0, h.q.Len())
}
