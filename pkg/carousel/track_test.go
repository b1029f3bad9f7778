package carousel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrack_Geometry(t *testing.T) {
	track := NewTrack(5, 100, 10, 250)

	assert.Equal(t, 540.0, track.ScrollExtent())
	assert.Equal(t, 250.0, track.VisibleExtent())

	track.SetOffset(-20)
	assert.Equal(t, 0.0, track.Offset())

	track.SetOffset(10_000)
	assert.Equal(t, 290.0, track.Offset())

	assert.Equal(t, 220.0, track.OffsetOfItem(2))
}

func TestTrack_ItemAt(t *testing.T) {
	track := NewTrack(5, 100, 10, 250)

	assert.Equal(t, 0, track.ItemAt(0))
	assert.Equal(t, -1, track.ItemAt(105), "gap")
	assert.Equal(t, 1, track.ItemAt(110))
	assert.Equal(t, -1, track.ItemAt(300), "outside the window")

	track.SetOffset(110)
	assert.Equal(t, 1, track.ItemAt(0))
}

func TestTrack_VisibleRange(t *testing.T) {
	track := NewTrack(5, 100, 10, 250)

	first, last := track.VisibleRange()
	assert.Equal(t, 0, first)
	assert.Equal(t, 3, last)

	track.SetOffset(105)
	first, last = track.VisibleRange()
	assert.Equal(t, 1, first)
	assert.Equal(t, 4, last)

	empty := NewTrack(0, 100, 10, 250)
	first, last = empty.VisibleRange()
	assert.Equal(t, 0, first)
	assert.Equal(t, 0, last)
}

func TestTrack_ShrinkClampsOffset(t *testing.T) {
	track := NewTrack(10, 100, 0, 400)
	track.SetOffset(600)

	scrolled := 0
	track.OnScroll(func() { scrolled++ })

	track.SetItems(5)
	assert.Equal(t, 100.0, track.Offset())
	assert.Equal(t, 1, scrolled)
}

func TestTrack_SmoothScrollUsesAnimator(t *testing.T) {
	track := NewTrack(10, 100, 0, 400)

	var from, to float64
	track.SetAnimator(func(a, b float64) {
		from, to = a, b
	})

	track.ScrollBy(300, BehaviorSmooth)
	assert.Equal(t, 0.0, from)
	assert.Equal(t, 300.0, to)
	assert.Equal(t, 0.0, track.Offset(), "the animator moves the track")

	track.ScrollBy(300, BehaviorInstant)
	assert.Equal(t, 300.0, track.Offset())

	track.SetSmoothScroll(false)
	track.ScrollBy(300, BehaviorSmooth)
	assert.Equal(t, 600.0, track.Offset())
}

func TestTrack_ScrollOrigin(t *testing.T) {
	track := NewTrack(10, 100, 0, 400)

	inFlight := 300.0
	var to float64
	track.SetAnimator(func(_, b float64) {
		to = b
	})
	track.SetScrollOrigin(func() float64 { return inFlight })
	track.SetOffset(120)

	track.ScrollBy(300, BehaviorSmooth)
	assert.Equal(t, 600.0, to, "measured from the scroll in flight")
	assert.Equal(t, 120.0, track.Offset())

	track.ScrollBy(-180, BehaviorInstant)
	assert.Equal(t, 120.0, track.Offset())

	track.ScrollBy(1000, BehaviorInstant)
	assert.Equal(t, 600.0, track.Offset(), "clamped")

	track.SetScrollOrigin(nil)
	track.ScrollBy(-100, BehaviorInstant)
	assert.Equal(t, 500.0, track.Offset())
}

func TestTrack_ListenerDisposeIsIdempotent(t *testing.T) {
	track := NewTrack(10, 100, 0, 400)

	dispose := track.OnScroll(func() {})
	other := track.OnScroll(func() {})
	dispose()
	dispose()

	assert.Equal(t, 1, track.ListenerCount())
	other()
	assert.Equal(t, 0, track.ListenerCount())
}
