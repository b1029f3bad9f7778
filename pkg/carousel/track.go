package carousel

import (
	"math"
	"sync"
)

// Animator carries out a smooth scroll from one offset to another. It is
// expected to call SetOffset until the target is reached.
type Animator func(from, to float64)

// ScrollRequest records a scroll asked of a Track
type ScrollRequest struct {
	Delta    float64
	Behavior Behavior
}

// Track is an in-memory Region made of equally sized items separated by a
// gap. Offsets are clamped to the scrollable range; last write wins.
type Track struct {
	mu         sync.Mutex
	offset     float64
	items      int
	itemExtent float64
	gap        float64
	visible    float64
	smooth     bool
	animator   Animator
	origin     func() float64
	last       *ScrollRequest

	scroll       listeners[func()]
	resize       listeners[func()]
	pointer      listeners[func(PointerEvent)]
	interceptors listeners[func()]
}

// NewTrack creates a track of items each itemExtent wide separated by gap,
// shown through a window visible units wide.
func NewTrack(items int, itemExtent, gap, visible float64) *Track {
	return &Track{
		items:      max(items, 0),
		itemExtent: math.Max(itemExtent, 0),
		gap:        math.Max(gap, 0),
		visible:    math.Max(visible, 0),
		smooth:     true,
	}
}

func (t *Track) Offset() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.offset
}

// SetOffset moves the track, clamped to [0, ScrollExtent-VisibleExtent]
func (t *Track) SetOffset(offset float64) {
	t.mu.Lock()
	next := t.clamp(offset)
	changed := next != t.offset
	t.offset = next
	t.mu.Unlock()

	if changed {
		t.fire(&t.scroll)
	}
}

func (t *Track) ScrollExtent() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.total()
}

func (t *Track) VisibleExtent() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.visible
}

// ScrollBy moves the track by delta, measured from the scroll origin when one
// is set. Smooth requests go through the animator when one is set and smooth
// scrolling is enabled; otherwise they jump.
func (t *Track) ScrollBy(delta float64, behavior Behavior) {
	t.mu.Lock()
	origin := t.origin
	t.mu.Unlock()

	// origin may read the track, so it runs unlocked
	base := math.NaN()
	if origin != nil {
		base = origin()
	}

	t.mu.Lock()
	t.last = &ScrollRequest{Delta: delta, Behavior: behavior}
	from := t.offset
	if math.IsNaN(base) {
		base = from
	}
	to := t.clamp(base + delta)
	animate := behavior == BehaviorSmooth && t.smooth && t.animator != nil
	animator := t.animator
	t.mu.Unlock()

	if animate && (from != to || base != from) {
		animator(from, to)
		return
	}

	t.SetOffset(to)
}

// SetScrollOrigin sets where relative scrolls are measured from. An animator
// uses it to report the destination of the scroll in flight, so a second
// request lands a full delta past the first. Nil restores the current offset.
func (t *Track) SetScrollOrigin(origin func() float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.origin = origin
}

// LastScroll returns the most recent ScrollBy request
func (t *Track) LastScroll() (ScrollRequest, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.last == nil {
		return ScrollRequest{}, false
	}
	return *t.last, true
}

// SetAnimator installs the function used for smooth scrolling
func (t *Track) SetAnimator(a Animator) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.animator = a
}

func (t *Track) SetSmoothScroll(enabled bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.smooth = enabled
}

// SmoothScroll reports whether smooth scrolling is enabled
func (t *Track) SmoothScroll() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.smooth
}

// SetVisibleExtent resizes the window onto the track
func (t *Track) SetVisibleExtent(visible float64) {
	t.resizeWith(func() {
		t.visible = math.Max(visible, 0)
	})
}

// SetItems changes the number of items on the track
func (t *Track) SetItems(items int) {
	t.resizeWith(func() {
		t.items = max(items, 0)
	})
}

func (t *Track) resizeWith(fn func()) {
	t.mu.Lock()
	beforeTotal, beforeVisible := t.total(), t.visible
	fn()
	changed := beforeTotal != t.total() || beforeVisible != t.visible
	clamped := t.clamp(t.offset)
	moved := clamped != t.offset
	t.offset = clamped
	t.mu.Unlock()

	if changed {
		t.fire(&t.resize)
	}
	if moved {
		t.fire(&t.scroll)
	}
}

func (t *Track) OnScroll(fn func()) (dispose func()) {
	return t.scroll.add(fn)
}

func (t *Track) OnResize(fn func()) (dispose func()) {
	return t.resize.add(fn)
}

func (t *Track) OnPointer(fn func(PointerEvent)) (dispose func()) {
	return t.pointer.add(fn)
}

// DispatchPointer delivers ev to the pointer listeners
func (t *Track) DispatchPointer(ev PointerEvent) {
	for _, fn := range t.pointer.snapshot() {
		fn(ev)
	}
}

// InterceptNextClick swallows the next click dispatched to the track
func (t *Track) InterceptNextClick() (cancel func()) {
	return t.interceptors.add(func() {})
}

// DispatchClick delivers a click. It reports false when a pending
// interception consumed the click, so its default action must not run.
func (t *Track) DispatchClick() bool {
	t.interceptors.mu.Lock()
	if len(t.interceptors.order) == 0 {
		t.interceptors.mu.Unlock()
		return true
	}
	id := t.interceptors.order[0]
	t.interceptors.mu.Unlock()

	t.interceptors.remove(id)
	return false
}

// ListenerCount reports the number of registered listeners of all kinds
func (t *Track) ListenerCount() int {
	return t.scroll.len() + t.resize.len() + t.pointer.len() + t.interceptors.len()
}

// ItemAt returns the index of the item under x, measured from the left edge
// of the visible window, or -1 when x falls in a gap or past the end.
func (t *Track) ItemAt(x float64) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	pos := t.offset + x
	stride := t.itemExtent + t.gap
	if pos < 0 || stride <= 0 || x < 0 || x >= t.visible {
		return -1
	}

	i := int(pos / stride)
	if i >= t.items || pos-float64(i)*stride >= t.itemExtent {
		return -1
	}
	return i
}

// VisibleRange returns the half-open range of items at least partly visible
func (t *Track) VisibleRange() (first, last int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	stride := t.itemExtent + t.gap
	if t.items == 0 || stride <= 0 {
		return 0, 0
	}

	first = int(t.offset / stride)
	if t.offset-float64(first)*stride >= t.itemExtent {
		first++
	}
	last = int(math.Ceil((t.offset + t.visible) / stride))
	return min(first, t.items), min(max(last, first), t.items)
}

// OffsetOfItem is the offset that aligns item i with the left edge
func (t *Track) OffsetOfItem(i int) float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return float64(i) * (t.itemExtent + t.gap)
}

// ItemExtent is the width of a single item
func (t *Track) ItemExtent() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.itemExtent
}

// Gap is the space between items
func (t *Track) Gap() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.gap
}

func (t *Track) total() float64 {
	if t.items == 0 {
		return 0
	}
	return float64(t.items)*t.itemExtent + float64(t.items-1)*t.gap
}

func (t *Track) clamp(offset float64) float64 {
	maxOffset := math.Max(t.total()-t.visible, 0)
	if math.IsNaN(offset) || offset < 0 {
		return 0
	}
	return math.Min(offset, maxOffset)
}

func (t *Track) fire(l *listeners[func()]) {
	for _, fn := range l.snapshot() {
		fn()
	}
}

// Screen is a Viewport whose resizes are announced by the host.
type Screen struct {
	resize listeners[func()]
}

func (s *Screen) OnViewportResize(fn func()) (dispose func()) {
	return s.resize.add(fn)
}

// Resize notifies listeners that the viewport changed size
func (s *Screen) Resize() {
	for _, fn := range s.resize.snapshot() {
		fn()
	}
}
