package carousel

import "math"

const (
	// Epsilon absorbs sub-unit rounding at the end of the track
	Epsilon = 1.0
	// DefaultPage is scrolled when the visible extent is not known yet
	DefaultPage = 320.0
)

// NavState reports which directions a region can still scroll in
type NavState struct {
	CanScrollBackward bool `json:"canScrollBackward"`
	CanScrollForward  bool `json:"canScrollForward"`
}

// Navigation derives NavState from a region and pages it backward or forward.
// It is meant to be driven from a single goroutine, the way UI events are.
type Navigation struct {
	region   Region
	motion   MotionPreference
	viewport Viewport
	onChange func(NavState)

	state     NavState
	disposers disposers
}

// NavigationOption configures a Navigation
type NavigationOption func(*Navigation)

// WithMotionPreference sets the reduced motion signal consulted by ScrollByPage
func WithMotionPreference(mp MotionPreference) NavigationOption {
	return func(n *Navigation) {
		n.motion = mp
	}
}

// WithViewport recomputes the flags whenever the viewport is resized
func WithViewport(v Viewport) NavigationOption {
	return func(n *Navigation) {
		n.viewport = v
	}
}

// WithOnChange registers a callback invoked when the flags change
func WithOnChange(fn func(NavState)) NavigationOption {
	return func(n *Navigation) {
		n.onChange = fn
	}
}

func NewNavigation(opts ...NavigationOption) *Navigation {
	n := &Navigation{}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Attach binds the controller to r and registers its listeners. A nil region
// leaves the controller detached. Attaching again first detaches from the
// previous region. The returned function detaches.
func (n *Navigation) Attach(r Region) (detach func()) {
	n.Detach()
	if r == nil {
		return func() {}
	}

	attached := false
	defer func() {
		if !attached {
			n.Detach()
		}
	}()

	n.region = r
	n.disposers.add(r.OnScroll(n.Recompute))

	if rs, ok := r.(Resizable); ok {
		n.disposers.add(rs.OnResize(n.Recompute))
	}

	if n.viewport != nil {
		n.disposers.add(n.viewport.OnViewportResize(n.Recompute))
	}

	n.Recompute()
	attached = true

	return n.Detach
}

// Detach removes every listener registered by Attach
func (n *Navigation) Detach() {
	n.disposers.release()
	n.region = nil
}

// Attached reports whether the controller is bound to a region
func (n *Navigation) Attached() bool {
	return n.region != nil
}

// State returns the flags computed by the last Recompute
func (n *Navigation) State() NavState {
	return n.state
}

// Recompute reads the region's geometry and refreshes the flags
func (n *Navigation) Recompute() {
	if n.region == nil {
		return
	}

	offset := n.region.Offset()
	total := n.region.ScrollExtent()
	visible := n.region.VisibleExtent()

	next := NavState{
		CanScrollBackward: offset > 0,
		CanScrollForward:  offset < total-visible-Epsilon,
	}

	changed := next != n.state
	n.state = next
	if changed && n.onChange != nil {
		n.onChange(next)
	}
}

// PageSize is the distance a single ScrollByPage moves: 90% of the visible
// extent, at least one unit, or DefaultPage when the extent is unknown.
func (n *Navigation) PageSize() float64 {
	if n.region == nil {
		return DefaultPage
	}

	visible := n.region.VisibleExtent()
	if visible <= 0 || math.IsNaN(visible) {
		return DefaultPage
	}

	return math.Max(1, math.Floor(visible*9/10))
}

// ScrollByPage requests a scroll of one page in direction d. The scroll is
// instant when the user prefers reduced motion.
func (n *Navigation) ScrollByPage(d Direction) {
	if n.region == nil {
		return
	}

	behavior := BehaviorSmooth
	if n.motion != nil && n.motion.PrefersReducedMotion() {
		behavior = BehaviorInstant
	}

	n.region.ScrollBy(n.PageSize()*float64(d), behavior)
}
