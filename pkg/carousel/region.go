// Package carousel holds the navigation and drag logic of a horizontally
// scrolling film carousel. The logic is written against the Region interface
// so it can be driven by any renderer: the HTML server pages through a
// virtual Track and the terminal browser through mouse and key events.
package carousel

// Behavior selects how a scroll request is carried out
type Behavior int

const (
	BehaviorSmooth Behavior = iota
	BehaviorInstant
)

func (b Behavior) String() string {
	if b == BehaviorInstant {
		return "instant"
	}
	return "smooth"
}

// Direction of a page scroll
type Direction int

const (
	Backward Direction = -1
	Forward  Direction = 1
)

// Region is a horizontally scrollable element. All extents share one unit
// (pixels for html, cells for a terminal).
type Region interface {
	Offset() float64
	SetOffset(offset float64)
	// ScrollExtent is the total scrollable width of the content
	ScrollExtent() float64
	// VisibleExtent is the width of the region itself
	VisibleExtent() float64
	ScrollBy(delta float64, behavior Behavior)
	OnScroll(fn func()) (dispose func())
}

// Resizable is implemented by regions that report their own size changes,
// including changes to the size of their content.
type Resizable interface {
	OnResize(fn func()) (dispose func())
}

// Viewport reports size changes of the surface hosting the regions.
type Viewport interface {
	OnViewportResize(fn func()) (dispose func())
}

// MotionPreference reports the user's reduced motion setting.
type MotionPreference interface {
	PrefersReducedMotion() bool
}

// MotionPreferenceFunc adapts a function into a MotionPreference.
type MotionPreferenceFunc func() bool

func (f MotionPreferenceFunc) PrefersReducedMotion() bool {
	return f()
}

// SmoothScroller is implemented by regions whose scroll behavior can be toggled.
type SmoothScroller interface {
	SetSmoothScroll(enabled bool)
}

// ClickTarget is implemented by regions that can swallow the next click before
// it reaches its default action.
type ClickTarget interface {
	InterceptNextClick() (cancel func())
}

// PointerKind is the kind of device behind a pointer event.
type PointerKind string

const (
	PointerMouse PointerKind = "mouse"
	PointerPen   PointerKind = "pen"
	PointerTouch PointerKind = "touch"
)

// PointerPhase is the stage of a pointer gesture an event belongs to.
type PointerPhase int

const (
	PointerDown PointerPhase = iota
	PointerMove
	PointerUp
	PointerLeave
)

// PointerEvent is a pointer event delivered to a region. Button 0 is the
// primary button.
type PointerEvent struct {
	Phase  PointerPhase
	Kind   PointerKind
	Button int
	X      float64
}

// PointerSource is implemented by regions that deliver pointer events.
type PointerSource interface {
	OnPointer(fn func(PointerEvent)) (dispose func())
}
