package carousel

import (
	"math"

	"github.com/kasuboski/moviez/pkg/machine"
)

// DragThreshold is the displacement past which a gesture counts as a drag
// rather than a click.
const DragThreshold = 3.0

type DragState string

const (
	DragIdle     DragState = "idle"
	DragDragging DragState = "dragging"
)

// DragSession is the state of one pointer drag gesture
type DragSession struct {
	StartX      float64
	StartOffset float64
	Moved       bool
}

// Drag scrolls a region by dragging it with a pointer and swallows the click
// that follows a real drag. It is meant to be driven from a single goroutine.
type Drag struct {
	region    Region
	machine   *machine.StateMachine[DragState]
	session   *DragSession
	threshold float64

	disposers   disposers
	cancelClick func()
}

// DragOption configures a Drag
type DragOption func(*Drag)

// WithThreshold overrides DragThreshold
func WithThreshold(threshold float64) DragOption {
	return func(d *Drag) {
		d.threshold = threshold
	}
}

func newDragMachine() *machine.StateMachine[DragState] {
	return machine.New(DragIdle,
		machine.From(DragIdle).To(DragDragging),
		machine.From(DragDragging).To(DragIdle),
	)
}

func NewDrag(opts ...DragOption) *Drag {
	d := &Drag{
		machine:   newDragMachine(),
		threshold: DragThreshold,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Attach binds the controller to r. Pointer events are received from r when
// it is a PointerSource; otherwise the host feeds them through HandlePointer.
// The returned function detaches.
func (d *Drag) Attach(r Region) (detach func()) {
	d.Detach()
	if r == nil {
		return func() {}
	}

	attached := false
	defer func() {
		if !attached {
			d.Detach()
		}
	}()

	d.region = r
	if ps, ok := r.(PointerSource); ok {
		d.disposers.add(ps.OnPointer(d.HandlePointer))
	}

	attached = true
	return d.Detach
}

// Detach removes listeners, ends a drag in progress and drops any pending
// click interception.
func (d *Drag) Detach() {
	d.disposers.release()

	if d.machine.Is(DragDragging) {
		d.endSession()
	}

	d.dropClickInterception()
	d.region = nil
}

// State returns the current state of the gesture machine
func (d *Drag) State() DragState {
	return d.machine.Current()
}

// Session returns a copy of the active drag session, if any
func (d *Drag) Session() (DragSession, bool) {
	if d.session == nil {
		return DragSession{}, false
	}
	return *d.session, true
}

// HandlePointer advances the gesture machine with ev
func (d *Drag) HandlePointer(ev PointerEvent) {
	if d.region == nil {
		return
	}

	switch ev.Phase {
	case PointerDown:
		d.pointerDown(ev)
	case PointerMove:
		d.pointerMove(ev)
	case PointerUp, PointerLeave:
		d.pointerUp()
	}
}

func (d *Drag) pointerDown(ev PointerEvent) {
	if ev.Kind == PointerTouch || ev.Button != 0 {
		return
	}

	// a second pointer-down mid gesture must not open another session
	if d.machine.ToState(DragDragging) != nil {
		return
	}

	d.dropClickInterception()
	d.session = &DragSession{
		StartX:      ev.X,
		StartOffset: d.region.Offset(),
	}

	if ss, ok := d.region.(SmoothScroller); ok {
		ss.SetSmoothScroll(false)
	}
}

func (d *Drag) pointerMove(ev PointerEvent) {
	if !d.machine.Is(DragDragging) || d.session == nil {
		return
	}

	delta := ev.X - d.session.StartX
	if math.Abs(delta) > d.threshold {
		d.session.Moved = true
	}

	d.region.SetOffset(d.session.StartOffset - delta)
}

func (d *Drag) pointerUp() {
	if !d.machine.Is(DragDragging) {
		return
	}

	moved := d.session != nil && d.session.Moved
	d.endSession()

	if !moved {
		return
	}

	if ct, ok := d.region.(ClickTarget); ok {
		d.cancelClick = ct.InterceptNextClick()
	}
}

func (d *Drag) endSession() {
	_ = d.machine.ToState(DragIdle)
	d.session = nil

	if ss, ok := d.region.(SmoothScroller); ok {
		ss.SetSmoothScroll(true)
	}
}

func (d *Drag) dropClickInterception() {
	if d.cancelClick != nil {
		d.cancelClick()
		d.cancelClick = nil
	}
}
