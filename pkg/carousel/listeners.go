package carousel

import "sync"

// listeners is a registry of callbacks that can be removed individually.
// Callbacks are invoked outside of the lock so they may register or dispose
// other callbacks.
type listeners[F any] struct {
	mu    sync.Mutex
	next  int
	funcs map[int]F
	order []int
}

func (l *listeners[F]) add(fn F) (dispose func()) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.funcs == nil {
		l.funcs = make(map[int]F)
	}

	id := l.next
	l.next++
	l.funcs[id] = fn
	l.order = append(l.order, id)

	var once sync.Once
	return func() {
		once.Do(func() {
			l.remove(id)
		})
	}
}

func (l *listeners[F]) remove(id int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.funcs, id)
	for i, v := range l.order {
		if v == id {
			l.order = append(l.order[:i:i], l.order[i+1:]...)
			break
		}
	}
}

func (l *listeners[F]) snapshot() []F {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]F, 0, len(l.order))
	for _, id := range l.order {
		out = append(out, l.funcs[id])
	}
	return out
}

func (l *listeners[F]) len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.funcs)
}

// disposers collects release functions so they can be run together.
type disposers []func()

func (d *disposers) add(fn func()) {
	if fn != nil {
		*d = append(*d, fn)
	}
}

// release runs the collected functions in reverse order and empties the list
func (d *disposers) release() {
	fns := *d
	*d = nil
	for i := len(fns) - 1; i >= 0; i-- {
		fns[i]()
	}
}
