// Package wishlist keeps the user's liked films. The Store is safe for
// concurrent use: every operation is a single atomic transition from one
// immutable State to the next, persisted before listeners are notified.
package wishlist

import (
	"context"
	"slices"
	"sync"

	"github.com/kasuboski/moviez/pkg/logger"
	"github.com/kasuboski/moviez/pkg/movies"
	"github.com/kasuboski/moviez/pkg/storage"
)

// Entry is the film summary a user put on the wishlist
type Entry = movies.FilmSummary

// State is an immutable snapshot of the wishlist in insertion order
type State struct {
	Items []Entry `json:"items"`
}

func (s State) index(id int) int {
	return slices.IndexFunc(s.Items, func(e Entry) bool {
		return e.ID == id
	})
}

// Has reports whether the film with id is on the wishlist
func (s State) Has(id int) bool {
	return s.index(id) >= 0
}

// Get returns the entry for id
func (s State) Get(id int) (Entry, bool) {
	i := s.index(id)
	if i < 0 {
		return Entry{}, false
	}
	return s.Items[i], true
}

func (s State) Len() int {
	return len(s.Items)
}

// Listener is notified after each transition with the new and the previous state
type Listener func(next, prev State)

// Store holds the wishlist. Listeners are called one transition at a time in
// the order transitions were applied. A transition made from inside a
// listener is announced once the current round of listeners has returned.
type Store struct {
	mu        sync.Mutex
	state     State
	storage   storage.Storage
	nextID    int
	listeners map[int]Listener
	order     []int

	// transitions not yet announced, and whether a caller is announcing them
	pending  []change
	draining bool
}

type change struct {
	next State
	prev State
}

// New creates an empty store persisting to s. A nil s keeps the wishlist in memory only.
func New(s storage.Storage) *Store {
	return &Store{
		state:     State{Items: []Entry{}},
		storage:   s,
		listeners: make(map[int]Listener),
	}
}

// Open creates a store rehydrated from s. Missing or unreadable data starts
// an empty wishlist.
func Open(ctx context.Context, s storage.Storage) *Store {
	store := New(s)
	if s != nil {
		store.state = load(ctx, s)
	}
	return store
}

// State returns the current snapshot. Its items must not be modified.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Items returns a copy of the entries in insertion order
func (s *Store) Items() []Entry {
	return slices.Clone(s.State().Items)
}

func (s *Store) Len() int {
	return s.State().Len()
}

func (s *Store) Has(id int) bool {
	return s.State().Has(id)
}

// GetByID returns the entry for id
func (s *Store) GetByID(id int) (Entry, bool) {
	return s.State().Get(id)
}

// Add appends e unless an entry with the same id exists
func (s *Store) Add(ctx context.Context, e Entry) State {
	next, _ := s.transition(ctx, func(cur State) (State, bool) {
		return add(cur, e)
	})
	return next
}

// Remove drops the entry with id, if present
func (s *Store) Remove(ctx context.Context, id int) State {
	next, _ := s.transition(ctx, func(cur State) (State, bool) {
		return remove(cur, id)
	})
	return next
}

// Toggle removes e when present and adds it otherwise. It reports whether e
// is on the wishlist afterwards.
func (s *Store) Toggle(ctx context.Context, e Entry) (State, bool) {
	next, _ := s.transition(ctx, func(cur State) (State, bool) {
		if cur.Has(e.ID) {
			return remove(cur, e.ID)
		}
		return add(cur, e)
	})
	return next, next.Has(e.ID)
}

// Clear empties the wishlist
func (s *Store) Clear(ctx context.Context) State {
	next, _ := s.transition(ctx, func(cur State) (State, bool) {
		return State{Items: []Entry{}}, true
	})
	return next
}

// Subscribe registers l for every subsequent transition
func (s *Store) Subscribe(l Listener) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = l
	s.order = append(s.order, id)

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.listeners, id)
			s.order = slices.DeleteFunc(s.order, func(v int) bool { return v == id })
		})
	}
}

// transition applies fn to the current state under the lock, persists the
// result and queues it for listeners. Unchanged states are neither saved nor announced.
func (s *Store) transition(ctx context.Context, fn func(State) (State, bool)) (State, bool) {
	s.mu.Lock()
	prev := s.state
	next, changed := fn(prev)
	if !changed {
		s.mu.Unlock()
		return prev, false
	}

	s.state = next
	s.persist(ctx, next)

	s.pending = append(s.pending, change{next: next, prev: prev})
	if s.draining {
		// whoever is announcing will get to this one
		s.mu.Unlock()
		return next, true
	}
	s.draining = true
	s.mu.Unlock()

	s.drain(ctx)
	return next, true
}

// drain announces queued transitions until none are left
func (s *Store) drain(ctx context.Context) {
	for {
		s.mu.Lock()
		if len(s.pending) == 0 {
			s.draining = false
			s.pending = nil
			s.mu.Unlock()
			return
		}
		c := s.pending[0]
		s.pending = s.pending[1:]

		listeners := make([]Listener, 0, len(s.order))
		for _, id := range s.order {
			listeners = append(listeners, s.listeners[id])
		}
		s.mu.Unlock()

		s.notify(ctx, listeners, c.next, c.prev)
	}
}

func (s *Store) notify(ctx context.Context, listeners []Listener, next, prev State) {
	for _, l := range listeners {
		func() {
			defer func() {
				if r := recover(); r != nil {
					logger.FromCtx(ctx).Errorw("wishlist listener panicked", "panic", r)
				}
			}()
			l(next, prev)
		}()
	}
}

func add(cur State, e Entry) (State, bool) {
	if cur.Has(e.ID) {
		return cur, false
	}

	items := make([]Entry, len(cur.Items), len(cur.Items)+1)
	copy(items, cur.Items)
	return State{Items: append(items, e)}, true
}

func remove(cur State, id int) (State, bool) {
	i := cur.index(id)
	if i < 0 {
		return cur, false
	}

	items := make([]Entry, 0, len(cur.Items)-1)
	items = append(items, cur.Items[:i]...)
	items = append(items, cur.Items[i+1:]...)
	return State{Items: items}, true
}
