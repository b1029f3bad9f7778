package machine

import (
	"errors"
	"fmt"
	"slices"
)

var ErrInvalidTransition = errors.New("invalid state transition")

type State interface {
	~string
}

// Allowable lists the states reachable from a single state
type Allowable[S State] struct {
	from S
	to   []S
}

// StateMachine holds a current state and only moves along declared edges.
// It is not safe for concurrent use; owners serialize access.
type StateMachine[S State] struct {
	current S
	edges   map[S][]S
}

// New returns a machine in state initial. Transitions declared for the same
// from state are merged.
func New[S State](initial S, transitions ...Allowable[S]) *StateMachine[S] {
	edges := make(map[S][]S, len(transitions))
	for _, t := range transitions {
		edges[t.from] = append(edges[t.from], t.to...)
	}

	return &StateMachine[S]{current: initial, edges: edges}
}

// TransitionBuilder reads as From(a).To(b, c)
type TransitionBuilder[S State] struct {
	from S
}

func From[S State](from S) TransitionBuilder[S] {
	return TransitionBuilder[S]{from: from}
}

func (b TransitionBuilder[S]) To(to ...S) Allowable[S] {
	return Allowable[S]{from: b.from, to: to}
}

func (m *StateMachine[S]) Current() S {
	return m.current
}

func (m *StateMachine[S]) Is(s S) bool {
	return m.current == s
}

// CanTransition reports whether s is reachable from the current state in one step
func (m *StateMachine[S]) CanTransition(s S) bool {
	return slices.Contains(m.edges[m.current], s)
}

// ToState moves the machine into s. The state is left unchanged on error.
func (m *StateMachine[S]) ToState(s S) error {
	if !m.CanTransition(s) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, m.current, s)
	}

	m.current = s
	return nil
}
