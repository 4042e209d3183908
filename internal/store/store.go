package store

import "sync"

// Listener is notified with the new state after each dispatch.
type Listener func(GameState)

// Store owns the current GameState. Dispatch is safe for concurrent use;
// listeners run synchronously on the dispatching goroutine, after the lock
// is released.
type Store struct {
	mu        sync.RWMutex
	state     GameState
	listeners map[int]Listener
	order     []int
	nextID    int
}

// New creates a store holding the initial state.
func New(initial GameState) *Store {
	return &Store{
		state:     initial,
		listeners: make(map[int]Listener),
	}
}

// State returns the current snapshot.
func (s *Store) State() GameState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Dispatch reduces the action into the state and notifies listeners in
// subscription order.
func (s *Store) Dispatch(a Action) GameState {
	s.mu.Lock()
	s.state = Reduce(s.state, a)
	next := s.state
	listeners := make([]Listener, 0, len(s.order))
	for _, id := range s.order {
		listeners = append(listeners, s.listeners[id])
	}
	s.mu.Unlock()

	for _, l := range listeners {
		l(next)
	}
	return next
}

// Subscribe registers a listener and returns a function that removes it.
func (s *Store) Subscribe(l Listener) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = l
	s.order = append(s.order, id)

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if _, ok := s.listeners[id]; !ok {
			return
		}
		delete(s.listeners, id)
		for i, v := range s.order {
			if v == id {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
	}
}
