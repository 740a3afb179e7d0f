package order

import "sync"

// Store is an explicit in-memory order container for demo/preview views.
// It replaces the old hidden process-wide singleton: the composition root
// owns the instance and injects it where needed.
type Store struct {
	mu        sync.RWMutex
	orders    []Order
	listeners map[int]func(Order)
	nextToken int
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		orders:    make([]Order, 0),
		listeners: make(map[int]func(Order)),
	}
}

// Get returns a snapshot copy of all stored orders in insertion order
func (s *Store) Get() []Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snapshot := make([]Order, len(s.orders))
	copy(snapshot, s.orders)
	return snapshot
}

// Add appends an order and notifies every subscriber
func (s *Store) Add(o Order) {
	s.mu.Lock()
	s.orders = append(s.orders, o)
	listeners := make([]func(Order), 0, len(s.listeners))
	for _, fn := range s.listeners {
		listeners = append(listeners, fn)
	}
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(o)
	}
}

// Subscribe registers a listener called for every added order and returns
// the function that removes it again.
func (s *Store) Subscribe(fn func(Order)) (unsubscribe func()) {
	s.mu.Lock()
	token := s.nextToken
	s.nextToken++
	s.listeners[token] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, token)
		s.mu.Unlock()
	}
}

// Len returns the number of stored orders
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.orders)
}
