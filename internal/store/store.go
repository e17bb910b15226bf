// Package store holds the shared user state observed by every screen.
//
// One Store instance lives for the whole program, built in main and handed
// to the root model. Mutation and notification both happen on the Bubble Tea
// update goroutine, so the registry needs no locking.
package store

import "github.com/google/uuid"

// Subscription identifies one registered listener.
type Subscription string

// Listener runs after every value change, including writes of an unchanged
// value. Order across listeners is unspecified.
type Listener func()

// Store is an observable holder for the user's name.
type Store struct {
	name      string
	set       bool
	listeners map[Subscription]Listener
}

func New() *Store {
	return &Store{listeners: make(map[Subscription]Listener)}
}

// Name returns the current value and whether one has been set.
func (s *Store) Name() (string, bool) {
	return s.name, s.set
}

// SetName replaces the value and notifies every listener synchronously.
func (s *Store) SetName(name string) {
	s.name = name
	s.set = true
	s.notify()
}

// Clear resets the value to unset and notifies listeners.
func (s *Store) Clear() {
	s.name = ""
	s.set = false
	s.notify()
}

// Subscribe registers fn and returns a handle for Unsubscribe.
func (s *Store) Subscribe(fn Listener) Subscription {
	if fn == nil {
		return ""
	}
	sub := Subscription(uuid.NewString())
	s.listeners[sub] = fn
	return sub
}

// Unsubscribe removes a registration. Unknown handles are ignored.
func (s *Store) Unsubscribe(sub Subscription) {
	delete(s.listeners, sub)
}

func (s *Store) notify() {
	for _, fn := range s.listeners {
		fn()
	}
}
