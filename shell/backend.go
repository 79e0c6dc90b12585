package shell

import "sync"

// Backend is the capability surface a host plugs into the shell for
// backend-aware commands. Implementations must be safe to hand off to
// another goroutine; they need not be internally synchronized, because the
// shell serializes access through the backend slot's mutex.
type Backend interface {
	// Cwd reports the backend's current working location.
	Cwd() string
}

// BackendLookup produces the optional backend for a shell, given the
// parsed invocation. It runs at most once per Shell, at the first dispatch
// (the parsed match it needs does not exist any earlier), and its result
// is cached in the backend slot for the Shell's lifetime so every call
// site sees a stable backend identity. A lookup error fails the current
// dispatch and is retried on the next one.
type BackendLookup func(m *Match) (Backend, error)

// backendSlot holds at most one backend behind a mutex. Concurrent
// dispatches never race on it: population happens at most once, and reads
// go through the same lock.
type backendSlot struct {
	mu       sync.Mutex
	backend  Backend
	resolved bool
}

// resolve populates the slot on first use.
func (s *backendSlot) resolve(lookup BackendLookup, m *Match) error {
	if lookup == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.resolved {
		return nil
	}
	backend, err := lookup(m)
	if err != nil {
		return err
	}
	s.backend = backend
	s.resolved = true
	return nil
}

// get returns the held backend, or nil when the slot is empty.
func (s *backendSlot) get() Backend {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.backend
}
