package overlay

import "sync"

// DisposeFunc releases one resource acquired for the lifetime of an
// open overlay, such as a global key or mouse subscription.
type DisposeFunc func()

// Scope tracks the resources an open overlay holds and releases them
// exactly once when it closes or is torn down. Acquiring through the
// scope keeps teardown symmetrical with setup, so a close path can
// never leak a listener.
type Scope struct {
	mu       sync.Mutex
	disposed bool
	cleanup  []DisposeFunc
}

// NewScope returns an empty scope.
func NewScope() *Scope {
	return &Scope{}
}

// Add registers a cleanup to run on Close. Adding to an already closed
// scope runs the cleanup immediately.
func (s *Scope) Add(fn DisposeFunc) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		fn()
		return
	}
	s.cleanup = append(s.cleanup, fn)
	s.mu.Unlock()
}

// Close runs every registered cleanup in reverse order. Subsequent
// calls are no-ops.
func (s *Scope) Close() {
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		return
	}
	s.disposed = true
	cleanup := s.cleanup
	s.cleanup = nil
	s.mu.Unlock()

	for i := len(cleanup) - 1; i >= 0; i-- {
		cleanup[i]()
	}
}
