package app

import (
	"sync"
	"sync/atomic"
)

// Shared guards the single View every goroutine draws from.
//
// By default every access is a try-lock: if another goroutine holds the
// lock the attempt is dropped, not queued, and the caller moves on. A later
// event redraws anyway, so nothing waits on a slow reload. With Queue set
// callers block for the lock instead.
type Shared struct {
	mu    sync.RWMutex
	view  *View
	Queue bool

	skipped atomic.Int64
}

// NewShared takes ownership of v.
func NewShared(v *View) *Shared {
	return &Shared{view: v}
}

// TryUpdate runs fn with exclusive access to the view. applied is false,
// and fn is not called, when the lock was busy.
func (s *Shared) TryUpdate(fn func(*View) error) (applied bool, err error) {
	if s.Queue {
		s.mu.Lock()
	} else if !s.mu.TryLock() {
		s.skipped.Add(1)
		return false, nil
	}
	defer s.mu.Unlock()
	return true, fn(s.view)
}

// TryRead runs fn with shared access to the view, under the same
// skip-when-busy rule as TryUpdate.
func (s *Shared) TryRead(fn func(*View) error) (applied bool, err error) {
	if s.Queue {
		s.mu.RLock()
	} else if !s.mu.TryRLock() {
		s.skipped.Add(1)
		return false, nil
	}
	defer s.mu.RUnlock()
	return true, fn(s.view)
}

// Skipped counts attempts dropped because the lock was busy.
func (s *Shared) Skipped() int64 { return s.skipped.Load() }
