package services

import "sync"

// Sequence issues process-unique, monotonically increasing integer IDs for
// lots, staged lines and history events. Ascending IDs double as creation
// order, which FIFO consumption relies on, so random identifiers are not an
// option here.
type Sequence struct {
	mu   sync.Mutex
	last int64
}

// NewSequence creates an allocator starting at 1.
func NewSequence() *Sequence {
	return &Sequence{}
}

// Next returns the next ID.
func (s *Sequence) Next() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last++
	return s.last
}

// Last returns the most recently issued ID.
func (s *Sequence) Last() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

// EnsureFloor raises the allocator so no future ID collides with IDs
// restored from a snapshot.
func (s *Sequence) EnsureFloor(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id > s.last {
		s.last = id
	}
}
