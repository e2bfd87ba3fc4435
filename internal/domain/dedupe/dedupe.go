// Package dedupe provides idempotency tracking for survey submissions.
// A bounded set remembers recently seen submission IDs so that client
// retries do not enqueue duplicate work; when the set is full the
// oldest entry is evicted first.
package dedupe

import "sync"

// DefaultMaxSize bounds the set when no option overrides it.
const DefaultMaxSize = 50_000

// Deduper tracks submission IDs that have already been accepted.
type Deduper interface {
	// SeenAndRecord reports whether the ID was already recorded and, if
	// not, records it atomically.
	SeenAndRecord(id string) bool
	// Unrecord removes an ID so a failed enqueue can be retried.
	Unrecord(id string)
	// Size returns the number of IDs currently tracked.
	Size() int
}

// Set is a mutex-guarded FIFO-evicting implementation of Deduper.
type Set struct {
	mu      sync.Mutex
	seen    map[string]struct{}
	order   []string
	maxSize int
}

var _ Deduper = (*Set)(nil)

// New creates an empty set with the given options applied.
func New(opts ...Option) *Set {
	s := &Set{
		seen:    make(map[string]struct{}),
		maxSize: DefaultMaxSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SeenAndRecord returns true when id is a duplicate. Otherwise it
// records the id, evicting the oldest entry if the set is full, and
// returns false.
func (s *Set) SeenAndRecord(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.seen[id]; ok {
		return true
	}
	if len(s.order) >= s.maxSize {
		oldest := s.order[0]
		s.order = s.order[1:]
		delete(s.seen, oldest)
	}
	s.seen[id] = struct{}{}
	s.order = append(s.order, id)
	return false
}

// Unrecord forgets an id. It is a no-op when the id is not tracked or
// has already been evicted.
func (s *Set) Unrecord(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.seen[id]; !ok {
		return
	}
	delete(s.seen, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Size returns the number of IDs currently tracked.
func (s *Set) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.seen)
}
