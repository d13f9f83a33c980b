package services

import "sync"

// inflightSet tracks which suggestion ids currently have a request pending.
// Insert happens when the request starts, removal when it settles; a second
// start on the same id is refused while the first is pending.
type inflightSet struct {
	mu  sync.Mutex
	ids map[int64]struct{}
}

func newInflightSet() *inflightSet {
	return &inflightSet{ids: make(map[int64]struct{})}
}

// tryAcquire marks id in flight. It reports false if id already was.
func (s *inflightSet) tryAcquire(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.ids[id]; busy {
		return false
	}
	s.ids[id] = struct{}{}
	return true
}

// release settles id, allowing the next request on it.
func (s *inflightSet) release(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.ids, id)
}

// has reports whether id is currently in flight.
func (s *inflightSet) has(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, busy := s.ids[id]
	return busy
}
