package rendercontext

// Holder owns graphics resources that must be freed once the context goes away.
type Holder interface {
	Release()
}

// Store keeps every holder used during setup and releases them together on
// shutdown, newest first.
type Store struct {
	used     []Holder
	released bool
}

func (s *Store) Use(h Holder) {
	if s.released {
		// context is already gone, nothing will release it later
		h.Release()
		return
	}
	s.used = append(s.used, h)
}

// Release frees every held resource. Calls after the first are no-ops.
func (s *Store) Release() {
	if s.released {
		return
	}
	s.released = true
	for i := len(s.used) - 1; i >= 0; i-- {
		s.used[i].Release()
	}
	s.used = nil
}

func (s *Store) Released() bool { return s.released }

func (s *Store) Len() int { return len(s.used) }
