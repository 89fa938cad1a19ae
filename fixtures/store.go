package fixtures

import (
	"sync"
	"time"
)

func NewStore(set Set) *Store {
	return &Store{
		Set:       set,
		StartedAt: time.Now(),
	}
}

// Store tracks whether documents have been initialized in the mock service.
type Store struct {
	Set       Set
	StartedAt time.Time

	m           sync.Mutex
	initialized bool
}

// Initialize marks the documents as loaded and returns the document count.
func (s *Store) Initialize() int {
	s.m.Lock()
	defer s.m.Unlock()
	s.initialized = true
	return s.Set.SourceCount()
}

func (s *Store) Initialized() bool {
	s.m.Lock()
	defer s.m.Unlock()
	return s.initialized
}

// DocumentCount is zero until the documents are initialized.
func (s *Store) DocumentCount() int {
	if !s.Initialized() {
		return 0
	}
	return s.Set.SourceCount()
}
