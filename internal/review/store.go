package review

import (
	"sync"

	"soloparent/pkg/domain"
)

// Store holds at most one open review per admin.
type Store struct {
	mu      sync.RWMutex
	reviews map[domain.AdminID]*Review
}

func NewStore() *Store {
	return &Store{reviews: make(map[domain.AdminID]*Review)}
}

func (s *Store) Get(admin domain.AdminID) (*Review, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.reviews[admin]
	return r, ok
}

// Put replaces any review the admin had open.
func (s *Store) Put(admin domain.AdminID, r *Review) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reviews[admin] = r
}

func (s *Store) Delete(admin domain.AdminID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.reviews, admin)
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.reviews)
}
