package exportquota

import (
	"sync"

	"soloparent/pkg/domain"
)

// InMemoryQuotaStore holds the last backend response per admin.
type InMemoryQuotaStore struct {
	mu     sync.RWMutex
	quotas map[domain.AdminID]Quota
}

func NewStore() *InMemoryQuotaStore {
	return &InMemoryQuotaStore{quotas: make(map[domain.AdminID]Quota)}
}

func (s *InMemoryQuotaStore) Get(adminID domain.AdminID) (Quota, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	q, ok := s.quotas[adminID]
	return q, ok
}

func (s *InMemoryQuotaStore) Put(q Quota) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.quotas[q.AdminID] = q
}

// Invalidate drops the mirror so the next check goes to the backend.
func (s *InMemoryQuotaStore) Invalidate(adminID domain.AdminID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.quotas, adminID)
}
