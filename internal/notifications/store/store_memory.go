package store

import (
	"cmp"
	"slices"
	"sync"

	"soloparent/internal/notifications/models"
	"soloparent/pkg/domain"
)

// InMemoryInboxStore mirrors the last fetched inbox of each region.
type InMemoryInboxStore struct {
	mu      sync.RWMutex
	inboxes map[domain.Region][]models.Notification
}

func New() *InMemoryInboxStore {
	return &InMemoryInboxStore{inboxes: make(map[domain.Region][]models.Notification)}
}

// Replace swaps the region's mirror for items, newest first.
func (s *InMemoryInboxStore) Replace(region domain.Region, items []models.Notification) {
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b models.Notification) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	s.inboxes[region] = sorted
}

func (s *InMemoryInboxStore) List(region domain.Region) []models.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := slices.Clone(s.inboxes[region])
	if out == nil {
		out = []models.Notification{}
	}
	return out
}

func (s *InMemoryInboxStore) Find(region domain.Region, id int64) (models.Notification, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, n := range s.inboxes[region] {
		if n.ID == id {
			return n, true
		}
	}
	return models.Notification{}, false
}

// MarkRead flips the read flag of ids and returns how many entries changed.
func (s *InMemoryInboxStore) MarkRead(region domain.Region, ids ...int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	changed := 0
	items := s.inboxes[region]
	for i := range items {
		if !items[i].IsRead && slices.Contains(ids, items[i].ID) {
			items[i].IsRead = true
			changed++
		}
	}
	return changed
}

func (s *InMemoryInboxStore) Clear(region domain.Region) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inboxes, region)
}

func (s *InMemoryInboxStore) Unread(region domain.Region) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, item := range s.inboxes[region] {
		if !item.IsRead {
			n++
		}
	}
	return n
}
