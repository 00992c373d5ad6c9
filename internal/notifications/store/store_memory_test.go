package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soloparent/internal/notifications/models"
	"soloparent/pkg/domain"
)

func TestInMemoryInboxStore(t *testing.T) {
	base := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	region := domain.Region("San Isidro")

	t.Run("replace sorts newest first", func(t *testing.T) {
		s := New()
		s.Replace(region, []models.Notification{
			{ID: 1, CreatedAt: base},
			{ID: 3, CreatedAt: base.Add(time.Hour)},
			{ID: 2, CreatedAt: base},
		})
		items := s.List(region)
		require.Len(t, items, 3)
		assert.Equal(t, []int64{3, 2, 1}, []int64{items[0].ID, items[1].ID, items[2].ID})
	})

	t.Run("mark read only counts unread entries", func(t *testing.T) {
		s := New()
		s.Replace(region, []models.Notification{{ID: 1}, {ID: 2, IsRead: true}, {ID: 3}})
		assert.Equal(t, 2, s.Unread(region))
		assert.Equal(t, 1, s.MarkRead(region, 1, 2))
		assert.Equal(t, 1, s.Unread(region))
	})

	t.Run("regions are isolated", func(t *testing.T) {
		s := New()
		s.Replace(region, []models.Notification{{ID: 1}})
		assert.Empty(t, s.List("Poblacion"))
		_, ok := s.Find("Poblacion", 1)
		assert.False(t, ok)
		s.Clear(region)
		assert.Empty(t, s.List(region))
	})

	t.Run("list returns a copy", func(t *testing.T) {
		s := New()
		s.Replace(region, []models.Notification{{ID: 1}})
		items := s.List(region)
		items[0].IsRead = true
		assert.Equal(t, 1, s.Unread(region))
	})
}
