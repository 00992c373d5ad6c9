// Package dashboard folds the admin's solo parent records into the chart and table
// aggregates shown on the dashboard and reused by report exports.
package dashboard

import (
	"context"
	"time"

	"soloparent/internal/soloparents/models"
	"soloparent/pkg/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks

type SoloParentLister interface {
	ListAll(ctx context.Context, sess domain.Session, status models.Status) ([]models.SoloParent, error)
}

type Service struct {
	soloParents SoloParentLister
	now         func() time.Time
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func New(soloParents SoloParentLister, opts ...Option) *Service {
	s := &Service{soloParents: soloParents, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Build fetches every status for the admin and folds them for the session's region.
func (s *Service) Build(ctx context.Context, sess domain.Session, r DateRange) (*Aggregate, error) {
	records, err := s.soloParents.ListAll(ctx, sess, "")
	if err != nil {
		return nil, err
	}
	agg := Fold(records, r, sess.Region)
	agg.GeneratedAt = s.now()
	return &agg, nil
}

// Now is the service clock, used to validate date filters.
func (s *Service) Now() time.Time {
	return s.now()
}
