// Package exportquota mirrors the backend's daily export counters and enforces the
// per-format cap before a report is rendered.
//
// Usage:
//
//	svc := exportquota.New(client, exportquota.NewStore())
//	if err := svc.Allow(ctx, sess, exportquota.FormatPDF); err != nil {
//	    // CodeQuotaExceeded: no file is produced
//	}
//	svc.Increment(ctx, sess, exportquota.FormatPDF) // after the file was produced
package exportquota

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"soloparent/internal/backend"
	"soloparent/pkg/domain"
	dErrors "soloparent/pkg/domain-errors"
)

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks

type Backend interface {
	GetExportLimit(ctx context.Context, adminID domain.AdminID) (*backend.ExportLimitDTO, error)
	IncrementExportLimit(ctx context.Context, adminID domain.AdminID, format string) (*backend.ExportLimitDTO, error)
}

type Service struct {
	backend Backend
	store   *InMemoryQuotaStore
	logger  *slog.Logger
	now     func() time.Time
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func New(b Backend, store *InMemoryQuotaStore, opts ...Option) *Service {
	s := &Service{backend: b, store: store, logger: slog.Default(), now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Check fetches the admin's counters from the backend and refreshes the mirror.
func (s *Service) Check(ctx context.Context, sess domain.Session) (*Quota, error) {
	dto, err := s.backend.GetExportLimit(ctx, sess.AdminID)
	if err != nil {
		return nil, backend.ToDomain(err, "failed to load export quota")
	}
	q := s.fromDTO(sess.AdminID, dto)
	s.store.Put(q)
	return &q, nil
}

// Allow fails with CodeQuotaExceeded when another export of f would pass the cap. A fresh
// mirror at the cap rejects without a backend call; otherwise the backend is consulted.
func (s *Service) Allow(ctx context.Context, sess domain.Session, f Format) error {
	if q, ok := s.store.Get(sess.AdminID); ok && !q.StaleAt(s.now()) && !q.Allows(f) {
		return exceeded(f)
	}
	q, err := s.Check(ctx, sess)
	if err != nil {
		return err
	}
	if !q.Allows(f) {
		return exceeded(f)
	}
	return nil
}

// Increment records one export of f. On failure the mirror is dropped so the next
// read goes back to the backend.
func (s *Service) Increment(ctx context.Context, sess domain.Session, f Format) (*Quota, error) {
	dto, err := s.backend.IncrementExportLimit(ctx, sess.AdminID, string(f))
	if err != nil {
		s.store.Invalidate(sess.AdminID)
		return nil, backend.ToDomain(err, "failed to record export")
	}
	q := s.fromDTO(sess.AdminID, dto)
	s.store.Put(q)
	return &q, nil
}

func (s *Service) fromDTO(adminID domain.AdminID, dto *backend.ExportLimitDTO) Quota {
	return Quota{
		AdminID:        adminID,
		ExcelCount:     dto.ExcelCount,
		PDFCount:       dto.PDFCount,
		CanExportExcel: dto.CanExportExcel,
		CanExportPDF:   dto.CanExportPDF,
		FetchedAt:      s.now(),
	}
}

func exceeded(f Format) error {
	return dErrors.New(dErrors.CodeQuotaExceeded,
		"daily "+string(f)+" export limit of "+strconv.Itoa(DailyCap)+" reached, try again tomorrow")
}
