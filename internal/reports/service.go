// Package reports turns the dashboard aggregate into downloadable Excel and PDF
// reports, enforcing the admin's daily export quota.
package reports

import (
	"context"
	"log/slog"
	"time"

	"soloparent/internal/audit"
	"soloparent/internal/dashboard"
	"soloparent/internal/exportquota"
	"soloparent/pkg/domain"
	dErrors "soloparent/pkg/domain-errors"
	s "soloparent/pkg/string"
)

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks

type Quota interface {
	Allow(ctx context.Context, sess domain.Session, f exportquota.Format) error
	Increment(ctx context.Context, sess domain.Session, f exportquota.Format) (*exportquota.Quota, error)
}

type Aggregator interface {
	Build(ctx context.Context, sess domain.Session, r dashboard.DateRange) (*dashboard.Aggregate, error)
}

type Renderer interface {
	Render(doc Document) ([]byte, error)
	ContentType() string
}

type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

type Metrics interface {
	IncrementReport(format, outcome string)
}

// Report is a rendered file ready to be streamed to the admin.
type Report struct {
	Filename    string
	ContentType string
	Body        []byte
	// Quota is the refreshed counter, nil when recording the export failed.
	Quota *exportquota.Quota
}

type Request struct {
	Section   string `json:"section" validate:"required"`
	Format    string `json:"format" validate:"required"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (r *Request) Normalize() {
	s.TrimStrings(&r.Section, &r.Format, &r.StartDate, &r.EndDate)
}

type Service struct {
	quota      Quota
	aggregator Aggregator
	renderers  map[exportquota.Format]Renderer
	letterhead Letterhead
	audit      AuditPublisher
	metrics    Metrics
	logger     *slog.Logger
	now        func() time.Time
}

type Option func(*Service)

func WithRenderer(f exportquota.Format, r Renderer) Option {
	return func(s *Service) {
		s.renderers[f] = r
	}
}

func WithAuditPublisher(p AuditPublisher) Option {
	return func(s *Service) {
		s.audit = p
	}
}

func WithMetrics(m Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

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

func New(quota Quota, aggregator Aggregator, head Letterhead, opts ...Option) *Service {
	s := &Service{
		quota:      quota,
		aggregator: aggregator,
		renderers: map[exportquota.Format]Renderer{
			exportquota.FormatExcel: ExcelRenderer{},
			exportquota.FormatPDF:   PDFRenderer{},
		},
		letterhead: head,
		logger:     slog.Default(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate validates the request, checks the quota, folds fresh data and renders the
// report. Recording the export afterwards is best effort: the file is returned even when
// the quota increment fails.
func (s *Service) Generate(ctx context.Context, sess domain.Session, req Request) (*Report, error) {
	section, err := ParseSection(req.Section)
	if err != nil {
		return nil, err
	}
	format, err := exportquota.ParseFormat(req.Format)
	if err != nil {
		return nil, err
	}
	now := s.now()
	dates, err := ValidateDates(req.StartDate, req.EndDate, now)
	if err != nil {
		return nil, err
	}
	renderer, ok := s.renderers[format]
	if !ok {
		return nil, dErrors.NewField("format", "format "+string(format)+" is not supported")
	}

	if err := s.quota.Allow(ctx, sess, format); err != nil {
		if dErrors.HasCode(err, dErrors.CodeQuotaExceeded) {
			s.observe(format, "quota_exceeded")
		}
		return nil, err
	}

	agg, err := s.aggregator.Build(ctx, sess, dates)
	if err != nil {
		s.observe(format, "failure")
		return nil, err
	}
	meta := Meta{Region: sess.Region.String(), Range: dates, GeneratedAt: now, GeneratedBy: sess.AdminID.String()}
	doc, err := Build(section, *agg, s.letterhead, meta)
	if err != nil {
		return nil, err
	}
	body, err := renderer.Render(doc)
	if err != nil {
		s.observe(format, "failure")
		s.logger.ErrorContext(ctx, "report rendering failed", "error", err, "section", section, "format", format)
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to generate report, please try again")
	}

	report := &Report{
		Filename:    Filename(section, format, sess.Region.String(), dates, now),
		ContentType: renderer.ContentType(),
		Body:        body,
	}

	q, err := s.quota.Increment(ctx, sess, format)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to record export, quota display is stale",
			"error", err, "admin_id", sess.AdminID, "format", format)
	}
	report.Quota = q

	if s.audit != nil {
		if err := s.audit.Emit(ctx, audit.Event{
			AdminID: sess.AdminID.String(),
			Region:  sess.Region.String(),
			Action:  audit.ActionReportExported,
			Subject: report.Filename,
		}); err != nil {
			s.logger.WarnContext(ctx, "failed to emit audit event", "error", err, "action", audit.ActionReportExported)
		}
	}
	s.observe(format, "success")
	return report, nil
}

func (s *Service) observe(f exportquota.Format, outcome string) {
	if s.metrics != nil {
		s.metrics.IncrementReport(string(f), outcome)
	}
}
