package service

import (
	"context"
	"log/slog"
	"strings"

	"soloparent/internal/applicants/models"
	"soloparent/internal/audit"
	"soloparent/internal/backend"
	"soloparent/internal/records"
	"soloparent/pkg/domain"
	dErrors "soloparent/pkg/domain-errors"
)

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks

// Backend is the subset of the welfare backend the applicant queue uses.
type Backend interface {
	ListPendingApplicants(ctx context.Context) ([]backend.ApplicantDTO, error)
	ApproveApplicant(ctx context.Context, code domain.CodeID) error
	DeclineApplicant(ctx context.Context, req backend.DeclineApplicantRequest) error
}

type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

type Metrics interface {
	IncrementRecordAction(kind, action string)
}

// Service serves the pending applicant queue and its approve/decline actions.
// Every call re-fetches from the backend; nothing is cached between requests.
type Service struct {
	backend Backend
	audit   AuditPublisher
	metrics Metrics
	logger  *slog.Logger
}

type Option func(*Service)

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

func New(b Backend, opts ...Option) *Service {
	s := &Service{backend: b, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListPending returns the admin's page of pending applications. The region filter always
// comes from the session.
func (s *Service) ListPending(ctx context.Context, sess domain.Session, q records.Query) (*records.Page[models.Applicant], error) {
	all, err := s.fetch(ctx)
	if err != nil {
		return nil, err
	}
	q.Region = sess.Region.String()
	page := records.Project(all, q, models.Schema)
	return &page, nil
}

// Get returns one application in the admin's region, whatever its lifecycle.
func (s *Service) Get(ctx context.Context, sess domain.Session, code domain.CodeID) (*models.Applicant, error) {
	all, err := s.fetch(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].CodeID == code && sess.Region.Matches(all[i].Barangay) {
			return &all[i], nil
		}
	}
	return nil, dErrors.New(dErrors.CodeNotFound, "application not found")
}

func (s *Service) Approve(ctx context.Context, sess domain.Session, code domain.CodeID) (*models.Applicant, error) {
	applicant, err := s.Get(ctx, sess, code)
	if err != nil {
		return nil, err
	}
	next := *applicant
	if err := next.Approve(); err != nil {
		return nil, err
	}
	if err := s.backend.ApproveApplicant(ctx, code); err != nil {
		return nil, backend.ToDomain(err, "failed to approve application")
	}
	s.record(ctx, sess, audit.ActionApplicantApproved, code, "")
	return &next, nil
}

// Decline rejects a pending application. Remarks are checked before any backend call.
func (s *Service) Decline(ctx context.Context, sess domain.Session, code domain.CodeID, remarks string) (*models.Applicant, error) {
	remarks = strings.TrimSpace(remarks)
	if remarks == "" {
		return nil, dErrors.NewField("remarks", "remarks are required to decline an application")
	}
	applicant, err := s.Get(ctx, sess, code)
	if err != nil {
		return nil, err
	}
	next := *applicant
	if err := next.Decline(remarks); err != nil {
		return nil, err
	}
	err = s.backend.DeclineApplicant(ctx, backend.DeclineApplicantRequest{
		CodeID:    code.String(),
		Remarks:   remarks,
		Email:     applicant.Email,
		FirstName: applicant.FirstName,
		LastName:  applicant.LastName,
	})
	if err != nil {
		return nil, backend.ToDomain(err, "failed to decline application")
	}
	s.record(ctx, sess, audit.ActionApplicantDeclined, code, remarks)
	return &next, nil
}

func (s *Service) fetch(ctx context.Context) ([]models.Applicant, error) {
	dtos, err := s.backend.ListPendingApplicants(ctx)
	if err != nil {
		return nil, backend.ToDomain(err, "failed to load applications")
	}
	out := make([]models.Applicant, 0, len(dtos))
	for _, dto := range dtos {
		out = append(out, toApplicant(dto))
	}
	return out, nil
}

func (s *Service) record(ctx context.Context, sess domain.Session, action audit.Action, code domain.CodeID, reason string) {
	if s.metrics != nil {
		s.metrics.IncrementRecordAction("applicant", string(action))
	}
	if s.audit == nil {
		return
	}
	if err := s.audit.Emit(ctx, audit.Event{
		AdminID: sess.AdminID.String(),
		Region:  sess.Region.String(),
		Action:  action,
		Subject: code.String(),
		Reason:  reason,
	}); err != nil {
		s.logger.WarnContext(ctx, "failed to emit audit event", "error", err, "action", action)
	}
}
