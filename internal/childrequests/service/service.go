package service

import (
	"context"
	"log/slog"
	"strings"

	"soloparent/internal/audit"
	"soloparent/internal/backend"
	"soloparent/internal/childrequests/models"
	"soloparent/internal/records"
	"soloparent/pkg/domain"
	dErrors "soloparent/pkg/domain-errors"
)

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks

type Backend interface {
	ListChildRequests(ctx context.Context, region domain.Region) ([]backend.ChildRequestDTO, error)
	ResolveChildRequest(ctx context.Context, id int64, action string) error
}

type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

type Metrics interface {
	IncrementRecordAction(kind, action string)
}

// Service lists child-addition requests for the admin's region and resolves them.
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

func (s *Service) List(ctx context.Context, sess domain.Session, q records.Query) (*records.Page[models.ChildRequest], error) {
	all, err := s.fetch(ctx, sess)
	if err != nil {
		return nil, err
	}
	q.Region = sess.Region.String()
	page := records.Project(all, q, models.Schema)
	return &page, nil
}

// Resolve approves or declines one pending request. A request that is no longer pending
// is rejected without calling the backend.
func (s *Service) Resolve(ctx context.Context, sess domain.Session, id int64, action models.Action) (*models.ChildRequest, error) {
	all, err := s.fetch(ctx, sess)
	if err != nil {
		return nil, err
	}
	var current *models.ChildRequest
	for i := range all {
		if all[i].ID == id && sess.Region.Matches(all[i].Barangay) {
			current = &all[i]
			break
		}
	}
	if current == nil {
		return nil, dErrors.New(dErrors.CodeNotFound, "child request not found")
	}
	next := *current
	if err := next.Resolve(action); err != nil {
		return nil, err
	}
	if err := s.backend.ResolveChildRequest(ctx, id, string(action)); err != nil {
		return nil, backend.ToDomain(err, "failed to "+string(action)+" child request")
	}

	auditAction := audit.ActionChildRequestApproved
	if action == models.ActionDecline {
		auditAction = audit.ActionChildRequestDeclined
	}
	if s.metrics != nil {
		s.metrics.IncrementRecordAction("child_request", string(auditAction))
	}
	if s.audit != nil {
		subject := current.CodeID.String()
		if subject == "" {
			subject = strings.TrimSpace(current.ChildName())
		}
		if err := s.audit.Emit(ctx, audit.Event{
			AdminID: sess.AdminID.String(),
			Region:  sess.Region.String(),
			Action:  auditAction,
			Subject: subject,
		}); err != nil {
			s.logger.WarnContext(ctx, "failed to emit audit event", "error", err, "action", auditAction)
		}
	}
	return &next, nil
}

func (s *Service) fetch(ctx context.Context, sess domain.Session) ([]models.ChildRequest, error) {
	dtos, err := s.backend.ListChildRequests(ctx, sess.Region)
	if err != nil {
		return nil, backend.ToDomain(err, "failed to load child requests")
	}
	out := make([]models.ChildRequest, 0, len(dtos))
	for _, dto := range dtos {
		c := models.ChildRequest{
			ID:              int64(dto.ID),
			UserID:          int64(dto.UserID),
			CodeID:          domain.CodeID(strings.TrimSpace(dto.CodeID)),
			ParentFirstName: dto.ParentFirstName,
			ParentLastName:  dto.ParentLastName,
			FirstName:       dto.FirstName,
			LastName:        dto.LastName,
			Birthdate:       dto.Birthdate,
			Age:             int(dto.Age),
			Education:       dto.Education,
			Barangay:        dto.Barangay,
			Status:          models.StatusFrom(dto.Status),
		}
		if ts, ok := backend.ParseTimestamp(dto.CreatedAt); ok {
			c.CreatedAt = ts
		}
		out = append(out, c)
	}
	return out, nil
}
