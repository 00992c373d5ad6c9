package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"soloparent/internal/audit"
	"soloparent/internal/backend"
	"soloparent/internal/records"
	"soloparent/internal/soloparents/models"
	"soloparent/pkg/domain"
	dErrors "soloparent/pkg/domain-errors"
)

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks

type Backend interface {
	ListSoloParents(ctx context.Context, adminID domain.AdminID, status string) ([]backend.SoloParentDTO, error)
	SaveRemarks(ctx context.Context, req backend.SaveRemarksRequest) error
}

type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

type Metrics interface {
	IncrementRecordAction(kind, action string)
}

// Service lists registered solo parents and revokes them.
type Service struct {
	backend Backend
	audit   AuditPublisher
	metrics Metrics
	logger  *slog.Logger
	now     func() time.Time
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

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func New(b Backend, opts ...Option) *Service {
	s := &Service{backend: b, logger: slog.Default(), now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns one page of the admin's records with the given status (blank for all).
func (s *Service) List(ctx context.Context, sess domain.Session, status models.Status, q records.Query) (*records.Page[models.SoloParent], error) {
	all, err := s.ListAll(ctx, sess, status)
	if err != nil {
		return nil, err
	}
	q.Region = sess.Region.String()
	page := records.Project(all, q, models.Schema)
	return &page, nil
}

// ListAll returns every record the backend lists for the admin, unpaged and unfiltered
// by region.
func (s *Service) ListAll(ctx context.Context, sess domain.Session, status models.Status) ([]models.SoloParent, error) {
	dtos, err := s.backend.ListSoloParents(ctx, sess.AdminID, string(status))
	if err != nil {
		return nil, backend.ToDomain(err, "failed to load solo parents")
	}
	out := make([]models.SoloParent, 0, len(dtos))
	for _, dto := range dtos {
		out = append(out, toSoloParent(dto))
	}
	return out, nil
}

func (s *Service) Get(ctx context.Context, sess domain.Session, code domain.CodeID) (*models.SoloParent, error) {
	all, err := s.ListAll(ctx, sess, "")
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].CodeID == code && sess.Region.Matches(all[i].Barangay) {
			return &all[i], nil
		}
	}
	return nil, dErrors.New(dErrors.CodeNotFound, "solo parent not found")
}

// Revoke sends a verified beneficiary back for remarks. Remarks are checked before any
// backend call.
func (s *Service) Revoke(ctx context.Context, sess domain.Session, code domain.CodeID, remarks string) (*models.SoloParent, error) {
	remarks = strings.TrimSpace(remarks)
	if remarks == "" {
		return nil, dErrors.NewField("remarks", "remarks are required to revoke a solo parent")
	}
	current, err := s.Get(ctx, sess, code)
	if err != nil {
		return nil, err
	}
	next := *current
	if err := next.Revoke(remarks, s.now()); err != nil {
		return nil, err
	}
	err = s.backend.SaveRemarks(ctx, backend.SaveRemarksRequest{
		CodeID:  code.String(),
		Remarks: remarks,
		UserID:  int(current.UserID),
		AdminID: sess.AdminID.String(),
	})
	if err != nil {
		return nil, backend.ToDomain(err, "failed to revoke solo parent")
	}

	if s.metrics != nil {
		s.metrics.IncrementRecordAction("solo_parent", string(audit.ActionSoloParentRevoked))
	}
	if s.audit != nil {
		if err := s.audit.Emit(ctx, audit.Event{
			AdminID: sess.AdminID.String(),
			Region:  sess.Region.String(),
			Action:  audit.ActionSoloParentRevoked,
			Subject: code.String(),
			Reason:  remarks,
		}); err != nil {
			s.logger.WarnContext(ctx, "failed to emit audit event", "error", err, "action", audit.ActionSoloParentRevoked)
		}
	}
	return &next, nil
}

func toSoloParent(dto backend.SoloParentDTO) models.SoloParent {
	p := models.SoloParent{
		ID:               int64(dto.ID),
		UserID:           int64(dto.UserID),
		CodeID:           domain.CodeID(strings.TrimSpace(dto.CodeID)),
		FirstName:        dto.FirstName,
		MiddleName:       dto.MiddleName,
		LastName:         dto.LastName,
		Suffix:           dto.Suffix,
		Email:            dto.Email,
		Barangay:         dto.Barangay,
		Age:              int(dto.Age),
		Gender:           dto.Gender,
		DateOfBirth:      dto.DateOfBirth,
		EmploymentStatus: dto.EmploymentStatus,
		Classification:   dto.Classification,
		ChildrenCount:    int(dto.ChildrenCount),
		Status:           normalizeStatus(dto.Status),
		Remarks:          dto.Remarks,
		FamilyMembers:    backend.FamilyMembers(dto.FamilyMembers),
		Documents:        backend.Documents(dto.Documents),
	}
	if ts, ok := backend.ParseTimestamp(dto.CreatedAt); ok {
		p.CreatedAt = ts
	}
	if ts, ok := backend.ParseTimestamp(dto.RemarksAt); ok {
		p.RemarksAt = ts
	}
	return p
}

// normalizeStatus keeps unknown backend statuses verbatim rather than guessing.
func normalizeStatus(raw string) models.Status {
	if st, err := models.ParseStatus(raw); err == nil {
		return st
	}
	return models.Status(strings.TrimSpace(raw))
}
