// Package service keeps the region inbox mirror in step with the backend. Acknowledgements
// are applied locally only after the backend accepted them.
package service

import (
	"context"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"soloparent/internal/audit"
	"soloparent/internal/backend"
	"soloparent/internal/notifications/models"
	"soloparent/internal/notifications/store"
	"soloparent/pkg/domain"
	dErrors "soloparent/pkg/domain-errors"
)

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks

type Backend interface {
	ListNotifications(ctx context.Context, region domain.Region) ([]backend.NotificationDTO, error)
	MarkNotificationRead(ctx context.Context, id int64) error
	ClearNotifications(ctx context.Context, region domain.Region) error
}

type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

type Metrics interface {
	IncrementNotificationAck(outcome string)
}

// maxConcurrentAcks bounds the mark-all fan-out.
const maxConcurrentAcks = 8

type Service struct {
	backend Backend
	inbox   *store.InMemoryInboxStore
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

func New(b Backend, inbox *store.InMemoryInboxStore, opts ...Option) *Service {
	s := &Service{backend: b, inbox: inbox, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Fetch replaces the region mirror with the backend's inbox. A response that arrives after
// ctx is done is dropped and the mirror is left as it was.
func (s *Service) Fetch(ctx context.Context, sess domain.Session) (*models.Inbox, error) {
	dtos, err := s.backend.ListNotifications(ctx, sess.Region)
	if err != nil {
		return nil, backend.ToDomain(err, "failed to load notifications")
	}
	if ctx.Err() != nil {
		return nil, dErrors.Wrap(ctx.Err(), dErrors.CodeTimeout, "notification request was cancelled")
	}

	items := make([]models.Notification, 0, len(dtos))
	for _, dto := range dtos {
		n := models.Notification{
			ID:      int64(dto.ID),
			UserID:  int64(dto.UserID),
			Type:    strings.TrimSpace(dto.NotifType),
			Message: dto.Message,
			IsRead:  bool(dto.IsRead),
		}
		if ts, ok := backend.ParseTimestamp(dto.CreatedAt); ok {
			n.CreatedAt = ts
			n.Date = models.DateOf(ts)
		}
		items = append(items, n)
	}
	s.inbox.Replace(sess.Region, items)
	return s.snapshot(sess.Region), nil
}

// MarkRead acknowledges one notification. Already-read entries are returned without a
// backend call.
func (s *Service) MarkRead(ctx context.Context, sess domain.Session, id int64) (*models.Notification, error) {
	n, err := s.lookup(ctx, sess, id)
	if err != nil {
		return nil, err
	}
	if n.IsRead {
		return &n, nil
	}

	err = s.backend.MarkNotificationRead(ctx, id)
	s.observeAck(err)
	if err != nil {
		return nil, backend.ToDomain(err, "failed to mark notification as read")
	}
	if ctx.Err() == nil {
		s.inbox.MarkRead(sess.Region, id)
	}
	n.IsRead = true
	return &n, nil
}

// MarkAllRead acknowledges every unread notification concurrently. Partial failures are
// reported rather than returned as an error.
func (s *Service) MarkAllRead(ctx context.Context, sess domain.Session) (*models.MarkAllResult, error) {
	if _, err := s.Fetch(ctx, sess); err != nil {
		return nil, err
	}
	var unread []int64
	for _, n := range s.inbox.List(sess.Region) {
		if !n.IsRead {
			unread = append(unread, n.ID)
		}
	}

	// each goroutine writes only its own slot
	results := make([]error, len(unread))
	var g errgroup.Group
	g.SetLimit(maxConcurrentAcks)
	for i, id := range unread {
		g.Go(func() error {
			results[i] = s.backend.MarkNotificationRead(ctx, id)
			s.observeAck(results[i])
			return nil
		})
	}
	_ = g.Wait()

	result := &models.MarkAllResult{Total: len(unread), FailedIDs: []int64{}}
	succeeded := make([]int64, 0, len(unread))
	for i, id := range unread {
		if results[i] != nil {
			result.FailedIDs = append(result.FailedIDs, id)
			s.logger.WarnContext(ctx, "failed to mark notification as read", "error", results[i], "notification_id", id)
			continue
		}
		succeeded = append(succeeded, id)
	}
	result.Succeeded = len(succeeded)
	if ctx.Err() == nil {
		s.inbox.MarkRead(sess.Region, succeeded...)
	}
	return result, nil
}

// ClearAll deletes the region's inbox. It refuses to run without explicit confirmation.
func (s *Service) ClearAll(ctx context.Context, sess domain.Session, confirmed bool) error {
	if !confirmed {
		return dErrors.NewField("confirm", "clearing all notifications must be confirmed")
	}
	if err := s.backend.ClearNotifications(ctx, sess.Region); err != nil {
		return backend.ToDomain(err, "failed to clear notifications")
	}
	s.inbox.Clear(sess.Region)

	if s.audit != nil {
		if err := s.audit.Emit(ctx, audit.Event{
			AdminID: sess.AdminID.String(),
			Region:  sess.Region.String(),
			Action:  audit.ActionNotificationsCleared,
			Subject: sess.Region.String(),
		}); err != nil {
			s.logger.WarnContext(ctx, "failed to emit audit event", "error", err, "action", audit.ActionNotificationsCleared)
		}
	}
	return nil
}

// Open marks the notification read and returns the page it points to.
func (s *Service) Open(ctx context.Context, sess domain.Session, id int64) (*models.OpenResult, error) {
	n, err := s.MarkRead(ctx, sess, id)
	if err != nil {
		return nil, err
	}
	return &models.OpenResult{Notification: *n, Route: models.Route(n.Type)}, nil
}

func (s *Service) lookup(ctx context.Context, sess domain.Session, id int64) (models.Notification, error) {
	if n, ok := s.inbox.Find(sess.Region, id); ok {
		return n, nil
	}
	if _, err := s.Fetch(ctx, sess); err != nil {
		return models.Notification{}, err
	}
	if n, ok := s.inbox.Find(sess.Region, id); ok {
		return n, nil
	}
	return models.Notification{}, dErrors.New(dErrors.CodeNotFound, "notification not found")
}

func (s *Service) snapshot(region domain.Region) *models.Inbox {
	return &models.Inbox{
		Notifications: s.inbox.List(region),
		Unread:        s.inbox.Unread(region),
	}
}

func (s *Service) observeAck(err error) {
	if s.metrics == nil {
		return
	}
	if err != nil {
		s.metrics.IncrementNotificationAck("failure")
		return
	}
	s.metrics.IncrementNotificationAck("success")
}
