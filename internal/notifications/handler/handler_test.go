package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"

	"soloparent/internal/notifications/models"
	"soloparent/pkg/domain"
	dErrors "soloparent/pkg/domain-errors"
	"soloparent/pkg/requestcontext"
	"soloparent/pkg/testutil"
)

type stubService struct {
	items     []models.Notification
	confirmed *bool
	ackErr    error
}

func (s *stubService) Fetch(context.Context, domain.Session) (*models.Inbox, error) {
	return &models.Inbox{Notifications: s.items, Unread: len(s.items)}, nil
}

func (s *stubService) MarkRead(_ context.Context, _ domain.Session, id int64) (*models.Notification, error) {
	if s.ackErr != nil {
		return nil, s.ackErr
	}
	for _, n := range s.items {
		if n.ID == id {
			n.IsRead = true
			return &n, nil
		}
	}
	return nil, dErrors.New(dErrors.CodeNotFound, "notification not found")
}

func (s *stubService) MarkAllRead(context.Context, domain.Session) (*models.MarkAllResult, error) {
	return &models.MarkAllResult{Total: 2, Succeeded: 1, FailedIDs: []int64{7}}, nil
}

func (s *stubService) ClearAll(_ context.Context, _ domain.Session, confirmed bool) error {
	s.confirmed = &confirmed
	if !confirmed {
		return dErrors.NewField("confirm", "clearing all notifications must be confirmed")
	}
	return nil
}

func (s *stubService) Open(ctx context.Context, sess domain.Session, id int64) (*models.OpenResult, error) {
	n, err := s.MarkRead(ctx, sess, id)
	if err != nil {
		return nil, err
	}
	return &models.OpenResult{Notification: *n, Route: models.Route(n.Type)}, nil
}

type HandlerSuite struct {
	suite.Suite
	svc    *stubService
	router http.Handler
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) SetupTest() {
	s.svc = &stubService{items: []models.Notification{
		{ID: 7, Type: "export", Message: "Report exported"},
	}}
	r := chi.NewRouter()
	New(s.svc, slog.New(slog.NewTextHandler(io.Discard, nil))).Register(r)
	s.router = r
}

func (s *HandlerSuite) do(method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	req = req.WithContext(requestcontext.WithSession(req.Context(), testutil.TestSession))
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *HandlerSuite) TestList() {
	rec := s.do(http.MethodGet, "/notifications")
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"unread_count":1`)
}

func (s *HandlerSuite) TestOpenReturnsRoute() {
	rec := s.do(http.MethodPost, "/notifications/7/open")
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"route":"/reports"`)
}

func (s *HandlerSuite) TestMarkReadRejectsBadID() {
	rec := s.do(http.MethodPost, "/notifications/abc/read")
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerSuite) TestMarkReadUpstreamFailure() {
	s.svc.ackErr = dErrors.New(dErrors.CodeUpstreamUnavailable, "failed to mark notification as read")
	rec := s.do(http.MethodPost, "/notifications/7/read")
	s.Equal(http.StatusBadGateway, rec.Code)
}

func (s *HandlerSuite) TestMarkAllReportsFailures() {
	rec := s.do(http.MethodPost, "/notifications/read-all")
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"failed_ids":[7]`)
}

func (s *HandlerSuite) TestClearRequiresConfirmation() {
	rec := s.do(http.MethodDelete, "/notifications")
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Require().NotNil(s.svc.confirmed)
	s.False(*s.svc.confirmed)

	rec = s.do(http.MethodDelete, "/notifications?confirm=true")
	s.Equal(http.StatusNoContent, rec.Code)
	s.True(*s.svc.confirmed)
}
