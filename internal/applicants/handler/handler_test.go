package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/suite"

	"soloparent/internal/applicants/models"
	"soloparent/internal/records"
	"soloparent/pkg/domain"
	dErrors "soloparent/pkg/domain-errors"
	"soloparent/pkg/requestcontext"
	"soloparent/pkg/testutil"
)

type stubService struct {
	lastQuery   records.Query
	lastRemarks string
	applicants  []models.Applicant
	err         error
}

func (s *stubService) ListPending(_ context.Context, _ domain.Session, q records.Query) (*records.Page[models.Applicant], error) {
	s.lastQuery = q
	if s.err != nil {
		return nil, s.err
	}
	page := records.Project(s.applicants, q, models.Schema)
	return &page, nil
}

func (s *stubService) Get(_ context.Context, _ domain.Session, code domain.CodeID) (*models.Applicant, error) {
	for i := range s.applicants {
		if s.applicants[i].CodeID == code {
			return &s.applicants[i], nil
		}
	}
	return nil, dErrors.New(dErrors.CodeNotFound, "application not found")
}

func (s *stubService) Approve(ctx context.Context, sess domain.Session, code domain.CodeID) (*models.Applicant, error) {
	a, err := s.Get(ctx, sess, code)
	if err != nil {
		return nil, err
	}
	return a, a.Approve()
}

func (s *stubService) Decline(ctx context.Context, sess domain.Session, code domain.CodeID, remarks string) (*models.Applicant, error) {
	s.lastRemarks = remarks
	a, err := s.Get(ctx, sess, code)
	if err != nil {
		return nil, err
	}
	return a, a.Decline(remarks)
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
	s.svc = &stubService{applicants: []models.Applicant{
		{ID: 1, CodeID: "SP-1", FirstName: "Ana", Barangay: "San Isidro", Lifecycle: models.LifecyclePending},
		{ID: 2, CodeID: "SP-2", FirstName: "Ben", Barangay: "San Isidro", Lifecycle: models.LifecyclePending},
	}}
	r := chi.NewRouter()
	New(s.svc, slog.New(slog.NewTextHandler(io.Discard, nil))).Register(r)
	s.router = r
}

func (s *HandlerSuite) do(method, target, body string, withSession bool) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if withSession {
		req = req.WithContext(requestcontext.WithSession(req.Context(), testutil.TestSession))
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *HandlerSuite) TestList() {
	rec := s.do(http.MethodGet, "/applicants?sort=name&dir=desc&page_size=5", "", true)
	s.Require().Equal(http.StatusOK, rec.Code)

	var body ApplicantPageResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal(2, body.Total)
	s.Equal("SP-2", body.Items[0].CodeID)
	s.Equal(5, s.svc.lastQuery.PageSize)
}

func (s *HandlerSuite) TestListRejectsUnknownSort() {
	rec := s.do(http.MethodGet, "/applicants?sort=password", "", true)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), `"field":"sort"`)
}

func (s *HandlerSuite) TestRequiresSession() {
	rec := s.do(http.MethodGet, "/applicants", "", false)
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *HandlerSuite) TestGetNotFound() {
	rec := s.do(http.MethodGet, "/applicants/SP-404", "", true)
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *HandlerSuite) TestApprove() {
	rec := s.do(http.MethodPost, "/applicants/SP-1/approve", "", true)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"lifecycle":"Approved"`)
}

func (s *HandlerSuite) TestDecline() {
	s.Run("blank remarks are rejected before the service", func() {
		s.svc.lastRemarks = "untouched"
		rec := s.do(http.MethodPost, "/applicants/SP-2/decline", `{"remarks":"   "}`, true)
		s.Equal(http.StatusBadRequest, rec.Code)
		s.Contains(rec.Body.String(), `"field":"remarks"`)
		s.Equal("untouched", s.svc.lastRemarks)
	})

	s.Run("remarks are trimmed", func() {
		rec := s.do(http.MethodPost, "/applicants/SP-2/decline", `{"remarks":"  no ID  "}`, true)
		s.Require().Equal(http.StatusOK, rec.Code)
		s.Equal("no ID", s.svc.lastRemarks)
	})

	s.Run("malformed body", func() {
		rec := s.do(http.MethodPost, "/applicants/SP-2/decline", `{`, true)
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}
