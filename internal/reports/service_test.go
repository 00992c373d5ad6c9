package reports_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"soloparent/internal/audit"
	"soloparent/internal/dashboard"
	"soloparent/internal/exportquota"
	"soloparent/internal/reports"
	"soloparent/internal/reports/mocks"
	dErrors "soloparent/pkg/domain-errors"
	"soloparent/pkg/requestcontext"
	"soloparent/pkg/testutil"
)

type ServiceSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	quota      *mocks.MockQuota
	aggregator *mocks.MockAggregator
	renderer   *mocks.MockRenderer
	audit      *mocks.MockAuditPublisher
	metrics    *mocks.MockMetrics
	service    *reports.Service
	ctx        context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.quota = mocks.NewMockQuota(s.ctrl)
	s.aggregator = mocks.NewMockAggregator(s.ctrl)
	s.renderer = mocks.NewMockRenderer(s.ctrl)
	s.audit = mocks.NewMockAuditPublisher(s.ctrl)
	s.metrics = mocks.NewMockMetrics(s.ctrl)
	s.service = reports.New(s.quota, s.aggregator,
		reports.Letterhead{Organization: "Municipality", Department: "Social Welfare", Title: "Solo Parent Report"},
		reports.WithRenderer(exportquota.FormatPDF, s.renderer),
		reports.WithAuditPublisher(s.audit),
		reports.WithMetrics(s.metrics),
		reports.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		reports.WithClock(func() time.Time { return time.Date(2025, 4, 2, 9, 0, 0, 0, time.UTC) }),
	)
	s.ctx = context.Background()
}

func (s *ServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func pdfRequest() reports.Request {
	return reports.Request{Section: "gender", Format: "pdf", StartDate: "2025-01-01", EndDate: "2025-03-31"}
}

func (s *ServiceSuite) TestGenerate() {
	s.Run("Given invalid dates When generating Then no network call is made", func() {
		req := pdfRequest()
		req.EndDate = "2024-12-31"

		_, err := s.service.Generate(s.ctx, testutil.TestSession, req)
		s.Equal("end_date", dErrors.FieldOf(err))
	})

	s.Run("Given quota reached When generating Then no file is produced", func() {
		s.quota.EXPECT().Allow(gomock.Any(), testutil.TestSession, exportquota.FormatPDF).
			Return(dErrors.New(dErrors.CodeQuotaExceeded, "daily pdf export limit of 5 reached"))
		s.metrics.EXPECT().IncrementReport("pdf", "quota_exceeded")

		report, err := s.service.Generate(s.ctx, testutil.TestSession, pdfRequest())
		s.Nil(report)
		s.True(dErrors.HasCode(err, dErrors.CodeQuotaExceeded))
	})

	s.Run("Given render failure When generating Then generic error and no increment", func() {
		s.quota.EXPECT().Allow(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.aggregator.EXPECT().Build(gomock.Any(), gomock.Any(), gomock.Any()).Return(&dashboard.Aggregate{}, nil)
		s.renderer.EXPECT().Render(gomock.Any()).Return(nil, errors.New("font missing"))
		s.metrics.EXPECT().IncrementReport("pdf", "failure")

		_, err := s.service.Generate(s.ctx, testutil.TestSession, pdfRequest())
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeInternal))
		s.Equal("failed to generate report, please try again", err.Error())
	})

	s.Run("Given increment failure When generating Then the file is still returned", func() {
		s.quota.EXPECT().Allow(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.aggregator.EXPECT().Build(gomock.Any(), testutil.TestSession, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, r dashboard.DateRange) (*dashboard.Aggregate, error) {
				s.Equal("2025-01-01", r.StartLabel())
				s.Equal("2025-03-31", r.EndLabel())
				return &dashboard.Aggregate{Gender: []dashboard.Bucket{{Label: "Female", Count: 1}}}, nil
			})
		s.renderer.EXPECT().Render(gomock.Any()).
			DoAndReturn(func(doc reports.Document) ([]byte, error) {
				s.Require().Len(doc.Tables, 1)
				s.Equal("San Isidro", doc.Meta.Region)
				return []byte("%PDF-1.3"), nil
			})
		s.renderer.EXPECT().ContentType().Return("application/pdf")
		s.quota.EXPECT().Increment(gomock.Any(), gomock.Any(), exportquota.FormatPDF).
			Return(nil, dErrors.New(dErrors.CodeUpstreamUnavailable, "failed to record export"))
		s.audit.EXPECT().Emit(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e audit.Event) error {
				s.Equal(audit.ActionReportExported, e.Action)
				return nil
			})
		s.metrics.EXPECT().IncrementReport("pdf", "success")

		report, err := s.service.Generate(s.ctx, testutil.TestSession, pdfRequest())
		s.Require().NoError(err)
		s.Equal("SoloParent_Gender_Report_San_Isidro_2025-01-01_to_2025-03-31_2025-04-02.pdf", report.Filename)
		s.Nil(report.Quota)
	})
}

func (s *ServiceSuite) TestHandlerStreamsFile() {
	s.quota.EXPECT().Allow(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	s.aggregator.EXPECT().Build(gomock.Any(), gomock.Any(), gomock.Any()).Return(&dashboard.Aggregate{}, nil)
	s.renderer.EXPECT().Render(gomock.Any()).Return([]byte("%PDF-1.3 body"), nil)
	s.renderer.EXPECT().ContentType().Return("application/pdf")
	s.quota.EXPECT().Increment(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&exportquota.Quota{PDFCount: 2, CanExportPDF: true}, nil)
	s.audit.EXPECT().Emit(gomock.Any(), gomock.Any()).Return(nil)
	s.metrics.EXPECT().IncrementReport("pdf", "success")

	r := chi.NewRouter()
	reports.NewHandler(s.service, slog.New(slog.NewTextHandler(io.Discard, nil))).Register(r)
	req := httptest.NewRequest(http.MethodPost, "/reports",
		strings.NewReader(`{"section":"gender","format":"pdf","start_date":"2025-01-01","end_date":"2025-03-31"}`))
	req = req.WithContext(requestcontext.WithSession(req.Context(), testutil.TestSession))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	s.Require().Equal(http.StatusOK, rec.Code)
	s.Equal("application/pdf", rec.Header().Get("Content-Type"))
	s.Contains(rec.Header().Get("Content-Disposition"), "SoloParent_Gender_Report_San_Isidro")
	s.Equal("3", rec.Header().Get("X-Export-Remaining-Pdf"))
	s.Equal("%PDF-1.3 body", rec.Body.String())
}

func (s *ServiceSuite) TestHandlerEncodesNonASCIIFilename() {
	s.quota.EXPECT().Allow(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	s.aggregator.EXPECT().Build(gomock.Any(), gomock.Any(), gomock.Any()).Return(&dashboard.Aggregate{}, nil)
	s.renderer.EXPECT().Render(gomock.Any()).Return([]byte("%PDF-1.3 body"), nil)
	s.renderer.EXPECT().ContentType().Return("application/pdf")
	s.quota.EXPECT().Increment(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&exportquota.Quota{PDFCount: 1, CanExportPDF: true}, nil)
	s.audit.EXPECT().Emit(gomock.Any(), gomock.Any()).Return(nil)
	s.metrics.EXPECT().IncrementReport("pdf", "success")

	sess := testutil.TestSession
	sess.Region = "Sto. Niño"

	r := chi.NewRouter()
	reports.NewHandler(s.service, slog.New(slog.NewTextHandler(io.Discard, nil))).Register(r)
	req := httptest.NewRequest(http.MethodPost, "/reports",
		strings.NewReader(`{"section":"gender","format":"pdf","start_date":"2025-01-01","end_date":"2025-03-31"}`))
	req = req.WithContext(requestcontext.WithSession(req.Context(), sess))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	s.Require().Equal(http.StatusOK, rec.Code)
	header := rec.Header().Get("Content-Disposition")
	s.NotContains(header, "ñ", "header values stay ASCII")

	disposition, params, err := mime.ParseMediaType(header)
	s.Require().NoError(err)
	s.Equal("attachment", disposition)
	s.Equal("SoloParent_Gender_Report_Sto_Niño_2025-01-01_to_2025-03-31_2025-04-02.pdf", params["filename"])
}

func (s *ServiceSuite) TestHandlerRejectsMissingFormat() {
	r := chi.NewRouter()
	reports.NewHandler(s.service, slog.New(slog.NewTextHandler(io.Discard, nil))).Register(r)
	req := httptest.NewRequest(http.MethodPost, "/reports", strings.NewReader(`{"section":"gender"}`))
	req = req.WithContext(requestcontext.WithSession(req.Context(), testutil.TestSession))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	s.Equal(http.StatusBadRequest, rec.Code)
}
