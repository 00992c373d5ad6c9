package service

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"soloparent/internal/audit"
	"soloparent/internal/backend"
	"soloparent/internal/records"
	"soloparent/internal/soloparents/models"
	"soloparent/internal/soloparents/service/mocks"
	"soloparent/pkg/domain"
	dErrors "soloparent/pkg/domain-errors"
	"soloparent/pkg/testutil"
)

type ServiceSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockBackend *mocks.MockBackend
	mockAudit   *mocks.MockAuditPublisher
	mockMetrics *mocks.MockMetrics
	service     *Service
	now         time.Time
	ctx         context.Context
}

func (s *ServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockBackend = mocks.NewMockBackend(s.ctrl)
	s.mockAudit = mocks.NewMockAuditPublisher(s.ctrl)
	s.mockMetrics = mocks.NewMockMetrics(s.ctrl)
	s.now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s.service = New(s.mockBackend,
		WithAuditPublisher(s.mockAudit),
		WithMetrics(s.mockMetrics),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithClock(func() time.Time { return s.now }),
	)
	s.ctx = context.Background()
}

func (s *ServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) TestList() {
	s.Run("Given a status filter When listing Then the backend is asked for that status", func() {
		mine := testutil.NewSoloParentBuilder().Build()
		other := testutil.NewSoloParentBuilder().WithRegion("Poblacion").Build()
		s.mockBackend.EXPECT().
			ListSoloParents(gomock.Any(), testutil.TestSession.AdminID, "Verified").
			Return([]backend.SoloParentDTO{mine, other}, nil)

		page, err := s.service.List(s.ctx, testutil.TestSession, models.StatusVerified, records.DefaultQuery())
		s.Require().NoError(err)
		s.Require().Len(page.Items, 1)
		s.Equal(domain.CodeID(mine.CodeID), page.Items[0].CodeID)
		s.Equal(2, page.Items[0].ChildrenCount)
	})
}

func (s *ServiceSuite) TestRevoke() {
	s.Run("Given verified record When revoking Then remarks are saved with user and admin", func() {
		dto := testutil.NewSoloParentBuilder().Build()
		s.mockBackend.EXPECT().ListSoloParents(gomock.Any(), gomock.Any(), "").Return([]backend.SoloParentDTO{dto}, nil)
		s.mockBackend.EXPECT().SaveRemarks(gomock.Any(), backend.SaveRemarksRequest{
			CodeID:  dto.CodeID,
			Remarks: "no longer eligible",
			UserID:  int(dto.UserID),
			AdminID: testutil.TestSession.AdminID.String(),
		}).Return(nil)
		s.mockMetrics.EXPECT().IncrementRecordAction("solo_parent", string(audit.ActionSoloParentRevoked))
		s.mockAudit.EXPECT().Emit(gomock.Any(), gomock.Any()).Return(nil)

		p, err := s.service.Revoke(s.ctx, testutil.TestSession, domain.CodeID(dto.CodeID), "no longer eligible")
		s.Require().NoError(err)
		s.Equal(models.StatusPendingRemarks, p.Status)
		s.Equal(s.now, p.RemarksAt)
	})

	s.Run("Given blank remarks When revoking Then validation error without backend call", func() {
		_, err := s.service.Revoke(s.ctx, testutil.TestSession, "SP-1", "")
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("Given already revoked record When revoking Then conflict", func() {
		dto := testutil.NewSoloParentBuilder().Revoked("earlier", s.now).Build()
		s.mockBackend.EXPECT().ListSoloParents(gomock.Any(), gomock.Any(), "").Return([]backend.SoloParentDTO{dto}, nil)

		_, err := s.service.Revoke(s.ctx, testutil.TestSession, domain.CodeID(dto.CodeID), "again")
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeConflict))
	})

	s.Run("Given backend failure When revoking Then error and no audit", func() {
		dto := testutil.NewSoloParentBuilder().Build()
		s.mockBackend.EXPECT().ListSoloParents(gomock.Any(), gomock.Any(), "").Return([]backend.SoloParentDTO{dto}, nil)
		s.mockBackend.EXPECT().SaveRemarks(gomock.Any(), gomock.Any()).
			Return(&backend.Error{Category: backend.ErrorTimeout})

		_, err := s.service.Revoke(s.ctx, testutil.TestSession, domain.CodeID(dto.CodeID), "reason")
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeTimeout))
	})
}
