package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"fhsis/internal/domain"
	"fhsis/internal/port"
)

// MockSubmissionRepo is a mock implementation of port.SubmissionRepository.
type MockSubmissionRepo struct {
	mock.Mock
}

func (m *MockSubmissionRepo) CreateTemplate(ctx context.Context, tpl *domain.ReportSubmissionTemplate) error {
	args := m.Called(ctx, tpl)
	return args.Error(0)
}

func (m *MockSubmissionRepo) OpenSubmission(ctx context.Context, barangayID int64, month, year int, form domain.FormType) (*domain.ReportStatus, *domain.ReportSubmission, error) {
	args := m.Called(ctx, barangayID, month, year, form)
	var status *domain.ReportStatus
	var sub *domain.ReportSubmission
	if args.Get(0) != nil {
		status = args.Get(0).(*domain.ReportStatus)
	}
	if args.Get(1) != nil {
		sub = args.Get(1).(*domain.ReportSubmission)
	}
	return status, sub, args.Error(2)
}

func (m *MockSubmissionRepo) FinalizeReport(ctx context.Context, input port.FinalizeReportInput) error {
	args := m.Called(ctx, input)
	return args.Error(0)
}

func (m *MockSubmissionRepo) ListOverview(ctx context.Context, barangayID *int64, month, year int) ([]domain.SubmissionOverviewRow, error) {
	args := m.Called(ctx, barangayID, month, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SubmissionOverviewRow), args.Error(1)
}

func (m *MockSubmissionRepo) SetApproval(ctx context.Context, reportStatusID int64, approval domain.ApprovalStatus, reviewerID int64) error {
	args := m.Called(ctx, reportStatusID, approval, reviewerID)
	return args.Error(0)
}
