package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"fhsis/internal/domain"
	"fhsis/internal/service"
)

// MockSubmissionService is a mock implementation of service.SubmissionService.
type MockSubmissionService struct {
	mock.Mock
}

func (m *MockSubmissionService) SubmitReport(ctx context.Context, payload *domain.SubmitReportPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

func (m *MockSubmissionService) OpenPeriod(ctx context.Context, barangayID int64, month, year int) (*service.OpenPeriodResult, error) {
	args := m.Called(ctx, barangayID, month, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.OpenPeriodResult), args.Error(1)
}

func (m *MockSubmissionService) CreateTemplate(ctx context.Context, input service.CreateTemplateInput) (*domain.ReportSubmissionTemplate, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReportSubmissionTemplate), args.Error(1)
}

func (m *MockSubmissionService) ListOverview(ctx context.Context, barangayID *int64, month, year int) ([]domain.SubmissionOverviewRow, error) {
	args := m.Called(ctx, barangayID, month, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SubmissionOverviewRow), args.Error(1)
}

func (m *MockSubmissionService) SetApproval(ctx context.Context, reportStatusID int64, approval domain.ApprovalStatus, reviewerID int64) error {
	args := m.Called(ctx, reportStatusID, approval, reviewerID)
	return args.Error(0)
}
