package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"fhsis/internal/domain"
)

// MockReportService is a mock implementation of service.ReportService.
type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) FamilyPlanning(ctx context.Context, f domain.ReportPeriodFilter) (*domain.FamilyPlanningReport, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FamilyPlanningReport), args.Error(1)
}

func (m *MockReportService) WRA(ctx context.Context, f domain.ReportPeriodFilter) (*domain.WRAReport, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WRAReport), args.Error(1)
}

func (m *MockReportService) ServiceData(ctx context.Context, f domain.ReportPeriodFilter) ([]domain.ServiceIndicatorReport, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ServiceIndicatorReport), args.Error(1)
}

func (m *MockReportService) Morbidity(ctx context.Context, f domain.ReportPeriodFilter) ([]domain.DiseaseReport, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DiseaseReport), args.Error(1)
}

func (m *MockReportService) FamilyPlanningFlat(ctx context.Context, f domain.FlatRowFilter) ([]domain.FPFlatRow, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FPFlatRow), args.Error(1)
}

func (m *MockReportService) WRAFlat(ctx context.Context, f domain.FlatRowFilter) ([]domain.WRAFlatRow, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WRAFlatRow), args.Error(1)
}
