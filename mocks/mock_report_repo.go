package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"fhsis/internal/domain"
)

// MockReportRepo is a mock implementation of port.ReportRepository.
type MockReportRepo struct {
	mock.Mock
}

func (m *MockReportRepo) FamilyPlanningRows(ctx context.Context, f domain.ReportPeriodFilter) ([]domain.FPJoinedRow, int, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.FPJoinedRow), args.Int(1), args.Error(2)
}

func (m *MockReportRepo) WRARows(ctx context.Context, f domain.ReportPeriodFilter) ([]domain.WRAJoinedRow, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WRAJoinedRow), args.Error(1)
}

func (m *MockReportRepo) ServiceDataRows(ctx context.Context, f domain.ReportPeriodFilter) ([]domain.ServiceJoinedRow, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ServiceJoinedRow), args.Error(1)
}

func (m *MockReportRepo) MorbidityRows(ctx context.Context, f domain.ReportPeriodFilter) ([]domain.MorbidityJoinedRow, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MorbidityJoinedRow), args.Error(1)
}

func (m *MockReportRepo) FPFlatRows(ctx context.Context, f domain.FlatRowFilter) ([]domain.FPFlatRow, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FPFlatRow), args.Error(1)
}

func (m *MockReportRepo) WRAFlatRows(ctx context.Context, f domain.FlatRowFilter) ([]domain.WRAFlatRow, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WRAFlatRow), args.Error(1)
}
