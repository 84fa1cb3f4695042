package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"fhsis/internal/domain"
)

// MockLookupRepo is a mock implementation of port.LookupRepository.
type MockLookupRepo struct {
	mock.Mock
}

func (m *MockLookupRepo) ListAgeCategories(ctx context.Context) ([]domain.AgeCategory, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AgeCategory), args.Error(1)
}

func (m *MockLookupRepo) ListFPMethods(ctx context.Context) ([]domain.FamilyPlanningMethod, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FamilyPlanningMethod), args.Error(1)
}

func (m *MockLookupRepo) ListServices(ctx context.Context) ([]domain.Service, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Service), args.Error(1)
}

func (m *MockLookupRepo) ListIndicators(ctx context.Context) ([]domain.Indicator, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Indicator), args.Error(1)
}

func (m *MockLookupRepo) ListDiseases(ctx context.Context) ([]domain.Disease, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Disease), args.Error(1)
}
