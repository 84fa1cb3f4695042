package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"fhsis/internal/domain"
)

// MockNotificationSender is a mock implementation of port.NotificationSender.
type MockNotificationSender struct {
	mock.Mock
}

func (m *MockNotificationSender) SendAppointmentConfirmation(ctx context.Context, appt *domain.Appointment, categoryName string) error {
	args := m.Called(ctx, appt, categoryName)
	return args.Error(0)
}

func (m *MockNotificationSender) SendAppointmentStatusChange(ctx context.Context, appt *domain.Appointment, categoryName string) error {
	args := m.Called(ctx, appt, categoryName)
	return args.Error(0)
}
