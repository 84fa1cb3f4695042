package port

import (
	"context"

	"fhsis/internal/domain"
)

// NotificationSender delivers appointment notifications to citizens.
type NotificationSender interface {
	SendAppointmentConfirmation(ctx context.Context, appt *domain.Appointment, categoryName string) error
	SendAppointmentStatusChange(ctx context.Context, appt *domain.Appointment, categoryName string) error
}
