package noop

import (
	"context"
	"log"

	"fhsis/internal/domain"
	"fhsis/internal/port"
)

type noopSender struct{}

// NewNoopSender creates a no-op NotificationSender that logs instead of
// delivering.
func NewNoopSender() port.NotificationSender {
	return &noopSender{}
}

func (s *noopSender) SendAppointmentConfirmation(_ context.Context, appt *domain.Appointment, categoryName string) error {
	log.Printf("[NOOP NOTIFY] Confirmation for %s (%s) %s at %s", appt.PatientName, appt.Phone, categoryName, appt.ScheduledAt)
	return nil
}

func (s *noopSender) SendAppointmentStatusChange(_ context.Context, appt *domain.Appointment, categoryName string) error {
	log.Printf("[NOOP NOTIFY] Status %s for %s (%s) %s", appt.Status, appt.PatientName, appt.Phone, categoryName)
	return nil
}
