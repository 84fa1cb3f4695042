package service

import (
	"context"
	"log"
	"time"

	"fhsis/internal/domain"
	"fhsis/internal/port"
)

// BookAppointmentInput is the DTO for citizen bookings. The category is
// supplied by name and resolved against the reference table; an unknown
// name rejects the booking.
type BookAppointmentInput struct {
	CategoryName string    `json:"category_name" binding:"required"`
	BarangayID   *int64    `json:"barangay_id"`
	PatientName  string    `json:"patient_name" binding:"required"`
	Phone        string    `json:"phone" binding:"required"`
	Email        string    `json:"email"`
	ScheduledAt  time.Time `json:"scheduled_at" binding:"required"`
}

// AppointmentService manages citizen appointment bookings.
type AppointmentService interface {
	Book(ctx context.Context, input BookAppointmentInput) (*domain.Appointment, error)
	List(ctx context.Context, offset, limit int) ([]domain.Appointment, int, error)
	UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) (*domain.Appointment, error)
	ListCategories(ctx context.Context) ([]domain.AppointmentCategory, error)
}

type appointmentService struct {
	apptRepo port.AppointmentRepository
	notifier port.NotificationSender
}

// NewAppointmentService creates a new AppointmentService implementation.
func NewAppointmentService(apptRepo port.AppointmentRepository, notifier port.NotificationSender) AppointmentService {
	return &appointmentService{apptRepo: apptRepo, notifier: notifier}
}

func (s *appointmentService) Book(ctx context.Context, input BookAppointmentInput) (*domain.Appointment, error) {
	cat, err := s.apptRepo.GetCategoryByName(ctx, input.CategoryName)
	if err != nil {
		return nil, err
	}

	appt := &domain.Appointment{
		CategoryID:  cat.ID,
		BarangayID:  input.BarangayID,
		PatientName: input.PatientName,
		Phone:       input.Phone,
		Email:       input.Email,
		ScheduledAt: input.ScheduledAt,
		Status:      domain.AppointmentPending,
	}
	if err := s.apptRepo.Create(ctx, appt); err != nil {
		return nil, err
	}

	// Notification failure never unwinds a stored booking.
	if err := s.notifier.SendAppointmentConfirmation(ctx, appt, cat.Name); err != nil {
		log.Printf("appointment confirmation notification failed for %d: %v", appt.ID, err)
	}

	return appt, nil
}

func (s *appointmentService) List(ctx context.Context, offset, limit int) ([]domain.Appointment, int, error) {
	return s.apptRepo.List(ctx, offset, limit)
}

func (s *appointmentService) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) (*domain.Appointment, error) {
	if err := s.apptRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	appt, err := s.apptRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	categoryName := ""
	if cats, err := s.apptRepo.ListCategories(ctx); err == nil {
		for _, c := range cats {
			if c.ID == appt.CategoryID {
				categoryName = c.Name
				break
			}
		}
	}
	if err := s.notifier.SendAppointmentStatusChange(ctx, appt, categoryName); err != nil {
		log.Printf("appointment status notification failed for %d: %v", appt.ID, err)
	}

	return appt, nil
}

func (s *appointmentService) ListCategories(ctx context.Context) ([]domain.AppointmentCategory, error) {
	return s.apptRepo.ListCategories(ctx)
}
