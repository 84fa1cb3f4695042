package port

import (
	"context"

	"fhsis/internal/domain"
)

// UserRepository defines the contract for user persistence.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context, offset, limit int) ([]domain.User, int, error)
	Update(ctx context.Context, user *domain.User) error
}

// BarangayRepository defines the contract for barangay reference data.
type BarangayRepository interface {
	List(ctx context.Context) ([]domain.Barangay, error)
	GetByID(ctx context.Context, id int64) (*domain.Barangay, error)
	GetByName(ctx context.Context, name string) (*domain.Barangay, error)
}

// AppointmentRepository defines the contract for appointment persistence.
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) error
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	List(ctx context.Context, offset, limit int) ([]domain.Appointment, int, error)
	UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error
	ListCategories(ctx context.Context) ([]domain.AppointmentCategory, error)
	GetCategoryByName(ctx context.Context, name string) (*domain.AppointmentCategory, error)
}
