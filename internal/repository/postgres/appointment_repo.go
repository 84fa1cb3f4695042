package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"fhsis/internal/domain"
	"fhsis/internal/port"
)

type appointmentRepo struct {
	db *sqlx.DB
}

// NewAppointmentRepo creates a new PostgreSQL-backed AppointmentRepository.
func NewAppointmentRepo(db *sqlx.DB) port.AppointmentRepository {
	return &appointmentRepo{db: db}
}

func (r *appointmentRepo) Create(ctx context.Context, appt *domain.Appointment) error {
	now := time.Now().UTC()
	appt.CreatedAt = now
	appt.UpdatedAt = now
	if appt.Status == "" {
		appt.Status = domain.AppointmentPending
	}

	query := `INSERT INTO appointments (category_id, barangay_id, patient_name, phone, email, scheduled_at, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`

	err := r.db.QueryRowxContext(ctx, query,
		appt.CategoryID, appt.BarangayID, appt.PatientName, appt.Phone, appt.Email,
		appt.ScheduledAt, appt.Status, appt.CreatedAt, appt.UpdatedAt).Scan(&appt.ID)
	if err != nil {
		return fmt.Errorf("appointmentRepo.Create: %w", err)
	}
	return nil
}

func (r *appointmentRepo) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	var appt domain.Appointment
	err := r.db.GetContext(ctx, &appt, "SELECT * FROM appointments WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("appointmentRepo.GetByID: %w", err)
	}
	return &appt, nil
}

func (r *appointmentRepo) List(ctx context.Context, offset, limit int) ([]domain.Appointment, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM appointments"); err != nil {
		return nil, 0, fmt.Errorf("appointmentRepo.List count: %w", err)
	}

	var appts []domain.Appointment
	err := r.db.SelectContext(ctx, &appts,
		"SELECT * FROM appointments ORDER BY scheduled_at DESC LIMIT $1 OFFSET $2", limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("appointmentRepo.List: %w", err)
	}
	return appts, total, nil
}

func (r *appointmentRepo) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE appointments SET status = $1, updated_at = $2 WHERE id = $3",
		status, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("appointmentRepo.UpdateStatus: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *appointmentRepo) ListCategories(ctx context.Context) ([]domain.AppointmentCategory, error) {
	var rows []domain.AppointmentCategory
	err := r.db.SelectContext(ctx, &rows, "SELECT * FROM appointment_categories ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("appointmentRepo.ListCategories: %w", err)
	}
	return rows, nil
}

func (r *appointmentRepo) GetCategoryByName(ctx context.Context, name string) (*domain.AppointmentCategory, error) {
	var cat domain.AppointmentCategory
	err := r.db.GetContext(ctx, &cat, "SELECT * FROM appointment_categories WHERE name = $1", name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("appointmentRepo.GetCategoryByName: %w", err)
	}
	return &cat, nil
}
