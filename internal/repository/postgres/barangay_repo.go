package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"fhsis/internal/domain"
	"fhsis/internal/port"
)

type barangayRepo struct {
	db *sqlx.DB
}

// NewBarangayRepo creates a new PostgreSQL-backed BarangayRepository.
func NewBarangayRepo(db *sqlx.DB) port.BarangayRepository {
	return &barangayRepo{db: db}
}

func (r *barangayRepo) List(ctx context.Context) ([]domain.Barangay, error) {
	var rows []domain.Barangay
	err := r.db.SelectContext(ctx, &rows, "SELECT * FROM barangays ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("barangayRepo.List: %w", err)
	}
	return rows, nil
}

func (r *barangayRepo) GetByID(ctx context.Context, id int64) (*domain.Barangay, error) {
	var b domain.Barangay
	err := r.db.GetContext(ctx, &b, "SELECT * FROM barangays WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBarangayNotFound
		}
		return nil, fmt.Errorf("barangayRepo.GetByID: %w", err)
	}
	return &b, nil
}

func (r *barangayRepo) GetByName(ctx context.Context, name string) (*domain.Barangay, error) {
	var b domain.Barangay
	err := r.db.GetContext(ctx, &b, "SELECT * FROM barangays WHERE name = $1", name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBarangayNotFound
		}
		return nil, fmt.Errorf("barangayRepo.GetByName: %w", err)
	}
	return &b, nil
}
