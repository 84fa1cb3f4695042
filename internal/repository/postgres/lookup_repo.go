package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"fhsis/internal/domain"
	"fhsis/internal/port"
)

type lookupRepo struct {
	db *sqlx.DB
}

// NewLookupRepo creates a new PostgreSQL-backed LookupRepository.
func NewLookupRepo(db *sqlx.DB) port.LookupRepository {
	return &lookupRepo{db: db}
}

func (r *lookupRepo) ListAgeCategories(ctx context.Context) ([]domain.AgeCategory, error) {
	var rows []domain.AgeCategory
	err := r.db.SelectContext(ctx, &rows, "SELECT * FROM age_categories ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("lookupRepo.ListAgeCategories: %w", err)
	}
	return rows, nil
}

func (r *lookupRepo) ListFPMethods(ctx context.Context) ([]domain.FamilyPlanningMethod, error) {
	var rows []domain.FamilyPlanningMethod
	err := r.db.SelectContext(ctx, &rows, "SELECT * FROM fp_methods ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("lookupRepo.ListFPMethods: %w", err)
	}
	return rows, nil
}

func (r *lookupRepo) ListServices(ctx context.Context) ([]domain.Service, error) {
	var rows []domain.Service
	err := r.db.SelectContext(ctx, &rows, "SELECT * FROM services ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("lookupRepo.ListServices: %w", err)
	}
	return rows, nil
}

func (r *lookupRepo) ListIndicators(ctx context.Context) ([]domain.Indicator, error) {
	var rows []domain.Indicator
	err := r.db.SelectContext(ctx, &rows, "SELECT * FROM indicators ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("lookupRepo.ListIndicators: %w", err)
	}
	return rows, nil
}

func (r *lookupRepo) ListDiseases(ctx context.Context) ([]domain.Disease, error) {
	var rows []domain.Disease
	err := r.db.SelectContext(ctx, &rows, "SELECT * FROM diseases ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("lookupRepo.ListDiseases: %w", err)
	}
	return rows, nil
}
