package port

import (
	"context"

	"fhsis/internal/domain"
)

// LookupRepository provides the reference tables the resolver indexes.
// All methods are read-only; reference values are seeded out-of-band and
// never auto-created from payloads.
type LookupRepository interface {
	ListAgeCategories(ctx context.Context) ([]domain.AgeCategory, error)
	ListFPMethods(ctx context.Context) ([]domain.FamilyPlanningMethod, error)
	ListServices(ctx context.Context) ([]domain.Service, error)
	ListIndicators(ctx context.Context) ([]domain.Indicator, error)
	ListDiseases(ctx context.Context) ([]domain.Disease, error)
}
