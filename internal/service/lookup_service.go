package service

import (
	"context"

	"fhsis/internal/domain"
	"fhsis/internal/port"
)

// IndicatorNode is an indicator with its sub-rows nested for display.
type IndicatorNode struct {
	domain.Indicator
	Children []IndicatorNode `json:"children,omitempty"`
}

// LookupService exposes the reference tables the forms bind to.
type LookupService interface {
	Barangays(ctx context.Context) ([]domain.Barangay, error)
	AgeCategories(ctx context.Context) ([]domain.AgeCategory, error)
	FPMethods(ctx context.Context) ([]domain.FamilyPlanningMethod, error)
	Services(ctx context.Context) ([]domain.Service, error)
	Diseases(ctx context.Context) ([]domain.Disease, error)
	IndicatorTree(ctx context.Context) ([]IndicatorNode, error)
}

type lookupService struct {
	lookupRepo   port.LookupRepository
	barangayRepo port.BarangayRepository
}

// NewLookupService creates a new LookupService implementation.
func NewLookupService(lookupRepo port.LookupRepository, barangayRepo port.BarangayRepository) LookupService {
	return &lookupService{lookupRepo: lookupRepo, barangayRepo: barangayRepo}
}

func (s *lookupService) Barangays(ctx context.Context) ([]domain.Barangay, error) {
	return s.barangayRepo.List(ctx)
}

func (s *lookupService) AgeCategories(ctx context.Context) ([]domain.AgeCategory, error) {
	return s.lookupRepo.ListAgeCategories(ctx)
}

func (s *lookupService) FPMethods(ctx context.Context) ([]domain.FamilyPlanningMethod, error) {
	return s.lookupRepo.ListFPMethods(ctx)
}

func (s *lookupService) Services(ctx context.Context) ([]domain.Service, error) {
	return s.lookupRepo.ListServices(ctx)
}

func (s *lookupService) Diseases(ctx context.Context) ([]domain.Disease, error) {
	return s.lookupRepo.ListDiseases(ctx)
}

// IndicatorTree nests sub-indicators under their header rows. The nesting
// only affects display; aggregation treats every indicator as flat.
func (s *lookupService) IndicatorTree(ctx context.Context) ([]IndicatorNode, error) {
	indicators, err := s.lookupRepo.ListIndicators(ctx)
	if err != nil {
		return nil, err
	}

	children := make(map[int64][]IndicatorNode)
	var roots []IndicatorNode
	for _, ind := range indicators {
		node := IndicatorNode{Indicator: ind}
		if ind.ParentIndicatorID != nil {
			children[*ind.ParentIndicatorID] = append(children[*ind.ParentIndicatorID], node)
		} else {
			roots = append(roots, node)
		}
	}
	for i := range roots {
		roots[i].Children = children[roots[i].ID]
	}
	return roots, nil
}
