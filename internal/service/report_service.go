package service

import (
	"context"

	"fhsis/internal/domain"
	"fhsis/internal/port"
)

// ReportService reconstructs the nested report shapes the form views and
// print layouts consume. All derived totals are computed here on every
// read; nothing derived is ever stored.
type ReportService interface {
	FamilyPlanning(ctx context.Context, f domain.ReportPeriodFilter) (*domain.FamilyPlanningReport, error)
	WRA(ctx context.Context, f domain.ReportPeriodFilter) (*domain.WRAReport, error)
	ServiceData(ctx context.Context, f domain.ReportPeriodFilter) ([]domain.ServiceIndicatorReport, error)
	Morbidity(ctx context.Context, f domain.ReportPeriodFilter) ([]domain.DiseaseReport, error)

	FamilyPlanningFlat(ctx context.Context, f domain.FlatRowFilter) ([]domain.FPFlatRow, error)
	WRAFlat(ctx context.Context, f domain.FlatRowFilter) ([]domain.WRAFlatRow, error)
}

type reportService struct {
	reportRepo port.ReportRepository
}

// NewReportService creates a new ReportService implementation.
func NewReportService(reportRepo port.ReportRepository) ReportService {
	return &reportService{reportRepo: reportRepo}
}

func (s *reportService) FamilyPlanning(ctx context.Context, f domain.ReportPeriodFilter) (*domain.FamilyPlanningReport, error) {
	rows, projectedPopulation, err := s.reportRepo.FamilyPlanningRows(ctx, f)
	if err != nil {
		return nil, err
	}

	report := &domain.FamilyPlanningReport{
		ProjectedPopulation: projectedPopulation,
		Methods:             []domain.FPMethodReport{},
		Totals:              make(map[string]domain.FPTotals),
	}

	methodIdx := make(map[int64]int)
	for _, row := range rows {
		idx, seen := methodIdx[row.FPMethodID]
		if !seen {
			idx = len(report.Methods)
			methodIdx[row.FPMethodID] = idx
			report.Methods = append(report.Methods, domain.FPMethodReport{
				MethodID:      row.FPMethodID,
				MethodName:    row.MethodName,
				AgeCategories: make(map[string]domain.FPCounters),
			})
		}

		cell := report.Methods[idx].AgeCategories[row.AgeLabel]
		cell.Add(row.FPCounters)
		report.Methods[idx].AgeCategories[row.AgeLabel] = cell

		totals := report.Totals[row.AgeLabel]
		totals.TotalCurrentUsersBeginningMonth += row.CurrentUsersBeginningMonth
		totals.TotalNewAcceptorsPrevMonth += row.NewAcceptorsPrevMonth
		totals.TotalOtherAcceptorsPresentMonth += row.OtherAcceptorsPresentMonth
		totals.TotalDropOutsPresentMonth += row.DropOutsPresentMonth
		totals.TotalCurrentUsersEndMonth += row.CurrentUsersEndMonth
		totals.TotalNewAcceptorsPresentMonth += row.NewAcceptorsPresentMonth
		report.Totals[row.AgeLabel] = totals
	}

	return report, nil
}

func (s *reportService) WRA(ctx context.Context, f domain.ReportPeriodFilter) (*domain.WRAReport, error) {
	rows, err := s.reportRepo.WRARows(ctx, f)
	if err != nil {
		return nil, err
	}

	report := &domain.WRAReport{AgeCategories: make(map[string]int)}
	for _, row := range rows {
		report.AgeCategories[row.AgeLabel] += row.UnmetNeedModernFP
	}

	// Derived sums, recomputed on every read and never stored.
	report.Total = report.AgeCategories["10-14"] + report.AgeCategories["15-19"] + report.AgeCategories["20-49"]
	report.Age15To49 = report.AgeCategories["15-19"] + report.AgeCategories["20-49"]

	return report, nil
}

// serviceGroupKey distinguishes indicator-scoped rows from service-level
// rows that carry no indicator.
type serviceGroupKey struct {
	serviceID   int64
	indicatorID int64
}

func (s *reportService) ServiceData(ctx context.Context, f domain.ReportPeriodFilter) ([]domain.ServiceIndicatorReport, error) {
	rows, err := s.reportRepo.ServiceDataRows(ctx, f)
	if err != nil {
		return nil, err
	}

	reports := []domain.ServiceIndicatorReport{}
	groupIdx := make(map[serviceGroupKey]int)

	for _, row := range rows {
		key := serviceGroupKey{serviceID: row.ServiceID}
		if row.IndicatorID != nil {
			key.indicatorID = *row.IndicatorID
		}

		idx, seen := groupIdx[key]
		if !seen {
			idx = len(reports)
			groupIdx[key] = idx
			entry := domain.ServiceIndicatorReport{
				ServiceID:   row.ServiceID,
				ServiceName: row.ServiceName,
			}
			if row.IndicatorID != nil {
				entry.IndicatorID = *row.IndicatorID
				entry.ParentIndicatorID = row.ParentIndicatorID
				if row.IndicatorName != nil {
					entry.IndicatorName = *row.IndicatorName
				}
			} else {
				// Rows without an indicator report at the service level.
				entry.IndicatorName = row.ServiceName
			}
			reports = append(reports, entry)
		}

		entry := &reports[idx]
		applyServiceCell(entry, row)
	}

	return reports, nil
}

// applyServiceCell folds one flat cell into its indicator line, bucketing
// by value type and nesting under the age category when one is present.
// Absent numeric cells default to 0 by construction.
func applyServiceCell(entry *domain.ServiceIndicatorReport, row domain.ServiceJoinedRow) {
	valueType := domain.ValueTypeTotal
	if row.ValueType != nil {
		valueType = domain.ValueType(*row.ValueType)
	}

	switch valueType {
	case domain.ValueTypeMale:
		entry.Male += row.Value
	case domain.ValueTypeFemale:
		entry.Female += row.Value
	case domain.ValueTypeTotal:
		entry.Total += row.Value
	}
	if row.Remarks != "" {
		entry.Remarks = row.Remarks
	}

	if row.AgeLabel != nil {
		if entry.AgeCategories == nil {
			entry.AgeCategories = make(map[string]domain.ServiceCellGroup)
		}
		group := entry.AgeCategories[*row.AgeLabel]
		switch valueType {
		case domain.ValueTypeMale:
			group.Male += row.Value
		case domain.ValueTypeFemale:
			group.Female += row.Value
		case domain.ValueTypeTotal:
			group.Total += row.Value
		}
		entry.AgeCategories[*row.AgeLabel] = group
	}
}

func (s *reportService) Morbidity(ctx context.Context, f domain.ReportPeriodFilter) ([]domain.DiseaseReport, error) {
	rows, err := s.reportRepo.MorbidityRows(ctx, f)
	if err != nil {
		return nil, err
	}

	reports := []domain.DiseaseReport{}
	diseaseIdx := make(map[int64]int)

	for _, row := range rows {
		idx, seen := diseaseIdx[row.DiseaseID]
		if !seen {
			idx = len(reports)
			diseaseIdx[row.DiseaseID] = idx
			reports = append(reports, domain.DiseaseReport{
				DiseaseID:     row.DiseaseID,
				DiseaseName:   row.DiseaseName,
				AgeCategories: make(map[string]domain.MorbidityCell),
			})
		}

		cell := reports[idx].AgeCategories[row.AgeLabel]
		cell.M += row.Male
		cell.F += row.Female
		reports[idx].AgeCategories[row.AgeLabel] = cell
	}

	// The "Total" bucket is synthesized from the real age categories; a
	// stored Total row never contributes to it.
	for i := range reports {
		var total domain.MorbidityCell
		for label, cell := range reports[i].AgeCategories {
			if label == "Total" {
				continue
			}
			total.M += cell.M
			total.F += cell.F
		}
		reports[i].AgeCategories["Total"] = total
	}

	return reports, nil
}

func (s *reportService) FamilyPlanningFlat(ctx context.Context, f domain.FlatRowFilter) ([]domain.FPFlatRow, error) {
	return s.reportRepo.FPFlatRows(ctx, f)
}

func (s *reportService) WRAFlat(ctx context.Context, f domain.FlatRowFilter) ([]domain.WRAFlatRow, error) {
	return s.reportRepo.WRAFlatRows(ctx, f)
}
