package port

import (
	"context"

	"fhsis/internal/domain"
)

// ReportRepository provides the flat-row reads the formatter regroups.
// Every query scopes to the latest finalized submission for the requested
// barangay and period; an empty result is not an error.
type ReportRepository interface {
	FamilyPlanningRows(ctx context.Context, f domain.ReportPeriodFilter) ([]domain.FPJoinedRow, int, error)
	WRARows(ctx context.Context, f domain.ReportPeriodFilter) ([]domain.WRAJoinedRow, error)
	ServiceDataRows(ctx context.Context, f domain.ReportPeriodFilter) ([]domain.ServiceJoinedRow, error)
	MorbidityRows(ctx context.Context, f domain.ReportPeriodFilter) ([]domain.MorbidityJoinedRow, error)

	FPFlatRows(ctx context.Context, f domain.FlatRowFilter) ([]domain.FPFlatRow, error)
	WRAFlatRows(ctx context.Context, f domain.FlatRowFilter) ([]domain.WRAFlatRow, error)
}
