package port

import (
	"context"
	"time"

	"fhsis/internal/domain"
)

// ResolvedM1 carries the M1 sections after validation and label resolution,
// ready for insertion. ReportStatusID on the rows is filled in by the
// repository inside the finalize transaction.
type ResolvedM1 struct {
	ProjectedPopulation int
	FPRows              []domain.FamilyPlanningReportRow
	ServiceRows         []domain.ServiceDataRow
	WRARows             []domain.WomenOfReproductiveAgeRow
}

// FinalizeReportInput is the atomic unit the aggregation writer persists.
// Section ids are the report_status ids the client holds open; a nil id
// means that section is absent from the call.
type FinalizeReportInput struct {
	M1ReportStatusID *int64
	M2ReportStatusID *int64
	M1               *ResolvedM1
	M2Rows           []domain.MorbidityReportRow
	Now              time.Time
}

// SubmissionRepository manages templates, submissions and the finalize
// transaction.
type SubmissionRepository interface {
	CreateTemplate(ctx context.Context, tpl *domain.ReportSubmissionTemplate) error

	// OpenSubmission finds or creates the pending submission (and its
	// report status) for a barangay, period and form. Returns
	// domain.ErrNotFound when no template exists for the combination.
	OpenSubmission(ctx context.Context, barangayID int64, month, year int, form domain.FormType) (*domain.ReportStatus, *domain.ReportSubmission, error)

	// FinalizeReport runs the submission guard and aggregation write as one
	// transaction: it locks the submissions backing the given report status
	// ids, rejects with domain.ErrAlreadySubmitted if either is already
	// finalized, replaces the section rows, and flips each submission to
	// submitted or submitted late against its own template due date.
	FinalizeReport(ctx context.Context, input FinalizeReportInput) error

	ListOverview(ctx context.Context, barangayID *int64, month, year int) ([]domain.SubmissionOverviewRow, error)
	SetApproval(ctx context.Context, reportStatusID int64, approval domain.ApprovalStatus, reviewerID int64) error
}
