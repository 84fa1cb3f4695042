package service

import (
	"context"
	"fmt"
	"time"

	"fhsis/internal/domain"
	"fhsis/internal/port"
	"fhsis/internal/validator"
)

// OpenPeriodResult carries the report status ids an encoder needs to hold
// while assembling a draft for a period.
type OpenPeriodResult struct {
	M1ReportID int64                   `json:"m1ReportId"`
	M2ReportID int64                   `json:"m2ReportId"`
	M1Status   domain.SubmissionStatus `json:"m1_status"`
	M2Status   domain.SubmissionStatus `json:"m2_status"`
}

// CreateTemplateInput is the DTO for administering a reporting obligation.
type CreateTemplateInput struct {
	BarangayID  int64           `json:"barangay_id" binding:"required"`
	ReportMonth int             `json:"report_month" binding:"required,min=1,max=12"`
	ReportYear  int             `json:"report_year" binding:"required"`
	FormType    domain.FormType `json:"form_type" binding:"required,oneof=M1 M2"`
	DueAt       time.Time       `json:"due_at" binding:"required"`
}

// SubmissionService orchestrates the submit workflow: payload validation,
// label resolution, the duplicate-submission guard and the atomic write.
type SubmissionService interface {
	SubmitReport(ctx context.Context, payload *domain.SubmitReportPayload) error
	OpenPeriod(ctx context.Context, barangayID int64, month, year int) (*OpenPeriodResult, error)
	CreateTemplate(ctx context.Context, input CreateTemplateInput) (*domain.ReportSubmissionTemplate, error)
	ListOverview(ctx context.Context, barangayID *int64, month, year int) ([]domain.SubmissionOverviewRow, error)
	SetApproval(ctx context.Context, reportStatusID int64, approval domain.ApprovalStatus, reviewerID int64) error
}

type submissionService struct {
	submissionRepo port.SubmissionRepository
	lookupRepo     port.LookupRepository
	now            func() time.Time
}

// NewSubmissionService creates a new SubmissionService implementation.
func NewSubmissionService(submissionRepo port.SubmissionRepository, lookupRepo port.LookupRepository) SubmissionService {
	return &submissionService{
		submissionRepo: submissionRepo,
		lookupRepo:     lookupRepo,
		now:            func() time.Time { return time.Now().UTC() },
	}
}

func (s *submissionService) SubmitReport(ctx context.Context, payload *domain.SubmitReportPayload) error {
	// Shape first: one aggregated pass over every section before any
	// storage work.
	if errs := validator.ValidateSubmitPayload(payload); !errs.Empty() {
		return validator.NewError(errs)
	}

	ix, err := validator.LoadRefIndex(ctx, s.lookupRepo)
	if err != nil {
		return fmt.Errorf("submission.SubmitReport: %w", err)
	}

	input := port.FinalizeReportInput{Now: s.now()}
	resolveErrs := validator.NewFieldErrors()

	if payload.M1Report != nil {
		resolved, errs := ix.ResolveM1(payload.M1Report)
		if errs != nil {
			resolveErrs.Merge(errs)
		} else {
			input.M1 = resolved
			input.M1ReportStatusID = payload.M1ReportID
		}
	}
	if len(payload.M2Report) > 0 {
		rows, errs := ix.ResolveM2(payload.M2Report)
		if errs != nil {
			resolveErrs.Merge(errs)
		} else {
			input.M2Rows = rows
			input.M2ReportStatusID = payload.M2ReportID
		}
	}
	if !resolveErrs.Empty() {
		return validator.NewError(resolveErrs)
	}

	return s.submissionRepo.FinalizeReport(ctx, input)
}

func (s *submissionService) OpenPeriod(ctx context.Context, barangayID int64, month, year int) (*OpenPeriodResult, error) {
	m1Status, m1Sub, err := s.submissionRepo.OpenSubmission(ctx, barangayID, month, year, domain.FormM1)
	if err != nil {
		return nil, err
	}
	m2Status, m2Sub, err := s.submissionRepo.OpenSubmission(ctx, barangayID, month, year, domain.FormM2)
	if err != nil {
		return nil, err
	}
	return &OpenPeriodResult{
		M1ReportID: m1Status.ID,
		M2ReportID: m2Status.ID,
		M1Status:   m1Sub.Status,
		M2Status:   m2Sub.Status,
	}, nil
}

func (s *submissionService) CreateTemplate(ctx context.Context, input CreateTemplateInput) (*domain.ReportSubmissionTemplate, error) {
	tpl := &domain.ReportSubmissionTemplate{
		BarangayID:  input.BarangayID,
		ReportMonth: input.ReportMonth,
		ReportYear:  input.ReportYear,
		FormType:    input.FormType,
		DueAt:       input.DueAt,
	}
	if err := s.submissionRepo.CreateTemplate(ctx, tpl); err != nil {
		return nil, err
	}
	return tpl, nil
}

func (s *submissionService) ListOverview(ctx context.Context, barangayID *int64, month, year int) ([]domain.SubmissionOverviewRow, error) {
	return s.submissionRepo.ListOverview(ctx, barangayID, month, year)
}

func (s *submissionService) SetApproval(ctx context.Context, reportStatusID int64, approval domain.ApprovalStatus, reviewerID int64) error {
	return s.submissionRepo.SetApproval(ctx, reportStatusID, approval, reviewerID)
}
