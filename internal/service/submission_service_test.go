package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"fhsis/internal/domain"
	"fhsis/internal/port"
	"fhsis/internal/service"
	"fhsis/internal/validator"
	"fhsis/mocks"
)

func intp(v int) *int { return &v }

func stubLookups(repo *mocks.MockLookupRepo) {
	repo.On("ListAgeCategories", mock.Anything).Return([]domain.AgeCategory{
		{ID: 1, Label: "10-14"}, {ID: 2, Label: "15-19"}, {ID: 3, Label: "20-49"}, {ID: 4, Label: "Total"},
	}, nil)
	repo.On("ListFPMethods", mock.Anything).Return([]domain.FamilyPlanningMethod{{ID: 1, Name: "Pills"}}, nil)
	repo.On("ListServices", mock.Anything).Return([]domain.Service{{ID: 3, Name: "Prenatal Care"}}, nil)
	repo.On("ListIndicators", mock.Anything).Return([]domain.Indicator{{ID: 9, ServiceID: 3, Name: "First visit"}}, nil)
	repo.On("ListDiseases", mock.Anything).Return([]domain.Disease{{ID: 7, Name: "Dengue"}}, nil)
}

func submitPayload() *domain.SubmitReportPayload {
	return &domain.SubmitReportPayload{
		M1ReportID: i64p(11),
		M2ReportID: i64p(12),
		M1Report: &domain.M1ReportPayload{
			ProjectedPopulation: intp(25000),
			FamilyPlanning: []domain.FamilyPlanningEntry{{
				AgeCategory:                "15-19",
				FPMethodID:                 i64p(1),
				CurrentUsersBeginningMonth: intp(10),
				NewAcceptorsPrevMonth:      intp(0),
				OtherAcceptorsPresentMonth: intp(0),
				DropOutsPresentMonth:       intp(1),
				CurrentUsersEndMonth:       intp(9),
				NewAcceptorsPresentMonth:   intp(0),
			}},
			WRA: []domain.WRAEntry{{AgeCategory: "10-14", UnmetNeedModernFP: intp(4)}},
		},
		M2Report: []domain.MorbidityEntry{{
			DiseaseID: i64p(7), DiseaseName: "Dengue", AgeCategoryID: i64p(2), Male: intp(3), Female: intp(1),
		}},
	}
}

func TestSubmitReport_Success(t *testing.T) {
	subRepo := new(mocks.MockSubmissionRepo)
	lookupRepo := new(mocks.MockLookupRepo)
	stubLookups(lookupRepo)
	svc := service.NewSubmissionService(subRepo, lookupRepo)

	subRepo.On("FinalizeReport", mock.Anything, mock.MatchedBy(func(input port.FinalizeReportInput) bool {
		return input.M1ReportStatusID != nil && *input.M1ReportStatusID == 11 &&
			input.M2ReportStatusID != nil && *input.M2ReportStatusID == 12 &&
			input.M1 != nil && input.M1.ProjectedPopulation == 25000 &&
			len(input.M1.FPRows) == 1 && len(input.M1.WRARows) == 1 &&
			len(input.M2Rows) == 1 && !input.Now.IsZero()
	})).Return(nil)

	err := svc.SubmitReport(context.Background(), submitPayload())

	assert.NoError(t, err)
	subRepo.AssertExpectations(t)
}

func TestSubmitReport_ValidationStopsBeforeStorage(t *testing.T) {
	subRepo := new(mocks.MockSubmissionRepo)
	lookupRepo := new(mocks.MockLookupRepo)
	svc := service.NewSubmissionService(subRepo, lookupRepo)

	err := svc.SubmitReport(context.Background(), &domain.SubmitReportPayload{})

	var vErr *validator.Error
	assert.ErrorAs(t, err, &vErr)
	// Neither lookups nor the finalize transaction may be touched for a
	// malformed payload.
	lookupRepo.AssertNotCalled(t, "ListAgeCategories", mock.Anything)
	subRepo.AssertNotCalled(t, "FinalizeReport", mock.Anything, mock.Anything)
}

func TestSubmitReport_ResolutionFailureStopsBeforeWrite(t *testing.T) {
	subRepo := new(mocks.MockSubmissionRepo)
	lookupRepo := new(mocks.MockLookupRepo)
	stubLookups(lookupRepo)
	svc := service.NewSubmissionService(subRepo, lookupRepo)

	payload := submitPayload()
	payload.M2Report[0].DiseaseID = i64p(404)

	err := svc.SubmitReport(context.Background(), payload)

	var vErr *validator.Error
	assert.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields().Fields(), "m2Report.0.disease_id")
	subRepo.AssertNotCalled(t, "FinalizeReport", mock.Anything, mock.Anything)
}

func TestSubmitReport_AlreadySubmitted(t *testing.T) {
	subRepo := new(mocks.MockSubmissionRepo)
	lookupRepo := new(mocks.MockLookupRepo)
	stubLookups(lookupRepo)
	svc := service.NewSubmissionService(subRepo, lookupRepo)

	subRepo.On("FinalizeReport", mock.Anything, mock.Anything).Return(domain.ErrAlreadySubmitted)

	err := svc.SubmitReport(context.Background(), submitPayload())

	assert.ErrorIs(t, err, domain.ErrAlreadySubmitted)
}

func TestSubmitReport_M2Only(t *testing.T) {
	subRepo := new(mocks.MockSubmissionRepo)
	lookupRepo := new(mocks.MockLookupRepo)
	stubLookups(lookupRepo)
	svc := service.NewSubmissionService(subRepo, lookupRepo)

	payload := submitPayload()
	payload.M1Report = nil
	payload.M1ReportID = nil

	subRepo.On("FinalizeReport", mock.Anything, mock.MatchedBy(func(input port.FinalizeReportInput) bool {
		return input.M1ReportStatusID == nil && input.M1 == nil &&
			input.M2ReportStatusID != nil && len(input.M2Rows) == 1
	})).Return(nil)

	err := svc.SubmitReport(context.Background(), payload)

	assert.NoError(t, err)
	subRepo.AssertExpectations(t)
}

func TestOpenPeriod(t *testing.T) {
	subRepo := new(mocks.MockSubmissionRepo)
	lookupRepo := new(mocks.MockLookupRepo)
	svc := service.NewSubmissionService(subRepo, lookupRepo)

	subRepo.On("OpenSubmission", mock.Anything, int64(5), 6, 2025, domain.FormM1).
		Return(&domain.ReportStatus{ID: 11}, &domain.ReportSubmission{Status: domain.SubmissionPending}, nil)
	subRepo.On("OpenSubmission", mock.Anything, int64(5), 6, 2025, domain.FormM2).
		Return(&domain.ReportStatus{ID: 12}, &domain.ReportSubmission{Status: domain.SubmissionSubmitted}, nil)

	result, err := svc.OpenPeriod(context.Background(), 5, 6, 2025)

	assert.NoError(t, err)
	assert.Equal(t, int64(11), result.M1ReportID)
	assert.Equal(t, int64(12), result.M2ReportID)
	assert.Equal(t, domain.SubmissionPending, result.M1Status)
	assert.Equal(t, domain.SubmissionSubmitted, result.M2Status)
}

func TestOpenPeriod_NoTemplate(t *testing.T) {
	subRepo := new(mocks.MockSubmissionRepo)
	lookupRepo := new(mocks.MockLookupRepo)
	svc := service.NewSubmissionService(subRepo, lookupRepo)

	subRepo.On("OpenSubmission", mock.Anything, int64(5), 6, 2025, domain.FormM1).
		Return(nil, nil, domain.ErrNotFound)

	_, err := svc.OpenPeriod(context.Background(), 5, 6, 2025)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateTemplate_PropagatesDuplicate(t *testing.T) {
	subRepo := new(mocks.MockSubmissionRepo)
	svc := service.NewSubmissionService(subRepo, new(mocks.MockLookupRepo))

	subRepo.On("CreateTemplate", mock.Anything, mock.Anything).Return(domain.ErrDuplicateTemplate)

	_, err := svc.CreateTemplate(context.Background(), service.CreateTemplateInput{
		BarangayID: 5, ReportMonth: 6, ReportYear: 2025, FormType: domain.FormM1,
	})

	assert.ErrorIs(t, err, domain.ErrDuplicateTemplate)
}

func TestSubmitReport_LookupFailure(t *testing.T) {
	subRepo := new(mocks.MockSubmissionRepo)
	lookupRepo := new(mocks.MockLookupRepo)
	svc := service.NewSubmissionService(subRepo, lookupRepo)

	lookupRepo.On("ListAgeCategories", mock.Anything).Return(nil, errors.New("connection refused"))

	err := svc.SubmitReport(context.Background(), submitPayload())

	assert.Error(t, err)
	var vErr *validator.Error
	assert.False(t, errors.As(err, &vErr))
	subRepo.AssertNotCalled(t, "FinalizeReport", mock.Anything, mock.Anything)
}
