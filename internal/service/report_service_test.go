package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"fhsis/internal/domain"
	"fhsis/internal/service"
	"fhsis/mocks"
)

func strp(s string) *string   { return &s }
func i64p(v int64) *int64     { return &v }

func periodFilter() domain.ReportPeriodFilter {
	bid := int64(5)
	return domain.ReportPeriodFilter{BarangayID: &bid, ReportMonth: 6, ReportYear: 2025}
}

func TestReportService_FamilyPlanning(t *testing.T) {
	repo := new(mocks.MockReportRepo)
	svc := service.NewReportService(repo)
	f := periodFilter()

	rows := []domain.FPJoinedRow{
		{FPMethodID: 1, MethodName: "Pills", AgeLabel: "15-19",
			FPCounters: domain.FPCounters{CurrentUsersBeginningMonth: 10, NewAcceptorsPresentMonth: 2}},
		{FPMethodID: 1, MethodName: "Pills", AgeLabel: "20-49",
			FPCounters: domain.FPCounters{CurrentUsersBeginningMonth: 30}},
		{FPMethodID: 2, MethodName: "IUD", AgeLabel: "15-19",
			FPCounters: domain.FPCounters{CurrentUsersBeginningMonth: 5, DropOutsPresentMonth: 1}},
	}
	repo.On("FamilyPlanningRows", mock.Anything, f).Return(rows, 25000, nil)

	report, err := svc.FamilyPlanning(context.Background(), f)

	assert.NoError(t, err)
	assert.Equal(t, 25000, report.ProjectedPopulation)

	// Methods keep first-appearance order.
	assert.Len(t, report.Methods, 2)
	assert.Equal(t, "Pills", report.Methods[0].MethodName)
	assert.Equal(t, "IUD", report.Methods[1].MethodName)
	assert.Equal(t, 10, report.Methods[0].AgeCategories["15-19"].CurrentUsersBeginningMonth)
	assert.Equal(t, 30, report.Methods[0].AgeCategories["20-49"].CurrentUsersBeginningMonth)

	// Totals sum across methods per age category.
	assert.Equal(t, 15, report.Totals["15-19"].TotalCurrentUsersBeginningMonth)
	assert.Equal(t, 2, report.Totals["15-19"].TotalNewAcceptorsPresentMonth)
	assert.Equal(t, 1, report.Totals["15-19"].TotalDropOutsPresentMonth)
	assert.Equal(t, 30, report.Totals["20-49"].TotalCurrentUsersBeginningMonth)
}

func TestReportService_FamilyPlanning_MergesDuplicateCells(t *testing.T) {
	repo := new(mocks.MockReportRepo)
	svc := service.NewReportService(repo)
	f := periodFilter()

	// Two barangays reporting the same (method, age) cell must sum, not
	// produce two methods.
	rows := []domain.FPJoinedRow{
		{FPMethodID: 1, MethodName: "Pills", AgeLabel: "15-19",
			FPCounters: domain.FPCounters{CurrentUsersEndMonth: 4}},
		{FPMethodID: 1, MethodName: "Pills", AgeLabel: "15-19",
			FPCounters: domain.FPCounters{CurrentUsersEndMonth: 6}},
	}
	repo.On("FamilyPlanningRows", mock.Anything, f).Return(rows, 0, nil)

	report, err := svc.FamilyPlanning(context.Background(), f)

	assert.NoError(t, err)
	assert.Len(t, report.Methods, 1)
	assert.Equal(t, 10, report.Methods[0].AgeCategories["15-19"].CurrentUsersEndMonth)
	assert.Equal(t, 10, report.Totals["15-19"].TotalCurrentUsersEndMonth)
}

func TestReportService_WRA_DerivedTotals(t *testing.T) {
	repo := new(mocks.MockReportRepo)
	svc := service.NewReportService(repo)
	f := periodFilter()

	rows := []domain.WRAJoinedRow{
		{AgeLabel: "10-14", UnmetNeedModernFP: 2},
		{AgeLabel: "15-19", UnmetNeedModernFP: 3},
		{AgeLabel: "20-49", UnmetNeedModernFP: 5},
	}
	repo.On("WRARows", mock.Anything, f).Return(rows, nil)

	report, err := svc.WRA(context.Background(), f)

	assert.NoError(t, err)
	assert.Equal(t, 2, report.AgeCategories["10-14"])
	assert.Equal(t, 10, report.Total)
	assert.Equal(t, 8, report.Age15To49)
}

func TestReportService_WRA_Empty(t *testing.T) {
	repo := new(mocks.MockReportRepo)
	svc := service.NewReportService(repo)
	f := periodFilter()

	repo.On("WRARows", mock.Anything, f).Return([]domain.WRAJoinedRow{}, nil)

	report, err := svc.WRA(context.Background(), f)

	assert.NoError(t, err)
	assert.Equal(t, 0, report.Total)
	assert.Equal(t, 0, report.Age15To49)
	assert.Empty(t, report.AgeCategories)
}

func TestReportService_ServiceData(t *testing.T) {
	repo := new(mocks.MockReportRepo)
	svc := service.NewReportService(repo)
	f := periodFilter()

	rows := []domain.ServiceJoinedRow{
		// Service-level row with no indicator: reports under the service name.
		{ServiceID: 3, ServiceName: "Deworming", Value: 40},
		// Indicator rows bucketed by value type and nested under age groups.
		{ServiceID: 4, ServiceName: "Prenatal Care", IndicatorID: i64p(9), IndicatorName: strp("First visit"),
			AgeLabel: strp("15-19"), ValueType: strp("male"), Value: 1},
		{ServiceID: 4, ServiceName: "Prenatal Care", IndicatorID: i64p(9), IndicatorName: strp("First visit"),
			AgeLabel: strp("15-19"), ValueType: strp("female"), Value: 7},
	}
	repo.On("ServiceDataRows", mock.Anything, f).Return(rows, nil)

	reports, err := svc.ServiceData(context.Background(), f)

	assert.NoError(t, err)
	assert.Len(t, reports, 2)

	// Rows without a value type count toward the total bucket.
	assert.Equal(t, "Deworming", reports[0].IndicatorName)
	assert.Equal(t, 40.0, reports[0].Total)

	assert.Equal(t, "First visit", reports[1].IndicatorName)
	assert.Equal(t, 1.0, reports[1].Male)
	assert.Equal(t, 7.0, reports[1].Female)
	assert.Equal(t, 1.0, reports[1].AgeCategories["15-19"].Male)
	assert.Equal(t, 7.0, reports[1].AgeCategories["15-19"].Female)
}

func TestReportService_Morbidity_SyntheticTotal(t *testing.T) {
	repo := new(mocks.MockReportRepo)
	svc := service.NewReportService(repo)
	f := periodFilter()

	rows := []domain.MorbidityJoinedRow{
		{DiseaseID: 7, DiseaseName: "Dengue", AgeLabel: "10-14", Male: 3, Female: 1},
		{DiseaseID: 7, DiseaseName: "Dengue", AgeLabel: "15-19", Male: 2, Female: 4},
		// A stored Total row never contributes to the synthesized bucket.
		{DiseaseID: 7, DiseaseName: "Dengue", AgeLabel: "Total", Male: 99, Female: 99},
	}
	repo.On("MorbidityRows", mock.Anything, f).Return(rows, nil)

	reports, err := svc.Morbidity(context.Background(), f)

	assert.NoError(t, err)
	assert.Len(t, reports, 1)
	assert.Equal(t, domain.MorbidityCell{M: 5, F: 5}, reports[0].AgeCategories["Total"])
	assert.Equal(t, domain.MorbidityCell{M: 3, F: 1}, reports[0].AgeCategories["10-14"])
}

func TestReportService_Morbidity_GroupsByDisease(t *testing.T) {
	repo := new(mocks.MockReportRepo)
	svc := service.NewReportService(repo)
	f := periodFilter()

	rows := []domain.MorbidityJoinedRow{
		{DiseaseID: 7, DiseaseName: "Dengue", AgeLabel: "10-14", Male: 1, Female: 0},
		{DiseaseID: 8, DiseaseName: "Influenza", AgeLabel: "10-14", Male: 0, Female: 2},
		{DiseaseID: 7, DiseaseName: "Dengue", AgeLabel: "10-14", Male: 4, Female: 1},
	}
	repo.On("MorbidityRows", mock.Anything, f).Return(rows, nil)

	reports, err := svc.Morbidity(context.Background(), f)

	assert.NoError(t, err)
	assert.Len(t, reports, 2)
	assert.Equal(t, domain.MorbidityCell{M: 5, F: 1}, reports[0].AgeCategories["10-14"])
	assert.Equal(t, "Influenza", reports[1].DiseaseName)
}
