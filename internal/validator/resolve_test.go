package validator_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"fhsis/internal/domain"
	"fhsis/internal/validator"
	"fhsis/mocks"
)

func testRefIndex() *validator.RefIndex {
	return &validator.RefIndex{
		AgeIDByLabel: map[string]int64{"10-14": 1, "15-19": 2, "20-49": 3, "Total": 4},
		AgeLabelByID: map[int64]string{1: "10-14", 2: "15-19", 3: "20-49", 4: "Total"},
		FPMethods:    map[int64]string{1: "Pills", 2: "IUD"},
		Services:     map[int64]string{3: "Prenatal Care"},
		Indicators:   map[int64]int64{9: 3},
		Diseases:     map[int64]string{7: "Dengue"},
	}
}

func TestLoadRefIndex(t *testing.T) {
	repo := new(mocks.MockLookupRepo)
	repo.On("ListAgeCategories", mock.Anything).Return([]domain.AgeCategory{{ID: 1, Label: "10-14"}}, nil)
	repo.On("ListFPMethods", mock.Anything).Return([]domain.FamilyPlanningMethod{{ID: 1, Name: "Pills"}}, nil)
	repo.On("ListServices", mock.Anything).Return([]domain.Service{{ID: 3, Name: "Prenatal Care"}}, nil)
	repo.On("ListIndicators", mock.Anything).Return([]domain.Indicator{{ID: 9, ServiceID: 3, Name: "First visit"}}, nil)
	repo.On("ListDiseases", mock.Anything).Return([]domain.Disease{{ID: 7, Name: "Dengue"}}, nil)

	ix, err := validator.LoadRefIndex(context.Background(), repo)

	assert.NoError(t, err)
	assert.Equal(t, int64(1), ix.AgeIDByLabel["10-14"])
	assert.Equal(t, "10-14", ix.AgeLabelByID[1])
	assert.Equal(t, "Pills", ix.FPMethods[1])
	assert.Equal(t, int64(3), ix.Indicators[9])
	assert.Equal(t, "Dengue", ix.Diseases[7])
}

func TestLoadRefIndex_RepoFailure(t *testing.T) {
	repo := new(mocks.MockLookupRepo)
	repo.On("ListAgeCategories", mock.Anything).Return(nil, errors.New("connection refused"))

	_, err := validator.LoadRefIndex(context.Background(), repo)

	assert.Error(t, err)
}

func TestResolveM1_Valid(t *testing.T) {
	ix := testRefIndex()
	m1 := &domain.M1ReportPayload{
		ProjectedPopulation: intp(25000),
		FamilyPlanning:      []domain.FamilyPlanningEntry{validFPEntry()},
		ServiceData: []domain.ServiceDataEntry{
			{ServiceID: i64p(3), IndicatorID: i64p(9), AgeCategory: "10-14", ValueType: "male", Value: f64p(5)},
		},
		WRA: []domain.WRAEntry{{AgeCategory: "20-49", UnmetNeedModernFP: intp(6)}},
	}

	resolved, errs := ix.ResolveM1(m1)

	assert.Nil(t, errs)
	assert.Equal(t, 25000, resolved.ProjectedPopulation)

	assert.Len(t, resolved.FPRows, 1)
	assert.Equal(t, int64(1), resolved.FPRows[0].FPMethodID)
	assert.Equal(t, int64(2), resolved.FPRows[0].AgeCategoryID)
	assert.Equal(t, 10, resolved.FPRows[0].CurrentUsersBeginningMonth)

	assert.Len(t, resolved.ServiceRows, 1)
	assert.Equal(t, int64(3), resolved.ServiceRows[0].ServiceID)
	assert.Equal(t, int64(1), *resolved.ServiceRows[0].AgeCategoryID)
	assert.Equal(t, "male", *resolved.ServiceRows[0].ValueType)

	assert.Len(t, resolved.WRARows, 1)
	assert.Equal(t, int64(3), resolved.WRARows[0].AgeCategoryID)
	assert.Equal(t, 6, resolved.WRARows[0].UnmetNeedModernFP)
}

func TestResolveM1_UnknownLabelFailsClosed(t *testing.T) {
	ix := testRefIndex()
	entry := validFPEntry()
	entry.FPMethodID = i64p(99)
	m1 := &domain.M1ReportPayload{FamilyPlanning: []domain.FamilyPlanningEntry{entry}}

	resolved, errs := ix.ResolveM1(m1)

	assert.Nil(t, resolved)
	assert.Contains(t, errs.Fields(), "m1Report.familyplanning.0.fp_method_id")
	assert.Equal(t, "The m1Report.familyplanning.0.fp_method_id is invalid.", errs.Message())
}

func TestResolveM1_CaseSensitiveLabels(t *testing.T) {
	ix := testRefIndex()
	m1 := &domain.M1ReportPayload{
		WRA: []domain.WRAEntry{{AgeCategory: "total", UnmetNeedModernFP: intp(1)}},
	}

	resolved, errs := ix.ResolveM1(m1)

	assert.Nil(t, resolved)
	assert.Contains(t, errs.Fields(), "m1Report.wra.0.age_category")
}

func TestResolveM2_Valid(t *testing.T) {
	ix := testRefIndex()

	rows, errs := ix.ResolveM2([]domain.MorbidityEntry{validMorbidityEntry()})

	assert.Nil(t, errs)
	assert.Len(t, rows, 1)
	assert.Equal(t, int64(7), rows[0].DiseaseID)
	assert.Equal(t, int64(2), rows[0].AgeCategoryID)
	assert.Equal(t, 3, rows[0].Male)
	assert.Equal(t, 1, rows[0].Female)
}

func TestResolveM2_UnknownDisease(t *testing.T) {
	ix := testRefIndex()
	entry := validMorbidityEntry()
	entry.DiseaseID = i64p(404)

	rows, errs := ix.ResolveM2([]domain.MorbidityEntry{entry})

	assert.Nil(t, rows)
	assert.Contains(t, errs.Fields(), "m2Report.0.disease_id")
}

func TestResolveM2_DiseaseNameMismatch(t *testing.T) {
	ix := testRefIndex()
	entry := validMorbidityEntry()
	entry.DiseaseName = "Measles"

	rows, errs := ix.ResolveM2([]domain.MorbidityEntry{entry})

	assert.Nil(t, rows)
	assert.Contains(t, errs.Fields(), "m2Report.0.disease_name")
	assert.Equal(t, "The m2Report.0.disease_name does not match the disease_id.", errs.Message())
}

func TestResolveM2_CollectsAcrossEntries(t *testing.T) {
	ix := testRefIndex()
	bad1 := validMorbidityEntry()
	bad1.DiseaseID = i64p(404)
	bad2 := validMorbidityEntry()
	bad2.AgeCategoryID = i64p(404)

	_, errs := ix.ResolveM2([]domain.MorbidityEntry{bad1, bad2})

	assert.Contains(t, errs.Fields(), "m2Report.0.disease_id")
	assert.Contains(t, errs.Fields(), "m2Report.1.age_category_id")
}
