package validator

import (
	"context"
	"fmt"

	"fhsis/internal/domain"
	"fhsis/internal/port"
)

// RefIndex is an in-memory snapshot of the reference tables, loaded once per
// submit request so label and id resolution never goes back to the database.
// Resolution is case-sensitive exact match; unknown values fail the request,
// they are never auto-created.
type RefIndex struct {
	AgeIDByLabel map[string]int64
	AgeLabelByID map[int64]string
	FPMethods    map[int64]string
	Services     map[int64]string
	Indicators   map[int64]int64 // indicator id → owning service id
	Diseases     map[int64]string
}

// LoadRefIndex reads all lookup tables through the repository.
func LoadRefIndex(ctx context.Context, repo port.LookupRepository) (*RefIndex, error) {
	ix := &RefIndex{
		AgeIDByLabel: make(map[string]int64),
		AgeLabelByID: make(map[int64]string),
		FPMethods:    make(map[int64]string),
		Services:     make(map[int64]string),
		Indicators:   make(map[int64]int64),
		Diseases:     make(map[int64]string),
	}

	ages, err := repo.ListAgeCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading age categories: %w", err)
	}
	for _, a := range ages {
		ix.AgeIDByLabel[a.Label] = a.ID
		ix.AgeLabelByID[a.ID] = a.Label
	}

	methods, err := repo.ListFPMethods(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading fp methods: %w", err)
	}
	for _, m := range methods {
		ix.FPMethods[m.ID] = m.Name
	}

	services, err := repo.ListServices(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading services: %w", err)
	}
	for _, s := range services {
		ix.Services[s.ID] = s.Name
	}

	indicators, err := repo.ListIndicators(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading indicators: %w", err)
	}
	for _, ind := range indicators {
		ix.Indicators[ind.ID] = ind.ServiceID
	}

	diseases, err := repo.ListDiseases(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading diseases: %w", err)
	}
	for _, d := range diseases {
		ix.Diseases[d.ID] = d.Name
	}

	return ix, nil
}

// ResolveM1 maps the M1 sections onto normalized rows. Assumes the payload
// already passed shape validation, so required fields are present.
func (ix *RefIndex) ResolveM1(m1 *domain.M1ReportPayload) (*port.ResolvedM1, *FieldErrors) {
	errs := NewFieldErrors()
	resolved := &port.ResolvedM1{}
	if m1.ProjectedPopulation != nil {
		resolved.ProjectedPopulation = *m1.ProjectedPopulation
	}

	for i := range m1.FamilyPlanning {
		e := &m1.FamilyPlanning[i]
		prefix := fmt.Sprintf("m1Report.familyplanning.%d", i)

		ageID, ok := ix.AgeIDByLabel[e.AgeCategory]
		if !ok {
			errs.Addf(prefix+".age_category", "The %s.age_category is invalid", prefix)
		}
		if e.FPMethodID != nil {
			if _, known := ix.FPMethods[*e.FPMethodID]; !known {
				errs.Addf(prefix+".fp_method_id", "The %s.fp_method_id is invalid", prefix)
			}
		}
		if errs.Empty() {
			resolved.FPRows = append(resolved.FPRows, domain.FamilyPlanningReportRow{
				FPMethodID:    *e.FPMethodID,
				AgeCategoryID: ageID,
				FPCounters:    e.Counters(),
			})
		}
	}

	for i := range m1.ServiceData {
		e := &m1.ServiceData[i]
		prefix := fmt.Sprintf("m1Report.servicedata.%d", i)

		if e.ServiceID != nil {
			if _, known := ix.Services[*e.ServiceID]; !known {
				errs.Addf(prefix+".service_id", "The %s.service_id is invalid", prefix)
			}
		}
		if e.IndicatorID != nil {
			if _, known := ix.Indicators[*e.IndicatorID]; !known {
				errs.Addf(prefix+".indicator_id", "The %s.indicator_id is invalid", prefix)
			}
		}
		var ageID *int64
		if e.AgeCategory != "" {
			id, ok := ix.AgeIDByLabel[e.AgeCategory]
			if !ok {
				errs.Addf(prefix+".age_category", "The %s.age_category is invalid", prefix)
			} else {
				ageID = &id
			}
		}
		if errs.Empty() {
			var valueType *string
			if e.ValueType != "" {
				vt := e.ValueType
				valueType = &vt
			}
			resolved.ServiceRows = append(resolved.ServiceRows, domain.ServiceDataRow{
				ServiceID:     *e.ServiceID,
				IndicatorID:   e.IndicatorID,
				AgeCategoryID: ageID,
				ValueType:     valueType,
				Value:         *e.Value,
				Remarks:       e.Remarks,
			})
		}
	}

	for i := range m1.WRA {
		e := &m1.WRA[i]
		prefix := fmt.Sprintf("m1Report.wra.%d", i)

		ageID, ok := ix.AgeIDByLabel[e.AgeCategory]
		if !ok {
			errs.Addf(prefix+".age_category", "The %s.age_category is invalid", prefix)
			continue
		}
		if errs.Empty() {
			resolved.WRARows = append(resolved.WRARows, domain.WomenOfReproductiveAgeRow{
				AgeCategoryID:     ageID,
				UnmetNeedModernFP: *e.UnmetNeedModernFP,
			})
		}
	}

	if !errs.Empty() {
		return nil, errs
	}
	return resolved, nil
}

// ResolveM2 maps morbidity entries onto normalized rows.
func (ix *RefIndex) ResolveM2(entries []domain.MorbidityEntry) ([]domain.MorbidityReportRow, *FieldErrors) {
	errs := NewFieldErrors()
	rows := make([]domain.MorbidityReportRow, 0, len(entries))

	for i := range entries {
		e := &entries[i]
		prefix := fmt.Sprintf("m2Report.%d", i)

		if e.DiseaseID != nil {
			name, known := ix.Diseases[*e.DiseaseID]
			if !known {
				errs.Addf(prefix+".disease_id", "The %s.disease_id is invalid", prefix)
			} else if e.DiseaseName != "" && e.DiseaseName != name {
				errs.Addf(prefix+".disease_name", "The %s.disease_name does not match the disease_id", prefix)
			}
		}
		if e.AgeCategoryID != nil {
			if _, known := ix.AgeLabelByID[*e.AgeCategoryID]; !known {
				errs.Addf(prefix+".age_category_id", "The %s.age_category_id is invalid", prefix)
			}
		}
		if errs.Empty() {
			rows = append(rows, domain.MorbidityReportRow{
				DiseaseID:     *e.DiseaseID,
				AgeCategoryID: *e.AgeCategoryID,
				Male:          *e.Male,
				Female:        *e.Female,
			})
		}
	}

	if !errs.Empty() {
		return nil, errs
	}
	return rows, nil
}
